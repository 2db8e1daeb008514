package core

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"avatarhub/internal/repository"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Accounts registers users and checks their credentials.
type Accounts struct {
	logs *zap.SugaredLogger
	repo CredentialRepository
	cost int
}

func NewAccounts(logger *zap.SugaredLogger, repo CredentialRepository, bcryptCost int) *Accounts {
	return &Accounts{
		logs: logger,
		repo: repo,
		cost: bcryptCost,
	}
}

// Register stores a new user with a bcrypt hash of the password. Emails are
// compared exactly, so "A@x.com" and "a@x.com" are different users.
func (a *Accounts) Register(ctx context.Context, msg RegisterMessage) error {
	if msg.Name == "" || msg.Email == "" || msg.Password == "" {
		return ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(msg.Password), a.cost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	err = a.repo.CreateUser(ctx, repository.User{
		Name:         msg.Name,
		Email:        msg.Email,
		PasswordHash: string(hash),
	})
	if err != nil {
		if errors.Is(err, repository.ErrUserExists) {
			return ErrEmailTaken
		}
		return fmt.Errorf("create user: %w", err)
	}

	a.logs.Infow("user registered", "email", msg.Email)
	return nil
}

// Login reports ErrInvalidCredentials both for unknown emails and for wrong
// passwords.
func (a *Accounts) Login(ctx context.Context, msg LoginMessage) error {
	if msg.Email == "" || msg.Password == "" {
		return ErrInvalidInput
	}

	user, err := a.repo.GetUserByEmail(ctx, msg.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrInvalidCredentials
		}
		return fmt.Errorf("get user by email: %w", err)
	}

	if !passwordMatches(user.PasswordHash, msg.Password) {
		return ErrInvalidCredentials
	}

	return nil
}

// passwordMatches accepts bcrypt hashes and, for records written before
// hashing was introduced, plaintext values.
func passwordMatches(stored, password string) bool {
	if _, err := bcrypt.Cost([]byte(stored)); err != nil {
		return subtle.ConstantTimeCompare([]byte(stored), []byte(password)) == 1
	}

	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
}
