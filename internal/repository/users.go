package repository

import (
	"context"
	"errors"
	"fmt"

	"avatarhub/internal/db"
)

// UserRepository stores users in a relational table through Database.
type UserRepository struct {
	db Database
}

func NewUserRepository(db Database) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func (r *UserRepository) Migrate() error {
	if err := r.db.MigrateModels(&User{}); err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

func (r *UserRepository) CreateUser(ctx context.Context, user User) error {
	err := r.db.Insert(ctx, &user)
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return ErrUserExists
		}
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "email", email, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by email: %w", err)
	}

	return user, nil
}
