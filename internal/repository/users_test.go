package repository_test

import (
	"context"
	"errors"

	"avatarhub/internal/db"
	"avatarhub/internal/repository"
	"avatarhub/internal/repository/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("UserRepository", func() {
	var (
		repo         *repository.UserRepository
		fakeDatabase *fake.Database
		ctx          context.Context
		fakeErr      error
	)

	BeforeEach(func() {
		fakeDatabase = new(fake.Database)
		repo = repository.NewUserRepository(fakeDatabase)
		ctx = context.Background()
		fakeErr = errors.New("fake error")
	})

	Describe("Migrate", func() {
		It("should migrate the users table", func() {
			Expect(repo.Migrate()).To(Succeed())
			Expect(fakeDatabase.MigrateModelsCallCount()).To(Equal(1))
			models := fakeDatabase.MigrateModelsArgsForCall(0)
			Expect(models).To(HaveLen(1))
			Expect(models[0]).To(BeAssignableToTypeOf(&repository.User{}))
		})

		When("migration fails", func() {
			BeforeEach(func() {
				fakeDatabase.MigrateModelsReturns(errors.New("migration error"))
			})

			It("should return an error", func() {
				Expect(repo.Migrate()).To(MatchError("migrate table(s): migration error"))
			})
		})
	})

	Describe("CreateUser", func() {
		var (
			user repository.User
			err  error
		)

		BeforeEach(func() {
			user = repository.User{Name: "Alice", Email: "alice@example.com", PasswordHash: "hash"}
		})

		JustBeforeEach(func() {
			err = repo.CreateUser(ctx, user)
		})

		When("the insert succeeds", func() {
			It("should insert the user", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeDatabase.InsertCallCount()).To(Equal(1))
				_, record := fakeDatabase.InsertArgsForCall(0)
				Expect(record).To(Equal(&user))
			})
		})

		When("the email is taken", func() {
			BeforeEach(func() {
				fakeDatabase.InsertReturns(db.ErrDuplicate)
			})

			It("should return ErrUserExists", func() {
				Expect(err).To(MatchError(repository.ErrUserExists))
			})
		})

		When("the database fails", func() {
			BeforeEach(func() {
				fakeDatabase.InsertReturns(fakeErr)
			})

			It("should wrap the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(err).NotTo(MatchError(repository.ErrUserExists))
			})
		})
	})

	Describe("GetUserByEmail", func() {
		var (
			user repository.User
			err  error
		)

		JustBeforeEach(func() {
			user, err = repo.GetUserByEmail(ctx, "alice@example.com")
		})

		When("the user exists", func() {
			BeforeEach(func() {
				fakeDatabase.GetOneByStub = func(ctx context.Context, column string, value any, dest any) error {
					u := dest.(*repository.User)
					*u = repository.User{Name: "Alice", Email: "alice@example.com", PasswordHash: "hash"}
					return nil
				}
			})

			It("should return it", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(user.Name).To(Equal("Alice"))

				_, col, val, _ := fakeDatabase.GetOneByArgsForCall(0)
				Expect(col).To(Equal("email"))
				Expect(val).To(Equal("alice@example.com"))
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeDatabase.GetOneByReturns(db.ErrNotFound)
			})

			It("should return ErrUserNotFound", func() {
				Expect(err).To(MatchError(repository.ErrUserNotFound))
			})
		})

		When("the database fails", func() {
			BeforeEach(func() {
				fakeDatabase.GetOneByReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})
})
