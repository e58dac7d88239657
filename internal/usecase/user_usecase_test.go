package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
)

func newUserUsecase(repo *mockUserRepository) UserUsecase {
	return NewUserUsecase(testLogger(), repo, &mockAuditService{})
}

func TestCreateUserHashesPassword(t *testing.T) {
	var created *entity.User
	repo := &mockUserRepository{
		createFn: func(ctx context.Context, user *entity.User) error {
			user.ID = uuid.New()
			created = user
			return nil
		},
	}
	uc := newUserUsecase(repo)

	resp, err := uc.Create(authContext(uuid.New(), entity.RoleAdmin), &dto.CreateUserRequest{
		Name:     "Dr. Smith",
		Email:    "smith@example.com",
		Password: "secret123",
		Role:     string(entity.RolePractitioner),
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if created.Password == "secret123" {
		t.Error("password must not be stored in plain text")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("secret123")); err != nil {
		t.Errorf("stored hash does not verify the password: %v", err)
	}
	if resp.Role != string(entity.RolePractitioner) {
		t.Errorf("expected practitioner role, got %q", resp.Role)
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	repo := &mockUserRepository{
		createFn: func(ctx context.Context, user *entity.User) error {
			return &pgconn.PgError{Code: "23505", ConstraintName: "idx_users_email"}
		},
	}
	uc := newUserUsecase(repo)

	_, err := uc.Create(authContext(uuid.New(), entity.RoleAdmin), &dto.CreateUserRequest{
		Name:     "Dr. Smith",
		Email:    "smith@example.com",
		Password: "secret123",
		Role:     string(entity.RolePractitioner),
	})
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Errorf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestUpdateUserPartial(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("original1"), bcrypt.MinCost)
	user := &entity.User{
		ID:       uuid.New(),
		Name:     "Dr. Smith",
		Email:    "smith@example.com",
		Password: string(hash),
		Role:     entity.RolePractitioner,
	}

	repo := &mockUserRepository{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.User, error) {
			if id == user.ID {
				return user, nil
			}
			return nil, nil
		},
	}
	uc := newUserUsecase(repo)

	resp, err := uc.Update(authContext(uuid.New(), entity.RoleAdmin), user.ID, &dto.UpdateUserRequest{
		Name: "Dr. Smith Jr.",
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if resp.Name != "Dr. Smith Jr." {
		t.Errorf("expected updated name, got %q", resp.Name)
	}
	if resp.Email != "smith@example.com" {
		t.Errorf("omitted email must stay unchanged, got %q", resp.Email)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("original1")); err != nil {
		t.Error("omitted password must not be rehashed")
	}
}

func TestUpdateUserNotFound(t *testing.T) {
	uc := newUserUsecase(&mockUserRepository{})

	_, err := uc.Update(authContext(uuid.New(), entity.RoleAdmin), uuid.New(), &dto.UpdateUserRequest{Name: "Nobody"})
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestDeleteUserIsAStub(t *testing.T) {
	repo := &mockUserRepository{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.User, error) {
			t.Fatal("delete must not touch the repository")
			return nil, nil
		},
		updateFn: func(ctx context.Context, user *entity.User) error {
			t.Fatal("delete must not touch the repository")
			return nil
		},
	}
	uc := newUserUsecase(repo)

	id := uuid.New()
	msg, err := uc.Delete(authContext(uuid.New(), entity.RoleAdmin), id)
	if err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if !strings.Contains(msg, id.String()) {
		t.Errorf("expected the message to name the user id, got %q", msg)
	}
}

func TestGetUserNotFound(t *testing.T) {
	uc := newUserUsecase(&mockUserRepository{})

	_, err := uc.Get(authContext(uuid.New(), entity.RoleAdmin), uuid.New())
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}
