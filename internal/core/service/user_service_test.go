package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/spendbook/expenses-api/internal/core/domain"
	"github.com/spendbook/expenses-api/internal/infrastructure/db/memory"
)

func newTestUserService() *UserService {
	return NewUserService(memory.NewUserRepository(), zerolog.Nop())
}

func TestUserService_Create(t *testing.T) {
	svc := newTestUserService()
	ctx := context.Background()

	user, err := svc.Create(ctx, "Ann")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if user.ID != 1 || user.Name != "Ann" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestUserService_Create_EmptyName(t *testing.T) {
	svc := newTestUserService()

	_, err := svc.Create(context.Background(), "")
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.Message != "Name is required" {
		t.Fatalf("unexpected message: %q", ve.Message)
	}
}

func TestUserService_Get_NotFound(t *testing.T) {
	svc := newTestUserService()

	_, err := svc.Get(context.Background(), 99)
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Rename(t *testing.T) {
	svc := newTestUserService()
	ctx := context.Background()

	user, err := svc.Create(ctx, "Ann")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	renamed, err := svc.Rename(ctx, user.ID, "Anna")
	if err != nil {
		t.Fatalf("rename: %v", err)
	}
	if renamed.ID != user.ID || renamed.Name != "Anna" {
		t.Fatalf("unexpected user after rename: %+v", renamed)
	}

	got, err := svc.Get(ctx, user.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Anna" {
		t.Fatalf("rename not persisted: %q", got.Name)
	}
}

func TestUserService_Rename_Failures(t *testing.T) {
	svc := newTestUserService()
	ctx := context.Background()

	if _, err := svc.Rename(ctx, 99, "Anna"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}

	user, err := svc.Create(ctx, "Ann")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Empty-name check wins even for an existing user.
	var ve *domain.ValidationError
	if _, err := svc.Rename(ctx, user.ID, ""); !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestUserService_Delete(t *testing.T) {
	svc := newTestUserService()
	ctx := context.Background()

	user, err := svc.Create(ctx, "Ann")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(ctx, user.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(ctx, user.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound after delete, got %v", err)
	}
	if err := svc.Delete(ctx, user.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound on second delete, got %v", err)
	}
}

func TestUserService_IDsNeverReused(t *testing.T) {
	svc := newTestUserService()
	ctx := context.Background()

	first, err := svc.Create(ctx, "Ann")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Delete(ctx, first.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	second, err := svc.Create(ctx, "Bob")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if second.ID != first.ID+1 {
		t.Fatalf("expected id %d, got %d", first.ID+1, second.ID)
	}
}
