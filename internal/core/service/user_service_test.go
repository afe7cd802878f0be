package service

import (
	"context"
	"errors"
	"testing"

	"github.com/smartshop/assistant-api/internal/core/domain"
	"github.com/smartshop/assistant-api/internal/core/ports"
	"github.com/smartshop/assistant-api/internal/infrastructure/memory"
)

func TestUserService_CreateAndGet(t *testing.T) {
	svc := NewUserService(memory.NewUserRepository(), discardLogger)
	ctx := context.Background()

	created, err := svc.Create(ctx, ports.CreateUserInput{Name: "Alice", Email: "alice@example.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected generated ID")
	}

	got, err := svc.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Email != "alice@example.com" {
		t.Fatalf("unexpected email: %q", got.Email)
	}
}

func TestUserService_Get_Missing(t *testing.T) {
	svc := NewUserService(memory.NewUserRepository(), discardLogger)

	_, err := svc.Get(context.Background(), "does-not-exist")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Update_Missing(t *testing.T) {
	svc := NewUserService(memory.NewUserRepository(), discardLogger)

	name := "Ghost"
	_, err := svc.Update(context.Background(), "does-not-exist", ports.UserUpdate{Name: &name})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Delete(t *testing.T) {
	svc := NewUserService(memory.NewUserRepository(), discardLogger)
	ctx := context.Background()

	created, _ := svc.Create(ctx, ports.CreateUserInput{Name: "Alice", Email: "alice@example.com"})

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.Delete(ctx, created.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound on second delete, got %v", err)
	}
}

func TestUserService_List(t *testing.T) {
	svc := NewUserService(memory.NewUserRepository(), discardLogger)
	ctx := context.Background()

	users, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 0 {
		t.Fatalf("expected empty store at startup, got %d users", len(users))
	}

	svc.Create(ctx, ports.CreateUserInput{Name: "Alice", Email: "alice@example.com"})
	svc.Create(ctx, ports.CreateUserInput{Name: "Bob", Email: "bob@example.com"})

	users, _ = svc.List(ctx)
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
}
