package service

import (
	"context"
	"testing"

	"subhub-be/internal/dto"
	"subhub-be/internal/pkg/apperrors"

	"github.com/stretchr/testify/assert"
)

func TestRegisterAndLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	store := newFakeStore()
	svc := NewAuthService(newFakeFactory(store))

	reg, err := svc.Register(context.Background(), &dto.RegisterRequest{
		BusinessName: "Acme",
		OwnerEmail:   "owner@acme.test",
		Password:     "super-secret",
	})
	assert.NoError(t, err)
	assert.Equal(t, "owner@acme.test", reg.OwnerEmail)

	login, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "owner@acme.test",
		Password: "super-secret",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, login.AccessToken)
	assert.Equal(t, "Acme", login.BusinessName)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	store := newFakeStore()
	svc := NewAuthService(newFakeFactory(store))

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		BusinessName: "Acme",
		OwnerEmail:   "owner@acme.test",
		Password:     "super-secret",
	})
	assert.NoError(t, err)

	// The duplicate surfaces as a conflict, not an opaque failure, so the
	// HTTP layer can answer 409 instead of 500.
	_, err = svc.Register(context.Background(), &dto.RegisterRequest{
		BusinessName: "Acme Clone",
		OwnerEmail:   "owner@acme.test",
		Password:     "other-secret",
	})
	assert.True(t, apperrors.IsConflict(err))
}

func TestLoginWrongPassword(t *testing.T) {
	store := newFakeStore()
	svc := NewAuthService(newFakeFactory(store))

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		BusinessName: "Acme",
		OwnerEmail:   "owner@acme.test",
		Password:     "super-secret",
	})
	assert.NoError(t, err)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "owner@acme.test",
		Password: "wrong",
	})
	assert.Error(t, err)
}

func TestLoginUnknownEmail(t *testing.T) {
	store := newFakeStore()
	svc := NewAuthService(newFakeFactory(store))

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@acme.test",
		Password: "whatever",
	})
	assert.Error(t, err)
}
