package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/registro-libros/internal/application/dto"
	"github.com/jhoicas/registro-libros/internal/domain"
	"github.com/jhoicas/registro-libros/internal/domain/entity"
)

func TestUserAdd_GeneraIDDesdeElReloj(t *testing.T) {
	users := &fakeUserRepo{}
	uc := NewUserUseCase(users)
	fixed := time.Date(2024, 5, 3, 10, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return fixed }

	resp, err := uc.Add(context.Background(), dto.AddUserRequest{
		Name: "Ana López", Username: "alopez", Email: "alopez@ejemplo.com",
	})
	require.NoError(t, err)

	assert.Equal(t, "user_1714730400000", resp.ID)
	assert.Equal(t, entity.RoleEstandar, resp.Role, "sin rol explícito se asigna el estándar")
	assert.Equal(t, "2024-05-03", resp.CreatedAt)
}

func TestUserAdd_CredencialDuplicada(t *testing.T) {
	users := &fakeUserRepo{users: []*entity.User{{
		ID: "user_1", Name: "Ana", Username: "alopez", Email: "alopez@ejemplo.com",
		Role: entity.RoleEstandar,
	}}}
	uc := NewUserUseCase(users)

	// Mismo username, email distinto.
	_, err := uc.Add(context.Background(), dto.AddUserRequest{
		Name: "Otra Ana", Username: "alopez", Email: "otra@ejemplo.com",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateCredential)

	// Mismo email, username distinto.
	_, err = uc.Add(context.Background(), dto.AddUserRequest{
		Name: "Otra Ana", Username: "alopez2", Email: "alopez@ejemplo.com",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateCredential)
}

func TestUserAdd_ValidaEntrada(t *testing.T) {
	uc := NewUserUseCase(&fakeUserRepo{})
	ctx := context.Background()

	cases := []dto.AddUserRequest{
		{Username: "x", Email: "x@y.com"},                             // sin nombre
		{Name: "X", Email: "x@y.com"},                                 // sin username
		{Name: "X", Username: "x"},                                    // sin email
		{Name: "X", Username: "x", Email: "x@y.com", Role: "Gerente"}, // rol fuera del enum
	}
	for _, in := range cases {
		_, err := uc.Add(ctx, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestUserDelete_EsIdempotente(t *testing.T) {
	users := &fakeUserRepo{users: []*entity.User{{ID: "user_1", Username: "a", Email: "a@b.c"}}}
	uc := NewUserUseCase(users)
	ctx := context.Background()

	require.NoError(t, uc.Delete(ctx, "user_1"))
	assert.Empty(t, users.users)
	assert.NoError(t, uc.Delete(ctx, "user_1"))
}
