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

func newMovementFixture(status string) (*MovementUseCase, *fakeBookRepo, *fakeMovementRepo) {
	books := &fakeBookRepo{books: []*entity.Book{{
		ID: "1995-NAC-0001", Tomo: "Nacimientos", Year: 1995,
		EntryDate: time.Date(1995, 3, 10, 0, 0, 0, 0, time.UTC),
		Status:    status,
	}}}
	movements := &fakeMovementRepo{}
	tx := &fakeTxRunner{books: books, movements: movements}
	return NewMovementUseCase(books, tx, NewListCache()), books, movements
}

func TestMovementRegister_RetiroActualizaEstadoYBitacora(t *testing.T) {
	uc, books, movements := newMovementFixture(entity.StatusDisponible)

	err := uc.Register(context.Background(), "1995-NAC-0001", "user_1", dto.RegisterMovementRequest{
		Action:       entity.ActionRetiro,
		Person:       "María García",
		Observations: "Retirado para trámite de certificación.",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.StatusEnUso, books.books[0].Status)

	require.Len(t, movements.movements, 1)
	m := movements.movements[0]
	assert.Equal(t, entity.ActionRetiro, m.Action)
	require.NotNil(t, m.PreviousState)
	assert.Equal(t, entity.StatusDisponible, *m.PreviousState)
	assert.Equal(t, entity.StatusEnUso, m.NewState)
	require.NotNil(t, m.Person)
	assert.Equal(t, "María García", *m.Person)
}

func TestMovementRegister_RetiroSinPersona(t *testing.T) {
	uc, books, movements := newMovementFixture(entity.StatusDisponible)

	err := uc.Register(context.Background(), "1995-NAC-0001", "user_1", dto.RegisterMovementRequest{
		Action: entity.ActionRetiro,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, entity.StatusDisponible, books.books[0].Status, "nada debe cambiar")
	assert.Empty(t, movements.movements)
}

func TestMovementRegister_TransicionesIlegales(t *testing.T) {
	cases := []struct {
		name   string
		status string
		action string
	}{
		{"retiro sobre libro en uso", entity.StatusEnUso, entity.ActionRetiro},
		{"retiro sobre libro archivado", entity.StatusArchivado, entity.ActionRetiro},
		{"devolución sobre libro disponible", entity.StatusDisponible, entity.ActionDevolucion},
		{"archivado sobre libro en uso", entity.StatusEnUso, entity.ActionArchivado},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, books, movements := newMovementFixture(tc.status)
			req := dto.RegisterMovementRequest{Action: tc.action, Person: "Alguien"}

			err := uc.Register(context.Background(), "1995-NAC-0001", "user_1", req)
			assert.ErrorIs(t, err, domain.ErrInvalidTransition)
			assert.Equal(t, tc.status, books.books[0].Status, "el estado no debe tocarse")
			assert.Empty(t, movements.movements, "la bitácora no debe tocarse")
		})
	}
}

func TestMovementRegister_CreacionNoSeAceptaComoAccion(t *testing.T) {
	uc, _, _ := newMovementFixture(entity.StatusDisponible)
	err := uc.Register(context.Background(), "1995-NAC-0001", "user_1", dto.RegisterMovementRequest{
		Action: entity.ActionCreacion,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestMovementRegister_AccionDesconocida(t *testing.T) {
	uc, _, _ := newMovementFixture(entity.StatusDisponible)
	err := uc.Register(context.Background(), "1995-NAC-0001", "user_1", dto.RegisterMovementRequest{
		Action: "Préstamo",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestMovementRegister_LibroInexistente(t *testing.T) {
	uc, _, _ := newMovementFixture(entity.StatusDisponible)
	err := uc.Register(context.Background(), "no-existe", "user_1", dto.RegisterMovementRequest{
		Action: entity.ActionArchivado,
	})
	assert.ErrorIs(t, err, domain.ErrBookNotFound)
}

func TestMovementRegister_EdicionNoCambiaEstado(t *testing.T) {
	uc, books, movements := newMovementFixture(entity.StatusArchivado)

	err := uc.Register(context.Background(), "1995-NAC-0001", "user_1", dto.RegisterMovementRequest{
		Action:       entity.ActionEdicion,
		Observations: "nota de inventario",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.StatusArchivado, books.books[0].Status)
	require.Len(t, movements.movements, 1)
	m := movements.movements[0]
	require.NotNil(t, m.PreviousState)
	assert.Equal(t, *m.PreviousState, m.NewState, "la edición conserva el estado")
}

func TestMovementRegister_CicloCompletoRetiroDevolucionArchivado(t *testing.T) {
	uc, books, movements := newMovementFixture(entity.StatusDisponible)
	ctx := context.Background()

	require.NoError(t, uc.Register(ctx, "1995-NAC-0001", "user_1", dto.RegisterMovementRequest{
		Action: entity.ActionRetiro, Person: "Pedro Gómez",
	}))
	require.NoError(t, uc.Register(ctx, "1995-NAC-0001", "user_2", dto.RegisterMovementRequest{
		Action: entity.ActionDevolucion,
	}))
	require.NoError(t, uc.Register(ctx, "1995-NAC-0001", "user_1", dto.RegisterMovementRequest{
		Action: entity.ActionArchivado,
	}))

	assert.Equal(t, entity.StatusArchivado, books.books[0].Status)
	require.Len(t, movements.movements, 3)

	// Cada movimiento parte del estado en que quedó el anterior.
	assert.Equal(t, entity.StatusEnUso, movements.movements[0].NewState)
	assert.Equal(t, entity.StatusEnUso, *movements.movements[1].PreviousState)
	assert.Equal(t, entity.StatusDisponible, movements.movements[1].NewState)
	assert.Equal(t, entity.StatusDisponible, *movements.movements[2].PreviousState)
	assert.Equal(t, entity.StatusArchivado, movements.movements[2].NewState)
}
