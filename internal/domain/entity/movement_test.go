package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/registro-libros/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// TestResultingStatus recorre la tabla completa de transiciones: cada acción
// contra cada estado de partida. El estado del libro solo puede moverse por
// estas aristas; cualquier otra combinación debe rechazarse.
// ──────────────────────────────────────────────────────────────────────────────

func TestResultingStatus_TablaCompleta(t *testing.T) {
	cases := []struct {
		name    string
		current string
		action  string
		want    string
		ok      bool
	}{
		{"retiro desde disponible", entity.StatusDisponible, entity.ActionRetiro, entity.StatusEnUso, true},
		{"retiro desde en uso", entity.StatusEnUso, entity.ActionRetiro, "", false},
		{"retiro desde archivado", entity.StatusArchivado, entity.ActionRetiro, "", false},

		{"devolución desde en uso", entity.StatusEnUso, entity.ActionDevolucion, entity.StatusDisponible, true},
		{"devolución desde disponible", entity.StatusDisponible, entity.ActionDevolucion, "", false},
		{"devolución desde archivado", entity.StatusArchivado, entity.ActionDevolucion, "", false},

		{"archivado desde disponible", entity.StatusDisponible, entity.ActionArchivado, entity.StatusArchivado, true},
		{"archivado desde en uso", entity.StatusEnUso, entity.ActionArchivado, "", false},
		{"archivado desde archivado", entity.StatusArchivado, entity.ActionArchivado, "", false},

		{"edición conserva disponible", entity.StatusDisponible, entity.ActionEdicion, entity.StatusDisponible, true},
		{"edición conserva en uso", entity.StatusEnUso, entity.ActionEdicion, entity.StatusEnUso, true},
		{"edición conserva archivado", entity.StatusArchivado, entity.ActionEdicion, entity.StatusArchivado, true},

		{"creación no es una transición", entity.StatusDisponible, entity.ActionCreacion, "", false},
		{"estado desconocido", "Prestado", entity.ActionEdicion, "", false},
		{"acción desconocida", entity.StatusDisponible, "Préstamo", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := entity.ResultingStatus(tc.current, tc.action)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestIsValidAction(t *testing.T) {
	for _, a := range []string{
		entity.ActionRetiro, entity.ActionArchivado, entity.ActionDevolucion,
		entity.ActionCreacion, entity.ActionEdicion,
	} {
		assert.True(t, entity.IsValidAction(a), a)
	}
	assert.False(t, entity.IsValidAction("Préstamo"))
	assert.False(t, entity.IsValidAction(""))
}

func TestIsValidStatus(t *testing.T) {
	for _, s := range entity.AllStatuses() {
		assert.True(t, entity.IsValidStatus(s), s)
	}
	assert.False(t, entity.IsValidStatus("Prestado"))
	assert.False(t, entity.IsValidStatus(""))
}
