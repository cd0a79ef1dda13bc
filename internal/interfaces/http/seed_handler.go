package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/registro-libros/internal/application/dto"
	"github.com/jhoicas/registro-libros/internal/infrastructure/seed"
)

// SeedHandler maneja la regeneración de datos de demostración.
type SeedHandler struct {
	seeder *seed.Seeder
}

// NewSeedHandler construye el handler.
func NewSeedHandler(seeder *seed.Seeder) *SeedHandler {
	return &SeedHandler{seeder: seeder}
}

// Run borra y repuebla la base con datos sintéticos. Solo admins, y
// nunca en producción.
// POST /api/admin/seed
func (h *SeedHandler) Run(c *fiber.Ctx) error {
	result, err := h.seeder.Run(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ActionResponse{Success: true, Message: result.Message()})
}
