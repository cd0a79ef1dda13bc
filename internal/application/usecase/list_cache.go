package usecase

import (
	"time"

	cache "github.com/patrickmn/go-cache"

	"github.com/jhoicas/registro-libros/internal/application/dto"
)

const bookListKey = "books:list"

// ListCache cachea en memoria el listado de libros. Toda acción de
// escritura sobre libros lo invalida; el TTL corto cubre escrituras hechas
// por otros procesos contra la misma DB.
type ListCache struct {
	c *cache.Cache
}

// NewListCache construye el caché con TTL de un minuto.
func NewListCache() *ListCache {
	return &ListCache{c: cache.New(time.Minute, 5*time.Minute)}
}

// Get devuelve el listado cacheado, si existe.
func (lc *ListCache) Get() ([]dto.BookResponse, bool) {
	v, ok := lc.c.Get(bookListKey)
	if !ok {
		return nil, false
	}
	list, ok := v.([]dto.BookResponse)
	return list, ok
}

// Set guarda el listado con el TTL por defecto.
func (lc *ListCache) Set(list []dto.BookResponse) {
	lc.c.Set(bookListKey, list, cache.DefaultExpiration)
}

// Invalidate descarta el listado cacheado.
func (lc *ListCache) Invalidate() {
	lc.c.Delete(bookListKey)
}
