package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrBookNotFound        = errors.New("libro no encontrado")
	ErrUserNotFound        = errors.New("usuario no encontrado")
	ErrDuplicateBookID     = errors.New("el libro ya existe")
	ErrDuplicateCredential = errors.New("el nombre de usuario o email ya existe")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrInvalidTransition   = errors.New("transición de estado no permitida")
	ErrUnauthorized        = errors.New("no autorizado")
	ErrForbidden           = errors.New("acceso denegado")

	// QR: "no hay código en la imagen" y "el payload no parsea" son
	// resultados distintos de cara al usuario.
	ErrQRNotFound  = errors.New("no se encontró un código QR en la imagen")
	ErrQRMalformed = errors.New("el contenido del código QR no es válido")

	ErrSeedDisabled     = errors.New("el seeder está deshabilitado en producción")
	ErrStoreUnavailable = errors.New("no se pudo conectar a la base de datos")
)
