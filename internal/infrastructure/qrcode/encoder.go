// Package qrcode adaptadores de codificación y lectura de códigos QR
// para las etiquetas de los libros.
package qrcode

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"

	appqr "github.com/jhoicas/registro-libros/internal/application/qr"
)

var _ appqr.Encoder = (*Encoder)(nil)

// Encoder genera imágenes PNG con corrección de errores alta, pensadas
// para etiquetas físicas que se desgastan.
type Encoder struct{}

// NewEncoder construye el codificador.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Encode codifica el payload y devuelve un PNG cuadrado de `size` px.
func (e *Encoder) Encode(payload string, size int) ([]byte, error) {
	code, err := qr.Encode(payload, qr.H, qr.Auto)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	scaled, err := barcode.Scale(code, size, size)
	if err != nil {
		return nil, fmt.Errorf("scale qr: %w", err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return nil, fmt.Errorf("render qr png: %w", err)
	}
	return buf.Bytes(), nil
}
