package qrcode

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/makiuchi-d/gozxing"
	zxqr "github.com/makiuchi-d/gozxing/qrcode"

	appqr "github.com/jhoicas/registro-libros/internal/application/qr"
	"github.com/jhoicas/registro-libros/internal/domain"
)

var _ appqr.Decoder = (*Decoder)(nil)

// Decoder lee el contenido de un QR desde una imagen PNG o JPEG.
type Decoder struct{}

// NewDecoder construye el lector.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode devuelve el texto del QR o ErrQRNotFound si la imagen no
// contiene ninguno legible.
func (d *Decoder) Decode(data []byte) (string, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", fmt.Errorf("prepare bitmap: %w", err)
	}
	result, err := zxqr.NewQRCodeReader().Decode(bmp, nil)
	if err != nil {
		return "", domain.ErrQRNotFound
	}
	return result.GetText(), nil
}
