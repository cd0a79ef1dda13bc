// Package qr codifica y decodifica las etiquetas QR de los libros.
// Es una transformación local: no toca la base de datos.
package qr

import (
	"encoding/json"
	"fmt"

	"github.com/jhoicas/registro-libros/internal/application/dto"
	"github.com/jhoicas/registro-libros/internal/domain"
)

const qrImageSize = 256 // píxeles por lado del PNG generado

// UseCase transforma libros en códigos QR y viceversa.
type UseCase struct {
	encoder Encoder
	decoder Decoder
}

// NewUseCase construye el caso de uso con los adaptadores de imagen.
func NewUseCase(encoder Encoder, decoder Decoder) *UseCase {
	return &UseCase{encoder: encoder, decoder: decoder}
}

// EncodeBook serializa el payload canónico {id, year, tomo} como JSON
// compacto y lo renderiza como PNG.
func (uc *UseCase) EncodeBook(book dto.BookResponse) ([]byte, error) {
	payload, err := json.Marshal(dto.QRPayload{
		ID:   book.ID,
		Year: book.Year,
		Tomo: book.Tomo,
	})
	if err != nil {
		return nil, fmt.Errorf("serializar payload QR: %w", err)
	}
	return uc.encoder.Encode(string(payload), qrImageSize)
}

// PayloadJSON devuelve el payload canónico como texto (para mostrarlo en
// la etiqueta junto al código).
func (uc *UseCase) PayloadJSON(book dto.BookResponse) (string, error) {
	payload, err := json.Marshal(dto.QRPayload{
		ID:   book.ID,
		Year: book.Year,
		Tomo: book.Tomo,
	})
	if err != nil {
		return "", err
	}
	return string(payload), nil
}

// DecodeImage busca un QR en la imagen y parsea su contenido.
//
// Dos fallos distintos de cara al usuario:
//   - domain.ErrQRNotFound: la imagen no contiene ningún código legible
//     (reintentable: otra foto, otro encuadre);
//   - domain.ErrQRMalformed: hay un código pero su contenido no es el
//     payload canónico de un libro.
func (uc *UseCase) DecodeImage(image []byte) (*dto.QRPayload, error) {
	text, err := uc.decoder.Decode(image)
	if err != nil {
		return nil, err
	}
	var payload dto.QRPayload
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return nil, domain.ErrQRMalformed
	}
	if payload.ID == "" {
		return nil, domain.ErrQRMalformed
	}
	return &payload, nil
}
