package qr

// Encoder renderiza un payload de texto como imagen QR (PNG).
type Encoder interface {
	Encode(payload string, size int) ([]byte, error)
}

// Decoder localiza y decodifica un QR dentro de una imagen raster.
// Si la imagen no contiene ningún código retorna domain.ErrQRNotFound.
type Decoder interface {
	Decode(image []byte) (string, error)
}
