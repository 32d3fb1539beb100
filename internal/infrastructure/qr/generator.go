package qr

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/png"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"

	"github.com/tu-usuario/retail-pos-api/internal/application/ports"
)

var _ ports.QRGenerator = (*Generator)(nil)

// Generator produce códigos QR como data URL PNG en base64, listos para
// incrustarse en respuestas JSON o en un <img>.
type Generator struct {
	size int
}

// NewGenerator construye el generador con el tamaño de imagen en píxeles.
func NewGenerator() *Generator {
	return &Generator{size: 256}
}

// DataURL codifica content como QR y devuelve "data:image/png;base64,...".
func (g *Generator) DataURL(content string) (string, error) {
	if content == "" {
		return "", fmt.Errorf("qr: contenido vacío")
	}
	code, err := qr.Encode(content, qr.M, qr.Auto)
	if err != nil {
		return "", fmt.Errorf("qr: codificar: %w", err)
	}
	code, err = barcode.Scale(code, g.size, g.size)
	if err != nil {
		return "", fmt.Errorf("qr: escalar: %w", err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, code); err != nil {
		return "", fmt.Errorf("qr: png: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
