package qr

import (
	"fmt"
	"os"
	"path/filepath"

	qrcode "github.com/skip2/go-qrcode"
)

// Issuer renders scannable images identifying a user at point of sale.
type Issuer interface {
	Generate(payload, dir, filename string) (string, error)
	Read(path string) ([]byte, error)
	Remove(path string) error
}

// PNGIssuer writes QR codes as PNG files on the local filesystem.
type PNGIssuer struct {
	size int
}

// NewPNGIssuer creates an issuer rendering images of size pixels per side.
func NewPNGIssuer(size int) *PNGIssuer {
	if size <= 0 {
		size = 256
	}
	return &PNGIssuer{size: size}
}

// Generate renders payload into dir/filename.png, creating the directory
// when absent, and returns the resulting path.
func (i *PNGIssuer) Generate(payload, dir, filename string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create qr directory: %w", err)
	}

	path := filepath.Join(dir, filename+".png")
	if err := qrcode.WriteFile(payload, qrcode.Medium, i.size, path); err != nil {
		return "", fmt.Errorf("write qr image: %w", err)
	}
	return path, nil
}

// Read returns the image bytes stored at path.
func (i *PNGIssuer) Read(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Remove deletes a previously generated image. A missing file is not an
// error: registration rollback may race with nothing having been written.
func (i *PNGIssuer) Remove(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
