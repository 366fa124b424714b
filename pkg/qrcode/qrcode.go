package qrcode

import (
	"encoding/base64"
	"errors"
	"strings"

	skipqrcode "github.com/skip2/go-qrcode"
)

var (
	ErrEmptyContent = errors.New("qr code content cannot be empty")
	ErrInvalidSize  = errors.New("qr code size out of range")
	ErrEncode       = errors.New("failed to encode qr code")
)

// Size bounds in pixels.
const (
	DefaultSize = 256
	MinSize     = 64
	MaxSize     = 1024
)

// Generate encodes content as a size x size PNG. Size 0 selects DefaultSize.
func Generate(content string, size int) ([]byte, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	if size == 0 {
		size = DefaultSize
	}
	if size < MinSize || size > MaxSize {
		return nil, ErrInvalidSize
	}
	png, err := skipqrcode.Encode(content, skipqrcode.Medium, size)
	if err != nil {
		return nil, errors.Join(ErrEncode, err)
	}
	return png, nil
}

// DataURI is like Generate but returns a data:image/png;base64 URI for
// inline <img> tags.
func DataURI(content string, size int) (string, error) {
	png, err := Generate(content, size)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
