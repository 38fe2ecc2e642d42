// Package images resolves watermark images from the three places a request
// can carry them: an uploaded file, an inline base64 payload, or a remote URL.
//
// Only PNG and JPEG are accepted. The format is sniffed from the payload's
// magic bytes first and the declared content type second.
package images

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"mime"
	"net/http"
	"strings"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported image format, only PNG and JPEG are allowed")
	ErrUndecodable       = errors.New("image could not be decoded")
	ErrFetch             = errors.New("image fetch failed")
)

type Format int

const (
	FormatUnknown Format = iota
	FormatPNG
	FormatJPEG
)

func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatJPEG:
		return "jpeg"
	}
	return "unknown"
}

// Extension is the file suffix pdfcpu uses to pick an image decoder.
func (f Format) Extension() string {
	switch f {
	case FormatPNG:
		return ".png"
	case FormatJPEG:
		return ".jpg"
	}
	return ""
}

func formatForContentType(ct string) Format {
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		mt = strings.ToLower(strings.TrimSpace(ct))
	}
	switch mt {
	case "image/png":
		return FormatPNG
	case "image/jpeg", "image/jpg", "image/pjpeg":
		return FormatJPEG
	}
	return FormatUnknown
}

// DetectFormat resolves the format of data. declared is the content type the
// client claimed and is only consulted when sniffing is inconclusive.
func DetectFormat(data []byte, declared string) (Format, error) {
	if f := formatForContentType(http.DetectContentType(data)); f != FormatUnknown {
		return f, nil
	}
	if f := formatForContentType(declared); f != FormatUnknown {
		return f, nil
	}
	return FormatUnknown, ErrUnsupportedFormat
}

type Image struct {
	Data   []byte
	Format Format
	Width  int
	Height int
}

// Decode validates data as a PNG or JPEG image and reads its dimensions.
func Decode(data []byte, declared string) (*Image, error) {
	if len(data) == 0 {
		return nil, ErrUndecodable
	}
	f, err := DetectFormat(data, declared)
	if err != nil {
		return nil, err
	}
	cfg, name, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUndecodable, err)
	}
	if name != f.String() {
		return nil, fmt.Errorf("%w: declared %s, decoded %s", ErrUndecodable, f, name)
	}
	if cfg.Width == 0 || cfg.Height == 0 {
		return nil, fmt.Errorf("%w: empty image", ErrUndecodable)
	}
	return &Image{Data: data, Format: f, Width: cfg.Width, Height: cfg.Height}, nil
}
