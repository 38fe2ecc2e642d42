package pdf

import "errors"

var (
	ErrMissingFile             = errors.New("no PDF file uploaded")
	ErrMissingWatermarkContent = errors.New("please provide watermark text or an image")
	ErrInvalidColor            = errors.New("invalid color")
	ErrInvalidDate             = errors.New("invalid date")
	ErrUnhandledLibrary        = errors.New("pdf processing failed")
)

// IsClientError reports whether err was caused by request input rather than
// by the document or the PDF library.
func IsClientError(err error) bool {
	return errors.Is(err, ErrMissingFile) ||
		errors.Is(err, ErrMissingWatermarkContent) ||
		errors.Is(err, ErrInvalidColor) ||
		errors.Is(err, ErrInvalidDate)
}
