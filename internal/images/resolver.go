package images

import (
	"context"
	"strings"

	"pdf-metadata-api/internal/logging"
)

// Source is everything a watermark request may carry for its image.
type Source struct {
	Upload     []byte // uploaded file contents
	UploadType string // declared content type of the upload
	Field      string // "image" form field: data URL, bare base64 or http(s) URL
}

func (s Source) Empty() bool {
	return len(s.Upload) == 0 && strings.TrimSpace(s.Field) == ""
}

func isRemote(s string) bool {
	l := strings.ToLower(s)
	return strings.HasPrefix(l, "http://") || strings.HasPrefix(l, "https://")
}

type Resolver struct {
	Fetcher *Fetcher
}

func NewResolver(f *Fetcher) *Resolver {
	return &Resolver{Fetcher: f}
}

// Resolve returns the image for src, or nil when there is none.
//
// An uploaded file takes priority and must be a valid PNG or JPEG. Inline and
// remote images are best effort: a failure is logged and resolves to nil so
// the watermark can proceed with text only.
func (r *Resolver) Resolve(ctx context.Context, src Source) (*Image, error) {
	if len(src.Upload) > 0 {
		return Decode(src.Upload, src.UploadType)
	}

	field := strings.TrimSpace(src.Field)
	if field == "" {
		return nil, nil
	}

	var (
		img *Image
		err error
	)
	if isRemote(field) {
		img, err = r.Fetcher.Fetch(ctx, field)
	} else {
		img, err = FromBase64(field)
	}
	if err != nil {
		logging.Logger().Warn("watermark image ignored", "remote", isRemote(field), "error", err)
		return nil, nil
	}
	return img, nil
}
