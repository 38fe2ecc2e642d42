package images

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// FromBase64 decodes an inline image, either a data URL
// ("data:image/png;base64,....") or a bare base64 payload.
func FromBase64(s string) (*Image, error) {
	s = strings.TrimSpace(s)
	declared := ""
	if strings.HasPrefix(s, "data:") {
		header, payload, ok := strings.Cut(s[len("data:"):], ",")
		if !ok {
			return nil, fmt.Errorf("%w: malformed data URL", ErrUndecodable)
		}
		if !strings.HasSuffix(header, ";base64") {
			return nil, fmt.Errorf("%w: data URL is not base64 encoded", ErrUndecodable)
		}
		declared = strings.TrimSuffix(header, ";base64")
		s = payload
	}

	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		// Some clients strip the padding.
		if data, err = base64.RawStdEncoding.DecodeString(strings.TrimRight(s, "=")); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUndecodable, err)
		}
	}
	return Decode(data, declared)
}
