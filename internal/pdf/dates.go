package pdf

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

const isoLayout = "2006-01-02T15:04:05.000Z07:00"

// Trailing timezone and fractional data are ignored.
var legacyDateRe = regexp.MustCompile(`^D:(\d{4})(\d{2})(\d{2})(\d{2})(\d{2})(\d{2})`)

// ParseLegacyDate parses the D:YYYYMMDDHHmmSS prefix of a PDF date string as UTC.
func ParseLegacyDate(s string) (time.Time, bool) {
	m := legacyDateRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return time.Time{}, false
	}
	t, err := time.Parse("20060102150405", strings.Join(m[1:], ""))
	if err != nil {
		return time.Time{}, false
	}
	return t.UTC(), true
}

// FormatISO renders t the way JavaScript's Date.toISOString does.
func FormatISO(t time.Time) string {
	return t.UTC().Format(isoLayout)
}

func structuredDate(s string) (time.Time, bool) {
	if strings.TrimSpace(s) == "" {
		return time.Time{}, false
	}
	return types.DateTime(s, true)
}

func pdfDate(t time.Time) string {
	return "D:" + t.UTC().Format("20060102150405") + "Z00'00'"
}

var inputDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC1123Z,
	time.RFC1123,
}

// ParseInputDate parses a user supplied date. Values without a zone are taken as UTC.
func ParseInputDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range inputDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	if strings.HasPrefix(s, "D:") {
		if t, ok := types.DateTime(s, true); ok {
			return t, nil
		}
		if t, ok := ParseLegacyDate(s); ok {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}
