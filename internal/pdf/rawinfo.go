package pdf

import (
	"bytes"
	"strings"

	digipdf "github.com/digitorus/pdf"
)

// RawInfo looks up entries of the Info dictionary directly from the file
// bytes. Every failure along the trailer -> Info -> value chain reads as an
// absent entry.
type RawInfo struct {
	info digipdf.Value
	ok   bool
}

func NewRawInfo(raw []byte) (ri *RawInfo) {
	ri = &RawInfo{}
	defer func() {
		if recover() != nil {
			ri = &RawInfo{}
		}
	}()

	rdr, err := digipdf.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return ri
	}
	info := rdr.Trailer().Key("Info")
	if info.Kind() != digipdf.Dict {
		return ri
	}
	return &RawInfo{info: info, ok: true}
}

// Get returns the text value stored under key.
func (ri *RawInfo) Get(key string) (s string, found bool) {
	if ri == nil || !ri.ok {
		return "", false
	}
	defer func() {
		if recover() != nil {
			s, found = "", false
		}
	}()

	v := ri.info.Key(key)
	if v.Kind() != digipdf.String {
		return "", false
	}
	s = strings.TrimSpace(v.Text())
	return s, s != ""
}
