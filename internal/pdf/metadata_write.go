package pdf

import (
	"strings"
	"time"
)

// MetadataFields carries the user supplied overrides for WriteMetadata.
// Empty fields leave the document untouched.
type MetadataFields struct {
	Title        string
	Author       string
	Subject      string
	Keywords     string
	Creator      string
	Producer     string
	CreationDate string
	ModDate      string
}

// WriteMetadata applies fields to doc. Dates are validated before anything
// is written, so an ErrInvalidDate leaves doc unchanged.
func WriteMetadata(doc *Document, fields MetadataFields) error {
	var created, modified time.Time
	var err error
	if s := strings.TrimSpace(fields.CreationDate); s != "" {
		if created, err = ParseInputDate(s); err != nil {
			return err
		}
	}
	if s := strings.TrimSpace(fields.ModDate); s != "" {
		if modified, err = ParseInputDate(s); err != nil {
			return err
		}
	}

	setters := []struct {
		value string
		set   func(string) error
	}{
		{fields.Title, doc.SetTitle},
		{fields.Author, doc.SetAuthor},
		{fields.Subject, doc.SetSubject},
		{fields.Creator, doc.SetCreator},
		{fields.Producer, doc.SetProducer},
	}
	for _, s := range setters {
		if v := strings.TrimSpace(s.value); v != "" {
			if err := s.set(v); err != nil {
				return err
			}
		}
	}

	if kw := splitKeywords(fields.Keywords); len(kw) > 0 {
		if err := doc.SetKeywords(strings.Join(kw, ", ")); err != nil {
			return err
		}
	}

	if !created.IsZero() {
		if err := doc.SetCreationDate(created); err != nil {
			return err
		}
	}
	if !modified.IsZero() {
		if err := doc.SetModDate(modified); err != nil {
			return err
		}
	}
	return nil
}

func splitKeywords(s string) []string {
	var kw []string
	for _, tok := range strings.Split(s, ",") {
		if tok = strings.TrimSpace(tok); tok != "" {
			kw = append(kw, tok)
		}
	}
	return kw
}
