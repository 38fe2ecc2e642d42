package pdf

import (
	"fmt"
	"time"
)

type Metadata struct {
	Title            string `json:"title,omitempty"`
	Author           string `json:"author,omitempty"`
	Subject          string `json:"subject,omitempty"`
	Keywords         string `json:"keywords,omitempty"`
	Creator          string `json:"creator,omitempty"`
	Producer         string `json:"producer,omitempty"`
	CreationDate     string `json:"creationDate,omitempty"`
	ModificationDate string `json:"modificationDate,omitempty"`
}

// CustomFields are non-standard Info entries written by office suites.
// They only exist in the raw dictionary.
type CustomFields struct {
	Company        string `json:"company,omitempty"`
	Manager        string `json:"manager,omitempty"`
	SourceModified string `json:"sourceModified,omitempty"`
	Category       string `json:"category,omitempty"`
	Comments       string `json:"comments,omitempty"`
}

type Technical struct {
	PageCount  int    `json:"pageCount"`
	FileSizeKB string `json:"fileSizeKB"`
	PDFVersion string `json:"pdfVersion"`
	PageSize   string `json:"pageSize"`
}

type MetadataRecord struct {
	Metadata     Metadata     `json:"metadata"`
	CustomFields CustomFields `json:"customFields"`
	Technical    Technical    `json:"technical"`
}

// ReadMetadata builds the metadata record for doc. raw must be the bytes doc
// was loaded from. Structured values win over raw Info lookups.
func ReadMetadata(doc *Document, raw []byte) MetadataRecord {
	ri := NewRawInfo(raw)

	text := func(structured, key string) string {
		if structured != "" {
			return structured
		}
		s, _ := ri.Get(key)
		return s
	}
	date := func(structured func() (time.Time, bool), key string) string {
		if t, ok := structured(); ok {
			return FormatISO(t)
		}
		if s, ok := ri.Get(key); ok {
			if t, ok := ParseLegacyDate(s); ok {
				return FormatISO(t)
			}
		}
		return ""
	}
	custom := func(key string) string {
		s, _ := ri.Get(key)
		return s
	}

	return MetadataRecord{
		Metadata: Metadata{
			Title:            text(doc.Title(), "Title"),
			Author:           text(doc.Author(), "Author"),
			Subject:          text(doc.Subject(), "Subject"),
			Keywords:         text(doc.Keywords(), "Keywords"),
			Creator:          text(doc.Creator(), "Creator"),
			Producer:         text(doc.Producer(), "Producer"),
			CreationDate:     date(doc.CreationDate, "CreationDate"),
			ModificationDate: date(doc.ModDate, "ModDate"),
		},
		CustomFields: CustomFields{
			Company:        custom("Company"),
			Manager:        custom("Manager"),
			SourceModified: custom("SourceModified"),
			Category:       custom("Category"),
			Comments:       custom("Comments"),
		},
		Technical: technical(doc, len(raw)),
	}
}

func technical(doc *Document, size int) Technical {
	t := Technical{
		PageCount:  doc.PageCount(),
		FileSizeKB: fmt.Sprintf("%.2f", float64(size)/1024),
		PDFVersion: doc.HeaderVersion(),
		PageSize:   unknown,
	}
	if dims, err := doc.PageDims(); err == nil && len(dims) > 0 {
		t.PageSize = fmt.Sprintf("%.2f x %.2f", dims[0].Width, dims[0].Height)
	}
	return t
}
