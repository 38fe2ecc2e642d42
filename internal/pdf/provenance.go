package pdf

// Branding holds the fixed values written by the Stamper.
type Branding struct {
	Producer string
	Creator  string
	Title    string
	Comment  string
}

func DefaultBranding() Branding {
	return Branding{
		Producer: "Metadata-API",
		Creator:  "Metadata-API",
		Title:    "Metadata-API Document",
		Comment:  "Processed by Metadata-API",
	}
}

// Stamper brands documents leaving the watermark pipeline. It always
// replaces the caller's Title.
type Stamper struct {
	branding Branding
}

func NewStamper(b Branding) *Stamper {
	return &Stamper{branding: b}
}

func (s *Stamper) Stamp(doc *Document) error {
	if err := doc.EnsureInfo(); err != nil {
		return err
	}

	raw := []struct{ key, value string }{
		{"Producer", s.branding.Producer},
		{"Creator", s.branding.Creator},
		{"Comments", s.branding.Comment},
	}
	for _, e := range raw {
		if err := doc.SetInfoText(e.key, e.value); err != nil {
			return err
		}
	}

	if err := doc.SetProducer(s.branding.Producer); err != nil {
		return err
	}
	if err := doc.SetCreator(s.branding.Creator); err != nil {
		return err
	}
	return doc.SetTitle(s.branding.Title)
}
