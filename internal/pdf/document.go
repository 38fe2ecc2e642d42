// Package pdf implements the PDF operations behind the API: watermark
// compositing, metadata normalization and writing, and provenance stamping.
//
// Functions:
//   - Load: Decodes and validates an uploaded PDF into a Document.
//     Input: raw PDF bytes.
//     Output: *Document, or an error wrapping ErrUnhandledLibrary.
//   - ApplyWatermark: Stamps text and/or an image onto every page.
//   - ReadMetadata: Builds the normalized metadata record for a Document.
//   - WriteMetadata: Applies user supplied metadata overrides.
//   - Stamper.Stamp: Brands a Document's Info dictionary before it is returned.
//
// A Document is owned by a single request and is never shared.
package pdf

import (
	"bytes"
	"fmt"
	"regexp"
	"time"

	pdfapi "github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

const unknown = "Unknown"

var headerRe = regexp.MustCompile(`%PDF-(\d+\.\d+)`)

type Document struct {
	ctx    *model.Context
	header string
}

func newConfiguration() *model.Configuration {
	conf := model.NewDefaultConfiguration()
	// The appended Info update uses a classic xref section.
	conf.WriteObjectStream = false
	conf.WriteXRefStream = false
	return conf
}

func Load(raw []byte) (*Document, error) {
	ctx, err := pdfapi.ReadValidateAndOptimize(bytes.NewReader(raw), newConfiguration())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnhandledLibrary, err)
	}
	return &Document{ctx: ctx, header: headerVersion(raw)}, nil
}

func headerVersion(raw []byte) string {
	head := raw
	if len(head) > 1024 {
		head = head[:1024]
	}
	m := headerRe.FindSubmatch(head)
	if m == nil {
		return unknown
	}
	return string(m[1])
}

func (d *Document) PageCount() int {
	return d.ctx.PageCount
}

// HeaderVersion is the version claimed by the file header, or "Unknown".
func (d *Document) HeaderVersion() string {
	return d.header
}

func (d *Document) PageDims() ([]types.Dim, error) {
	dims, err := d.ctx.PageDims()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnhandledLibrary, err)
	}
	return dims, nil
}

// infoDict returns the document's Info dictionary. When create is set and the
// trailer has none, an empty dictionary is allocated and attached.
func (d *Document) infoDict(create bool) (types.Dict, error) {
	if d.ctx.Info != nil {
		dict, err := d.ctx.DereferenceDict(*d.ctx.Info)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnhandledLibrary, err)
		}
		if dict != nil {
			return dict, nil
		}
	}
	if !create {
		return nil, nil
	}
	dict := types.NewDict()
	ir, err := d.ctx.IndRefForNewObject(dict)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnhandledLibrary, err)
	}
	d.ctx.Info = ir
	return dict, nil
}

// EnsureInfo makes sure the trailer references an Info dictionary.
func (d *Document) EnsureInfo() error {
	_, err := d.infoDict(true)
	return err
}

func (d *Document) setInfo(key string, obj types.Object) error {
	dict, err := d.infoDict(true)
	if err != nil {
		return err
	}
	dict[key] = obj
	return nil
}

// SetInfoText writes a raw text entry into the Info dictionary.
func (d *Document) SetInfoText(key, value string) error {
	return d.setInfo(key, encodeText(value))
}

func (d *Document) SetInfoDate(key string, t time.Time) error {
	return d.setInfo(key, types.StringLiteral(pdfDate(t)))
}

func (d *Document) Title() string    { return d.ctx.XRefTable.Title }
func (d *Document) Author() string   { return d.ctx.XRefTable.Author }
func (d *Document) Subject() string  { return d.ctx.XRefTable.Subject }
func (d *Document) Keywords() string { return d.ctx.XRefTable.Keywords }
func (d *Document) Creator() string  { return d.ctx.XRefTable.Creator }
func (d *Document) Producer() string { return d.ctx.XRefTable.Producer }

func (d *Document) CreationDate() (time.Time, bool) {
	return structuredDate(d.ctx.XRefTable.CreationDate)
}

func (d *Document) ModDate() (time.Time, bool) {
	return structuredDate(d.ctx.XRefTable.ModDate)
}

func (d *Document) SetTitle(s string) error {
	d.ctx.XRefTable.Title = s
	return d.SetInfoText("Title", s)
}

func (d *Document) SetAuthor(s string) error {
	d.ctx.XRefTable.Author = s
	return d.SetInfoText("Author", s)
}

func (d *Document) SetSubject(s string) error {
	d.ctx.XRefTable.Subject = s
	return d.SetInfoText("Subject", s)
}

func (d *Document) SetKeywords(s string) error {
	d.ctx.XRefTable.Keywords = s
	return d.SetInfoText("Keywords", s)
}

func (d *Document) SetCreator(s string) error {
	d.ctx.XRefTable.Creator = s
	return d.SetInfoText("Creator", s)
}

func (d *Document) SetProducer(s string) error {
	d.ctx.XRefTable.Producer = s
	return d.SetInfoText("Producer", s)
}

func (d *Document) SetCreationDate(t time.Time) error {
	d.ctx.XRefTable.CreationDate = pdfDate(t)
	return d.SetInfoDate("CreationDate", t)
}

func (d *Document) SetModDate(t time.Time) error {
	d.ctx.XRefTable.ModDate = pdfDate(t)
	return d.SetInfoDate("ModDate", t)
}

// infoSnapshot copies the Info dictionary with indirect values resolved.
func (d *Document) infoSnapshot() (types.Dict, error) {
	info, err := d.infoDict(false)
	if err != nil || info == nil {
		return nil, err
	}
	snap := types.NewDict()
	for k, v := range info {
		if ir, ok := v.(types.IndirectRef); ok {
			if v, err = d.ctx.Dereference(ir); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrUnhandledLibrary, err)
			}
		}
		if v != nil {
			snap[k] = v
		}
	}
	return snap, nil
}

// Bytes serializes the document. pdfcpu rewrites Producer, CreationDate and
// ModDate while writing, so the Info dictionary as it stood before the write
// is restored with an incremental update. Encrypted documents skip the
// update since its strings would be written in the clear.
func (d *Document) Bytes() ([]byte, error) {
	info, err := d.infoSnapshot()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := pdfapi.WriteContext(d.ctx, &buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnhandledLibrary, err)
	}
	if info == nil || d.Encrypted() {
		return buf.Bytes(), nil
	}

	out, err := appendInfoUpdate(buf.Bytes(), info)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnhandledLibrary, err)
	}
	return out, nil
}

func (d *Document) Encrypted() bool {
	return d.ctx.XRefTable.Encrypt != nil
}
