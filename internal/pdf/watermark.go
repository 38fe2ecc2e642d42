package pdf

import (
	"fmt"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/font"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// Shadow text is drawn this far right of and below the primary run.
const shadowOffset = 2

// WatermarkImage is an image resolved once per request and drawn on every page.
type WatermarkImage struct {
	Path   string // PNG or JPEG file pdfcpu reads the image from
	Width  int
	Height int
}

// WatermarkSpec describes one watermark request. Build it with the Parse*
// helpers so numeric fields are already coerced.
type WatermarkSpec struct {
	Text     string
	Image    *WatermarkImage
	FontName string
	FontSize int
	Color    string
	Position Position
	Scale    float64
	Shadow   bool
	Rotation float64
	Opacity  float64
}

// HasContent reports whether there is anything to draw.
func (s WatermarkSpec) HasContent() bool {
	return strings.TrimSpace(s.Text) != "" || s.Image != nil
}

func (s WatermarkSpec) validate() (RGB, error) {
	if !s.HasContent() {
		return RGB{}, ErrMissingWatermarkContent
	}
	if strings.TrimSpace(s.Text) == "" {
		return RGB{}, nil
	}
	return HexToRGB(s.Color)
}

type OpKind int

const (
	TextOp OpKind = iota
	ImageOp
)

// DrawOperation is one text run or image placement on one page. Origin is
// the lower left corner of the content in page space, Width and Height its
// unrotated extent. Rotation turns the content about its center.
type DrawOperation struct {
	Kind     OpKind
	Origin   Point
	Rotation float64
	Opacity  float64

	Text     string
	FontName string
	FontSize int
	Color    RGB

	ImagePath string
	Scale     float64

	Width  float64
	Height float64
}

// Center is the midpoint of the content's unrotated box.
func (op DrawOperation) Center() Point {
	return Point{op.Origin.X + op.Width/2, op.Origin.Y + op.Height/2}
}

// PlanPage computes the draw operations for a page of the given size.
// Text is centered by subtracting half the font size on both axes, which
// approximates the visual center without measuring glyphs.
func PlanPage(spec WatermarkSpec, color RGB, pageWidth, pageHeight float64) []DrawOperation {
	anchor := AnchorFor(spec.Position, pageWidth, pageHeight)
	opacity := clampOpacity(spec.Opacity)
	var ops []DrawOperation

	if text := strings.TrimSpace(spec.Text); text != "" {
		half := float64(spec.FontSize) / 2
		origin := Point{anchor.X - half, anchor.Y - half}
		run := DrawOperation{
			Kind:     TextOp,
			Origin:   origin,
			Rotation: spec.Rotation,
			Opacity:  opacity,
			Text:     text,
			FontName: spec.FontName,
			FontSize: spec.FontSize,
			Color:    color,
			Width:    font.TextWidth(text, spec.FontName, spec.FontSize),
			Height:   font.LineHeight(spec.FontName, spec.FontSize),
		}
		if spec.Shadow {
			shadow := run
			shadow.Origin = Point{origin.X + shadowOffset, origin.Y - shadowOffset}
			shadow.Color = black
			shadow.Opacity = opacity / 2
			ops = append(ops, shadow)
		}
		ops = append(ops, run)
	}

	if img := spec.Image; img != nil {
		w := float64(img.Width) * spec.Scale
		h := float64(img.Height) * spec.Scale
		ops = append(ops, DrawOperation{
			Kind:      ImageOp,
			Origin:    Point{anchor.X - w/2, anchor.Y - h/2},
			Rotation:  spec.Rotation,
			Opacity:   opacity,
			ImagePath: img.Path,
			Scale:     spec.Scale,
			Width:     w,
			Height:    h,
		})
	}
	return ops
}

// watermark translates op into a pdfcpu stamp. The stamp is anchored at the
// page center and shifted so its center lands on op.Center.
func (op DrawOperation) watermark(pageWidth, pageHeight float64) (*model.Watermark, error) {
	var (
		wm  *model.Watermark
		err error
	)
	switch op.Kind {
	case ImageOp:
		desc := fmt.Sprintf("pos:c, scale:%.4f abs, rot:%.2f, op:%.3f", op.Scale, op.Rotation, op.Opacity)
		wm, err = pdfcpu.ParseImageWatermarkDetails(op.ImagePath, desc, true, types.POINTS)
	default:
		desc := fmt.Sprintf("fontname:%s, points:%d, fillcolor:%s, pos:c, scale:1 abs, rot:%.2f, op:%.3f",
			op.FontName, op.FontSize, op.Color.Hex(), op.Rotation, op.Opacity)
		wm, err = pdfcpu.ParseTextWatermarkDetails(op.Text, desc, true, types.POINTS)
	}
	if err != nil {
		return nil, err
	}

	c := op.Center()
	wm.Dx = c.X - pageWidth/2
	wm.Dy = c.Y - pageHeight/2
	return wm, nil
}

// ApplyWatermark stamps spec onto every page of doc.
func ApplyWatermark(doc *Document, spec WatermarkSpec) error {
	color, err := spec.validate()
	if err != nil {
		return err
	}

	dims, err := doc.PageDims()
	if err != nil {
		return err
	}

	m := make(map[int][]*model.Watermark, len(dims))
	for i, dim := range dims {
		for _, op := range PlanPage(spec, color, dim.Width, dim.Height) {
			wm, err := op.watermark(dim.Width, dim.Height)
			if err != nil {
				return fmt.Errorf("%w: page %d: %v", ErrUnhandledLibrary, i+1, err)
			}
			m[i+1] = append(m[i+1], wm)
		}
	}
	if len(m) == 0 {
		return nil
	}

	if err := pdfcpu.AddWatermarksSliceMap(doc.ctx, m); err != nil {
		return fmt.Errorf("%w: %v", ErrUnhandledLibrary, err)
	}
	return nil
}
