// Package pdftest builds small in-memory PDF and image fixtures for tests.
package pdftest

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"sort"
)

// Options control the generated document.
type Options struct {
	Pages   int
	Version string
	// Info entries are written as literal strings. A nil map omits the
	// Info dictionary entirely.
	Info map[string]string
}

// PDF returns a valid PDF with US Letter pages and a classic xref table.
func PDF(opts Options) []byte {
	if opts.Pages < 1 {
		opts.Pages = 1
	}
	if opts.Version == "" {
		opts.Version = "1.7"
	}

	// 1: catalog, 2: pages, then page/content pairs, then Info.
	var objs []string
	objs = append(objs, "<< /Type /Catalog /Pages 2 0 R >>")

	kids := &bytes.Buffer{}
	for i := 0; i < opts.Pages; i++ {
		fmt.Fprintf(kids, "%d 0 R ", 3+2*i)
	}
	objs = append(objs, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", kids.String(), opts.Pages))

	for i := 0; i < opts.Pages; i++ {
		content := fmt.Sprintf("BT /F1 12 Tf 72 720 Td (Page %d) Tj ET", i+1)
		objs = append(objs,
			fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] "+
				"/Resources << /Font << /F1 << /Type /Font /Subtype /Type1 /BaseFont /Helvetica >> >> >> "+
				"/Contents %d 0 R >>", 4+2*i),
			fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content),
		)
	}

	infoID := 0
	if opts.Info != nil {
		keys := make([]string, 0, len(opts.Info))
		for k := range opts.Info {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		d := &bytes.Buffer{}
		d.WriteString("<<")
		for _, k := range keys {
			fmt.Fprintf(d, " /%s (%s)", k, opts.Info[k])
		}
		d.WriteString(" >>")
		objs = append(objs, d.String())
		infoID = len(objs)
	}

	var b bytes.Buffer
	fmt.Fprintf(&b, "%%PDF-%s\n%%\xe2\xe3\xcf\xd3\n", opts.Version)
	offsets := make([]int, len(objs))
	for i, o := range objs {
		offsets[i] = b.Len()
		fmt.Fprintf(&b, "%d 0 obj\n%s\nendobj\n", i+1, o)
	}

	xref := b.Len()
	fmt.Fprintf(&b, "xref\n0 %d\n0000000000 65535 f\r\n", len(objs)+1)
	for _, off := range offsets {
		fmt.Fprintf(&b, "%010d 00000 n\r\n", off)
	}
	fmt.Fprintf(&b, "trailer\n<< /Size %d /Root 1 0 R", len(objs)+1)
	if infoID > 0 {
		fmt.Fprintf(&b, " /Info %d 0 R", infoID)
	}
	fmt.Fprintf(&b, " >>\nstartxref\n%d\n%%%%EOF\n", xref)
	return b.Bytes()
}

func solid(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 30, B: 30, A: 255})
		}
	}
	return img
}

func PNG(w, h int) []byte {
	var b bytes.Buffer
	if err := png.Encode(&b, solid(w, h)); err != nil {
		panic(err)
	}
	return b.Bytes()
}

func JPEG(w, h int) []byte {
	var b bytes.Buffer
	if err := jpeg.Encode(&b, solid(w, h), nil); err != nil {
		panic(err)
	}
	return b.Bytes()
}
