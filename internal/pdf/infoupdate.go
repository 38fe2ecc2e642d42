package pdf

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"

	digipdf "github.com/digitorus/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// appendInfoUpdate appends an incremental update to raw that redefines the
// trailer's Info object as info.
func appendInfoUpdate(raw []byte, info types.Dict) (out []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("reading trailer: %v", r)
		}
	}()

	rdr, err := digipdf.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return nil, err
	}
	prev, err := lastStartXref(raw)
	if err != nil {
		return nil, err
	}

	trailer := rdr.Trailer()
	size := trailer.Key("Size").Int64()
	root := trailer.Key("Root").GetPtr()
	if root.GetID() == 0 {
		return nil, errors.New("trailer has no Root")
	}

	objID, objGen := size, int64(0)
	if ptr := trailer.Key("Info").GetPtr(); ptr.GetID() != 0 {
		objID, objGen = int64(ptr.GetID()), int64(ptr.GetGen())
	}
	if objID >= size {
		size = objID + 1
	}

	var b bytes.Buffer
	b.Write(raw)
	if !bytes.HasSuffix(raw, []byte("\n")) {
		b.WriteByte('\n')
	}

	objStart := b.Len()
	fmt.Fprintf(&b, "%d %d obj\n%s\nendobj\n", objID, objGen, info.PDFString())

	xrefStart := b.Len()
	fmt.Fprintf(&b, "xref\n%d 1\n%010d %05d n\r\n", objID, objStart, objGen)

	b.WriteString("trailer\n<<")
	fmt.Fprintf(&b, "/Size %d /Root %d %d R /Info %d %d R /Prev %d",
		size, root.GetID(), root.GetGen(), objID, objGen, prev)
	if id := trailer.Key("ID"); id.Kind() == digipdf.Array && id.Len() == 2 {
		fmt.Fprintf(&b, " /ID [<%s> <%s>]",
			hex.EncodeToString([]byte(id.Index(0).RawString())),
			hex.EncodeToString([]byte(id.Index(1).RawString())))
	}
	b.WriteString(">>\n")

	fmt.Fprintf(&b, "startxref\n%d\n%%%%EOF\n", xrefStart)
	return b.Bytes(), nil
}

func lastStartXref(raw []byte) (int64, error) {
	i := bytes.LastIndex(raw, []byte("startxref"))
	if i < 0 {
		return 0, errors.New("missing startxref")
	}
	fields := bytes.Fields(raw[i+len("startxref"):])
	if len(fields) == 0 {
		return 0, errors.New("missing startxref offset")
	}
	return strconv.ParseInt(string(fields[0]), 10, 64)
}

var literalEscaper = strings.NewReplacer(`\`, `\\`, "(", `\(`, ")", `\)`, "\r", `\r`, "\n", `\n`)

// encodeText encodes s as a PDF text string: escaped literal for plain
// ASCII, UTF-16BE with byte order mark otherwise.
func encodeText(s string) types.Object {
	if isASCII(s) {
		return types.StringLiteral(literalEscaper.Replace(s))
	}
	enc := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewEncoder()
	res, _, err := transform.String(enc, s)
	if err != nil {
		return types.StringLiteral(literalEscaper.Replace(s))
	}
	return types.HexLiteral(hex.EncodeToString([]byte(res)))
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
