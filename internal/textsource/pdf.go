package textsource

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

// extractPDF returns the plain text of every page, separated by newlines.
func extractPDF(name string, data []byte) (text string, err error) {
	// The pdf reader panics on some malformed cross-reference tables.
	defer func() {
		if r := recover(); r != nil {
			text, err = "", newErrorf(KindFormat, name, "malformed pdf: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", newError(KindFormat, name, err)
	}

	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		pageText, err := p.GetPlainText(nil)
		if err != nil {
			return "", newError(KindFormat, name, fmt.Errorf("page %d: %w", i, err))
		}
		b.WriteString(pageText)
		b.WriteByte('\n')
	}

	out := b.String()
	if !utf8.ValidString(out) {
		return "", newErrorf(KindEncoding, name, "pdf text is not valid UTF-8")
	}
	return out, nil
}
