// Package textsource turns files and streams into validated UTF-8 text for
// word counting. It is the encoding boundary: anything it returns is valid
// UTF-8, and anything it cannot decode is rejected with an *Error.
package textsource

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	xunicode "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Format selects how raw input bytes are converted to text.
type Format string

const (
	FormatAuto Format = "auto"
	FormatText Format = "text"
	FormatHTML Format = "html"
	FormatPDF  Format = "pdf"
)

// DefaultMaxBytes caps how much of a single input is read.
const DefaultMaxBytes int64 = 64 << 20

// StdinName is the input name that selects standard input.
const StdinName = "-"

// ParseFormat maps a format name to a Format (case-insensitive).
// The empty string is treated as auto.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatAuto, nil
	case FormatAuto, FormatText, FormatHTML, FormatPDF:
		return f, nil
	default:
		return "", fmt.Errorf("invalid input format: %s (valid: auto, text, html, pdf)", s)
	}
}

// DetectFormat picks a format from a file name's extension.
func DetectFormat(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".html", ".htm", ".xhtml":
		return FormatHTML
	case ".pdf":
		return FormatPDF
	default:
		return FormatText
	}
}

// Options controls how an input is read.
type Options struct {
	// Format is the input format; FormatAuto (or "") detects it from the name.
	Format Format

	// MaxBytes is the largest input accepted; <= 0 means DefaultMaxBytes.
	MaxBytes int64
}

// Document is the text extracted from one input.
type Document struct {
	Name   string
	Format Format
	Size   int64
	Text   string
}

// Load reads the named file, or standard input when path is StdinName.
func Load(path string, opts Options) (*Document, error) {
	if path == StdinName {
		return Read(StdinName, os.Stdin, opts)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, newError(KindIO, path, err)
	}
	defer f.Close()

	return Read(path, f, opts)
}

// Read extracts text from r. name is used for format detection and error
// messages.
func Read(name string, r io.Reader, opts Options) (*Document, error) {
	limit := opts.MaxBytes
	if limit <= 0 {
		limit = DefaultMaxBytes
	}

	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, newError(KindIO, name, err)
	}
	if int64(len(data)) > limit {
		return nil, newErrorf(KindTooLarge, name, "exceeds %d bytes", limit)
	}

	format := opts.Format
	if format == "" || format == FormatAuto {
		format = DetectFormat(name)
	}

	var text string
	switch format {
	case FormatText:
		text, err = decode(name, data)
	case FormatHTML:
		text, err = extractHTML(name, data)
	case FormatPDF:
		text, err = extractPDF(name, data)
	default:
		err = newErrorf(KindFormat, name, "unsupported format %q", format)
	}
	if err != nil {
		return nil, err
	}

	return &Document{Name: name, Format: format, Size: int64(len(data)), Text: text}, nil
}

var (
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// decode converts data to a UTF-8 string. A UTF-8 byte-order mark is
// stripped and UTF-16 input with a byte-order mark is transcoded; anything
// else must already be valid UTF-8.
func decode(name string, data []byte) (string, error) {
	switch {
	case bytes.HasPrefix(data, bomUTF16LE):
		if !validUTF16(data, binary.LittleEndian) {
			return "", newErrorf(KindEncoding, name, "input is not valid UTF-16LE")
		}
	case bytes.HasPrefix(data, bomUTF16BE):
		if !validUTF16(data, binary.BigEndian) {
			return "", newErrorf(KindEncoding, name, "input is not valid UTF-16BE")
		}
	case !utf8.Valid(data):
		return "", newErrorf(KindEncoding, name, "input is not valid UTF-8")
	}

	out, _, err := transform.Bytes(xunicode.BOMOverride(xunicode.UTF8.NewDecoder()), data)
	if err != nil {
		return "", newError(KindEncoding, name, err)
	}
	if !utf8.Valid(out) {
		return "", newErrorf(KindEncoding, name, "decoded input is not valid UTF-8")
	}
	return string(out), nil
}

// validUTF16 reports whether data, byte-order mark included, holds whole
// code units with every surrogate paired. The decoder would otherwise
// substitute U+FFFD silently.
func validUTF16(data []byte, order binary.ByteOrder) bool {
	if len(data)%2 != 0 {
		return false
	}
	for i := 2; i < len(data); i += 2 {
		u := rune(order.Uint16(data[i:]))
		if !utf16.IsSurrogate(u) {
			continue
		}
		if i+4 > len(data) {
			return false
		}
		if utf16.DecodeRune(u, rune(order.Uint16(data[i+2:]))) == utf8.RuneError {
			return false
		}
		i += 2
	}
	return true
}
