// Package textenc maps encoding names to golang.org/x/text encodings and
// converts between encoded bytes and runes.
package textenc

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

var (
	// ErrUnknownEncoding is returned by Lookup for unsupported names.
	ErrUnknownEncoding = errors.New("textenc: unknown encoding")

	// ErrInvalidText is returned by DecodeRunes when the input is not valid
	// in the encoding.
	ErrInvalidText = errors.New("textenc: invalid text")
)

var encodings = map[string]encoding.Encoding{
	"utf-8":        unicode.UTF8,
	"utf-16le":     unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
	"utf-16be":     unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
	"windows-1252": charmap.Windows1252,
	"iso-8859-1":   charmap.ISO8859_1,
}

var aliases = map[string]string{
	"":        "utf-8",
	"utf8":    "utf-8",
	"utf16le": "utf-16le",
	"utf16be": "utf-16be",
	"cp1252":  "windows-1252",
	"latin1":  "iso-8859-1",
}

// Names returns the canonical names Lookup accepts, sorted.
func Names() []string {
	names := make([]string, 0, len(encodings))
	for name := range encodings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the encoding registered under name (case-insensitive).
// The empty name selects UTF-8.
func Lookup(name string) (encoding.Encoding, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := aliases[key]; ok {
		key = canonical
	}
	enc, ok := encodings[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q (supported: %s)", ErrUnknownEncoding, name, strings.Join(Names(), ", "))
	}
	return enc, nil
}

// DecodeRunes decodes src with enc into runes. The decoders substitute
// U+FFFD for malformed input, so the result is re-encoded and must
// reproduce src exactly; otherwise ErrInvalidText is returned.
func DecodeRunes(enc encoding.Encoding, src []byte) ([]rune, error) {
	decoded, err := enc.NewDecoder().Bytes(src)
	if err != nil {
		return nil, fmt.Errorf("textenc: decode: %w", err)
	}
	reencoded, err := enc.NewEncoder().Bytes(decoded)
	if err != nil || !bytes.Equal(reencoded, src) {
		return nil, fmt.Errorf("%w: malformed input for the encoding", ErrInvalidText)
	}
	return []rune(string(decoded)), nil
}

// EncodeRunes encodes runes with enc.
func EncodeRunes(enc encoding.Encoding, runes []rune) ([]byte, error) {
	out, err := enc.NewEncoder().Bytes([]byte(string(runes)))
	if err != nil {
		return nil, fmt.Errorf("textenc: encode: %w", err)
	}
	return out, nil
}
