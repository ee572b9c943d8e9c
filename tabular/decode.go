package tabular

import (
	"bytes"
	"errors"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/japanese"
)

var errUnmappable = errors.New("shift_jis: unmappable byte sequence")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Decode converts a CSV payload to text: Shift-JIS first, UTF-8 on failure.
func Decode(b []byte) string {
	if s, err := decodeShiftJIS(b); err == nil {
		return s
	}
	return decodeUTF8(b)
}

// decodeShiftJIS fails instead of substituting U+FFFD for bytes the decoder
// cannot map.
func decodeShiftJIS(b []byte) (string, error) {
	out, err := japanese.ShiftJIS.NewDecoder().Bytes(b)
	if err != nil {
		return "", err
	}
	if bytes.ContainsRune(out, utf8.RuneError) {
		return "", errUnmappable
	}
	return string(out), nil
}

func decodeUTF8(b []byte) string {
	b = bytes.TrimPrefix(b, utf8BOM)
	if utf8.Valid(b) {
		return string(b)
	}
	return strings.ToValidUTF8(string(b), "�")
}
