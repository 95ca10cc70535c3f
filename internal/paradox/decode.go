// # internal/paradox/decode.go
package paradox

import (
	"bytes"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DecodeFile reads a Paradox script file as UTF-8 (BOM tolerated) and falls
// back to Windows-1252 when the bytes are not valid UTF-8, matching the
// encoding mix found in real mod corpora.
func DecodeFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return Decode(data)
}

// Decode converts raw file bytes to a string using the same BOM/legacy
// fallback rules as DecodeFile. The fallback is total: Windows-1252 assigns
// a rune to every byte value (undefined code points become replacement
// runes), so decoding in-memory bytes never fails. The error return exists
// for symmetry with DecodeFile, whose read step can fail.
func Decode(data []byte) (string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if utf8.Valid(data) {
		return string(data), nil
	}
	decoded, _ := charmap.Windows1252.NewDecoder().Bytes(data)
	return string(decoded), nil
}
