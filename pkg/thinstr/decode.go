package thinstr

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/joshuapare/thindst/thin"
)

// ErrOddLength indicates UTF-16 input with an odd number of bytes.
var ErrOddLength = errors.New("thinstr: utf-16 input has odd length")

// DecodeWindows1252 decodes b from Windows-1252 into a String.
func DecodeWindows1252(b []byte, opts ...thin.Option) (String, error) {
	// ASCII is identical in Windows-1252 and UTF-8.
	if isASCII(b) {
		return build(Info{Source: Windows1252, Runes: len(b)}, b, opts)
	}
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(b)
	if err != nil {
		return String{}, fmt.Errorf("thinstr: decode windows-1252: %w", err)
	}
	return fromDecoded(Windows1252, decoded, opts)
}

// DecodeUTF16LE decodes little-endian UTF-16 into a String. A trailing NUL
// code unit is dropped. Unpaired surrogates become U+FFFD.
func DecodeUTF16LE(b []byte, opts ...thin.Option) (String, error) {
	if len(b)%2 != 0 {
		return String{}, ErrOddLength
	}
	if n := len(b); n >= 2 && b[n-2] == 0 && b[n-1] == 0 {
		b = b[:n-2]
	}
	dec := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
	decoded, err := dec.Bytes(b)
	if err != nil {
		return String{}, fmt.Errorf("thinstr: decode utf-16le: %w", err)
	}
	return fromDecoded(UTF16LE, decoded, opts)
}

// EncodeWindows1252 encodes s back to Windows-1252. Runes outside the code
// page are an error.
func EncodeWindows1252(s String) ([]byte, error) {
	if isASCII(s.Bytes()) {
		return append([]byte(nil), s.Bytes()...), nil
	}
	out, err := charmap.Windows1252.NewEncoder().Bytes(s.Bytes())
	if err != nil {
		return nil, fmt.Errorf("thinstr: encode windows-1252: %w", err)
	}
	return out, nil
}

func fromDecoded(src Encoding, decoded []byte, opts []thin.Option) (String, error) {
	if !utf8.Valid(decoded) {
		return String{}, ErrInvalidUTF8
	}
	return build(Info{Source: src, Runes: utf8.RuneCount(decoded)}, decoded, opts)
}

func isASCII(b []byte) bool {
	for _, c := range b {
		if c >= 0x80 {
			return false
		}
	}
	return true
}
