// Package thinstr provides immutable UTF-8 strings that are shared through a
// single-word handle. The bytes and a small descriptor live in one block, so
// passing a String around costs one word instead of a string header plus
// bookkeeping.
package thinstr

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/joshuapare/thindst/thin"
)

// ErrInvalidUTF8 indicates input that is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("thinstr: invalid UTF-8")

// Encoding names the encoding the text was decoded from.
type Encoding uint8

const (
	UTF8 Encoding = iota
	Windows1252
	UTF16LE
)

func (e Encoding) String() string {
	switch e {
	case UTF8:
		return "utf-8"
	case Windows1252:
		return "windows-1252"
	case UTF16LE:
		return "utf-16le"
	default:
		return fmt.Sprintf("encoding(%d)", uint8(e))
	}
}

// Info is the head of every String block.
type Info struct {
	Source Encoding
	Runes  int
}

// String is a shared, immutable UTF-8 string. Clone hands out another
// reference; every String must be released once.
type String struct {
	a thin.Arc[Info, byte]
}

// New copies s into a String. s must be valid UTF-8.
func New(s string, opts ...thin.Option) (String, error) {
	if !utf8.ValidString(s) {
		return String{}, ErrInvalidUTF8
	}
	return build(Info{Source: UTF8, Runes: utf8.RuneCountInString(s)}, []byte(s), opts)
}

// FromBytes copies b into a String. b must be valid UTF-8.
func FromBytes(b []byte, opts ...thin.Option) (String, error) {
	if !utf8.Valid(b) {
		return String{}, ErrInvalidUTF8
	}
	return build(Info{Source: UTF8, Runes: utf8.RuneCount(b)}, b, opts)
}

func build(info Info, utf8Bytes []byte, opts []thin.Option) (String, error) {
	a, err := thin.NewArc(info, utf8Bytes, opts...)
	if err != nil {
		return String{}, fmt.Errorf("thinstr: %w", err)
	}
	return String{a: a}, nil
}

// IsNil reports whether s holds no block. The zero String is empty and nil.
func (s String) IsNil() bool { return s.a.IsNil() }

// String returns a copy of the text.
func (s String) String() string { return string(s.a.Tail()) }

// Bytes returns the UTF-8 bytes inside the block. They must not be modified.
func (s String) Bytes() []byte { return s.a.Tail() }

// Len returns the length in bytes.
func (s String) Len() int { return s.a.Len() }

// Runes returns the number of runes.
func (s String) Runes() int {
	if s.a.IsNil() {
		return 0
	}
	return s.a.Head().Runes
}

// Encoding returns the encoding the text was decoded from.
func (s String) Encoding() Encoding {
	if s.a.IsNil() {
		return UTF8
	}
	return s.a.Head().Source
}

// Equal reports whether s and o hold the same text.
func (s String) Equal(o String) bool {
	return s.a.Same(o.a) || string(s.Bytes()) == string(o.Bytes())
}

// Clone returns another reference to the same block.
func (s String) Clone() String { return String{a: s.a.Clone()} }

// Release drops this reference. s is empty afterwards.
func (s *String) Release() { s.a.Release() }

// Drop implements thin.Dropper so Strings stored in blocks are released with
// them.
func (s *String) Drop() { s.Release() }

// RefCount returns the number of live references.
func (s String) RefCount() int64 { return s.a.RefCount() }
