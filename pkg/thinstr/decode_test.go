package thinstr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeWindows1252(t *testing.T) {
	tests := []struct {
		name  string
		in    []byte
		want  string
		runes int
	}{
		{"ascii", []byte("ControlSet001"), "ControlSet001", 13},
		{"latin", []byte{'c', 'a', 'f', 0xe9}, "café", 4},
		{"euro", []byte{0x80, '5'}, "€5", 2},
		{"empty", nil, "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := DecodeWindows1252(tt.in)
			require.NoError(t, err)
			defer s.Release()

			require.Equal(t, tt.want, s.String())
			require.Equal(t, tt.runes, s.Runes())
			require.Equal(t, Windows1252, s.Encoding())

			back, err := EncodeWindows1252(s)
			require.NoError(t, err)
			require.Equal(t, string(tt.in), string(back))
		})
	}
}

func TestEncodeWindows1252Unmappable(t *testing.T) {
	s, err := New("世")
	require.NoError(t, err)
	defer s.Release()

	_, err = EncodeWindows1252(s)
	require.Error(t, err)
}

func TestDecodeUTF16LE(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"ascii", []byte{'R', 0, 'u', 0, 'n', 0}, "Run"},
		{"terminated", []byte{'R', 0, 'u', 0, 'n', 0, 0, 0}, "Run"},
		{"bmp", []byte{0xfc, 0x00, 0x16, 0x4e}, "ü世"},
		{"surrogate pair", []byte{0x3d, 0xd8, 0x00, 0xde}, "😀"},
		{"empty", []byte{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := DecodeUTF16LE(tt.in)
			require.NoError(t, err)
			defer s.Release()

			require.Equal(t, tt.want, s.String())
			require.Equal(t, UTF16LE, s.Encoding())
		})
	}
}

func TestDecodeUTF16LEOddLength(t *testing.T) {
	_, err := DecodeUTF16LE([]byte{'a', 0, 'b'})
	require.ErrorIs(t, err, ErrOddLength)
}

func TestEncodingString(t *testing.T) {
	require.Equal(t, "utf-8", UTF8.String())
	require.Equal(t, "windows-1252", Windows1252.String())
	require.Equal(t, "utf-16le", UTF16LE.String())
	require.Equal(t, "encoding(9)", Encoding(9).String())
}
