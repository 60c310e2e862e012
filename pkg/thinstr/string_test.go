package thinstr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/thindst/thin"
	"github.com/joshuapare/thindst/thin/alloc"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		runes int
	}{
		{"empty", "", 0},
		{"ascii", "Software", 8},
		{"multibyte", "Grüße, 世界", 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.in)
			require.NoError(t, err)
			defer s.Release()

			assert.Equal(t, tt.in, s.String())
			assert.Equal(t, len(tt.in), s.Len())
			assert.Equal(t, tt.runes, s.Runes())
			assert.Equal(t, UTF8, s.Encoding())
		})
	}
}

func TestNewRejectsInvalidUTF8(t *testing.T) {
	_, err := New("\xff\xfe")
	require.ErrorIs(t, err, ErrInvalidUTF8)

	_, err = FromBytes([]byte{0xc3})
	require.ErrorIs(t, err, ErrInvalidUTF8)
}

func TestZeroString(t *testing.T) {
	var s String
	require.True(t, s.IsNil())
	require.Empty(t, s.String())
	require.Zero(t, s.Runes())
	require.Equal(t, UTF8, s.Encoding())
	s.Release()
}

func TestCloneShares(t *testing.T) {
	s, err := New("shared")
	require.NoError(t, err)
	c := s.Clone()

	require.Equal(t, int64(2), s.RefCount())
	require.True(t, s.Equal(c))
	require.Equal(t, &s.Bytes()[0], &c.Bytes()[0], "clones share one block")

	c.Release()
	require.Equal(t, int64(1), s.RefCount())
	s.Release()
}

func TestEqual(t *testing.T) {
	a, _ := New("key")
	b, _ := FromBytes([]byte("key"))
	c, _ := New("Key")
	defer a.Release()
	defer b.Release()
	defer c.Release()

	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
}

func TestStringsInsideBlocks(t *testing.T) {
	a, err := New("a")
	require.NoError(t, err)

	list, err := thin.New(uint8(0), []String{a.Clone(), a.Clone()})
	require.NoError(t, err)
	require.Equal(t, int64(3), a.RefCount())

	list.Release()
	require.Equal(t, int64(1), a.RefCount())
	a.Release()
}

func TestMappedStrings(t *testing.T) {
	s, err := New("off heap", thin.WithAllocator(alloc.MappedID))
	require.NoError(t, err)
	require.Equal(t, "off heap", s.String())
	s.Release()
}
