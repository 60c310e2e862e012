package thin

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFatRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		fat  Fat[string, int]
	}{
		{"six", Fat[string, int]{Head: "numbers", Tail: []int{0, 1, 2, 3, 4, 5}}},
		{"empty", Fat[string, int]{Head: "none", Tail: []int{}}},
		{"nil", Fat[string, int]{Head: "none"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectNoLeak(t)
			b, err := FromFat(tt.fat, WithAllocator(countingID))
			require.NoError(t, err)
			require.Equal(t, len(tt.fat.Tail), b.Len())

			got := b.IntoFat()
			require.True(t, b.IsNil())
			require.Equal(t, tt.fat.Head, got.Head)
			require.NotNil(t, got.Tail)
			require.Len(t, got.Tail, len(tt.fat.Tail))
			for i := range tt.fat.Tail {
				require.Equal(t, tt.fat.Tail[i], got.Tail[i])
			}
		})
	}
}

func TestIntoFatDoesNotDrop(t *testing.T) {
	expectNoLeak(t)
	log := &dropLog{}

	b, err := New(trackedHead{name: "h", log: log}, trackedElems(log, 3), WithAllocator(countingID))
	require.NoError(t, err)

	f := b.IntoFat()
	require.Empty(t, log.all(), "values moved out, not dropped")
	require.Equal(t, "h", f.Head.name)
	require.Equal(t, 2, f.Tail[2].id)
	require.Same(t, log, f.Tail[0].log)
}

func TestArcIntoFat(t *testing.T) {
	t.Run("unique moves", func(t *testing.T) {
		expectNoLeak(t)
		clones := 0
		log := &dropLog{}
		a, err := ArcFromFat(Fat[cloneCounter, cloneCounter]{
			Head: cloneCounter{clones: &clones, log: log},
			Tail: []cloneCounter{{clones: &clones, log: log}},
		}, WithAllocator(countingID))
		require.NoError(t, err)

		f := a.IntoFat()
		require.True(t, a.IsNil())
		require.Zero(t, clones)
		require.Empty(t, log.all())
		require.Len(t, f.Tail, 1)
	})

	t.Run("shared clones", func(t *testing.T) {
		expectNoLeak(t)
		clones := 0
		log := &dropLog{}
		a, err := ArcFromFat(Fat[cloneCounter, cloneCounter]{
			Head: cloneCounter{clones: &clones, log: log},
			Tail: []cloneCounter{{clones: &clones, log: log}, {clones: &clones, log: log}},
		}, WithAllocator(countingID))
		require.NoError(t, err)
		b := a.Clone()

		f := a.IntoFat()
		require.True(t, a.IsNil())
		require.Equal(t, 3, clones)
		require.Len(t, f.Tail, 2)
		require.Equal(t, int64(1), b.RefCount(), "the converted handle was released")
		require.Empty(t, log.all(), "the block is still alive")

		b.Release()
		require.Len(t, log.all(), 3)
	})

	t.Run("nil", func(t *testing.T) {
		var a Arc[int, int]
		f := a.IntoFat()
		require.NotNil(t, f.Tail)
		require.Empty(t, f.Tail)
	})
}

func TestRcIntoFat(t *testing.T) {
	expectNoLeak(t)
	r, err := RcFromFat(Fat[int, string]{Head: 1, Tail: []string{"a", "b"}}, WithAllocator(countingID))
	require.NoError(t, err)
	s := r.Clone()

	f := r.IntoFat()
	require.Equal(t, Fat[int, string]{Head: 1, Tail: []string{"a", "b"}}, f)
	require.Equal(t, int64(1), s.RefCount())

	g := s.IntoFat()
	require.Equal(t, f, g)
}

func TestNestedHandles(t *testing.T) {
	expectNoLeak(t)
	inner := mustArc(t, "inner", []int{1})

	outer, err := New(0, []Arc[string, int]{inner.Clone(), inner.Clone()}, WithAllocator(countingID))
	require.NoError(t, err)
	require.Equal(t, int64(3), inner.RefCount())

	c := outer.Clone()
	require.Equal(t, int64(5), inner.RefCount(), "cloning the outer block clones each handle")

	c.Release()
	outer.Release()
	require.Equal(t, int64(1), inner.RefCount())
	inner.Release()
}
