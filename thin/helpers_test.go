package thin

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/thindst/thin/alloc"
)

// counting backs every block built with countingID so tests can prove each
// block is freed exactly once.
var (
	counting   = alloc.NewCounting(alloc.Heap{})
	countingID = alloc.Register(counting)
)

// dropLog records drop events in the order they happen.
type dropLog struct {
	mu     sync.Mutex
	events []string
}

func (l *dropLog) add(ev string) {
	l.mu.Lock()
	l.events = append(l.events, ev)
	l.mu.Unlock()
}

func (l *dropLog) all() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.events...)
}

type trackedHead struct {
	name string
	log  *dropLog
}

func (h *trackedHead) Drop() { h.log.add("head:" + h.name) }

type tracked struct {
	id  int
	log *dropLog
}

func (e *tracked) Drop() { e.log.add(fmt.Sprintf("elem:%d", e.id)) }

func trackedElems(log *dropLog, n int) []tracked {
	out := make([]tracked, n)
	for i := range out {
		out[i] = tracked{id: i, log: log}
	}
	return out
}

func elemEvents(ids ...int) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = fmt.Sprintf("elem:%d", id)
	}
	return out
}

func seqIDs(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// expectNoLeak fails the test if the counting allocator has more live blocks
// at the end of the test than at its start.
func expectNoLeak(t *testing.T) {
	t.Helper()
	before := counting.Live()
	t.Cleanup(func() {
		require.Equal(t, before, counting.Live(), "blocks leaked or double freed")
	})
}
