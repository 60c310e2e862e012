package thin

import (
	"go.uber.org/zap"

	"github.com/joshuapare/thindst/internal/logger"
	"github.com/joshuapare/thindst/thin/alloc"
)

// Option configures construction of a block.
type Option func(*options)

type options struct {
	alloc alloc.ID
}

// WithAllocator builds the block with the registered allocator id.
// The default is alloc.HeapID.
func WithAllocator(id alloc.ID) Option {
	return func(o *options) { o.alloc = id }
}

func collect(opts []Option) options {
	o := options{alloc: alloc.HeapID}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// SetLogger installs the logger used for rollback and allocator diagnostics.
// A nil logger silences them again.
func SetLogger(l *zap.Logger) {
	logger.Set(l)
}
