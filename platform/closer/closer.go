package closer

import (
	"context"
	"errors"
	"sync"

	"github.com/kunalz06/btf-website/platform/logger"
)

type CloseFunc func(ctx context.Context) error

type namedCloser struct {
	name string
	fn   CloseFunc
}

type closer struct {
	mu     sync.Mutex
	items  []namedCloser
	log    *logger.Logger
	closed bool
}

var global = &closer{log: logger.L()}

func SetLogger(l *logger.Logger) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.log = l
}

// AddNamed registers a shutdown hook. Hooks run in reverse registration
// order, mirroring defer semantics.
func AddNamed(name string, fn CloseFunc) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.items = append(global.items, namedCloser{name: name, fn: fn})
}

// CloseAll runs every registered hook once, newest first. The ctx deadline
// bounds the whole shutdown; hooks that outlive it are abandoned with an
// error.
func CloseAll(ctx context.Context) error {
	global.mu.Lock()
	if global.closed {
		global.mu.Unlock()
		return nil
	}
	global.closed = true
	items := global.items
	global.items = nil
	log := global.log
	global.mu.Unlock()

	var errs []error
	for i := len(items) - 1; i >= 0; i-- {
		item := items[i]

		select {
		case <-ctx.Done():
			errs = append(errs, ctx.Err())
			return errors.Join(errs...)
		default:
		}

		if err := item.fn(ctx); err != nil {
			log.Error(ctx, "failed to close",
				logger.String("name", item.name),
				logger.ErrorF(err),
			)
			errs = append(errs, err)
			continue
		}
		log.Info(ctx, "closed", logger.String("name", item.name))
	}

	return errors.Join(errs...)
}
