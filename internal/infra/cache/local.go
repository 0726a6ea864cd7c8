package cache

import (
	"context"
	"sync"
	"time"

	"hotel-frontdesk/internal/usecase/queries"
)

// LocalHub is used when Redis is not configured: nothing is cached and
// change notifications only reach subscribers in this process.
type LocalHub struct {
	mu   sync.Mutex
	subs map[chan queries.Change]struct{}
}

func NewLocalHub() *LocalHub {
	return &LocalHub{subs: make(map[chan queries.Change]struct{})}
}

func (h *LocalHub) Stamp(context.Context, ...string) (string, error) {
	return "", nil
}

func (h *LocalHub) Get(context.Context, string, any) (bool, error) {
	return false, nil
}

func (h *LocalHub) Set(context.Context, string, any, ...string) error {
	return nil
}

func (h *LocalHub) Invalidate(_ context.Context, tags ...string) {
	if len(tags) == 0 {
		return
	}
	change := queries.Change{Tags: tags, At: time.Now().UTC()}

	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs {
		select {
		case ch <- change:
		default:
		}
	}
}

func (h *LocalHub) Subscribe(ctx context.Context) (<-chan queries.Change, func()) {
	ch := make(chan queries.Change, 16)
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	stop := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, ch)
			close(ch)
			h.mu.Unlock()
		})
	}
	go func() {
		<-ctx.Done()
		stop()
	}()
	return ch, stop
}
