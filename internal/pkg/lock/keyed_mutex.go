package lock

import (
	"context"
	"sync"
	"time"
)

// KeyedMutex is an in-process Locker. Each key maps to a one-slot channel;
// entries are reference counted and dropped once nobody holds or waits.
type KeyedMutex struct {
	mu      sync.Mutex
	entries map[string]*entry
	wait    time.Duration
}

type entry struct {
	slot chan struct{}
	refs int
}

func NewKeyedMutex(opts Options) *KeyedMutex {
	opts = opts.withDefaults()
	return &KeyedMutex{
		entries: make(map[string]*entry),
		wait:    opts.WaitTimeout,
	}
}

func (m *KeyedMutex) Acquire(ctx context.Context, key string, policy WaitPolicy) (Handle, error) {
	e := m.ref(key)

	if policy == NoWait {
		select {
		case e.slot <- struct{}{}:
			return m.handle(key, e), nil
		default:
			m.unref(key, e)
			return nil, lockedError(key)
		}
	}

	timer := time.NewTimer(m.wait)
	defer timer.Stop()

	select {
	case e.slot <- struct{}{}:
		return m.handle(key, e), nil
	case <-timer.C:
		m.unref(key, e)
		return nil, timeoutError(key, m.wait)
	case <-ctx.Done():
		m.unref(key, e)
		return nil, ClassifyContextErr(key, ctx.Err())
	}
}

// Len reports how many keys are currently tracked.
func (m *KeyedMutex) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

func (m *KeyedMutex) ref(key string) *entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[key]
	if !ok {
		e = &entry{slot: make(chan struct{}, 1)}
		m.entries[key] = e
	}
	e.refs++
	return e
}

func (m *KeyedMutex) unref(key string, e *entry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e.refs--
	if e.refs == 0 {
		delete(m.entries, key)
	}
}

func (m *KeyedMutex) handle(key string, e *entry) Handle {
	return &localHandle{release: func() {
		<-e.slot
		m.unref(key, e)
	}}
}

type localHandle struct {
	once    sync.Once
	release func()
}

func (h *localHandle) Release() {
	h.once.Do(h.release)
}
