package service

import (
	"context"
	"sync"
	"time"

	"github.com/labstack/gommon/log"

	"github.com/iliyamo/school-admin/internal/metrics"
	q "github.com/iliyamo/school-admin/internal/queue"
)

// changesBuffer is how many events may wait for the publisher before new
// ones are dropped.
const changesBuffer = 256

// Changes records content changes: it counts them and queues them for a
// single background publisher.  Publishing failures are logged and never
// reach the caller, so a broker outage cannot fail or slow down an edit.
type Changes struct {
	pub     Publisher
	metrics *metrics.Metrics
	now     func() time.Time
	timeout time.Duration

	mu     sync.RWMutex
	closed bool
	events chan q.ContentChangedEvent
	done   chan struct{}
}

// NewChanges starts the publishing goroutine; stop it with Close.
func NewChanges(pub Publisher, m *metrics.Metrics) *Changes {
	if pub == nil {
		pub = NopPublisher{}
	}
	s := &Changes{
		pub:     pub,
		metrics: m,
		now:     time.Now,
		timeout: 2 * time.Second,
		events:  make(chan q.ContentChangedEvent, changesBuffer),
		done:    make(chan struct{}),
	}
	go s.run()
	return s
}

func (s *Changes) run() {
	defer close(s.done)
	for ev := range s.events {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		if err := s.pub.Publish(ctx, ev); err != nil {
			log.Warnf("content event %s/%s id=%s not published: %v", ev.Entity, ev.Action, ev.ID, err)
		}
		cancel()
	}
}

// Record stamps ev with the current time when unset, counts it and queues
// it for publishing.  It never blocks: when the queue is full the event is
// dropped with a warning.
func (s *Changes) Record(_ context.Context, ev q.ContentChangedEvent) {
	if ev.At == "" {
		ev.At = s.now().UTC().Format(time.RFC3339)
	}
	s.metrics.ContentChanged(ev.Entity, ev.Action)

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		log.Warnf("content event %s/%s id=%s recorded after close", ev.Entity, ev.Action, ev.ID)
		return
	}
	select {
	case s.events <- ev:
	default:
		log.Warnf("content event queue full, dropping %s/%s id=%s", ev.Entity, ev.Action, ev.ID)
	}
}

// Close stops accepting events and waits until the queued ones have been
// handed to the publisher.
func (s *Changes) Close() {
	s.mu.Lock()
	if !s.closed {
		s.closed = true
		close(s.events)
	}
	s.mu.Unlock()
	<-s.done
}

// PublishedPosts updates the live-posts gauge.
func (s *Changes) PublishedPosts(n int) { s.metrics.SetPublished(n) }
