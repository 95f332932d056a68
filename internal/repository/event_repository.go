package repository

import (
	"context"
	"strings"
	"time"

	"github.com/iliyamo/school-admin/internal/model"
)

// EventRepo stores the school calendar, newest first.  Status is derived
// from the date and refreshed on every read so a seeded "Upcoming" event
// turns "Past" once its day has gone.
type EventRepo struct {
	c   *Collection[model.Event]
	now func() time.Time
}

func NewEventRepo(seed []model.Event) *EventRepo {
	return &EventRepo{
		c:   NewCollection("event", Prepend, func(e *model.Event) *string { return &e.ID }, seed),
		now: time.Now,
	}
}

// SetClock replaces the time source used for ids and status.
func (r *EventRepo) SetClock(now func() time.Time) {
	r.now = now
	r.c.SetClock(now)
}

// List returns every event with a fresh status.
func (r *EventRepo) List(ctx context.Context) ([]model.Event, error) {
	events, err := r.c.List(ctx)
	if err != nil {
		return nil, err
	}
	now := r.now()
	for i := range events {
		events[i].Status = model.EventStatusOn(events[i].Date, now)
	}
	return events, nil
}

// Search keeps events whose title contains q, ignoring case.
func (r *EventRepo) Search(ctx context.Context, q string) ([]model.Event, error) {
	events, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return events, nil
	}
	out := make([]model.Event, 0, len(events))
	for _, e := range events {
		if strings.Contains(strings.ToLower(e.Title), q) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *EventRepo) Get(ctx context.Context, id string) (model.Event, error) {
	e, err := r.c.Get(ctx, id)
	if err != nil {
		return e, err
	}
	e.Status = model.EventStatusOn(e.Date, r.now())
	return e, nil
}

// Create stores a new event at the top of the list.
func (r *EventRepo) Create(ctx context.Context, e model.Event) (model.Event, error) {
	e.Status = model.EventStatusOn(e.Date, r.now())
	return r.c.Insert(ctx, e)
}

// Save replaces the event with the given id.
func (r *EventRepo) Save(ctx context.Context, id string, e model.Event) (model.Event, error) {
	e.Status = model.EventStatusOn(e.Date, r.now())
	return r.c.Replace(ctx, id, e)
}

func (r *EventRepo) Delete(ctx context.Context, id string) error {
	return r.c.Delete(ctx, id)
}

func (r *EventRepo) Count() int { return r.c.Len() }
