package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"med-reminder/internal/domain/doses"
)

type dosesRepo struct {
	mu   sync.RWMutex
	byID map[string]doses.DoseEntry
}

func NewDosesRepo() doses.Repository {
	return &dosesRepo{
		byID: make(map[string]doses.DoseEntry),
	}
}

func (r *dosesRepo) Create(ctx context.Context, e doses.DoseEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e.ID == "" {
		return errors.New("dose id required")
	}
	if _, exists := r.byID[e.ID]; exists {
		return errors.New("dose already exists")
	}

	r.byID[e.ID] = e
	return nil
}

func (r *dosesRepo) GetByID(ctx context.Context, id string) (doses.DoseEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.byID[id]
	if !ok {
		return doses.DoseEntry{}, ErrNotFound
	}
	return e, nil
}

func (r *dosesRepo) ListBySchedule(ctx context.Context, scheduleID string, filter doses.ListFilter) ([]doses.DoseEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]doses.DoseEntry, 0)
	for _, e := range r.byID {
		if e.ScheduleID != scheduleID {
			continue
		}
		if len(filter.Types) > 0 && !containsType(filter.Types, e.Type) {
			continue
		}
		if filter.From != nil && e.OccurredAt.Before(*filter.From) {
			continue
		}
		if filter.To != nil && e.OccurredAt.After(*filter.To) {
			continue
		}
		out = append(out, e)
	}

	// Más recientes primero.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].OccurredAt.After(out[j].OccurredAt)
	})

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}
	if len(out) > limit {
		out = out[:limit]
	}

	return out, nil
}

func (r *dosesRepo) Void(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.byID[id]
	if !ok {
		return ErrNotFound
	}
	e.Status = doses.DoseStatusVoided
	r.byID[id] = e
	return nil
}

func containsType(types []doses.DoseType, t doses.DoseType) bool {
	for _, v := range types {
		if v == t {
			return true
		}
	}
	return false
}
