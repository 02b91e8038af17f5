package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"med-reminder/internal/domain/schedules"
)

var ErrNotFound = errors.New("not found")

type schedulesRepo struct {
	mu   sync.RWMutex
	byID map[string]schedules.MedicationSchedule
	seq  map[string]int // orden de inserción, para listados estables
	next int
}

func NewSchedulesRepo() schedules.Repository {
	return &schedulesRepo{
		byID: make(map[string]schedules.MedicationSchedule),
		seq:  make(map[string]int),
	}
}

func (r *schedulesRepo) Create(ctx context.Context, s schedules.MedicationSchedule) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s.ID == "" {
		return errors.New("schedule id required")
	}
	if _, exists := r.byID[s.ID]; exists {
		return errors.New("schedule already exists")
	}

	r.byID[s.ID] = s
	r.seq[s.ID] = r.next
	r.next++
	return nil
}

func (r *schedulesRepo) Update(ctx context.Context, s schedules.MedicationSchedule) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[s.ID]; !exists {
		return ErrNotFound
	}
	r.byID[s.ID] = s
	return nil
}

func (r *schedulesRepo) GetByID(ctx context.Context, id string) (schedules.MedicationSchedule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byID[id]
	if !ok {
		return schedules.MedicationSchedule{}, ErrNotFound
	}
	return s, nil
}

func (r *schedulesRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]schedules.MedicationSchedule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]schedules.MedicationSchedule, 0)
	for _, s := range r.byID {
		if s.OwnerUserID == ownerUserID {
			out = append(out, s)
		}
	}
	r.sortBySeq(out)
	return out, nil
}

func (r *schedulesRepo) ListOwners(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := map[string]bool{}
	out := make([]string, 0)
	for _, s := range r.byID {
		if !seen[s.OwnerUserID] {
			seen[s.OwnerUserID] = true
			out = append(out, s.OwnerUserID)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (r *schedulesRepo) ListByGroup(ctx context.Context, groupID string) ([]schedules.MedicationSchedule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]schedules.MedicationSchedule, 0)
	for _, s := range r.byID {
		if s.Group != nil && s.Group.GroupID == groupID {
			out = append(out, s)
		}
	}
	r.sortBySeq(out)
	return out, nil
}

func (r *schedulesRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return ErrNotFound
	}
	delete(r.byID, id)
	delete(r.seq, id)
	return nil
}

// sortBySeq ordena por inserción: los listados deben ser estables para que
// el filtro de pendientes preserve el orden de entrada.
func (r *schedulesRepo) sortBySeq(items []schedules.MedicationSchedule) {
	sort.SliceStable(items, func(i, j int) bool {
		return r.seq[items[i].ID] < r.seq[items[j].ID]
	})
}
