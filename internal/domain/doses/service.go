package doses

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type RecordInput struct {
	Type       DoseType
	OccurredAt time.Time
	Notes      string
	Source     Source
}

func (s *Service) Record(ctx context.Context, scheduleID, ownerUserID string, in RecordInput) (DoseEntry, error) {
	if strings.TrimSpace(scheduleID) == "" {
		return DoseEntry{}, ErrInvalidInput
	}
	if strings.TrimSpace(ownerUserID) == "" {
		return DoseEntry{}, ErrInvalidInput
	}
	if in.Type == "" {
		return DoseEntry{}, ErrInvalidInput
	}
	if in.OccurredAt.IsZero() {
		return DoseEntry{}, ErrInvalidInput
	}

	src := in.Source
	if src == "" {
		src = SourceManual
	}

	e := DoseEntry{
		ID:          uuid.NewString(),
		ScheduleID:  scheduleID,
		OwnerUserID: ownerUserID,
		Type:        in.Type,
		OccurredAt:  in.OccurredAt,
		RecordedAt:  s.now(),
		Notes:       strings.TrimSpace(in.Notes),
		Source:      src,
		Status:      DoseStatusActive,
	}

	if err := s.repo.Create(ctx, e); err != nil {
		return DoseEntry{}, err
	}
	return e, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (DoseEntry, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return DoseEntry{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListBySchedule(ctx context.Context, scheduleID string, filter ListFilter) ([]DoseEntry, error) {
	return s.repo.ListBySchedule(ctx, scheduleID, filter)
}

// Void marca la entrada como voided (no se borra historial).
func (s *Service) Void(ctx context.Context, id string) (DoseEntry, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return DoseEntry{}, ErrInvalidInput
	}
	if err := s.repo.Void(ctx, id); err != nil {
		return DoseEntry{}, err
	}
	return s.repo.GetByID(ctx, id)
}
