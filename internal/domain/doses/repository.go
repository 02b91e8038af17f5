package doses

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, e DoseEntry) error
	GetByID(ctx context.Context, id string) (DoseEntry, error)
	ListBySchedule(ctx context.Context, scheduleID string, filter ListFilter) ([]DoseEntry, error)
	Void(ctx context.Context, id string) error
}

type ListFilter struct {
	Types []DoseType
	From  *time.Time
	To    *time.Time
	Limit int
}
