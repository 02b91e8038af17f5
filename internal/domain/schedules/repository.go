package schedules

import "context"

type Repository interface {
	Create(ctx context.Context, s MedicationSchedule) error
	Update(ctx context.Context, s MedicationSchedule) error
	GetByID(ctx context.Context, id string) (MedicationSchedule, error)
	ListByOwner(ctx context.Context, ownerUserID string) ([]MedicationSchedule, error)
	ListOwners(ctx context.Context) ([]string, error)
	ListByGroup(ctx context.Context, groupID string) ([]MedicationSchedule, error)
	Delete(ctx context.Context, id string) error
}
