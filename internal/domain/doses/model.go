package doses

import "time"

// DoseEntry es una entrada del historial de tomas: registro append-only de
// qué pasó con cada dosis (tomada, salteada, olvidada). No participa en la
// decisión de elegibilidad; es historial para el usuario y su médico.
type DoseEntry struct {
	ID          string
	ScheduleID  string
	OwnerUserID string

	Type DoseType

	OccurredAt time.Time
	RecordedAt time.Time

	Notes  string
	Source Source
	Status DoseStatus
}
