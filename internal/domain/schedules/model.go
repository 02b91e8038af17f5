package schedules

import "time"

// GroupAssignment agrupa los campos de grupo como unidad atómica:
// o están todos presentes (puntero no nil) o no hay grupo.
// El hash es el fingerprint canónico de la identidad compartida del grupo;
// si un miembro diverge del resto, el grupo queda inconsistente.
type GroupAssignment struct {
	GroupID        string
	GroupName      string
	GroupOrder     int // posición 1-based dentro del grupo
	GroupStartDate time.Time
	GroupFrequency FrequencyKind
	GroupSize      int
	ValidationHash string
}

// MedicationSchedule representa la configuración de toma recurrente de un
// medicamento y su estado de ciclo diario. Semántica de valor: las
// actualizaciones se hacen con los helpers With* (copy-on-write), nunca
// mutando un valor compartido con la colección almacenada.
type MedicationSchedule struct {
	ID          string
	OwnerUserID string

	Name   string
	Dosage string

	Frequency  FrequencyKind
	CustomDays []time.Weekday // solo con FrequencyCustomDays

	StartDate time.Time // fechas anteriores nunca son elegibles
	Hour      int       // hora programada del día (0-23)
	Minute    int       // minuto programado (0-59)

	IsActive bool

	// Estado de ciclo diario; lo resetea RolloverDay, no el clasificador.
	TakenToday  bool
	TakenAt     *time.Time // toma de hoy
	LastTakenAt *time.Time // última toma registrada (cualquier día)

	// Señal de consumo real; no participa en elegibilidad.
	RemainingQuantity int
	TotalQuantity     int

	// Tracking de olvidos, mantenido por RolloverDay / el caller.
	IsMissed    bool
	MissedCount int

	Group *GroupAssignment

	CreatedAt time.Time
	UpdatedAt time.Time
}

// clone devuelve una copia profunda (slice de días y puntero de grupo incluidos).
func (s MedicationSchedule) clone() MedicationSchedule {
	out := s
	if s.CustomDays != nil {
		out.CustomDays = append([]time.Weekday(nil), s.CustomDays...)
	}
	if s.TakenAt != nil {
		t := *s.TakenAt
		out.TakenAt = &t
	}
	if s.LastTakenAt != nil {
		t := *s.LastTakenAt
		out.LastTakenAt = &t
	}
	if s.Group != nil {
		g := *s.Group
		out.Group = &g
	}
	return out
}

// WithTaken devuelve una copia marcada como tomada en el instante dado.
func (s MedicationSchedule) WithTaken(at time.Time) MedicationSchedule {
	out := s.clone()
	out.TakenToday = true
	out.TakenAt = &at
	out.LastTakenAt = &at
	if out.RemainingQuantity > 0 {
		out.RemainingQuantity--
	}
	return out
}

// WithTakenCleared devuelve una copia con el flag de toma de hoy limpio.
// No toca LastTakenAt: eso es historial, no estado del día.
func (s MedicationSchedule) WithTakenCleared() MedicationSchedule {
	out := s.clone()
	out.TakenToday = false
	out.TakenAt = nil
	return out
}

// WithGroup devuelve una copia con la asignación de grupo completa.
func (s MedicationSchedule) WithGroup(g GroupAssignment) MedicationSchedule {
	out := s.clone()
	out.Group = &g
	return out
}

// WithoutGroup devuelve una copia sin campos de grupo (unidad completa).
func (s MedicationSchedule) WithoutGroup() MedicationSchedule {
	out := s.clone()
	out.Group = nil
	return out
}
