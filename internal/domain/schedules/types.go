package schedules

import "time"

// FrequencyKind define las cadencias de toma soportadas.
// @Enum daily, every_other_day, twice_a_week, three_times_a_week, weekly, custom_days
type FrequencyKind string

const (
	FrequencyDaily           FrequencyKind = "daily"
	FrequencyEveryOtherDay   FrequencyKind = "every_other_day"
	FrequencyTwiceAWeek      FrequencyKind = "twice_a_week"
	FrequencyThreeTimesAWeek FrequencyKind = "three_times_a_week"
	FrequencyWeekly          FrequencyKind = "weekly"
	FrequencyCustomDays      FrequencyKind = "custom_days"
)

// IsValidFrequency valida que el kind sea uno de los soportados.
func IsValidFrequency(k FrequencyKind) bool {
	switch k {
	case FrequencyDaily,
		FrequencyEveryOtherDay,
		FrequencyTwiceAWeek,
		FrequencyThreeTimesAWeek,
		FrequencyWeekly,
		FrequencyCustomDays:
		return true
	default:
		return false
	}
}

// isValidGroupFrequency valida que el kind tenga semántica de grupo definida.
// custom_days queda afuera: su payload de días vive en el schedule, no en
// GroupAssignment, así que el resolver de grupo no podría evaluarlo y el
// grupo quedaría válido pero nunca elegible.
func isValidGroupFrequency(k FrequencyKind) bool {
	return IsValidFrequency(k) && k != FrequencyCustomDays
}

// Status es el estado de display de un medicamento para una fecha.
// @Enum not_today, upcoming, taken_today, overdue, missed
type Status string

const (
	StatusNotToday   Status = "not_today"
	StatusUpcoming   Status = "upcoming"
	StatusTakenToday Status = "taken_today"
	StatusOverdue    Status = "overdue"
	StatusMissed     Status = "missed"
)

// GroupClass clasifica el estado de los metadatos de grupo de un schedule.
// Cualquier valor distinto de GroupValid se trata como "nunca elegible"
// (política fail-closed: ante datos corruptos, no sugerir doble dosis).
type GroupClass string

const (
	GroupNotInGroup   GroupClass = "not_in_group"
	GroupInvalidData  GroupClass = "invalid_data"
	GroupInconsistent GroupClass = "inconsistent"
	GroupValid        GroupClass = "valid"
)

// Weekday normaliza time.Weekday para el payload de FrequencyCustomDays.
func containsWeekday(days []time.Weekday, d time.Weekday) bool {
	for _, v := range days {
		if v == d {
			return true
		}
	}
	return false
}
