package schedules

import "time"

// IsEligible responde si la fecha es día de toma según la regla de
// recurrencia propia del schedule. No aplica para schedules con grupo
// válido: esos se resuelven con IsGroupEligible (la alternancia del grupo
// reemplaza la regla individual).
func IsEligible(s MedicationSchedule, date time.Time) bool {
	if daysBetween(s.StartDate, date) < 0 {
		return false
	}

	days := daysBetween(s.StartDate, date)

	switch s.Frequency {
	case FrequencyDaily:
		return true
	case FrequencyEveryOtherDay:
		return days%2 == 0
	case FrequencyTwiceAWeek:
		// Cadencia fija dos-días-sí/uno-no anclada al inicio.
		return days%3 == 0 || days%3 == 1
	case FrequencyThreeTimesAWeek:
		return days%2 == 0
	case FrequencyWeekly:
		return days%7 == 0
	case FrequencyCustomDays:
		return containsWeekday(s.CustomDays, date.Weekday())
	default:
		// Kind desconocido: fail-closed.
		return false
	}
}
