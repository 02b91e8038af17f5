package schedules

import "time"

// IsGroupEligible responde si la fecha es día de toma para un miembro de
// grupo, usando la fecha de inicio y la regla de alternancia del grupo (no
// las del schedule individual). Precondición: el grupo debe clasificar
// GroupValid; cualquier otra clasificación retorna false de inmediato
// (fail-closed, nunca adivinar con metadatos corruptos).
//
// Alternancia: con frecuencia de grupo every_other_day, el miembro de order
// impar toma los días pares desde el inicio del grupo (índice 0) y el de
// order par los días impares (índice 1). Para dos miembros eso garantiza
// exactamente uno elegible por día. La generalización por order mod 2 a
// grupos de más de dos miembros queda registrada como limitación conocida
// en DESIGN.md; no inventamos round-robin.
func IsGroupEligible(s MedicationSchedule, date time.Time, all []MedicationSchedule) bool {
	if ClassifyGroup(s, all) != GroupValid {
		return false
	}

	g := s.Group
	days := daysBetween(g.GroupStartDate, date)
	if days < 0 {
		return false
	}
	if g.GroupOrder < 1 {
		return false
	}

	switch g.GroupFrequency {
	case FrequencyEveryOtherDay:
		idx := days % 2
		if g.GroupOrder%2 == 1 {
			return idx == 0
		}
		return idx == 1
	case FrequencyDaily:
		return true
	case FrequencyTwiceAWeek:
		return days%3 == 0 || days%3 == 1
	case FrequencyThreeTimesAWeek:
		return days%2 == 0
	case FrequencyWeekly:
		return days%7 == 0
	default:
		return false
	}
}
