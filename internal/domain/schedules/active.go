package schedules

import (
	"sort"
	"time"
)

// ActiveFor es el único punto de entrada de filtrado para "qué toca hoy":
// schedules activos, elegibles para la fecha y aún no tomados. El orden de
// salida es estable e igual al de entrada. Los callers NO deben re-derivar
// ni re-filtrar la lista por su cuenta (doble filtrado hace reaparecer
// tomas ya marcadas o desaparecer pendientes); si necesitan orden por hora,
// usar ActiveForByTime.
func ActiveFor(date time.Time, all []MedicationSchedule) []MedicationSchedule {
	out := make([]MedicationSchedule, 0, len(all))
	for _, s := range all {
		if !s.IsActive {
			continue
		}
		if s.TakenToday {
			continue
		}
		if !eligibleOn(s, date, all) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// ActiveForByTime es ActiveFor con orden explícito por hora programada
// (sort estable: empates conservan el orden de entrada).
func ActiveForByTime(date time.Time, all []MedicationSchedule) []MedicationSchedule {
	out := ActiveFor(date, all)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Hour != out[j].Hour {
			return out[i].Hour < out[j].Hour
		}
		return out[i].Minute < out[j].Minute
	})
	return out
}
