package schedules

import "time"

// Toda la aritmética de días del motor opera sobre fechas de calendario
// normalizadas, nunca sobre timestamps crudos. Cada fecha se reconstruye
// como medianoche UTC a partir de sus campos año/mes/día en su propia zona,
// así el cambio de horario (DST) no puede correr un día la cuenta.

// normalizeDate reduce t a su fecha de calendario (medianoche UTC).
func normalizeDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// daysBetween cuenta días de calendario entre from y to (to - from).
// Negativo si to es anterior a from.
func daysBetween(from, to time.Time) int {
	a := normalizeDate(from)
	b := normalizeDate(to)
	return int(b.Sub(a).Hours() / 24)
}

// sameDay responde si a y b caen en la misma fecha de calendario.
func sameDay(a, b time.Time) bool {
	return normalizeDate(a).Equal(normalizeDate(b))
}

// sameWeekdays compara dos sets de días de semana sin importar orden ni
// repeticiones.
func sameWeekdays(a, b []time.Weekday) bool {
	var ma, mb uint8
	for _, d := range a {
		ma |= 1 << uint(d)
	}
	for _, d := range b {
		mb |= 1 << uint(d)
	}
	return ma == mb
}

// scheduledAt construye el instante programado (hora/minuto) sobre la fecha
// dada, en la zona de now para que la comparación upcoming/overdue sea local.
func scheduledAt(s MedicationSchedule, date time.Time, loc *time.Location) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, s.Hour, s.Minute, 0, 0, loc)
}
