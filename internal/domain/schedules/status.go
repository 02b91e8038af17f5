package schedules

import "time"

// eligibleOn resuelve elegibilidad ruteando por grupo o regla individual.
// Schedules con GroupID van siempre por el resolver de grupo (gated por
// validez); solo los standalone usan su propia regla.
func eligibleOn(s MedicationSchedule, date time.Time, all []MedicationSchedule) bool {
	if s.Group != nil && s.Group.GroupID != "" {
		return IsGroupEligible(s, date, all)
	}
	return IsEligible(s, date)
}

// Classify determina el estado de display de un schedule para una fecha,
// dado "now". now y date son parámetros explícitos: el motor nunca lee el
// reloj, así los tests pueden fijar instantes arbitrarios.
//
// Eje de verdad del clasificador: NotToday / TakenToday / Upcoming /
// Overdue. El flag IsMissed es mantenido externamente; la precedencia de
// Missed para display se aplica con DisplayStatus.
func Classify(s MedicationSchedule, date, now time.Time, all []MedicationSchedule) Status {
	if !s.IsActive {
		return StatusNotToday
	}
	if !eligibleOn(s, date, all) {
		return StatusNotToday
	}
	if s.TakenToday {
		return StatusTakenToday
	}
	if now.Before(scheduledAt(s, date, now.Location())) {
		return StatusUpcoming
	}
	return StatusOverdue
}

// DisplayStatus aplica la precedencia de Missed sobre el eje base.
// Separado de Classify a propósito: el flag es decisión del caller.
func DisplayStatus(s MedicationSchedule, date, now time.Time, all []MedicationSchedule) Status {
	if s.IsMissed {
		return StatusMissed
	}
	return Classify(s, date, now, all)
}

// ReconcileTakenAfterEdit es la primitiva de reconciliación post-edición:
// si se editó hora o frecuencia con TakenToday activo, el flag solo se
// conserva cuando hubo consumo real (la cantidad restante bajó). Si la
// cantidad no bajó, el flag se limpia y el medicamento vuelve a aparecer
// como pendiente. El colaborador de edición debe llamarla antes de
// persistir.
func ReconcileTakenAfterEdit(s MedicationSchedule) MedicationSchedule {
	if !s.TakenToday {
		return s
	}
	if s.RemainingQuantity < s.TotalQuantity {
		// Consumo real registrado: el flag se sostiene solo.
		return s
	}
	return s.WithTakenCleared()
}
