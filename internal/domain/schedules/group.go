package schedules

// El grupo no es una entidad almacenada: es la vista derivada de todos los
// schedules que comparten un GroupID. Mantenerlo derivado evita una segunda
// fuente de verdad que pueda desincronizarse por su cuenta.

// GroupMembersOf filtra los miembros de un grupo preservando el orden de la
// colección de entrada (orden estable, sin sorting implícito).
func GroupMembersOf(groupID string, all []MedicationSchedule) []MedicationSchedule {
	if groupID == "" {
		return nil
	}
	out := make([]MedicationSchedule, 0, 2)
	for _, s := range all {
		if s.Group != nil && s.Group.GroupID == groupID {
			out = append(out, s)
		}
	}
	return out
}

// IsSyntacticallyValid valida los campos de grupo de un solo schedule,
// sin mirar a sus hermanos.
func IsSyntacticallyValid(s MedicationSchedule) bool {
	g := s.Group
	if g == nil {
		return false
	}
	return g.GroupID != "" &&
		g.GroupOrder > 0 &&
		!g.GroupStartDate.IsZero() &&
		g.GroupFrequency != "" &&
		g.ValidationHash != ""
}

// ClassifyGroup clasifica el estado de grupo de un schedule contra el set
// completo. Nunca retorna error: toda entrada malformada mapea a una
// clasificación, y todo lo que no sea GroupValid se trata como no elegible.
func ClassifyGroup(s MedicationSchedule, all []MedicationSchedule) GroupClass {
	if s.Group == nil || s.Group.GroupID == "" {
		return GroupNotInGroup
	}
	if !IsSyntacticallyValid(s) {
		return GroupInvalidData
	}

	members := GroupMembersOf(s.Group.GroupID, all)
	if len(members) == 0 {
		// El propio schedule no está en la colección: snapshot inconsistente.
		return GroupInconsistent
	}

	ref := members[0].Group
	seenOrders := make(map[int]bool, len(members))

	for _, m := range members {
		if !IsSyntacticallyValid(m) {
			return GroupInconsistent
		}
		g := m.Group

		// Campos compartidos idénticos en todos los miembros.
		if g.GroupName != ref.GroupName ||
			g.GroupFrequency != ref.GroupFrequency ||
			g.GroupSize != ref.GroupSize ||
			!sameDay(g.GroupStartDate, ref.GroupStartDate) {
			return GroupInconsistent
		}

		// Hash almacenado == hash canónico de los propios campos.
		if g.ValidationHash != ComputeGroupHash(*g) {
			return GroupInconsistent
		}

		// Orders únicos y dentro de rango.
		if g.GroupOrder < 1 || g.GroupOrder > len(members) || seenOrders[g.GroupOrder] {
			return GroupInconsistent
		}
		seenOrders[g.GroupOrder] = true
	}

	// Tamaño cacheado == conteo real de miembros.
	if ref.GroupSize != len(members) {
		return GroupInconsistent
	}

	return GroupValid
}

// IsConsistent es el shorthand ClassifyGroup == GroupValid.
func IsConsistent(s MedicationSchedule, all []MedicationSchedule) bool {
	return ClassifyGroup(s, all) == GroupValid
}

// Repair devuelve una copia del schedule con sus campos de grupo
// normalizados a la vista canónica del grupo: identidad del primer miembro,
// tamaño igual al conteo real y hash recalculado. Preserva GroupOrder.
// Idempotente: reparar un miembro ya válido no cambia nada.
// Es una transformación pura; persistir el resultado es trabajo del caller.
func Repair(s MedicationSchedule, members []MedicationSchedule) MedicationSchedule {
	if s.Group == nil || s.Group.GroupID == "" || len(members) == 0 {
		return s
	}

	canon := members[0].Group
	if canon == nil {
		return s
	}

	g := GroupAssignment{
		GroupID:        s.Group.GroupID,
		GroupName:      canon.GroupName,
		GroupOrder:     s.Group.GroupOrder,
		GroupStartDate: normalizeDate(canon.GroupStartDate),
		GroupFrequency: canon.GroupFrequency,
		GroupSize:      len(members),
	}
	g.ValidationHash = ComputeGroupHash(g)

	return s.WithGroup(g)
}
