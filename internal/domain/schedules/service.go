package schedules

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrGroupTooLarge = errors.New("group supports at most two members")
	ErrNotTaken      = errors.New("schedule not marked as taken")
)

// Service es la capa colaboradora alrededor del motor puro: carga snapshots
// del repo, invoca las funciones de decisión y persiste resultados. El motor
// en sí (recurrence/group/status/active) nunca toca el repo ni el reloj.
type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Name          string
	Dosage        string
	Frequency     FrequencyKind
	CustomDays    []time.Weekday
	StartDate     time.Time // cero => hoy
	Hour          int
	Minute        int
	TotalQuantity int
}

func (s *Service) Create(ctx context.Context, ownerUserID string, in CreateInput) (MedicationSchedule, error) {
	if strings.TrimSpace(ownerUserID) == "" {
		return MedicationSchedule{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Name) == "" {
		return MedicationSchedule{}, ErrInvalidInput
	}
	if !IsValidFrequency(in.Frequency) {
		return MedicationSchedule{}, ErrInvalidInput
	}
	if in.Frequency == FrequencyCustomDays && len(in.CustomDays) == 0 {
		return MedicationSchedule{}, ErrInvalidInput
	}
	if in.Hour < 0 || in.Hour > 23 || in.Minute < 0 || in.Minute > 59 {
		return MedicationSchedule{}, ErrInvalidInput
	}
	if in.TotalQuantity < 0 {
		return MedicationSchedule{}, ErrInvalidInput
	}

	now := s.now()

	start := in.StartDate
	if start.IsZero() {
		start = now
	}

	m := MedicationSchedule{
		ID:                uuid.NewString(),
		OwnerUserID:       ownerUserID,
		Name:              strings.TrimSpace(in.Name),
		Dosage:            strings.TrimSpace(in.Dosage),
		Frequency:         in.Frequency,
		CustomDays:        append([]time.Weekday(nil), in.CustomDays...),
		StartDate:         normalizeDate(start),
		Hour:              in.Hour,
		Minute:            in.Minute,
		IsActive:          true,
		RemainingQuantity: in.TotalQuantity,
		TotalQuantity:     in.TotalQuantity,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.repo.Create(ctx, m); err != nil {
		return MedicationSchedule{}, err
	}
	return m, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (MedicationSchedule, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return MedicationSchedule{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByOwner(ctx context.Context, ownerUserID string) ([]MedicationSchedule, error) {
	return s.repo.ListByOwner(ctx, ownerUserID)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	// Si era miembro de grupo, el resto del grupo queda renormalizado.
	if m.Group != nil && m.Group.GroupID != "" {
		if err := s.detachFromGroup(ctx, m); err != nil {
			return err
		}
	}
	return s.repo.Delete(ctx, id)
}

// UpdateInput usa punteros para distinguir "no tocar" de "setear".
type UpdateInput struct {
	Name              *string
	Dosage            *string
	Frequency         *FrequencyKind
	CustomDays        []time.Weekday // solo se aplica si Frequency apunta a custom_days
	Hour              *int
	Minute            *int
	IsActive          *bool
	TotalQuantity     *int
	RemainingQuantity *int
}

// Update aplica una edición copy-on-write. Si se editó la hora o la
// frecuencia con TakenToday activo, aplica la reconciliación de §status:
// el flag solo sobrevive si la cantidad restante bajó de verdad.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (MedicationSchedule, error) {
	m, err := s.GetByID(ctx, id)
	if err != nil {
		return MedicationSchedule{}, err
	}

	out := m.clone()
	timingEdited := false

	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return MedicationSchedule{}, ErrInvalidInput
		}
		out.Name = strings.TrimSpace(*in.Name)
	}
	if in.Dosage != nil {
		out.Dosage = strings.TrimSpace(*in.Dosage)
	}
	if in.Frequency != nil {
		if !IsValidFrequency(*in.Frequency) {
			return MedicationSchedule{}, ErrInvalidInput
		}
		if *in.Frequency == FrequencyCustomDays && len(in.CustomDays) == 0 {
			return MedicationSchedule{}, ErrInvalidInput
		}
		// Cambiar el set de días de custom_days también es editar la
		// frecuencia, aunque el kind no cambie.
		if *in.Frequency != out.Frequency || !sameWeekdays(in.CustomDays, out.CustomDays) {
			timingEdited = true
		}
		out.Frequency = *in.Frequency
		out.CustomDays = append([]time.Weekday(nil), in.CustomDays...)
	}
	if in.Hour != nil {
		if *in.Hour < 0 || *in.Hour > 23 {
			return MedicationSchedule{}, ErrInvalidInput
		}
		if *in.Hour != out.Hour {
			timingEdited = true
		}
		out.Hour = *in.Hour
	}
	if in.Minute != nil {
		if *in.Minute < 0 || *in.Minute > 59 {
			return MedicationSchedule{}, ErrInvalidInput
		}
		if *in.Minute != out.Minute {
			timingEdited = true
		}
		out.Minute = *in.Minute
	}
	if in.IsActive != nil {
		out.IsActive = *in.IsActive
	}
	if in.TotalQuantity != nil {
		if *in.TotalQuantity < 0 {
			return MedicationSchedule{}, ErrInvalidInput
		}
		out.TotalQuantity = *in.TotalQuantity
	}
	if in.RemainingQuantity != nil {
		if *in.RemainingQuantity < 0 {
			return MedicationSchedule{}, ErrInvalidInput
		}
		out.RemainingQuantity = *in.RemainingQuantity
	}

	if timingEdited {
		out = ReconcileTakenAfterEdit(out)
	}

	out.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, out); err != nil {
		return MedicationSchedule{}, err
	}
	return out, nil
}

// MarkTaken marca la toma de hoy: flag, timestamps y decremento de cantidad.
func (s *Service) MarkTaken(ctx context.Context, id string) (MedicationSchedule, error) {
	m, err := s.GetByID(ctx, id)
	if err != nil {
		return MedicationSchedule{}, err
	}
	if m.TakenToday {
		return m, nil // idempotente
	}

	out := m.WithTaken(s.now())
	out.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, out); err != nil {
		return MedicationSchedule{}, err
	}
	return out, nil
}

// UnmarkTaken deshace la toma de hoy y restaura la cantidad.
func (s *Service) UnmarkTaken(ctx context.Context, id string) (MedicationSchedule, error) {
	m, err := s.GetByID(ctx, id)
	if err != nil {
		return MedicationSchedule{}, err
	}
	if !m.TakenToday {
		return MedicationSchedule{}, ErrNotTaken
	}

	out := m.WithTakenCleared()
	if out.RemainingQuantity < out.TotalQuantity {
		out.RemainingQuantity++
	}
	out.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, out); err != nil {
		return MedicationSchedule{}, err
	}
	return out, nil
}

type AssignGroupInput struct {
	Name        string
	StartDate   time.Time // cero => hoy
	Frequency   FrequencyKind
	ScheduleIDs []string // el orden define GroupOrder 1..n
}

// AssignGroup arma un grupo alternante: puebla los campos de grupo de todos
// los miembros como unidad atómica, con hash fresco. La semántica de
// alternancia solo está definida con exactitud para dos miembros, así que
// el write path rechaza grupos más grandes (ver DESIGN.md).
func (s *Service) AssignGroup(ctx context.Context, in AssignGroupInput) ([]MedicationSchedule, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, ErrInvalidInput
	}
	if !isValidGroupFrequency(in.Frequency) {
		return nil, ErrInvalidInput
	}
	if len(in.ScheduleIDs) < 2 {
		return nil, ErrInvalidInput
	}
	if len(in.ScheduleIDs) > 2 {
		return nil, ErrGroupTooLarge
	}

	seen := map[string]bool{}
	members := make([]MedicationSchedule, 0, len(in.ScheduleIDs))
	for _, id := range in.ScheduleIDs {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			return nil, ErrInvalidInput
		}
		seen[id] = true

		m, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}

	now := s.now()
	start := in.StartDate
	if start.IsZero() {
		start = now
	}

	groupID := uuid.NewString()
	base := GroupAssignment{
		GroupID:        groupID,
		GroupName:      strings.TrimSpace(in.Name),
		GroupStartDate: normalizeDate(start),
		GroupFrequency: in.Frequency,
		GroupSize:      len(members),
	}

	out := make([]MedicationSchedule, 0, len(members))
	for i, m := range members {
		g := base
		g.GroupOrder = i + 1
		g.ValidationHash = ComputeGroupHash(g)

		updated := m.WithGroup(g)
		updated.UpdatedAt = now
		if err := s.repo.Update(ctx, updated); err != nil {
			return nil, err
		}
		out = append(out, updated)
	}
	return out, nil
}

// RemoveFromGroup saca un schedule de su grupo (limpia la unidad completa)
// y renormaliza o disuelve lo que queda del grupo.
func (s *Service) RemoveFromGroup(ctx context.Context, id string) (MedicationSchedule, error) {
	m, err := s.GetByID(ctx, id)
	if err != nil {
		return MedicationSchedule{}, err
	}
	if m.Group == nil || m.Group.GroupID == "" {
		return m, nil
	}

	if err := s.detachFromGroup(ctx, m); err != nil {
		return MedicationSchedule{}, err
	}

	out := m.WithoutGroup()
	out.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, out); err != nil {
		return MedicationSchedule{}, err
	}
	return out, nil
}

// detachFromGroup renormaliza los hermanos tras sacar a m del grupo.
// Un grupo alternante de un solo miembro no tiene sentido: se disuelve.
func (s *Service) detachFromGroup(ctx context.Context, m MedicationSchedule) error {
	siblings, err := s.repo.ListByGroup(ctx, m.Group.GroupID)
	if err != nil {
		return err
	}

	remaining := make([]MedicationSchedule, 0, len(siblings))
	for _, sib := range siblings {
		if sib.ID != m.ID {
			remaining = append(remaining, sib)
		}
	}

	now := s.now()
	for _, sib := range remaining {
		cleared := sib.WithoutGroup()
		cleared.UpdatedAt = now
		if err := s.repo.Update(ctx, cleared); err != nil {
			return err
		}
	}
	return nil
}

// RepairGroup normaliza un grupo completo a su vista canónica: orders
// re-rankeados 1..n (orden existente, desempate por orden estable),
// identidad del primer miembro, tamaño real y hash recalculado.
// Idempotente; pensado para correr en cada ciclo de carga.
func (s *Service) RepairGroup(ctx context.Context, groupID string) ([]MedicationSchedule, error) {
	groupID = strings.TrimSpace(groupID)
	if groupID == "" {
		return nil, ErrInvalidInput
	}

	members, err := s.repo.ListByGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if len(members) == 0 {
		return nil, nil
	}

	repaired := repairMembers(members)

	now := s.now()
	out := make([]MedicationSchedule, 0, len(repaired))
	for i, r := range repaired {
		if groupEqual(members[i].Group, r.Group) {
			out = append(out, members[i])
			continue
		}
		r.UpdatedAt = now
		if err := s.repo.Update(ctx, r); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

// repairMembers es la reparación pura de todo el set: re-rankea orders y
// aplica Repair miembro a miembro. No persiste nada.
func repairMembers(members []MedicationSchedule) []MedicationSchedule {
	idx := make([]int, len(members))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return members[idx[a]].Group.GroupOrder < members[idx[b]].Group.GroupOrder
	})

	out := make([]MedicationSchedule, len(members))
	for rank, i := range idx {
		m := members[i]
		withOrder := m.clone()
		withOrder.Group.GroupOrder = rank + 1
		out[i] = Repair(withOrder, members)
	}
	return out
}

func groupEqual(a, b *GroupAssignment) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.GroupID == b.GroupID &&
		a.GroupName == b.GroupName &&
		a.GroupOrder == b.GroupOrder &&
		a.GroupStartDate.Equal(b.GroupStartDate) &&
		a.GroupFrequency == b.GroupFrequency &&
		a.GroupSize == b.GroupSize &&
		a.ValidationHash == b.ValidationHash
}

// DueFor es el read model de "qué toca" para la capa de presentación.
// Antes de filtrar repara grupos inconsistentes (ciclo de carga =
// auto-sanado), y delega el filtrado en ActiveFor: único punto de entrada,
// sin re-filtrar después.
func (s *Service) DueFor(ctx context.Context, ownerUserID string, date time.Time) ([]MedicationSchedule, error) {
	all, err := s.repo.ListByOwner(ctx, ownerUserID)
	if err != nil {
		return nil, err
	}

	all, err = s.healGroups(ctx, all)
	if err != nil {
		return nil, err
	}

	return ActiveFor(date, all), nil
}

// healGroups repara en sitio los grupos que no clasifican Valid.
func (s *Service) healGroups(ctx context.Context, all []MedicationSchedule) ([]MedicationSchedule, error) {
	broken := map[string]bool{}
	for _, m := range all {
		if m.Group == nil || m.Group.GroupID == "" {
			continue
		}
		if ClassifyGroup(m, all) != GroupValid {
			broken[m.Group.GroupID] = true
		}
	}
	if len(broken) == 0 {
		return all, nil
	}

	repairedByID := map[string]MedicationSchedule{}
	for gid := range broken {
		fixed, err := s.RepairGroup(ctx, gid)
		if err != nil {
			return nil, err
		}
		for _, f := range fixed {
			repairedByID[f.ID] = f
		}
	}

	out := make([]MedicationSchedule, 0, len(all))
	for _, m := range all {
		if f, ok := repairedByID[m.ID]; ok {
			out = append(out, f)
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

// OverdueFor lista los schedules vencidos para (date, now); lo consume el
// poller de alertas. El timer vive afuera, acá solo se decide.
func (s *Service) OverdueFor(ctx context.Context, ownerUserID string, date, now time.Time) ([]MedicationSchedule, error) {
	all, err := s.repo.ListByOwner(ctx, ownerUserID)
	if err != nil {
		return nil, err
	}

	out := make([]MedicationSchedule, 0)
	for _, m := range all {
		if Classify(m, date, now, all) == StatusOverdue {
			out = append(out, m)
		}
	}
	return out, nil
}

// OverdueAll recorre todos los usuarios con schedules; lo usa el poller de
// alertas para decidir a quién avisar.
func (s *Service) OverdueAll(ctx context.Context, date, now time.Time) ([]MedicationSchedule, error) {
	owners, err := s.repo.ListOwners(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]MedicationSchedule, 0)
	for _, owner := range owners {
		overdue, err := s.OverdueFor(ctx, owner, date, now)
		if err != nil {
			return nil, err
		}
		out = append(out, overdue...)
	}
	return out, nil
}

// RolloverDay es el reset de frontera de día: limpia flags de toma de días
// anteriores y acumula olvidos para el día que cerró. El "hoy" es parámetro
// explícito para que el proceso sea reproducible en tests. Devuelve los
// schedules que acumularon un olvido nuevo, para que el caller registre las
// entradas MISSED en el historial de dosis.
func (s *Service) RolloverDay(ctx context.Context, ownerUserID string, today time.Time) ([]MedicationSchedule, error) {
	all, err := s.repo.ListByOwner(ctx, ownerUserID)
	if err != nil {
		return nil, err
	}

	yesterday := normalizeDate(today).AddDate(0, 0, -1)
	now := s.now()

	missed := make([]MedicationSchedule, 0)
	for _, m := range all {
		changed := false
		newMiss := false
		out := m.clone()

		// Flag de toma que quedó de un día anterior.
		if out.TakenToday && (out.TakenAt == nil || !sameDay(*out.TakenAt, today)) {
			out.TakenToday = false
			out.TakenAt = nil
			changed = true
		}

		// Olvido: ayer era día de toma y no se tomó.
		if out.IsActive && eligibleOn(m, yesterday, all) {
			tookYesterday := m.LastTakenAt != nil && sameDay(*m.LastTakenAt, yesterday)
			if !tookYesterday && !(m.TakenAt != nil && sameDay(*m.TakenAt, yesterday)) {
				out.IsMissed = true
				out.MissedCount++
				changed = true
				newMiss = true
			}
		}

		if changed {
			out.UpdatedAt = now
			if err := s.repo.Update(ctx, out); err != nil {
				return nil, err
			}
		}
		if newMiss {
			missed = append(missed, out)
		}
	}
	return missed, nil
}
