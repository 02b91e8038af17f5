package schedules

import (
	"testing"
	"time"
)

// twoMemberGroup arma un grupo alternante válido de dos miembros.
func twoMemberGroup(start time.Time) (MedicationSchedule, MedicationSchedule) {
	base := GroupAssignment{
		GroupID:        "grp-1",
		GroupName:      "Alternados",
		GroupStartDate: start,
		GroupFrequency: FrequencyEveryOtherDay,
		GroupSize:      2,
	}

	ga := base
	ga.GroupOrder = 1
	ga.ValidationHash = ComputeGroupHash(ga)

	gb := base
	gb.GroupOrder = 2
	gb.ValidationHash = ComputeGroupHash(gb)

	a := MedicationSchedule{
		ID:        "med-a",
		Name:      "Droga A",
		Frequency: FrequencyEveryOtherDay,
		StartDate: start,
		IsActive:  true,
		Group:     &ga,
	}
	b := MedicationSchedule{
		ID:        "med-b",
		Name:      "Droga B",
		Frequency: FrequencyEveryOtherDay,
		StartDate: start,
		IsActive:  true,
		Group:     &gb,
	}
	return a, b
}

func TestComputeGroupHash_Deterministic(t *testing.T) {
	g := GroupAssignment{
		GroupID:        "grp-1",
		GroupName:      "Alternados",
		GroupOrder:     1,
		GroupStartDate: day(2025, 8, 5),
		GroupFrequency: FrequencyEveryOtherDay,
		GroupSize:      2,
	}

	h1 := ComputeGroupHash(g)
	h2 := ComputeGroupHash(g)
	if h1 == "" || h1 != h2 {
		t.Fatalf("hash must be deterministic and non-empty, got %q vs %q", h1, h2)
	}

	// El order NO participa de la identidad compartida.
	g2 := g
	g2.GroupOrder = 2
	if ComputeGroupHash(g2) != h1 {
		t.Fatalf("group order must not affect the shared-identity hash")
	}

	// Cambiar un campo de identidad sí cambia el hash.
	g3 := g
	g3.GroupName = "Otro nombre"
	if ComputeGroupHash(g3) == h1 {
		t.Fatalf("changing group name must change the hash")
	}
}

func TestComputeGroupHash_DateTimezoneInsensitive(t *testing.T) {
	g := GroupAssignment{
		GroupID:        "grp-1",
		GroupStartDate: time.Date(2025, 8, 5, 0, 0, 0, 0, time.UTC),
		GroupFrequency: FrequencyEveryOtherDay,
		GroupSize:      2,
	}
	g2 := g
	g2.GroupStartDate = time.Date(2025, 8, 5, 14, 30, 0, 0, time.FixedZone("X", 3*3600))

	if ComputeGroupHash(g) != ComputeGroupHash(g2) {
		t.Fatalf("hash must depend on the calendar date only")
	}
}

func TestIsSyntacticallyValid(t *testing.T) {
	a, _ := twoMemberGroup(day(2025, 8, 5))
	if !IsSyntacticallyValid(a) {
		t.Fatalf("expected valid group fields")
	}

	cases := []func(*GroupAssignment){
		func(g *GroupAssignment) { g.GroupID = "" },
		func(g *GroupAssignment) { g.GroupOrder = 0 },
		func(g *GroupAssignment) { g.GroupStartDate = time.Time{} },
		func(g *GroupAssignment) { g.GroupFrequency = "" },
		func(g *GroupAssignment) { g.ValidationHash = "" },
	}
	for i, corrupt := range cases {
		m, _ := twoMemberGroup(day(2025, 8, 5))
		corrupt(m.Group)
		if IsSyntacticallyValid(m) {
			t.Fatalf("case %d: expected syntactically invalid", i)
		}
	}

	if IsSyntacticallyValid(MedicationSchedule{ID: "solo"}) {
		t.Fatalf("schedule without group must not be syntactically valid")
	}
}

func TestClassifyGroup_NotInGroup(t *testing.T) {
	s := standalone(FrequencyDaily, day(2025, 8, 5))
	if got := ClassifyGroup(s, []MedicationSchedule{s}); got != GroupNotInGroup {
		t.Fatalf("expected not_in_group, got %s", got)
	}
}

func TestClassifyGroup_InvalidData(t *testing.T) {
	a, b := twoMemberGroup(day(2025, 8, 5))
	a.Group.GroupOrder = 0

	if got := ClassifyGroup(a, []MedicationSchedule{a, b}); got != GroupInvalidData {
		t.Fatalf("expected invalid_data, got %s", got)
	}
}

func TestClassifyGroup_Valid(t *testing.T) {
	a, b := twoMemberGroup(day(2025, 8, 5))
	all := []MedicationSchedule{a, b}

	if got := ClassifyGroup(a, all); got != GroupValid {
		t.Fatalf("expected valid for a, got %s", got)
	}
	if got := ClassifyGroup(b, all); got != GroupValid {
		t.Fatalf("expected valid for b, got %s", got)
	}
	if !IsConsistent(a, all) {
		t.Fatalf("IsConsistent must agree with ClassifyGroup")
	}
}

// Propiedad fail-closed: corromper un campo compartido en UN miembro sin
// actualizar al hermano saca la clasificación de Valid y la elegibilidad a false.
func TestClassifyGroup_CorruptionFailsClosed(t *testing.T) {
	start := day(2025, 8, 5)

	corruptions := []struct {
		name string
		fn   func(*GroupAssignment)
	}{
		{"start date", func(g *GroupAssignment) { g.GroupStartDate = g.GroupStartDate.AddDate(0, 0, 1) }},
		{"frequency", func(g *GroupAssignment) { g.GroupFrequency = FrequencyDaily }},
		{"hash", func(g *GroupAssignment) { g.ValidationHash = "deadbeef" }},
		{"name", func(g *GroupAssignment) { g.GroupName = "Drifted" }},
		{"size", func(g *GroupAssignment) { g.GroupSize = 3 }},
	}

	for _, c := range corruptions {
		a, b := twoMemberGroup(start)
		c.fn(a.Group)
		all := []MedicationSchedule{a, b}

		if got := ClassifyGroup(a, all); got == GroupValid {
			t.Fatalf("%s corruption: expected non-valid classification", c.name)
		}
		// Primer día del grupo, que para order 1 sería elegible si el grupo
		// estuviera sano.
		if IsGroupEligible(a, start, all) {
			t.Fatalf("%s corruption: eligibility must fail closed", c.name)
		}
	}
}

func TestClassifyGroup_DuplicateOrders(t *testing.T) {
	a, b := twoMemberGroup(day(2025, 8, 5))
	b.Group.GroupOrder = 1
	b.Group.ValidationHash = ComputeGroupHash(*b.Group)

	if got := ClassifyGroup(a, []MedicationSchedule{a, b}); got != GroupInconsistent {
		t.Fatalf("duplicate orders: expected inconsistent, got %s", got)
	}
}

func TestClassifyGroup_SizeMismatch(t *testing.T) {
	a, b := twoMemberGroup(day(2025, 8, 5))
	// El hermano desapareció de la colección.
	if got := ClassifyGroup(a, []MedicationSchedule{a}); got != GroupInconsistent {
		t.Fatalf("missing sibling: expected inconsistent, got %s", got)
	}
	_ = b
}

func TestRepair_NormalizesToFirstMember(t *testing.T) {
	a, b := twoMemberGroup(day(2025, 8, 5))

	// b driftea: otro start date y hash viejo.
	b.Group.GroupStartDate = day(2025, 8, 9)
	b.Group.GroupName = "Drifted"

	members := []MedicationSchedule{a, b}
	fixed := Repair(b, members)

	if !sameDay(fixed.Group.GroupStartDate, a.Group.GroupStartDate) {
		t.Fatalf("repair must take the first member's start date")
	}
	if fixed.Group.GroupName != a.Group.GroupName {
		t.Fatalf("repair must take the first member's name")
	}
	if fixed.Group.GroupOrder != 2 {
		t.Fatalf("repair must preserve the member's order, got %d", fixed.Group.GroupOrder)
	}
	if fixed.Group.GroupSize != 2 {
		t.Fatalf("repair must set size to the member count, got %d", fixed.Group.GroupSize)
	}
	if fixed.Group.ValidationHash != ComputeGroupHash(*fixed.Group) {
		t.Fatalf("repair must leave a self-consistent hash")
	}

	// El input no se muta.
	if b.Group.GroupName != "Drifted" {
		t.Fatalf("repair must not mutate its input")
	}
}

func TestRepair_Idempotent(t *testing.T) {
	a, b := twoMemberGroup(day(2025, 8, 5))
	b.Group.ValidationHash = "corrupted"
	members := []MedicationSchedule{a, b}

	once := Repair(b, members)
	twice := Repair(once, members)

	if !groupEqual(once.Group, twice.Group) {
		t.Fatalf("repair(repair(m)) must equal repair(m): %+v vs %+v", once.Group, twice.Group)
	}

	// Reparar un miembro ya válido no cambia sus campos de grupo.
	same := Repair(a, members)
	if !groupEqual(same.Group, a.Group) {
		t.Fatalf("repairing a valid member must be a no-op")
	}
}

func TestRepair_RestoresValidity(t *testing.T) {
	a, b := twoMemberGroup(day(2025, 8, 5))
	b.Group.GroupStartDate = day(2025, 9, 1)
	b.Group.GroupSize = 5

	members := []MedicationSchedule{a, b}
	fixedB := Repair(b, members)
	fixedA := Repair(a, members)

	all := []MedicationSchedule{fixedA, fixedB}
	if got := ClassifyGroup(fixedA, all); got != GroupValid {
		t.Fatalf("after repair, expected valid, got %s", got)
	}
	if got := ClassifyGroup(fixedB, all); got != GroupValid {
		t.Fatalf("after repair, expected valid, got %s", got)
	}
}

func TestGroupMembersOf_StableOrder(t *testing.T) {
	a, b := twoMemberGroup(day(2025, 8, 5))
	other := standalone(FrequencyDaily, day(2025, 8, 1))
	all := []MedicationSchedule{b, other, a}

	members := GroupMembersOf("grp-1", all)
	if len(members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(members))
	}
	if members[0].ID != "med-b" || members[1].ID != "med-a" {
		t.Fatalf("member order must follow input order")
	}

	if got := GroupMembersOf("", all); got != nil {
		t.Fatalf("empty group id must return nil")
	}
}
