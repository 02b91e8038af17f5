package schedules

import (
	"testing"
	"time"
)

func at(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}

func TestClassify_UpcomingThenOverdue(t *testing.T) {
	s := standalone(FrequencyDaily, day(2025, 8, 4))
	s.Hour = 8
	s.Minute = 0
	today := day(2025, 8, 5)

	if got := Classify(s, today, at(2025, 8, 5, 7, 30), nil); got != StatusUpcoming {
		t.Fatalf("before scheduled time: got %s, want %s", got, StatusUpcoming)
	}
	if got := Classify(s, today, at(2025, 8, 5, 8, 0), nil); got != StatusOverdue {
		t.Fatalf("at scheduled time: got %s, want %s", got, StatusOverdue)
	}
	if got := Classify(s, today, at(2025, 8, 5, 21, 0), nil); got != StatusOverdue {
		t.Fatalf("past scheduled time: got %s, want %s", got, StatusOverdue)
	}
}

func TestClassify_TakenToday(t *testing.T) {
	s := standalone(FrequencyDaily, day(2025, 8, 4))
	s.Hour = 8
	taken := at(2025, 8, 5, 8, 10)
	s = s.WithTaken(taken)

	// Taken gana incluso pasada la hora programada.
	if got := Classify(s, day(2025, 8, 5), at(2025, 8, 5, 22, 0), nil); got != StatusTakenToday {
		t.Fatalf("got %s, want %s", got, StatusTakenToday)
	}
}

func TestClassify_NotToday(t *testing.T) {
	// No elegible por frecuencia.
	s := standalone(FrequencyEveryOtherDay, day(2025, 8, 4))
	if got := Classify(s, day(2025, 8, 5), at(2025, 8, 5, 12, 0), nil); got != StatusNotToday {
		t.Fatalf("off-day: got %s, want %s", got, StatusNotToday)
	}

	// Inactivo siempre es not_today, sin importar la regla.
	s2 := standalone(FrequencyDaily, day(2025, 8, 1))
	s2.IsActive = false
	if got := Classify(s2, day(2025, 8, 5), at(2025, 8, 5, 12, 0), nil); got != StatusNotToday {
		t.Fatalf("inactive: got %s, want %s", got, StatusNotToday)
	}
}

func TestClassify_BrokenGroupIsNotToday(t *testing.T) {
	start := day(2025, 8, 5)
	a, b := twoMemberGroup(start)
	b.Group.GroupSize = 9
	all := []MedicationSchedule{a, b}

	if got := Classify(a, start, at(2025, 8, 5, 12, 0), all); got != StatusNotToday {
		t.Fatalf("member of broken group: got %s, want %s", got, StatusNotToday)
	}
}

func TestDisplayStatus_MissedPrecedence(t *testing.T) {
	s := standalone(FrequencyDaily, day(2025, 8, 4))
	s.Hour = 8
	s.IsMissed = true
	now := at(2025, 8, 5, 7, 0)

	if got := Classify(s, day(2025, 8, 5), now, nil); got != StatusUpcoming {
		t.Fatalf("base axis ignores the missed flag, got %s", got)
	}
	if got := DisplayStatus(s, day(2025, 8, 5), now, nil); got != StatusMissed {
		t.Fatalf("display axis: got %s, want %s", got, StatusMissed)
	}

	// La precedencia aplica también pasada la hora programada.
	late := at(2025, 8, 5, 9, 0)
	if got := Classify(s, day(2025, 8, 5), late, nil); got != StatusOverdue {
		t.Fatalf("base axis past schedule: got %s, want %s", got, StatusOverdue)
	}
	if got := DisplayStatus(s, day(2025, 8, 5), late, nil); got != StatusMissed {
		t.Fatalf("display axis past schedule: got %s, want %s", got, StatusMissed)
	}
}

func TestReconcileTakenAfterEdit(t *testing.T) {
	// Hubo consumo real: el flag se conserva.
	s := standalone(FrequencyDaily, day(2025, 8, 4))
	s.TotalQuantity = 30
	s.RemainingQuantity = 30
	s = s.WithTaken(at(2025, 8, 5, 8, 5)) // remaining baja a 29
	s.Hour = 19                           // edición de horario 08:00 -> 19:00

	out := ReconcileTakenAfterEdit(s)
	if !out.TakenToday {
		t.Fatalf("flag must survive when quantity dropped")
	}

	// El flag quedó prendido sin consumo (cantidad intacta): se limpia y el
	// medicamento vuelve a aparecer como pendiente.
	s2 := standalone(FrequencyDaily, day(2025, 8, 4))
	s2.TotalQuantity = 30
	s2.RemainingQuantity = 30
	s2.TakenToday = true
	s2.Hour = 19

	out2 := ReconcileTakenAfterEdit(s2)
	if out2.TakenToday {
		t.Fatalf("flag must clear when no consumption was recorded")
	}
	if out2.TakenAt != nil {
		t.Fatalf("clearing must also drop the taken timestamp")
	}

	// Sin flag, la reconciliación es un no-op.
	s3 := standalone(FrequencyDaily, day(2025, 8, 4))
	out3 := ReconcileTakenAfterEdit(s3)
	if out3.TakenToday {
		t.Fatalf("no-op expected for untaken schedule")
	}
}
