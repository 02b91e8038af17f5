package alerts

import (
	"context"
	"errors"
	"testing"
	"time"

	"med-reminder/internal/domain/schedules"
	"med-reminder/internal/platform/logger"
	"med-reminder/internal/ports/notify"
)

type fakeSource struct {
	overdue []schedules.MedicationSchedule
	err     error
}

func (f *fakeSource) OverdueAll(context.Context, time.Time, time.Time) ([]schedules.MedicationSchedule, error) {
	return f.overdue, f.err
}

type fakeNotifier struct {
	sent []notify.Alert
	err  error
}

func (f *fakeNotifier) Notify(_ context.Context, a notify.Alert) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, a)
	return nil
}

func newTestPoller(src Source, n notify.Notifier, nowAt time.Time) *Poller {
	p := NewPoller(src, n, logger.New(logger.Options{Level: logger.Error}), time.Minute)
	p.now = func() time.Time { return nowAt }
	return p
}

func TestPoller_NotifiesOncePerDay(t *testing.T) {
	src := &fakeSource{overdue: []schedules.MedicationSchedule{
		{ID: "med-1", OwnerUserID: "user-1", Name: "Enalapril", Dosage: "10mg"},
	}}
	sink := &fakeNotifier{}
	p := newTestPoller(src, sink, time.Date(2025, 8, 5, 21, 0, 0, 0, time.UTC))

	p.tick(context.Background())
	p.tick(context.Background())

	if len(sink.sent) != 1 {
		t.Fatalf("same day must notify once, got %d", len(sink.sent))
	}
	a := sink.sent[0]
	if a.ScheduleID != "med-1" || a.OwnerUserID != "user-1" || a.Status != string(schedules.StatusOverdue) {
		t.Fatalf("unexpected alert payload: %+v", a)
	}
}

func TestPoller_ResetsAtDayBoundary(t *testing.T) {
	src := &fakeSource{overdue: []schedules.MedicationSchedule{
		{ID: "med-1", OwnerUserID: "user-1", Name: "Enalapril"},
	}}
	sink := &fakeNotifier{}
	p := newTestPoller(src, sink, time.Date(2025, 8, 5, 21, 0, 0, 0, time.UTC))

	p.tick(context.Background())

	p.now = func() time.Time { return time.Date(2025, 8, 6, 21, 0, 0, 0, time.UTC) }
	p.tick(context.Background())

	if len(sink.sent) != 2 {
		t.Fatalf("new day must notify again, got %d", len(sink.sent))
	}
}

func TestPoller_DropsStaleMarks(t *testing.T) {
	src := &fakeSource{overdue: []schedules.MedicationSchedule{
		{ID: "med-1", OwnerUserID: "user-1", Name: "Enalapril"},
	}}
	sink := &fakeNotifier{}
	p := newTestPoller(src, sink, time.Date(2025, 8, 5, 21, 0, 0, 0, time.UTC))

	p.tick(context.Background())

	// El schedule se elimina; al día siguiente su marca no debe quedar viva.
	src.overdue = nil
	p.now = func() time.Time { return time.Date(2025, 8, 6, 21, 0, 0, 0, time.UTC) }
	p.tick(context.Background())

	if len(p.notified) != 0 {
		t.Fatalf("marks from previous days must be pruned, got %d", len(p.notified))
	}
}

func TestPoller_RetriesFailedDelivery(t *testing.T) {
	src := &fakeSource{overdue: []schedules.MedicationSchedule{
		{ID: "med-1", OwnerUserID: "user-1", Name: "Enalapril"},
	}}
	sink := &fakeNotifier{err: errors.New("webhook down")}
	p := newTestPoller(src, sink, time.Date(2025, 8, 5, 21, 0, 0, 0, time.UTC))

	p.tick(context.Background())
	if len(sink.sent) != 0 {
		t.Fatalf("failed delivery must not record a send")
	}

	// El webhook vuelve: el siguiente tick del mismo día sí entrega.
	sink.err = nil
	p.tick(context.Background())
	if len(sink.sent) != 1 {
		t.Fatalf("recovered delivery expected, got %d", len(sink.sent))
	}
}

func TestPoller_SourceErrorIsNonFatal(t *testing.T) {
	src := &fakeSource{err: errors.New("db down")}
	sink := &fakeNotifier{}
	p := newTestPoller(src, sink, time.Date(2025, 8, 5, 21, 0, 0, 0, time.UTC))

	p.tick(context.Background())

	src.err = nil
	src.overdue = []schedules.MedicationSchedule{{ID: "med-1", OwnerUserID: "user-1"}}
	p.tick(context.Background())

	if len(sink.sent) != 1 {
		t.Fatalf("poller must recover after a source error, got %d", len(sink.sent))
	}
}
