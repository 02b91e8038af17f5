package alerts

import (
	"context"
	"time"

	"med-reminder/internal/domain/schedules"
	"med-reminder/internal/platform/logger"
	"med-reminder/internal/ports/notify"
)

const DefaultInterval = 5 * time.Minute

// Source es lo que el poller necesita del servicio de schedules.
type Source interface {
	OverdueAll(ctx context.Context, date, now time.Time) ([]schedules.MedicationSchedule, error)
}

// Poller consulta periódicamente qué medicamentos quedaron vencidos y los
// entrega al Notifier. El timer vive acá: el motor de decisión no agenda
// nada, solo responde. Cada schedule se notifica una vez por día.
type Poller struct {
	source   Source
	notifier notify.Notifier
	log      logger.Logger
	interval time.Duration
	now      func() time.Time

	// scheduleID -> fecha (YYYY-MM-DD) ya notificada
	notified map[string]string
}

func NewPoller(source Source, notifier notify.Notifier, log logger.Logger, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Poller{
		source:   source,
		notifier: notifier,
		log:      log,
		interval: interval,
		now:      time.Now,
		notified: map[string]string{},
	}
}

// Run bloquea hasta que ctx se cancele.
func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.tick(ctx)
		}
	}
}

func (p *Poller) tick(ctx context.Context) {
	now := p.now()
	day := now.Format("2006-01-02")

	// Las marcas de días anteriores ya no bloquean nada: se descartan para
	// que el mapa no acumule schedules eliminados.
	for id, d := range p.notified {
		if d != day {
			delete(p.notified, id)
		}
	}

	overdue, err := p.source.OverdueAll(ctx, now, now)
	if err != nil {
		p.log.Warn("alert poll failed", map[string]any{"err": err.Error()})
		return
	}

	for _, m := range overdue {
		if p.notified[m.ID] == day {
			continue
		}

		err := p.notifier.Notify(ctx, notify.Alert{
			ScheduleID:  m.ID,
			OwnerUserID: m.OwnerUserID,
			Name:        m.Name,
			Dosage:      m.Dosage,
			Status:      string(schedules.StatusOverdue),
		})
		if err != nil {
			p.log.Warn("alert delivery failed", map[string]any{
				"schedule_id": m.ID,
				"err":         err.Error(),
			})
			continue
		}

		p.notified[m.ID] = day
		p.log.Info("overdue alert sent", map[string]any{"schedule_id": m.ID})
	}
}
