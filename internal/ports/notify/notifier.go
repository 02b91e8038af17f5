package notify

import "context"

// Alert es el aviso que se entrega cuando un medicamento quedó vencido.
// El motor no sabe de notificaciones; el poller arma el Alert a partir de
// los resultados del clasificador y lo entrega por esta interfaz.
type Alert struct {
	ScheduleID  string
	OwnerUserID string
	Name        string
	Dosage      string
	Status      string
}

// Notifier entrega alertas a un canal externo (webhook, push, etc).
type Notifier interface {
	Notify(ctx context.Context, a Alert) error
}
