package webhook

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"med-reminder/internal/platform/httpclient"
	"med-reminder/internal/ports/notify"
)

var (
	ErrNotConfigured = errors.New("webhook notifier not configured")
)

// Notifier implementa notify.Notifier posteando el alert como JSON a un
// webhook (gateway de push, bot, etc). El destino decide cómo avisar al
// usuario; acá solo se entrega.
type Notifier struct {
	http *httpclient.Client
	url  string
}

func New(webhookURL string, timeout time.Duration) (*Notifier, error) {
	webhookURL = strings.TrimSpace(webhookURL)
	if webhookURL == "" {
		return nil, ErrNotConfigured
	}
	return &Notifier{
		http: httpclient.New(timeout),
		url:  webhookURL,
	}, nil
}

type alertPayload struct {
	ScheduleID  string `json:"schedule_id"`
	OwnerUserID string `json:"owner_user_id"`
	Name        string `json:"name"`
	Dosage      string `json:"dosage,omitempty"`
	Status      string `json:"status"`
}

func (n *Notifier) Notify(ctx context.Context, a notify.Alert) error {
	if n == nil || n.http == nil {
		return ErrNotConfigured
	}
	return n.http.DoJSON(ctx, http.MethodPost, n.url, nil, alertPayload{
		ScheduleID:  a.ScheduleID,
		OwnerUserID: a.OwnerUserID,
		Name:        a.Name,
		Dosage:      a.Dosage,
		Status:      a.Status,
	}, nil)
}
