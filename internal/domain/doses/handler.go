package doses

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"med-reminder/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// OwnerOfFunc resuelve el dueño de un schedule. Se inyecta desde el router
// (schedules.Service.OwnerOf) para evitar ciclo de imports con schedules.
type OwnerOfFunc func(ctx context.Context, scheduleID string) (string, error)

func RegisterRoutes(r chi.Router, svc *Service, ownerOf OwnerOfFunc) {
	r.Route("/medications/{medID}/doses", func(dr chi.Router) {
		dr.Get("/", listDosesHandler(svc, ownerOf))
		dr.Post("/{doseID}/void", voidDoseHandler(svc, ownerOf))
	})
}

// doseResponse representa una entrada del historial de dosis.
type doseResponse struct {
	ID         string     `json:"id"`
	ScheduleID string     `json:"schedule_id"`
	Type       DoseType   `json:"type"`
	OccurredAt time.Time  `json:"occurred_at"`
	RecordedAt time.Time  `json:"recorded_at"`
	Notes      string     `json:"notes"`
	Source     Source     `json:"source"`
	Status     DoseStatus `json:"status"`
}

func toDoseResponse(e DoseEntry) doseResponse {
	return doseResponse{
		ID:         e.ID,
		ScheduleID: e.ScheduleID,
		Type:       e.Type,
		OccurredAt: e.OccurredAt,
		RecordedAt: e.RecordedAt,
		Notes:      e.Notes,
		Source:     e.Source,
		Status:     e.Status,
	}
}

// listDosesHandler godoc
// @Summary Historial de dosis de un medicamento
// @Description Lista las entradas del historial (tomadas/salteadas/olvidadas). Permite filtrar por tipos, rango de fechas y límite.
// @Tags doses
// @Produce json
// @Param medID path string true "ID del medicamento"
// @Param types query string false "Lista CSV de tipos (ej: TAKEN,MISSED)"
// @Param from query string false "occurred_at mínimo (RFC3339)"
// @Param to query string false "occurred_at máximo (RFC3339)"
// @Param limit query int false "Máximo de entradas (1-200). Por defecto 50"
// @Success 200 {array} doseResponse
// @Failure 400 {string} string "filtros inválidos"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "medication not found"
// @Router /medications/{medID}/doses [get]
func listDosesHandler(svc *Service, ownerOf OwnerOfFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		medID, ok := ownedSchedule(w, r, ownerOf)
		if !ok {
			return
		}

		filter, err := parseListFilter(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		items, err := svc.ListBySchedule(r.Context(), medID, filter)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]doseResponse, 0, len(items))
		for _, e := range items {
			out = append(out, toDoseResponse(e))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// voidDoseHandler godoc
// @Summary Anular (void) una entrada del historial
// @Tags doses
// @Produce json
// @Param medID path string true "ID del medicamento"
// @Param doseID path string true "ID de la entrada"
// @Success 200 {object} doseResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "dose not found"
// @Router /medications/{medID}/doses/{doseID}/void [post]
func voidDoseHandler(svc *Service, ownerOf OwnerOfFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		medID, ok := ownedSchedule(w, r, ownerOf)
		if !ok {
			return
		}

		doseID := chi.URLParam(r, "doseID")
		e, err := svc.GetByID(r.Context(), doseID)
		if err != nil || e.ScheduleID != medID {
			http.Error(w, "dose not found", http.StatusNotFound)
			return
		}

		voided, err := svc.Void(r.Context(), doseID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toDoseResponse(voided))
	}
}

func ownedSchedule(w http.ResponseWriter, r *http.Request, ownerOf OwnerOfFunc) (string, bool) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok || strings.TrimSpace(claims.UserID) == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return "", false
	}

	medID := chi.URLParam(r, "medID")
	owner, err := ownerOf(r.Context(), medID)
	if err != nil || owner != claims.UserID {
		http.Error(w, "medication not found", http.StatusNotFound)
		return "", false
	}
	return medID, true
}

func parseListFilter(r *http.Request) (ListFilter, error) {
	q := r.URL.Query()
	var f ListFilter

	if raw := strings.TrimSpace(q.Get("types")); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				f.Types = append(f.Types, DoseType(part))
			}
		}
	}

	if raw := strings.TrimSpace(q.Get("from")); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return ListFilter{}, err
		}
		f.From = &t
	}
	if raw := strings.TrimSpace(q.Get("to")); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return ListFilter{}, err
		}
		f.To = &t
	}

	if raw := strings.TrimSpace(q.Get("limit")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return ListFilter{}, err
		}
		f.Limit = n
	}

	return f, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
