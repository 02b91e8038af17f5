package schedules

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"med-reminder/internal/domain/doses"
	"med-reminder/internal/middleware"
	"med-reminder/internal/ports/capabilities"

	"github.com/go-chi/chi/v5"
)

// CapabilityGroups es la capability que habilita grupos alternantes.
const CapabilityGroups = "medications:groups"

func RegisterRoutes(r chi.Router, svc *Service, dosesSvc *doses.Service, caps capabilities.Resolver) {
	r.Route("/medications", func(mr chi.Router) {
		mr.Post("/", createMedicationHandler(svc))
		mr.Get("/", listMedicationsHandler(svc))
		mr.Get("/due", dueMedicationsHandler(svc))

		mr.Post("/rollover", rolloverHandler(svc, dosesSvc))

		mr.Post("/groups", assignGroupHandler(svc, caps))
		mr.Post("/groups/{groupID}/repair", repairGroupHandler(svc))

		mr.Route("/{medID}", func(ir chi.Router) {
			ir.Get("/", getMedicationHandler(svc))
			ir.Patch("/", updateMedicationHandler(svc))
			ir.Delete("/", deleteMedicationHandler(svc))

			ir.Get("/status", statusMedicationHandler(svc))
			ir.Post("/take", takeMedicationHandler(svc, dosesSvc))
			ir.Post("/untake", untakeMedicationHandler(svc))

			ir.Delete("/group", removeFromGroupHandler(svc))
		})
	})
}

// ---- DTOs ----

// createMedicationRequest es el cuerpo para registrar un medicamento.
type createMedicationRequest struct {
	Name          string `json:"name"`
	Dosage        string `json:"dosage"`
	Frequency     string `json:"frequency" enums:"daily,every_other_day,twice_a_week,three_times_a_week,weekly,custom_days"`
	CustomDays    []int  `json:"custom_days"` // 0=domingo ... 6=sábado
	StartDate     string `json:"start_date"`  // YYYY-MM-DD, opcional (default hoy)
	Hour          int    `json:"hour"`
	Minute        int    `json:"minute"`
	TotalQuantity int    `json:"total_quantity"`
}

type updateMedicationRequest struct {
	Name              *string `json:"name"`
	Dosage            *string `json:"dosage"`
	Frequency         *string `json:"frequency"`
	CustomDays        []int   `json:"custom_days"`
	Hour              *int    `json:"hour"`
	Minute            *int    `json:"minute"`
	IsActive          *bool   `json:"is_active"`
	TotalQuantity     *int    `json:"total_quantity"`
	RemainingQuantity *int    `json:"remaining_quantity"`
}

type assignGroupRequest struct {
	Name        string   `json:"name"`
	StartDate   string   `json:"start_date"` // YYYY-MM-DD, opcional
	Frequency   string   `json:"frequency"`
	ScheduleIDs []string `json:"schedule_ids"` // el orden define group_order
}

type groupResponse struct {
	GroupID        string `json:"group_id"`
	GroupName      string `json:"group_name"`
	GroupOrder     int    `json:"group_order"`
	GroupStartDate string `json:"group_start_date"`
	GroupFrequency string `json:"group_frequency"`
	GroupSize      int    `json:"group_size"`
	ValidationHash string `json:"validation_hash"`
}

// medicationResponse representa un medicamento devuelto por la API.
type medicationResponse struct {
	ID                string         `json:"id"`
	Name              string         `json:"name"`
	Dosage            string         `json:"dosage"`
	Frequency         string         `json:"frequency"`
	CustomDays        []int          `json:"custom_days,omitempty"`
	StartDate         string         `json:"start_date"`
	Hour              int            `json:"hour"`
	Minute            int            `json:"minute"`
	IsActive          bool           `json:"is_active"`
	TakenToday        bool           `json:"taken_today"`
	TakenAt           *time.Time     `json:"taken_at,omitempty"`
	LastTakenAt       *time.Time     `json:"last_taken_at,omitempty"`
	RemainingQuantity int            `json:"remaining_quantity"`
	TotalQuantity     int            `json:"total_quantity"`
	IsMissed          bool           `json:"is_missed"`
	MissedCount       int            `json:"missed_count"`
	Group             *groupResponse `json:"group,omitempty"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

type statusResponse struct {
	Status        string `json:"status"`
	DisplayStatus string `json:"display_status"`
	GroupClass    string `json:"group_class"`
}

func toMedicationResponse(m MedicationSchedule) medicationResponse {
	out := medicationResponse{
		ID:                m.ID,
		Name:              m.Name,
		Dosage:            m.Dosage,
		Frequency:         string(m.Frequency),
		StartDate:         m.StartDate.Format("2006-01-02"),
		Hour:              m.Hour,
		Minute:            m.Minute,
		IsActive:          m.IsActive,
		TakenToday:        m.TakenToday,
		TakenAt:           m.TakenAt,
		LastTakenAt:       m.LastTakenAt,
		RemainingQuantity: m.RemainingQuantity,
		TotalQuantity:     m.TotalQuantity,
		IsMissed:          m.IsMissed,
		MissedCount:       m.MissedCount,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
	for _, d := range m.CustomDays {
		out.CustomDays = append(out.CustomDays, int(d))
	}
	if m.Group != nil {
		out.Group = &groupResponse{
			GroupID:        m.Group.GroupID,
			GroupName:      m.Group.GroupName,
			GroupOrder:     m.Group.GroupOrder,
			GroupStartDate: m.Group.GroupStartDate.Format("2006-01-02"),
			GroupFrequency: string(m.Group.GroupFrequency),
			GroupSize:      m.Group.GroupSize,
			ValidationHash: m.Group.ValidationHash,
		}
	}
	return out
}

func toWeekdays(days []int) []time.Weekday {
	out := make([]time.Weekday, 0, len(days))
	for _, d := range days {
		out = append(out, time.Weekday(d))
	}
	return out
}

// parseDate acepta YYYY-MM-DD o RFC3339; vacío retorna cero.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// ---- Handlers ----

// createMedicationHandler godoc
// @Summary Registrar medicamento
// @Description Crea un medicamento con su regla de recurrencia y hora programada. Autenticación: `X-Debug-User-ID` (dev) o `Authorization: Bearer <token>` (prod).
// @Tags medications
// @Accept json
// @Produce json
// @Param payload body createMedicationRequest true "Datos del medicamento"
// @Success 201 {object} medicationResponse
// @Failure 400 {string} string "invalid json / reglas de negocio"
// @Failure 401 {string} string "unauthorized"
// @Router /medications [post]
func createMedicationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createMedicationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		start, err := parseDate(req.StartDate)
		if err != nil {
			http.Error(w, "start_date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		m, err := svc.Create(r.Context(), claims.UserID, CreateInput{
			Name:          req.Name,
			Dosage:        req.Dosage,
			Frequency:     FrequencyKind(req.Frequency),
			CustomDays:    toWeekdays(req.CustomDays),
			StartDate:     start,
			Hour:          req.Hour,
			Minute:        req.Minute,
			TotalQuantity: req.TotalQuantity,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusCreated, toMedicationResponse(m))
	}
}

// listMedicationsHandler godoc
// @Summary Listar medicamentos del usuario
// @Tags medications
// @Produce json
// @Success 200 {array} medicationResponse
// @Failure 401 {string} string "unauthorized"
// @Router /medications [get]
func listMedicationsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.ListByOwner(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]medicationResponse, 0, len(items))
		for _, m := range items {
			out = append(out, toMedicationResponse(m))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// dueMedicationsHandler godoc
// @Summary Medicamentos pendientes para una fecha
// @Description Read model único de "qué toca": elegibles, activos y no tomados. Repara grupos inconsistentes antes de filtrar. No re-filtrar del lado del cliente.
// @Tags medications
// @Produce json
// @Param date query string false "Fecha (YYYY-MM-DD). Por defecto hoy"
// @Success 200 {array} medicationResponse
// @Failure 400 {string} string "date inválida"
// @Failure 401 {string} string "unauthorized"
// @Router /medications/due [get]
func dueMedicationsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		date, err := parseDate(r.URL.Query().Get("date"))
		if err != nil {
			http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		if date.IsZero() {
			date = time.Now()
		}

		items, err := svc.DueFor(r.Context(), claims.UserID, date)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]medicationResponse, 0, len(items))
		for _, m := range items {
			out = append(out, toMedicationResponse(m))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getMedicationHandler godoc
// @Summary Obtener medicamento
// @Tags medications
// @Produce json
// @Param medID path string true "ID del medicamento"
// @Success 200 {object} medicationResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "medication not found"
// @Router /medications/{medID} [get]
func getMedicationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, ok := ownedMedication(w, r, svc)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, toMedicationResponse(m))
	}
}

// updateMedicationHandler godoc
// @Summary Editar medicamento
// @Description Edición copy-on-write. Si se cambia hora o frecuencia con la toma de hoy marcada, el flag solo se conserva cuando la cantidad restante bajó (hubo consumo real); si no, el medicamento vuelve a aparecer como pendiente.
// @Tags medications
// @Accept json
// @Produce json
// @Param medID path string true "ID del medicamento"
// @Param payload body updateMedicationRequest true "Campos a modificar"
// @Success 200 {object} medicationResponse
// @Failure 400 {string} string "invalid json / reglas de negocio"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "medication not found"
// @Router /medications/{medID} [patch]
func updateMedicationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, ok := ownedMedication(w, r, svc)
		if !ok {
			return
		}

		var req updateMedicationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in := UpdateInput{
			Name:              req.Name,
			Dosage:            req.Dosage,
			Hour:              req.Hour,
			Minute:            req.Minute,
			IsActive:          req.IsActive,
			TotalQuantity:     req.TotalQuantity,
			RemainingQuantity: req.RemainingQuantity,
		}
		if req.Frequency != nil {
			f := FrequencyKind(*req.Frequency)
			in.Frequency = &f
			in.CustomDays = toWeekdays(req.CustomDays)
		}

		updated, err := svc.Update(r.Context(), m.ID, in)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusOK, toMedicationResponse(updated))
	}
}

// deleteMedicationHandler godoc
// @Summary Eliminar medicamento
// @Tags medications
// @Param medID path string true "ID del medicamento"
// @Success 204
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "medication not found"
// @Router /medications/{medID} [delete]
func deleteMedicationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, ok := ownedMedication(w, r, svc)
		if !ok {
			return
		}
		if err := svc.Delete(r.Context(), m.ID); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// statusMedicationHandler godoc
// @Summary Estado de display de un medicamento
// @Description Clasifica el medicamento para una fecha contra "now": not_today / upcoming / taken_today / overdue, más display_status con precedencia de missed y la clasificación de grupo.
// @Tags medications
// @Produce json
// @Param medID path string true "ID del medicamento"
// @Param date query string false "Fecha (YYYY-MM-DD). Por defecto hoy"
// @Success 200 {object} statusResponse
// @Failure 400 {string} string "date inválida"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "medication not found"
// @Router /medications/{medID}/status [get]
func statusMedicationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, ok := ownedMedication(w, r, svc)
		if !ok {
			return
		}

		date, err := parseDate(r.URL.Query().Get("date"))
		if err != nil {
			http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		now := time.Now()
		if date.IsZero() {
			date = now
		}

		all, err := svc.ListByOwner(r.Context(), m.OwnerUserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, statusResponse{
			Status:        string(Classify(m, date, now, all)),
			DisplayStatus: string(DisplayStatus(m, date, now, all)),
			GroupClass:    string(ClassifyGroup(m, all)),
		})
	}
}

// takeMedicationHandler godoc
// @Summary Marcar toma de hoy
// @Description Marca el medicamento como tomado hoy (decrementa cantidad) y registra la entrada en el historial de dosis. Idempotente.
// @Tags medications
// @Produce json
// @Param medID path string true "ID del medicamento"
// @Success 200 {object} medicationResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "medication not found"
// @Router /medications/{medID}/take [post]
func takeMedicationHandler(svc *Service, dosesSvc *doses.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, ok := ownedMedication(w, r, svc)
		if !ok {
			return
		}

		alreadyTaken := m.TakenToday

		updated, err := svc.MarkTaken(r.Context(), m.ID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		if !alreadyTaken && dosesSvc != nil && updated.TakenAt != nil {
			// El historial es best-effort: una falla acá no deshace la toma.
			_, _ = dosesSvc.Record(r.Context(), updated.ID, updated.OwnerUserID, doses.RecordInput{
				Type:       doses.DoseTaken,
				OccurredAt: *updated.TakenAt,
				Source:     doses.SourceManual,
			})
		}

		writeJSON(w, http.StatusOK, toMedicationResponse(updated))
	}
}

// untakeMedicationHandler godoc
// @Summary Deshacer toma de hoy
// @Tags medications
// @Produce json
// @Param medID path string true "ID del medicamento"
// @Success 200 {object} medicationResponse
// @Failure 400 {string} string "not marked as taken"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "medication not found"
// @Router /medications/{medID}/untake [post]
func untakeMedicationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, ok := ownedMedication(w, r, svc)
		if !ok {
			return
		}

		updated, err := svc.UnmarkTaken(r.Context(), m.ID)
		if err != nil {
			if errors.Is(err, ErrNotTaken) {
				http.Error(w, "not marked as taken", http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toMedicationResponse(updated))
	}
}

// rolloverHandler godoc
// @Summary Reset de frontera de día
// @Description Limpia flags de toma de días anteriores y acumula olvidos del día cerrado, registrando entradas MISSED en el historial. Pensado para que lo dispare un job al cambiar el día.
// @Tags medications
// @Param date query string false "Fecha considerada 'hoy' (YYYY-MM-DD). Por defecto hoy"
// @Success 204
// @Failure 401 {string} string "unauthorized"
// @Router /medications/rollover [post]
func rolloverHandler(svc *Service, dosesSvc *doses.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		today, err := parseDate(r.URL.Query().Get("date"))
		if err != nil {
			http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		if today.IsZero() {
			today = time.Now()
		}

		missed, err := svc.RolloverDay(r.Context(), claims.UserID, today)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		if dosesSvc != nil {
			// Historial best-effort, igual que en take.
			yesterday := today.AddDate(0, 0, -1)
			for _, m := range missed {
				_, _ = dosesSvc.Record(r.Context(), m.ID, m.OwnerUserID, doses.RecordInput{
					Type:       doses.DoseMissed,
					OccurredAt: yesterday,
					Source:     doses.SourceRollover,
				})
			}
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// assignGroupHandler godoc
// @Summary Crear grupo alternante
// @Description Vincula dos medicamentos en un grupo que alterna días (ej. dos drogas en días alternos). Puebla los campos de grupo de ambos miembros atómicamente con hash de validación fresco. Requiere la capability `medications:groups` si hay resolver configurado.
// @Tags groups
// @Accept json
// @Produce json
// @Param payload body assignGroupRequest true "Miembros y cadencia del grupo; el orden de schedule_ids define group_order"
// @Success 201 {array} medicationResponse
// @Failure 400 {string} string "invalid json / grupo inválido"
// @Failure 401 {string} string "unauthorized"
// @Failure 402 {string} string "groups feature not available"
// @Failure 404 {string} string "medication not found"
// @Router /medications/groups [post]
func assignGroupHandler(svc *Service, caps capabilities.Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		// Feature gate: sin resolver (dev) se permite.
		if caps != nil {
			has, err := caps.Has(r.Context(), claims.UserID, CapabilityGroups)
			if err != nil || !has {
				http.Error(w, "groups feature not available", http.StatusPaymentRequired)
				return
			}
		}

		var req assignGroupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		start, err := parseDate(req.StartDate)
		if err != nil {
			http.Error(w, "start_date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		// Todos los miembros deben ser del usuario.
		for _, id := range req.ScheduleIDs {
			m, err := svc.GetByID(r.Context(), id)
			if err != nil || m.OwnerUserID != claims.UserID {
				http.Error(w, "medication not found", http.StatusNotFound)
				return
			}
		}

		members, err := svc.AssignGroup(r.Context(), AssignGroupInput{
			Name:        req.Name,
			StartDate:   start,
			Frequency:   FrequencyKind(req.Frequency),
			ScheduleIDs: req.ScheduleIDs,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		out := make([]medicationResponse, 0, len(members))
		for _, m := range members {
			out = append(out, toMedicationResponse(m))
		}
		writeJSON(w, http.StatusCreated, out)
	}
}

// repairGroupHandler godoc
// @Summary Reparar metadatos de un grupo
// @Description Normaliza el grupo a su vista canónica (orders 1..n, identidad del primer miembro, hash recalculado). Idempotente.
// @Tags groups
// @Produce json
// @Param groupID path string true "ID del grupo"
// @Success 200 {array} medicationResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "group not found"
// @Router /medications/groups/{groupID}/repair [post]
func repairGroupHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		groupID := chi.URLParam(r, "groupID")
		members, err := svc.RepairGroup(r.Context(), groupID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if len(members) == 0 {
			http.Error(w, "group not found", http.StatusNotFound)
			return
		}
		for _, m := range members {
			if m.OwnerUserID != claims.UserID {
				http.Error(w, "group not found", http.StatusNotFound)
				return
			}
		}

		out := make([]medicationResponse, 0, len(members))
		for _, m := range members {
			out = append(out, toMedicationResponse(m))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// removeFromGroupHandler godoc
// @Summary Sacar un medicamento de su grupo
// @Description Limpia la unidad completa de campos de grupo. Si el grupo queda con un solo miembro, se disuelve.
// @Tags groups
// @Produce json
// @Param medID path string true "ID del medicamento"
// @Success 200 {object} medicationResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "medication not found"
// @Router /medications/{medID}/group [delete]
func removeFromGroupHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, ok := ownedMedication(w, r, svc)
		if !ok {
			return
		}

		updated, err := svc.RemoveFromGroup(r.Context(), m.ID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toMedicationResponse(updated))
	}
}

// ownedMedication resuelve el medicamento del path y verifica que
// pertenezca al usuario autenticado. Escribe la respuesta de error si no.
func ownedMedication(w http.ResponseWriter, r *http.Request, svc *Service) (MedicationSchedule, bool) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok || strings.TrimSpace(claims.UserID) == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return MedicationSchedule{}, false
	}

	medID := chi.URLParam(r, "medID")
	m, err := svc.GetByID(r.Context(), medID)
	if err != nil || m.OwnerUserID != claims.UserID {
		http.Error(w, "medication not found", http.StatusNotFound)
		return MedicationSchedule{}, false
	}
	return m, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
