package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"med-reminder/internal/router"
)

func TestHTTP_EndToEnd_MedicationDay(t *testing.T) {
	h, _ := router.NewRouter(router.Options{AuthVerifier: nil})
	ts := httptest.NewServer(h)
	defer ts.Close()

	userID := "user-1"
	today := time.Now().UTC().Format("2006-01-02")

	// 1) Crear medicamento diario
	medID := createMedication(t, ts.URL, userID, map[string]any{
		"name":           "Enalapril",
		"dosage":         "10mg",
		"frequency":      "daily",
		"start_date":     today,
		"hour":           8,
		"total_quantity": 30,
	})

	// 2) Aparece en la lista de pendientes de hoy
	{
		st, body := doReq(t, ts.URL, "GET", "/medications/due?date="+today, userID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 due list, got %d body=%s", st, string(body))
		}
		var due []map[string]any
		_ = json.Unmarshal(body, &due)
		if len(due) != 1 {
			t.Fatalf("expected 1 due medication, got %d body=%s", len(due), string(body))
		}
	}

	// 3) Otro usuario no lo ve
	{
		st, _ := doReq(t, ts.URL, "GET", "/medications/"+medID, "user-2", nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 for foreign user, got %d", st)
		}
	}

	// 4) Marcar toma: decrementa cantidad y sale de pendientes
	{
		st, body := doReq(t, ts.URL, "POST", "/medications/"+medID+"/take", userID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 take, got %d body=%s", st, string(body))
		}
		var resp struct {
			TakenToday        bool `json:"taken_today"`
			RemainingQuantity int  `json:"remaining_quantity"`
		}
		_ = json.Unmarshal(body, &resp)
		if !resp.TakenToday || resp.RemainingQuantity != 29 {
			t.Fatalf("take: unexpected state body=%s", string(body))
		}
	}
	{
		st, body := doReq(t, ts.URL, "GET", "/medications/due?date="+today, userID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 due list, got %d", st)
		}
		var due []map[string]any
		_ = json.Unmarshal(body, &due)
		if len(due) != 0 {
			t.Fatalf("taken medication must leave the due list, body=%s", string(body))
		}
	}

	// 5) La toma quedó en el historial de dosis
	{
		st, body := doReq(t, ts.URL, "GET", "/medications/"+medID+"/doses", userID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 dose history, got %d body=%s", st, string(body))
		}
		var entries []struct {
			Type string `json:"type"`
		}
		_ = json.Unmarshal(body, &entries)
		if len(entries) != 1 || entries[0].Type != "TAKEN" {
			t.Fatalf("expected one TAKEN entry, body=%s", string(body))
		}
	}

	// 6) Deshacer: restaura cantidad y reaparece como pendiente
	{
		st, body := doReq(t, ts.URL, "POST", "/medications/"+medID+"/untake", userID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 untake, got %d body=%s", st, string(body))
		}
		var resp struct {
			RemainingQuantity int `json:"remaining_quantity"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.RemainingQuantity != 30 {
			t.Fatalf("untake must restore quantity, body=%s", string(body))
		}
	}
	{
		st, _ := doReq(t, ts.URL, "POST", "/medications/"+medID+"/untake", userID, nil)
		if st != http.StatusBadRequest {
			t.Fatalf("second untake must be 400, got %d", st)
		}
	}

	// 7) Status refleja el eje de display
	{
		st, body := doReq(t, ts.URL, "GET", "/medications/"+medID+"/status?date="+today, userID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 status, got %d body=%s", st, string(body))
		}
		var resp struct {
			Status     string `json:"status"`
			GroupClass string `json:"group_class"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Status != "upcoming" && resp.Status != "overdue" {
			t.Fatalf("expected a pending status, got %q", resp.Status)
		}
		if resp.GroupClass != "not_in_group" {
			t.Fatalf("expected not_in_group, got %q", resp.GroupClass)
		}
	}
}

func TestHTTP_EndToEnd_AlternatingGroup(t *testing.T) {
	h, _ := router.NewRouter(router.Options{AuthVerifier: nil})
	ts := httptest.NewServer(h)
	defer ts.Close()

	userID := "user-1"
	start := "2025-08-05"

	medA := createMedication(t, ts.URL, userID, map[string]any{
		"name": "Droga A", "frequency": "daily", "start_date": start,
	})
	medB := createMedication(t, ts.URL, userID, map[string]any{
		"name": "Droga B", "frequency": "daily", "start_date": start,
	})
	medC := createMedication(t, ts.URL, userID, map[string]any{
		"name": "Droga C", "frequency": "daily", "start_date": start,
	})

	// Tres miembros => 400 (solo grupos de dos)
	{
		st, _ := doReq(t, ts.URL, "POST", "/medications/groups", userID, map[string]any{
			"name":         "Alternados",
			"start_date":   start,
			"frequency":    "every_other_day",
			"schedule_ids": []string{medA, medB, medC},
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for three members, got %d", st)
		}
	}

	// Grupo válido de dos
	var groupID string
	{
		st, body := doReq(t, ts.URL, "POST", "/medications/groups", userID, map[string]any{
			"name":         "Alternados",
			"start_date":   start,
			"frequency":    "every_other_day",
			"schedule_ids": []string{medA, medB},
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 assign group, got %d body=%s", st, string(body))
		}
		var members []struct {
			ID    string `json:"id"`
			Group struct {
				GroupID    string `json:"group_id"`
				GroupOrder int    `json:"group_order"`
			} `json:"group"`
		}
		_ = json.Unmarshal(body, &members)
		if len(members) != 2 {
			t.Fatalf("expected 2 members, body=%s", string(body))
		}
		if members[0].Group.GroupOrder != 1 || members[1].Group.GroupOrder != 2 {
			t.Fatalf("orders must follow input sequence, body=%s", string(body))
		}
		groupID = members[0].Group.GroupID
	}

	// Día 0: solo A pendiente. Día 1: solo B.
	{
		st, body := doReq(t, ts.URL, "GET", "/medications/due?date="+start, userID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 due, got %d", st)
		}
		ids := dueIDs(t, body)
		if len(ids) != 2 || !ids[medA] || !ids[medC] {
			t.Fatalf("day 0: expected A and C due, body=%s", string(body))
		}
	}
	{
		st, body := doReq(t, ts.URL, "GET", "/medications/due?date=2025-08-06", userID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 due, got %d", st)
		}
		ids := dueIDs(t, body)
		if len(ids) != 2 || !ids[medB] || !ids[medC] {
			t.Fatalf("day 1: expected B and C due, body=%s", string(body))
		}
	}

	// Reparación idempotente vía API
	{
		st, body := doReq(t, ts.URL, "POST", "/medications/groups/"+groupID+"/repair", userID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 repair, got %d body=%s", st, string(body))
		}
	}

	// Otro usuario no puede reparar el grupo
	{
		st, _ := doReq(t, ts.URL, "POST", "/medications/groups/"+groupID+"/repair", "user-2", nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 repairing foreign group, got %d", st)
		}
	}

	// Sacar a A disuelve el grupo; ambos vuelven a su regla individual.
	{
		st, body := doReq(t, ts.URL, "DELETE", "/medications/"+medA+"/group", userID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 remove from group, got %d body=%s", st, string(body))
		}
	}
	{
		st, body := doReq(t, ts.URL, "GET", "/medications/due?date=2025-08-06", userID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 due, got %d", st)
		}
		ids := dueIDs(t, body)
		if len(ids) != 3 {
			t.Fatalf("after dissolve all three are daily again, body=%s", string(body))
		}
	}
}

func TestHTTP_Rollover_LogsMissedDose(t *testing.T) {
	h, _ := router.NewRouter(router.Options{AuthVerifier: nil})
	ts := httptest.NewServer(h)
	defer ts.Close()

	userID := "user-1"
	yesterday := time.Now().UTC().AddDate(0, 0, -1).Format("2006-01-02")
	today := time.Now().UTC().Format("2006-01-02")

	medID := createMedication(t, ts.URL, userID, map[string]any{
		"name": "Enalapril", "frequency": "daily", "start_date": yesterday,
	})

	{
		st, _ := doReq(t, ts.URL, "POST", "/medications/rollover?date="+today, userID, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 rollover, got %d", st)
		}
	}

	// El medicamento quedó marcado como olvidado y el historial tiene la
	// entrada MISSED de ayer.
	{
		st, body := doReq(t, ts.URL, "GET", "/medications/"+medID, userID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get, got %d", st)
		}
		var resp struct {
			IsMissed    bool `json:"is_missed"`
			MissedCount int  `json:"missed_count"`
		}
		_ = json.Unmarshal(body, &resp)
		if !resp.IsMissed || resp.MissedCount != 1 {
			t.Fatalf("rollover must accrue the miss, body=%s", string(body))
		}
	}
	{
		st, body := doReq(t, ts.URL, "GET", "/medications/"+medID+"/doses?types=MISSED", userID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 dose history, got %d body=%s", st, string(body))
		}
		var entries []struct {
			Type   string `json:"type"`
			Source string `json:"source"`
		}
		_ = json.Unmarshal(body, &entries)
		if len(entries) != 1 || entries[0].Source != "rollover" {
			t.Fatalf("expected one rollover MISSED entry, body=%s", string(body))
		}
	}
}

func TestHTTP_RequiresUser(t *testing.T) {
	h, _ := router.NewRouter(router.Options{AuthVerifier: nil})
	ts := httptest.NewServer(h)
	defer ts.Close()

	// Sin X-Debug-User-ID ni token => 401
	st, _ := doReq(t, ts.URL, "GET", "/medications", "", nil)
	if st != http.StatusUnauthorized {
		t.Fatalf("expected 401 without user, got %d", st)
	}
}

func createMedication(t *testing.T, baseURL, userID string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/medications", userID, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create medication, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("create medication: missing id body=%s", string(body))
	}
	return resp.ID
}

func dueIDs(t *testing.T, body []byte) map[string]bool {
	t.Helper()

	var items []struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &items); err != nil {
		t.Fatalf("decode due list: %v body=%s", err, string(body))
	}
	out := make(map[string]bool, len(items))
	for _, it := range items {
		out[it.ID] = true
	}
	return out
}

func doReq(t *testing.T, baseURL, method, path, debugUserID string, body any) (int, []byte) {
	t.Helper()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rd)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if debugUserID != "" {
		req.Header.Set("X-Debug-User-ID", debugUserID)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, b
}
