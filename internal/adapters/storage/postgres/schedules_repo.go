package postgres

import (
	"context"
	"database/sql"
	"strconv"
	"strings"
	"time"

	"med-reminder/internal/domain/schedules"
)

// Tabla esperada: medication_schedules
//
//	id, owner_user_id, name, dosage,
//	frequency, custom_days (csv de weekdays 0-6),
//	start_date, hour, minute, is_active,
//	taken_today, taken_at, last_taken_at,
//	remaining_quantity, total_quantity,
//	is_missed, missed_count,
//	group_id, group_name, group_order, group_start_date,
//	group_frequency, group_size, group_validation_hash,
//	created_at, updated_at
type SchedulesRepo struct {
	db *sql.DB
}

func NewSchedulesRepo(db *sql.DB) *SchedulesRepo {
	return &SchedulesRepo{db: db}
}

const scheduleColumns = `
	id, owner_user_id, name, dosage,
	frequency, custom_days,
	start_date, hour, minute, is_active,
	taken_today, taken_at, last_taken_at,
	remaining_quantity, total_quantity,
	is_missed, missed_count,
	group_id, group_name, group_order, group_start_date,
	group_frequency, group_size, group_validation_hash,
	created_at, updated_at
`

func (r *SchedulesRepo) Create(ctx context.Context, s schedules.MedicationSchedule) error {
	args := scheduleArgs(s)
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO medication_schedules (`+scheduleColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23,$24,$25,$26)
	`, args...)
	return err
}

func (r *SchedulesRepo) Update(ctx context.Context, s schedules.MedicationSchedule) error {
	args := scheduleArgs(s)
	res, err := r.db.ExecContext(ctx, `
		UPDATE medication_schedules SET
			owner_user_id=$2, name=$3, dosage=$4,
			frequency=$5, custom_days=$6,
			start_date=$7, hour=$8, minute=$9, is_active=$10,
			taken_today=$11, taken_at=$12, last_taken_at=$13,
			remaining_quantity=$14, total_quantity=$15,
			is_missed=$16, missed_count=$17,
			group_id=$18, group_name=$19, group_order=$20, group_start_date=$21,
			group_frequency=$22, group_size=$23, group_validation_hash=$24,
			created_at=$25, updated_at=$26
		WHERE id=$1
	`, args...)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SchedulesRepo) GetByID(ctx context.Context, id string) (schedules.MedicationSchedule, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return schedules.MedicationSchedule{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+scheduleColumns+`
		FROM medication_schedules
		WHERE id = $1
	`, id)

	s, err := scanSchedule(row)
	if err == sql.ErrNoRows {
		return schedules.MedicationSchedule{}, ErrNotFound
	}
	return s, err
}

func (r *SchedulesRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]schedules.MedicationSchedule, error) {
	// Orden estable por creación: el filtro de pendientes preserva este orden.
	return r.list(ctx, `
		SELECT `+scheduleColumns+`
		FROM medication_schedules
		WHERE owner_user_id = $1
		ORDER BY created_at, id
	`, ownerUserID)
}

func (r *SchedulesRepo) ListOwners(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT DISTINCT owner_user_id
		FROM medication_schedules
		ORDER BY owner_user_id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var owner string
		if err := rows.Scan(&owner); err != nil {
			return nil, err
		}
		out = append(out, owner)
	}
	return out, rows.Err()
}

func (r *SchedulesRepo) ListByGroup(ctx context.Context, groupID string) ([]schedules.MedicationSchedule, error) {
	return r.list(ctx, `
		SELECT `+scheduleColumns+`
		FROM medication_schedules
		WHERE group_id = $1
		ORDER BY created_at, id
	`, groupID)
}

func (r *SchedulesRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM medication_schedules WHERE id = $1
	`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SchedulesRepo) list(ctx context.Context, query string, arg any) ([]schedules.MedicationSchedule, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]schedules.MedicationSchedule, 0)
	for rows.Next() {
		s, err := scanSchedule(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func scheduleArgs(s schedules.MedicationSchedule) []any {
	var (
		groupID, groupName, groupFreq, groupHash sql.NullString
		groupOrder, groupSize                    sql.NullInt64
		groupStart                               sql.NullTime
	)
	if s.Group != nil {
		groupID = sql.NullString{String: s.Group.GroupID, Valid: true}
		groupName = sql.NullString{String: s.Group.GroupName, Valid: true}
		groupFreq = sql.NullString{String: string(s.Group.GroupFrequency), Valid: true}
		groupHash = sql.NullString{String: s.Group.ValidationHash, Valid: true}
		groupOrder = sql.NullInt64{Int64: int64(s.Group.GroupOrder), Valid: true}
		groupSize = sql.NullInt64{Int64: int64(s.Group.GroupSize), Valid: true}
		groupStart = sql.NullTime{Time: s.Group.GroupStartDate, Valid: true}
	}

	return []any{
		s.ID,
		s.OwnerUserID,
		s.Name,
		s.Dosage,
		string(s.Frequency),
		encodeWeekdays(s.CustomDays),
		s.StartDate,
		s.Hour,
		s.Minute,
		s.IsActive,
		s.TakenToday,
		nullableTime(s.TakenAt),
		nullableTime(s.LastTakenAt),
		s.RemainingQuantity,
		s.TotalQuantity,
		s.IsMissed,
		s.MissedCount,
		groupID,
		groupName,
		groupOrder,
		groupStart,
		groupFreq,
		groupSize,
		groupHash,
		s.CreatedAt,
		s.UpdatedAt,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSchedule(row rowScanner) (schedules.MedicationSchedule, error) {
	var (
		s          schedules.MedicationSchedule
		freq       string
		customDays string
		takenAt    sql.NullTime
		lastTaken  sql.NullTime

		groupID, groupName, groupFreq, groupHash sql.NullString
		groupOrder, groupSize                    sql.NullInt64
		groupStart                               sql.NullTime
	)

	if err := row.Scan(
		&s.ID,
		&s.OwnerUserID,
		&s.Name,
		&s.Dosage,
		&freq,
		&customDays,
		&s.StartDate,
		&s.Hour,
		&s.Minute,
		&s.IsActive,
		&s.TakenToday,
		&takenAt,
		&lastTaken,
		&s.RemainingQuantity,
		&s.TotalQuantity,
		&s.IsMissed,
		&s.MissedCount,
		&groupID,
		&groupName,
		&groupOrder,
		&groupStart,
		&groupFreq,
		&groupSize,
		&groupHash,
		&s.CreatedAt,
		&s.UpdatedAt,
	); err != nil {
		return schedules.MedicationSchedule{}, err
	}

	s.Frequency = schedules.FrequencyKind(freq)
	s.CustomDays = decodeWeekdays(customDays)
	if takenAt.Valid {
		t := takenAt.Time
		s.TakenAt = &t
	}
	if lastTaken.Valid {
		t := lastTaken.Time
		s.LastTakenAt = &t
	}

	if groupID.Valid && groupID.String != "" {
		s.Group = &schedules.GroupAssignment{
			GroupID:        groupID.String,
			GroupName:      groupName.String,
			GroupOrder:     int(groupOrder.Int64),
			GroupStartDate: groupStart.Time,
			GroupFrequency: schedules.FrequencyKind(groupFreq.String),
			GroupSize:      int(groupSize.Int64),
			ValidationHash: groupHash.String,
		}
	}

	return s, nil
}

func nullableTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

// encodeWeekdays serializa el set de días como csv ("1,3,5"); legible y
// suficiente para un set de a lo sumo 7 valores.
func encodeWeekdays(days []time.Weekday) string {
	if len(days) == 0 {
		return ""
	}
	parts := make([]string, 0, len(days))
	for _, d := range days {
		parts = append(parts, strconv.Itoa(int(d)))
	}
	return strings.Join(parts, ",")
}

func decodeWeekdays(raw string) []time.Weekday {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]time.Weekday, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 || n > 6 {
			continue
		}
		out = append(out, time.Weekday(n))
	}
	return out
}
