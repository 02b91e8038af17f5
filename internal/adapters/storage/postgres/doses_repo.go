package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"med-reminder/internal/domain/doses"
)

type DosesRepo struct {
	db *sql.DB
}

func NewDosesRepo(db *sql.DB) *DosesRepo {
	return &DosesRepo{db: db}
}

func (r *DosesRepo) Create(ctx context.Context, e doses.DoseEntry) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO dose_entries (
			id, schedule_id, owner_user_id,
			type, occurred_at, recorded_at,
			notes, source, status
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		e.ID,
		e.ScheduleID,
		e.OwnerUserID,
		string(e.Type),
		e.OccurredAt,
		e.RecordedAt,
		e.Notes,
		string(e.Source),
		string(e.Status),
	)
	return err
}

func (r *DosesRepo) GetByID(ctx context.Context, id string) (doses.DoseEntry, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return doses.DoseEntry{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, schedule_id, owner_user_id,
			type, occurred_at, recorded_at,
			notes, source, status
		FROM dose_entries
		WHERE id = $1
	`, id)

	var e doses.DoseEntry
	var typ, source, status string
	if err := row.Scan(
		&e.ID,
		&e.ScheduleID,
		&e.OwnerUserID,
		&typ,
		&e.OccurredAt,
		&e.RecordedAt,
		&e.Notes,
		&source,
		&status,
	); err != nil {
		if err == sql.ErrNoRows {
			return doses.DoseEntry{}, ErrNotFound
		}
		return doses.DoseEntry{}, err
	}

	e.Type = doses.DoseType(typ)
	e.Source = doses.Source(source)
	e.Status = doses.DoseStatus(status)
	return e, nil
}

func (r *DosesRepo) ListBySchedule(ctx context.Context, scheduleID string, filter doses.ListFilter) ([]doses.DoseEntry, error) {
	scheduleID = strings.TrimSpace(scheduleID)
	if scheduleID == "" {
		return nil, nil
	}

	sb := strings.Builder{}
	sb.WriteString(`
		SELECT
			id, schedule_id, owner_user_id,
			type, occurred_at, recorded_at,
			notes, source, status
		FROM dose_entries
		WHERE schedule_id = $1
	`)

	args := []any{scheduleID}
	argN := 2

	if len(filter.Types) > 0 {
		placeholders := make([]string, 0, len(filter.Types))
		for _, t := range filter.Types {
			placeholders = append(placeholders, fmt.Sprintf("$%d", argN))
			args = append(args, string(t))
			argN++
		}
		sb.WriteString(" AND type IN (" + strings.Join(placeholders, ",") + ")")
	}

	if filter.From != nil {
		sb.WriteString(fmt.Sprintf(" AND occurred_at >= $%d", argN))
		args = append(args, *filter.From)
		argN++
	}
	if filter.To != nil {
		sb.WriteString(fmt.Sprintf(" AND occurred_at <= $%d", argN))
		args = append(args, *filter.To)
		argN++
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}

	sb.WriteString(" ORDER BY occurred_at DESC")
	sb.WriteString(fmt.Sprintf(" LIMIT $%d", argN))
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]doses.DoseEntry, 0)
	for rows.Next() {
		var e doses.DoseEntry
		var typ, source, status string

		if err := rows.Scan(
			&e.ID,
			&e.ScheduleID,
			&e.OwnerUserID,
			&typ,
			&e.OccurredAt,
			&e.RecordedAt,
			&e.Notes,
			&source,
			&status,
		); err != nil {
			return nil, err
		}

		e.Type = doses.DoseType(typ)
		e.Source = doses.Source(source)
		e.Status = doses.DoseStatus(status)
		out = append(out, e)
	}

	return out, rows.Err()
}

func (r *DosesRepo) Void(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrNotFound
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE dose_entries
		SET status = 'voided'
		WHERE id = $1
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
