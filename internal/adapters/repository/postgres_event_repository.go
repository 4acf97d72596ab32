package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/taskhawk/taskhawk-api/internal/core/domain"
)

type PostgresEventRepository struct {
	db *sqlx.DB
}

func NewPostgresEventRepository(db *sqlx.DB) *PostgresEventRepository {
	return &PostgresEventRepository{db: db}
}

func (r *PostgresEventRepository) Create(ctx context.Context, event *domain.CalendarEvent) error {
	query := `
		INSERT INTO calendar_events (
			id, user_id, title, description,
			start_at, end_at, priority, type,
			created_at, updated_at
		) VALUES (
			:id, :user_id, :title, :description,
			:start_at, :end_at, :priority, :type,
			:created_at, :updated_at
		)`

	_, err := r.db.NamedExecContext(ctx, query, event)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
			return errors.New("referenced user does not exist")
		}
		return fmt.Errorf("failed to insert event: %w", err)
	}
	return nil
}

func (r *PostgresEventRepository) GetByID(ctx context.Context, id string) (*domain.CalendarEvent, error) {
	var event domain.CalendarEvent
	query := `SELECT * FROM calendar_events WHERE id = $1`

	err := r.db.GetContext(ctx, &event, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("database scan error: %w", err)
	}
	return &event, nil
}

func (r *PostgresEventRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.CalendarEvent, error) {
	events := []*domain.CalendarEvent{}

	query := `
		SELECT * FROM calendar_events
		WHERE user_id = $1
		ORDER BY start_at ASC`

	if err := r.db.SelectContext(ctx, &events, query, userID); err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}
	return events, nil
}

func (r *PostgresEventRepository) ListByUserIDAndRange(ctx context.Context, userID string, from, to time.Time) ([]*domain.CalendarEvent, error) {
	events := []*domain.CalendarEvent{}

	query := `
		SELECT * FROM calendar_events
		WHERE user_id = $1
		  AND start_at >= $2
		  AND end_at <= $3
		ORDER BY start_at ASC`

	if err := r.db.SelectContext(ctx, &events, query, userID, from, to); err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}
	return events, nil
}

func (r *PostgresEventRepository) Update(ctx context.Context, event *domain.CalendarEvent) error {
	query := `
		UPDATE calendar_events SET
			title = :title,
			description = :description,
			start_at = :start_at,
			end_at = :end_at,
			priority = :priority,
			type = :type,
			updated_at = :updated_at
		WHERE id = :id`

	res, err := r.db.NamedExecContext(ctx, query, event)
	if err != nil {
		return fmt.Errorf("update query failed: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

func (r *PostgresEventRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM calendar_events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete query failed: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}
