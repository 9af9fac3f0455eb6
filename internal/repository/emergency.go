package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/shenikar/emergency_dispatch_system/internal/service"
)

type EmergencyRepository struct {
	db *pgxpool.Pool
}

func NewEmergencyRepository(db *pgxpool.Pool) service.EmergencyRepository {
	return &EmergencyRepository{db: db}
}

// Create создает новую запись об экстренном сообщении в бд
func (r *EmergencyRepository) Create(ctx context.Context, emergency *models.Emergency) error {
	query := `
		INSERT INTO emergencies (location, description, tag, severity, status, reported_by)
		VALUES (ST_SetSRID(ST_MakePoint($1, $2), 4326), $3, $4, $5, $6, $7)
		RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		emergency.Longitude,
		emergency.Latitude,
		emergency.Description,
		emergency.Tag,
		emergency.Severity,
		emergency.Status,
		emergency.ReportedBy,
	).Scan(&emergency.ID, &emergency.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create emergency: %w", err)
	}
	return nil
}

// ListPending возвращает ожидающие сообщения, новые первыми
func (r *EmergencyRepository) ListPending(ctx context.Context) ([]*models.Emergency, error) {
	query := `
		SELECT
			id,
			ST_Y(location::geometry) as latitude,
			ST_X(location::geometry) as longitude,
			description,
			tag,
			severity,
			status,
			reported_by,
			created_at
		FROM emergencies
		WHERE status = $1
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, query, models.StatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending emergencies: %w", err)
	}
	defer rows.Close()

	emergencies := make([]*models.Emergency, 0)
	for rows.Next() {
		emergency := &models.Emergency{}
		err := rows.Scan(
			&emergency.ID,
			&emergency.Latitude,
			&emergency.Longitude,
			&emergency.Description,
			&emergency.Tag,
			&emergency.Severity,
			&emergency.Status,
			&emergency.ReportedBy,
			&emergency.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan emergency row: %w", err)
		}
		emergencies = append(emergencies, emergency)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error emergency list iteration: %w", err)
	}
	return emergencies, nil
}

// DeleteByID удаляет одно экстренное сообщение
func (r *EmergencyRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM emergencies WHERE id = $1;`

	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete emergency: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("emergency with id %s: %w", id, service.ErrNotFound)
	}
	return nil
}

// DeleteAll удаляет все экстренные сообщения и возвращает их количество
func (r *EmergencyRepository) DeleteAll(ctx context.Context) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM emergencies;`)
	if err != nil {
		return 0, fmt.Errorf("failed to delete all emergencies: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}
