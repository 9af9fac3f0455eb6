package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/shenikar/emergency_dispatch_system/internal/service"
)

const agencyColumns = `
	id,
	name,
	email,
	password,
	expertise,
	rescuing_id,
	phone,
	ST_Y(location::geometry) as latitude,
	ST_X(location::geometry) as longitude,
	role,
	verified,
	agency_type,
	last_updated,
	created_at
`

type AgencyRepository struct {
	db *pgxpool.Pool
}

func NewAgencyRepository(db *pgxpool.Pool) service.AgencyRepository {
	return &AgencyRepository{db: db}
}

// Create создает новую запись об агентстве в бд
func (r *AgencyRepository) Create(ctx context.Context, agency *models.Agency) error {
	query := `
		INSERT INTO agencies (name, email, password, expertise, rescuing_id, phone, location, role, verified, agency_type)
		VALUES ($1, $2, $3, $4, $5, $6, ST_SetSRID(ST_MakePoint($7, $8), 4326), $9, $10, $11)
		RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		agency.Name,
		agency.Email,
		agency.Password,
		agency.Expertise,
		agency.RescuingID,
		agency.Phone,
		agency.Longitude,
		agency.Latitude,
		agency.Role,
		agency.Verified,
		agency.AgencyType,
	).Scan(&agency.ID, &agency.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create agency: %w", err)
	}
	return nil
}

// GetByEmail возвращает агентство по email
func (r *AgencyRepository) GetByEmail(ctx context.Context, email string) (*models.Agency, error) {
	query := fmt.Sprintf(`SELECT %s FROM agencies WHERE email = $1;`, agencyColumns)

	agency, err := scanAgencyRow(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("agency with email %s: %w", email, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get agency by email: %w", err)
	}
	return agency, nil
}

// GetByID возвращает агентство по его UUID
func (r *AgencyRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Agency, error) {
	query := fmt.Sprintf(`SELECT %s FROM agencies WHERE id = $1;`, agencyColumns)

	agency, err := scanAgencyRow(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("agency with id %s: %w", id, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get agency by id: %w", err)
	}
	return agency, nil
}

// RescuingIDExists проверяет, занят ли дайджест rescuing id
func (r *AgencyRepository) RescuingIDExists(ctx context.Context, digest string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM agencies WHERE rescuing_id = $1);`

	var exists bool
	if err := r.db.QueryRow(ctx, query, digest).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check rescuing id: %w", err)
	}
	return exists, nil
}

// UpdateLocation обновляет координаты агентства
func (r *AgencyRepository) UpdateLocation(ctx context.Context, id uuid.UUID, lat, lng float64) error {
	query := `
		UPDATE agencies SET
			location = ST_SetSRID(ST_MakePoint($1, $2), 4326),
			last_updated = NOW()
		WHERE id = $3;
	`
	cmdTag, err := r.db.Exec(ctx, query, lng, lat, id)
	if err != nil {
		return fmt.Errorf("failed to update agency location: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("agency with id %s: %w", id, service.ErrNotFound)
	}
	return nil
}

// ListAll возвращает все зарегистрированные агентства
func (r *AgencyRepository) ListAll(ctx context.Context) ([]*models.Agency, error) {
	query := fmt.Sprintf(`SELECT %s FROM agencies ORDER BY created_at;`, agencyColumns)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list agencies: %w", err)
	}
	defer rows.Close()

	return scanAgencies(rows)
}

// ListDispatchCandidates возвращает агентства, пригодные для автоматической
// диспетчеризации: роль ndrf координирует и исключается из выборки
func (r *AgencyRepository) ListDispatchCandidates(ctx context.Context) ([]*models.Agency, error) {
	query := fmt.Sprintf(`SELECT %s FROM agencies WHERE role <> $1;`, agencyColumns)

	rows, err := r.db.Query(ctx, query, models.RoleNDRF)
	if err != nil {
		return nil, fmt.Errorf("failed to list dispatch candidates: %w", err)
	}
	defer rows.Close()

	return scanAgencies(rows)
}

func scanAgencyRow(row pgx.Row) (*models.Agency, error) {
	agency := &models.Agency{}
	err := row.Scan(
		&agency.ID,
		&agency.Name,
		&agency.Email,
		&agency.Password,
		&agency.Expertise,
		&agency.RescuingID,
		&agency.Phone,
		&agency.Latitude,
		&agency.Longitude,
		&agency.Role,
		&agency.Verified,
		&agency.AgencyType,
		&agency.LastUpdated,
		&agency.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return agency, nil
}

func scanAgencies(rows pgx.Rows) ([]*models.Agency, error) {
	agencies := make([]*models.Agency, 0)
	for rows.Next() {
		agency, err := scanAgencyRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan agency row: %w", err)
		}
		agencies = append(agencies, agency)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error agency list iteration: %w", err)
	}
	return agencies, nil
}
