package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"prepmate-backend/internal/models"
)

type DomainRepo struct {
	pool *pgxpool.Pool
}

func NewDomainRepo(pool *pgxpool.Pool) *DomainRepo {
	return &DomainRepo{pool: pool}
}

func (r *DomainRepo) Create(ctx context.Context, d *models.Domain) error {
	d.ID = uuid.New()
	query := `INSERT INTO domains (id, name, icon, description)
		VALUES ($1, $2, $3, $4) RETURNING created_at`

	return r.pool.QueryRow(ctx, query, d.ID, d.Name, d.Icon, d.Description).Scan(&d.CreatedAt)
}

func (r *DomainRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Domain, error) {
	d := &models.Domain{}
	query := `SELECT id, name, icon, description, created_at FROM domains WHERE id = $1`

	err := r.pool.QueryRow(ctx, query, id).Scan(&d.ID, &d.Name, &d.Icon, &d.Description, &d.CreatedAt)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (r *DomainRepo) List(ctx context.Context) ([]*models.Domain, error) {
	query := `SELECT id, name, icon, description, created_at FROM domains ORDER BY name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var domains []*models.Domain
	for rows.Next() {
		d := &models.Domain{}
		if err := rows.Scan(&d.ID, &d.Name, &d.Icon, &d.Description, &d.CreatedAt); err != nil {
			return nil, err
		}
		domains = append(domains, d)
	}
	return domains, rows.Err()
}

func (r *DomainRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, "DELETE FROM domains WHERE id = $1", id)
	return err
}
