package repository

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/ammowing/lawncare-api/internal/model"
)

// ServiceRepo persists catalog services. The features list is stored as a
// JSON array in a TEXT column.
type ServiceRepo struct{ DB *sql.DB }

func NewServiceRepo(db *sql.DB) *ServiceRepo { return &ServiceRepo{DB: db} }

const serviceCols = "id,name,slug,description,short_description,base_price,price_unit,features,icon,is_active,display_order,created_at,updated_at"

// Create inserts a service and sets its ID. A colliding slug yields
// ErrSlugExists.
func (r *ServiceRepo) Create(ctx context.Context, s *model.Service) error {
	features, err := json.Marshal(s.Features)
	if err != nil {
		return err
	}
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO services (name, slug, description, short_description, base_price, price_unit, features, icon, is_active, display_order)
		 VALUES (?,?,?,?,?,?,?,?,?,?)`,
		s.Name, s.Slug, s.Description, s.ShortDescription, s.BasePrice, s.PriceUnit,
		string(features), s.Icon, s.IsActive, s.DisplayOrder)
	if err != nil {
		if isDuplicate(err) {
			return ErrSlugExists
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)
	return nil
}

// GetByID fetches a service by id.
func (r *ServiceRepo) GetByID(ctx context.Context, id uint64) (model.Service, error) {
	return scanService(r.DB.QueryRowContext(ctx,
		"SELECT "+serviceCols+" FROM services WHERE id=? LIMIT 1", id))
}

// GetBySlug fetches a service by its URL slug.
func (r *ServiceRepo) GetBySlug(ctx context.Context, slug string) (model.Service, error) {
	return scanService(r.DB.QueryRowContext(ctx,
		"SELECT "+serviceCols+" FROM services WHERE slug=? LIMIT 1", slug))
}

// List returns services ordered for display. When activeOnly is set, hidden
// services are excluded.
func (r *ServiceRepo) List(ctx context.Context, activeOnly bool, skip, limit int) ([]model.Service, error) {
	q := "SELECT " + serviceCols + " FROM services"
	if activeOnly {
		q += " WHERE is_active=1"
	}
	q += " ORDER BY display_order, name LIMIT ? OFFSET ?"
	rows, err := r.DB.QueryContext(ctx, q, limit, skip)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Service{}
	for rows.Next() {
		s, err := scanServiceRows(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Update rewrites every mutable column of the service. Slug conflicts yield
// ErrSlugExists.
func (r *ServiceRepo) Update(ctx context.Context, s *model.Service) error {
	features, err := json.Marshal(s.Features)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx,
		`UPDATE services SET name=?, slug=?, description=?, short_description=?, base_price=?,
		 price_unit=?, features=?, icon=?, is_active=?, display_order=?, updated_at=NOW() WHERE id=?`,
		s.Name, s.Slug, s.Description, s.ShortDescription, s.BasePrice, s.PriceUnit,
		string(features), s.Icon, s.IsActive, s.DisplayOrder, s.ID)
	if isDuplicate(err) {
		return ErrSlugExists
	}
	return err
}

// Delete removes a service. Missing rows yield ErrNotFound.
func (r *ServiceRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM services WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func scanService(row *sql.Row) (model.Service, error) {
	var (
		s        model.Service
		features sql.NullString
	)
	err := row.Scan(&s.ID, &s.Name, &s.Slug, &s.Description, &s.ShortDescription,
		&s.BasePrice, &s.PriceUnit, &features, &s.Icon, &s.IsActive, &s.DisplayOrder,
		&s.CreatedAt, &s.UpdatedAt)
	if err == sql.ErrNoRows {
		return model.Service{}, ErrNotFound
	}
	if err != nil {
		return model.Service{}, err
	}
	decodeFeatures(&s, features)
	return s, nil
}

func scanServiceRows(rows *sql.Rows) (model.Service, error) {
	var (
		s        model.Service
		features sql.NullString
	)
	err := rows.Scan(&s.ID, &s.Name, &s.Slug, &s.Description, &s.ShortDescription,
		&s.BasePrice, &s.PriceUnit, &features, &s.Icon, &s.IsActive, &s.DisplayOrder,
		&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return model.Service{}, err
	}
	decodeFeatures(&s, features)
	return s, nil
}

func decodeFeatures(s *model.Service, raw sql.NullString) {
	if raw.Valid && raw.String != "" {
		// A corrupt features column should not break listings; leave nil.
		_ = json.Unmarshal([]byte(raw.String), &s.Features)
	}
}
