package repository

import (
	"context"
	"database/sql"

	"github.com/ammowing/lawncare-api/internal/model"
)

// TestimonialRepo persists customer testimonials.
type TestimonialRepo struct{ DB *sql.DB }

func NewTestimonialRepo(db *sql.DB) *TestimonialRepo { return &TestimonialRepo{DB: db} }

const testimonialCols = "id,user_id,customer_name,customer_email,customer_location,rating," +
	"title,content,service_type,is_approved,is_featured,created_at,updated_at,approved_at"

// Create inserts a testimonial and sets its ID.
func (r *TestimonialRepo) Create(ctx context.Context, t *model.Testimonial) error {
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO testimonials (user_id, customer_name, customer_email, customer_location,
		 rating, title, content, service_type, is_approved, is_featured)
		 VALUES (?,?,?,?,?,?,?,?,?,?)`,
		nullID(t.UserID), t.CustomerName, t.CustomerEmail, t.CustomerLocation,
		t.Rating, t.Title, t.Content, t.ServiceType, t.IsApproved, t.IsFeatured)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	t.ID = uint64(id)
	return nil
}

// GetByID fetches a testimonial by id.
func (r *TestimonialRepo) GetByID(ctx context.Context, id uint64) (model.Testimonial, error) {
	row := r.DB.QueryRowContext(ctx,
		"SELECT "+testimonialCols+" FROM testimonials WHERE id=? LIMIT 1", id)
	t, err := scanTestimonial(row.Scan)
	if err == sql.ErrNoRows {
		return model.Testimonial{}, ErrNotFound
	}
	return t, err
}

// List returns testimonials, featured first then newest. approvedOnly hides
// unmoderated entries; featuredOnly narrows to featured ones.
func (r *TestimonialRepo) List(ctx context.Context, approvedOnly, featuredOnly bool, skip, limit int) ([]model.Testimonial, error) {
	q := "SELECT " + testimonialCols + " FROM testimonials WHERE 1=1"
	if approvedOnly {
		q += " AND is_approved=1"
	}
	if featuredOnly {
		q += " AND is_featured=1"
	}
	q += " ORDER BY is_featured DESC, created_at DESC LIMIT ? OFFSET ?"
	rows, err := r.DB.QueryContext(ctx, q, limit, skip)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Testimonial{}
	for rows.Next() {
		t, err := scanTestimonial(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// Update rewrites every mutable column of the testimonial.
func (r *TestimonialRepo) Update(ctx context.Context, t *model.Testimonial) error {
	_, err := r.DB.ExecContext(ctx,
		`UPDATE testimonials SET customer_name=?, customer_email=?, customer_location=?, rating=?,
		 title=?, content=?, service_type=?, is_approved=?, is_featured=?, approved_at=?, updated_at=NOW()
		 WHERE id=?`,
		t.CustomerName, t.CustomerEmail, t.CustomerLocation, t.Rating, t.Title, t.Content,
		t.ServiceType, t.IsApproved, t.IsFeatured, nullTime(t.ApprovedAt), t.ID)
	return err
}

// Delete removes a testimonial. Missing rows yield ErrNotFound.
func (r *TestimonialRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM testimonials WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func scanTestimonial(scan func(dest ...interface{}) error) (model.Testimonial, error) {
	var (
		t          model.Testimonial
		userID     sql.NullInt64
		approvedAt sql.NullTime
	)
	err := scan(&t.ID, &userID, &t.CustomerName, &t.CustomerEmail, &t.CustomerLocation,
		&t.Rating, &t.Title, &t.Content, &t.ServiceType, &t.IsApproved, &t.IsFeatured,
		&t.CreatedAt, &t.UpdatedAt, &approvedAt)
	if err != nil {
		return model.Testimonial{}, err
	}
	t.UserID = idPtr(userID)
	t.ApprovedAt = timePtr(approvedAt)
	return t, nil
}
