package repository

import (
	"context"
	"database/sql"

	"github.com/ammowing/lawncare-api/internal/model"
)

// QuoteRepo persists quote requests.
type QuoteRepo struct{ DB *sql.DB }

func NewQuoteRepo(db *sql.DB) *QuoteRepo { return &QuoteRepo{DB: db} }

const quoteCols = "id,user_id,full_name,email,phone,address,property_size,property_type," +
	"service_type,service_frequency,preferred_start_date,additional_details,status," +
	"quoted_price,quote_notes,created_at,updated_at,reviewed_at"

// Create inserts a quote request and sets its ID.
func (r *QuoteRepo) Create(ctx context.Context, q *model.Quote) error {
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO quotes (user_id, full_name, email, phone, address, property_size, property_type,
		 service_type, service_frequency, preferred_start_date, additional_details, status)
		 VALUES (?,?,?,?,?,?,?,?,?,?,?,?)`,
		nullID(q.UserID), q.FullName, q.Email, q.Phone, q.Address, nullFloat(q.PropertySize),
		q.PropertyType, q.ServiceType, q.ServiceFrequency, nullTime(q.PreferredStartDate),
		q.AdditionalDetails, q.Status)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	q.ID = uint64(id)
	return nil
}

// GetByID fetches a quote by id.
func (r *QuoteRepo) GetByID(ctx context.Context, id uint64) (model.Quote, error) {
	row := r.DB.QueryRowContext(ctx,
		"SELECT "+quoteCols+" FROM quotes WHERE id=? LIMIT 1", id)
	q, err := scanQuote(row.Scan)
	if err == sql.ErrNoRows {
		return model.Quote{}, ErrNotFound
	}
	return q, err
}

// List returns quotes newest first, optionally filtered by status.
func (r *QuoteRepo) List(ctx context.Context, status string, skip, limit int) ([]model.Quote, error) {
	q := "SELECT " + quoteCols + " FROM quotes"
	args := []interface{}{}
	if status != "" {
		q += " WHERE status=?"
		args = append(args, status)
	}
	q += " ORDER BY created_at DESC LIMIT ? OFFSET ?"
	args = append(args, limit, skip)

	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Quote{}
	for rows.Next() {
		item, err := scanQuote(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

// Update rewrites every mutable column of the quote.
func (r *QuoteRepo) Update(ctx context.Context, q *model.Quote) error {
	_, err := r.DB.ExecContext(ctx,
		`UPDATE quotes SET property_size=?, property_type=?, service_type=?, service_frequency=?,
		 preferred_start_date=?, additional_details=?, status=?, quoted_price=?, quote_notes=?,
		 reviewed_at=?, updated_at=NOW() WHERE id=?`,
		nullFloat(q.PropertySize), q.PropertyType, q.ServiceType, q.ServiceFrequency,
		nullTime(q.PreferredStartDate), q.AdditionalDetails, q.Status, nullFloat(q.QuotedPrice),
		q.QuoteNotes, nullTime(q.ReviewedAt), q.ID)
	return err
}

// Delete removes a quote. Missing rows yield ErrNotFound.
func (r *QuoteRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM quotes WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func scanQuote(scan func(dest ...interface{}) error) (model.Quote, error) {
	var (
		q             model.Quote
		userID        sql.NullInt64
		propertySize  sql.NullFloat64
		preferredDate sql.NullTime
		quotedPrice   sql.NullFloat64
		reviewedAt    sql.NullTime
	)
	err := scan(&q.ID, &userID, &q.FullName, &q.Email, &q.Phone, &q.Address, &propertySize,
		&q.PropertyType, &q.ServiceType, &q.ServiceFrequency, &preferredDate,
		&q.AdditionalDetails, &q.Status, &quotedPrice, &q.QuoteNotes,
		&q.CreatedAt, &q.UpdatedAt, &reviewedAt)
	if err != nil {
		return model.Quote{}, err
	}
	q.UserID = idPtr(userID)
	q.PropertySize = floatPtr(propertySize)
	q.PreferredStartDate = timePtr(preferredDate)
	q.QuotedPrice = floatPtr(quotedPrice)
	q.ReviewedAt = timePtr(reviewedAt)
	return q, nil
}
