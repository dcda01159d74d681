package repository

import (
	"context"
	"database/sql"

	"github.com/ammowing/lawncare-api/internal/model"
)

// ContactRepo persists contact-form submissions.
type ContactRepo struct{ DB *sql.DB }

func NewContactRepo(db *sql.DB) *ContactRepo { return &ContactRepo{DB: db} }

const contactCols = "id,full_name,email,phone,subject,service_type,message,is_read,is_replied,created_at,read_at,replied_at"

// Create inserts a submission and sets its ID.
func (r *ContactRepo) Create(ctx context.Context, c *model.Contact) error {
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO contacts (full_name, email, phone, subject, service_type, message)
		 VALUES (?,?,?,?,?,?)`,
		c.FullName, c.Email, c.Phone, c.Subject, c.ServiceType, c.Message)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	c.ID = uint64(id)
	return nil
}

// GetByID fetches a submission by id.
func (r *ContactRepo) GetByID(ctx context.Context, id uint64) (model.Contact, error) {
	row := r.DB.QueryRowContext(ctx,
		"SELECT "+contactCols+" FROM contacts WHERE id=? LIMIT 1", id)
	c, err := scanContact(row.Scan)
	if err == sql.ErrNoRows {
		return model.Contact{}, ErrNotFound
	}
	return c, err
}

// List returns submissions newest first; unreadOnly narrows to unread ones.
func (r *ContactRepo) List(ctx context.Context, unreadOnly bool, skip, limit int) ([]model.Contact, error) {
	q := "SELECT " + contactCols + " FROM contacts"
	if unreadOnly {
		q += " WHERE is_read=0"
	}
	q += " ORDER BY created_at DESC LIMIT ? OFFSET ?"
	rows, err := r.DB.QueryContext(ctx, q, limit, skip)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Contact{}
	for rows.Next() {
		c, err := scanContact(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Update persists the read/replied flags and their timestamps.
func (r *ContactRepo) Update(ctx context.Context, c *model.Contact) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE contacts SET is_read=?, is_replied=?, read_at=?, replied_at=? WHERE id=?",
		c.IsRead, c.IsReplied, nullTime(c.ReadAt), nullTime(c.RepliedAt), c.ID)
	return err
}

// Delete removes a submission. Missing rows yield ErrNotFound.
func (r *ContactRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM contacts WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func scanContact(scan func(dest ...interface{}) error) (model.Contact, error) {
	var (
		c                 model.Contact
		readAt, repliedAt sql.NullTime
	)
	err := scan(&c.ID, &c.FullName, &c.Email, &c.Phone, &c.Subject, &c.ServiceType,
		&c.Message, &c.IsRead, &c.IsReplied, &c.CreatedAt, &readAt, &repliedAt)
	if err != nil {
		return model.Contact{}, err
	}
	c.ReadAt = timePtr(readAt)
	c.RepliedAt = timePtr(repliedAt)
	return c, nil
}
