package repository

import (
	"context"
	"database/sql"
	"math"
	"time"

	"github.com/ammowing/lawncare-api/internal/model"
)

// StatsRepo aggregates counts across the business tables for the admin
// dashboard.
type StatsRepo struct{ DB *sql.DB }

func NewStatsRepo(db *sql.DB) *StatsRepo { return &StatsRepo{DB: db} }

// DashboardStats is the /admin/stats response body.
type DashboardStats struct {
	Totals struct {
		Quotes       int64 `json:"quotes"`
		Appointments int64 `json:"appointments"`
		Contacts     int64 `json:"contacts"`
		Testimonials int64 `json:"testimonials"`
		Users        int64 `json:"users"`
	} `json:"totals"`
	Pending struct {
		Quotes       int64 `json:"quotes"`
		Testimonials int64 `json:"testimonials"`
		Contacts     int64 `json:"contacts"`
	} `json:"pending"`
	Appointments struct {
		Scheduled int64 `json:"scheduled"`
		Confirmed int64 `json:"confirmed"`
		Completed int64 `json:"completed"`
	} `json:"appointments"`
	QuotesByStatus map[string]int64 `json:"quotes_by_status"`
	RecentActivity struct {
		Quotes       int64 `json:"quotes"`
		Appointments int64 `json:"appointments"`
		Contacts     int64 `json:"contacts"`
	} `json:"recent_activity"`
	Metrics struct {
		ConversionRate float64 `json:"conversion_rate"`
		AverageRating  float64 `json:"average_rating"`
	} `json:"metrics"`
}

// Dashboard runs the aggregate queries behind the admin dashboard. Recent
// activity covers the trailing 30 days; the conversion rate is accepted
// quotes over all quotes, as a percentage with two decimals.
func (r *StatsRepo) Dashboard(ctx context.Context) (DashboardStats, error) {
	var s DashboardStats

	counts := []struct {
		query string
		dest  *int64
	}{
		{"SELECT COUNT(*) FROM quotes", &s.Totals.Quotes},
		{"SELECT COUNT(*) FROM appointments", &s.Totals.Appointments},
		{"SELECT COUNT(*) FROM contacts", &s.Totals.Contacts},
		{"SELECT COUNT(*) FROM testimonials WHERE is_approved=1", &s.Totals.Testimonials},
		{"SELECT COUNT(*) FROM users", &s.Totals.Users},
		{"SELECT COUNT(*) FROM quotes WHERE status='pending'", &s.Pending.Quotes},
		{"SELECT COUNT(*) FROM testimonials WHERE is_approved=0", &s.Pending.Testimonials},
		{"SELECT COUNT(*) FROM contacts WHERE is_read=0", &s.Pending.Contacts},
		{"SELECT COUNT(*) FROM appointments WHERE status='scheduled'", &s.Appointments.Scheduled},
		{"SELECT COUNT(*) FROM appointments WHERE status='confirmed'", &s.Appointments.Confirmed},
		{"SELECT COUNT(*) FROM appointments WHERE status='completed'", &s.Appointments.Completed},
	}
	for _, c := range counts {
		if err := r.DB.QueryRowContext(ctx, c.query).Scan(c.dest); err != nil {
			return DashboardStats{}, err
		}
	}

	// Quotes grouped by status; zero-fill so every status appears.
	s.QuotesByStatus = make(map[string]int64, len(model.QuoteStatuses))
	for _, st := range model.QuoteStatuses {
		s.QuotesByStatus[st] = 0
	}
	rows, err := r.DB.QueryContext(ctx, "SELECT status, COUNT(*) FROM quotes GROUP BY status")
	if err != nil {
		return DashboardStats{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var (
			st string
			n  int64
		)
		if err := rows.Scan(&st, &n); err != nil {
			return DashboardStats{}, err
		}
		s.QuotesByStatus[st] = n
	}
	if err := rows.Err(); err != nil {
		return DashboardStats{}, err
	}

	since := time.Now().UTC().AddDate(0, 0, -30)
	recent := []struct {
		query string
		dest  *int64
	}{
		{"SELECT COUNT(*) FROM quotes WHERE created_at >= ?", &s.RecentActivity.Quotes},
		{"SELECT COUNT(*) FROM appointments WHERE created_at >= ?", &s.RecentActivity.Appointments},
		{"SELECT COUNT(*) FROM contacts WHERE created_at >= ?", &s.RecentActivity.Contacts},
	}
	for _, c := range recent {
		if err := r.DB.QueryRowContext(ctx, c.query, since).Scan(c.dest); err != nil {
			return DashboardStats{}, err
		}
	}

	if s.Totals.Quotes > 0 {
		var accepted int64
		if err := r.DB.QueryRowContext(ctx,
			"SELECT COUNT(*) FROM quotes WHERE status='accepted'").Scan(&accepted); err != nil {
			return DashboardStats{}, err
		}
		s.Metrics.ConversionRate = round2(float64(accepted) / float64(s.Totals.Quotes) * 100)
	}

	var avg sql.NullFloat64
	if err := r.DB.QueryRowContext(ctx,
		"SELECT AVG(rating) FROM testimonials WHERE is_approved=1").Scan(&avg); err != nil {
		return DashboardStats{}, err
	}
	if avg.Valid {
		s.Metrics.AverageRating = round2(avg.Float64)
	}

	return s, nil
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
