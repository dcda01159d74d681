package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ammowing/lawncare-api/internal/model"
)

func newServiceMock(t *testing.T) (*ServiceRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewServiceRepo(db), mock
}

func TestServiceCreateSlugConflict(t *testing.T) {
	repo, mock := newServiceMock(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO services")).
		WillReturnError(errors.New("Error 1062 (23000): Duplicate entry 'lawn-mowing' for key 'services.slug'"))

	err := repo.Create(context.Background(), &model.Service{Name: "Lawn Mowing", Slug: "lawn-mowing"})
	assert.ErrorIs(t, err, ErrSlugExists)
}

func TestServiceGetBySlugDecodesFeatures(t *testing.T) {
	repo, mock := newServiceMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WithArgs("lawn-mowing").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "slug", "description", "short_description", "base_price",
			"price_unit", "features", "icon", "is_active", "display_order", "created_at", "updated_at",
		}).AddRow(1, "Lawn Mowing", "lawn-mowing", "desc", "short", 49.0,
			"per service", `["edging","clippings removed"]`, "mower", true, 1, now, now))

	svc, err := repo.GetBySlug(context.Background(), "lawn-mowing")
	require.NoError(t, err)
	assert.Equal(t, []string{"edging", "clippings removed"}, svc.Features)
	assert.Equal(t, 49.0, svc.BasePrice)
}

func TestServiceDeleteMissing(t *testing.T) {
	repo, mock := newServiceMock(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM services")).
		WithArgs(uint64(5)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 5)
	assert.ErrorIs(t, err, ErrNotFound)
}
