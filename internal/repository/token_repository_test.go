package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTokenMock(t *testing.T) (*TokenRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewTokenRepo(db), mock
}

const tokenSelect = "SELECT user_id, expires_at, revoked_at FROM refresh_tokens"

func TestValidateRefreshLive(t *testing.T) {
	repo, mock := newTokenMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(tokenSelect)).
		WithArgs("somehash").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "expires_at", "revoked_at"}).
			AddRow(42, time.Now().Add(time.Hour), nil))

	userID, err := repo.ValidateRefresh(context.Background(), "somehash")
	require.NoError(t, err)
	assert.Equal(t, uint64(42), userID)
}

func TestValidateRefreshRevoked(t *testing.T) {
	repo, mock := newTokenMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(tokenSelect)).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "expires_at", "revoked_at"}).
			AddRow(42, time.Now().Add(time.Hour), time.Now().Add(-time.Minute)))

	_, err := repo.ValidateRefresh(context.Background(), "somehash")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestValidateRefreshExpired(t *testing.T) {
	repo, mock := newTokenMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(tokenSelect)).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "expires_at", "revoked_at"}).
			AddRow(42, time.Now().Add(-time.Hour), nil))

	_, err := repo.ValidateRefresh(context.Background(), "somehash")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestValidateRefreshUnknownHash(t *testing.T) {
	repo, mock := newTokenMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(tokenSelect)).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "expires_at", "revoked_at"}))

	_, err := repo.ValidateRefresh(context.Background(), "unknown")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}
