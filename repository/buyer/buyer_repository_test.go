package buyer_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/krishsharda/Buyer-Leads/constant"
	"github.com/krishsharda/Buyer-Leads/model"
	buyerrepo "github.com/krishsharda/Buyer-Leads/repository/buyer"
	cerr "github.com/krishsharda/Buyer-Leads/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	columns = []string{
		"id", "full_name", "email", "phone", "city", "property_type", "bhk", "purpose", "budget_min", "budget_max",
		"timeline", "source", "status", "notes", "tags", "owner_id", "created_at", "updated_at",
	}
	storedAt = time.Date(2025, 5, 1, 9, 30, 0, 0, time.UTC)
)

func newRepo(t *testing.T) (buyerrepo.BuyerRepository, *sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	conn := sqlx.NewDb(db, "mysql")
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		conn.Close()
	})
	return buyerrepo.NewBuyerRepository(conn), conn, mock
}

func buyerRow(status string, updatedAt time.Time) *sqlmock.Rows {
	return sqlmock.NewRows(columns).AddRow(
		"b-1", "Asha Verma", nil, "9876543210", "Mohali", "Apartment", "2", "Buy", int64(4000000), nil,
		"0-3m", "Website", status, nil, `["hot","nri"]`, "u-1", storedAt, updatedAt,
	)
}

func TestSQL_GetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, _, mock := newRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM buyer WHERE id = ?")).
			WithArgs("b-1").
			WillReturnRows(buyerRow("New", storedAt))

		got, err := repo.GetByID(context.Background(), "b-1")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Asha Verma", got.FullName)
		assert.Nil(t, got.Email)
		assert.Equal(t, "2", *got.BHK)
		assert.Equal(t, int64(4000000), *got.BudgetMin)
		assert.Nil(t, got.BudgetMax)
		assert.Equal(t, model.Tags{"hot", "nri"}, got.Tags)
		assert.True(t, got.UpdatedAt.Equal(storedAt))
	})

	t.Run("absent", func(t *testing.T) {
		repo, _, mock := newRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM buyer WHERE id = ?")).
			WithArgs("b-404").
			WillReturnRows(sqlmock.NewRows(columns))

		got, err := repo.GetByID(context.Background(), "b-404")
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("driver error", func(t *testing.T) {
		repo, _, mock := newRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM buyer WHERE id = ?")).
			WillReturnError(errors.New("bad connection"))

		_, err := repo.GetByID(context.Background(), "b-1")
		assert.Error(t, err)
	})
}

func TestSQL_Create(t *testing.T) {
	repo, _, mock := newRepo(t)
	budget := int64(4000000)
	b := &model.Buyer{
		ID: "b-1", FullName: "Asha Verma", Phone: "9876543210", City: "Mohali", PropertyType: "Office",
		Purpose: "Buy", BudgetMin: &budget, Timeline: "0-3m", Source: "Website", Status: "New",
		OwnerID: "u-1", CreatedAt: storedAt, UpdatedAt: storedAt,
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO buyer (")).
		WithArgs("b-1", "Asha Verma", nil, "9876543210", "Mohali", "Office", nil, "Buy", int64(4000000), nil,
			"0-3m", "Website", "New", nil, "[]", "u-1", storedAt, storedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	got, err := repo.Create(context.Background(), b)
	require.NoError(t, err)
	assert.Equal(t, model.Tags{}, got.Tags)
}

func TestSQL_CreateTx(t *testing.T) {
	repo, conn, mock := newRepo(t)
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO buyer (")).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO buyer (")).WillReturnError(errors.New("duplicate"))
	mock.ExpectRollback()

	tx, err := conn.Beginx()
	require.NoError(t, err)
	require.NoError(t, repo.CreateTx(context.Background(), tx, &model.Buyer{ID: "b-1", Tags: model.Tags{"hot"}}))
	assert.Error(t, repo.CreateTx(context.Background(), tx, &model.Buyer{ID: "b-2"}))
	require.NoError(t, tx.Rollback())
}

func TestSQL_Update(t *testing.T) {
	updatedAt := storedAt.Add(time.Minute)
	req := &model.BuyerUpdate{
		ID:                "b-1",
		Columns:           map[string]any{"status": constant.StatusConverted},
		UpdatedAt:         updatedAt,
		ExpectedUpdatedAt: storedAt,
	}
	updateSQL := regexp.QuoteMeta("UPDATE buyer SET status = ?, updated_at = ? WHERE id = ? AND updated_at = ?")

	t.Run("success", func(t *testing.T) {
		repo, _, mock := newRepo(t)
		mock.ExpectExec(updateSQL).
			WithArgs(constant.StatusConverted, updatedAt, "b-1", storedAt).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(regexp.QuoteMeta("FROM buyer WHERE id = ?")).
			WithArgs("b-1").
			WillReturnRows(buyerRow(constant.StatusConverted, updatedAt))

		got, err := repo.Update(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, constant.StatusConverted, got.Status)
		assert.True(t, got.UpdatedAt.Equal(updatedAt))
	})

	t.Run("stale row is a conflict", func(t *testing.T) {
		repo, _, mock := newRepo(t)
		mock.ExpectExec(updateSQL).WillReturnResult(sqlmock.NewResult(0, 0))

		_, err := repo.Update(context.Background(), req)
		assert.True(t, cerr.IsType(err, constant.ErrConflict))
	})

	t.Run("row deleted after the write", func(t *testing.T) {
		repo, _, mock := newRepo(t)
		mock.ExpectExec(updateSQL).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(regexp.QuoteMeta("FROM buyer WHERE id = ?")).WillReturnRows(sqlmock.NewRows(columns))

		_, err := repo.Update(context.Background(), req)
		assert.True(t, cerr.IsType(err, constant.ErrNotFound))
	})

	t.Run("several columns are set in name order", func(t *testing.T) {
		repo, _, mock := newRepo(t)
		mock.ExpectExec(regexp.QuoteMeta("UPDATE buyer SET bhk = ?, notes = ?, property_type = ?, updated_at = ? WHERE id = ? AND updated_at = ?")).
			WithArgs(nil, "call after 6", "Plot", updatedAt, "b-1", storedAt).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(regexp.QuoteMeta("FROM buyer WHERE id = ?")).WillReturnRows(buyerRow("New", updatedAt))

		_, err := repo.Update(context.Background(), &model.BuyerUpdate{
			ID:                "b-1",
			Columns:           map[string]any{"property_type": "Plot", "bhk": nil, "notes": "call after 6"},
			UpdatedAt:         updatedAt,
			ExpectedUpdatedAt: storedAt,
		})
		require.NoError(t, err)
	})
}

func TestSQL_DeleteTx(t *testing.T) {
	repo, conn, mock := newRepo(t)
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM buyer WHERE id = ?")).WithArgs("b-1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM buyer WHERE id = ?")).WithArgs("b-1").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	tx, err := conn.Beginx()
	require.NoError(t, err)

	deleted, err := repo.DeleteTx(context.Background(), tx, "b-1")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.DeleteTx(context.Background(), tx, "b-1")
	require.NoError(t, err)
	assert.False(t, deleted)

	require.NoError(t, tx.Commit())
}

func TestSQL_List(t *testing.T) {
	t.Run("search, filter and page", func(t *testing.T) {
		repo, _, mock := newRepo(t)
		filter := &model.BuyerFilter{Search: "asha", City: "Mohali", Page: 2, PageSize: 10}
		filter.WithDefaults()

		where := regexp.QuoteMeta("WHERE ((full_name LIKE ? OR phone LIKE ? OR email LIKE ?) AND city = ?)")
		mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM buyer ") + where).
			WithArgs("%asha%", "%asha%", "%asha%", "Mohali").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(11))
		mock.ExpectQuery(where + regexp.QuoteMeta(" ORDER BY updated_at DESC, id DESC LIMIT 10 OFFSET 10")).
			WithArgs("%asha%", "%asha%", "%asha%", "Mohali").
			WillReturnRows(buyerRow("New", storedAt))

		items, total, err := repo.List(context.Background(), filter)
		require.NoError(t, err)
		assert.Equal(t, int64(11), total)
		require.Len(t, items, 1)
		assert.Equal(t, "b-1", items[0].ID)
	})

	t.Run("budget overlap and sort", func(t *testing.T) {
		repo, _, mock := newRepo(t)
		lo, hi := int64(3000000), int64(5000000)
		filter := &model.BuyerFilter{BudgetMin: &lo, BudgetMax: &hi, SortBy: model.SortByFullName, SortOrder: model.SortAsc}
		filter.WithDefaults()

		where := regexp.QuoteMeta("WHERE ((budget_max IS NULL OR budget_max >= ?) AND (budget_min IS NULL OR budget_min <= ?))")
		mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM buyer ") + where).
			WithArgs(lo, hi).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery(where + regexp.QuoteMeta(" ORDER BY full_name ASC, id ASC LIMIT 10 OFFSET 0")).
			WithArgs(lo, hi).
			WillReturnRows(sqlmock.NewRows(columns))

		items, total, err := repo.List(context.Background(), filter)
		require.NoError(t, err)
		assert.Zero(t, total)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})

	t.Run("count fails", func(t *testing.T) {
		repo, _, mock := newRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM buyer")).WillReturnError(errors.New("bad connection"))

		_, _, err := repo.List(context.Background(), &model.BuyerFilter{Page: 1, PageSize: 10})
		assert.Error(t, err)
	})
}
