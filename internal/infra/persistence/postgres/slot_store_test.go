package postgres

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"storefront/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpg "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockSlotStore(t *testing.T, prefix string) (repository.DurableStore, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(gormpg.New(gormpg.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	return NewSlotStore(db, prefix), mock
}

func TestSlotStore_Get_Found(t *testing.T) {
	store, mock := newMockSlotStore(t, "")

	rows := sqlmock.NewRows([]string{"key", "value", "updated_at"}).
		AddRow("cart", []byte(`{"lines":[]}`), nil)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "storefront_slots" WHERE key = $1`)).
		WillReturnRows(rows)

	value, err := store.Get(context.Background(), "cart")
	require.NoError(t, err)
	assert.JSONEq(t, `{"lines":[]}`, string(value))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSlotStore_Get_NotFound(t *testing.T) {
	store, mock := newMockSlotStore(t, "")

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "storefront_slots" WHERE key = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"key", "value", "updated_at"}))

	_, err := store.Get(context.Background(), "wishlist")
	assert.ErrorIs(t, err, repository.ErrKeyNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSlotStore_Get_DatabaseError(t *testing.T) {
	store, mock := newMockSlotStore(t, "")

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "storefront_slots"`)).
		WillReturnError(sql.ErrConnDone)

	_, err := store.Get(context.Background(), "cart")
	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrKeyNotFound)
}

func TestSlotStore_Set_Upserts(t *testing.T) {
	store, mock := newMockSlotStore(t, "alice:")

	mock.ExpectExec(`INSERT INTO "storefront_slots" .* ON CONFLICT \("key"\) DO UPDATE SET`).
		WithArgs("alice:cart", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := store.Set(context.Background(), "cart", []byte(`{"lines":[]}`))
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSlotStore_Set_Error(t *testing.T) {
	store, mock := newMockSlotStore(t, "")

	mock.ExpectExec(`INSERT INTO "storefront_slots"`).
		WillReturnError(errors.New("connection reset by peer"))

	err := store.Set(context.Background(), "cart", []byte(`{}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "durable store operation failed")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSlotStore_Set_NilValue(t *testing.T) {
	store, mock := newMockSlotStore(t, "")

	err := store.Set(context.Background(), "cart", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errNilSlotValue)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSlotStore_Delete(t *testing.T) {
	store, mock := newMockSlotStore(t, "")

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "storefront_slots" WHERE key = $1`)).
		WithArgs("checkout_snapshot").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, store.Delete(context.Background(), "checkout_snapshot"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
