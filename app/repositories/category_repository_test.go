package repositories

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func TestCategoryDeleteNullsProductRefsFirst(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCategoryRepository(db)

	// Product references must be cleared before the category row goes.
	mock.ExpectExec("UPDATE `products` SET").
		WithArgs(nil, sqlmock.AnyArg(), "cat-1").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("DELETE FROM `categories`").
		WithArgs("cat-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Delete(context.Background(), "cat-1")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryDeleteStopsWhenRefUpdateFails(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCategoryRepository(db)

	mock.ExpectExec("UPDATE `products` SET").
		WillReturnError(assert.AnError)

	err := repo.Delete(context.Background(), "cat-1")
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryGetBySlugNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCategoryRepository(db)

	mock.ExpectQuery("SELECT \\* FROM `categories`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "slug"}))

	category, err := repo.GetBySlug(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, category)
}

func TestCategoryGetActiveOrdersByDisplayOrder(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCategoryRepository(db)

	rows := sqlmock.NewRows([]string{"id", "name", "slug", "display_order", "is_active"}).
		AddRow("cat-1", "Singing Bowls", "singing-bowls", 1, true).
		AddRow("cat-2", "Thangka Art", "thangka-art", 2, true)
	mock.ExpectQuery("SELECT \\* FROM `categories` WHERE is_active = \\? ORDER BY display_order ASC").
		WithArgs(true).
		WillReturnRows(rows)

	categories, err := repo.GetActive(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "singing-bowls", categories[0].Slug)
}
