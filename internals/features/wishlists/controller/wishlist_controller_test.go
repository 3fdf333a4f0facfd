package controller

import (
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockGorm(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	return db, mock
}

func newWishlistApp(db *gorm.DB, userID uuid.UUID) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", userID.String())
		return c.Next()
	})

	ctrl := NewWishlistController(db)
	app.Post("/wishlist/items", ctrl.AddItem)
	app.Delete("/wishlist/items/:product_id", ctrl.RemoveItem)
	return app
}

func TestAddWishlistItem_DuplicateRejected(t *testing.T) {
	db, mock := newMockGorm(t)
	userID := uuid.New()
	productID := uuid.New()
	app := newWishlistApp(db, userID)

	mock.ExpectQuery(`SELECT \* FROM "products"`).
		WillReturnRows(sqlmock.NewRows([]string{"product_id"}).AddRow(productID.String()))
	// produk yang sama sudah ada di incaran user
	mock.ExpectQuery(`SELECT \* FROM "wishlist_items"`).
		WillReturnRows(sqlmock.NewRows([]string{"wishlist_item_id", "wishlist_item_user_id", "wishlist_item_product_id"}).
			AddRow(uuid.NewString(), userID.String(), productID.String()))

	req := httptest.NewRequest("POST", "/wishlist/items",
		strings.NewReader(fmt.Sprintf(`{"product_id":%q}`, productID)))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Produk sudah ada di incaran")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddWishlistItem_UnknownProduct(t *testing.T) {
	db, mock := newMockGorm(t)
	userID := uuid.New()
	app := newWishlistApp(db, userID)

	mock.ExpectQuery(`SELECT \* FROM "products"`).
		WillReturnRows(sqlmock.NewRows([]string{"product_id"}))

	req := httptest.NewRequest("POST", "/wishlist/items",
		strings.NewReader(fmt.Sprintf(`{"product_id":%q}`, uuid.New())))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestRemoveWishlistItem_NotFound(t *testing.T) {
	db, mock := newMockGorm(t)
	userID := uuid.New()
	app := newWishlistApp(db, userID)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "wishlist_items"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	req := httptest.NewRequest("DELETE", "/wishlist/items/"+uuid.NewString(), nil)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestRemoveWishlistItem_OK(t *testing.T) {
	db, mock := newMockGorm(t)
	userID := uuid.New()
	app := newWishlistApp(db, userID)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "wishlist_items"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	req := httptest.NewRequest("DELETE", "/wishlist/items/"+uuid.NewString(), nil)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}
