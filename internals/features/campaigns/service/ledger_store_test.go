package service

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
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

func TestGormLedgerStore_SumConfirmed(t *testing.T) {
	db, mock := newMockGorm(t)
	campaignID := uuid.New()

	mock.ExpectQuery(`SELECT COALESCE\(SUM\(donation_amount\), 0\) FROM "donations"`).
		WithArgs(campaignID, "confirmed", "verified").
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(int64(750_000)))

	total, err := NewGormLedgerStore(db).SumConfirmed(context.Background(), campaignID)
	require.NoError(t, err)
	assert.Equal(t, int64(750_000), total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormLedgerStore_SumConfirmed_EmptyIsZero(t *testing.T) {
	db, mock := newMockGorm(t)
	campaignID := uuid.New()

	mock.ExpectQuery(`SELECT COALESCE\(SUM\(donation_amount\), 0\) FROM "donations"`).
		WithArgs(campaignID, "confirmed", "verified").
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(int64(0)))

	total, err := NewGormLedgerStore(db).SumConfirmed(context.Background(), campaignID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
}

func TestGormLedgerStore_UpdateCurrentAmount(t *testing.T) {
	db, mock := newMockGorm(t)
	campaignID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "campaigns" SET "campaign_current_amount"`).
		WithArgs(int64(500_000), campaignID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := NewGormLedgerStore(db).UpdateCurrentAmount(context.Background(), campaignID, 500_000)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormLedgerStore_UpdateCurrentAmount_MissingCampaign(t *testing.T) {
	db, mock := newMockGorm(t)
	campaignID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "campaigns" SET "campaign_current_amount"`).
		WithArgs(int64(100), campaignID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := NewGormLedgerStore(db).UpdateCurrentAmount(context.Background(), campaignID, 100)
	assert.ErrorIs(t, err, ErrCampaignNotFound)
}
