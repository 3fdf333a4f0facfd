package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLedgerStore struct {
	sums    map[uuid.UUID]int64
	written map[uuid.UUID]int64

	sumCalls    int
	updateCalls int
}

func newFakeLedgerStore() *fakeLedgerStore {
	return &fakeLedgerStore{
		sums:    map[uuid.UUID]int64{},
		written: map[uuid.UUID]int64{},
	}
}

func (f *fakeLedgerStore) SumConfirmed(_ context.Context, campaignID uuid.UUID) (int64, error) {
	f.sumCalls++
	return f.sums[campaignID], nil
}

func (f *fakeLedgerStore) UpdateCurrentAmount(_ context.Context, campaignID uuid.UUID, amount int64) error {
	f.updateCalls++
	f.written[campaignID] = amount
	return nil
}

func TestRecompute_WritesConfirmedSum(t *testing.T) {
	store := newFakeLedgerStore()
	campaignID := uuid.New()
	store.sums[campaignID] = 1_000_000

	total, err := NewLedger(store).Recompute(context.Background(), campaignID)
	require.NoError(t, err)
	assert.Equal(t, int64(1_000_000), total)
	assert.Equal(t, int64(1_000_000), store.written[campaignID])
}

func TestRecompute_Idempotent(t *testing.T) {
	store := newFakeLedgerStore()
	campaignID := uuid.New()
	store.sums[campaignID] = 400_000

	ledger := NewLedger(store)

	first, err := ledger.Recompute(context.Background(), campaignID)
	require.NoError(t, err)
	second, err := ledger.Recompute(context.Background(), campaignID)
	require.NoError(t, err)

	// Hitung ulang tanpa perubahan data tidak mengubah hasil
	assert.Equal(t, first, second)
	assert.Equal(t, int64(400_000), store.written[campaignID])
}

func TestRecompute_ClampsNegativeToZero(t *testing.T) {
	store := newFakeLedgerStore()
	campaignID := uuid.New()
	store.sums[campaignID] = -500

	total, err := NewLedger(store).Recompute(context.Background(), campaignID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
	assert.Equal(t, int64(0), store.written[campaignID])
}

func TestRecompute_EmptyCampaignIsZero(t *testing.T) {
	store := newFakeLedgerStore()
	campaignID := uuid.New()

	total, err := NewLedger(store).Recompute(context.Background(), campaignID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
}

func TestProgressPercentage(t *testing.T) {
	// target 0 tidak boleh membagi nol
	assert.Equal(t, float64(0), ProgressPercentage(500_000, 0))

	assert.InDelta(t, 50.0, ProgressPercentage(500_000, 1_000_000), 0.0001)

	// melebihi target dibatasi di 100
	assert.Equal(t, float64(100), ProgressPercentage(2_000_000, 1_000_000))

	assert.Equal(t, float64(0), ProgressPercentage(0, 1_000_000))
}

func TestIsExpired(t *testing.T) {
	now := time.Now()

	// tanpa deadline tidak pernah kedaluwarsa
	assert.False(t, IsExpired(nil, now))

	future := now.Add(24 * time.Hour)
	assert.False(t, IsExpired(&future, now))

	past := now.Add(-24 * time.Hour)
	assert.True(t, IsExpired(&past, now))
}

func TestHasUnlimitedDeadline(t *testing.T) {
	assert.True(t, HasUnlimitedDeadline(nil))

	d := time.Now()
	assert.False(t, HasUnlimitedDeadline(&d))
}
