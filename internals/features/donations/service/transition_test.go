package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"barakahku_backend/internals/features/donations/model"
)

/* =========================================================
   Fakes: store donasi in-memory + ledger yang benar-benar
   menjumlahkan donasi confirmed dari store yang sama, supaya
   invarian sum-nya teruji, bukan sekadar dicatat.
========================================================= */

type fakeDonationStore struct {
	donations map[uuid.UUID]*model.Donation
}

func newFakeDonationStore(ds ...*model.Donation) *fakeDonationStore {
	s := &fakeDonationStore{donations: map[uuid.UUID]*model.Donation{}}
	for _, d := range ds {
		s.donations[d.DonationID] = d
	}
	return s
}

func (s *fakeDonationStore) FindByID(_ context.Context, id uuid.UUID) (*model.Donation, error) {
	d, ok := s.donations[id]
	if !ok {
		return nil, ErrDonationNotFound
	}
	cp := *d
	return &cp, nil
}

func (s *fakeDonationStore) Save(_ context.Context, d *model.Donation) error {
	cp := *d
	s.donations[d.DonationID] = &cp
	return nil
}

func (s *fakeDonationStore) Delete(_ context.Context, d *model.Donation) error {
	delete(s.donations, d.DonationID)
	return nil
}

type sumLedgerStore struct {
	donations *fakeDonationStore
	written   map[uuid.UUID]int64
}

func newSumLedgerStore(ds *fakeDonationStore) *sumLedgerStore {
	return &sumLedgerStore{donations: ds, written: map[uuid.UUID]int64{}}
}

func (s *sumLedgerStore) SumConfirmed(_ context.Context, campaignID uuid.UUID) (int64, error) {
	var total int64
	for _, d := range s.donations.donations {
		if d.DonationCampaignID != campaignID {
			continue
		}
		if IsConfirmed(d.DonationPaymentStatus) {
			total += d.DonationAmount
		}
	}
	return total, nil
}

func (s *sumLedgerStore) UpdateCurrentAmount(_ context.Context, campaignID uuid.UUID, amount int64) error {
	s.written[campaignID] = amount
	return nil
}

func newDonation(campaignID uuid.UUID, amount int64, status string) *model.Donation {
	return &model.Donation{
		DonationID:            uuid.New(),
		DonationCampaignID:    campaignID,
		DonationAmount:        amount,
		DonationDonorName:     "Fulan",
		DonationDonorPhone:    "081234567890",
		DonationPaymentMethod: model.DonationMethodMidtrans,
		DonationPaymentStatus: status,
	}
}

/* =========================================================
   Skenario kumulatif: 400k settlement, 600k settlement,
   200k tetap pending → total 1.000.000, yang pending tidak ikut.
========================================================= */

func TestApplyGatewayStatus_CumulativeTotals(t *testing.T) {
	ctx := context.Background()
	campaignID := uuid.New()

	d1 := newDonation(campaignID, 400_000, model.DonationStatusPending)
	d2 := newDonation(campaignID, 600_000, model.DonationStatusPending)
	d3 := newDonation(campaignID, 200_000, model.DonationStatusPending)

	store := newFakeDonationStore(d1, d2, d3)
	ledger := newSumLedgerStore(store)
	tr := NewTransitionerWithStores(store, ledger)

	res, err := tr.ApplyGatewayStatus(ctx, d1.DonationID, "settlement", "")
	require.NoError(t, err)
	assert.True(t, res.Changed)
	assert.Equal(t, int64(400_000), res.NewTotal)

	res, err = tr.ApplyGatewayStatus(ctx, d2.DonationID, "settlement", "")
	require.NoError(t, err)
	assert.True(t, res.Changed)
	assert.Equal(t, int64(1_000_000), res.NewTotal)

	// d3 tetap pending, tidak pernah ikut dihitung
	assert.Equal(t, int64(1_000_000), ledger.written[campaignID])
	assert.Equal(t, model.DonationStatusPending, store.donations[d3.DonationID].DonationPaymentStatus)
}

func TestApplyGatewayStatus_SettlementSetsPaidAt(t *testing.T) {
	ctx := context.Background()
	campaignID := uuid.New()
	d := newDonation(campaignID, 100_000, model.DonationStatusPending)

	store := newFakeDonationStore(d)
	tr := NewTransitionerWithStores(store, newSumLedgerStore(store))

	res, err := tr.ApplyGatewayStatus(ctx, d.DonationID, "settlement", "")
	require.NoError(t, err)
	assert.Equal(t, model.DonationStatusConfirmed, res.Donation.DonationPaymentStatus)
	assert.NotNil(t, res.Donation.DonationPaidAt)
}

func TestApplyGatewayStatus_DuplicateSettlementIsNoOp(t *testing.T) {
	ctx := context.Background()
	campaignID := uuid.New()
	d := newDonation(campaignID, 250_000, model.DonationStatusPending)

	store := newFakeDonationStore(d)
	ledger := newSumLedgerStore(store)
	tr := NewTransitionerWithStores(store, ledger)

	_, err := tr.ApplyGatewayStatus(ctx, d.DonationID, "settlement", "")
	require.NoError(t, err)

	// notifikasi yang sama dikirim ulang
	res, err := tr.ApplyGatewayStatus(ctx, d.DonationID, "settlement", "")
	require.NoError(t, err)
	assert.True(t, res.Duplicate)
	assert.False(t, res.Changed)
	assert.Equal(t, int64(250_000), ledger.written[campaignID])
}

func TestApplyGatewayStatus_UnknownStatusIgnored(t *testing.T) {
	ctx := context.Background()
	campaignID := uuid.New()
	d := newDonation(campaignID, 100_000, model.DonationStatusPending)

	store := newFakeDonationStore(d)
	ledger := newSumLedgerStore(store)
	tr := NewTransitionerWithStores(store, ledger)

	res, err := tr.ApplyGatewayStatus(ctx, d.DonationID, "challenge", "")
	require.NoError(t, err)
	assert.True(t, res.Ignored)
	assert.False(t, res.Changed)

	// tidak ada mutasi maupun recompute
	assert.Equal(t, model.DonationStatusPending, store.donations[d.DonationID].DonationPaymentStatus)
	assert.Empty(t, ledger.written)
}

func TestApplyGatewayStatus_CaptureChallengeKeepsPending(t *testing.T) {
	ctx := context.Background()
	campaignID := uuid.New()
	d := newDonation(campaignID, 100_000, model.DonationStatusPending)

	store := newFakeDonationStore(d)
	tr := NewTransitionerWithStores(store, newSumLedgerStore(store))

	res, err := tr.ApplyGatewayStatus(ctx, d.DonationID, "capture", "challenge")
	require.NoError(t, err)
	assert.True(t, res.Ignored)
	assert.Equal(t, model.DonationStatusPending, store.donations[d.DonationID].DonationPaymentStatus)
}

func TestApplyGatewayStatus_ExpireFails(t *testing.T) {
	ctx := context.Background()
	campaignID := uuid.New()
	d := newDonation(campaignID, 100_000, model.DonationStatusPending)

	store := newFakeDonationStore(d)
	ledger := newSumLedgerStore(store)
	tr := NewTransitionerWithStores(store, ledger)

	res, err := tr.ApplyGatewayStatus(ctx, d.DonationID, "expire", "")
	require.NoError(t, err)
	assert.True(t, res.Changed)
	assert.Equal(t, model.DonationStatusFailed, res.Donation.DonationPaymentStatus)
	assert.Equal(t, int64(0), res.NewTotal)
}

func TestApplyGatewayStatus_NotFound(t *testing.T) {
	store := newFakeDonationStore()
	tr := NewTransitionerWithStores(store, newSumLedgerStore(store))

	_, err := tr.ApplyGatewayStatus(context.Background(), uuid.New(), "settlement", "")
	assert.ErrorIs(t, err, ErrDonationNotFound)
}

/* =========================================================
   Verify / Reject (jalur manual bsi/bjb)
========================================================= */

func TestVerify_PendingToConfirmed(t *testing.T) {
	ctx := context.Background()
	campaignID := uuid.New()
	d := newDonation(campaignID, 300_000, model.DonationStatusPending)
	d.DonationPaymentMethod = model.DonationMethodBSI

	store := newFakeDonationStore(d)
	ledger := newSumLedgerStore(store)
	tr := NewTransitionerWithStores(store, ledger)

	res, err := tr.Verify(ctx, d.DonationID)
	require.NoError(t, err)
	assert.True(t, res.Changed)
	assert.False(t, res.Correction)
	assert.Equal(t, model.DonationStatusConfirmed, res.Donation.DonationPaymentStatus)
	assert.Equal(t, int64(300_000), res.NewTotal)
}

func TestVerify_AlreadyConfirmedIsNoOp(t *testing.T) {
	ctx := context.Background()
	campaignID := uuid.New()
	d := newDonation(campaignID, 300_000, model.DonationStatusConfirmed)

	store := newFakeDonationStore(d)
	ledger := newSumLedgerStore(store)
	tr := NewTransitionerWithStores(store, ledger)

	res, err := tr.Verify(ctx, d.DonationID)
	require.NoError(t, err)
	assert.True(t, res.Duplicate)
	assert.Empty(t, ledger.written)
}

func TestVerify_LegacyVerifiedIsNoOp(t *testing.T) {
	ctx := context.Background()
	campaignID := uuid.New()
	d := newDonation(campaignID, 300_000, model.DonationStatusLegacyVerified)

	store := newFakeDonationStore(d)
	tr := NewTransitionerWithStores(store, newSumLedgerStore(store))

	res, err := tr.Verify(ctx, d.DonationID)
	require.NoError(t, err)
	assert.True(t, res.Duplicate)
}

func TestVerify_FailedIsAdminCorrection(t *testing.T) {
	ctx := context.Background()
	campaignID := uuid.New()
	d := newDonation(campaignID, 150_000, model.DonationStatusFailed)

	store := newFakeDonationStore(d)
	ledger := newSumLedgerStore(store)
	tr := NewTransitionerWithStores(store, ledger)

	res, err := tr.Verify(ctx, d.DonationID)
	require.NoError(t, err)
	assert.True(t, res.Changed)

	// keluar dari failed = koreksi, harus ditandai di hasil transisi
	assert.True(t, res.Correction)
	assert.Equal(t, int64(150_000), ledger.written[campaignID])
}

func TestReject_AfterConfirmRecomputesDown(t *testing.T) {
	ctx := context.Background()
	campaignID := uuid.New()
	d1 := newDonation(campaignID, 400_000, model.DonationStatusConfirmed)
	d2 := newDonation(campaignID, 600_000, model.DonationStatusConfirmed)

	store := newFakeDonationStore(d1, d2)
	ledger := newSumLedgerStore(store)
	tr := NewTransitionerWithStores(store, ledger)

	res, err := tr.Reject(ctx, d1.DonationID)
	require.NoError(t, err)
	assert.True(t, res.Changed)
	assert.True(t, res.Correction)
	assert.Equal(t, model.DonationStatusFailed, res.Donation.DonationPaymentStatus)

	// total turun ke sisa donasi confirmed
	assert.Equal(t, int64(600_000), res.NewTotal)
}

func TestReject_PendingIsNotCorrection(t *testing.T) {
	ctx := context.Background()
	campaignID := uuid.New()
	d := newDonation(campaignID, 100_000, model.DonationStatusPending)

	store := newFakeDonationStore(d)
	tr := NewTransitionerWithStores(store, newSumLedgerStore(store))

	res, err := tr.Reject(ctx, d.DonationID)
	require.NoError(t, err)
	assert.True(t, res.Changed)
	assert.False(t, res.Correction)
}

func TestReject_AlreadyFailedIsNoOp(t *testing.T) {
	ctx := context.Background()
	campaignID := uuid.New()
	d := newDonation(campaignID, 100_000, model.DonationStatusFailed)

	store := newFakeDonationStore(d)
	tr := NewTransitionerWithStores(store, newSumLedgerStore(store))

	res, err := tr.Reject(ctx, d.DonationID)
	require.NoError(t, err)
	assert.True(t, res.Duplicate)
}

/* =========================================================
   Delete: hapus donasi confirmed menarik turun total kampanye
========================================================= */

func TestDelete_ConfirmedDonationRecomputes(t *testing.T) {
	ctx := context.Background()
	campaignID := uuid.New()
	d1 := newDonation(campaignID, 400_000, model.DonationStatusConfirmed)
	d2 := newDonation(campaignID, 600_000, model.DonationStatusConfirmed)

	store := newFakeDonationStore(d1, d2)
	ledger := newSumLedgerStore(store)
	tr := NewTransitionerWithStores(store, ledger)

	res, err := tr.Delete(ctx, d2.DonationID)
	require.NoError(t, err)
	assert.True(t, res.Changed)
	assert.Equal(t, int64(400_000), res.NewTotal)

	_, err = store.FindByID(ctx, d2.DonationID)
	assert.ErrorIs(t, err, ErrDonationNotFound)
}

func TestDelete_NotFound(t *testing.T) {
	store := newFakeDonationStore()
	tr := NewTransitionerWithStores(store, newSumLedgerStore(store))

	_, err := tr.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrDonationNotFound)
}
