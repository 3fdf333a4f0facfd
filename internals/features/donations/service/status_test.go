package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"barakahku_backend/internals/features/donations/model"
)

func TestMapGatewayStatus(t *testing.T) {
	tests := []struct {
		name              string
		transactionStatus string
		fraudStatus       string
		want              string
		wantOK            bool
	}{
		{"capture accept", "capture", "accept", model.DonationStatusConfirmed, true},
		{"capture challenge ditahan", "capture", "challenge", "", false},
		{"capture deny ditahan", "capture", "deny", "", false},
		{"settlement", "settlement", "", model.DonationStatusConfirmed, true},
		{"settlement fraud diabaikan", "settlement", "challenge", model.DonationStatusConfirmed, true},
		{"cancel", "cancel", "", model.DonationStatusFailed, true},
		{"deny", "deny", "", model.DonationStatusFailed, true},
		{"expire", "expire", "", model.DonationStatusFailed, true},
		{"pending tidak diproses", "pending", "", "", false},
		{"authorize tidak diproses", "authorize", "", "", false},
		{"refund tidak diproses", "refund", "", "", false},
		{"kosong tidak diproses", "", "", "", false},
		{"status asing tidak diproses", "settlemint", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MapGatewayStatus(tt.transactionStatus, tt.fraudStatus)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(model.DonationStatusPending))
	assert.True(t, IsTerminal(model.DonationStatusConfirmed))
	assert.True(t, IsTerminal(model.DonationStatusFailed))
	// alias lama tetap terminal
	assert.True(t, IsTerminal(model.DonationStatusLegacyVerified))
}

func TestIsConfirmed(t *testing.T) {
	assert.True(t, IsConfirmed(model.DonationStatusConfirmed))
	assert.True(t, IsConfirmed(model.DonationStatusLegacyVerified))
	assert.False(t, IsConfirmed(model.DonationStatusPending))
	assert.False(t, IsConfirmed(model.DonationStatusFailed))
}
