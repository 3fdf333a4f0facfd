package service

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDonationOrderRef_RoundTrip(t *testing.T) {
	donationID := uuid.New()
	campaignID := uuid.New()

	ref := BuildDonationOrderRef(donationID, campaignID)
	assert.Equal(t, fmt.Sprintf("DNT-%s-CPG-%s", donationID, campaignID), ref)

	gotDonation, gotCampaign, err := ParseDonationOrderRef(ref)
	require.NoError(t, err)
	assert.Equal(t, donationID, gotDonation)
	assert.Equal(t, campaignID, gotCampaign)
}

func TestParseDonationOrderRef_Garbage(t *testing.T) {
	cases := []string{
		"",
		"garbage",
		"ORD-20250101-ABCDEF12", // order ref toko, bukan donasi
		"DNT-",
		"DNT-not-a-uuid-CPG-also-not",
		fmt.Sprintf("DNT-%s", uuid.New()),                        // tanpa separator
		fmt.Sprintf("DNT-%s-CPG-", uuid.New()),                   // campaign id kosong
		fmt.Sprintf("DNT-%s-CPG-xyz", uuid.New()),                // campaign id cacat
		fmt.Sprintf("DNT-xyz-CPG-%s", uuid.New()),                // donation id cacat
		fmt.Sprintf("XNT-%s-CPG-%s", uuid.New(), uuid.New()),     // prefix salah
		fmt.Sprintf("DNT-%s-CPGX-%s", uuid.New(), uuid.New()),    // separator salah
	}

	for _, ref := range cases {
		t.Run(ref, func(t *testing.T) {
			d, c, err := ParseDonationOrderRef(ref)
			assert.ErrorIs(t, err, ErrBadOrderRef)
			assert.Equal(t, uuid.Nil, d)
			assert.Equal(t, uuid.Nil, c)
		})
	}
}
