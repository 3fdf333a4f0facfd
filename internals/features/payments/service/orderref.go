package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

/* =========================================================
   Order reference Midtrans untuk donasi.

   Format wire (kompatibel dengan sistem lama):
     DNT-{donation_id}-CPG-{campaign_id}

   Semua parsing lewat satu decoder ketat ini, jangan split
   string ad hoc di call site.
========================================================= */

const (
	donationRefPrefix    = "DNT-"
	donationRefSeparator = "-CPG-"
)

var ErrBadOrderRef = errors.New("invalid order reference")

func BuildDonationOrderRef(donationID, campaignID uuid.UUID) string {
	return fmt.Sprintf("%s%s%s%s", donationRefPrefix, donationID, donationRefSeparator, campaignID)
}

// ParseDonationOrderRef membongkar order_id dari payload gateway (untrusted)
// menjadi pasangan id bertipe. Nilai cacat → ErrBadOrderRef, tanpa panic.
func ParseDonationOrderRef(ref string) (donationID, campaignID uuid.UUID, err error) {
	if !strings.HasPrefix(ref, donationRefPrefix) {
		return uuid.Nil, uuid.Nil, fmt.Errorf("%w: %q", ErrBadOrderRef, ref)
	}
	rest := strings.TrimPrefix(ref, donationRefPrefix)

	idx := strings.Index(rest, donationRefSeparator)
	if idx < 0 {
		return uuid.Nil, uuid.Nil, fmt.Errorf("%w: %q", ErrBadOrderRef, ref)
	}

	donationID, err = uuid.Parse(rest[:idx])
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("%w: bad donation id in %q", ErrBadOrderRef, ref)
	}
	campaignID, err = uuid.Parse(rest[idx+len(donationRefSeparator):])
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("%w: bad campaign id in %q", ErrBadOrderRef, ref)
	}
	return donationID, campaignID, nil
}
