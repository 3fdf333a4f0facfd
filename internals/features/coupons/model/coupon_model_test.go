package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCouponIsValidAt(t *testing.T) {
	now := time.Now()
	yesterday := now.Add(-24 * time.Hour)
	tomorrow := now.Add(24 * time.Hour)

	active := Coupon{CouponIsActive: true}
	assert.True(t, active.IsValidAt(now), "tanpa jendela = selalu berlaku")

	inactive := Coupon{CouponIsActive: false}
	assert.False(t, inactive.IsValidAt(now))

	inWindow := Coupon{CouponIsActive: true, CouponValidFrom: &yesterday, CouponValidUntil: &tomorrow}
	assert.True(t, inWindow.IsValidAt(now))

	notYet := Coupon{CouponIsActive: true, CouponValidFrom: &tomorrow}
	assert.False(t, notYet.IsValidAt(now))

	expired := Coupon{CouponIsActive: true, CouponValidUntil: &yesterday}
	assert.False(t, expired.IsValidAt(now))
}
