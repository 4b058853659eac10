// Package access decides whether a caller may see the true value of a
// tier-gated content field, and enforces subscription expiry.
package access

import (
	"time"

	"heptabet_backend/internal/models"
)

// MaskedTip replaces the tip text for viewers below the required tier.
const MaskedTip = "Upgrade required to view"

// GatedItem is any content record gated by a minimum subscription tier.
type GatedItem interface {
	RequiredTier() models.SubscriptionTier
	Settled() bool
}

// TierStore is the slice of account persistence the engine needs to record
// lazy downgrades.
type TierStore interface {
	DowngradeTier(userID string, tier models.SubscriptionTier) error
}

// TierWeight imposes the strict total order Free < Basic < Standard < Premium.
// Unknown tiers rank below Free so malformed data always fails closed.
func TierWeight(t models.SubscriptionTier) int {
	switch t {
	case models.TierFree:
		return 0
	case models.TierBasic:
		return 1
	case models.TierStandard:
		return 2
	case models.TierPremium:
		return 3
	default:
		return -1
	}
}

// EnforceExpiry downgrades a lapsed paid subscription to Free, both on the
// record passed in and in storage. The expiry timestamp is kept for audit.
//
// This runs on every authenticated read of the account (login, /auth/me,
// content listing) rather than in a background sweep, so an account nobody
// touches can stay stale in storage until its next access.
func EnforceExpiry(store TierStore, user *models.User) error {
	if user == nil || user.Subscription == models.TierFree {
		return nil
	}
	if user.SubscriptionExpiresAt == nil || !user.SubscriptionExpiresAt.Before(time.Now()) {
		return nil
	}

	if err := store.DowngradeTier(user.ID, models.TierFree); err != nil {
		return err
	}
	user.Subscription = models.TierFree
	return nil
}

// CanView reports whether the viewer may see the gated field of item.
// A nil viewer is anonymous. Admins bypass tier checks entirely; settled
// outcomes are never worth gating. Evaluated per item, since one listing
// can mix tiers.
func CanView(viewer *models.User, item GatedItem) bool {
	if viewer != nil && viewer.Role == models.UserRoleAdmin {
		return true
	}
	if item.RequiredTier() == models.TierFree {
		return true
	}
	if item.Settled() {
		return true
	}

	itemWeight := TierWeight(item.RequiredTier())
	if itemWeight < 0 {
		// Malformed tier on the item: deny, never grant.
		return false
	}

	viewerWeight := -1
	if viewer != nil {
		viewerWeight = TierWeight(viewer.Subscription)
	}
	return viewerWeight >= itemWeight
}
