package buyer

import (
	"time"

	"github.com/krishsharda/Buyer-Leads/constant"
	"github.com/krishsharda/Buyer-Leads/utils/errors"
)

// CheckConcurrency rejects a write based on a stale read. Timestamps compare
// at second precision; a nil observed time skips the check.
func CheckConcurrency(stored time.Time, observed *time.Time) error {
	if observed == nil {
		return nil
	}
	if stored.Unix() > observed.Unix() {
		return errors.SetCustomError(constant.ErrConflict)
	}
	return nil
}

// now is truncated to what a DATETIME column keeps.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

// nextVersion is the updated_at written over stored. It is strictly later
// than stored even when both writes land in the same second.
func nextVersion(stored time.Time) time.Time {
	ts := now()
	if floor := stored.UTC().Truncate(time.Second).Add(time.Second); ts.Before(floor) {
		return floor
	}
	return ts
}
