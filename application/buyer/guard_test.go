package buyer

import (
	"testing"
	"time"

	"github.com/krishsharda/Buyer-Leads/constant"
	"github.com/krishsharda/Buyer-Leads/utils/errors"
	"github.com/stretchr/testify/assert"
)

func TestCheckConcurrency(t *testing.T) {
	t1 := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Minute)
	sameSecond := t1.Add(900 * time.Millisecond)
	ist := t1.In(time.FixedZone("IST", 5*3600+1800))

	tests := []struct {
		name     string
		stored   time.Time
		observed *time.Time
		conflict bool
	}{
		{name: "stored newer than observed", stored: t2, observed: &t1, conflict: true},
		{name: "observed equals stored", stored: t1, observed: &t1},
		{name: "observed newer than stored", stored: t1, observed: &t2},
		{name: "sub-second difference is ignored", stored: sameSecond, observed: &t1},
		{name: "time zone does not matter", stored: t1, observed: &ist},
		{name: "no observed time", stored: t2, observed: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckConcurrency(tt.stored, tt.observed)
			if !tt.conflict {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.IsType(err, constant.ErrConflict))
		})
	}
}

func TestNextVersion(t *testing.T) {
	current := now()

	tests := []struct {
		name   string
		stored time.Time
		want   time.Time
	}{
		{name: "older version moves to now", stored: current.Add(-time.Hour), want: current},
		{name: "same second moves one second on", stored: current, want: current.Add(time.Second)},
		{name: "sub-second stored value", stored: current.Add(400 * time.Millisecond), want: current.Add(time.Second)},
		{name: "version ahead of the clock", stored: current.Add(time.Minute), want: current.Add(time.Minute + time.Second)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := nextVersion(tt.stored)
			assert.True(t, got.After(tt.stored))
			assert.Zero(t, got.Nanosecond())
			// the clock may tick between now() calls
			assert.WithinDuration(t, tt.want, got, time.Second)
			assert.Error(t, CheckConcurrency(got, &tt.stored))
		})
	}
}
