package matching

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRank(t *testing.T) {
	t.Run("Only Intersection Survives", func(t *testing.T) {
		coach := slotsFor(time.Monday, 8, 9, 10)
		member := slotsFor(time.Monday, 10, 11)

		ranked := Rank(coach, member, nil, nil)

		require.Len(t, ranked, 1)
		assert.Equal(t, AbstractSlot{Day: time.Monday, Hour: 10}, ranked[0].Slot)
	})

	t.Run("Tier Assignment", func(t *testing.T) {
		coach := slotsFor(time.Monday, 8, 9, 10, 11)
		member := slotsFor(time.Monday, 8, 9, 10, 11)

		ranked := Rank(coach, member, []int{8, 9}, []int{8, 10})

		require.Len(t, ranked, 4)
		byHour := make(map[int]Tier)
		for _, rs := range ranked {
			byHour[rs.Slot.Hour] = rs.Tier
		}

		assert.Equal(t, TierBothPrefer, byHour[8])
		assert.Equal(t, TierCoachPrefers, byHour[9])
		assert.Equal(t, TierMemberPrefers, byHour[10])
		assert.Equal(t, TierNoPreference, byHour[11])
	})

	t.Run("Best Tier Comes First", func(t *testing.T) {
		coach := slotsFor(time.Monday, 8, 9, 10, 11)
		member := slotsFor(time.Monday, 8, 9, 10, 11)

		ranked := Rank(coach, member, []int{8, 9}, []int{8, 10})

		for i := 1; i < len(ranked); i++ {
			assert.LessOrEqual(t, ranked[i-1].Tier, ranked[i].Tier)
		}
		assert.Equal(t, 8, ranked[0].Slot.Hour, "the hour both prefer ranks first")
	})

	t.Run("Empty Preferences Are Neutral", func(t *testing.T) {
		coach := slotsFor(time.Wednesday, 14, 15)
		member := slotsFor(time.Wednesday, 14, 15)

		ranked := Rank(coach, member, nil, nil)

		require.Len(t, ranked, 2, "no preference never excludes a slot")
		for _, rs := range ranked {
			assert.Equal(t, TierNoPreference, rs.Tier)
		}
	})

	t.Run("Overlapping Windows With One Sided Preference", func(t *testing.T) {
		// Coach free Monday 08-12 and prefers 9; member free Monday 09-11
		// with no preference. The shared hours are 9 and 10.
		coach := slotsFor(time.Monday, 8, 9, 10, 11)
		member := slotsFor(time.Monday, 9, 10)

		ranked := Rank(coach, member, []int{9}, nil)

		require.Len(t, ranked, 2)
		assert.Equal(t, RankedSlot{Slot: AbstractSlot{Day: time.Monday, Hour: 9}, Tier: TierCoachPrefers}, ranked[0])
		assert.Equal(t, RankedSlot{Slot: AbstractSlot{Day: time.Monday, Hour: 10}, Tier: TierNoPreference}, ranked[1])
	})

	t.Run("Deterministic Order Within Tier", func(t *testing.T) {
		coach := slotsFor(time.Tuesday, 9, 8)
		for s := range slotsFor(time.Monday, 15) {
			coach[s] = struct{}{}
		}
		member := make(map[AbstractSlot]struct{})
		for s := range coach {
			member[s] = struct{}{}
		}

		ranked := Rank(coach, member, nil, nil)

		require.Len(t, ranked, 3)
		assert.Equal(t, AbstractSlot{Day: time.Monday, Hour: 15}, ranked[0].Slot)
		assert.Equal(t, AbstractSlot{Day: time.Tuesday, Hour: 8}, ranked[1].Slot)
		assert.Equal(t, AbstractSlot{Day: time.Tuesday, Hour: 9}, ranked[2].Slot)
	})

	t.Run("Disjoint Sets Yield Nothing", func(t *testing.T) {
		coach := slotsFor(time.Monday, 8, 9)
		member := slotsFor(time.Tuesday, 8, 9)

		assert.Empty(t, Rank(coach, member, []int{8}, []int{9}))
	})
}
