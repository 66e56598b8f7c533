package matching

import (
	"sort"
)

// Rank intersects both parties' free slot sets and orders the result by
// preference tier: both prefer the hour, only the coach does, only the
// member does, neither does. An empty preference set is neutral; it never
// excludes a slot. Within a tier slots are ordered by (day, hour) so the
// output is deterministic; the chronological tie-break happens later, after
// slots resolve to concrete dates.
func Rank(coachSlots, memberSlots map[AbstractSlot]struct{}, coachPref, memberPref []int) []RankedSlot {
	coachHours := hourSet(coachPref)
	memberHours := hourSet(memberPref)

	var ranked []RankedSlot
	for slot := range coachSlots {
		if _, ok := memberSlots[slot]; !ok {
			continue
		}

		_, coachLikes := coachHours[slot.Hour]
		_, memberLikes := memberHours[slot.Hour]

		var tier Tier
		switch {
		case coachLikes && memberLikes:
			tier = TierBothPrefer
		case coachLikes:
			tier = TierCoachPrefers
		case memberLikes:
			tier = TierMemberPrefers
		default:
			tier = TierNoPreference
		}

		ranked = append(ranked, RankedSlot{Slot: slot, Tier: tier})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Tier != ranked[j].Tier {
			return ranked[i].Tier < ranked[j].Tier
		}
		if ranked[i].Slot.Day != ranked[j].Slot.Day {
			return ranked[i].Slot.Day < ranked[j].Slot.Day
		}
		return ranked[i].Slot.Hour < ranked[j].Slot.Hour
	})

	return ranked
}

func hourSet(hours []int) map[int]struct{} {
	set := make(map[int]struct{}, len(hours))
	for _, h := range hours {
		set[h] = struct{}{}
	}
	return set
}
