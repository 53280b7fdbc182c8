package models

import "fmt"

// HuntType selects the roll schedule and the base odds of a Phase.
type HuntType string

// HuntType константы
const (
	HuntTypeOldOdds     HuntType = "OldOdds"
	HuntTypeNewOdds     HuntType = "NewOdds"
	HuntTypeSOS         HuntType = "SOS"
	HuntTypeMasudaGenIV HuntType = "MasudaGenIV"
	HuntTypeMasudaGenV  HuntType = "MasudaGenV"
	HuntTypeMasudaGenVI HuntType = "MasudaGenVI"

	// HuntTypeMixed is reported for a Counter whose children disagree.
	// It is never stored on a Phase.
	HuntTypeMixed HuntType = "Mixed"
)

// DefaultHuntType is assigned to newly created phases.
const DefaultHuntType = HuntTypeOldOdds

// HuntTypes lists every hunt type a Phase may carry, in display order.
var HuntTypes = []HuntType{
	HuntTypeOldOdds,
	HuntTypeNewOdds,
	HuntTypeSOS,
	HuntTypeMasudaGenIV,
	HuntTypeMasudaGenV,
	HuntTypeMasudaGenVI,
}

// charmBonus is the number of extra rolls per encounter granted by the charm.
const charmBonus = 2

// rollTier starts at the encounter index `from` and adds `bonus` rolls per encounter.
type rollTier struct {
	from  int
	bonus int
}

var (
	flatSchedule = []rollTier{{from: 0, bonus: 0}}

	// SOS chains raise the number of rolls at 10, 20 and 30 calls.
	sosSchedule = []rollTier{
		{from: 0, bonus: 0},
		{from: 10, bonus: 4},
		{from: 20, bonus: 8},
		{from: 30, bonus: 12},
	}
)

// ParseHuntType converts the stored name of a hunt type back into a HuntType.
// Mixed is not accepted since it cannot be assigned.
func ParseHuntType(s string) (HuntType, error) {
	for _, ht := range HuntTypes {
		if string(ht) == s {
			return ht, nil
		}
	}
	return "", fmt.Errorf("hunt type should be one of %v, got %q", HuntTypes, s)
}

// Valid reports whether h may be stored on a Phase.
func (h HuntType) Valid() bool {
	_, err := ParseHuntType(string(h))
	return err == nil
}

// Combine returns h when both hunt types agree and Mixed otherwise.
func (h HuntType) Combine(other HuntType) HuntType {
	if h != other {
		return HuntTypeMixed
	}
	return h
}

// Odds returns the denominator of the per-roll success probability.
// Mixed and unknown values have no odds and return 0.
func (h HuntType) Odds() float64 {
	switch h {
	case HuntTypeOldOdds, HuntTypeMasudaGenIV:
		return 8192
	case HuntTypeNewOdds, HuntTypeSOS, HuntTypeMasudaGenV, HuntTypeMasudaGenVI:
		return 4096
	default:
		return 0
	}
}

// schedule returns the flat per-encounter bonus and the tier table for h.
func (h HuntType) schedule() (int, []rollTier) {
	switch h {
	case HuntTypeSOS:
		return 0, sosSchedule
	case HuntTypeMasudaGenIV:
		return 4, flatSchedule
	case HuntTypeMasudaGenV, HuntTypeMasudaGenVI:
		return 5, flatSchedule
	default:
		return 0, flatSchedule
	}
}

// Rolls converts an encounter count into the number of independent shiny rolls.
// Every encounter is worth one roll, plus the charm bonus, plus the flat bonus of
// the hunt type, plus the bonus of the tier the encounter falls in.
// Non-positive counts and Mixed yield 0.
func (h HuntType) Rolls(count int32, hasCharm bool) int {
	if count <= 0 || h == HuntTypeMixed {
		return 0
	}

	flat, tiers := h.schedule()
	rate := 1 + flat
	if hasCharm {
		rate += charmBonus
	}

	n := int(count)
	rolls := 0
	for i, tier := range tiers {
		end := n
		if i+1 < len(tiers) && tiers[i+1].from < end {
			end = tiers[i+1].from
		}
		if end <= tier.from {
			break
		}
		rolls += (end - tier.from) * (rate + tier.bonus)
	}

	return rolls
}

// Repr returns the human readable name of h.
func (h HuntType) Repr() string {
	switch h {
	case HuntTypeOldOdds:
		return "Old Odds"
	case HuntTypeNewOdds:
		return "New Odds"
	case HuntTypeSOS:
		return "SOS"
	case HuntTypeMasudaGenIV:
		return "Masuda (gen IV)"
	case HuntTypeMasudaGenV:
		return "Masuda (gen V)"
	case HuntTypeMasudaGenVI:
		return "Masuda (gen VI+)"
	case HuntTypeMixed:
		return "Mixed"
	default:
		return string(h)
	}
}
