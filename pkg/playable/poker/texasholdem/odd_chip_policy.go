package texasholdem

import (
	"encoding/json"
	"fmt"
	"strings"
)

// OddChipPolicy decides who gets the chip left over when a pot cannot be split evenly
type OddChipPolicy string

// OddChipPolicy constants
const (
	// OddChipDiscard awards the remainder to nobody
	OddChipDiscard OddChipPolicy = "discard"
	// OddChipDealer awards the remainder to the dealer
	OddChipDealer OddChipPolicy = "dealer"
	// OddChipNonDealer awards the remainder to the player left of the dealer
	OddChipNonDealer OddChipPolicy = "non-dealer"
)

var validOddChipPolicies = map[OddChipPolicy]bool{
	OddChipDiscard:   true,
	OddChipDealer:    true,
	OddChipNonDealer: true,
}

func (o OddChipPolicy) String() string {
	switch o {
	case OddChipDiscard:
		return "Discard"
	case OddChipDealer:
		return "Dealer"
	case OddChipNonDealer:
		return "Non-Dealer"
	}

	return "Unknown"
}

// IsValid returns true if the policy is known
func (o OddChipPolicy) IsValid() bool {
	return validOddChipPolicies[o]
}

// MarshalJSON encodes to JSON
func (o OddChipPolicy) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}{
		ID:   string(o),
		Name: o.String(),
	})
}

// UnmarshalText decodes a policy from config files and the environment
func (o *OddChipPolicy) UnmarshalText(b []byte) error {
	policy, err := OddChipPolicyFromString(string(b))
	if err != nil {
		return err
	}

	*o = policy
	return nil
}

// OddChipPolicyFromString returns the policy from a string
// An empty string is the default policy.
func OddChipPolicyFromString(s string) (OddChipPolicy, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return OddChipDiscard, nil
	}

	policy := OddChipPolicy(s)
	if policy.IsValid() {
		return policy, nil
	}

	return "", fmt.Errorf("invalid odd chip policy: %s", s)
}

// recipient returns the seat that receives the odd chip, or -1 if it is discarded
func (o OddChipPolicy) recipient(state *GameState, winners []int) int {
	var seat int
	switch o {
	case OddChipDealer:
		seat = state.SmallBlindIndex()
	case OddChipNonDealer:
		seat = state.BigBlindIndex()
	default:
		return -1
	}

	for _, w := range winners {
		if w == seat {
			return seat
		}
	}

	return -1
}
