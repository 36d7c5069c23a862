package texasholdem

import (
	"encoding/json"
	"fmt"
)

// Phase represents where the hand is
type Phase int

// constants for Phase
const (
	PhaseWaiting Phase = iota
	PhasePreFlop
	PhaseFlop
	PhaseTurn
	PhaseRiver
	PhaseShowdown
	PhaseComplete
)

var phaseNames = map[Phase]string{
	PhaseWaiting:  "waiting",
	PhasePreFlop:  "preflop",
	PhaseFlop:     "flop",
	PhaseTurn:     "turn",
	PhaseRiver:    "river",
	PhaseShowdown: "showdown",
	PhaseComplete: "complete",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}

	return ""
}

// InBettingRound returns true if players act in this phase
func (p Phase) InBettingRound() bool {
	return p >= PhasePreFlop && p <= PhaseRiver
}

// communityCardsToDeal returns how many cards are dealt when entering the phase
func (p Phase) communityCardsToDeal() int {
	switch p {
	case PhaseFlop:
		return 3
	case PhaseTurn, PhaseRiver:
		return 1
	}

	return 0
}

// MarshalJSON encodes the phase as its name
func (p Phase) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// UnmarshalJSON decodes a phase name
func (p *Phase) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	for phase, name := range phaseNames {
		if name == s {
			*p = phase
			return nil
		}
	}

	return fmt.Errorf("unknown phase: %q", s)
}
