package playable

import (
	"github.com/ebbitten/bluepoker-sub001/pkg/playable/poker/action"
)

// PayloadIn is the format we expect from a client
type PayloadIn struct {
	Action         string         `json:"action"`
	AdditionalData AdditionalData `json:"additionalData"`
	// Context will be passed back on any outgoing message
	Context string `json:"context"`
}

// GetAction parses the action of the payload
func (p *PayloadIn) GetAction() (action.Action, error) {
	return action.FromString(p.Action)
}

// GetAmount returns the amount of the payload, or nil if there isn't one
func (p *PayloadIn) GetAmount() *int {
	if amount, ok := p.AdditionalData.GetInt("amount"); ok {
		return &amount
	}

	return nil
}

// AdditionalData provides additional data in a payload
type AdditionalData map[string]interface{}

// GetString returns a string for the given key
func (a AdditionalData) GetString(key string) (string, bool) {
	s, ok := a[key].(string)
	return s, ok
}

// GetInt returns an integer value for the given key
// JSON numbers decode as float64; Go callers may also pass an int.
func (a AdditionalData) GetInt(key string) (int, bool) {
	switch val := a[key].(type) {
	case float64:
		return int(val), true
	case int:
		return val, true
	}

	return 0, false
}

// GetBool returns a boolean value for the given key
func (a AdditionalData) GetBool(key string) (bool, bool) {
	boolVal, ok := a[key].(bool)
	if !ok {
		return false, false
	}

	return boolVal, true
}
