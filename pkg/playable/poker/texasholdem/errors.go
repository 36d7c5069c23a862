package texasholdem

import (
	"errors"
	"fmt"

	"github.com/ebbitten/bluepoker-sub001/pkg/playable/poker/action"
)

// ErrPlayerNotFound is returned when the acting player is not in the game
var ErrPlayerNotFound = errors.New("player not found")

// ErrHandComplete is returned when an action is attempted on a finished hand
var ErrHandComplete = errors.New("hand is complete")

// ErrHandNotDealt is returned when an action is attempted before the hand is dealt
var ErrHandNotDealt = errors.New("hand has not been dealt")

// ErrNotYourTurn is returned when a player acts out of turn
var ErrNotYourTurn = errors.New("not your turn")

// ErrAlreadyFolded is returned when a folded player tries to act
var ErrAlreadyFolded = errors.New("player has already folded")

// ErrAmountRequired is returned when a raise has no amount
var ErrAmountRequired = errors.New("amount is required for a raise")

// ErrAmountMustBePositive is returned when a raise amount is zero or negative
var ErrAmountMustBePositive = errors.New("amount must be positive")

// ErrRaiseTooLow is returned when a raise does not exceed the current bet
var ErrRaiseTooLow = errors.New("Raise must be higher than current bet") // nolint:stylecheck

// ErrMinimumRaiseNotMet is matched by MinimumRaiseError
var ErrMinimumRaiseNotMet = errors.New("minimum raise not met")

// ErrInvalidAction is returned for anything other than fold, call or raise
var ErrInvalidAction = action.ErrInvalidAction

// ErrHandNotComplete is the panic value when a new hand is started before the current one is over
var ErrHandNotComplete = errors.New("cannot start a new hand until the current hand is complete")

// ErrInsufficientChips is the panic value when a player cannot cover the big blind
var ErrInsufficientChips = errors.New("both players need enough chips to post the big blind")

// MinimumRaiseError is returned when a raise is below the minimum and the player is not all-in
type MinimumRaiseError struct {
	Minimum int
}

func (m MinimumRaiseError) Error() string {
	return fmt.Sprintf("minimum raise is %d", m.Minimum)
}

// Is allows errors.Is(err, ErrMinimumRaiseNotMet)
func (m MinimumRaiseError) Is(target error) bool {
	return target == ErrMinimumRaiseNotMet
}
