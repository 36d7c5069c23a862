package texasholdem

import (
	"errors"
	"fmt"

	"github.com/coder/quartz"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ebbitten/bluepoker-sub001/pkg/deck"
	"github.com/ebbitten/bluepoker-sub001/pkg/poker"
)

// HandEvaluator ranks a hand of 5-7 cards. A lower HandStrength is a better hand.
type HandEvaluator interface {
	EvaluateHand(cards []string) (*poker.Evaluation, error)
}

// Options configures the table rules
type Options struct {
	StartingChips int           `yaml:"startingChips" json:"startingChips" envconfig:"STARTING_CHIPS"`
	SmallBlind    int           `yaml:"smallBlind" json:"smallBlind" envconfig:"SMALL_BLIND"`
	BigBlind      int           `yaml:"bigBlind" json:"bigBlind" envconfig:"BIG_BLIND"`
	OddChipPolicy OddChipPolicy `yaml:"oddChipPolicy" json:"oddChipPolicy" envconfig:"ODD_CHIP_POLICY"`
}

// DefaultOptions returns the default options for heads-up Texas Hold'em
func DefaultOptions() Options {
	return Options{
		StartingChips: 1000,
		SmallBlind:    10,
		BigBlind:      20,
		OddChipPolicy: OddChipDiscard,
	}
}

func validateOptions(opts Options) error {
	if opts.SmallBlind <= 0 {
		return errors.New("small blind must be > 0")
	}

	if opts.BigBlind <= opts.SmallBlind {
		return errors.New("big blind must be greater than the small blind")
	}

	if opts.StartingChips < opts.BigBlind {
		return errors.New("starting chips must cover the big blind")
	}

	if !opts.OddChipPolicy.IsValid() {
		return fmt.Errorf("invalid odd chip policy: %s", string(opts.OddChipPolicy))
	}

	return nil
}

// Engine runs heads-up Texas Hold'em hands
// It holds no game state and is safe to share between games. Callers must not apply two actions
// to the same game concurrently.
type Engine struct {
	options   Options
	evaluator HandEvaluator
	clock     quartz.Clock
	logger    logrus.FieldLogger
}

// NewEngine returns a new engine
func NewEngine(logger logrus.FieldLogger, evaluator HandEvaluator, opts Options) (*Engine, error) {
	if opts.OddChipPolicy == "" {
		opts.OddChipPolicy = OddChipDiscard
	}

	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	if evaluator == nil {
		return nil, errors.New("a hand evaluator is required")
	}

	return &Engine{
		options:   opts,
		evaluator: evaluator,
		clock:     quartz.NewReal(),
		logger:    logger,
	}, nil
}

// SetClock replaces the clock used to seed shuffles
func (e *Engine) SetClock(clock quartz.Clock) {
	e.clock = clock
}

// Options returns the table rules
func (e *Engine) Options() Options {
	return e.options
}

// CreateGame returns a new game waiting for its first hand
func (e *Engine) CreateGame(gameID string, names [NumPlayers]string) GameState {
	state := GameState{
		GameID:            gameID,
		CommunityCards:    deck.Hand{},
		ActivePlayerIndex: 0,
		Phase:             PhaseWaiting,
		Deck:              deck.New(),
	}

	for i, name := range names {
		state.Players[i] = newPlayer(uuid.New().String(), name, e.options.StartingChips)
	}

	e.logger.WithField("gameID", gameID).Debug("created game")

	return state
}

// DealNewHand shuffles a fresh deck, deals the hole cards and posts the blinds
// The shuffle is seeded from the engine's clock.
func (e *Engine) DealNewHand(state GameState) GameState {
	return e.DealNewHandWithSeed(state, e.clock.Now().UnixNano())
}

// DealNewHandWithSeed is DealNewHand with a known shuffle seed
func (e *Engine) DealNewHandWithSeed(state GameState, seed int64) GameState {
	g := state.Clone()

	if g.HandNumber == 0 {
		g.DealerIndex = 0
	} else {
		g.DealerIndex = (g.DealerIndex + 1) % NumPlayers
	}

	for i := range g.Players {
		g.Players[i].resetForHand()
	}

	g.CommunityCards = deck.Hand{}
	g.Pot = 0
	g.CurrentBet = 0
	g.Winner = nil
	g.Winners = nil
	g.WinnerReason = ""
	g.PlayersActed = [NumPlayers]bool{}
	g.HandNumber++

	d := deck.New().Shuffle(seed)
	for _, seat := range []int{g.SmallBlindIndex(), g.BigBlindIndex()} {
		var err error
		if g.Players[seat].HoleCards, d, err = d.Draw(2); err != nil {
			// a fresh deck always has enough cards
			panic(err)
		}
	}

	g.Deck = d

	sb := &g.Players[g.SmallBlindIndex()]
	bb := &g.Players[g.BigBlindIndex()]
	g.Pot += sb.pay(e.options.SmallBlind)
	g.Pot += bb.pay(e.options.BigBlind)
	g.CurrentBet = max(sb.CurrentBet, bb.CurrentBet)

	g.Phase = PhasePreFlop
	g.ActivePlayerIndex = g.SmallBlindIndex()
	if !sb.CanAct() {
		g.ActivePlayerIndex = g.nextActivePlayer()
	}

	logger := e.logger.WithFields(logrus.Fields{
		"gameID": g.GameID,
		"hand":   g.HandNumber,
		"dealer": g.DealerIndex,
	})
	logger.Debug("dealt new hand")

	if err := e.fastForward(&g); err != nil {
		panic(err)
	}

	return g
}

// CanStartNewHand returns an error if StartNewHand would fail
func (e *Engine) CanStartNewHand(state GameState) error {
	if state.Phase != PhaseComplete {
		return ErrHandNotComplete
	}

	for _, p := range state.Players {
		if p.Chips < e.options.BigBlind {
			return ErrInsufficientChips
		}
	}

	return nil
}

// StartNewHand deals the next hand of a completed game
// It panics if the current hand is not complete or a player cannot cover the big blind.
func (e *Engine) StartNewHand(state GameState) GameState {
	if err := e.CanStartNewHand(state); err != nil {
		panic(err)
	}

	return e.DealNewHand(state)
}
