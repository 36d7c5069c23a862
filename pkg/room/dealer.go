package room

import (
	"context"
	"errors"
	"sync"

	"github.com/coder/quartz"
	"github.com/sirupsen/logrus"

	"github.com/ebbitten/bluepoker-sub001/pkg/playable"
	"github.com/ebbitten/bluepoker-sub001/pkg/playable/poker/action"
	"github.com/ebbitten/bluepoker-sub001/pkg/playable/poker/texasholdem"
)

// ErrDealerClosed is returned when a dealer is no longer running its game
var ErrDealerClosed = errors.New("dealer is closed")

// ErrHandInProgress is returned when a hand is dealt before the current one is complete
var ErrHandInProgress = errors.New("hand is in progress")

const subscriberBuffer = 16

type subscriber struct {
	playerID string
	ch       chan texasholdem.GameState
}

// Dealer runs a single game
// Every change to the game happens inside the run loop, so no two actions are applied at the same time.
type Dealer struct {
	gameID  string
	logger  logrus.FieldLogger
	engine  *texasholdem.Engine
	clock   quartz.Clock
	options Options

	// the following must only be accessed from the run loop
	state       texasholdem.GameState
	logMessages []*playable.LogMessage
	subscribers map[*subscriber]bool
	turn        int
	turnTimer   *quartz.Timer
	dealTimer   *quartz.Timer
	summarized  int

	execInRunLoop chan func()
	close         chan bool
	closeOnce     sync.Once
	done          chan struct{}
}

// NewDealer creates a new dealer for a game that has not been dealt yet
func NewDealer(logger logrus.FieldLogger, engine *texasholdem.Engine, clock quartz.Clock, gameID string, names [texasholdem.NumPlayers]string, opts Options) *Dealer {
	return &Dealer{
		gameID:        gameID,
		logger:        logger.WithField("gameID", gameID),
		engine:        engine,
		clock:         clock,
		options:       opts,
		state:         engine.CreateGame(gameID, names),
		logMessages:   make([]*playable.LogMessage, 0, logMessageLimit),
		subscribers:   make(map[*subscriber]bool),
		execInRunLoop: make(chan func(), 256),
		close:         make(chan bool),
		done:          make(chan struct{}),
	}
}

// GameID returns the id of the game
func (d *Dealer) GameID() string {
	return d.gameID
}

// StartShift starts the run loop
func (d *Dealer) StartShift() {
	go d.runLoop()
}

// EndShift stops the run loop and closes every subscription
func (d *Dealer) EndShift() {
	d.closeOnce.Do(func() {
		close(d.close)
	})

	<-d.done
}

func (d *Dealer) runLoop() {
	defer close(d.done)

	d.logger.Debug("creating dealer run loop")
	for {
		select {
		case fn := <-d.execInRunLoop:
			fn()
		case <-d.close:
			d.stopTimers()
			for sub := range d.subscribers {
				close(sub.ch)
				delete(d.subscribers, sub)
			}

			d.logger.Debug("terminating dealer run loop")
			return
		}
	}
}

// exec runs fn in the run loop and waits for it to finish
func (d *Dealer) exec(ctx context.Context, fn func()) error {
	finished := make(chan struct{})
	wrapped := func() {
		fn()
		close(finished)
	}

	select {
	case d.execInRunLoop <- wrapped:
	case <-d.close:
		return ErrDealerClosed
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case <-finished:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-d.done:
		select {
		case <-finished:
			return nil
		default:
			return ErrDealerClosed
		}
	}
}

// enqueue schedules fn without waiting for it; used by timers
func (d *Dealer) enqueue(fn func()) {
	select {
	case d.execInRunLoop <- fn:
	case <-d.close:
	}
}

// State returns the full state of the game, including the deck
func (d *Dealer) State(ctx context.Context) (texasholdem.GameState, error) {
	var state texasholdem.GameState
	if err := d.exec(ctx, func() {
		state = d.state.Clone()
	}); err != nil {
		return texasholdem.GameState{}, err
	}

	return state, nil
}

// LogMessages returns the most recent log messages
func (d *Dealer) LogMessages(ctx context.Context) ([]*playable.LogMessage, error) {
	var messages []*playable.LogMessage
	if err := d.exec(ctx, func() {
		messages = make([]*playable.LogMessage, len(d.logMessages))
		copy(messages, d.logMessages)
	}); err != nil {
		return nil, err
	}

	return messages, nil
}

// DealHand deals the first hand, or the next hand once the current one is complete
func (d *Dealer) DealHand(ctx context.Context) (texasholdem.GameState, error) {
	var state texasholdem.GameState
	var dealErr error
	if err := d.exec(ctx, func() {
		dealErr = d.deal()
		state = d.state.Clone()
	}); err != nil {
		return texasholdem.GameState{}, err
	}

	return state, dealErr
}

// Action applies a player's action
// Rejected actions are reported in the result; the error is only set if the dealer could not run the action.
func (d *Dealer) Action(ctx context.Context, playerID string, payload *playable.PayloadIn) (texasholdem.ActionResult, error) {
	if payload == nil {
		return texasholdem.ActionResult{}, texasholdem.ErrInvalidAction
	}

	// an unknown action is passed through so the engine reports it in its usual order
	a, _ := payload.GetAction()

	var result texasholdem.ActionResult
	if err := d.exec(ctx, func() {
		result = d.applyAction(playerID, a, payload.GetAmount())
	}); err != nil {
		return texasholdem.ActionResult{}, err
	}

	return result, nil
}

// Subscribe returns a channel of the game as the player sees it, starting with the current state
// A slow subscriber misses updates rather than holding up the game. The returned func unsubscribes.
func (d *Dealer) Subscribe(playerID string) (<-chan texasholdem.GameState, func()) {
	sub := &subscriber{
		playerID: playerID,
		ch:       make(chan texasholdem.GameState, subscriberBuffer),
	}

	if err := d.exec(context.Background(), func() {
		d.subscribers[sub] = true
		d.send(sub)
	}); err != nil {
		close(sub.ch)
		return sub.ch, func() {}
	}

	var once sync.Once
	return sub.ch, func() {
		once.Do(func() {
			d.enqueue(func() {
				if d.subscribers[sub] {
					delete(d.subscribers, sub)
					close(sub.ch)
				}
			})
		})
	}
}

// NOTE: must only be called from the run loop
func (d *Dealer) deal() error {
	switch d.state.Phase {
	case texasholdem.PhaseWaiting:
		d.state = d.engine.DealNewHand(d.state)
	case texasholdem.PhaseComplete:
		if err := d.engine.CanStartNewHand(d.state); err != nil {
			return err
		}

		d.state = d.engine.StartNewHand(d.state)
	default:
		return ErrHandInProgress
	}

	d.logger.WithField("hand", d.state.HandNumber).Info("dealt hand")
	d.addLogMessages(playable.SimpleLogMessageSlice("", "Hand #%d dealt", d.state.HandNumber))
	d.stateChanged()

	return nil
}

// NOTE: must only be called from the run loop
func (d *Dealer) applyAction(playerID string, a action.Action, amount *int) texasholdem.ActionResult {
	result := d.engine.ExecutePlayerAction(d.state, playerID, a, amount)
	if !result.Success {
		d.logger.WithError(result.Err()).WithField("playerID", playerID).Debug("action rejected")
		return result
	}

	d.state = result.GameState
	d.addLogMessages(playable.SimpleLogMessageSlice(playerID, "%s", a.LogMessage(result.Amount)))
	d.stateChanged()

	return result
}

// NOTE: must only be called from the run loop
func (d *Dealer) stateChanged() {
	summary := d.state.Summary()
	handComplete := summary != nil && d.summarized != summary.HandNumber
	if handComplete {
		d.summarized = summary.HandNumber

		lines := summary.Messages()
		messages := make([]*playable.LogMessage, 0, len(lines))
		for _, line := range lines {
			messages = append(messages, playable.SimpleLogMessage("", "%s", line))
		}

		d.addLogMessages(messages)
		d.logger.WithFields(logrus.Fields{
			"hand":   summary.HandNumber,
			"reason": summary.Reason,
		}).Info("hand complete")
	}

	d.resetTurnTimer()
	d.broadcast()

	if handComplete {
		d.scheduleDeal()
	}
}

// NOTE: must only be called from the run loop
func (d *Dealer) scheduleDeal() {
	if !d.options.AutoDeal {
		return
	}

	if err := d.engine.CanStartNewHand(d.state); err != nil {
		d.logger.WithError(err).Info("game over")
		return
	}

	if d.options.AutoDealDelay <= 0 {
		d.autoDeal()
		return
	}

	hand := d.state.HandNumber
	d.dealTimer = d.clock.AfterFunc(d.options.AutoDealDelay, func() {
		d.enqueue(func() {
			if d.state.HandNumber == hand {
				d.autoDeal()
			}
		})
	})
}

// NOTE: must only be called from the run loop
func (d *Dealer) autoDeal() {
	if err := d.deal(); err != nil {
		d.logger.WithError(err).Error("could not deal the next hand")
	}
}

// NOTE: must only be called from the run loop
func (d *Dealer) resetTurnTimer() {
	if d.turnTimer != nil {
		d.turnTimer.Stop()
		d.turnTimer = nil
	}

	d.turn++
	if d.options.ActionTimeout <= 0 || d.state.ActivePlayer() == nil {
		return
	}

	turn := d.turn
	d.turnTimer = d.clock.AfterFunc(d.options.ActionTimeout, func() {
		d.enqueue(func() {
			if d.turn == turn {
				d.timeout()
			}
		})
	})
}

// NOTE: must only be called from the run loop
func (d *Dealer) timeout() {
	p := d.state.ActivePlayer()
	if p == nil {
		return
	}

	d.logger.WithField("playerID", p.ID).Warn("player ran out of time")
	d.addLogMessages(playable.SimpleLogMessageSlice(p.ID, "ran out of time"))
	d.applyAction(p.ID, action.Fold, nil)
}

// NOTE: must only be called from the run loop
func (d *Dealer) stopTimers() {
	for _, timer := range []*quartz.Timer{d.turnTimer, d.dealTimer} {
		if timer != nil {
			timer.Stop()
		}
	}
}

// NOTE: must only be called from the run loop
func (d *Dealer) broadcast() {
	for sub := range d.subscribers {
		d.send(sub)
	}
}

// NOTE: must only be called from the run loop
func (d *Dealer) send(sub *subscriber) {
	select {
	case sub.ch <- d.state.ViewFor(sub.playerID):
	default:
		d.logger.WithField("playerID", sub.playerID).Warn("subscriber is not keeping up, dropping update")
	}
}
