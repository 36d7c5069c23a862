package room

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/coder/quartz"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ebbitten/bluepoker-sub001/pkg/playable/poker/texasholdem"
)

// ErrGameNotFound is returned when a game id is not registered with the pit boss
var ErrGameNotFound = errors.New("game not found")

// Options configures how dealers run their games
type Options struct {
	// ActionTimeout folds a player who has not acted in time; zero disables it
	ActionTimeout time.Duration `yaml:"actionTimeout" envconfig:"ACTION_TIMEOUT"`
	// AutoDeal deals the next hand after one completes
	AutoDeal bool `yaml:"autoDeal" envconfig:"AUTO_DEAL"`
	// AutoDealDelay is how long the completed hand is shown before the next one is dealt
	AutoDealDelay time.Duration `yaml:"autoDealDelay" envconfig:"AUTO_DEAL_DELAY"`
}

// PitBoss is responsible for keeping track of the dealers running games
type PitBoss struct {
	logger  logrus.FieldLogger
	engine  *texasholdem.Engine
	options Options
	clock   quartz.Clock

	dealers map[string]*Dealer
	lock    sync.RWMutex
}

// NewPitBoss returns a new registry of games
func NewPitBoss(logger logrus.FieldLogger, engine *texasholdem.Engine, opts Options) *PitBoss {
	return &PitBoss{
		logger:  logger,
		engine:  engine,
		options: opts,
		clock:   quartz.NewReal(),
		dealers: make(map[string]*Dealer),
	}
}

// SetClock sets the clock used for timeouts of dealers created afterwards
func (p *PitBoss) SetClock(clock quartz.Clock) {
	p.clock = clock
}

// CreateGame starts a dealer for a new game between two players
func (p *PitBoss) CreateGame(names [texasholdem.NumPlayers]string) (*Dealer, error) {
	for _, name := range names {
		if name == "" {
			return nil, errors.New("player names are required")
		}
	}

	gameID := uuid.New().String()
	dealer := NewDealer(p.logger, p.engine, p.clock, gameID, names, p.options)
	dealer.StartShift()

	p.lock.Lock()
	p.dealers[gameID] = dealer
	p.lock.Unlock()

	p.logger.WithField("gameID", gameID).Info("game created")

	return dealer, nil
}

// Dealer returns the dealer running the game
func (p *PitBoss) Dealer(gameID string) (*Dealer, error) {
	p.lock.RLock()
	defer p.lock.RUnlock()

	dealer, found := p.dealers[gameID]
	if !found {
		return nil, ErrGameNotFound
	}

	return dealer, nil
}

// CloseGame stops the game's dealer and forgets the game
func (p *PitBoss) CloseGame(gameID string) error {
	p.lock.Lock()
	dealer, found := p.dealers[gameID]
	delete(p.dealers, gameID)
	p.lock.Unlock()

	if !found {
		return ErrGameNotFound
	}

	dealer.EndShift()
	p.logger.WithField("gameID", gameID).Info("game closed")

	return nil
}

// GameIDs returns the ids of the running games in sorted order
func (p *PitBoss) GameIDs() []string {
	p.lock.RLock()
	defer p.lock.RUnlock()

	ids := make([]string, 0, len(p.dealers))
	for id := range p.dealers {
		ids = append(ids, id)
	}

	sort.Strings(ids)
	return ids
}

// Close stops every dealer
func (p *PitBoss) Close() {
	for _, id := range p.GameIDs() {
		_ = p.CloseGame(id)
	}
}
