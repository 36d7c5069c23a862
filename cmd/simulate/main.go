package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/ebbitten/bluepoker-sub001/internal/config"
	"github.com/ebbitten/bluepoker-sub001/internal/rng"
	"github.com/ebbitten/bluepoker-sub001/internal/util"
	"github.com/ebbitten/bluepoker-sub001/pkg/playable/poker/texasholdem"
	"github.com/ebbitten/bluepoker-sub001/pkg/poker"
	"github.com/ebbitten/bluepoker-sub001/pkg/room"
)

// CLI is the command line of the simulator
type CLI struct {
	Games       int      `default:"10" help:"Number of games to play"`
	Hands       int      `default:"500" help:"Maximum number of hands per game"`
	Bots        []string `default:"call,rand" help:"Strategy of each seat: call, raise or rand"`
	Concurrency int      `default:"4" help:"Number of games played at the same time"`
	Seed        int64    `default:"0" help:"Seed for the rand bots (0 for random)"`
	Verbose     bool     `short:"v" help:"Verbose logging"`
}

type gameResult struct {
	gameID    string
	names     [texasholdem.NumPlayers]string
	chips     [texasholdem.NumPlayers]int
	hands     int
	showdowns int
	splits    int
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli, kong.Description("Plays heads-up Texas Hold'em between bots"))

	cfg := config.Instance()
	logger, err := cfg.NewLogger()
	if err != nil {
		kctx.FatalIfErrorf(err)
	}

	if cli.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	if len(cli.Bots) != texasholdem.NumPlayers {
		kctx.Fatalf("exactly %d bots are required", texasholdem.NumPlayers)
	}

	engine, err := texasholdem.NewEngine(logger, poker.NewEvaluator(), cfg.Rules)
	kctx.FatalIfErrorf(err)

	// simulations do not wait on players
	tableOpts := cfg.Table
	tableOpts.ActionTimeout = 0
	tableOpts.AutoDeal = false

	pitBoss := room.NewPitBoss(logger, engine, tableOpts)
	defer pitBoss.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := simulate(ctx, pitBoss, engine, cli)
	kctx.FatalIfErrorf(err)

	printResults(results)
}

func simulate(ctx context.Context, pitBoss *room.PitBoss, engine *texasholdem.Engine, cli CLI) ([]gameResult, error) {
	results := make([]gameResult, cli.Games)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(cli.Concurrency, 1))

	for i := 0; i < cli.Games; i++ {
		g.Go(func() error {
			var gen rng.Generator = rng.Crypto{}
			if cli.Seed != 0 {
				gen = rng.NewLCG(cli.Seed + int64(i))
			}

			bots := [texasholdem.NumPlayers]bot{}
			for seat, kind := range cli.Bots {
				b, err := newBot(kind, gen)
				if err != nil {
					return err
				}

				bots[seat] = b
			}

			names := [texasholdem.NumPlayers]string{util.GetRandomName(), util.GetRandomName()}
			result, err := playGame(ctx, pitBoss, engine, names, bots, cli.Hands)
			if err != nil {
				return err
			}

			results[i] = result
			return nil
		})
	}

	return results, g.Wait()
}

func playGame(ctx context.Context, pitBoss *room.PitBoss, engine *texasholdem.Engine, names [texasholdem.NumPlayers]string, bots [texasholdem.NumPlayers]bot, maxHands int) (gameResult, error) {
	dealer, err := pitBoss.CreateGame(names)
	if err != nil {
		return gameResult{}, err
	}
	defer func() {
		_ = pitBoss.CloseGame(dealer.GameID())
	}()

	result := gameResult{
		gameID: dealer.GameID(),
		names:  names,
	}

	bigBlind := engine.Options().BigBlind
	for result.hands < maxHands {
		state, err := dealer.DealHand(ctx)
		if errors.Is(err, texasholdem.ErrInsufficientChips) {
			break
		} else if err != nil {
			return result, err
		}

		for !state.IsComplete() {
			active := state.ActivePlayer()
			if active == nil {
				return result, fmt.Errorf("game %s: nobody can act in the %s", result.gameID, state.Phase)
			}

			p := bots[state.ActivePlayerIndex].Decide(state.ViewFor(active.ID), bigBlind)
			res, err := dealer.Action(ctx, active.ID, p)
			if err != nil {
				return result, err
			}

			if !res.Success {
				return result, fmt.Errorf("game %s: %s was rejected: %w", result.gameID, p.Action, res.Err())
			}

			state = res.GameState
		}

		result.hands++
		switch state.WinnerReason {
		case texasholdem.ReasonBestHand:
			result.showdowns++
		case texasholdem.ReasonSplitPot:
			result.showdowns++
			result.splits++
		}

		for i, p := range state.Players {
			result.chips[i] = p.Chips
		}
	}

	return result, nil
}

func printResults(results []gameResult) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "GAME\tSEAT 1\tCHIPS\tSEAT 2\tCHIPS\tHANDS\tSHOWDOWNS\tSPLITS")

	var totals [texasholdem.NumPlayers]int
	for _, r := range results {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%d\t%d\t%d\t%d\n",
			r.gameID[:8], r.names[0], r.chips[0], r.names[1], r.chips[1], r.hands, r.showdowns, r.splits)

		for i, chips := range r.chips {
			totals[i] += chips
		}
	}

	_, _ = fmt.Fprintf(w, "TOTAL\t\t%d\t\t%d\t\t\t\n", totals[0], totals[1])
	_ = w.Flush()
}
