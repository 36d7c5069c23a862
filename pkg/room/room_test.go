package room

import (
	"context"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/ebbitten/bluepoker-sub001/pkg/playable"
	"github.com/ebbitten/bluepoker-sub001/pkg/playable/poker/action"
	"github.com/ebbitten/bluepoker-sub001/pkg/playable/poker/texasholdem"
	"github.com/ebbitten/bluepoker-sub001/pkg/poker"
)

func newTestPitBoss(t *testing.T, opts Options) (*PitBoss, *quartz.Mock) {
	t.Helper()

	engine, err := texasholdem.NewEngine(logrus.StandardLogger(), poker.NewEvaluator(), texasholdem.DefaultOptions())
	require.NoError(t, err)

	mockClock := quartz.NewMock(t)
	engine.SetClock(mockClock)

	pb := NewPitBoss(logrus.StandardLogger(), engine, opts)
	pb.SetClock(mockClock)
	t.Cleanup(pb.Close)

	return pb, mockClock
}

func newTestDealer(t *testing.T, opts Options) (*Dealer, *quartz.Mock) {
	t.Helper()

	pb, mockClock := newTestPitBoss(t, opts)
	d, err := pb.CreateGame([2]string{"Alice", "Bob"})
	require.NoError(t, err)

	return d, mockClock
}

func testContext(t *testing.T) context.Context {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)

	return ctx
}

func payload(a action.Action, amount ...int) *playable.PayloadIn {
	p := &playable.PayloadIn{
		Action:         string(a),
		AdditionalData: playable.AdditionalData{},
	}

	if len(amount) > 0 {
		p.AdditionalData["amount"] = float64(amount[0])
	}

	return p
}

func receive(t *testing.T, ch <-chan texasholdem.GameState) texasholdem.GameState {
	t.Helper()

	select {
	case state, ok := <-ch:
		require.True(t, ok, "channel is open")
		return state
	case <-time.After(5 * time.Second):
		require.FailNow(t, "timed out waiting for state")
	}

	return texasholdem.GameState{}
}

func messages(logs []*playable.LogMessage) []string {
	m := make([]string, len(logs))
	for i, log := range logs {
		m[i] = log.Message
	}

	return m
}
