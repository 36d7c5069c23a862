package room

import (
	"github.com/ebbitten/bluepoker-sub001/pkg/playable"
)

const logMessageLimit = 25

// addLogMessages adds log messages, keeping the most recent
// Note: this must only be called from within the run loop
func (d *Dealer) addLogMessages(messages []*playable.LogMessage) {
	for _, m := range messages {
		m.Time = d.clock.Now()
	}

	m := append(d.logMessages, messages...)
	count := len(m)
	if count > logMessageLimit {
		m = m[count-logMessageLimit:]
	}

	d.logMessages = m
}
