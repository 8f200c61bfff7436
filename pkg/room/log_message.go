package room

import (
	"dragonante-server/pkg/playable"
)

const logMessageLimit = 25

// addLogMessages keeps the most recent table messages for clients that join later
func (d *Dealer) addLogMessages(messages []*playable.LogMessage) {
	d.lock.Lock()
	defer d.lock.Unlock()

	m := append(d.logMessages, messages...)
	count := len(m)
	if count > logMessageLimit {
		m = m[count-logMessageLimit:]
	}

	d.logMessages = m
}

// LogMessages returns the kept table messages, oldest first
func (d *Dealer) LogMessages() []*playable.LogMessage {
	d.lock.RLock()
	defer d.lock.RUnlock()

	return append([]*playable.LogMessage{}, d.logMessages...)
}
