package poller

import (
	"context"
	"log/slog"
	"sync"
)

// Latest follows a Poller and keeps the most recent Update it published.
type Latest struct {
	Poller
	logger  *slog.Logger
	lock    sync.RWMutex
	update  Update
	updated bool
}

func NewLatest(p Poller, logger *slog.Logger) *Latest {
	return &Latest{
		Poller: p,
		logger: logger,
	}
}

// Run receives updates from the poller until the context is canceled.
func (l *Latest) Run(ctx context.Context) error {
	l.logger.Debug("started")
	defer l.logger.Debug("stopped")

	ch := l.Poller.Subscribe()
	defer l.Poller.Unsubscribe(ch)

	for {
		select {
		case <-ctx.Done():
			return nil
		case update := <-ch:
			l.Set(update)
		}
	}
}

// Set stores update as the latest update.
func (l *Latest) Set(update Update) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.update = update
	l.updated = true
}

// Get returns the latest update. The boolean is false if no update has been received yet.
func (l *Latest) Get() (Update, bool) {
	l.lock.RLock()
	defer l.lock.RUnlock()
	return l.update, l.updated
}
