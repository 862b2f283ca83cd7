package feed

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Listener receives every new revision of the feed
type Listener interface {
	OnNewData(r io.Reader) error
}

// Loader hands the feed from a Source to a Listener, skipping revisions it already delivered.
type Loader struct {
	// source of the raw feed
	source Source

	// listener receiving new revisions
	listener Listener

	// interval how often to look for a new revision
	interval time.Duration

	// lock serializes loads, so the listener never sees two at once
	lock sync.Mutex

	// last revision the listener accepted
	last Version

	logger log.Logger
}

// NewLoader constructs a Loader
func NewLoader(source Source, listener Listener, interval time.Duration, logger log.Logger) *Loader {
	return &Loader{
		source:   source,
		listener: listener,
		interval: interval,
		logger:   logger,
	}
}

// LoadNow delivers the current feed to the listener. It returns false without calling the listener when the
// revision was already delivered.
func (l *Loader) LoadNow(ctx context.Context) (bool, error) {
	l.lock.Lock()
	defer l.lock.Unlock()

	rc, version, err := l.source.Open(ctx)
	if err != nil {
		return false, fmt.Errorf("load now: %w", err)
	}
	defer rc.Close()

	if version.Same(l.last) {
		return false, nil
	}
	if err := l.listener.OnNewData(rc); err != nil {
		return false, fmt.Errorf("load now [%v]: %w", version.ModTime, err)
	}
	l.last = version
	return true, nil
}

// Run loads the feed at once, then every interval until ctx is done.
// This is expected to be called from a go-routine.
func (l *Loader) Run(ctx context.Context) {
	l.load(ctx, "initial load")

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			l.load(ctx, "periodic refresh")
		case <-ctx.Done():
			level.Info(l.logger).Log("msg", "shutting down feed refresh")
			return
		}
	}
}

func (l *Loader) load(ctx context.Context, what string) {
	loaded, err := l.LoadNow(ctx)
	if err != nil {
		// Don't return, just log and hope this is a transient error
		level.Error(l.logger).Log("msg", what+" failed", "err", err)
		return
	}
	if loaded {
		level.Info(l.logger).Log("msg", what+" delivered new feed")
	} else {
		level.Debug(l.logger).Log("msg", what+" found no new feed")
	}
}
