// Package keepalive keeps the hosting platform from suspending an idle
// process. Free-tier hosts stop services that receive no traffic for a
// while; the Pinger defeats that by hitting the service's own public /ping
// route on a fixed interval, independently of any real caller traffic.
package keepalive

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

// outboundTimeout bounds each self-ping call so a hung request can never
// overlap the next tick.
const outboundTimeout = 10 * time.Second

// Pinger issues a recurring GET against a self URL.
type Pinger struct {
	url      string
	interval time.Duration
	client   *http.Client
	clock    clockwork.Clock
}

// New creates a Pinger targeting url every interval.
func New(url string, interval time.Duration) *Pinger {
	return &Pinger{
		url:      url,
		interval: interval,
		client:   &http.Client{Timeout: outboundTimeout},
		clock:    clockwork.NewRealClock(),
	}
}

// Run loops until ctx is cancelled, pinging once per interval. Each tick is
// independent and failure-isolated: a timeout, transport error or non-2xx
// response is logged and absorbed, and the ticker always survives to the
// next tick. Run is meant to be started in its own goroutine once the HTTP
// server is confirmed listening.
func (p *Pinger) Run(ctx context.Context) {
	ticker := p.clock.NewTicker(p.interval)
	defer ticker.Stop()

	log.Info().
		Str("url", p.url).
		Dur("interval", p.interval).
		Msg("keepalive pinger started")

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("keepalive pinger stopped")
			return
		case <-ticker.Chan():
			p.ping(ctx)
		}
	}
}

// ping performs one self-directed health check. It never returns an error —
// the caller has nothing useful to do with one, so failures end here as a
// log entry.
func (p *Pinger) ping(ctx context.Context) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		log.Warn().Err(err).Str("url", p.url).Msg("keepalive ping failed")
		return
	}

	resp, err := p.client.Do(req)
	if err != nil {
		log.Warn().Err(err).Str("url", p.url).Msg("keepalive ping failed")
		return
	}
	defer resp.Body.Close()

	// Drain so the connection goes back to the pool.
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Warn().
			Int("status", resp.StatusCode).
			Str("url", p.url).
			Msg("keepalive ping got non-2xx response")
		return
	}

	log.Debug().Str("url", p.url).Msg("keepalive ping sent")
}
