package transport

import (
	"io"
	"log/slog"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// RateLimit retries requests answered with 429 Too Many Requests, waiting
// for the delay advertised by the server.
type RateLimit struct {
	Base        http.RoundTripper
	MaxRetries  int
	DefaultWait time.Duration
	// MaxWait caps the delay taken from the response headers. Zero means no cap.
	MaxWait time.Duration
}

func (t *RateLimit) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}

	ctx := req.Context()
	current := req

	for attempt := 0; ; attempt++ {
		res, err := base.RoundTrip(current)
		if err != nil {
			return nil, err
		}

		if res.StatusCode != http.StatusTooManyRequests || attempt >= t.MaxRetries {
			return res, nil
		}

		wait := t.waitTime(res)

		io.Copy(io.Discard, res.Body)
		res.Body.Close()

		slog.WarnContext(ctx, "rate limited (429)",
			slog.String("host", req.URL.Host),
			slog.Duration("wait_time", wait),
			slog.Int("attempt", attempt+1),
			slog.Int("max_retries", t.MaxRetries),
		)

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}

		// The caller's request must not be modified, retries use a clone.
		current = req.Clone(ctx)

		if req.GetBody != nil {
			body, err := req.GetBody()
			if err != nil {
				return nil, errors.Wrap(err, "could not rewind request body")
			}
			current.Body = body
		} else if req.Body != nil && req.Body != http.NoBody {
			return nil, errors.New("cannot retry request with one-time reader body")
		}
	}
}

func (t *RateLimit) waitTime(res *http.Response) time.Duration {
	wait := t.DefaultWait

	if retryAfter := res.Header.Get("Retry-After"); retryAfter != "" {
		if seconds, err := strconv.Atoi(retryAfter); err == nil {
			wait = time.Duration(seconds) * time.Second
			wait += time.Duration(rand.Float64() * float64(wait) / 10)
		} else if date, err := http.ParseTime(retryAfter); err == nil {
			wait = time.Until(date)
		}
	} else if reset := res.Header.Get("X-RateLimit-Reset"); reset != "" {
		if ts, err := strconv.ParseInt(reset, 10, 64); err == nil {
			if until := time.Until(time.Unix(ts, 0)); until > 0 {
				wait = until
			}
		}
	}

	if wait < 0 {
		wait = 0
	}

	if t.MaxWait > 0 && wait > t.MaxWait {
		wait = t.MaxWait
	}

	return wait
}

var _ http.RoundTripper = &RateLimit{}
