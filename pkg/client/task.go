package client

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
)

type WaitForOptions struct {
	PollInterval time.Duration
}

type WaitForOptionFunc func(opts *WaitForOptions)

func WithWaitForPollInterval(interval time.Duration) WaitForOptionFunc {
	return func(opts *WaitForOptions) {
		opts.PollInterval = interval
	}
}

func NewWaitForOptions(funcs ...WaitForOptionFunc) *WaitForOptions {
	opts := &WaitForOptions{
		PollInterval: time.Second * 2,
	}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}

// WaitFor polls the server until the given task is finished.
func (c *Client) WaitFor(ctx context.Context, taskID TaskID, funcs ...WaitForOptionFunc) (*Task, error) {
	opts := NewWaitForOptions(funcs...)

	ticker := time.NewTicker(opts.PollInterval)
	defer ticker.Stop()

	endpoint := c.endpoint("/tasks/"+url.PathEscape(string(taskID)), nil)

	for {
		var res showTaskResponse
		if err := c.call(ctx, http.MethodGet, endpoint, "", nil, &res); err != nil {
			return nil, errors.WithStack(err)
		}

		if res.Task == nil {
			return nil, errors.Errorf("task '%s' not found in server response", taskID)
		}

		if !res.Task.FinishedAt.IsZero() {
			return res.Task, nil
		}

		select {
		case <-ctx.Done():
			return nil, errors.WithStack(ctx.Err())
		case <-ticker.C:
		}
	}
}
