package asana

import (
	"context"
	"net/url"
	"strings"

	"github.com/bornholm/corpus-asana/internal/core/model"
	"github.com/pkg/errors"
)

// ListTasks implements [port.TaskSource].
func (c *Client) ListTasks(ctx context.Context, projectID string, fields ...string) ([]model.Task, error) {
	query := url.Values{}
	query.Set("project", projectID)

	if len(fields) > 0 {
		query.Set("opt_fields", strings.Join(fields, ","))
	}

	tasks, err := paginate[model.Task](ctx, c, "tasks.list", "/tasks", query)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return tasks, nil
}
