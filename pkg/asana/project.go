package asana

import (
	"context"
	"net/url"

	"github.com/bornholm/corpus-asana/internal/core/model"
	"github.com/pkg/errors"
)

const projectFields = "gid,name"

// ListProjects implements [port.TaskSource].
func (c *Client) ListProjects(ctx context.Context, workspaceID string) ([]model.Project, error) {
	query := url.Values{}
	query.Set("workspace", workspaceID)
	query.Set("opt_fields", projectFields)

	projects, err := paginate[model.Project](ctx, c, "projects.list", "/projects", query)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return projects, nil
}

// GetProject implements [port.TaskSource].
func (c *Client) GetProject(ctx context.Context, projectID string) (*model.Project, error) {
	query := url.Values{}
	query.Set("opt_fields", projectFields)

	var res envelope[model.Project]
	if err := c.jsonRequest(ctx, "projects.get", "/projects/"+url.PathEscape(projectID), query, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return &res.Data, nil
}
