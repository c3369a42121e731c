package port

import (
	"context"

	"github.com/bornholm/corpus-asana/internal/core/model"
)

// TaskSource lists projects and tasks from the task tracker.
type TaskSource interface {
	// ListProjects returns every project of the given workspace.
	ListProjects(ctx context.Context, workspaceID string) ([]model.Project, error)
	GetProject(ctx context.Context, projectID string) (*model.Project, error)
	// ListTasks returns every task of the given project, with the requested
	// optional fields populated.
	ListTasks(ctx context.Context, projectID string, fields ...string) ([]model.Task, error)
}
