package service

import (
	"context"
	"log/slog"

	"github.com/bornholm/corpus-asana/internal/core/model"
	"github.com/bornholm/corpus-asana/internal/core/port"
	"github.com/bornholm/corpus-asana/internal/metrics"
	"github.com/pkg/errors"
	"github.com/rs/xid"
)

// DefaultTaskFields are the optional task fields requested to the task
// source, in the Asana opt_fields dotted notation.
var DefaultTaskFields = []string{
	"name",
	"notes",
	"completed",
	"completed_at",
	"completed_by.name",
	"assignee.name",
	"followers.name",
	"custom_fields.display_value",
	"due_on",
	"memberships.project.name",
	"workspace.name",
}

// TaskLoader loads the tasks of an Asana project or workspace as documents.
type TaskLoader struct {
	source port.TaskSource
	id     string
	kind   model.IDKind
	fields []string
}

func NewTaskLoader(source port.TaskSource, id string, kind model.IDKind) (*TaskLoader, error) {
	if source == nil {
		return nil, errors.Wrap(port.ErrConfiguration, "task source must not be nil")
	}

	if !kind.Valid() {
		return nil, errors.Wrapf(port.ErrConfiguration, "id kind must be either '%s' or '%s', got '%s'", model.IDKindProject, model.IDKindWorkspace, kind)
	}

	if id == "" {
		return nil, errors.Wrapf(port.ErrConfiguration, "%s id must not be empty", kind)
	}

	return &TaskLoader{
		source: source,
		id:     id,
		kind:   kind,
		fields: DefaultTaskFields,
	}, nil
}

func (l *TaskLoader) ID() string {
	return l.id
}

func (l *TaskLoader) Kind() model.IDKind {
	return l.kind
}

// Load returns one document per task, in the order the task source yields
// them, project after project.
func (l *TaskLoader) Load(ctx context.Context) ([]model.Document, error) {
	documents := make([]model.Document, 0)

	err := l.Walk(ctx, func(doc model.Document) error {
		documents = append(documents, doc)
		return nil
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return documents, nil
}

// Walk calls fn for each document as soon as the tasks of a project are
// retrieved. An error returned by fn stops the walk.
func (l *TaskLoader) Walk(ctx context.Context, fn func(doc model.Document) error) error {
	logger := slog.Default().With(
		slog.String("run", xid.New().String()),
		slog.String("kind", l.kind.String()),
		slog.String("id", l.id),
	)

	projects, err := l.resolveProjects(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	logger.DebugContext(ctx, "projects resolved", slog.Int("projects", len(projects)))

	total := 0

	for _, p := range projects {
		tasks, err := l.source.ListTasks(ctx, p.GID, l.fields...)
		if err != nil {
			return errors.WithStack(err)
		}

		logger.DebugContext(ctx, "tasks retrieved", slog.String("project", p.GID), slog.Int("tasks", len(tasks)))

		for _, t := range tasks {
			doc := TaskToDocument(t)

			metrics.DocumentsLoaded.Inc()
			total++

			if err := fn(doc); err != nil {
				return errors.WithStack(err)
			}
		}
	}

	logger.DebugContext(ctx, "tasks loaded", slog.Int("documents", total))

	return nil
}

func (l *TaskLoader) resolveProjects(ctx context.Context) ([]model.Project, error) {
	switch l.kind {
	case model.IDKindWorkspace:
		projects, err := l.source.ListProjects(ctx, l.id)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		return projects, nil

	case model.IDKindProject:
		project, err := l.source.GetProject(ctx, l.id)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		return []model.Project{*project}, nil

	default:
		return nil, errors.Wrapf(port.ErrConfiguration, "unexpected id kind '%s'", l.kind)
	}
}
