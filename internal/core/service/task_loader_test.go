package service

import (
	"context"
	"fmt"
	"reflect"
	"testing"

	"github.com/bornholm/corpus-asana/internal/core/model"
	"github.com/bornholm/corpus-asana/internal/core/port"
	"github.com/pkg/errors"
)

type fakeTaskSource struct {
	projects map[string][]model.Project
	tasks    map[string][]model.Task
	err      error
	calls    []string
}

func (s *fakeTaskSource) ListProjects(ctx context.Context, workspaceID string) ([]model.Project, error) {
	s.calls = append(s.calls, "ListProjects:"+workspaceID)
	if s.err != nil {
		return nil, s.err
	}
	return s.projects[workspaceID], nil
}

func (s *fakeTaskSource) GetProject(ctx context.Context, projectID string) (*model.Project, error) {
	s.calls = append(s.calls, "GetProject:"+projectID)
	if s.err != nil {
		return nil, s.err
	}
	return &model.Project{GID: projectID, Name: "Project " + projectID}, nil
}

func (s *fakeTaskSource) ListTasks(ctx context.Context, projectID string, fields ...string) ([]model.Task, error) {
	s.calls = append(s.calls, "ListTasks:"+projectID)
	if s.err != nil {
		return nil, s.err
	}
	return s.tasks[projectID], nil
}

var _ port.TaskSource = &fakeTaskSource{}

func newTasks(prefix string, total int) []model.Task {
	tasks := make([]model.Task, 0, total)
	for i := range total {
		tasks = append(tasks, model.Task{GID: fmt.Sprintf("%s-%d", prefix, i), Name: fmt.Sprintf("Task %s %d", prefix, i)})
	}
	return tasks
}

func TestTaskLoaderWorkspace(t *testing.T) {
	source := &fakeTaskSource{
		projects: map[string][]model.Project{
			"ws": {{GID: "p1"}, {GID: "p2"}, {GID: "p3"}},
		},
		tasks: map[string][]model.Task{
			"p1": newTasks("p1", 2),
			"p2": newTasks("p2", 0),
			"p3": newTasks("p3", 3),
		},
	}

	loader, err := NewTaskLoader(source, "ws", model.IDKindWorkspace)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	documents, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	expectedCalls := []string{"ListProjects:ws", "ListTasks:p1", "ListTasks:p2", "ListTasks:p3"}
	if e, g := expectedCalls, source.calls; !reflect.DeepEqual(e, g) {
		t.Errorf("source.calls: expected %v, got %v", e, g)
	}

	expectedIDs := []string{"p1-0", "p1-1", "p3-0", "p3-1", "p3-2"}
	if e, g := len(expectedIDs), len(documents); e != g {
		t.Fatalf("len(documents): expected '%d', got '%d'", e, g)
	}

	for i, id := range expectedIDs {
		if e, g := id, documents[i].Metadata.ID; e != g {
			t.Errorf("documents[%d].Metadata.ID: expected '%s', got '%s'", i, e, g)
		}
	}
}

func TestTaskLoaderProject(t *testing.T) {
	source := &fakeTaskSource{
		tasks: map[string][]model.Task{
			"p1": newTasks("p1", 4),
		},
	}

	loader, err := NewTaskLoader(source, "p1", model.IDKindProject)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	documents, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	expectedCalls := []string{"GetProject:p1", "ListTasks:p1"}
	if e, g := expectedCalls, source.calls; !reflect.DeepEqual(e, g) {
		t.Errorf("source.calls: expected %v, got %v", e, g)
	}

	if e, g := 4, len(documents); e != g {
		t.Errorf("len(documents): expected '%d', got '%d'", e, g)
	}
}

func TestNewTaskLoaderInvalidConfiguration(t *testing.T) {
	type testCase struct {
		Name   string
		Source port.TaskSource
		ID     string
		Kind   model.IDKind
	}

	source := &fakeTaskSource{}

	testCases := []testCase{
		{Name: "unknown kind", Source: source, ID: "123", Kind: model.IDKind("portfolio")},
		{Name: "empty kind", Source: source, ID: "123", Kind: ""},
		{Name: "empty id", Source: source, ID: "", Kind: model.IDKindProject},
		{Name: "nil source", Source: nil, ID: "123", Kind: model.IDKindProject},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			loader, err := NewTaskLoader(tc.Source, tc.ID, tc.Kind)
			if err == nil {
				t.Fatalf("expected an error, got loader %v", loader)
			}

			if !errors.Is(err, port.ErrConfiguration) {
				t.Errorf("expected port.ErrConfiguration, got '%+v'", err)
			}
		})
	}

	if e, g := 0, len(source.calls); e != g {
		t.Errorf("len(source.calls): expected '%d', got '%d'", e, g)
	}
}

func TestTaskLoaderPropagatesSourceError(t *testing.T) {
	sourceErr := errors.New("unauthorized")

	source := &fakeTaskSource{err: sourceErr}

	loader, err := NewTaskLoader(source, "ws", model.IDKindWorkspace)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	documents, err := loader.Load(context.Background())
	if err == nil {
		t.Fatalf("expected an error, got %d documents", len(documents))
	}

	if e, g := sourceErr, errors.Cause(err); e != g {
		t.Errorf("errors.Cause(err): expected '%v', got '%v'", e, g)
	}

	if e, g := 1, len(source.calls); e != g {
		t.Errorf("len(source.calls): expected '%d', got '%d'", e, g)
	}
}

func TestTaskLoaderWalkStops(t *testing.T) {
	source := &fakeTaskSource{
		projects: map[string][]model.Project{
			"ws": {{GID: "p1"}, {GID: "p2"}},
		},
		tasks: map[string][]model.Task{
			"p1": newTasks("p1", 3),
			"p2": newTasks("p2", 3),
		},
	}

	loader, err := NewTaskLoader(source, "ws", model.IDKindWorkspace)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	errStop := errors.New("stop")
	visited := 0

	err = loader.Walk(context.Background(), func(doc model.Document) error {
		visited++
		if visited == 2 {
			return errStop
		}
		return nil
	})

	if !errors.Is(err, errStop) {
		t.Errorf("expected errStop, got '%+v'", err)
	}

	if e, g := 2, visited; e != g {
		t.Errorf("visited: expected '%d', got '%d'", e, g)
	}

	expectedCalls := []string{"ListProjects:ws", "ListTasks:p1"}
	if e, g := expectedCalls, source.calls; !reflect.DeepEqual(e, g) {
		t.Errorf("source.calls: expected %v, got %v", e, g)
	}
}

func TestNewTaskLoaderFromCredentials(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		t.Setenv("ASANA_ACCESS_TOKEN", "")

		_, err := NewTaskLoaderFromCredentials("123", model.IDKindProject)
		if !errors.Is(err, port.ErrConfiguration) {
			t.Errorf("expected port.ErrConfiguration, got '%+v'", err)
		}
	})

	t.Run("token from environment", func(t *testing.T) {
		t.Setenv("ASANA_ACCESS_TOKEN", "from-env")

		loader, err := NewTaskLoaderFromCredentials("123", model.IDKindWorkspace)
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		if e, g := model.IDKindWorkspace, loader.Kind(); e != g {
			t.Errorf("loader.Kind(): expected '%s', got '%s'", e, g)
		}
	})

	t.Run("explicit token", func(t *testing.T) {
		t.Setenv("ASANA_ACCESS_TOKEN", "")

		loader, err := NewTaskLoaderFromCredentials("123", model.IDKindProject, WithAccessToken("explicit"))
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		if e, g := "123", loader.ID(); e != g {
			t.Errorf("loader.ID(): expected '%s', got '%s'", e, g)
		}
	})

	t.Run("invalid kind", func(t *testing.T) {
		_, err := NewTaskLoaderFromCredentials("123", model.IDKind("team"), WithAccessToken("explicit"))
		if !errors.Is(err, port.ErrConfiguration) {
			t.Errorf("expected port.ErrConfiguration, got '%+v'", err)
		}
	})
}
