package service

import (
	"reflect"
	"testing"

	"github.com/bornholm/corpus-asana/internal/core/model"
	"github.com/davecgh/go-spew/spew"
)

func ptr[T any](v T) *T {
	return &v
}

func TestTaskToDocument(t *testing.T) {
	type testCase struct {
		Name             string
		Task             model.Task
		ExpectedContent  string
		ExpectedMetadata model.Metadata
	}

	testCases := []testCase{
		{
			Name: "defaults",
			Task: model.Task{
				Name: "Lonely task",
			},
			ExpectedContent: "Lonely task\n",
			ExpectedMetadata: model.Metadata{
				Title:         "Lonely task",
				ID:            "unknown",
				Assignee:      "Unassigned",
				DueDate:       "No due date",
				CompletedAt:   "Not completed",
				CustomFields:  []string{},
				CompletedBy:   "Unknown",
				ProjectName:   "Unknown",
				WorkspaceName: "Unknown",
				Followers:     []string{},
			},
		},
		{
			Name: "example",
			Task: model.Task{
				GID:          "1",
				Name:         "Fix bug",
				Notes:        ptr("details"),
				Assignee:     &model.User{Name: ptr("Alice")},
				CustomFields: []model.CustomField{{DisplayValue: ptr("P1")}},
				Followers:    []model.User{{Name: ptr("Bob")}, {Name: ptr("Carol")}},
			},
			ExpectedContent: "Fix bug\ndetails",
			ExpectedMetadata: model.Metadata{
				Title:         "Fix bug",
				ID:            "1",
				Assignee:      "Alice",
				DueDate:       "No due date",
				CompletedAt:   "Not completed",
				CustomFields:  []string{"P1"},
				CompletedBy:   "Unknown",
				ProjectName:   "Unknown",
				WorkspaceName: "Unknown",
				Followers:     []string{"Bob", "Carol"},
			},
		},
		{
			Name: "fully populated",
			Task: model.Task{
				GID:         "1207",
				Name:        "Ship release",
				Notes:       ptr("changelog\nand tag"),
				Completed:   true,
				CompletedAt: ptr("2024-03-01T10:00:00.000Z"),
				CompletedBy: &model.User{GID: "9", Name: ptr("Dave")},
				DueOn:       ptr("2024-02-28"),
				Assignee:    &model.User{GID: "8", Name: ptr("Erin")},
				Memberships: []model.Membership{
					{Project: &model.ProjectRef{GID: "100", Name: ptr("Releases")}},
					{Project: &model.ProjectRef{GID: "101", Name: ptr("Ignored")}},
				},
				Workspace: &model.Workspace{GID: "5", Name: ptr("Acme")},
			},
			ExpectedContent: "Ship release\nchangelog\nand tag",
			ExpectedMetadata: model.Metadata{
				Title:         "Ship release",
				ID:            "1207",
				Assignee:      "Erin",
				DueDate:       "2024-02-28",
				CompletedAt:   "2024-03-01T10:00:00.000Z",
				CustomFields:  []string{},
				CompletedBy:   "Dave",
				ProjectName:   "Releases",
				WorkspaceName: "Acme",
				Followers:     []string{},
			},
		},
		{
			Name: "nested objects without names",
			Task: model.Task{
				GID:          "2",
				Name:         "Partial",
				Notes:        ptr(""),
				Assignee:     &model.User{GID: "8"},
				CompletedBy:  &model.User{GID: "9"},
				Memberships:  []model.Membership{{}},
				Workspace:    &model.Workspace{GID: "5"},
				CustomFields: []model.CustomField{{DisplayValue: ptr("High")}, {GID: "no-value"}, {DisplayValue: ptr("3")}},
				Followers:    []model.User{{GID: "anonymous"}, {Name: ptr("Frank")}},
			},
			ExpectedContent: "Partial\n",
			ExpectedMetadata: model.Metadata{
				Title:         "Partial",
				ID:            "2",
				Assignee:      "Unassigned",
				DueDate:       "No due date",
				CompletedAt:   "Not completed",
				CustomFields:  []string{"High", "", "3"},
				CompletedBy:   "Unknown",
				ProjectName:   "Unknown",
				WorkspaceName: "Unknown",
				Followers:     []string{"Frank"},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			doc := TaskToDocument(tc.Task)

			if e, g := tc.ExpectedContent, doc.Content; e != g {
				t.Errorf("doc.Content: expected '%q', got '%q'", e, g)
			}

			if e, g := tc.ExpectedMetadata, doc.Metadata; !reflect.DeepEqual(e, g) {
				t.Errorf("doc.Metadata: expected %s, got %s", spew.Sdump(e), spew.Sdump(g))
			}
		})
	}
}

func TestTaskToDocumentIsolation(t *testing.T) {
	name := "Alice"
	task := model.Task{
		Name:      "Shared",
		Followers: []model.User{{Name: &name}},
	}

	doc := TaskToDocument(task)

	name = "Mallory"

	if e, g := "Alice", doc.Metadata.Followers[0]; e != g {
		t.Errorf("doc.Metadata.Followers[0]: expected '%s', got '%s'", e, g)
	}
}
