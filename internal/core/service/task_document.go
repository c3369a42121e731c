package service

import "github.com/bornholm/corpus-asana/internal/core/model"

const (
	DefaultID            = "unknown"
	DefaultAssignee      = "Unassigned"
	DefaultDueDate       = "No due date"
	DefaultCompletedAt   = "Not completed"
	DefaultCompletedBy   = "Unknown"
	DefaultProjectName   = "Unknown"
	DefaultWorkspaceName = "Unknown"
)

// TaskToDocument normalizes a task. Absent optional fields are replaced by
// their default value, it never fails.
func TaskToDocument(task model.Task) model.Document {
	notes := valueOr(task.Notes, "")

	metadata := model.Metadata{
		Title:         task.Name,
		ID:            task.GID,
		Assignee:      userName(task.Assignee, DefaultAssignee),
		DueDate:       valueOr(task.DueOn, DefaultDueDate),
		CompletedAt:   valueOr(task.CompletedAt, DefaultCompletedAt),
		CustomFields:  make([]string, 0, len(task.CustomFields)),
		CompletedBy:   userName(task.CompletedBy, DefaultCompletedBy),
		ProjectName:   DefaultProjectName,
		WorkspaceName: DefaultWorkspaceName,
		Followers:     make([]string, 0, len(task.Followers)),
	}

	if metadata.ID == "" {
		metadata.ID = DefaultID
	}

	// Entries without a display value keep their position.
	for _, f := range task.CustomFields {
		metadata.CustomFields = append(metadata.CustomFields, valueOr(f.DisplayValue, ""))
	}

	if len(task.Memberships) > 0 {
		if p := task.Memberships[0].Project; p != nil {
			metadata.ProjectName = valueOr(p.Name, DefaultProjectName)
		}
	}

	if task.Workspace != nil {
		metadata.WorkspaceName = valueOr(task.Workspace.Name, DefaultWorkspaceName)
	}

	for _, f := range task.Followers {
		if f.Name != nil {
			metadata.Followers = append(metadata.Followers, *f.Name)
		}
	}

	return model.Document{
		Content:  task.Name + "\n" + notes,
		Metadata: metadata,
	}
}

func userName(u *model.User, defaultValue string) string {
	if u == nil {
		return defaultValue
	}

	return valueOr(u.Name, defaultValue)
}

func valueOr(v *string, defaultValue string) string {
	if v == nil {
		return defaultValue
	}

	return *v
}
