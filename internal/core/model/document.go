package model

// Document is the normalized form of a task, ready to be indexed.
type Document struct {
	Content  string   `json:"content" yaml:"content"`
	Metadata Metadata `json:"metadata" yaml:"metadata"`
}

// Metadata fields are declared in the order they are serialized.
type Metadata struct {
	Title         string   `json:"title" yaml:"title"`
	ID            string   `json:"id" yaml:"id"`
	Assignee      string   `json:"assignee" yaml:"assignee"`
	DueDate       string   `json:"due_date" yaml:"due_date"`
	CompletedAt   string   `json:"completed_at" yaml:"completed_at"`
	CustomFields  []string `json:"custom_fields" yaml:"custom_fields"`
	CompletedBy   string   `json:"completed_by" yaml:"completed_by"`
	ProjectName   string   `json:"project_name" yaml:"project_name"`
	WorkspaceName string   `json:"workspace_name" yaml:"workspace_name"`
	Followers     []string `json:"followers" yaml:"followers"`
}

const (
	MetadataTitle         = "title"
	MetadataID            = "id"
	MetadataAssignee      = "assignee"
	MetadataDueDate       = "due_date"
	MetadataCompletedAt   = "completed_at"
	MetadataCustomFields  = "custom_fields"
	MetadataCompletedBy   = "completed_by"
	MetadataProjectName   = "project_name"
	MetadataWorkspaceName = "workspace_name"
	MetadataFollowers     = "followers"
)

// Keys returns the metadata keys in serialization order.
func (m Metadata) Keys() []string {
	return []string{
		MetadataTitle,
		MetadataID,
		MetadataAssignee,
		MetadataDueDate,
		MetadataCompletedAt,
		MetadataCustomFields,
		MetadataCompletedBy,
		MetadataProjectName,
		MetadataWorkspaceName,
		MetadataFollowers,
	}
}

// Map returns the metadata as a generic map, for consumers that do not know
// the Metadata type.
func (m Metadata) Map() map[string]any {
	return map[string]any{
		MetadataTitle:         m.Title,
		MetadataID:            m.ID,
		MetadataAssignee:      m.Assignee,
		MetadataDueDate:       m.DueDate,
		MetadataCompletedAt:   m.CompletedAt,
		MetadataCustomFields:  append([]string{}, m.CustomFields...),
		MetadataCompletedBy:   m.CompletedBy,
		MetadataProjectName:   m.ProjectName,
		MetadataWorkspaceName: m.WorkspaceName,
		MetadataFollowers:     append([]string{}, m.Followers...),
	}
}
