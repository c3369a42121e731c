package model

// Task is a task as returned by the Asana API. Optional fields are pointers
// or nil slices so that an absent value can be told apart from an empty one.
type Task struct {
	GID          string        `json:"gid"`
	Name         string        `json:"name"`
	Notes        *string       `json:"notes,omitempty"`
	Completed    bool          `json:"completed"`
	CompletedAt  *string       `json:"completed_at,omitempty"`
	CompletedBy  *User         `json:"completed_by,omitempty"`
	DueOn        *string       `json:"due_on,omitempty"`
	Assignee     *User         `json:"assignee,omitempty"`
	Followers    []User        `json:"followers,omitempty"`
	CustomFields []CustomField `json:"custom_fields,omitempty"`
	Memberships  []Membership  `json:"memberships,omitempty"`
	Workspace    *Workspace    `json:"workspace,omitempty"`
}

type User struct {
	GID  string  `json:"gid,omitempty"`
	Name *string `json:"name,omitempty"`
}

type CustomField struct {
	GID          string  `json:"gid,omitempty"`
	Name         string  `json:"name,omitempty"`
	DisplayValue *string `json:"display_value,omitempty"`
}

type Membership struct {
	Project *ProjectRef `json:"project,omitempty"`
}

type ProjectRef struct {
	GID  string  `json:"gid,omitempty"`
	Name *string `json:"name,omitempty"`
}

type Workspace struct {
	GID  string  `json:"gid,omitempty"`
	Name *string `json:"name,omitempty"`
}
