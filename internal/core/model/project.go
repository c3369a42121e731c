package model

type Project struct {
	GID  string `json:"gid"`
	Name string `json:"name"`
}
