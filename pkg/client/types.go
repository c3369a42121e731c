package client

import "time"

type TaskID string

type Task struct {
	ID          TaskID    `json:"id"`
	Status      string    `json:"status"`
	Progress    float32   `json:"progress"`
	ScheduledAt time.Time `json:"scheduledAt"`
	FinishedAt  time.Time `json:"finishedAt"`
	Error       string    `json:"error,omitempty"`
	Message     string    `json:"message"`
}

type showTaskResponse struct {
	Task *Task `json:"task"`
}
