package models

// Task statuses as defined by the server.
const (
	TaskStatusTodo       = "todo"
	TaskStatusInProgress = "in_progress"
	TaskStatusDone       = "done"
)

type Task struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Status      string  `json:"status"`
	Sprint      *int64  `json:"sprint,omitempty"`
	Owner       int64   `json:"owner,omitempty"`
	OwnerEmail  string  `json:"owner_email,omitempty"`
	Member      []int64 `json:"member,omitempty"`
	CreatedAt   string  `json:"created_at,omitempty"`
}

type Sprint struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	IsActive   bool   `json:"is_active"`
	Owner      int64  `json:"owner,omitempty"`
	OwnerEmail string `json:"owner_email,omitempty"`
	CreatedAt  string `json:"created_at,omitempty"`
}

type Group struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	JoinCode    string `json:"join_code,omitempty"`
	Owner       int64  `json:"owner,omitempty"`
	OwnerEmail  string `json:"owner_email,omitempty"`
	MemberCount int    `json:"member_count,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
}
