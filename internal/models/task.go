package models

import "time"

// TaskStatus represents the workflow state of a task. No transition graph is
// enforced; progress and status are independent fields.
type TaskStatus string

const (
	TaskStatusNotStarted TaskStatus = "NotStarted"
	TaskStatusToDo       TaskStatus = "ToDo"
	TaskStatusInProgress TaskStatus = "InProgress"
	TaskStatusReview     TaskStatus = "Review"
	TaskStatusCompleted  TaskStatus = "Completed"
	TaskStatusBlocked    TaskStatus = "Blocked"
	TaskStatusCancelled  TaskStatus = "Cancelled"
	TaskStatusOnHold     TaskStatus = "OnHold"
)

// TaskStatuses lists all statuses in a stable order, used for count maps.
var TaskStatuses = []TaskStatus{
	TaskStatusNotStarted,
	TaskStatusToDo,
	TaskStatusInProgress,
	TaskStatusReview,
	TaskStatusCompleted,
	TaskStatusBlocked,
	TaskStatusCancelled,
	TaskStatusOnHold,
}

// Task is a unit of work inside a project. Project and AssignedTo are
// denormalized snapshots; the Project snapshot is stored without its own
// Tasks/Members to keep reads flat. ParentTaskID builds a subtask tree and
// must never form a cycle.
type Task struct {
	ID             int           `json:"id"`
	Title          string        `json:"title"`
	Description    string        `json:"description"`
	Priority       Priority      `json:"priority"`
	Status         TaskStatus    `json:"status"`
	DueDate        time.Time     `json:"dueDate"`
	EstimatedHours float64       `json:"estimatedHours"`
	ActualHours    float64       `json:"actualHours"`
	ProjectID      int           `json:"projectId"`
	Project        *Project      `json:"project,omitempty"`
	AssignedToID   int           `json:"assignedToId"`
	AssignedTo     User          `json:"assignedTo"`
	ParentTaskID   *int          `json:"parentTaskId,omitempty"`
	SubTasks       []Task        `json:"subTasks"`
	Tags           string        `json:"tags"`
	Progress       int           `json:"progress"`
	Comments       []TaskComment `json:"comments"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}

// IsOverdue reports whether the task's due date has passed without the task
// reaching a terminal completed state.
func (t Task) IsOverdue(now time.Time) bool {
	return t.DueDate.Before(now) && t.Status != TaskStatusCompleted
}

// TaskComment is a comment on a task, optionally threaded via
// ParentCommentID. User is a snapshot of the author.
type TaskComment struct {
	ID              int           `json:"id"`
	TaskID          int           `json:"taskId"`
	UserID          int           `json:"userId"`
	User            User          `json:"user"`
	Content         string        `json:"content"`
	ParentCommentID *int          `json:"parentCommentId,omitempty"`
	Replies         []TaskComment `json:"replies"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}
