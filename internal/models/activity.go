package models

import "time"

// ActivityType enumerates the kinds of project activity entries.
type ActivityType string

const (
	ActivityProjectCreated    ActivityType = "ProjectCreated"
	ActivityProjectUpdated    ActivityType = "ProjectUpdated"
	ActivityTaskCreated       ActivityType = "TaskCreated"
	ActivityTaskUpdated       ActivityType = "TaskUpdated"
	ActivityTaskCompleted     ActivityType = "TaskCompleted"
	ActivityTaskStatusChanged ActivityType = "TaskStatusChanged"
	ActivityTaskAssigned      ActivityType = "TaskAssigned"
	ActivityMemberAdded       ActivityType = "MemberAdded"
	ActivityMemberRemoved     ActivityType = "MemberRemoved"
	ActivityCommentAdded      ActivityType = "CommentAdded"
	ActivityFileUploaded      ActivityType = "FileUploaded"
	ActivityStatusChanged     ActivityType = "StatusChanged"
)

// Activity records something a user did to a project or one of its entities.
// Project and User are snapshots captured when the activity is recorded and
// are retained even if the project is later deleted (audit trail).
// OldValues/NewValues hold JSON-encoded field snapshots for change entries.
type Activity struct {
	ID           int          `json:"id"`
	ProjectID    int          `json:"projectId"`
	Project      *Project     `json:"project,omitempty"`
	UserID       int          `json:"userId"`
	User         User         `json:"user"`
	ActivityType ActivityType `json:"activityType"`
	Description  string       `json:"description"`
	EntityType   string       `json:"entityType,omitempty"`
	EntityID     int          `json:"entityId,omitempty"`
	OldValues    string       `json:"oldValues,omitempty"`
	NewValues    string       `json:"newValues,omitempty"`
	CreatedAt    time.Time    `json:"createdAt"`
}

// ActivityStats summarizes activity volume for a project or user scope.
type ActivityStats struct {
	Total  int                  `json:"total"`
	ByType map[ActivityType]int `json:"byType"`
	ByUser map[int]int          `json:"byUser"`
}
