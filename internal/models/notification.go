package models

import "time"

// NotificationType enumerates the kinds of notifications the system emits.
type NotificationType string

const (
	NotificationTaskAssigned       NotificationType = "TaskAssigned"
	NotificationTaskCompleted      NotificationType = "TaskCompleted"
	NotificationTaskStatusChanged  NotificationType = "TaskStatusChanged"
	NotificationProjectUpdated     NotificationType = "ProjectUpdated"
	NotificationProjectMemberAdded NotificationType = "ProjectMemberAdded"
	NotificationTaskCommentAdded   NotificationType = "TaskCommentAdded"
	NotificationTaskDueSoon        NotificationType = "TaskDueSoon"
	NotificationDeadlineReminder   NotificationType = "DeadlineReminder"
	NotificationCommentAdded       NotificationType = "CommentAdded"
	NotificationProjectInvitation  NotificationType = "ProjectInvitation"
	NotificationStatusChanged      NotificationType = "StatusChanged"
	NotificationFileUploaded       NotificationType = "FileUploaded"
)

// NotificationTypes lists all types in a stable order, used for count maps.
var NotificationTypes = []NotificationType{
	NotificationTaskAssigned,
	NotificationTaskCompleted,
	NotificationTaskStatusChanged,
	NotificationProjectUpdated,
	NotificationProjectMemberAdded,
	NotificationTaskCommentAdded,
	NotificationTaskDueSoon,
	NotificationDeadlineReminder,
	NotificationCommentAdded,
	NotificationProjectInvitation,
	NotificationStatusChanged,
	NotificationFileUploaded,
}

// Notification is a per-user message. ReadAt is set the first time the
// notification is marked read and cleared when marked unread.
type Notification struct {
	ID                int              `json:"id"`
	UserID            int              `json:"userId"`
	Type              NotificationType `json:"type"`
	Title             string           `json:"title"`
	Message           string           `json:"message"`
	ActionURL         string           `json:"actionUrl,omitempty"`
	RelatedEntityType string           `json:"relatedEntityType,omitempty"`
	RelatedEntityID   int              `json:"relatedEntityId,omitempty"`
	IsRead            bool             `json:"isRead"`
	ReadAt            *time.Time       `json:"readAt,omitempty"`
	CreatedAt         time.Time        `json:"createdAt"`
}

// NotificationCounts summarizes a user's notification inbox.
type NotificationCounts struct {
	Total  int                      `json:"total"`
	Unread int                      `json:"unread"`
	ByType map[NotificationType]int `json:"byType"`
}
