package models

import "time"

// ProjectStatus represents the lifecycle state of a project. There is no
// enforced transition graph; any status may follow any other.
type ProjectStatus string

const (
	ProjectStatusPlanning   ProjectStatus = "Planning"
	ProjectStatusInProgress ProjectStatus = "InProgress"
	ProjectStatusOnHold     ProjectStatus = "OnHold"
	ProjectStatusCompleted  ProjectStatus = "Completed"
	ProjectStatusCancelled  ProjectStatus = "Cancelled"
)

// ProjectStatuses lists all statuses in a stable order, used for count maps.
var ProjectStatuses = []ProjectStatus{
	ProjectStatusPlanning,
	ProjectStatusInProgress,
	ProjectStatusOnHold,
	ProjectStatusCompleted,
	ProjectStatusCancelled,
}

// Priority is shared by projects and tasks.
type Priority string

const (
	PriorityLow      Priority = "Low"
	PriorityMedium   Priority = "Medium"
	PriorityHigh     Priority = "High"
	PriorityCritical Priority = "Critical"
)

// ProjectMemberRole is the role a user holds within a single project.
type ProjectMemberRole string

const (
	MemberRoleProjectManager  ProjectMemberRole = "ProjectManager"
	MemberRoleDeveloper       ProjectMemberRole = "Developer"
	MemberRoleDesigner        ProjectMemberRole = "Designer"
	MemberRoleQA              ProjectMemberRole = "QA"
	MemberRoleBusinessAnalyst ProjectMemberRole = "BusinessAnalyst"
)

// Project is a managed project. ProjectManager is a denormalized snapshot of
// the managing user, refreshed whenever ProjectManagerID changes or the
// referenced user is updated. Tasks and Members are populated only by detail
// reads; list reads return them empty.
type Project struct {
	ID               int             `json:"id"`
	Name             string          `json:"name"`
	Description      string          `json:"description"`
	StartDate        time.Time       `json:"startDate"`
	EndDate          time.Time       `json:"endDate"`
	Status           ProjectStatus   `json:"status"`
	Budget           float64         `json:"budget"`
	ActualCost       float64         `json:"actualCost"`
	Color            string          `json:"color,omitempty"`
	Priority         Priority        `json:"priority,omitempty"`
	ProjectManagerID int             `json:"projectManagerId"`
	ProjectManager   User            `json:"projectManager"`
	Tasks            []Task          `json:"tasks"`
	Members          []ProjectMember `json:"members"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

// IsOverdue reports whether the project's end date has passed without the
// project reaching a terminal completed state.
func (p Project) IsOverdue(now time.Time) bool {
	return p.EndDate.Before(now) && p.Status != ProjectStatusCompleted
}

// ProjectMember links a user to a project with a project-scoped role.
// User is a snapshot of the linked user.
type ProjectMember struct {
	ID        int               `json:"id"`
	ProjectID int               `json:"projectId"`
	UserID    int               `json:"userId"`
	User      User              `json:"user"`
	Role      ProjectMemberRole `json:"role"`
	JoinedAt  time.Time         `json:"joinedAt"`
	IsActive  bool              `json:"isActive"`
}
