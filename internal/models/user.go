package models

import "time"

// UserRole represents the application-wide role of a user
type UserRole string

const (
	RoleAdmin          UserRole = "Admin"
	RoleProjectManager UserRole = "ProjectManager"
	RoleTeamMember     UserRole = "TeamMember"
)

// ValidUserRole reports whether the given role is one of the known roles.
func ValidUserRole(r UserRole) bool {
	switch r {
	case RoleAdmin, RoleProjectManager, RoleTeamMember:
		return true
	}
	return false
}

// User represents an account in the system. Identity fields (ID, CreatedAt)
// are immutable after creation; profile, role and active flag are mutable.
type User struct {
	ID              int       `json:"id"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	Email           string    `json:"email"`
	PhoneNumber     string    `json:"phoneNumber"`
	Role            UserRole  `json:"role"`
	IsActive        bool      `json:"isActive"`
	ProfileImageURL string    `json:"profileImageUrl,omitempty"`
	LastLoginAt     time.Time `json:"lastLoginAt"`
	CreatedAt       time.Time `json:"createdAt"`
}

// FullName returns the display name used in notifications and activity text.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// UserStats aggregates a user's workload across projects and tasks.
// TaskCompletionRate is a percentage and is 0 when the user has no tasks.
type UserStats struct {
	TotalProjects      int     `json:"totalProjects"`
	ActiveProjects     int     `json:"activeProjects"`
	TotalTasks         int     `json:"totalTasks"`
	CompletedTasks     int     `json:"completedTasks"`
	OverdueTasks       int     `json:"overdueTasks"`
	TaskCompletionRate float64 `json:"taskCompletionRate"`
}
