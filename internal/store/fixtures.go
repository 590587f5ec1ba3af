package store

import (
	_ "embed"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"projecthub-backend/internal/models"
)

//go:embed fixtures.yaml
var fixturesYAML []byte

// Fixture rows keep timestamps as RFC3339 strings so the file stays portable
// across yaml decoders; parsing is explicit in Seed.

type userFixture struct {
	ID              int    `yaml:"id"`
	FirstName       string `yaml:"firstName"`
	LastName        string `yaml:"lastName"`
	Email           string `yaml:"email"`
	PhoneNumber     string `yaml:"phoneNumber"`
	Role            string `yaml:"role"`
	IsActive        bool   `yaml:"isActive"`
	ProfileImageURL string `yaml:"profileImageUrl"`
	LastLoginAt     string `yaml:"lastLoginAt"`
	CreatedAt       string `yaml:"createdAt"`
}

type projectFixture struct {
	ID               int     `yaml:"id"`
	Name             string  `yaml:"name"`
	Description      string  `yaml:"description"`
	StartDate        string  `yaml:"startDate"`
	EndDate          string  `yaml:"endDate"`
	Status           string  `yaml:"status"`
	Budget           float64 `yaml:"budget"`
	ActualCost       float64 `yaml:"actualCost"`
	Color            string  `yaml:"color"`
	Priority         string  `yaml:"priority"`
	ProjectManagerID int     `yaml:"projectManagerId"`
	CreatedAt        string  `yaml:"createdAt"`
	UpdatedAt        string  `yaml:"updatedAt"`
}

type memberFixture struct {
	ID        int    `yaml:"id"`
	ProjectID int    `yaml:"projectId"`
	UserID    int    `yaml:"userId"`
	Role      string `yaml:"role"`
	JoinedAt  string `yaml:"joinedAt"`
	IsActive  bool   `yaml:"isActive"`
}

type taskFixture struct {
	ID             int     `yaml:"id"`
	Title          string  `yaml:"title"`
	Description    string  `yaml:"description"`
	Priority       string  `yaml:"priority"`
	Status         string  `yaml:"status"`
	DueDate        string  `yaml:"dueDate"`
	EstimatedHours float64 `yaml:"estimatedHours"`
	ActualHours    float64 `yaml:"actualHours"`
	ProjectID      int     `yaml:"projectId"`
	AssignedToID   int     `yaml:"assignedToId"`
	ParentTaskID   *int    `yaml:"parentTaskId"`
	Tags           string  `yaml:"tags"`
	Progress       int     `yaml:"progress"`
	CreatedAt      string  `yaml:"createdAt"`
	UpdatedAt      string  `yaml:"updatedAt"`
}

type commentFixture struct {
	ID              int    `yaml:"id"`
	TaskID          int    `yaml:"taskId"`
	UserID          int    `yaml:"userId"`
	Content         string `yaml:"content"`
	ParentCommentID *int   `yaml:"parentCommentId"`
	CreatedAt       string `yaml:"createdAt"`
	UpdatedAt       string `yaml:"updatedAt"`
}

type notificationFixture struct {
	ID                int    `yaml:"id"`
	UserID            int    `yaml:"userId"`
	Type              string `yaml:"type"`
	Title             string `yaml:"title"`
	Message           string `yaml:"message"`
	RelatedEntityType string `yaml:"relatedEntityType"`
	RelatedEntityID   int    `yaml:"relatedEntityId"`
	IsRead            bool   `yaml:"isRead"`
	ReadAt            string `yaml:"readAt"`
	CreatedAt         string `yaml:"createdAt"`
}

type activityFixture struct {
	ID           int    `yaml:"id"`
	ProjectID    int    `yaml:"projectId"`
	UserID       int    `yaml:"userId"`
	ActivityType string `yaml:"activityType"`
	Description  string `yaml:"description"`
	EntityType   string `yaml:"entityType"`
	EntityID     int    `yaml:"entityId"`
	OldValues    string `yaml:"oldValues"`
	NewValues    string `yaml:"newValues"`
	CreatedAt    string `yaml:"createdAt"`
}

type fixtureFile struct {
	Users         []userFixture         `yaml:"users"`
	Projects      []projectFixture      `yaml:"projects"`
	Members       []memberFixture       `yaml:"members"`
	Tasks         []taskFixture         `yaml:"tasks"`
	Comments      []commentFixture      `yaml:"comments"`
	Notifications []notificationFixture `yaml:"notifications"`
	Activities    []activityFixture     `yaml:"activities"`
}

// Seed builds a store populated from the embedded fixture file.
func Seed() (*Store, error) {
	return SeedFrom(fixturesYAML)
}

// SeedFrom builds a store from fixture yaml. All foreign keys are resolved
// into embedded snapshots here, in load order: users first, then projects,
// then everything that references them. Id counters end up one past the
// highest seeded id per collection.
func SeedFrom(data []byte) (*Store, error) {
	var f fixtureFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing fixtures: %w", err)
	}

	s := New()

	for _, uf := range f.Users {
		lastLogin, err := parseTime(uf.LastLoginAt)
		if err != nil {
			return nil, fmt.Errorf("user %d lastLoginAt: %w", uf.ID, err)
		}
		created, err := parseTime(uf.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("user %d createdAt: %w", uf.ID, err)
		}
		if !models.ValidUserRole(models.UserRole(uf.Role)) {
			return nil, fmt.Errorf("user %d: unknown role %q", uf.ID, uf.Role)
		}
		s.Users = append(s.Users, models.User{
			ID:              uf.ID,
			FirstName:       uf.FirstName,
			LastName:        uf.LastName,
			Email:           uf.Email,
			PhoneNumber:     uf.PhoneNumber,
			Role:            models.UserRole(uf.Role),
			IsActive:        uf.IsActive,
			ProfileImageURL: uf.ProfileImageURL,
			LastLoginAt:     lastLogin,
			CreatedAt:       created,
		})
		if uf.ID >= s.nextUserID {
			s.nextUserID = uf.ID + 1
		}
	}

	for _, pf := range f.Projects {
		manager := s.UserByID(pf.ProjectManagerID)
		if manager == nil {
			return nil, fmt.Errorf("project %d: unknown manager %d", pf.ID, pf.ProjectManagerID)
		}
		start, err := parseTime(pf.StartDate)
		if err != nil {
			return nil, fmt.Errorf("project %d startDate: %w", pf.ID, err)
		}
		end, err := parseTime(pf.EndDate)
		if err != nil {
			return nil, fmt.Errorf("project %d endDate: %w", pf.ID, err)
		}
		created, err := parseTime(pf.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("project %d createdAt: %w", pf.ID, err)
		}
		updated, err := parseTime(pf.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("project %d updatedAt: %w", pf.ID, err)
		}
		s.Projects = append(s.Projects, models.Project{
			ID:               pf.ID,
			Name:             pf.Name,
			Description:      pf.Description,
			StartDate:        start,
			EndDate:          end,
			Status:           models.ProjectStatus(pf.Status),
			Budget:           pf.Budget,
			ActualCost:       pf.ActualCost,
			Color:            pf.Color,
			Priority:         models.Priority(pf.Priority),
			ProjectManagerID: pf.ProjectManagerID,
			ProjectManager:   *manager,
			CreatedAt:        created,
			UpdatedAt:        updated,
		})
		if pf.ID >= s.nextProjectID {
			s.nextProjectID = pf.ID + 1
		}
	}

	for _, mf := range f.Members {
		if s.ProjectByID(mf.ProjectID) == nil {
			return nil, fmt.Errorf("member %d: unknown project %d", mf.ID, mf.ProjectID)
		}
		u := s.UserByID(mf.UserID)
		if u == nil {
			return nil, fmt.Errorf("member %d: unknown user %d", mf.ID, mf.UserID)
		}
		joined, err := parseTime(mf.JoinedAt)
		if err != nil {
			return nil, fmt.Errorf("member %d joinedAt: %w", mf.ID, err)
		}
		s.Members = append(s.Members, models.ProjectMember{
			ID:        mf.ID,
			ProjectID: mf.ProjectID,
			UserID:    mf.UserID,
			User:      *u,
			Role:      models.ProjectMemberRole(mf.Role),
			JoinedAt:  joined,
			IsActive:  mf.IsActive,
		})
		if mf.ID >= s.nextMemberID {
			s.nextMemberID = mf.ID + 1
		}
	}

	seenTasks := make(map[int]bool, len(f.Tasks))
	for _, tf := range f.Tasks {
		p := s.ProjectByID(tf.ProjectID)
		if p == nil {
			return nil, fmt.Errorf("task %d: unknown project %d", tf.ID, tf.ProjectID)
		}
		assignee := s.UserByID(tf.AssignedToID)
		if assignee == nil {
			return nil, fmt.Errorf("task %d: unknown assignee %d", tf.ID, tf.AssignedToID)
		}
		if tf.ParentTaskID != nil && !seenTasks[*tf.ParentTaskID] {
			return nil, fmt.Errorf("task %d: parent %d must be listed first", tf.ID, *tf.ParentTaskID)
		}
		due, err := parseTime(tf.DueDate)
		if err != nil {
			return nil, fmt.Errorf("task %d dueDate: %w", tf.ID, err)
		}
		created, err := parseTime(tf.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("task %d createdAt: %w", tf.ID, err)
		}
		updated, err := parseTime(tf.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("task %d updatedAt: %w", tf.ID, err)
		}
		s.Tasks = append(s.Tasks, models.Task{
			ID:             tf.ID,
			Title:          tf.Title,
			Description:    tf.Description,
			Priority:       models.Priority(tf.Priority),
			Status:         models.TaskStatus(tf.Status),
			DueDate:        due,
			EstimatedHours: tf.EstimatedHours,
			ActualHours:    tf.ActualHours,
			ProjectID:      tf.ProjectID,
			Project:        ProjectRef(*p),
			AssignedToID:   tf.AssignedToID,
			AssignedTo:     *assignee,
			ParentTaskID:   tf.ParentTaskID,
			Tags:           tf.Tags,
			Progress:       tf.Progress,
			CreatedAt:      created,
			UpdatedAt:      updated,
		})
		seenTasks[tf.ID] = true
		if tf.ID >= s.nextTaskID {
			s.nextTaskID = tf.ID + 1
		}
	}

	for _, cf := range f.Comments {
		if s.TaskByID(cf.TaskID) == nil {
			return nil, fmt.Errorf("comment %d: unknown task %d", cf.ID, cf.TaskID)
		}
		u := s.UserByID(cf.UserID)
		if u == nil {
			return nil, fmt.Errorf("comment %d: unknown user %d", cf.ID, cf.UserID)
		}
		created, err := parseTime(cf.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("comment %d createdAt: %w", cf.ID, err)
		}
		updated, err := parseTime(cf.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("comment %d updatedAt: %w", cf.ID, err)
		}
		s.Comments = append(s.Comments, models.TaskComment{
			ID:              cf.ID,
			TaskID:          cf.TaskID,
			UserID:          cf.UserID,
			User:            *u,
			Content:         cf.Content,
			ParentCommentID: cf.ParentCommentID,
			CreatedAt:       created,
			UpdatedAt:       updated,
		})
		if cf.ID >= s.nextCommentID {
			s.nextCommentID = cf.ID + 1
		}
	}

	for _, nf := range f.Notifications {
		if s.UserByID(nf.UserID) == nil {
			return nil, fmt.Errorf("notification %d: unknown user %d", nf.ID, nf.UserID)
		}
		created, err := parseTime(nf.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("notification %d createdAt: %w", nf.ID, err)
		}
		var readAt *time.Time
		if nf.ReadAt != "" {
			t, err := parseTime(nf.ReadAt)
			if err != nil {
				return nil, fmt.Errorf("notification %d readAt: %w", nf.ID, err)
			}
			readAt = &t
		}
		s.Notifications = append(s.Notifications, models.Notification{
			ID:                nf.ID,
			UserID:            nf.UserID,
			Type:              models.NotificationType(nf.Type),
			Title:             nf.Title,
			Message:           nf.Message,
			RelatedEntityType: nf.RelatedEntityType,
			RelatedEntityID:   nf.RelatedEntityID,
			IsRead:            nf.IsRead,
			ReadAt:            readAt,
			CreatedAt:         created,
		})
		if nf.ID >= s.nextNotificationID {
			s.nextNotificationID = nf.ID + 1
		}
	}

	for _, af := range f.Activities {
		p := s.ProjectByID(af.ProjectID)
		if p == nil {
			return nil, fmt.Errorf("activity %d: unknown project %d", af.ID, af.ProjectID)
		}
		u := s.UserByID(af.UserID)
		if u == nil {
			return nil, fmt.Errorf("activity %d: unknown user %d", af.ID, af.UserID)
		}
		created, err := parseTime(af.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("activity %d createdAt: %w", af.ID, err)
		}
		s.Activities = append(s.Activities, models.Activity{
			ID:           af.ID,
			ProjectID:    af.ProjectID,
			Project:      ProjectRef(*p),
			UserID:       af.UserID,
			User:         *u,
			ActivityType: models.ActivityType(af.ActivityType),
			Description:  af.Description,
			EntityType:   af.EntityType,
			EntityID:     af.EntityID,
			OldValues:    af.OldValues,
			NewValues:    af.NewValues,
			CreatedAt:    created,
		})
		if af.ID >= s.nextActivityID {
			s.nextActivityID = af.ID + 1
		}
	}

	return s, nil
}

func parseTime(v string) (time.Time, error) {
	if v == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, v)
}
