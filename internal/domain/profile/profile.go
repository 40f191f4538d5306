package profile

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrUserNotFound = errors.New("user not found")

// User is the stored user row as far as matching is concerned.
// CareerInterests holds the serialized JSON array exactly as persisted.
type User struct {
	ID                    uuid.UUID
	FullName              string
	Bio                   string
	ExperienceLevel       string
	ExperienceDescription string
	CareerInterests       string
}

// CVRecord is the stored CV; list fields are serialized JSON.
type CVRecord struct {
	PersonalSummary string
	Experiences     string
	Education       string
	Tools           string
	Projects        string
}

type Store interface {
	GetUser(ctx context.Context, userID uuid.UUID) (User, error)
	GetUserSkillIDs(ctx context.Context, userID uuid.UUID) ([]int64, error)
	// GetCV returns nil, nil when the user has no CV.
	GetCV(ctx context.Context, userID uuid.UUID) (*CVRecord, error)
}

type ExperienceEntry struct {
	Title       string  `json:"title"`
	Company     string  `json:"company"`
	Location    *string `json:"location"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	Current     bool    `json:"current"`
	Description *string `json:"description"`
}

type EducationEntry struct {
	Degree         string  `json:"degree"`
	Institution    string  `json:"institution"`
	Field          *string `json:"field"`
	GraduationYear *string `json:"graduation_year"`
	GPA            *string `json:"gpa"`
}

type ProjectEntry struct {
	Name         string  `json:"name"`
	Description  *string `json:"description"`
	Technologies *string `json:"technologies"`
	Link         *string `json:"link"`
}

type CV struct {
	PersonalSummary string
	Experiences     []ExperienceEntry
	Education       []EducationEntry
	Tools           []string
	Projects        []ProjectEntry
}

// UserProfile is the normalized per-request view of a user.
type UserProfile struct {
	UserID                uuid.UUID
	FullName              string
	Bio                   string
	ExperienceLevel       string
	SkillIDs              []int64
	SkillNames            []string
	ExperienceDescription string
	CareerInterests       []string
	CV                    *CV
}

func (p UserProfile) HasSkills() bool {
	return len(p.SkillNames) > 0
}

// Tools returns the CV tool list, or nil without a CV.
func (p UserProfile) Tools() []string {
	if p.CV == nil {
		return nil
	}
	return p.CV.Tools
}
