package repository

import (
	"context"
	"fmt"

	"career-guide/internal/database"
	"career-guide/internal/domain/profile"

	"github.com/google/uuid"
)

type PostgresProfileRepository struct {
	db database.DB
}

func NewPostgresProfileRepository(db database.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

func (r *PostgresProfileRepository) GetUser(ctx context.Context, userID uuid.UUID) (profile.User, error) {
	var (
		u                                       profile.User
		fullName, bio, level, expDesc, interest *string
	)
	err := r.db.QueryRow(ctx,
		`SELECT id, full_name, bio, experience_level, experience_description, career_interests
		 FROM users
		 WHERE id = $1 AND is_active = TRUE`,
		userID,
	).Scan(&u.ID, &fullName, &bio, &level, &expDesc, &interest)
	if err != nil {
		if isNoRows(err) {
			return profile.User{}, profile.ErrUserNotFound
		}
		return profile.User{}, fmt.Errorf("get user: %w", err)
	}

	u.FullName = str(fullName)
	u.Bio = str(bio)
	u.ExperienceLevel = str(level)
	u.ExperienceDescription = str(expDesc)
	u.CareerInterests = str(interest)
	return u, nil
}

func (r *PostgresProfileRepository) GetUserSkillIDs(ctx context.Context, userID uuid.UUID) ([]int64, error) {
	rows, err := r.db.Query(ctx,
		`SELECT skill_id
		 FROM user_skills
		 WHERE user_id = $1
		 ORDER BY skill_id ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list user skills: %w", err)
	}
	defer rows.Close()

	out := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetCV returns nil, nil when the user has not saved a CV.
func (r *PostgresProfileRepository) GetCV(ctx context.Context, userID uuid.UUID) (*profile.CVRecord, error) {
	var summary, experiences, education, tools, projects *string
	err := r.db.QueryRow(ctx,
		`SELECT personal_summary, experiences, education, tools, projects
		 FROM user_resumes
		 WHERE user_id = $1`,
		userID,
	).Scan(&summary, &experiences, &education, &tools, &projects)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cv: %w", err)
	}

	return &profile.CVRecord{
		PersonalSummary: str(summary),
		Experiences:     str(experiences),
		Education:       str(education),
		Tools:           str(tools),
		Projects:        str(projects),
	}, nil
}
