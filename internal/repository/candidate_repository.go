package repository

import (
	"context"
	"fmt"

	"career-guide/internal/database"
	"career-guide/internal/domain/matching"
)

// PostgresJobRepository lists active jobs as match candidates in id order.
type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

func (r *PostgresJobRepository) ListActiveCandidates(ctx context.Context) ([]matching.Candidate, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, title, company, description, requirements, location, job_type,
		        experience_level, required_skills, salary_range, is_active
		 FROM jobs
		 WHERE is_active = TRUE
		 ORDER BY id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()

	out := make([]matching.Candidate, 0)
	for rows.Next() {
		var (
			c                                     matching.Candidate
			company, description, requirements    *string
			location, jobType, level, skills, pay *string
		)
		if err := rows.Scan(&c.ID, &c.Title, &company, &description, &requirements, &location,
			&jobType, &level, &skills, &pay, &c.Active); err != nil {
			return nil, err
		}
		c.Kind = matching.KindJob
		c.Organization = str(company)
		c.Description = str(description)
		c.Requirements = str(requirements)
		c.Location = str(location)
		c.Category = str(jobType)
		c.ExperienceLevel = str(level)
		c.RequiredSkills = matching.RequiredSkills{Raw: str(skills)}
		c.SalaryRange = str(pay)
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// PostgresOpportunityRepository lists active local opportunities in id order.
type PostgresOpportunityRepository struct {
	db database.DB
}

func NewPostgresOpportunityRepository(db database.DB) *PostgresOpportunityRepository {
	return &PostgresOpportunityRepository{db: db}
}

func (r *PostgresOpportunityRepository) ListActiveCandidates(ctx context.Context) ([]matching.Candidate, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, title, organization, description, location, category,
		        target_track, required_skills, link, priority_group, COALESCE(is_active, TRUE)
		 FROM local_opportunities
		 WHERE COALESCE(is_active, TRUE) = TRUE
		 ORDER BY id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list opportunities: %w", err)
	}
	defer rows.Close()

	out := make([]matching.Candidate, 0)
	for rows.Next() {
		var (
			c                                       matching.Candidate
			organization, description, location     *string
			category, track, skills, link, priority *string
		)
		if err := rows.Scan(&c.ID, &c.Title, &organization, &description, &location, &category,
			&track, &skills, &link, &priority, &c.Active); err != nil {
			return nil, err
		}
		c.Kind = matching.KindOpportunity
		c.Organization = str(organization)
		c.Description = str(description)
		c.Location = str(location)
		c.Category = str(category)
		c.TargetTrack = str(track)
		c.RequiredSkills = matching.RequiredSkills{Raw: str(skills)}
		c.Link = str(link)
		c.PriorityGroup = str(priority)
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
