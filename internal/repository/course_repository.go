package repository

import (
	"context"
	"fmt"

	"career-guide/internal/database"
	"career-guide/internal/domain/course"
)

type PostgresCourseRepository struct {
	db database.DB
}

func NewPostgresCourseRepository(db database.DB) *PostgresCourseRepository {
	return &PostgresCourseRepository{db: db}
}

func (r *PostgresCourseRepository) ListActiveCourses(ctx context.Context) ([]course.Course, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, title, description, platform, url, cost_type
		 FROM courses
		 WHERE is_active = TRUE
		 ORDER BY id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	defer rows.Close()

	out := make([]course.Course, 0)
	for rows.Next() {
		var (
			c                                  course.Course
			description, platform, url, costTy *string
		)
		if err := rows.Scan(&c.ID, &c.Title, &description, &platform, &url, &costTy); err != nil {
			return nil, err
		}
		c.Description = str(description)
		c.Platform = str(platform)
		c.URL = str(url)
		c.CostType = str(costTy)
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
