package repository

import (
	"context"
	"fmt"

	"career-guide/internal/database"
	"career-guide/internal/domain/skill"
)

type PostgresSkillRepository struct {
	db database.DB
}

func NewPostgresSkillRepository(db database.DB) *PostgresSkillRepository {
	return &PostgresSkillRepository{db: db}
}

func (r *PostgresSkillRepository) ListAll(ctx context.Context) ([]skill.Skill, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, category FROM skills ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}
	defer rows.Close()

	out := make([]skill.Skill, 0)
	for rows.Next() {
		s, err := scanSkill(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListSkills resolves ids; unknown ids are absent from the result.
func (r *PostgresSkillRepository) ListSkills(ctx context.Context, ids []int64) (map[int64]skill.Skill, error) {
	out := make(map[int64]skill.Skill, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	rows, err := r.db.Query(ctx, `SELECT id, name, category FROM skills WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("list skills by id: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		s, err := scanSkill(rows)
		if err != nil {
			return nil, err
		}
		out[s.ID] = s
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanSkill(rows database.Rows) (skill.Skill, error) {
	var (
		s        skill.Skill
		category *string
	)
	if err := rows.Scan(&s.ID, &s.Name, &category); err != nil {
		return skill.Skill{}, err
	}
	s.Category = str(category)
	return s, nil
}
