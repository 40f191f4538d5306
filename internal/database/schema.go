package database

import (
	"context"
	"fmt"
	"strings"
)

// RequiredColumns lists the columns the stores read, per table.
var RequiredColumns = map[string][]string{
	"users":               {"id", "full_name", "bio", "experience_level", "experience_description", "career_interests", "is_active"},
	"user_skills":         {"user_id", "skill_id"},
	"user_resumes":        {"user_id", "personal_summary", "experiences", "education", "tools", "projects"},
	"skills":              {"id", "name", "category"},
	"jobs":                {"id", "title", "company", "description", "requirements", "location", "job_type", "experience_level", "required_skills", "salary_range", "is_active"},
	"local_opportunities": {"id", "title", "organization", "description", "location", "category", "target_track", "required_skills", "link", "priority_group", "is_active"},
	"courses":             {"id", "title", "description", "platform", "url", "cost_type", "is_active"},
}

// VerifySchema fails with every missing column named, so a stale database is
// reported at startup rather than on the first request.
func VerifySchema(ctx context.Context, db DB, required map[string][]string) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}

	var missing []string
	for table, columns := range required {
		existing, err := tableColumns(ctx, db, table)
		if err != nil {
			return fmt.Errorf("inspect %s: %w", table, err)
		}
		for _, col := range columns {
			if _, ok := existing[col]; !ok {
				missing = append(missing, table+"."+col)
			}
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("schema mismatch: missing columns %s", strings.Join(missing, ", "))
	}
	return nil
}

func tableColumns(ctx context.Context, db DB, table string) (map[string]struct{}, error) {
	rows, err := db.Query(
		ctx,
		`SELECT column_name FROM information_schema.columns WHERE table_schema = 'public' AND table_name = $1`,
		table,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	existing := map[string]struct{}{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		existing[c] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return existing, nil
}
