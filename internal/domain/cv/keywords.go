package cv

import (
	"strings"

	"career-guide/internal/domain/profile"
	"career-guide/internal/domain/skill"
)

// MaxKeywords caps a keyword list.
const MaxKeywords = 15

const maxToolKeywords = 5

var commonKeywords = []string{
	"Problem Solving",
	"Team Collaboration",
	"Communication",
	"Leadership",
	"Project Management",
	"Analytical Skills",
}

// Keywords lists ATS keywords taken from the profile alone: skills, the first
// few CV tools, then common soft skills. Duplicates are dropped
// case-insensitively, keeping the first spelling.
func Keywords(p profile.UserProfile) []string {
	tools := p.Tools()
	if len(tools) > maxToolKeywords {
		tools = tools[:maxToolKeywords]
	}

	out := make([]string, 0, MaxKeywords)
	seen := make(map[string]struct{}, MaxKeywords)
	for _, group := range [][]string{p.SkillNames, tools, commonKeywords} {
		for _, k := range group {
			if len(out) == MaxKeywords {
				return out
			}
			k = strings.TrimSpace(k)
			key := skill.NormalizeName(k)
			if key == "" {
				continue
			}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, k)
		}
	}
	return out
}
