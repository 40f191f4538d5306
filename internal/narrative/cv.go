package narrative

import (
	"context"
	"fmt"
	"strings"

	"career-guide/internal/domain/cv"
	"career-guide/internal/domain/profile"
)

const maxGeneratedKeywords = 20

// GenerateSummary writes a 3-4 sentence professional summary for the CV.
func (g *Generator) GenerateSummary(ctx context.Context, p profile.UserProfile) (string, error) {
	return g.narrate(ctx, "cv_summary", summaryPrompt(p), Sanitize, func() string {
		return fallbackSummary(p)
	})
}

// ImproveBullets rewrites one work experience as achievement bullets.
// targetRole may be empty.
func (g *Generator) ImproveBullets(ctx context.Context, exp profile.ExperienceEntry, targetRole string) ([]string, error) {
	text, err := g.narrate(ctx, "cv_bullets", bulletPrompt(exp, targetRole), Sanitize, func() string {
		return ""
	})
	if err != nil {
		return nil, err
	}
	if text == "" {
		return fallbackBullets(exp), nil
	}
	return parseBullets(text), nil
}

// GenerateKeywords lists ATS keywords for the CV, falling back to the
// profile-derived list.
func (g *Generator) GenerateKeywords(ctx context.Context, p profile.UserProfile, targetRole string) ([]string, error) {
	text, err := g.narrate(ctx, "cv_keywords", keywordPrompt(p, targetRole), Sanitize, func() string {
		return ""
	})
	if err != nil {
		return nil, err
	}

	var out []string
	for _, k := range strings.Split(text, ",") {
		k = strings.Trim(strings.TrimSpace(k), "-*•. ")
		if k != "" {
			out = append(out, k)
		}
	}
	if len(out) == 0 {
		return cv.Keywords(p), nil
	}
	return firstN(out, maxGeneratedKeywords), nil
}

func summaryPrompt(p profile.UserProfile) string {
	var b strings.Builder
	b.WriteString("You are a professional CV writer. Generate a compelling 3-4 sentence professional summary for a resume/CV.\n\n")
	writeProfile(&b, p)
	if p.CV != nil {
		if len(p.CV.Experiences) > 0 {
			b.WriteString("\nROLES:\n")
			for _, e := range p.CV.Experiences {
				fmt.Fprintf(&b, "- %s at %s\n", orText(e.Title, "Position"), orText(e.Company, "Company"))
			}
		}
		if len(p.CV.Education) > 0 {
			b.WriteString("\nEDUCATION:\n")
			for _, e := range p.CV.Education {
				fmt.Fprintf(&b, "- %s, %s\n", orText(e.Degree, "Degree"), orText(e.Institution, "Institution"))
			}
		}
	}
	b.WriteString(`
INSTRUCTIONS:
1. Highlight key strengths and experiences
2. Mention career goals and interests
3. Use active voice and action verbs, specific and quantifiable where possible
4. Make it ATS-friendly
5. Avoid clichés like "hard-working" or "team player"

Return ONLY the summary text, no additional formatting or labels.`)
	return b.String()
}

func bulletPrompt(exp profile.ExperienceEntry, targetRole string) string {
	var b strings.Builder
	b.WriteString("You are a professional CV writer. Improve these work experience bullet points.\n\n")
	fmt.Fprintf(&b, "POSITION: %s\n", orText(exp.Title, "Position"))
	fmt.Fprintf(&b, "COMPANY: %s\n", orText(exp.Company, "Company"))
	fmt.Fprintf(&b, "CURRENT DESCRIPTION: %s\n", clip(orText(deref(exp.Description), "Not provided"), 800))
	if strings.TrimSpace(targetRole) != "" {
		fmt.Fprintf(&b, "TARGET ROLE: %s\n", targetRole)
	}
	b.WriteString(`
INSTRUCTIONS:
1. Create 4-5 strong, impactful bullet points using the STAR method
2. Start each bullet with a strong action verb
3. Include quantifiable achievements where possible
4. Keep each bullet to 1-2 lines and focus on accomplishments

Return ONLY the bullet points, one per line, each starting with "- ".`)
	return b.String()
}

func keywordPrompt(p profile.UserProfile, targetRole string) string {
	var b strings.Builder
	b.WriteString("You are an ATS (Applicant Tracking System) expert. Generate relevant keywords for this CV.\n\n")
	fmt.Fprintf(&b, "Skills: %s\n", orNone(firstN(p.SkillNames, 10), "None"))
	if p.CV != nil && len(p.CV.Experiences) > 0 {
		titles := make([]string, 0, 3)
		for _, e := range p.CV.Experiences {
			if len(titles) == 3 {
				break
			}
			titles = append(titles, e.Title)
		}
		fmt.Fprintf(&b, "Experiences: %s\n", strings.Join(titles, ", "))
	}
	if strings.TrimSpace(targetRole) != "" {
		fmt.Fprintf(&b, "Target Role: %s\n", targetRole)
	}
	b.WriteString("\nGenerate 15 relevant ATS keywords (technical skills, soft skills, industry terms).\nReturn ONLY a comma-separated list, no additional text.")
	return b.String()
}

// parseBullets keeps the lines that start with a list marker. Without any the
// whole text is one bullet.
func parseBullets(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		t := strings.TrimSpace(line)
		if t == "" {
			continue
		}
		if rest, ok := cutMarker(t); ok && rest != "" {
			out = append(out, rest)
		}
	}
	if len(out) == 0 {
		return []string{strings.TrimSpace(text)}
	}
	return out
}

func cutMarker(line string) (string, bool) {
	for _, m := range []string{"- ", "* ", "• "} {
		if rest, ok := strings.CutPrefix(line, m); ok {
			return strings.TrimSpace(rest), true
		}
	}
	return "", false
}

func fallbackSummary(p profile.UserProfile) string {
	var b strings.Builder
	level := orText(p.ExperienceLevel, "motivated")
	if len(p.SkillNames) > 0 {
		fmt.Fprintf(&b, "A %s professional skilled in %s.", level, strings.Join(firstN(p.SkillNames, 3), ", "))
	} else {
		fmt.Fprintf(&b, "A %s professional building a practical skill set.", level)
	}
	if p.CV != nil && len(p.CV.Experiences) > 0 {
		e := p.CV.Experiences[0]
		fmt.Fprintf(&b, " Experience includes work as %s", orText(e.Title, "a team member"))
		if e.Company != "" {
			fmt.Fprintf(&b, " at %s", e.Company)
		}
		b.WriteString(".")
	}
	if len(p.CareerInterests) > 0 {
		fmt.Fprintf(&b, " Looking to grow in %s.", strings.Join(firstN(p.CareerInterests, 2), " and "))
	}
	return b.String()
}

// fallbackBullets turns the stored description into bullets, one per line or
// sentence, or a single placeholder built from the title.
func fallbackBullets(exp profile.ExperienceEntry) []string {
	desc := strings.TrimSpace(deref(exp.Description))
	if desc == "" {
		return []string{fmt.Sprintf("Contributed as %s at %s; add the results you achieved here.",
			orText(exp.Title, "a team member"), orText(exp.Company, "the company"))}
	}

	var out []string
	for _, line := range strings.Split(desc, "\n") {
		for _, s := range strings.Split(line, ". ") {
			s = strings.Trim(strings.TrimSpace(s), "-*•")
			s = strings.TrimSpace(s)
			if s == "" {
				continue
			}
			if !strings.HasSuffix(s, ".") {
				s += "."
			}
			out = append(out, s)
		}
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
