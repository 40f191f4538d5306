package narrative

import (
	"fmt"
	"strings"

	"career-guide/internal/domain/matching"
	"career-guide/internal/domain/profile"
)

const (
	chatDisclaimer    = "This is a suggestion, not a guaranteed outcome."
	roadmapDisclaimer = "This roadmap is a suggestion, not a guaranteed outcome."
)

const proseRules = `FORMATTING RULES:
- Write in natural, conversational language
- Use markdown headers, **bold** and - bullets where helpful
- DO NOT output JSON, code blocks, XML, or any structured data format
- Keep explanations concise, encouraging and actionable`

// RoadmapRequest describes the roadmap a user asked for.
type RoadmapRequest struct {
	TargetRole  string
	Timeframe   string
	WeeklyHours int
}

func orNone(items []string, none string) string {
	if len(items) == 0 {
		return none
	}
	return strings.Join(items, ", ")
}

func orText(s, none string) string {
	if strings.TrimSpace(s) == "" {
		return none
	}
	return s
}

func clip(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

func writeProfile(b *strings.Builder, p profile.UserProfile) {
	b.WriteString("USER PROFILE:\n")
	fmt.Fprintf(b, "- Name: %s\n", orText(p.FullName, "Not provided"))
	fmt.Fprintf(b, "- Experience Level: %s\n", orText(p.ExperienceLevel, "Not provided"))
	fmt.Fprintf(b, "- Career Interests: %s\n", orNone(p.CareerInterests, "Not provided"))
	fmt.Fprintf(b, "- Experience Description: %s\n", clip(orText(p.ExperienceDescription, "Not provided"), 500))
	fmt.Fprintf(b, "- Bio: %s\n\n", clip(orText(p.Bio, "Not provided"), 300))
	fmt.Fprintf(b, "SKILLS: %s\n", orNone(p.SkillNames, "None listed"))
	fmt.Fprintf(b, "TOOLS & TECHNOLOGIES: %s\n", orNone(p.Tools(), "None listed"))

	experiences, projects, summary := 0, 0, ""
	if p.CV != nil {
		experiences, projects, summary = len(p.CV.Experiences), len(p.CV.Projects), p.CV.PersonalSummary
	}
	fmt.Fprintf(b, "WORK EXPERIENCE: %d position(s) listed\n", experiences)
	fmt.Fprintf(b, "PROJECTS: %d project(s) listed\n", projects)
	fmt.Fprintf(b, "PERSONAL SUMMARY: %s\n", clip(orText(summary, "Not provided"), 300))
}

func matchPrompt(p profile.UserProfile, r matching.MatchResult) string {
	var b strings.Builder
	b.WriteString("You are an expert career advisor. Explain to the user how well they fit the job below and what to do next.\n\n")
	writeProfile(&b, p)

	c := r.Candidate
	b.WriteString("\nJOB POSTING:\n")
	fmt.Fprintf(&b, "- Title: %s\n", c.Title)
	fmt.Fprintf(&b, "- Company: %s\n", orText(c.Organization, "Not provided"))
	fmt.Fprintf(&b, "- Experience Level: %s\n", orText(c.ExperienceLevel, "Not specified"))
	fmt.Fprintf(&b, "- Requirements: %s\n", clip(orText(c.Requirements, "Not specified"), 500))

	b.WriteString("\nMATCH ANALYSIS (already computed, do not recalculate):\n")
	fmt.Fprintf(&b, "- Match score: %d/100 (%s)\n", r.Score, r.Level)
	fmt.Fprintf(&b, "- Matching skills: %s\n", orNone(r.MatchingSkills, "None"))
	fmt.Fprintf(&b, "- Missing skills: %s\n", orNone(r.MissingSkills, "None"))
	fmt.Fprintf(&b, "- Experience: %s\n", r.ExperienceMatch)
	if len(r.RecommendedCourses) > 0 {
		titles := make([]string, 0, len(r.RecommendedCourses))
		for _, cr := range r.RecommendedCourses {
			titles = append(titles, cr.Course.Title)
		}
		fmt.Fprintf(&b, "- Suggested courses: %s\n", strings.Join(titles, "; "))
	}

	b.WriteString("\nTASK:\nWrite a short recommendation (at most 120 words) covering the user's strengths for this role, the most important gaps to close and one concrete next step.\n\n")
	b.WriteString(proseRules)
	b.WriteString("\n\n")
	b.WriteString(LanguageEnglish.instruction())
	return b.String()
}

func opportunityPrompt(p profile.UserProfile, ranked []matching.MatchResult, lang Language) string {
	var b strings.Builder
	b.WriteString("You are a career advisor specializing in youth employment and development, particularly focused on supporting disadvantaged youth groups (women, rural youth, low-income groups).\n")
	b.WriteString("Your mission is aligned with SDG 8 (Decent Work and Economic Growth).\n\n")
	b.WriteString(proseRules)
	b.WriteString(`

OUTPUT STRUCTURE:
Start with a header: "Top Local Opportunities Tailored for You"
For each opportunity (in the given order):
### [Rank]. [Opportunity Title]
**Why it matches you** with skills matched, track relevance and experience fit
**Action Steps** with skills to improve and how to apply
**Impact** on SDG 8 goals when applicable
End with a "Final Advice" section.

`)
	b.WriteString(lang.instruction())
	b.WriteString("\n\n")
	writeProfile(&b, p)

	b.WriteString("\nAVAILABLE LOCAL OPPORTUNITIES (ranked by skill match):\n")
	for i, r := range ranked {
		c := r.Candidate
		fmt.Fprintf(&b, "\n%d. %s\n", i+1, c.Title)
		fmt.Fprintf(&b, "   Organization: %s\n", orText(c.Organization, "Not provided"))
		fmt.Fprintf(&b, "   Location: %s\n", orText(c.Location, "Not provided"))
		fmt.Fprintf(&b, "   Category: %s\n", orText(c.Category, "Not provided"))
		fmt.Fprintf(&b, "   Target Track: %s\n", orText(c.TargetTrack, "Not specified"))
		fmt.Fprintf(&b, "   Priority Group: %s\n", orText(c.PriorityGroup, "All Youth"))
		fmt.Fprintf(&b, "   Match score: %d/100\n", r.Score)
		fmt.Fprintf(&b, "   Skills matched: %s\n", orNone(r.MatchingSkills, "None"))
		fmt.Fprintf(&b, "   Skills missing: %s\n", orNone(r.MissingSkills, "None"))
		fmt.Fprintf(&b, "   Description: %s\n", clip(c.Description, 300))
		fmt.Fprintf(&b, "   Link: %s\n", orText(c.Link, "Not provided"))
	}
	b.WriteString("\nPlease analyze these opportunities and provide personalized recommendations following the structure outlined above.")
	return b.String()
}

func chatPrompt(p profile.UserProfile, message string, lang Language) string {
	var b strings.Builder
	b.WriteString(`You are CareerBot, an SDG 8-aligned youth career development assistant.
You MUST:
- Use the user's profile data to give personalized advice
- Give suggestions for roles, skills to learn next, internships, and job readiness
- Provide practical steps and relevant explanations
- ALWAYS end with: "` + chatDisclaimer + `"
You MUST NOT:
- Answer political, religious, harmful, illegal, or irrelevant questions
- Provide misinformation or medical/legal advice
- Make promises about job guarantees or specific outcomes

`)
	b.WriteString(proseRules)
	b.WriteString("\n\n")
	b.WriteString(lang.instruction())
	b.WriteString("\n\n")
	writeProfile(&b, p)
	fmt.Fprintf(&b, "\nUSER QUESTION: %s\n\n", message)
	b.WriteString("Please provide a helpful, personalized response based on the user's profile above.")
	return b.String()
}

func roadmapPrompt(p profile.UserProfile, req RoadmapRequest) string {
	var b strings.Builder
	b.WriteString("You are a professional career mentor creating a personalized learning and career roadmap.\n\n")
	writeProfile(&b, p)
	fmt.Fprintf(&b, "\nTARGET ROLE: %s\n", req.TargetRole)
	fmt.Fprintf(&b, "TIMEFRAME: %s", req.Timeframe)
	if req.WeeklyHours > 0 {
		fmt.Fprintf(&b, " (committing %d hours per week)", req.WeeklyHours)
	}
	b.WriteString(`

Produce TWO sections.
SECTION 1: a visual roadmap (at most 20 lines) using phases with timeframes, arrows (→), boxes (▢) and checkpoints (✓).
Then a line containing only "` + roadmapSeparator + `".
SECTION 2: a concise explanation (at most 300 words) with an overview, one sentence per phase, 3-4 key milestones and 2-3 immediate next steps.

RULES:
- NO JSON anywhere and NO code block markdown
- Professional, mentor-style writing in natural, readable English
- MUST end with: "` + roadmapDisclaimer + `"`)
	return b.String()
}
