package narrative

import (
	"fmt"
	"strings"

	"career-guide/internal/domain/matching"
	"career-guide/internal/domain/profile"
)

const NoOpportunitiesMessage = "Currently, there are no local opportunities available in our database. Please check back later or contact support for more information."

const chatUnavailable = "I'm having trouble reaching the career assistant right now, so here is a quick pointer based on your profile."

// FallbackMatchNarrative is the deterministic recommendation text for one
// match. It is never empty.
func FallbackMatchNarrative(r matching.MatchResult) string {
	var b strings.Builder
	b.WriteString(matching.SummaryLine(r))
	if len(r.MatchingSkills) > 0 {
		fmt.Fprintf(&b, " Your matching skills: %s.", strings.Join(r.MatchingSkills, ", "))
	}
	if len(r.RecommendedCourses) > 0 {
		c := r.RecommendedCourses[0].Course
		fmt.Fprintf(&b, " A good place to start is %q", c.Title)
		if c.Platform != "" {
			fmt.Fprintf(&b, " on %s", c.Platform)
		}
		b.WriteString(".")
	}
	return b.String()
}

// FallbackOpportunityNarrative lists the ranked opportunities with their
// computed skill overlap.
func FallbackOpportunityNarrative(p profile.UserProfile, ranked []matching.MatchResult) string {
	if len(ranked) == 0 {
		return NoOpportunitiesMessage
	}

	var b strings.Builder
	b.WriteString("## Top Local Opportunities Tailored for You\n")
	for i, r := range ranked {
		c := r.Candidate
		fmt.Fprintf(&b, "\n### %d. %s\n", i+1, c.Title)
		if c.Organization != "" {
			fmt.Fprintf(&b, "%s", c.Organization)
			if c.Location != "" {
				fmt.Fprintf(&b, ", %s", c.Location)
			}
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "- Match score: %d/100 (%s)\n", r.Score, r.Level)
		fmt.Fprintf(&b, "- Skills matched: %s\n", orNone(r.MatchingSkills, "none yet"))
		if len(r.MissingSkills) > 0 {
			fmt.Fprintf(&b, "- Improve before applying: %s\n", strings.Join(r.MissingSkills, ", "))
		}
		if c.Link != "" {
			fmt.Fprintf(&b, "- Apply: %s\n", c.Link)
		}
	}

	b.WriteString("\n### Final Advice\n")
	if len(p.SkillNames) > 0 {
		fmt.Fprintf(&b, "Build on your strengths in %s and close the listed gaps one at a time.", strings.Join(firstN(p.SkillNames, 3), ", "))
	} else {
		b.WriteString("Add your skills to your profile to get sharper recommendations.")
	}
	return b.String()
}

func fallbackReply(p profile.UserProfile) string {
	var b strings.Builder
	b.WriteString(chatUnavailable)
	b.WriteString("\n\n")
	if len(p.SkillNames) > 0 {
		fmt.Fprintf(&b, "You already list %s. Look for roles and projects that use these skills and pick one adjacent skill to learn next.", strings.Join(firstN(p.SkillNames, 3), ", "))
	} else {
		b.WriteString("Start by adding the skills you already have to your profile so recommendations can be personalized.")
	}
	b.WriteString("\n\n")
	b.WriteString(chatDisclaimer)
	return b.String()
}

// Roadmap is a generated plan split into its visual part and the
// explanation that follows it.
type Roadmap struct {
	Visual      string
	Description string
}

const roadmapSeparator = "============================================================"

func fallbackRoadmap(p profile.UserProfile, req RoadmapRequest) Roadmap {
	role := orText(req.TargetRole, "your target role")
	timeframe := orText(req.Timeframe, "the coming months")

	var v strings.Builder
	fmt.Fprintf(&v, "ROADMAP: %s (%s)\n\n", role, timeframe)
	v.WriteString("[PHASE 1: FOUNDATIONS]\n")
	fmt.Fprintf(&v, "   ▢ Core concepts of %s\n", role)
	if len(p.SkillNames) > 0 {
		fmt.Fprintf(&v, "   ✓ Refresh %s\n", strings.Join(firstN(p.SkillNames, 2), ", "))
	}
	v.WriteString("\n[PHASE 2: CORE SKILLS]\n   ▢ Key tools of the role\n   ✓ Guided project\n")
	v.WriteString("\n[PHASE 3: PORTFOLIO]\n   ▢ Independent project\n   ✓ Publish your work\n")
	v.WriteString("\n[PHASE 4: APPLICATION]\n   ▢ CV update\n   ▢ Applications\n   ▢ Interviews")

	var d strings.Builder
	fmt.Fprintf(&d, "This plan moves from foundations to applications for %s within %s.", role, timeframe)
	if req.WeeklyHours > 0 {
		fmt.Fprintf(&d, " With %d hours per week, give each phase roughly a quarter of the time.", req.WeeklyHours)
	}
	d.WriteString(" Start this week by listing the core skills of the role and comparing them with your profile.\n\n")
	d.WriteString(roadmapDisclaimer)

	return Roadmap{Visual: v.String(), Description: d.String()}
}

// splitRoadmap separates the visual section from the explanation. The
// explanation starts after the last separator line or at a "SECTION 2"
// heading; without either the whole text is the explanation.
func splitRoadmap(text string) Roadmap {
	lines := strings.Split(text, "\n")
	split := -1
	for i, line := range lines {
		t := strings.TrimSpace(line)
		if strings.Contains(strings.ToUpper(t), "SECTION 2") {
			split = i
			break
		}
		if i > 0 && i < len(lines)-1 && isSeparatorLine(t) {
			split = i
		}
	}
	if split < 0 {
		return Roadmap{Description: strings.TrimSpace(text)}
	}

	visual := strings.TrimSpace(strings.Join(lines[:split], "\n"))
	rest := lines[split:]
	if isSeparatorLine(strings.TrimSpace(rest[0])) {
		rest = rest[1:]
	}
	return Roadmap{
		Visual:      visual,
		Description: strings.TrimSpace(strings.Join(rest, "\n")),
	}
}

func isSeparatorLine(s string) bool {
	if len(s) < 20 {
		return false
	}
	return strings.Trim(s, "=") == "" || strings.Trim(s, "-") == ""
}

func firstN(in []string, n int) []string {
	if len(in) < n {
		return in
	}
	return in[:n]
}
