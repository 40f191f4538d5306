// Package guardrail keeps career chat on topic. Classification is pure and
// matches whole words only, so "skills" never trips the "kill" keyword.
package guardrail

import (
	"regexp"
	"sort"
	"strings"
)

const safeFallback = "CareerBot can only discuss careers, skills, jobs, and learning topics. Please ask me about career development, skill recommendations, job search tips, or learning paths."

const (
	ReasonEmpty   = "empty or invalid message"
	ReasonHarmful = "message contains harmful content"
)

type Verdict struct {
	Allowed   bool
	Reason    string
	Sanitized string
}

var blockedKeywords = []string{
	// politics
	"politics", "political", "election", "vote", "candidate", "party", "government policy",
	"democrat", "republican", "liberal", "conservative", "left wing", "right wing",
	// religion
	"religion", "religious", "god", "prayer", "worship", "church", "mosque", "temple",
	"hindu", "muslim", "christian", "buddhist", "jewish", "atheist",
	// adult
	"sex", "porn", "xxx", "adult content", "nsfw",
	// self harm
	"suicide", "kill myself", "self harm", "hurt myself", "end my life",
	"how to die", "ways to die",
	// violence
	"kill", "murder", "violence", "attack", "bomb", "weapon", "gun", "shoot",
	"terrorism", "terrorist",
	// illegal
	"hack", "steal", "fraud", "scam", "illegal", "drugs", "cocaine", "marijuana",
	"how to cheat", "how to lie",
	// off topic
	"movie", "celebrity", "gossip", "sports team", "game score", "entertainment news",
	"tv show", "netflix", "youtube video",
}

var harmfulPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)how\s+to\s+(kill|hurt|harm|die)`),
	regexp.MustCompile(`(?i)i\s+want\s+to\s+(die|kill|hurt)`),
	regexp.MustCompile(`(?i)help\s+me\s+(kill|hurt|die)`),
}

type keywordRule struct {
	keyword string
	re      *regexp.Regexp
}

var keywordRules = compileKeywords(blockedKeywords)

// compileKeywords orders multi-word phrases first so the reported reason
// names the most specific match.
func compileKeywords(words []string) []keywordRule {
	sorted := append([]string(nil), words...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return strings.Count(sorted[i], " ") > strings.Count(sorted[j], " ")
	})
	rules := make([]keywordRule, 0, len(sorted))
	for _, w := range sorted {
		parts := strings.Fields(w)
		for i, p := range parts {
			parts[i] = regexp.QuoteMeta(p)
		}
		rules = append(rules, keywordRule{
			keyword: w,
			re:      regexp.MustCompile(`(?i)\b` + strings.Join(parts, `\s+`) + `\b`),
		})
	}
	return rules
}

// Classify decides whether a chat message may be forwarded to the model.
// Allowed messages come back with whitespace collapsed.
func Classify(text string) Verdict {
	if strings.TrimSpace(text) == "" {
		return Verdict{Reason: ReasonEmpty}
	}

	for _, r := range keywordRules {
		if r.re.MatchString(text) {
			return Verdict{Reason: "message contains inappropriate content related to: " + r.keyword}
		}
	}
	for _, re := range harmfulPatterns {
		if re.MatchString(text) {
			return Verdict{Reason: ReasonHarmful}
		}
	}

	return Verdict{Allowed: true, Sanitized: strings.Join(strings.Fields(text), " ")}
}

// SafeFallbackResponse is the reply sent instead of a blocked message.
func SafeFallbackResponse() string {
	return safeFallback
}
