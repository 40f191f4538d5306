package narrative

import (
	"regexp"
	"strings"

	"github.com/tidwall/gjson"
)

var (
	jsonFenceRe   = regexp.MustCompile("(?is)```json\\s*\\{.*?\\}\\s*```")
	objectFenceRe = regexp.MustCompile("(?is)```\\s*\\{.*?\\}\\s*```")
	codeFenceRe   = regexp.MustCompile("(?is)```[a-z]*\\n.*?```")
	anyFenceRe    = regexp.MustCompile("(?s)```[a-zA-Z]*\\n?(.*?)```")
	inlineCodeRe  = regexp.MustCompile("`([^`]+)`")
	blankLinesRe  = regexp.MustCompile(`\n{3,}`)
)

// Sanitize turns a model response into narrative prose: fenced blocks are
// removed, inline code marks are dropped and runs of blank lines collapse.
// ok is false when nothing usable remains or the text is bare JSON.
func Sanitize(raw string) (string, bool) {
	s := strings.ReplaceAll(raw, "\r\n", "\n")
	s = jsonFenceRe.ReplaceAllString(s, "")
	s = objectFenceRe.ReplaceAllString(s, "")
	s = codeFenceRe.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "```", "")
	s = inlineCodeRe.ReplaceAllString(s, "$1")
	return finish(s)
}

// SanitizeKeepingBlocks is Sanitize for layouts drawn inside code fences
// (roadmaps): fence markers go, their content stays.
func SanitizeKeepingBlocks(raw string) (string, bool) {
	s := strings.ReplaceAll(raw, "\r\n", "\n")
	s = jsonFenceRe.ReplaceAllString(s, "")
	s = objectFenceRe.ReplaceAllString(s, "")
	s = anyFenceRe.ReplaceAllString(s, "$1")
	s = strings.ReplaceAll(s, "```", "")
	return finish(s)
}

func finish(s string) (string, bool) {
	s = blankLinesRe.ReplaceAllString(s, "\n\n")
	s = strings.TrimSpace(s)
	if s == "" || looksLikeJSON(s) {
		return "", false
	}
	return s, true
}

func looksLikeJSON(s string) bool {
	if !strings.HasPrefix(s, "{") && !strings.HasPrefix(s, "[") {
		return false
	}
	return gjson.Valid(s)
}
