package matching

import (
	"strconv"
	"strings"

	"career-guide/internal/domain/skill"

	"github.com/tidwall/gjson"
)

// ToSkillNameSet converts every observed representation of a required-skill
// field into display names, deduplicated case-insensitively in first-seen
// order. Entries that cannot be resolved are returned in dropped instead of
// failing the conversion.
func ToSkillNameSet(raw RequiredSkills, catalog *skill.Catalog) (names []string, dropped []string) {
	names = make([]string, 0)
	seen := make(map[string]struct{})

	add := func(name string) {
		name = strings.TrimSpace(name)
		if name == "" {
			return
		}
		key := skill.NormalizeName(name)
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		names = append(names, name)
	}
	addID := func(id int64) {
		if name, ok := catalog.Name(id); ok {
			add(name)
			return
		}
		dropped = append(dropped, "id:"+strconv.FormatInt(id, 10))
	}
	addToken := func(tok string) {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			return
		}
		if id, err := strconv.ParseInt(tok, 10, 64); err == nil {
			addID(id)
			return
		}
		add(tok)
	}

	for _, id := range raw.IDs {
		addID(id)
	}
	for _, n := range raw.Names {
		add(n)
	}

	text := strings.TrimSpace(raw.Raw)
	if text == "" || text == "null" {
		return names, dropped
	}

	if !gjson.Valid(text) {
		for _, tok := range strings.Split(text, ",") {
			addToken(tok)
		}
		return names, dropped
	}

	res := gjson.Parse(text)
	switch {
	case res.IsArray():
		res.ForEach(func(_, v gjson.Result) bool {
			switch {
			case v.Type == gjson.Number:
				if id, ok := integral(v); ok {
					addID(id)
				} else {
					dropped = append(dropped, v.Raw)
				}
			case v.Type == gjson.String:
				addToken(v.String())
			case v.IsObject():
				if n := v.Get("name"); n.Exists() && strings.TrimSpace(n.String()) != "" {
					add(n.String())
				} else if id, ok := integral(v.Get("id")); ok {
					addID(id)
				} else {
					dropped = append(dropped, v.Raw)
				}
			default:
				if v.Type != gjson.Null {
					dropped = append(dropped, v.Raw)
				}
			}
			return true
		})
	case res.Type == gjson.String:
		for _, tok := range strings.Split(res.String(), ",") {
			addToken(tok)
		}
	case res.Type == gjson.Number:
		if id, ok := integral(res); ok {
			addID(id)
		} else {
			dropped = append(dropped, res.Raw)
		}
	default:
		dropped = append(dropped, text)
	}

	return names, dropped
}

func integral(v gjson.Result) (int64, bool) {
	if v.Type != gjson.Number {
		return 0, false
	}
	id := v.Int()
	if float64(id) != v.Num {
		return 0, false
	}
	return id, true
}
