package skill

import "strings"

// Catalog is a read-only snapshot of the skills referenced by one request.
type Catalog struct {
	byID   map[int64]Skill
	byName map[string]Skill
}

func NewCatalog(skills []Skill) *Catalog {
	c := &Catalog{
		byID:   make(map[int64]Skill, len(skills)),
		byName: make(map[string]Skill, len(skills)),
	}
	for _, s := range skills {
		name := strings.TrimSpace(s.Name)
		if name == "" {
			continue
		}
		s.Name = name
		c.byID[s.ID] = s
		key := NormalizeName(name)
		if _, ok := c.byName[key]; !ok {
			c.byName[key] = s
		}
	}
	return c
}

func NewCatalogFromMap(m map[int64]Skill) *Catalog {
	skills := make([]Skill, 0, len(m))
	for id, s := range m {
		s.ID = id
		skills = append(skills, s)
	}
	return NewCatalog(skills)
}

func (c *Catalog) Name(id int64) (string, bool) {
	if c == nil {
		return "", false
	}
	s, ok := c.byID[id]
	if !ok {
		return "", false
	}
	return s.Name, true
}

func (c *Catalog) Lookup(name string) (Skill, bool) {
	if c == nil {
		return Skill{}, false
	}
	s, ok := c.byName[NormalizeName(name)]
	return s, ok
}

// Category returns the category of a named skill, or "" when the name is not
// part of the catalog.
func (c *Catalog) Category(name string) string {
	s, ok := c.Lookup(name)
	if !ok {
		return ""
	}
	return s.Category
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.byID)
}

// NormalizeName is the comparison key for skill names: trimmed, lower-cased,
// inner whitespace collapsed.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}
