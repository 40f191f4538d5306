package profile

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"career-guide/internal/domain/skill"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"golang.org/x/sync/errgroup"
)

type Aggregator struct {
	store  Store
	skills skill.Store
	logger *slog.Logger
}

func NewAggregator(store Store, skills skill.Store, logger *slog.Logger) *Aggregator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Aggregator{store: store, skills: skills, logger: logger}
}

// Build assembles the profile of userID. When catalog is nil the user's skill
// ids are resolved through the skill store; otherwise the catalog is used.
func (a *Aggregator) Build(ctx context.Context, userID uuid.UUID, catalog *skill.Catalog) (UserProfile, error) {
	var (
		usr      User
		skillIDs []int64
		cvRec    *CVRecord
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		usr, err = a.store.GetUser(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		skillIDs, err = a.store.GetUserSkillIDs(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		cvRec, err = a.store.GetCV(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return UserProfile{}, err
	}

	if catalog == nil && len(skillIDs) > 0 && a.skills != nil {
		m, err := a.skills.ListSkills(ctx, skillIDs)
		if err != nil {
			return UserProfile{}, err
		}
		catalog = skill.NewCatalogFromMap(m)
	}

	p := UserProfile{
		UserID:                userID,
		FullName:              strings.TrimSpace(usr.FullName),
		Bio:                   strings.TrimSpace(usr.Bio),
		ExperienceLevel:       strings.TrimSpace(usr.ExperienceLevel),
		ExperienceDescription: strings.TrimSpace(usr.ExperienceDescription),
		CareerInterests:       a.parseCareerInterests(userID, usr.CareerInterests),
	}
	p.SkillIDs, p.SkillNames = a.resolveSkills(userID, skillIDs, catalog)
	if cvRec != nil {
		p.CV = a.parseCV(userID, *cvRec)
	}
	return p, nil
}

func (a *Aggregator) resolveSkills(userID uuid.UUID, ids []int64, catalog *skill.Catalog) ([]int64, []string) {
	outIDs := make([]int64, 0, len(ids))
	names := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		name, ok := catalog.Name(id)
		if !ok {
			a.logger.Warn("data anomaly: unresolvable user skill id",
				slog.String("kind", "data_anomaly"),
				slog.String("user_id", userID.String()),
				slog.Int64("skill_id", id),
			)
			continue
		}
		key := skill.NormalizeName(name)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		outIDs = append(outIDs, id)
		names = append(names, name)
	}
	return outIDs, names
}

// parseCareerInterests accepts a JSON array of strings (or a single JSON
// string). Anything else yields no interests.
func (a *Aggregator) parseCareerInterests(userID uuid.UUID, raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{}
	}
	if !gjson.Valid(raw) {
		a.anomaly(userID, "career_interests", "invalid json")
		return []string{}
	}

	res := gjson.Parse(raw)
	out := make([]string, 0)
	switch {
	case res.IsArray():
		res.ForEach(func(_, v gjson.Result) bool {
			if v.Type != gjson.String {
				return true
			}
			if s := strings.TrimSpace(v.String()); s != "" {
				out = append(out, s)
			}
			return true
		})
	case res.Type == gjson.String:
		if s := strings.TrimSpace(res.String()); s != "" {
			out = append(out, s)
		}
	default:
		a.anomaly(userID, "career_interests", "unexpected json type")
	}
	return out
}

func (a *Aggregator) parseCV(userID uuid.UUID, rec CVRecord) *CV {
	cv := &CV{
		PersonalSummary: strings.TrimSpace(rec.PersonalSummary),
		Experiences:     []ExperienceEntry{},
		Education:       []EducationEntry{},
		Tools:           []string{},
		Projects:        []ProjectEntry{},
	}
	a.decodeList(userID, "cv.experiences", rec.Experiences, &cv.Experiences)
	a.decodeList(userID, "cv.education", rec.Education, &cv.Education)
	a.decodeList(userID, "cv.tools", rec.Tools, &cv.Tools)
	a.decodeList(userID, "cv.projects", rec.Projects, &cv.Projects)
	return cv
}

func decodeInto[T any](raw string, dst *[]T) error {
	var tmp []T
	if err := json.Unmarshal([]byte(raw), &tmp); err != nil {
		return err
	}
	if tmp != nil {
		*dst = tmp
	}
	return nil
}

func (a *Aggregator) decodeList(userID uuid.UUID, field, raw string, dst any) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "null" {
		return
	}
	var err error
	switch d := dst.(type) {
	case *[]ExperienceEntry:
		err = decodeInto(raw, d)
	case *[]EducationEntry:
		err = decodeInto(raw, d)
	case *[]string:
		err = decodeInto(raw, d)
	case *[]ProjectEntry:
		err = decodeInto(raw, d)
	}
	if err != nil {
		a.anomaly(userID, field, err.Error())
	}
}

func (a *Aggregator) anomaly(userID uuid.UUID, field, reason string) {
	a.logger.Warn("data anomaly: malformed stored field",
		slog.String("kind", "data_anomaly"),
		slog.String("user_id", userID.String()),
		slog.String("field", field),
		slog.String("reason", reason),
	)
}
