package matching

type Kind string

const (
	KindJob         Kind = "job"
	KindOpportunity Kind = "opportunity"
)

// RequiredSkills carries a candidate's required skills in whatever shape the
// store produced. Raw is the persisted column (JSON ids, JSON names or
// comma-separated text); IDs and Names are for callers that already hold
// typed values. All three are merged by ToSkillNameSet.
type RequiredSkills struct {
	Raw   string
	IDs   []int64
	Names []string
}

// Candidate is a job posting or a local opportunity.
type Candidate struct {
	ID              int64
	Kind            Kind
	Title           string
	Organization    string
	Description     string
	Requirements    string
	Location        string
	Category        string
	ExperienceLevel string
	RequiredSkills  RequiredSkills
	Active          bool

	SalaryRange   string
	Link          string
	TargetTrack   string
	PriorityGroup string
}
