package models

// SubjectCategory classifies a subject against the graduation requirements.
type SubjectCategory string

const (
	CategoryMandatory SubjectCategory = "MANDATORY"
	CategoryElective  SubjectCategory = "ELECTIVE"
)

// Toggle returns the opposite category.
func (c SubjectCategory) Toggle() SubjectCategory {
	if c == CategoryMandatory {
		return CategoryElective
	}
	return CategoryMandatory
}

// Subject represents a course in the curriculum catalog. Prerequisites hold
// subject IDs rather than references; a since-deleted ID degrades to "unmet"
// during placement checks.
type Subject struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Credits       int             `json:"credits"`
	Category      SubjectCategory `json:"category"`
	OfferedTerm   int             `json:"offered_term"`
	Prerequisites []string        `json:"prerequisites"`
	IsRetake      bool            `json:"is_retake,omitempty"`
}

// EffectiveCredits returns the credit weight counted toward totals. Retaken
// subjects contribute nothing.
func (s Subject) EffectiveCredits() int {
	if s.IsRetake {
		return 0
	}
	return s.Credits
}
