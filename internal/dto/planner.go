package dto

// MoveSubjectRequest asks the planner to place a subject into a semester. A
// nil semester ID moves the subject back to the unassigned pool.
type MoveSubjectRequest struct {
	SemesterID *string `json:"semester_id"`
}

// DeleteSubjectRequest carries the intent of a delete gesture. A nil semester
// ID is a global delete candidate and requires Confirm; with a semester ID
// the caller must pick a choice ("unassign" or "delete", the latter
// escalating to the global path).
type DeleteSubjectRequest struct {
	SemesterID *string `json:"semester_id"`
	Choice     string  `json:"choice,omitempty"`
	Confirm    bool    `json:"confirm,omitempty"`
}

// SubjectDraft mirrors the edit form payload. Prerequisites arrive as a
// comma-separated ID list and are split server-side.
type SubjectDraft struct {
	ID            string `json:"id" validate:"required"`
	Name          string `json:"name" validate:"required"`
	Credits       int    `json:"credits" validate:"gte=0,lte=15"`
	Category      string `json:"category" validate:"required,oneof=MANDATORY ELECTIVE"`
	OfferedTerm   int    `json:"offered_term" validate:"required,oneof=1 2"`
	Prerequisites string `json:"prerequisites"`
	IsRetake      bool   `json:"is_retake"`
}

// RangeRequest reconfigures the timeline span.
type RangeRequest struct {
	StartYear int `json:"start_year" validate:"required"`
	StartTerm int `json:"start_term" validate:"required,oneof=1 2"`
	EndYear   int `json:"end_year" validate:"required"`
	EndTerm   int `json:"end_term" validate:"required,oneof=1 2"`
}
