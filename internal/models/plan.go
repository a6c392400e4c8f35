package models

// GraduationRequirements holds the per-category credit thresholds.
type GraduationRequirements struct {
	Mandatory int `json:"mandatory"`
	Elective  int `json:"elective"`
}

// GraduationSummary is the derived readiness view over the whole plan.
type GraduationSummary struct {
	MandatoryCredits  int  `json:"mandatory_credits"`
	ElectiveCredits   int  `json:"elective_credits"`
	TotalCredits      int  `json:"total_credits"`
	RequiredMandatory int  `json:"required_mandatory"`
	RequiredElective  int  `json:"required_elective"`
	GraduationReady   bool `json:"graduation_ready"`
}

// SemesterOverview is a slot together with its resolved subjects and credit
// subtotals. Assignment entries whose subject no longer exists in the catalog
// are omitted.
type SemesterOverview struct {
	Semester
	Subjects         []Subject `json:"subjects"`
	TotalCredits     int       `json:"total_credits"`
	MandatoryCredits int       `json:"mandatory_credits"`
	ElectiveCredits  int       `json:"elective_credits"`
}

// UnassignedPool groups the not-yet-placed subjects by the term they are
// offered in, each group sorted by display name.
type UnassignedPool struct {
	Term1 []Subject `json:"term1"`
	Term2 []Subject `json:"term2"`
}
