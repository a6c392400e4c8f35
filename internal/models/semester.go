package models

import "fmt"

// Semester is a planning slot in the academic timeline. Its identity is
// derived from (year, term) so regenerating the timeline for the same range
// always yields the same IDs.
type Semester struct {
	ID                 string   `json:"id"`
	Year               int      `json:"year"`
	Term               int      `json:"term"`
	AssignedSubjectIDs []string `json:"assigned_subject_ids"`
}

// SemesterID derives the deterministic slot identity for a (year, term) pair.
func SemesterID(year, term int) string {
	return fmt.Sprintf("sem%d-%d", year, term)
}

// NewSemester builds an empty slot for the given position.
func NewSemester(year, term int) Semester {
	return Semester{ID: SemesterID(year, term), Year: year, Term: term, AssignedSubjectIDs: []string{}}
}

// PlanRange is the inclusive (year, term) span the timeline covers.
type PlanRange struct {
	StartYear int `json:"start_year"`
	StartTerm int `json:"start_term"`
	EndYear   int `json:"end_year"`
	EndTerm   int `json:"end_term"`
}
