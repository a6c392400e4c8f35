// Package seed ships the default biomedical engineering catalog the planner
// starts with when seeding is enabled.
package seed

import "github.com/jehee0076-netizen/Academic-Support/internal/models"

// Subjects returns the default catalog in offering order.
func Subjects() []models.Subject {
	return []models.Subject{
		// Term 1 offerings.
		{ID: "BMED205", Name: "Engineering Mathematics I", Credits: 3, Category: models.CategoryElective, OfferedTerm: 1, Prerequisites: []string{}},
		{ID: "BMED208", Name: "Biofluid Mechanics", Credits: 3, Category: models.CategoryElective, OfferedTerm: 1, Prerequisites: []string{}},
		{ID: "BMED212", Name: "Fundamentals of Optics", Credits: 3, Category: models.CategoryElective, OfferedTerm: 1, Prerequisites: []string{}},
		{ID: "BMED215", Name: "Human Anatomy", Credits: 3, Category: models.CategoryElective, OfferedTerm: 1, Prerequisites: []string{}},
		{ID: "BMED217", Name: "Circuit Theory", Credits: 3, Category: models.CategoryElective, OfferedTerm: 1, Prerequisites: []string{}},
		{ID: "BMED219", Name: "Organic Chemistry", Credits: 3, Category: models.CategoryElective, OfferedTerm: 1, Prerequisites: []string{}},
		{ID: "BMED223", Name: "Biomedical Programming", Credits: 3, Category: models.CategoryElective, OfferedTerm: 1, Prerequisites: []string{}},
		{ID: "BMED228", Name: "Introduction to Biomedical Engineering", Credits: 3, Category: models.CategoryElective, OfferedTerm: 1, Prerequisites: []string{}},
		{ID: "BMED301", Name: "Biochemistry", Credits: 3, Category: models.CategoryElective, OfferedTerm: 1, Prerequisites: []string{}},
		{ID: "BMED311", Name: "Biomedical Signal Processing", Credits: 3, Category: models.CategoryElective, OfferedTerm: 1, Prerequisites: []string{}},
		{ID: "BMED313", Name: "Biomaterials", Credits: 3, Category: models.CategoryElective, OfferedTerm: 1, Prerequisites: []string{}},
		{ID: "BMED321", Name: "Digital Systems", Credits: 3, Category: models.CategoryElective, OfferedTerm: 1, Prerequisites: []string{"BMED217", "BMED230"}},
		{ID: "BMED323", Name: "Biomedical Engineering Lab I", Credits: 2, Category: models.CategoryMandatory, OfferedTerm: 1, Prerequisites: []string{"BMED217"}},
		{ID: "BMED325", Name: "Biomedical Data Science", Credits: 3, Category: models.CategoryElective, OfferedTerm: 1, Prerequisites: []string{"BMED223"}},
		{ID: "BMED329", Name: "Biomedical Engineering Lab III", Credits: 2, Category: models.CategoryMandatory, OfferedTerm: 1, Prerequisites: []string{"BMED212", "BMED309"}},

		// Term 2 offerings.
		{ID: "BMED202", Name: "Engineering Mathematics II", Credits: 3, Category: models.CategoryMandatory, OfferedTerm: 2, Prerequisites: []string{"BMED205"}},
		{ID: "BMED211", Name: "Biomechanics", Credits: 3, Category: models.CategoryElective, OfferedTerm: 2, Prerequisites: []string{}},
		{ID: "BMED218", Name: "Human Physiology", Credits: 3, Category: models.CategoryElective, OfferedTerm: 2, Prerequisites: []string{"BMED215"}},
		{ID: "BMED224", Name: "Physical Chemistry", Credits: 3, Category: models.CategoryElective, OfferedTerm: 2, Prerequisites: []string{}},
		{ID: "BMED230", Name: "Electronic Circuits", Credits: 3, Category: models.CategoryElective, OfferedTerm: 2, Prerequisites: []string{"BMED217"}},
		{ID: "BMED306", Name: "Cell Biology", Credits: 3, Category: models.CategoryElective, OfferedTerm: 2, Prerequisites: []string{}},
		{ID: "BMED307", Name: "Biological Transport Systems", Credits: 3, Category: models.CategoryElective, OfferedTerm: 2, Prerequisites: []string{}},
		{ID: "BMED309", Name: "Medical Imaging", Credits: 3, Category: models.CategoryElective, OfferedTerm: 2, Prerequisites: []string{}},
		{ID: "BMED312", Name: "Biomedical Instrumentation", Credits: 3, Category: models.CategoryElective, OfferedTerm: 2, Prerequisites: []string{"BMED217", "BMED311"}},
		{ID: "BMED318", Name: "Medical Image Processing", Credits: 3, Category: models.CategoryElective, OfferedTerm: 2, Prerequisites: []string{}},
		{ID: "BMED326", Name: "Biomedical Engineering Lab II", Credits: 2, Category: models.CategoryMandatory, OfferedTerm: 2, Prerequisites: []string{"BMED313"}},
		{ID: "BMED330", Name: "Biomedical Materials Processing", Credits: 3, Category: models.CategoryElective, OfferedTerm: 2, Prerequisites: []string{}},
	}
}

// InitialAssignment pins a subject into a semester slot at startup.
type InitialAssignment struct {
	SubjectID  string
	SemesterID string
}

// InitialAssignments returns the default placements. Assignments whose slot
// falls outside the configured range are simply skipped by the timeline.
func InitialAssignments() []InitialAssignment {
	return []InitialAssignment{
		{SubjectID: "BMED202", SemesterID: models.SemesterID(25, 2)},
		{SubjectID: "BMED218", SemesterID: models.SemesterID(25, 2)},
	}
}
