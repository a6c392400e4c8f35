package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jehee0076-netizen/Academic-Support/internal/models"
	appErrors "github.com/jehee0076-netizen/Academic-Support/pkg/errors"
)

func placementTimeline() []models.Semester {
	return []models.Semester{
		models.NewSemester(25, 1),
		models.NewSemester(25, 2),
		models.NewSemester(26, 1),
		models.NewSemester(26, 2),
	}
}

func placementLookup(subjects ...models.Subject) SubjectLookup {
	index := make(map[string]models.Subject, len(subjects))
	for _, s := range subjects {
		index[s.ID] = s
	}
	return func(id string) (models.Subject, bool) {
		s, ok := index[id]
		return s, ok
	}
}

func strPtr(s string) *string { return &s }

func TestCanPlaceNilTargetAlwaysSucceeds(t *testing.T) {
	subject := models.Subject{ID: "BMED202", Name: "Engineering Mathematics II", OfferedTerm: 2, Prerequisites: []string{"BMED205"}}
	err := CanPlace(subject, nil, placementTimeline(), placementLookup())
	assert.NoError(t, err)
}

func TestCanPlaceStaleTargetIsAllowed(t *testing.T) {
	subject := models.Subject{ID: "BMED202", Name: "Engineering Mathematics II", OfferedTerm: 2, Prerequisites: []string{"BMED205"}}
	err := CanPlace(subject, strPtr("sem99-1"), placementTimeline(), placementLookup())
	assert.NoError(t, err)
}

func TestCanPlaceRejectsTermMismatch(t *testing.T) {
	subject := models.Subject{ID: "BMED202", Name: "Engineering Mathematics II", OfferedTerm: 2}
	err := CanPlace(subject, strPtr("sem25-1"), placementTimeline(), placementLookup())
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrTermMismatch.Code, appErr.Code)
	assert.Contains(t, appErr.Message, "Engineering Mathematics II")
	assert.Contains(t, appErr.Message, "term 2")
}

func TestCanPlaceTermGateBeatsPrerequisiteCheck(t *testing.T) {
	// Both rules would fail; the term mismatch is reported first.
	subject := models.Subject{ID: "BMED202", Name: "Engineering Mathematics II", OfferedTerm: 2, Prerequisites: []string{"BMED205"}}
	err := CanPlace(subject, strPtr("sem26-1"), placementTimeline(), placementLookup())
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrTermMismatch.Code, appErrors.FromError(err).Code)
}

func TestCanPlacePrerequisiteOrdering(t *testing.T) {
	prereq := models.Subject{ID: "BMED205", Name: "Engineering Mathematics I", OfferedTerm: 1}
	subject := models.Subject{ID: "BMED202", Name: "Engineering Mathematics II", OfferedTerm: 2, Prerequisites: []string{"BMED205"}}

	cases := []struct {
		name      string
		prereqAt  string
		target    string
		satisfied bool
	}{
		{name: "prereq strictly earlier", prereqAt: "sem25-1", target: "sem25-2", satisfied: true},
		{name: "prereq much earlier", prereqAt: "sem25-1", target: "sem26-2", satisfied: true},
		{name: "prereq in same slot ordinal", prereqAt: "sem25-2", target: "sem25-2", satisfied: false},
		{name: "prereq later", prereqAt: "sem26-1", target: "sem25-2", satisfied: false},
		{name: "prereq unassigned", prereqAt: "", target: "sem25-2", satisfied: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			timeline := placementTimeline()
			if tc.prereqAt != "" {
				for i := range timeline {
					if timeline[i].ID == tc.prereqAt {
						timeline[i].AssignedSubjectIDs = []string{"BMED205"}
					}
				}
			}

			err := CanPlace(subject, strPtr(tc.target), timeline, placementLookup(prereq, subject))
			if tc.satisfied {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Equal(t, appErrors.ErrUnmetPrerequisite.Code, appErrors.FromError(err).Code)
			}
		})
	}
}

func TestCanPlaceUnmetPrerequisiteNamesTheMissingCourse(t *testing.T) {
	prereq := models.Subject{ID: "BMED205", Name: "Engineering Mathematics I", OfferedTerm: 1}
	subject := models.Subject{ID: "BMED202", Name: "Engineering Mathematics II", OfferedTerm: 2, Prerequisites: []string{"BMED205"}}

	err := CanPlace(subject, strPtr("sem25-2"), placementTimeline(), placementLookup(prereq, subject))
	require.Error(t, err)
	assert.Contains(t, appErrors.FromError(err).Message, "Engineering Mathematics I")
}

func TestCanPlaceDanglingPrerequisiteFallsBackToPlaceholder(t *testing.T) {
	subject := models.Subject{ID: "BMED202", Name: "Engineering Mathematics II", OfferedTerm: 2, Prerequisites: []string{"GONE999"}}

	err := CanPlace(subject, strPtr("sem25-2"), placementTimeline(), placementLookup(subject))
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrUnmetPrerequisite.Code, appErr.Code)
	assert.Contains(t, appErr.Message, unknownPrerequisiteName)
}

func TestCanPlaceChecksEveryPrerequisite(t *testing.T) {
	subject := models.Subject{ID: "BMED321", Name: "Digital Systems", OfferedTerm: 1, Prerequisites: []string{"BMED217", "BMED230"}}
	circuit := models.Subject{ID: "BMED217", Name: "Circuit Theory", OfferedTerm: 1}
	electronics := models.Subject{ID: "BMED230", Name: "Electronic Circuits", OfferedTerm: 2}

	timeline := placementTimeline()
	timeline[0].AssignedSubjectIDs = []string{"BMED217"}

	err := CanPlace(subject, strPtr("sem26-1"), timeline, placementLookup(subject, circuit, electronics))
	require.Error(t, err)
	assert.Contains(t, appErrors.FromError(err).Message, "Electronic Circuits")

	timeline[1].AssignedSubjectIDs = []string{"BMED230"}
	assert.NoError(t, CanPlace(subject, strPtr("sem26-1"), timeline, placementLookup(subject, circuit, electronics)))
}
