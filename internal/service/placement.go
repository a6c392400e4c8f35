package service

import (
	"fmt"

	"github.com/jehee0076-netizen/Academic-Support/internal/models"
	appErrors "github.com/jehee0076-netizen/Academic-Support/pkg/errors"
)

// unknownPrerequisiteName is displayed when a prerequisite ID no longer
// resolves in the catalog.
const unknownPrerequisiteName = "a prerequisite course"

// SubjectLookup resolves a subject ID against the current catalog. A miss is
// ok=false.
type SubjectLookup func(id string) (models.Subject, bool)

// CanPlace decides whether the subject may occupy the target semester given
// the currently materialized timeline. Rules are evaluated in order, first
// failure wins:
//
//  1. A nil target (unassign) always succeeds.
//  2. A target ID absent from the timeline is allowed; stale references from
//     transient view state must not reject or crash.
//  3. The subject's offered term must match the target slot's term.
//  4. Every prerequisite must already be assigned to a slot with a strictly
//     smaller ordinal position in the timeline. Prerequisites are checked
//     against committed placements only, not a transitive closure: the check
//     re-runs on every move attempt, so it stays consistent with the
//     exclusivity the timeline enforces.
//
// Failures are reported as a single human-readable typed error; CanPlace
// never mutates anything.
func CanPlace(subject models.Subject, targetSemesterID *string, timeline []models.Semester, lookup SubjectLookup) error {
	if targetSemesterID == nil {
		return nil
	}

	targetIndex := -1
	for i, slot := range timeline {
		if slot.ID == *targetSemesterID {
			targetIndex = i
			break
		}
	}
	if targetIndex < 0 {
		return nil
	}

	target := timeline[targetIndex]
	if subject.OfferedTerm != target.Term {
		return appErrors.Clone(appErrors.ErrTermMismatch,
			fmt.Sprintf("%s is only offered in term %d", subject.Name, subject.OfferedTerm))
	}

	if len(subject.Prerequisites) > 0 {
		earned := make(map[string]struct{})
		for _, slot := range timeline[:targetIndex] {
			for _, id := range slot.AssignedSubjectIDs {
				earned[id] = struct{}{}
			}
		}

		for _, prereqID := range subject.Prerequisites {
			if _, ok := earned[prereqID]; ok {
				continue
			}
			prereqName := unknownPrerequisiteName
			if prereq, ok := lookup(prereqID); ok {
				prereqName = prereq.Name
			}
			return appErrors.Clone(appErrors.ErrUnmetPrerequisite,
				fmt.Sprintf("%s requires %s to be completed in an earlier semester", subject.Name, prereqName))
		}
	}

	return nil
}
