package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jehee0076-netizen/Academic-Support/internal/models"
)

func testSubject(id, name string, category models.SubjectCategory) models.Subject {
	return models.Subject{
		ID:            id,
		Name:          name,
		Credits:       3,
		Category:      category,
		OfferedTerm:   1,
		Prerequisites: []string{},
	}
}

func TestCatalogUpsertAppendsAndReplacesInPlace(t *testing.T) {
	repo := NewCatalogRepository()
	repo.Upsert(testSubject("BMED205", "Engineering Mathematics I", models.CategoryElective))
	repo.Upsert(testSubject("BMED217", "Circuit Theory", models.CategoryElective))
	repo.Upsert(testSubject("BMED215", "Human Anatomy", models.CategoryElective))

	updated := testSubject("BMED217", "Circuit Theory II", models.CategoryMandatory)
	repo.Upsert(updated)

	subjects := repo.List()
	require.Len(t, subjects, 3)
	// In-place replace keeps the catalog position.
	assert.Equal(t, "BMED217", subjects[1].ID)
	assert.Equal(t, "Circuit Theory II", subjects[1].Name)
	assert.Equal(t, models.CategoryMandatory, subjects[1].Category)
}

func TestCatalogFindByIDMissIsNotAnError(t *testing.T) {
	repo := NewCatalogRepository()
	_, ok := repo.FindByID("UNKNOWN")
	assert.False(t, ok)
}

func TestCatalogRemoveReindexes(t *testing.T) {
	repo := NewCatalogRepository()
	repo.Upsert(testSubject("A", "a", models.CategoryElective))
	repo.Upsert(testSubject("B", "b", models.CategoryElective))
	repo.Upsert(testSubject("C", "c", models.CategoryElective))

	require.True(t, repo.Remove("B"))
	assert.False(t, repo.Remove("B"))

	subjects := repo.List()
	require.Len(t, subjects, 2)
	found, ok := repo.FindByID("C")
	require.True(t, ok)
	assert.Equal(t, "c", found.Name)
}

func TestCatalogToggleCategory(t *testing.T) {
	repo := NewCatalogRepository()
	repo.Upsert(testSubject("BMED205", "Engineering Mathematics I", models.CategoryElective))

	subject, ok := repo.ToggleCategory("BMED205")
	require.True(t, ok)
	assert.Equal(t, models.CategoryMandatory, subject.Category)

	subject, ok = repo.ToggleCategory("BMED205")
	require.True(t, ok)
	assert.Equal(t, models.CategoryElective, subject.Category)
}

func TestCatalogToggleCategorySkipsRetakes(t *testing.T) {
	repo := NewCatalogRepository()
	retake := testSubject("BMED301", "Biochemistry", models.CategoryElective)
	retake.IsRetake = true
	retake.Credits = 0
	repo.Upsert(retake)

	subject, ok := repo.ToggleCategory("BMED301")
	require.True(t, ok)
	assert.Equal(t, models.CategoryElective, subject.Category)
}

func TestCatalogListReturnsSnapshots(t *testing.T) {
	repo := NewCatalogRepository()
	subject := testSubject("BMED321", "Digital Systems", models.CategoryElective)
	subject.Prerequisites = []string{"BMED217"}
	repo.Upsert(subject)

	list := repo.List()
	list[0].Prerequisites[0] = "MUTATED"

	stored, ok := repo.FindByID("BMED321")
	require.True(t, ok)
	assert.Equal(t, []string{"BMED217"}, stored.Prerequisites)
}

func TestCatalogSeedIgnoresDuplicateIDs(t *testing.T) {
	repo := NewCatalogRepository()
	repo.Seed([]models.Subject{
		testSubject("A", "first", models.CategoryElective),
		testSubject("A", "second", models.CategoryElective),
	})

	subjects := repo.List()
	require.Len(t, subjects, 1)
	assert.Equal(t, "first", subjects[0].Name)
}
