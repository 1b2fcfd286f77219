package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/jacksmith/emp/internal/model"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRepo creates a file-backed SQLite repository in a temp dir.
func newTestRepo(t *testing.T) (*Repository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "employees.db")
	repo, err := New(path, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
	})
	return repo, path
}

func TestLoadEmpty(t *testing.T) {
	repo, _ := newTestRepo(t)

	r, err := repo.Load()
	require.NoError(t, err)
	assert.NotNil(t, r.Employees)
	assert.Empty(t, r.Employees)
}

func TestSaveAndLoad(t *testing.T) {
	repo, _ := newTestRepo(t)

	roster := &model.Roster{Employees: []model.Employee{
		{ID: 3, Name: "Carol", Position: "Ops", Salary: 900.5, Skills: []string{"bash"}},
		{ID: 1, Name: "Alice", Position: "Eng", Salary: 1500, Skills: []string{"go"}},
		{ID: 2, Name: "Bob", Position: "Eng", Salary: 2000, Skills: []string{}},
	}}
	require.NoError(t, repo.Save(roster))

	loaded, err := repo.Load()
	require.NoError(t, err)
	// Insertion order is kept, not ID order
	assert.Equal(t, roster.Employees, loaded.Employees)
}

func TestSaveReplacesContents(t *testing.T) {
	repo, _ := newTestRepo(t)

	require.NoError(t, repo.Save(&model.Roster{Employees: []model.Employee{
		{ID: 1, Name: "Alice", Salary: 1},
		{ID: 2, Name: "Bob", Salary: 1},
	}}))
	require.NoError(t, repo.Save(&model.Roster{Employees: []model.Employee{
		{ID: 2, Name: "Bob", Salary: 5},
	}}))

	loaded, err := repo.Load()
	require.NoError(t, err)
	require.Len(t, loaded.Employees, 1)
	assert.Equal(t, 2, loaded.Employees[0].ID)
	assert.Equal(t, 5.0, loaded.Employees[0].Salary)
	assert.Equal(t, []string{}, loaded.Employees[0].Skills)
}

func TestSaveDuplicateIDsFailsAtomically(t *testing.T) {
	repo, _ := newTestRepo(t)

	require.NoError(t, repo.Save(&model.Roster{Employees: []model.Employee{{ID: 1, Name: "Alice", Salary: 1}}}))

	err := repo.Save(&model.Roster{Employees: []model.Employee{
		{ID: 7, Name: "Dup", Salary: 1},
		{ID: 7, Name: "Dup", Salary: 1},
	}})
	require.Error(t, err)

	// The previous contents survive the failed transaction
	loaded, err := repo.Load()
	require.NoError(t, err)
	require.Len(t, loaded.Employees, 1)
	assert.Equal(t, "Alice", loaded.Employees[0].Name)
}

func TestReopen(t *testing.T) {
	repo, path := newTestRepo(t)
	require.NoError(t, repo.Save(&model.Roster{Employees: []model.Employee{{ID: 1, Name: "Alice", Salary: 1, Skills: []string{"go"}}}}))
	require.NoError(t, repo.Close())

	again, err := New(path, zerolog.Nop())
	require.NoError(t, err)
	defer again.Close()

	loaded, err := again.Load()
	require.NoError(t, err)
	require.Len(t, loaded.Employees, 1)
	assert.Equal(t, []string{"go"}, loaded.Employees[0].Skills)
}
