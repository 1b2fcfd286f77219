package ops

import (
	"github.com/jacksmith/emp/internal/model"
)

// Backend defines the persistence interface required by the operations.
// storage.Storage (flat file) and sqlite.Repository implement it; any store
// that can load and save a whole roster will do.
type Backend interface {
	Load() (*model.Roster, error)
	Save(r *model.Roster) error
}

// EmployeeStore is the capability set a front end consumes.
type EmployeeStore interface {
	Add(name, position string, salary float64, skills []string) (*model.Employee, error)
	Remove(id int) error
	UpdateSalary(id int, salary float64) error
	FindByPosition(position string) ([]model.Employee, error)
	FindBySkill(skill string) ([]model.Employee, error)
	ListAll() ([]model.Employee, error)
}

// Records implements EmployeeStore over a Backend.
type Records struct {
	backend Backend
}

var _ EmployeeStore = (*Records)(nil)

// NewRecords returns an EmployeeStore backed by b.
func NewRecords(b Backend) *Records {
	return &Records{backend: b}
}

func (r *Records) Add(name, position string, salary float64, skills []string) (*model.Employee, error) {
	return AddEmployee(r.backend, name, position, salary, skills)
}

func (r *Records) Remove(id int) error {
	return RemoveEmployee(r.backend, id)
}

func (r *Records) UpdateSalary(id int, salary float64) error {
	return UpdateSalary(r.backend, id, salary)
}

func (r *Records) FindByPosition(position string) ([]model.Employee, error) {
	return FindByPosition(r.backend, position)
}

func (r *Records) FindBySkill(skill string) ([]model.Employee, error) {
	return FindBySkill(r.backend, skill)
}

func (r *Records) ListAll() ([]model.Employee, error) {
	return ListEmployees(r.backend)
}

// Get returns a single employee by ID.
func (r *Records) Get(id int) (*model.Employee, error) {
	return GetEmployee(r.backend, id)
}
