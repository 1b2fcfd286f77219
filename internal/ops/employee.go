package ops

import (
	"math"

	"github.com/jacksmith/emp/internal/model"
)

// ValidateName checks that an employee name is not empty.
func ValidateName(name string) error {
	if name == "" {
		return &InvalidDataError{Field: "name", Message: "name cannot be empty"}
	}
	return nil
}

// ValidateSalary checks that a salary is finite and greater than zero.
func ValidateSalary(salary float64) error {
	if err := validateFinite(salary); err != nil {
		return err
	}
	if !(salary > 0) {
		return &InvalidDataError{Field: "salary", Message: "salary should be greater than zero"}
	}
	return nil
}

func validateFinite(salary float64) error {
	if math.IsNaN(salary) || math.IsInf(salary, 0) {
		return &InvalidDataError{Field: "salary", Message: "salary must be a finite number"}
	}
	return nil
}

// AddEmployee creates a new employee with the next free ID and persists the roster.
// Nothing is written when validation fails.
func AddEmployee(b Backend, name, position string, salary float64, skills []string) (*model.Employee, error) {
	r, err := b.Load()
	if err != nil {
		return nil, err
	}

	if err := ValidateName(name); err != nil {
		return nil, err
	}
	if err := ValidateSalary(salary); err != nil {
		return nil, err
	}

	e := model.Employee{
		ID:       model.NextID(r.Employees),
		Name:     name,
		Position: position,
		Salary:   salary,
		Skills:   append([]string{}, skills...),
	}
	r.Employees = append(r.Employees, e)

	if err := b.Save(r); err != nil {
		return nil, err
	}
	return &e, nil
}

// RemoveEmployee deletes the employee with the given ID.
func RemoveEmployee(b Backend, id int) error {
	r, err := b.Load()
	if err != nil {
		return err
	}

	if !r.Remove(id) {
		return &NotFoundError{ID: id}
	}

	return b.Save(r)
}

// UpdateSalary overwrites the salary of the employee with the given ID.
// Any finite amount is stored as given, including zero and negatives.
func UpdateSalary(b Backend, id int, salary float64) error {
	r, err := b.Load()
	if err != nil {
		return err
	}

	if err := validateFinite(salary); err != nil {
		return err
	}

	e := r.Find(id)
	if e == nil {
		return &NotFoundError{ID: id}
	}
	e.Salary = salary

	return b.Save(r)
}

// GetEmployee returns the employee with the given ID.
func GetEmployee(b Backend, id int) (*model.Employee, error) {
	r, err := b.Load()
	if err != nil {
		return nil, err
	}

	e := r.Find(id)
	if e == nil {
		return nil, &NotFoundError{ID: id}
	}
	found := *e
	return &found, nil
}
