// Package model defines the core data structures for emp.
package model

// Employee represents one employee's stored attributes.
type Employee struct {
	ID       int      `yaml:"id" json:"id"`
	Name     string   `yaml:"name" json:"name"`
	Position string   `yaml:"position" json:"position"`
	Salary   float64  `yaml:"salary" json:"salary"`
	Skills   []string `yaml:"skills" json:"skills"`
}

// Roster is the full ordered set of employee records, the unit of persistence.
type Roster struct {
	Employees []Employee
}

// Find returns a pointer to the employee with the given ID, or nil.
// The pointer aliases the roster's slice so callers can mutate in place.
func (r *Roster) Find(id int) *Employee {
	for i := range r.Employees {
		if r.Employees[i].ID == id {
			return &r.Employees[i]
		}
	}
	return nil
}

// Remove drops the employee with the given ID, preserving order of the rest.
// Returns false if no employee had that ID.
func (r *Roster) Remove(id int) bool {
	kept := make([]Employee, 0, len(r.Employees))
	for _, e := range r.Employees {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(r.Employees) {
		return false
	}
	r.Employees = kept
	return true
}

// HasSkill reports whether the employee lists skill exactly.
func (e *Employee) HasSkill(skill string) bool {
	for _, s := range e.Skills {
		if s == skill {
			return true
		}
	}
	return false
}
