// Package sqlite stores the employee roster in an embedded SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/jacksmith/emp/internal/model"
	"github.com/rs/zerolog"

	_ "modernc.org/sqlite"
)

// Repository keeps the roster in an employees table.
// Like the flat-file backend it loads and saves the whole roster at once.
type Repository struct {
	db  *sql.DB
	log zerolog.Logger
}

// New opens (creating if needed) the database at dbPath.
func New(dbPath string, log zerolog.Logger) (*Repository, error) {
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// A single connection keeps :memory: databases coherent.
	db.SetMaxOpenConns(1)

	repo := &Repository{db: db, log: log.With().Str("db", dbPath).Logger()}
	if err := repo.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return repo, nil
}

func (r *Repository) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS employees (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		id INTEGER NOT NULL UNIQUE,
		name TEXT NOT NULL,
		position TEXT NOT NULL,
		salary REAL NOT NULL,
		skills JSON NOT NULL
	);
	`

	_, err := r.db.Exec(schema)
	return err
}

// Load reads every employee in insertion order.
func (r *Repository) Load() (*model.Roster, error) {
	ctx := context.Background()

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, position, salary, skills
		FROM employees
		ORDER BY seq
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	roster := &model.Roster{Employees: []model.Employee{}}
	for rows.Next() {
		var (
			e      model.Employee
			skills []byte
		)
		if err := rows.Scan(&e.ID, &e.Name, &e.Position, &e.Salary, &skills); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		if err := json.Unmarshal(skills, &e.Skills); err != nil {
			return nil, fmt.Errorf("failed to unmarshal skills for employee %d: %w", e.ID, err)
		}
		roster.Employees = append(roster.Employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read employees: %w", err)
	}

	r.log.Debug().Int("employees", len(roster.Employees)).Msg("loaded roster")
	return roster, nil
}

// Save replaces the table contents with the roster in one transaction.
func (r *Repository) Save(roster *model.Roster) error {
	ctx := context.Background()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM employees`); err != nil {
		return fmt.Errorf("failed to clear employees: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO employees (id, name, position, salary, skills)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, e := range roster.Employees {
		skills := e.Skills
		if skills == nil {
			skills = []string{}
		}
		data, err := json.Marshal(skills)
		if err != nil {
			return fmt.Errorf("failed to marshal skills for employee %d: %w", e.ID, err)
		}
		if _, err := stmt.ExecContext(ctx, e.ID, e.Name, e.Position, e.Salary, string(data)); err != nil {
			return fmt.Errorf("failed to insert employee %d: %w", e.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	r.log.Debug().Int("employees", len(roster.Employees)).Msg("saved roster")
	return nil
}

// Close releases the database handle.
func (r *Repository) Close() error {
	return r.db.Close()
}
