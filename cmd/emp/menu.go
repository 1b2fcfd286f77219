package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jacksmith/emp/internal/cli"
	"github.com/jacksmith/emp/internal/model"
	"github.com/jacksmith/emp/internal/ops"
	"github.com/spf13/cobra"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Run the interactive numbered menu",
	Long: `Run an interactive loop over the six roster operations.

Choose an option by number or by typing a unique prefix of its name
(e.g., "sk" for skill). Mistakes such as an unknown ID or an empty name are
reported and the menu is shown again. Enter 0 or end input to exit.`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	rootCmd.AddCommand(menuCmd)
}

var menuItems = []cli.MenuItem{
	{Key: "0", Name: "exit", Help: "Exit"},
	{Key: "1", Name: "add", Help: "Add employee"},
	{Key: "2", Name: "remove", Help: "Remove employee"},
	{Key: "3", Name: "position", Help: "Search employees by position"},
	{Key: "4", Name: "skill", Help: "Search employees by skill"},
	{Key: "5", Name: "salary", Help: "Update employee salary"},
	{Key: "6", Name: "list", Help: "List employees"},
}

func runMenu(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	m := &menu{
		store: s.store,
		sep:   s.cfg.SkillSeparator,
		in:    bufio.NewReader(os.Stdin),
		out:   os.Stdout,
	}
	return m.run()
}

// menu drives the interactive loop. Each choice runs exactly one store
// operation, so the roster is reloaded on every pass.
type menu struct {
	store ops.EmployeeStore
	sep   string
	in    *bufio.Reader
	out   io.Writer
}

// maxMenuLine caps one line of menu input. Longer lines are discarded.
const maxMenuLine = 64 * 1024

// errMenuEOF ends the loop when input runs out mid-prompt.
var errMenuEOF = errors.New("end of input")

func (m *menu) run() error {
	for {
		m.printMenu()
		choice, err := m.prompt("Choice")
		if err == errMenuEOF {
			return nil
		} else if cli.IsUserError(err) {
			fmt.Fprintln(m.out, cli.Red(cli.FormatError(err)))
			continue
		} else if err != nil {
			return err
		}

		item, err := cli.MatchMenu(choice, menuItems)
		if err != nil {
			fmt.Fprintln(m.out, cli.Red(cli.FormatError(err)))
			continue
		}
		if item.Name == "exit" {
			fmt.Fprintln(m.out, "Bye!")
			return nil
		}

		err = m.dispatch(item.Name)
		switch {
		case err == nil:
		case err == errMenuEOF:
			return nil
		case cli.IsUserError(err):
			fmt.Fprintln(m.out, cli.Red(cli.FormatError(err)))
		default:
			return err
		}
	}
}

func (m *menu) printMenu() {
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, "Menu:")
	for _, item := range menuItems {
		fmt.Fprintf(m.out, "%s. %s\n", item.Key, item.Help)
	}
}

// prompt prints label and reads one trimmed line.
func (m *menu) prompt(label string) (string, error) {
	fmt.Fprintf(m.out, "%s: ", label)
	line, err := m.readLine()
	if err == errMenuEOF {
		fmt.Fprintln(m.out)
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// readLine reads up to the next newline. A line over maxMenuLine bytes is
// consumed in full and reported as a user error.
func (m *menu) readLine() (string, error) {
	var line []byte
	tooLong := false
	for {
		chunk, more, err := m.in.ReadLine()
		if err == io.EOF {
			if len(line) > 0 || tooLong {
				break
			}
			return "", errMenuEOF
		} else if err != nil {
			return "", err
		}

		if !tooLong {
			if len(line)+len(chunk) > maxMenuLine {
				tooLong = true
				line = nil
			} else {
				line = append(line, chunk...)
			}
		}
		if !more {
			break
		}
	}

	if tooLong {
		return "", &cli.ValidationError{Field: "input", Message: fmt.Sprintf("line is longer than %d bytes", maxMenuLine)}
	}
	return string(line), nil
}

func (m *menu) promptID() (int, error) {
	s, err := m.prompt("Employee ID")
	if err != nil {
		return 0, err
	}
	return cli.ParseIDArg(s)
}

func (m *menu) promptSalary(label string) (float64, error) {
	s, err := m.prompt(label)
	if err != nil {
		return 0, err
	}
	return cli.ParseSalaryArg(s)
}

func (m *menu) dispatch(name string) error {
	switch name {
	case "add":
		return m.add()
	case "remove":
		return m.remove()
	case "position":
		return m.search("Position", m.store.FindByPosition)
	case "skill":
		return m.search("Skill", m.store.FindBySkill)
	case "salary":
		return m.updateSalary()
	case "list":
		return m.list()
	default:
		return fmt.Errorf("unhandled menu item %q", name)
	}
}

func (m *menu) add() error {
	name, err := m.prompt("Name")
	if err != nil {
		return err
	}
	position, err := m.prompt("Position")
	if err != nil {
		return err
	}
	skills, err := m.prompt(fmt.Sprintf("Skills (separated by %q)", m.sep))
	if err != nil {
		return err
	}
	salary, err := m.promptSalary("Salary")
	if err != nil {
		return err
	}

	e, err := m.store.Add(name, position, salary, cli.SplitSkills(skills, m.sep))
	if err != nil {
		return err
	}
	fmt.Fprintln(m.out, cli.Green(fmt.Sprintf("Added %s %s", model.FormatID(e.ID), e.Name)))
	return nil
}

func (m *menu) remove() error {
	id, err := m.promptID()
	if err != nil {
		return err
	}
	if err := m.store.Remove(id); err != nil {
		return err
	}
	fmt.Fprintln(m.out, cli.Green("Removed "+model.FormatID(id)))
	return nil
}

func (m *menu) updateSalary() error {
	id, err := m.promptID()
	if err != nil {
		return err
	}
	salary, err := m.promptSalary("New salary")
	if err != nil {
		return err
	}
	if err := m.store.UpdateSalary(id, salary); err != nil {
		return err
	}
	fmt.Fprintln(m.out, cli.Green(fmt.Sprintf("%s salary set to %s", model.FormatID(id), cli.FormatSalary(salary))))
	return nil
}

func (m *menu) search(label string, find func(string) ([]model.Employee, error)) error {
	query, err := m.prompt(label)
	if err != nil {
		return err
	}
	found, err := find(query)
	if err != nil {
		return err
	}
	cli.EmployeeTable(found).Render(m.out)
	return nil
}

func (m *menu) list() error {
	employees, err := m.store.ListAll()
	if err != nil {
		return err
	}
	if len(employees) == 0 {
		fmt.Fprintln(m.out, "No employees.")
		return nil
	}
	cli.EmployeeTable(employees).Render(m.out)
	return nil
}
