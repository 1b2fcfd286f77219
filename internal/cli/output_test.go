package cli

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/jacksmith/emp/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestIsTerminal(t *testing.T) {
	f, err := os.CreateTemp("", "test")
	if err != nil {
		t.Skip("cannot create temp file")
	}
	defer os.Remove(f.Name())
	defer f.Close()

	assert.False(t, IsTerminal(f), "temp file should not be a terminal")

	var buf bytes.Buffer
	assert.False(t, IsTerminal(&buf), "bytes.Buffer should not be a terminal")
}

func TestColorFunctions(t *testing.T) {
	SetColorEnabled(true)

	assert.Equal(t, "\033[32mtest\033[0m", Green("test"))
	assert.Equal(t, "\033[31mtest\033[0m", Red("test"))
	assert.Equal(t, "\033[33mtest\033[0m", Yellow("test"))
	assert.Equal(t, "\033[90mtest\033[0m", Gray("test"))

	SetColorEnabled(false)

	assert.Equal(t, "test", Green("test"))
	assert.Equal(t, "test", Red("test"))
	assert.Equal(t, "test", Yellow("test"))
	assert.Equal(t, "test", Gray("test"))
}

func TestApplyColorMode(t *testing.T) {
	defer SetColorEnabled(false)
	var buf bytes.Buffer

	ApplyColorMode("always", &buf)
	assert.True(t, ColorEnabled())

	ApplyColorMode("never", &buf)
	assert.False(t, ColorEnabled())

	SetColorEnabled(true)
	ApplyColorMode("auto", &buf)
	assert.False(t, ColorEnabled(), "auto should disable color for a non-terminal")
}

func TestFormatSalary(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1500, "1500"},
		{1500.5, "1500.50"},
		{0.25, "0.25"},
		{99999.999, "100000.00"},
		{-20, "-20"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatSalary(tt.in))
		})
	}
}

func TestFormatSkills(t *testing.T) {
	SetColorEnabled(false)
	assert.Equal(t, "-", FormatSkills(nil))
	assert.Equal(t, "go", FormatSkills([]string{"go"}))
	assert.Equal(t, "go, sql", FormatSkills([]string{"go", "sql"}))
}

func TestEmployeeTable(t *testing.T) {
	SetColorEnabled(false)

	table := EmployeeTable([]model.Employee{
		{ID: 1, Name: "Alice", Position: "Engineer", Salary: 5000, Skills: []string{"go", "sql"}},
		{ID: 12, Name: "Bob", Position: "QA", Salary: 4200.5},
	})
	assert.Equal(t, 3, table.Len())

	var buf bytes.Buffer
	table.Render(&buf)

	expected := "ID   NAME   POSITION  SALARY   SKILLS\n" +
		"#1   Alice  Engineer  5000     go, sql\n" +
		"#12  Bob    QA        4200.50  -\n"
	assert.Equal(t, expected, buf.String())
}

func TestEmployeeTableTruncatesLongNames(t *testing.T) {
	SetColorEnabled(false)

	long := strings.Repeat("n", 100)
	table := EmployeeTable([]model.Employee{{ID: 1, Name: long, Position: "Eng", Salary: 1}})

	var buf bytes.Buffer
	table.Render(&buf)

	assert.NotContains(t, buf.String(), long)
	assert.Contains(t, buf.String(), strings.Repeat("n", DefaultMaxNameWidth-3)+"...")
}

func TestTableEmpty(t *testing.T) {
	table := NewTable()
	var buf bytes.Buffer
	table.Render(&buf)
	assert.Equal(t, "", buf.String())
}

func TestTableSingleRow(t *testing.T) {
	table := NewTable()
	table.AddRow("one", "two", "three")

	var buf bytes.Buffer
	table.Render(&buf)
	assert.Equal(t, "one  two  three\n", buf.String())
}

func TestTableColumnAlignment(t *testing.T) {
	table := NewTable()
	table.AddRow("#1", "Engineer", "Alice")
	table.AddRow("#2", "QA", "Bob")
	table.AddRow("#100", "Sales", "Carol")

	var buf bytes.Buffer
	table.Render(&buf)

	expected := "#1    Engineer  Alice\n" +
		"#2    QA        Bob\n" +
		"#100  Sales     Carol\n"
	assert.Equal(t, expected, buf.String())
}

func TestTableWithColoredText(t *testing.T) {
	SetColorEnabled(true)
	defer SetColorEnabled(false)

	table := NewTable()
	table.AddRow(Gray("ID"), "x")
	table.AddRow("#10", "y")

	var buf bytes.Buffer
	table.Render(&buf)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Equal(t, Gray("ID")+"   x", lines[0])
	assert.Equal(t, "#10  y", lines[1])
}

func TestVisibleWidth(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"hello", 5},
		{"", 0},
		{"\033[32mhello\033[0m", 5},
		{"\033[31m\033[0m", 0},
		{"a\033[32mb\033[0mc", 3},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, visibleWidth(tt.input))
		})
	}
}

func TestTruncatePlainText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"no truncation needed", "hello", 10, "hello"},
		{"exact fit", "hello", 5, "hello"},
		{"truncated", "hello world", 8, "hello..."},
		{"very short max", "hello world", 3, "..."},
		{"max 1", "hello", 1, "h"},
		{"max 0", "hello", 0, ""},
		{"empty string", "", 10, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.input, tt.maxWidth)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, visibleWidth(got), tt.maxWidth)
		})
	}
}

func TestTruncateWithANSI(t *testing.T) {
	SetColorEnabled(true)
	defer SetColorEnabled(false)

	got := Truncate(Green("hello world"), 8)
	assert.Equal(t, 8, visibleWidth(got))
	assert.Contains(t, got, "...")
	assert.True(t, strings.HasSuffix(got, colorReset), "should end with ANSI reset")

	short := Green("hi")
	assert.Equal(t, short, Truncate(short, 10))
}

func TestTableUnevenRows(t *testing.T) {
	table := NewTable()
	table.AddRow("a", "b", "c")
	table.AddRow("d", "e")

	var buf bytes.Buffer
	table.Render(&buf)

	assert.Equal(t, "a  b  c\nd  e\n", buf.String())
}
