package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{
			name:  "plain number",
			input: "7",
			want:  7,
		},
		{
			name:  "surrounding whitespace",
			input: "  12 ",
			want:  12,
		},
		{
			name:  "hash prefix",
			input: "#3",
			want:  3,
		},
		{
			name:  "leading zeros",
			input: "007",
			want:  7,
		},
		// Error cases
		{
			name:    "invalid - empty",
			input:   "",
			wantErr: true,
		},
		{
			name:    "invalid - text",
			input:   "alice",
			wantErr: true,
		},
		{
			name:    "invalid - zero",
			input:   "0",
			wantErr: true,
		},
		{
			name:    "invalid - negative",
			input:   "-4",
			wantErr: true,
		},
		{
			name:    "invalid - fractional",
			input:   "1.5",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := ParseID(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidID)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}

func TestNextID(t *testing.T) {
	t.Run("empty roster starts at 1", func(t *testing.T) {
		assert.Equal(t, 1, NextID(nil))
		assert.Equal(t, 1, NextID([]Employee{}))
	})

	t.Run("max plus one", func(t *testing.T) {
		employees := []Employee{{ID: 1}, {ID: 2}, {ID: 3}}
		assert.Equal(t, 4, NextID(employees))
	})

	t.Run("gaps below the maximum are not refilled", func(t *testing.T) {
		employees := []Employee{{ID: 1}, {ID: 5}}
		assert.Equal(t, 6, NextID(employees))
	})

	t.Run("order does not matter", func(t *testing.T) {
		employees := []Employee{{ID: 9}, {ID: 2}, {ID: 4}}
		assert.Equal(t, 10, NextID(employees))
	})

	t.Run("removing the highest id frees its value", func(t *testing.T) {
		employees := []Employee{{ID: 1}, {ID: 2}}
		assert.Equal(t, 2, NextID(employees[:1]))
	})
}

func TestFormatID(t *testing.T) {
	assert.Equal(t, "#1", FormatID(1))
	assert.Equal(t, "#42", FormatID(42))
}

func TestRosterFind(t *testing.T) {
	r := &Roster{Employees: []Employee{{ID: 1, Name: "Alice"}, {ID: 2, Name: "Bob"}}}

	e := r.Find(2)
	require.NotNil(t, e)
	assert.Equal(t, "Bob", e.Name)

	// Mutation through the pointer is visible in the roster
	e.Salary = 10
	assert.Equal(t, 10.0, r.Employees[1].Salary)

	assert.Nil(t, r.Find(3))
}

func TestRosterRemove(t *testing.T) {
	r := &Roster{Employees: []Employee{{ID: 1}, {ID: 2}, {ID: 3}}}

	assert.True(t, r.Remove(2))
	require.Len(t, r.Employees, 2)
	assert.Equal(t, 1, r.Employees[0].ID)
	assert.Equal(t, 3, r.Employees[1].ID)

	assert.False(t, r.Remove(2))
	assert.Len(t, r.Employees, 2)
}

func TestHasSkill(t *testing.T) {
	e := Employee{Skills: []string{"go", "rust"}}
	assert.True(t, e.HasSkill("go"))
	assert.True(t, e.HasSkill("rust"))
	assert.False(t, e.HasSkill("Go"))
	assert.False(t, e.HasSkill("ru"))

	var none Employee
	assert.False(t, none.HasSkill("go"))
}
