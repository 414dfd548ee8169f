package user

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func fixedIntn(v int) func(int) int {
	return func(int) int { return v }
}

func TestGenerateIdentifier(t *testing.T) {
	cases := []struct {
		name      string
		firstName string
		lastName  string
		digits    int
		want      string
		ok        bool
	}{
		{"latin names", "anna", "smith", 7, "07ANSM", true},
		{"short names padded", "A", "B", 42, "42AXBX", true},
		{"cyrillic names", "иван", "петров", 99, "99ИВПЕ", true},
		{"missing last name", "Anna", "", 1, "", false},
		{"missing first name", "", "Smith", 1, "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := GenerateIdentifier(tc.firstName, tc.lastName, fixedIntn(tc.digits))
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestGenerateIdentifierShape(t *testing.T) {
	shape := regexp.MustCompile(`^[0-9]{2}[A-Z]{4}$`)
	for i := 0; i < 100; i++ {
		id, ok := GenerateIdentifier("John", "Doe", func(n int) int { return i % n })
		assert.True(t, ok)
		assert.Regexp(t, shape, id)
	}
}
