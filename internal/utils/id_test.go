package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRandomID(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := NewRandomID()
		assert.True(t, IsValidID(id))
		assert.False(t, seen[id])
		seen[id] = true
	}
}

func TestIsValidID(t *testing.T) {
	cases := []struct {
		Name   string
		Given  string
		Expect bool
	}{
		{"Empty", "", false},
		{"Junk", "not-a-uuid", false},
		{"UUID", "0b906c4b-9fc2-4a08-9d4b-1a0a678e8c83", true},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			assert.Equal(t, c.Expect, IsValidID(c.Given))
		})
	}
}
