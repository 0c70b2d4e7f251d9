package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeQuery(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"  Messi ", "messi"},
		{"ÁNGEL", "angel"},
		{"Müller", "muller"},
		{"muñoz", "munoz"},
		{"", ""},
		{"   ", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeQuery(tc.in), "input %q", tc.in)
	}
}
