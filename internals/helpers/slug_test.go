package helper

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain title", "Visa Requirements 2026", "visa-requirements-2026"},
		{"diacritics stripped", "Café São Paulo", "cafe-sao-paulo"},
		{"punctuation collapsed", "Hello,  world!! (again)", "hello-world-again"},
		{"already a slug", "hello-world", "hello-world"},
		{"leading and trailing junk", "  --Hello--  ", "hello"},
		{"empty input falls back", "", "item"},
		{"symbols only falls back", "!!!", "item"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Slugify(tc.in, 0))
		})
	}

	t.Run("respects max length", func(t *testing.T) {
		long := strings.Repeat("word ", 50)
		got := Slugify(long, 20)
		assert.LessOrEqual(t, len(got), 20)
		assert.False(t, strings.HasSuffix(got, "-"))
	})
}
