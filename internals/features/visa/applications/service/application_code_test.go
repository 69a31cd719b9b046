package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApplicationCode(t *testing.T) {
	at := time.Date(2026, 8, 31, 10, 30, 0, 0, time.UTC)

	t.Run("shape", func(t *testing.T) {
		code, err := NewApplicationCode(at)
		require.NoError(t, err)

		assert.Len(t, code, 20)
		assert.True(t, strings.HasPrefix(code, "VISA20260831"), code)
		assert.Equal(t, strings.ToUpper(code), code)
		for _, ch := range code[12:] {
			assert.Contains(t, codeCharset, string(ch))
		}
	})

	t.Run("validates itself", func(t *testing.T) {
		code, err := NewApplicationCode(at)
		require.NoError(t, err)
		assert.True(t, ValidApplicationCode(code))
	})

	t.Run("no repeats across a burst", func(t *testing.T) {
		seen := map[string]bool{}
		for i := 0; i < 500; i++ {
			code, err := NewApplicationCode(at)
			require.NoError(t, err)
			require.False(t, seen[code], "duplicate code %s", code)
			seen[code] = true
		}
	})
}

func TestValidApplicationCode(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want bool
	}{
		{"issued code", "VISA20260831K7Q2M0XZ", true},
		{"all digits suffix", "VISA2026083112345678", true},
		{"empty", "", false},
		{"too short", "VISA20260831K7Q2", false},
		{"too long", "VISA20260831K7Q2M0XZA", false},
		{"wrong prefix", "EVIS20260831K7Q2M0XZ", false},
		{"lowercase", "visa20260831k7q2m0xz", false},
		{"sql injection shaped", "VISA20260831';DROP--", false},
		{"path traversal shaped", "VISA20260831../../..", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ValidApplicationCode(tc.in))
		})
	}
}
