package service

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"time"
)

/* =========================================================
   Application code

   External identifier for one application, shared with the
   applicant and used as the lookup key for every later
   step. Shape: VISA + yyyymmdd + 8 random base36 chars,
   e.g. VISA20260831K7Q2M0XZ. Uppercase letters and digits
   only, so it is safe in the :code route segment.
   ========================================================= */

const (
	codePrefix    = "VISA"
	codeSuffixLen = 8
	codeCharset   = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// retries on insert-time code collision before giving up
const maxCodeAttempts = 5

var ErrCodeGeneration = errors.New("application code generation failed")

var codePattern = regexp.MustCompile(`^[A-Z0-9]+$`)

// NewApplicationCode builds a fresh code for time t. The suffix comes from
// crypto/rand; 36^8 values per day makes same-day collisions vanishingly
// rare, and the store still retries on a duplicate insert.
func NewApplicationCode(t time.Time) (string, error) {
	suffix := make([]byte, codeSuffixLen)
	max := big.NewInt(int64(len(codeCharset)))
	for i := range suffix {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrCodeGeneration, err)
		}
		suffix[i] = codeCharset[n.Int64()]
	}

	code := codePrefix + t.Format("20060102") + string(suffix)
	// an empty or malformed code must never reach the table: it is the
	// sole lookup key for every subsequent step
	if !ValidApplicationCode(code) {
		return "", ErrCodeGeneration
	}
	return code, nil
}

// ValidApplicationCode reports whether s looks like a code we issued.
func ValidApplicationCode(s string) bool {
	if len(s) != len(codePrefix)+8+codeSuffixLen {
		return false
	}
	if s[:len(codePrefix)] != codePrefix {
		return false
	}
	return codePattern.MatchString(s)
}
