package clarify

import (
	"regexp"
	"strings"
)

// skipPattern matches the non-answer vocabulary. Anything else that is
// non-empty counts as a substantive answer.
var skipPattern = regexp.MustCompile(`(?i)^\s*(idk|i don'?t know|skip|na|n/a|none|not sure)\s*$`)

// IsSkipResponse reports whether an answer is a non-answer: blank, or one
// of the skip keywords in any casing.
func IsSkipResponse(answer string) bool {
	if strings.TrimSpace(answer) == "" {
		return true
	}
	return skipPattern.MatchString(answer)
}
