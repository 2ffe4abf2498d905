package cmd

// truncate shortens s to at most max runes, appending "..." when it cuts.
// Counting runes keeps multibyte labels from being split mid-character.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
