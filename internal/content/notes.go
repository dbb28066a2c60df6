package content

import "strings"

// NoteLines splits notes or summary text into display lines. Blank lines are
// dropped, each line is trimmed and a single leading "- " bullet is removed.
func NoteLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, strings.TrimPrefix(line, "- "))
	}
	return lines
}
