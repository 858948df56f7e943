package survey

import (
	"fmt"
	"strings"
)

// MaxSheetNameLen is the Excel worksheet name limit; pair slugs are capped
// to it so the same identifier works for sheets and image filenames.
const MaxSheetNameLen = 31

// invalid characters for worksheet names and portable filenames
const invalidNameChars = `[]:*?/\`

// SanitizeSheetName replaces characters Excel rejects in sheet names with
// spaces and truncates to the 31-character limit. Truncation counts runes,
// never splitting a multi-byte character.
func SanitizeSheetName(name string) string {
	for _, ch := range invalidNameChars {
		name = strings.ReplaceAll(name, string(ch), " ")
	}
	return truncate(name, MaxSheetNameLen)
}

// PairSlug derives the shared sheet/file identifier for a question pair:
// the first 15 characters of each name joined by an underscore, sanitized.
func PairSlug(first, second string) string {
	return SanitizeSheetName(truncate(first, 15) + "_" + truncate(second, 15))
}

// UniqueName resolves slug collisions with a numeric suffix that still
// fits the name cap. used carries the names taken so far and is updated
// with the returned name.
func UniqueName(slug string, used map[string]bool) string {
	name := slug
	for n := 2; used[name]; n++ {
		suffix := fmt.Sprintf("~%d", n)
		name = truncate(slug, MaxSheetNameLen-len(suffix)) + suffix
	}
	used[name] = true
	return name
}

func truncate(s string, n int) string {
	if r := []rune(s); len(r) > n {
		return string(r[:n])
	}
	return s
}
