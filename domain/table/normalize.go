package table

import "strings"

// Normalize canonicalizes a header label into its comparison key: outer
// whitespace trimmed, lowercased, every period and space removed. Two labels
// name the same column iff their normalized keys are equal. An empty label
// normalizes to "" and is a key like any other, so unlabeled columns collide
// on purpose.
func Normalize(label string) string {
	key := strings.ToLower(strings.TrimSpace(label))
	key = strings.ReplaceAll(key, ".", "")
	return strings.ReplaceAll(key, " ", "")
}
