package collections

import "strings"

// RemoveDuplicateChars drops repeated characters inside every space separated word of s, keeping
// the first occurrence of each. Runs of spaces are kept; the result is trimmed.
func RemoveDuplicateChars(s string) string {
	words := strings.Split(s, " ")
	out := make([]string, 0, len(words))

	scratch := NewLinkedList[string]()
	for _, w := range words {
		scratch.Clear()
		for _, r := range w {
			_ = scratch.Add(string(r))
		}
		if !scratch.IsEmpty() {
			_ = scratch.Deduplicate()
		}

		b := new(strings.Builder)
		for n := scratch.head; n != nil; n = n.next {
			b.WriteString(n.value)
		}
		out = append(out, b.String())
	}

	return strings.TrimSpace(strings.Join(out, " "))
}
