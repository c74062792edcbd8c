package templates

import (
	"strconv"
	"strings"
)

func prefixedStrings(prefix string, count int) string {
	return indexedStrings(prefix+"#", count)
}

// indexedStrings joins count copies of format with ", ", replacing every #
// with the copy's index.
func indexedStrings(format string, count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		sb.WriteString(strings.ReplaceAll(format, "#", strconv.Itoa(i)))
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

func typeParams(count int) string {
	return prefixedStrings("A", count)
}

func argsType(count int) string {
	return "Args" + strconv.Itoa(count) + "[" + typeParams(count) + "]"
}
