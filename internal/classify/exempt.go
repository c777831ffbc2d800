// Package classify decides which graph nodes keep their original appearance.
package classify

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// HeapBase is the lowest address a heap object can have. Node identifiers
// below it name constants and immediates, which have no execution count.
const HeapBase = 0x400000

// IsExempt reports whether the node must not be recolored: constants below
// HeapBase, %-references such as "%12", and labels ending in a %-suffixed
// number such as "loss %42".
func IsExempt(nodeID, label string) bool {
	if belowHeap(nodeID) {
		return true
	}

	label = strings.TrimSpace(label)
	if strings.HasPrefix(label, "%") {
		return true
	}

	return hasPercentSuffix(label)
}

func belowHeap(nodeID string) bool {
	addr, err := strconv.ParseUint(nodeID, 10, 64)
	if err != nil {
		// Out of range means a huge address, anything else is not a number.
		return false
	}
	return addr < HeapBase
}

// hasPercentSuffix reports whether s ends in a non-empty digit run that is
// directly preceded by '%'.
func hasPercentSuffix(s string) bool {
	end := len(s)
	i := end
	for i > 0 {
		r, size := utf8.DecodeLastRuneInString(s[:i])
		if !unicode.IsDigit(r) {
			break
		}
		i -= size
	}
	return i < end && i > 0 && s[i-1] == '%'
}
