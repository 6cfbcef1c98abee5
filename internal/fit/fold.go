package fit

import (
	"strings"

	"github.com/pkordes/nightlife-navigator/internal/domain"
)

// fold is domain.Fold, shortened for the matching tables.
func fold(s string) string {
	return domain.Fold(s)
}

// containsAny reports whether folded s contains any of the (already folded)
// keywords.
func containsAny(s string, keywords ...string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
