package dialogue

import (
	"strconv"
	"strings"
)

// #region tokens
// Accepted response tokens. Accented and unaccented spellings are synonyms.
var (
	yesTokens = []string{"si", "sí", "s"}
	noTokens  = []string{"no", "n"}
)

const (
	tokenDirect         = "directo"
	tokenProcess        = "proceso"
	tokenGroup          = "grupo"
	tokenSpecific       = "especifico"
	tokenSpecificAccent = "específico"
)

// normalizeInput lowercases and trims one line of user input. Codes are
// re-uppercased by the lookup engine, so lowering here is lossless.
func normalizeInput(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func isYes(s string) bool {
	return containsToken(yesTokens, s)
}

func isNo(s string) bool {
	return containsToken(noTokens, s)
}

func containsToken(tokens []string, s string) bool {
	for _, t := range tokens {
		if s == t {
			return true
		}
	}
	return false
}

// parseQuantity accepts strictly positive integers.
func parseQuantity(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// #endregion tokens
