package domain

import (
	"math/big"
	"strings"
)

// FormatBasisPoints renders a basis-point amount as a percentage, e.g. 250 -> "2.5%"
func FormatBasisPoints(bps *big.Int) string {
	if bps == nil {
		return "0%"
	}
	pct := new(big.Rat).SetFrac(bps, big.NewInt(100)).FloatString(2)
	if strings.Contains(pct, ".") {
		pct = strings.TrimRight(pct, "0")
		pct = strings.TrimSuffix(pct, ".")
	}
	return pct + "%"
}
