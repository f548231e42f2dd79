package reconcile

import (
	"fmt"
	"strings"
)

// CanonicalSymbol maps a bare exchange ticker to the quote provider's
// canonical form: NSE tickers get the .NS suffix, BSE tickers .BO, anything
// else passes through bare. Symbol and exchange are required.
func CanonicalSymbol(symbol, exchange string) (string, error) {
	sym := strings.ToUpper(strings.TrimSpace(symbol))
	exch := strings.ToUpper(strings.TrimSpace(exchange))

	if sym == "" {
		return "", fmt.Errorf("empty symbol")
	}
	if exch == "" {
		return "", fmt.Errorf("empty exchange for %s", sym)
	}

	switch exch {
	case "NSE":
		return sym + ".NS", nil
	case "BSE":
		return sym + ".BO", nil
	default:
		return sym, nil
	}
}
