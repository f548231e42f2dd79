package contracts

import "fmt"

// ProviderError wraps a failed or unusable external fetch. The pipelines
// treat it as terminal for the affected item only: log, skip, continue.
type ProviderError struct {
	Provider string
	Symbol   string
	Err      error
}

func (e *ProviderError) Error() string {
	if e.Symbol != "" {
		return fmt.Sprintf("%s: %s: %v", e.Provider, e.Symbol, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
