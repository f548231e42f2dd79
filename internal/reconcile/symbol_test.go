package reconcile

import "testing"

func TestCanonicalSymbol(t *testing.T) {
	tests := []struct {
		name     string
		symbol   string
		exchange string
		want     string
		wantErr  bool
	}{
		{"NSE suffix", "RELIANCE", "NSE", "RELIANCE.NS", false},
		{"BSE suffix", "TATAMOTORS", "BSE", "TATAMOTORS.BO", false},
		{"other exchange passes through", "AAPL", "NASDAQ", "AAPL", false},
		{"lowercase input normalized", "reliance", "nse", "RELIANCE.NS", false},
		{"whitespace trimmed", " tcs ", " NSE ", "TCS.NS", false},
		{"empty symbol", "", "NSE", "", true},
		{"empty exchange", "RELIANCE", "", "", true},
		{"blank exchange", "RELIANCE", "   ", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CanonicalSymbol(tt.symbol, tt.exchange)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CanonicalSymbol() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("CanonicalSymbol() = %q, want %q", got, tt.want)
			}
		})
	}
}
