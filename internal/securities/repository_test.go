package securities

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/niveshlabs/nivesh/internal/contracts"
)

func TestBuildOrderBy(t *testing.T) {
	tests := []struct {
		name string
		sort []contracts.SortKey
		want string
	}{
		{
			name: "empty sort",
			sort: nil,
			want: "",
		},
		{
			name: "single ascending key",
			sort: []contracts.SortKey{{Field: contracts.SortPERatio}},
			want: "pe_ratio ASC NULLS LAST",
		},
		{
			name: "descending then ascending",
			sort: []contracts.SortKey{
				{Field: contracts.SortDividendYield, Desc: true},
				{Field: contracts.SortPERatio},
			},
			want: "dividend_yield DESC NULLS LAST, pe_ratio ASC NULLS LAST",
		},
		{
			name: "profit margin descending",
			sort: []contracts.SortKey{{Field: contracts.SortProfitMargin, Desc: true}},
			want: "profit_margin DESC NULLS LAST",
		},
		{
			name: "unknown field is dropped",
			sort: []contracts.SortKey{
				{Field: contracts.SortField("current_price; DROP TABLE securities")},
				{Field: contracts.SortPERatio},
			},
			want: "pe_ratio ASC NULLS LAST",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, buildOrderBy(tt.sort))
		})
	}
}
