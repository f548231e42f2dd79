package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/niveshlabs/nivesh/internal/contracts"
	"github.com/niveshlabs/nivesh/internal/momentum"
)

// seedCmd represents the seed command
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the store with sample NSE securities",
	Long: `Upserts a small set of sample NSE securities for local development.

Existing records with the same symbols are overwritten; everything else
is left alone.

Example:
  go run ./cmd/nivesh seed`,
	RunE: runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

type seedStock struct {
	Symbol        string
	Name          string
	Sector        string
	CurrentPrice  float64
	PERatio       float64
	Beta          float64
	DividendYield float64
	DebtToEquity  float64
	ProfitMargin  float64
	RiskBucket    contracts.RiskBucket
	Change1D      float64
	Change1W      float64
	Change1M      float64
}

// sampleStocks covers all three risk buckets and all three momentum labels
var sampleStocks = []seedStock{
	{
		Symbol: "RELIANCE", Name: "Reliance Industries Ltd", Sector: "Energy",
		CurrentPrice: 2915.5, PERatio: 25.3, Beta: 1.1, DividendYield: 0.32,
		DebtToEquity: 0.6, ProfitMargin: 8.5, RiskBucket: contracts.RiskMedium,
		Change1D: 0.8, Change1W: 2.4, Change1M: 9.5,
	},
	{
		Symbol: "TCS", Name: "Tata Consultancy Services Ltd", Sector: "IT",
		CurrentPrice: 3845.1, PERatio: 30.2, Beta: 0.9, DividendYield: 1.5,
		DebtToEquity: 0.1, ProfitMargin: 22, RiskBucket: contracts.RiskLow,
		Change1D: -0.3, Change1W: 0.2, Change1M: 4.0,
	},
	{
		Symbol: "HDFCBANK", Name: "HDFC Bank Ltd", Sector: "Banking",
		CurrentPrice: 1520.75, PERatio: 20.1, Beta: 1.0, DividendYield: 1.2,
		DebtToEquity: 0.5, ProfitMargin: 18, RiskBucket: contracts.RiskLow,
		Change1D: -1.2, Change1W: -3.5, Change1M: -10.2,
	},
	{
		Symbol: "ADANIPORTS", Name: "Adani Ports and Special Economic Zone Ltd", Sector: "Infrastructure",
		CurrentPrice: 1350.0, PERatio: 28.7, Beta: 1.3, DividendYield: 0.6,
		DebtToEquity: 1.0, ProfitMargin: 14, RiskBucket: contracts.RiskHigh,
		Change1D: 1.1, Change1W: 4.2, Change1M: 12.3,
	},
}

func runSeed(cmd *cobra.Command, args []string) error {
	d, err := buildDeps()
	if err != nil {
		return err
	}
	defer d.Close()

	ctx := cmd.Context()
	exchange := "NSE"

	for i := range sampleStocks {
		s := sampleStocks[i]
		label := momentum.FromChanges(&s.Change1M, &s.Change1W)

		update := contracts.SecurityUpdate{
			Name:          &s.Name,
			Exchange:      &exchange,
			Sector:        &s.Sector,
			CurrentPrice:  &s.CurrentPrice,
			PERatio:       &s.PERatio,
			Beta:          &s.Beta,
			DividendYield: &s.DividendYield,
			DebtToEquity:  &s.DebtToEquity,
			ProfitMargin:  &s.ProfitMargin,
			RiskBucket:    &s.RiskBucket,
			Change1D:      &s.Change1D,
			Change1W:      &s.Change1W,
			Change1M:      &s.Change1M,
			Momentum:      &label,
		}

		if _, err := d.Store.Upsert(ctx, s.Symbol, update); err != nil {
			return fmt.Errorf("seed %s: %w", s.Symbol, err)
		}

		fmt.Printf("Seeded %s (%s, %s)\n", s.Symbol, s.RiskBucket, label)
	}

	fmt.Printf("Done: %d securities seeded\n", len(sampleStocks))
	return nil
}
