package risk

import (
	"strings"
	"testing"
)

func TestAssessScoreTable(t *testing.T) {
	tests := []struct {
		name    string
		answers Answers
		want    int
	}{
		{
			name:    "all unspecified stays at base",
			answers: Answers{},
			want:    50,
		},
		{
			name: "young aggressive long horizon",
			answers: Answers{
				Age:                Age18To25,
				Income:             IncomeAbove50L,
				EmergencyFund:      EmergencyFundYes,
				InvestmentHorizon:  Horizon10PlusYears,
				MarketDropResponse: DropBuyMore,
				RiskTolerance:      ToleranceAggressive,
			},
			want: 50 + 10 + 8 + 5 + 15 + 15 + 10, // 113
		},
		{
			name: "older conservative short horizon",
			answers: Answers{
				Age:                Age55Plus,
				Income:             IncomeBelow5L,
				EmergencyFund:      EmergencyFundNo,
				InvestmentHorizon:  Horizon1To3Years,
				MarketDropResponse: DropSellAll,
				RiskTolerance:      ToleranceConservative,
			},
			want: 50 - 4 - 3 - 10 - 5 - 20 - 8, // 0
		},
		{
			name: "unrecognized values contribute zero",
			answers: Answers{
				Age:                AgeBand("200-300"),
				Income:             IncomeBand("plenty"),
				EmergencyFund:      EmergencyFund("maybe"),
				InvestmentHorizon:  Horizon("forever"),
				MarketDropResponse: DropResponse("panic"),
				RiskTolerance:      Tolerance("YOLO"),
			},
			want: 50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Assess(tt.answers)
			if got.Score != tt.want {
				t.Errorf("Assess() score = %d, want %d", got.Score, tt.want)
			}
		})
	}
}

func TestProfileThresholdBoundaries(t *testing.T) {
	// Answer combinations engineered to land on the exact tier boundaries.
	tests := []struct {
		name    string
		answers Answers
		score   int
		profile Profile
	}{
		{
			name: "exactly 45 is Conservative",
			answers: Answers{
				EmergencyFund:      EmergencyFundNo, // -10
				MarketDropResponse: DropDoNothing,   // +5
			},
			score:   45,
			profile: ProfileConservative,
		},
		{
			name: "exactly 46 is Moderate",
			answers: Answers{
				Age:                Age46To55,       // +1
				EmergencyFund:      EmergencyFundNo, // -10
				MarketDropResponse: DropDoNothing,   // +5
			},
			score:   46,
			profile: ProfileModerate,
		},
		{
			name: "exactly 69 is Moderate",
			answers: Answers{
				Age:               Age46To55,          // +1
				Income:            Income10To20L,      // +3
				InvestmentHorizon: Horizon10PlusYears, // +15
			},
			score:   69,
			profile: ProfileModerate,
		},
		{
			name: "exactly 70 is Aggressive",
			answers: Answers{
				EmergencyFund:     EmergencyFundYes,   // +5
				InvestmentHorizon: Horizon10PlusYears, // +15
			},
			score:   70,
			profile: ProfileAggressive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Assess(tt.answers)
			if got.Score != tt.score {
				t.Fatalf("Assess() score = %d, want %d", got.Score, tt.score)
			}
			if got.RiskProfile != tt.profile {
				t.Errorf("Assess() profile = %s, want %s", got.RiskProfile, tt.profile)
			}
		})
	}
}

func TestAllocationSumsToHundred(t *testing.T) {
	// Exhaustive sweep over all recognized enum values (plus unspecified).
	ages := []AgeBand{AgeUnspecified, Age18To25, Age26To35, Age36To45, Age46To55, Age55Plus}
	incomes := []IncomeBand{IncomeUnspecified, IncomeBelow5L, Income5To10L, Income10To20L, Income20To50L, IncomeAbove50L}
	funds := []EmergencyFund{EmergencyFundUnspecified, EmergencyFundYes, EmergencyFundNo}
	horizons := []Horizon{HorizonUnspecified, Horizon1To3Years, Horizon3To5Years, Horizon5To10Years, Horizon10PlusYears}
	drops := []DropResponse{DropUnspecified, DropSellAll, DropSellSome, DropDoNothing, DropBuyMore}
	tolerances := []Tolerance{ToleranceUnspecified, ToleranceConservative, ToleranceModerate, ToleranceAggressive}

	for _, age := range ages {
		for _, income := range incomes {
			for _, fund := range funds {
				for _, horizon := range horizons {
					for _, drop := range drops {
						for _, tol := range tolerances {
							a := Assess(Answers{
								Age:                age,
								Income:             income,
								EmergencyFund:      fund,
								InvestmentHorizon:  horizon,
								MarketDropResponse: drop,
								RiskTolerance:      tol,
							})
							if a.Allocation.Total() != 100 {
								t.Fatalf("allocation sums to %d for %+v", a.Allocation.Total(), a.Factors)
							}
						}
					}
				}
			}
		}
	}
}

func TestAssessIsPure(t *testing.T) {
	answers := Answers{
		Age:                Age26To35,
		Income:             Income20To50L,
		EmergencyFund:      EmergencyFundYes,
		InvestmentHorizon:  Horizon5To10Years,
		MarketDropResponse: DropDoNothing,
		RiskTolerance:      ToleranceModerate,
	}

	first := Assess(answers)
	for i := 0; i < 10; i++ {
		got := Assess(answers)
		if got != first {
			t.Fatalf("Assess() not deterministic: %+v != %+v", got, first)
		}
	}
}

func TestDescription(t *testing.T) {
	a := Assess(Answers{
		InvestmentHorizon:  Horizon10PlusYears,
		EmergencyFund:      EmergencyFundYes,
		MarketDropResponse: DropBuyMore,
		RiskTolerance:      ToleranceAggressive,
	})

	if a.RiskProfile != ProfileAggressive {
		t.Fatalf("expected Aggressive, got %s", a.RiskProfile)
	}
	if !strings.Contains(a.Description, "aggressive investor") {
		t.Errorf("description missing profile sentence: %q", a.Description)
	}
	if !strings.Contains(a.Description, "very long-term investment horizon") {
		t.Errorf("description missing horizon text: %q", a.Description)
	}
	if !strings.Contains(a.Description, "already have an emergency fund") {
		t.Errorf("description missing emergency fund text: %q", a.Description)
	}
}
