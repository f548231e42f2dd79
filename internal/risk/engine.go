package risk

// Assess maps questionnaire answers to a risk assessment.
// Pure and total: identical answers always produce an identical result and
// there is no failure path. Adjustments are fixed integer constants applied
// independently per factor on top of a neutral base of 50.
func Assess(answers Answers) Assessment {
	score := baseScore

	score += ageAdjustment(answers.Age)
	score += horizonAdjustment(answers.InvestmentHorizon)
	score += emergencyFundAdjustment(answers.EmergencyFund)
	score += incomeAdjustment(answers.Income)
	score += dropResponseAdjustment(answers.MarketDropResponse)
	score += toleranceAdjustment(answers.RiskTolerance)

	profile := profileForScore(score)

	return Assessment{
		Score:       score,
		RiskProfile: profile,
		Allocation:  allocationFor(profile),
		Description: describe(profile, answers),
		Factors:     answers,
	}
}

const baseScore = 50

// Tier thresholds: score <=45 Conservative, >=70 Aggressive, else Moderate
func profileForScore(score int) Profile {
	switch {
	case score <= 45:
		return ProfileConservative
	case score >= 70:
		return ProfileAggressive
	default:
		return ProfileModerate
	}
}

func allocationFor(profile Profile) Allocation {
	switch profile {
	case ProfileConservative:
		return Allocation{Stocks: 25, Bonds: 45, Gold: 20, Cash: 10}
	case ProfileAggressive:
		return Allocation{Stocks: 80, Bonds: 10, Gold: 5, Cash: 5}
	default:
		return Allocation{Stocks: 55, Bonds: 30, Gold: 10, Cash: 5}
	}
}

// Younger investors have more risk capacity
func ageAdjustment(age AgeBand) int {
	switch age {
	case Age18To25:
		return 10
	case Age26To35:
		return 8
	case Age36To45:
		return 4
	case Age46To55:
		return 1
	case Age55Plus:
		return -4
	default:
		return 0
	}
}

// Longer horizon tolerates more equity
func horizonAdjustment(horizon Horizon) int {
	switch horizon {
	case Horizon10PlusYears:
		return 15
	case Horizon5To10Years:
		return 10
	case Horizon3To5Years:
		return 5
	case Horizon1To3Years:
		return -5
	default:
		return 0
	}
}

func emergencyFundAdjustment(fund EmergencyFund) int {
	switch fund {
	case EmergencyFundYes:
		return 5
	case EmergencyFundNo:
		return -10
	default:
		return 0
	}
}

func incomeAdjustment(income IncomeBand) int {
	switch income {
	case IncomeBelow5L:
		return -3
	case Income5To10L:
		return 0
	case Income10To20L:
		return 3
	case Income20To50L:
		return 6
	case IncomeAbove50L:
		return 8
	default:
		return 0
	}
}

// Behaviour in a drawdown is the strongest single signal
func dropResponseAdjustment(response DropResponse) int {
	switch response {
	case DropSellAll:
		return -20
	case DropSellSome:
		return -10
	case DropDoNothing:
		return 5
	case DropBuyMore:
		return 15
	default:
		return 0
	}
}

func toleranceAdjustment(tolerance Tolerance) int {
	switch tolerance {
	case ToleranceConservative:
		return -8
	case ToleranceModerate:
		return 0
	case ToleranceAggressive:
		return 10
	default:
		return 0
	}
}
