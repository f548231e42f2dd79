package risk

// describe assembles the narrative for an assessment by template selection
// on tier, horizon bucket and emergency-fund flag. No free-form generation.
func describe(profile Profile, answers Answers) string {
	return profileSentence(profile) + " Your answers suggest " + horizonText(answers.InvestmentHorizon) + ". " + emergencyText(answers.EmergencyFund)
}

func profileSentence(profile Profile) string {
	switch profile {
	case ProfileConservative:
		return "You appear to be a conservative investor who prioritises capital preservation and lower volatility over aggressive growth."
	case ProfileAggressive:
		return "You appear to be an aggressive investor who is comfortable with meaningful short-term volatility in pursuit of higher long-term returns."
	default:
		return "You appear to be a moderate investor who seeks a balance between growth and capital protection."
	}
}

func horizonText(horizon Horizon) string {
	switch horizon {
	case Horizon1To3Years:
		return "a relatively short investment horizon"
	case Horizon3To5Years:
		return "a medium-term investment horizon"
	case Horizon5To10Years:
		return "a long-term investment horizon"
	case Horizon10PlusYears:
		return "a very long-term investment horizon"
	default:
		return "your stated investment horizon"
	}
}

func emergencyText(fund EmergencyFund) string {
	if fund == EmergencyFundYes {
		return "You already have an emergency fund, which increases your capacity to take risk."
	}
	return "You are still building your emergency fund, so your plan should leave some room for safety."
}
