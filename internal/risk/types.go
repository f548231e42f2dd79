package risk

// Questionnaire enums. Every enum has an explicit Unspecified zero value:
// an unrecognized or missing answer decodes to it and contributes nothing
// to the score. "No answer" is a first-class state, not an error.

// AgeBand is the respondent's age bucket
type AgeBand string

const (
	AgeUnspecified AgeBand = ""
	Age18To25      AgeBand = "18-25"
	Age26To35      AgeBand = "26-35"
	Age36To45      AgeBand = "36-45"
	Age46To55      AgeBand = "46-55"
	Age55Plus      AgeBand = "55+"
)

// IncomeBand is the annual income bucket (INR lakh)
type IncomeBand string

const (
	IncomeUnspecified IncomeBand = ""
	IncomeBelow5L     IncomeBand = "<5L"
	Income5To10L      IncomeBand = "5L-10L"
	Income10To20L     IncomeBand = "10L-20L"
	Income20To50L     IncomeBand = "20L-50L"
	IncomeAbove50L    IncomeBand = ">50L"
)

// EmergencyFund is the yes/no emergency-fund answer
type EmergencyFund string

const (
	EmergencyFundUnspecified EmergencyFund = ""
	EmergencyFundYes         EmergencyFund = "yes"
	EmergencyFundNo          EmergencyFund = "no"
)

// Horizon is the investment-horizon bucket
type Horizon string

const (
	HorizonUnspecified Horizon = ""
	Horizon1To3Years   Horizon = "1-3 years"
	Horizon3To5Years   Horizon = "3-5 years"
	Horizon5To10Years  Horizon = "5-10 years"
	Horizon10PlusYears Horizon = "10+ years"
)

// DropResponse is the declared behaviour in a 20% market drawdown
type DropResponse string

const (
	DropUnspecified DropResponse = ""
	DropSellAll     DropResponse = "sell-all"
	DropSellSome    DropResponse = "sell-some"
	DropDoNothing   DropResponse = "do-nothing"
	DropBuyMore     DropResponse = "buy-more"
)

// Tolerance is the self-declared risk tolerance
type Tolerance string

const (
	ToleranceUnspecified  Tolerance = ""
	ToleranceConservative Tolerance = "Conservative"
	ToleranceModerate     Tolerance = "Moderate"
	ToleranceAggressive   Tolerance = "Aggressive"
)

// Answers is the questionnaire submitted by the investor
type Answers struct {
	Age                AgeBand       `json:"age"`
	Income             IncomeBand    `json:"income"`
	EmergencyFund      EmergencyFund `json:"emergencyFund"`
	InvestmentHorizon  Horizon       `json:"investmentHorizon"`
	MarketDropResponse DropResponse  `json:"marketDropResponse"`
	RiskTolerance      Tolerance     `json:"riskTolerance"`
}

// Profile is the derived investor risk tier
type Profile string

const (
	ProfileConservative Profile = "Conservative"
	ProfileModerate     Profile = "Moderate"
	ProfileAggressive   Profile = "Aggressive"
)

// Allocation is the target percentage split across asset classes.
// The four legs always sum to 100.
type Allocation struct {
	Stocks int `json:"stocks"`
	Bonds  int `json:"bonds"`
	Gold   int `json:"gold"`
	Cash   int `json:"cash"`
}

// Total returns the sum of the four allocation legs
func (a Allocation) Total() int {
	return a.Stocks + a.Bonds + a.Gold + a.Cash
}

// Assessment is the immutable result of scoring a questionnaire.
// Computed fresh per request; never persisted here.
type Assessment struct {
	Score       int        `json:"score"`
	RiskProfile Profile    `json:"riskProfile"`
	Allocation  Allocation `json:"allocation"`
	Description string     `json:"description"`

	// Factors echoes the answers that produced this assessment
	Factors Answers `json:"factors"`
}
