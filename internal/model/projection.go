package model

// ScenarioAmounts holds one benefit stream's value under each scenario.
type ScenarioAmounts struct {
	Conservative float64 `json:"conservative"`
	Expected     float64 `json:"expected"`
	Optimistic   float64 `json:"optimistic"`
}

// ROIProjection is the scenario-weighted financial projection derived from a
// MetricsSnapshot. Like MetricsSnapshot, its field names are the contract.
type ROIProjection struct {
	DenialRecovery    ScenarioAmounts `json:"denialRecovery"`
	WorkingCapital    ScenarioAmounts `json:"workingCapital"`
	ProcessEfficiency ScenarioAmounts `json:"processEfficiency"`
	Total             ScenarioAmounts `json:"total"`

	PaybackMonths int     `json:"paybackPeriod"`
	ROIMultiple   float64 `json:"roiMultiple"`
}
