package model

// Route identifies one of the five processing queues a claim can land in
type Route string

const (
	RouteManualReview  Route = "Manual Review"       // Missing fields, or no damage estimate
	RouteInvestigation Route = "Investigation Queue" // Fraud indicators present
	RouteSpecialist    Route = "Specialist Queue"    // Injury claims
	RouteFastTrack     Route = "Fast-Track"          // Damage below the fast-track threshold
	RouteStandard      Route = "Standard Processing" // Damage at or above the threshold
)

// RoutingDecision pairs the chosen route with the reasoning of the single
// rule that fired. Reasoning is always non-empty.
type RoutingDecision struct {
	Route     Route  `json:"route"`
	Reasoning string `json:"reasoning"`
}

// ClaimResult is the terminal value of a pipeline run. The JSON key names
// are a contract consumed by callers and must not change.
type ClaimResult struct {
	ExtractedFields     FieldMap `json:"extractedFields"`
	MissingFields       []string `json:"missingFields"`
	RecommendedRoute    Route    `json:"recommendedRoute"`
	Reasoning           string   `json:"reasoning"`
	ProcessingTimestamp string   `json:"processingTimestamp"`
	SourceFile          string   `json:"sourceFile,omitempty"`
}
