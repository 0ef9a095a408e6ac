// Package route maps an extracted claim to exactly one processing queue.
// The rules form a strictly ordered chain: the first rule that fires
// decides the route and supplies the whole reasoning string; later rules
// are never consulted and never override.
package route

import (
	"fmt"
	"strings"

	"github.com/avolkov/fnoltriage/internal/classify"
	"github.com/avolkov/fnoltriage/internal/model"
)

// Input is everything the rule chain may consult.
type Input struct {
	Fields  model.FieldMap
	Missing []string
	Text    string
}

// rule is one link in the chain. eval returns ok=false to pass control to
// the next rule.
type rule struct {
	name string
	eval func(in Input) (model.RoutingDecision, bool)
}

// Engine evaluates the routing rule chain.
type Engine struct {
	threshold float64
	fraud     *classify.FraudDetector
	rules     []rule
}

// NewEngine creates a routing engine from the routing config.
func NewEngine(cfg model.RoutingConfig) *Engine {
	e := &Engine{
		threshold: cfg.FastTrackThreshold,
		fraud:     classify.NewFraudDetector(cfg.FraudKeywords, cfg.SuspiciousPatterns),
	}
	e.rules = []rule{
		{name: "missing-fields", eval: e.missingFields},
		{name: "fraud-indicators", eval: e.fraudIndicators},
		{name: "injury", eval: e.injury},
		{name: "damage-estimate", eval: e.damageEstimate},
	}
	return e
}

// Route returns the single routing decision for the claim. The final rule
// always fires, so a decision with non-empty reasoning is guaranteed.
func (e *Engine) Route(in Input) model.RoutingDecision {
	for _, r := range e.rules {
		if decision, ok := r.eval(in); ok {
			return decision
		}
	}
	// The damage-estimate rule is total; this is unreachable.
	return model.RoutingDecision{
		Route:     model.RouteManualReview,
		Reasoning: "No routing rule fired - requires manual review",
	}
}

// missingFields routes incomplete claims to Manual Review. Dominates every
// other signal.
func (e *Engine) missingFields(in Input) (model.RoutingDecision, bool) {
	if len(in.Missing) == 0 {
		return model.RoutingDecision{}, false
	}
	return model.RoutingDecision{
		Route:     model.RouteManualReview,
		Reasoning: "Missing mandatory fields: " + strings.Join(in.Missing, ", "),
	}, true
}

// fraudIndicators routes suspicious claims to the Investigation Queue.
func (e *Engine) fraudIndicators(in Input) (model.RoutingDecision, bool) {
	if !e.fraud.Detect(in.Text) {
		return model.RoutingDecision{}, false
	}
	return model.RoutingDecision{
		Route:     model.RouteInvestigation,
		Reasoning: "Potential fraud indicators detected in claim description or documentation",
	}, true
}

// injury routes injury claims to the Specialist Queue.
func (e *Engine) injury(in Input) (model.RoutingDecision, bool) {
	if !strings.EqualFold(in.Fields.GetString(model.FieldClaimType), string(model.ClaimTypeInjury)) {
		return model.RoutingDecision{}, false
	}
	return model.RoutingDecision{
		Route:     model.RouteSpecialist,
		Reasoning: "Claim involves injury and requires specialist medical review",
	}, true
}

// damageEstimate is the terminal rule. Damage strictly below the threshold
// fast-tracks the claim, at or above goes to standard processing, and a
// missing estimate falls back to Manual Review. Exactly the threshold does
// not qualify for Fast-Track.
func (e *Engine) damageEstimate(in Input) (model.RoutingDecision, bool) {
	amount, ok := in.Fields.Damage()
	if !ok || amount <= 0 {
		return model.RoutingDecision{
			Route:     model.RouteManualReview,
			Reasoning: "No damage estimate provided - requires manual assessment",
		}, true
	}

	if amount < e.threshold {
		return model.RoutingDecision{
			Route: model.RouteFastTrack,
			Reasoning: fmt.Sprintf("Estimated damage ($%s) is below fast-track threshold ($%s)",
				formatAmount(amount), formatThreshold(e.threshold)),
		}, true
	}

	return model.RoutingDecision{
		Route: model.RouteStandard,
		Reasoning: fmt.Sprintf("Estimated damage ($%s) exceeds fast-track threshold ($%s). Requires standard review process",
			formatAmount(amount), formatThreshold(e.threshold)),
	}, true
}

// formatAmount renders a dollar amount with comma grouping and two
// decimals, e.g. 1200 -> "1,200.00".
func formatAmount(amount float64) string {
	s := fmt.Sprintf("%.2f", amount)
	dot := strings.Index(s, ".")
	return groupThousands(s[:dot]) + s[dot:]
}

// formatThreshold renders the threshold without decimals, e.g. "25,000".
func formatThreshold(amount float64) string {
	return groupThousands(fmt.Sprintf("%.0f", amount))
}

// groupThousands inserts commas into a plain digit string.
func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(",")
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
