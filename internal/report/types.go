// Package report renders a market snapshot, spot quote, and headline set
// into one of four textual output variants. Each variant assembles an
// ordered list of labeled sections; the cosmetic framing (rules, box rails)
// is applied only when the sections are joined into the final text.
package report

// OutputMode selects the report variant.
type OutputMode string

// Output modes accepted by the analysis engine.
const (
	ModeFullTradePlan OutputMode = "full trade plan"
	ModeQuickBias     OutputMode = "quick bias"
	ModeRiskOnly      OutputMode = "risk-only"
	ModeNewsBriefing  OutputMode = "news briefing"
)

// Section is one labeled block of report output.
type Section struct {
	Title string   // optional heading line
	Rule  int      // width of the '=' rule drawn under the title, 0 for none
	Boxed bool     // wrap the body lines in box rails
	Lines []string // body lines, rendered verbatim
}
