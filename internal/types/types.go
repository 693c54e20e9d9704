package types

import (
	"strings"
)

// Action is the intent recognised in a command.
type Action string

const (
	ActionBuy     Action = "buy"
	ActionSell    Action = "sell"
	ActionNews    Action = "news"
	ActionUnknown Action = "unknown"
)

// IsOrder reports whether the action describes a buy or sell order.
func (a Action) IsOrder() bool {
	return a == ActionBuy || a == ActionSell
}

// Intent is the structured reading of one free-text command.
// Optional fields are left empty (or nil) when they could not be found.
type Intent struct {
	Action   Action `json:"action"`
	Ticker   string `json:"ticker,omitempty"`
	Quantity *int   `json:"quantity,omitempty"`
	Account  string `json:"account,omitempty"`
	RawText  string `json:"raw_text"`
}

// Order converts the intent into an order record for validation and rendering.
func (i Intent) Order() Order {
	o := Order{
		Action:  string(i.Action),
		Ticker:  i.Ticker,
		Account: i.Account,
	}
	if i.Quantity != nil {
		q := float64(*i.Quantity)
		o.Quantity = &q
	}
	return o
}

// Order is a buy/sell request as handed to the validator and formatters.
// Quantity stays numeric as received so that non-integral sizes can be rejected.
type Order struct {
	Action   string   `json:"action" yaml:"action"`
	Ticker   string   `json:"ticker" yaml:"ticker"`
	Quantity *float64 `json:"quantity,omitempty" yaml:"quantity"`
	Account  string   `json:"account,omitempty" yaml:"account"`
	Type     string   `json:"type,omitempty" yaml:"type"`
}

// Severity classifies a validation issue.
type Severity string

const (
	SeverityError    Severity = "error"
	SeverityAdvisory Severity = "advisory"
)

// Issue is a single validation finding.
type Issue struct {
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// Blocking reports whether the issue invalidates the order.
func (i Issue) Blocking() bool {
	return i.Severity != SeverityAdvisory
}

func (i Issue) String() string {
	if i.Blocking() {
		return "❌ " + i.Message
	}
	return "⚠️ " + i.Message
}

// Verdict is the outcome of validating an order.
type Verdict struct {
	Valid  bool    `json:"valid"`
	Issues []Issue `json:"issues,omitempty"`
}

// Summary joins all issues in encounter order.
func (v Verdict) Summary() string {
	if len(v.Issues) == 0 {
		return "✅ Order is valid"
	}
	parts := make([]string, len(v.Issues))
	for i, issue := range v.Issues {
		parts[i] = issue.String()
	}
	return strings.Join(parts, " | ")
}

// Errors returns the blocking issues.
func (v Verdict) Errors() []Issue {
	var out []Issue
	for _, issue := range v.Issues {
		if issue.Blocking() {
			out = append(out, issue)
		}
	}
	return out
}

// Advisories returns the non-blocking issues.
func (v Verdict) Advisories() []Issue {
	var out []Issue
	for _, issue := range v.Issues {
		if !issue.Blocking() {
			out = append(out, issue)
		}
	}
	return out
}

// NewsItem is one headline returned by the news collaborator.
type NewsItem struct {
	Title        string `json:"title"`
	Link         string `json:"link"`
	Source       string `json:"source"`
	RelativeTime string `json:"relative_time"`
	Simulated    bool   `json:"simulated"`
	Query        string `json:"query,omitempty"`
}

// Messages holds the rendered variants of a valid order.
type Messages struct {
	Confirmation string `json:"confirmation"`
	Simple       string `json:"simple"`
	Broker       string `json:"broker"`
}

// Result is the outcome of one pipeline run over a command line.
type Result struct {
	Command  string     `json:"command"`
	Intent   Intent     `json:"intent"`
	Verdict  *Verdict   `json:"verdict,omitempty"`
	Messages *Messages  `json:"messages,omitempty"`
	News     []NewsItem `json:"news,omitempty"`
	Reply    string     `json:"reply"`
	Outcome  string     `json:"outcome"`
}
