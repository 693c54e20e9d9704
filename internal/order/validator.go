package order

import (
	"math"
	"strings"

	"order-assistant/internal/types"
)

const (
	// MinTickerLength is the shortest ticker accepted by Validate. It is looser
	// than the extractor's format so "present but malformed" gets its own message.
	MinTickerLength = 4
	// LargeQuantity is the size above which an advisory is raised.
	LargeQuantity = 100000
)

const (
	msgTickerMissing     = "ticker not specified"
	msgTickerInvalid     = "invalid ticker"
	msgQuantityMissing   = "quantity not specified"
	msgQuantityFraction  = "quantity must be a whole number"
	msgQuantityNotPos    = "quantity must be greater than zero"
	msgQuantityLarge     = "quantity very high - confirm intentional?"
	msgActionUnsupported = "action must be 'buy' or 'sell'"
)

// Validate checks an order and collects every issue found. The order is valid
// unless at least one blocking issue was raised; a large quantity only adds an
// advisory.
func Validate(o types.Order) types.Verdict {
	var issues []types.Issue
	block := func(msg string) {
		issues = append(issues, types.Issue{Message: msg, Severity: types.SeverityError})
	}

	ticker := strings.TrimSpace(o.Ticker)
	switch {
	case ticker == "":
		block(msgTickerMissing)
	case len(ticker) < MinTickerLength:
		block(msgTickerInvalid)
	}

	switch q := o.Quantity; {
	case q == nil:
		block(msgQuantityMissing)
	case math.IsNaN(*q) || math.IsInf(*q, 0) || *q != math.Trunc(*q):
		block(msgQuantityFraction)
	case *q <= 0:
		block(msgQuantityNotPos)
	case *q > LargeQuantity:
		issues = append(issues, types.Issue{Message: msgQuantityLarge, Severity: types.SeverityAdvisory})
	}

	if !isOrderAction(o.Action) {
		block(msgActionUnsupported)
	}

	v := types.Verdict{Valid: true, Issues: issues}
	for _, issue := range issues {
		if issue.Blocking() {
			v.Valid = false
			break
		}
	}
	return v
}

func isOrderAction(action string) bool {
	a := strings.ToLower(strings.TrimSpace(action))
	return a == string(types.ActionBuy) || a == string(types.ActionSell)
}
