// Package intent turns free-text commands in Portuguese into structured intents.
//
// Commands it understands:
//
//	"compra 100 PETR4 conta 12345"
//	"notícias VALE3"
//	"venda 50 ITUB4"
package intent

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"

	"order-assistant/internal/textutil"
	"order-assistant/internal/types"
)

// AccountKeyword introduces the account identifier in a command.
const AccountKeyword = "conta"

// rule maps a keyword set to the action it selects. Rules in the same group are
// exclusive (first match wins); a later group overrides an earlier one.
type rule struct {
	group    int
	keywords []string
	action   types.Action
}

// rules are evaluated in order: news first, then buy/sell so that an order
// keyword always overrides a news keyword.
var rules = []rule{
	{group: 0, keywords: []string{"noticia", "notícia", "noticias", "notícias", "news"}, action: types.ActionNews},
	{group: 1, keywords: []string{"compra", "comprar"}, action: types.ActionBuy},
	{group: 1, keywords: []string{"venda", "vender"}, action: types.ActionSell},
}

var tickerPattern = regexp.MustCompile(`[a-z]{4}\d{1,2}`)

// Keywords returns every action keyword, in rule order.
func Keywords() []string {
	var out []string
	for _, r := range rules {
		out = append(out, r.keywords...)
	}
	return out
}

// Extract reads an intent out of text. It never fails: anything it cannot find
// is left empty and the action defaults to unknown.
//
// The quantity is the first digit run anywhere in the text, so a ticker suffix
// that appears before the real quantity ("PETR4 100") is read as the quantity.
func Extract(text string) types.Intent {
	lower := strings.ToLower(text)

	in := types.Intent{
		Action:  detectAction(lower),
		RawText: text,
	}

	if m := tickerPattern.FindString(lower); m != "" {
		in.Ticker = strings.ToUpper(m)
	}

	if run, ok := textutil.FirstDigitRun(lower); ok {
		n, err := strconv.Atoi(run)
		if errors.Is(err, strconv.ErrRange) {
			// too large for an int: keep it present so validation flags it as very high
			n = math.MaxInt
			err = nil
		}
		if err == nil {
			in.Quantity = &n
		}
	}

	in.Account = extractAccount(lower)
	return in
}

func detectAction(lower string) types.Action {
	action := types.ActionUnknown
	matchedGroup := -1
	for _, r := range rules {
		if r.group == matchedGroup {
			continue
		}
		if containsAny(lower, r.keywords) {
			action = r.action
			matchedGroup = r.group
		}
	}
	return action
}

func extractAccount(lower string) string {
	_, after, found := strings.Cut(lower, AccountKeyword)
	if !found {
		return ""
	}
	run, _ := textutil.FirstDigitRun(strings.TrimSpace(after))
	return run
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
