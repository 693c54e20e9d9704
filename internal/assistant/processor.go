// Package assistant runs one command line through extraction, validation and
// rendering, or routes it to the news collaborator.
package assistant

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/sahilm/fuzzy"

	"order-assistant/internal/auditlog"
	"order-assistant/internal/intent"
	"order-assistant/internal/interfaces"
	"order-assistant/internal/logger"
	"order-assistant/internal/news"
	"order-assistant/internal/order"
	"order-assistant/internal/store"
	"order-assistant/internal/textutil"
	"order-assistant/internal/types"
)

const (
	MissingTicker   = "could not identify the ticker (e.g. PETR4)"
	MissingQuantity = "could not identify the quantity"

	OutcomeReady        = "order ready"
	OutcomeRejected     = "order rejected"
	OutcomeIncomplete   = "order incomplete"
	OutcomeNews         = "news delivered"
	OutcomeNewsFailed   = "news failed"
	OutcomeNewsDisabled = "news disabled"
	OutcomeUnknown      = "not understood"

	minHintLength = 3
)

// Examples are the sample commands offered when a command is not understood.
var Examples = []string{
	"compra 100 PETR4 conta 12345",
	"notícias VALE3",
	"venda 50 ITUB4",
}

// Processor is the command pipeline. It holds no state between commands.
type Processor struct {
	news        interfaces.NewsFetcher
	audit       interfaces.AuditLogger
	user        string
	titleBudget int
}

var _ interfaces.Assistant = (*Processor)(nil)

// New builds a processor. A nil fetcher answers news commands with a
// "disabled" reply; a nil audit logger discards entries.
func New(cfg *store.Config, fetcher interfaces.NewsFetcher, audit interfaces.AuditLogger) *Processor {
	if cfg == nil {
		cfg = store.DefaultConfig()
	}
	if audit == nil {
		audit = auditlog.Nop{}
	}
	return &Processor{
		news:        fetcher,
		audit:       audit,
		user:        cfg.Assistant.User,
		titleBudget: cfg.News.TitleBudget,
	}
}

// Process interprets command and produces the reply for it. Problems with the
// command itself are part of the result; an error is only returned when ctx is
// already done.
func (p *Processor) Process(ctx context.Context, command string) (*types.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	in := intent.Extract(command)
	logger.Debug(ctx, "Intent extracted",
		"action", in.Action,
		"ticker", in.Ticker,
		"has_quantity", in.Quantity != nil,
		"account", in.Account,
	)
	if logger.IsDebugEnabled() {
		// only the first number is read as the quantity
		logger.Debug(ctx, "Numbers in command", "numbers", textutil.ExtractNumbers(command))
	}

	res := &types.Result{Command: command, Intent: in}
	switch {
	case in.Action.IsOrder():
		p.handleOrder(res)
	case in.Action == types.ActionNews:
		p.handleNews(ctx, res)
	default:
		p.handleUnknown(res)
	}

	var o *types.Order
	if in.Action.IsOrder() {
		ord := in.Order()
		o = &ord
	}
	p.record(ctx, res, o)
	return res, nil
}

// ProcessOrder validates and renders an order that arrived already structured.
func (p *Processor) ProcessOrder(ctx context.Context, o types.Order) (*types.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res := &types.Result{
		Command: describeOrder(o),
		Intent: types.Intent{
			Action:  types.Action(strings.ToLower(o.Action)),
			Ticker:  o.Ticker,
			Account: o.Account,
		},
	}
	var b strings.Builder
	fmt.Fprintf(&b, "✅ Order received: %s\n", res.Command)
	p.renderOrder(res, o, &b)

	p.record(ctx, res, &o)
	return res, nil
}

func (p *Processor) handleOrder(res *types.Result) {
	in := res.Intent

	var b strings.Builder
	fmt.Fprintf(&b, "✅ Action detected: %s\n", in.Action)

	var missing []string
	if in.Ticker == "" {
		missing = append(missing, MissingTicker)
	}
	if in.Quantity == nil {
		missing = append(missing, MissingQuantity)
	}
	if len(missing) > 0 {
		for _, m := range missing {
			fmt.Fprintf(&b, "❌ ERROR: %s\n", m)
		}
		res.Reply = strings.TrimRight(b.String(), "\n")
		res.Outcome = OutcomeIncomplete + ": " + strings.Join(missing, "; ")
		return
	}

	fmt.Fprintf(&b, "   📊 Ticker: %s\n", in.Ticker)
	fmt.Fprintf(&b, "   🔢 Quantity: %d\n", *in.Quantity)
	if in.Account != "" {
		fmt.Fprintf(&b, "   🏦 Account: %s\n", in.Account)
	}
	p.renderOrder(res, in.Order(), &b)
}

// renderOrder validates o and appends either the rendered messages or the
// list of issues to b, then stores the reply on res.
func (p *Processor) renderOrder(res *types.Result, o types.Order, b *strings.Builder) {
	v := order.Validate(o)
	res.Verdict = &v
	fmt.Fprintf(b, "   📋 Validation: %s\n", v.Summary())

	if !v.Valid {
		res.Reply = strings.TrimRight(b.String(), "\n")
		res.Outcome = OutcomeRejected + ": " + v.Summary()
		return
	}

	msgs := &types.Messages{
		Confirmation: order.FormatOrder(o),
		Simple:       order.FormatSimple(o),
		Broker:       order.FormatBrokerMessage(o),
	}
	res.Messages = msgs

	b.WriteString("\n💼 ORDER FORMATTED FOR THE BROKER:\n")
	b.WriteString(msgs.Confirmation)
	b.WriteString("\n📱 READY TO SEND:\n")
	b.WriteString(msgs.Broker)
	b.WriteString("\n\n✅ Suggested action: send this message to the broker")

	res.Reply = b.String()
	res.Outcome = OutcomeReady
	if adv := v.Advisories(); len(adv) > 0 {
		res.Outcome += " with advisory: " + adv[0].Message
	}
}

func (p *Processor) handleNews(ctx context.Context, res *types.Result) {
	ticker := res.Intent.Ticker

	var b strings.Builder
	if ticker != "" {
		fmt.Fprintf(&b, "📰 Fetching news for: %s\n\n", ticker)
	} else {
		b.WriteString("📰 General market news\n\n")
	}

	if p.news == nil {
		b.WriteString("News lookups are disabled.")
		res.Reply = b.String()
		res.Outcome = OutcomeNewsDisabled
		return
	}

	items, err := p.news.FetchNews(ctx, ticker)
	if err != nil {
		logger.ErrorWithErr(ctx, "News lookup failed", err, "ticker", ticker)
		fmt.Fprintf(&b, "❌ Could not fetch news: %v", err)
		res.Reply = b.String()
		res.Outcome = fmt.Sprintf("%s: %v", OutcomeNewsFailed, err)
		return
	}

	res.News = items
	b.WriteString(news.FormatDigest(items, ticker, p.titleBudget))
	res.Reply = b.String()
	res.Outcome = fmt.Sprintf("%s: %d items", OutcomeNews, len(items))
}

func (p *Processor) handleUnknown(res *types.Result) {
	var b strings.Builder
	b.WriteString("🤔 I did not understand the command.\n")
	if hint := suggestKeyword(res.Command); hint != "" {
		fmt.Fprintf(&b, "💡 Did you mean %q?\n", hint)
	}
	b.WriteString("💡 Try:")
	for _, ex := range Examples {
		fmt.Fprintf(&b, "\n   • '%s'", ex)
	}
	res.Reply = b.String()
	res.Outcome = OutcomeUnknown
}

// suggestKeyword fuzzy-matches the first word of command against the action
// keywords and returns the best candidate, or "".
func suggestKeyword(command string) string {
	words := strings.Fields(textutil.NormalizeText(command))
	if len(words) == 0 || len([]rune(words[0])) < minHintLength {
		return ""
	}
	matches := fuzzy.Find(words[0], intent.Keywords())
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Str
}

// record writes the audit entry and the structured command log line. Audit
// failures are logged and never reach the caller.
func (p *Processor) record(ctx context.Context, res *types.Result, o *types.Order) {
	logger.Command(ctx, string(res.Intent.Action), res.Intent.Ticker, res.Outcome)

	if err := p.audit.Command(p.user, res.Command, res.Outcome); err != nil {
		logger.ErrorWithErr(ctx, "Failed to write audit entry", fmt.Errorf("audit command: %w", err))
		return
	}
	var level auditlog.Level
	var msg string
	switch {
	case o != nil && res.Messages != nil:
		level, msg = auditlog.LevelSuccess, "Order ready: "+describeOrder(*o)
	case strings.HasPrefix(res.Outcome, OutcomeRejected):
		level, msg = auditlog.LevelWarning, "Order rejected: "+res.Verdict.Summary()
	case strings.HasPrefix(res.Outcome, OutcomeNewsFailed):
		level, msg = auditlog.LevelError, res.Outcome
	default:
		return
	}
	if err := p.audit.Write(level, msg); err != nil {
		logger.ErrorWithErr(ctx, "Failed to write audit entry", fmt.Errorf("audit %s: %w", strings.ToLower(string(level)), err))
	}
}

func describeOrder(o types.Order) string {
	qty := "?"
	if o.Quantity != nil {
		qty = strconv.FormatFloat(*o.Quantity, 'f', -1, 64)
	}
	ticker := o.Ticker
	if ticker == "" {
		ticker = "?"
	}
	action := o.Action
	if action == "" {
		action = "?"
	}
	return fmt.Sprintf("%s %s %s", action, qty, ticker)
}
