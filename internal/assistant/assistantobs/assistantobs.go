package assistantobs

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"order-assistant/internal/interfaces"
	"order-assistant/internal/logger"
	"order-assistant/internal/trace"
	"order-assistant/internal/types"
)

type observableAssistant struct {
	assistant interfaces.Assistant
}

var _ interfaces.Assistant = (*observableAssistant)(nil)

// Wrap wraps an assistant with observability middleware
func Wrap(a interfaces.Assistant) interfaces.Assistant {
	return &observableAssistant{
		assistant: a,
	}
}

func (oa *observableAssistant) Process(ctx context.Context, command string) (*types.Result, error) {
	ctx, span := trace.StartSpan(ctx, "assistant.Process")
	defer span.End()

	start := time.Now()
	logger.DebugSkip(ctx, 1, "Processing command", "command", command)

	res, err := oa.assistant.Process(ctx, command)
	if err != nil {
		logger.ErrorWithErrSkip(ctx, 1, "Command processing failed", err,
			"command", command,
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return nil, err
	}

	span.SetAttributes(
		attribute.String("action", string(res.Intent.Action)),
		attribute.String("ticker", res.Intent.Ticker),
		attribute.String("outcome", res.Outcome),
	)
	logger.DebugSkip(ctx, 1, "Command processed",
		"action", res.Intent.Action,
		"outcome", res.Outcome,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return res, nil
}

func (oa *observableAssistant) ProcessOrder(ctx context.Context, o types.Order) (*types.Result, error) {
	ctx, span := trace.StartSpan(ctx, "assistant.ProcessOrder")
	defer span.End()
	span.SetAttributes(attribute.String("action", o.Action), attribute.String("ticker", o.Ticker))

	start := time.Now()
	res, err := oa.assistant.ProcessOrder(ctx, o)
	if err != nil {
		logger.ErrorWithErrSkip(ctx, 1, "Order processing failed", err,
			"ticker", o.Ticker,
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return nil, err
	}

	span.SetAttributes(attribute.String("outcome", res.Outcome))
	logger.InfoSkip(ctx, 1, "Structured order processed",
		"ticker", o.Ticker,
		"outcome", res.Outcome,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return res, nil
}
