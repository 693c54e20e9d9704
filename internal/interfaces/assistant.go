package interfaces

import (
	"context"

	"order-assistant/internal/types"
)

type Assistant interface {
	// Process runs one command line through the pipeline.
	Process(ctx context.Context, command string) (*types.Result, error)

	// ProcessOrder validates and renders an already structured order.
	ProcessOrder(ctx context.Context, order types.Order) (*types.Result, error)
}
