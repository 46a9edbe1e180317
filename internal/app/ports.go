package app

import "context"

type EvaluateUseCase interface {
	Evaluate(ctx context.Context, req EvaluateRequest) (*EvaluateResponse, error)
}

type ExportUseCase interface {
	Export(ctx context.Context, text string) error
}
