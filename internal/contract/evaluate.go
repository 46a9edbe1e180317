package contract

import "github.com/alexanderramin/ideefase/internal/app"

type EvaluateRequest = app.EvaluateRequest

type EvaluateResponse = app.EvaluateResponse

type EvaluateErrorCode = app.EvaluateErrorCode

const (
	EvaluateErrInvalidVariant EvaluateErrorCode = app.EvaluateErrInvalidVariant
	EvaluateErrInvalidVerdict EvaluateErrorCode = app.EvaluateErrInvalidVerdict
)

type EvaluateError = app.EvaluateError
