package app

import (
	"github.com/alexanderramin/ideefase/internal/domain"
	"github.com/alexanderramin/ideefase/internal/evaluator"
)

type EvaluateRequest struct {
	Submission domain.Submission
	// Rules overrides the service's configured thresholds when set.
	Rules *domain.Rules
}

func NewEvaluateRequest(s domain.Submission) EvaluateRequest {
	return EvaluateRequest{Submission: s}
}

type EvaluateResponse struct {
	Result evaluator.Result
	Text   string
	// CharCount is the length of Text in characters, as shown next to the
	// preview.
	CharCount int
}

type EvaluateErrorCode string

const (
	EvaluateErrInvalidVariant EvaluateErrorCode = "INVALID_VARIANT"
	EvaluateErrInvalidVerdict EvaluateErrorCode = "INVALID_VERDICT"
)

type EvaluateError struct {
	Code    EvaluateErrorCode
	Message string
}

func (e *EvaluateError) Error() string {
	return string(e.Code) + ": " + e.Message
}
