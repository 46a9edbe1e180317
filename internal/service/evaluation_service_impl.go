package service

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/alexanderramin/ideefase/internal/contract"
	"github.com/alexanderramin/ideefase/internal/domain"
	"github.com/alexanderramin/ideefase/internal/evaluator"
	"github.com/google/uuid"
)

type evaluationService struct {
	rules    domain.Rules
	observer UseCaseObserver
}

func NewEvaluationService(rules domain.Rules, observers ...UseCaseObserver) EvaluationService {
	return &evaluationService{
		rules:    rules,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *evaluationService) Evaluate(ctx context.Context, req contract.EvaluateRequest) (resp *contract.EvaluateResponse, err error) {
	startedAt := time.Now().UTC()
	sub := req.Submission
	if sub.Variant == "" {
		sub.Variant = domain.VariantFrontend
	}
	fields := map[string]any{
		"evaluation_id": uuid.New().String(),
		"variant":       string(sub.Variant),
	}
	defer observe(ctx, s.observer, "evaluate", startedAt, fields, &err)

	if err = validateSubmission(sub); err != nil {
		return nil, err
	}

	rules := s.rules
	if req.Rules != nil {
		rules = *req.Rules
	}

	result := evaluator.Evaluate(sub, rules)
	text := result.Text()

	fields["verdict"] = string(result.Verdict)
	fields["auto_verdict"] = string(result.AutoVerdict)
	fields["overridden"] = result.Overridden
	fields["chars"] = utf8.RuneCountInString(text)

	return &contract.EvaluateResponse{
		Result:    result,
		Text:      text,
		CharCount: utf8.RuneCountInString(text),
	}, nil
}

// validateSubmission rejects enum values the evaluator would otherwise
// silently treat as Frontend or as no override.
func validateSubmission(s domain.Submission) error {
	switch s.Variant {
	case domain.VariantFrontend, domain.VariantBackend, domain.VariantFullstack:
	default:
		return &contract.EvaluateError{
			Code:    contract.EvaluateErrInvalidVariant,
			Message: "unknown variant " + quote(string(s.Variant)),
		}
	}
	if v := s.ManualVerdict; v != nil && *v != domain.VerdictGo && *v != domain.VerdictNoGo {
		return &contract.EvaluateError{
			Code:    contract.EvaluateErrInvalidVerdict,
			Message: "unknown verdict " + quote(string(*v)),
		}
	}
	return nil
}
