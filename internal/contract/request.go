package contract

import (
	"github.com/alexanderramin/ideefase/internal/app"
	"github.com/alexanderramin/ideefase/internal/domain"
)

func NewEvaluateRequest(s domain.Submission) EvaluateRequest {
	return app.NewEvaluateRequest(s)
}
