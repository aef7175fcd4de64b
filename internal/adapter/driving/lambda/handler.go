package lambda

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/diillson/aws-cost-report/internal/application/usecase"
	"github.com/diillson/aws-cost-report/internal/domain/entity"
	"github.com/diillson/aws-cost-report/internal/shared/types"
	"github.com/diillson/aws-cost-report/pkg/console"
)

// Handler é o ponto de entrada da função agendada.
type Handler struct {
	useCase *usecase.ReportUseCase
	console *console.StructuredConsole
}

// NewHandler cria o handler da Lambda.
func NewHandler(useCase *usecase.ReportUseCase, c *console.StructuredConsole) *Handler {
	return &Handler{useCase: useCase, console: c}
}

// Handle gera e envia o relatório. O evento do EventBridge é ignorado.
// Falhas viram um InvocationResult 500 e o erro retornado é sempre nil,
// para que o agendador não reexecute a invocação.
func (h *Handler) Handle(ctx context.Context, _ json.RawMessage) (entity.InvocationResult, error) {
	invocationID := uuid.NewString()
	arn := ""
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		if lc.AwsRequestID != "" {
			invocationID = lc.AwsRequestID
		}
		arn = lc.InvokedFunctionArn
	}

	logger := h.console.With(zap.String("invocation_id", invocationID))

	accountID, err := AccountIDFromARN(arn)
	if err != nil {
		logger.LogError("An error occurred in the handler: %s", err)
		return entity.FailureResult(err), nil
	}

	result, err := h.useCase.WithConsole(logger).Run(ctx, accountID)
	if err != nil {
		logger.Logger().Debug("invocation failed",
			zap.Int("status_code", result.StatusCode),
			zap.Error(err))
	}
	return result, nil
}

// AccountIDFromARN extrai o ID da conta de um ARN de função
// (arn:aws:lambda:region:account:function:name).
func AccountIDFromARN(arn string) (string, error) {
	parts := strings.Split(arn, ":")
	if len(parts) < 6 || parts[0] != "arn" || parts[4] == "" {
		return "", fmt.Errorf("%w: %q", types.ErrInvalidFunctionARN, arn)
	}
	return parts[4], nil
}
