package lambda

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/diillson/aws-cost-report/internal/adapter/driven/render"
	"github.com/diillson/aws-cost-report/internal/application/usecase"
	"github.com/diillson/aws-cost-report/internal/domain/entity"
	"github.com/diillson/aws-cost-report/internal/shared/types"
	"github.com/diillson/aws-cost-report/pkg/console"
)

const testARN = "arn:aws:lambda:ap-southeast-1:123456789012:function:daily-cost-report"

type stubCostRepository struct {
	forecastErr error
}

func (s *stubCostRepository) GetServiceCosts(context.Context, entity.CostPeriod) ([]entity.CostLine, error) {
	return []entity.CostLine{{Key: "Amazon EC2", Amount: "800.0"}}, nil
}

func (s *stubCostRepository) GetPeriodTotals(context.Context, entity.CostPeriod) ([]entity.CostLine, error) {
	return []entity.CostLine{{Key: "2025-03-14", Amount: "42.1"}}, nil
}

func (s *stubCostRepository) GetForecast(context.Context, entity.CostPeriod) (entity.CostLine, error) {
	if s.forecastErr != nil {
		return entity.CostLine{}, s.forecastErr
	}
	return entity.CostLine{Key: "Forecast", Amount: "2000.0"}, nil
}

func (s *stubCostRepository) GetBudgets(context.Context, string) ([]entity.BudgetInfo, error) {
	return nil, nil
}

func (s *stubCostRepository) GetAccountID(context.Context) (string, error) {
	return "", errors.New("not used")
}

type stubMailRepository struct {
	sent []entity.Email
}

func (s *stubMailRepository) SendEmail(_ context.Context, email entity.Email) (string, error) {
	s.sent = append(s.sent, email)
	return "msg-1", nil
}

func newTestHandler(t *testing.T, costs *stubCostRepository) (*Handler, *stubMailRepository, *observer.ObservedLogs) {
	t.Helper()

	renderer, err := render.NewHTMLRenderer()
	require.NoError(t, err)

	core, logs := observer.New(zapcore.DebugLevel)
	structured := console.NewStructuredConsole(zap.New(core))
	mail := &stubMailRepository{}

	uc := usecase.NewReportUseCase(costs, mail, nil, renderer, structured, usecase.ReportSettings{
		SenderEmail:    "sender@example.com",
		RecipientEmail: "finance@example.com",
		Now:            func() time.Time { return time.Date(2025, 3, 15, 6, 0, 0, 0, time.UTC) },
	})
	return NewHandler(uc, structured), mail, logs
}

func invocationContext(arn string) context.Context {
	return lambdacontext.NewContext(context.Background(), &lambdacontext.LambdaContext{
		AwsRequestID:       "req-42",
		InvokedFunctionArn: arn,
	})
}

func TestAccountIDFromARN(t *testing.T) {
	id, err := AccountIDFromARN(testARN)
	require.NoError(t, err)
	assert.Equal(t, "123456789012", id)

	for _, arn := range []string{"", "not-an-arn", "arn:aws:lambda:us-east-1", "arn:aws:lambda:us-east-1::function:x"} {
		_, err := AccountIDFromARN(arn)
		assert.ErrorIs(t, err, types.ErrInvalidFunctionARN, arn)
	}
}

func TestHandle_Success(t *testing.T) {
	h, mail, logs := newTestHandler(t, &stubCostRepository{})

	result, err := h.Handle(invocationContext(testARN), nil)
	require.NoError(t, err)
	assert.Equal(t, entity.InvocationResult{StatusCode: http.StatusOK, Body: entity.MessageSent}, result)

	require.Len(t, mail.sent, 1)
	assert.Equal(t, "AWS Cost Summary for 123456789012 - 2025-03-15", mail.sent[0].Subject)

	tagged := logs.FilterField(zap.String("invocation_id", "req-42"))
	assert.NotZero(t, tagged.Len())
}

func TestHandle_GenerationFailureReturnsResult(t *testing.T) {
	h, mail, _ := newTestHandler(t, &stubCostRepository{forecastErr: errors.New("DataUnavailableException")})

	result, err := h.Handle(invocationContext(testARN), nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, result.StatusCode)
	assert.Contains(t, result.Body, "DataUnavailableException")
	assert.Empty(t, mail.sent)
}

func TestHandle_MalformedARN(t *testing.T) {
	h, mail, logs := newTestHandler(t, &stubCostRepository{})

	result, err := h.Handle(invocationContext("bogus"), nil)
	require.NoError(t, err)
	assert.True(t, result.Failed())
	assert.Contains(t, result.Body, entity.MessageErrPrefix)
	assert.Empty(t, mail.sent)
	assert.Equal(t, 1, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
}

func TestHandle_NoLambdaContext(t *testing.T) {
	h, _, _ := newTestHandler(t, &stubCostRepository{})

	result, err := h.Handle(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, result.StatusCode)
}
