package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/diillson/aws-cost-report/internal/domain/entity"
	"github.com/diillson/aws-cost-report/internal/domain/repository"
	"github.com/diillson/aws-cost-report/internal/shared/types"
)

const htmlContentType = "text/html; charset=utf-8"

// ReportSettings holds the per-deployment options of the report.
type ReportSettings struct {
	SenderEmail    string
	RecipientEmail string
	ForecastDays   int
	IncludeBudgets bool
	ArchivePrefix  string
	// Now defaults to time.Now.
	Now func() time.Time
}

// SettingsFromConfig builds ReportSettings from the application config.
func SettingsFromConfig(cfg *types.Config) ReportSettings {
	return ReportSettings{
		SenderEmail:    cfg.SenderEmail,
		RecipientEmail: cfg.RecipientEmail,
		ForecastDays:   cfg.ForecastDays,
		IncludeBudgets: cfg.IncludeBudgets,
		ArchivePrefix:  cfg.ArchivePrefix,
	}
}

// ReportUseCase generates the daily cost report and delivers it by email.
type ReportUseCase struct {
	costRepo    repository.CostRepository
	mailRepo    repository.MailRepository
	archiveRepo repository.ArchiveRepository
	renderer    repository.ReportRenderer
	console     types.ConsoleInterface
	settings    ReportSettings
}

// NewReportUseCase creates a new report use case. archiveRepo may be nil,
// in which case reports are not archived.
func NewReportUseCase(
	costRepo repository.CostRepository,
	mailRepo repository.MailRepository,
	archiveRepo repository.ArchiveRepository,
	renderer repository.ReportRenderer,
	console types.ConsoleInterface,
	settings ReportSettings,
) *ReportUseCase {
	if settings.ForecastDays <= 0 {
		settings.ForecastDays = types.DefaultForecastDays
	}
	if settings.Now == nil {
		settings.Now = time.Now
	}
	return &ReportUseCase{
		costRepo:    costRepo,
		mailRepo:    mailRepo,
		archiveRepo: archiveRepo,
		renderer:    renderer,
		console:     console,
		settings:    settings,
	}
}

// WithConsole returns a copy of the use case that logs to c.
func (uc *ReportUseCase) WithConsole(c types.ConsoleInterface) *ReportUseCase {
	clone := *uc
	clone.console = c
	return &clone
}

// AccountID resolves the account the credentials belong to.
func (uc *ReportUseCase) AccountID(ctx context.Context) (string, error) {
	return uc.costRepo.GetAccountID(ctx)
}

// BuildSubject returns the email subject for the given account and report date.
func BuildSubject(accountID, date string) string {
	return fmt.Sprintf("AWS Cost Summary for %s - %s", accountID, date)
}

// GenerateReport busca os dados de custo e monta o relatório agregado.
func (uc *ReportUseCase) GenerateReport(ctx context.Context, accountID string) (entity.CostReport, error) {
	now := uc.settings.Now().UTC()
	periods := BuildReportPeriods(now, uc.settings.ForecastDays)

	var (
		serviceLines  []entity.CostLine
		dailyBuckets  []entity.CostLine
		forecastTotal entity.CostLine
		wg            sync.WaitGroup
	)
	errChan := make(chan error, 3)

	// As três consultas são independentes
	wg.Add(1)
	go func() {
		defer wg.Done()
		lines, err := uc.costRepo.GetServiceCosts(ctx, periods.MonthToDate)
		if err != nil {
			errChan <- fmt.Errorf("failed to get cost by service: %w", err)
			return
		}
		serviceLines = lines
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		line, err := uc.costRepo.GetForecast(ctx, periods.Forecast)
		if err != nil {
			errChan <- fmt.Errorf("failed to get cost forecast: %w", err)
			return
		}
		forecastTotal = line
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		buckets, err := uc.costRepo.GetPeriodTotals(ctx, periods.PriorDay)
		if err != nil {
			errChan <- fmt.Errorf("failed to get daily cost: %w", err)
			return
		}
		dailyBuckets = buckets
	}()

	wg.Wait()
	close(errChan)

	if len(errChan) > 0 {
		return entity.CostReport{}, <-errChan
	}

	summary, err := AggregateServiceCosts(serviceLines)
	if err != nil {
		return entity.CostReport{}, err
	}

	summary.Forecast, err = ForecastCost(forecastTotal)
	if err != nil {
		return entity.CostReport{}, err
	}

	summary.Daily, err = DailyCost(dailyBuckets)
	if err != nil {
		return entity.CostReport{}, err
	}

	report := entity.CostReport{
		AccountID:   accountID,
		GeneratedAt: now,
		Periods:     periods,
		Summary:     summary,
	}

	if uc.settings.IncludeBudgets {
		budgets, err := uc.costRepo.GetBudgets(ctx, accountID)
		if err != nil {
			uc.console.LogWarning("Could not get budgets for account %s: %s", accountID, err)
		} else {
			report.Budgets = budgets
		}
	}

	return report, nil
}

// RenderReport renderiza o relatório em HTML.
func (uc *ReportUseCase) RenderReport(report entity.CostReport) (string, error) {
	body, err := uc.renderer.RenderHTML(report)
	if err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}
	return body, nil
}

// Run gera, renderiza e envia o relatório. Toda falha resulta em um
// InvocationResult 500; o erro retornado embrulha ErrReportGeneration ou
// ErrDelivery. Nenhum email é enviado se a geração falhar.
func (uc *ReportUseCase) Run(ctx context.Context, accountID string) (entity.InvocationResult, error) {
	uc.console.LogInfo("Generating cost report for account %s", accountID)

	report, err := uc.GenerateReport(ctx, accountID)
	if err != nil {
		return uc.generationFailed(err)
	}
	return uc.Deliver(ctx, report)
}

// Deliver renderiza um relatório já gerado, envia por email e arquiva a cópia.
func (uc *ReportUseCase) Deliver(ctx context.Context, report entity.CostReport) (entity.InvocationResult, error) {
	body, err := uc.RenderReport(report)
	if err != nil {
		return uc.generationFailed(err)
	}

	email := entity.Email{
		From:     uc.settings.SenderEmail,
		To:       uc.settings.RecipientEmail,
		Subject:  BuildSubject(report.AccountID, report.ReportDate()),
		HTMLBody: body,
	}

	messageID, err := uc.mailRepo.SendEmail(ctx, email)
	if err != nil {
		err = fmt.Errorf("%w: %w", types.ErrDelivery, err)
		uc.console.LogError("Error sending email: %s", err)
		return entity.FailureResult(err), err
	}
	uc.console.LogSuccess("Email sent successfully. Message ID: %s", messageID)

	uc.archive(ctx, report, body)

	return entity.SuccessResult(), nil
}

func (uc *ReportUseCase) generationFailed(err error) (entity.InvocationResult, error) {
	err = fmt.Errorf("%w: %w", types.ErrReportGeneration, err)
	uc.console.LogError("An error occurred in the handler: %s", err)
	return entity.FailureResult(err), err
}

// archive guarda uma cópia do HTML. Falhas aqui não alteram o resultado.
func (uc *ReportUseCase) archive(ctx context.Context, report entity.CostReport, body string) {
	if uc.archiveRepo == nil {
		return
	}

	key := ArchiveKey(uc.settings.ArchivePrefix, report.AccountID, report.ReportDate())
	location, err := uc.archiveRepo.Store(ctx, key, []byte(body), htmlContentType)
	if err != nil {
		uc.console.LogWarning("Failed to archive report to %s: %s", key, err)
		return
	}
	uc.console.LogInfo("Report archived to %s", location)
}

// ArchiveKey returns the object key of an archived report.
func ArchiveKey(prefix, accountID, date string) string {
	return fmt.Sprintf("%s%s/%s.html", prefix, accountID, date)
}
