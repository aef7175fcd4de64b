package main

import (
	"fmt"
	"os"

	awslambda "github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"

	"github.com/diillson/aws-cost-report/internal/adapter/driven/aws"
	"github.com/diillson/aws-cost-report/internal/adapter/driven/config"
	"github.com/diillson/aws-cost-report/internal/adapter/driven/render"
	"github.com/diillson/aws-cost-report/internal/adapter/driving/lambda"
	"github.com/diillson/aws-cost-report/internal/application/usecase"
	"github.com/diillson/aws-cost-report/internal/domain/repository"
	"github.com/diillson/aws-cost-report/pkg/console"
	"github.com/diillson/aws-cost-report/pkg/version"
)

func main() {
	cfg, err := config.NewConfigRepository().LoadFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, err := console.NewLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Falha na inicialização a frio se faltar configuração obrigatória
	if err := cfg.Validate(true); err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	renderer, err := render.NewHTMLRenderer()
	if err != nil {
		logger.Fatal("failed to load report template", zap.Error(err))
	}

	// Clientes criados uma vez e reaproveitados entre invocações
	clients := aws.NewClientFactory("")

	var archiveRepo repository.ArchiveRepository
	if cfg.ArchiveBucket != "" {
		archiveRepo = aws.NewArchiveRepository(clients, cfg.ArchiveBucket)
	}

	structured := console.NewStructuredConsole(logger.With(zap.String("version", version.FormatVersion())))

	useCase := usecase.NewReportUseCase(
		aws.NewCostRepository(clients, cfg.CostExplorerRegion),
		aws.NewMailRepository(clients, cfg.SESRegion),
		archiveRepo,
		renderer,
		structured,
		usecase.SettingsFromConfig(cfg),
	)

	awslambda.Start(lambda.NewHandler(useCase, structured).Handle)
}
