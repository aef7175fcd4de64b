package main

import (
	"fmt"
	"os"

	"github.com/diillson/aws-cost-report/internal/adapter/driven/aws"
	"github.com/diillson/aws-cost-report/internal/adapter/driven/config"
	"github.com/diillson/aws-cost-report/internal/adapter/driven/export"
	"github.com/diillson/aws-cost-report/internal/adapter/driven/render"
	"github.com/diillson/aws-cost-report/internal/adapter/driving/cli"
	"github.com/diillson/aws-cost-report/internal/application/usecase"
	"github.com/diillson/aws-cost-report/internal/domain/repository"
	"github.com/diillson/aws-cost-report/internal/shared/types"
	"github.com/diillson/aws-cost-report/pkg/version"
)

func main() {
	renderer, err := render.NewHTMLRenderer()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Os repositórios AWS dependem do perfil, resolvido só após ler as flags
	newReport := func(cfg *types.Config, c types.ConsoleInterface) *usecase.ReportUseCase {
		clients := aws.NewClientFactory(cfg.Profile)

		var archiveRepo repository.ArchiveRepository
		if cfg.ArchiveBucket != "" {
			archiveRepo = aws.NewArchiveRepository(clients, cfg.ArchiveBucket)
		}

		return usecase.NewReportUseCase(
			aws.NewCostRepository(clients, cfg.CostExplorerRegion),
			aws.NewMailRepository(clients, cfg.SESRegion),
			archiveRepo,
			renderer,
			c,
			usecase.SettingsFromConfig(cfg),
		)
	}

	app := cli.NewCLIApp(
		version.Version,
		config.NewConfigRepository(".env"),
		export.NewExportRepository(),
		newReport,
	)

	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
