package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/diillson/aws-cost-report/internal/application/usecase"
	"github.com/diillson/aws-cost-report/internal/domain/entity"
	"github.com/diillson/aws-cost-report/internal/domain/repository"
	"github.com/diillson/aws-cost-report/internal/shared/types"
	"github.com/diillson/aws-cost-report/pkg/console"
	"github.com/diillson/aws-cost-report/pkg/version"
)

var supportedReportTypes = []string{"html", "csv", "json", "pdf"}

// ReportFactory monta o caso de uso a partir da configuração resolvida.
// O perfil AWS só é conhecido depois de ler flags e arquivo, por isso os
// repositórios são criados sob demanda.
type ReportFactory func(cfg *types.Config, c types.ConsoleInterface) *usecase.ReportUseCase

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd    *cobra.Command
	configRepo repository.ConfigRepository
	exportRepo repository.ExportRepository
	newReport  ReportFactory
	console    *console.Console
	version    string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string, configRepo repository.ConfigRepository, exportRepo repository.ExportRepository, newReport ReportFactory) *CLIApp {
	app := &CLIApp{
		configRepo: configRepo,
		exportRepo: exportRepo,
		newReport:  newReport,
		console:    console.NewConsole(),
		version:    versionStr,
	}

	// Obtem a versão formatada
	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:          "aws-cost-report",
		Short:        "Daily AWS cost summary: preview, export or send by email",
		Version:      formattedVersion,
		RunE:         app.runCommand,
		SilenceUsage: true,
	}

	rootCmd.SetVersionTemplate(`{{printf "AWS Cost Report version: %s\n" .Version}}`)

	// Adiciona flags de linha de comando
	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.PersistentFlags().StringP("profile", "p", "", "AWS shared config profile to use")
	rootCmd.PersistentFlags().String("account-id", "", "Account ID shown in the report (default: resolved with STS)")
	rootCmd.PersistentFlags().Bool("send", false, "Send the report by email through SES instead of only previewing it")
	rootCmd.PersistentFlags().StringP("report-name", "n", "", "Specify the base name for the report file (without extension)")
	rootCmd.PersistentFlags().StringSliceP("report-type", "y", []string{"html"}, "Specify report types: html, csv, json, pdf")
	rootCmd.PersistentFlags().StringP("dir", "d", "", "Directory to save the report files (default: current directory)")
	rootCmd.PersistentFlags().Int("forecast-days", 0, "Length of the forecast window in days (default: 30)")
	rootCmd.PersistentFlags().Bool("budgets", false, "Include AWS Budgets in the report")

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// SetArgs substitui os argumentos da linha de comando (usado em testes).
func (app *CLIApp) SetArgs(args []string) {
	app.rootCmd.SetArgs(args)
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseArgs() (*types.CLIArgs, error) {
	flags := app.rootCmd.Flags()
	configFile, _ := flags.GetString("config-file")
	profile, _ := flags.GetString("profile")
	accountID, _ := flags.GetString("account-id")
	send, _ := flags.GetBool("send")
	reportName, _ := flags.GetString("report-name")
	reportType, _ := flags.GetStringSlice("report-type")
	dir, _ := flags.GetString("dir")
	forecastDays, _ := flags.GetInt("forecast-days")
	includeBudgets, _ := flags.GetBool("budgets")

	for i, rt := range reportType {
		rt = strings.ToLower(strings.TrimSpace(rt))
		if !isSupportedReportType(rt) {
			return nil, fmt.Errorf("unsupported report type %q (supported: %s)", rt, strings.Join(supportedReportTypes, ", "))
		}
		reportType[i] = rt
	}

	if forecastDays < 0 {
		return nil, fmt.Errorf("%w: --forecast-days must be positive", types.ErrInvalidConfig)
	}

	// Set default directory to current working directory if not specified
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		dir = cwd
	} else {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return nil, err
		}
		dir = absDir
	}

	return &types.CLIArgs{
		ConfigFile:     configFile,
		Profile:        profile,
		AccountID:      accountID,
		Send:           send,
		ReportName:     reportName,
		ReportType:     reportType,
		Dir:            dir,
		ForecastDays:   forecastDays,
		IncludeBudgets: includeBudgets,
	}, nil
}

func isSupportedReportType(rt string) bool {
	for _, supported := range supportedReportTypes {
		if rt == supported {
			return true
		}
	}
	return false
}

// resolveConfig aplica a precedência flags > arquivo > ambiente.
func resolveConfig(args *types.CLIArgs, envCfg, fileCfg *types.Config) *types.Config {
	cfg := types.DefaultConfig()
	cfg.Merge(envCfg)
	cfg.Merge(fileCfg)
	cfg.Merge(&types.Config{
		Profile:        args.Profile,
		ForecastDays:   args.ForecastDays,
		IncludeBudgets: args.IncludeBudgets,
	})
	return cfg
}

func (app *CLIApp) loadConfig(args *types.CLIArgs) (*types.Config, error) {
	envCfg, err := app.configRepo.LoadFromEnv()
	if err != nil {
		return nil, err
	}

	var fileCfg *types.Config
	if args.ConfigFile != "" {
		fileCfg, err = app.configRepo.LoadConfigFile(args.ConfigFile)
		if err != nil {
			return nil, err
		}
		app.console.LogInfo("Loaded configuration from %s", args.ConfigFile)
	}

	cfg := resolveConfig(args, envCfg, fileCfg)
	if err := cfg.Validate(args.Send); err != nil {
		return nil, err
	}
	return cfg, nil
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, _ []string) error {
	displayWelcomeBanner()

	go version.CheckLatestVersion(app.version)

	cliArgs, err := app.parseArgs()
	if err != nil {
		return err
	}

	cfg, err := app.loadConfig(cliArgs)
	if err != nil {
		return err
	}

	app.console.LogInfo("Run ID: %s", uuid.NewString())

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	uc := app.newReport(cfg, app.console)

	accountID := cliArgs.AccountID
	if accountID == "" {
		status := app.console.Status("Resolving account ID...")
		accountID, err = uc.AccountID(ctx)
		status.Stop()
		if err != nil {
			return err
		}
	}

	status := app.console.Status(fmt.Sprintf("Fetching cost data for account %s...", accountID))
	report, err := uc.GenerateReport(ctx, accountID)
	status.Stop()
	if err != nil {
		return fmt.Errorf("%w: %w", types.ErrReportGeneration, err)
	}

	app.displayReport(report)

	if cliArgs.ReportName != "" {
		if err := app.exportReport(uc, report, cliArgs); err != nil {
			return err
		}
	}

	if !cliArgs.Send {
		app.console.LogInfo("Preview only; use --send to email the report to %s", displayRecipient(cfg.RecipientEmail))
		return nil
	}

	result, err := uc.Deliver(ctx, report)
	if err != nil {
		return err
	}
	app.console.LogSuccess("%s", result.Body)
	return nil
}

func displayRecipient(recipient string) string {
	if recipient == "" {
		return "RECIPIENT_EMAIL"
	}
	return recipient
}

// exportReport grava o relatório em cada formato pedido.
func (app *CLIApp) exportReport(uc *usecase.ReportUseCase, report entity.CostReport, args *types.CLIArgs) error {
	for _, reportType := range args.ReportType {
		var (
			path string
			err  error
		)
		switch reportType {
		case "html":
			var body string
			body, err = uc.RenderReport(report)
			if err == nil {
				path, err = app.exportRepo.ExportToHTML(body, args.ReportName, args.Dir)
			}
		case "csv":
			path, err = app.exportRepo.ExportToCSV(report, args.ReportName, args.Dir)
		case "json":
			path, err = app.exportRepo.ExportToJSON(report, args.ReportName, args.Dir)
		case "pdf":
			path, err = app.exportRepo.ExportToPDF(report, args.ReportName, args.Dir)
		}
		if err != nil {
			return fmt.Errorf("failed to export %s report: %w", reportType, err)
		}
		app.console.LogSuccess("%s report saved to: %s", strings.ToUpper(reportType), path)
	}
	return nil
}
