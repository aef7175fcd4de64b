package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile     string
	Profile        string
	AccountID      string
	Send           bool
	ReportName     string
	ReportType     []string
	Dir            string
	ForecastDays   int
	IncludeBudgets bool
}
