package cli

import (
	"fmt"

	"github.com/diillson/aws-cost-report/pkg/version"
	"github.com/fatih/color"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner() {
	banner := `
    ___        ______     ____          _     ____                       _   
   / \ \      / / ___|   / ___|___  ___| |_  |  _ \ ___ _ __   ___  _ __| |_ 
  / _ \ \ /\ / /\___ \  | |   / _ \/ __| __| | |_) / _ \ '_ \ / _ \| '__| __|
 / ___ \ V  V /  ___) | | |__| (_) \__ \ |_  |  _ <  __/ |_) | (_) | |  | |_ 
/_/   \_\_/\_/  |____/   \____\___/|___/\__| |_| \_\___| .__/ \___/|_|   \__|
                                                       |_|                   
`
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(red(banner))

	// Obtem a string formatada da versão através do pacote version
	formattedVersion := version.FormatVersion()
	fmt.Println(blue(fmt.Sprintf("AWS Cost Report CLI (v%s)", formattedVersion)))
}
