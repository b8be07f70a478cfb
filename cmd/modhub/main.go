// Command modhub is the CLI for the ModHub platform API.
package main

import (
	"os"

	"github.com/spf13/cobra"

	linkcmder "github.com/modhubco/modhub/cmd/modhub/link"
	logincmder "github.com/modhubco/modhub/cmd/modhub/login"
)

func main() {
	root := &cobra.Command{
		Use:           "modhub",
		Short:         "Interact with the ModHub platform",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.PersistentFlags().String("config-dir", "", "Override path to .modhub/ config directory")
	root.PersistentFlags().String("host", "", "Override the API host")

	root.AddCommand(logincmder.NewLoginCmd())
	root.AddCommand(linkcmder.NewLinkCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
