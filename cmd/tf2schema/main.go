package main

import (
	"os"

	"tf2schema-service/internal/cli"
)

func main() {
	rootCmd := cli.RootCmd()

	rootCmd.AddCommand(cli.FetchCmd())
	rootCmd.AddCommand(cli.NameCmd())
	rootCmd.AddCommand(cli.SKUCmd())
	rootCmd.AddCommand(cli.ItemCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
