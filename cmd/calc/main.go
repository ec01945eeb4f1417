package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmagnuss/calcsuite/internal/cli"
	"github.com/jmagnuss/calcsuite/internal/config"
	"github.com/jmagnuss/calcsuite/internal/session"
	"github.com/jmagnuss/calcsuite/internal/styles"
)

var rootCmd = &cobra.Command{
	Use:   "calc",
	Short: "Interactive simple calculator",
	Long: `calc runs one interactive calculation: pick add, subtract, or
divide from the menu, enter two numbers, and read the result.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.LoadDefault()
		styles.Init(cfg.GetColor())
		return session.Simple(cmd.InOrStdin(), cmd.OutOrStdout(), cfg.GetPrecision())
	},
}

func init() {
	rootCmd.AddCommand(cli.NewVersionCmd("calc"))
	rootCmd.AddCommand(cli.NewUpgradeCmd("calc"))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
