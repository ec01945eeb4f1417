package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmagnuss/calcsuite/internal/cli"
	"github.com/jmagnuss/calcsuite/internal/config"
	"github.com/jmagnuss/calcsuite/internal/session"
	"github.com/jmagnuss/calcsuite/internal/styles"
	"github.com/jmagnuss/calcsuite/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:   "advcalc",
	Short: "Interactive advanced calculator",
	Long: `advcalc runs one interactive calculation: add, multiply, divide,
power, modulo, or square root. Run "advcalc tui" for the full-screen mode.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.LoadDefault()
		styles.Init(cfg.GetColor())
		return session.Advanced(cmd.InOrStdin(), cmd.OutOrStdout(), cfg.GetPrecision())
	},
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Run the advanced calculator full-screen",
	Long:  `Run the advanced calculator as a full-screen terminal UI.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.LoadDefault()
		styles.Init(cfg.GetColor())
		return tui.Run(cfg.GetPrecision())
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(cli.NewVersionCmd("advcalc"))
	rootCmd.AddCommand(cli.NewUpgradeCmd("advcalc"))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
