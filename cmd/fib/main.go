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
	Use:   "fib",
	Short: "Interactive Fibonacci-number calculator",
	Long: `fib prompts for a non-negative integer and prints the Fibonacci
number at that position, computed iteratively.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.LoadDefault()
		styles.Init(cfg.GetColor())
		return session.Fibonacci(cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(cli.NewVersionCmd("fib"))
	rootCmd.AddCommand(cli.NewUpgradeCmd("fib"))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
