// Package main is the entry point for the table bot
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagDataDir  string
	flagStorage  string
	flagPrefix   string
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:   "rpg-table",
	Short: "Tabletop RPG chat bot",
	Long: `rpg-table keeps character sheets, money, inventory and initiative for a
tabletop group and rolls dice from chat commands such as pd.roll 2#d20+3.

Settings come from RPG_* environment variables; flags override them.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "directory holding the snapshot files (RPG_DATA_DIR)")
	rootCmd.PersistentFlags().StringVar(&flagStorage, "storage", "", "snapshot backend: file or redis (RPG_STORAGE)")
	rootCmd.PersistentFlags().StringVar(&flagPrefix, "prefix", "", "command prefix (RPG_PREFIX)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "debug, info, warn or error (RPG_LOG_LEVEL)")

	rootCmd.AddCommand(consoleCmd)
	rootCmd.AddCommand(rollCmd)
}
