package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-table/internal/engine/dice"
	diceorch "github.com/KirkDiggler/rpg-table/internal/orchestrators/dice"
	"github.com/KirkDiggler/rpg-table/internal/pkg/idgen"
)

var rollCmd = &cobra.Command{
	Use:     "roll <notation>",
	Short:   "Roll dice without starting the bot",
	Example: "  rpg-table roll 2#d20+3\n  rpg-table roll 4d6 - 1",
	Args:    cobra.MinimumNArgs(1),
	RunE:    runRoll,
}

func runRoll(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	setupLogging(cfg)

	engine, err := dice.NewEngine(&dice.Config{Limits: cfg.Limits()})
	if err != nil {
		return err
	}
	svc, err := diceorch.NewOrchestrator(&diceorch.Config{
		Engine:      engine,
		IDGenerator: idgen.NewUUID("roll"),
	})
	if err != nil {
		return err
	}

	out, err := svc.Roll(cmd.Context(), &diceorch.RollInput{
		PlayerID: "cli",
		Notation: strings.Join(args, " "),
	})
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), out.Rendered)
	return err
}
