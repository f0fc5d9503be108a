/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"context"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/SvenDH/go-card-table/ui"
)

var showDebug bool

// playCmd opens the table window
var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the card table window",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		log := c.Logger()
		session := newSession(c, log)

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()
		session.Assets.LoadAsync(ctx)

		ebiten.SetWindowSize(c.Width, c.Height)
		ebiten.SetWindowTitle("Card Table")
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

		prog := &ui.Program{
			M:         ui.NewTableScreen(session, log),
			ShowDebug: showDebug,
		}
		if err := ebiten.RunGame(prog); err != nil {
			return err
		}
		return session.Err()
	},
}

func init() {
	playCmd.Flags().BoolVar(&showDebug, "debug", false, "show TPS and FPS")
	rootCmd.AddCommand(playCmd)
}
