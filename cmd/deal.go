/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SvenDH/go-card-table/termview"
)

var reveal bool

// dealCmd deals without a window and prints both hands
var dealCmd = &cobra.Command{
	Use:   "deal",
	Short: "Deal both hands and print them",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		session := newSession(c, c.Logger())
		session.Assets.LoadAsync(cmd.Context())
		res, err := session.Start(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), termview.Render(res, session.Remaining(), reveal))
		return nil
	},
}

func init() {
	dealCmd.Flags().BoolVar(&reveal, "reveal", false, "show the opponent's cards")
	rootCmd.AddCommand(dealCmd)
}
