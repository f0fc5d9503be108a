/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/SvenDH/go-card-table/placeholder"
)

var placeholderDir string

// placeholderCmd writes simple atlas images so the table runs without art
var placeholderCmd = &cobra.Command{
	Use:   "placeholder",
	Short: "Write placeholder front and back atlas images",
	RunE: func(cmd *cobra.Command, args []string) error {
		front := filepath.Join(placeholderDir, "front.png")
		back := filepath.Join(placeholderDir, "back.png")
		if err := os.MkdirAll(placeholderDir, 0o755); err != nil {
			return err
		}
		if err := placeholder.WritePNG(front, placeholder.FrontAtlas()); err != nil {
			return err
		}
		if err := placeholder.WritePNG(back, placeholder.Back()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s and %s\n", front, back)
		fmt.Fprintf(cmd.OutOrStdout(), "run with --front %s --back %s\n", front, back)
		return nil
	},
}

func init() {
	placeholderCmd.Flags().StringVarP(&placeholderDir, "out", "o", "assets/cards", "output directory")
	rootCmd.AddCommand(placeholderCmd)
}
