/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"math/rand"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/SvenDH/go-card-table/config"
	"github.com/SvenDH/go-card-table/table"
)

var (
	layoutPath string
	frontPath  string
	backPath   string
	seed       int64
	logLevel   string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cardtable",
	Short: "Deal a hand of playing cards onto a 3D table",
	Long: `cardtable shuffles a 52 card deck, deals five cards to the player and
five face down to the opponent, and lets the player pick cards from the
hand with the mouse.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	f := rootCmd.PersistentFlags()
	f.StringVar(&layoutPath, "layout", "", "layout file with seat, camera and selection overrides")
	f.StringVar(&frontPath, "front", "", "front atlas image (13x4 grid of card faces)")
	f.StringVar(&backPath, "back", "", "card back image")
	f.Int64Var(&seed, "seed", 0, "shuffle seed, 0 for a random deal")
	f.StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
}

// loadConfig layers defaults, .env, CARDTABLE_* variables, the layout file
// and command line flags, later sources winning.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	c := config.Default()
	if err := config.LoadDotEnv(); err != nil {
		return nil, err
	}
	if err := c.ApplyEnv(nil); err != nil {
		return nil, err
	}
	f := cmd.Flags()
	if f.Changed("layout") {
		c.LayoutPath = layoutPath
	}
	if f.Changed("front") {
		c.FrontAtlas = frontPath
	}
	if f.Changed("back") {
		c.BackAtlas = backPath
	}
	if f.Changed("seed") {
		c.Seed = seed
	}
	if f.Changed("log-level") {
		lvl, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return nil, err
		}
		c.LogLevel = lvl
	}
	if c.LayoutPath != "" {
		if err := config.LoadLayout(c.LayoutPath, &c.Table); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// newSession builds a session whose assets have not started loading yet.
func newSession(c *config.Config, log logrus.FieldLogger) *table.Session {
	s := c.Seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	assets := table.NewAssetBundle(table.FileLoader{}, c.FrontAtlas, c.BackAtlas)
	session := table.NewSession(c.Table, assets, rand.New(rand.NewSource(s)), log)
	log.WithFields(logrus.Fields{
		"session": session.ID.String(),
		"seed":    s,
		"front":   c.FrontAtlas,
		"back":    c.BackAtlas,
	}).Debug("session created")
	return session
}
