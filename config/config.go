package config

import (
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/SvenDH/go-card-table/table"
)

const envPrefix = "CARDTABLE_"

type Config struct {
	FrontAtlas string
	BackAtlas  string
	LayoutPath string
	// Seed for the shuffle; 0 picks a time-based seed.
	Seed     int64
	LogLevel logrus.Level
	Width    int
	Height   int
	Table    table.Options
}

// Default is the stock table: fanned hands, camera behind the player.
func Default() *Config {
	return &Config{
		FrontAtlas: "assets/cards/sheets/classic.png",
		BackAtlas:  "assets/cards/Backs/Card-Back-03.png",
		LogLevel:   logrus.InfoLevel,
		Width:      1280,
		Height:     720,
		Table: table.Options{
			CardScale:     1,
			PlayerScale:   1,
			OpponentScale: 0.65,
			Player: table.SeatLayout{Hand: table.PlayerHand, Seats: [table.HandSize]table.Pose{
				{Position: mgl64.Vec3{0.50, 4.004, 4.21}, Rotation: mgl64.Vec3{-math.Pi / 2, 0, -0.15}},
				{Position: mgl64.Vec3{0.25, 4.003, 4.17}, Rotation: mgl64.Vec3{-math.Pi / 2, 0, -0.10}},
				{Position: mgl64.Vec3{0, 4.002, 4.15}, Rotation: mgl64.Vec3{-math.Pi / 2, 0, 0}},
				{Position: mgl64.Vec3{-0.25, 4.001, 4.13}, Rotation: mgl64.Vec3{-math.Pi / 2, 0, 0.10}},
				{Position: mgl64.Vec3{-0.50, 4, 4.10}, Rotation: mgl64.Vec3{-math.Pi / 2, 0, 0.15}},
			}},
			Opponent: table.SeatLayout{Hand: table.OpponentHand, Seats: [table.HandSize]table.Pose{
				{Position: mgl64.Vec3{0.5, 6.98, 2.5}, Rotation: mgl64.Vec3{2 * math.Pi, math.Pi, 0.15}},
				{Position: mgl64.Vec3{0.25, 7.0, 2.501}, Rotation: mgl64.Vec3{2 * math.Pi, math.Pi, 0.10}},
				{Position: mgl64.Vec3{0, 7.015, 2.502}, Rotation: mgl64.Vec3{2 * math.Pi, math.Pi, 0}},
				{Position: mgl64.Vec3{-0.25, 7.0, 2.503}, Rotation: mgl64.Vec3{2 * math.Pi, math.Pi, -0.10}},
				{Position: mgl64.Vec3{-0.5, 6.98, 2.504}, Rotation: mgl64.Vec3{2 * math.Pi, math.Pi, -0.15}},
			}},
			Camera:    table.DefaultCamera(),
			Selection: table.DefaultSelectionOptions(),
		},
	}
}

// LoadDotEnv reads .env files into the process environment. Missing files
// are not an error.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// ApplyEnv overrides fields from CARDTABLE_* variables.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if v, ok := lookup(envPrefix + "FRONT_ATLAS"); ok && v != "" {
		c.FrontAtlas = v
	}
	if v, ok := lookup(envPrefix + "BACK_ATLAS"); ok && v != "" {
		c.BackAtlas = v
	}
	if v, ok := lookup(envPrefix + "LAYOUT"); ok && v != "" {
		c.LayoutPath = v
	}
	if v, ok := lookup(envPrefix + "SEED"); ok && v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%sSEED: %w", envPrefix, err)
		}
		c.Seed = seed
	}
	if v, ok := lookup(envPrefix + "LOG_LEVEL"); ok && v != "" {
		lvl, err := logrus.ParseLevel(v)
		if err != nil {
			return fmt.Errorf("%sLOG_LEVEL: %w", envPrefix, err)
		}
		c.LogLevel = lvl
	}
	return nil
}

// Logger builds the process logger at the configured level.
func (c *Config) Logger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(c.LogLevel)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return l
}
