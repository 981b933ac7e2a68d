package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/urfave/cli/v2"
)

func TestSetupLogger_Levels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "WARN"} {
		app := &cli.App{
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "log-level", Value: "warn"},
			},
			Before: setupLogger,
			Action: func(c *cli.Context) error { return nil },
		}
		err := app.Run([]string{"docfind", "--log-level", level})
		assert.NoError(t, err, "level %q should be accepted", level)
	}
}

func TestSetupLogger_InvalidLevel(t *testing.T) {
	app := &cli.App{
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "log-level", Value: "warn"},
		},
		Before: setupLogger,
		Action: func(c *cli.Context) error { return nil },
	}
	err := app.Run([]string{"docfind", "--log-level", "verbose"})
	assert.Error(t, err)
}

func TestConfidenceBand(t *testing.T) {
	tests := []struct {
		pct  int
		want string
	}{
		{95, "excellent"},
		{80, "excellent"},
		{79, "good"},
		{60, "good"},
		{59, "decent"},
		{40, "decent"},
		{39, "weak"},
		{0, "weak"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, confidenceBand(tt.pct), "pct %d", tt.pct)
	}
}

func TestConfidenceBand_MatchesDisplayedPercent(t *testing.T) {
	// A score of 0.796 displays as 80%, so it must label "excellent":
	// the band keys on the rounded percent, never the raw score.
	score := float32(0.796)
	pct := int(math.Round(float64(score) * 100))
	assert.Equal(t, 80, pct)
	assert.Equal(t, "excellent", confidenceBand(pct))
}
