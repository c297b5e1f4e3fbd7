package config

import (
	"fmt"
	"iter"
	"os"
	"strconv"
	"strings"
)

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv("LUNCH_MODE"); ok {
		c.Mode = v
	}
	if v, ok := os.LookupEnv("LUNCH_DIFFICULTY"); ok {
		if err := c.Difficulty.UnmarshalText([]byte(v)); err != nil {
			return fmt.Errorf("LUNCH_DIFFICULTY: %w", err)
		}
	}
	if v, ok := os.LookupEnv("LUNCH_SEED"); ok {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("LUNCH_SEED must be an unsigned integer: %w", err)
		}
		c.Seed = seed
	}
	if v, ok := os.LookupEnv("LUNCH_FAVORITE_FOODS"); ok {
		c.Foods.Favorites = SplitList(v, ",")
	}
	if v, ok := os.LookupEnv("LUNCH_NORMAL_FOODS"); ok {
		c.Foods.Normals = SplitList(v, ",")
	}
	if v, ok := os.LookupEnv("LUNCH_LOG_LEVEL"); ok {
		c.Log.Level = v
	}
	if v, ok := os.LookupEnv("LUNCH_LOG_FILE"); ok {
		c.Log.File = v
	}
	if v, ok := os.LookupEnv("LUNCH_METRICS_FILE"); ok {
		c.MetricsFile = v
	}
	return nil
}

func byPiece(s string, sep string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		i := 0
		found := true
		var piece string
		for found {
			piece, s, found = strings.Cut(s, sep)
			if !yield(i, piece) {
				return
			}
			i += 1
		}
	}
}

// SplitList cuts s at sep, trims the pieces and drops empty ones.
func SplitList(s string, sep string) []string {
	var res []string
	for _, piece := range byPiece(s, sep) {
		if piece = strings.TrimSpace(piece); piece != "" {
			res = append(res, piece)
		}
	}
	return res
}
