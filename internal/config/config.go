package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/lunchsweeper/internal/mines"
)

type LogConfig struct {
	Level      string `json:"level"`
	File       string `json:"file"`
	MaxSize    int    `json:"max_size"` // megabytes
	MaxBackups int    `json:"max_backups"`
	MaxAge     int    `json:"max_age"` // days
}

type FoodConfig struct {
	Favorites []string `json:"favorites"`
	Normals   []string `json:"normals"`
}

type Config struct {
	Mode        string           `json:"mode"`
	Difficulty  mines.Difficulty `json:"difficulty"`
	Seed        uint64           `json:"seed"`
	Foods       FoodConfig       `json:"foods"`
	Log         LogConfig        `json:"log"`
	MetricsFile string           `json:"metrics_file"`
}

var ErrEmptyFoods = errors.New("food lists must not be empty")

func Default() *Config {
	return &Config{
		Mode:       "production",
		Difficulty: mines.Easy,
		Foods: FoodConfig{
			Favorites: mines.DefaultFavoriteFoods,
			Normals:   mines.DefaultNormalFoods,
		},
		Log: LogConfig{
			Level:      "info",
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
		},
	}
}

// Load builds the configuration from defaults, the JSON file at path (if
// path is not empty), a .env file in the working directory and finally the
// LUNCH_* environment variables.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	config := Default()
	if path != "" {
		if err := ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to read config %s: %w", path, err)
		}
	}
	if err := config.applyEnv(); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func ReadConfig(path string, config *Config) error {
	if b, err := os.ReadFile(path); err != nil {
		return err
	} else {
		return json.Unmarshal(b, config)
	}
}

func (c Config) Validate() error {
	if !c.Difficulty.Valid() {
		return fmt.Errorf("%w: %s", mines.ErrInvalidArgument, c.Difficulty)
	}
	if len(c.Foods.Favorites) == 0 || len(c.Foods.Normals) == 0 {
		return ErrEmptyFoods
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

func (c Config) Fields() logrus.Fields {
	return map[string]any{
		"mode":            c.Mode,
		"difficulty":      c.Difficulty.String(),
		"seed":            c.Seed,
		"favorite_foods":  len(c.Foods.Favorites),
		"normal_foods":    len(c.Foods.Normals),
		"log_level":       c.Log.Level,
		"log_file":        c.Log.File,
		"log_max_size":    c.Log.MaxSize,
		"log_max_backups": c.Log.MaxBackups,
		"log_max_age":     c.Log.MaxAge,
		"metrics_file":    c.MetricsFile,
	}
}

func (c Config) Production() bool {
	return c.Mode == "production"
}

func (c Config) Development() bool {
	return c.Mode != "production"
}
