// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/verte-zerg/tuicandy/internal/model"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Game    GameConfig    `toml:"game"`
	Catalog []CatalogItem `toml:"catalog"`
}

// GameConfig maps game-related settings.
type GameConfig struct {
	Day       *int    `toml:"day"`
	DayLength *int    `toml:"day-length"`
	Patience  *int    `toml:"patience"`
	TrayMax   *int    `toml:"tray-max"`
	Cooldown  *string `toml:"cooldown"`
	Seed      *int64  `toml:"seed"`
}

// CatalogItem is one entry of a custom catalog.
type CatalogItem struct {
	ID     string `toml:"id"`
	Name   string `toml:"name"`
	Symbol string `toml:"symbol"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// CatalogKinds converts configured catalog entries to item kinds.
// It returns nil when the file defines no catalog.
func (c FileConfig) CatalogKinds() []model.ItemKind {
	if len(c.Catalog) == 0 {
		return nil
	}
	kinds := make([]model.ItemKind, 0, len(c.Catalog))
	for _, item := range c.Catalog {
		kinds = append(kinds, model.ItemKind{ID: item.ID, Name: item.Name, Symbol: item.Symbol})
	}
	return kinds
}
