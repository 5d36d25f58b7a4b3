package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/subtlepseudonym/almanac"
	"github.com/subtlepseudonym/almanac/deltat"
)

// Config selects the calendar policy and delta T observations an
// Almanac is built with.
//
// DeltaTTable is the path of a YAML table in the format of
// deltat/deltat.yaml. When empty, the compiled in table is used.
type Config struct {
	Calendar    almanac.Calendar `json:"calendar"`
	DeltaTTable string           `json:"delta_t_table,omitempty"`
}

func Open(filename string) (*Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	defer f.Close()

	var config Config
	err = json.NewDecoder(f).Decode(&config)
	if err != nil {
		return nil, fmt.Errorf("decode config file: %w", err)
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if c.Calendar != "" && !c.Calendar.Valid() {
		return fmt.Errorf("config references unknown calendar %q", c.Calendar)
	}

	return nil
}

// Almanac validates the config and builds an Almanac from it
func (c *Config) Almanac() (*almanac.Almanac, error) {
	err := c.Validate()
	if err != nil {
		return nil, err
	}

	table := deltat.Default()
	if c.DeltaTTable != "" {
		table, err = deltat.LoadFile(c.DeltaTTable)
		if err != nil {
			return nil, fmt.Errorf("load delta t table: %w", err)
		}
	}
	log.Printf("delta t table: %d-%d (%d years) %s", table.First(), table.Last(), table.Len(), table.Source())

	return almanac.New(table, c.Calendar)
}
