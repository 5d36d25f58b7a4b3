package deltat

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed deltat.yaml
var asset []byte

// defaultTable is parsed once and only read afterwards
var defaultTable = mustParse(asset)

// Entry is the observed value of delta T for a single year
type Entry struct {
	Year    int     `yaml:"year"`
	Seconds float64 `yaml:"seconds"`
}

type document struct {
	Source  string  `yaml:"source"`
	Entries []Entry `yaml:"entries"`
}

// Table holds yearly delta T values over a contiguous span of years.
// It is immutable once built and safe for concurrent use.
type Table struct {
	source  string
	first   int
	seconds []float64
}

// NewTable builds a table from entries sorted by year, one year
// apart, with no gaps
func NewTable(entries []Entry) (*Table, error) {
	if len(entries) == 0 {
		return nil, errors.New("empty delta t table")
	}

	seconds := make([]float64, len(entries))
	first := entries[0].Year
	for i, entry := range entries {
		if entry.Year != first+i {
			return nil, fmt.Errorf("entry %d: year %d does not follow %d", i, entry.Year, first+i-1)
		}
		seconds[i] = entry.Seconds
	}

	return &Table{
		first:   first,
		seconds: seconds,
	}, nil
}

// Default returns the compiled in table
func Default() *Table {
	return defaultTable
}

// Load decodes a YAML table
func Load(r io.Reader) (*Table, error) {
	var doc document
	err := yaml.NewDecoder(r).Decode(&doc)
	if err != nil {
		return nil, fmt.Errorf("decode delta t table: %w", err)
	}

	table, err := NewTable(doc.Entries)
	if err != nil {
		return nil, fmt.Errorf("build delta t table: %w", err)
	}
	table.source = doc.Source

	return table, nil
}

func LoadFile(filename string) (*Table, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open delta t table: %w", err)
	}
	defer f.Close()

	return Load(f)
}

func mustParse(b []byte) *Table {
	table, err := Load(bytes.NewReader(b))
	if err != nil {
		panic(fmt.Sprintf("embedded asset: %s", err))
	}
	return table
}

// First is the earliest year in the table
func (t *Table) First() int {
	return t.first
}

// Last is the latest year in the table
func (t *Table) Last() int {
	return t.first + len(t.seconds) - 1
}

func (t *Table) Len() int {
	return len(t.seconds)
}

// Source describes where the values were taken from, if the table was
// loaded from a document that says
func (t *Table) Source() string {
	return t.source
}

// Lookup returns the tabulated value for year, if any
func (t *Table) Lookup(year int) (float64, bool) {
	if year < t.First() || year > t.Last() {
		return 0, false
	}
	return t.seconds[year-t.first], true
}
