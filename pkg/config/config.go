// Package config loads batch definitions for generating many noise tiles
// in one run.
package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/vram-io/dtk/pkg/bluenoise"
)

const (
	DefaultRegion      = "us-east-1"
	DefaultConcurrency = 4
)

// Tile describes Count tiles sharing a size and spacing, with consecutive
// seeds starting at Seed.
type Tile struct {
	Name       string `yaml:"name"`
	Size       int    `yaml:"size"`
	MinSpacing int    `yaml:"min-spacing"`
	Seed       int64  `yaml:"seed"`
	Count      int    `yaml:"count"`
}

// Seeds returns the seed of every tile described by t.
func (t Tile) Seeds() []int64 {
	seeds := make([]int64, t.Count)
	for i := range seeds {
		seeds[i] = t.Seed + int64(i)
	}
	return seeds
}

// Batch is the top level of a batch yaml file. Bucket may be empty, in
// which case tiles are only written locally.
type Batch struct {
	Region      string `yaml:"region"`
	Bucket      string `yaml:"bucket"`
	Prefix      string `yaml:"prefix"`
	Concurrency uint   `yaml:"concurrency"`
	Tiles       []Tile `yaml:"tiles"`
}

// Load decodes a batch from r, fills in defaults and validates it.
func Load(r io.Reader) (*Batch, error) {
	dec := yaml.NewDecoder(r)
	dec.SetStrict(true)
	var b Batch
	if err := dec.Decode(&b); err != nil {
		return nil, fmt.Errorf("decoding batch: %w", err)
	}
	b.applyDefaults()
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return &b, nil
}

// LoadFile is Load for a path on disk.
func LoadFile(path string) (*Batch, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

func (b *Batch) applyDefaults() {
	if b.Region == "" {
		b.Region = DefaultRegion
	}
	if b.Concurrency == 0 {
		b.Concurrency = DefaultConcurrency
	}
	for i := range b.Tiles {
		if b.Tiles[i].Count == 0 {
			b.Tiles[i].Count = 1
		}
	}
}

// Validate checks every tile with the same rules as bluenoise.New.
func (b *Batch) Validate() error {
	if len(b.Tiles) == 0 {
		return fmt.Errorf("batch has no tiles")
	}
	if b.Bucket != "" && b.Prefix == "" {
		return fmt.Errorf("bucket %s needs a prefix", b.Bucket)
	}
	names := make(map[string]bool, len(b.Tiles))
	for i, t := range b.Tiles {
		if t.Name == "" {
			return fmt.Errorf("tile %d has no name", i)
		}
		if names[t.Name] {
			return fmt.Errorf("duplicate tile name %s", t.Name)
		}
		names[t.Name] = true
		if err := bluenoise.Validate(t.Size, t.MinSpacing); err != nil {
			return fmt.Errorf("tile %s: %w", t.Name, err)
		}
		if t.Count < 0 {
			return fmt.Errorf("tile %s: negative count %d", t.Name, t.Count)
		}
	}
	return nil
}
