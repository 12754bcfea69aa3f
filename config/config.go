// Package config loads reflow session options from a YAML file. Absent
// keys keep their defaults, so a file only needs the knobs it changes:
//
//	page_capacity: 640
//	height_tolerance: 2
//	min_split_offset: 1
//	settle_interval: 100ms
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/pagemill/reflow"
)

// file mirrors the YAML document. Pointer fields distinguish "absent"
// from an explicit zero.
type file struct {
	PageCapacity    *float64 `yaml:"page_capacity"`
	HeightTolerance *float64 `yaml:"height_tolerance"`
	MinSplitOffset  *int     `yaml:"min_split_offset"`
	SettleInterval  *string  `yaml:"settle_interval"`
}

// Load reads session options from path, layered over
// [reflow.DefaultOptions].
func Load(path string) (reflow.Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return reflow.Options{}, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}

// Parse decodes session options from YAML bytes, layered over
// [reflow.DefaultOptions].
func Parse(data []byte) (reflow.Options, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return reflow.Options{}, fmt.Errorf("parsing config: %w", err)
	}
	opts := reflow.DefaultOptions()
	if f.PageCapacity != nil {
		opts.PageCapacity = *f.PageCapacity
	}
	if f.HeightTolerance != nil {
		opts.HeightTolerance = *f.HeightTolerance
	}
	if f.MinSplitOffset != nil {
		opts.MinSplitOffset = *f.MinSplitOffset
	}
	if f.SettleInterval != nil {
		d, err := time.ParseDuration(*f.SettleInterval)
		if err != nil {
			return reflow.Options{}, fmt.Errorf("parsing settle_interval: %w", err)
		}
		opts.SettleInterval = d
	}
	if err := validate(opts); err != nil {
		return reflow.Options{}, err
	}
	return opts, nil
}

func validate(opts reflow.Options) error {
	if opts.PageCapacity <= 0 {
		return fmt.Errorf("config: page_capacity must be positive, got %v", opts.PageCapacity)
	}
	if opts.HeightTolerance < 0 {
		return fmt.Errorf("config: height_tolerance must not be negative, got %v", opts.HeightTolerance)
	}
	if opts.MinSplitOffset < 1 {
		return fmt.Errorf("config: min_split_offset must be at least 1, got %d", opts.MinSplitOffset)
	}
	if opts.SettleInterval < 0 {
		return fmt.Errorf("config: settle_interval must not be negative, got %v", opts.SettleInterval)
	}
	return nil
}
