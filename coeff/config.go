package coeff

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dsplab/rrcsim/fixq"
)

// maxAbsTapSum is the largest sum of absolute expanded tap values for
// which the fixed Q11.4 output window cannot alias: with full-scale
// 16-bit samples the accumulator magnitude is bounded by
// sum(|tap|) * 2^15, which must stay below 2^32 so that the two integer
// bits discarded by the window carry no information.
const maxAbsTapSum = 1 << 17

// Config holds a runtime-loadable coefficient set for the non-fixed
// filter variant. Values are Q1.14 two's-complement integers.
type Config struct {
	// Taps holds the 12 distinct coefficients, index 0..11.
	// Index 11 is the unpaired center tap.
	Taps [NumDistinct]int16 `json:"taps"`
}

// DefaultConfig returns a Config holding the fixed
// square-root-raised-cosine set.
func DefaultConfig() *Config {
	c := &Config{}
	for i, v := range defaultSet {
		c.Taps[i] = int16(v)
	}
	return c
}

// LoadConfig loads a coefficient Config from a JSON file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read coefficient config file: %w", err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse coefficient config: %w", err)
	}

	return config, nil
}

// SaveConfig writes the Config to a JSON file.
func (c *Config) SaveConfig(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize coefficient config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write coefficient config file: %w", err)
	}

	return nil
}

// Validate checks that the coefficient set respects the datapath's fixed
// widths. The adder tree and the output window are sized for the default
// set; a replacement set must keep the expanded absolute tap sum below
// the aliasing bound or the Q11.4 window silently wraps.
//
// Validate bounds only the accumulator and output window. It does not
// bound the 32-bit product register: a full-scale tap multiplied by an
// extreme pair sum can still wrap there, so sets near the int16 limits
// need their widths re-derived rather than relying on this check.
func (c *Config) Validate() error {
	sum := int64(0)
	for i := 0; i < NumPairs; i++ {
		v := int64(c.Taps[i])
		if v < 0 {
			v = -v
		}
		sum += 2 * v
	}
	center := int64(c.Taps[CenterIndex])
	if center < 0 {
		center = -center
	}
	sum += center

	if sum > maxAbsTapSum {
		return fmt.Errorf(
			"expanded absolute tap sum %d exceeds output window bound %d",
			sum, maxAbsTapSum)
	}
	return nil
}

// Clone returns a deep copy of the Config.
func (c *Config) Clone() *Config {
	clone := &Config{}
	clone.Taps = c.Taps
	return clone
}

// Set returns the coefficients in datapath form.
func (c *Config) Set() [NumDistinct]fixq.Coeff {
	var set [NumDistinct]fixq.Coeff
	for i, v := range c.Taps {
		set[i] = fixq.Coeff(v)
	}
	return set
}
