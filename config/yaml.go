package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/cdhooper/brutus28/pins"
)

type yamlConfig struct {
	Device string         `yaml:"device"`
	Pins   map[int]string `yaml:"pins"`
}

// ParseYAML parses the YAML config form:
//
//	device: G22V10
//	pins:
//	  2: "!CS"
//	  3: A0
//
// Pin keys are 1-based physical pin numbers; a leading "!" marks the
// name inverted, exactly as in the statement form.
func ParseYAML(data []byte) (*Config, error) {
	yc := &yamlConfig{}
	if err := yaml.Unmarshal(data, yc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	cfg := &Config{}
	if yc.Device != "" {
		dev, err := pins.Lookup(yc.Device)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
		}
		cfg.DeviceName = yc.Device
		cfg.Device = dev
	}
	pinNums := make([]int, 0, len(yc.Pins))
	for pin := range yc.Pins {
		pinNums = append(pinNums, pin)
	}
	sort.Ints(pinNums)
	for _, pin := range pinNums {
		name := yc.Pins[pin]
		invert := false
		if strings.HasPrefix(name, "!") {
			invert = true
			name = name[1:]
		}
		bit, ok := cfg.Device.BitOf(pin)
		if !ok {
			return nil, fmt.Errorf("%w: pin %d not on package", ErrBadPin, pin)
		}
		cfg.Pins = append(cfg.Pins, PinDecl{
			Pin:    pin,
			Bit:    bit,
			Name:   name,
			Invert: invert,
		})
	}
	cfg.Source = nil
	return cfg, nil
}
