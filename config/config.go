package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/cdhooper/brutus28/pins"
)

// PinDecl is one PIN statement: a 1-based physical pin number, its
// symbolic name, and whether the name was declared inverted with a
// leading "!".
type PinDecl struct {
	Pin    int
	Bit    int
	Name   string
	Invert bool
	Line   int
}

// Config carries a parsed device description. Source preserves the
// original statement text so listings can reproduce it verbatim.
type Config struct {
	DeviceName string
	Device     *pins.Device
	Pins       []PinDecl
	Source     []byte
}

// Namer builds the pin namer the emitter consumes.
func (c *Config) Namer() *pins.Namer {
	var dev *pins.Device
	if c != nil {
		dev = c.Device
	}
	n := pins.NewNamer(dev)
	if c != nil {
		for _, p := range c.Pins {
			n.SetName(p.Bit, p.Name, p.Invert)
		}
	}
	return n
}

// Load reads and parses a config file, choosing the YAML form for
// .yaml/.yml suffixes and the statement form otherwise.
func Load(path string) (*Config, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg *Config
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		cfg, err = ParseYAML(d)
	} else {
		cfg, err = Parse(d)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse parses the semicolon-terminated statement form:
//
//	DEVICE G22V10;
//	PIN 2 = !CS;
//	PIN 3 = A0;
//
// Keywords are case-insensitive. Statements containing nothing but
// whitespace are ignored.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{Source: data}
	text := string(data)
	line := 1
	for len(text) > 0 {
		stmt := text
		rest := ""
		if i := strings.IndexByte(text, ';'); i >= 0 {
			stmt, rest = text[:i], text[i+1:]
		}
		stmtLine := line
		line += strings.Count(stmt, "\n")
		if err := cfg.parseStatement(stmt, stmtLine); err != nil {
			return nil, err
		}
		if rest == "" && !strings.ContainsRune(text, ';') {
			break
		}
		text = rest
	}
	return cfg, nil
}

func (cfg *Config) parseStatement(stmt string, line int) error {
	kw, at := findKeyword(stmt)
	if at < 0 {
		if strings.TrimSpace(stmt) == "" {
			return nil
		}
		return fmt.Errorf("%w: line %d", ErrKeyword, line)
	}
	line += strings.Count(stmt[:at], "\n")
	body := stmt[at:]
	switch kw {
	case "DEVICE":
		return cfg.parseDevice(body, line)
	case "PIN":
		return cfg.parsePin(body, line)
	}
	return nil
}

func findKeyword(stmt string) (string, int) {
	up := strings.ToUpper(stmt)
	for i := 0; i < len(up); i++ {
		if strings.HasPrefix(up[i:], "DEVICE") {
			return "DEVICE", i
		}
		if strings.HasPrefix(up[i:], "PIN") {
			return "PIN", i
		}
	}
	return "", -1
}

func (cfg *Config) parseDevice(body string, line int) error {
	name := strings.TrimSpace(body[len("DEVICE"):])
	end := 0
	for end < len(name) && isWordByte(name[end]) {
		end++
	}
	name = name[:end]
	dev, err := pins.Lookup(name)
	if err != nil {
		return fmt.Errorf("%w: line %d: %v", ErrSyntax, line, err)
	}
	cfg.DeviceName = name
	cfg.Device = dev
	return nil
}

func (cfg *Config) parsePin(body string, line int) error {
	body = strings.TrimSpace(body[len("PIN"):])
	numEnd := 0
	for numEnd < len(body) && body[numEnd] >= '0' && body[numEnd] <= '9' {
		numEnd++
	}
	if numEnd == 0 {
		return fmt.Errorf("%w: line %d: invalid pin number %q", ErrSyntax, line, body)
	}
	pin, err := strconv.Atoi(body[:numEnd])
	if err != nil {
		return fmt.Errorf("%w: line %d: %v", ErrSyntax, line, err)
	}
	rest := strings.TrimSpace(body[numEnd:])
	if !strings.HasPrefix(rest, "=") {
		return fmt.Errorf("%w: line %d: no '=' sign in PIN statement", ErrSyntax, line)
	}
	name := strings.TrimSpace(rest[1:])
	if i := strings.IndexAny(name, " \t\n"); i >= 0 {
		name = name[:i]
	}
	invert := false
	if strings.HasPrefix(name, "!") {
		invert = true
		name = name[1:]
	}
	if name == "" {
		return fmt.Errorf("%w: line %d: empty pin name", ErrSyntax, line)
	}
	bit, ok := cfg.Device.BitOf(pin)
	if !ok {
		return fmt.Errorf("%w: line %d: pin %d not on package", ErrBadPin, line, pin)
	}
	cfg.Pins = append(cfg.Pins, PinDecl{
		Pin:    pin,
		Bit:    bit,
		Name:   name,
		Invert: invert,
		Line:   line,
	})
	return nil
}

func isWordByte(b byte) bool {
	return b >= '0' && b <= '9' ||
		b >= 'A' && b <= 'Z' ||
		b >= 'a' && b <= 'z'
}
