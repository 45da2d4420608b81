package makefile

import (
	"fmt"
	"strconv"
	"strings"
)

// Config bundles the formatting parameters for one target file. A fresh
// Config is parsed from directive comments at the top of each target; it is
// never shared between targets.
type Config struct {
	ObjectSuffix string
	PathSep      string
	LineWidth    int
	Continuation string
	Exclude      map[string]bool
	IncludeCmd   string
	External     string
	SelfRule     bool
}

// NewConfig returns a Config with the conventional make defaults.
func NewConfig() *Config {
	return &Config{
		ObjectSuffix: ".o",
		PathSep:      "/",
		LineWidth:    80,
		Continuation: `\`,
		Exclude:      make(map[string]bool),
		IncludeCmd:   "include",
		External:     ".depend",
	}
}

// Set applies one directive value by key name.
func (c *Config) Set(key, value string) error {
	switch key {
	case "object-ending":
		c.ObjectSuffix = value
	case "path-separator":
		c.PathSep = value
	case "line-width":
		width, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid line-width %q: %w", value, err)
		}
		c.LineWidth = width
	case "continuation":
		c.Continuation = value
	case "exclude":
		for _, path := range strings.Split(value, ",") {
			path = strings.TrimSpace(path)
			if path != "" {
				c.Exclude[path] = true
			}
		}
	case "include-command":
		c.IncludeCmd = value
	case "external":
		c.External = value
	case "selfrule":
		c.SelfRule = isTruthy(value)
	default:
		return fmt.Errorf("unknown directive key %q", key)
	}
	return nil
}

func isTruthy(value string) bool {
	switch strings.ToLower(value) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
