// config_keys.go provides key-value access to configuration settings.
//
// Separated from config.go to isolate the key enumeration and string-based
// get/set logic used by the CLI config command, where config is addressed
// by dotted keys (e.g., "limits.max_value").
//
// Design: Pointers are used for optional fields so we can distinguish between
// "not set" (nil) and "explicitly set to zero/false". Defaults only apply
// when the user hasn't set a value.

package config

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ValidKeys returns all valid configuration keys.
func ValidKeys() []string {
	return []string{
		"limits.max_value",
		"audit.enabled",
		"catalog.path",
	}
}

// IsValidKey returns true if the key is a valid configuration key.
func IsValidKey(key string) bool {
	return slices.Contains(ValidKeys(), key)
}

// Get returns the value of a configuration key as a string.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "limits.max_value":
		return strconv.Itoa(c.MaxValue()), nil
	case "audit.enabled":
		return strconv.FormatBool(c.AuditEnabled()), nil
	case "catalog.path":
		return c.Catalog.Path, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set sets the value of a configuration key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "limits.max_value":
		n, err := strconv.Atoi(value)
		if err != nil || n < MinMaxValue || n > MaxMaxValue {
			return fmt.Errorf("%w: limits.max_value must be an integer between %d and %d", ErrInvalidValue, MinMaxValue, MaxMaxValue)
		}
		c.Limits.MaxValue = &n
	case "audit.enabled":
		v := strings.ToLower(value)
		if v != "true" && v != "false" {
			return fmt.Errorf("%w: audit.enabled must be true or false", ErrInvalidValue)
		}
		b := v == "true"
		c.Audit.Enabled = &b
	case "catalog.path":
		c.Catalog.Path = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

// All returns all configuration values as a map.
func (c *Config) All() map[string]string {
	return map[string]string{
		"limits.max_value": strconv.Itoa(c.MaxValue()),
		"audit.enabled":    strconv.FormatBool(c.AuditEnabled()),
		"catalog.path":     c.Catalog.Path,
	}
}

// IsSet returns true if the key has an explicit value (not just defaults).
func (c *Config) IsSet(key string) bool {
	switch key {
	case "limits.max_value":
		return c.Limits.MaxValue != nil
	case "audit.enabled":
		return c.Audit.Enabled != nil
	case "catalog.path":
		return c.Catalog.Path != ""
	default:
		return false
	}
}
