// -----------------------------------------------------------------------
// Last Modified: Sunday, 23rd August 2026 10:15:00 am
// Modified By: Bob McAllan
// -----------------------------------------------------------------------

// Key reference replacement.
//
// The {KEY_NAME} syntax allows configuration values to reference process
// environment variables. At startup, these references are replaced with the
// actual values, so secrets stay out of config files.
//
// Example:
//   TOML:        auth_token = "{CRYPTOPANIC_TOKEN}"
//   Environment: CRYPTOPANIC_TOKEN=sk-12345
//   Resolved:    auth_token = "sk-12345"
//
// Replacement is case-sensitive. Missing keys are logged as warnings but not
// treated as errors, allowing graceful degradation.

package common

import (
	"os"
	"reflect"
	"regexp"
	"strings"

	"github.com/ternarybob/arbor"
)

// keyRefPattern matches {KEY_NAME} references in strings
// Allows alphanumeric characters, hyphens, and underscores
var keyRefPattern = regexp.MustCompile(`\{([a-zA-Z0-9_-]+)\}`)

// ReplaceKeyReferences replaces all {KEY_NAME} references in the input string
// with values from the provided map. If a key is not found, the reference is
// left unchanged and a warning is logged.
func ReplaceKeyReferences(input string, kvMap map[string]string, logger arbor.ILogger) string {
	if input == "" {
		return input
	}

	logUnresolvedKeys(input, kvMap, logger)

	return keyRefPattern.ReplaceAllStringFunc(input, func(match string) string {
		keyName := match[1 : len(match)-1]
		if value, exists := kvMap[keyName]; exists {
			return value
		}
		return match
	})
}

// logUnresolvedKeys finds all {KEY_NAME} references and logs warnings for missing keys
func logUnresolvedKeys(input string, kvMap map[string]string, logger arbor.ILogger) {
	for _, match := range keyRefPattern.FindAllStringSubmatch(input, -1) {
		if len(match) > 1 {
			if _, exists := kvMap[match[1]]; !exists {
				logger.Warn().
					Str("reference", match[0]).
					Str("key", match[1]).
					Msg("Unresolved key reference - not set in environment")
			}
		}
	}
}

// EnvKeyMap returns the process environment as a key/value map for
// reference replacement.
func EnvKeyMap() map[string]string {
	env := os.Environ()
	kvMap := make(map[string]string, len(env))
	for _, entry := range env {
		if name, value, ok := strings.Cut(entry, "="); ok {
			kvMap[name] = value
		}
	}
	return kvMap
}

// ResolveKeyReferences replaces {KEY_NAME} references in all string fields of
// the config with values from the process environment. Called once at startup
// after the config files are loaded.
func ResolveKeyReferences(config *Config, logger arbor.ILogger) {
	replaceInStructValue(reflect.ValueOf(config).Elem(), EnvKeyMap(), logger)
}

// replaceInStructValue recursively replaces key references in string fields,
// nested structs, and string slices. Replaced values are not logged since
// they may hold secrets.
func replaceInStructValue(val reflect.Value, kvMap map[string]string, logger arbor.ILogger) {
	typ := val.Type()

	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		fieldType := typ.Field(i)

		// Skip unexported fields
		if !field.CanSet() {
			continue
		}

		switch field.Kind() {
		case reflect.String:
			oldValue := field.String()
			newValue := ReplaceKeyReferences(oldValue, kvMap, logger)
			if oldValue != newValue {
				field.SetString(newValue)
				logger.Debug().
					Str("field", fieldType.Name).
					Msg("Replaced key reference in config field")
			}

		case reflect.Struct:
			replaceInStructValue(field, kvMap, logger)

		case reflect.Slice:
			if field.Type().Elem().Kind() == reflect.String {
				for j := 0; j < field.Len(); j++ {
					elem := field.Index(j)
					elem.SetString(ReplaceKeyReferences(elem.String(), kvMap, logger))
				}
			}
		}
	}
}
