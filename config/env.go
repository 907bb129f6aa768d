// Package config overlays environment variables onto configuration structs.
//
// Variable names follow the pattern
//
//	{Prefix}_{STAGE}_{FIELD}
//
// where named nested structs add a segment and embedded structs are flattened.
// Field names are converted from CamelCase to UPPER_SNAKE_CASE:
//
//	LogLevel    → LOG_LEVEL
//	JSONOutput  → JSON_OUTPUT
//
// Supported field types: string, bool, int*, uint*, float* and time.Duration.
// Other fields are skipped.
//
// Example for the demo settings with stage "demo":
//
//	RX_DEMO_NAME=requests
//	RX_DEMO_LOG_LEVEL=debug
//	RX_DEMO_FIXTURES=./requests.yaml
package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"
	"unicode"
)

const defaultPrefix = "RX"

var durationType = reflect.TypeOf(time.Duration(0))

// Loader reads environment variables into configuration structs.
type Loader struct {
	// Prefix for variable names. Default: "RX".
	Prefix string

	// lookup replaces os.LookupEnv in tests.
	lookup func(string) (string, bool)
}

// Load sets every field of the struct pointed to by dst whose variable is
// present in the environment. Fields without a variable keep their value, so
// Load overlays the environment on programmatic defaults.
func (l Loader) Load(stage string, dst any) error {
	v := reflect.ValueOf(dst)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("config: dst must be a pointer to a struct, got %T", dst)
	}
	for _, f := range walk(l.root(stage), v.Elem()) {
		raw, ok := l.lookupEnv(f.key)
		if !ok {
			continue
		}
		if err := f.set(raw); err != nil {
			return err
		}
	}
	return nil
}

// Keys lists the variable names Load would read for dst, which may be a
// struct or a pointer to one.
func (l Loader) Keys(stage string, dst any) []string {
	v := reflect.ValueOf(dst)
	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil
	}
	fields := walk(l.root(stage), v)
	keys := make([]string, 0, len(fields))
	for _, f := range fields {
		keys = append(keys, f.key)
	}
	return keys
}

// Load populates dst using the default Loader.
func Load(stage string, dst any) error {
	return Loader{}.Load(stage, dst)
}

// Keys lists variable names using the default Loader.
func Keys(stage string, dst any) []string {
	return Loader{}.Keys(stage, dst)
}

func (l Loader) root(stage string) string {
	prefix := l.Prefix
	if prefix == "" {
		prefix = defaultPrefix
	}
	return prefix + "_" + normalizeStage(stage)
}

func (l Loader) lookupEnv(key string) (string, bool) {
	if l.lookup != nil {
		return l.lookup(key)
	}
	return os.LookupEnv(key)
}

type field struct {
	key   string
	value reflect.Value
}

// walk flattens v into its settable leaf fields.
func walk(prefix string, v reflect.Value) []field {
	var fields []field
	t := v.Type()
	for i := range t.NumField() {
		sf := t.Field(i)
		fv := v.Field(i)

		// Unexported embedded structs still promote their exported fields.
		if !sf.IsExported() && !(sf.Anonymous && sf.Type.Kind() == reflect.Struct) {
			continue
		}

		key := prefix
		if !sf.Anonymous {
			key += "_" + toUpperSnake(sf.Name)
		}

		switch {
		case sf.Type == durationType || isScalar(sf.Type.Kind()):
			if sf.IsExported() {
				fields = append(fields, field{key: key, value: fv})
			}
		case sf.Type.Kind() == reflect.Struct:
			fields = append(fields, walk(key, fv)...)
		}
	}
	return fields
}

func isScalar(k reflect.Kind) bool {
	switch k {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func (f field) set(raw string) error {
	v := f.value
	if v.Type() == durationType {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("config: %s: %w", f.key, err)
		}
		v.SetInt(int64(d))
		return nil
	}

	var err error
	switch v.Kind() {
	case reflect.String:
		v.SetString(raw)
	case reflect.Bool:
		var b bool
		if b, err = strconv.ParseBool(raw); err == nil {
			v.SetBool(b)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		var n int64
		if n, err = strconv.ParseInt(raw, 10, v.Type().Bits()); err == nil {
			v.SetInt(n)
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		var n uint64
		if n, err = strconv.ParseUint(raw, 10, v.Type().Bits()); err == nil {
			v.SetUint(n)
		}
	case reflect.Float32, reflect.Float64:
		var x float64
		if x, err = strconv.ParseFloat(raw, v.Type().Bits()); err == nil {
			v.SetFloat(x)
		}
	}
	if err != nil {
		return fmt.Errorf("config: %s: %w", f.key, err)
	}
	return nil
}

// normalizeStage uppercases letters, maps '-', ' ' and '_' to '_' and drops
// everything else.
func normalizeStage(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(unicode.ToUpper(r))
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-' || r == ' ' || r == '_':
			b.WriteRune('_')
		}
	}
	return b.String()
}

// toUpperSnake converts a CamelCase name to UPPER_SNAKE_CASE, keeping
// acronyms together:
//
//	LogLevel   → LOG_LEVEL
//	JSONOutput → JSON_OUTPUT
func toUpperSnake(s string) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			switch {
			case unicode.IsLower(prev) || unicode.IsDigit(prev):
				b.WriteRune('_')
			case unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1]):
				b.WriteRune('_')
			}
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}
