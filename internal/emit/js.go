package emit

import (
	"encoding/json"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"git.home.luguber.info/inful/blogsite/internal/stylize"
)

var jsIdent = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

var ruleType = reflect.TypeFor[stylize.Rule]()

// jsKey renders an object key, quoting it only when it is not a bare identifier.
func jsKey(k string) string {
	if jsIdent.MatchString(k) {
		return k
	}
	return stylize.JSString(k)
}

// encodeJS renders v as a JavaScript expression. Lines after the first are
// prefixed with indent. Stylize rules become object literals with arrow
// function replacers.
func encodeJS(v any, indent string) (string, error) {
	if v == nil {
		return "null", nil
	}
	return encodeValue(reflect.ValueOf(v), indent)
}

func encodeValue(rv reflect.Value, indent string) (string, error) {
	for rv.Kind() == reflect.Interface || rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return "null", nil
		}
		rv = rv.Elem()
	}

	if rv.Type() == ruleType {
		return rv.Interface().(stylize.Rule).JS(indent)
	}

	switch rv.Kind() {
	case reflect.String:
		return stylize.JSString(rv.String()), nil
	case reflect.Bool:
		if rv.Bool() {
			return "true", nil
		}
		return "false", nil
	case reflect.Map:
		return encodeObject(rv, indent)
	case reflect.Slice, reflect.Array:
		return encodeArray(rv, indent)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		data, err := json.Marshal(rv.Interface())
		if err != nil {
			return "", err
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("cannot encode %s as JavaScript", rv.Type())
	}
}

func encodeObject(rv reflect.Value, indent string) (string, error) {
	if rv.Type().Key().Kind() != reflect.String {
		return "", fmt.Errorf("cannot encode map with %s keys as JavaScript", rv.Type().Key())
	}
	if rv.Len() == 0 {
		return "{}", nil
	}

	keys := make([]string, 0, rv.Len())
	for _, k := range rv.MapKeys() {
		keys = append(keys, k.String())
	}
	sort.Strings(keys)

	inner := indent + "  "
	var b strings.Builder
	b.WriteString("{\n")
	for _, k := range keys {
		val, err := encodeValue(rv.MapIndex(reflect.ValueOf(k).Convert(rv.Type().Key())), inner)
		if err != nil {
			return "", fmt.Errorf("%s: %w", k, err)
		}
		b.WriteString(inner + jsKey(k) + ": " + val + ",\n")
	}
	b.WriteString(indent + "}")
	return b.String(), nil
}

func encodeArray(rv reflect.Value, indent string) (string, error) {
	if rv.Len() == 0 {
		return "[]", nil
	}

	inner := indent + "  "
	var b strings.Builder
	b.WriteString("[\n")
	for i := range rv.Len() {
		val, err := encodeValue(rv.Index(i), inner)
		if err != nil {
			return "", fmt.Errorf("[%d]: %w", i, err)
		}
		b.WriteString(inner + val + ",\n")
	}
	b.WriteString(indent + "]")
	return b.String(), nil
}
