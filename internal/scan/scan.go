// Package scan moves driver values into Go struct fields.
//
// Drivers disagree on what a column comes back as: MySQL returns []byte for most
// text-protocol values, SQLite stores booleans as integers and times as text,
// and pgx decodes jsonb into maps. Assign hides those differences behind the
// destination field's type.
package scan

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"
)

type typeInfo struct {
	byColumn map[string]int
	byJSON   map[string]int
}

var typeCache sync.Map // reflect.Type -> *typeInfo

func info(t reflect.Type) *typeInfo {
	if cached, ok := typeCache.Load(t); ok {
		return cached.(*typeInfo)
	}
	ti := &typeInfo{byColumn: make(map[string]int), byJSON: make(map[string]int)}
	// Priority: db tag > json tag > snake_case field name. Lower priorities are
	// written first so later writes win.
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		if name := SnakeCase(f.Name); name != "" {
			ti.byColumn[name] = i
		}
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		if tag := tagName(f.Tag.Get("json")); tag != "" && tag != "-" {
			ti.byJSON[tag] = i
			ti.byColumn[tag] = i
		}
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		if tag := tagName(f.Tag.Get("db")); tag != "" && tag != "-" {
			ti.byColumn[tag] = i
		}
	}
	actual, _ := typeCache.LoadOrStore(t, ti)
	return actual.(*typeInfo)
}

func tagName(tag string) string {
	if i := strings.IndexByte(tag, ','); i >= 0 {
		return tag[:i]
	}
	return tag
}

// ColumnField returns the index of the struct field bound to column.
func ColumnField(t reflect.Type, column string) (int, bool) {
	i, ok := info(t).byColumn[column]
	return i, ok
}

// JSONField returns the index of the struct field whose json tag is name.
func JSONField(t reflect.Type, name string) (int, bool) {
	i, ok := info(t).byJSON[name]
	return i, ok
}

// SnakeCase converts a Go identifier to snake_case ("HourlyRate" -> "hourly_rate", "ID" -> "id").
func SnakeCase(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		upper := r >= 'A' && r <= 'Z'
		if upper {
			if i > 0 {
				prevLower := runes[i-1] >= 'a' && runes[i-1] <= 'z' || runes[i-1] >= '0' && runes[i-1] <= '9'
				nextLower := i+1 < len(runes) && runes[i+1] >= 'a' && runes[i+1] <= 'z'
				prevUpper := runes[i-1] >= 'A' && runes[i-1] <= 'Z'
				if prevLower || (prevUpper && nextLower) {
					b.WriteByte('_')
				}
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02T15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999 -0700 MST",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseTime parses the textual timestamps SQLite and MySQL hand back. Values
// without a zone are read as UTC.
func ParseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse %q as a timestamp", s)
}

var (
	timeType    = reflect.TypeOf(time.Time{})
	rawJSONType = reflect.TypeOf(json.RawMessage(nil))
	bytesType   = reflect.TypeOf([]byte(nil))
)

// Assign stores src into dst, converting between the driver's representation
// and the field's type. A nil src zeroes dst.
func Assign(dst reflect.Value, src any) error {
	if src == nil {
		dst.Set(reflect.Zero(dst.Type()))
		return nil
	}

	if dst.Kind() == reflect.Pointer {
		elem := reflect.New(dst.Type().Elem())
		if err := Assign(elem.Elem(), src); err != nil {
			return err
		}
		dst.Set(elem)
		return nil
	}

	if valuer, ok := src.(driver.Valuer); ok {
		if _, isTime := src.(time.Time); !isTime {
			v, err := valuer.Value()
			if err != nil {
				return err
			}
			if reflect.TypeOf(v) != reflect.TypeOf(src) {
				return Assign(dst, v)
			}
		}
	}

	switch dst.Type() {
	case rawJSONType:
		return assignJSON(dst, src)
	case timeType:
		t, err := toTime(src)
		if err != nil {
			return err
		}
		dst.Set(reflect.ValueOf(t))
		return nil
	}

	switch dst.Kind() {
	case reflect.String:
		switch v := src.(type) {
		case string:
			dst.SetString(v)
		case []byte:
			dst.SetString(string(v))
		case time.Time:
			dst.SetString(v.Format(time.RFC3339Nano))
		default:
			dst.SetString(fmt.Sprint(v))
		}
		return nil

	case reflect.Bool:
		b, err := toBool(src)
		if err != nil {
			return err
		}
		dst.SetBool(b)
		return nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := toInt(src)
		if err != nil {
			return err
		}
		if dst.OverflowInt(n) {
			return fmt.Errorf("value %d overflows %s", n, dst.Type())
		}
		dst.SetInt(n)
		return nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := toInt(src)
		if err != nil {
			return err
		}
		if n < 0 || dst.OverflowUint(uint64(n)) {
			return fmt.Errorf("value %d overflows %s", n, dst.Type())
		}
		dst.SetUint(uint64(n))
		return nil

	case reflect.Float32, reflect.Float64:
		f, err := toFloat(src)
		if err != nil {
			return err
		}
		dst.SetFloat(f)
		return nil

	case reflect.Interface:
		dst.Set(reflect.ValueOf(src))
		return nil
	}

	if dst.Type() == bytesType {
		switch v := src.(type) {
		case []byte:
			dst.SetBytes(append([]byte(nil), v...))
			return nil
		case string:
			dst.SetBytes([]byte(v))
			return nil
		}
	}

	sv := reflect.ValueOf(src)
	if sv.Type().AssignableTo(dst.Type()) {
		dst.Set(sv)
		return nil
	}
	if sv.Type().ConvertibleTo(dst.Type()) {
		dst.Set(sv.Convert(dst.Type()))
		return nil
	}
	return fmt.Errorf("cannot assign %T to %s", src, dst.Type())
}

func assignJSON(dst reflect.Value, src any) error {
	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = append([]byte(nil), v...)
	case string:
		raw = []byte(v)
	case json.RawMessage:
		raw = append([]byte(nil), v...)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode json column: %w", err)
		}
		raw = b
	}
	dst.SetBytes(raw)
	return nil
}

func toTime(src any) (time.Time, error) {
	switch v := src.(type) {
	case time.Time:
		return v, nil
	case string:
		return ParseTime(v)
	case []byte:
		return ParseTime(string(v))
	case int64:
		return time.Unix(v, 0).UTC(), nil
	}
	return time.Time{}, fmt.Errorf("cannot convert %T to time.Time", src)
}

func toBool(src any) (bool, error) {
	switch v := src.(type) {
	case bool:
		return v, nil
	case int64:
		return v != 0, nil
	case int:
		return v != 0, nil
	case int32:
		return v != 0, nil
	case string:
		return strconv.ParseBool(v)
	case []byte:
		return strconv.ParseBool(string(v))
	}
	return false, fmt.Errorf("cannot convert %T to bool", src)
}

func toInt(src any) (int64, error) {
	switch v := src.(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int16:
		return int64(v), nil
	case int8:
		return int64(v), nil
	case uint64:
		if v > math.MaxInt64 {
			return 0, fmt.Errorf("value %d overflows int64", v)
		}
		return int64(v), nil
	case uint32:
		return int64(v), nil
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("value %v is not an integer", v)
		}
		return int64(v), nil
	case float32:
		return toInt(float64(v))
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	case string:
		return parseIntText(v)
	case []byte:
		return parseIntText(string(v))
	}
	return 0, fmt.Errorf("cannot convert %T to an integer", src)
}

// parseIntText accepts "42" and the "42.0000" MySQL renders for SUM over integers.
func parseIntText(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("cannot parse %q as an integer", s)
	}
	return toInt(f)
}

func toFloat(src any) (float64, error) {
	switch v := src.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case string:
		return strconv.ParseFloat(strings.TrimSpace(v), 64)
	case []byte:
		return strconv.ParseFloat(strings.TrimSpace(string(v)), 64)
	}
	return 0, fmt.Errorf("cannot convert %T to a float", src)
}
