package props

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"
)

// DefaultDelimiter separates list elements when no delimiter is given.
const DefaultDelimiter = ","

// Scalar lists the element types the typed getters convert to.
type Scalar interface {
	~string | ~bool |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~float32 | ~float64
}

// As returns the value of key converted to T.
func As[T Scalar](s *Store, key Key) (T, error) {
	var zero T
	raw, err := s.Value(key)
	if err != nil {
		return zero, err
	}
	v, err := convert[T](raw)
	if err != nil {
		return zero, ErrInvalidConfigValue.WithKey(key.name).WithValue(raw).Wrap(err)
	}
	return v, nil
}

// List splits the value of key on delimiter (DefaultDelimiter if omitted)
// and converts each element to T. Blank elements are skipped; one bad
// element fails the whole list.
//
// rune is an int32, so List[rune] parses numbers; use Chars for a list of
// single characters.
func List[T Scalar](s *Store, key Key, delimiter ...string) ([]T, error) {
	delim := DefaultDelimiter
	if len(delimiter) > 0 && delimiter[0] != "" {
		delim = delimiter[0]
	}

	raw, err := s.Value(key)
	if err != nil {
		return nil, err
	}

	out := make([]T, 0)
	for _, field := range strings.Split(raw, delim) {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		v, err := convert[T](field)
		if err != nil {
			var zero T
			return nil, ErrInvalidConfigValue.WithKey(key.name).WithValue(raw).
				Wrap(fmt.Errorf("element %q is not a %T: %w", field, zero, err))
		}
		out = append(out, v)
	}
	return out, nil
}

func convert[T Scalar](s string) (T, error) {
	var out T
	v := reflect.ValueOf(&out).Elem()

	switch v.Kind() {
	case reflect.String:
		v.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return out, err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, v.Type().Bits())
		if err != nil {
			return out, err
		}
		v.SetInt(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, v.Type().Bits())
		if err != nil {
			return out, err
		}
		v.SetFloat(f)
	default:
		return out, fmt.Errorf("unsupported type %s", v.Type())
	}
	return out, nil
}

// Int returns the value of key as an int.
func (s *Store) Int(key Key) (int, error) {
	return As[int](s, key)
}

// Int64 returns the value of key as an int64.
func (s *Store) Int64(key Key) (int64, error) {
	return As[int64](s, key)
}

// Int16 returns the value of key as an int16.
func (s *Store) Int16(key Key) (int16, error) {
	return As[int16](s, key)
}

// Int8 returns the value of key as a signed byte.
func (s *Store) Int8(key Key) (int8, error) {
	return As[int8](s, key)
}

// Float32 returns the value of key as a float32.
func (s *Store) Float32(key Key) (float32, error) {
	return As[float32](s, key)
}

// Float64 returns the value of key as a float64.
func (s *Store) Float64(key Key) (float64, error) {
	return As[float64](s, key)
}

// Bool returns the value of key as a bool, accepting the forms of
// strconv.ParseBool. An empty value is an error.
func (s *Store) Bool(key Key) (bool, error) {
	return As[bool](s, key)
}

// Char returns the value of key, which must be exactly one character.
func (s *Store) Char(key Key) (rune, error) {
	raw, err := s.Value(key)
	if err != nil {
		return 0, err
	}
	if utf8.RuneCountInString(raw) != 1 {
		return 0, ErrInvalidConfigValue.WithKey(key.name).WithValue(raw).
			Wrap(errors.New("want exactly one character"))
	}
	r, _ := utf8.DecodeRuneInString(raw)
	return r, nil
}

// Chars splits the value of key like List and requires every element to be
// exactly one character.
func (s *Store) Chars(key Key, delimiter ...string) ([]rune, error) {
	fields, err := List[string](s, key, delimiter...)
	if err != nil {
		return nil, err
	}
	out := make([]rune, 0, len(fields))
	for _, field := range fields {
		if utf8.RuneCountInString(field) != 1 {
			return nil, ErrInvalidConfigValue.WithKey(key.name).WithValue(field).
				Wrap(fmt.Errorf("element %q is not a single character", field))
		}
		r, _ := utf8.DecodeRuneInString(field)
		out = append(out, r)
	}
	return out, nil
}
