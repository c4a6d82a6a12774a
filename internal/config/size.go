package config

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultMaxImageSize is the default ceiling for vault images.
const DefaultMaxImageSize ByteSize = 10 << 20

// ByteSize is a size in bytes that reads and writes human units such as
// "512KiB", "10MB" or a plain byte count.
type ByteSize int64

var sizeUnits = []struct {
	suffix string
	factor int64
}{
	// Longest suffixes first so "KiB" is not read as "B".
	{"KiB", 1 << 10}, {"MiB", 1 << 20}, {"GiB", 1 << 30},
	{"KB", 1000}, {"MB", 1000 * 1000}, {"GB", 1000 * 1000 * 1000},
	{"K", 1 << 10}, {"M", 1 << 20}, {"G", 1 << 30},
	{"B", 1},
}

// ParseByteSize parses a byte count with an optional unit suffix.
// Units are case-insensitive; K, M and G are binary.
func ParseByteSize(s string) (ByteSize, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty size", ErrInvalidValue)
	}

	num, factor := s, int64(1)
	for _, u := range sizeUnits {
		if len(s) > len(u.suffix) && strings.EqualFold(s[len(s)-len(u.suffix):], u.suffix) {
			num, factor = strings.TrimSpace(s[:len(s)-len(u.suffix)]), u.factor
			break
		}
	}

	n, err := strconv.ParseFloat(num, 64)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: size %q", ErrInvalidValue, s)
	}
	return ByteSize(n * float64(factor)), nil
}

// String formats b with the largest binary unit dividing it exactly.
func (b ByteSize) String() string {
	switch {
	case b != 0 && b%(1<<30) == 0:
		return strconv.FormatInt(int64(b>>30), 10) + "GiB"
	case b != 0 && b%(1<<20) == 0:
		return strconv.FormatInt(int64(b>>20), 10) + "MiB"
	case b != 0 && b%(1<<10) == 0:
		return strconv.FormatInt(int64(b>>10), 10) + "KiB"
	default:
		return strconv.FormatInt(int64(b), 10) + "B"
	}
}

// UnmarshalYAML accepts either a number of bytes or a string with a unit.
func (b *ByteSize) UnmarshalYAML(unmarshal func(any) error) error {
	var raw any
	if err := unmarshal(&raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case uint64:
		*b = ByteSize(v)
	case int64:
		*b = ByteSize(v)
	case int:
		*b = ByteSize(v)
	case float64:
		*b = ByteSize(v)
	case string:
		parsed, err := ParseByteSize(v)
		if err != nil {
			return err
		}
		*b = parsed
	default:
		return fmt.Errorf("%w: size %v", ErrInvalidValue, raw)
	}
	return nil
}

// MarshalYAML writes the human form.
func (b ByteSize) MarshalYAML() (any, error) {
	return b.String(), nil
}
