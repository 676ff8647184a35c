package models

import (
	"database/sql/driver"
	"fmt"
	"slices"
)

// Sizes is the fixed size enum in display order. A token's index is its bit in the stored mask.
var Sizes = []string{"XXS", "XS", "S", "M", "L", "XL", "XXL"}

func IsSize(token string) bool {
	return slices.Contains(Sizes, token)
}

// SizeMask folds tokens into a bit mask. Unknown tokens are reported.
func SizeMask(tokens []string) (int64, error) {
	var mask int64
	for _, t := range tokens {
		i := slices.Index(Sizes, t)
		if i < 0 {
			return 0, fmt.Errorf("unknown size %q", t)
		}
		mask |= 1 << i
	}
	return mask, nil
}

// SizeSet is a set of size tokens persisted as an integer bit mask, so that
// "any of these sizes" filters are a single bitwise AND on every dialect.
type SizeSet []string

func (s SizeSet) Mask() int64 {
	m, _ := SizeMask(s)
	return m
}

func (s SizeSet) Value() (driver.Value, error) {
	m, err := SizeMask(s)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (s *SizeSet) Scan(src any) error {
	var mask int64
	switch v := src.(type) {
	case nil:
	case int64:
		mask = v
	case int32:
		mask = int64(v)
	case []byte:
		if _, err := fmt.Sscan(string(v), &mask); err != nil {
			return fmt.Errorf("size mask: %w", err)
		}
	case string:
		if _, err := fmt.Sscan(v, &mask); err != nil {
			return fmt.Errorf("size mask: %w", err)
		}
	default:
		return fmt.Errorf("size mask: unsupported type %T", src)
	}

	out := SizeSet{}
	for i, token := range Sizes {
		if mask&(1<<i) != 0 {
			out = append(out, token)
		}
	}
	*s = out
	return nil
}

func (SizeSet) GormDataType() string { return "integer" }
