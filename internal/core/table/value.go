package table

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Kind identifies the type held by a Value or resolved for a Column.
type Kind int

const (
	// KindNull marks a missing cell.
	KindNull Kind = iota
	// KindText is free text.
	KindText
	// KindInteger is a whole number.
	KindInteger
	// KindFloat is a decimal number.
	KindFloat
	// KindTime is a date/time.
	KindTime
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindTime:
		return "time"
	default:
		return "null"
	}
}

// MarshalText renders the kind name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Numeric reports whether the kind holds a number.
func (k Kind) Numeric() bool {
	return k == KindInteger || k == KindFloat
}

// Value is a single cell. The zero Value is null.
type Value struct {
	kind  Kind
	text  string
	num   int64
	float float64
	time  time.Time
}

// Null returns a missing value.
func Null() Value { return Value{} }

// Text wraps a string.
func Text(s string) Value { return Value{kind: KindText, text: s} }

// Integer wraps an int64.
func Integer(i int64) Value { return Value{kind: KindInteger, num: i} }

// Float wraps a float64. NaN and infinities become null.
func Float(f float64) Value {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Null()
	}
	return Value{kind: KindFloat, float: f}
}

// Time wraps a time.Time.
func Time(t time.Time) Value { return Value{kind: KindTime, time: t} }

// Kind returns the type held by the value.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the cell is missing.
func (v Value) IsNull() bool { return v.kind == KindNull }

// String renders the value as text. Null renders as the empty string.
func (v Value) String() string {
	switch v.kind {
	case KindText:
		return v.text
	case KindInteger:
		return strconv.FormatInt(v.num, 10)
	case KindFloat:
		return strconv.FormatFloat(v.float, 'f', -1, 64)
	case KindTime:
		if v.time.Hour() == 0 && v.time.Minute() == 0 && v.time.Second() == 0 {
			return v.time.Format(time.DateOnly)
		}
		return v.time.Format(time.DateTime)
	default:
		return ""
	}
}

// Float returns the value as a float64. Text is coerced only when it is a
// plain number; grouping or decimal commas are not guessed at, so "1,500"
// is not a number. ok is false for null, time or unparseable text.
func (v Value) Float() (float64, bool) {
	switch v.kind {
	case KindInteger:
		return float64(v.num), true
	case KindFloat:
		return v.float, true
	case KindText:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.text), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// Time returns the held time; ok is false unless the kind is KindTime.
func (v Value) Time() (time.Time, bool) {
	if v.kind != KindTime {
		return time.Time{}, false
	}
	return v.time, true
}

// Equal compares two values. Integers and floats compare numerically,
// everything else requires the same kind. Null never equals anything.
func (v Value) Equal(o Value) bool {
	if v.kind == KindNull || o.kind == KindNull {
		return false
	}
	if v.kind.Numeric() && o.kind.Numeric() {
		if v.kind == KindInteger && o.kind == KindInteger {
			return v.num == o.num
		}
		a, _ := v.Float()
		b, _ := o.Float()
		return a == b
	}
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindText:
		return v.text == o.text
	case KindTime:
		return v.time.Equal(o.time)
	}
	return false
}

// Key is the canonical join key of the value: numbers with an integral
// value render without a fraction, text is trimmed. Null has no key.
func (v Value) Key() (string, bool) {
	switch v.kind {
	case KindNull:
		return "", false
	case KindFloat:
		if v.float == math.Trunc(v.float) && math.Abs(v.float) < 1e15 {
			return strconv.FormatInt(int64(v.float), 10), true
		}
		return v.String(), true
	case KindText:
		s := strings.TrimSpace(v.text)
		if s == "" {
			return "", false
		}
		return s, true
	default:
		return v.String(), true
	}
}

// Parse converts a raw cell into a value of the given column kind.
// Cells that cannot be represented become null.
func Parse(raw string, kind Kind) Value {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Null()
	}
	switch kind {
	case KindInteger:
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return Integer(i)
		}
		return Null()
	case KindFloat:
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return Float(f)
		}
		return Null()
	default:
		return Text(s)
	}
}

// Infer resolves the kind of a column from its raw cells: integer if every
// non-empty cell is an integer, float if every one is a number, text
// otherwise. Digit strings with a leading zero, such as "007", are codes
// and make the column text. A column with no non-empty cell is text.
func Infer(cells []string) Kind {
	kind := KindNull
	for _, raw := range cells {
		s := strings.TrimSpace(raw)
		if s == "" {
			continue
		}
		if leadingZero(s) {
			return KindText
		}
		if _, err := strconv.ParseInt(s, 10, 64); err == nil {
			if kind == KindNull {
				kind = KindInteger
			}
			continue
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			kind = KindFloat
			continue
		}
		return KindText
	}
	if kind == KindNull {
		return KindText
	}
	return kind
}

// leadingZero reports a zero followed by another digit at the start of s,
// after an optional sign. "0", "0.5" and "10" are not affected.
func leadingZero(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return len(s) > 1 && s[0] == '0' && s[1] >= '0' && s[1] <= '9'
}
