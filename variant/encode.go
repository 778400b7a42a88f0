// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package variant

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultPrecision is the default number of significant digits
// used when encoding doubles.
const DefaultPrecision = 12

// Encode returns the string encoding of the value, using the given
// number of significant digits for doubles. [Undefined] encodes as "".
func Encode(v Variant, precision int) string {
	switch v.kind {
	case Bool:
		return strconv.FormatBool(v.Bool())
	case Int:
		return strconv.Itoa(v.Int())
	case Double:
		return FormatDouble(v.Double(), precision)
	case String:
		return v.Text()
	case DoubleVector:
		return FormatDoubles(v.value.([]float64), precision)
	case Combo:
		return v.value.(ComboProperty).String()
	}
	return ""
}

// Decode decodes a value of the kind with the given persistent type
// name from its string encoding.
func Decode(typeName, s string) (Variant, error) {
	kind, err := KindByName(typeName)
	if err != nil {
		return Variant{}, err
	}
	switch kind {
	case Undefined:
		if strings.TrimSpace(s) != "" {
			return Variant{}, fmt.Errorf("%w: undefined value with content %q", ErrParse, s)
		}
		return Variant{}, nil
	case Bool:
		b, err := ParseBool(s)
		return FromBool(b), err
	case Int:
		i, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return Variant{}, fmt.Errorf("%w: int %q: %v", ErrParse, s, err)
		}
		return FromInt(i), nil
	case Double:
		f, err := ParseDouble(s)
		return FromDouble(f), err
	case String:
		return FromString(s), nil
	case DoubleVector:
		d, err := ParseDoubles(s)
		return FromDoubles(d), err
	case Combo:
		c, err := ParseCombo(s)
		return FromCombo(c), err
	}
	return Variant{}, fmt.Errorf("%w %q", ErrUnknownType, typeName)
}

// FormatDouble formats f with the given number of significant digits
// (the shortest exact form for precision <= 0). The result always holds
// a decimal point or an exponent, so 0 is "0.0".
func FormatDouble(f float64, precision int) string {
	if precision <= 0 {
		precision = -1
	}
	s := strconv.FormatFloat(f, 'g', precision, 64)
	if strings.ContainsAny(s, ".eEnN") {
		return s
	}
	return s + ".0"
}

// ParseDouble parses a string holding exactly one double,
// surrounded by optional whitespace.
func ParseDouble(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: double %q: %v", ErrParse, s, err)
	}
	return f, nil
}

// ParseBool parses true/yes/on/1 and false/no/off/0, ignoring case
// and surrounding whitespace.
func ParseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "on", "1":
		return true, nil
	case "false", "no", "off", "0":
		return false, nil
	}
	return false, fmt.Errorf("%w: bool %q", ErrParse, s)
}

// FormatDoubles formats the values with [FormatDouble], separated by commas.
func FormatDoubles(v []float64, precision int) string {
	strs := make([]string, len(v))
	for i, f := range v {
		strs[i] = FormatDouble(f, precision)
	}
	return strings.Join(strs, ",")
}

// ParseDoubles parses comma separated doubles. An empty or blank string
// is an empty list; any empty or malformed entry is an error.
func ParseDoubles(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return []float64{}, nil
	}
	fields := strings.Split(s, ",")
	res := make([]float64, len(fields))
	for i, fs := range fields {
		if strings.TrimSpace(fs) == "" {
			return nil, fmt.Errorf("%w: empty entry %d in %q", ErrParse, i, s)
		}
		f, err := ParseDouble(fs)
		if err != nil {
			return nil, err
		}
		res[i] = f
	}
	return res, nil
}
