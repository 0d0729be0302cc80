package typedini

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Kind tags the target type of a typed lookup.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool
	KindList
	KindIntList
	KindFloatList
)

var kindNames = map[Kind]string{
	KindString:    "string",
	KindInt:       "int",
	KindFloat:     "float",
	KindBool:      "bool",
	KindList:      "list",
	KindIntList:   "intlist",
	KindFloatList: "floatlist",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// elem returns the element type name for list kinds.
func (k Kind) elem() string {
	switch k {
	case KindList:
		return KindString.String()
	case KindIntList:
		return KindInt.String()
	case KindFloatList:
		return KindFloat.String()
	default:
		return k.String()
	}
}

// IsList reports whether k yields a slice.
func (k Kind) IsList() bool {
	return k == KindList || k == KindIntList || k == KindFloatList
}

// ParseKind resolves a kind by name ("int", "floatlist", ...).
func ParseKind(name string) (Kind, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for k, n := range kindNames {
		if n == want {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown value type %q", name)
}

// coerceFailure locates a failed conversion inside a raw value.
type coerceFailure struct {
	index int
	token string
	err   error
}

type coercer func(raw, sep string) (any, *coerceFailure)

var coercers = map[Kind]coercer{
	KindString: func(raw, _ string) (any, *coerceFailure) {
		return raw, nil
	},
	KindInt: func(raw, _ string) (any, *coerceFailure) {
		n, err := parseInt(raw)
		if err != nil {
			return nil, &coerceFailure{index: -1, token: raw, err: err}
		}
		return n, nil
	},
	KindFloat: func(raw, _ string) (any, *coerceFailure) {
		f, err := parseFloat(raw)
		if err != nil {
			return nil, &coerceFailure{index: -1, token: raw, err: err}
		}
		return f, nil
	},
	KindBool: func(raw, _ string) (any, *coerceFailure) {
		b, err := parseBool(raw)
		if err != nil {
			return nil, &coerceFailure{index: -1, token: raw, err: err}
		}
		return b, nil
	},
	KindList: func(raw, sep string) (any, *coerceFailure) {
		return splitList(raw, sep), nil
	},
	KindIntList: func(raw, sep string) (any, *coerceFailure) {
		return convertList(splitList(raw, sep), parseInt)
	},
	KindFloatList: func(raw, sep string) (any, *coerceFailure) {
		return convertList(splitList(raw, sep), parseFloat)
	},
}

// errDigitSeparator rejects Go-style underscores, which strconv would
// otherwise accept after a base prefix only.
var errDigitSeparator = errors.New("digit separators are not allowed")

// parseInt accepts decimal values and the 0x, 0o and 0b prefixes.
// A leading zero alone does not switch to octal. Underscores are rejected.
func parseInt(s string) (int, error) {
	if strings.Contains(s, "_") {
		return 0, errDigitSeparator
	}
	digits := strings.TrimLeft(s, "+-")
	base := 10
	if len(digits) > 1 && digits[0] == '0' {
		switch digits[1] {
		case 'x', 'X', 'o', 'O', 'b', 'B':
			base = 0
		}
	}
	n, err := strconv.ParseInt(s, base, strconv.IntSize)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

func parseFloat(s string) (float64, error) {
	if strings.Contains(s, "_") {
		return 0, errDigitSeparator
	}
	return strconv.ParseFloat(s, 64)
}

var boolStates = map[string]bool{
	"1": true, "yes": true, "true": true, "on": true,
	"0": false, "no": false, "false": false, "off": false,
}

func parseBool(s string) (bool, error) {
	b, ok := boolStates[strings.ToLower(s)]
	if !ok {
		return false, fmt.Errorf("not a boolean: %q", s)
	}
	return b, nil
}

// splitList splits raw on sep and trims each token. Empty tokens are kept;
// an empty raw value yields an empty slice.
func splitList(raw, sep string) []string {
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, sep)
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

func convertList[T any](tokens []string, parse func(string) (T, error)) (any, *coerceFailure) {
	out := make([]T, 0, len(tokens))
	for i, tok := range tokens {
		v, err := parse(tok)
		if err != nil {
			return nil, &coerceFailure{index: i, token: tok, err: err}
		}
		out = append(out, v)
	}
	return out, nil
}
