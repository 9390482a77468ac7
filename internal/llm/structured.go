package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// SchemaValidator checks a decoded payload beyond what encoding/json enforces,
// e.g. that a sentiment score sits in [-1, 1].
type SchemaValidator[T any] func(T) error

// ExtractJSON pulls the first balanced JSON object out of model output and
// decodes it into T. Prose and markdown fences around the object are ignored.
// Comments and bare leading decimals like ".8", which local models emit for
// score fields despite instructions, are repaired before decoding. A non-nil
// validator runs after decoding.
func ExtractJSON[T any](raw string, validator SchemaValidator[T]) (T, error) {
	var zero T

	block := firstJSONObject(raw)
	if block == "" {
		return zero, fmt.Errorf("%w: no JSON object found in response", ErrInvalidOutput)
	}

	var result T
	if err := json.Unmarshal([]byte(repairJSON(block)), &result); err != nil {
		return zero, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}
	if validator != nil {
		if err := validator(result); err != nil {
			return zero, fmt.Errorf("%w: validation failed: %v", ErrInvalidOutput, err)
		}
	}
	return result, nil
}

// firstJSONObject returns the first brace-balanced object in s, or "" when
// none closes. Braces inside string values do not count toward the balance.
func firstJSONObject(s string) string {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return ""
	}

	var depth int
	var inStr, esc bool
	for i := start; i < len(s); i++ {
		switch c := s[i]; {
		case esc:
			esc = false
		case inStr && c == '\\':
			esc = true
		case c == '"':
			inStr = !inStr
		case inStr:
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}

// repairJSON rewrites the two malformations observed in local-model output:
// C-style comments between values, and numeric literals written ".8" or
// "-.3". String values pass through untouched.
func repairJSON(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)

	var inStr, esc bool
	var prev byte // last significant byte written outside a string
	for i := 0; i < len(s); i++ {
		c := s[i]

		if inStr {
			b.WriteByte(c)
			switch {
			case esc:
				esc = false
			case c == '\\':
				esc = true
			case c == '"':
				inStr = false
			}
			continue
		}

		switch {
		case c == '"':
			inStr = true
		case c == '/' && i+1 < len(s) && s[i+1] == '/':
			for i+1 < len(s) && s[i+1] != '\n' {
				i++
			}
			continue
		case c == '/' && i+1 < len(s) && s[i+1] == '*':
			i += 2
			for i+1 < len(s) && !(s[i] == '*' && s[i+1] == '/') {
				i++
			}
			i++
			continue
		case c == '.' && i+1 < len(s) && isDigit(s[i+1]) && numberCanStartAfter(prev):
			b.WriteByte('0')
		}

		b.WriteByte(c)
		if c != ' ' && c != '\t' && c != '\n' && c != '\r' {
			prev = c
		}
	}
	return b.String()
}

// numberCanStartAfter reports whether a numeric literal may begin after the
// given byte, i.e. the dot opens a value rather than continuing one.
func numberCanStartAfter(prev byte) bool {
	switch prev {
	case 0, ':', ',', '[', '{', '-':
		return true
	}
	return false
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
