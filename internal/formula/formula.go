// Package formula evaluates the restricted arithmetic used by Formula mode
// compensation structures, e.g. "{baseSalary} * 10% * {achievement} / {target}".
//
// Expressions are parsed by a small recursive-descent parser that knows only
// decimal literals, unary sign, + - * / and parentheses. Nothing in the text
// can reach code or data beyond the supplied variables.
package formula

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	placeholderPattern = regexp.MustCompile(`\{(\w+)\}`)
	allowedPattern     = regexp.MustCompile(`^[0-9+\-*/().\s%]*$`)
	percentPattern     = regexp.MustCompile(`(\d+(?:\.\d+)?)%`)
)

// Evaluate substitutes vars into expr and computes the result.
//
// The only error returned is ErrUnsupportedFormulaCharacter. Syntax errors,
// division by zero and non-finite results all evaluate to 0.
func Evaluate(expr string, vars map[string]float64) (float64, error) {
	text, err := prepare(expr, func(name string) float64 { return vars[name] })
	if err != nil {
		return 0, err
	}

	node, err := parse(text)
	if err != nil {
		return 0, nil
	}

	value, err := node.eval()
	if err != nil {
		return 0, nil
	}

	f, _ := value.Float64()
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, nil
	}
	return f, nil
}

// Validate checks a formula at authoring time. Unlike Evaluate it reports
// syntax problems. Every placeholder is treated as 1 for the check.
func Validate(expr string) error {
	if strings.TrimSpace(expr) == "" {
		return ErrEmptyFormula
	}

	text, err := prepare(expr, func(string) float64 { return 1 })
	if err != nil {
		return err
	}

	if _, err := parse(text); err != nil {
		return ErrMalformedFormula.WithDetails(err.Error())
	}
	return nil
}

// ValidateWithVariables is Validate plus a check that every placeholder is
// one of known.
func ValidateWithVariables(expr string, known []string) error {
	if err := Validate(expr); err != nil {
		return err
	}

	allowed := make(map[string]struct{}, len(known))
	for _, k := range known {
		allowed[k] = struct{}{}
	}

	var unknown []string
	for _, name := range Placeholders(expr) {
		if _, ok := allowed[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		return ErrUnknownPlaceholder.WithDetails(unknown)
	}
	return nil
}

// Placeholders lists distinct placeholder names in order of first use.
func Placeholders(expr string) []string {
	matches := placeholderPattern.FindAllStringSubmatch(expr, -1)
	seen := make(map[string]struct{}, len(matches))
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		if _, ok := seen[m[1]]; ok {
			continue
		}
		seen[m[1]] = struct{}{}
		names = append(names, m[1])
	}
	return names
}

// prepare substitutes placeholders, enforces the character whitelist and
// rewrites N% into (N/100).
func prepare(expr string, lookup func(string) float64) (string, error) {
	text := placeholderPattern.ReplaceAllStringFunc(expr, func(m string) string {
		name := m[1 : len(m)-1]
		return strconv.FormatFloat(lookup(name), 'f', -1, 64)
	})

	if !allowedPattern.MatchString(text) {
		return "", ErrUnsupportedFormulaCharacter
	}

	return percentPattern.ReplaceAllString(text, "($1/100)"), nil
}

var errDivisionByZero = errors.New("division by zero")
