// Package validation implements field-constraint checking for catalog
// entities. One descriptor table per entity kind is evaluated by a single
// generic function; violations accumulate instead of short-circuiting so a
// client sees every broken rule at once.
package validation

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Kind is the expected type of a field value
type Kind int

const (
	String Kind = iota
	Int
	Bool
	Date
	StringSlice
	StringMap
)

func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case Int:
		return "number"
	case Bool:
		return "boolean"
	case Date:
		return "date string"
	case StringSlice:
		return "array of strings"
	case StringMap:
		return "object of strings"
	default:
		return "value"
	}
}

// Rule describes the constraints on a single field. Zero values disable the
// corresponding check.
type Rule struct {
	Field    string
	Required bool
	Kind     Kind

	MinLen, MaxLen int // strings
	Min, Max       int // ints; Max of -1 means "current year"

	MinDate  string // dates, inclusive lower bound (YYYY-MM-DD)
	MaxToday bool   // dates, upper bound is the current day

	NonEmpty     bool // slices must have at least one element
	NoDuplicates bool // slices must be unique case-insensitively

	// Check is an optional custom predicate run after the built-in checks
	// pass. It returns a violation message or "".
	Check func(v any) string
}

// MaxCurrentYear marks an int rule whose upper bound is the current year
const MaxCurrentYear = -1

// Validate evaluates the rule set for an entity kind against a candidate
// record and returns every violated rule. The record maps field names to
// already-decoded JSON values; absent keys count as missing. It is a pure
// function over its inputs and the clock.
func Validate(entityKind string, record map[string]any) []string {
	rules, ok := ruleSets[entityKind]
	if !ok {
		return []string{"unknown entity kind: " + entityKind}
	}

	var violations []string
	for _, rule := range rules {
		violations = append(violations, checkRule(rule, record)...)
	}
	return violations
}

func checkRule(rule Rule, record map[string]any) []string {
	value, present := record[rule.Field]

	// Trimmed-empty strings count as missing
	if s, ok := value.(string); ok {
		s = strings.TrimSpace(s)
		if s == "" {
			present = false
		}
		value = s
	}

	if !present || value == nil {
		if rule.Required {
			return []string{rule.Field + " is required"}
		}
		return nil
	}

	switch rule.Kind {
	case String:
		return checkString(rule, value)
	case Int:
		return checkInt(rule, value)
	case Bool:
		if _, ok := value.(bool); !ok {
			return []string{rule.Field + " must be a boolean"}
		}
	case Date:
		return checkDate(rule, value)
	case StringSlice:
		return checkStringSlice(rule, value)
	case StringMap:
		if _, ok := value.(map[string]string); !ok {
			return []string{rule.Field + " must be an object of strings"}
		}
	}

	return runCheck(rule, value)
}

func checkString(rule Rule, value any) []string {
	s, ok := value.(string)
	if !ok {
		return []string{rule.Field + " must be a non-empty string"}
	}
	var violations []string
	if rule.MinLen > 0 && len(s) < rule.MinLen {
		violations = append(violations, fmt.Sprintf("%s must be at least %d characters", rule.Field, rule.MinLen))
	}
	if rule.MaxLen > 0 && len(s) > rule.MaxLen {
		violations = append(violations, fmt.Sprintf("%s must be at most %d characters", rule.Field, rule.MaxLen))
	}
	if len(violations) == 0 {
		violations = runCheck(rule, s)
	}
	return violations
}

func checkInt(rule Rule, value any) []string {
	n, ok := asInt(value)
	if !ok {
		return []string{rule.Field + " must be a number"}
	}
	max := rule.Max
	if max == MaxCurrentYear {
		max = time.Now().Year()
	}
	if max > 0 && (n < rule.Min || n > max) {
		return []string{fmt.Sprintf("%s must be between %d and %d", rule.Field, rule.Min, max)}
	}
	return runCheck(rule, n)
}

func checkDate(rule Rule, value any) []string {
	s, ok := value.(string)
	if !ok {
		return []string{rule.Field + " must be a date string in YYYY-MM-DD format"}
	}
	parsed, err := time.Parse("2006-01-02", s)
	if err != nil {
		return []string{rule.Field + " must be a valid date in YYYY-MM-DD format"}
	}
	if rule.MinDate != "" && s < rule.MinDate {
		return []string{fmt.Sprintf("%s must not be before %s", rule.Field, rule.MinDate)}
	}
	if rule.MaxToday {
		today := time.Now()
		if parsed.After(today) {
			return []string{rule.Field + " must not be in the future"}
		}
	}
	return runCheck(rule, s)
}

func checkStringSlice(rule Rule, value any) []string {
	items, ok := value.([]string)
	if !ok {
		return []string{rule.Field + " must be an array of strings"}
	}
	var violations []string
	if rule.NonEmpty && len(items) == 0 {
		violations = append(violations, rule.Field+" must be a non-empty array")
	}
	for _, item := range items {
		if strings.TrimSpace(item) == "" {
			violations = append(violations, rule.Field+" must not contain empty entries")
			break
		}
	}
	if rule.NoDuplicates {
		seen := make(map[string]bool, len(items))
		for _, item := range items {
			key := strings.ToLower(strings.TrimSpace(item))
			if seen[key] {
				violations = append(violations, rule.Field+" must not contain duplicate entries")
				break
			}
			seen[key] = true
		}
	}
	if len(violations) == 0 {
		violations = runCheck(rule, items)
	}
	return violations
}

func runCheck(rule Rule, value any) []string {
	if rule.Check == nil {
		return nil
	}
	if msg := rule.Check(value); msg != "" {
		return []string{msg}
	}
	return nil
}

func asInt(value any) (int, bool) {
	switch n := value.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float64:
		if n != float64(int(n)) {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}

// objectIDCheck builds a predicate requiring a well-formed ObjectID hex so
// malformed references surface as validation errors, not reference errors.
func objectIDCheck(field string) func(v any) string {
	return func(v any) string {
		s, ok := v.(string)
		if !ok {
			return field + " must be a string ID"
		}
		if _, err := primitive.ObjectIDFromHex(s); err != nil {
			return field + " must be a valid ID"
		}
		return ""
	}
}

// objectIDSliceCheck validates every element of an ID list
func objectIDSliceCheck(field string) func(v any) string {
	return func(v any) string {
		items, ok := v.([]string)
		if !ok {
			return field + " must be an array of string IDs"
		}
		for _, id := range items {
			if _, err := primitive.ObjectIDFromHex(id); err != nil {
				return field + " must contain only valid IDs"
			}
		}
		return ""
	}
}

// urlCheck requires an http(s) URL
func urlCheck(field string) func(v any) string {
	return func(v any) string {
		s, _ := v.(string)
		if strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") {
			return ""
		}
		return field + " must be an http or https URL"
	}
}
