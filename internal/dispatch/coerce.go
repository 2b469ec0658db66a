package dispatch

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/sandgrav/catalog-api/internal/constants"
	"github.com/sandgrav/catalog-api/internal/utils"
)

// ParseBool converts the accepted boolean literals to a bool. The literal
// sets are part of the API contract: "true", "1", "on" and "yes" are true,
// "false", "0", "off" and "no" are false, matched case-insensitively. Any
// other string is a type error.
func ParseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "true", "1", "on", "yes":
		return true, nil
	case "false", "0", "off", "no":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean literal %q", s)
}

// coerceScalar converts a raw string into the spec's kind and checks the
// declared constraints. All issues found for the value are returned together.
func coerceScalar(spec *ParameterSpec, raw string, loc []string) (any, []utils.ValidationIssue) {
	switch spec.Kind {
	case KindString:
		if issues := checkString(spec, raw, loc); len(issues) > 0 {
			return nil, issues
		}
		return raw, nil

	case KindInt:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, []utils.ValidationIssue{{
				Location: loc,
				Message:  "Input should be a valid integer",
				Type:     constants.ErrTypeIntParsing,
			}}
		}
		if issues := checkNumber(spec, float64(n), loc); len(issues) > 0 {
			return nil, issues
		}
		return n, nil

	case KindFloat:
		// NaN and the infinities parse successfully but defeat every ordered
		// bound comparison and cannot be serialized, so they are rejected here.
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, []utils.ValidationIssue{{
				Location: loc,
				Message:  "Input should be a valid number",
				Type:     constants.ErrTypeFloatParsing,
			}}
		}
		if issues := checkNumber(spec, f, loc); len(issues) > 0 {
			return nil, issues
		}
		return f, nil

	case KindBool:
		b, err := ParseBool(raw)
		if err != nil {
			return nil, []utils.ValidationIssue{{
				Location: loc,
				Message:  "Input should be a valid boolean",
				Type:     constants.ErrTypeBoolParsing,
			}}
		}
		return b, nil

	case KindEnum:
		for _, member := range spec.Enum {
			if raw == member {
				return raw, nil
			}
		}
		return nil, []utils.ValidationIssue{{
			Location: loc,
			Message:  fmt.Sprintf("Input should be one of: %s", strings.Join(spec.Enum, ", ")),
			Type:     constants.ErrTypeEnum,
		}}
	}

	return nil, []utils.ValidationIssue{{
		Location: loc,
		Message:  "Unsupported parameter kind",
		Type:     constants.ErrTypeValueError,
	}}
}

// coerceList applies string coercion and constraints to every element of a
// repeated query parameter, collecting issues across all elements.
func coerceList(spec *ParameterSpec, raws []string, loc []string) ([]string, []utils.ValidationIssue) {
	var issues []utils.ValidationIssue
	out := make([]string, 0, len(raws))
	for i, raw := range raws {
		elemLoc := append(append([]string{}, loc...), strconv.Itoa(i))
		if elemIssues := checkString(spec, raw, elemLoc); len(elemIssues) > 0 {
			issues = append(issues, elemIssues...)
			continue
		}
		out = append(out, raw)
	}
	if len(issues) > 0 {
		return nil, issues
	}
	return out, nil
}

// checkString validates length bounds and the pattern constraint. Each
// violated constraint yields its own issue.
func checkString(spec *ParameterSpec, s string, loc []string) []utils.ValidationIssue {
	var issues []utils.ValidationIssue

	if spec.MinLength != nil && len(s) < *spec.MinLength {
		issues = append(issues, utils.ValidationIssue{
			Location: loc,
			Message:  fmt.Sprintf("String should have at least %d characters", *spec.MinLength),
			Type:     constants.ErrTypeStringTooShort,
		})
	}
	if spec.MaxLength != nil && len(s) > *spec.MaxLength {
		issues = append(issues, utils.ValidationIssue{
			Location: loc,
			Message:  fmt.Sprintf("String should have at most %d characters", *spec.MaxLength),
			Type:     constants.ErrTypeStringTooLong,
		})
	}
	if spec.Pattern != nil && !spec.Pattern.MatchString(s) {
		issues = append(issues, utils.ValidationIssue{
			Location: loc,
			Message:  fmt.Sprintf("String should match pattern '%s'", spec.Pattern.String()),
			Type:     constants.ErrTypeStringPattern,
		})
	}

	return issues
}

// checkNumber validates the inclusive and exclusive numeric bounds. Each
// violated bound yields its own issue.
func checkNumber(spec *ParameterSpec, f float64, loc []string) []utils.ValidationIssue {
	var issues []utils.ValidationIssue

	if spec.Ge != nil && f < *spec.Ge {
		issues = append(issues, utils.ValidationIssue{
			Location: loc,
			Message:  fmt.Sprintf("Input should be greater than or equal to %v", *spec.Ge),
			Type:     constants.ErrTypeGreaterThanEqual,
		})
	}
	if spec.Gt != nil && f <= *spec.Gt {
		issues = append(issues, utils.ValidationIssue{
			Location: loc,
			Message:  fmt.Sprintf("Input should be greater than %v", *spec.Gt),
			Type:     constants.ErrTypeGreaterThan,
		})
	}
	if spec.Le != nil && f > *spec.Le {
		issues = append(issues, utils.ValidationIssue{
			Location: loc,
			Message:  fmt.Sprintf("Input should be less than or equal to %v", *spec.Le),
			Type:     constants.ErrTypeLessThanEqual,
		})
	}
	if spec.Lt != nil && f >= *spec.Lt {
		issues = append(issues, utils.ValidationIssue{
			Location: loc,
			Message:  fmt.Sprintf("Input should be less than %v", *spec.Lt),
			Type:     constants.ErrTypeLessThan,
		})
	}

	return issues
}
