package dispatch

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/sandgrav/catalog-api/internal/constants"
	"github.com/sandgrav/catalog-api/internal/utils"
)

// extractBodyParams decodes the JSON request body and validates every body
// parameter of the route against it. Field-level failures are collected
// across all fields and parameters rather than stopping at the first.
func extractBodyParams(r *http.Request, specs []*ParameterSpec, values map[string]any) []utils.ValidationIssue {
	r.Body = http.MaxBytesReader(nil, r.Body, constants.MaxRequestBodySize)

	data, err := io.ReadAll(r.Body)
	if err != nil {
		return []utils.ValidationIssue{{
			Location: []string{constants.LocBody},
			Message:  "Unable to read request body",
			Type:     constants.ErrTypeJSONInvalid,
		}}
	}

	if len(bytes.TrimSpace(data)) == 0 {
		var issues []utils.ValidationIssue
		for _, spec := range specs {
			if spec.Required {
				issues = append(issues, utils.ValidationIssue{
					Location: bodyLocation(spec),
					Message:  "Field required",
					Type:     constants.ErrTypeMissing,
				})
			}
		}
		return issues
	}

	var issues []utils.ValidationIssue
	for _, spec := range specs {
		raw := json.RawMessage(data)

		// An embedded parameter sits under its wire name instead of being
		// the whole document.
		if spec.Embed {
			var envelope map[string]json.RawMessage
			if err := json.Unmarshal(data, &envelope); err != nil {
				issues = append(issues, decodeIssue(err, []string{constants.LocBody}))
				continue
			}
			nested, ok := envelope[spec.WireName()]
			if !ok {
				if spec.Required {
					issues = append(issues, utils.ValidationIssue{
						Location: bodyLocation(spec),
						Message:  "Field required",
						Type:     constants.ErrTypeMissing,
					})
				}
				continue
			}
			raw = nested
		}

		switch spec.Kind {
		case KindWeights:
			value, weightIssues := decodeWeights(raw, bodyLocation(spec))
			if len(weightIssues) > 0 {
				issues = append(issues, weightIssues...)
				continue
			}
			values[spec.Name] = value

		default:
			target := spec.New()
			if err := json.Unmarshal(raw, target); err != nil {
				issues = append(issues, decodeIssue(err, bodyLocation(spec)))
				continue
			}
			if modelIssues := validateModel(target, bodyLocation(spec)); len(modelIssues) > 0 {
				issues = append(issues, modelIssues...)
				continue
			}
			values[spec.Name] = target
		}
	}

	return issues
}

// bodyLocation is the error location prefix for a body parameter. Embedded
// parameters include their wire name; whole-document parameters are rooted
// at "body" directly.
func bodyLocation(spec *ParameterSpec) []string {
	if spec.Embed {
		return []string{constants.LocBody, spec.WireName()}
	}
	return []string{constants.LocBody}
}

// decodeIssue translates a JSON decoding error into a validation issue.
// Type mismatches name the failing field; malformed documents are reported
// at the body root.
func decodeIssue(err error, root []string) utils.ValidationIssue {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		loc := append([]string{}, root...)
		if typeErr.Field != "" {
			loc = append(loc, fieldPathTokens(typeErr.Field)...)
		}
		return utils.ValidationIssue{
			Location: loc,
			Message:  fmt.Sprintf("Input should be a valid %s", typeErr.Type.Kind()),
			Type:     constants.ErrTypeTypeError,
		}
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return utils.ValidationIssue{
			Location: root,
			Message:  fmt.Sprintf("Request body contains malformed JSON (at position %d)", syntaxErr.Offset),
			Type:     constants.ErrTypeJSONInvalid,
		}
	}

	return utils.ValidationIssue{
		Location: root,
		Message:  "Request body is not valid JSON",
		Type:     constants.ErrTypeJSONInvalid,
	}
}

// decodeWeights decodes an integer-keyed map of numbers. JSON object keys
// are strings on the wire, so each key is coerced to an integer and each
// failing key yields its own issue.
func decodeWeights(raw json.RawMessage, root []string) (map[int64]float64, []utils.ValidationIssue) {
	var wire map[string]float64
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, []utils.ValidationIssue{decodeIssue(err, root)}
	}

	var issues []utils.ValidationIssue
	weights := make(map[int64]float64, len(wire))
	for key, weight := range wire {
		index, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			issues = append(issues, utils.ValidationIssue{
				Location: append(append([]string{}, root...), key),
				Message:  "Map key should be a valid integer",
				Type:     constants.ErrTypeIntParsing,
			})
			continue
		}
		weights[index] = weight
	}
	if len(issues) > 0 {
		return nil, issues
	}
	return weights, nil
}

// validateModel runs struct validation on a decoded body value. Slices of
// models are validated element-wise with the element index in the location.
func validateModel(target any, root []string) []utils.ValidationIssue {
	v := reflect.ValueOf(target)
	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Struct:
		return validateStruct(v.Addr().Interface(), root)

	case reflect.Slice:
		var issues []utils.ValidationIssue
		for i := 0; i < v.Len(); i++ {
			elem := v.Index(i)
			if elem.Kind() != reflect.Struct {
				continue
			}
			elemRoot := append(append([]string{}, root...), strconv.Itoa(i))
			issues = append(issues, validateStruct(elem.Addr().Interface(), elemRoot)...)
		}
		return issues
	}

	return nil
}

// validateStruct validates a single model struct and translates every field
// error into a wire-level issue.
func validateStruct(target any, root []string) []utils.ValidationIssue {
	err := utils.GetValidator().Struct(target)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []utils.ValidationIssue{{
			Location: root,
			Message:  err.Error(),
			Type:     constants.ErrTypeValueError,
		}}
	}

	issues := make([]utils.ValidationIssue, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		loc := append(append([]string{}, root...), namespaceTokens(fe.Namespace())...)
		message, errType := describeFieldError(fe)
		issues = append(issues, utils.ValidationIssue{
			Location: loc,
			Message:  message,
			Type:     errType,
		})
	}
	return issues
}

// namespaceTokens converts a validator namespace such as
// "Offer.items[0].price" into location tokens ["items", "0", "price"],
// dropping the root struct name.
func namespaceTokens(namespace string) []string {
	parts := strings.Split(namespace, ".")
	if len(parts) > 0 {
		parts = parts[1:]
	}

	var tokens []string
	for _, part := range parts {
		tokens = append(tokens, fieldPathTokens(part)...)
	}
	return tokens
}

// fieldPathTokens splits a single path segment, extracting bracketed list
// indexes into their own tokens.
func fieldPathTokens(segment string) []string {
	var tokens []string
	for _, part := range strings.Split(segment, ".") {
		for {
			open := strings.IndexByte(part, '[')
			if open < 0 {
				if part != "" {
					tokens = append(tokens, part)
				}
				break
			}
			if open > 0 {
				tokens = append(tokens, part[:open])
			}
			closing := strings.IndexByte(part, ']')
			if closing < 0 {
				break
			}
			tokens = append(tokens, part[open+1:closing])
			part = part[closing+1:]
		}
	}
	return tokens
}

// describeFieldError maps a validator tag failure to the wire-level message
// and type. Unknown tags fall back to a generic value error.
func describeFieldError(fe validator.FieldError) (string, string) {
	switch fe.Tag() {
	case "required":
		return "Field required", constants.ErrTypeMissing

	case "min":
		switch fe.Kind() {
		case reflect.String:
			return fmt.Sprintf("String should have at least %s characters", fe.Param()), constants.ErrTypeStringTooShort
		case reflect.Slice, reflect.Map:
			return fmt.Sprintf("List should have at least %s items", fe.Param()), constants.ErrTypeValueError
		default:
			return fmt.Sprintf("Input should be greater than or equal to %s", fe.Param()), constants.ErrTypeGreaterThanEqual
		}

	case "max":
		switch fe.Kind() {
		case reflect.String:
			return fmt.Sprintf("String should have at most %s characters", fe.Param()), constants.ErrTypeStringTooLong
		case reflect.Slice, reflect.Map:
			return fmt.Sprintf("List should have at most %s items", fe.Param()), constants.ErrTypeValueError
		default:
			return fmt.Sprintf("Input should be less than or equal to %s", fe.Param()), constants.ErrTypeLessThanEqual
		}

	case "gt":
		return fmt.Sprintf("Input should be greater than %s", fe.Param()), constants.ErrTypeGreaterThan
	case "gte":
		return fmt.Sprintf("Input should be greater than or equal to %s", fe.Param()), constants.ErrTypeGreaterThanEqual
	case "lt":
		return fmt.Sprintf("Input should be less than %s", fe.Param()), constants.ErrTypeLessThan
	case "lte":
		return fmt.Sprintf("Input should be less than or equal to %s", fe.Param()), constants.ErrTypeLessThanEqual

	case "oneof":
		allowed := strings.ReplaceAll(fe.Param(), " ", ", ")
		return fmt.Sprintf("Input should be one of: %s", allowed), constants.ErrTypeEnum

	case "url":
		return "Input should be a valid URL", constants.ErrTypeValueError

	case "unique":
		return "List items must be unique", constants.ErrTypeValueError
	}

	return fmt.Sprintf("Failed validation on the '%s' constraint", fe.Tag()), constants.ErrTypeValueError
}
