package dispatch

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandgrav/catalog-api/internal/constants"
)

// TestParseBool tests the literal boolean coercion sets
func TestParseBool(t *testing.T) {
	t.Run("TruthyLiterals", func(t *testing.T) {
		for _, raw := range []string{"true", "1", "on", "yes", "True", "YES", "On", "TRUE"} {
			b, err := ParseBool(raw)
			require.NoError(t, err, "literal %q", raw)
			assert.True(t, b, "literal %q", raw)
		}
	})

	t.Run("FalsyLiterals", func(t *testing.T) {
		for _, raw := range []string{"false", "0", "off", "no", "False", "NO", "Off", "FALSE"} {
			b, err := ParseBool(raw)
			require.NoError(t, err, "literal %q", raw)
			assert.False(t, b, "literal %q", raw)
		}
	})

	t.Run("InvalidLiterals", func(t *testing.T) {
		for _, raw := range []string{"", "2", "yep", "truee", "ja", "y", "t"} {
			_, err := ParseBool(raw)
			assert.Error(t, err, "literal %q", raw)
		}
	})
}

// TestCoerceScalar tests type coercion and constraint checking for scalars
func TestCoerceScalar(t *testing.T) {
	loc := []string{"query", "value"}

	t.Run("Int", func(t *testing.T) {
		spec := &ParameterSpec{Name: "value", Source: SourceQuery, Kind: KindInt}

		v, issues := coerceScalar(spec, "42", loc)
		require.Empty(t, issues)
		assert.Equal(t, int64(42), v)

		_, issues = coerceScalar(spec, "forty-two", loc)
		require.Len(t, issues, 1)
		assert.Equal(t, constants.ErrTypeIntParsing, issues[0].Type)
		assert.Equal(t, loc, issues[0].Location)
	})

	t.Run("IntBounds", func(t *testing.T) {
		spec := &ParameterSpec{
			Name: "value", Source: SourceQuery, Kind: KindInt,
			Ge: Float(0), Le: Float(1000),
		}

		_, issues := coerceScalar(spec, "1000", loc)
		assert.Empty(t, issues)

		_, issues = coerceScalar(spec, "1001", loc)
		require.Len(t, issues, 1)
		assert.Equal(t, constants.ErrTypeLessThanEqual, issues[0].Type)

		_, issues = coerceScalar(spec, "-1", loc)
		require.Len(t, issues, 1)
		assert.Equal(t, constants.ErrTypeGreaterThanEqual, issues[0].Type)
	})

	t.Run("FloatExclusiveBounds", func(t *testing.T) {
		spec := &ParameterSpec{
			Name: "value", Source: SourceQuery, Kind: KindFloat,
			Gt: Float(0), Lt: Float(10),
		}

		v, issues := coerceScalar(spec, "2.5", loc)
		require.Empty(t, issues)
		assert.Equal(t, 2.5, v)

		// Exclusive bounds reject the bound value itself
		_, issues = coerceScalar(spec, "0", loc)
		require.Len(t, issues, 1)
		assert.Equal(t, constants.ErrTypeGreaterThan, issues[0].Type)

		_, issues = coerceScalar(spec, "10", loc)
		require.Len(t, issues, 1)
		assert.Equal(t, constants.ErrTypeLessThan, issues[0].Type)

		_, issues = coerceScalar(spec, "not-a-number", loc)
		require.Len(t, issues, 1)
		assert.Equal(t, constants.ErrTypeFloatParsing, issues[0].Type)
	})

	t.Run("NonFiniteFloats", func(t *testing.T) {
		spec := &ParameterSpec{
			Name: "value", Source: SourceQuery, Kind: KindFloat,
			Gt: Float(0), Lt: Float(10),
		}

		// Non-finite values would otherwise pass every bound comparison
		for _, raw := range []string{"NaN", "nan", "Inf", "-Inf", "Infinity"} {
			_, issues := coerceScalar(spec, raw, loc)
			require.Len(t, issues, 1, "value %q", raw)
			assert.Equal(t, constants.ErrTypeFloatParsing, issues[0].Type, "value %q", raw)
		}
	})

	t.Run("Enum", func(t *testing.T) {
		spec := &ParameterSpec{
			Name: "value", Source: SourceQuery, Kind: KindEnum,
			Enum: []string{"alexnet", "resnet", "lenet"},
		}

		v, issues := coerceScalar(spec, "resnet", loc)
		require.Empty(t, issues)
		assert.Equal(t, "resnet", v)

		// Enum members are case-sensitive
		_, issues = coerceScalar(spec, "Resnet", loc)
		require.Len(t, issues, 1)
		assert.Equal(t, constants.ErrTypeEnum, issues[0].Type)
		assert.Contains(t, issues[0].Message, "alexnet, resnet, lenet")
	})

	t.Run("StringConstraints", func(t *testing.T) {
		spec := &ParameterSpec{
			Name: "value", Source: SourceQuery, Kind: KindString,
			MinLength: Int(3), MaxLength: Int(10),
			Pattern: regexp.MustCompile(`^fixedquery$`),
		}

		v, issues := coerceScalar(spec, "fixedquery", loc)
		require.Empty(t, issues)
		assert.Equal(t, "fixedquery", v)

		// A short non-matching value violates two independent constraints
		_, issues = coerceScalar(spec, "ab", loc)
		require.Len(t, issues, 2)
		assert.Equal(t, constants.ErrTypeStringTooShort, issues[0].Type)
		assert.Equal(t, constants.ErrTypeStringPattern, issues[1].Type)

		_, issues = coerceScalar(spec, "definitely-too-long", loc)
		require.Len(t, issues, 2)
		assert.Equal(t, constants.ErrTypeStringTooLong, issues[0].Type)
	})
}

// TestCoerceList tests element-wise validation of repeated query parameters
func TestCoerceList(t *testing.T) {
	loc := []string{"query", "q"}

	t.Run("AllValid", func(t *testing.T) {
		spec := &ParameterSpec{Name: "q", Source: SourceQuery, Kind: KindStringList}
		elems, issues := coerceList(spec, []string{"foo", "bar"}, loc)
		require.Empty(t, issues)
		assert.Equal(t, []string{"foo", "bar"}, elems)
	})

	t.Run("ElementConstraintViolations", func(t *testing.T) {
		spec := &ParameterSpec{
			Name: "q", Source: SourceQuery, Kind: KindStringList,
			MinLength: Int(3),
		}
		_, issues := coerceList(spec, []string{"ok-value", "x", "y"}, loc)
		require.Len(t, issues, 2)
		assert.Equal(t, []string{"query", "q", "1"}, issues[0].Location)
		assert.Equal(t, []string{"query", "q", "2"}, issues[1].Location)
	})
}
