package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuleset_FirstFailingCheckWins(t *testing.T) {
	rs := Ruleset{
		{Field: "dose", Checks: []Check{
			{Tag: "required", Message: "empty"},
			{Tag: "integer", Message: "not int"},
			{Tag: "intmin=1", Message: "range"},
			{Tag: "intmax=10", Message: "range"},
		}},
	}

	cases := map[string]string{
		"":    "empty",
		"abc": "not int",
		"0":   "range",
		"11":  "range",
		"1":   "",
		"10":  "",
		" 5 ": "",
	}
	for in, want := range cases {
		errs := rs.Validate(Fields{"dose": in})
		assert.Equal(t, want, errs["dose"], "input %q", in)
	}
}

func TestRuleset_AllFieldsAreChecked(t *testing.T) {
	rs := Ruleset{
		{Field: "a", Checks: []Check{{Tag: "required", Message: "a"}}},
		{Field: "b", Checks: []Check{{Tag: "required", Message: "b"}}},
	}

	errs := rs.Validate(nil)
	assert.Equal(t, Errors{"a": "a", "b": "b"}, errs)
	assert.False(t, errs.Empty())
	assert.Equal(t, "a: a; b: b", errs.Error())
}

func TestTags_Decimal(t *testing.T) {
	check := func(v, tag string) bool { return Check{Tag: tag}.passes(v) }

	assert.True(t, check("10.50", "decplaces=2"))
	assert.False(t, check("10.505", "decplaces=2"))
	assert.True(t, check("1000", "decplaces=2"))
	assert.False(t, check("-1", "decmin=0"))
	assert.True(t, check("0", "decmin=0"))
	assert.False(t, check("0", "decgt=0"))
	assert.False(t, check("abc", "decimal"))

	assert.True(t, check("10400.50", "pricefmt"))
	assert.False(t, check("-434.00", "pricefmt"))
	assert.False(t, check("1e3", "pricefmt"))
	assert.False(t, check("10 mil pesos", "pricefmt"))
	assert.False(t, check("1,000", "pricefmt"))
}

func TestTags_DecimalRejectsExponents(t *testing.T) {
	check := func(v, tag string) bool { return Check{Tag: tag}.passes(v) }

	start := time.Now()
	for _, v := range []string{"1e-100000000", "1e100000000", "1E3", "1.5e-10000000"} {
		for _, tag := range []string{"decimal", "decmin=0", "decgt=0", "decplaces=2"} {
			assert.False(t, check(v, tag), "%s %s", tag, v)
		}
	}
	assert.Less(t, time.Since(start), time.Second)

	assert.False(t, check(strings.Repeat("9", 65), "decimal"))
	assert.True(t, check(strings.Repeat("9", 64), "decimal"))
	assert.True(t, check("+5.25", "decimal"))
}

func TestTags_IntegerRange(t *testing.T) {
	check := func(v, tag string) bool { return Check{Tag: tag}.passes(v) }

	huge := "99999999999999999999"
	assert.True(t, check(huge, "integer"))
	assert.False(t, check(huge, "intmax=10"))
	assert.True(t, check("-"+huge, "integer"))
	assert.False(t, check("-"+huge, "intmin=1"))

	assert.True(t, check("10", "intmax=10"))
	assert.True(t, check("+1", "intmin=1"))
	assert.False(t, check("1.0", "integer"))
	assert.False(t, check("1_000", "integer"))
}

func TestTags_AlphaSpace(t *testing.T) {
	check := Check{Tag: "alphaspace"}

	assert.True(t, check.passes("Juan Sebastian Veron"))
	assert.True(t, check.passes("Ñandú Pérez"))
	assert.False(t, check.passes("Juan132"))
	assert.False(t, check.passes("juan.perez"))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("01/01/2015")
	require.NoError(t, err)
	assert.Equal(t, "01/01/2015", FormatDate(d))

	d, err = ParseDate("1/2/2015")
	require.NoError(t, err)
	assert.Equal(t, "01/02/2015", FormatDate(d))

	for _, bad := range []string{"", "2015-01-01", "31/02/2015", "13/13/2015", "hoy"} {
		_, err := ParseDate(bad)
		assert.Error(t, err, bad)
	}
}

func TestStripPhone(t *testing.T) {
	assert.Equal(t, "2215552324", StripPhone(" 221-555_2324 "))
	assert.Equal(t, "54 1134563456", StripPhone("54 1134563456"))
}

func TestChoiceSet(t *testing.T) {
	cs := NewChoiceSet("La Plata", "Berisso", "La Plata")

	assert.Equal(t, []string{"La Plata", "Berisso"}, cs.Values())
	assert.True(t, cs.Contains("Berisso"))
	assert.False(t, cs.Contains("berisso"))
	assert.False(t, cs.Contains(""))

	// Values no expone el slice interno
	vals := cs.Values()
	vals[0] = "otra"
	assert.True(t, cs.Contains("La Plata"))
}

func TestFields_Merge(t *testing.T) {
	base := Fields{"name": "Fido", "breed": "Beagle"}
	merged := base.Merge(Fields{"breed": "", "weight": "3"})

	assert.Equal(t, Fields{"name": "Fido", "breed": "", "weight": "3"}, merged)
	assert.Equal(t, "Beagle", base["breed"])
}

func TestResult(t *testing.T) {
	ok := Valid(42)
	assert.True(t, ok.OK())
	assert.Equal(t, 42, ok.Record)

	bad := Invalid[int](Errors{"x": "y"})
	assert.False(t, bad.OK())
}
