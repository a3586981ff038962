package digitlist

import (
	"fmt"
	"iter"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToDecimal(t *testing.T) {

	testSpec := []struct {
		digits Digits
		base   int
		output string
	}{
		{Digits{1, 0, 0, 0}, 10, "1000"},
		{Digits{0, 0, 7}, 10, "7"},
		{Digits{15, 15}, 16, "255"},
		{Digits{1, 0, 1}, 2, "5"},
		{Digits{0}, 8, "0"},
		{Digits{1, 12}, 10, "22"},
		{Digits{}, 10, ""},
	}

	for idx, spec := range testSpec {
		sampleNumber := idx + 1
		t.Run(fmt.Sprintf("Sample%d", sampleNumber), func(t *testing.T) {
			l, err := NewBase(spec.base)
			require.NoError(t, err, "Unable to create list")
			l.AddAll(spec.digits)
			require.Equal(t, spec.output, l.ToDecimal(), "ToDecimal of %v in base %d", spec.digits, spec.base)
		})
	}
}

func TestChangeBase(t *testing.T) {

	testSpec := []struct {
		input   string
		newBase int
		output  string
	}{
		{"255", 16, "FF"},
		{"10", 2, "1010"},
		{"0", 16, "0"},
		{"1000", 10, "1000"},
		{"35", 36, "Z"},
		{"4095", 16, "FFF"},
		{"18446744073709551616", 16, "10000000000000000"},
	}

	for idx, spec := range testSpec {
		sampleNumber := idx + 1
		t.Run(fmt.Sprintf("Sample%d", sampleNumber), func(t *testing.T) {
			l := Parse(spec.input)
			res, err := l.ChangeBase(spec.newBase)
			require.NoError(t, err, "Unable to change base")
			require.Equal(t, spec.newBase, res.Base())
			require.Equal(t, spec.output, res.String(), "ChangeBase(%d) of %s", spec.newBase, spec.input)
			require.Equal(t, spec.input, l.String(), "receiver modified")
		})
	}
}

func TestChangeBaseEmpty(t *testing.T) {
	res, err := New().ChangeBase(16)
	require.NoError(t, err)
	require.True(t, res.IsEmpty())
	require.Equal(t, 16, res.Base())
}

func TestChangeBaseInvalid(t *testing.T) {
	for _, base := range []int{0, 1, 37} {
		_, err := Parse("12").ChangeBase(base)
		require.ErrorIs(t, err, ErrInvalidBase, "ChangeBase(%d)", base)
	}
}

func TestChangeBaseRoundTrip(t *testing.T) {
	l := Parse("98765432109876543210")
	want := l.ToDecimal()

	for b1 := 2; b1 <= 36; b1++ {
		for _, b2 := range []int{2, 7, 10, 16, 36} {
			first, err := l.ChangeBase(b1)
			require.NoError(t, err, "ChangeBase(%d)", b1)
			second, err := first.ChangeBase(b2)
			require.NoError(t, err, "ChangeBase(%d)", b2)
			require.Equal(t, want, second.ToDecimal(), "bases %d then %d", b1, b2)
		}
	}
}

func TestDivide(t *testing.T) {

	testSpec := []struct {
		dividend *List
		divisor  Sequence
		quotient string
	}{
		{Parse("1000"), Parse("7"), "142"},
		{Parse("123"), Parse("123"), "1"},
		{Parse("5"), Parse("7"), "0"},
		{New(), Parse("7"), "0"},
		{Parse("99999999999999999999999"), Parse("3"), "33333333333333333333333"},
		// 0xFF = 255
		{Parse("1000"), mustParseBase("FF", 16), "3"},
		// raw concatenation: 1, 12 reads as 112
		{Parse("1120"), Digits{1, 12}, "10"},
		{Parse("1000"), Digits{7}, "142"},
	}

	for idx, spec := range testSpec {
		sampleNumber := idx + 1
		t.Run(fmt.Sprintf("Sample%d", sampleNumber), func(t *testing.T) {
			q, err := spec.dividend.Divide(spec.divisor)
			require.NoError(t, err, "Unable to divide")
			require.Equal(t, 10, q.Base(), "quotient base")
			require.Equal(t, spec.quotient, q.String())
		})
	}
}

func TestDivideFallbackDiffers(t *testing.T) {
	// the same digits read natively in base 16 and by concatenation
	a, err := Parse("560").Divide(mustParseBase("1C", 16))
	require.NoError(t, err)
	b, err := Parse("560").Divide(Digits{1, 12})
	require.NoError(t, err)

	require.Equal(t, "20", a.String())
	require.Equal(t, "5", b.String())
}

// fixedRenderer renders a stored decimal string and reads its fields, so a
// nil *fixedRenderer cannot render itself.
type fixedRenderer struct {
	decimal string
}

func (r *fixedRenderer) Len() int             { return len(r.decimal) }
func (r *fixedRenderer) All() iter.Seq[Digit] { return Parse(r.decimal).All() }
func (r *fixedRenderer) ToDecimal() string    { return r.decimal }

func TestDivideCustomRenderer(t *testing.T) {
	q, err := Parse("100").Divide(&fixedRenderer{decimal: "25"})
	require.NoError(t, err)
	require.Equal(t, "4", q.String())
}

func TestDivideByZero(t *testing.T) {
	var nilList *List
	var nilRenderer *fixedRenderer
	var nilDigits Digits

	divisors := []Sequence{
		Parse("0"),
		Parse("000"),
		New(),
		Digits{},
		Digits{0, 0},
		nil,
		nilList,
		nilRenderer,
		nilDigits,
		&fixedRenderer{decimal: "not a number"},
	}

	for idx, divisor := range divisors {
		sampleNumber := idx + 1
		t.Run(fmt.Sprintf("Sample%d", sampleNumber), func(t *testing.T) {
			l := FromDigits(1, 2, 3)
			_, err := l.Divide(divisor)
			require.ErrorIs(t, err, ErrDivisionByZero)
			require.Equal(t, "123", l.String(), "dividend modified")
		})
	}
}

func mustParseBase(s string, base int) *List {
	l, err := ParseBase(s, base)
	if err != nil {
		panic(err)
	}
	return l
}
