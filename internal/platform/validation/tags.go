package validation

import (
	"math/big"
	"regexp"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// DateLayout es el formato de fecha de los formularios (dd/mm/yyyy).
// "2/1/2006" acepta día y mes con uno o dos dígitos.
const DateLayout = "2/1/2006"

var (
	reAlphaSpace = regexp.MustCompile(`^[a-zA-ZáéíóúÁÉÍÓÚüÜñÑ ]+$`)
	rePrice      = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?$`)

	// sin exponente y con largo acotado: decimal.NewFromString acepta "1e-100000000"
	// y las comparaciones posteriores arman un big.Int de ese tamaño
	rePlainDecimal = regexp.MustCompile(`^[+-]?[0-9]{1,64}(\.[0-9]{1,64})?$`)
	reInteger      = regexp.MustCompile(`^[+-]?[0-9]+$`)
)

var engine = newEngine()

func newEngine() *validator.Validate {
	v := validator.New()

	custom := map[string]validator.Func{
		"alphaspace": func(fl validator.FieldLevel) bool {
			return reAlphaSpace.MatchString(fl.Field().String())
		},
		"date": func(fl validator.FieldLevel) bool {
			_, err := ParseDate(fl.Field().String())
			return err == nil
		},
		"decimal": func(fl validator.FieldLevel) bool {
			_, ok := parseDecimal(fl.Field().String())
			return ok
		},
		"decmin": decimalCompare(func(d, p decimal.Decimal) bool { return d.GreaterThanOrEqual(p) }),
		"decgt":  decimalCompare(func(d, p decimal.Decimal) bool { return d.GreaterThan(p) }),
		"decplaces": func(fl validator.FieldLevel) bool {
			d, ok := parseDecimal(fl.Field().String())
			if !ok {
				return false
			}
			places, err := strconv.Atoi(fl.Param())
			if err != nil {
				return false
			}
			return d.Equal(d.Round(int32(places)))
		},
		"pricefmt": func(fl validator.FieldLevel) bool {
			return rePrice.MatchString(fl.Field().String())
		},
		"integer": func(fl validator.FieldLevel) bool {
			_, ok := parseInt(fl.Field().String())
			return ok
		},
		"intmin": intCompare(func(c int) bool { return c >= 0 }),
		"intmax": intCompare(func(c int) bool { return c <= 0 }),
	}

	for tag, fn := range custom {
		// solo falla con tags vacíos o reservados
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
	return v
}

func decimalCompare(cmp func(d, p decimal.Decimal) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		d, ok := parseDecimal(fl.Field().String())
		if !ok {
			return false
		}
		p, err := decimal.NewFromString(fl.Param())
		if err != nil {
			return false
		}
		return cmp(d, p)
	}
}

// intCompare compara sin límite de tamaño: "99999999999999999999" es un entero
// fuera de rango, no un valor inválido.
func intCompare(cmp func(c int) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		n, ok := parseInt(fl.Field().String())
		if !ok {
			return false
		}
		p, ok := parseInt(fl.Param())
		if !ok {
			return false
		}
		return cmp(n.Cmp(p))
	}
}

func parseDecimal(s string) (decimal.Decimal, bool) {
	if !rePlainDecimal.MatchString(s) {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(s)
	return d, err == nil
}

func parseInt(s string) (*big.Int, bool) {
	if !reInteger.MatchString(s) {
		return nil, false
	}
	return new(big.Int).SetString(s, 10)
}

// ParseDate parsea una fecha dd/mm/yyyy.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// FormatDate es la inversa de ParseDate, siempre con dos dígitos.
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006")
}
