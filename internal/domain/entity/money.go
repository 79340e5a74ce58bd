package entity

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"storefront/internal/errors"
)

// Money is a currency amount in paise. The remote API speaks rupees with up to
// two decimals, either as a JSON number or as a decimal string.
type Money int64

// Rupees builds a Money value from a whole rupee amount.
func Rupees(r int64) Money {
	return Money(r * 100)
}

// Mul returns m multiplied by a quantity without any rounding.
func (m Money) Mul(qty int) Money {
	return m * Money(qty)
}

// String renders the amount as a two-decimal rupee string, e.g. "14999.00".
func (m Money) String() string {
	sign := ""
	v := int64(m)
	if v < 0 {
		sign = "-"
		v = -v
	}
	frac := strconv.FormatInt(v%100, 10)
	if len(frac) == 1 {
		frac = "0" + frac
	}

	return sign + strconv.FormatInt(v/100, 10) + "." + frac
}

// MarshalJSON encodes the amount as a JSON number with two decimals.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalJSON accepts 14999, 14999.5, "14999.50" and null.
func (m *Money) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*m = 0
		return nil
	}
	raw := string(data)
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return errors.Wrap(err, "decode money string")
		}
		raw = s
	}

	parsed, err := ParseMoney(raw)
	if err != nil {
		return err
	}
	*m = parsed

	return nil
}

// ParseMoney parses a decimal rupee amount into paise. More than two decimal
// places is rejected rather than rounded.
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("empty money amount")
	}

	negative := false
	if s[0] == '-' || s[0] == '+' {
		negative = s[0] == '-'
		s = s[1:]
	}

	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" {
		whole = "0"
	}
	if len(frac) > 2 {
		if strings.Trim(frac[2:], "0") != "" {
			return 0, errors.Errorf("money amount %q has more than two decimals", s)
		}
		frac = frac[:2]
	}
	for len(frac) < 2 {
		frac += "0"
	}

	if !isDigits(whole) || !isDigits(frac) {
		return 0, errors.Errorf("money amount %q is not a decimal number", s)
	}

	rupees, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "parse money amount %q", s)
	}
	if rupees > math.MaxInt64/100-1 {
		return 0, errors.Errorf("money amount %q is out of range", s)
	}
	paise, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "parse money amount %q", s)
	}

	total := rupees*100 + paise
	if negative {
		total = -total
	}

	return Money(total), nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}
