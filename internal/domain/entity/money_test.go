package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMoney(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    Money
		wantErr bool
	}{
		{name: "whole rupees", input: "14999", want: 1499900},
		{name: "two decimals", input: "1250.50", want: 125050},
		{name: "one decimal", input: "99.5", want: 9950},
		{name: "trailing zeros beyond paise", input: "10.500", want: 1050},
		{name: "leading dot", input: ".75", want: 75},
		{name: "negative", input: "-12.34", want: -1234},
		{name: "surrounding space", input: "  5 ", want: 500},
		{name: "sub-paise amount", input: "1.005", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "not a number", input: "abc", wantErr: true},
		{name: "signed fraction", input: "1.-5", wantErr: true},
		{name: "plus in fraction", input: "1.+5", wantErr: true},
		{name: "signed whole after sign", input: "-+3", wantErr: true},
		{name: "overflows paise", input: "92233720368547758", wantErr: true},
		{name: "largest whole rupees", input: "92233720368547757", want: Money(9223372036854775700)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseMoney(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMoney_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "14999.00", Rupees(14999).String())
	assert.Equal(t, "0.05", Money(5).String())
	assert.Equal(t, "-3.10", Money(-310).String())
}

func TestMoney_JSON(t *testing.T) {
	t.Parallel()

	var p struct {
		Price    Money `json:"price"`
		Shipping Money `json:"shipping"`
		Discount Money `json:"discount"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"price":"1250.00","shipping":49.5,"discount":null}`), &p))

	assert.Equal(t, Money(125000), p.Price)
	assert.Equal(t, Money(4950), p.Shipping)
	assert.Equal(t, Money(0), p.Discount)

	out, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"price":1250.00,"shipping":49.50,"discount":0.00}`, string(out))
}

func TestMoney_UnmarshalRejectsGarbage(t *testing.T) {
	t.Parallel()

	var m Money
	assert.Error(t, json.Unmarshal([]byte(`"twelve"`), &m))
}
