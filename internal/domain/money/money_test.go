//go:build unit

package money_test

import (
	"testing"

	"hotel-frontdesk/internal/domain/money"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		cents int64
		errIs error
	}{
		{name: "整数", in: "500000", cents: 50000000},
		{name: "小数2桁", in: "12.34", cents: 1234},
		{name: "ゼロ", in: "0", cents: 0},
		{name: "負数NG", in: "-1", errIs: money.ErrNegativeAmount},
		{name: "小数3桁NG", in: "1.005", errIs: money.ErrTooPrecise},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m, err := money.Parse(c.in)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.cents, m.Cents())
		})
	}

	t.Run("数値以外NG", func(t *testing.T) {
		_, err := money.Parse("abc")
		require.Error(t, err)
	})
}

func TestMoney(t *testing.T) {
	price := money.FromCents(50000000)

	assert.Equal(t, "500000.00", price.String())
	assert.True(t, price.Decimal().Equal(decimal.NewFromInt(500000)))
	assert.Equal(t, int64(100000000), price.Times(2).Cents())
	assert.True(t, price.Times(0).IsZero())
	assert.True(t, price.Times(-3).IsZero())
	assert.Equal(t, int64(50000100), price.Add(money.FromCents(100)).Cents())

	_, err := money.New(-1)
	require.ErrorIs(t, err, money.ErrNegativeAmount)
}
