//go:build unit

package menu_test

import (
	"strings"
	"testing"

	"hotel-frontdesk/internal/domain/menu"
	"hotel-frontdesk/internal/domain/money"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	price := money.FromCents(2500000)

	tests := []struct {
		name     string
		itemName string
		category menu.Category
		price    money.Money
		errIs    error
	}{
		{name: "正常な料理OK", itemName: "Nasi Goreng", category: menu.CategoryFood, price: price},
		{name: "飲み物OK", itemName: "Es Teh", category: menu.CategoryBeverage, price: price},
		{name: "空の名前NG", itemName: "  ", category: menu.CategoryFood, price: price, errIs: menu.ErrEmptyName},
		{name: "長すぎる名前NG", itemName: strings.Repeat("a", menu.MaxNameLength+1), category: menu.CategoryFood, price: price, errIs: menu.ErrNameTooLong},
		{name: "不正なカテゴリNG", itemName: "Nasi Goreng", category: "dessert", price: price, errIs: menu.ErrInvalidCategory},
		{name: "価格ゼロNG", itemName: "Nasi Goreng", category: menu.CategoryFood, price: money.Zero(), errIs: menu.ErrNonPositivePrice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := menu.NewItem(tt.itemName, tt.category, tt.price, true, " house special ")
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				require.Nil(t, item)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, strings.TrimSpace(tt.itemName), item.Name())
			assert.Equal(t, "house special", item.Description())
			assert.True(t, item.Available())
		})
	}
}

func TestItemUpdate(t *testing.T) {
	item, err := menu.NewItem("Kopi", menu.CategoryBeverage, money.FromCents(1500000), true, "")
	require.NoError(t, err)

	t.Run("不正な更新は元の値を保持", func(t *testing.T) {
		err := item.Update("Kopi Susu", menu.CategoryBeverage, money.Zero(), false, "")
		require.ErrorIs(t, err, menu.ErrNonPositivePrice)
		assert.Equal(t, "Kopi", item.Name())
		assert.True(t, item.Available())
	})

	t.Run("更新成功", func(t *testing.T) {
		require.NoError(t, item.Update("Kopi Susu", menu.CategoryBeverage, money.FromCents(1800000), false, "with milk"))
		assert.Equal(t, "Kopi Susu", item.Name())
		assert.Equal(t, int64(1800000), item.Price().Cents())
		assert.False(t, item.Available())
	})
}

func TestNewCategory(t *testing.T) {
	c, err := menu.NewCategory("other")
	require.NoError(t, err)
	assert.Equal(t, menu.CategoryOther, c)

	_, err = menu.NewCategory("snack")
	require.ErrorIs(t, err, menu.ErrInvalidCategory)
}
