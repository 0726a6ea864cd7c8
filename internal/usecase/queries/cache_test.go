//go:build unit

package queries_test

import (
	"context"
	"testing"

	"hotel-frontdesk/internal/pkg/errs"
	"hotel-frontdesk/internal/usecase/queries"
	"hotel-frontdesk/internal/usecase/shared"
	queriesmock "hotel-frontdesk/tests/mock/queries"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCachedReadThrough(t *testing.T) {
	items := []*queries.MenuItemView{{Name: "Nasi goreng"}}

	t.Run("ヒット時はストアを読まない", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockMenuReadStore(ctrl)
		cache := queriesmock.NewMockCache(ctrl)

		cache.EXPECT().Stamp(gomock.Any(), shared.TagMenu).Return("4", nil)
		cache.EXPECT().Get(gomock.Any(), "menu:all@4", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, dst any) (bool, error) {
				*dst.(*[]*queries.MenuItemView) = items
				return true, nil
			})

		got, err := queries.NewMenuQueries(store, cache).List(context.Background(), false)
		require.NoError(t, err)
		require.Equal(t, items, got)
	})

	t.Run("読み込み中の無効化後は古い世代に保存", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockMenuReadStore(ctrl)
		cache := queriesmock.NewMockCache(ctrl)

		generation := "4"
		cache.EXPECT().Stamp(gomock.Any(), shared.TagMenu).
			DoAndReturn(func(context.Context, ...string) (string, error) { return generation, nil }).Times(2)
		cache.EXPECT().Get(gomock.Any(), "menu:all@4", gomock.Any()).Return(false, nil)
		store.EXPECT().List(gomock.Any(), false).
			DoAndReturn(func(context.Context, bool) ([]*queries.MenuItemView, error) {
				// a writer invalidates the menu while this read is loading
				generation = "5"
				return items, nil
			})
		cache.EXPECT().Set(gomock.Any(), "menu:all@4", items, shared.TagMenu).Return(nil)

		q := queries.NewMenuQueries(store, cache)
		_, err := q.List(context.Background(), false)
		require.NoError(t, err)

		// the next reader looks under the new generation and misses
		fresh := []*queries.MenuItemView{{Name: "Mie goreng"}}
		cache.EXPECT().Get(gomock.Any(), "menu:all@5", gomock.Any()).Return(false, nil)
		store.EXPECT().List(gomock.Any(), false).Return(fresh, nil)
		cache.EXPECT().Set(gomock.Any(), "menu:all@5", fresh, shared.TagMenu).Return(nil)

		got, err := q.List(context.Background(), false)
		require.NoError(t, err)
		require.Equal(t, fresh, got)
	})

	t.Run("スタンプ取得失敗時はストアから直接", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockMenuReadStore(ctrl)
		cache := queriesmock.NewMockCache(ctrl)

		cache.EXPECT().Stamp(gomock.Any(), shared.TagMenu).Return("", errs.New("connection refused"))
		store.EXPECT().List(gomock.Any(), true).Return(items, nil)

		got, err := queries.NewMenuQueries(store, cache).List(context.Background(), true)
		require.NoError(t, err)
		require.Equal(t, items, got)
	})
}
