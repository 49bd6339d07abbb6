package usecase_test

import (
	"testing"

	"suggestion-app/src/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListView_InitialState(t *testing.T) {
	view := usecase.NewListView(seedCatalog())

	assert.Equal(t, []int{1, 2, 3, 4, 5}, suggestionIDs(view.FilteredSuggestions()))
	assert.Empty(t, view.Favorites())
	assert.Empty(t, view.SearchTerm())
	assert.False(t, view.IsLiked(1))
}

func TestListView_ToggleLike(t *testing.T) {
	t.Run("いいねと取り消し", func(t *testing.T) {
		view := usecase.NewListView(seedCatalog())

		s, liked, err := view.ToggleLike(2)
		require.NoError(t, err)
		assert.True(t, liked)
		assert.Equal(t, 1, s.Likes)
		assert.True(t, view.IsLiked(2))

		s, liked, err = view.ToggleLike(2)
		require.NoError(t, err)
		assert.False(t, liked)
		assert.Equal(t, 0, s.Likes)
		assert.False(t, view.IsLiked(2))
	})

	t.Run("二回呼ぶと元の状態に戻る", func(t *testing.T) {
		catalog := seedCatalog()
		catalog[0].Likes = 7
		view := usecase.NewListView(catalog)

		_, _, err := view.ToggleLike(1)
		require.NoError(t, err)
		_, _, err = view.ToggleLike(1)
		require.NoError(t, err)

		assert.Equal(t, 7, view.Suggestions()[0].Likes)
		assert.False(t, view.IsLiked(1))
	})

	t.Run("存在しないID", func(t *testing.T) {
		view := usecase.NewListView(seedCatalog())

		_, _, err := view.ToggleLike(999)
		assert.ErrorIs(t, err, usecase.ErrSuggestionNotFound)
		assert.False(t, view.IsLiked(999))
	})

	t.Run("元のカタログは変更されない", func(t *testing.T) {
		catalog := seedCatalog()
		view := usecase.NewListView(catalog)

		_, _, err := view.ToggleLike(3)
		require.NoError(t, err)
		assert.Equal(t, 0, catalog[2].Likes)
	})

	t.Run("絞り込み結果といいね数が一致する", func(t *testing.T) {
		view := usecase.NewListView(seedCatalog())
		view.SetSearchTerm("techno")

		_, _, err := view.ToggleLike(4)
		require.NoError(t, err)

		filtered := view.FilteredSuggestions()
		require.Len(t, filtered, 2)
		assert.Equal(t, 1, filtered[1].Likes)
	})
}

func TestListView_Favorites(t *testing.T) {
	t.Run("重複追加は無視される", func(t *testing.T) {
		view := usecase.NewListView(seedCatalog())

		added, err := view.AddToFavorites(3)
		require.NoError(t, err)
		assert.True(t, added)

		added, err = view.AddToFavorites(3)
		require.NoError(t, err)
		assert.False(t, added)

		favorites := view.Favorites()
		require.Len(t, favorites, 1)
		assert.Equal(t, 3, favorites[0].ID)
		assert.True(t, view.IsInFavorites(3))
	})

	t.Run("追加順を保持する", func(t *testing.T) {
		view := usecase.NewListView(seedCatalog())

		for _, id := range []int{5, 1, 3} {
			_, err := view.AddToFavorites(id)
			require.NoError(t, err)
		}

		assert.Equal(t, []int{5, 1, 3}, suggestionIDs(view.Favorites()))
	})

	t.Run("削除", func(t *testing.T) {
		view := usecase.NewListView(seedCatalog())
		_, err := view.AddToFavorites(1)
		require.NoError(t, err)
		_, err = view.AddToFavorites(2)
		require.NoError(t, err)

		removed, err := view.RemoveFromFavorites(1)
		require.NoError(t, err)
		assert.True(t, removed)
		assert.Equal(t, []int{2}, suggestionIDs(view.Favorites()))
		assert.False(t, view.IsInFavorites(1))
	})

	t.Run("お気に入りにない場合の削除は何もしない", func(t *testing.T) {
		view := usecase.NewListView(seedCatalog())
		_, err := view.AddToFavorites(4)
		require.NoError(t, err)

		removed, err := view.RemoveFromFavorites(2)
		require.NoError(t, err)
		assert.False(t, removed)
		assert.Equal(t, []int{4}, suggestionIDs(view.Favorites()))
	})

	t.Run("存在しないID", func(t *testing.T) {
		view := usecase.NewListView(seedCatalog())

		_, err := view.AddToFavorites(999)
		assert.ErrorIs(t, err, usecase.ErrSuggestionNotFound)
		_, err = view.RemoveFromFavorites(999)
		assert.ErrorIs(t, err, usecase.ErrSuggestionNotFound)
	})

	t.Run("お気に入りはいいね数の変更を反映する", func(t *testing.T) {
		view := usecase.NewListView(seedCatalog())
		_, err := view.AddToFavorites(5)
		require.NoError(t, err)
		_, _, err = view.ToggleLike(5)
		require.NoError(t, err)

		assert.Equal(t, 1, view.Favorites()[0].Likes)
	})
}

func TestListView_FilterSuggestions(t *testing.T) {
	view := usecase.NewListView(seedCatalog())

	view.SetSearchTerm("techno")
	assert.Equal(t, "techno", view.SearchTerm())
	assert.Equal(t, []int{2, 4}, suggestionIDs(view.FilteredSuggestions()))

	view.SetSearchTerm("   ")
	assert.Equal(t, []int{1, 2, 3, 4, 5}, suggestionIDs(view.FilteredSuggestions()))

	view.SetSearchTerm("introuvable")
	assert.Empty(t, view.FilteredSuggestions())

	view.SetSearchTerm("")
	view.FilterSuggestions()
	assert.Equal(t, []int{1, 2, 3, 4, 5}, suggestionIDs(view.FilteredSuggestions()))
}

func TestListView_State(t *testing.T) {
	view := usecase.NewListView(seedCatalog())
	view.SetSearchTerm("système")
	_, _, err := view.ToggleLike(3)
	require.NoError(t, err)
	_, err = view.AddToFavorites(2)
	require.NoError(t, err)

	state := view.State()

	assert.Equal(t, "système", state.SearchTerm)
	assert.Equal(t, []int{2, 3}, suggestionIDs(state.Suggestions))
	assert.Equal(t, 5, state.Total)
	assert.True(t, state.IsLiked(3))
	assert.False(t, state.IsLiked(2))
	assert.True(t, state.IsInFavorites(2))
	assert.False(t, state.IsInFavorites(3))
}
