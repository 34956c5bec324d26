package search

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCategories struct {
	names map[string]struct{}
}

func (f *fakeCategories) CategoryExists(_ context.Context, name string) (bool, error) {
	_, ok := f.names[strings.ToLower(name)]
	return ok, nil
}

func newFakeCategories(names ...string) *fakeCategories {
	f := &fakeCategories{names: make(map[string]struct{})}
	for _, n := range names {
		f.names[strings.ToLower(n)] = struct{}{}
	}
	return f
}

func TestClassify(t *testing.T) {
	ctx := context.Background()

	t.Run("colour and item name", func(t *testing.T) {
		categories := newFakeCategories("electronics")

		criteria, err := Classify(ctx, categories, "I lost my red bag")
		require.NoError(t, err)

		require.NotNil(t, criteria.Colour)
		assert.Equal(t, "red", *criteria.Colour)
		require.NotNil(t, criteria.ItemName)
		assert.Equal(t, "bag", *criteria.ItemName)
		assert.Nil(t, criteria.Category)
	})

	t.Run("known category short-circuits", func(t *testing.T) {
		categories := newFakeCategories("electronics")

		criteria, err := Classify(ctx, categories, "electronics")
		require.NoError(t, err)

		require.NotNil(t, criteria.Category)
		assert.Equal(t, "electronics", *criteria.Category)
		assert.Nil(t, criteria.ItemName)
		assert.Nil(t, criteria.Colour)
	})

	t.Run("category match discards leftover tokens", func(t *testing.T) {
		categories := newFakeCategories("sports equipment")

		criteria, err := Classify(ctx, categories, "sports equipment tennis racket")
		require.NoError(t, err)

		require.NotNil(t, criteria.Category)
		assert.Equal(t, "sports equipment", *criteria.Category)
		assert.Nil(t, criteria.ItemName)
	})

	t.Run("first colour wins", func(t *testing.T) {
		categories := newFakeCategories()

		criteria, err := Classify(ctx, categories, "blue green wallet")
		require.NoError(t, err)

		require.NotNil(t, criteria.Colour)
		assert.Equal(t, "blue", *criteria.Colour)
		require.NotNil(t, criteria.ItemName)
		assert.Equal(t, "wallet", *criteria.ItemName)
	})

	t.Run("stop words removed as whole words", func(t *testing.T) {
		categories := newFakeCategories()

		// "formal" contains the stop word "for" but must survive intact.
		criteria, err := Classify(ctx, categories, "find my formal jacket")
		require.NoError(t, err)

		require.NotNil(t, criteria.ItemName)
		assert.Equal(t, "formal jacket", *criteria.ItemName)
	})

	t.Run("only stop words leaves no criteria", func(t *testing.T) {
		categories := newFakeCategories()

		criteria, err := Classify(ctx, categories, "i lost my")
		require.NoError(t, err)

		assert.Nil(t, criteria.ItemName)
		assert.Nil(t, criteria.Colour)
		assert.Nil(t, criteria.Category)
	})
}
