package store

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemStore_ListProducts_NoFilters(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	all, err := s.ListProducts(ctx, ProductQuery{})
	require.NoError(t, err)
	require.NotEmpty(t, all)

	for i := 1; i < len(all); i++ {
		assert.False(t, all[i].CreatedAt.After(all[i-1].CreatedAt),
			"products must be sorted newest first")
	}
}

func TestMemStore_ListProducts_CategoryFilterIncludesMembers(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	all, err := s.ListProducts(ctx, ProductQuery{})
	require.NoError(t, err)

	for _, p := range all {
		got, err := s.ListProducts(ctx, ProductQuery{CategoryID: &p.CategoryID})
		require.NoError(t, err)

		found := false
		for _, q := range got {
			assert.Equal(t, p.CategoryID, q.CategoryID)
			if q.ID == p.ID {
				found = true
			}
		}
		assert.True(t, found, "product %q missing from its own category", p.Slug)
	}
}

func TestMemStore_ListProducts_SearchSoundAndComplete(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	all, err := s.ListProducts(ctx, ProductQuery{})
	require.NoError(t, err)

	for _, search := range []string{"netflix", "STREAMING", "thiết kế", "ai"} {
		got, err := s.ListProducts(ctx, ProductQuery{Search: search})
		require.NoError(t, err)

		returned := map[int]bool{}
		for _, p := range got {
			assert.True(t, hasSubstring(p, search), "%q does not match %q", p.Slug, search)
			returned[p.ID] = true
		}
		for _, p := range all {
			if hasSubstring(p, search) {
				assert.True(t, returned[p.ID], "%q matches %q but was not returned", p.Slug, search)
			}
		}
	}
}

func hasSubstring(p Product, search string) bool {
	needle := strings.ToLower(search)
	if strings.Contains(strings.ToLower(p.Name), needle) ||
		strings.Contains(strings.ToLower(p.Description), needle) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

func TestMemStore_ListProducts_LimitIsSortedPrefix(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	all, err := s.ListProducts(ctx, ProductQuery{})
	require.NoError(t, err)
	require.Greater(t, len(all), 3)

	got, err := s.ListProducts(ctx, ProductQuery{Limit: 3})
	require.NoError(t, err)
	require.Len(t, got, 3)

	for i, p := range got {
		assert.Equal(t, all[i].ID, p.ID, "limited result must be a prefix of the sorted list")
	}
}

func TestMemStore_ListProducts_EmptyResultIsNotAnError(t *testing.T) {
	s := NewMemStore()

	got, err := s.ListProducts(context.Background(), ProductQuery{Search: "no-such-product-xyz"})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMemStore_SeededNetflixScenario(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	p, ok, err := s.GetProductBySlug(ctx, "netflix-premium-1-thang")
	require.NoError(t, err)
	require.True(t, ok)

	assert.True(t, p.Price.Equal(decimal.RequireFromString("129000")))
	require.NotNil(t, p.SalePrice)
	assert.True(t, p.SalePrice.Equal(decimal.RequireFromString("99000")))

	featured := true
	got, err := s.ListProducts(ctx, ProductQuery{Featured: &featured})
	require.NoError(t, err)

	found := false
	for _, q := range got {
		assert.True(t, q.Featured)
		if q.Slug == p.Slug {
			found = true
		}
	}
	assert.True(t, found, "netflix product must be in the featured set")
}

func TestMemStore_ListProductsByCategory(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	got, err := s.ListProductsByCategory(ctx, "giai-tri")
	require.NoError(t, err)
	require.NotEmpty(t, got)
	for _, p := range got {
		assert.Equal(t, 1, p.CategoryID)
	}

	none, err := s.ListProductsByCategory(ctx, "khong-ton-tai")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMemStore_Categories_ProductCountDerived(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	categories, err := s.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 5)

	for _, c := range categories {
		members, err := s.ListProducts(ctx, ProductQuery{CategoryID: &c.ID})
		require.NoError(t, err)
		assert.Equal(t, len(members), c.ProductCount, "category %q", c.Slug)
	}
}

func TestMemStore_ListBlogPosts_Filters(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	featured := true
	got, err := s.ListBlogPosts(ctx, BlogQuery{Featured: &featured})
	require.NoError(t, err)
	for _, b := range got {
		assert.True(t, b.Featured)
	}

	// Category match is case-insensitive exact equality, not substring.
	byCat, err := s.ListBlogPosts(ctx, BlogQuery{Category: "gaming"})
	require.NoError(t, err)
	require.Len(t, byCat, 1)
	assert.Equal(t, "huong-dan-mua-game-steam-gia-re", byCat[0].Slug)

	partial, err := s.ListBlogPosts(ctx, BlogQuery{Category: "gam"})
	require.NoError(t, err)
	assert.Empty(t, partial)

	limited, err := s.ListBlogPosts(ctx, BlogQuery{Limit: 2})
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.True(t, limited[0].PublishedAt.After(limited[1].PublishedAt))
}

func TestMemStore_Users(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	u, err := s.CreateUser(ctx, "khachhang", "mat-khau-bi-mat")
	require.NoError(t, err)
	assert.NotZero(t, u.ID)
	assert.NotEqual(t, []byte("mat-khau-bi-mat"), u.PasswordHash,
		"password must not be stored in the clear")

	_, err = s.CreateUser(ctx, "khachhang", "khac")
	assert.ErrorIs(t, err, ErrUsernameExists)

	got, ok, err := s.GetUserByUsername(ctx, "khachhang")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, u.ID, got.ID)

	_, err = s.VerifyUser(ctx, "khachhang", "sai")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	verified, err := s.VerifyUser(ctx, "khachhang", "mat-khau-bi-mat")
	require.NoError(t, err)
	assert.Equal(t, u.ID, verified.ID)
}
