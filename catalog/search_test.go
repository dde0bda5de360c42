package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/SerenadeX/LDSContent/entities"
)

func seedSearchFixture(t *testing.T, db *gorm.DB) {
	t.Helper()

	createLanguage(t, db, entities.Language{ID: 1, Code: "eng", ISO639_3: "eng", RootLibraryCollectionID: 1})
	createLanguage(t, db, entities.Language{ID: 2, Code: "fra", ISO639_3: "fra", RootLibraryCollectionID: 2})

	createItem(t, db, entities.Item{ID: 1, ExternalID: "item-1", LanguageID: 1, PlatformID: 1, URI: "/cafe", Title: "Café Stories"})
	createItem(t, db, entities.Item{ID: 2, ExternalID: "item-2", LanguageID: 1, PlatformID: 2, URI: "/plain-cafe", Title: "Cafe Plain"})
	createItem(t, db, entities.Item{ID: 3, ExternalID: "item-3", LanguageID: 1, PlatformID: 1, URI: "/percent", Title: "100% Pure"})
	createItem(t, db, entities.Item{ID: 4, ExternalID: "item-4", LanguageID: 1, PlatformID: 1, URI: "/no-percent", Title: "100 Pure"})
	createItem(t, db, entities.Item{ID: 5, ExternalID: "item-5", LanguageID: 1, PlatformID: 1, URI: "/underscore", Title: "under_score notes"})
	createItem(t, db, entities.Item{ID: 6, ExternalID: "item-6", LanguageID: 1, PlatformID: 1, URI: "/underdog", Title: "underdscore decoy"})
	createItem(t, db, entities.Item{ID: 7, ExternalID: "item-7", LanguageID: 1, PlatformID: 1, URI: "/old-cafe", Title: "Café Obsolete", Obsolete: true})
	createItem(t, db, entities.Item{ID: 8, ExternalID: "item-8", LanguageID: 2, PlatformID: 1, URI: "/fr/cafe", Title: "Café Français"})
	createItem(t, db, entities.Item{ID: 9, ExternalID: "item-9", LanguageID: 1, PlatformID: 3, URI: "/hidden-cafe", Title: "Café Hidden Platform"})
}

func TestSearchIgnoresDiacriticsBothWays(t *testing.T) {
	cat := openTestCatalog(t, seedSearchFixture)
	ctx := context.Background()

	// Plain query matches accented title.
	titles := searchTitles(cat.SearchItemsByTitle(ctx, "cafe", 1, 10))
	assert.Equal(t, []string{"Cafe Plain", "Café Stories"}, titles)

	// Accented query matches plain title too.
	titles = searchTitles(cat.SearchItemsByTitle(ctx, "café", 1, 10))
	assert.Equal(t, []string{"Cafe Plain", "Café Stories"}, titles)
}

func TestSearchTreatsLikeMetacharactersAsLiterals(t *testing.T) {
	cat := openTestCatalog(t, seedSearchFixture)
	ctx := context.Background()

	// "%" must not act as a wildcard: "100% " would otherwise match
	// "100 Pure" as well.
	titles := searchTitles(cat.SearchItemsByTitle(ctx, "100% Pure", 1, 10))
	assert.Equal(t, []string{"100% Pure"}, titles)

	// "_" must not match an arbitrary character.
	titles = searchTitles(cat.SearchItemsByTitle(ctx, "under_score", 1, 10))
	assert.Equal(t, []string{"under_score notes"}, titles)
}

func TestSearchExcludesObsoleteItems(t *testing.T) {
	cat := openTestCatalog(t, seedSearchFixture)

	titles := searchTitles(cat.SearchItemsByTitle(context.Background(), "Obsolete", 1, 10))
	assert.Empty(t, titles)
}

func TestSearchFiltersLanguageAndPlatform(t *testing.T) {
	cat := openTestCatalog(t, seedSearchFixture)
	ctx := context.Background()

	titles := searchTitles(cat.SearchItemsByTitle(ctx, "cafe", 2, 10))
	assert.Equal(t, []string{"Café Français"}, titles)

	for _, item := range cat.SearchItemsByTitle(ctx, "cafe", 1, 10) {
		assert.Contains(t, []int64{1, 2}, item.PlatformID)
	}
}

func TestSearchHonorsLimitAndOrdering(t *testing.T) {
	cat := openTestCatalog(t, seedSearchFixture)
	ctx := context.Background()

	titles := searchTitles(cat.SearchItemsByTitle(ctx, "cafe", 1, 1))
	assert.Equal(t, []string{"Cafe Plain"}, titles, "alphabetical order, case-insensitive")
}

func TestSearchUnknownLanguageIsEmpty(t *testing.T) {
	cat := openTestCatalog(t, seedSearchFixture)
	assert.Empty(t, cat.SearchItemsByTitle(context.Background(), "cafe", 42, 10))
}

func searchTitles(items []entities.Item) []string {
	var titles []string
	for _, item := range items {
		titles = append(titles, item.Title)
	}
	return titles
}

func seedURIFixture(t *testing.T, db *gorm.DB) {
	t.Helper()
	createLanguage(t, db, entities.Language{ID: 1, Code: "eng", ISO639_3: "eng", RootLibraryCollectionID: 1})
	createItem(t, db, entities.Item{ID: 1, ExternalID: "item-1", LanguageID: 1, PlatformID: 1, URI: "/a", Title: "A"})
	createItem(t, db, entities.Item{ID: 2, ExternalID: "item-2", LanguageID: 1, PlatformID: 1, URI: "/a/b", Title: "A B"})
}

func TestItemContainingURIExactMatch(t *testing.T) {
	cat := openTestCatalog(t, seedURIFixture)

	item := cat.ItemContainingURI(context.Background(), "/a/b", 1)
	require.NotNil(t, item)
	assert.Equal(t, "/a/b", item.URI)
}

func TestItemContainingURIWalksToNearestAncestor(t *testing.T) {
	cat := openTestCatalog(t, seedURIFixture)
	ctx := context.Background()

	item := cat.ItemContainingURI(ctx, "/a/b/c", 1)
	require.NotNil(t, item)
	assert.Equal(t, "/a/b", item.URI, "nearest enclosing item wins over /a")

	item = cat.ItemContainingURI(ctx, "/a/x/y/z", 1)
	require.NotNil(t, item)
	assert.Equal(t, "/a", item.URI)
}

func TestItemContainingURINoMatchingAncestor(t *testing.T) {
	cat := openTestCatalog(t, seedURIFixture)
	ctx := context.Background()

	assert.Nil(t, cat.ItemContainingURI(ctx, "/x", 1))
	assert.Nil(t, cat.ItemContainingURI(ctx, "/x/y", 1))
	assert.Nil(t, cat.ItemContainingURI(ctx, "/", 1))
	assert.Nil(t, cat.ItemContainingURI(ctx, "", 1))
}

func TestItemContainingURIWithoutSeparatorsTerminates(t *testing.T) {
	cat := openTestCatalog(t, seedURIFixture)
	assert.Nil(t, cat.ItemContainingURI(context.Background(), "bare", 1))
}

func TestItemContainingURIRespectsLanguage(t *testing.T) {
	cat := openTestCatalog(t, seedURIFixture)
	assert.Nil(t, cat.ItemContainingURI(context.Background(), "/a/b/c", 2))
}

func TestStripDiacritics(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"café", "cafe"},
		{"CAFÉ", "CAFE"},
		{"naïve façade", "naive facade"},
		{"Español", "Espanol"},
		{"plain ascii", "plain ascii"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, stripDiacritics(tt.in))
	}
}
