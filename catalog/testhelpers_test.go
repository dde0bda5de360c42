package catalog

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/SerenadeX/LDSContent/entities"
)

// buildFixtureStore writes a catalog file the way the distribution system
// would: create the schema, insert rows, close. Tests then open it through
// Open exactly like production code opens a shipped catalog.
func buildFixtureStore(t *testing.T, path string, seed func(t *testing.T, db *gorm.DB)) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&entities.Source{},
		&entities.ItemCategory{},
		&entities.Item{},
		&entities.Language{},
		&entities.LanguageName{},
		&entities.LibraryCollection{},
		&entities.LibrarySection{},
		&entities.LibraryItem{},
	)
	require.NoError(t, err)

	if seed != nil {
		seed(t, db)
	}

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())
}

// openTestCatalog builds a fixture store in a temp dir and opens it.
func openTestCatalog(t *testing.T, seed func(t *testing.T, db *gorm.DB)) *Catalog {
	t.Helper()

	path := filepath.Join(t.TempDir(), "catalog.sqlite")
	buildFixtureStore(t, path, seed)

	cat, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { cat.Close() })

	return cat
}

func createLanguage(t *testing.T, db *gorm.DB, language entities.Language) entities.Language {
	t.Helper()
	require.NoError(t, db.Create(&language).Error)
	return language
}

func createItem(t *testing.T, db *gorm.DB, item entities.Item) entities.Item {
	t.Helper()
	require.NoError(t, db.Create(&item).Error)
	return item
}

// seedLibraryTree inserts one language with a small collection tree:
//
//	collection 1 (root)
//	├── section 11 (position 1)
//	│   ├── library item → item 1 (position 1)
//	│   └── library item → item 2 (position 2)
//	└── section 12 (position 2)
//	    ├── collection 2 (nested)
//	    └── library item → item 3 (position 1)
//
// Item 4 is on an unsupported platform and hangs off section 11 to prove
// the join still filters it out.
func seedLibraryTree(t *testing.T, db *gorm.DB) {
	t.Helper()

	createLanguage(t, db, entities.Language{ID: 1, Code: "eng", ISO639_3: "eng", RootLibraryCollectionID: 1, RootLibraryCollectionExternalID: "root-eng"})

	createItem(t, db, entities.Item{ID: 1, ExternalID: "item-1", LanguageID: 1, PlatformID: 1, URI: "/scriptures/bofm", Title: "Book of Mormon"})
	createItem(t, db, entities.Item{ID: 2, ExternalID: "item-2", LanguageID: 1, PlatformID: 2, URI: "/scriptures/dc-testament", Title: "Doctrine and Covenants"})
	createItem(t, db, entities.Item{ID: 3, ExternalID: "item-3", LanguageID: 1, PlatformID: 1, URI: "/manual/gospel-principles", Title: "Gospel Principles"})
	createItem(t, db, entities.Item{ID: 4, ExternalID: "item-4", LanguageID: 1, PlatformID: 3, URI: "/hidden", Title: "Hidden Platform Item"})

	require.NoError(t, db.Create(&entities.LibraryCollection{ID: 1, ExternalID: "coll-1", Position: 1, Title: "Library", Type: entities.LibraryCollectionTypeRoot}).Error)

	sectionID := int64(12)
	sectionExternalID := "sect-12"
	require.NoError(t, db.Create(&entities.LibraryCollection{ID: 2, ExternalID: "coll-2", LibrarySectionID: &sectionID, LibrarySectionExternalID: &sectionExternalID, Position: 1, Title: "Nested Collection"}).Error)

	// Inserted out of position order on purpose.
	require.NoError(t, db.Create(&entities.LibrarySection{ID: 12, ExternalID: "sect-12", LibraryCollectionID: 1, LibraryCollectionExternalID: "coll-1", Position: 2, Title: "Manuals", IndexTitle: "M"}).Error)
	require.NoError(t, db.Create(&entities.LibrarySection{ID: 11, ExternalID: "sect-11", LibraryCollectionID: 1, LibraryCollectionExternalID: "coll-1", Position: 1, Title: "Scriptures", IndexTitle: "S"}).Error)

	require.NoError(t, db.Create(&entities.LibraryItem{ID: 102, ExternalID: "li-102", LibrarySectionID: 11, LibrarySectionExternalID: "sect-11", Position: 2, Title: "Doctrine and Covenants", ItemID: 2, ItemExternalID: "item-2"}).Error)
	require.NoError(t, db.Create(&entities.LibraryItem{ID: 101, ExternalID: "li-101", LibrarySectionID: 11, LibrarySectionExternalID: "sect-11", Position: 1, Title: "Book of Mormon", ItemID: 1, ItemExternalID: "item-1"}).Error)
	require.NoError(t, db.Create(&entities.LibraryItem{ID: 103, ExternalID: "li-103", LibrarySectionID: 12, LibrarySectionExternalID: "sect-12", Position: 1, Title: "Gospel Principles", ItemID: 3, ItemExternalID: "item-3"}).Error)
	require.NoError(t, db.Create(&entities.LibraryItem{ID: 104, ExternalID: "li-104", LibrarySectionID: 11, LibrarySectionExternalID: "sect-11", Position: 3, Title: "Hidden Platform Item", ItemID: 4, ItemExternalID: "item-4"}).Error)
}
