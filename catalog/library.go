package catalog

import (
	"context"

	"github.com/SerenadeX/LDSContent/entities"
)

// LibraryCollectionWithID returns the collection with the given id, or nil.
func (c *Catalog) LibraryCollectionWithID(ctx context.Context, id int64) *entities.LibraryCollection {
	var collection entities.LibraryCollection
	if err := c.conn(ctx).First(&collection, id).Error; err != nil {
		logQueryError("library collection by id", err)
		return nil
	}
	return &collection
}

// LibraryCollectionWithExternalID returns the collection with the given
// external id, or nil.
func (c *Catalog) LibraryCollectionWithExternalID(ctx context.Context, externalID string) *entities.LibraryCollection {
	var collection entities.LibraryCollection
	if err := c.conn(ctx).Where("external_id = ?", externalID).First(&collection).Error; err != nil {
		logQueryError("library collection by external id", err)
		return nil
	}
	return &collection
}

// LibraryCollectionsForLibrarySectionWithID returns the collections nested
// under the section, in position order.
func (c *Catalog) LibraryCollectionsForLibrarySectionWithID(ctx context.Context, sectionID int64) []entities.LibraryCollection {
	var collections []entities.LibraryCollection
	err := c.conn(ctx).
		Where("library_section_id = ?", sectionID).
		Order("position").
		Find(&collections).Error
	if err != nil {
		logQueryError("library collections for section", err)
		return nil
	}
	return collections
}

// RootLibraryCollections returns the collections with no parent section, in
// position order.
func (c *Catalog) RootLibraryCollections(ctx context.Context) []entities.LibraryCollection {
	var collections []entities.LibraryCollection
	err := c.conn(ctx).
		Where("library_section_id IS NULL").
		Order("position").
		Find(&collections).Error
	if err != nil {
		logQueryError("root library collections", err)
		return nil
	}
	return collections
}

// LibrarySectionWithID returns the section with the given id, or nil.
func (c *Catalog) LibrarySectionWithID(ctx context.Context, id int64) *entities.LibrarySection {
	var section entities.LibrarySection
	if err := c.conn(ctx).First(&section, id).Error; err != nil {
		logQueryError("library section by id", err)
		return nil
	}
	return &section
}

// LibrarySectionsForLibraryCollectionWithID returns the sections of the
// collection, in position order.
func (c *Catalog) LibrarySectionsForLibraryCollectionWithID(ctx context.Context, collectionID int64) []entities.LibrarySection {
	var sections []entities.LibrarySection
	err := c.conn(ctx).
		Where("library_collection_id = ?", collectionID).
		Order("position").
		Find(&sections).Error
	if err != nil {
		logQueryError("library sections for collection", err)
		return nil
	}
	return sections
}

// LibraryItemWithID returns the library item with the given id, or nil.
func (c *Catalog) LibraryItemWithID(ctx context.Context, id int64) *entities.LibraryItem {
	var libraryItem entities.LibraryItem
	if err := c.conn(ctx).First(&libraryItem, id).Error; err != nil {
		logQueryError("library item by id", err)
		return nil
	}
	return &libraryItem
}

// LibraryItemWithExternalID returns the library item with the given
// external id, or nil.
func (c *Catalog) LibraryItemWithExternalID(ctx context.Context, externalID string) *entities.LibraryItem {
	var libraryItem entities.LibraryItem
	if err := c.conn(ctx).Where("external_id = ?", externalID).First(&libraryItem).Error; err != nil {
		logQueryError("library item by external id", err)
		return nil
	}
	return &libraryItem
}

// LibraryItemsForLibrarySectionWithID returns the library items of the
// section, in position order.
func (c *Catalog) LibraryItemsForLibrarySectionWithID(ctx context.Context, sectionID int64) []entities.LibraryItem {
	var libraryItems []entities.LibraryItem
	err := c.conn(ctx).
		Where("library_section_id = ?", sectionID).
		Order("position").
		Find(&libraryItems).Error
	if err != nil {
		logQueryError("library items for section", err)
		return nil
	}
	return libraryItems
}
