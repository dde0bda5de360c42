package catalog

import (
	"context"

	"gorm.io/gorm"

	"github.com/SerenadeX/LDSContent/entities"
)

// items starts an item query with the platform filter applied.
func (c *Catalog) items(ctx context.Context) *gorm.DB {
	return c.conn(ctx).Model(&entities.Item{}).Where("platform_id IN ?", visiblePlatforms)
}

// Items returns every visible item, ordered by id. Obsolete items are
// included; only title search excludes them.
func (c *Catalog) Items(ctx context.Context) []entities.Item {
	var items []entities.Item
	if err := c.items(ctx).Order("id").Find(&items).Error; err != nil {
		logQueryError("list items", err)
		return nil
	}
	return items
}

// ItemWithID returns the visible item with the given id, or nil.
func (c *Catalog) ItemWithID(ctx context.Context, id int64) *entities.Item {
	var item entities.Item
	if err := c.items(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		logQueryError("item by id", err)
		return nil
	}
	return &item
}

// ItemWithExternalID returns the visible item with the given external id,
// or nil.
func (c *Catalog) ItemWithExternalID(ctx context.Context, externalID string) *entities.Item {
	var item entities.Item
	if err := c.items(ctx).Where("external_id = ?", externalID).First(&item).Error; err != nil {
		logQueryError("item by external id", err)
		return nil
	}
	return &item
}

// ItemsWithIDs returns the visible items among ids, ordered by id.
func (c *Catalog) ItemsWithIDs(ctx context.Context, ids []int64) []entities.Item {
	if len(ids) == 0 {
		return nil
	}
	var items []entities.Item
	if err := c.items(ctx).Where("id IN ?", ids).Order("id").Find(&items).Error; err != nil {
		logQueryError("items by ids", err)
		return nil
	}
	return items
}

// ItemWithURI returns the visible item with exactly the given uri in the
// given language, or nil.
func (c *Catalog) ItemWithURI(ctx context.Context, uri string, languageID int64) *entities.Item {
	var item entities.Item
	err := c.items(ctx).
		Where("uri = ?", uri).
		Where("language_id = ?", languageID).
		First(&item).Error
	if err != nil {
		logQueryError("item by uri", err)
		return nil
	}
	return &item
}

// ItemsForLibraryCollectionWithID returns the visible items reachable from
// the collection through its sections, in presentation order: section
// position first, then library item position within the section. The
// ordering is part of the contract: it is the order the library presents.
// Library item positions restart at 1 in each section, so the section
// position is needed to keep the order total.
func (c *Catalog) ItemsForLibraryCollectionWithID(ctx context.Context, collectionID int64) []entities.Item {
	var items []entities.Item
	err := c.conn(ctx).Model(&entities.Item{}).
		Select("item.*").
		Joins("JOIN library_item ON library_item.item_id = item.id").
		Joins("JOIN library_section ON library_section.id = library_item.library_section_id").
		Where("library_section.library_collection_id = ?", collectionID).
		Where("item.platform_id IN ?", visiblePlatforms).
		Order("library_section.position, library_item.position").
		Find(&items).Error
	if err != nil {
		logQueryError("items for library collection", err)
		return nil
	}
	return items
}
