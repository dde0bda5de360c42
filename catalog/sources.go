package catalog

import (
	"context"

	"github.com/SerenadeX/LDSContent/entities"
)

// Sources returns every source in the catalog, ordered by id.
func (c *Catalog) Sources(ctx context.Context) []entities.Source {
	var sources []entities.Source
	if err := c.conn(ctx).Order("id").Find(&sources).Error; err != nil {
		logQueryError("list sources", err)
		return nil
	}
	return sources
}

// SourceWithID returns the source with the given id, or nil.
func (c *Catalog) SourceWithID(ctx context.Context, id int64) *entities.Source {
	var source entities.Source
	if err := c.conn(ctx).First(&source, id).Error; err != nil {
		logQueryError("source by id", err)
		return nil
	}
	return &source
}

// SourceWithName returns the source with the given name, or nil.
func (c *Catalog) SourceWithName(ctx context.Context, name string) *entities.Source {
	var source entities.Source
	if err := c.conn(ctx).Where("name = ?", name).First(&source).Error; err != nil {
		logQueryError("source by name", err)
		return nil
	}
	return &source
}

// ItemCategories returns every item category, ordered by id.
func (c *Catalog) ItemCategories(ctx context.Context) []entities.ItemCategory {
	var categories []entities.ItemCategory
	if err := c.conn(ctx).Order("id").Find(&categories).Error; err != nil {
		logQueryError("list item categories", err)
		return nil
	}
	return categories
}

// ItemCategoryWithID returns the item category with the given id, or nil.
func (c *Catalog) ItemCategoryWithID(ctx context.Context, id int64) *entities.ItemCategory {
	var category entities.ItemCategory
	if err := c.conn(ctx).First(&category, id).Error; err != nil {
		logQueryError("item category by id", err)
		return nil
	}
	return &category
}
