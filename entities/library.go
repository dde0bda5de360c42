package entities

import (
	"database/sql/driver"

	"github.com/SerenadeX/LDSContent/renditions"
)

// LibraryCollectionType classifies how a collection is presented.
type LibraryCollectionType int

const (
	LibraryCollectionTypeDefault LibraryCollectionType = iota // fallback for unrecognized stored codes
	LibraryCollectionTypeRoot
	LibraryCollectionTypeFeatured
)

// LibraryCollectionTypeFromRaw maps a stored integer code to a
// LibraryCollectionType. Unknown codes map to the default variant.
func LibraryCollectionTypeFromRaw(raw int64) LibraryCollectionType {
	switch t := LibraryCollectionType(raw); t {
	case LibraryCollectionTypeDefault, LibraryCollectionTypeRoot, LibraryCollectionTypeFeatured:
		return t
	default:
		return LibraryCollectionTypeDefault
	}
}

func (t *LibraryCollectionType) Scan(value any) error {
	if v, ok := value.(int64); ok {
		*t = LibraryCollectionTypeFromRaw(v)
	} else {
		*t = LibraryCollectionTypeDefault
	}
	return nil
}

func (t LibraryCollectionType) Value() (driver.Value, error) {
	return int64(t), nil
}

// LibraryCollection is a hierarchical container of library sections. A
// collection with no parent section is a root collection for its language.
type LibraryCollection struct {
	ID                       int64                 `gorm:"column:id;primaryKey"`
	ExternalID               string                `gorm:"column:external_id"`
	LibrarySectionID         *int64                `gorm:"column:library_section_id"`
	LibrarySectionExternalID *string               `gorm:"column:library_section_external_id"`
	Position                 int                   `gorm:"column:position"`
	Title                    string                `gorm:"column:title"`
	CoverRenditions          renditions.List       `gorm:"column:cover_renditions"`
	Type                     LibraryCollectionType `gorm:"column:type"`
}

func (LibraryCollection) TableName() string {
	return "library_collection"
}

// LibrarySection groups library items within a collection, ordered by
// position.
type LibrarySection struct {
	ID                          int64  `gorm:"column:id;primaryKey"`
	ExternalID                  string `gorm:"column:external_id"`
	LibraryCollectionID         int64  `gorm:"column:library_collection_id"`
	LibraryCollectionExternalID string `gorm:"column:library_collection_external_id"`
	Position                    int    `gorm:"column:position"`
	Title                       string `gorm:"column:title"`
	IndexTitle                  string `gorm:"column:index_title"`
}

func (LibrarySection) TableName() string {
	return "library_section"
}

// LibraryItem links a section to an item, ordered by position within the
// section.
type LibraryItem struct {
	ID                       int64  `gorm:"column:id;primaryKey"`
	ExternalID               string `gorm:"column:external_id"`
	LibrarySectionID         int64  `gorm:"column:library_section_id"`
	LibrarySectionExternalID string `gorm:"column:library_section_external_id"`
	Position                 int    `gorm:"column:position"`
	Title                    string `gorm:"column:title"`
	Obsolete                 bool   `gorm:"column:obsolete"`
	ItemID                   int64  `gorm:"column:item_id"`
	ItemExternalID           string `gorm:"column:item_external_id"`
}

func (LibraryItem) TableName() string {
	return "library_item"
}
