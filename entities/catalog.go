package entities

import (
	"database/sql/driver"

	"github.com/SerenadeX/LDSContent/renditions"
)

// SourceType classifies where a catalog source originates.
type SourceType int

const (
	SourceTypeDefault SourceType = iota // fallback for unrecognized stored codes
	SourceTypeStandard
	SourceTypeThirdParty
)

// SourceTypeFromRaw maps a stored integer code to a SourceType.
// Unknown codes map to SourceTypeDefault rather than failing the read.
func SourceTypeFromRaw(raw int64) SourceType {
	switch t := SourceType(raw); t {
	case SourceTypeDefault, SourceTypeStandard, SourceTypeThirdParty:
		return t
	default:
		return SourceTypeDefault
	}
}

func (t *SourceType) Scan(value any) error {
	if v, ok := value.(int64); ok {
		*t = SourceTypeFromRaw(v)
	} else {
		*t = SourceTypeDefault
	}
	return nil
}

func (t SourceType) Value() (driver.Value, error) {
	return int64(t), nil
}

type Source struct {
	ID   int64      `gorm:"column:id;primaryKey"`
	Name string     `gorm:"column:name"`
	Type SourceType `gorm:"column:type"`
}

func (Source) TableName() string {
	return "source"
}

type ItemCategory struct {
	ID   int64  `gorm:"column:id;primaryKey"`
	Name string `gorm:"column:name"`
}

func (ItemCategory) TableName() string {
	return "item_category"
}

// Item is a single content document in the library, e.g. a book or a
// scripture volume.
type Item struct {
	ID              int64           `gorm:"column:id;primaryKey"`
	ExternalID      string          `gorm:"column:external_id"`
	LanguageID      int64           `gorm:"column:language_id"`
	SourceID        int64           `gorm:"column:source_id"`
	PlatformID      int64           `gorm:"column:platform_id"`
	URI             string          `gorm:"column:uri"`
	Title           string          `gorm:"column:title"`
	CoverRenditions renditions.List `gorm:"column:cover_renditions"`
	ItemCategoryID  int64           `gorm:"column:item_category_id"`
	LatestVersion   int             `gorm:"column:latest_version"`
	Obsolete        bool            `gorm:"column:obsolete"`
}

func (Item) TableName() string {
	return "item"
}
