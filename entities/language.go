package entities

// Language identifies one translation of the library. Each language owns
// exactly one root library collection.
type Language struct {
	ID                              int64   `gorm:"column:id;primaryKey"`
	Code                            string  `gorm:"column:code"` // internal catalog code
	ISO639_3                        string  `gorm:"column:iso639_3"`
	BCP47                           *string `gorm:"column:bcp47"`
	RootLibraryCollectionID         int64   `gorm:"column:root_library_collection_id"`
	RootLibraryCollectionExternalID string  `gorm:"column:root_library_collection_external_id"`
}

func (Language) TableName() string {
	return "language"
}

// LanguageName is a localized display name for a language, keyed by the
// named language and the language the name is written in.
type LanguageName struct {
	ID                     int64  `gorm:"column:id;primaryKey"`
	LanguageID             int64  `gorm:"column:language_id"`
	LocalizationLanguageID int64  `gorm:"column:localization_language_id"`
	Name                   string `gorm:"column:name"`
}

func (LanguageName) TableName() string {
	return "language_name"
}
