package catalog

import (
	"context"

	"github.com/SerenadeX/LDSContent/entities"
)

// Languages returns every language in the catalog, ordered by id.
func (c *Catalog) Languages(ctx context.Context) []entities.Language {
	var languages []entities.Language
	if err := c.conn(ctx).Order("id").Find(&languages).Error; err != nil {
		logQueryError("list languages", err)
		return nil
	}
	return languages
}

// LanguageWithID returns the language with the given id, or nil.
func (c *Catalog) LanguageWithID(ctx context.Context, id int64) *entities.Language {
	var language entities.Language
	if err := c.conn(ctx).First(&language, id).Error; err != nil {
		logQueryError("language by id", err)
		return nil
	}
	return &language
}

// LanguageWithInternalCode returns the language with the given internal
// catalog code, or nil.
func (c *Catalog) LanguageWithInternalCode(ctx context.Context, code string) *entities.Language {
	var language entities.Language
	if err := c.conn(ctx).Where("code = ?", code).First(&language).Error; err != nil {
		logQueryError("language by internal code", err)
		return nil
	}
	return &language
}

// LanguageWithISO639_3Code returns the language with the given ISO 639-3
// code, or nil.
func (c *Catalog) LanguageWithISO639_3Code(ctx context.Context, code string) *entities.Language {
	var language entities.Language
	if err := c.conn(ctx).Where("iso639_3 = ?", code).First(&language).Error; err != nil {
		logQueryError("language by iso639-3 code", err)
		return nil
	}
	return &language
}

// LanguageWithBCP47Code returns the language with the given BCP 47 code, or
// nil. Not every language carries one.
func (c *Catalog) LanguageWithBCP47Code(ctx context.Context, code string) *entities.Language {
	var language entities.Language
	if err := c.conn(ctx).Where("bcp47 = ?", code).First(&language).Error; err != nil {
		logQueryError("language by bcp47 code", err)
		return nil
	}
	return &language
}

// RootLibraryCollectionForLanguageWithID returns the root collection the
// language points at, or nil.
func (c *Catalog) RootLibraryCollectionForLanguageWithID(ctx context.Context, languageID int64) *entities.LibraryCollection {
	language := c.LanguageWithID(ctx, languageID)
	if language == nil {
		return nil
	}
	return c.LibraryCollectionWithID(ctx, language.RootLibraryCollectionID)
}

// NamesForLanguageWithID returns every localized name recorded for the
// language, ordered by the localization language.
func (c *Catalog) NamesForLanguageWithID(ctx context.Context, languageID int64) []entities.LanguageName {
	var names []entities.LanguageName
	err := c.conn(ctx).
		Where("language_id = ?", languageID).
		Order("localization_language_id").
		Find(&names).Error
	if err != nil {
		logQueryError("names for language", err)
		return nil
	}
	return names
}

// NameForLanguageWithID returns the name of one language written in
// another, or nil. The pair (language, localization language) is the
// composite lookup key.
func (c *Catalog) NameForLanguageWithID(ctx context.Context, languageID, localizationLanguageID int64) *entities.LanguageName {
	var name entities.LanguageName
	err := c.conn(ctx).
		Where("language_id = ?", languageID).
		Where("localization_language_id = ?", localizationLanguageID).
		First(&name).Error
	if err != nil {
		logQueryError("language name", err)
		return nil
	}
	return &name
}
