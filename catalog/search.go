package catalog

import (
	"context"
	"strings"

	"github.com/SerenadeX/LDSContent/entities"
)

// likeEscaper makes a search query safe inside a LIKE pattern. The escape
// character itself must be escaped first, which NewReplacer's single pass
// handles.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// SearchItemsByTitle returns up to limit non-obsolete items in the language
// whose title contains query, ignoring diacritics on both sides: searching
// "cafe" matches a stored "café" and vice versa. LIKE metacharacters in the
// query are treated as literals.
//
// Results are ordered by title (case-insensitive, id as tie-break). The
// store has no relevance ranking; a stable alphabetical order is imposed
// instead of relying on the engine's natural row order.
func (c *Catalog) SearchItemsByTitle(ctx context.Context, query string, languageID int64, limit int) []entities.Item {
	pattern := "%" + likeEscaper.Replace(stripDiacritics(query)) + "%"

	var items []entities.Item
	err := c.conn(ctx).
		Where(`noDiacritic(title) LIKE ? ESCAPE '\'`, pattern).
		Where("language_id = ?", languageID).
		Where("obsolete = ?", false).
		Where("platform_id IN ?", visiblePlatforms).
		Order("title COLLATE NOCASE, id").
		Limit(limit).
		Find(&items).Error
	if err != nil {
		logQueryError("search items by title", err)
		return nil
	}
	return items
}

// ItemContainingURI resolves the nearest item whose URI encloses uri: it
// tries the exact uri first, then walks up one path segment at a time until
// an item matches or the path is exhausted. This is how deep links into a
// sub-path of a document find the document itself.
func (c *Catalog) ItemContainingURI(ctx context.Context, uri string, languageID int64) *entities.Item {
	for uri != "" && uri != "/" {
		if item := c.ItemWithURI(ctx, uri, languageID); item != nil {
			return item
		}
		slash := strings.LastIndex(uri, "/")
		if slash < 0 {
			// No separators left: one failed lookup ends the walk.
			return nil
		}
		uri = uri[:slash]
	}
	return nil
}
