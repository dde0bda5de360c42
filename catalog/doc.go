// Package catalog is the read layer over a pre-built content catalog store.
//
// The store is a relational file shipped with the application; this package
// never writes to it. Open returns a Catalog handle configured for that
// read-only workload and registers the noDiacritic scalar function that
// title search depends on.
//
// # Accessors
//
// Every entity has list and lookup accessors:
//
//	cat, err := catalog.Open(cfg.Catalog.Path)
//	languages := cat.Languages(ctx)
//	item := cat.ItemWithURI(ctx, "/scriptures/bofm", langID)
//	results := cat.SearchItemsByTitle(ctx, "café", langID, 25)
//
// Accessors do not return errors. A list query that fails at the engine
// level yields an empty slice and a lookup that finds nothing yields nil;
// callers cannot distinguish an empty catalog from an engine failure. The
// failure is logged. This is a deliberate simplification for a read-only
// layer whose callers treat every miss the same way.
//
// # Transactions
//
// InTransaction scopes several reads to one transaction and is reentrant
// per Catalog instance and call chain: a nested call on the same instance
// with the propagated context joins the open transaction instead of
// starting another. Failures inside the work function are the one kind of
// error this package propagates.
//
// # Visibility rules
//
// Item accessors only return items whose platform is one of the two
// supported variants. Obsolete items are excluded from title search but
// still resolvable by id, external id, or URI.
package catalog
