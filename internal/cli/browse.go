package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/SerenadeX/LDSContent/catalog"
	"github.com/SerenadeX/LDSContent/entities"
	"github.com/SerenadeX/LDSContent/internal/config"
)

// BrowseCommand prints the sections and items of a library collection in
// presentation order.
type BrowseCommand struct {
	CatalogPath  string
	CollectionID int64
	LanguageID   int64
}

// NewBrowseCommand creates a new BrowseCommand.
func NewBrowseCommand() *BrowseCommand {
	return &BrowseCommand{}
}

// ParseFlags parses command line flags.
func (cmd *BrowseCommand) ParseFlags(args []string) error {
	cfg := config.NewConfig()
	fs := flag.NewFlagSet("browse", flag.ExitOnError)

	fs.StringVar(&cmd.CatalogPath, "catalog", cfg.Catalog.Path, "Path to the catalog store")
	fs.Int64Var(&cmd.CollectionID, "collection", 0, "Library collection id to browse (0 = language root)")
	fs.Int64Var(&cmd.LanguageID, "lang", cfg.Catalog.DefaultLanguageID, "Language whose root collection to browse when -collection is omitted")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s browse [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Print a collection's sections, nested collections, and items in the\n")
		fmt.Fprintf(os.Stderr, "order the library presents them.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

// Run executes the browse command.
func (cmd *BrowseCommand) Run() error {
	cat, err := catalog.Open(cmd.CatalogPath)
	if err != nil {
		return err
	}
	defer cat.Close()

	ctx := context.Background()

	var collection *entities.LibraryCollection
	if cmd.CollectionID == 0 {
		collection = cat.RootLibraryCollectionForLanguageWithID(ctx, cmd.LanguageID)
	} else {
		collection = cat.LibraryCollectionWithID(ctx, cmd.CollectionID)
	}
	if collection == nil {
		return fmt.Errorf("library collection not found")
	}

	fmt.Printf("%s (collection %d)\n", collection.Title, collection.ID)

	for _, section := range cat.LibrarySectionsForLibraryCollectionWithID(ctx, collection.ID) {
		fmt.Printf("  %s\n", section.Title)
		for _, nested := range cat.LibraryCollectionsForLibrarySectionWithID(ctx, section.ID) {
			fmt.Printf("    [collection %d] %s\n", nested.ID, nested.Title)
		}
		for _, libraryItem := range cat.LibraryItemsForLibrarySectionWithID(ctx, section.ID) {
			fmt.Printf("    %s\n", libraryItem.Title)
		}
	}

	return nil
}
