package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/SerenadeX/LDSContent/catalog"
	"github.com/SerenadeX/LDSContent/internal/config"
)

// SearchCommand finds items by title, ignoring diacritics.
type SearchCommand struct {
	CatalogPath string
	Query       string
	LanguageID  int64
	Limit       int
}

// NewSearchCommand creates a new SearchCommand.
func NewSearchCommand() *SearchCommand {
	return &SearchCommand{}
}

// ParseFlags parses command line flags.
func (cmd *SearchCommand) ParseFlags(args []string) error {
	cfg := config.NewConfig()
	fs := flag.NewFlagSet("search", flag.ExitOnError)

	fs.StringVar(&cmd.CatalogPath, "catalog", cfg.Catalog.Path, "Path to the catalog store")
	fs.StringVar(&cmd.Query, "query", "", "Title substring to search for (diacritic-insensitive)")
	fs.Int64Var(&cmd.LanguageID, "lang", cfg.Catalog.DefaultLanguageID, "Language id to search in")
	fs.IntVar(&cmd.Limit, "limit", cfg.Search.Limit, "Maximum number of results")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s search -query TEXT [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Search item titles in the catalog. Matching ignores diacritics,\n")
		fmt.Fprintf(os.Stderr, "so \"cafe\" finds \"café\".\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s search -query \"book of\"\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s search -query hymns -lang 3 -limit 5\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.Query == "" {
		fs.Usage()
		return fmt.Errorf("-query is required")
	}

	return nil
}

// Run executes the search command.
func (cmd *SearchCommand) Run() error {
	cat, err := catalog.Open(cmd.CatalogPath)
	if err != nil {
		return err
	}
	defer cat.Close()

	items := cat.SearchItemsByTitle(context.Background(), cmd.Query, cmd.LanguageID, cmd.Limit)
	if len(items) == 0 {
		fmt.Println("No matching items.")
		return nil
	}

	for _, item := range items {
		fmt.Printf("%6d  %-40s  %s\n", item.ID, item.Title, item.URI)
	}
	fmt.Printf("\n%d item(s)\n", len(items))

	return nil
}
