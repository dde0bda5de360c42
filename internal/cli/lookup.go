package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/SerenadeX/LDSContent/catalog"
	"github.com/SerenadeX/LDSContent/internal/config"
)

// LookupCommand resolves a URI to the nearest enclosing item.
type LookupCommand struct {
	CatalogPath string
	URI         string
	LanguageID  int64
}

// NewLookupCommand creates a new LookupCommand.
func NewLookupCommand() *LookupCommand {
	return &LookupCommand{}
}

// ParseFlags parses command line flags.
func (cmd *LookupCommand) ParseFlags(args []string) error {
	cfg := config.NewConfig()
	fs := flag.NewFlagSet("lookup", flag.ExitOnError)

	fs.StringVar(&cmd.CatalogPath, "catalog", cfg.Catalog.Path, "Path to the catalog store")
	fs.StringVar(&cmd.URI, "uri", "", "URI to resolve")
	fs.Int64Var(&cmd.LanguageID, "lang", cfg.Catalog.DefaultLanguageID, "Language id to resolve in")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s lookup -uri URI [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Resolve a URI to the item that contains it. A deep link like\n")
		fmt.Fprintf(os.Stderr, "/scriptures/bofm/alma/32 resolves to the item at /scriptures/bofm\n")
		fmt.Fprintf(os.Stderr, "when no item carries the deeper path.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.URI == "" {
		fs.Usage()
		return fmt.Errorf("-uri is required")
	}

	return nil
}

// Run executes the lookup command.
func (cmd *LookupCommand) Run() error {
	cat, err := catalog.Open(cmd.CatalogPath)
	if err != nil {
		return err
	}
	defer cat.Close()

	item := cat.ItemContainingURI(context.Background(), cmd.URI, cmd.LanguageID)
	if item == nil {
		fmt.Printf("No item contains %s\n", cmd.URI)
		return nil
	}

	fmt.Printf("ID:          %d\n", item.ID)
	fmt.Printf("External ID: %s\n", item.ExternalID)
	fmt.Printf("Title:       %s\n", item.Title)
	fmt.Printf("URI:         %s\n", item.URI)
	fmt.Printf("Obsolete:    %v\n", item.Obsolete)
	for _, r := range item.CoverRenditions {
		fmt.Printf("Cover:       %dx%d %s\n", r.Width, r.Height, r.URL)
	}

	return nil
}
