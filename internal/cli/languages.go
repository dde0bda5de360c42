package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/SerenadeX/LDSContent/catalog"
	"github.com/SerenadeX/LDSContent/internal/config"
)

// LanguagesCommand lists the languages available in a catalog.
type LanguagesCommand struct {
	CatalogPath string
}

// NewLanguagesCommand creates a new LanguagesCommand.
func NewLanguagesCommand() *LanguagesCommand {
	return &LanguagesCommand{}
}

// ParseFlags parses command line flags.
func (cmd *LanguagesCommand) ParseFlags(args []string) error {
	cfg := config.NewConfig()
	fs := flag.NewFlagSet("languages", flag.ExitOnError)

	fs.StringVar(&cmd.CatalogPath, "catalog", cfg.Catalog.Path, "Path to the catalog store")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s languages [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "List every language in the catalog with its codes and root collection.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

// Run executes the languages command.
func (cmd *LanguagesCommand) Run() error {
	cat, err := catalog.Open(cmd.CatalogPath)
	if err != nil {
		return err
	}
	defer cat.Close()

	languages := cat.Languages(context.Background())
	for _, language := range languages {
		bcp47 := "-"
		if language.BCP47 != nil {
			bcp47 = *language.BCP47
		}
		fmt.Printf("%4d  %-8s  %-8s  %-8s  root collection %d\n",
			language.ID, language.Code, language.ISO639_3, bcp47, language.RootLibraryCollectionID)
	}
	fmt.Printf("\n%d language(s)\n", len(languages))

	return nil
}
