package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/balancebook-dev/balancebook/internal/importer"
)

func newImportCommand() *cobra.Command {
	var dir, format string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import transaction CSVs from the book's import directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBook(dir)
			if err != nil {
				return err
			}
			defer b.close()

			parser := importer.DefaultRegistry().Get(format)
			if parser == nil {
				return fmt.Errorf("unknown import format %q", format)
			}

			files, err := importer.Scan(b.root)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				fmt.Println("Nothing to import.")
				return nil
			}

			for _, file := range files {
				f, err := os.Open(file.Path)
				if err != nil {
					return fmt.Errorf("opening %s: %w", file.Name, err)
				}

				txns, err := parser.Parse(f)
				f.Close()
				if err != nil {
					return fmt.Errorf("parsing %s: %w", file.Name, err)
				}

				for _, txn := range txns {
					if _, err := b.store.InsertTransaction(txn); err != nil {
						return fmt.Errorf("importing %s: %w", file.Name, err)
					}
				}

				if err := importer.MarkProcessed(b.root, file.Name); err != nil {
					return err
				}
				fmt.Printf("Imported %d transactions from %s\n", len(txns), file.Name)
			}
			return nil
		},
	}

	addBookFlag(cmd, &dir)
	cmd.Flags().StringVar(&format, "format", "transactions", "import format")
	return cmd
}
