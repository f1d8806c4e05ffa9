package commands

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/balancebook-dev/balancebook/internal/server"
)

func newServeCommand() *cobra.Command {
	var dir, addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the report API over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			// A .env in the book directory can override the listen
			// address without flags.
			_ = godotenv.Load(dir + "/.env")

			b, err := openBook(dir)
			if err != nil {
				return err
			}
			defer b.close()

			if env := os.Getenv("BALANCEBOOK_HTTP_ADDR"); env != "" {
				addr = env
			}

			srv := server.New()
			handlers := server.NewHandlers(b.store, b.cfg)
			server.RegisterHealth(srv.Echo())
			server.RegisterRoutes(srv.Echo(), handlers)

			return srv.Echo().Start(addr)
		},
	}

	addBookFlag(cmd, &dir)
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	return cmd
}
