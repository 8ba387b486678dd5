package main

import (
	"github.com/spf13/cobra"

	"github.com/sweetdelights/bakery/app/routes"
	"github.com/sweetdelights/bakery/internal/server"
)

// bakery serve — start the HTTP server.
var serveCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"run", "start"},
	Short:   "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return server.Start(server.BuildHandler(routes.RegisterAPI))
	},
}
