package main

import (
	"github.com/spf13/cobra"

	"github.com/sweetdelights/bakery/config"
	"github.com/sweetdelights/bakery/database/seeders"
	"github.com/sweetdelights/bakery/pkg/storage"
)

// bakery seed — write the standard catalogue into the product collection.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the product catalogue",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}
		storage.Connect()
		return seeders.RunAll()
	},
}
