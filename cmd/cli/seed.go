package main

import (
	"github.com/postboard/backend/internal/database"
	"github.com/postboard/backend/internal/seed"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Fill the database with development data",
	RunE: func(cmd *cobra.Command, args []string) error {
		return seed.NewSeeder(database.DB).SeedDev()
	},
}
