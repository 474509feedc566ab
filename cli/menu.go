package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"rest-pos/config"
	"rest-pos/models"
)

// NewMenuCommand creates the menu command group for managing the catalog.
func NewMenuCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Manage the menu",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List menu items",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			store, err := openStore(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			items, err := store.MenuItems(cmd.Context())
			if err != nil {
				return err
			}
			for _, item := range items {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%.2f\n",
					item.ID, item.Category, item.Name, item.Price)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add <name> <category> <price>",
		Short: "Add a menu item",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			price, err := strconv.ParseFloat(args[2], 64)
			if err != nil || price < 0 {
				return fmt.Errorf("invalid price %q", args[2])
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			store, err := openStore(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			id, err := store.AddMenuItem(cmd.Context(), models.MenuItem{
				Name:     args[0],
				Category: args[1],
				Price:    price,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added item %d\n", id)
			return nil
		},
	})

	return cmd
}
