package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"rest-pos/config"
)

// NewOrdersCommand creates the orders command, a full audit listing.
func NewOrdersCommand() *cobra.Command {
	var today bool

	cmd := &cobra.Command{
		Use:   "orders",
		Short: "List committed orders, newest first",
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

			list := store.AllOrders
			if today {
				list = store.OrdersForToday
			}
			orders, err := list(cmd.Context())
			if err != nil {
				return err
			}

			for _, o := range orders {
				kind := "untaxed"
				if o.Taxed {
					kind = "taxed"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "#%d\t%s\t%s\t%.2f\n",
					o.ID, o.Timestamp.Format("2006-01-02 15:04"), kind, o.Total())
				for _, l := range o.Lines {
					fmt.Fprintf(cmd.OutOrStdout(), "\t%s x%d\t%.2f\n",
						l.Item.Name, l.Quantity, l.Item.Price*float64(l.Quantity))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&today, "today", false, "only today's orders")
	return cmd
}
