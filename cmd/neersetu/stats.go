package main

import (
	"context"
	"fmt"

	"github.com/dev-eloper-365/NeerSetuBackend/pkg/gw"
	"github.com/spf13/cobra"
)

func getStatsCmd() *cobra.Command {
	var (
		typeFlag   string
		parentFlag string
		yearFlag   string
		historical bool
	)

	cmd := &cobra.Command{
		Use:   "stats <name>",
		Short: "Shows canonical groundwater statistics for a location",
		Long: `Resolves a place name and prints its canonical (fully merged)
assessment record. With --historical, prints one record per available
year instead of a single year.

Examples:
  neersetu stats karnataka --year 2022-2023
  neersetu stats "bangalore urban" --type district --historical`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			c, cleanup, err := newCore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			locType, err := parseTypeFlag(typeFlag)
			if err != nil {
				return err
			}

			results, err := c.ResolveLocation(args[0], locType, parentFlag)
			if err != nil {
				return err
			}
			if len(results) == 0 {
				fmt.Println("No matching locations")
				return nil
			}
			loc := results[0].Location
			fmt.Printf("%s (%s)\n", loc.Name, loc.Type)

			if historical {
				records, err := c.HistoricalStats(ctx, loc.ID)
				if err != nil {
					return err
				}
				if len(records) == 0 {
					fmt.Println("No assessment data")
					return nil
				}
				for i := range records {
					printRecord(&records[i])
				}
				return nil
			}

			record, err := c.CanonicalStats(ctx, loc.ID, yearFlag)
			if err != nil {
				return err
			}
			if record == nil {
				fmt.Println("No assessment data")
				return nil
			}
			printRecord(record)
			return nil
		},
	}

	cmd.Flags().StringVarP(&typeFlag, "type", "t", "",
		"location type: country, state, district or taluk")
	cmd.Flags().StringVarP(&parentFlag, "parent", "p", "",
		"parent region name hint for district/taluk queries")
	cmd.Flags().StringVarP(&yearFlag, "year", "y", "",
		"assessment year, e.g. 2022-2023 (default: most recent)")
	cmd.Flags().BoolVar(&historical, "historical", false,
		"print one record per available year")
	return cmd
}

func printRecord(r *gw.StatRecord) {
	fmt.Printf("  %s  [%s]\n", r.Year, r.Category)
	for _, f := range r.PresentFields() {
		v, _ := r.Value(f)
		fmt.Printf("    %-22s %0.2f\n", f, v)
	}
}
