package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/dev-eloper-365/NeerSetuBackend/pkg/gw"
	"github.com/dev-eloper-365/NeerSetuBackend/pkg/ranking"
	"github.com/spf13/cobra"
)

func getRankCmd() *cobra.Command {
	var (
		metricFlag string
		typeFlag   string
		orderFlag  string
		limitFlag  int
		yearFlag   string
		fromFlag   string
		toFlag     string
		yearsFlag  []string
	)

	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Ranks locations of one level by a metric",
		Long: `Ranks locations by a groundwater metric for one year or across a
historical window. A range (--from/--to) or an explicit year list
(--years) switches to historical mode: locations are ranked by their
cross-year average and a trend series of the leading locations is
printed.

Metrics: rainfall, recharge_rainfall, recharge_other, recharge_total,
extractable, extraction_irrigation, extraction_domestic,
extraction_industrial, extraction_total, stage_of_extraction.

Examples:
  neersetu rank --metric extraction_total --type state --limit 3
  neersetu rank --metric stage_of_extraction --type district \
      --from 2016-2017 --to 2020-2021`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			field, ok := gw.ParseField(metricFlag)
			if !ok {
				return fmt.Errorf("unknown metric %q", metricFlag)
			}
			locType, err := parseTypeFlag(typeFlag)
			if err != nil {
				return err
			}
			if locType == "" {
				locType = gw.State
			}
			order, ok := ranking.ParseOrder(orderFlag)
			if !ok {
				return fmt.Errorf("unknown order %q (want asc or desc)", orderFlag)
			}

			c, cleanup, err := newCore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			spec := gw.YearSpec{
				Year:     yearFlag,
				FromYear: fromFlag,
				ToYear:   toFlag,
				Years:    yearsFlag,
			}
			res, err := c.RankLocations(ctx, field, locType, order, limitFlag, spec)
			if err != nil {
				return err
			}

			printRanking(res)
			return nil
		},
	}

	cmd.Flags().StringVarP(&metricFlag, "metric", "m", "stage_of_extraction",
		"metric to rank by")
	cmd.Flags().StringVarP(&typeFlag, "type", "t", "state",
		"location type: country, state, district or taluk")
	cmd.Flags().StringVarP(&orderFlag, "order", "o", "desc",
		"ranking direction: desc or asc")
	cmd.Flags().IntVarP(&limitFlag, "limit", "k", 5,
		"number of locations to return")
	cmd.Flags().StringVarP(&yearFlag, "year", "y", "",
		"single assessment year (default: most recent)")
	cmd.Flags().StringVar(&fromFlag, "from", "", "range start year, inclusive")
	cmd.Flags().StringVar(&toFlag, "to", "", "range end year, inclusive")
	cmd.Flags().StringSliceVar(&yearsFlag, "years", nil,
		"explicit list of years (overrides range and single year)")
	return cmd
}

func printRanking(res *ranking.Result) {
	if len(res.Entries) == 0 {
		fmt.Println("No locations with the requested metric")
		return
	}

	if res.Historical && len(res.Years) > 1 {
		fmt.Printf("%s over %s\n", res.Field, strings.Join(res.Years, ", "))
		for i, e := range res.Entries {
			fmt.Printf("%d. %-28s avg=%0.2f min=%0.2f max=%0.2f (%d years)\n",
				i+1, e.Location.Name, e.Avg, e.Min, e.Max, len(e.Years))
		}
		if len(res.Trend) > 0 {
			fmt.Println("\nTrend:")
			for _, s := range res.Trend {
				fmt.Printf("  %-28s", s.Location.Name)
				for _, p := range s.Points {
					if p.Present {
						fmt.Printf(" %s=%0.1f", p.Year, p.Value)
					} else {
						fmt.Printf(" %s=·", p.Year)
					}
				}
				fmt.Println()
			}
		}
		return
	}

	fmt.Printf("%s for %s\n", res.Field, res.TargetYear)
	for i, e := range res.Entries {
		fmt.Printf("%d. %-28s %0.2f\n", i+1, e.Location.Name, e.Value)
	}
}
