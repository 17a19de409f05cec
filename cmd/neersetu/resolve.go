package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/dev-eloper-365/NeerSetuBackend/pkg/gw"
	"github.com/spf13/cobra"
)

func getResolveCmd() *cobra.Command {
	var (
		typeFlag   string
		parentFlag string
	)

	cmd := &cobra.Command{
		Use:   "resolve <name>",
		Short: "Fuzzy-resolves a place name to catalog entities",
		Long: `Resolves a possibly misspelled place name to administrative entities,
best match first. The optional --type restricts the search to one
hierarchy level; --parent narrows district or taluk matches to a parent
region (advisory: a hint that would remove every match is ignored).

Examples:
  neersetu resolve "bangalore urban" --type district
  neersetu resolve mysore
  neersetu resolve hosakote --type taluk --parent karnataka`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, cleanup, err := newCore(context.Background())
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

			for i, r := range results {
				fmt.Printf("%d. %s (%s)  score=%.2f  id=%s\n",
					i+1, r.Location.Name,
					strings.ToLower(string(r.Location.Type)),
					r.Score, r.Location.ID)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&typeFlag, "type", "t", "",
		"location type: country, state, district or taluk")
	cmd.Flags().StringVarP(&parentFlag, "parent", "p", "",
		"parent region name hint for district/taluk queries")
	return cmd
}

// parseTypeFlag converts a --type value; empty means all levels.
func parseTypeFlag(s string) (gw.LocationType, error) {
	if s == "" {
		return "", nil
	}
	t, ok := gw.ParseLocationType(s)
	if !ok {
		return "", fmt.Errorf(
			"unknown location type %q (want country, state, district or taluk)", s)
	}
	return t, nil
}
