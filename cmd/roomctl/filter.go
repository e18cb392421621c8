package main

import (
	"encoding/json"
	"fmt"

	"roomfinder/internal/i18n"
	"roomfinder/internal/model"
	"roomfinder/internal/service"

	"github.com/spf13/cobra"
)

func newFilterCmd() *cobra.Command {
	var (
		criteria     model.FilterCriteria
		features     []string
		lang         string
		translations string
		idsOnly      bool
	)

	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Filter rooms and print the matches as JSON",
		Long: `Filter applies the gender, category, text, price and feature criteria
to every room in the listings file and prints the matches in file order.

Feature names are canonical labels such as "Wi-Fi" or "Hot Water"; run
"roomctl features" to see the labels present in a file. Categories are
matched against their --lang translation as well as the English name.`,
		Example: `  roomctl filter -f rooms.json --gender boy --category "1 RK" --q room --feature Wi-Fi --max-price 6000`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if criteria.MaxPrice < 0 {
				return fmt.Errorf("--max-price must not be negative")
			}

			catalog := i18n.Default()
			if translations != "" {
				var err error
				catalog, err = i18n.Load(translations)
				if err != nil {
					return err
				}
			}

			rooms, err := loadRooms()
			if err != nil {
				return err
			}

			if len(features) > 0 {
				criteria.FeatureFilters = make(map[string]bool, len(features))
				for _, f := range features {
					criteria.FeatureFilters[f] = true
				}
			}

			matches := service.FilterRooms(rooms, criteria, catalog.Translator(lang))

			out := cmd.OutOrStdout()
			if idsOnly {
				for _, r := range matches {
					fmt.Fprintln(out, r.ID)
				}
				return nil
			}
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(matches)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&criteria.SelectedGender, "gender", "", "gender selector (boy, girl or exact text)")
	flags.StringVar(&criteria.Category, "category", model.CategoryAll, "room category")
	flags.StringVar(&criteria.SearchText, "q", "", "case-insensitive title search")
	flags.StringSliceVar(&features, "feature", nil, "required feature label (repeatable)")
	flags.Float64Var(&criteria.MaxPrice, "max-price", 50000, "price ceiling; rooms without a rent always pass")
	flags.StringVar(&lang, "lang", "en", "language used to translate the category")
	flags.StringVar(&translations, "translations", "", "YAML translations file layered over the built-in labels")
	flags.BoolVar(&idsOnly, "ids", false, "print only matching room ids")
	return cmd
}
