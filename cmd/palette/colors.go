package main

import (
	"fmt"
	"math/rand"

	"github.com/color-palette/api/models"
	"github.com/color-palette/api/palette"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newRandomCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Pick a random base color and build its palette",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var rng *rand.Rand
			if seed := v.GetInt64(keySeed); seed != 0 {
				rng = rand.New(rand.NewSource(seed))
			}

			base := palette.Random(rng)
			p := palette.BuildDefault(base)
			if v.GetBool(keyJSON) {
				return writeJSON(cmd, models.RandomColorResponse{
					Color:   models.NewSwatch(base),
					Palette: p,
				})
			}

			cmd.Print(newRenderer(cmd.OutOrStdout()).palette(p))
			return nil
		},
	}

	cmd.Flags().Int64(keySeed, 0, "Seed for a reproducible pick (0 picks a fresh color)")
	lo.Must0(v.BindPFlag(keySeed, cmd.Flags().Lookup(keySeed)))

	return cmd
}

func newInspectCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <hex>",
		Short: "Show the RGB, HSL and brightness of a color",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := palette.ParseHex(args[0])
			if err != nil {
				return err
			}

			swatch := models.NewSwatch(c)
			if v.GetBool(keyJSON) {
				return writeJSON(cmd, swatch)
			}

			r := newRenderer(cmd.OutOrStdout())
			cmd.Println(r.swatch(c))
			cmd.Println(r.field("rgb", swatch.RGB))
			cmd.Println(r.field("hsl", fmt.Sprintf("%.0f°, %.0f%%, %.0f%%", swatch.HueDegrees, swatch.HSL.S*100, swatch.HSL.L*100)))
			cmd.Println(r.field("brightness", fmt.Sprintf("%.1f", swatch.Brightness)))
			cmd.Println(r.field("text", swatch.TextColor))
			return nil
		},
	}
}
