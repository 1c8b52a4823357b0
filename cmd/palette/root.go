package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/color-palette/api/models"
	"github.com/color-palette/api/palette"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	keyJSON      = "json"
	keyAnalogous = "analogous"
	keyShades    = "shades"
	keyTints     = "tints"
	keyType      = "type"
	keySteps     = "steps"
	keySeed      = "seed"
)

// newRootCmd wires every subcommand to its own viper instance, so flag
// defaults can be overridden by PALETTE_* environment variables.
func newRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("PALETTE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	rootCmd := &cobra.Command{
		Use:           "palette",
		Short:         "Derive color palettes and Lab scales from hex base colors",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(os.Stdout)

	rootCmd.PersistentFlags().Bool(keyJSON, false, "Print machine readable JSON instead of swatches")
	lo.Must0(v.BindPFlag(keyJSON, rootCmd.PersistentFlags().Lookup(keyJSON)))

	rootCmd.AddCommand(
		newBuildCmd(v),
		newScaleCmd(v),
		newRandomCmd(v),
		newInspectCmd(v),
	)

	return rootCmd
}

func parseArgs(args []string) ([]palette.Color, error) {
	colors := make([]palette.Color, 0, len(args))
	for i, arg := range args {
		c, err := palette.ParseHex(arg)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		colors = append(colors, c)
	}
	return colors, nil
}

func countOption(v *viper.Viper, key string) (int, error) {
	n := v.GetInt(key)
	if n < 1 || n > models.MaxDerivedCount {
		return 0, fmt.Errorf("--%s must be between 1 and %d, got %d", key, models.MaxDerivedCount, n)
	}
	return n, nil
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newBuildCmd(v *viper.Viper) *cobra.Command {
	def := palette.DefaultOptions()

	cmd := &cobra.Command{
		Use:   "build <hex>...",
		Short: "Build the complementary, analogous, shade and tint palette of each color",
		Args:  cobra.RangeArgs(1, palette.MaxBaseColors),
		RunE: func(cmd *cobra.Command, args []string) error {
			bases, err := parseArgs(args)
			if err != nil {
				return err
			}

			var opts palette.Options
			if opts.AnalogousCount, err = countOption(v, keyAnalogous); err != nil {
				return err
			}
			if opts.ShadeCount, err = countOption(v, keyShades); err != nil {
				return err
			}
			if opts.TintCount, err = countOption(v, keyTints); err != nil {
				return err
			}

			palettes := palette.BuildAll(bases, opts)
			if v.GetBool(keyJSON) {
				return writeJSON(cmd, palettes)
			}

			r := newRenderer(cmd.OutOrStdout())
			for i, p := range palettes {
				if i > 0 {
					cmd.Println()
				}
				cmd.Print(r.palette(p))
			}
			return nil
		},
	}

	cmd.Flags().IntP(keyAnalogous, "a", def.AnalogousCount, "Number of analogous colors")
	cmd.Flags().IntP(keyShades, "s", def.ShadeCount, "Number of shades toward black")
	cmd.Flags().IntP(keyTints, "t", def.TintCount, "Number of tints toward white")
	lo.Must0(v.BindPFlag(keyAnalogous, cmd.Flags().Lookup(keyAnalogous)))
	lo.Must0(v.BindPFlag(keyShades, cmd.Flags().Lookup(keyShades)))
	lo.Must0(v.BindPFlag(keyTints, cmd.Flags().Lookup(keyTints)))

	return cmd
}

func newScaleCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scale <hex>...",
		Short: "Interpolate each color toward white and black in Lab space",
		Args:  cobra.RangeArgs(1, palette.MaxBaseColors),
		RunE: func(cmd *cobra.Command, args []string) error {
			bases, err := parseArgs(args)
			if err != nil {
				return err
			}

			scaleType, err := palette.ParseScaleType(v.GetString(keyType))
			if err != nil {
				return err
			}

			steps := v.GetInt(keySteps)
			colors, err := palette.ScaleAll(bases, scaleType, steps)
			if err != nil {
				return err
			}

			if v.GetBool(keyJSON) {
				return writeJSON(cmd, models.ScaleResponse{
					PaletteType: string(scaleType),
					ColorSteps:  steps,
					Colors:      palette.Hexes(colors),
				})
			}

			r := newRenderer(cmd.OutOrStdout())
			perBase := len(colors) / len(bases)
			for _, chunk := range lo.Chunk(colors, perBase) {
				cmd.Println(r.row(chunk))
			}
			return nil
		},
	}

	cmd.Flags().String(keyType, string(palette.ScaleFull), "Scale type: full, tints or shades")
	cmd.Flags().Int(keySteps, palette.DefaultSteps, fmt.Sprintf("Colors per direction (%d-%d)", palette.MinSteps, palette.MaxSteps))
	lo.Must0(v.BindPFlag(keyType, cmd.Flags().Lookup(keyType)))
	lo.Must0(v.BindPFlag(keySteps, cmd.Flags().Lookup(keySteps)))
	lo.Must0(cmd.RegisterFlagCompletionFunc(keyType, func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{string(palette.ScaleFull), string(palette.ScaleTints), string(palette.ScaleShades)}, cobra.ShellCompDirectiveDefault
	}))

	return cmd
}
