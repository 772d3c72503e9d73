package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vaultpass/passgen-go/internal/generator"
	"github.com/vaultpass/passgen-go/internal/model"
)

var warnColor = color.New(color.FgYellow)

// labelColors maps strength color tokens onto terminal colors.
var labelColors = map[string]color.Attribute{
	"bg-gray-400":   color.FgHiBlack,
	"bg-red-500":    color.FgRed,
	"bg-yellow-500": color.FgYellow,
	"bg-green-500":  color.FgGreen,
	"bg-blue-600":   color.FgBlue,
}

func newStrengthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strength <password>",
		Short: "rate the strength of a password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := generator.Evaluate(args[0])
			printStrength(cmd.OutOrStdout(), model.StrengthResponse{
				Score: a.Score,
				Label: a.Label.String(),
				Color: a.Label.ColorToken(),
			})
			return nil
		},
	}
}

func printStrength(w io.Writer, s model.StrengthResponse) {
	label := color.New(labelColors[s.Color]).Add(color.Bold).Sprint(s.Label)
	fmt.Fprintf(w, "strength: %s (score %d/%d)\n", label, s.Score, generator.MaxScore)
}
