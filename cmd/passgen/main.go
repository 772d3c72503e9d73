package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vaultpass/passgen-go/internal/clipboard"
	"github.com/vaultpass/passgen-go/internal/config"
	"github.com/vaultpass/passgen-go/internal/logging"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Logging, cfg.Env, os.Stderr)

	a := &app{
		cfg:        cfg,
		copier:     clipboard.NewCopier(clipboard.System(), logger),
		isTerminal: func() bool { return term.IsTerminal(int(os.Stdin.Fd())) },
	}

	if err := newRootCmd(a).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "passgen",
		Short:        "generate and rate passwords",
		Long:         "passgen generates random passwords from letters, numbers and symbols and rates their strength.\nRun without a subcommand on a terminal for interactive mode.",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := a.defaultOptions()
			if a.isTerminal() {
				opts = runInteractive(cmd.InOrStdin(), cmd.OutOrStdout(), opts)
			}
			return a.generate(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		},
	}

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(newGenerateCmd(a))
	rootCmd.AddCommand(newStrengthCmd())

	return rootCmd
}
