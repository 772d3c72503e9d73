package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vaultpass/passgen-go/internal/clipboard"
	"github.com/vaultpass/passgen-go/internal/config"
	"github.com/vaultpass/passgen-go/internal/generator"
	"github.com/vaultpass/passgen-go/internal/model"
	"github.com/vaultpass/passgen-go/internal/service"
)

var errNoClasses = errors.New("no character types selected")

type app struct {
	cfg        *config.Config
	copier     *clipboard.Copier
	isTerminal func() bool
}

type generateOptions struct {
	length  int
	letters bool
	numbers bool
	symbols bool
	count   int
	copy    bool
	seed    uint64
}

func (a *app) defaultOptions() generateOptions {
	return generateOptions{
		length:  a.cfg.Generator.DefaultLength,
		letters: a.cfg.Generator.Letters,
		numbers: a.cfg.Generator.Numbers,
		symbols: a.cfg.Generator.Symbols,
		count:   1,
	}
}

func newGenerateCmd(a *app) *cobra.Command {
	opts := a.defaultOptions()

	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "generate one or more passwords",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.generate(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		},
	}

	f := cmd.Flags()
	f.IntVarP(&opts.length, "length", "l", opts.length, "password length (4-32)")
	f.BoolVar(&opts.letters, "letters", opts.letters, "include letters (A-Z, a-z)")
	f.BoolVarP(&opts.numbers, "numbers", "n", opts.numbers, "include numbers (0-9)")
	f.BoolVarP(&opts.symbols, "symbols", "s", opts.symbols, "include symbols (!@#$...)")
	f.IntVarP(&opts.count, "count", "c", opts.count, "number of passwords to generate")
	f.BoolVar(&opts.copy, "copy", false, "copy the first password to the clipboard")
	f.Uint64Var(&opts.seed, "seed", 0, "seed the generator for reproducible output")

	return cmd
}

// generate prints one password per line to out. Strength ratings and
// clipboard messages go to errOut so that out can be piped.
func (a *app) generate(out, errOut io.Writer, opts generateOptions) error {
	svc, err := a.service(opts.seed)
	if err != nil {
		return err
	}

	resp, err := svc.Generate(model.GenerateRequest{
		Length:  opts.length,
		Letters: &opts.letters,
		Numbers: &opts.numbers,
		Symbols: &opts.symbols,
		Count:   opts.count,
	})
	if err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	for _, pw := range resp.Passwords {
		if !pw.Copyable {
			warnColor.Fprintln(errOut, pw.Password)
			return errNoClasses
		}
		fmt.Fprintln(out, pw.Password)
		printStrength(errOut, pw.Strength)
	}

	if opts.copy {
		if res := a.copier.Copy(resp.Passwords[0].Password); res.Message != "" {
			fmt.Fprintln(errOut, res.Message)
		}
	}

	return nil
}

func (a *app) service(seed uint64) (*service.GeneratorService, error) {
	if seed != 0 && a.cfg.IsProduction() {
		return nil, config.ErrSeedInProduction
	}
	if seed == 0 {
		seed = a.cfg.Generator.Seed
	}
	rng, err := generator.NewRand(a.cfg.Generator.Source, seed)
	if err != nil {
		return nil, err
	}
	return service.NewGeneratorService(generator.New(rng), service.Defaults{
		Length:  a.cfg.Generator.DefaultLength,
		Letters: a.cfg.Generator.Letters,
		Numbers: a.cfg.Generator.Numbers,
		Symbols: a.cfg.Generator.Symbols,
	}), nil
}
