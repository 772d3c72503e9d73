package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vaultpass/passgen-go/internal/generator"
	"github.com/vaultpass/passgen-go/internal/service"
)

// runInteractive prompts for each option, keeping the value from opts when
// the answer is blank or unparseable.
func runInteractive(r io.Reader, w io.Writer, opts generateOptions) generateOptions {
	scanner := bufio.NewScanner(r)

	fmt.Fprintln(w, "=== Password Generator (interactive mode) ===")
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Password length (%d-%d) [%d]: ", generator.MinLength, generator.MaxLength, opts.length)
	if v, ok := scanInt(scanner); ok {
		opts.length = generator.ClampLength(v)
	}

	opts.letters = promptYesNo(scanner, w, "Include letters (A-Z, a-z)?", opts.letters)
	opts.numbers = promptYesNo(scanner, w, "Include numbers (0-9)?", opts.numbers)
	opts.symbols = promptYesNo(scanner, w, "Include symbols (!@#$...)?", opts.symbols)

	fmt.Fprintf(w, "How many passwords (1-%d)? [%d]: ", service.MaxCount, opts.count)
	if v, ok := scanInt(scanner); ok && v > 0 {
		opts.count = min(v, service.MaxCount)
	}

	opts.copy = promptYesNo(scanner, w, "Copy to clipboard?", opts.copy)

	fmt.Fprintln(w)
	return opts
}

func scanInt(scanner *bufio.Scanner) (int, bool) {
	if !scanner.Scan() {
		return 0, false
	}
	v, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	return v, err == nil
}

func promptYesNo(scanner *bufio.Scanner, w io.Writer, question string, def bool) bool {
	hint := "[y/N]"
	if def {
		hint = "[Y/n]"
	}
	fmt.Fprintf(w, "%s %s: ", question, hint)

	if !scanner.Scan() {
		return def
	}
	switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
	case "y", "yes":
		return true
	case "n", "no":
		return false
	}
	return def
}
