package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaultpass/passgen-go/internal/clipboard"
	"github.com/vaultpass/passgen-go/internal/config"
	"github.com/vaultpass/passgen-go/internal/generator"
	"github.com/vaultpass/passgen-go/internal/service"
)

func init() {
	color.NoColor = true
}

type fakeClipboard struct {
	text string
}

func (f *fakeClipboard) WriteAll(text string) error {
	f.text = text
	return nil
}

func (f *fakeClipboard) Supported() bool { return true }

func newTestApp(terminal bool) (*app, *fakeClipboard) {
	cb := &fakeClipboard{}
	cfg := &config.Config{
		Generator: config.GeneratorConfig{
			DefaultLength: 12,
			Letters:       true,
			Numbers:       true,
			Source:        generator.SourceMath,
		},
	}
	return &app{
		cfg:        cfg,
		copier:     clipboard.NewCopier(cb, zerolog.Nop()),
		isTerminal: func() bool { return terminal },
	}, cb
}

func execute(t *testing.T, a *app, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer

	if args == nil {
		args = []string{}
	}

	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func lines(s string) []string {
	return strings.Split(strings.TrimSpace(s), "\n")
}

func TestGenerateCmd(t *testing.T) {
	a, _ := newTestApp(false)

	out, errOut, err := execute(t, a, "", "generate", "-l", "20", "-s", "-c", "3")
	require.NoError(t, err)

	passwords := lines(out)
	require.Len(t, passwords, 3)
	for _, pw := range passwords {
		assert.Len(t, pw, 20)
	}
	assert.Equal(t, 3, strings.Count(errOut, "strength: "))
}

func TestGenerateCmd_OnlyNumbers(t *testing.T) {
	a, _ := newTestApp(false)

	out, _, err := execute(t, a, "", "gen", "--letters=false", "-l", "8")
	require.NoError(t, err)

	pw := strings.TrimSpace(out)
	assert.Len(t, pw, 8)
	for _, c := range pw {
		assert.Contains(t, generator.NumberChars, string(c))
	}
}

func TestGenerateCmd_NoClasses(t *testing.T) {
	a, _ := newTestApp(false)

	out, errOut, err := execute(t, a, "", "generate", "--letters=false", "--numbers=false")
	assert.ErrorIs(t, err, errNoClasses)
	assert.Empty(t, out)
	assert.Contains(t, errOut, generator.NoClassesSelected)
}

func TestGenerateCmd_Seeded(t *testing.T) {
	a, _ := newTestApp(false)

	first, _, err := execute(t, a, "", "generate", "--seed", "99", "-c", "2")
	require.NoError(t, err)
	second, _, err := execute(t, a, "", "generate", "--seed", "99", "-c", "2")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerateCmd_SeedRejectedInProduction(t *testing.T) {
	a, _ := newTestApp(false)
	a.cfg.Env = "production"

	out, _, err := execute(t, a, "", "generate", "--seed", "7")
	assert.ErrorIs(t, err, config.ErrSeedInProduction)
	assert.Empty(t, out)

	out, _, err = execute(t, a, "", "generate")
	require.NoError(t, err)
	assert.Len(t, strings.TrimSpace(out), 12)
}

func TestGenerateCmd_InvalidCount(t *testing.T) {
	a, _ := newTestApp(false)

	_, _, err := execute(t, a, "", "generate", "-c", "50")
	assert.Error(t, err)
}

func TestGenerateCmd_Copy(t *testing.T) {
	a, cb := newTestApp(false)

	out, errOut, err := execute(t, a, "", "generate", "--copy")
	require.NoError(t, err)

	assert.Equal(t, strings.TrimSpace(out), cb.text)
	assert.Contains(t, errOut, clipboard.MsgCopied)
}

func TestStrengthCmd(t *testing.T) {
	a, _ := newTestApp(false)

	out, _, err := execute(t, a, "", "strength", "Abcdefgh123!")
	require.NoError(t, err)
	assert.Equal(t, "strength: Strong (score 6/6)\n", out)

	_, _, err = execute(t, a, "", "strength")
	assert.Error(t, err)
}

func TestRootCmd_NonInteractiveUsesDefaults(t *testing.T) {
	a, _ := newTestApp(false)

	out, _, err := execute(t, a, "")
	require.NoError(t, err)
	assert.Len(t, strings.TrimSpace(out), 12)
}

func TestRootCmd_Interactive(t *testing.T) {
	a, cb := newTestApp(true)

	// length, letters, numbers, symbols, count, copy
	stdin := "16\nn\ny\n\n2\ny\n"
	out, errOut, err := execute(t, a, stdin)
	require.NoError(t, err)

	assert.Contains(t, out, "interactive mode")
	got := lines(out)
	passwords := got[len(got)-2:]
	for _, pw := range passwords {
		assert.Len(t, pw, 16)
		for _, c := range pw {
			assert.Contains(t, generator.NumberChars, string(c))
		}
	}
	assert.Equal(t, passwords[0], cb.text)
	assert.Contains(t, errOut, clipboard.MsgCopied)
}

func TestRunInteractive_KeepsDefaultsOnBlankInput(t *testing.T) {
	a, _ := newTestApp(true)
	def := a.defaultOptions()

	var w bytes.Buffer
	got := runInteractive(strings.NewReader("\n\n\n\n\n\n"), &w, def)

	assert.Equal(t, def, got)
	assert.Contains(t, w.String(), "Include symbols (!@#$...)? [y/N]: ")
	assert.Contains(t, w.String(), "Include letters (A-Z, a-z)? [Y/n]: ")
}

func TestRunInteractive_ClampsLength(t *testing.T) {
	a, _ := newTestApp(true)

	got := runInteractive(strings.NewReader("100\n"), &bytes.Buffer{}, a.defaultOptions())
	assert.Equal(t, generator.MaxLength, got.length)
}

func TestRunInteractive_CapsCount(t *testing.T) {
	a, _ := newTestApp(true)

	got := runInteractive(strings.NewReader("\n\n\n\n50\n"), &bytes.Buffer{}, a.defaultOptions())
	assert.Equal(t, service.MaxCount, got.count)
}
