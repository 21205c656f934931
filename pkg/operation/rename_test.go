package operation

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/renamerc/pkg/config"
	"github.com/walteh/renamerc/pkg/log"
)

func init() {
	color.NoColor = true
}

type fixture struct {
	root    string
	console *bytes.Buffer
	cfg     *config.Config
}

func newFixture(t *testing.T, cfg *config.Config) *fixture {
	t.Helper()
	require.NoError(t, cfg.Validate())
	return &fixture{
		root:    t.TempDir(),
		console: &bytes.Buffer{},
		cfg:     cfg,
	}
}

func (f *fixture) write(t *testing.T, rel, content string) string {
	t.Helper()
	abs := filepath.Join(f.root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(abs), 0o755))
	require.NoError(t, os.WriteFile(abs, []byte(content), 0o644))
	return abs
}

func (f *fixture) read(t *testing.T, rel string) string {
	t.Helper()
	content, err := os.ReadFile(filepath.Join(f.root, filepath.FromSlash(rel)))
	require.NoError(t, err)
	return string(content)
}

func (f *fixture) run(t *testing.T) RunSummary {
	t.Helper()
	op, err := NewRenameOperation(Options{
		Config: f.cfg,
		Logger: log.New(f.console, zerolog.Disabled),
		Root:   f.root,
	})
	require.NoError(t, err)

	logger := zerolog.Nop()
	ctx := logger.WithContext(context.Background())
	require.NoError(t, NewRunner(&logger).Run(ctx, op))
	return op.Summary()
}

func renameConfig() *config.Config {
	return &config.Config{
		Replacements: []config.Replacement{
			{Old: "a3mailer-server", New: "mailserver-core"},
			{Old: "A3Mailer", New: "MailServer"},
		},
		Patterns: []string{"**/*.md"},
	}
}

func TestRenameOperation_RewritesMatchingFiles(t *testing.T) {
	f := newFixture(t, renameConfig())
	f.write(t, "notes.md", "See a3mailer-server for details")
	f.write(t, "docs/about.md", "A3Mailer ships A3Mailer binaries")
	f.write(t, "plain.md", "nothing to see here")

	summary := f.run(t)

	assert.Equal(t, "See mailserver-core for details", f.read(t, "notes.md"))
	assert.Equal(t, "MailServer ships MailServer binaries", f.read(t, "docs/about.md"))
	assert.Equal(t, "nothing to see here", f.read(t, "plain.md"))
	assert.Equal(t, RunSummary{Considered: 3, Updated: 2}, summary)
	assert.Contains(t, f.console.String(), "✅ Updated: notes.md")
}

func TestRenameOperation_LeavesKeylessFilesByteIdentical(t *testing.T) {
	f := newFixture(t, renameConfig())
	original := "unrelated content\nwith two lines\n"
	abs := f.write(t, "plain.md", original)
	before, err := os.Stat(abs)
	require.NoError(t, err)

	summary := f.run(t)

	after, err := os.Stat(abs)
	require.NoError(t, err)
	assert.Equal(t, original, f.read(t, "plain.md"))
	assert.Equal(t, before.ModTime(), after.ModTime(), "untouched file should not be rewritten")
	assert.Equal(t, RunSummary{Considered: 1, Updated: 0}, summary)
}

func TestRenameOperation_IdentityReplacementIsNotAnUpdate(t *testing.T) {
	cfg := &config.Config{
		Replacements: []config.Replacement{
			{Old: "A3Mailer DAV Server", New: "A3Mailer DAV Server"},
		},
		Patterns: []string{"**/*.md"},
	}
	f := newFixture(t, cfg)
	f.write(t, "dav.md", "A3Mailer DAV Server\n")

	summary := f.run(t)

	assert.Equal(t, "A3Mailer DAV Server\n", f.read(t, "dav.md"))
	assert.Equal(t, RunSummary{Considered: 1, Updated: 0}, summary)
}

func TestRenameOperation_Idempotence(t *testing.T) {
	f := newFixture(t, renameConfig())
	f.write(t, "notes.md", "a3mailer-server everywhere: a3mailer-server")

	first := f.run(t)
	require.Equal(t, 1, first.Updated)

	second := f.run(t)
	assert.Equal(t, 0, second.Updated, "second run must find nothing left to replace")
	assert.Equal(t, "mailserver-core everywhere: mailserver-core", f.read(t, "notes.md"))
}

func TestRenameOperation_ExcludedFilesAreNeverConsidered(t *testing.T) {
	f := newFixture(t, renameConfig())
	f.write(t, ".hidden/secret.md", "a3mailer-server")
	f.write(t, "node_modules/dep/readme.md", "a3mailer-server")
	f.write(t, "target/out.md", "a3mailer-server")
	f.write(t, "visible.md", "a3mailer-server")

	summary := f.run(t)

	assert.Equal(t, RunSummary{Considered: 1, Updated: 1}, summary)
	assert.Equal(t, "a3mailer-server", f.read(t, ".hidden/secret.md"))
	assert.Equal(t, "a3mailer-server", f.read(t, "node_modules/dep/readme.md"))
	assert.Equal(t, "a3mailer-server", f.read(t, "target/out.md"))
	assert.Equal(t, "mailserver-core", f.read(t, "visible.md"))
}

func TestRenameOperation_UnreadableFileIsLoggedAndSkipped(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("file permissions are not enforced for root")
	}

	f := newFixture(t, renameConfig())
	locked := f.write(t, "locked.md", "a3mailer-server")
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o644) })
	f.write(t, "open.md", "a3mailer-server")

	summary := f.run(t)

	assert.Equal(t, RunSummary{Considered: 2, Updated: 1, Failed: 1}, summary)
	assert.Contains(t, f.console.String(), "❌ Error updating locked.md")
}

func TestRenameOperation_BinaryContentIsLoggedAndSkipped(t *testing.T) {
	f := newFixture(t, renameConfig())
	abs := filepath.Join(f.root, "blob.md")
	require.NoError(t, os.WriteFile(abs, []byte{0xff, 0xfe, 0x00, 0x01}, 0o644))

	summary := f.run(t)

	assert.Equal(t, RunSummary{Considered: 1, Updated: 0, Failed: 1}, summary)
	assert.Contains(t, f.console.String(), "❌ Error updating blob.md")
}

func TestRenameOperation_DryRunReportsWithoutWriting(t *testing.T) {
	cfg := renameConfig()
	cfg.DryRun = true
	f := newFixture(t, cfg)
	f.write(t, "notes.md", "See a3mailer-server for details")

	summary := f.run(t)

	assert.Equal(t, "See a3mailer-server for details", f.read(t, "notes.md"))
	assert.Equal(t, RunSummary{Considered: 1, Updated: 1}, summary)
	assert.Contains(t, f.console.String(), "🔍 Would update: notes.md")
}

func TestRenameOperation_OrderedRulesChain(t *testing.T) {
	cfg := &config.Config{
		Replacements: []config.Replacement{
			{Old: "stalwart-server", New: "a3mailer-server"},
			{Old: "a3mailer-server", New: "mailserver-core"},
		},
		Patterns: []string{"**/*.md"},
	}
	f := newFixture(t, cfg)
	f.write(t, "chain.md", "stalwart-server")

	f.run(t)

	// The second rule runs on the first rule's output
	assert.Equal(t, "mailserver-core", f.read(t, "chain.md"))
}

func TestRenameOperation_DedupeAcrossOverlappingPatterns(t *testing.T) {
	cfg := &config.Config{
		Replacements: []config.Replacement{{Old: "x", New: "y"}},
		Patterns:     []string{"**/*.md", "**/notes.*"},
		Dedupe:       true,
	}
	f := newFixture(t, cfg)
	f.write(t, "notes.md", "x")

	summary := f.run(t)

	assert.Equal(t, RunSummary{Considered: 1, Updated: 1}, summary)
	assert.Equal(t, "y", f.read(t, "notes.md"))
}

func TestNewRenameOperation_Validation(t *testing.T) {
	logger := log.New(&bytes.Buffer{}, zerolog.Disabled)

	tests := []struct {
		name      string
		opts      Options
		wantError string
	}{
		{
			name:      "missing_config",
			opts:      Options{Logger: logger},
			wantError: "config is required",
		},
		{
			name:      "missing_logger",
			opts:      Options{Config: renameConfig()},
			wantError: "logger is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRenameOperation(tt.opts)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantError)
		})
	}
}
