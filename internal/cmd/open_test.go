package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/quantmind-br/webpick/internal/config"
	"github.com/quantmind-br/webpick/internal/display"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOpenCmd(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{}
	log := zerolog.New(io.Discard)

	cmd := NewOpenCmd(cfg, &log)

	assert.NotNil(t, cmd)
	assert.Contains(t, cmd.Use, "open")
	assert.NotNil(t, cmd.Flags().Lookup("with"))
	assert.NotNil(t, cmd.Flags().Lookup("default"))
}

func TestOpenCmd_RequiresURL(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{}
	log := zerolog.New(io.Discard)
	cmd := NewOpenCmd(cfg, &log)

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)

	cmd.SetArgs([]string{})
	err := cmd.Execute()
	assert.Error(t, err)
}

func TestOpenCmd_DefaultRejectsBadScheme(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{}
	log := zerolog.New(io.Discard)
	cmd := NewOpenCmd(cfg, &log)

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)

	cmd.SetArgs([]string{"--default", "ftp://example.com"})
	err := cmd.Execute()
	assert.Error(t, err)
}

func TestOpenCmd_NoBrowsersFound(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		Scan: config.ScanConfig{Roots: []string{t.TempDir()}},
	}
	log := zerolog.New(io.Discard)
	cmd := NewOpenCmd(cfg, &log)

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)

	cmd.SetArgs([]string{"--with", "firefox", "http://example.com"})
	err := cmd.Execute()
	assert.ErrorContains(t, err, "no browsers found")
}

func TestOpenCmd_MissingExecutableDeclinedFallback(t *testing.T) {
	root := t.TempDir()
	appRoot := writeBundle(t, root, "Firefox.app", "firefox", testBrowserPlist)
	require.NoError(t, os.Remove(filepath.Join(appRoot, "Contents", "MacOS", "firefox")))

	orig := confirmFallback
	confirmFallback = func(string) (bool, error) { return false, nil }
	defer func() { confirmFallback = orig }()

	cfg := &config.Config{
		Scan: config.ScanConfig{Roots: []string{root}},
	}
	log := zerolog.New(io.Discard)
	cmd := NewOpenCmd(cfg, &log)

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)

	cmd.SetArgs([]string{"--with", "Firefox", "http://example.com"})
	err := cmd.Execute()
	assert.ErrorContains(t, err, "launch cancelled")
}

func TestFindByName(t *testing.T) {
	t.Parallel()

	items := []display.Item{
		{Title: "Firefox"},
		{Title: "Firefox Developer Edition"},
		{Title: "Google Chrome"},
	}

	tests := []struct {
		name    string
		query   string
		want    string
		wantErr string
	}{
		{name: "exact match", query: "Firefox", want: "Firefox"},
		{name: "exact match is case-insensitive", query: "firefox", want: "Firefox"},
		{name: "unique partial match", query: "chrome", want: "Google Chrome"},
		{name: "no match", query: "opera", wantErr: "no browser matches"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			item, err := findByName(items, tt.query)
			if tt.want != "" {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, item.Title)
				return
			}
			assert.Error(t, err)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestFindByName_Ambiguous(t *testing.T) {
	t.Parallel()

	items := []display.Item{
		{Title: "Firefox"},
		{Title: "Firefox Developer Edition"},
	}

	_, err := findByName(items, "fire")
	assert.ErrorContains(t, err, "ambiguous")
}
