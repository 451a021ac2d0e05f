package cmd

import (
	"bytes"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/quantmind-br/webpick/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testIconBrowserPlist additionally declares an icon resource.
const testIconBrowserPlist = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>CFBundleExecutable</key>
	<string>firefox</string>
	<key>CFBundleName</key>
	<string>Firefox</string>
	<key>CFBundleShortVersionString</key>
	<string>131.0.3</string>
	<key>CFBundleIconFile</key>
	<string>firefox.png</string>
	<key>CFBundleURLTypes</key>
	<array>
		<dict>
			<key>CFBundleURLSchemes</key>
			<array>
				<string>http</string>
				<string>https</string>
			</array>
		</dict>
	</array>
</dict>
</plist>`

func TestNewInfoCmd(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{}
	log := zerolog.New(io.Discard)

	cmd := NewInfoCmd(cfg, &log)

	assert.NotNil(t, cmd)
	assert.Contains(t, cmd.Use, "info")
	assert.NotNil(t, cmd.Flags().Lookup("resolve-icon"))
}

func TestInfoCmd_ShowsBrowser(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeBundle(t, root, "Firefox.app", "firefox", testBrowserPlist)

	cfg := &config.Config{
		Scan: config.ScanConfig{Roots: []string{root}},
	}
	log := zerolog.New(io.Discard)
	cmd := NewInfoCmd(cfg, &log)

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)

	cmd.SetArgs([]string{"Firefox"})
	err := cmd.Execute()
	assert.NoError(t, err)
}

func TestInfoCmd_NotFound(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeBundle(t, root, "Firefox.app", "firefox", testBrowserPlist)

	cfg := &config.Config{
		Scan: config.ScanConfig{Roots: []string{root}},
	}
	log := zerolog.New(io.Discard)
	cmd := NewInfoCmd(cfg, &log)

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)

	cmd.SetArgs([]string{"netscape"})
	err := cmd.Execute()
	assert.Error(t, err)
}

func TestInfoCmd_NoBrowsers(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		Scan: config.ScanConfig{Roots: []string{t.TempDir()}},
	}
	log := zerolog.New(io.Discard)
	cmd := NewInfoCmd(cfg, &log)

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)

	cmd.SetArgs([]string{"Firefox"})
	err := cmd.Execute()
	assert.ErrorContains(t, err, "no browsers found")
}

func TestInfoCmd_ResolveIcon(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	appRoot := writeBundle(t, root, "Firefox.app", "firefox", testIconBrowserPlist)

	resources := filepath.Join(appRoot, "Contents", "Resources")
	require.NoError(t, os.MkdirAll(resources, 0o755))

	f, err := os.Create(filepath.Join(resources, "firefox.png"))
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, image.NewRGBA(image.Rect(0, 0, 64, 64))))
	require.NoError(t, f.Close())

	cfg := &config.Config{
		Scan: config.ScanConfig{Roots: []string{root}},
		Icon: config.IconConfig{Size: 32},
	}
	log := zerolog.New(io.Discard)
	cmd := NewInfoCmd(cfg, &log)

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)

	cmd.SetArgs([]string{"Firefox", "--resolve-icon"})
	err = cmd.Execute()
	assert.NoError(t, err)
}
