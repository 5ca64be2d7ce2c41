package browser

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"ui_automation/infrastructure/config"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tebeka/selenium"
)

func TestIsNoSuchElement(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"w3c error", &selenium.Error{Err: "no such element", Message: "Unable to locate element"}, true},
		{"legacy status", &selenium.Error{LegacyCode: legacyNoSuchElement}, true},
		{"wrapped", fmt.Errorf("find: %w", &selenium.Error{Err: "no such element"}), true},
		{"plain text", errors.New("no such element: Unable to locate element"), true},
		{"stale element", &selenium.Error{Err: "stale element reference"}, false},
		{"connection refused", errors.New("dial tcp 127.0.0.1:9515: connection refused"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isNoSuchElement(tt.err))
		})
	}
}

func TestChromeArgs(t *testing.T) {
	cfg := config.Default()

	cfg.Headless = true
	assert.Contains(t, chromeArgs(cfg), "--headless=new")

	cfg.Headless = false
	args := chromeArgs(cfg)
	assert.NotContains(t, args, "--headless=new")
	assert.Contains(t, args, "--window-size=1280,720")
}

func TestFindChromeDriver_Configured(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chromedriver")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"), 0o755))

	found, err := findChromeDriver(path)
	require.NoError(t, err)
	assert.Equal(t, path, found)
}

func TestFindChromeBinary_Configured(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chrome")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"), 0o755))

	assert.Equal(t, path, findChromeBinary(path))
}

func TestNewDriver_UnknownBackend(t *testing.T) {
	cfg := config.Default()
	cfg.Driver = "netscape"

	driver, err := NewDriver(cfg, logrus.New())
	require.Error(t, err)
	assert.Nil(t, driver)
	assert.Contains(t, err.Error(), "netscape")
}
