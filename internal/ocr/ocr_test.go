// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ocr

import (
	"errors"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evcraddock/docr/pkg/types"
)

type fakeRunner struct {
	calls [][]string
	err   error
}

func (f *fakeRunner) LookPath(file string) (string, error) { return "/usr/bin/" + file, nil }

func (f *fakeRunner) Run(name string, args ...string) error {
	f.calls = append(f.calls, append([]string{name}, args...))
	return f.err
}

func (f *fakeRunner) RunPiped(name string, args []string, stdin io.Reader, stdout io.Writer) error {
	return nil
}

func baseConfig() types.OCRConfig {
	return types.OCRConfig{
		Language:    "eng",
		ForceOCR:    true,
		PageTimeout: 300 * time.Second,
		Jobs:        2,
	}
}

func TestApplyForceOCR(t *testing.T) {
	scratch := t.TempDir()
	runner := &fakeRunner{}

	out, err := Apply("/tmp/in.pdf", scratch, baseConfig(), runner)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(scratch, "ocr_output.pdf"), out)

	require.Len(t, runner.calls, 1)
	call := runner.calls[0]
	assert.Equal(t, "ocrmypdf", call[0])
	assert.Equal(t, []string{
		"ocrmypdf",
		"-l", "eng",
		"--deskew",
		"--clean",
		"--tesseract-timeout", "300",
		"--jobs", "2",
		"--force-ocr",
		"/tmp/in.pdf", out,
	}, call)
}

func TestApplySkipText(t *testing.T) {
	cfg := baseConfig()
	cfg.ForceOCR = false
	cfg.Language = "deu"

	runner := &fakeRunner{}
	_, err := Apply("/tmp/in.pdf", t.TempDir(), cfg, runner)
	require.NoError(t, err)

	call := runner.calls[0]
	assert.Contains(t, call, "--skip-text")
	assert.NotContains(t, call, "--force-ocr", "modes are mutually exclusive")
	assert.Contains(t, call, "deu")
}

func TestApplyEngineFailure(t *testing.T) {
	runner := &fakeRunner{err: errors.New("ocrmypdf: exit status 6: input file is encrypted")}

	_, err := Apply("/tmp/in.pdf", t.TempDir(), baseConfig(), runner)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ocr failed")
	assert.Contains(t, err.Error(), "encrypted", "engine stderr is preserved")

	require.Len(t, runner.calls, 1, "engine failures are not retried")
}

func TestApplyConfigurableTimeoutAndJobs(t *testing.T) {
	cfg := baseConfig()
	cfg.PageTimeout = 90 * time.Second
	cfg.Jobs = 4

	runner := &fakeRunner{}
	_, err := Apply("/tmp/in.pdf", t.TempDir(), cfg, runner)
	require.NoError(t, err)

	call := runner.calls[0]
	assert.Contains(t, call, "90")
	assert.Contains(t, call, "4")
}
