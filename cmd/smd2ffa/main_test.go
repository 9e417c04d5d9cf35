package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const walkSMD = `skeleton
time 0
  1 0.030518 0 0 0 0 0
time 1
  1 0.030518 0 0 0 0 0
end
`

func writeInput(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "walk.smd")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestRun_ChunksFlag(t *testing.T) {
	input := writeInput(t, walkSMD)

	var out bytes.Buffer
	code := run([]string{"-chunks", "2", input}, strings.NewReader(""), &out)
	require.Equal(t, 0, code)

	st, err := os.Stat(strings.TrimSuffix(input, ".smd") + ".ffa")
	require.NoError(t, err)
	require.Equal(t, int64(136), st.Size())
	require.Contains(t, out.String(), "SUCCESS")
}

func TestRun_PromptsForChunks(t *testing.T) {
	input := writeInput(t, walkSMD)

	var out bytes.Buffer
	code := run([]string{"-sidecar", "lz4", input}, strings.NewReader("1, 1\n"), &out)
	require.Equal(t, 0, code)
	require.Contains(t, out.String(), chunkPrompt)

	_, err := os.Stat(strings.TrimSuffix(input, ".smd") + ".ffa.lz4")
	require.NoError(t, err)
}

func TestRun_InvalidChunks(t *testing.T) {
	input := writeInput(t, walkSMD)

	var out bytes.Buffer
	require.Equal(t, 1, run([]string{input}, strings.NewReader("10,-2\n"), &out))
	require.Equal(t, 1, run([]string{input}, strings.NewReader(""), &out))
}

func TestRun_ConfigProfile(t *testing.T) {
	input := writeInput(t, walkSMD)
	profile := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(profile, []byte("chunk_sizes: [2]\noutput_suffix: .anim\n"), 0o600))

	var out bytes.Buffer
	code := run([]string{"-q", "-config", profile, input}, strings.NewReader(""), &out)
	require.Equal(t, 0, code)
	require.Empty(t, out.String())

	_, err := os.Stat(strings.TrimSuffix(input, ".smd") + ".anim")
	require.NoError(t, err)
}

func TestRun_NoFiles(t *testing.T) {
	var out bytes.Buffer
	code := run([]string{filepath.Join(t.TempDir(), "missing.smd")}, strings.NewReader(""), &out)
	require.Equal(t, 1, code)
	require.Contains(t, out.String(), "Usage:")
}

func TestRun_FailedFileExitCode(t *testing.T) {
	input := writeInput(t, "nodes\nend\n")

	var out bytes.Buffer
	code := run([]string{"-chunks", "3", input}, strings.NewReader(""), &out)
	require.Equal(t, 1, code)
	require.Contains(t, out.String(), "ERROR:")
}
