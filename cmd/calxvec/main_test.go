package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func golden(t *testing.T) []byte {
	data, err := os.ReadFile(filepath.Join("..", "..", "vector", "testdata", "add_sub.golden"))
	require.NoError(t, err)

	return data
}

func execute(t *testing.T, stdin string, args ...string) (stdout string, err error) {
	cmd := newRootCmd()

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err = cmd.Execute()

	return out.String(), err
}

func TestGenerate(t *testing.T) {
	want := string(golden(t))

	for _, args := range [][]string{
		{},
		{"generate"},
		{"generate", "--workers", "8"},
		{"--precision", "100"},
	} {
		t.Run(strings.Join(append([]string{"calxvec"}, args...), " "), func(t *testing.T) {
			out, err := execute(t, "", args...)
			require.NoError(t, err)
			require.Equal(t, want, out)
		})
	}
}

func TestGenerateConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calxvec.yaml")
	err := os.WriteFile(path, []byte("workers: 3\nlog:\n  level: error\n"), 0o644)
	require.NoError(t, err)

	out, err := execute(t, "", "--config", path)
	require.NoError(t, err)
	require.Equal(t, string(golden(t)), out)
}

func TestGeneratePrecision(t *testing.T) {
	want, err := os.ReadFile(filepath.Join("..", "..", "vector", "testdata", "add_sub_prec10.golden"))
	require.NoError(t, err)

	out, err := execute(t, "", "--precision", "10")
	require.NoError(t, err)
	require.Equal(t, string(want), out)
}

type closedWriter struct{}

func (closedWriter) Write(p []byte) (int, error) {
	return 0, errors.New("closed")
}

func TestGenerateWriteError(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(closedWriter{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.Error(t, err)
}

func TestGenerateInvalid(t *testing.T) {
	_, err := execute(t, "", "--precision", "0")
	require.Error(t, err)

	_, err = execute(t, "", "--workers", "0")
	require.Error(t, err)

	_, err = execute(t, "", "extra")
	require.Error(t, err)

	_, err = execute(t, "", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestVerify(t *testing.T) {
	out, err := execute(t, string(golden(t)), "verify")
	require.NoError(t, err)
	require.Equal(t, "ok: 432 lines (120 whole)\n", out)

	path := filepath.Join(t.TempDir(), "corpus.txt")
	err = os.WriteFile(path, golden(t), 0o644)
	require.NoError(t, err)

	out, err = execute(t, "", "verify", path)
	require.NoError(t, err)
	require.Equal(t, "ok: 432 lines (120 whole)\n", out)

	_, err = execute(t, "2.\n2.\n0.\n0.\n", "verify")
	require.Error(t, err)

	_, err = execute(t, "", "verify", filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
}
