// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestSolveCommand(t *testing.T) {
	out, err := execute(t, "solve", "--plants", "7", "--customers", "6", "--integral", "--verify", "--no-h1", "--lp-bound")
	require.NoError(t, err)
	for _, want := range []string{"cost", "lower bound", "lp bound", "open plants", "exact cost", "timings"} {
		assert.Contains(t, out, want)
	}
}

func TestSolveCommand_Deterministic(t *testing.T) {
	a, err := execute(t, "solve", "--plants", "9", "--customers", "9", "--seed", "3")
	require.NoError(t, err)
	b, err := execute(t, "solve", "--plants", "9", "--customers", "9", "--seed", "3")
	require.NoError(t, err)

	costA, _, _ := strings.Cut(a, "\n")
	costB, _, _ := strings.Cut(b, "\n")
	assert.Equal(t, costA, costB)
}

func TestSolveCommand_InvalidFlags(t *testing.T) {
	_, err := execute(t, "solve", "--beta", "2")
	assert.ErrorContains(t, err, "beta")

	_, err = execute(t, "solve", "--workers", "0")
	assert.ErrorContains(t, err, "workers")

	_, err = execute(t, "solve", "extra")
	assert.Error(t, err)
}

func TestSolveCommand_CapacityExceeded(t *testing.T) {
	_, err := execute(t, "solve", "--plants", "40", "--beta", "0", "--max-assignments", "1024")
	assert.ErrorContains(t, err, "capacity")
}

func TestConfigMerge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("plants: 11\ncustomers: 4\nbeta: 0.5\nnoGreedy: true\n"), 0o600))

	c := defaultConfig()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	c.bindFlags(fs)
	require.NoError(t, fs.Parse([]string{"--customers", "8"}))
	require.NoError(t, c.merge(path, fs))

	assert.Equal(t, 11, c.Plants, "file value")
	assert.Equal(t, 8, c.Customers, "flag beats file")
	assert.Equal(t, 0.5, c.Beta)
	assert.True(t, c.NoGreedy)
	assert.Equal(t, defaultConfig().Alpha, c.Alpha, "untouched default")
}

func TestConfigMerge_Errors(t *testing.T) {
	c := defaultConfig()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	c.bindFlags(fs)
	assert.Error(t, c.merge(filepath.Join(t.TempDir(), "missing.yaml"), fs))

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("plants: [1, 2\n"), 0o600))
	assert.ErrorContains(t, c.merge(path, fs), "parsing config")
}

func TestSolveCommand_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("plants: 5\ncustomers: 5\nintegral: true\nverify: true\n"), 0o600))

	out, err := execute(t, "solve", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "exact cost")
}

func TestSolveCommand_VerifyFailureKeepsReport(t *testing.T) {
	// Non-integral costs make the exact check fail after solving.
	out, err := execute(t, "solve", "--plants", "5", "--customers", "5", "--verify")
	assert.ErrorContains(t, err, "verifying")
	assert.Contains(t, out, "cost")
	assert.Contains(t, out, "open plants")
}

func TestBridge_RoutesErrors(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetLevel(logrus.InfoLevel)

	log := bridge(logger, 0).WithName("solver")
	log.Info("prepared", "plants", 3)
	assert.Empty(t, buf.String(), "info lines are debug output")

	log.Error(errors.New("residual too large"), "solve failed")
	assert.Contains(t, buf.String(), "level=error")
	assert.Contains(t, buf.String(), "residual too large")
	assert.Contains(t, buf.String(), "component=solver")
}
