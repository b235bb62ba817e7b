package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/alexxy/gromacs/simd"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	origT, origP := simd.CurrentTarget(), simd.CurrentPrimitives()
	t.Cleanup(func() { require.NoError(t, simd.Configure(origT, origP)) })

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCapsYAML(t *testing.T) {
	out, err := run(t, "caps", "--format", "yaml")
	require.NoError(t, err)

	var got simd.CapabilityTable
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, simd.Capabilities(), got)
	assert.Equal(t, 4, got.FloatWidth)
	assert.Equal(t, 14, got.RcpBits)
}

func TestTargetFlags(t *testing.T) {
	out, err := run(t, "target", "--isa", "power7", "--layout", "be", "--format", "yaml")
	require.NoError(t, err)

	var got target
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, "power7", got.ISA)
	assert.Equal(t, "big-endian", got.Layout)
	assert.False(t, got.Primitives.DirectMove)
	assert.True(t, got.Primitives.ExtractBuiltin)
	assert.Equal(t, "unsupported", got.Overflow)
}

func TestTargetRejectsImpossibleCombination(t *testing.T) {
	_, err := run(t, "target", "--isa", "power7", "--layout", "little-endian")
	assert.ErrorIs(t, err, simd.ErrInvalidTarget)

	_, err = run(t, "target", "--layout", "middle")
	assert.ErrorIs(t, err, simd.ErrInvalidTarget)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "simd.yaml")
	cfg := `isa: power8
layout: little-endian
format: yaml
primitives:
  negate_builtin: false
  int_mul_word: false
  extract_builtin: false
  direct_move: true
`
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0o600))

	out, err := run(t, "target", "--config", path)
	require.NoError(t, err)

	var got target
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, "little-endian", got.Layout)
	assert.Equal(t, simd.Primitives{DirectMove: true}, got.Primitives)
}

func TestConfigFileRejectsBadPrimitives(t *testing.T) {
	path := filepath.Join(t.TempDir(), "simd.yaml")
	cfg := "isa: power8\nlayout: little-endian\nprimitives:\n  extract_builtin: true\n"
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0o600))

	_, err := run(t, "target", "--config", path)
	assert.ErrorIs(t, err, simd.ErrInvalidPrimitives)

	_, err = run(t, "target", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestSelfCheckEveryConfiguration(t *testing.T) {
	for _, layout := range []string{"big-endian", "little-endian"} {
		for _, isa := range []string{"power8", "power9"} {
			for _, generic := range []string{"--generic=false", "--generic=true"} {
				out, err := run(t, "selfcheck", "--layout", layout, "--isa", isa, generic)
				require.NoError(t, err, "%s %s %s:\n%s", layout, isa, generic, out)
				assert.NotContains(t, out, "FAIL")
			}
		}
	}
	out, err := run(t, "selfcheck", "--layout", "big-endian", "--isa", "power7")
	require.NoError(t, err, out)
}

func TestHostText(t *testing.T) {
	out, err := run(t, "host")
	require.NoError(t, err)
	assert.Contains(t, out, "goarch")
	assert.Contains(t, out, "generation")
}

func TestUnknownFormat(t *testing.T) {
	_, err := run(t, "caps", "--format", "json")
	assert.Error(t, err)
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("SIMDINFO_TEST_BOOL", "on")
	assert.True(t, getEnvBool("SIMDINFO_TEST_BOOL", false))
	t.Setenv("SIMDINFO_TEST_BOOL", "0")
	assert.False(t, getEnvBool("SIMDINFO_TEST_BOOL", true))
	t.Setenv("SIMDINFO_TEST_BOOL", "maybe")
	assert.True(t, getEnvBool("SIMDINFO_TEST_BOOL", true))
}

func TestTargetTextListsIgnoredOverride(t *testing.T) {
	out, err := run(t, "target")
	require.NoError(t, err)
	if simd.InitError() == nil {
		assert.Contains(t, out, "ignored override  none")
	} else {
		assert.Contains(t, out, simd.InitError().Error())
	}
}
