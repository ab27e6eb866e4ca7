package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestNFACommandDOT(t *testing.T) {
	out, _, err := run(t, "nfa", "-e", "concat(char('a'), char('b'))")
	require.NoError(t, err)
	assert.Contains(t, out, "digraph G {")
	assert.Contains(t, out, `n1 -> n2 [label="b"];`)
}

func TestDFACommandFormats(t *testing.T) {
	out, _, err := run(t, "dfa", "-e", "or(char('a'), char('b'))", "--format", "mermaid")
	require.NoError(t, err)
	assert.Contains(t, out, `q1((("1 {1,3}")))`)

	out, _, err = run(t, "dfa", "-e", "star(char('a'))", "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"kind": "dfa"`)

	_, _, err = run(t, "dfa", "-e", "char('a')", "--format", "svg")
	assert.Error(t, err)
}

func TestTreeFromFileAndOutputFile(t *testing.T) {
	dir := t.TempDir()
	tree := filepath.Join(dir, "tree.yaml")
	require.NoError(t, os.WriteFile(tree, []byte("star: {char: x}\n"), 0644))
	dst := filepath.Join(dir, "out.dot")

	out, _, err := run(t, "nfa", tree, "-o", dst)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Contains(t, string(data), `n2 -> n3 [label="x"];`)
}

func TestMissingTree(t *testing.T) {
	_, _, err := run(t, "nfa")
	assert.ErrorIs(t, err, errNoTree)
}

func TestMatchCommand(t *testing.T) {
	out, _, err := run(t, "match", "--no-color", "-e", "concat(char('a'), star(or(char('b'), char('c'))))", "a", "abcb", "ba", "")
	require.NoError(t, err)
	assert.Equal(t, "accept\t\"a\"\naccept\t\"abcb\"\nreject\t\"ba\"\nreject\t\"\"\n", out)

	_, _, err = run(t, "match", "-e", "char('a')")
	assert.Error(t, err)
}

func TestConfigAndDebugLogging(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "automata.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("format: mermaid\nlog_level: debug\ncolor: false\n"), 0644))

	out, errOut, err := run(t, "--config", cfg, "nfa", "-e", "char('a')")
	require.NoError(t, err)
	assert.Contains(t, out, "graph LR")
	assert.Contains(t, errOut, "nfa built")
	assert.Contains(t, errOut, "states=2")

	_, errOut, err = run(t, "--config", cfg, "--log-level", "warn", "nfa", "-e", "char('a')")
	require.NoError(t, err)
	assert.NotContains(t, errOut, "nfa built")
}
