package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/lapwatch/internal/config"
	lwerrors "github.com/alexisbeaulieu97/lapwatch/pkg/errors"
)

func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)

	err := root.Execute()
	return buf.String(), err
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "lapwatch.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func decodeEffective(t *testing.T, out string) map[string]any {
	t.Helper()

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	return doc
}

func TestConfigCommandPrintsDefaults(t *testing.T) {
	out, err := executeRoot(t, "config")
	require.NoError(t, err)

	doc := decodeEffective(t, out)
	require.Equal(t, "auto", doc["theme"])
	require.Equal(t, "16ms", doc["frame_interval"])
	require.Equal(t, "Stopwatch", doc["title"])
}

func TestConfigCommandMergesFileAndFlags(t *testing.T) {
	path := writeConfig(t, strings.Join([]string{
		"title: Intervals",
		"theme: light",
		"frame_interval: 40ms",
	}, "\n"))

	out, err := executeRoot(t, "config", "--config", path, "--theme", "dark", "--title", "Track day")
	require.NoError(t, err)

	doc := decodeEffective(t, out)
	require.Equal(t, "dark", doc["theme"], "flag overrides file")
	require.Equal(t, "Track day", doc["title"])
	require.Equal(t, "40ms", doc["frame_interval"], "unset flag keeps file value")
}

func TestConfigCommandRejectsInvalidOverride(t *testing.T) {
	_, err := executeRoot(t, "config", "--frame-interval", "5s")
	require.Error(t, err)

	var verr *lwerrors.ValidationError
	require.True(t, errors.As(err, &verr))
	require.Equal(t, "frame_interval", verr.Field)
}

func TestConfigCommandReportsParseErrors(t *testing.T) {
	path := writeConfig(t, "theme: dark\nbogus: true\n")

	_, err := executeRoot(t, "config", "--config", path)
	require.Error(t, err)

	var perr *lwerrors.ParseError
	require.True(t, errors.As(err, &perr))
	require.Equal(t, 2, perr.Line)
}

func TestRootRequiresTerminal(t *testing.T) {
	original := isTerminal
	t.Cleanup(func() { isTerminal = original })
	isTerminal = func(*os.File) bool { return false }

	_, err := executeRoot(t)
	require.Error(t, err)

	var perr *lwerrors.PreconditionError
	require.True(t, errors.As(err, &perr))
	require.Equal(t, "renderer", perr.Component)
}

func TestRootRejectsPositionalArgs(t *testing.T) {
	_, err := executeRoot(t, "extra")
	require.Error(t, err)
}

func TestOpenLoggerWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lapwatch.log")

	log, closer, err := openLogger(config.LogConfig{Level: "debug", File: path})
	require.NoError(t, err)
	log.With("session_id", "abc").Info("hello")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "hello")
	require.Contains(t, string(data), "session_id=abc")
}

func TestOpenLoggerWithoutFileDiscards(t *testing.T) {
	log, closer, err := openLogger(config.LogConfig{})
	require.NoError(t, err)
	require.NotNil(t, log)
	require.NoError(t, closer.Close())
}

func TestOpenLoggerRejectsBadLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lapwatch.log")

	_, _, err := openLogger(config.LogConfig{Level: "loud", File: path})
	require.Error(t, err)
}
