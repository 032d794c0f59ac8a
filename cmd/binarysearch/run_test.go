package main

import (
	"bytes"
	"context"
	"io"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kula-app/binarysearch/internal/config"
	"github.com/kula-app/binarysearch/internal/game"
)

var arrayLine = regexp.MustCompile(`^\[(\d{1,3})(, \d{1,3}){9}\] Number: `)

func env(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func TestRun_Quit(t *testing.T) {
	var stdout, stderr bytes.Buffer
	stdin := io.NopCloser(strings.NewReader("q\n"))

	err := run(context.Background(), []string{"binarysearch"}, env(nil), stdin, &stdout, &stderr)

	require.NoError(t, err)
	lines := strings.Split(stdout.String(), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, game.PromptMessage, lines[0])
	assert.Regexp(t, arrayLine, lines[1])
	assert.True(t, strings.HasSuffix(lines[1], game.FarewellMessage))
	assert.Empty(t, lines[2])
	assert.Empty(t, stderr.String())
}

func TestRun_ParseErrorIsHighlighted(t *testing.T) {
	var stdout bytes.Buffer
	stdin := io.NopCloser(strings.NewReader("abc\nq\n"))

	err := run(context.Background(), []string{"binarysearch"}, env(nil), stdin, &stdout, io.Discard)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "\x1b[31m"+game.ParseErrMessage)
	assert.Contains(t, stdout.String(), "\x1b[0m\n")
	assert.Equal(t, 2, strings.Count(stdout.String(), game.PromptMessage))
}

func TestRun_NotFoundIsHighlighted(t *testing.T) {
	var stdout bytes.Buffer
	// Above the generated range, so never found
	stdin := io.NopCloser(strings.NewReader("101\nq\n"))

	err := run(context.Background(), []string{"binarysearch"}, env(nil), stdin, &stdout, io.Discard)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Number: \x1b[31mERROR: The number 101 was not found in the list of numbers.\x1b[0m\n")
}

func TestRun_NoColor(t *testing.T) {
	var stdout bytes.Buffer
	stdin := io.NopCloser(strings.NewReader("abc\nQ\n"))

	err := run(context.Background(), []string{"binarysearch"}, env(map[string]string{config.EnvNoColor: "1"}), stdin, &stdout, io.Discard)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), game.ParseErrMessage+"\n")
	assert.NotContains(t, stdout.String(), "\x1b[")
}

func TestRun_DebugLogging(t *testing.T) {
	var stdout, stderr bytes.Buffer
	stdin := io.NopCloser(strings.NewReader("50\nq\n"))

	err := run(context.Background(), []string{"binarysearch"}, env(map[string]string{config.EnvLogLevel: "debug"}), stdin, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stderr.String(), "array generated")
	assert.Contains(t, stderr.String(), "search completed")
	assert.NotContains(t, stdout.String(), "array generated")
}

func TestRun_InvalidLogLevel(t *testing.T) {
	err := run(context.Background(), []string{"binarysearch"}, env(map[string]string{config.EnvLogLevel: "loud"}), io.NopCloser(strings.NewReader("")), io.Discard, io.Discard)

	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestRun_InputClosed(t *testing.T) {
	var stdout bytes.Buffer

	err := run(context.Background(), []string{"binarysearch"}, env(nil), io.NopCloser(strings.NewReader("")), &stdout, io.Discard)

	require.ErrorIs(t, err, game.ErrInputClosed)
	assert.NotContains(t, stdout.String(), game.FarewellMessage)
}
