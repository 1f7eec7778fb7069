// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/pdiddy/grammar-engine/pkg/types"
)

func testConfig() types.Config {
	return types.Config{
		LogLevel:    "debug",
		Annotator:   types.AnnotatorConfig{ReferenceTime: time.Date(2026, time.October, 18, 9, 0, 0, 0, time.UTC)},
		UniqueWords: types.DefaultUniqueWordsConfig(),
	}
}

func runString(t *testing.T, input, op string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := run(strings.NewReader(input), &out, op, testConfig(), zaptest.NewLogger(t))
	return out.String(), err
}

func TestRunUnrecognizedOperationPrintsNull(t *testing.T) {
	for _, op := range []string{"bogus_op", ""} {
		out, err := runString(t, "Duane lives in Ashland.", op)
		require.NoError(t, err)
		assert.Equal(t, "null", out)
	}
}

func TestRunUniqueWords(t *testing.T) {
	out, err := runString(t, "cat cat dog", "unique_words")
	require.NoError(t, err)
	assert.Equal(t, `["dog"]`, out)
}

func TestRunUniqueWordsStopWords(t *testing.T) {
	out, err := runString(t, "the cat sat on the mat", "unique_words")
	require.NoError(t, err)

	var got []string
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.ElementsMatch(t, []string{"cat", "sat", "mat"}, got)
}

func TestRunCombinedContextWithoutOrganizations(t *testing.T) {
	out, err := runString(t, "the cat sat on the mat", "combined_context")
	require.NoError(t, err)

	var got struct {
		Context map[string]string          `json:"context"`
		Raw     map[string]json.RawMessage `json:"raw"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "", got.Context["organizations"])
	assert.Equal(t, "[]", string(got.Raw["organizations"]))
	assert.Len(t, got.Context, 4)
	assert.Len(t, got.Raw, 4)
}

func TestRunExtractAllKeys(t *testing.T) {
	out, err := runString(t, "Maggie and I live about a block away.", "extract_all")
	require.NoError(t, err)

	var got map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Len(t, got, 6)
	for _, key := range []string{"people", "places", "dates", "times", "nouns", "verbs"} {
		assert.Contains(t, got, key)
	}
}

func TestRunPhoneNumbers(t *testing.T) {
	out, err := runString(t, "Call 541-555-0100, or 541-555-0100 again.", "phone_numbers")
	require.NoError(t, err)
	assert.Equal(t, `["541-555-0100"]`, out)
}

func TestRunEmptyInput(t *testing.T) {
	out, err := runString(t, "", "people")
	require.NoError(t, err)
	assert.Equal(t, "[]", out)

	out, err = runString(t, "", "past_tense")
	require.NoError(t, err)
	assert.Equal(t, `""`, out)
}

func TestRunInvalidUTF8(t *testing.T) {
	_, err := runString(t, "bad \xff input", "people")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UTF-8")
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestRunReadError(t *testing.T) {
	var out bytes.Buffer
	err := run(failingReader{}, &out, "people", testConfig(), zaptest.NewLogger(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading input")
	assert.Empty(t, out.String())
}

func TestEncodeResult(t *testing.T) {
	data, err := encodeResult(map[string]string{"text": "<b>&</b>"})
	require.NoError(t, err)
	assert.Equal(t, `{"text":"<b>&</b>"}`, string(data))

	data, err = encodeResult(nil)
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))
}

func TestLoadConfig(t *testing.T) {
	t.Cleanup(viper.Reset)

	viper.Set("log_level", "info")
	viper.Set("reference_time", "2026-10-18T09:00:00Z")
	viper.Set("unique_words.min_length", 3)
	viper.Set("unique_words.stop_words", []string{"cat"})

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 2026, cfg.Annotator.ReferenceTime.Year())
	assert.Equal(t, 3, cfg.UniqueWords.MinLength)
	assert.Equal(t, []string{"cat"}, cfg.UniqueWords.StopWords)

	viper.Set("reference_time", "yesterday")
	_, err = loadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing reference time")
}

func TestOperationsCommand(t *testing.T) {
	var out bytes.Buffer
	operationsCmd.SetOut(&out)
	operationsCmd.Run(operationsCmd, nil)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Len(t, lines, len(types.Operations))
	assert.Equal(t, "past_tense", lines[0])
	assert.Equal(t, "combined_context", lines[len(lines)-1])
}

func TestReadConfig(t *testing.T) {
	t.Cleanup(viper.Reset)
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	t.Run("no file on default paths", func(t *testing.T) {
		t.Cleanup(viper.Reset)
		require.NoError(t, readConfig(""))
	})

	t.Run("explicit file", func(t *testing.T) {
		t.Cleanup(viper.Reset)
		path := filepath.Join(t.TempDir(), "settings.yaml")
		require.NoError(t, os.WriteFile(path, []byte("log_level: info\nunique_words:\n  min_length: 4\n"), 0o644))

		require.NoError(t, readConfig(path))
		assert.Equal(t, "info", viper.GetString("log_level"))
		assert.Equal(t, 4, viper.GetInt("unique_words.min_length"))
	})

	t.Run("explicit file missing", func(t *testing.T) {
		t.Cleanup(viper.Reset)
		err := readConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reading config")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		t.Cleanup(viper.Reset)
		path := filepath.Join(t.TempDir(), "broken.yaml")
		require.NoError(t, os.WriteFile(path, []byte("log_level: [unclosed\n"), 0o644))

		err := readConfig(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reading config")
	})
}

func TestRunUnresolvableDateFails(t *testing.T) {
	_, err := runString(t, "We leave in 99999999999999999999 hours.", "dates")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "resolving dates")
}
