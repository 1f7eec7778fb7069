// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/grammar-engine/internal/annotate"
	"github.com/pdiddy/grammar-engine/internal/dispatch"
	"github.com/pdiddy/grammar-engine/internal/logging"
	"github.com/pdiddy/grammar-engine/pkg/types"
)

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if used := viper.ConfigFileUsed(); used != "" {
		log.Debug("using config file", zap.String("path", used))
	}

	var name string
	if len(args) > 0 {
		name = args[0]
	}
	return run(cmd.InOrStdin(), cmd.OutOrStdout(), name, cfg, log)
}

// loadConfig assembles settings from flags, environment, and config file.
func loadConfig() (types.Config, error) {
	cfg := types.Config{
		LogLevel: viper.GetString("log_level"),
		UniqueWords: types.UniqueWordsConfig{
			MinLength: viper.GetInt("unique_words.min_length"),
			StopWords: viper.GetStringSlice("unique_words.stop_words"),
		},
	}
	if ref := viper.GetString("reference_time"); ref != "" {
		t, err := time.Parse(time.RFC3339, ref)
		if err != nil {
			return types.Config{}, fmt.Errorf("parsing reference time %q: %w", ref, err)
		}
		cfg.Annotator.ReferenceTime = t
	}
	return cfg, nil
}

// run reads all of in, annotates it, runs the named operation, and writes
// the JSON result to out. Input is buffered to end of stream first because
// annotation needs the whole document.
func run(in io.Reader, out io.Writer, name string, cfg types.Config, log *zap.Logger) error {
	input, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	annotator, err := annotate.New(cfg.Annotator, log)
	if err != nil {
		return err
	}
	doc, err := annotator.Annotate(string(input))
	if err != nil {
		return err
	}

	result := dispatch.New(cfg.UniqueWords, log).Run(doc, name)

	data, err := encodeResult(result)
	if err != nil {
		return err
	}
	if _, err := out.Write(data); err != nil {
		return fmt.Errorf("writing result: %w", err)
	}
	return nil
}

// encodeResult serializes v as compact JSON without HTML escaping or a
// trailing newline.
func encodeResult(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("encoding result: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
