// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the grammar-engine CLI.
// It reads text from stdin, runs one extraction named by the first argument,
// and writes a single JSON value to stdout.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/grammar-engine/internal/logging"
	"github.com/pdiddy/grammar-engine/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the grammar-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "grammar-engine [operation] < input.txt",
	Short: "Run natural-language extractions over text on stdin",
	Long: `grammar-engine reads the whole of standard input as one document, annotates
it (parts of speech, named entities, dates and times), and writes the result of
one operation as JSON on standard output.

Operations: past_tense, people, phone_numbers, locations, dates, times, nouns,
verbs, unique_words, extract_all, combined_context. An unknown or missing
operation prints null.`,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE:         runRoot,
}

func init() {
	rootCmd.PersistentPreRunE = func(*cobra.Command, []string) error {
		cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
		return readConfig(cfgFile)
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default: ./grammar-engine.yaml or ~/.config/grammar-engine/config.yaml)")
	flags.String("log-level", logging.DefaultLevel, "stderr log level: debug, info, warn, error")
	flags.String("reference-time", "", "RFC 3339 instant that anchors relative dates (default: now)")

	_ = viper.BindPFlag("log_level", flags.Lookup("log-level"))
	_ = viper.BindPFlag("reference_time", flags.Lookup("reference-time"))

	viper.SetDefault("unique_words.min_length", types.DefaultMinWordLength)
	viper.SetDefault("unique_words.stop_words", types.DefaultStopWords)
}

// readConfig points viper at cfgFile, or at the default search paths when
// cfgFile is empty, and loads it. Only a missing file on the default search
// paths is tolerated.
func readConfig(cfgFile string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("grammar-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "grammar-engine"))
		}
	}

	viper.SetEnvPrefix("GRAMMAR_ENGINE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
