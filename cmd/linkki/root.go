/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"dirpx.dev/linkki"
	"dirpx.dev/linkki/apis"
	"dirpx.dev/linkki/config"
)

// env binds configuration keys to environment variables.
var env = map[string]string{
	"tagKey":             "LINKKI_TAG_KEY",
	"defaultModelObject": "LINKKI_DEFAULT_MODEL_OBJECT",
	"strictTags":         "LINKKI_STRICT_TAGS",
	"logLevel":           "LINKKI_LOG_LEVEL",
}

// newRootCmd returns the linkki command with its subcommands. Before any
// subcommand runs, the configuration is read from defaults, the optional
// config file, the environment and the flags, in increasing precedence,
// and published as the global linkki configuration.
func newRootCmd() *cobra.Command {
	v := viper.New()
	var file string
	root := &cobra.Command{
		Use:          "linkki",
		Short:        "linkki binds presentation models to UI components.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(v, file)
			if err != nil {
				return err
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.LogLevel})))
			return linkki.SetConfig(cfg)
		},
	}
	root.PersistentFlags().StringVarP(&file, "config", "c", "", "YAML configuration file")
	root.PersistentFlags().String("log-level", "", "minimum log level (debug, info, warn, error)")
	root.PersistentFlags().String("tag-key", "", "struct tag key holding annotations")
	_ = v.BindPFlag("logLevel", root.PersistentFlags().Lookup("log-level"))
	_ = v.BindPFlag("tagKey", root.PersistentFlags().Lookup("tag-key"))

	root.AddCommand(newConfigCmd(), newDescribeCmd(), newRunCmd(), newServeCmd())
	return root
}

func loadConfig(v *viper.Viper, file string) (apis.Config, error) {
	def := config.DefaultConfig()
	v.SetDefault("tagKey", def.TagKey)
	v.SetDefault("defaultModelObject", def.DefaultModelObject)
	v.SetDefault("strictTags", def.StrictTags)
	v.SetDefault("logLevel", def.LogLevel.String())
	for key, name := range env {
		if err := v.BindEnv(key, name); err != nil {
			return apis.Config{}, err
		}
	}
	if file != "" {
		v.SetConfigFile(file)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return apis.Config{}, fmt.Errorf("read %s: %w", file, err)
		}
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(v.GetString("logLevel"))); err != nil {
		return apis.Config{}, fmt.Errorf("log level: %w", err)
	}
	return config.NewConfig(
		config.WithTagKey(v.GetString("tagKey")),
		config.WithDefaultModelObject(v.GetString("defaultModelObject")),
		config.WithStrictTags(v.GetBool("strictTags")),
		config.WithLogLevel(level),
	), nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "config prints the effective configuration as YAML.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return config.Dump(cmd.OutOrStdout(), linkki.Config())
		},
	}
}
