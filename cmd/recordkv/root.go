/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/suparena/recordkv"
	"github.com/suparena/recordkv/config"
	"github.com/suparena/recordkv/logging"
)

// app carries state shared by the subcommands of one invocation.
type app struct {
	v    *viper.Viper
	root *cobra.Command
	inst *recordkv.Instance
}

// execute runs the command line args and releases the instance even when
// the command fails.
func (a *app) execute(args []string, stdout, stderr io.Writer) error {
	defer a.close()
	a.root.SetArgs(args)
	a.root.SetOut(stdout)
	a.root.SetErr(stderr)
	return a.root.Execute()
}

func (a *app) close() {
	if a.inst != nil {
		a.inst.Close()
		a.inst = nil
	}
}

func newApp() *app {
	a := &app{v: viper.New()}
	a.root = newRootCmd(a)
	return a
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "recordkv",
		Short: "record source and bucket over a key/value medium",
		Long: fmt.Sprintf(`recordkv (v%s)

Stores typed records and transient state as JSON in an in-memory, bbolt or
DynamoDB medium, and applies sync/push/pull transforms against them.`, recordkv.Version),
		SilenceUsage:       true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.teardown,
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "config file (.yaml, .yml or .toml)")
	flags.String("medium", "", "storage medium: memory, bolt or dynamodb")
	flags.Bool("metered", false, "count medium calls")
	flags.Bool("metrics", false, "print medium metrics to stderr after the command")
	flags.String("bolt-path", "", "bbolt database file")
	flags.String("ddb-table", "", "DynamoDB table")
	flags.String("ddb-region", "", "DynamoDB region")
	flags.String("ddb-endpoint", "", "DynamoDB endpoint override")
	flags.String("namespace", "", "source key namespace")
	flags.String("delimiter", "", "source key delimiter")
	flags.String("schema", "", "source schema file")
	flags.String("bucket-namespace", "", "bucket key namespace")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	flags.String("log-format", "", "log format: text or json")
	flags.String("log-file", "", "write logs to a rotating file")

	root.AddCommand(
		newVersionCmd(),
		newBucketCmd(a),
		newRecordCmd(a),
		newSyncCmd(a),
		newPushCmd(a),
		newPullCmd(a),
	)
	return root
}

// setup loads configuration from file, environment and flags, then opens
// the instance. Commands annotated with skipOpen run without one.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if cmd.Annotations["skipOpen"] == "true" {
		return nil
	}

	config.LoadEnvFiles(".env", ".env.local")

	a.v.SetEnvPrefix("recordkv")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	cfg, err := config.Load(a.v.GetString("config"))
	if err != nil {
		return err
	}
	a.applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logging.Init(cfg.Log.Level, cfg.Log.Format, logging.FileOptions{
		Path:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})

	a.inst, err = recordkv.Open(cmd.Context(), cfg)
	return err
}

func (a *app) applyFlags(cfg *config.Config) {
	strs := map[string]*string{
		"medium":           &cfg.Medium.Kind,
		"bolt-path":        &cfg.Medium.Bolt.Path,
		"ddb-table":        &cfg.Medium.DynamoDB.Table,
		"ddb-region":       &cfg.Medium.DynamoDB.Region,
		"ddb-endpoint":     &cfg.Medium.DynamoDB.Endpoint,
		"namespace":        &cfg.Source.Namespace,
		"delimiter":        &cfg.Source.Delimiter,
		"schema":           &cfg.Source.Schema,
		"bucket-namespace": &cfg.Bucket.Namespace,
		"log-level":        &cfg.Log.Level,
		"log-format":       &cfg.Log.Format,
		"log-file":         &cfg.Log.File,
	}
	for key, field := range strs {
		if a.v.IsSet(key) && a.v.GetString(key) != "" {
			*field = a.v.GetString(key)
		}
	}
	if a.v.IsSet("metered") {
		cfg.Medium.Metered = a.v.GetBool("metered")
	}
	if a.v.GetBool("metrics") {
		cfg.Medium.Metered = true
	}
}

func (a *app) teardown(cmd *cobra.Command, _ []string) error {
	if a.inst == nil {
		return nil
	}
	if a.v.GetBool("metrics") && a.inst.Metrics != nil {
		a.inst.Metrics.WritePrometheus(cmd.ErrOrStderr())
	}
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print the version of recordkv",
		Annotations: map[string]string{"skipOpen": "true"},
		Run: func(cmd *cobra.Command, args []string) {
			info := recordkv.GetVersionInfo()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "recordkv version %s\n", info.Version)
			fmt.Fprintf(out, "Git commit: %s\n", info.GitCommit)
			fmt.Fprintf(out, "Build date: %s\n", info.BuildDate)
			fmt.Fprintf(out, "Go version: %s\n", info.GoVersion)
		},
	}
}
