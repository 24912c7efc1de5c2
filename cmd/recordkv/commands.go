/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/suparena/recordkv/storagemodels"
)

func newBucketCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bucket",
		Short: "Read and write bucket items",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "get [key]",
			Short: "Print the JSON value of an item, or null",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				v, err := a.inst.Bucket.GetItem(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), v)
			},
		},
		&cobra.Command{
			Use:   "set [key] [json]",
			Short: "Store a value; text that is not JSON is stored as a string",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				var v any
				if err := json.Unmarshal([]byte(args[1]), &v); err != nil {
					v = args[1]
				}
				return a.inst.Bucket.SetItem(cmd.Context(), args[0], v)
			},
		},
		&cobra.Command{
			Use:   "rm [key]",
			Short: "Remove an item",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.inst.Bucket.RemoveItem(cmd.Context(), args[0])
			},
		},
	)
	return cmd
}

func newRecordCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "record",
		Short: "Read and write source records",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "get [type] [id]",
			Short: "Print a record, or null",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				src, err := a.inst.RequireSource()
				if err != nil {
					return err
				}
				r, err := src.GetRecord(cmd.Context(), storagemodels.RecordIdentity{Type: args[0], ID: args[1]})
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), r)
			},
		},
		&cobra.Command{
			Use:   "put [file|-]",
			Short: "Store the JSON record read from file or stdin",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				src, err := a.inst.RequireSource()
				if err != nil {
					return err
				}
				var r storagemodels.Record
				if err := readJSON(cmd, args[0], &r); err != nil {
					return err
				}
				return src.PutRecord(cmd.Context(), &r)
			},
		},
		&cobra.Command{
			Use:   "rm [type] [id]",
			Short: "Remove a record",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				src, err := a.inst.RequireSource()
				if err != nil {
					return err
				}
				return src.RemoveRecord(cmd.Context(), storagemodels.RecordIdentity{Type: args[0], ID: args[1]})
			},
		},
		&cobra.Command{
			Use:   "list [type]",
			Short: "Print all records, optionally of one type",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				src, err := a.inst.RequireSource()
				if err != nil {
					return err
				}
				typ := ""
				if len(args) == 1 {
					typ = args[0]
				}
				records, err := src.Records(cmd.Context(), typ)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), records)
			},
		},
		&cobra.Command{
			Use:   "reset",
			Short: "Remove every key in the source namespace",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				src, err := a.inst.RequireSource()
				if err != nil {
					return err
				}
				return src.Reset(cmd.Context())
			},
		},
	)
	return cmd
}

func newSyncCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sync [file|-]",
		Short: "Apply a JSON transform",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := a.inst.RequireSource()
			if err != nil {
				return err
			}
			var t storagemodels.Transform
			if err := readJSON(cmd, args[0], &t); err != nil {
				return err
			}
			return src.Sync(cmd.Context(), &t)
		},
	}
}

func newPushCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "push [file|-]",
		Short: "Apply a JSON transform and print the committed transforms",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := a.inst.RequireSource()
			if err != nil {
				return err
			}
			var t storagemodels.Transform
			if err := readJSON(cmd, args[0], &t); err != nil {
				return err
			}
			result, err := src.Push(cmd.Context(), &t)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}
}

func newPullCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "pull [file|-]",
		Short: "Answer a JSON query with transforms",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := a.inst.RequireSource()
			if err != nil {
				return err
			}
			var q storagemodels.Query
			if err := readJSON(cmd, args[0], &q); err != nil {
				return err
			}
			result, err := src.Pull(cmd.Context(), &q)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}
}

// readJSON decodes the file at path, or stdin for "-", into v.
func readJSON(cmd *cobra.Command, path string, v any) error {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
