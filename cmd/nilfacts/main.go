// Command nilfacts inspects and mutates a nilfacts store directory.
//
// It exists for debugging learned state: dump what a project's workers have
// accumulated, or seed a store by hand.
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/hupe1980/nilfacts/inference"
	"github.com/hupe1980/nilfacts/kvstore"
	"github.com/hupe1980/nilfacts/model"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:           "nilfacts",
		Short:         "Inspect and mutate a nilfacts store directory",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&dir, "dir", ".", "store root directory")
	cmd.AddCommand(newDumpCmd(&dir), newMarkCmd(&dir))
	return cmd
}

func newDumpCmd(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "List all decoded records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kv, err := kvstore.New(*dir)
			if err != nil {
				return err
			}
			keys, err := kv.Keys()
			if err != nil {
				return err
			}
			sort.Strings(keys)
			for _, key := range keys {
				id, kind, err := inference.DecodeKey(key)
				if err != nil {
					return err
				}
				value, _, err := kv.Read(key)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", kind, id, value)
			}
			return nil
		},
	}
}

func newMarkCmd(dir *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mark",
		Short: "Record an inferred nullability fact",
	}

	openStore := func() (*inference.Store, error) {
		kv, err := kvstore.New(*dir)
		if err != nil {
			return nil, err
		}
		return inference.New(kv), nil
	}

	markReturn := &cobra.Command{
		Use:   "return <procedure>",
		Short: "Mark a procedure's return nullable",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			return store.MarkReturnNullable(model.ProcedureID(args[0]))
		},
	}

	var index, total int
	markParam := &cobra.Command{
		Use:   "param <procedure>",
		Short: "Mark a procedure parameter nullable",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			return store.MarkParameterNullable(model.ProcedureID(args[0]), index, total)
		},
	}
	markParam.Flags().IntVar(&index, "index", 0, "parameter index (0-based)")
	markParam.Flags().IntVar(&total, "total", 1, "declared parameter count")

	markField := &cobra.Command{
		Use:   "field <field>",
		Short: "Mark a field nullable",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			return store.MarkFieldNullable(model.FieldID(args[0]))
		},
	}

	cmd.AddCommand(markReturn, markParam, markField)
	return cmd
}
