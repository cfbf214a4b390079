// Copyright 2026 The wmfgo Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wmfgo/wmf"
	"github.com/wmfgo/wmf/svgsink"
)

const version = "0.1.0"

func main() {
	root := &cobra.Command{
		Use:   "wmfdump",
		Short: "Inspect and render Windows Metafile (WMF) streams",
	}
	root.AddCommand(newDumpCmd(), newConvertCmd(), newVersionCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <file.wmf>",
		Short: "List every record in a metafile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := wmf.Open(args[0], nil)
			if err != nil {
				return err
			}
			defer d.Close()

			mf, err := d.Decode()
			if err != nil {
				return err
			}

			if mf.Placeable != nil {
				fmt.Printf("placeable: bounds=%+v inch=%d\n", mf.Placeable.BoundingBox, mf.Placeable.Inch)
			}
			fmt.Printf("header: version=%s objects=%d maxRecordSize=%d\n",
				mf.Header.Version, mf.Header.NumberOfObjects, mf.Header.MaxRecordSize)
			for i, rec := range mf.Records {
				fmt.Printf("%5d  %-28s %5d bytes\n", i, rec.Header.Function.Type, rec.Header.SizeBytes())
			}
			return nil
		},
	}
}

func newConvertCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "convert <file.wmf>",
		Short: "Render a metafile to SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := wmf.Open(args[0], nil)
			if err != nil {
				return err
			}
			defer d.Close()

			w := os.Stdout
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				defer f.Close()
				return d.Play(svgsink.New(f))
			}
			return d.Play(svgsink.New(w))
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "output path (default: stdout)")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the wmfdump version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(version)
			return nil
		},
	}
}
