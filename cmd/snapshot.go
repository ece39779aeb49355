package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cmmoran/asn1proto/pkg/action/snapshot"
	"github.com/cmmoran/asn1proto/pkg/config"
)

func init() {
	rootCmd.AddCommand(NewSnapshotCommand())
	rootCmd.AddCommand(NewDiffCommand())
}

func NewSnapshotCommand() *cobra.Command {
	var (
		opts            = config.NewOptions()
		manifestPath    string
		moduleName      string
		snapshotVersion string
	)

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render a .proto file and record it in a version manifest",
		RunE: func(c *cobra.Command, args []string) error {
			if err := opts.Normalize(); err != nil {
				return err
			}
			outFile, err := snapshot.Generate(opts, manifestPath, moduleName, snapshotVersion)
			if err != nil {
				return err
			}
			fmt.Println(outFile)
			return nil
		},
	}
	snapshotCmd.Flags().StringVarP(&opts.InFile, "input", "i", "", "path to the JSON-encoded expression tree")
	snapshotCmd.Flags().StringVarP(&opts.OutDir, "output-directory", "o", "proto", "directory to write the rendered .proto file to")
	snapshotCmd.Flags().StringVarP(&opts.OutFile, "output-file", "f", "", "output filename (defaults to the input basename)")
	snapshotCmd.Flags().StringVar(&manifestPath, "manifest", "asn1proto-manifest.yaml", "path to the version manifest")
	snapshotCmd.Flags().StringVar(&moduleName, "module", "", "module name recorded in the manifest")
	snapshotCmd.Flags().StringVar(&snapshotVersion, "version", "", "version recorded in the manifest")
	_ = snapshotCmd.MarkFlagRequired("input")
	_ = snapshotCmd.MarkFlagRequired("module")
	_ = snapshotCmd.MarkFlagRequired("version")

	return snapshotCmd
}

func NewDiffCommand() *cobra.Command {
	var manifestPath string

	diffCmd := &cobra.Command{
		Use:   "diff",
		Short: "Diff the current and previous recorded snapshots",
		RunE: func(c *cobra.Command, args []string) error {
			d, err := snapshot.DiffCurrentWithPrevious(manifestPath)
			if err != nil {
				return err
			}
			fmt.Println(d)
			return nil
		},
	}
	diffCmd.Flags().StringVar(&manifestPath, "manifest", "asn1proto-manifest.yaml", "path to the version manifest")

	return diffCmd
}
