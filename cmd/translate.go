package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cmmoran/asn1proto/pkg/action/translate"
	"github.com/cmmoran/asn1proto/pkg/config"
)

func init() {
	rootCmd.AddCommand(NewTranslateCommand())
}

func NewTranslateCommand() *cobra.Command {
	opts := config.NewOptions()

	translateCmd := &cobra.Command{
		Use:   "translate",
		Short: "Translate an ASN.1 expression tree into a Protobuf3 schema",
		Long:  "Reads a JSON-encoded, fully resolved ASN.1 expression tree and renders it as a single .proto file",
		RunE: func(c *cobra.Command, args []string) error {
			if err := opts.Normalize(); err != nil {
				return err
			}
			outFile, err := translate.Generate(opts)
			if err != nil {
				return err
			}
			if outFile != translate.StdoutFile {
				fmt.Println(outFile)
			}
			return nil
		},
	}
	translateCmd.Flags().StringVarP(&opts.InFile, "input", "i", "", "path to the JSON-encoded expression tree")
	translateCmd.Flags().StringVarP(&opts.OutDir, "output-directory", "o", "proto", "directory to write the rendered .proto file to")
	translateCmd.Flags().StringVarP(&opts.OutFile, "output-file", "f", "", "output filename (defaults to the input basename); use \"-\" to write to stdout")
	translateCmd.Flags().StringVar(&opts.ToolName, "tool-name", "asn1proto", "tool name recorded in the generated-by banner")
	translateCmd.Flags().StringVar(&opts.ToolVersion, "tool-version", "dev", "tool version recorded in the generated-by banner")
	translateCmd.Flags().BoolVar(&opts.AndFree, "and-free", false, "release IR nodes as they are rendered")
	translateCmd.Flags().BoolVar(&opts.NoIndent2, "no-indent2", false, "suppress field-line indentation in the output")
	_ = translateCmd.MarkFlagRequired("input")

	return translateCmd
}
