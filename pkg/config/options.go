package config

import (
	"fmt"
	"path/filepath"
)

// Options control a single translate invocation.
//
// InFile       – path to the JSON-encoded expression tree to translate.
// OutDir       – directory new .proto files are written to.
// OutFile      – filename within OutDir; defaults to the input basename + ".proto".
// ToolName     – populates the renderer's "generated by" banner.
// ToolVersion  – populates the renderer's "generated by" banner.
// AndFree      – nil out IR slices as they render, bounding peak memory.
// NoIndent2    – suppress field-line indentation in the rendered output.
type Options struct {
	InFile      string `json:"in_file,omitempty" yaml:"in_file,omitempty" mapstructure:"in_file,omitempty"`
	OutDir      string `json:"out_dir,omitempty" yaml:"out_dir,omitempty" mapstructure:"out_dir,omitempty"`
	OutFile     string `json:"out_file,omitempty" yaml:"out_file,omitempty" mapstructure:"out_file,omitempty"`
	ToolName    string `json:"tool_name,omitempty" yaml:"tool_name,omitempty" mapstructure:"tool_name,omitempty"`
	ToolVersion string `json:"tool_version,omitempty" yaml:"tool_version,omitempty" mapstructure:"tool_version,omitempty"`
	AndFree     bool   `json:"and_free,omitempty" yaml:"and_free,omitempty" mapstructure:"and_free,omitempty"`
	NoIndent2   bool   `json:"no_indent2,omitempty" yaml:"no_indent2,omitempty" mapstructure:"no_indent2,omitempty"`
}

func NewOptions() *Options {
	return &Options{
		OutDir:      "proto",
		ToolName:    "asn1proto",
		ToolVersion: "dev",
	}
}

// Normalize fills in derived defaults and rejects unusable combinations.
func (o *Options) Normalize() error {
	if o.InFile == "" {
		return fmt.Errorf("config: in-file is required")
	}
	if o.OutDir == "" {
		o.OutDir = "proto"
	}
	if abs, err := filepath.Abs(o.OutDir); err == nil {
		o.OutDir = abs
	}
	if o.OutFile == "" {
		base := filepath.Base(o.InFile)
		o.OutFile = filepath.Clean(base[:len(base)-len(filepath.Ext(base))] + ".proto")
	}
	if o.ToolName == "" {
		o.ToolName = "asn1proto"
	}
	if o.ToolVersion == "" {
		o.ToolVersion = "dev"
	}
	return nil
}

// functional option pattern ---------------------------------------------------

type Option func(*Options)

func WithInFile(f string) Option      { return func(o *Options) { o.InFile = f } }
func WithOutDir(d string) Option      { return func(o *Options) { o.OutDir = d } }
func WithOutFile(f string) Option     { return func(o *Options) { o.OutFile = f } }
func WithToolName(n string) Option    { return func(o *Options) { o.ToolName = n } }
func WithToolVersion(v string) Option { return func(o *Options) { o.ToolVersion = v } }
func WithAndFree() Option             { return func(o *Options) { o.AndFree = true } }
func WithNoIndent2() Option           { return func(o *Options) { o.NoIndent2 = true } }

// Apply returns a new Options built from defaults plus opts, normalized.
func Apply(opts ...Option) (*Options, error) {
	o := NewOptions()
	for _, opt := range opts {
		opt(o)
	}
	if err := o.Normalize(); err != nil {
		return nil, err
	}
	return o, nil
}
