// ============================================================================
// mdwkit - Unicode text and value toolkit
// ============================================================================
//
// Package:     cmd
// Description: Clone command copying structured documents
// Author:      msto63
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package cmd

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/mdwkit/foundation/core/error"
	mdwerrors "github.com/msto63/mdwkit/foundation/core/errors"
	"github.com/msto63/mdwkit/foundation/utils/filex"
	"github.com/msto63/mdwkit/foundation/utils/valuex"
)

type cloneOptions struct {
	from   string
	to     string
	output string
	sets   []string
}

func newCloneCmd(a *app) *cobra.Command {
	opts := &cloneOptions{}

	cmd := &cobra.Command{
		Use:   "clone [FILE] [--from FMT] [--to FMT] [--set PATH=VALUE]...",
		Short: "Deep copy a structured document",
		Long: `Reads a JSON, YAML, TOML, MessagePack or BSON document from FILE or stdin, makes
an independent deep copy, applies the --set edits to the copy and writes it
in the --to format. The source document is checked afterwards to be
unchanged.

Paths use dots for keys and brackets for list indices: server.ports[0].
Values of --set are read as YAML scalars or flow collections, so 8080 is a
number, true a boolean and [a, b] a list. Anything else is kept as text.

--from defaults to the file extension, or json for stdin. --to defaults to
output.format from the configuration.`,
		Example: `  mdwkit clone config.yaml --to toml
  mdwkit clone config.json --set server.port=9090 --set 'tags[0]=edge'
  cat data.mpk | mdwkit clone --from msgpack --to yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runClone(cmd, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.from, "from", "", "input format: json, yaml, toml, msgpack or bson")
	cmd.Flags().StringVar(&opts.to, "to", "", "output format: json, yaml, toml, msgpack or bson")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write to file instead of stdout")
	cmd.Flags().StringArrayVar(&opts.sets, "set", nil, "set PATH=VALUE in the copy (repeatable)")
	return cmd
}

func (a *app) runClone(cmd *cobra.Command, args []string, opts *cloneOptions) error {
	input := ""
	if len(args) == 1 {
		input = args[0]
	}

	from, err := inputFormat(opts.from, input)
	if err != nil {
		return err
	}
	to := a.settings.OutputFormat()
	if opts.to != "" {
		if to, err = valuex.ParseFormat(opts.to); err != nil {
			return err
		}
	}
	edits, err := parseSets(opts.sets)
	if err != nil {
		return err
	}

	data, err := readInput(cmd, input)
	if err != nil {
		return err
	}

	timer := a.log.StartTimer("clone").
		WithField("from", string(from)).
		WithField("to", string(to)).
		WithField("edits", len(edits))

	src, err := valuex.Decode(data, from)
	if err != nil {
		return err
	}
	dup, err := valuex.Clone(src)
	if err != nil {
		return err
	}
	snapshot := valuex.DeepClone(src)

	for _, e := range edits {
		if err := valuex.Set(dup, e.path, e.value); err != nil {
			return err
		}
		a.log.Debug("set", "path", e.path, "kind", valuex.KindOf(e.value).String())
	}

	if !valuex.Equal(src, snapshot) {
		return mdwerrors.NewErrorBuilder(mdwerrors.ModuleCLI).
			Operation("clone").
			Message("source document changed while editing the copy").
			Code(mdwerror.CodeInternal).
			Severity(mdwerror.SeverityCritical).
			Build()
	}

	out, err := valuex.Encode(dup, to)
	if err != nil {
		return err
	}
	if err := writeOutput(cmd, opts.output, out); err != nil {
		return err
	}
	timer.WithField("size", filex.FormatSize(int64(len(out)))).Stop()
	return nil
}

type edit struct {
	path  string
	value valuex.Value
}

// parseSets splits PATH=VALUE arguments at the first '='
func parseSets(sets []string) ([]edit, error) {
	edits := make([]edit, 0, len(sets))
	for _, s := range sets {
		path, raw, ok := strings.Cut(s, "=")
		if !ok || strings.TrimSpace(path) == "" {
			return nil, mdwerrors.InvalidArgument(mdwerrors.ModuleCLI, "set", s, "PATH=VALUE")
		}
		edits = append(edits, edit{path: strings.TrimSpace(path), value: setValue(raw)})
	}
	return edits, nil
}

// setValue reads raw as a YAML scalar or flow list. Anything else, including
// the empty string, stays literal text.
func setValue(raw string) valuex.Value {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return raw
	}
	v, err := valuex.Decode([]byte(raw), valuex.FormatYAML)
	switch {
	case err != nil, valuex.KindOf(v) == valuex.KindObject:
		return raw
	case v == nil && trimmed != "null" && trimmed != "~":
		return raw
	}
	return v
}

func inputFormat(flag, path string) (valuex.Format, error) {
	if flag != "" {
		return valuex.ParseFormat(flag)
	}
	if f, ok := valuex.FormatFromPath(path); ok {
		return f, nil
	}
	return valuex.FormatJSON, nil
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, readError(cmd, "stdin", err)
		}
		return data, nil
	}
	return filex.ReadFile(path)
}

func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path != "" {
		return filex.WriteFile(path, data, filex.DefaultPerm)
	}
	if _, err := cmd.OutOrStdout().Write(data); err != nil {
		return mdwerrors.NewErrorBuilder(mdwerrors.ModuleCLI).
			Operation(cmd.Name()).
			Message("cannot write stdout").
			Cause(err).
			Code(mdwerror.CodeWriteFailed).
			Severity(mdwerror.SeverityHigh).
			Build()
	}
	return nil
}
