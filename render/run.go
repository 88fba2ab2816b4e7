// Package render implements the render subcommand: it reads a selector
// document, compiles it through the builder and writes the rendered
// selector text out.
package render

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"cssb/config"
	"cssb/selector"
	"cssb/state"
)

func Run(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("render")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input document has been specified")
	}
	src, err := filepath.Abs(src)
	if err != nil {
		return err
	}

	dst := cmd.Args().Get(1) // empty means stdout
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	env.Format = env.Cfg.Render.Format
	if s := cmd.String("format"); len(s) > 0 {
		format, err := config.ParseOutputFmt(s)
		if err != nil {
			log.Warn("Unknown output format requested, using configured one", zap.Error(err))
		} else {
			env.Format = format
		}
	}
	env.Overwrite = cmd.Bool("overwrite")

	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("unable to read selector document %q: %w", src, err)
	}

	doc, err := selector.ParseDocument(data, selector.DetectDocumentFormat(src))
	if err != nil {
		return err
	}

	// a document renders all-or-nothing: failed rules are logged by the
	// compiler, the aggregate fails the command
	compiled, err := selector.NewCompiler(log).Compile(doc)
	if err != nil {
		return fmt.Errorf("unable to compile selector document: %w", err)
	}

	out, err := encode(compiled, env.Format, env.Cfg.Render.Header)
	if err != nil {
		return err
	}

	if len(dst) == 0 {
		_, err = os.Stdout.Write(out)
		return err
	}

	dst, err = outputPath(dst, src, env.Format)
	if err != nil {
		return err
	}
	if _, err := os.Stat(dst); err == nil && !env.Overwrite {
		return fmt.Errorf("destination %q already exists, use --overwrite to replace it", dst)
	}
	if err := os.WriteFile(dst, out, 0644); err != nil {
		return fmt.Errorf("unable to write rendered selectors: %w", err)
	}

	log.Info("Rendered selector document",
		zap.Int("rules", len(compiled.Selectors)),
		zap.String("source", src),
		zap.String("destination", dst))
	return nil
}

// outputPath resolves the destination file name. A destination that is an
// existing directory gets a file named after the source with the format
// extension.
func outputPath(dst, src string, format config.OutputFmt) (string, error) {
	dst, err := filepath.Abs(dst)
	if err != nil {
		return "", err
	}
	if fi, err := os.Stat(dst); err == nil && fi.IsDir() {
		base := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
		dst = filepath.Join(dst, base+format.Ext())
	}
	return dst, nil
}

// encode serializes compiled selectors: text is one selector per line with
// an optional comment header, json is a single object with the selector
// list.
func encode(compiled *selector.Compiled, format config.OutputFmt, header string) ([]byte, error) {
	switch format {
	case config.OutputFmtJson:
		out, err := json.MarshalIndent(struct {
			Selectors []string `json:"selectors"`
		}{Selectors: compiled.Selectors}, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("unable to encode selectors: %w", err)
		}
		return append(out, '\n'), nil
	default:
		var sb strings.Builder
		if len(header) > 0 {
			sb.WriteString("/* ")
			sb.WriteString(header)
			sb.WriteString(" */\n")
		}
		sb.WriteString(compiled.String())
		return []byte(sb.String()), nil
	}
}
