package cli

import (
	"bytes"
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdparse/internal/logging"
	"github.com/yaklabco/gomdparse/pkg/config"
	"github.com/yaklabco/gomdparse/pkg/fsutil"
	"github.com/yaklabco/gomdparse/pkg/parser"
	"github.com/yaklabco/gomdparse/pkg/render/html"
)

type htmlFlags struct {
	parser       parserFlags
	anchorPrefix string
	headingIDs   bool
	watch        bool
	output       string
}

func newHTMLCommand() *cobra.Command {
	flags := &htmlFlags{}

	cmd := &cobra.Command{
		Use:   "html [file]",
		Short: "Render Markdown as HTML",
		Long: `Render one Markdown document as HTML.

With no file, or with "-", the document is read from stdin. The HTML is
written to stdout, or atomically to the file given with --output.

Examples:
  gomdparse html README.md
  gomdparse html --heading-ids --anchor-prefix doc- guide.md -o guide.html
  gomdparse html --watch notes.md -o notes.html`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHTML(cmd, args, flags)
		},
	}

	addParserFlags(cmd, &flags.parser)
	cmd.Flags().StringVar(&flags.anchorPrefix, "anchor-prefix", "", "prefix for footnote anchors and heading ids")
	cmd.Flags().BoolVar(&flags.headingIDs, "heading-ids", false, "add id attributes to headings")
	cmd.Flags().BoolVar(&flags.watch, "watch", false, "re-render whenever the file changes")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "write HTML to this file instead of stdout")

	return cmd
}

func runHTML(cmd *cobra.Command, args []string, flags *htmlFlags) error {
	if flags.watch && (len(args) == 0 || args[0] == fsutil.StdinPath) {
		return fmt.Errorf("%w: --watch needs a file argument", ErrInvalidUsage)
	}

	cliCfg := &config.Config{
		AnchorPrefix: flags.anchorPrefix,
		HeadingIDs:   flags.headingIDs,
	}
	flags.parser.apply(cliCfg)

	cfg, err := loadConfig(cmd, cliCfg)
	if err != nil {
		return err
	}
	pcfg, err := cfg.ParserConfig()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}

	render := func(ctx context.Context) error {
		path, content, err := readSingleInput(cmd, args)
		if err != nil {
			return err
		}
		doc, err := parser.Parse(pcfg, string(content))
		if err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}

		if flags.output == "" {
			if err := html.RenderTo(cmd.OutOrStdout(), doc, cfg.HTMLOptions()...); err != nil {
				return fmt.Errorf("%w: write HTML: %w", ErrIO, err)
			}
			return nil
		}

		var buf bytes.Buffer
		if err := html.RenderTo(&buf, doc, cfg.HTMLOptions()...); err != nil {
			return fmt.Errorf("render HTML: %w", err)
		}
		if err := fsutil.WriteAtomic(ctx, flags.output, buf.Bytes(), fsutil.DefaultFileMode); err != nil {
			return fmt.Errorf("%w: %w", ErrIO, err)
		}
		logging.FromContext(ctx).Debug("wrote HTML", logging.FieldPath, path, logging.FieldOutput, flags.output)
		return nil
	}

	ctx := cmd.Context()
	err = render(ctx)
	if !flags.watch {
		return err
	}
	if err != nil {
		logging.FromContext(ctx).Error("render failed", logging.FieldError, err)
	}

	return watchFile(ctx, args[0], watchDebounce, func(ctx context.Context) {
		if err := render(ctx); err != nil {
			logging.FromContext(ctx).Error("render failed", logging.FieldError, err)
		}
	})
}
