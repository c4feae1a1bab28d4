package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdparse/internal/configloader"
	"github.com/yaklabco/gomdparse/internal/logging"
	"github.com/yaklabco/gomdparse/pkg/config"
	"github.com/yaklabco/gomdparse/pkg/fsutil"
)

// parserFlags are the flags shared by every command that parses Markdown.
type parserFlags struct {
	blocks         map[string]string
	inlines        map[string]string
	allowNoSpace   bool
	detectLanguage bool
}

func addParserFlags(cmd *cobra.Command, flags *parserFlags) {
	cmd.Flags().StringToStringVar(&flags.blocks, "block", nil,
		"block rule modes, e.g. --block table=ignore,html=skip")
	cmd.Flags().StringToStringVar(&flags.inlines, "inline", nil,
		"inline rule modes, e.g. --inline emphasis=ignore")
	cmd.Flags().BoolVar(&flags.allowNoSpace, "allow-no-space-in-headings", false,
		"accept ATX headings without a space after the hashes")
	cmd.Flags().BoolVar(&flags.detectLanguage, "detect-language", false,
		"fill missing fenced code info strings by detecting the language")
}

// apply copies the parser flags into a CLI configuration layer.
// Rule aliases and groups are resolved by the loader.
func (f *parserFlags) apply(cfg *config.Config) {
	cfg.Blocks = f.blocks
	cfg.Inlines = f.inlines
	cfg.AllowNoSpaceInHeadings = f.allowNoSpace
	cfg.DetectLanguage = f.detectLanguage
}

// loadConfig resolves the effective configuration with cliCfg as the
// highest-precedence layer.
func loadConfig(cmd *cobra.Command, cliCfg *config.Config) (*config.Config, error) {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)

	configPath, err := cmd.Flags().GetString(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("%w: get working directory: %w", ErrIO, err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration", logging.FieldFiles, loadResult.LoadedFrom)
	}

	return loadResult.Config, nil
}

// colorMode returns the --color flag value.
func colorMode(cmd *cobra.Command) string {
	mode, err := cmd.Flags().GetString(flagColor)
	if err != nil {
		return "auto"
	}
	return mode
}

// inputPaths returns the paths to process, reading stdin when none are given.
func inputPaths(args []string) []string {
	if len(args) == 0 {
		return []string{fsutil.StdinPath}
	}
	return args
}

// readSingleInput reads the one file a single-document command works on.
func readSingleInput(cmd *cobra.Command, args []string) (string, []byte, error) {
	if len(args) > 1 {
		return "", nil, fmt.Errorf("%w: expected at most one file, got %d", ErrInvalidUsage, len(args))
	}
	path := inputPaths(args)[0]

	content, _, err := fsutil.ReadInput(cmd.Context(), path, cmd.InOrStdin())
	if err != nil {
		return "", nil, fmt.Errorf("read %s: %w", path, err)
	}
	return path, content, nil
}
