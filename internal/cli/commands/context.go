package commands

import (
	"context"

	"github.com/cladeworks/phylopaint/internal/cli/config"
	"github.com/cladeworks/phylopaint/internal/cli/output"
	"github.com/spf13/cobra"
)

type configKey struct{}
type rendererKey struct{}

// WithConfig stores the loaded config in a context. The root command
// calls this before any subcommand runs.
func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// WithRenderer stores the output renderer in a context.
func WithRenderer(ctx context.Context, r *output.Renderer) context.Context {
	return context.WithValue(ctx, rendererKey{}, r)
}

// CommandContext bundles what every command needs.
type CommandContext struct {
	Config   *config.Config
	Renderer *output.Renderer
}

// NewCommandContext extracts config and renderer from the command's
// context, falling back to defaults so commands stay testable in
// isolation.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmdCtx := &CommandContext{}
	if cfg, ok := ctx.Value(configKey{}).(*config.Config); ok {
		cmdCtx.Config = cfg
	} else {
		cmdCtx.Config = &config.Config{
			Cutoff:       config.DefaultCutoff,
			Width:        config.DefaultWidth,
			RowHeight:    config.DefaultRowHeight,
			FontSize:     config.DefaultFontSize,
			ImageFormat:  config.DefaultImageFormat,
			OutputFormat: config.DefaultOutput,
		}
	}
	if r, ok := ctx.Value(rendererKey{}).(*output.Renderer); ok {
		cmdCtx.Renderer = r
	} else {
		cmdCtx.Renderer = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cmdCtx.Config.OutputFormat))
	}
	return cmdCtx
}
