package main

import (
	"io"
	"os"

	"github.com/npillmayer/domrender"
	"github.com/npillmayer/domrender/dom/domdbg"
	"github.com/npillmayer/domrender/dom/style"
	"github.com/npillmayer/domrender/frame"
	"github.com/npillmayer/domrender/raster"
	"github.com/npillmayer/schuko/tracing"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newRootCmd creates the command together with its own configuration
// registry.
func newRootCmd() *cobra.Command {
	v := viper.New()
	setDefaults(v)
	var cfgFile string
	var cssFiles []string
	cmd := &cobra.Command{
		Use:           "domrender [flags] FILE.html",
		Short:         "Render an HTML document into a display list",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v, cfgFile)
			if err != nil {
				return err
			}
			logger := newLogger(cfg.Log.Level, zapcore.AddSync(cmd.ErrOrStderr()))
			defer logger.Sync() //nolint:errcheck
			tracing.SetTraceSelector(newZapSelector(logger, cfg.Log.Level))
			return run(cmd, cfg, logger, args[0], cssFiles)
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&cfgFile, "config", "c", "", "config file (default is ./domrender.yaml)")
	flags.StringArrayVar(&cssFiles, "css", nil, "additional stylesheet (repeatable)")
	flags.Float64("width", 800, "viewport width in pixels")
	flags.Float64("height", 600, "viewport height in pixels")
	flags.String("format", "text", "output format: text|json")
	flags.String("png", "", "paint the display list into a PNG file")
	flags.String("dump", "", "dump intermediate tree to stderr: styles|boxes|dot")
	flags.String("log-level", "warn", "log level")
	for key, flag := range map[string]string{
		"viewport.width":  "width",
		"viewport.height": "height",
		"output.format":   "format",
		"output.png":      "png",
		"output.dump":     "dump",
		"log.level":       "log-level",
	} {
		_ = v.BindPFlag(key, flags.Lookup(flag))
	}
	return cmd
}

func run(cmd *cobra.Command, cfg *Config, logger *zap.Logger, htmlFile string, cssFiles []string) error {
	html, err := os.ReadFile(htmlFile)
	if err != nil {
		return errors.Wrap(err, "cannot read HTML document")
	}
	var sheets []string
	for _, f := range cssFiles {
		css, err := os.ReadFile(f)
		if err != nil {
			return errors.Wrapf(err, "cannot read stylesheet %s", f)
		}
		sheets = append(sheets, string(css))
	}
	vp := frame.Viewport{Width: cfg.Viewport.Width, Height: cfg.Viewport.Height}
	logger.Info("rendering", zap.String("file", htmlFile), zap.Int("stylesheets", len(sheets)),
		zap.Float64("width", vp.Width), zap.Float64("height", vp.Height))
	result, err := domrender.RenderHTML(cmd.Context(), string(html), sheets, vp)
	if err != nil {
		return errors.Wrapf(err, "cannot render %s", htmlFile)
	}
	logger.Debug("rendered", zap.Int("boxes", result.Layout.Len()), zap.Int("commands", len(result.Display)))
	if err := dump(cmd.ErrOrStderr(), result, cfg.Output.Dump); err != nil {
		return err
	}
	if err := writeDisplayList(cmd.OutOrStdout(), result.Display, cfg.Output.Format); err != nil {
		return err
	}
	if cfg.Output.PNG != "" {
		w, h := int(vp.Width+0.5), int(vp.Height+0.5)
		if err := raster.SavePNG(result.Display, w, h, cfg.Output.PNG); err != nil {
			return errors.Wrap(err, "cannot write PNG")
		}
		logger.Info("wrote image", zap.String("path", cfg.Output.PNG))
	}
	return nil
}

// dump writes an intermediate tree of a rendering result to w.
func dump(w io.Writer, result domrender.Result, which string) error {
	groups := []style.Group{style.PGDisplay, style.PGColor}
	var err error
	switch which {
	case "styles":
		_, err = io.WriteString(w, domdbg.StyledTreeString(result.Styles, groups...))
	case "boxes":
		_, err = io.WriteString(w, domdbg.BoxTreeString(result.Layout))
	case "dot":
		err = domdbg.ToGraphViz(result.Styles, w, groups)
	}
	return errors.Wrapf(err, "cannot dump %s", which)
}
