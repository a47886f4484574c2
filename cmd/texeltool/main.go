// Command texeltool inspects TGA images and converts them to PNG.
package main

import (
	"fmt"
	"image/png"
	"os"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"github.com/Faultbox/texel/internal/config"
	"github.com/Faultbox/texel/internal/logger"
	"github.com/Faultbox/texel/pkg/loader"
	"github.com/Faultbox/texel/pkg/tga"
)

var cli struct {
	Config string `help:"Path to config file." type:"path"`
	Debug  bool   `help:"Enable debug logging."`

	Info    InfoCmd    `cmd:"" help:"Print the parsed TGA header."`
	Sniff   SniffCmd   `cmd:"" help:"Report which recognition checks accept a file."`
	Convert ConvertCmd `cmd:"" help:"Decode an image and write it as PNG."`
}

type appContext struct {
	cfg      *config.Config
	registry *loader.Registry
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("texeltool"),
		kong.Description("Inspect TGA images and convert them to PNG."))

	cfg, err := config.Load(cli.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	level := cfg.Logging.Level
	if cli.Debug {
		level = "debug"
	}
	if err := logger.Init(level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	registry := loader.NewRegistry(loader.WithLogger(logger.Log))
	registry.Register(tga.NewDecoder(
		tga.WithLogger(logger.Log.Named("tga")),
		tga.WithMaxDimension(cfg.Decode.MaxDimension),
	))

	err = ctx.Run(&appContext{cfg: cfg, registry: registry})
	ctx.FatalIfErrorf(err)
}

// InfoCmd prints the parsed header fields of a TGA file.
type InfoCmd struct {
	File string `arg:"" help:"TGA file to inspect." type:"existingfile"`
}

// Run implements the info command.
func (c *InfoCmd) Run(app *appContext) error {
	f, err := os.Open(c.File)
	if err != nil {
		return err
	}
	defer f.Close()

	header, err := tga.ReadHeader(f)
	if err != nil {
		return err
	}

	fmt.Printf("File:              %s\n", c.File)
	fmt.Printf("Image type:        %d\n", header.ImageType)
	fmt.Printf("Dimensions:        %dx%d\n", header.Width, header.Height)
	fmt.Printf("Pixel depth:       %d bits\n", header.PixelDepth)
	fmt.Printf("Row order:         %s\n", rowOrder(&header))
	fmt.Printf("ID field length:   %d\n", header.IDLength)
	fmt.Printf("Color map:         %s\n", colorMap(&header))
	fmt.Printf("TGA 2.0 footer:    %t\n", tga.MatchesSignature(f))
	return nil
}

func rowOrder(h *tga.Header) string {
	if h.BottomUp() {
		return "bottom-up"
	}
	return "top-down"
}

func colorMap(h *tga.Header) string {
	if h.ColorMapType == 0 {
		return "none"
	}
	return fmt.Sprintf("%d entries, %d bits each (origin %d)",
		h.ColorMapLength, h.ColorMapEntrySize, h.ColorMapOrigin)
}

// SniffCmd reports the format-recognition results for a file.
type SniffCmd struct {
	File string `arg:"" help:"File to check." type:"existingfile"`
}

// Run implements the sniff command.
func (c *SniffCmd) Run(app *appContext) error {
	f, err := os.Open(c.File)
	if err != nil {
		return err
	}
	defer f.Close()

	fmt.Printf("Extension match:   %t\n", tga.MatchesExtension(c.File))
	fmt.Printf("Footer signature:  %t\n", tga.MatchesSignature(f))
	return nil
}

// ConvertCmd decodes an image and writes it out as PNG.
type ConvertCmd struct {
	File string `arg:"" help:"Image file to decode." type:"existingfile"`
	Out  string `short:"o" required:"" help:"Output PNG path."`
}

// Run implements the convert command.
func (c *ConvertCmd) Run(app *appContext) error {
	f, err := os.Open(c.File)
	if err != nil {
		return err
	}
	defer f.Close()

	bmp, err := app.registry.Decode(c.File, f)
	if err != nil {
		return err
	}
	logger.Log.Info("decoded image",
		zap.String("file", c.File),
		zap.Int("width", bmp.Width),
		zap.Int("height", bmp.Height),
		zap.String("format", bmp.Format.String()))

	out, err := os.Create(c.Out)
	if err != nil {
		return err
	}
	defer out.Close()

	return png.Encode(out, bmp.ToRGBA())
}
