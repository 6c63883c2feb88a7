package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/samirrijal/mapposter/internal/app"
	"github.com/samirrijal/mapposter/internal/core/domain"
	"github.com/samirrijal/mapposter/internal/pkg/config"
	"github.com/samirrijal/mapposter/internal/pkg/logging"
)

const serviceName = "mapposter"

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// run is the testable body of main. It returns the process exit code.
func run(ctx context.Context, args []string, getenv func(string) string, stdout, stderr io.Writer) int {
	flags := pflag.NewFlagSet(args[0], pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintf(stderr, "Generate map posters for any city.\n\nUsage:\n  %s --city CITY [flags]\n\nFlags:\n", args[0])
		flags.PrintDefaults()
		fmt.Fprintf(stderr, "\nExample:\n  %s -c \"Venice\" -C \"Italy\" -t blueprint -d 4000\n", args[0])
	}

	city := flags.StringP("city", "c", "", "City name")
	country := flags.StringP("country", "C", "", "Country name (optional)")
	theme := flags.StringP("theme", "t", domain.DefaultThemeName, "Theme name")
	distance := flags.IntP("distance", "d", domain.DefaultDistance, "Radius in meters")
	format := flags.StringP("format", "f", string(domain.FormatSVG), "Output format: svg (for CAD import) or png")
	dpi := flags.Int("dpi", domain.DefaultDPI, "DPI for PNG output")
	listThemes := flags.Bool("list-themes", false, "List available themes")
	configFile := flags.String("config", "", "Path to a config file")

	if err := flags.Parse(args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	envFile := getenv("MAPPOSTER_ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(stderr, "Error: load %s: %v\n", envFile, err)
		return exitError
	}

	cfg, err := config.Load(serviceName, *configFile)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}
	logger := logging.Setup(stderr, cfg.Log.Level, cfg.Log.Format)

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	a := app.New(ctx, cfg, logger)
	defer a.Close(context.WithoutCancel(ctx))

	if *listThemes {
		if err := printThemes(stdout, a); err != nil {
			fmt.Fprintf(stderr, "Error: %+v\n", err)
			return exitError
		}
		return exitOK
	}

	if strings.TrimSpace(*city) == "" {
		fmt.Fprintln(stderr, "Error: --city is required")
		flags.Usage()
		return exitUsage
	}
	outputFormat, err := domain.ParseFormat(*format)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}

	req := domain.PosterRequest{
		City:     *city,
		Country:  *country,
		Theme:    *theme,
		Distance: float64(*distance),
		Format:   outputFormat,
		DPI:      *dpi,
	}
	return generate(ctx, a, req, logger, stdout, stderr)
}

func generate(ctx context.Context, a *app.App, req domain.PosterRequest, logger *slog.Logger, stdout, stderr io.Writer) int {
	poster, err := a.Posters.Generate(ctx, req)
	if err != nil {
		logger.Error("poster generation failed", "city", req.City, "error", err)
		fmt.Fprintf(stderr, "Error: %+v\n", err)
		return exitError
	}

	switch poster.Format {
	case domain.FormatSVG:
		fmt.Fprintf(stdout, "\n✓ SVG saved: %s\n", poster.Path)
		fmt.Fprintln(stdout, "  Import this file into Fusion 360 as a sketch to extrude for 3D printing")
	default:
		fmt.Fprintf(stdout, "\n✓ PNG saved: %s\n", poster.Path)
	}
	return exitOK
}

func printThemes(w io.Writer, a *app.App) error {
	themes, err := a.Themes.List()
	if err != nil {
		return err
	}
	if len(themes) == 0 {
		fmt.Fprintln(w, "No themes found. Using default theme.")
		return nil
	}
	fmt.Fprintln(w, "\nAvailable themes:")
	for _, t := range themes {
		fmt.Fprintf(w, "  %-20s - %s\n", t.ID, t.Display)
		if t.Description != "" {
			fmt.Fprintf(w, "    %s\n", t.Description)
		}
	}
	return nil
}
