package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/samirrijal/mapposter/internal/app"
	"github.com/samirrijal/mapposter/internal/core/domain"
	"github.com/samirrijal/mapposter/internal/pkg/config"
	"github.com/samirrijal/mapposter/internal/pkg/logging"
)

type example struct {
	description string
	request     domain.PosterRequest
}

var examples = []example{
	{
		description: "San Francisco - Feature Based Theme",
		request:     domain.PosterRequest{City: "San Francisco", Country: "USA", Theme: "feature_based", Distance: 10000, Format: domain.FormatSVG, DPI: domain.DefaultDPI},
	},
	{
		description: "Barcelona - Noir Theme",
		request:     domain.PosterRequest{City: "Barcelona", Country: "Spain", Theme: "noir", Distance: 8000, Format: domain.FormatSVG, DPI: domain.DefaultDPI},
	},
	{
		description: "Venice - Blueprint Theme",
		request:     domain.PosterRequest{City: "Venice", Country: "Italy", Theme: "blueprint", Distance: 4000, Format: domain.FormatSVG, DPI: domain.DefaultDPI},
	},
}

var separator = strings.Repeat("=", 50)

// run shows the example menu, reads one choice and generates the chosen
// posters in-process. Failing examples are reported and do not stop the
// remaining ones.
func run(ctx context.Context, _ []string, stdin io.Reader, stdout, stderr io.Writer) int {
	_ = godotenv.Load()

	cfg, err := config.Load("mapposter-examples", "")
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	logger := logging.New(stderr, cfg.Log.Level, cfg.Log.Format)

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	fmt.Fprintln(stdout, "Map Poster Generator - Examples")
	fmt.Fprintln(stdout, separator)
	fmt.Fprint(stdout, "\nChoose an example to run:\n\n")
	for i, ex := range examples {
		fmt.Fprintf(stdout, "%d. %s\n", i+1, ex.description)
	}
	fmt.Fprintln(stdout, "0. Run all examples")
	fmt.Fprintln(stdout, "\nOr run manually:")
	fmt.Fprintln(stdout, `mapposter -c "Your City" -C "Your Country" -t feature_based -d 10000`)
	fmt.Fprintf(stdout, "\nEnter choice (0-%d): ", len(examples))

	var choice string
	scanner := bufio.NewScanner(stdin)
	if scanner.Scan() {
		choice = strings.TrimSpace(scanner.Text())
	}

	selected, ok := selectExamples(choice)
	if !ok {
		fmt.Fprintln(stdout, "Invalid choice. Exiting.")
		return 0
	}

	a := app.New(ctx, cfg, logger)
	defer a.Close(context.WithoutCancel(ctx))

	failed := 0
	for _, ex := range selected {
		if len(selected) > 1 {
			fmt.Fprintf(stdout, "\n%s\nRunning: %s\n%s\n", separator, ex.description, separator)
		} else {
			fmt.Fprintf(stdout, "\nRunning: %s\n", ex.description)
		}
		poster, err := a.Posters.Generate(ctx, ex.request)
		if err != nil {
			failed++
			fmt.Fprintf(stderr, "Error: %+v\n", err)
			continue
		}
		fmt.Fprintf(stdout, "\n✓ %s saved: %s\n", strings.ToUpper(string(poster.Format)), poster.Path)
	}
	if failed > 0 {
		return 1
	}
	return 0
}

// selectExamples maps a menu choice to examples. "0" selects all.
func selectExamples(choice string) ([]example, bool) {
	n, err := strconv.Atoi(choice)
	if err != nil || n < 0 || n > len(examples) {
		return nil, false
	}
	if n == 0 {
		return examples, true
	}
	return examples[n-1 : n], true
}
