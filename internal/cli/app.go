// Package cli implements the recipes command line client.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/pageza/recipe-analyzer/backend/internal/mealdb"
	"github.com/pageza/recipe-analyzer/backend/internal/service"
)

const (
	name           = "recipes"
	defaultTimeout = 15 * time.Second
)

var errMissingID = errors.New("a meal id is required")

// backend holds the services a command runs against.
type backend struct {
	analysis service.IAnalysisService
	browse   service.IBrowseService
	format   Format
}

// NewApp builds the root command. Output goes to out.
func NewApp(version string, out io.Writer) *cli.Command {
	return &cli.Command{
		Name:    name,
		Usage:   "Browse and analyze recipes from TheMealDB",
		Version: version,
		Writer:  out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "base-url",
				Value:   mealdb.DefaultBaseURL,
				Usage:   "Base URL of the recipe API",
				Sources: cli.EnvVars("MEALDB_BASE_URL"),
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Value: defaultTimeout,
				Usage: "Per-request timeout for the recipe API",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"o"},
				Value:   string(FormatJSON),
				Usage:   "Output format (json, yaml)",
			},
		},
		Commands: []*cli.Command{
			analyzeCmd(out),
			mealCmd(out),
			listCmd(out),
			categoriesCmd(out),
			areasCmd(out),
			idsCmd(out),
		},
	}
}

func newBackend(cmd *cli.Command) (*backend, error) {
	format, err := ParseFormat(cmd.String("format"))
	if err != nil {
		return nil, err
	}
	timeout := cmd.Duration("timeout")
	if timeout <= 0 {
		return nil, fmt.Errorf("timeout must be positive, got %s", timeout)
	}
	client := mealdb.New(mealdb.NewHTTPFetcher(timeout), cmd.String("base-url"))
	return &backend{
		analysis: service.NewAnalysisService(client),
		browse:   service.NewBrowseService(client, nil),
		format:   format,
	}, nil
}

// action adapts a backend-aware function to a cli action.
func action(fn func(ctx context.Context, cmd *cli.Command, b *backend) error) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		b, err := newBackend(cmd)
		if err != nil {
			return err
		}
		return fn(ctx, cmd, b)
	}
}
