package cli

import (
	"context"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/pageza/recipe-analyzer/backend/internal/service"
)

func analyzeCmd(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "analyze",
		Usage:     "Classify a recipe's difficulty from its ingredient count",
		ArgsUsage: "<meal-id>",
		Action: action(func(ctx context.Context, cmd *cli.Command, b *backend) error {
			id := cmd.Args().First()
			if id == "" {
				return errMissingID
			}
			analysis, err := b.analysis.Analyze(ctx, id)
			if err != nil {
				return err
			}
			return write(out, b.format, analysis)
		}),
	}
}

func mealCmd(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "meal",
		Usage:     "Show a recipe with its ingredient list",
		ArgsUsage: "<meal-id>",
		Action: action(func(ctx context.Context, cmd *cli.Command, b *backend) error {
			id := cmd.Args().First()
			if id == "" {
				return errMissingID
			}
			detail, err := b.browse.Detail(ctx, id)
			if err != nil {
				return err
			}
			return write(out, b.format, detail)
		}),
	}
}

func listCmd(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List recipes by search text, category, area or first letter",
		Description: `Filters are applied in order of precedence: search, category, area, letter.
Without any filter the recipes starting with "a" are listed.`,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "letter", Aliases: []string{"l"}, Usage: "First letter of the recipe name"},
			&cli.StringFlag{Name: "category", Aliases: []string{"c"}, Usage: "Category name (e.g. Seafood)"},
			&cli.StringFlag{Name: "area", Aliases: []string{"a"}, Usage: "Area name (e.g. Italian)"},
			&cli.StringFlag{Name: "search", Aliases: []string{"s"}, Usage: "Free-text name search"},
		},
		Action: action(func(ctx context.Context, cmd *cli.Command, b *backend) error {
			page, err := b.browse.Home(ctx, service.BrowseQuery{
				Letter:   cmd.String("letter"),
				Category: cmd.String("category"),
				Area:     cmd.String("area"),
				Search:   cmd.String("search"),
			})
			if err != nil {
				return err
			}
			return write(out, b.format, page)
		}),
	}
}

func categoriesCmd(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "categories",
		Usage: "List recipe categories",
		Action: action(func(ctx context.Context, _ *cli.Command, b *backend) error {
			categories, err := b.browse.Categories(ctx)
			if err != nil {
				return err
			}
			return write(out, b.format, map[string][]string{"categories": categories})
		}),
	}
}

func areasCmd(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "areas",
		Usage: "List cuisine areas",
		Action: action(func(ctx context.Context, _ *cli.Command, b *backend) error {
			areas, err := b.browse.Areas(ctx)
			if err != nil {
				return err
			}
			return write(out, b.format, map[string][]string{"areas": areas})
		}),
	}
}

func idsCmd(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "ids",
		Usage: "Print the ids of recipes starting with a letter, for pre-rendering detail pages",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "letter", Aliases: []string{"l"}, Value: service.DefaultLetter, Usage: "First letter of the recipe name"},
		},
		Action: action(func(ctx context.Context, cmd *cli.Command, b *backend) error {
			ids, err := b.browse.StaticIDs(ctx, cmd.String("letter"))
			if err != nil {
				return err
			}
			return write(out, b.format, map[string][]string{"ids": ids})
		}),
	}
}
