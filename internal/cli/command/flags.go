package command

import (
	"fmt"
	"unicode/utf8"

	"github.com/urfave/cli/v2"

	"github.com/sleuren/sleurencli/internal/cli/output"
	"github.com/sleuren/sleurencli/internal/core/resource"
)

// selectionFlags returns the record selection flags.
func selectionFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "id", Usage: "exact id"},
		&cli.StringFlag{Name: "name", Usage: "exact name"},
		&cli.StringFlag{Name: "url", Usage: "exact url"},
		&cli.StringFlag{Name: "location", Usage: "exact location"},
		&cli.StringFlag{Name: "pattern", Usage: "substring of url or name"},
		&cli.StringSliceFlag{Name: "tag", Usage: "match any of these tags"},
		&cli.BoolFlag{Name: "issues", Usage: "only records with issues"},
	}
}

// orderFlags returns the sort and limit flags.
func orderFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "sort", Usage: "sort by this field"},
		&cli.BoolFlag{Name: "reverse", Usage: "reverse the sort order"},
		&cli.IntFlag{Name: "limit", Usage: "show at most this many records (0 = all)"},
	}
}

// outputFlags returns the output format flags for the given formats.
func outputFlags(formats ...output.Format) []cli.Flag {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   fmt.Sprintf("output format %v", formats),
			Value:   string(output.FormatTable),
		},
	}
	for _, f := range formats {
		flags = append(flags, &cli.BoolFlag{
			Name:  string(f),
			Usage: fmt.Sprintf("print data in %s format", f),
		})
	}
	return append(flags,
		&cli.StringSliceFlag{Name: "columns", Usage: "show (name) or hide (0name) columns"},
		&cli.StringFlag{Name: "delimiter", Usage: "csv field separator", Value: string(output.DefaultDelimiter)},
		&cli.BoolFlag{Name: "no-headers", Usage: "omit the header row of csv and table output"},
	)
}

func listFlags() []cli.Flag {
	flags := selectionFlags()
	flags = append(flags, orderFlags()...)
	return append(flags, outputFlags(output.FormatJSON, output.FormatCSV, output.FormatTable)...)
}

// criteria reads the selection flags.
func criteria(c *cli.Context) resource.Criteria {
	return resource.Criteria{
		ID:         c.String("id"),
		Name:       c.String("name"),
		URL:        c.String("url"),
		Location:   c.String("location"),
		Pattern:    c.String("pattern"),
		Tags:       c.StringSlice("tag"),
		IssuesOnly: c.Bool("issues"),
	}
}

// query reads selection, sort and limit flags.
func query(c *cli.Context) (resource.Query, error) {
	if c.Int("limit") < 0 {
		return resource.Query{}, fmt.Errorf("--limit must not be negative")
	}
	return resource.Query{
		Criteria: criteria(c),
		Sort:     resource.SortSpec{Field: c.String("sort"), Reverse: c.Bool("reverse")},
		Limit:    c.Int("limit"),
	}, nil
}

// renderOptions reads the output flags. A shorthand flag wins over
// --output. hideIDs comes from the session config.
func renderOptions(c *cli.Context, hideIDs bool, allowed ...output.Format) (resource.RenderOptions, error) {
	name := c.String("output")
	for _, f := range allowed {
		if c.Bool(string(f)) {
			name = string(f)
			break
		}
	}

	format, err := output.ParseFormat(name, allowed...)
	if err != nil {
		return resource.RenderOptions{}, err
	}

	delim := c.String("delimiter")
	if utf8.RuneCountInString(delim) != 1 {
		return resource.RenderOptions{}, fmt.Errorf("--delimiter must be a single character, got %q", delim)
	}
	r, _ := utf8.DecodeRuneInString(delim)

	return resource.RenderOptions{
		Format:    format,
		Delimiter: r,
		Columns:   c.StringSlice("columns"),
		HideIDs:   hideIDs,
		NoHeaders: c.Bool("no-headers"),
	}, nil
}
