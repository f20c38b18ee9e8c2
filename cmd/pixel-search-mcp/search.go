package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ironsheep/pixel-search-mcp/internal/imaging"
	"github.com/ironsheep/pixel-search-mcp/internal/pixelsearch"
)

// errNotFound makes the search command exit non-zero when nothing matched.
var errNotFound = errors.New("no matching pixel")

type searchOutput struct {
	Status    int    `json:"status"`
	Found     bool   `json:"found"`
	X         int    `json:"x"`
	Y         int    `json:"y"`
	Direction string `json:"direction"`
}

func newSearchCmd() *cobra.Command {
	var (
		colorArg  string
		direction int
		tolerance int
		regionArg string
		alias     bool
	)

	cmd := &cobra.Command{
		Use:   "search <image>",
		Short: "Find the first pixel of a color in an image file",
		Long: `Scans an image for the first pixel matching --color and prints the
result as JSON. Exits non-zero when no pixel matches or the input is invalid.

Directions: 1 rows from top-left, 2 rows from bottom-left, 3 rows from
bottom-right, 4 rows from top-right; 5-8 the same corners scanning columns.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := imaging.ParseColor(colorArg)
			if err != nil {
				return err
			}

			var dir pixelsearch.Direction
			if alias {
				dir = pixelsearch.AliasDirection(direction)
			} else if dir, err = pixelsearch.ParseDirection(direction); err != nil {
				return err
			}

			region, err := parseRegion(regionArg)
			if err != nil {
				return err
			}

			buf, err := imaging.NewImageCache().LoadBuffer(args[0])
			if err != nil {
				return err
			}

			res, err := pixelsearch.SearchSource(buf, target, pixelsearch.Options{
				Direction: dir,
				Tolerance: tolerance,
				Region:    region,
			})
			out := searchOutput{
				Status:    pixelsearch.StatusOf(res, err),
				Found:     res.Found,
				X:         res.X,
				Y:         res.Y,
				Direction: dir.String(),
			}
			slog.Debug("search finished", "path", args[0], "status", out.Status)

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if encErr := enc.Encode(out); encErr != nil {
				return encErr
			}
			if err != nil {
				return err
			}
			if !res.Found {
				return errNotFound
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&colorArg, "color", "", "Target color: #RRGGBB, #RGB, #AARRGGBB, 0xRRGGBB or decimal (required)")
	cmd.Flags().IntVar(&direction, "direction", 1, "Traversal order 1-8")
	cmd.Flags().IntVar(&tolerance, "tolerance", 0, "Per-channel tolerance 0-255")
	cmd.Flags().StringVar(&regionArg, "region", "", "Limit the scan to x1,y1,x2,y2 (x2,y2 exclusive)")
	cmd.Flags().BoolVar(&alias, "alias-direction", false, "Map out-of-range directions onto 1-8 instead of rejecting them")
	_ = cmd.MarkFlagRequired("color")

	return cmd
}

// parseRegion parses "x1,y1,x2,y2". An empty string means no region.
func parseRegion(s string) (*image.Rectangle, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return nil, fmt.Errorf("invalid region %q: want x1,y1,x2,y2", s)
	}
	var v [4]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid region %q: %w", s, err)
		}
		v[i] = n
	}
	r := image.Rect(v[0], v[1], v[2], v[3])
	return &r, nil
}
