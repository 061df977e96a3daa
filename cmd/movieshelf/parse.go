package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/vmunix/movieshelf/pkg/naming"
)

var (
	parseSeason  bool
	parseEpisode bool
	parseJSON    bool
)

var parseCmd = &cobra.Command{
	Use:   "parse <name>",
	Short: "Parse a file or directory name (local, no database needed)",
	Long: `Parse a media file name, or with --season a season directory name,
and print the fields a run would derive from it.`,
	Example: `  movieshelf parse "Inception (NL) (2010) HD.mp4"
  movieshelf parse --season "Friends 1 (2004) 24 EPISODES"
  movieshelf parse --episode "S01E01 - Pilot.mp4" --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().BoolVar(&parseSeason, "season", false, "Parse a season directory name")
	parseCmd.Flags().BoolVar(&parseEpisode, "episode", false, "Parse an episode file name")
	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "Output as JSON")
	parseCmd.MarkFlagsMutuallyExclusive("season", "episode")
	rootCmd.AddCommand(parseCmd)
}

// ParsedName is the JSON form of a parsed name.
type ParsedName struct {
	Kind         string `json:"kind"`
	Input        string `json:"input"`
	Title        string `json:"title"`
	CleanTitle   string `json:"clean_title,omitempty"`
	Year         int    `json:"year,omitempty"`
	Edition      string `json:"edition,omitempty"`
	Language     string `json:"language,omitempty"`
	EpisodeCount int    `json:"episode_count,omitempty"`
	SeasonNumber int    `json:"season_number,omitempty"`
	Collection   string `json:"collection,omitempty"`
}

func parseName(input string, season, episode bool) ParsedName {
	switch {
	case season:
		s := naming.ParseSeason(input)
		return ParsedName{
			Kind:         "season",
			Input:        input,
			Title:        s.Title,
			CleanTitle:   naming.CleanTitle(s.Title),
			Year:         s.Year,
			Edition:      s.Edition.String(),
			Language:     s.Language,
			EpisodeCount: s.EpisodeCount,
			SeasonNumber: s.SeasonNumber,
			Collection:   s.Collection,
		}
	case episode:
		return ParsedName{Kind: "episode", Input: input, Title: naming.ParseEpisode(input).Title}
	default:
		m := naming.ParseMedia(input)
		return ParsedName{
			Kind:       "media",
			Input:      input,
			Title:      m.Title,
			CleanTitle: naming.CleanTitle(m.Title),
			Year:       m.Year,
			Edition:    m.Edition.String(),
			Language:   m.Language,
		}
	}
}

func runParse(cmd *cobra.Command, args []string) error {
	parsed := parseName(strings.Join(args, " "), parseSeason, parseEpisode)
	if parseJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(parsed)
	}
	printParsed(cmd.OutOrStdout(), parsed)
	return nil
}

func printParsed(w io.Writer, p ParsedName) {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendRow(table.Row{"Kind", p.Kind})
	tw.AppendRow(table.Row{"Title", p.Title})
	if p.Kind != "episode" {
		tw.AppendRow(table.Row{"Clean title", p.CleanTitle})
		tw.AppendRow(table.Row{"Year", p.Year})
		tw.AppendRow(table.Row{"Edition", p.Edition})
		tw.AppendRow(table.Row{"Language", languageLabel(p.Language)})
	}
	if p.Kind == "season" {
		tw.AppendRow(table.Row{"Episodes", p.EpisodeCount})
		tw.AppendRow(table.Row{"Season", p.SeasonNumber})
		tw.AppendRow(table.Row{"Collection", p.Collection})
	}
	fmt.Fprintln(w, tw.Render())
}
