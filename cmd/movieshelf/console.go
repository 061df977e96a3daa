package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/vmunix/movieshelf/internal/ingest"
	"github.com/vmunix/movieshelf/internal/library"
	"github.com/vmunix/movieshelf/internal/persist"
)

// console asks questions on a terminal and reports what a run did.
type console struct {
	in    *bufio.Reader
	out   io.Writer
	root  string // directory being ingested, for file sizes
	color bool
}

var (
	_ ingest.Prompter = (*console)(nil)
	_ ingest.Reporter = (*console)(nil)
)

func newConsole(in io.Reader, out io.Writer, root string) *console {
	return &console{
		in:    bufio.NewReader(in),
		out:   out,
		root:  root,
		color: shouldColorize(out),
	}
}

func shouldColorize(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func (c *console) paint(s string, colors ...text.Color) string {
	if !c.color {
		return s
	}
	return text.Colors(colors).Sprint(s)
}

func (c *console) println(a ...any) { fmt.Fprintln(c.out, a...) }

func (c *console) printf(format string, a ...any) { fmt.Fprintf(c.out, format, a...) }

// ask prints question and reads one trimmed, lower-cased line.
func (c *console) ask(ctx context.Context, question string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	c.printf("%s ", question)
	line, err := c.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("read answer: %w", err)
	}
	return strings.ToLower(strings.TrimSpace(line)), nil
}

var categoryAnswers = map[string]library.Category{
	"m": library.CategoryMovie, "movie": library.CategoryMovie,
	"c": library.CategoryComedy, "comedy": library.CategoryComedy,
	"d": library.CategoryDocumentary, "documentary": library.CategoryDocumentary,
	"e": library.CategoryEpisode, "episode": library.CategoryEpisode, "episodes": library.CategoryEpisode,
}

// Category asks for the category of the run. Unrecognised answers mean movie.
func (c *console) Category(ctx context.Context) (library.Category, error) {
	answer, err := c.ask(ctx, "Choose the type you want to process: movie, comedy, documentary or episodes ? (m,c,d,e)")
	if err != nil {
		return "", err
	}
	if category, ok := categoryAnswers[answer]; ok {
		return category, nil
	}
	return library.CategoryMovie, nil
}

// ConfirmSettings stops the run on any answer other than y or yes.
func (c *console) ConfirmSettings(ctx context.Context, s ingest.Settings) (bool, error) {
	c.println(c.paint("Settings", text.Bold))
	c.println(renderSettings(s))
	answer, err := c.ask(ctx, "Are these settings correct? (y/n)")
	if err != nil {
		return false, err
	}
	if answer == "y" || answer == "yes" {
		return true, nil
	}
	c.println("Stopping script...")
	return false, nil
}

func renderSettings(s ingest.Settings) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendRow(table.Row{"Website target", s.Target})
	tw.AppendRow(table.Row{"SSH Tunnel required", fmt.Sprintf("%t (Should be 'true' for [Vagrant] or [RaspberryPi])", s.TunnelRequired)})
	tw.AppendRow(table.Row{"Local directory to read", s.Directory})
	tw.AppendRow(table.Row{"Media-type (movie | episode)", s.Category.MediaType()})
	if s.Category != library.CategoryEpisode {
		tw.AppendRow(table.Row{"Movie-type (movie | comedy | documentary)", string(s.Category)})
	}
	return tw.Render()
}

// gateQuestion phrases a confirmation gate, e.g. "Process these directories?".
func gateQuestion(subject ingest.Subject, count int) string {
	if count == 1 {
		return fmt.Sprintf("Process this %s? (y/n/quit)", subject)
	}
	plural := string(subject) + "s"
	if subject == ingest.SubjectDirectory {
		plural = "directories"
	}
	return fmt.Sprintf("Process these %s? (y/n/quit)", plural)
}

// Confirm answers a gate. Only "quit" quits; anything but y or yes skips.
func (c *console) Confirm(ctx context.Context, subject ingest.Subject, count int) (ingest.Answer, error) {
	answer, err := c.ask(ctx, gateQuestion(subject, count))
	if err != nil {
		return ingest.AnswerNo, err
	}
	switch answer {
	case "y", "yes":
		return ingest.AnswerYes, nil
	case "quit":
		return ingest.AnswerQuit, nil
	}
	return ingest.AnswerNo, nil
}

func (c *console) ScanStarted(seasons bool) {
	if seasons {
		c.println("Searching for directories and files . . .")
		return
	}
	c.println("Searching for files . . .")
}

func countNoun(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}

func (c *console) FilesFound(dir string, names []string) {
	if dir != "" {
		c.println(c.paint(dir, text.Bold))
	}
	c.printf("Found %s:\n", countNoun(len(names), "file", "files"))
	if len(names) == 0 {
		return
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "File", "Size"})
	for i, name := range names {
		size := "?"
		if info, err := os.Stat(filepath.Join(c.root, dir, name)); err == nil {
			size = humanize.IBytes(uint64(info.Size()))
		}
		tw.AppendRow(table.Row{i + 1, name, size})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{{Number: 3, Align: text.AlignRight}})
	c.println(tw.Render())
}

func (c *console) DirectoriesFound(names []string) {
	c.printf("Found %s:\n", countNoun(len(names), "directory", "directories"))
	for _, name := range names {
		c.printf("  %s\n", name)
	}
}

type barProgress struct{ bar *progressbar.ProgressBar }

func (p barProgress) Step() { _ = p.bar.Add(1) }
func (p barProgress) Done() { _ = p.bar.Finish() }

type silentProgress struct{}

func (silentProgress) Step() {}
func (silentProgress) Done() {}

func (c *console) Building(total int) ingest.Progress {
	if !c.color {
		return silentProgress{}
	}
	return barProgress{bar: progressbar.NewOptions(total,
		progressbar.OptionSetWriter(c.out),
		progressbar.OptionSetDescription("Probing"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)}
}

func (c *console) MediaBuilt(items []library.Media) {
	c.printf("Created %s:\n", countNoun(len(items), "object", "objects"))
	for _, item := range items {
		c.println(c.paint(item.DisplayTitle(), text.FgCyan))
		c.printf("    %s\n", objectLine(item))
	}
}

// objectLine summarises a built record on one line. Only movies carry a language.
func objectLine(item library.Media) string {
	parts := []string{
		fmt.Sprintf("Size: %gGB", item.SizeInGB()),
		fmt.Sprintf("Duration: %s", item.PlayTime()),
	}
	if m, ok := item.(*library.Movie); ok {
		parts = append(parts, fmt.Sprintf("Language: %s", languageLabel(m.Language)))
	}
	parts = append(parts, fmt.Sprintf("Resolution: %s", item.TechnicalInfo().VideoResolution))
	return strings.Join(parts, "  ")
}

// languageLabel returns the code followed by its English name when known,
// e.g. "NL (Dutch)".
func languageLabel(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	name := display.English.Languages().Name(tag)
	if name == "" {
		return code
	}
	return fmt.Sprintf("%s (%s)", code, name)
}

func (c *console) Skipped(dir string) {
	c.println(c.paint("Skipping "+dir, text.FgYellow))
}

func (c *console) NothingToProcess() {
	c.println("There was nothing confirmed to process")
}

func insertedNoun(t library.Table) string {
	if t == library.TableEpisodeSeasons || t == library.TableDocumentarySeasons {
		return "directories"
	}
	return "files"
}

func (c *console) Persisted(report *persist.Report) {
	for _, in := range report.Inserted {
		c.printf("Inserted %s into table %q\n", insertedNoun(in.Table), string(in.Table))
	}
	for _, f := range report.Failures {
		c.println(c.paint(fmt.Sprintf("Failed to insert %s: %v", f.Unit, f.Err), text.FgRed))
	}
	if len(report.Inserted) == 0 {
		return
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Table", "Rows"})
	for _, in := range report.Inserted {
		tw.AppendRow(table.Row{string(in.Table), len(in.IDs)})
	}
	tw.AppendFooter(table.Row{"Total", report.Rows()})
	c.println(tw.Render())
}
