package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/mindmate/pkg/companion"
	"tableflip.dev/mindmate/pkg/entry"
	"tableflip.dev/mindmate/pkg/mood"
)

const noEntries = "No journal entries yet."

type PrettyPrint struct {
	Out   io.Writer
	Width int
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) width() int {
	if pp.Width <= 0 {
		return 72
	}
	return pp.Width
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out())
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " entry")
	default:
		_, _ = c.Fprintln(pp.out(), " entries")
	}
}

func (pp *PrettyPrint) Faint(msg string) {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Fprintln(pp.out(), msg)
}

func (pp *PrettyPrint) Warn(msg string) {
	w := color.New(color.FgYellow)
	_, _ = w.Fprintln(pp.out(), msg)
}

// History prints the journal newest first.
func (pp *PrettyPrint) History(entries ...entry.MoodEntry) {
	if len(entries) == 0 {
		pp.Faint(noEntries)
		pp.NewLine()
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.Wrap = true
	tbl.MaxColWidth = uint(pp.width() / 2)
	for _, e := range entries {
		symbol, name, date, clock, note := e.Row()
		tbl.AddRow(Paint(e.Mood, symbol), Paint(e.Mood, name), date, clock, note)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Entry prints a single logged entry.
func (pp *PrettyPrint) Entry(e entry.MoodEntry) {
	_, _ = fmt.Fprintf(pp.out(), "%s %s  %s\n", Paint(e.Mood, e.Mood.Glyph().Symbol), Paint(e.Mood, string(e.Mood)), color.New(color.Faint).Sprint(e.DisplayTime))
	if e.Journal != "" {
		_, _ = fmt.Fprintln(pp.out(), wordwrap.String(e.Journal, pp.width()))
	}
}

// Moods prints the mood legend.
func (pp *PrettyPrint) Moods() {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Key"), bold.Sprint("Symbol"), bold.Sprint("Mood"), bold.Sprint("Also"))
	for _, g := range mood.DefaultGlyphs() {
		tbl.AddRow(g.Key, Paint(g.Mood, g.Symbol), Paint(g.Mood, string(g.Mood)), strings.Join(g.Aliases[1:], ", "))
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Suggestions prints either the cards or the flow's message.
func (pp *PrettyPrint) Suggestions(res companion.SuggestionResult) {
	if res.Message != "" {
		pp.Warn(res.Message)
		return
	}
	title := color.New(color.Bold)
	for i, s := range res.Suggestions {
		_, _ = title.Fprintf(pp.out(), "%s %s\n", companion.IconSymbol(i), s.Title)
		_, _ = fmt.Fprintln(pp.out(), indent(wordwrap.String(s.Description, pp.width()-2), "  "))
		pp.NewLine()
	}
}

// Turn prints one chat message.
func (pp *PrettyPrint) Turn(t companion.Turn) {
	label := color.New(color.Bold, color.FgCyan).Sprint("You")
	if t.Role == companion.RoleBot {
		label = color.New(color.Bold, color.FgMagenta).Sprint("MindMate")
	}
	_, _ = fmt.Fprintf(pp.out(), "%s\n%s\n\n", label, indent(wordwrap.String(t.Content, pp.width()-2), "  "))
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}
