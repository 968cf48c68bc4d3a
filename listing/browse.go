package listing

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/jsnhynh/riscv-oom/config"
	"github.com/jsnhynh/riscv-oom/parser"
)

// browser is the interactive listing viewer opened by -browse. It has no
// execution state to show (no registers, no stack, no memory) so its
// layout is a single scrollable listing pane next to an optional symbol
// pane, rather than the debugger's multi-panel grid.
type browser struct {
	App    *tview.Application
	Pages  *tview.Pages

	ListingView *tview.TextView
	SymbolView  *tview.TextView
	StatusView  *tview.TextView

	rows   []Row
	perRow int
}

// Browse opens a full-screen, scrollable view of program's listing and,
// when cfg.Listing.ShowSymbols is set, its symbol table. It blocks until
// the user quits (q or Ctrl-C).
func Browse(program *parser.Program, words []uint32, cfg *config.Config) error {
	b := &browser{rows: Rows(program, words), perRow: wordsPerRow(cfg)}
	b.App = tview.NewApplication()

	b.ListingView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(false)
	b.ListingView.SetBorder(true).SetTitle(" Listing ")
	b.ListingView.SetText(b.renderListing())

	b.StatusView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(false)
	b.StatusView.SetBorder(true).SetTitle(" Status ")
	b.StatusView.SetText(fmt.Sprintf("%s  -  %d statement(s), %d word(s)  -  q to quit",
		program.Filename, len(program.Statements), len(words)))

	layout := tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(b.ListingView, 0, 3, true)

	if cfg.Listing.ShowSymbols {
		b.SymbolView = tview.NewTextView().
			SetDynamicColors(true).
			SetScrollable(true).
			SetWrap(false)
		b.SymbolView.SetBorder(true).SetTitle(" Symbols ")
		b.SymbolView.SetText(strings.Join(SymbolLines(program), "\n"))
		layout.AddItem(b.SymbolView, 0, 1, false)
	}

	root := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(layout, 0, 1, true).
		AddItem(b.StatusView, 3, 0, false)

	b.Pages = tview.NewPages().AddPage("main", root, true, true)

	b.App.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyCtrlC:
			b.App.Stop()
			return nil
		}
		switch event.Rune() {
		case 'q', 'Q':
			b.App.Stop()
			return nil
		}
		return event
	})

	return b.App.SetRoot(b.Pages, true).SetFocus(b.ListingView).Run()
}

// renderListing formats every row with tview color tags, highlighting
// label definitions the same way the debugger highlights the current PC.
func (b *browser) renderListing() string {
	var lines []string
	for _, row := range b.rows {
		prefix := ""
		if len(row.Labels) > 0 {
			prefix = fmt.Sprintf("[yellow]%s:[white] ", strings.Join(row.Labels, ", "))
		}
		if !row.HasWords {
			lines = append(lines, fmt.Sprintf("%s%s%s", strings.Repeat(" ", 19), prefix, row.Source))
			continue
		}
		for i := 0; i < len(row.Words); i += b.perRow {
			end := i + b.perRow
			if end > len(row.Words) {
				end = len(row.Words)
			}
			hex := make([]string, 0, end-i)
			for _, word := range row.Words[i:end] {
				hex = append(hex, fmt.Sprintf("%08x", word))
			}
			addr := row.Address + uint32(4*i)
			if i == 0 {
				lines = append(lines, fmt.Sprintf("[green]%08X[white] %s  %s%s", addr, strings.Join(hex, " "), prefix, row.Source))
			} else {
				lines = append(lines, fmt.Sprintf("[green]%08X[white] %s", addr, strings.Join(hex, " ")))
			}
		}
	}
	return strings.Join(lines, "\n")
}
