package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"dcmedit/dcm/dtag"
	"dcmedit/edit"
	"dcmedit/render"
)

type (
	// Browser is a row list over an edit session: move the cursor, mark
	// removals, discard, and commit. Value entry stays on the command line;
	// the browser covers the inspect-and-strip workflow.
	Browser struct {
		session *edit.Session
		rows    []render.Row
		cursor  int
		status  string
	}
)

func CreateBrowser(path string) (Browser, error) {
	session, err := edit.Open(path)
	if err != nil {
		return Browser{}, err
	}
	return Browser{
		session: session,
		rows:    session.Rows(),
	}, nil
}

func (b Browser) Init() tea.Cmd {
	return nil
}

func (b Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return b, nil
	}

	switch keyMsg.String() {
	case "q", "ctrl+c":
		return b, tea.Quit
	case "up", "k":
		if b.cursor > 0 {
			b.cursor--
		}
	case "down", "j":
		if b.cursor < len(b.rows)-1 {
			b.cursor++
		}
	case "r":
		b.markRemoval()
	case "d":
		b.session.Discard()
		b.status = "Pending changes discarded"
	case "n":
		b.commit(edit.ModeNew)
	case "w":
		b.commit(edit.ModeReplace)
	}
	return b, nil
}

// markRemoval stages a removal for the row under the cursor. Sequence and
// item header rows are containers, not addressable slots.
func (b *Browser) markRemoval() {
	if len(b.rows) == 0 {
		return
	}
	row := b.rows[b.cursor]

	address, ok := rowAddress(row)
	if !ok {
		b.status = "Cannot remove a sequence or item header"
		return
	}
	_, err := b.session.Handle(edit.StageRemovalMsg{Address: address})
	if err != nil {
		b.status = err.Error()
		return
	}
	b.status = fmt.Sprintf("Marked %s for removal (%d pending)", address.Key(), b.session.Pending())
}

func (b *Browser) commit(mode edit.Mode) {
	if b.session.Pending() == 0 {
		b.status = "Nothing to commit"
		return
	}
	results, err := b.session.Handle(edit.CommitMsg{Mode: mode})
	if err != nil {
		b.status = err.Error()
		return
	}
	failed := 0
	for _, result := range results {
		if result.Err != nil {
			failed++
		}
	}
	if failed > 0 {
		b.status = fmt.Sprintf("Committed with %d failed change(s)", failed)
	} else if mode == edit.ModeNew {
		b.status = "Saved to " + edit.OutputPath(b.session.Path())
	} else {
		b.status = "Saved in place"
	}
	b.rows = b.session.Rows()
	if b.cursor >= len(b.rows) {
		b.cursor = len(b.rows) - 1
	}
}

func rowAddress(row render.Row) (edit.Address, bool) {
	switch row.Kind {
	case render.RowNormal:
		tag, err := dtag.Parse(row.Tag)
		if err != nil {
			return edit.Address{}, false
		}
		return edit.TopLevel(tag), true
	case render.RowSequenceElement:
		sequence, index, ok := render.ParseItemKey(row.Parent)
		if !ok {
			// nested deeper than one sequence level
			return edit.Address{}, false
		}
		element, err := dtag.Parse(row.Tag)
		if err != nil {
			return edit.Address{}, false
		}
		return edit.InItem(sequence, index, element), true
	default:
		return edit.Address{}, false
	}
}

func (b Browser) View() string {
	var output strings.Builder
	output.WriteString("DCMEDIT — " + b.session.Path() + "\n\n")

	for i, row := range b.rows {
		cursor := "  "
		if i == b.cursor {
			cursor = "> "
		}
		indent := ""
		if row.Parent != "" {
			indent = "  "
			if row.Kind == render.RowSequenceElement {
				indent = "    "
			}
		}
		output.WriteString(fmt.Sprintf(
			"%s%s%-24s %-28s %s %s%s\n",
			cursor, indent, row.Tag, row.Name, row.VR, row.Value, classMarker(row),
		))
	}

	output.WriteString(fmt.Sprintf("\n%d pending change(s)\n", b.session.Pending()))
	if b.status != "" {
		output.WriteString(b.status + "\n")
	}
	output.WriteString("\nup/down: move  r: mark removal  d: discard  n: save copy  w: save in place  q: quit\n")
	return output.String()
}

func classMarker(row render.Row) string {
	tag, err := dtag.Parse(row.Tag)
	if err != nil {
		return ""
	}
	switch edit.Classify(tag, row.VR) {
	case edit.ClassImageCritical:
		return "  [image-critical]"
	case edit.ClassStandardRequired:
		return "  [required]"
	case edit.ClassBinary:
		return "  [binary]"
	default:
		return ""
	}
}
