// Package picker provides an interactive fuzzy list for choosing a saved
// project. It renders on stderr so stdout only ever carries the chosen path.
package picker

import (
	"fmt"
	"os"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/colorprofile"
	"github.com/sahilm/fuzzy"

	"github.com/raphi011/teleproj/internal/store"
	"github.com/raphi011/teleproj/internal/ui/styles"
)

// maxVisible is the number of rows shown at once.
const maxVisible = 10

// Result is the outcome of a picker session.
type Result struct {
	Entry     store.Entry
	Cancelled bool
}

// entrySource implements fuzzy.Source over project names.
type entrySource []store.Entry

func (s entrySource) String(i int) string { return s[i].Name() }
func (s entrySource) Len() int            { return len(s) }

// model wraps a filter input and the ranked entries.
type model struct {
	input     textinput.Model
	entries   []store.Entry
	matches   []fuzzy.Match
	cursor    int
	chosen    int // index into entries; -1 means no selection
	cancelled bool
	styles    styles.Set
}

func newModel(entries []store.Entry, initial string) *model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "type to filter"
	ti.CharLimit = 128
	ti.SetValue(initial)

	m := &model{
		input:   ti,
		entries: entries,
		chosen:  -1,
		styles:  styles.Stdout(),
	}
	m.applyFilter()
	return m
}

func (m *model) Init() tea.Cmd {
	m.input.Focus()
	return textinput.Blink
}

// Update handles key presses. Other message types only reach the text input.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch keyMsg.String() {
	case "ctrl+c":
		m.cancelled = true
		return m, tea.Quit
	case "esc":
		if m.input.Value() != "" {
			m.input.SetValue("")
			m.applyFilter()
			return m, nil
		}
		m.cancelled = true
		return m, tea.Quit
	case "enter":
		if len(m.matches) == 0 {
			return m, nil
		}
		m.chosen = m.matches[m.cursor].Index
		return m, tea.Quit
	case "up", "ctrl+p", "ctrl+k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "ctrl+n", "ctrl+j":
		if m.cursor < len(m.matches)-1 {
			m.cursor++
		}
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(keyMsg)
	if m.input.Value() != before {
		m.applyFilter()
	}
	return m, cmd
}

// applyFilter ranks entries against the current filter. An empty filter
// keeps index order.
func (m *model) applyFilter() {
	filter := m.input.Value()
	if filter == "" {
		m.matches = make([]fuzzy.Match, len(m.entries))
		for i, e := range m.entries {
			m.matches[i] = fuzzy.Match{Str: e.Name(), Index: i}
		}
	} else {
		m.matches = fuzzy.FindFrom(filter, entrySource(m.entries))
	}

	if m.cursor >= len(m.matches) {
		m.cursor = max(0, len(m.matches)-1)
	}
}

func (m *model) View() tea.View {
	if m.chosen >= 0 || m.cancelled {
		return tea.NewView("")
	}
	return tea.NewView(m.render())
}

func (m *model) render() string {
	var b strings.Builder
	b.WriteString(m.input.View() + "\n\n")

	if len(m.matches) == 0 {
		b.WriteString(m.styles.Muted().Render("  no matching projects") + "\n")
	}

	start := 0
	if m.cursor >= maxVisible {
		start = m.cursor - maxVisible + 1
	}
	end := min(start+maxVisible, len(m.matches))

	if start > 0 {
		b.WriteString(m.styles.Muted().Render("  ↑ more above") + "\n")
	}

	for i := start; i < end; i++ {
		match := m.matches[i]
		entry := m.entries[match.Index]

		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		name := highlight(m.styles, match.Str, match.MatchedIndexes, i == m.cursor)
		index := m.styles.Muted().Render(fmt.Sprintf("%3d", entry.Index))
		path := m.styles.Muted().Render(entry.Path)
		b.WriteString(fmt.Sprintf("%s%s  %s  %s\n", cursor, index, name, path))
	}

	if end < len(m.matches) {
		b.WriteString(m.styles.Muted().Render("  ↓ more below") + "\n")
	}

	b.WriteString("\n" + m.styles.Muted().Render("↑/↓ navigate • enter select • esc clear/cancel") + "\n")
	return b.String()
}

// highlight styles the matched bytes of label.
func highlight(st styles.Set, label string, matched []int, selected bool) string {
	matchSet := make(map[int]bool, len(matched))
	for _, idx := range matched {
		matchSet[idx] = true
	}

	base := st.Name()
	if selected {
		base = st.Selected()
	}

	var b strings.Builder
	for i, r := range label {
		if matchSet[i] {
			b.WriteString(st.Highlight().Render(string(r)))
		} else {
			b.WriteString(base.Render(string(r)))
		}
	}
	return b.String()
}

// Run shows the picker over entries with the filter pre-filled by initial.
func Run(entries []store.Entry, initial string) (Result, error) {
	if len(entries) == 0 {
		return Result{Cancelled: true}, nil
	}

	m := newModel(entries, initial)
	// The picker draws on stderr, which stays a terminal when stdout is
	// captured by a shell wrapper.
	m.styles = styles.For(styles.ShouldColorize(os.Stderr))

	profile := colorprofile.Detect(os.Stderr, os.Environ())
	p := tea.NewProgram(m,
		tea.WithOutput(os.Stderr),
		tea.WithColorProfile(profile),
	)

	final, err := p.Run()
	if err != nil {
		return Result{}, fmt.Errorf("run picker: %w", err)
	}

	return resultOf(final.(*model)), nil
}

func resultOf(m *model) Result {
	if m.cancelled || m.chosen < 0 {
		return Result{Cancelled: true}
	}
	return Result{Entry: m.entries[m.chosen]}
}
