package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/studiowebux/sortstep/internal/sorting"
)

var (
	titleStyle        = lipgloss.NewStyle().MarginLeft(2).Bold(true)
	itemStyle         = lipgloss.NewStyle().PaddingLeft(4)
	selectedItemStyle = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("170"))
	helpStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1).MarginLeft(2)
)

type item struct {
	algorithm sorting.Algorithm
	isDefault bool
}

func (i item) FilterValue() string {
	return i.algorithm.String() + " " + i.algorithm.Title()
}

func (i item) Title() string {
	title := i.algorithm.Title()
	if i.isDefault {
		title += " [default]"
	}
	return title
}

func (i item) Description() string { return "O(n^2) Time, O(1) Space" }

type selectorModel struct {
	list     list.Model
	choice   *sorting.Algorithm
	quitting bool
}

func (m selectorModel) Init() tea.Cmd {
	return nil
}

func (m selectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true
			m.choice = nil
			return m, tea.Quit

		case "enter":
			if i, ok := m.list.SelectedItem().(item); ok {
				a := i.algorithm
				m.choice = &a
			}
			m.quitting = true
			return m, tea.Quit

		case "1", "2", "3":
			a, err := sorting.ParseAlgorithm(msg.String())
			if err == nil {
				m.choice = &a
				m.quitting = true
				return m, tea.Quit
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m selectorModel) View() string {
	if m.quitting {
		return ""
	}

	help := helpStyle.Render("↑/↓: navigate • enter: select • 1-3: quick pick • q/ctrl+c: cancel")
	return fmt.Sprintf("%s\n\n%s", m.list.View(), help)
}

func newSelectorModel(def sorting.Algorithm) selectorModel {
	items := make([]list.Item, 0, len(sorting.Algorithms))
	selected := 0
	for i, a := range sorting.Algorithms {
		items = append(items, item{algorithm: a, isDefault: a == def})
		if a == def {
			selected = i
		}
	}

	const defaultWidth = 60
	const listHeight = 10

	l := list.New(items, itemDelegate{}, defaultWidth, listHeight)
	l.Title = "Select a sorting algorithm"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle
	l.Select(selected)

	return selectorModel{list: l}
}

// promptForAlgorithm shows an interactive list to pick the algorithm
func promptForAlgorithm(def sorting.Algorithm) (sorting.Algorithm, error) {
	if !IsInteractive() {
		return def, nil
	}

	p := tea.NewProgram(newSelectorModel(def))
	finalModel, err := p.Run()
	if err != nil {
		return def, fmt.Errorf("error running selector: %w", err)
	}

	result := finalModel.(selectorModel)
	if result.choice == nil {
		return def, fmt.Errorf("selection cancelled")
	}

	return *result.choice, nil
}

// itemDelegate is a custom list item delegate
type itemDelegate struct{}

func (d itemDelegate) Height() int                             { return 1 }
func (d itemDelegate) Spacing() int                            { return 0 }
func (d itemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(item)
	if !ok {
		return
	}

	str := fmt.Sprintf("%d. %s  %s", index+1, i.Title(), i.Description())

	fn := itemStyle.Render
	if index == m.Index() {
		fn = func(s ...string) string {
			return selectedItemStyle.Render("> " + strings.Join(s, " "))
		}
	}

	fmt.Fprint(w, fn(str))
}
