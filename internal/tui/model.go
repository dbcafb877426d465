// Package tui is an interactive layout viewer and editor built on
// bubbletea. Every edit goes through the model's action dispatch, so the
// on-screen tree always matches what a saved document would reload to.
package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/regenrek/docktree/internal/atomicfile"
	"github.com/regenrek/docktree/internal/identity"
	"github.com/regenrek/docktree/internal/render"
	"github.com/regenrek/docktree/pkg/dock"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	statusStyle = lipgloss.NewStyle().Faint(true)
)

// Options configures a viewer session.
type Options struct {
	Title    string
	SavePath string // empty disables saving
}

// Run starts the viewer and blocks until the user quits.
func Run(m *dock.Model, opts Options) error {
	p := tea.NewProgram(newModel(m, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Model implements tea.Model over a dock layout.
type Model struct {
	dock *dock.Model
	opts Options
	keys *keyMap

	width  int
	height int

	renaming bool
	input    textinput.Model

	showHelp bool
	status   string
}

func newModel(m *dock.Model, opts Options) Model {
	input := textinput.New()
	input.CharLimit = 64
	input.Prompt = "rename: "
	model := Model{
		dock:  m,
		opts:  opts,
		keys:  defaultKeyMap(),
		input: input,
	}
	applyCellMetrics(m)
	if ts := firstTabSet(m); ts != nil && m.ActiveTabSet() == nil {
		m.DoAction(dock.SetActiveTabSetAction(ts.ID()))
	}
	return model
}

// applyCellMetrics switches the global sizing attributes from their
// pixel-oriented defaults to character cells. Documents saved from the
// viewer keep these values.
func applyCellMetrics(m *dock.Model) {
	m.DoAction(dock.UpdateModelAttributesAction(map[string]any{
		"splitterSize":         float64(1),
		"tabSetTabStripHeight": float64(1),
		"borderBarSize":        float64(1),
		"borderSize":           float64(6),
	}))
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.applyLayout()
		return m, nil
	case tea.KeyMsg:
		if m.renaming {
			return m.updateRename(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.help):
		m.showHelp = !m.showHelp
	case key.Matches(msg, m.keys.nextTab):
		m.cycleTab(1)
	case key.Matches(msg, m.keys.prevTab):
		m.cycleTab(-1)
	case key.Matches(msg, m.keys.nextSet):
		m.cycleTabSet(1)
	case key.Matches(msg, m.keys.prevSet):
		m.cycleTabSet(-1)
	case key.Matches(msg, m.keys.maximize):
		if ts := m.activeTabSet(); ts != nil {
			m.dock.DoAction(dock.MaximizeToggleAction(ts.ID()))
		}
	case key.Matches(msg, m.keys.closeTab):
		if tab := m.selectedTab(); tab != nil {
			m.dock.DoAction(dock.DeleteTabAction(tab.ID()))
		}
	case key.Matches(msg, m.keys.rename):
		if tab := m.selectedTab(); tab != nil {
			m.renaming = true
			m.input.SetValue(tab.Name())
			m.input.Focus()
			return m, textinput.Blink
		}
	case key.Matches(msg, m.keys.moveLeft):
		m.splitTab(dock.DockLeft)
	case key.Matches(msg, m.keys.moveRight):
		m.splitTab(dock.DockRight)
	case key.Matches(msg, m.keys.moveUp):
		m.splitTab(dock.DockTop)
	case key.Matches(msg, m.keys.moveDown):
		m.splitTab(dock.DockBottom)
	case key.Matches(msg, m.keys.moveCenter):
		m.moveTabToNextSet()
	case key.Matches(msg, m.keys.border):
		m.toggleBorder()
	case key.Matches(msg, m.keys.save):
		m.save()
	}
	m.applyLayout()
	return m, nil
}

func (m Model) updateRename(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		if tab := m.selectedTab(); tab != nil {
			m.dock.DoAction(dock.RenameTabAction(tab.ID(), m.input.Value()))
		}
		m.renaming = false
		m.input.Blur()
		return m, nil
	case tea.KeyEsc:
		m.renaming = false
		m.input.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) applyLayout() {
	if m.width <= 0 || m.height <= chromeLines {
		return
	}
	render.Apply(m.dock, dock.Rect{
		Width:  float64(m.width),
		Height: float64(m.height - chromeLines),
	})
}

// chromeLines is the header plus the footer.
const chromeLines = 2

func (m *Model) cycleTab(delta int) {
	ts := m.activeTabSet()
	if ts == nil || len(ts.Children()) == 0 {
		return
	}
	n := len(ts.Children())
	next := (ts.Selected() + delta + n) % n
	m.dock.DoAction(dock.SelectTabAction(ts.Children()[next].ID()))
}

func (m *Model) cycleTabSet(delta int) {
	sets := tabSets(m.dock)
	if len(sets) == 0 {
		return
	}
	cur := 0
	if active := m.dock.ActiveTabSet(); active != nil {
		for i, ts := range sets {
			if ts == active {
				cur = i
				break
			}
		}
	}
	next := sets[(cur+delta+len(sets))%len(sets)]
	m.dock.DoAction(dock.SetActiveTabSetAction(next.ID()))
}

func (m *Model) splitTab(loc dock.DockLocation) {
	tab := m.selectedTab()
	ts := m.activeTabSet()
	if tab == nil || ts == nil {
		return
	}
	if len(ts.Children()) < 2 {
		m.status = "nothing to split off"
		return
	}
	m.dock.DoAction(dock.MoveNodeAction(tab.ID(), ts.ID(), loc, -1, true))
}

func (m *Model) moveTabToNextSet() {
	tab := m.selectedTab()
	if tab == nil {
		return
	}
	sets := tabSets(m.dock)
	if len(sets) < 2 {
		m.status = "no other tabset"
		return
	}
	active := m.activeTabSet()
	for i, ts := range sets {
		if ts == active {
			target := sets[(i+1)%len(sets)]
			m.dock.DoAction(dock.MoveNodeAction(tab.ID(), target.ID(), dock.DockCenter, -1, true))
			return
		}
	}
}

func (m *Model) toggleBorder() {
	for _, b := range m.dock.Borders().Borders() {
		if len(b.Children()) == 0 {
			continue
		}
		target := b.Children()[0]
		if b.Selected() >= 0 {
			target = b.Children()[b.Selected()]
		}
		m.dock.DoAction(dock.SelectTabAction(target.ID()))
		return
	}
	m.status = "no borders in this layout"
}

func (m *Model) save() {
	if m.opts.SavePath == "" {
		m.status = "no file to save to"
		return
	}
	data, err := m.dock.ToJSON()
	if err != nil {
		m.status = fmt.Sprintf("save failed: %v", err)
		return
	}
	if err := atomicfile.Save(m.opts.SavePath, data, 0o644); err != nil {
		slog.Error("save layout", "path", m.opts.SavePath, "err", err)
		m.status = fmt.Sprintf("save failed: %v", err)
		return
	}
	m.status = "saved " + m.opts.SavePath
}

func (m *Model) activeTabSet() *dock.TabSetNode {
	if ts := m.dock.ActiveTabSet(); ts != nil {
		return ts
	}
	return firstTabSet(m.dock)
}

func (m *Model) selectedTab() *dock.TabNode {
	ts := m.activeTabSet()
	if ts == nil {
		return nil
	}
	if tab, ok := ts.SelectedNode().(*dock.TabNode); ok {
		return tab
	}
	return nil
}

func firstTabSet(m *dock.Model) *dock.TabSetNode {
	sets := tabSets(m)
	if len(sets) == 0 {
		return nil
	}
	return sets[0]
}

func tabSets(m *dock.Model) []*dock.TabSetNode {
	var sets []*dock.TabSetNode
	m.VisitNodes(func(n dock.Node) {
		if ts, ok := n.(*dock.TabSetNode); ok {
			sets = append(sets, ts)
		}
	})
	return sets
}

func (m Model) View() string {
	if m.width <= 0 || m.height <= chromeLines {
		return "loading..."
	}
	if m.showHelp {
		return m.helpView()
	}
	title := m.opts.Title
	if title == "" {
		title = identity.BrandName
	}
	header := headerStyle.Render(title) + m.headerSuffix()
	body := paint(m.dock, m.width, m.height-chromeLines)
	return header + "\n" + body + "\n" + m.footer()
}

func (m Model) headerSuffix() string {
	if ts := m.dock.MaximizedTabSet(); ts != nil {
		return statusStyle.Render("  [maximized]")
	}
	return ""
}

func (m Model) footer() string {
	if m.renaming {
		return m.input.View()
	}
	if m.status != "" {
		return statusStyle.Render(m.status)
	}
	return statusStyle.Render("tab/[ ] switch   m max   x close   r rename   HJKL split   c move   s save   ? help   q quit")
}

func (m Model) helpView() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Key bindings") + "\n\n")
	bindings := []key.Binding{
		m.keys.nextTab, m.keys.prevTab, m.keys.nextSet, m.keys.prevSet,
		m.keys.maximize, m.keys.closeTab, m.keys.rename,
		m.keys.moveLeft, m.keys.moveRight, m.keys.moveUp, m.keys.moveDown,
		m.keys.moveCenter, m.keys.border, m.keys.save, m.keys.quit,
	}
	for _, binding := range bindings {
		h := binding.Help()
		fmt.Fprintf(&b, "  %-10s %s\n", h.Key, h.Desc)
	}
	b.WriteString("\nPress ? to return.")
	return b.String()
}
