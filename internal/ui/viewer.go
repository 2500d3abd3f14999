package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gravitrone/vlist/internal/log"
	"github.com/gravitrone/vlist/internal/source"
	"github.com/gravitrone/vlist/internal/ui/components"
	"github.com/gravitrone/vlist/internal/vlist"
)

// --- Messages ---

type scrollMsg struct{}

type recordsMsg struct {
	records []source.Record
	err     error
}

// --- Options ---

// Options configure a Viewer.
type Options struct {
	Title      string
	ItemExtent int
	Margin     *int
	Filter     string
	Theme      string
	VimKeys    bool
	// Reload, if set, is called by the refresh key to replace the records.
	Reload func() ([]source.Record, error)
}

type viewMode int

const (
	modeBrowse viewMode = iota
	modeGoto
	modeFilter
	modeDetail
	modeHelp
	modeError
)

const wheelLines = 3

// --- Viewer Model ---

// Viewer is the terminal list browser. All list triggers run inside Update,
// one message at a time.
type Viewer struct {
	opts    Options
	records []source.Record
	surface *TermSurface
	list    *vlist.List[source.Record, *Row]
	cursor  *components.Cursor
	keys    keyMap
	theme   Theme

	width  int
	height int
	filter string

	mode     viewMode
	input    string
	inputErr string
	err      string
	quitting bool
}

// NewViewer builds the list over records. The viewport is empty until the
// first tea.WindowSizeMsg.
func NewViewer(records []source.Record, opts Options) (*Viewer, error) {
	v := &Viewer{
		opts:    opts,
		records: records,
		surface: NewTermSurface(opts.ItemExtent, 0),
		cursor:  components.NewCursor(1),
		keys:    newKeyMap(opts.VimKeys),
		theme:   NewTheme(opts.Theme),
		filter:  opts.Filter,
	}
	var vopts []vlist.Option
	if opts.Margin != nil {
		vopts = append(vopts, vlist.WithMargin(*opts.Margin))
	}
	list, err := vlist.New(v.surface, records, v.createRow, opts.ItemExtent, vopts...)
	if err != nil {
		return nil, fmt.Errorf("create list: %w", err)
	}
	v.list = list
	v.cursor.SetCount(len(records))
	return v, nil
}

// createRow is the list's factory. Records that do not match the filter get
// no row.
func (v *Viewer) createRow(rec source.Record, index int, _ []source.Record) (*Row, bool, error) {
	if !source.Matches(rec, v.filter) {
		return nil, false, nil
	}
	lines := make([]string, v.opts.ItemExtent)
	lines[0] = components.SanitizeOneLine(rec.Title)
	if len(lines) > 1 {
		lines[1] = components.SanitizeOneLine(rec.Detail)
	}
	return &Row{Index: index, Lines: lines}, true, nil
}

func (v *Viewer) Init() tea.Cmd {
	return nil
}

func (v *Viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if v.quitting {
		return v, nil
	}
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		return v, v.resize()

	case scrollMsg:
		return v, v.after(v.surface.EmitPending())

	case recordsMsg:
		if msg.err != nil {
			return v, v.after(fmt.Errorf("reload records: %w", msg.err))
		}
		v.records = msg.records
		v.cursor.SetCount(len(msg.records))
		log.Info("records reloaded", "count", len(msg.records))
		if err := v.list.UpdateData(msg.records); err != nil {
			return v, v.after(err)
		}
		return v, v.follow()

	case tea.MouseMsg:
		if v.mode != modeBrowse || msg.Action != tea.MouseActionPress {
			return v, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			return v, v.scrollLines(-wheelLines)
		case tea.MouseButtonWheelDown:
			return v, v.scrollLines(wheelLines)
		}
		return v, nil

	case tea.KeyMsg:
		switch v.mode {
		case modeGoto, modeFilter:
			return v.updateInput(msg)
		case modeHelp, modeDetail, modeError:
			if isQuitKey(msg, v.keys) {
				return v, v.quit()
			}
			v.mode = modeBrowse
			v.err = ""
			return v, nil
		}
		return v.updateBrowse(msg)
	}
	return v, nil
}

func (v *Viewer) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case isQuitKey(msg, v.keys):
		return v, v.quit()
	case key.Matches(msg, v.keys.Up):
		v.cursor.Up()
	case key.Matches(msg, v.keys.Down):
		v.cursor.Down()
	case key.Matches(msg, v.keys.PageUp):
		v.cursor.PageUp()
	case key.Matches(msg, v.keys.PageDown):
		v.cursor.PageDown()
	case key.Matches(msg, v.keys.Home):
		v.cursor.Home()
	case key.Matches(msg, v.keys.End):
		v.cursor.End()
	case key.Matches(msg, v.keys.Goto):
		v.mode = modeGoto
		v.input = ""
		v.inputErr = ""
		return v, nil
	case key.Matches(msg, v.keys.Filter):
		v.mode = modeFilter
		v.input = v.filter
		v.inputErr = ""
		return v, nil
	case key.Matches(msg, v.keys.Refresh):
		if v.opts.Reload != nil {
			reload := v.opts.Reload
			return v, func() tea.Msg {
				records, err := reload()
				return recordsMsg{records: records, err: err}
			}
		}
		return v, v.after(v.list.Refresh())
	case key.Matches(msg, v.keys.Detail):
		if len(v.records) > 0 {
			v.mode = modeDetail
		}
		return v, nil
	case key.Matches(msg, v.keys.Help):
		v.mode = modeHelp
		return v, nil
	default:
		return v, nil
	}
	return v, v.follow()
}

func (v *Viewer) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Cancel):
		v.mode = modeBrowse
		return v, nil
	case key.Matches(msg, v.keys.Submit):
		return v, v.submitInput()
	}
	switch msg.Type {
	case tea.KeyCtrlC:
		return v, v.quit()
	case tea.KeyBackspace:
		if r := []rune(v.input); len(r) > 0 {
			v.input = string(r[:len(r)-1])
		}
	case tea.KeySpace:
		v.input += " "
	case tea.KeyRunes:
		v.input += string(msg.Runes)
	}
	return v, nil
}

func (v *Viewer) submitInput() tea.Cmd {
	switch v.mode {
	case modeGoto:
		n, err := strconv.Atoi(strings.TrimSpace(v.input))
		if err != nil || n < 1 {
			v.inputErr = "enter an item number from 1"
			return nil
		}
		v.mode = modeBrowse
		index := min(n, len(v.records)) - 1
		v.cursor.MoveTo(index)
		v.cursor.SetOffset(index)
		return v.after(v.list.ScrollToIndex(v.cursor.Offset))
	case modeFilter:
		v.mode = modeBrowse
		v.filter = strings.TrimSpace(v.input)
		log.Debug("filter changed", "filter", v.filter)
		return v.after(v.list.Refresh())
	}
	return nil
}

// follow scrolls the surface so the cursor's page is in view.
func (v *Viewer) follow() tea.Cmd {
	return v.after(v.surface.ScrollTo(v.cursor.Offset * v.opts.ItemExtent))
}

func (v *Viewer) scrollLines(delta int) tea.Cmd {
	err := v.surface.ScrollTo(v.surface.ScrollOffset() + delta)
	v.cursor.SetOffset(v.surface.ScrollOffset() / v.opts.ItemExtent)
	return v.after(err)
}

func (v *Viewer) resize() tea.Cmd {
	lines := max(v.height-v.chromeHeight(), 0)
	v.cursor.SetPageSize(lines / v.opts.ItemExtent)
	if err := v.surface.SetViewport(lines); err != nil {
		return v.after(err)
	}
	return v.follow()
}

// after records a list error and schedules the scroll notification the list
// owes itself after moving the surface.
func (v *Viewer) after(err error) tea.Cmd {
	if err != nil {
		log.Error("list update failed", "err", err)
		v.err = err.Error()
		v.mode = modeError
	}
	if v.surface.Pending() {
		return func() tea.Msg { return scrollMsg{} }
	}
	return nil
}

func (v *Viewer) quit() tea.Cmd {
	v.quitting = true
	if err := v.list.Teardown(); err != nil {
		log.Error("teardown failed", "err", err)
	}
	log.Info("viewer closed", "stats", v.list.Stats())
	return tea.Quit
}

// --- View ---

func (v *Viewer) View() string {
	if v.quitting {
		return ""
	}
	bodyHeight := max(v.height-v.chromeHeight(), 0)

	var body string
	switch v.mode {
	case modeBrowse:
		if len(v.records) == 0 {
			body = lipgloss.Place(v.width, bodyHeight, lipgloss.Center, lipgloss.Center, RenderBanner(v.theme))
		} else {
			body = v.renderLines()
		}
	default:
		body = lipgloss.Place(v.width, bodyHeight, lipgloss.Center, lipgloss.Center, v.renderOverlay())
	}
	return lipgloss.JoinVertical(lipgloss.Left, v.header(), body, v.footer())
}

func (v *Viewer) renderOverlay() string {
	switch v.mode {
	case modeGoto:
		return components.InputDialog("Go to item", v.input, v.inputErr)
	case modeFilter:
		return components.InputDialog("Filter", v.input, v.inputErr)
	case modeError:
		return components.ErrorBox("Error", v.err, v.width)
	case modeHelp:
		rows := make([]string, 0, len(v.keys.fullHelp()))
		for _, b := range v.keys.fullHelp() {
			rows = append(rows, components.Hint(b.Help().Key, b.Help().Desc))
		}
		return components.TitledBox("Keys", strings.Join(rows, "\n"), v.width)
	case modeDetail:
		i := v.cursor.Selected()
		rec := v.records[i]
		rows := []string{
			components.InfoRow("Item", strconv.Itoa(i+1)),
			components.InfoRow("Title", rec.Title),
		}
		if rec.Detail != "" {
			rows = append(rows, components.InfoRow("Detail", rec.Detail))
		}
		return components.TitledBox("Details", strings.Join(rows, "\n"), v.width)
	}
	return ""
}

func (v *Viewer) renderLines() string {
	lines := v.surface.Lines()
	gutter := len(strconv.Itoa(len(v.records)))
	out := make([]string, len(lines))
	for y, line := range lines {
		first := (v.surface.ScrollOffset()+y)%v.opts.ItemExtent == 0
		switch {
		case line.Index >= len(v.records):
			out[y] = ""
			continue
		case !line.Present:
			out[y] = v.theme.Empty.Render(components.PadToWidth(strings.Repeat(" ", gutter+1)+"·", v.width))
			continue
		}

		num := strings.Repeat(" ", gutter)
		if first {
			num = fmt.Sprintf("%*d", gutter, line.Index+1)
		}
		text := components.ClampTextWidth(line.Text, max(v.width-gutter-1, 1))
		text = components.PadToWidth(text, max(v.width-gutter-1, 0))

		style := v.theme.Row
		if !first {
			style = v.theme.Detail
		}
		if v.cursor.IsSelected(line.Index) {
			style = v.theme.Selected
		}
		out[y] = v.theme.Gutter.Render(num) + " " + style.Render(text)
	}
	return strings.Join(out, "\n")
}

func (v *Viewer) header() string {
	title := v.opts.Title
	if title == "" {
		title = "vlist"
	}
	meta := fmt.Sprintf("%d items", len(v.records))
	if first, last, ok := v.list.Window(); ok {
		meta += fmt.Sprintf(" · window %d–%d · margin %d", max(first, 0)+1, min(last+1, len(v.records)), v.list.Margin())
	}
	if v.filter != "" {
		meta += " · filter " + strconv.Quote(v.filter)
	}
	return v.theme.Title.Render(components.ClampTextWidth(title, v.width)) + "\n" +
		v.theme.Meta.Render(components.ClampTextWidth(meta, v.width))
}

func (v *Viewer) footer() string {
	hints := make([]string, 0, len(v.keys.shortHelp())+1)
	for _, b := range v.keys.shortHelp() {
		hints = append(hints, components.Hint(b.Help().Key, b.Help().Desc))
	}
	hints = append(hints, components.Position(v.cursor.Selected(), len(v.records)))
	return components.StatusBar(hints, v.width)
}

func (v *Viewer) chromeHeight() int {
	return lipgloss.Height(v.header()) + lipgloss.Height(v.footer())
}

// List exposes the underlying list for inspection.
func (v *Viewer) List() *vlist.List[source.Record, *Row] {
	return v.list
}
