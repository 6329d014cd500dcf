// Package tui is the terminal presentation layer of the seating widget. It
// renders the section grids and wires key presses to the selection and
// booking components; all seat-state rules live in the seating package.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"seatgrid-cli/config"
	"seatgrid-cli/model"
	"seatgrid-cli/seating"
	"seatgrid-cli/store"
)

type appState int

const (
	stateSelectTheater appState = iota
	stateLoadingSeats
	stateSeatMap
	stateError
)

// KVFactory builds the persistence collaborator for one theater. Injected so
// the widget never reaches for an ambient store handle.
type KVFactory func(theaterID string) (store.KV, error)

type appModel struct {
	cfg      *config.Config
	logger   *zap.Logger
	newKV    KVFactory
	theaters []model.TheaterConfig

	state     appState
	lastState appState
	err       error

	width  int
	height int

	theaterList list.Model
	spinner     spinner.Model

	theater   model.TheaterConfig
	seats     *seating.Store
	selector  *seating.Selector
	committer *seating.Committer
	notifier  *seating.Notifier
	changes   chan struct{}

	cursor          gridCursor
	showSeatNumbers bool
}

type gridCursor struct {
	section int
	row     int
	col     int
}

type errMsg struct {
	err error
}

type seatsLoadedMsg struct {
	seats *seating.Store
	err   error
}

type seatsChangedMsg struct{}

type notifExpiredMsg struct{}

type theaterItem struct {
	theater model.TheaterConfig
}

func (t theaterItem) Title() string { return t.theater.Name }
func (t theaterItem) Description() string {
	cells := 0
	for _, section := range t.theater.Layout.Sections {
		cells += section.Rows * section.Cols
	}
	return fmt.Sprintf("%d sections • %d cells", len(t.theater.Layout.Sections), cells)
}
func (t theaterItem) FilterValue() string { return strings.ToLower(t.theater.Name) }

// New builds the root model. The theater list is the entry screen; picking a
// theater loads (or initializes) its seat collection.
func New(cfg *config.Config, logger *zap.Logger, theaters []model.TheaterConfig, newKV KVFactory) tea.Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := appModel{
		cfg:      cfg,
		logger:   logger,
		newKV:    newKV,
		theaters: theaters,
		state:    stateSelectTheater,
	}

	m.theaterList = newList("Select Theater")
	items := make([]list.Item, 0, len(theaters))
	for _, theater := range theaters {
		items = append(items, theaterItem{theater: theater})
	}
	m.theaterList.SetItems(items)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	m.spinner = sp

	m.showSeatNumbers = true
	m.notifier = seating.NewNotifier(cfg.NotificationDuration())
	m.changes = make(chan struct{}, 1)

	return m
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeLists()
		return m, nil

	case tea.KeyMsg:
		next, cmd, handled := m.handleKey(msg)
		if handled {
			return next, cmd
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.state == stateLoadingSeats {
			return m, cmd
		}
		return m, nil

	case errMsg:
		m.err = msg.err
		m.lastState = recoverStateFrom(m.state)
		m.state = stateError
		return m, nil

	case seatsLoadedMsg:
		if msg.err != nil {
			return m, errCmd(msg.err)
		}
		m.seats = msg.seats
		m.selector = seating.NewSelector(m.seats, m.notifier, m.cfg.MaxSelectableSeats)
		m.committer = seating.NewCommitter(m.seats)
		m.seats.Subscribe(m.signalChange)
		m.cursor = firstSeatCursor(m.theater.Layout)
		m.state = stateSeatMap
		return m, waitForChange(m.changes)

	case seatsChangedMsg:
		// State already mutated; re-render and keep listening.
		return m, waitForChange(m.changes)

	case notifExpiredMsg:
		return m, nil
	}

	if m.state == stateSelectTheater {
		var cmd tea.Cmd
		m.theaterList, cmd = m.theaterList.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m appModel) View() string {
	header := m.headerView()
	switch m.state {
	case stateSelectTheater:
		return header + "\n\n" + m.theaterList.View()
	case stateLoadingSeats:
		return header + "\n\n" + fmt.Sprintf("%s Loading seating layout\n\n%s",
			m.spinner.View(), hint("Restoring saved selection..."))
	case stateSeatMap:
		return header + "\n\n" + m.renderSeatMap()
	case stateError:
		return header + "\n\n" +
			lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Render(m.err.Error()) +
			"\n\n" + hint("Press esc to go back or ctrl+c to quit.")
	default:
		return header
	}
}

func (m appModel) headerView() string {
	title := lipgloss.NewStyle().Bold(true).Render("Seatgrid")
	var sub []string
	if m.theater.Name != "" && m.state != stateSelectTheater {
		sub = append(sub, fmt.Sprintf("Theater: %s", m.theater.Name))
	}
	if m.state == stateSeatMap && m.selector != nil {
		sub = append(sub, fmt.Sprintf("Selected: %d/%d", m.selector.SelectedCount(), m.selector.MaxSeats()))
		if total := m.selector.SelectedTotal(); total > 0 {
			sub = append(sub, fmt.Sprintf("Total: %d", total))
		}
	}
	meta := strings.Join(sub, " • ")
	if meta != "" {
		meta = "\n" + lipgloss.NewStyle().Faint(true).Render(meta)
	}

	hints := "ctrl+c quit • enter select"
	if m.state == stateSeatMap {
		hints = "ctrl+c quit • esc back • arrows/hjkl move • space/enter toggle seat • b book • n toggle numbers"
	}
	return title + meta + "\n" + hint(hints)
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.notifier.Close()
		return m, tea.Quit, true
	case "esc":
		next, cmd := m.goBack()
		return next, cmd, true
	case "n":
		if m.state == stateSeatMap {
			m.showSeatNumbers = !m.showSeatNumbers
			return m, nil, true
		}
	case "up", "k":
		if m.state == stateSeatMap {
			m.moveCursor(-1, 0)
			return m, nil, true
		}
	case "down", "j":
		if m.state == stateSeatMap {
			m.moveCursor(1, 0)
			return m, nil, true
		}
	case "left", "h":
		if m.state == stateSeatMap {
			m.moveCursor(0, -1)
			return m, nil, true
		}
	case "right", "l":
		if m.state == stateSeatMap {
			m.moveCursor(0, 1)
			return m, nil, true
		}
	case " ", "space":
		if m.state == stateSeatMap {
			return m.toggleAtCursor()
		}
	case "b":
		if m.state == stateSeatMap {
			return m.bookSelection()
		}
	}

	if msg.Type == tea.KeyEnter {
		switch m.state {
		case stateSelectTheater:
			item, ok := m.theaterList.SelectedItem().(theaterItem)
			if !ok {
				return m, nil, true
			}
			m.theater = item.theater
			m.state = stateLoadingSeats
			return m, tea.Batch(m.loadSeatsCmd(item.theater), m.spinner.Tick), true
		case stateSeatMap:
			return m.toggleAtCursor()
		}
	}
	return m, nil, false
}

func (m appModel) toggleAtCursor() (tea.Model, tea.Cmd, bool) {
	section := m.theater.Layout.Sections[m.cursor.section]
	m.selector.Toggle(section.ID, m.cursor.row, m.cursor.col)
	return m, m.notifTickCmd(), true
}

func (m appModel) bookSelection() (tea.Model, tea.Cmd, bool) {
	count := m.selector.SelectedCount()
	m.committer.Commit()
	if count > 0 {
		m.notifier.Show(fmt.Sprintf("Booked %d seat(s). Enjoy the show!", count))
		m.logger.Info("booked seats",
			zap.String("theater", m.theater.ID), zap.Int("count", count))
	}
	return m, m.notifTickCmd(), true
}

// notifTickCmd schedules a re-render just after the notification expires so
// the cleared slot actually disappears from the screen.
func (m appModel) notifTickCmd() tea.Cmd {
	return tea.Tick(m.cfg.NotificationDuration()+50*time.Millisecond, func(time.Time) tea.Msg {
		return notifExpiredMsg{}
	})
}

func (m appModel) goBack() (tea.Model, tea.Cmd) {
	switch m.state {
	case stateSeatMap, stateLoadingSeats:
		m.notifier.Close()
		m.notifier = seating.NewNotifier(m.cfg.NotificationDuration())
		m.seats = nil
		m.selector = nil
		m.committer = nil
		m.theater = model.TheaterConfig{}
		m.state = stateSelectTheater
	case stateError:
		m.state = m.lastState
	}
	return m, nil
}

func (m *appModel) moveCursor(dRow, dCol int) {
	layout := m.theater.Layout
	if layout == nil || len(layout.Sections) == 0 {
		return
	}
	cur := m.cursor
	section := layout.Sections[cur.section]

	if dCol != 0 {
		cur.col = clamp(cur.col+dCol, 0, section.Cols-1)
		m.cursor = cur
		return
	}

	cur.row += dRow
	if cur.row < 0 {
		if cur.section > 0 {
			cur.section--
			prev := layout.Sections[cur.section]
			cur.row = prev.Rows - 1
			cur.col = clamp(cur.col, 0, prev.Cols-1)
		} else {
			cur.row = 0
		}
	} else if cur.row >= section.Rows {
		if cur.section < len(layout.Sections)-1 {
			cur.section++
			next := layout.Sections[cur.section]
			cur.row = 0
			cur.col = clamp(cur.col, 0, next.Cols-1)
		} else {
			cur.row = section.Rows - 1
		}
	}
	m.cursor = cur
}

// firstSeatCursor places the cursor on the first interactive cell so the user
// does not start on a gap.
func firstSeatCursor(layout *model.Layout) gridCursor {
	if layout == nil {
		return gridCursor{}
	}
	for si, section := range layout.Sections {
		for r := 0; r < section.Rows; r++ {
			for c := 0; c < section.Cols; c++ {
				if seating.LabelFor(&section, r, c) != "" {
					return gridCursor{section: si, row: r, col: c}
				}
			}
		}
	}
	return gridCursor{}
}

func (m appModel) loadSeatsCmd(theater model.TheaterConfig) tea.Cmd {
	return func() tea.Msg {
		kv, err := m.newKV(theater.ID)
		if err != nil {
			return seatsLoadedMsg{err: err}
		}
		seats := seating.New(kv, theater.Layout, theater.ID, m.logger)
		seats.Load(context.Background())
		if len(seats.Seats()) == 0 {
			return seatsLoadedMsg{err: fmt.Errorf("theater %q has no seats configured", theater.Name)}
		}
		return seatsLoadedMsg{seats: seats}
	}
}

// signalChange is the store subscriber; it nudges the change channel without
// blocking the mutating call.
func (m appModel) signalChange() {
	select {
	case m.changes <- struct{}{}:
	default:
	}
}

func waitForChange(ch chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-ch
		return seatsChangedMsg{}
	}
}

func (m *appModel) resizeLists() {
	if m.width == 0 || m.height == 0 {
		return
	}
	h := m.height - 6
	if h < 6 {
		h = 6
	}
	m.theaterList.SetSize(m.width, h)
}

func newList(title string) list.Model {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = true
	l := list.New([]list.Item{}, delegate, 0, 0)
	l.Title = title
	l.SetFilteringEnabled(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	return l
}

func hint(text string) string {
	return lipgloss.NewStyle().Faint(true).Render(text)
}

func errCmd(err error) tea.Cmd {
	return func() tea.Msg {
		return errMsg{err: err}
	}
}

func recoverStateFrom(state appState) appState {
	switch state {
	case stateLoadingSeats, stateSeatMap:
		return stateSelectTheater
	default:
		return state
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
