// Package gallery provides the paginated catalogue browser view for the TUI.
package gallery

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/galleria-labs/galleria-cli/internal/adapters/driving/tui/keymap"
	"github.com/galleria-labs/galleria-cli/internal/adapters/driving/tui/messages"
	"github.com/galleria-labs/galleria-cli/internal/adapters/driving/tui/styles"
	"github.com/galleria-labs/galleria-cli/internal/core/domain"
	"github.com/galleria-labs/galleria-cli/internal/core/ports/driving"
)

// View is the paginated catalogue browser with cross-page selection.
type View struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	gallery driving.GalleryService

	records []domain.Artwork
	meta    *domain.PaginationMeta
	cursor  int

	pager      paginator.Model
	spin       spinner.Model
	prompt     textinput.Model
	promptOpen bool // bulk selection prompt is open

	loading      bool
	bulkRunning  bool
	statusNotice string
	err          error

	width  int
	height int
	ready  bool
}

// NewView creates a new gallery view.
func NewView(s *styles.Styles, km *keymap.KeyMap, gallery driving.GalleryService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	pager := paginator.New()
	pager.Type = paginator.Dots
	pager.ActiveDot = s.Subtitle.Render("●")
	pager.InactiveDot = s.Muted.Render("○")

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = s.Subtitle

	prompt := textinput.New()
	prompt.Placeholder = "number of records"
	prompt.CharLimit = 9
	prompt.Width = 20

	return &View{
		styles:  s,
		keymap:  km,
		gallery: gallery,
		pager:   pager,
		spin:    spin,
		prompt:  prompt,
	}
}

// Init triggers the initial page load.
func (v *View) Init() tea.Cmd {
	return tea.Batch(v.loadPage(0), v.spin.Tick)
}

// loadPage returns a command that fetches the page containing the
// given zero-based record index at the current page size.
func (v *View) loadPage(firstIndex int) tea.Cmd {
	v.loading = true
	size := v.pageSize()
	return func() tea.Msg {
		err := v.gallery.ChangePage(context.Background(), firstIndex, size)
		return messages.PageLoaded{
			Page: v.gallery.Page(),
			Meta: v.gallery.Meta(),
			Err:  err,
		}
	}
}

// reload refetches the current page.
func (v *View) reload() tea.Cmd {
	v.loading = true
	return func() tea.Msg {
		err := v.gallery.Refresh(context.Background())
		return messages.PageLoaded{
			Page: v.gallery.Page(),
			Meta: v.gallery.Meta(),
			Err:  err,
		}
	}
}

// bulkSelect returns a command that runs the bulk selection walk.
func (v *View) bulkSelect(n int) tea.Cmd {
	v.bulkRunning = true
	return func() tea.Msg {
		result, err := v.gallery.BulkSelect(context.Background(), n)
		return messages.BulkSelectCompleted{
			Collected: result.Collected,
			Complete:  result.Complete,
			Err:       err,
		}
	}
}

// pageSize returns the page size of the last loaded page, or the default.
func (v *View) pageSize() int {
	if v.meta != nil && v.meta.Limit > 0 {
		return v.meta.Limit
	}
	return domain.DefaultPageSize
}

// Update handles messages for the gallery view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		if v.promptOpen {
			return v.handlePromptKey(msg)
		}
		return v.handleKey(msg)

	case spinner.TickMsg:
		if !v.loading && !v.bulkRunning {
			return v, nil
		}
		var cmd tea.Cmd
		v.spin, cmd = v.spin.Update(msg)
		return v, cmd

	case messages.PageLoaded:
		return v.handlePageLoaded(msg)

	case messages.SelectionToggled:
		// The reconciler needs the full checked set for the page, not
		// a delta; the toggle handler built it.
		if err := v.gallery.ReconcileSelection(msg.Checked); err != nil {
			v.err = err
		}
		return v, nil

	case messages.BulkSelectCompleted:
		return v.handleBulkCompleted(msg)

	case messages.ErrorOccurred:
		v.err = msg.Err
		return v, nil
	}

	return v, nil
}

// handlePageLoaded applies a navigation fetch outcome.
func (v *View) handlePageLoaded(msg messages.PageLoaded) (*View, tea.Cmd) {
	v.loading = false

	if msg.Err != nil {
		// Keep the stale records on screen; the user retries by
		// navigating again.
		v.err = msg.Err
		return v, nil
	}

	v.err = nil
	v.statusNotice = ""
	if msg.Page != nil {
		v.records = msg.Page.Artworks
	}
	v.meta = msg.Meta
	if v.cursor >= len(v.records) {
		v.cursor = 0
	}
	if v.meta != nil && v.meta.TotalPages > 0 {
		v.pager.SetTotalPages(v.meta.TotalPages)
		v.pager.Page = v.meta.CurrentPage - 1
	}
	return v, nil
}

// handleBulkCompleted applies a bulk walk outcome.
func (v *View) handleBulkCompleted(msg messages.BulkSelectCompleted) (*View, tea.Cmd) {
	v.bulkRunning = false

	switch {
	case msg.Err != nil && msg.Collected == 0:
		v.statusNotice = fmt.Sprintf("selection failed: %v", msg.Err)
	case !msg.Complete:
		// Partial success is not fatal: the collected prefix was applied.
		v.statusNotice = fmt.Sprintf("selected first %d records (walk stopped early)", msg.Collected)
	default:
		v.statusNotice = fmt.Sprintf("selected first %d records", msg.Collected)
	}
	return v, nil
}

// handleKey handles key presses in browsing mode.
func (v *View) handleKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	k := msg.String()

	switch {
	case keymap.Matches(k, v.keymap.Up):
		if v.cursor > 0 {
			v.cursor--
		}

	case keymap.Matches(k, v.keymap.Down):
		if v.cursor < len(v.records)-1 {
			v.cursor++
		}

	case keymap.Matches(k, v.keymap.Toggle):
		return v.toggleCursor()

	case keymap.Matches(k, v.keymap.NextPage):
		if v.meta != nil && v.meta.CurrentPage < v.meta.TotalPages {
			return v, v.loadPage(v.meta.Offset + v.meta.Limit)
		}

	case keymap.Matches(k, v.keymap.PrevPage):
		if v.meta != nil && v.meta.CurrentPage > 1 {
			return v, v.loadPage(v.meta.Offset - v.meta.Limit)
		}

	case keymap.Matches(k, v.keymap.Reload):
		return v, v.reload()

	case keymap.Matches(k, v.keymap.BulkSelect):
		if v.meta != nil {
			v.promptOpen = true
			v.prompt.SetValue("")
			v.prompt.Focus()
			return v, textinput.Blink
		}

	case keymap.Matches(k, v.keymap.ClearSelection):
		return v, func() tea.Msg {
			return messages.SelectionToggled{Checked: nil}
		}

	case keymap.Matches(k, v.keymap.Help):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewHelp}
		}
	}

	return v, nil
}

// toggleCursor flips the checkbox of the record under the cursor and
// reports the page's full checked set.
func (v *View) toggleCursor() (*View, tea.Cmd) {
	if v.cursor >= len(v.records) {
		return v, nil
	}
	toggled := v.records[v.cursor].ID

	var checked []domain.Artwork
	for i := range v.records {
		id := v.records[i].ID
		sel := v.gallery.IsSelected(id)
		if id == toggled {
			sel = !sel
		}
		if sel {
			checked = append(checked, v.records[i])
		}
	}

	return v, func() tea.Msg {
		return messages.SelectionToggled{Checked: checked}
	}
}

// handlePromptKey handles key presses while the bulk prompt is open.
func (v *View) handlePromptKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	k := msg.String()

	switch {
	case keymap.Matches(k, v.keymap.Cancel):
		v.promptOpen = false
		v.prompt.Blur()
		return v, nil

	case keymap.Matches(k, v.keymap.Confirm):
		v.promptOpen = false
		v.prompt.Blur()

		n, err := strconv.Atoi(strings.TrimSpace(v.prompt.Value()))
		if err != nil || n < 1 || (v.meta != nil && n > v.meta.Total) {
			// Invalid request: no-op, no network, no state change.
			v.statusNotice = fmt.Sprintf("enter a number between 1 and %d", v.total())
			return v, nil
		}
		return v, tea.Batch(v.bulkSelect(n), v.spin.Tick)
	}

	var cmd tea.Cmd
	v.prompt, cmd = v.prompt.Update(msg)
	return v, cmd
}

func (v *View) total() int {
	if v.meta == nil {
		return 0
	}
	return v.meta.Total
}

// View renders the gallery view.
func (v *View) View() string {
	var b strings.Builder

	title := "Galleria"
	if v.meta != nil {
		title = fmt.Sprintf("Galleria — %d artworks", v.meta.Total)
	}
	b.WriteString(v.styles.Title.Render(title))
	b.WriteString("\n\n")

	if v.promptOpen {
		b.WriteString(v.renderPrompt())
		return b.String()
	}

	if v.loading && len(v.records) == 0 {
		b.WriteString(v.spin.View())
		b.WriteString(v.styles.Muted.Render(" Loading catalogue..."))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
	}

	if len(v.records) == 0 {
		b.WriteString(v.styles.Muted.Render("No artworks to display."))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	b.WriteString(v.renderTable())
	b.WriteString("\n")

	if v.meta != nil && v.meta.TotalPages > 1 {
		b.WriteString("  ")
		b.WriteString(v.pager.View())
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  page %d of %d", v.meta.CurrentPage, v.meta.TotalPages)))
		b.WriteString("\n")
	}

	if v.bulkRunning {
		b.WriteString("\n")
		b.WriteString(v.spin.View())
		b.WriteString(v.styles.Warning.Render(" Walking catalogue pages..."))
		b.WriteString("\n")
	} else if v.statusNotice != "" {
		b.WriteString("\n")
		b.WriteString(v.styles.Subtitle.Render(v.statusNotice))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.renderHelp())

	return b.String()
}

// renderTable renders the record table with checkbox column.
func (v *View) renderTable() string {
	var b strings.Builder

	titleWidth := v.columnWidth(3)

	header := fmt.Sprintf("    %-8s  %-*s  %-*s  %s", "ID", titleWidth, "Title", titleWidth, "Artist", "Origin")
	b.WriteString(v.styles.Header.Render(header))
	b.WriteString("\n")

	for i := range v.records {
		b.WriteString(v.renderRow(i, &v.records[i], titleWidth))
		b.WriteString("\n")
	}

	return b.String()
}

// renderRow renders one record row.
func (v *View) renderRow(index int, art *domain.Artwork, titleWidth int) string {
	checkbox := "[ ]"
	if v.gallery.IsSelected(art.ID) {
		checkbox = "[x]"
	}

	title := truncate(art.Title, titleWidth)
	artist := truncate(firstLine(art.ArtistDisplay), titleWidth)
	origin := truncate(art.PlaceOfOrigin, titleWidth)

	line := fmt.Sprintf("%s %-8d  %-*s  %-*s  %s", checkbox, art.ID, titleWidth, title, titleWidth, artist, origin)

	if index == v.cursor {
		return v.styles.Selected.Render(line)
	}
	if v.gallery.IsSelected(art.ID) {
		return v.styles.Checked.Render(line)
	}
	return v.styles.Normal.Render(line)
}

// renderPrompt renders the bulk selection prompt overlay.
func (v *View) renderPrompt() string {
	var b strings.Builder

	b.WriteString(v.styles.Subtitle.Render("Select the first N records"))
	b.WriteString("\n\n")
	b.WriteString(v.styles.Muted.Render(fmt.Sprintf("Starting from page %d, up to %d records.", v.currentPage(), v.total())))
	b.WriteString("\n\n")
	b.WriteString(v.styles.InputField.Render(v.prompt.View()))
	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render("[enter] confirm  [esc] cancel"))

	return b.String()
}

func (v *View) currentPage() int {
	if v.meta == nil {
		return 1
	}
	return v.meta.CurrentPage
}

// renderHelp renders the help footer.
func (v *View) renderHelp() string {
	return v.styles.Help.Render("[space] toggle  [←/→] page  [a] select first N  [c] clear  [r] reload  [?] help  [q] quit")
}

// columnWidth divides the available width between the text columns.
func (v *View) columnWidth(columns int) int {
	w := (v.width - 20) / columns
	if w < 12 {
		w = 12
	}
	if w > 40 {
		w = 40
	}
	return w
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Records returns the currently displayed records.
func (v *View) Records() []domain.Artwork {
	return v.records
}

// Cursor returns the cursor index within the page.
func (v *View) Cursor() int {
	return v.cursor
}

// Meta returns the displayed pagination metadata.
func (v *View) Meta() *domain.PaginationMeta {
	return v.meta
}

// IsPromptOpen returns true if the bulk selection prompt is visible.
func (v *View) IsPromptOpen() bool {
	return v.promptOpen
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}

// truncate shortens s to at most max runes, with an ellipsis.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}

// firstLine cuts a multi-line attribution down to its first line.
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
