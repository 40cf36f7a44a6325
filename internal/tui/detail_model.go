package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/FarahAbbdi/mission/internal/app"
	"github.com/FarahAbbdi/mission/internal/models"
	"github.com/FarahAbbdi/mission/internal/optimistic"
	"github.com/FarahAbbdi/mission/internal/parser"
	"github.com/FarahAbbdi/mission/internal/status"
	"github.com/FarahAbbdi/mission/internal/store"
)

// viewerRole is decided only after both the session user and the mission
// row are resolved; until then the page shows a loading state instead of
// guessing.
type viewerRole int

const (
	roleUnknown viewerRole = iota
	roleOwner
	roleWatcher
)

// detailMode is what the page is currently showing on top of the mission.
type detailMode int

const (
	modeView detailMode = iota
	modeAddMilestone
	modeAddLog
	modeAddWatcher
	modeConfirmDelete
)

// DetailModel renders one mission: header, watcher chips, milestones
// grouped by bucket, and per-milestone logs. Affordances depend on the
// viewer's role and the mission's lock state.
type DetailModel struct {
	app       *app.App
	missionID string
	width     int
	height    int

	today   string
	loadSeq int
	loading bool
	err     error

	viewerID string
	role     viewerRole
	mission  *models.Mission

	watchers   []models.Watcher
	profiles   map[string]models.Profile
	milestones []models.Milestone
	logs       map[string][]models.Log

	selected  int
	actionErr string

	// In-flight optimistic mutations, keyed by op id. A failure message
	// restores the snapshot; a success discards it.
	nextOp    int
	rollbacks map[int]optimistic.Rollback[models.Milestone]

	mode detailMode
	form *form

	markdown *glamour.TermRenderer

	// Outcome flags read by the command after the program exits.
	Deleted        bool
	StoppedWatching bool
}

type detailLoadedMsg struct {
	seq        int
	viewerID   string
	mission    *models.Mission
	watchers   []models.Watcher
	profiles   map[string]models.Profile
	milestones []models.Milestone
	logs       map[string][]models.Log
	err        error
}

// milestoneWriteMsg completes an optimistic milestone toggle or delete.
type milestoneWriteMsg struct {
	seq int
	op  int
	err error
}

// milestoneCreatedMsg merges the server-returned row into local state so
// server-generated fields (id, created_at) are picked up without a refetch.
type milestoneCreatedMsg struct {
	seq       int
	milestone *models.Milestone
	err       error
}

type logCreatedMsg struct {
	seq int
	log *models.Log
	err error
}

type watcherAddedMsg struct {
	seq     int
	watcher *models.Watcher
	profile *models.Profile
	err     error
}

// missionWriteMsg completes a mission-level action: complete, delete, or
// stop watching.
type missionWriteMsg struct {
	seq    int
	action string
	err    error
}

// NewDetailModel creates the detail page model for one mission.
func NewDetailModel(a *app.App, missionID string) DetailModel {
	md, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(72),
	)
	if err != nil {
		md = nil
	}
	return DetailModel{
		app:       a,
		missionID: missionID,
		today:     a.Today(),
		loading:   true,
		rollbacks: map[int]optimistic.Rollback[models.Milestone]{},
		profiles:  map[string]models.Profile{},
		logs:      map[string][]models.Log{},
		markdown:  md,
	}
}

// Init starts the first load.
func (m DetailModel) Init() tea.Cmd {
	return loadDetailCmd(m.app, m.missionID, 0)
}

// loadDetailCmd resolves the viewer first, then the mission, then the
// secondary lists. Watcher, profile, and log failures degrade to empty
// with a warning; the mission itself is required.
func loadDetailCmd(a *app.App, missionID string, seq int) tea.Cmd {
	return func() tea.Msg {
		viewerID, err := a.Auth.CurrentUser()
		if err != nil {
			return detailLoadedMsg{seq: seq, err: err}
		}

		mission, err := a.Store.GetMission(missionID)
		if err != nil {
			return detailLoadedMsg{seq: seq, viewerID: viewerID, err: err}
		}

		if mission.OwnerID != viewerID {
			watching, err := a.Store.IsWatching(missionID, viewerID)
			if err != nil {
				return detailLoadedMsg{seq: seq, viewerID: viewerID, err: err}
			}
			if !watching {
				return detailLoadedMsg{seq: seq, viewerID: viewerID,
					err: fmt.Errorf("mission %s: %w", missionID, store.ErrNotFound)}
			}
		}

		watchers, err := a.Store.ListWatchers(missionID)
		if err != nil {
			a.Log.Warn("watcher list load failed", zap.Error(err))
			watchers = nil
		}

		ids := make([]string, 0, len(watchers))
		for _, w := range watchers {
			ids = append(ids, w.WatcherID)
		}
		profiles, err := a.Store.GetProfiles(ids)
		if err != nil {
			a.Log.Warn("profile lookup failed", zap.Error(err))
			profiles = map[string]models.Profile{}
		}

		milestones, err := a.Store.ListMilestones(missionID)
		if err != nil {
			return detailLoadedMsg{seq: seq, viewerID: viewerID, mission: mission, err: err}
		}

		milestoneIDs := make([]string, 0, len(milestones))
		for _, ms := range milestones {
			milestoneIDs = append(milestoneIDs, ms.ID)
		}
		logs, err := a.Store.ListLogsByMilestones(milestoneIDs)
		if err != nil {
			a.Log.Warn("log list load failed", zap.Error(err))
			logs = map[string][]models.Log{}
		}

		return detailLoadedMsg{
			seq:        seq,
			viewerID:   viewerID,
			mission:    mission,
			watchers:   watchers,
			profiles:   profiles,
			milestones: milestones,
			logs:       logs,
		}
	}
}

// isOwner reports whether the resolved viewer owns the mission.
func (m DetailModel) isOwner() bool {
	return m.role == roleOwner
}

// canMutateMilestones gates toggle/add/log: owner only, and never once the
// mission is locked. Deletion is gated on ownership alone.
func (m DetailModel) canMutateMilestones() bool {
	return m.isOwner() && m.mission != nil && !status.MissionLocked(m.mission.Status)
}

// visibleMilestones returns the milestones in render order: active,
// completed, unsatisfied.
func (m DetailModel) visibleMilestones() []models.Milestone {
	locked := m.mission != nil && status.MissionLocked(m.mission.Status)
	groups := status.GroupMilestones(m.milestones, locked, m.today)
	out := make([]models.Milestone, 0, len(m.milestones))
	for _, b := range []status.Bucket{status.BucketActive, status.BucketCompleted, status.BucketUnsatisfied} {
		out = append(out, groups[b]...)
	}
	return out
}

func (m DetailModel) selectedMilestone() (models.Milestone, bool) {
	rows := m.visibleMilestones()
	if len(rows) == 0 || m.selected >= len(rows) {
		return models.Milestone{}, false
	}
	return rows[m.selected], true
}

// Update handles messages
func (m DetailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case detailLoadedMsg:
		if msg.seq != m.loadSeq {
			// A newer load superseded this response.
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.viewerID = msg.viewerID
		m.mission = msg.mission
		m.watchers = msg.watchers
		m.profiles = msg.profiles
		m.milestones = msg.milestones
		m.logs = msg.logs
		if m.viewerID == m.mission.OwnerID {
			m.role = roleOwner
		} else {
			m.role = roleWatcher
		}
		if m.selected >= len(m.milestones) {
			m.selected = 0
		}
		return m, nil

	case milestoneWriteMsg:
		rollback, ok := m.rollbacks[msg.op]
		delete(m.rollbacks, msg.op)
		if msg.seq != m.loadSeq {
			return m, nil
		}
		if msg.err != nil && ok {
			m.milestones = rollback()
			m.actionErr = msg.err.Error()
		}
		return m, nil

	case milestoneCreatedMsg:
		if msg.seq != m.loadSeq {
			return m, nil
		}
		if msg.err != nil {
			m.actionErr = msg.err.Error()
			return m, nil
		}
		m.milestones = append(m.milestones, *msg.milestone)
		return m, nil

	case logCreatedMsg:
		if msg.seq != m.loadSeq {
			return m, nil
		}
		if msg.err != nil {
			m.actionErr = msg.err.Error()
			return m, nil
		}
		m.logs[msg.log.MilestoneID] = append([]models.Log{*msg.log}, m.logs[msg.log.MilestoneID]...)
		return m, nil

	case watcherAddedMsg:
		if msg.seq != m.loadSeq {
			return m, nil
		}
		if msg.err != nil {
			m.actionErr = watcherErrMessage(msg.err)
			return m, nil
		}
		m.watchers = append(m.watchers, *msg.watcher)
		if msg.profile != nil {
			m.profiles[msg.profile.ID] = *msg.profile
		}
		return m, nil

	case missionWriteMsg:
		if msg.seq != m.loadSeq {
			return m, nil
		}
		if msg.err != nil {
			m.actionErr = msg.err.Error()
			// A failed complete rolls the optimistic status back.
			if msg.action == "complete" && m.mission != nil {
				m.mission.Status = models.MissionActive
			}
			return m, nil
		}
		switch msg.action {
		case "delete":
			m.Deleted = true
			return m, tea.Quit
		case "stop-watching":
			m.StoppedWatching = true
			return m, tea.Quit
		}
		return m, nil

	case tea.KeyMsg:
		if m.mode != modeView {
			return m.updateModal(msg)
		}
		return m.updateView(msg)
	}

	return m, nil
}

// updateView handles keys on the main page.
func (m DetailModel) updateView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := m.visibleMilestones()

	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit

	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
		return m, nil

	case "down", "j":
		if m.selected < len(rows)-1 {
			m.selected++
		}
		return m, nil

	case "r":
		m.loading = true
		m.loadSeq++
		m.today = m.app.Today()
		m.actionErr = ""
		m.rollbacks = map[int]optimistic.Rollback[models.Milestone]{}
		return m, loadDetailCmd(m.app, m.missionID, m.loadSeq)

	case "x", " ":
		if !m.canMutateMilestones() {
			return m, nil
		}
		ms, ok := m.selectedMilestone()
		if !ok {
			return m, nil
		}
		return m.toggleMilestone(ms)

	case "d":
		if !m.isOwner() {
			return m, nil
		}
		ms, ok := m.selectedMilestone()
		if !ok {
			return m, nil
		}
		return m.deleteMilestone(ms)

	case "a":
		if !m.canMutateMilestones() {
			return m, nil
		}
		m.mode = modeAddMilestone
		m.actionErr = ""
		m.form = newForm("ADD MILESTONE",
			newFormField("Milestone Name", "Enter milestone name", true),
			newFormField("Deadline", "yyyy-mm-dd, dd/mm/yyyy, 2 weeks", true),
			newFormField("Notes", "Add details or context", false),
			newFormField("Priority", "low / medium / high (default medium)", false),
		)
		return m, nil

	case "l":
		if !m.canMutateMilestones() {
			return m, nil
		}
		if _, ok := m.selectedMilestone(); !ok {
			return m, nil
		}
		m.mode = modeAddLog
		m.actionErr = ""
		m.form = newForm("ADD LOG",
			newFormField("Log", "What happened?", true),
		)
		return m, nil

	case "w":
		if !m.isOwner() {
			return m, nil
		}
		m.mode = modeAddWatcher
		m.actionErr = ""
		m.form = newForm("ADD WATCHER",
			newFormField("Watcher Email", "e.g. alex@gmail.com", true),
		)
		return m, nil

	case "c":
		if !m.isOwner() || m.mission == nil || status.MissionLocked(m.mission.Status) {
			return m, nil
		}
		// Optimistic: flip the header immediately, roll back on failure.
		m.mission.Status = models.MissionCompleted
		m.actionErr = ""
		seq := m.loadSeq
		a, ownerID, id := m.app, m.viewerID, m.missionID
		return m, func() tea.Msg {
			err := a.Store.SetMissionStatus(ownerID, id, models.MissionCompleted)
			return missionWriteMsg{seq: seq, action: "complete", err: err}
		}

	case "D":
		if !m.isOwner() {
			return m, nil
		}
		m.mode = modeConfirmDelete
		return m, nil

	case "s":
		if m.role != roleWatcher {
			return m, nil
		}
		seq := m.loadSeq
		a, missionID, viewerID := m.app, m.missionID, m.viewerID
		return m, func() tea.Msg {
			err := a.Store.RemoveWatcher(missionID, viewerID)
			return missionWriteMsg{seq: seq, action: "stop-watching", err: err}
		}
	}

	return m, nil
}

// toggleMilestone applies the status flip locally and issues the scoped
// write; milestoneWriteMsg rolls it back if the write fails.
func (m DetailModel) toggleMilestone(ms models.Milestone) (tea.Model, tea.Cmd) {
	newStatus := models.MilestoneCompleted
	if ms.Status == models.MilestoneCompleted {
		newStatus = models.MilestoneActive
	}

	next, rollback := optimistic.Begin(m.milestones,
		optimistic.UpdateByID(ms.ID, milestoneID, func(v models.Milestone) models.Milestone {
			v.Status = newStatus
			return v
		}))
	m.milestones = next
	m.actionErr = ""

	op := m.nextOp
	m.nextOp++
	m.rollbacks[op] = rollback

	seq := m.loadSeq
	a, missionID, id := m.app, m.missionID, ms.ID
	return m, func() tea.Msg {
		err := a.Store.SetMilestoneStatus(missionID, id, newStatus)
		return milestoneWriteMsg{seq: seq, op: op, err: err}
	}
}

// deleteMilestone removes the row locally and issues the scoped delete;
// on failure the row reappears in its original position.
func (m DetailModel) deleteMilestone(ms models.Milestone) (tea.Model, tea.Cmd) {
	next, rollback := optimistic.Begin(m.milestones,
		optimistic.RemoveByID(ms.ID, milestoneID))
	m.milestones = next
	m.actionErr = ""
	if m.selected >= len(m.visibleMilestones()) && m.selected > 0 {
		m.selected--
	}

	op := m.nextOp
	m.nextOp++
	m.rollbacks[op] = rollback

	seq := m.loadSeq
	a, missionID, id := m.app, m.missionID, ms.ID
	return m, func() tea.Msg {
		err := a.Store.DeleteMilestone(missionID, id)
		return milestoneWriteMsg{seq: seq, op: op, err: err}
	}
}

func milestoneID(ms models.Milestone) string { return ms.ID }

// updateModal handles keys while a form or confirmation is open.
func (m DetailModel) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.mode == modeConfirmDelete {
		switch msg.String() {
		case "y", "Y":
			m.mode = modeView
			seq := m.loadSeq
			a, ownerID, id := m.app, m.viewerID, m.missionID
			return m, func() tea.Msg {
				err := a.Store.DeleteMission(ownerID, id)
				return missionWriteMsg{seq: seq, action: "delete", err: err}
			}
		case "n", "N", "esc":
			m.mode = modeView
			return m, nil
		}
		return m, nil
	}

	cmd := m.form.Update(msg)
	if m.form.cancelled {
		m.mode = modeView
		m.form = nil
		return m, nil
	}
	if !m.form.submitted {
		return m, cmd
	}

	mode := m.mode
	f := m.form
	m.mode = modeView
	m.form = nil

	switch mode {
	case modeAddMilestone:
		return m.submitMilestone(f)
	case modeAddLog:
		return m.submitLog(f)
	case modeAddWatcher:
		return m.submitWatcher(f)
	}
	return m, nil
}

func (m DetailModel) submitMilestone(f *form) (tea.Model, tea.Cmd) {
	deadline, err := parser.ParseDate(f.value(1), func() string { return m.today })
	if err != nil {
		m.actionErr = err.Error()
		return m, nil
	}
	req := store.CreateMilestoneRequest{
		MissionID: m.missionID,
		Name:      f.value(0),
		Notes:     f.value(2),
		Deadline:  deadline,
		Priority:  parser.NormalizePriority(f.value(3)),
	}
	seq := m.loadSeq
	a := m.app
	return m, func() tea.Msg {
		ms, err := a.Store.CreateMilestone(req)
		return milestoneCreatedMsg{seq: seq, milestone: ms, err: err}
	}
}

func (m DetailModel) submitLog(f *form) (tea.Model, tea.Cmd) {
	ms, ok := m.selectedMilestone()
	if !ok {
		return m, nil
	}
	content := f.value(0)
	seq := m.loadSeq
	a := m.app
	return m, func() tea.Msg {
		log, err := a.Store.CreateLog(ms.ID, content)
		return logCreatedMsg{seq: seq, log: log, err: err}
	}
}

func (m DetailModel) submitWatcher(f *form) (tea.Model, tea.Cmd) {
	email := f.value(0)
	if !strings.Contains(email, "@") {
		m.actionErr = "Please enter a valid email."
		return m, nil
	}
	seq := m.loadSeq
	a, missionID := m.app, m.missionID
	return m, func() tea.Msg {
		profile, err := a.Store.GetProfileByEmail(email)
		if err != nil {
			return watcherAddedMsg{seq: seq, err: err}
		}
		if err := a.Store.AddWatcher(missionID, profile.ID); err != nil {
			return watcherAddedMsg{seq: seq, err: err}
		}
		return watcherAddedMsg{
			seq:     seq,
			watcher: &models.Watcher{MissionID: missionID, WatcherID: profile.ID},
			profile: profile,
		}
	}
}

// watcherErrMessage maps the unique-pair violation to its friendly form.
func watcherErrMessage(err error) string {
	if errors.Is(err, store.ErrAlreadyWatching) {
		return "That user is already watching this mission."
	}
	if errors.Is(err, store.ErrNotFound) {
		return "No account with that email. This user must already have an account."
	}
	return err.Error()
}

// View renders the page
func (m DetailModel) View() string {
	if m.loading || m.role == roleUnknown {
		return loadingView("LOADING MISSION")
	}
	if m.err != nil {
		return errorView(m.err.Error())
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	if m.isOwner() {
		b.WriteString(m.renderWatcherChips())
	}
	b.WriteString("\n")
	b.WriteString(m.renderMilestones())

	if m.actionErr != "" {
		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorError)).
			Render("ERROR: " + m.actionErr))
		b.WriteString("\n")
	}
	b.WriteString(m.renderHelp())

	page := lipgloss.NewStyle().Padding(1, 2).Render(b.String())
	if m.mode == modeConfirmDelete {
		return page + "\n" + lipgloss.NewStyle().Padding(0, 2).Render(
			lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorWarning)).
				Render("Delete this mission and everything in it? (y/n)"))
	}
	if m.form != nil {
		return page + "\n" + lipgloss.NewStyle().Padding(0, 2).Render(m.form.View())
	}
	return page
}

func (m DetailModel) renderHeader() string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccentBright)).
		Render(m.mission.Name)

	label := status.MissionLabel(m.mission.Status)
	pill := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(statusColor(label))).
		Render("[" + label + "]")

	dates := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText)).
		Render(parser.FormatDateRange(m.mission.StartDate, m.mission.EndDate))

	out := title + "  " + pill + "\n" + dates + "\n"
	if m.mission.Description != "" {
		out += m.renderDescription()
	}
	return out
}

// renderDescription runs the free-text description through glamour so
// markdown written in the field reads well.
func (m DetailModel) renderDescription() string {
	if m.markdown != nil {
		if out, err := m.markdown.Render(m.mission.Description); err == nil {
			return out
		}
	}
	return m.mission.Description + "\n"
}

func (m DetailModel) renderWatcherChips() string {
	if len(m.watchers) == 0 {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDisabledText)).
			Render("no watchers yet") + "\n"
	}
	chipStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(0, 1)

	chips := make([]string, 0, len(m.watchers))
	for _, w := range m.watchers {
		name := models.PlaceholderName(w.WatcherID)
		if p, ok := m.profiles[w.WatcherID]; ok {
			name = p.DisplayName()
		}
		chips = append(chips, chipStyle.Render(name))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, chips...) + "\n"
}

func (m DetailModel) renderMilestones() string {
	locked := status.MissionLocked(m.mission.Status)
	groups := status.GroupMilestones(m.milestones, locked, m.today)

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorPrimaryText))
	subStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	emptyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText))

	var b strings.Builder
	b.WriteString(titleStyle.Render("MILESTONES"))
	b.WriteString("\n")

	cursor := 0
	for _, bucket := range []status.Bucket{status.BucketActive, status.BucketCompleted, status.BucketUnsatisfied} {
		rows := groups[bucket]
		b.WriteString(subStyle.Render("  " + bucket.Label()))
		b.WriteString("\n")
		if len(rows) == 0 {
			b.WriteString(emptyStyle.Render("    no " + strings.ToLower(bucket.Label()) + " milestones yet"))
			b.WriteString("\n")
			continue
		}
		for _, ms := range rows {
			b.WriteString(m.renderMilestoneLine(ms, cursor == m.selected))
			b.WriteString("\n")
			if ms.Notes != "" {
				b.WriteString(subStyle.Render("        " + ms.Notes))
				b.WriteString("\n")
			}
			for _, log := range m.logs[ms.ID] {
				b.WriteString(subStyle.Render("        · " + log.Content))
				b.WriteString("\n")
			}
			cursor++
		}
	}
	return b.String()
}

func (m DetailModel) renderMilestoneLine(ms models.Milestone, selected bool) string {
	check := "[ ]"
	if ms.Status == models.MilestoneCompleted {
		check = "[x]"
	}
	// Watchers get a read-only row: no checkbox affordance at all.
	if !m.isOwner() {
		check = "   "
	}

	line := fmt.Sprintf("    %s %s  %s  %s  %d logs",
		check,
		ms.Name,
		parser.FormatDeadline(ms.Deadline, m.today),
		strings.ToUpper(ms.Priority),
		len(m.logs[ms.ID]))

	if selected {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorAccentMain)).
			Bold(true).
			Render("  > " + strings.TrimPrefix(line, "    "))
	}
	return line
}

// renderHelp shows only the actions the viewer can actually take.
func (m DetailModel) renderHelp() string {
	var actions []string
	if m.canMutateMilestones() {
		actions = append(actions, "x: toggle", "a: add milestone", "l: add log")
	}
	if m.isOwner() {
		actions = append(actions, "d: delete milestone", "w: add watcher")
		if !status.MissionLocked(m.mission.Status) {
			actions = append(actions, "c: complete mission")
		}
		actions = append(actions, "D: delete mission")
	}
	if m.role == roleWatcher {
		actions = append(actions, "s: stop watching")
	}
	actions = append(actions, "r: reload", "q: back")

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Render(strings.Join(actions, " • "))
}

func statusColor(label string) string {
	switch label {
	case "COMPLETED":
		return ColorSuccess
	case "UNSATISFIED":
		return ColorWarning
	default:
		return ColorActive
	}
}
