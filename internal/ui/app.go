package ui

import (
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rcalaglez/icv-lite/internal/app"
	"github.com/rcalaglez/icv-lite/internal/editor"
	"github.com/rcalaglez/icv-lite/internal/importer"
	"github.com/rcalaglez/icv-lite/internal/model"
	"github.com/rcalaglez/icv-lite/internal/notify"
	"github.com/rcalaglez/icv-lite/internal/schema"
	"github.com/rcalaglez/icv-lite/internal/store"
	"github.com/rcalaglez/icv-lite/internal/ui/components/dialog"
	"github.com/rcalaglez/icv-lite/internal/ui/components/editorform"
	"github.com/rcalaglez/icv-lite/internal/ui/components/profilelist"
	"github.com/rcalaglez/icv-lite/internal/ui/components/statusbar"
	"github.com/rcalaglez/icv-lite/internal/ui/keys"
	"github.com/rcalaglez/icv-lite/pkg/utils"
)

// ViewMode represents the active screen.
type ViewMode int

const (
	// ViewProfiles is the profile list screen.
	ViewProfiles ViewMode = iota
	// ViewEditor is the form/preview screen for one profile.
	ViewEditor
)

// DialogMode represents the current dialog being shown.
type DialogMode int

const (
	DialogNone DialogMode = iota
	DialogImport
	DialogExport
	DialogRename
	DialogTemplate
)

const (
	minAppWidth  = 40
	minAppHeight = 10
)

// App is the main application model.
type App struct {
	// Components
	profileList profilelist.Model
	form        editorform.Model
	statusBar   statusbar.Model
	inputDialog dialog.Input

	// State
	viewMode   ViewMode
	dialogMode DialogMode
	width      int
	height     int
	ready      bool
	quitting   bool

	// Editing
	session *editor.Session
	engine  *editor.Engine

	// Export captured when the dialog opens, so the list view can export
	// without an open session.
	exportDoc  model.Document
	exportName string

	configDir string
	config    *app.Config

	// Dependencies
	store     *store.JSONStore
	importSvc *importer.Service
	validator *schema.Validator
	notifier  *notify.Dispatcher
	logger    *slog.Logger
	keys      keys.KeyMap
}

// New creates a new application instance.
func New(s *store.JSONStore, svc *importer.Service, n *notify.Dispatcher, cfg *app.Config, configDir string, logger *slog.Logger) App {
	list := profilelist.New()
	list.SetFocused(true)
	list.SetProfiles(s.ListProfiles())
	if cfg != nil && cfg.LastProfileID != "" {
		list.SelectByID(cfg.LastProfileID)
	}

	return App{
		profileList: list,
		form:        editorform.New(),
		statusBar:   statusbar.New(),
		viewMode:    ViewProfiles,
		dialogMode:  DialogNone,
		store:       s,
		importSvc:   svc,
		validator:   schema.New(),
		notifier:    n,
		logger:      logger,
		keys:        keys.DefaultKeyMap(),
		config:      cfg,
		configDir:   configDir,
	}
}

// Init initializes the application.
func (a App) Init() tea.Cmd {
	return EngineTick()
}

// SetSize updates the window dimensions.
func (a *App) SetSize(width, height int) {
	a.width = width
	a.height = height
	a.ready = true

	a.statusBar.SetWidth(width)
	a.inputDialog.SetSize(width, height)

	listWidth := width * 60 / 100
	if listWidth < minAppWidth {
		listWidth = width
	}
	a.profileList.SetSize(listWidth, height-1)

	formWidth, _ := a.editorLayout()
	a.form.SetSize(formWidth, height-1)
}

// editorLayout returns the form and preview pane widths.
func (a *App) editorLayout() (int, int) {
	if a.session == nil || !a.session.Preview() {
		return a.width, 0
	}
	formWidth := a.width / 2
	if formWidth < minAppWidth {
		return a.width, 0
	}
	return formWidth, a.width - formWidth
}

func (a App) windowTooSmall() bool {
	return a.width < minAppWidth || a.height < minAppHeight
}

// openEditor opens an editing session for the given profile.
func (a *App) openEditor(profileID string) {
	sess := editor.OpenSession(a.store, profileID)
	if !sess.Found() {
		a.statusBar.SetMessage("Perfil no encontrado", true)
		return
	}

	a.session = sess
	a.engine = editor.NewEngine(a.validator, func(doc model.Document) {
		sess.Update(doc)
	})
	a.engine.SetDocument(sess.Draft(), time.Now())
	a.session.SetPreview(true)

	a.viewMode = ViewEditor
	a.form = editorform.New()
	a.form.SetFocused(true)
	a.form.Rebuild(a.engine.Document(), a.engine.FieldErrors())
	a.SetSize(a.width, a.height)
	a.refreshStatus()

	if a.config != nil {
		a.config.LastProfileID = profileID
		a.saveConfig()
	}
}

// closeEditor returns to the profile list.
func (a *App) closeEditor() {
	a.session = nil
	a.engine = nil
	a.viewMode = ViewProfiles
	a.refreshProfiles("")
	a.statusBar.SetProfile("")
	a.statusBar.SetDirty(false)
	a.statusBar.SetInvalid(false)
	a.statusBar.SetEditing(false)
	a.SetSize(a.width, a.height)
}

// refreshProfiles reloads the list from the store, optionally moving the
// cursor to a specific profile.
func (a *App) refreshProfiles(selectID string) {
	a.profileList.SetProfiles(a.store.ListProfiles())
	if selectID != "" {
		a.profileList.SelectByID(selectID)
	}
}

// refreshStatus syncs the status bar with the editing session.
func (a *App) refreshStatus() {
	if a.session == nil {
		return
	}
	name := ""
	if p, ok := a.session.Profile(); ok {
		name = p.Name
	}
	a.statusBar.SetProfile(name)
	a.statusBar.SetDirty(a.session.Dirty())
	a.statusBar.SetEditing(true)
	if a.engine != nil {
		a.statusBar.SetInvalid(!a.engine.Valid())
	}
}

// rebuildForm refreshes the form rows from the engine snapshot.
func (a *App) rebuildForm() {
	if a.engine == nil {
		return
	}
	a.form.Rebuild(a.engine.Document(), a.engine.FieldErrors())
}

// hideDialog hides any open dialog.
func (a *App) hideDialog() {
	a.dialogMode = DialogNone
}

func (a *App) showImportDialog() {
	var recents []string
	if a.config != nil {
		recents = a.config.RecentImportPaths
	}
	a.inputDialog = dialog.NewInput("Importar currículum", []dialog.Field{
		{Label: "Archivo JSON", Placeholder: "~/Documents/cv.json", EnablePathComp: true},
	}, recents)
	a.inputDialog.SetSize(a.width, a.height)
	a.dialogMode = DialogImport
}

func (a *App) showExportDialog(doc model.Document, name string) {
	a.exportDoc = doc
	a.exportName = name

	suggested := strings.TrimSpace(name)
	if suggested == "" {
		suggested = "curriculum"
	}
	var recents []string
	if a.config != nil {
		recents = a.config.RecentImportPaths
	}
	a.inputDialog = dialog.NewInput("Exportar a JSON", []dialog.Field{
		{Label: "Destino", Value: "~/" + sanitizeFilename(suggested) + ".json", EnablePathComp: true},
	}, recents)
	a.inputDialog.SetSize(a.width, a.height)
	a.dialogMode = DialogExport
}

func (a *App) showRenameDialog(current string) {
	a.inputDialog = dialog.NewInput("Renombrar perfil", []dialog.Field{
		{Label: "Nombre", Value: current},
	}, nil)
	a.inputDialog.SetSize(a.width, a.height)
	a.dialogMode = DialogRename
}

func (a *App) showTemplateDialog(current model.TemplateID) {
	templates := model.AvailableTemplates()
	options := make([]string, 0, len(templates))
	for _, t := range templates {
		options = append(options, string(t.ID))
	}
	a.inputDialog = dialog.NewInput("Cambiar plantilla", []dialog.Field{
		{Label: "Plantilla", Value: string(current), Options: options},
	}, nil)
	a.inputDialog.SetSize(a.width, a.height)
	a.dialogMode = DialogTemplate
}

// flushAndSave pushes pending valid edits to the session and persists.
func (a *App) flushAndSave() {
	if a.session == nil {
		return
	}
	if a.engine != nil && a.engine.Valid() {
		a.session.Update(a.engine.Document())
	}
	if !a.session.Save() {
		a.statusBar.SetMessage("Nada que guardar", false)
		a.refreshStatus()
		return
	}

	name := ""
	if p, ok := a.session.Profile(); ok {
		name = p.Name
	}
	a.statusBar.SetMessage("Guardado", false)
	a.refreshStatus()
	if a.notifier != nil {
		a.notifier.Dispatch(notify.Event{
			ProfileName: name,
			Type:        notify.EventProfileSaved,
			Message:     "Currículum guardado",
		})
	}
}

// discardDraft resets the draft to the stored document.
func (a *App) discardDraft() {
	if a.session == nil || a.engine == nil {
		return
	}
	a.session.Reset()
	a.engine.SetDocument(a.session.Draft(), time.Now())
	a.rebuildForm()
	a.refreshStatus()
	a.statusBar.SetMessage("Cambios descartados", false)
}

func (a *App) saveConfig() {
	if a.config == nil || a.configDir == "" {
		return
	}
	if err := app.SaveConfig(a.configDir, a.config); err != nil && a.logger != nil {
		a.logger.Warn("saving config", "error", err)
	}
}

func (a *App) rememberImportPath(path string) {
	if a.config == nil {
		return
	}
	a.config.AddRecentImportPath(utils.ExpandPath(path))
	a.saveConfig()
}

// sanitizeFilename strips characters that are unsafe in file names.
func sanitizeFilename(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '-', r == '_':
			b.WriteRune('-')
		}
	}
	out := strings.Trim(b.String(), "-")
	if out == "" {
		return "curriculum"
	}
	return out
}

// exportTargetPath normalizes the dialog value into a writable path.
func exportTargetPath(input, name string) string {
	path := utils.ExpandPath(strings.TrimSpace(input))
	if strings.HasSuffix(input, "/") {
		path = filepath.Join(path, sanitizeFilename(name)+".json")
	}
	if !strings.HasSuffix(strings.ToLower(path), ".json") {
		path += ".json"
	}
	return path
}
