package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rcalaglez/icv-lite/internal/model"
	"github.com/rcalaglez/icv-lite/internal/notify"
	"github.com/rcalaglez/icv-lite/pkg/utils"
)

// Update handles all application messages.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetSize(msg.Width, msg.Height)
		return a, nil

	case EngineTickMsg:
		if a.engine != nil {
			if a.engine.Tick(time.Time(msg)) {
				a.refreshStatus()
			}
		}
		return a, EngineTick()

	case ImportResultMsg:
		return a.handleImportResult(msg)

	case ExportResultMsg:
		return a.handleExportResult(msg)

	case tea.KeyMsg:
		if a.dialogMode != DialogNone {
			return a.updateDialog(msg)
		}
		switch a.viewMode {
		case ViewEditor:
			return a.updateEditor(msg)
		default:
			return a.updateProfileList(msg)
		}
	}

	return a, nil
}

// updateProfileList handles keys on the profile list screen.
func (a App) updateProfileList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		a.quitting = true
		return a, tea.Quit

	case key.Matches(msg, a.keys.Enter):
		if p := a.profileList.SelectedProfile(); p != nil {
			a.openEditor(p.ID)
		}
		return a, nil

	case key.Matches(msg, a.keys.Add):
		id := a.store.CreateProfile()
		a.refreshProfiles(id)
		a.statusBar.SetMessage("Perfil creado", false)
		return a, nil

	case key.Matches(msg, a.keys.Duplicate):
		if p := a.profileList.SelectedProfile(); p != nil {
			id := a.store.DuplicateProfile(p.ID)
			if id != "" {
				a.refreshProfiles(id)
				a.statusBar.SetMessage("Perfil duplicado", false)
			}
		}
		return a, nil

	case key.Matches(msg, a.keys.Delete):
		if p := a.profileList.SelectedProfile(); p != nil {
			a.store.DeleteProfile(p.ID)
			a.refreshProfiles("")
			a.statusBar.SetMessage("Perfil eliminado", false)
		}
		return a, nil

	case key.Matches(msg, a.keys.Rename):
		if p := a.profileList.SelectedProfile(); p != nil {
			a.showRenameDialog(p.Name)
		}
		return a, nil

	case key.Matches(msg, a.keys.Template):
		if p := a.profileList.SelectedProfile(); p != nil {
			a.showTemplateDialog(p.Template.ID)
		}
		return a, nil

	case key.Matches(msg, a.keys.Import):
		a.showImportDialog()
		return a, nil

	case key.Matches(msg, a.keys.Export):
		if p := a.profileList.SelectedProfile(); p != nil {
			a.showExportDialog(p.Data.Clone(), p.Name)
		}
		return a, nil
	}

	a.profileList.HandleKey(msg.String())
	return a, nil
}

// updateEditor handles keys on the editor screen.
func (a App) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.form.Editing() {
		switch {
		case key.Matches(msg, a.keys.Enter):
			if mutate, ok := a.form.CommitEdit(); ok {
				a.engine.Apply(time.Now(), mutate)
				a.rebuildForm()
				a.refreshStatus()
			}
			return a, nil
		case key.Matches(msg, a.keys.Back):
			a.form.CancelEdit()
			return a, nil
		default:
			cmd := a.form.UpdateInput(msg)
			return a, cmd
		}
	}

	switch {
	// Plain "q" stays available to the form here, only ctrl+c quits.
	case msg.String() == "ctrl+c":
		a.quitting = true
		return a, tea.Quit

	case key.Matches(msg, a.keys.Back):
		a.closeEditor()
		return a, nil

	case key.Matches(msg, a.keys.Enter):
		a.form.StartEditing()
		return a, nil

	case key.Matches(msg, a.keys.Save):
		a.flushAndSave()
		return a, nil

	case key.Matches(msg, a.keys.Discard):
		a.discardDraft()
		return a, nil

	case key.Matches(msg, a.keys.Preview):
		if a.session != nil {
			a.session.SetPreview(!a.session.Preview())
			a.SetSize(a.width, a.height)
		}
		return a, nil

	case key.Matches(msg, a.keys.AddRow):
		if ref, ok := a.form.AddTarget(); ok {
			a.engine.Append(ref, time.Now())
			a.rebuildForm()
			a.refreshStatus()
		}
		return a, nil

	case key.Matches(msg, a.keys.DeleteRow):
		if ref, idx, ok := a.form.RemoveTarget(); ok {
			a.engine.RemoveAt(ref, idx, time.Now())
			a.rebuildForm()
			a.refreshStatus()
		}
		return a, nil

	case key.Matches(msg, a.keys.Export):
		if a.session != nil {
			name := ""
			if p, ok := a.session.Profile(); ok {
				name = p.Name
			}
			a.showExportDialog(a.session.Draft(), name)
		}
		return a, nil

	case key.Matches(msg, a.keys.Rename):
		if p, ok := a.sessionProfile(); ok {
			a.showRenameDialog(p.Name)
		}
		return a, nil

	case key.Matches(msg, a.keys.Template):
		if p, ok := a.sessionProfile(); ok {
			a.showTemplateDialog(p.Template.ID)
		}
		return a, nil
	}

	a.form.HandleKey(msg.String())
	return a, nil
}

// updateDialog routes keys to the open dialog and applies its outcome.
func (a App) updateDialog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	a.inputDialog, cmd = a.inputDialog.Update(msg)

	if a.inputDialog.IsCancelled() {
		a.hideDialog()
		return a, nil
	}
	if !a.inputDialog.IsSubmitted() {
		return a, cmd
	}

	mode := a.dialogMode
	a.hideDialog()

	switch mode {
	case DialogImport:
		path := strings.TrimSpace(a.inputDialog.Value(0))
		if path == "" {
			a.statusBar.SetMessage("Ruta requerida", true)
			return a, nil
		}
		return a, ImportFile(a.importSvc, a.store.ImportProfile, utils.ExpandPath(path))

	case DialogExport:
		input := strings.TrimSpace(a.inputDialog.Value(0))
		if input == "" {
			a.statusBar.SetMessage("Ruta requerida", true)
			return a, nil
		}
		path := exportTargetPath(input, a.exportName)
		return a, ExportDocument(a.exportDoc, a.exportName, path)

	case DialogRename:
		name := a.inputDialog.Value(0)
		a.applyRename(name)
		return a, nil

	case DialogTemplate:
		id := model.TemplateID(strings.TrimSpace(a.inputDialog.Value(0)))
		a.applyTemplate(id)
		return a, nil
	}

	return a, nil
}

func (a *App) applyRename(name string) {
	if a.session != nil {
		if a.session.Rename(name) {
			a.refreshStatus()
			a.statusBar.SetMessage("Perfil renombrado", false)
		}
		return
	}
	p := a.profileList.SelectedProfile()
	if p == nil {
		return
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" || trimmed == p.Name {
		return
	}
	a.store.UpdateProfileName(p.ID, trimmed)
	a.refreshProfiles(p.ID)
	a.statusBar.SetMessage("Perfil renombrado", false)
}

func (a *App) applyTemplate(id model.TemplateID) {
	tpl, ok := model.TemplateByID(id)
	if !ok {
		a.statusBar.SetMessage("Plantilla desconocida: "+string(id), true)
		return
	}

	if a.session != nil {
		a.store.UpdateProfileTemplate(a.session.ProfileID(), tpl)
		a.refreshStatus()
	} else if p := a.profileList.SelectedProfile(); p != nil {
		a.store.UpdateProfileTemplate(p.ID, tpl)
		a.refreshProfiles(p.ID)
	}
	a.statusBar.SetMessage("Plantilla: "+tpl.Name, false)
}

func (a *App) sessionProfile() (*model.Profile, bool) {
	if a.session == nil {
		return nil, false
	}
	return a.session.Profile()
}

func (a App) handleImportResult(msg ImportResultMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		a.statusBar.SetMessage("Error al importar: "+msg.Err.Error(), true)
		if a.logger != nil {
			a.logger.Warn("import failed", "path", msg.Path, "error", msg.Err)
		}
		if a.notifier != nil {
			a.notifier.Dispatch(notify.Event{
				Type:    notify.EventImportFailed,
				Title:   "Importación fallida",
				Message: msg.Err.Error(),
			})
		}
		return a, nil
	}

	a.rememberImportPath(msg.Path)
	a.refreshProfiles(msg.ProfileID)

	// Imports are structural only; surface schema problems here so the
	// user knows the editor will open with field errors.
	status := "Importado: " + msg.Name
	if p, err := a.store.GetProfileByID(msg.ProfileID); err == nil {
		if res := a.validator.Validate(p.Data); !res.Valid {
			status = "Importado con errores de validación: " + msg.Name
		}
	}
	a.statusBar.SetMessage(status, false)
	if a.notifier != nil {
		a.notifier.Dispatch(notify.Event{
			ProfileName: msg.Name,
			Type:        notify.EventImportCompleted,
			Message:     "Currículum importado",
		})
	}
	return a, nil
}

func (a App) handleExportResult(msg ExportResultMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		a.statusBar.SetMessage("Error al exportar: "+msg.Err.Error(), true)
		if a.logger != nil {
			a.logger.Warn("export failed", "path", msg.Path, "error", msg.Err)
		}
		return a, nil
	}

	a.rememberImportPath(msg.Path)
	a.statusBar.SetMessage("Exportado a "+msg.Path, false)
	if a.notifier != nil {
		a.notifier.Dispatch(notify.Event{
			ProfileName: msg.Name,
			Type:        notify.EventExportCompleted,
			Message:     "Exportado a " + msg.Path,
		})
	}
	return a, nil
}
