package tui

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/sortstep/internal/keybinds"
	"github.com/studiowebux/sortstep/internal/logging"
	"github.com/studiowebux/sortstep/internal/parser"
	"github.com/studiowebux/sortstep/internal/sorting"
)

// historyListLimit caps the entries shown in the history viewer
const historyListLimit = 200

// writeClipboard is swapped out in tests
var writeClipboard = clipboard.WriteAll

// stepForward advances the engine and records the run once it completes
func (m *Model) stepForward() tea.Cmd {
	if !m.engine.Active() {
		return m.setStatusMessage(fmt.Sprintf("Select an algorithm first (%s)",
			m.keybinds.GetBindingString(keybinds.ContextNormal, keybinds.ActionCycleAlgorithm)))
	}

	m.engine.StepForward()
	m.logger.Debug("step forward",
		"algorithm", m.engine.Algorithm().String(),
		"step", m.engine.Step(),
	)

	return m.recordIfComplete()
}

func (m *Model) stepBackward() {
	m.engine.StepBackward()
	m.logger.Debug("step backward",
		"algorithm", m.engine.Algorithm().String(),
		"step", m.engine.Step(),
	)
}

// selectAlgorithm starts a fresh run from the original array
func (m *Model) selectAlgorithm(a sorting.Algorithm) tea.Cmd {
	m.stopPlayback()
	m.engine.SelectAlgorithm(a)
	m.recorded = false
	m.logger.Info("algorithm selected", "algorithm", a.String(), "length", m.engine.Len())
	return m.recordIfComplete()
}

// cycleAlgorithm starts the next algorithm, or the configured default when idle
func (m *Model) cycleAlgorithm() tea.Cmd {
	if !m.engine.Active() {
		a, err := sorting.ParseAlgorithm(m.settings.DefaultAlgorithm)
		if err != nil {
			a = sorting.Bubble
		}
		return m.selectAlgorithm(a)
	}
	return m.selectAlgorithm(m.engine.Algorithm().Next())
}

func (m *Model) restart() tea.Cmd {
	if !m.engine.Active() {
		return nil
	}
	cmd := m.selectAlgorithm(m.engine.Algorithm())
	return tea.Batch(cmd, m.setStatusMessage("Restarted"))
}

// recordIfComplete sends a finished run to the journal, once per run
func (m *Model) recordIfComplete() tea.Cmd {
	if !m.engine.Complete() {
		return nil
	}
	m.stopPlayback()

	if m.recorded || m.historyManager == nil {
		return nil
	}
	m.recorded = true

	algorithm := m.engine.Algorithm()
	original := m.engine.Original()
	mgr := m.historyManager
	ctx := logging.WithLogger(context.Background(), m.logger)

	rec := &runRecorder{}
	rec.save = func() runSavedMsg {
		run, err := sorting.Trace(algorithm, original)
		if err != nil {
			return runSavedMsg{err: err, recorder: rec}
		}
		id, err := mgr.Save(ctx, run)
		return runSavedMsg{id: id, err: err, recorder: rec}
	}
	m.pendingRuns = append(m.pendingRuns, rec)

	return func() tea.Msg {
		return rec.record()
	}
}

// runRecorder writes one finished run at most once. The write happens in a
// tea.Cmd, or in Cleanup if the program quits before the command finishes.
type runRecorder struct {
	once sync.Once
	save func() runSavedMsg
	msg  runSavedMsg
}

// record runs the save, or waits for an in-flight one, and returns its result
func (r *runRecorder) record() runSavedMsg {
	r.once.Do(func() {
		r.msg = r.save()
	})
	return r.msg
}

// togglePlay starts or stops autoplay
func (m *Model) togglePlay() tea.Cmd {
	if m.playing {
		m.stopPlayback()
		return m.setStatusMessage("Paused")
	}

	if !m.engine.Active() {
		return m.setErrorMessage("Select an algorithm before playing")
	}
	if m.engine.Complete() {
		m.engine.SelectAlgorithm(m.engine.Algorithm())
		m.recorded = false
	}

	m.playing = true
	m.playGen++
	return tea.Batch(m.setStatusMessage("Playing"), m.scheduleTick())
}

func (m *Model) stopPlayback() {
	if m.playing {
		m.playing = false
		m.playGen++
	}
}

func (m *Model) playInterval() time.Duration {
	if m.settings.PlayIntervalMs <= 0 {
		return 600 * time.Millisecond
	}
	return time.Duration(m.settings.PlayIntervalMs) * time.Millisecond
}

func (m *Model) scheduleTick() tea.Cmd {
	gen := m.playGen
	return tea.Tick(m.playInterval(), func(time.Time) tea.Msg {
		return playTickMsg{gen: gen}
	})
}

// handlePlayTick steps forward on each tick until the run completes
func (m *Model) handlePlayTick(msg playTickMsg) tea.Cmd {
	if !m.playing || msg.gen != m.playGen {
		return nil
	}

	m.engine.StepForward()
	if m.engine.Complete() {
		return tea.Batch(m.recordIfComplete(), m.setStatusMessage("Playback finished"))
	}
	return m.scheduleTick()
}

// openArrayInput switches to the array input, prefilled with the original array
func (m *Model) openArrayInput() tea.Cmd {
	m.stopPlayback()
	m.mode = ModeInput
	m.arrayInput.SetValue(parser.FormatArray(m.engine.Original()))
	m.arrayInput.CursorEnd()
	m.errorMsg = ""
	return tea.Batch(m.arrayInput.Focus(), textinput.Blink)
}

func (m *Model) closeArrayInput() {
	m.arrayInput.Blur()
	m.mode = ModeNormal
}

// submitArrayInput parses the input. On failure the engine is left untouched
// and the input stays open.
func (m *Model) submitArrayInput() tea.Cmd {
	values, err := parser.ParseArray(m.arrayInput.Value())
	if err != nil {
		m.logger.Debug("rejected array input", "error", err)
		return m.setErrorMessage(err.Error())
	}

	if err := m.engine.SetArray(values); err != nil {
		return m.setErrorMessage(err.Error())
	}
	m.recorded = false
	m.closeArrayInput()
	m.errorMsg = ""

	m.logger.Info("array updated", "length", len(values))
	return m.setStatusMessage(fmt.Sprintf("Array set to [%s]", parser.FormatArray(values)))
}

// copyArray copies the current array to the clipboard as comma text
func (m *Model) copyArray() tea.Cmd {
	text := parser.FormatArray(m.engine.Array())
	return func() tea.Msg {
		return clipboardMsg{text: text, err: writeClipboard(text)}
	}
}

// openHistory shows the run journal viewer and loads its entries
func (m *Model) openHistory() tea.Cmd {
	if m.historyManager == nil {
		return m.setErrorMessage("History is disabled")
	}

	m.stopPlayback()
	m.mode = ModeHistory
	m.updateHistoryView()

	mgr := m.historyManager
	return func() tea.Msg {
		entries, err := mgr.Load(context.Background(), historyListLimit)
		return historyLoadedMsg{entries: entries, err: err}
	}
}

func (m *Model) clearHistory() tea.Cmd {
	if m.historyManager == nil {
		m.mode = ModeHistory
		return nil
	}

	mgr := m.historyManager
	return func() tea.Msg {
		return historyClearedMsg{err: mgr.Clear(context.Background())}
	}
}

// scrollViewport applies a navigation action to a viewport
func scrollViewport(v *viewport.Model, action keybinds.Action) {
	switch action {
	case keybinds.ActionNavigateUp:
		v.LineUp(1)
	case keybinds.ActionNavigateDown:
		v.LineDown(1)
	case keybinds.ActionPageUp:
		v.ViewUp()
	case keybinds.ActionPageDown:
		v.ViewDown()
	case keybinds.ActionGoToTop:
		v.GotoTop()
	case keybinds.ActionGoToBottom:
		v.GotoBottom()
	}
}
