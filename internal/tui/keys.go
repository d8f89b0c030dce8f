package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/sortstep/internal/keybinds"
	"github.com/studiowebux/sortstep/internal/sorting"
)

// handleKeyPress routes a key event to the handler of the current mode
func (m *Model) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	switch m.mode {
	case ModeInput:
		return m.handleInputKeys(msg)
	case ModeHelp:
		return m.handleHelpKeys(msg)
	case ModeHistory:
		return m.handleHistoryKeys(msg)
	case ModeHistoryClearConfirm:
		return m.handleHistoryClearConfirmKeys(msg)
	default:
		return m.handleNormalKeys(msg)
	}
}

// handleNormalKeys handles key events in the visualizer
func (m *Model) handleNormalKeys(msg tea.KeyMsg) tea.Cmd {
	action, ok := m.keybinds.Match(keybinds.ContextNormal, msg.String())
	if !ok {
		return nil
	}

	switch action {
	case keybinds.ActionQuit, keybinds.ActionQuitForce:
		return tea.Quit

	case keybinds.ActionStepForward:
		m.stopPlayback()
		return m.stepForward()

	case keybinds.ActionStepBackward:
		m.stopPlayback()
		m.stepBackward()

	case keybinds.ActionTogglePlay:
		return m.togglePlay()

	case keybinds.ActionRestart:
		return m.restart()

	case keybinds.ActionSelectBubble:
		return m.selectAlgorithm(sorting.Bubble)

	case keybinds.ActionSelectSelection:
		return m.selectAlgorithm(sorting.Selection)

	case keybinds.ActionSelectInsertion:
		return m.selectAlgorithm(sorting.Insertion)

	case keybinds.ActionCycleAlgorithm:
		return m.cycleAlgorithm()

	case keybinds.ActionEditArray:
		return m.openArrayInput()

	case keybinds.ActionCopyArray:
		return m.copyArray()

	case keybinds.ActionOpenHelp:
		m.mode = ModeHelp
		m.updateHelpView()

	case keybinds.ActionOpenHistory:
		return m.openHistory()
	}

	return nil
}

// handleInputKeys handles key events while editing the array.
// Keys without a binding go to the text input.
func (m *Model) handleInputKeys(msg tea.KeyMsg) tea.Cmd {
	action, ok := m.keybinds.Match(keybinds.ContextInput, msg.String())
	if ok {
		switch action {
		case keybinds.ActionQuitForce:
			return tea.Quit

		case keybinds.ActionTextSubmit:
			return m.submitArrayInput()

		case keybinds.ActionTextCancel:
			m.closeArrayInput()
			return nil
		}
	}

	var cmd tea.Cmd
	m.arrayInput, cmd = m.arrayInput.Update(msg)
	return cmd
}

// handleHelpKeys handles key events in the help viewer
func (m *Model) handleHelpKeys(msg tea.KeyMsg) tea.Cmd {
	action, ok := m.keybinds.Match(keybinds.ContextHelp, msg.String())
	if !ok {
		return nil
	}

	switch action {
	case keybinds.ActionQuitForce:
		return tea.Quit
	case keybinds.ActionCloseModal:
		m.mode = ModeNormal
	default:
		scrollViewport(&m.helpView, action)
	}

	return nil
}

// handleHistoryKeys handles key events in the run journal viewer
func (m *Model) handleHistoryKeys(msg tea.KeyMsg) tea.Cmd {
	action, ok := m.keybinds.Match(keybinds.ContextHistory, msg.String())
	if !ok {
		return nil
	}

	switch action {
	case keybinds.ActionQuitForce:
		return tea.Quit

	case keybinds.ActionCloseModal:
		m.mode = ModeNormal

	case keybinds.ActionNavigateUp:
		m.history.Navigate(-1)
		m.updateHistoryView()

	case keybinds.ActionNavigateDown:
		m.history.Navigate(1)
		m.updateHistoryView()

	case keybinds.ActionGoToTop:
		m.history.SetIndex(0)
		m.updateHistoryView()

	case keybinds.ActionGoToBottom:
		if n := len(m.history.GetEntries()); n > 0 {
			m.history.SetIndex(n - 1)
		}
		m.updateHistoryView()

	case keybinds.ActionPageUp, keybinds.ActionPageDown:
		scrollViewport(&m.modalView, action)

	case keybinds.ActionHistoryClear:
		if len(m.history.GetEntries()) == 0 {
			return m.setStatusMessage("History is already empty")
		}
		m.mode = ModeHistoryClearConfirm
	}

	return nil
}

// handleHistoryClearConfirmKeys handles the clear history confirmation
func (m *Model) handleHistoryClearConfirmKeys(msg tea.KeyMsg) tea.Cmd {
	action, ok := m.keybinds.Match(keybinds.ContextConfirm, msg.String())
	if !ok {
		return nil
	}

	switch action {
	case keybinds.ActionQuitForce:
		return tea.Quit

	case keybinds.ActionCancel:
		m.mode = ModeHistory
		return m.setStatusMessage("Clear history cancelled")

	case keybinds.ActionConfirm:
		return m.clearHistory()
	}

	return nil
}
