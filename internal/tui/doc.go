/*
Package tui implements the interactive sorting visualizer.

# Architecture

The TUI follows the Bubble Tea framework's Model-Update-View pattern:
  - Model: wraps a sorting.Engine plus viewer and message state
  - Update: processes key, tick and background messages
  - View: renders the bar chart, explanation and status bar

# Key Components

  - model.go: Model struct, message types and Update/View dispatch
  - init.go: construction and the Run entry point
  - keys.go: per-mode keyboard routing through keybinds.Registry
  - actions.go: stepping, autoplay, array input, clipboard and journal commands
  - render.go: main view, help viewer and history viewer
  - history_state.go: thread-safe selection state for the history viewer

# Modes

  - ModeNormal: step through the selected algorithm
  - ModeInput: edit the array; invalid input keeps the field open
  - ModeHelp: scrollable keybinding reference
  - ModeHistory, ModeHistoryClearConfirm: browse or clear recorded runs

# Background Work

Journal reads and writes and clipboard access run as tea.Cmd functions and
report back through runSavedMsg, historyLoadedMsg, historyClearedMsg and
clipboardMsg. Autoplay ticks carry a generation number so ticks scheduled
before a pause are dropped.
*/
package tui
