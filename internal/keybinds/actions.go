package keybinds

// Action represents a user action that can be triggered by a keybinding
type Action string

// Context represents the context in which keybindings are active
type Context string

const (
	// Contexts define where keybindings are active
	ContextGlobal  Context = "global"  // Available everywhere
	ContextNormal  Context = "normal"  // Visualizer view
	ContextInput   Context = "input"   // Array input field
	ContextHelp    Context = "help"    // Help viewer
	ContextHistory Context = "history" // Run journal viewer
	ContextConfirm Context = "confirm" // Confirmation dialogs
)

const (
	// Global actions
	ActionQuit      Action = "quit"       // Quit application
	ActionQuitForce Action = "quit_force" // Force quit (ctrl+c)

	// Stepping
	ActionStepForward  Action = "step_forward"  // One step forward
	ActionStepBackward Action = "step_backward" // One step back
	ActionTogglePlay   Action = "toggle_play"   // Start/stop autoplay
	ActionRestart      Action = "restart"       // Restart the current algorithm

	// Algorithm selection
	ActionSelectBubble    Action = "select_bubble"    // Start a bubble sort run
	ActionSelectSelection Action = "select_selection" // Start a selection sort run
	ActionSelectInsertion Action = "select_insertion" // Start an insertion sort run
	ActionCycleAlgorithm  Action = "cycle_algorithm"  // Start a run with the next algorithm

	// Array
	ActionEditArray Action = "edit_array" // Open the array input
	ActionCopyArray Action = "copy_array" // Copy current array to clipboard

	// Modal launchers
	ActionOpenHelp    Action = "open_help"    // Open help viewer
	ActionOpenHistory Action = "open_history" // Open run journal

	// Viewer navigation
	ActionNavigateUp   Action = "navigate_up"   // Scroll up one line
	ActionNavigateDown Action = "navigate_down" // Scroll down one line
	ActionPageUp       Action = "page_up"       // Scroll up one page
	ActionPageDown     Action = "page_down"     // Scroll down one page
	ActionGoToTop      Action = "go_to_top"     // Go to top
	ActionGoToBottom   Action = "go_to_bottom"  // Go to bottom
	ActionCloseModal   Action = "close_modal"   // Close current modal

	// Text input
	ActionTextSubmit Action = "text_submit" // Submit text input
	ActionTextCancel Action = "text_cancel" // Cancel text input

	// History
	ActionHistoryClear Action = "history_clear" // Clear the run journal (with confirm)

	// Confirmation
	ActionConfirm Action = "confirm" // Confirm action (y/Y)
	ActionCancel  Action = "cancel"  // Cancel action (n/N)

	ActionNoOp Action = "noop" // No operation (ignore key)
)

// ActionInfo contains metadata about an action
type ActionInfo struct {
	Action      Action
	Description string
	Category    string
}

var actionInfos = map[Action]ActionInfo{
	ActionQuit:            {ActionQuit, "Quit application", "Global"},
	ActionQuitForce:       {ActionQuitForce, "Force quit", "Global"},
	ActionStepForward:     {ActionStepForward, "Next step", "Stepping"},
	ActionStepBackward:    {ActionStepBackward, "Previous step", "Stepping"},
	ActionTogglePlay:      {ActionTogglePlay, "Play / pause", "Stepping"},
	ActionRestart:         {ActionRestart, "Restart run", "Stepping"},
	ActionSelectBubble:    {ActionSelectBubble, "Bubble sort", "Algorithms"},
	ActionSelectSelection: {ActionSelectSelection, "Selection sort", "Algorithms"},
	ActionSelectInsertion: {ActionSelectInsertion, "Insertion sort", "Algorithms"},
	ActionCycleAlgorithm:  {ActionCycleAlgorithm, "Next algorithm", "Algorithms"},
	ActionEditArray:       {ActionEditArray, "Edit array", "Array"},
	ActionCopyArray:       {ActionCopyArray, "Copy array", "Array"},
	ActionOpenHelp:        {ActionOpenHelp, "Open help", "Information"},
	ActionOpenHistory:     {ActionOpenHistory, "Open run history", "Information"},
	ActionNavigateUp:      {ActionNavigateUp, "Scroll up", "Navigation"},
	ActionNavigateDown:    {ActionNavigateDown, "Scroll down", "Navigation"},
	ActionPageUp:          {ActionPageUp, "Page up", "Navigation"},
	ActionPageDown:        {ActionPageDown, "Page down", "Navigation"},
	ActionGoToTop:         {ActionGoToTop, "Go to top", "Navigation"},
	ActionGoToBottom:      {ActionGoToBottom, "Go to bottom", "Navigation"},
	ActionCloseModal:      {ActionCloseModal, "Close", "Navigation"},
	ActionTextSubmit:      {ActionTextSubmit, "Apply input", "Input"},
	ActionTextCancel:      {ActionTextCancel, "Cancel input", "Input"},
	ActionHistoryClear:    {ActionHistoryClear, "Clear history", "History"},
	ActionConfirm:         {ActionConfirm, "Confirm", "Confirm"},
	ActionCancel:          {ActionCancel, "Cancel", "Confirm"},
	ActionNoOp:            {ActionNoOp, "Ignore key", "Other"},
}

// GetActionInfo returns human-readable information about an action
func GetActionInfo(action Action) ActionInfo {
	if info, ok := actionInfos[action]; ok {
		return info
	}
	return ActionInfo{action, string(action), "Unknown"}
}

// IsKnownAction reports whether action is one the application handles
func IsKnownAction(action Action) bool {
	_, ok := actionInfos[action]
	return ok
}
