package keybinds

// NewDefaultRegistry creates a registry with all default keybindings
func NewDefaultRegistry() *Registry {
	r := NewRegistry()

	registerGlobalBindings(r)
	registerNormalBindings(r)
	registerInputBindings(r)
	registerHelpBindings(r)
	registerHistoryBindings(r)
	registerConfirmBindings(r)

	return r
}

// registerGlobalBindings sets up keybindings available everywhere
func registerGlobalBindings(r *Registry) {
	r.Register(ContextGlobal, "ctrl+c", ActionQuitForce)
}

// registerNormalBindings sets up keybindings for the visualizer
func registerNormalBindings(r *Registry) {
	r.Register(ContextNormal, "q", ActionQuit)

	// Stepping
	r.RegisterMultiple(ContextNormal, []string{"right", "l", "n"}, ActionStepForward)
	r.RegisterMultiple(ContextNormal, []string{"left", "h", "p"}, ActionStepBackward)
	r.Register(ContextNormal, " ", ActionTogglePlay)
	r.Register(ContextNormal, "r", ActionRestart)

	// Algorithms
	r.Register(ContextNormal, "1", ActionSelectBubble)
	r.Register(ContextNormal, "2", ActionSelectSelection)
	r.Register(ContextNormal, "3", ActionSelectInsertion)
	r.Register(ContextNormal, "tab", ActionCycleAlgorithm)

	// Array
	r.RegisterMultiple(ContextNormal, []string{"e", "i"}, ActionEditArray)
	r.Register(ContextNormal, "y", ActionCopyArray)

	// Modal launchers
	r.Register(ContextNormal, "?", ActionOpenHelp)
	r.Register(ContextNormal, "H", ActionOpenHistory)
}

// registerInputBindings sets up keybindings for the array input field
// Other keys are passed through to the text input
func registerInputBindings(r *Registry) {
	r.Register(ContextInput, "enter", ActionTextSubmit)
	r.Register(ContextInput, "esc", ActionTextCancel)
}

// registerHelpBindings sets up keybindings for help viewer
func registerHelpBindings(r *Registry) {
	r.RegisterMultiple(ContextHelp, []string{"esc", "?", "q"}, ActionCloseModal)
	registerViewerNavigation(r, ContextHelp)
}

// registerHistoryBindings sets up keybindings for the run journal viewer
func registerHistoryBindings(r *Registry) {
	r.RegisterMultiple(ContextHistory, []string{"esc", "H", "q"}, ActionCloseModal)
	r.Register(ContextHistory, "D", ActionHistoryClear)
	registerViewerNavigation(r, ContextHistory)
}

// registerConfirmBindings sets up confirmation dialog bindings
func registerConfirmBindings(r *Registry) {
	r.RegisterMultiple(ContextConfirm, []string{"y", "Y"}, ActionConfirm)
	r.RegisterMultiple(ContextConfirm, []string{"n", "N", "esc"}, ActionCancel)
}

func registerViewerNavigation(r *Registry, context Context) {
	r.RegisterMultiple(context, []string{"up", "k"}, ActionNavigateUp)
	r.RegisterMultiple(context, []string{"down", "j"}, ActionNavigateDown)
	r.Register(context, "pgup", ActionPageUp)
	r.Register(context, "pgdown", ActionPageDown)
	r.RegisterMultiple(context, []string{"home", "g"}, ActionGoToTop)
	r.RegisterMultiple(context, []string{"end", "G"}, ActionGoToBottom)
}
