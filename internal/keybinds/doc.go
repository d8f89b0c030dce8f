/*
Package keybinds provides customizable keyboard binding management.

# Overview

The keybinds package maps key strings (as reported by Bubble Tea's
KeyMsg.String) to actions, per context. Users override the defaults with
~/.sortstep/keybinds.json.

# Key Concepts

Context Hierarchy:
  - Global: Bindings available everywhere
  - Normal: The visualizer
  - Input: The array input field
  - Help, History: Scrollable viewers
  - Confirm: Yes/no prompts

A key bound in a specific context overrides the global binding.

# Configuration File Format

Keybindings are stored as JSON with comments allowed:

	{
	  "version": "1.0",
	  // vim-style stepping only
	  "normal": {
	    "n": "step_forward",
	    "right": "noop"
	  }
	}

Binding a key to "noop" removes the default binding.

# Reserved Keys

ctrl+c always force quits. Rebinding it generates a warning.
*/
package keybinds
