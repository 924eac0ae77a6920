package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	MoveUp   key.Binding
	MoveDown key.Binding

	Pick   key.Binding
	Reword key.Binding
	Edit   key.Binding
	Squash key.Binding
	Fixup  key.Binding
	Drop   key.Binding
	Cycle  key.Binding

	InsertExec  key.Binding
	InsertBreak key.Binding

	EditSummary key.Binding
	EditRef     key.Binding
	EditAction  key.Binding

	Select key.Binding
	Delete key.Binding
	Undo   key.Binding

	ScrollDown key.Binding
	ScrollUp   key.Binding

	Save  key.Binding
	Abort key.Binding
	Help  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "move cursor")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "move cursor")),
		MoveUp:   key.NewBinding(key.WithKeys("shift+up", "K"), key.WithHelp("shift+↑/K", "move step up")),
		MoveDown: key.NewBinding(key.WithKeys("shift+down", "J"), key.WithHelp("shift+↓/J", "move step down")),

		Pick:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pick")),
		Reword: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reword")),
		Edit:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Squash: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "squash")),
		Fixup:  key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "fixup")),
		Drop:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "drop")),
		Cycle:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "cycle action")),

		InsertExec:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "insert exec")),
		InsertBreak: key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "insert break")),

		EditSummary: key.NewBinding(key.WithKeys("enter", "i"), key.WithHelp("enter/i", "edit summary")),
		EditRef:     key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "edit ref")),
		EditAction:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "edit action")),

		Select: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "select block")),
		Delete: key.NewBinding(key.WithKeys("backspace", "delete"), key.WithHelp("⌫", "delete step")),
		Undo:   key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo")),

		ScrollDown: key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "scroll commit")),
		ScrollUp:   key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "scroll commit")),

		Save:  key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "save and quit")),
		Abort: key.NewBinding(key.WithKeys("Q", "esc", "ctrl+c"), key.WithHelp("Q/esc", "abort")),
		Help:  key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.MoveUp, k.EditSummary, k.Pick, k.Save, k.Abort, k.Help}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.MoveUp, k.MoveDown, k.Select},
		{k.Pick, k.Reword, k.Edit, k.Squash, k.Fixup, k.Drop},
		{k.Cycle, k.InsertExec, k.InsertBreak, k.Delete, k.Undo},
		{k.EditSummary, k.EditRef, k.EditAction, k.ScrollDown, k.ScrollUp},
		{k.Save, k.Abort, k.Help},
	}
}
