package cli

import (
	"errors"
	"fmt"

	"github.com/zoro11031/homelab-coreos-minipc/fsprov/internal/config"
)

// ErrExit is returned when the user chooses to exit the menu
var ErrExit = errors.New("exit")

// Menu options in display order
var menuOptions = []string{
	"Create folder",
	"Create file",
	"Apply layout",
	"Exit",
}

// Menu provides an interactive menu interface
type Menu struct {
	ctx *Context
}

// NewMenu creates a new Menu instance
func NewMenu(ctx *Context) *Menu {
	return &Menu{ctx: ctx}
}

// Show displays the main menu and handles user input until the user exits
func (m *Menu) Show() error {
	if m.ctx.UI.IsNonInteractive() {
		return fmt.Errorf("the interactive menu requires a terminal (use create-folder, create-file or apply)")
	}

	m.ctx.UI.Header("fsprov")
	m.ctx.UI.Info("Create directories and empty files, including any missing parents")

	for {
		choice, err := m.ctx.UI.PromptSelect("What would you like to do?", menuOptions)
		if err != nil {
			return err
		}

		if err := m.handleChoice(choice); err != nil {
			if errors.Is(err, ErrExit) {
				return nil
			}
			m.ctx.UI.Error(err.Error())
		}
		m.ctx.UI.Print("")
	}
}

func (m *Menu) handleChoice(choice int) error {
	switch choice {
	case 0:
		path, err := m.ctx.UI.PromptInputRequired("Folder path")
		if err != nil {
			return err
		}
		return m.ctx.CreateFolders([]string{path})
	case 1:
		path, err := m.ctx.UI.PromptInputRequired("File path")
		if err != nil {
			return err
		}
		return m.ctx.CreateFiles([]string{path}, false)
	case 2:
		path, err := m.ctx.UI.PromptInput("Layout file", m.ctx.Config.GetOrDefault(config.KeyDefaultLayout, ""))
		if err != nil {
			return err
		}
		return m.ctx.ApplyLayout(path, ApplyOptions{})
	case 3:
		return ErrExit
	default:
		return fmt.Errorf("invalid choice: %d", choice)
	}
}
