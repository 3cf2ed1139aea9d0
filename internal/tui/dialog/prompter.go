package dialog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mattsolo1/rover/pkg/bookmarks"
	"github.com/mattsolo1/rover/pkg/dnd"
)

// Prompter asks for bookmark details on the terminal. It renders on
// stderr so stdout stays clean for command output.
type Prompter struct {
	// Label proposes a name and icon for a file. Optional.
	Label func(path string) (name, emojicon string)
	// FolderEmojicon prefills the folder dialog.
	FolderEmojicon string

	output io.Writer
}

// NewPrompter creates a prompter bound to the process terminal.
func NewPrompter(label func(string) (string, string)) *Prompter {
	return &Prompter{Label: label, FolderEmojicon: "📁", output: os.Stderr}
}

func (p *Prompter) run(ctx context.Context, f Form) (Form, error) {
	final, err := tea.NewProgram(f, tea.WithContext(ctx), tea.WithOutput(p.output)).Run()
	if err != nil {
		return f, fmt.Errorf("run dialog: %w", err)
	}
	f = final.(Form)
	if !f.Submitted {
		return f, dnd.ErrCancelled
	}
	return f, nil
}

func (p *Prompter) FolderDetails(ctx context.Context) (dnd.Details, error) {
	f, err := p.run(ctx, NewForm("New folder",
		Field{Label: "Name", Placeholder: "Folder name"},
		Field{Label: "Icon", Value: p.FolderEmojicon, CharLimit: 16},
	))
	if err != nil {
		return dnd.Details{}, err
	}
	v := f.Values()
	return dnd.Details{Name: v[0], Emojicon: v[1]}, nil
}

func (p *Prompter) ItemDetails(ctx context.Context, path string) (dnd.Details, error) {
	var name, emojicon string
	if p.Label != nil {
		name, emojicon = p.Label(path)
	}
	f, err := p.run(ctx, NewForm("New bookmark for "+path,
		Field{Label: "Name", Value: name},
		Field{Label: "Icon", Value: emojicon, CharLimit: 16},
	))
	if err != nil {
		return dnd.Details{}, err
	}
	v := f.Values()
	return dnd.Details{Name: v[0], Emojicon: v[1], Path: path}, nil
}

func (p *Prompter) ModifyDetails(ctx context.Context, current bookmarks.Node, path string) (dnd.Details, error) {
	meta := current.Base()
	f, err := p.run(ctx, NewForm("Edit bookmark",
		Field{Label: "Name", Value: meta.Name},
		Field{Label: "Icon", Value: meta.Emojicon, CharLimit: 16},
		Field{Label: "Path", Value: path},
	))
	if err != nil {
		return dnd.Details{}, err
	}
	v := f.Values()
	return dnd.Details{Name: v[0], Emojicon: v[1], Path: v[2]}, nil
}

// Confirm asks a yes/no question and reports the answer.
func (p *Prompter) Confirm(ctx context.Context, prompt string) (bool, error) {
	final, err := tea.NewProgram(NewConfirm(prompt), tea.WithContext(ctx), tea.WithOutput(p.output)).Run()
	if err != nil {
		return false, fmt.Errorf("run dialog: %w", err)
	}
	return final.(Confirm).Accepted, nil
}

// Fixed answers every dialog with preset details, for non-interactive use.
// Empty fields fall back to the current bookmark or the file's label.
type Fixed struct {
	Details dnd.Details
	Label   func(path string) (name, emojicon string)
}

func (f Fixed) FolderDetails(ctx context.Context) (dnd.Details, error) {
	if f.Details.Name == "" {
		return dnd.Details{}, errors.New("folder name is required")
	}
	return f.Details, nil
}

func (f Fixed) ItemDetails(ctx context.Context, path string) (dnd.Details, error) {
	d := f.Details
	if f.Label != nil {
		name, emojicon := f.Label(path)
		if d.Name == "" {
			d.Name = name
		}
		if d.Emojicon == "" {
			d.Emojicon = emojicon
		}
	}
	if d.Path == "" {
		d.Path = path
	}
	return d, nil
}

func (f Fixed) ModifyDetails(ctx context.Context, current bookmarks.Node, path string) (dnd.Details, error) {
	d := f.Details
	if d.Name == "" {
		d.Name = current.Base().Name
	}
	if d.Emojicon == "" {
		d.Emojicon = current.Base().Emojicon
	}
	if d.Path == "" {
		d.Path = path
	}
	return d, nil
}
