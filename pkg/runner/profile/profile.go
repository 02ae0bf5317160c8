package profile

import (
	"context"

	"tableflip.dev/mindmate/pkg/app"
	"tableflip.dev/mindmate/pkg/commands/options"
	"tableflip.dev/mindmate/pkg/printers"
	userprofile "tableflip.dev/mindmate/pkg/profile"
	"tableflip.dev/mindmate/pkg/prompt"
)

// Name shows or sets the display name.
type Name struct {
	Service *app.Service
	Name    string
	Prompt  bool
	IO      prompt.IO
	Output  *options.OutputOptions
}

func (n *Name) Do(ctx context.Context) error {
	name := n.Name
	if name == "" && n.Prompt {
		var err error
		if name, err = n.IO.Name(); err != nil {
			return err
		}
	}

	if name == "" {
		current, ok := n.Service.UserName(ctx)
		if n.Output != nil && n.Output.JSON {
			return n.Output.Print(map[string]interface{}{"name": current, "set": ok})
		}
		pp := printers.PrettyPrint{}
		if !ok {
			pp.Faint("No name set yet.")
			return nil
		}
		pp.Title(current)
		return nil
	}

	if err := n.Service.SetUserName(ctx, name); err != nil {
		if n.Output == nil || !n.Output.JSON {
			pp := printers.PrettyPrint{}
			pp.Warn(userprofile.Message(err))
		}
		return err
	}
	greeting, _ := n.Service.Greeting(ctx)
	if n.Output != nil && n.Output.JSON {
		return n.Output.Print(map[string]string{"name": name, "greeting": greeting})
	}
	pp := printers.PrettyPrint{}
	pp.Title(greeting)
	return nil
}

// Hello greets the user, onboarding them first if needed.
type Hello struct {
	Service *app.Service
	Prompt  bool
	IO      prompt.IO
}

func (h *Hello) Do(ctx context.Context) error {
	pp := printers.PrettyPrint{}
	if greeting, ok := h.Service.Greeting(ctx); ok {
		pp.Title(greeting)
		pp.Faint("How are you feeling today? Log it with `mindmate log`.")
		return nil
	}

	pp.Title("Welcome to MindMate!")
	if !h.Prompt {
		pp.Faint("Set your name with `mindmate name <name>` to get started.")
		return nil
	}
	name, err := h.IO.Name()
	if err != nil {
		return err
	}
	if err := h.Service.SetUserName(ctx, name); err != nil {
		pp.Warn(userprofile.Message(err))
		return err
	}
	greeting, _ := h.Service.Greeting(ctx)
	pp.Title(greeting)
	return nil
}
