package info

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"tableflip.dev/mindmate/pkg/app"
	"tableflip.dev/mindmate/pkg/journal"
	"tableflip.dev/mindmate/pkg/store"
)

type Info struct {
	Config  *store.FileConfig
	Service *app.Service
	Out     io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = os.Stdout
	}

	if override := os.Getenv("MINDMATE_CONFIG_PATH"); override != "" {
		fmt.Fprintln(out, "MINDMATE_CONFIG_PATH found on env, using", override)
	} else {
		fmt.Fprintln(out, "MINDMATE_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	if f := store.ConfigFile(); f != "" {
		fmt.Fprintln(out, "Config file:", f)
	}
	fmt.Fprintln(out, "Config.path:", n.Config.BasePath())
	fmt.Fprintln(out, "Config.backend:", n.Config.Backend())
	fmt.Fprintln(out, "Config.ai.provider:", n.Config.AIProvider)
	if n.Config.AIModel != "" {
		fmt.Fprintln(out, "Config.ai.model:", n.Config.AIModel)
	}

	if n.Service == nil {
		return errors.New("info: failed to open the journal")
	}

	entries, err := n.Service.Entries(ctx)
	if err != nil && !errors.Is(err, journal.ErrLoad) {
		return err
	}
	fmt.Fprintf(out, "Entries: %d\n", len(entries))
	if err != nil {
		fmt.Fprintf(out, "  %v\n", err)
	}
	fmt.Fprintln(out, "Last mood:", n.Service.LastMood(ctx))
	if name, ok := n.Service.UserName(ctx); ok {
		fmt.Fprintln(out, "Name:", name)
	} else {
		fmt.Fprintln(out, "Name: not set")
	}
	return nil
}
