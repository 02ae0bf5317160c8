package chat

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"tableflip.dev/mindmate/pkg/app"
	"tableflip.dev/mindmate/pkg/companion"
	"tableflip.dev/mindmate/pkg/printers"
)

// Chat is a line-oriented conversation. Each input line is one message; the
// session ends at EOF or on /quit.
type Chat struct {
	Service *app.Service
	In      io.Reader
	Out     io.Writer
	// Interactive shows the input prompt and banner.
	Interactive bool
	Width       int
}

func (c *Chat) Do(ctx context.Context) error {
	pp := printers.PrettyPrint{Out: c.Out, Width: c.Width}
	if c.Interactive {
		pp.Title("MindMate")
		pp.Faint("A safe space to talk. Type /quit to leave.")
		pp.NewLine()
	}

	scanner := bufio.NewScanner(c.In)
	for {
		if c.Interactive {
			_, _ = fmt.Fprint(c.Out, "> ")
		}
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "/quit" || line == "/exit" {
			break
		}
		if !c.Interactive && line == "" {
			continue
		}

		turn, err := c.Service.Chat(ctx, line)
		switch {
		case errors.Is(err, companion.ErrEmptyMessage):
			pp.Warn(companion.EmptyMessageText)
			continue
		case err != nil:
			return err
		}
		pp.Turn(turn)
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	return scanner.Err()
}
