package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	camomile "github.com/pierreguillot/Camomile-sub001"
)

const (
	promptText  = "> "
	quitCommand = "quit"
)

// readControl sends each line of r to the player until r is exhausted, a quit
// line arrives or ctx is cancelled. Rejected messages are reported on the
// player's console and do not end the loop.
func readControl(ctx context.Context, r io.Reader, w io.Writer, p *camomile.TabPlayer, prompt bool) error {
	lines := make(chan string)
	errc := make(chan error, 1)

	go func() {
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		errc <- scanner.Err()
	}()

	for {
		if prompt {
			fmt.Fprint(w, promptText)
		}
		select {
		case <-ctx.Done():
			return nil
		case err := <-errc:
			return err
		case line := <-lines:
			if strings.TrimSpace(line) == quitCommand {
				return nil
			}
			selector, args := camomile.ParseMessage(line)
			_ = p.Send(selector, args...)
		}
	}
}

// reportDone prints done events until ctx is cancelled.
func reportDone(ctx context.Context, done <-chan camomile.Done, w io.Writer) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case d := <-done:
			if d.Looped {
				fmt.Fprintln(w, "done (loop)")
			} else {
				fmt.Fprintln(w, "done")
			}
		}
	}
}
