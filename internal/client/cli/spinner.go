package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
)

const clearLine = "\r\033[K"

// spin draws a one-line spinner on out while the loading signal is on.
func spin(ctx context.Context, edges <-chan bool, out io.Writer) {
	s := spinner.Dot
	var (
		ticker *time.Ticker
		tick   <-chan time.Time
		frame  int
	)
	stop := func() {
		if ticker != nil {
			ticker.Stop()
			ticker, tick = nil, nil
		}
	}
	defer stop()

	for {
		select {
		case <-ctx.Done():
			return
		case on, ok := <-edges:
			if !ok {
				return
			}
			if on {
				frame = 0
				fmt.Fprint(out, "\r"+s.Frames[frame]+" working...")
				if ticker == nil {
					ticker = time.NewTicker(s.FPS)
					tick = ticker.C
				}
			} else {
				stop()
				fmt.Fprint(out, clearLine)
			}
		case <-tick:
			frame = (frame + 1) % len(s.Frames)
			fmt.Fprint(out, "\r"+s.Frames[frame]+" working...")
		}
	}
}
