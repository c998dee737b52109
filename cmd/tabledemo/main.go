// Command tabledemo renders a scrollable, selectable table and drives it
// from the keyboard. It is the reference host loop for the tui package:
// the application owns the TableState and renders once per frame.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/lixenwraith/gridtui/terminal"
	"github.com/lixenwraith/gridtui/tui"
)

var theme = tui.DefaultTheme

var headers = []string{"PID", "NAME", "STATE", "CPU", "MEM"}

var samples = [][]string{
	{"1", "systemd", "sleeping", "0.0", "12.1M"},
	{"312", "sshd", "sleeping", "0.0", "6.8M"},
	{"844", "postgres", "sleeping", "0.3", "148.2M"},
	{"845", "postgres: wal", "sleeping", "0.1", "22.4M"},
	{"1204", "nginx", "sleeping", "0.0", "9.6M"},
	{"1205", "nginx: worker", "running", "1.2", "11.0M"},
	{"1980", "redis-server", "running", "2.4", "64.3M"},
	{"2310", "prometheus", "sleeping", "0.8", "301.7M"},
	{"2311", "node_exporter", "sleeping", "0.2", "18.9M"},
	{"2840", "grafana", "sleeping", "0.5", "122.5M"},
	{"3106", "dockerd", "sleeping", "0.4", "88.0M"},
	{"3350", "containerd", "sleeping", "0.3", "54.2M"},
	{"4021", "kafka", "running", "3.9", "812.6M"},
	{"4188", "zookeeper", "sleeping", "0.6", "96.4M"},
	{"5002", "etcd", "running", "1.1", "73.8M"},
	{"5430", "vault", "sleeping", "0.1", "41.2M"},
	{"6118", "consul", "sleeping", "0.2", "47.9M"},
	{"7204", "minio", "sleeping", "0.3", "102.3M"},
	{"8512", "clickhouse", "running", "5.2", "1.2G"},
	{"9033", "haproxy", "sleeping", "0.1", "8.4M"},
}

func main() {
	term := terminal.New()
	if err := term.Init(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer term.Fini()

	// Dedicated input goroutine
	eventCh := make(chan terminal.Event, 16)
	go func() {
		for {
			ev := term.PollEvent()
			eventCh <- ev
			if ev.Type == terminal.EventClosed || ev.Type == terminal.EventError {
				return
			}
		}
	}()

	state := tui.NewTableState()
	state.Select(0)

	ticker := time.NewTicker(33 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case ev := <-eventCh:
			if quit := handleEvent(ev, state); quit {
				return
			}
		case <-ticker.C:
		}

		w, h := term.Size()
		if w < 1 || h < 1 {
			continue
		}
		cells := make([]terminal.Cell, w*h)
		root := tui.NewRegion(cells, w, 0, 0, w, h)
		root.Fill(theme.Bg)

		render(root, state)

		term.Flush(cells, w, h)
	}
}

func handleEvent(ev terminal.Event, state *tui.TableState) bool {
	total := len(samples)
	if ev.Type == terminal.EventClosed || ev.Type == terminal.EventError {
		return true
	}
	if ev.Type != terminal.EventKey {
		return false
	}

	switch {
	case ev.Key == terminal.KeyCtrlC || ev.Key == terminal.KeyEscape:
		return true
	case ev.Key == terminal.KeyRune && ev.Rune == 'q':
		return true
	case ev.Key == terminal.KeyDown || (ev.Key == terminal.KeyRune && ev.Rune == 'j'):
		state.Select(tui.ClampCursor(state.Selected+1, total))
	case ev.Key == terminal.KeyUp || (ev.Key == terminal.KeyRune && ev.Rune == 'k'):
		state.Select(tui.ClampCursor(state.Selected-1, total))
	case ev.Key == terminal.KeyPgDn:
		state.Select(tui.ClampCursor(state.Selected+tui.PageDelta(10), total))
	case ev.Key == terminal.KeyPgUp:
		state.Select(tui.ClampCursor(state.Selected-tui.PageDelta(10), total))
	case ev.Key == terminal.KeyHome || (ev.Key == terminal.KeyRune && ev.Rune == 'g'):
		state.Select(0)
	case ev.Key == terminal.KeyEnd || (ev.Key == terminal.KeyRune && ev.Rune == 'G'):
		state.Select(total - 1)
	}
	return false
}

func render(root tui.Region, state *tui.TableState) {
	rows := make([]tui.Row, len(samples))
	for i, s := range samples {
		row := tui.NewRow(s...)
		if i%2 == 1 {
			row = row.WithStyle(theme.AltRowStyle())
		}
		rows[i] = row
	}

	table := tui.NewTable(rows, []tui.Constraint{
		tui.Fixed(6),
		tui.AtLeast(16),
		tui.Fixed(10),
		tui.Fixed(5),
		tui.Percent(20),
	}).
		Header(tui.NewRow(headers...).WithStyle(theme.HeaderStyle()).WithMargins(0, 1)).
		Footer(tui.NewRow("", "j/k move  g/G jump  q quit").WithStyle(tui.Style{Fg: theme.DimFg})).
		Border(tui.Border{Line: tui.LineRounded, Title: "processes", Style: tui.Style{Fg: theme.Border}}).
		Style(tui.Style{Fg: theme.Fg}).
		HighlightStyle(theme.HighlightStyle()).
		HighlightSymbol("> ").
		HighlightSpacingPolicy(tui.HighlightAlways).
		Distribution(tui.LastTakesRemainder)

	table.Render(root, state)

	// Scrollbar tracks the body window computed this frame
	inner := root.Inset(1)
	bodyH := inner.H - 3 // header, header margin, footer
	if bodyH > 0 {
		start, end := table.Window(state.Offset, state.Selected, bodyH)
		body := inner.Sub(0, 2, inner.W, bodyH)
		tui.ScrollBar(body, body.W-1, start, end-start, len(rows), tui.Style{Fg: theme.DimFg})
	}
}
