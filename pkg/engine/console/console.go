// Package console implements a minimal line-oriented debugging protocol for
// an Engine: print the board, push moves, and trigger a synchronous search.
// It is not a UCI or xboard implementation -- just enough of a REPL to drive
// the engine interactively or from a script.
package console

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/corvid-chess/gambit/pkg/engine"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/iox"
)

const ProtocolName = "console"

// Driver implements a console driver for debugging.
type Driver struct {
	iox.AsyncCloser

	e   *engine.Engine
	out chan<- string
}

// NewDriver starts a driver that reads commands from in and writes responses
// to the returned channel, until in is closed or "quit" is received.
func NewDriver(ctx context.Context, e *engine.Engine, in <-chan string) (*Driver, <-chan string) {
	out := make(chan string, 100)
	d := &Driver{
		AsyncCloser: iox.NewAsyncCloser(),
		e:           e,
		out:         out,
	}
	go d.process(ctx, in)

	return d, out
}

func (d *Driver) process(ctx context.Context, in <-chan string) {
	defer d.Close()
	defer close(d.out)

	logw.Infof(ctx, "Console protocol initialized")

	d.out <- fmt.Sprintf("engine %v (%v)", d.e.Name(), d.e.Author())
	d.printBoard()

	for {
		select {
		case line, ok := <-in:
			if !ok {
				logw.Infof(ctx, "Input stream broken. Exiting")
				return
			}

			parts := strings.Fields(line)
			if len(parts) == 0 {
				break
			}

			cmd := parts[0]
			args := parts[1:]

			switch strings.ToLower(cmd) {
			case "new", "reset":
				d.e.NewGame(ctx)
				d.printBoard()

			case "print", "p":
				d.printBoard()

			case "go", "search":
				depth := 0
				var budget time.Duration
				if len(args) > 0 {
					depth, _ = strconv.Atoi(args[0])
				}
				if len(args) > 1 {
					if ms, err := strconv.Atoi(args[1]); err == nil {
						budget = time.Duration(ms) * time.Millisecond
					}
				}

				move, score, err := d.e.Search(ctx, depth, budget)
				if err != nil {
					d.out <- fmt.Sprintf("search failed: %v", err)
					break
				}
				d.out <- fmt.Sprintf("bestmove %v (%v)", move, score)
				d.out <- d.e.Stats().String()

			case "depth", "d":
				if len(args) > 0 {
					depth, _ := strconv.Atoi(args[0])
					d.e.SetDepth(uint(depth))
				}

			case "hash":
				if len(args) > 0 {
					hash, _ := strconv.Atoi(args[0])
					d.e.SetHash(uint(hash))
				}

			case "movetime", "mt":
				if len(args) > 0 {
					if ms, err := strconv.Atoi(args[0]); err == nil {
						d.e.SetMoveTime(time.Duration(ms) * time.Millisecond)
					}
				}

			case "quit", "exit", "q":
				return

			case "":
				// ignore empty command

			default:
				// Assume move if not a recognized command.
				if err := d.e.Push(ctx, cmd); err != nil {
					d.out <- fmt.Sprintf("invalid move: '%v': %v", cmd, err)
				} else {
					d.printBoard()
				}
			}

		case <-d.Closed():
			logw.Infof(ctx, "Driver closed")
			return
		}
	}
}

func (d *Driver) printBoard() {
	b := d.e.Board()

	d.out <- ""
	d.out <- b.Display()
	d.out <- fmt.Sprintf("turn: %v, castling: %v, halfmove: %v, fullmove: %v",
		b.CurrentTurn(), b.Castling(), b.HalfmoveClock(), b.FullmoveNumber())
	d.out <- ""
}
