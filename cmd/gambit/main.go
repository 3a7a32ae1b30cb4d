package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/corvid-chess/gambit/pkg/engine"
	"github.com/corvid-chess/gambit/pkg/engine/console"
	"github.com/seekerror/logw"
)

var (
	depth    = flag.Uint("depth", 6, "Default search depth limit")
	hash     = flag.Uint("hash", 32, "Transposition table size in MB")
	noise    = flag.Uint("noise", 10, "Evaluation noise in millipawns (zero if deterministic)")
	movetime = flag.Duration("movetime", 5*time.Second, "Default per-move search budget")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: gambit [options]

GAMBIT is a simple console chess engine.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	e := engine.New(ctx, "gambit", "corvid-chess", engine.WithOptions(engine.Options{
		Depth:    *depth,
		Hash:     *hash,
		Noise:    *noise,
		MoveTime: *movetime,
	}))

	in := engine.ReadStdinLines(ctx)
	driver, out := console.NewDriver(ctx, e, in)
	go engine.WriteStdoutLines(ctx, out)

	<-driver.Closed()
}
