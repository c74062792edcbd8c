package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/delaneyj/slotparty/object"
	"github.com/dustin/go-humanize"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v3"
)

const (
	itersKey   = "iters"
	profileKey = "profile"
	warmupKey  = "warmup"
)

var (
	widths = []int{1, 10, 100, 1_000}
	depths = []int{1, 4, 16, 64}
)

func main() {
	cmd := &cli.Command{
		Name:  "benchmark",
		Usage: "Time emission, churn and teardown of slotparty signals",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  itersKey,
				Usage: "Samples per benchmark",
				Value: 100,
			},
			&cli.StringFlag{
				Name:  profileKey,
				Usage: "Write a CPU profile to this file",
				Value: "default.pgo",
			},
			&cli.BoolFlag{
				Name:  warmupKey,
				Usage: "Run every benchmark once before measuring",
				Value: true,
			},
		},
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	iters := int(cmd.Int(itersKey))
	if iters <= 0 {
		return fmt.Errorf("%s must be positive, got %d", itersKey, iters)
	}

	if path := cmd.String(profileKey); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("can't create profile: %w", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("can't start profile: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	if cmd.Bool(warmupKey) {
		log.Printf("warming up")
		benchmarkFanout(ctx, iters, false)
		benchmarkReentrant(ctx, iters, false)
		benchmarkChurn(ctx, iters, false)
		benchmarkTeardown(iters, false)
	}

	benchmarkFanout(ctx, iters, true)
	benchmarkReentrant(ctx, iters, true)
	benchmarkChurn(ctx, iters, true)
	benchmarkTeardown(iters, true)
	return nil
}

func newTable(title string) table.Writer {
	tbl := table.NewWriter()
	tbl.SetTitle(title)
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})
	return tbl
}

func appendCalc(tbl table.Writer, name string, tach *tachymeter.Tachymeter) {
	calc := tach.Calc()
	tbl.AppendRows([]table.Row{
		{
			name,
			calc.Time.Avg,
			calc.Time.Min,
			calc.Time.P75,
			calc.Time.P99,
			calc.Time.Max,
		},
	})
}

func benchmarkFanout(ctx context.Context, iters int, shouldRender bool) {
	tbl := newTable("Fan-out emission")

	for _, w := range widths {
		tach := tachymeter.New(&tachymeter.Config{Size: iters})

		sender := object.New(nil)
		e := object.NewEmitter[int](sender)
		sum := 0
		for i := 0; i < w; i++ {
			e.Connect(object.New(sender), object.Func(func(_ context.Context, v int) {
				sum += v
			}))
		}

		for i := 0; i < iters; i++ {
			start := time.Now()
			e.Emit(ctx, 1)
			tach.AddTime(time.Since(start))
		}
		if sum != w*iters {
			log.Panicf("fan-out %d: expected sum %d, got %d", w, w*iters, sum)
		}
		sender.Destroy()

		appendCalc(tbl, fmt.Sprintf("emit to %s receivers", humanize.Comma(int64(w))), tach)
	}

	if shouldRender {
		tbl.Render()
	}
}

func benchmarkReentrant(ctx context.Context, iters int, shouldRender bool) {
	tbl := newTable("Re-entrant emission")

	for _, d := range depths {
		tach := tachymeter.New(&tachymeter.Config{Size: iters})

		sender := object.New(nil)
		e := object.NewEmitter[int](sender)
		calls := 0
		e.Connect(nil, object.Func(func(ctx context.Context, v int) {
			calls++
			if v > 0 {
				e.Emit(ctx, v-1)
			}
		}))
		// connected mid-dispatch, fires from the next top-level emit
		e.Connect(nil, object.Func(func(ctx context.Context, v int) {
			if v == 0 {
				e.Connect(nil, object.Func(func(context.Context, int) {}))
			}
		}))

		for i := 0; i < iters; i++ {
			start := time.Now()
			e.Emit(ctx, d)
			tach.AddTime(time.Since(start))
		}
		if calls != (d+1)*iters {
			log.Panicf("reentrant %d: expected %d calls, got %d", d, (d+1)*iters, calls)
		}
		sender.Destroy()

		appendCalc(tbl, fmt.Sprintf("nested %d deep", d), tach)
	}

	if shouldRender {
		tbl.Render()
	}
}

func benchmarkChurn(ctx context.Context, iters int, shouldRender bool) {
	tbl := newTable("Connection churn")

	for _, w := range widths {
		tach := tachymeter.New(&tachymeter.Config{Size: iters})

		sender := object.New(nil)
		e := object.NewEmitter[int](sender)
		noop := object.Func(func(context.Context, int) {})

		for i := 0; i < iters; i++ {
			start := time.Now()
			receivers := make([]*object.Node, w)
			for j := range receivers {
				receivers[j] = object.New(nil)
				e.Connect(receivers[j], noop)
			}
			e.Emit(ctx, i)
			for _, r := range receivers {
				r.Destroy()
			}
			e.Emit(ctx, i)
			tach.AddTime(time.Since(start))
		}
		if n := e.Len(); n != 0 {
			log.Panicf("churn %d: %d connections survived their receivers", w, n)
		}
		sender.Destroy()

		appendCalc(tbl, fmt.Sprintf("connect+destroy %s receivers", humanize.Comma(int64(w))), tach)
	}

	if shouldRender {
		tbl.Render()
	}
}

func benchmarkTeardown(iters int, shouldRender bool) {
	tbl := newTable("Ownership teardown")

	for _, w := range widths {
		for _, h := range []int{1, 4} {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})
			destroyed := 0

			for i := 0; i < iters; i++ {
				root := object.New(nil)
				for j := 0; j < w; j++ {
					last := root
					for k := 0; k < h; k++ {
						last = object.New(last)
					}
					last.Destroyed().Connect(nil, object.Func(func(context.Context, *object.Node) {
						destroyed++
					}))
				}

				start := time.Now()
				root.Destroy()
				tach.AddTime(time.Since(start))
			}
			if destroyed != w*iters {
				log.Panicf("teardown %dx%d: expected %d leaves destroyed, got %d", w, h, w*iters, destroyed)
			}

			appendCalc(tbl, fmt.Sprintf("destroy: %s * %d", humanize.Comma(int64(w)), h), tach)
		}
	}

	if shouldRender {
		tbl.Render()
	}
}
