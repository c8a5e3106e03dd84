// Command gulib-bench runs a fixed micro-benchmark pass over hashtable,
// vector, and ustring, reporting wall-clock timings via ulog. It reads no
// required arguments and exits 0 on success.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"github.com/ivanobilenchi/gulib/hashtable"
	"github.com/ivanobilenchi/gulib/ulog"
	"github.com/ivanobilenchi/gulib/ustring"
	"github.com/ivanobilenchi/gulib/utime"
	"github.com/ivanobilenchi/gulib/uversion"
	"github.com/ivanobilenchi/gulib/vector"
)

var flagN = &cli.IntFlag{
	Name:  "n",
	Usage: "number of elements per benchmark pass",
	Value: 100_000,
}

var flagQuiet = &cli.BoolFlag{
	Name:  "quiet",
	Usage: "suppress the progress bar",
}

func main() {
	app := &cli.App{
		Name:        "gulib-bench",
		Usage:       "micro-benchmark gulib's core containers",
		Description: "Runs a fixed pass of hashtable/vector/ustring operations and reports their timings.",
		Version:     uversion.Library.String(),
		Flags:       []cli.Flag{flagN, flagQuiet},
		Action:      run,
	}

	if err := app.Run(os.Args); err != nil {
		ulog.Fatal("gulib-bench failed", "err", err)
	}
}

type benchmark struct {
	name string
	run  func(n int)
}

func benchmarks() []benchmark {
	return []benchmark{
		{"hashtable.Set.Insert", benchHashtableInsert},
		{"hashtable.Map.Set", benchHashtableMapSet},
		{"vector.Push", benchVectorPush},
		{"vector.Sort", benchVectorSort},
		{"ustring.Concat", benchUstringConcat},
	}
}

func run(c *cli.Context) error {
	n := c.Int(flagN.Name)
	quiet := c.Bool(flagQuiet.Name)

	if !ulog.Enabled(ulog.LevelPerf) {
		ulog.SetLevel(ulog.LevelPerf)
	}
	ulog.Info("starting benchmark pass", "n", n, "session", uversion.SessionID)

	benches := benchmarks()
	var progress *mpb.Progress
	var bar *mpb.Bar
	if !quiet {
		progress = mpb.New(mpb.WithWidth(40))
		bar = progress.AddBar(int64(len(benches)),
			mpb.PrependDecorators(decor.Name("gulib-bench")),
			mpb.AppendDecorators(decor.CountersNoUnit("%d / %d")),
		)
	}

	for _, b := range benches {
		start := utime.Monotonic()
		b.run(n)
		elapsed := utime.Monotonic() - start

		ulog.Perf(fmt.Sprintf("%s: %s (%s)", b.name, utime.IntervalString(elapsed), utime.RawNanosString(elapsed)))
		if bar != nil {
			bar.Increment()
		}
	}

	if progress != nil {
		progress.Wait()
	}

	ulog.Info("benchmark pass complete")
	return nil
}

func benchHashtableInsert(n int) {
	s := hashtable.NewInt64Set()
	for i := 0; i < n; i++ {
		s.Insert(int64(i))
	}
}

func benchHashtableMapSet(n int) {
	m := hashtable.NewInt64Map[int64]()
	for i := 0; i < n; i++ {
		m.Set(int64(i), int64(i)*2)
	}
}

func benchVectorPush(n int) {
	v := vector.New[int]()
	for i := 0; i < n; i++ {
		_ = v.Push(i)
	}
}

func benchVectorSort(n int) {
	v := vector.New[int]()
	for i := 0; i < n; i++ {
		_ = v.Push(n - i)
	}
	v.Sort(func(a, b int) bool { return a < b })
}

func benchUstringConcat(n int) {
	parts := make([]ustring.String, 0, n/100+1)
	for i := 0; i < n/100+1; i++ {
		parts = append(parts, ustring.FromString("chunk"))
	}
	_ = ustring.Concat(parts...)
}
