package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/dustin/go-humanize"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spindlework/spindle"
)

var (
	ww    = []int{1, 10, 100}
	hh    = []int{1, 10, 100}
	iters = 100
)

func main() {
	flag.Parse()

	log.Printf("warming up")
	benchmarkCascade(false)

	benchmarkCascade(true)
	benchmarkFanout(true)
}

// benchmarkCascade chains cells through effects: each layer's effect reads
// the previous cell and writes the next, so one write to the source ripples
// through w*h effect runs.
func benchmarkCascade(shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("Spindle Cascade")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max", "writes", "checksum"})

	for _, w := range ww {
		for _, h := range hh {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})
			tc := spindle.NewTrackingContext(func(from spindle.Source, err error) {
				log.Panic(err)
			})

			src := spindle.NewCell(tc, 1)
			lasts := make([]*spindle.Cell[int], 0, w)
			for i := 0; i < w; i++ {
				prev := src
				for j := 0; j < h; j++ {
					next := spindle.NewCell(tc, 0)
					from := prev
					spindle.NewEffect(tc, func() error {
						next.SetValue(from.Value() + 1)
						return nil
					})
					prev = next
				}
				lasts = append(lasts, prev)
			}

			digest := xxhash.New()
			var buf [8]byte
			for i := 0; i < iters; i++ {
				start := time.Now()
				src.SetValue(src.Peek() + 1)
				tach.AddTime(time.Since(start))

				binary.LittleEndian.PutUint64(buf[:], uint64(lasts[len(lasts)-1].Peek()))
				digest.Write(buf[:])
			}

			calc := tach.Calc()
			tbl.AppendRows([]table.Row{
				{
					fmt.Sprintf("cascade: %d * %d", w, h),
					calc.Time.Avg,
					calc.Time.Min,
					calc.Time.P75,
					calc.Time.P99,
					calc.Time.Max,
					humanize.Comma(int64(iters * (w*h + 1))),
					fmt.Sprintf("%016x", digest.Sum64()),
				},
			})
		}
	}

	if shouldRender {
		tbl.Render()
	}
}

// benchmarkFanout hangs w*h derived values off one source and measures the
// write that dirties them plus the pull that recomputes them all.
func benchmarkFanout(shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("Spindle Fanout")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max", "reads", "checksum"})

	for _, w := range ww {
		for _, h := range hh {
			n := w * h
			tach := tachymeter.New(&tachymeter.Config{Size: iters})
			tc := spindle.NewTrackingContext(func(from spindle.Source, err error) {
				log.Panic(err)
			})

			src := spindle.NewCell(tc, 1)
			deriveds := make([]*spindle.Derived[int], n)
			for i := 0; i < n; i++ {
				offset := i
				deriveds[i] = spindle.NewDerived(tc, func() int {
					return src.Value()*2 + offset
				})
			}

			digest := xxhash.New()
			var buf [8]byte
			for i := 0; i < iters; i++ {
				start := time.Now()
				src.SetValue(src.Peek() + 1)
				sum := 0
				for _, d := range deriveds {
					sum += d.Value()
				}
				tach.AddTime(time.Since(start))

				binary.LittleEndian.PutUint64(buf[:], uint64(sum))
				digest.Write(buf[:])
			}

			calc := tach.Calc()
			tbl.AppendRows([]table.Row{
				{
					fmt.Sprintf("fanout: %d * %d", w, h),
					calc.Time.Avg,
					calc.Time.Min,
					calc.Time.P75,
					calc.Time.P99,
					calc.Time.Max,
					humanize.Comma(int64(iters * n)),
					fmt.Sprintf("%016x", digest.Sum64()),
				},
			})
		}
	}

	if shouldRender {
		tbl.Render()
	}
}
