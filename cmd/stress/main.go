// Command stress hammers shared cells and both async bridge variants from
// many goroutines at once and reports throughput. Useful with -race.
package main

import (
	"fmt"
	"log"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/spindlework/spindle"
)

const (
	writers         = 8
	writesPerWriter = 50_000
	asyncTasks      = 200
)

func main() {
	log.Print("Starting spindle stress run, please wait...")
	defer log.Print("Finished spindle stress run")

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"scenario", "ops", "time", "ops/ms"})

	appendRow := func(name string, ops int64, d time.Duration) {
		rate := float64(ops) / (float64(d) / float64(time.Millisecond))
		table.Append([]string{
			name,
			humanize.Comma(ops),
			fmt.Sprint(d),
			humanize.Comma(int64(rate)),
		})
	}

	appendRow(stressSharedWrites())
	appendRow(stressBatchedWrites())
	appendRow(stressDirectPush())
	appendRow(stressPolled())

	table.Render()
}

// stressSharedWrites checks that concurrent SetValue calls on one cell keep
// every manual subscriber invocation accounted for.
func stressSharedWrites() (string, int64, time.Duration) {
	tc := spindle.NewTrackingContext(nil)
	cell := spindle.NewCell(tc, 0)

	var notified atomic.Int64
	cell.Subscribe(func() {
		notified.Add(1)
	})

	start := time.Now()
	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(seed int) {
			defer wg.Done()
			for i := 0; i < writesPerWriter; i++ {
				cell.SetValue(seed*writesPerWriter + i)
			}
		}(w)
	}
	wg.Wait()
	d := time.Since(start)

	want := int64(writers * writesPerWriter)
	if got := notified.Load(); got != want {
		log.Fatalf("shared writes: notified %d, want %d", got, want)
	}
	return "shared writes", want, d
}

// stressBatchedWrites coalesces bursts of writes behind batch scopes on the
// graph goroutine while readers peek from others.
func stressBatchedWrites() (string, int64, time.Duration) {
	tc := spindle.NewTrackingContext(nil)
	a := spindle.NewCell(tc, 0)
	b := spindle.NewCell(tc, 0)

	runs := 0
	eff := spindle.NewEffect(tc, func() error {
		a.Value()
		b.Value()
		runs++
		return nil
	})
	defer eff.Stop()

	stop := make(chan struct{})
	var reads atomic.Int64
	var readers sync.WaitGroup
	for r := 0; r < 4; r++ {
		readers.Add(1)
		go func() {
			defer readers.Done()
			for {
				select {
				case <-stop:
					return
				default:
					a.Peek()
					b.Peek()
					reads.Add(2)
				}
			}
		}()
	}

	const batches = 20_000
	start := time.Now()
	for i := 0; i < batches; i++ {
		tc.Batch(func() {
			a.SetValue(i)
			b.SetValue(-i)
		})
	}
	d := time.Since(start)
	close(stop)
	readers.Wait()

	if want := batches + 1; runs != want {
		log.Fatalf("batched writes: effect ran %d times, want %d", runs, want)
	}
	return "batched writes", int64(batches*2) + reads.Load(), d
}

// stressDirectPush fires many direct-push tasks whose workers write the cell
// from their own goroutines.
func stressDirectPush() (string, int64, time.Duration) {
	tc := spindle.NewTrackingContext(nil)

	var done sync.WaitGroup
	start := time.Now()
	for i := 0; i < asyncTasks; i++ {
		i := i
		task := spindle.NewAsyncTask(tc, func() (int, error) {
			if i%17 == 0 {
				panic("synthetic failure")
			}
			return i * i, nil
		})
		done.Add(1)
		var once sync.Once
		task.Cell().Subscribe(func() {
			st := task.Cell().Peek()
			if st.IsReady() || st.IsError() {
				once.Do(done.Done)
			}
		})
		task.Trigger()
	}
	done.Wait()
	return "direct push", asyncTasks, time.Since(start)
}

// stressPolled drains poll-based tasks from a single tick loop.
func stressPolled() (string, int64, time.Duration) {
	tc := spindle.NewTrackingContext(nil)

	tasks := make([]*spindle.PolledTask[int], asyncTasks)
	for i := range tasks {
		i := i
		tasks[i] = spindle.NewPolledTask(tc, func() (int, error) {
			return i + 1, nil
		})
	}

	start := time.Now()
	for _, t := range tasks {
		t.Trigger()
	}
	settled := 0
	for settled < len(tasks) {
		for _, t := range tasks {
			if t.Cell().Peek().IsReady() {
				continue
			}
			if t.Poll() {
				settled++
			}
		}
	}
	return "polled", asyncTasks, time.Since(start)
}
