package main

import (
	"context"
	"fmt"
	"os"

	"github.com/viant/schedly"
	"github.com/viant/schedly/scheduler"
	"github.com/viant/schedly/service/event"
	"github.com/viant/schedly/service/messaging/memory"
	"github.com/viant/schedly/service/report"
)

func main() {
	if len(os.Args) != 2 {
		_, _ = fmt.Fprintln(os.Stderr, "usage: schedly <workload-file>")
		os.Exit(1)
	}

	ctx := context.Background()
	queue := memory.NewQueue[event.Event[scheduler.Activity]](memory.Config{QueueBuffer: 8192})
	srv := schedly.New(schedly.WithEventQueue(queue))

	run, err := srv.Run(ctx, os.Args[1])
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	// Replay the buffered context switches before the final report.
	for queue.Size() > 0 {
		msg, err := queue.Consume(ctx)
		if err != nil {
			break
		}
		_ = msg.Ack()
		evt := msg.T()
		if evt.Context.EventType != scheduler.EventContextSwitch {
			continue
		}
		fmt.Printf("context switch|  t:%2d,  P_n:%s,  P_r:%s\n",
			evt.Data.Tick, evt.Data.ProcessID, evt.Data.DisplacedID)
	}

	report.Render(os.Stdout, "Preemptive priority scheduling with round-robin", run.Result)
}
