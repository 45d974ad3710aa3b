package main

import (
	"cmp"
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/VictoriaMetrics/metrics"
	"github.com/urfave/cli/v2"
	"golang.org/x/exp/constraints"

	fibheap "github.com/klaidoshka/fibonacci-heap"
)

func main() {
	app := &cli.App{
		Name:  "fibheapdemo",
		Usage: "exercise the fibheap library against the scenarios it was built for",
		Commands: []*cli.Command{
			runCommand(),
			decreaseDemoCommand(),
			mergeDemoCommand(),
			deleteDemoCommand(),
			reverseDemoCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func runCommand() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "build a heap from a scenario file, extract the minimum once, then drain the rest",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "path to a TOML scenario file; built-in defaults if omitted"},
		},
		Action: func(ctx *cli.Context) error {
			logger := log.New(ctx.App.Writer, "run: ", log.LstdFlags)

			scenario, err := loadScenario(ctx.String("config"))
			if err != nil {
				return fmt.Errorf("loading scenario: %w", err)
			}

			var h *fibheap.Heap[int64]
			if scenario.Reverse {
				h = fibheap.New[int64](func(a, b int64) int { return cmp.Compare(b, a) })
			} else {
				h = fibheap.NewOrdered[int64]()
			}

			rng := rand.New(rand.NewSource(scenario.Seed))
			for _, v := range randomElements(rng, scenario.Count, scenario.Bound) {
				h.Insert(v)
				insertsTotal.Inc()
			}
			logger.Printf("inserted %d elements across %d root trees", h.Size(), h.RootCount())

			if first, ok := h.ExtractMin(); ok {
				extractsTotal.Inc()
				logger.Printf("extracted minimum %v; forest after consolidation:", first.Element())
				display(ctx.App.Writer, h)
			}

			var drained []int64
			for {
				handle, ok := h.ExtractMin()
				if !ok {
					break
				}
				extractsTotal.Inc()
				drained = append(drained, handle.Element())
			}
			logger.Printf("remaining elements in order: %v", drained)

			metrics.WritePrometheus(ctx.App.Writer, false)
			return nil
		},
	}
}

func decreaseDemoCommand() *cli.Command {
	return &cli.Command{
		Name:  "decrease-demo",
		Usage: "insert 10, 20, 30; decrease 30 to 5; show that 5 extracts first",
		Action: func(ctx *cli.Context) error {
			logger := log.New(ctx.App.Writer, "decrease-demo: ", log.LstdFlags)

			h := fibheap.NewOrdered[int]()
			h.Insert(10)
			h.Insert(20)
			thirty := h.Insert(30)
			insertsTotal.Inc()
			insertsTotal.Inc()
			insertsTotal.Inc()

			if err := h.DecreaseKey(thirty, 5); err != nil {
				return err
			}
			decreaseKeysTotal.Inc()

			min, _ := h.Minimum()
			logger.Printf("minimum is now %v", min.Element())

			extracted, _ := h.ExtractMin()
			extractsTotal.Inc()
			logger.Printf("extracted %v", extracted.Element())
			return nil
		},
	}
}

func mergeDemoCommand() *cli.Command {
	return &cli.Command{
		Name:  "merge-demo",
		Usage: "merge heap [4 7] with heap [1 9 2] and drain the result",
		Action: func(ctx *cli.Context) error {
			logger := log.New(ctx.App.Writer, "merge-demo: ", log.LstdFlags)

			a := fibheap.NewOrdered[int]()
			for _, v := range []int{4, 7} {
				a.Insert(v)
				insertsTotal.Inc()
			}

			b := fibheap.NewOrdered[int]()
			for _, v := range []int{1, 9, 2} {
				b.Insert(v)
				insertsTotal.Inc()
			}

			if err := a.Merge(b); err != nil {
				return err
			}
			logger.Printf("heap B is empty after merge: %v", b.IsEmpty())

			var drained []int
			for {
				handle, ok := a.ExtractMin()
				if !ok {
					break
				}
				extractsTotal.Inc()
				drained = append(drained, handle.Element())
			}
			logger.Printf("drained: %v", drained)
			return nil
		},
	}
}

func deleteDemoCommand() *cli.Command {
	return &cli.Command{
		Name:  "delete-demo",
		Usage: "insert a..j, delete c and a, drain the remaining 8 in sorted order",
		Action: func(ctx *cli.Context) error {
			logger := log.New(ctx.App.Writer, "delete-demo: ", log.LstdFlags)

			h := fibheap.NewOrdered[string]()
			letters := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}
			handles := make(map[string]*fibheap.Handle[string], len(letters))
			for _, s := range letters {
				handles[s] = h.Insert(s)
				insertsTotal.Inc()
			}

			for _, s := range []string{"c", "a"} {
				if _, err := h.Delete(handles[s]); err != nil {
					return err
				}
				deletesTotal.Inc()
				logger.Printf("deleted %q", s)
			}

			var drained []string
			for {
				handle, ok := h.ExtractMin()
				if !ok {
					break
				}
				extractsTotal.Inc()
				drained = append(drained, handle.Element())
			}
			logger.Printf("drained: %v", drained)
			return nil
		},
	}
}

func reverseDemoCommand() *cli.Command {
	return &cli.Command{
		Name:  "reverse-demo",
		Usage: "insert apple, banana, cherry under a reverse comparator and drain",
		Action: func(ctx *cli.Context) error {
			logger := log.New(ctx.App.Writer, "reverse-demo: ", log.LstdFlags)

			h := fibheap.New[string](func(a, b string) int { return cmp.Compare(b, a) })
			for _, s := range []string{"apple", "banana", "cherry"} {
				h.Insert(s)
				insertsTotal.Inc()
			}

			min, _ := h.Minimum()
			logger.Printf("minimum is %q", min.Element())

			var drained []string
			for {
				handle, ok := h.ExtractMin()
				if !ok {
					break
				}
				extractsTotal.Inc()
				drained = append(drained, handle.Element())
			}
			logger.Printf("drained: %v", drained)
			return nil
		},
	}
}

// randomElements generates count values in [0, bound) for any integer
// element type — used to keep the demo's random-instance generator
// generic the way the teacher's own A* search code is generic over its
// cost type via golang.org/x/exp/constraints.
func randomElements[T constraints.Integer](rng *rand.Rand, count int, bound T) []T {
	out := make([]T, count)
	for i := range out {
		out[i] = T(rng.Int63n(int64(bound)))
	}
	return out
}
