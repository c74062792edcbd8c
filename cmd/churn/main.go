package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/delaneyj/slotparty/object"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
)

func main() {
	log.Print("Starting churn benchmark, please wait...")
	defer log.Print("Finished churn benchmark")

	churnCfgs := []churnConfig{
		{
			name:          "steady widget",
			emitters:      10,
			receivers:     10,
			deathFraction: 0,
			iterations:    200000,
		},
		{
			name:          "dying receivers",
			emitters:      10,
			receivers:     100,
			deathFraction: 0.1,
			iterations:    20000,
		},
		{
			name:           "suicide in slot",
			emitters:       4,
			receivers:      250,
			deathFraction:  0.05,
			inSlotFraction: 1,
			iterations:     5000,
		},
		{
			name:          "compaction pressure",
			emitters:      1,
			receivers:     1000,
			deathFraction: 0.5,
			iterations:    2000,
		},
	}

	type results struct {
		fired    int64
		deaths   int64
		duration time.Duration
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{
		"test", "emitters", "receivers", "death%", "in-slot%",
		"nTimes", "time", "fired", "deaths", "fireRate", "title",
	})

	testRepeats := 5
	for _, cfg := range churnCfgs {
		log.Printf("Running '%s' config", cfg.name)

		runOnce := func() results {
			start := time.Now()
			fired, deaths := runChurn(cfg)
			return results{fired: fired, deaths: deaths, duration: time.Since(start)}
		}
		// run once to warm up
		runOnce()

		best := results{duration: time.Hour}
		for i := 0; i < testRepeats; i++ {
			log.Printf("Running '%s' config, iteration %d/%d %d%%", cfg.name, i+1, testRepeats, (i+1)*100/testRepeats)
			res := runOnce()
			if res.duration < best.duration {
				best = res
			}
		}

		makeTitle := func() string {
			sb := strings.Builder{}
			sb.WriteString(fmt.Sprintf("%dx%d", cfg.emitters, cfg.receivers))
			if cfg.deathFraction > 0 {
				sb.WriteString(fmt.Sprintf(" churn %0.2f%%", 100*cfg.deathFraction))
			}
			if cfg.inSlotFraction > 0 {
				sb.WriteString(" reentrant")
			}
			return sb.String()
		}

		fireRate := float64(best.fired) / (float64(best.duration) / float64(time.Millisecond))

		table.Append([]string{
			cfg.name,
			fmt.Sprint(cfg.emitters),
			fmt.Sprint(cfg.receivers),
			fmt.Sprint(cfg.deathFraction),
			fmt.Sprint(cfg.inSlotFraction),
			humanize.Comma(cfg.iterations),
			fmt.Sprint(best.duration),
			humanize.Comma(best.fired),
			humanize.Comma(best.deaths),
			humanize.Comma(int64(fireRate)) + "/ms",
			makeTitle(),
		})
	}
	table.Render()
}

type churnConfig struct {
	name           string  // friendly name for the test, should be unique
	emitters       int     // emitters sharing the receiver pool
	receivers      int     // receivers alive at any time
	deathFraction  float64 // fraction of receivers replaced every iteration
	inSlotFraction float64 // fraction of those deaths triggered from inside a slot
	iterations     int64   // number of emit rounds
}

// runChurn keeps a pool of receivers connected to every emitter, replacing
// a share of them each round, and reports how many slots fired and how many
// receivers died.
func runChurn(cfg churnConfig) (fired, deaths int64) {
	ctx := context.Background()
	rnd := rand.New(rand.NewSource(1))

	root := object.New(nil)
	defer root.Destroy()

	emitters := make([]*object.Emitter[int], cfg.emitters)
	for i := range emitters {
		emitters[i] = object.NewEmitter[int](object.New(root))
	}

	var doomed []*object.Node
	connect := func(r *object.Node) {
		for _, e := range emitters {
			e.Connect(r, object.Func(func(ctx context.Context, v int) {
				fired++
				if len(doomed) > 0 && rnd.Float64() < cfg.inSlotFraction {
					last := doomed[len(doomed)-1]
					doomed = doomed[:len(doomed)-1]
					last.Destroy()
				}
			}))
		}
	}

	pool := make([]*object.Node, cfg.receivers)
	for i := range pool {
		pool[i] = object.New(root)
		connect(pool[i])
	}

	for it := int64(0); it < cfg.iterations; it++ {
		for i := range pool {
			if rnd.Float64() >= cfg.deathFraction {
				continue
			}
			deaths++
			if cfg.inSlotFraction > 0 {
				doomed = append(doomed, pool[i])
			} else {
				pool[i].Destroy()
			}
			pool[i] = object.New(root)
			connect(pool[i])
		}
		for _, e := range emitters {
			e.Emit(ctx, int(it))
		}
		for _, r := range doomed {
			r.Destroy()
		}
		doomed = doomed[:0]
	}
	return fired, deaths
}
