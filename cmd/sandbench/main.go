package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"sandfall/internal/core"
	"sandfall/internal/sims/sand"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

type runResult struct {
	seed    int64
	elapsed time.Duration
	census  map[string]int
}

func main() {
	steps := flag.Int("steps", 600, "number of ticks to simulate per seed")
	width := flag.Int("width", 400, "grid width")
	height := flag.Int("height", 300, "grid height")
	seed := flag.Int64("seed", 1337, "first seed")
	seeds := flag.Int("seeds", 1, "number of consecutive seeds to run")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel seed evaluations")
	showParams := flag.Bool("params", false, "print the effective parameter set and exit")
	var overrides kvList
	flag.Var(&overrides, "set", "parameter override in key=value form (repeatable)")
	flag.Parse()

	opts := map[string]string{
		"w": fmt.Sprint(*width),
		"h": fmt.Sprint(*height),
		// give headless runs something to simulate by default
		"sand_fill_chance":  "0.05",
		"water_fill_chance": "0.05",
		"wood_fill_chance":  "0.01",
	}
	for _, kv := range overrides {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			log.Fatalf("bad -set value %q, want key=value", kv)
		}
		opts[parts[0]] = parts[1]
	}

	factory, ok := core.Sims()["sand"]
	if !ok {
		log.Fatal("sand sim not registered")
	}

	if *showParams {
		provider, ok := factory(opts).(core.ParametersProvider)
		if !ok {
			log.Fatal("sim does not expose parameters")
		}
		for _, group := range provider.Parameters().Groups {
			fmt.Printf("[%s]\n", group.Name)
			for _, p := range group.Params {
				fmt.Printf("  %-24s %s\n", p.Key, p.Value)
			}
		}
		return
	}

	if *seeds < 1 {
		*seeds = 1
	}
	if *workers < 1 {
		*workers = 1
	}

	jobs := make(chan int64)
	results := make(chan runResult, *seeds)
	var wg sync.WaitGroup
	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for s := range jobs {
				results <- runSeed(factory(opts), s, *steps)
			}
		}()
	}
	go func() {
		for i := 0; i < *seeds; i++ {
			jobs <- *seed + int64(i)
		}
		close(jobs)
		wg.Wait()
		close(results)
	}()

	all := make([]runResult, 0, *seeds)
	for r := range results {
		all = append(all, r)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].seed < all[j].seed })

	labels := []string{"air", "sand", "water", "wood", "fire", "smoke", "steam"}
	fmt.Printf("%-12s %-10s", "seed", "elapsed")
	for _, l := range labels {
		fmt.Printf(" %8s", l)
	}
	fmt.Println()
	for _, r := range all {
		fmt.Printf("%-12d %-10s", r.seed, r.elapsed.Round(time.Millisecond))
		for _, l := range labels {
			fmt.Printf(" %8d", r.census[l])
		}
		fmt.Println()
	}
}

func runSeed(sim core.Sim, seed int64, steps int) runResult {
	sim.Reset(seed)

	start := time.Now()
	for i := 0; i < steps; i++ {
		sim.Step()
	}
	elapsed := time.Since(start)

	census := make(map[string]int)
	for _, m := range sim.Cells() {
		census[sand.Material(m).String()]++
	}
	return runResult{seed: seed, elapsed: elapsed, census: census}
}
