// Package batch renders visibility-state sweeps: one snapshot per
// peel depth and one per isolated structure type, across a worker
// pool.
package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/HugoSmits86/nativewebp"

	"anatomy-engine/internal/anatomy"
	"anatomy-engine/internal/resolve"
	"anatomy-engine/internal/snapshot"
	"anatomy-engine/internal/visibility"
)

// Config holds shared resources for a sweep run.
type Config struct {
	OutputDir   string
	RenderSize  int
	Supersample int
	Workers     int
}

// Job names one snapshot and builds its visibility state. States are
// built per job so workers never share mutable state.
type Job struct {
	Name  string
	State func() *visibility.State
}

// Result holds the outcome of one snapshot job.
type Result struct {
	Name    string
	Path    string
	Success bool
	Error   string
}

// SweepJobs builds the standard sweep: peel depths 0..MaxLayer, then
// one type-solo snapshot per structure type present in the scene.
func SweepJobs(resolved []resolve.Resolved) []Job {
	var jobs []Job

	for depth := 0; depth <= anatomy.MaxLayer; depth++ {
		d := depth
		jobs = append(jobs, Job{
			Name: fmt.Sprintf("peel_%d", d),
			State: func() *visibility.State {
				st := visibility.NewState()
				for i := 0; i < d; i++ {
					st.PeelDeeper()
				}
				return st
			},
		})
	}

	present := make(map[anatomy.StructureType]bool)
	for i := range resolved {
		present[resolved[i].Meta.Type] = true
	}
	for _, t := range anatomy.AllTypes() {
		if !present[t] {
			continue
		}
		solo := t
		jobs = append(jobs, Job{
			Name: fmt.Sprintf("only_%s", solo),
			State: func() *visibility.State {
				st := visibility.NewState()
				for _, other := range anatomy.AllTypes() {
					st.SetTypeVisible(other, other == solo)
				}
				return st
			},
		})
	}
	return jobs
}

// Run renders all jobs using a worker pool and reports progress every
// two seconds.
func Run(cfg Config, resolved []resolve.Resolved, jobs []Job) []Result {
	total := len(jobs)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					rate := float64(p) / elapsed
					fmt.Printf("  [%d/%d] %.1f snapshots/sec\n", p, total, rate)
				}
			}
		}
	}()

	jobChan := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobChan {
				results[idx] = renderJob(cfg, resolved, jobs[idx])
				processed.Add(1)
			}
		}()
	}

	for i := range jobs {
		jobChan <- i
	}
	close(jobChan)

	wg.Wait()
	close(done)

	return results
}

func renderJob(cfg Config, resolved []resolve.Resolved, job Job) Result {
	img := snapshot.Render(resolved, job.State(), cfg.RenderSize, cfg.Supersample)

	outPath := filepath.Join(cfg.OutputDir, job.Name+".webp")
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return Result{Name: job.Name, Error: err.Error()}
	}

	f, err := os.Create(outPath)
	if err != nil {
		return Result{Name: job.Name, Error: err.Error()}
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		return Result{Name: job.Name, Error: fmt.Sprintf("WebP encode: %v", err)}
	}

	return Result{Name: job.Name, Path: outPath, Success: true}
}
