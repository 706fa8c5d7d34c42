// Package jobs runs catalog maintenance on a cron schedule.
package jobs

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// DefaultTimeout bounds a single run of any job.
const DefaultTimeout = 30 * time.Minute

type Job interface {
	Name() string
	Run(ctx context.Context) error
}

// Scheduler runs registered jobs on standard five-field cron specs (or
// descriptors like "@every 15m"). A job never overlaps with itself.
type Scheduler struct {
	cron    *cron.Cron
	mu      sync.Mutex
	jobs    map[string]Job
	running bool
	timeout time.Duration
}

func NewScheduler() *Scheduler {
	logger := cron.VerbosePrintfLogger(log.New(log.Writer(), "[cron] ", log.Flags()))
	return &Scheduler{
		cron: cron.New(
			cron.WithLogger(logger),
			cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
		),
		jobs:    make(map[string]Job),
		timeout: DefaultTimeout,
	}
}

// AddJob registers job on a cron expression. Names must be unique.
func (s *Scheduler) AddJob(spec string, job Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := job.Name()
	if _, exists := s.jobs[name]; exists {
		return fmt.Errorf("job %s already registered", name)
	}
	if _, err := s.cron.AddFunc(spec, func() { _ = s.run(job) }); err != nil {
		return fmt.Errorf("add job %s: %w", name, err)
	}
	s.jobs[name] = job
	log.Printf("[jobs] %s programado (%s)", name, spec)
	return nil
}

func (s *Scheduler) run(job Job) error {
	name := job.Name()
	log.Printf("[jobs] iniciando %s", name)
	start := time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if err := job.Run(ctx); err != nil {
		log.Printf("[jobs] %s falló tras %s: %v", name, time.Since(start), err)
		return err
	}
	log.Printf("[jobs] %s terminó en %s", name, time.Since(start))
	return nil
}

func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.cron.Start()
	s.running = true
	log.Println("[jobs] scheduler iniciado")
}

// Stop waits for running jobs to return.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	s.mu.Unlock()

	<-s.cron.Stop().Done()
	log.Println("[jobs] scheduler detenido")
}

// RunJobNow runs a registered job once, outside of its schedule.
func (s *Scheduler) RunJobNow(name string) error {
	s.mu.Lock()
	job, exists := s.jobs[name]
	s.mu.Unlock()
	if !exists {
		return fmt.Errorf("job %s not registered", name)
	}
	return s.run(job)
}

// Names lists the registered jobs.
func (s *Scheduler) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.jobs))
	for name := range s.jobs {
		out = append(out, name)
	}
	return out
}
