package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
)

// StartupStep is one stage of server initialization
type StartupStep struct {
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

// Readiness tracks initialization progress and backs the health endpoint
type Readiness struct {
	mu      sync.RWMutex
	ready   bool
	current string
	steps   []StartupStep
}

// NewReadiness creates a tracker for the named startup steps
func NewReadiness(steps ...string) *Readiness {
	r := &Readiness{current: "Initializing..."}
	for _, name := range steps {
		r.steps = append(r.steps, StartupStep{Name: name})
	}
	return r
}

// SetCurrentStep updates the current initialization step
func (r *Readiness) SetCurrentStep(step string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = step
}

// CompleteStep marks a step as completed
func (r *Readiness) CompleteStep(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.steps {
		if r.steps[i].Name == name {
			r.steps[i].Completed = true
			return
		}
	}
}

// Progress returns the share of completed steps in percent
func (r *Readiness) Progress() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.progressLocked()
}

func (r *Readiness) progressLocked() int {
	if r.ready || len(r.steps) == 0 {
		return 100
	}
	completed := 0
	for _, step := range r.steps {
		if step.Completed {
			completed++
		}
	}
	return completed * 100 / len(r.steps)
}

// MarkReady marks the server as fully initialized
func (r *Readiness) MarkReady() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ready = true
	r.current = "Server ready"
	for i := range r.steps {
		r.steps[i].Completed = true
	}
}

// IsReady returns whether the server is fully initialized
func (r *Readiness) IsReady() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.ready
}

type healthResponse struct {
	Status   string        `json:"status"`
	Current  string        `json:"current"`
	Progress int           `json:"progress"`
	Steps    []StartupStep `json:"steps"`
}

// Healthz reports "ok" once the server is ready and 503 while it starts
func (r *Readiness) Healthz(w http.ResponseWriter, req *http.Request) {
	r.mu.RLock()
	resp := healthResponse{
		Status:   "starting",
		Current:  r.current,
		Progress: r.progressLocked(),
		Steps:    append([]StartupStep(nil), r.steps...),
	}
	status := http.StatusServiceUnavailable
	if r.ready {
		resp.Status = "ok"
		status = http.StatusOK
	}
	r.mu.RUnlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("Error encoding health response: %v", err)
	}
}
