package mock

import (
	"context"
	"errors"
	"sync"

	"github.com/studysync/backend/internal/application/adapter"
)

// Planner is a controllable stand-in for the Gemini study planner service.
// Scenarios configure it to return a fixed plan, an error, or report the
// service as unavailable.
type Planner struct {
	mu          sync.Mutex
	available   bool
	result      *adapter.StudyPlanResult
	err         error
	lastRequest *adapter.StudyPlanRequest
}

func NewPlanner() *Planner {
	p := &Planner{}
	p.Reset()
	return p
}

// Reset restores the default behavior: available, returning a canned plan.
func (p *Planner) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.available = true
	p.err = nil
	p.lastRequest = nil
	p.result = &adapter.StudyPlanResult{
		Title:   "Weekly Study Plan",
		Content: "## Day 1\nReview lecture notes and solve practice problems.",
	}
}

// SetResult makes subsequent GeneratePlan calls return the given plan.
func (p *Planner) SetResult(title, content string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.err = nil
	p.result = &adapter.StudyPlanResult{Title: title, Content: content}
}

// SetError makes subsequent GeneratePlan calls fail with the given message.
func (p *Planner) SetError(message string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.err = errors.New(message)
}

// SetUnavailable makes IsAvailable report false.
func (p *Planner) SetUnavailable() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.available = false
}

// LastRequest returns the most recent request passed to GeneratePlan.
func (p *Planner) LastRequest() *adapter.StudyPlanRequest {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastRequest
}

func (p *Planner) GeneratePlan(ctx context.Context, request *adapter.StudyPlanRequest) (*adapter.StudyPlanResult, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lastRequest = request
	if p.err != nil {
		return nil, p.err
	}
	return p.result, nil
}

func (p *Planner) IsAvailable() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.available
}
