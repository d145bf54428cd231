package store

import (
	"sort"
	"sync"
	"time"
)

// Memory keeps all records in a process-local map. This is the default
// store; records do not survive a restart.
type Memory struct {
	mu      sync.Mutex
	reports map[string]Report
}

func NewMemory() *Memory {
	return &Memory{reports: make(map[string]Report)}
}

func (m *Memory) Put(report Report) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.reports[report.ID]; ok {
		return ErrDuplicateID
	}
	m.reports[report.ID] = report
	return nil
}

func (m *Memory) Get(id string) (Report, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	report, ok := m.reports[id]
	if !ok {
		return Report{}, ErrNotFound
	}
	return report, nil
}

func (m *Memory) Update(id string, mutate func(*Report)) (Report, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	report, ok := m.reports[id]
	if !ok {
		return Report{}, ErrNotFound
	}

	mutate(&report)
	report.UpdatedAt = time.Now()
	m.reports[id] = report
	return report, nil
}

func (m *Memory) Pending(before time.Time) ([]Report, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var pending []Report
	for _, report := range m.reports {
		if report.Status == StatusPending && report.CreatedAt.Before(before) {
			pending = append(pending, report)
		}
	}

	sort.Slice(pending, func(i, j int) bool {
		return pending[i].CreatedAt.Before(pending[j].CreatedAt)
	})
	return pending, nil
}
