// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"testing"
)

// spyWorker counts Run calls; with stop set it also counts Stop calls,
// mimicking the retention worker's optional graceful-shutdown surface.
type spyWorker struct {
	name      string
	runCount  int
	stopCount int
	launched  *[]string
}

func (s *spyWorker) Run() {
	s.runCount++
	if s.launched != nil {
		*s.launched = append(*s.launched, s.name)
	}
}

// stoppableSpy exposes Stop so the aggregate's type assertion finds it.
type stoppableSpy struct {
	spyWorker
}

func (s *stoppableSpy) Stop() {
	s.stopCount++
}

func TestWorkers_Run_StartsEveryWorker(t *testing.T) {
	retention := &spyWorker{name: "retention"}
	audit := &spyWorker{name: "audit"}

	ws := &Workers{workers: []Worker{retention, audit}}
	ws.Run()

	for _, w := range []*spyWorker{retention, audit} {
		if w.runCount != 1 {
			t.Errorf("worker %q: expected one Run call, got %d", w.name, w.runCount)
		}
	}
}

func TestWorkers_Run_ConfigOrderPreserved(t *testing.T) {
	var launched []string

	ws := &Workers{workers: []Worker{
		&spyWorker{name: "retention", launched: &launched},
		&spyWorker{name: "audit", launched: &launched},
		&spyWorker{name: "metrics", launched: &launched},
	}}
	ws.Run()

	want := []string{"retention", "audit", "metrics"}
	for i, name := range want {
		if launched[i] != name {
			t.Errorf("expected launched[%d]=%q, got %q", i, name, launched[i])
		}
	}
}

func TestWorkers_Run_EmptyAggregate(t *testing.T) {
	// zero retention age leaves the aggregate empty; Run must not panic
	ws := &Workers{workers: []Worker{}}
	ws.Run()

	(&Workers{}).Run()
}

func TestWorkers_Run_Restartable(t *testing.T) {
	w := &spyWorker{name: "retention"}
	ws := &Workers{workers: []Worker{w}}

	ws.Run()
	ws.Run()

	if w.runCount != 2 {
		t.Errorf("expected runCount=2 after two Run calls, got %d", w.runCount)
	}
}

func TestWorkers_Stop_ReachesOnlyStoppableWorkers(t *testing.T) {
	stoppable := &stoppableSpy{spyWorker: spyWorker{name: "retention"}}
	plain := &spyWorker{name: "audit"}

	ws := &Workers{workers: []Worker{stoppable, plain}}
	ws.Run()
	ws.Stop()

	if stoppable.stopCount != 1 {
		t.Errorf("expected one Stop call on the stoppable worker, got %d", stoppable.stopCount)
	}
	if plain.stopCount != 0 {
		t.Errorf("plain worker must not be stopped, got %d Stop calls", plain.stopCount)
	}
}

func TestWorkers_Stop_EmptyAggregate(t *testing.T) {
	(&Workers{}).Stop()
}
