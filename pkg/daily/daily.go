// Package daily decides which tasks are offered during the day-start
// elimination pass and tracks whether a new day has begun.
package daily

import (
	"sort"
	"time"

	"tableflip.dev/whittle/pkg/store"
	"tableflip.dev/whittle/pkg/task"
)

const (
	layoutISO = "2006-01-02"

	// maxDistinctWeights bounds how many weight tiers are offered.
	maxDistinctWeights = 5

	// maxCandidates bounds the elimination pass to a decidable handful.
	maxCandidates = 10
)

// Engine gates the daily prompt and computes elimination candidates. It holds
// no progress state; the host walks the candidate list itself.
type Engine struct {
	Persistence store.Persistence

	// Now is injectable for day-rollover tests.
	Now func() time.Time
}

func (e *Engine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

func (e *Engine) today() string {
	return e.now().Local().Format(layoutISO)
}

// IsNewDay reports whether today differs from the stored last active date.
// True when no date has ever been stored, or when the stored marker does not
// parse as a date.
func (e *Engine) IsNewDay() bool {
	if e.Persistence == nil {
		return true
	}
	last, ok := e.Persistence.LastActiveDate()
	if !ok {
		return true
	}
	day, err := time.ParseInLocation(layoutISO, last, time.Local)
	if err != nil {
		return true
	}
	return !task.Timestamp{Time: day}.SameDay(e.now())
}

// MarkActive records today as the last active date so the prompt does not
// re-trigger until tomorrow.
func (e *Engine) MarkActive() error {
	if e.Persistence == nil {
		return nil
	}
	return e.Persistence.SetLastActiveDate(e.today())
}

// Candidates computes the ordered elimination list: incomplete tasks sorted by
// weight descending then name ascending, restricted to the top five distinct
// weight values, capped at ten tasks. The result is a snapshot; recomputing
// against an unchanged task set yields the same sequence.
func Candidates(tasks []*task.Task) []*task.Task {
	open := make([]*task.Task, 0, len(tasks))
	for _, t := range tasks {
		if t == nil || t.Completed {
			continue
		}
		open = append(open, t)
	}

	sort.SliceStable(open, func(i, j int) bool {
		if open[i].Weight != open[j].Weight {
			return open[i].Weight > open[j].Weight
		}
		return open[i].Name < open[j].Name
	})

	keep := make(map[int]bool, maxDistinctWeights)
	for _, t := range open {
		if keep[t.Weight] {
			continue
		}
		if len(keep) == maxDistinctWeights {
			break
		}
		keep[t.Weight] = true
	}

	out := make([]*task.Task, 0, maxCandidates)
	for _, t := range open {
		if !keep[t.Weight] {
			continue
		}
		out = append(out, t)
		if len(out) == maxCandidates {
			break
		}
	}
	return out
}
