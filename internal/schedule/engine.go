// Package schedule implements the schedule consistency engine.
//
// The engine owns a single day's activities. After every mutation the
// collection is sorted by start time and free of overlaps: conflicting
// activities are pushed forward rather than rejected.
package schedule

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/rs/zerolog"

	"github.com/javiermolinar/dayplan/internal/activity"
	"github.com/javiermolinar/dayplan/internal/timeutil"
)

// ErrNotFound is returned when an operation references an unknown activity id.
var ErrNotFound = errors.New("activity not found")

// Result describes the outcome of a mutation.
type Result struct {
	Activity  activity.Activity // the activity the call targeted, after resolution
	Modified  []int             // ids whose fields changed in this call
	Conflicts []Conflict        // overlaps resolved in this call
}

// Engine owns the activity collection of one day.
// All methods are safe for concurrent use; calls are serialized.
type Engine struct {
	mu         sync.Mutex
	activities []activity.Activity // sorted by start time
	modified   []int
	categories activity.CategorySet
	log        zerolog.Logger
}

// Option configures optional engine behavior.
type Option func(*Engine)

// WithLogger sets the logger used for resolution and rejection events.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) {
		e.log = l.With().Str("component", "schedule").Logger()
	}
}

// WithCategories restricts activities to the given category set.
func WithCategories(set activity.CategorySet) Option {
	return func(e *Engine) {
		if set.Len() > 0 {
			e.categories = set
		}
	}
}

// New creates an empty engine.
func New(opts ...Option) *Engine {
	e := &Engine{
		categories: activity.DefaultCategorySet(),
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Categories returns the category set activities are validated against.
func (e *Engine) Categories() activity.CategorySet {
	return e.categories
}

// Add creates a new activity from the draft, inserts it in start order and
// resolves any overlap it causes.
func (e *Engine) Add(d activity.Draft) (Result, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	nd, err := d.Normalize(e.categories)
	if err != nil {
		e.log.Warn().Err(err).Str("op", "add").Msg("rejected draft")
		return Result{}, err
	}

	created := nd.Build(e.nextID())
	list := e.snapshot()
	list = slices.Insert(list, activity.InsertionIndex(nd.Time, list), created)

	return e.commit(list, created.ID, []int{created.ID}, true)
}

// Edit replaces the fields of an existing activity. If the start time is
// unchanged the activity keeps its position; otherwise it is moved to the
// position matching its new time. Overlaps are resolved afterwards.
func (e *Engine) Edit(id int, d activity.Draft) (Result, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	idx := e.indexOf(id)
	if idx < 0 {
		return Result{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}

	nd, err := d.Normalize(e.categories)
	if err != nil {
		e.log.Warn().Err(err).Str("op", "edit").Int("id", id).Msg("rejected draft")
		return Result{}, err
	}

	list := e.snapshot()
	updated := nd.Build(id)
	if list[idx].Time == nd.Time {
		list[idx] = updated
	} else {
		list = slices.Delete(list, idx, idx+1)
		list = slices.Insert(list, activity.InsertionIndex(nd.Time, list), updated)
	}

	return e.commit(list, id, []int{id}, true)
}

// Delete removes the activity with the given id.
// It reports whether an activity was removed.
func (e *Engine) Delete(id int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	idx := e.indexOf(id)
	if idx < 0 {
		return false
	}
	e.activities = slices.Delete(e.snapshot(), idx, idx+1)
	e.modified = nil
	e.log.Debug().Int("id", id).Msg("deleted activity")
	return true
}

// Reorder applies a drag-and-drop between two activities as a time swap:
// each takes the other's start time and their positions are exchanged.
// Overlaps introduced by differing durations are resolved afterwards.
func (e *Engine) Reorder(idA, idB int) (Result, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if idA == idB {
		return Result{}, nil
	}
	ia, ib := e.indexOf(idA), e.indexOf(idB)
	if ia < 0 {
		return Result{}, fmt.Errorf("%w: id %d", ErrNotFound, idA)
	}
	if ib < 0 {
		return Result{}, fmt.Errorf("%w: id %d", ErrNotFound, idB)
	}

	list := e.snapshot()
	list[ia].Time, list[ib].Time = list[ib].Time, list[ia].Time
	list[ia], list[ib] = list[ib], list[ia]

	return e.commit(list, idA, []int{idA, idB}, true)
}

// SnapToPrevious moves an activity's start to the end of its predecessor.
// The first activity has no predecessor and is left untouched.
func (e *Engine) SnapToPrevious(id int) (Result, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	idx := e.indexOf(id)
	if idx < 0 {
		return Result{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	if idx == 0 {
		return Result{Activity: e.activities[0].Clone()}, nil
	}

	list := e.snapshot()
	prevEnd := list[idx-1].End()
	if prevEnd >= timeutil.MinutesPerDay {
		return Result{}, fmt.Errorf("%w: %q ends at midnight or later", ErrDayOverflow, list[idx-1].Label)
	}
	list[idx].Time = timeutil.FromMinutes(prevEnd)

	// Moving to the predecessor's end can only close a gap, never open an overlap.
	return e.commit(list, id, []int{id}, false)
}

// Load inserts a batch of drafts, keeping their relative order among equal
// start times, and resolves overlaps once over the whole collection. Nothing
// is committed unless every draft is valid and the result fits in the day.
func (e *Engine) Load(drafts []activity.Draft) (Result, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	list := e.snapshot()
	nextID := e.nextID()
	created := make([]int, 0, len(drafts))
	for i, d := range drafts {
		nd, err := d.Normalize(e.categories)
		if err != nil {
			e.log.Warn().Err(err).Str("op", "load").Int("index", i).Msg("rejected draft")
			return Result{}, fmt.Errorf("activity %d (%q): %w", i+1, d.Label, err)
		}
		a := nd.Build(nextID)
		nextID++
		target := a.Start()
		idx, _ := slices.BinarySearchFunc(list, target+1, func(x activity.Activity, t int) int {
			return x.Start() - t
		})
		list = slices.Insert(list, idx, a)
		created = append(created, a.ID)
	}

	res, err := e.commit(list, 0, created, true)
	if err != nil {
		return Result{}, err
	}
	e.log.Debug().Int("count", len(created)).Int("conflicts", len(res.Conflicts)).Msg("loaded activities")
	return res, nil
}

// List returns a copy of the activities in start order.
func (e *Engine) List() []activity.Activity {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshot()
}

// Get returns the activity with the given id.
func (e *Engine) Get(id int) (activity.Activity, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	idx := e.indexOf(id)
	if idx < 0 {
		return activity.Activity{}, false
	}
	return e.activities[idx].Clone(), true
}

// Len returns the number of activities.
func (e *Engine) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.activities)
}

// Stats computes statistics over the current activities.
func (e *Engine) Stats() Stats {
	e.mu.Lock()
	defer e.mu.Unlock()
	return ComputeStats(e.activities)
}

// RecentlyModified returns the ids changed by the last mutation.
func (e *Engine) RecentlyModified() []int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return slices.Clone(e.modified)
}

// IsModified reports whether id was changed by the last mutation.
func (e *Engine) IsModified(id int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return slices.Contains(e.modified, id)
}

// ClearModified forgets the recently modified ids.
func (e *Engine) ClearModified() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.modified = nil
}

// commit optionally resolves overlaps on list and, on success, makes it the
// engine state. Callers hold the lock and pass a private copy.
func (e *Engine) commit(list []activity.Activity, subject int, marked []int, withResolve bool) (Result, error) {
	var conflicts []Conflict
	if withResolve {
		var err error
		conflicts, err = resolve(list)
		if err != nil {
			e.log.Warn().Err(err).Int("id", subject).Msg("rejected mutation")
			return Result{}, err
		}
	}

	modified := appendUnique(nil, marked...)
	for _, c := range conflicts {
		modified = appendUnique(modified, c.LaterID)
		e.log.Debug().
			Int("id", c.LaterID).
			Str("from", c.OriginalTime).
			Str("to", c.ResolvedTime).
			Int("after_id", c.EarlierID).
			Msg("resolved overlap")
	}

	e.activities = list
	e.modified = modified

	res := Result{Modified: slices.Clone(modified), Conflicts: conflicts}
	if idx := e.indexOf(subject); idx >= 0 {
		res.Activity = e.activities[idx].Clone()
	}
	return res, nil
}

func (e *Engine) nextID() int {
	maxID := 0
	for _, a := range e.activities {
		maxID = max(maxID, a.ID)
	}
	return maxID + 1
}

func (e *Engine) indexOf(id int) int {
	return slices.IndexFunc(e.activities, func(a activity.Activity) bool {
		return a.ID == id
	})
}

func (e *Engine) snapshot() []activity.Activity {
	out := make([]activity.Activity, len(e.activities))
	for i, a := range e.activities {
		out[i] = a.Clone()
	}
	return out
}

func appendUnique(dst []int, ids ...int) []int {
	for _, id := range ids {
		if !slices.Contains(dst, id) {
			dst = append(dst, id)
		}
	}
	return dst
}
