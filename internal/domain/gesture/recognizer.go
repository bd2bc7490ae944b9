package gesture

import (
	"sync"
	"time"
)

const (
	// MaxRotation is the presentational tilt limit in degrees.
	MaxRotation = 20.0
	// rotationDivisor converts a horizontal offset into a tilt angle.
	rotationDivisor = 10.0

	// ExitOffset is the synthetic horizontal offset applied while a decided
	// card animates off-screen. Programmatic likes/dislikes reuse it so their
	// exit direction matches pointer-driven swipes.
	ExitOffset = 500.0

	// ExitDuration is how long the exit animation is given to play before the
	// decision is signalled upward. Deck and vote side effects must not fire
	// earlier, or the next card appears to jump.
	ExitDuration = 300 * time.Millisecond
)

// Phase is the drag state of one card slot.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseDragging
	PhaseReleasing
)

// DecisionFunc receives the committed decision for a card once its exit
// animation has had time to complete.
type DecisionFunc func(clubID int64, decision Decision)

// Recognizer converts raw pointer input for a single card slot into a drag
// offset and, on release, a decision. The transient drag state is scoped to
// the club currently occupying the slot: Rebind must be called whenever a new
// club is rendered there.
type Recognizer struct {
	mu sync.Mutex

	clubID     int64
	onDecision DecisionFunc

	phase     Phase
	pointerID int64
	startX    float64
	startY    float64
	dx        float64
	dy        float64
	// gen counts rebinds; a scheduled decision signal from an earlier
	// binding is stale and must not fire.
	gen uint64

	exitDuration time.Duration
	schedule     func(d time.Duration, fn func())
}

func New(clubID int64, onDecision DecisionFunc) *Recognizer {
	return &Recognizer{
		clubID:       clubID,
		onDecision:   onDecision,
		exitDuration: ExitDuration,
		schedule: func(d time.Duration, fn func()) {
			time.AfterFunc(d, fn)
		},
	}
}

// PointerDown starts a drag, capturing the pointer so later moves are
// attributed to this card even if the pointer leaves its bounds. Ignored
// unless the slot is idle.
func (r *Recognizer) PointerDown(pointerID int64, x, y float64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.phase != PhaseIdle {
		return
	}
	r.phase = PhaseDragging
	r.pointerID = pointerID
	r.startX = x
	r.startY = y
	r.dx = 0
	r.dy = 0
}

// PointerMove updates the drag offset. Moves from uncaptured pointers are
// ignored.
func (r *Recognizer) PointerMove(pointerID int64, x, y float64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.phase != PhaseDragging || pointerID != r.pointerID {
		return
	}
	r.dx = x - r.startX
	r.dy = y - r.startY
}

// PointerUp releases the captured pointer and classifies the drag.
func (r *Recognizer) PointerUp(pointerID int64) {
	r.release(pointerID)
}

// PointerCancel is treated identically to PointerUp: the card always resolves
// into a decision (possibly none) instead of sticking mid-drag.
func (r *Recognizer) PointerCancel(pointerID int64) {
	r.release(pointerID)
}

func (r *Recognizer) release(pointerID int64) {
	r.mu.Lock()
	if r.phase != PhaseDragging || pointerID != r.pointerID {
		r.mu.Unlock()
		return
	}

	decision := Classify(r.dx)
	if decision == DecisionNone {
		// Spring back, no side effects. The club stays at the front.
		r.phase = PhaseIdle
		r.dx = 0
		r.dy = 0
		r.mu.Unlock()
		return
	}
	fire := r.beginExitLocked(decision)
	r.mu.Unlock()

	r.schedule(r.exitDuration, fire)
}

// Like commits the card programmatically, bypassing pointer state.
func (r *Recognizer) Like() {
	r.decide(DecisionLike)
}

// Dislike commits the card programmatically, bypassing pointer state.
func (r *Recognizer) Dislike() {
	r.decide(DecisionDislike)
}

func (r *Recognizer) decide(decision Decision) {
	r.mu.Lock()
	if r.phase == PhaseReleasing {
		r.mu.Unlock()
		return
	}
	fire := r.beginExitLocked(decision)
	r.mu.Unlock()

	r.schedule(r.exitDuration, fire)
}

// beginExitLocked puts the card on its exit path and returns the delayed
// decision signal. The caller schedules it after releasing the lock.
func (r *Recognizer) beginExitLocked(decision Decision) func() {
	r.phase = PhaseReleasing
	if decision == DecisionLike {
		r.dx = ExitOffset
	} else {
		r.dx = -ExitOffset
	}

	clubID, gen := r.clubID, r.gen
	return func() {
		r.mu.Lock()
		if r.gen != gen {
			// The slot was rebound while the exit animation played; the
			// decision belongs to a club no longer shown here.
			r.mu.Unlock()
			return
		}
		if r.phase == PhaseReleasing {
			r.phase = PhaseIdle
			r.dx = 0
			r.dy = 0
		}
		r.mu.Unlock()
		r.onDecision(clubID, decision)
	}
}

// Rebind points the slot at a new club. The drag offset is forcibly zeroed
// with no transition, regardless of any in-flight state, and any scheduled
// decision signal for the previous binding is discarded: a slot must never
// retain a stale offset or report a stale decision once a new club occupies
// it.
func (r *Recognizer) Rebind(clubID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.gen++
	r.clubID = clubID
	r.phase = PhaseIdle
	r.pointerID = 0
	r.dx = 0
	r.dy = 0
}

// Offset returns the current drag offset.
func (r *Recognizer) Offset() (dx, dy float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.dx, r.dy
}

// Rotation returns the presentational tilt in degrees, proportional to the
// horizontal offset and clamped to ±MaxRotation.
func (r *Recognizer) Rotation() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	deg := r.dx / rotationDivisor
	if deg > MaxRotation {
		return MaxRotation
	}
	if deg < -MaxRotation {
		return -MaxRotation
	}
	return deg
}

// Phase returns the current drag phase.
func (r *Recognizer) Phase() Phase {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.phase
}

// ClubID returns the club currently bound to the slot.
func (r *Recognizer) ClubID() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.clubID
}
