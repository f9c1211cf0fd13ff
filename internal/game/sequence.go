package game

import "math"

// StageKind identifies one step of the timeout cinematic.
type StageKind int

const (
	StageApproach StageKind = iota // Antagonist walks in
	StageShake                     // Screen shake
	StageSplit                     // Ground splits open
	StageSink                      // Character sinks out of view
)

// String returns a human-readable name for the stage.
func (k StageKind) String() string {
	switch k {
	case StageApproach:
		return "approach"
	case StageShake:
		return "shake"
	case StageSplit:
		return "split"
	case StageSink:
		return "sink"
	default:
		return "unknown"
	}
}

// Stage is one fixed step of the cinematic.
type Stage struct {
	Kind     StageKind
	Duration float64
	Elapsed  float64
}

// Progress returns elapsed/duration clamped to [0, 1].
func (s Stage) Progress() float64 {
	if s.Duration <= 0 {
		return 1
	}
	p := s.Elapsed / s.Duration
	if p > 1 {
		return 1
	}
	return p
}

// Presentation offsets for the current cinematic frame, all pure
// functions of stage progress.
const (
	shakeAmplitude = 4.0  // px
	shakeFrequency = 40.0 // rad/s
	splitMaxWidth  = 60.0 // px
	sinkDepth      = 90.0 // px
)

// StageView is the render-facing view of the sequencer: which stage is
// active plus the derived presentation offsets.
type StageView struct {
	Stage    StageKind
	Progress float64
	Approach float64 // 0..1 antagonist approach progress
	Shake    float64 // horizontal shake offset, px
	Split    float64 // ground split magnitude, px
	Sink     float64 // vertical sink offset, px
}

// Sequencer runs the four-stage timeout cinematic strictly in order.
// Cursor semantics: -1 = not started, len(stages) = complete.
type Sequencer struct {
	stages []Stage
	cursor int
}

// NewTimeoutSequence creates the fixed cinematic: approach 2.0s,
// shake 0.5s, split 1.0s, sink 2.0s.
func NewTimeoutSequence() *Sequencer {
	return &Sequencer{
		stages: []Stage{
			{Kind: StageApproach, Duration: 2.0},
			{Kind: StageShake, Duration: 0.5},
			{Kind: StageSplit, Duration: 1.0},
			{Kind: StageSink, Duration: 2.0},
		},
		cursor: -1,
	}
}

// Start begins the sequence at the first stage. No-op if already running
// or complete.
func (s *Sequencer) Start() {
	if s.cursor != -1 {
		return
	}
	s.cursor = 0
}

// Reset returns the sequencer to the not-started state with all stage
// clocks cleared.
func (s *Sequencer) Reset() {
	for i := range s.stages {
		s.stages[i].Elapsed = 0
	}
	s.cursor = -1
}

// Update advances the current stage, carrying leftover time into the next
// so stage boundaries stay exact. Stages cannot be skipped or reordered.
func (s *Sequencer) Update(dt float64) {
	if s.cursor < 0 || s.cursor >= len(s.stages) {
		return
	}

	remaining := dt
	for remaining > 0 && s.cursor < len(s.stages) {
		st := &s.stages[s.cursor]
		need := st.Duration - st.Elapsed
		if remaining < need {
			st.Elapsed += remaining
			return
		}
		st.Elapsed = st.Duration
		remaining -= need
		s.cursor++
	}
}

// Complete reports whether all stages have run. Stays true until Reset.
func (s *Sequencer) Complete() bool {
	return s.cursor >= len(s.stages)
}

// Started reports whether the sequence has begun.
func (s *Sequencer) Started() bool {
	return s.cursor != -1
}

// Current returns the active stage, or false when not started or complete.
func (s *Sequencer) Current() (Stage, bool) {
	if s.cursor < 0 || s.cursor >= len(s.stages) {
		return Stage{}, false
	}
	return s.stages[s.cursor], true
}

// View computes the presentation offsets for the current frame. Earlier
// stages hold their final value once passed; later stages are zero until
// reached.
func (s *Sequencer) View() StageView {
	v := StageView{Stage: StageApproach}
	if s.cursor < 0 {
		return v
	}

	for i := 0; i <= s.cursor && i < len(s.stages); i++ {
		st := s.stages[i]
		p := st.Progress()
		switch st.Kind {
		case StageApproach:
			v.Approach = p
		case StageShake:
			// Shake settles once its stage has passed.
			if i == s.cursor {
				v.Shake = shakeAmplitude * math.Sin(st.Elapsed*shakeFrequency)
			}
		case StageSplit:
			v.Split = splitMaxWidth * p
		case StageSink:
			v.Sink = sinkDepth * p
		}
	}

	if s.cursor < len(s.stages) {
		cur := s.stages[s.cursor]
		v.Stage = cur.Kind
		v.Progress = cur.Progress()
	} else {
		v.Stage = StageSink
		v.Progress = 1
		v.Shake = 0
	}
	return v
}
