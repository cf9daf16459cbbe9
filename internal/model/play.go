package model

import "github.com/google/uuid"

// Possession identifies which team, if either, has the ball.
type Possession int

const (
	PossessionNone Possession = iota
	PossessionHome
	PossessionAway
)

// Opponent returns the other team's possession value; PossessionNone maps
// to itself.
func (p Possession) Opponent() Possession {
	switch p {
	case PossessionHome:
		return PossessionAway
	case PossessionAway:
		return PossessionHome
	default:
		return PossessionNone
	}
}

// Down is the attempt number within the current series.
type Down int

const (
	DownNone Down = iota
	First
	Second
	Third
	Fourth
)

// PlayKind tags which variant a Play's detail payload holds (spec §9:
// tagged variant, not an inheritance hierarchy).
type PlayKind int

const (
	PlayRun PlayKind = iota
	PlayPass
	PlayKickoff
	PlayPunt
	PlayFieldGoal
)

// SegmentKind tags a PlaySegment's variant.
type SegmentKind int

const (
	SegmentRun SegmentKind = iota
	SegmentPass
	SegmentReturn
)

// PlaySegment captures one subdivision of a play when the ball changes
// hands mid-play (laterals, fumbles, returns). Common fields live on the
// struct directly; Kind tags which are meaningful.
type PlaySegment struct {
	Kind        SegmentKind
	Carrier     uuid.UUID
	Yards       int
	Fumbled     bool
	Recoverer   uuid.UUID
	OutOfBounds bool
}

// InterceptionDetail describes a pass intercepted by the defense.
type InterceptionDetail struct {
	Interceptor     uuid.UUID
	ReturnYards     int
	PickSix         bool
	FumbledOnReturn bool
}

// RunDetail is the PlayRun variant payload.
type RunDetail struct {
	Carrier     uuid.UUID
	Tackler     uuid.UUID // primary tackler credited on the stop, zero if none fielded
	Direction   string    // one of 5 enumerated buckets, e.g. "left_end", "left_tackle", "middle", "right_tackle", "right_end"
	Scrambled   bool
	BrokeTackle bool
	Breakaway   bool
	OutOfBounds bool
}

// PassDetail is the PlayPass variant payload.
type PassDetail struct {
	Passer          uuid.UUID
	PrimaryTarget   uuid.UUID
	Sacker          uuid.UUID // credited pass rusher when Sacked is true
	PassType        int       // distributions.PassType, stored as int to avoid an import cycle
	AirYards        int
	YardsAfterCatch int
	Completed       bool
	Sacked          bool
	Intercepted     bool
	Interception    *InterceptionDetail
	Segments        []PlaySegment
}

// KickoffDetail is the PlayKickoff variant payload.
type KickoffDetail struct {
	Kicker          uuid.UUID
	Returner        uuid.UUID
	Onside          bool
	OnsideRecovered bool
	FairCatchCalled bool
	Muffed          bool
	Touchback       bool
	KickDistance    int
	ReturnYards     int
}

// PuntDetail is the PlayPunt variant payload.
type PuntDetail struct {
	Punter                  uuid.UUID
	Returner                uuid.UUID
	Blocked                 bool
	BlockRecoveredByDefense bool
	FairCatchCalled         bool
	Downed                  bool
	OutOfBounds             bool
	Distance                int
	HangTime                float64
	ReturnYards             int
}

// FieldGoalDetail is the PlayFieldGoal variant payload.
type FieldGoalDetail struct {
	Kicker                  uuid.UUID
	DistanceYards           int
	Blocked                 bool
	Made                    bool
	BlockRecoveredByDefense bool
	ReturnYards             int
}

// Play is a polymorphic record: common fields live here, variant-specific
// data in exactly one of the *Detail pointers selected by Kind (spec §3,
// §9). A Play is appended to Game.Plays exactly once, after penalty
// enforcement and clock updates complete (spec §3 invariant 5).
type Play struct {
	ID    uuid.UUID
	Index int
	Kind  PlayKind

	StartFieldPosition int
	EndFieldPosition   int
	YardsGained        int
	Down               Down
	YardsToGo          int
	Possession         Possession
	PossessionChanged  bool
	Interception       bool

	ElapsedSeconds float64

	Penalties []Penalty
	Fumbles   []PlaySegment
	Injuries  []Injury

	FirstDown bool
	Touchdown bool
	Safety    bool

	OffensivePlayers []uuid.UUID
	DefensivePlayers []uuid.UUID

	ClockStopped   bool
	QuarterExpired bool
	HalfExpired    bool
	GameExpired    bool

	Run       *RunDetail
	Pass      *PassDetail
	Kickoff   *KickoffDetail
	Punt      *PuntDetail
	FieldGoal *FieldGoalDetail
}
