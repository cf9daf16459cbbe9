package model

import "github.com/google/uuid"

// PenaltyPhase is when, relative to the snap, a foul occurred.
type PenaltyPhase int

const (
	PhaseBefore PenaltyPhase = iota
	PhaseDuring
	PhaseAfter
)

// PenaltyKind enumerates the ~50 recognized foul types. The static table in
// PenaltyCatalog maps each to its base probability, home/away split,
// yardage, and enforcement classification (spec §3, §4.7).
type PenaltyKind string

const (
	FalseStart                 PenaltyKind = "false_start"
	DelayOfGame                PenaltyKind = "delay_of_game"
	DefensiveDelayOfGame       PenaltyKind = "defensive_delay_of_game"
	Encroachment               PenaltyKind = "encroachment"
	NeutralZoneInfraction      PenaltyKind = "neutral_zone_infraction"
	DefensiveOffside           PenaltyKind = "defensive_offside"
	Illegal12OnField           PenaltyKind = "offensive_12_on_field"
	DefensiveIllegal12OnField  PenaltyKind = "defensive_12_on_field"
	IllegalSubstitution        PenaltyKind = "illegal_substitution"
	DefensiveIllegalSubstitution PenaltyKind = "defensive_illegal_substitution"
	OffensiveHolding           PenaltyKind = "offensive_holding"
	DefensiveHolding           PenaltyKind = "defensive_holding"
	IllegalBlockAboveWaist     PenaltyKind = "illegal_block_above_waist"
	ChopBlock                 PenaltyKind = "chop_block"
	IllegalManDownfield        PenaltyKind = "illegal_man_downfield"
	IllegalFormation           PenaltyKind = "illegal_formation"
	IllegalMotion              PenaltyKind = "illegal_motion"
	IllegalShift               PenaltyKind = "illegal_shift"
	OffsideDefense             PenaltyKind = "offside_defense"
	FacemaskOffense            PenaltyKind = "facemask_offense"
	FacemaskDefense            PenaltyKind = "facemask_defense"
	PersonalFoulOffense        PenaltyKind = "personal_foul_offense"
	PersonalFoulDefense        PenaltyKind = "personal_foul_defense"
	UnnecessaryRoughness       PenaltyKind = "unnecessary_roughness"
	RoughingThePasser          PenaltyKind = "roughing_the_passer"
	RoughingTheKicker          PenaltyKind = "roughing_the_kicker"
	RunningIntoTheKicker       PenaltyKind = "running_into_kicker"
	DefensivePassInterference  PenaltyKind = "defensive_pass_interference"
	OffensivePassInterference  PenaltyKind = "offensive_pass_interference"
	IneligibleDownfield        PenaltyKind = "ineligible_receiver_downfield"
	IntentionalGrounding       PenaltyKind = "intentional_grounding"
	IllegalForwardPass         PenaltyKind = "illegal_forward_pass"
	IllegalTouching            PenaltyKind = "illegal_touching"
	UnsportsmanlikeConductOffense PenaltyKind = "unsportsmanlike_conduct_offense"
	UnsportsmanlikeConductDefense PenaltyKind = "unsportsmanlike_conduct_defense"
	TauntingOffense            PenaltyKind = "taunting_offense"
	TauntingDefense            PenaltyKind = "taunting_defense"
	HorseCollar                PenaltyKind = "horse_collar"
	LowBlock                   PenaltyKind = "low_block"
	ClippingKind                PenaltyKind = "clipping"
	TrippingOffense            PenaltyKind = "tripping_offense"
	TrippingDefense            PenaltyKind = "tripping_defense"
	KickCatchInterference      PenaltyKind = "kick_catch_interference"
	IllegalBlockInBack         PenaltyKind = "illegal_block_in_back"
	SidelineInterference       PenaltyKind = "sideline_interference"
	DelayingTheKickoff         PenaltyKind = "delaying_the_kickoff"
	EncroachmentKickoff        PenaltyKind = "encroachment_kickoff"
	LeverageOffense            PenaltyKind = "leverage_offense"
	LeverageDefense            PenaltyKind = "leverage_defense"
	SnapInfraction             PenaltyKind = "snap_infraction"
	IllegalSnapOffense         PenaltyKind = "illegal_snap"
)

// EnforcementSpot classifies where a foul's yardage is measured from (spec
// §4.7 step 5).
type EnforcementSpot int

const (
	SpotPreviousSpot EnforcementSpot = iota
	SpotFoul
)

// PenaltyRule is the static, read-only entry in PenaltyCatalog describing
// one PenaltyKind.
type PenaltyRule struct {
	Kind              PenaltyKind
	BaseProbability   float64 // baseline rate this foul is flagged pre-snap/live, before discipline adjustment
	Yards             int
	DeadBall          bool // suppresses the play entirely (spec §4.7 step 7)
	Spot              EnforcementSpot
	NoAutomaticFirstDown bool // in the closed set from spec §4.7 step 6 (defensive fouls only)
	LossOfDown        bool   // in the closed set from spec §4.7 step 6 (offensive fouls only)
	OnDefense         bool   // true if this is committed by the defense
}

// PenaltyCatalog is the static, process-wide, read-only table mapping each
// PenaltyKind to its rule. Constructed once at package init; never mutated.
var PenaltyCatalog = map[PenaltyKind]PenaltyRule{
	FalseStart:                    {Kind: FalseStart, BaseProbability: 0.008, Yards: 5, DeadBall: true, Spot: SpotPreviousSpot},
	DelayOfGame:                   {Kind: DelayOfGame, BaseProbability: 0.004, Yards: 5, DeadBall: true, Spot: SpotPreviousSpot},
	DefensiveDelayOfGame:          {Kind: DefensiveDelayOfGame, BaseProbability: 0.001, Yards: 5, DeadBall: true, Spot: SpotPreviousSpot, NoAutomaticFirstDown: true, OnDefense: true},
	Encroachment:                  {Kind: Encroachment, BaseProbability: 0.004, Yards: 5, DeadBall: true, Spot: SpotPreviousSpot, NoAutomaticFirstDown: true, OnDefense: true},
	NeutralZoneInfraction:         {Kind: NeutralZoneInfraction, BaseProbability: 0.004, Yards: 5, Spot: SpotPreviousSpot, NoAutomaticFirstDown: true, OnDefense: true},
	DefensiveOffside:              {Kind: DefensiveOffside, BaseProbability: 0.005, Yards: 5, Spot: SpotPreviousSpot, NoAutomaticFirstDown: true, OnDefense: true},
	Illegal12OnField:              {Kind: Illegal12OnField, BaseProbability: 0.002, Yards: 5, DeadBall: true, Spot: SpotPreviousSpot},
	DefensiveIllegal12OnField:     {Kind: DefensiveIllegal12OnField, BaseProbability: 0.002, Yards: 5, DeadBall: true, Spot: SpotPreviousSpot, NoAutomaticFirstDown: true, OnDefense: true},
	IllegalSubstitution:           {Kind: IllegalSubstitution, BaseProbability: 0.001, Yards: 5, DeadBall: true, Spot: SpotPreviousSpot, NoAutomaticFirstDown: true},
	DefensiveIllegalSubstitution:  {Kind: DefensiveIllegalSubstitution, BaseProbability: 0.001, Yards: 5, DeadBall: true, Spot: SpotPreviousSpot, NoAutomaticFirstDown: true, OnDefense: true},
	OffensiveHolding:              {Kind: OffensiveHolding, BaseProbability: 0.022, Yards: 10, Spot: SpotPreviousSpot},
	DefensiveHolding:              {Kind: DefensiveHolding, BaseProbability: 0.012, Yards: 5, Spot: SpotPreviousSpot, OnDefense: true},
	IllegalBlockAboveWaist:        {Kind: IllegalBlockAboveWaist, BaseProbability: 0.004, Yards: 15, Spot: SpotPreviousSpot},
	ChopBlock:                     {Kind: ChopBlock, BaseProbability: 0.001, Yards: 15, Spot: SpotPreviousSpot},
	IllegalManDownfield:           {Kind: IllegalManDownfield, BaseProbability: 0.003, Yards: 5, Spot: SpotPreviousSpot},
	IllegalFormation:              {Kind: IllegalFormation, BaseProbability: 0.002, Yards: 5, DeadBall: true, Spot: SpotPreviousSpot},
	IllegalMotion:                 {Kind: IllegalMotion, BaseProbability: 0.002, Yards: 5, DeadBall: true, Spot: SpotPreviousSpot},
	IllegalShift:                  {Kind: IllegalShift, BaseProbability: 0.002, Yards: 5, DeadBall: true, Spot: SpotPreviousSpot},
	OffsideDefense:                {Kind: OffsideDefense, BaseProbability: 0.004, Yards: 5, Spot: SpotPreviousSpot, NoAutomaticFirstDown: true, OnDefense: true},
	FacemaskOffense:               {Kind: FacemaskOffense, BaseProbability: 0.002, Yards: 10, Spot: SpotPreviousSpot},
	FacemaskDefense:               {Kind: FacemaskDefense, BaseProbability: 0.003, Yards: 15, Spot: SpotPreviousSpot, OnDefense: true},
	PersonalFoulOffense:           {Kind: PersonalFoulOffense, BaseProbability: 0.002, Yards: 15, Spot: SpotPreviousSpot},
	PersonalFoulDefense:           {Kind: PersonalFoulDefense, BaseProbability: 0.003, Yards: 15, Spot: SpotPreviousSpot, OnDefense: true},
	UnnecessaryRoughness:          {Kind: UnnecessaryRoughness, BaseProbability: 0.002, Yards: 15, Spot: SpotPreviousSpot, OnDefense: true},
	RoughingThePasser:             {Kind: RoughingThePasser, BaseProbability: 0.003, Yards: 15, Spot: SpotPreviousSpot, OnDefense: true},
	RoughingTheKicker:             {Kind: RoughingTheKicker, BaseProbability: 0.0008, Yards: 15, Spot: SpotPreviousSpot, OnDefense: true},
	RunningIntoTheKicker:          {Kind: RunningIntoTheKicker, BaseProbability: 0.0012, Yards: 5, Spot: SpotPreviousSpot, NoAutomaticFirstDown: true, OnDefense: true},
	DefensivePassInterference:     {Kind: DefensivePassInterference, BaseProbability: 0.010, Yards: 0, Spot: SpotFoul, OnDefense: true},
	OffensivePassInterference:     {Kind: OffensivePassInterference, BaseProbability: 0.004, Yards: 10, Spot: SpotPreviousSpot},
	IneligibleDownfield:           {Kind: IneligibleDownfield, BaseProbability: 0.002, Yards: 5, Spot: SpotPreviousSpot},
	IntentionalGrounding:          {Kind: IntentionalGrounding, BaseProbability: 0.003, Yards: 10, LossOfDown: true, Spot: SpotPreviousSpot},
	IllegalForwardPass:            {Kind: IllegalForwardPass, BaseProbability: 0.0005, Yards: 5, LossOfDown: true, Spot: SpotPreviousSpot},
	IllegalTouching:               {Kind: IllegalTouching, BaseProbability: 0.0008, Yards: 5, Spot: SpotPreviousSpot},
	UnsportsmanlikeConductOffense: {Kind: UnsportsmanlikeConductOffense, BaseProbability: 0.001, Yards: 15, Spot: SpotPreviousSpot},
	UnsportsmanlikeConductDefense: {Kind: UnsportsmanlikeConductDefense, BaseProbability: 0.001, Yards: 15, Spot: SpotPreviousSpot, OnDefense: true},
	TauntingOffense:               {Kind: TauntingOffense, BaseProbability: 0.0005, Yards: 15, Spot: SpotPreviousSpot},
	TauntingDefense:               {Kind: TauntingDefense, BaseProbability: 0.0005, Yards: 15, Spot: SpotPreviousSpot, OnDefense: true},
	HorseCollar:                   {Kind: HorseCollar, BaseProbability: 0.0008, Yards: 15, Spot: SpotPreviousSpot, OnDefense: true},
	LowBlock:                      {Kind: LowBlock, BaseProbability: 0.0006, Yards: 15, Spot: SpotPreviousSpot},
	ClippingKind:                  {Kind: ClippingKind, BaseProbability: 0.0006, Yards: 15, Spot: SpotPreviousSpot},
	TrippingOffense:               {Kind: TrippingOffense, BaseProbability: 0.0005, Yards: 10, Spot: SpotPreviousSpot},
	TrippingDefense:               {Kind: TrippingDefense, BaseProbability: 0.0005, Yards: 10, Spot: SpotPreviousSpot, OnDefense: true},
	KickCatchInterference:         {Kind: KickCatchInterference, BaseProbability: 0.0006, Yards: 15, Spot: SpotPreviousSpot, OnDefense: true},
	IllegalBlockInBack:            {Kind: IllegalBlockInBack, BaseProbability: 0.004, Yards: 10, Spot: SpotPreviousSpot},
	SidelineInterference:          {Kind: SidelineInterference, BaseProbability: 0.0003, Yards: 15, Spot: SpotPreviousSpot},
	DelayingTheKickoff:            {Kind: DelayingTheKickoff, BaseProbability: 0.0005, Yards: 5, DeadBall: true, Spot: SpotPreviousSpot},
	EncroachmentKickoff:           {Kind: EncroachmentKickoff, BaseProbability: 0.0008, Yards: 5, Spot: SpotPreviousSpot, NoAutomaticFirstDown: true, OnDefense: true},
	LeverageOffense:               {Kind: LeverageOffense, BaseProbability: 0.0003, Yards: 15, Spot: SpotPreviousSpot},
	LeverageDefense:               {Kind: LeverageDefense, BaseProbability: 0.0003, Yards: 15, Spot: SpotPreviousSpot, OnDefense: true},
	SnapInfraction:                {Kind: SnapInfraction, BaseProbability: 0.0008, Yards: 5, DeadBall: true, Spot: SpotPreviousSpot},
	IllegalSnapOffense:            {Kind: IllegalSnapOffense, BaseProbability: 0.0004, Yards: 5, DeadBall: true, Spot: SpotPreviousSpot},
}

// NoAutomaticFirstDownSet is the closed set of fouls that do not grant an
// automatic first down (spec §4.7 step 6), expressed as a lookup for
// callers that don't want to read the rule field off PenaltyCatalog.
// PenaltyCatalog, which Enforce reads, also sets NoAutomaticFirstDown on
// DefensiveIllegalSubstitution, OffsideDefense and EncroachmentKickoff;
// this set does not list them.
var NoAutomaticFirstDownSet = map[PenaltyKind]bool{
	DefensiveOffside:      true,
	Encroachment:          true,
	NeutralZoneInfraction: true,
	DefensiveDelayOfGame:  true,
	IllegalSubstitution:   true,
	DefensiveIllegal12OnField: true,
	RunningIntoTheKicker:  true,
}

// Penalty is one flagged foul on a play.
type Penalty struct {
	Kind       PenaltyKind
	OnTeam     Possession
	Committer  uuid.UUID
	Phase      PenaltyPhase
	Yards      int
	Accepted   bool
}
