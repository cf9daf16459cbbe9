package rules

// NFLEndOfHalf and NCAAEndOfHalf share the same values (spec §4.9: "both:
// true" for the offensive-penalty case). They are kept as distinct types,
// rather than collapsed into one, so the registry can grow rule variation
// per league without a breaking change to callers that look one up by name.
type standardEndOfHalf struct{ name string }

func (s standardEndOfHalf) Name() string { return s.name }

// AllowsHalfToEndOnDefensivePenalty is false: a defensive foul with time
// expired grants the offense one untimed down instead of ending the half.
func (s standardEndOfHalf) AllowsHalfToEndOnDefensivePenalty() bool { return false }

// AllowsHalfToEndOnOffensivePenalty is true: an offensive foul with time
// expired simply ends the half.
func (s standardEndOfHalf) AllowsHalfToEndOnOffensivePenalty() bool { return true }

// NFLEndOfHalf is the NFL end-of-half provider.
type NFLEndOfHalf struct{ standardEndOfHalf }

// NewNFLEndOfHalf constructs the NFL end-of-half provider.
func NewNFLEndOfHalf() NFLEndOfHalf { return NFLEndOfHalf{standardEndOfHalf{name: "nfl"}} }

// NCAAEndOfHalf is the NCAA end-of-half provider.
type NCAAEndOfHalf struct{ standardEndOfHalf }

// NewNCAAEndOfHalf constructs the NCAA end-of-half provider.
func NewNCAAEndOfHalf() NCAAEndOfHalf { return NCAAEndOfHalf{standardEndOfHalf{name: "ncaa"}} }
