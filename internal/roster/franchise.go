package roster

// Franchise is a team identity available for a generated roster, grounded
// on the teacher's curated Franchise list (synthetic-data/createLeagueUtils.go)
// rather than procedurally generated names.
type Franchise struct {
	City string
	Name string
	Abbr string
}

// AvailableFranchises is a curated list of synthetic team identities; the
// teacher draws a random one per team slot and removes it from the pool so
// a league never repeats a name.
var AvailableFranchises = []Franchise{
	{"Austin", "Desperados", "AUS"},
	{"Portland", "Lumberjacks", "POR"},
	{"Salt Lake", "Peaks", "SLC"},
	{"Orlando", "Orbit", "ORL"},
	{"San Diego", "Destroyers", "SD"},
	{"Columbus", "Aviators", "COL"},
	{"Sacramento", "Miners", "SAC"},
	{"San Antonio", "Marshals", "SA"},
	{"Memphis", "Pharaohs", "MEM"},
	{"Oklahoma City", "Twisters", "OKC"},
	{"Las Vegas", "High Rollers", "LV"},
	{"Raleigh", "Capitals", "RAL"},
	{"Birmingham", "Vulcans", "BHM"},
	{"Louisville", "Jockeys", "LOU"},
	{"Virginia Beach", "Neptunes", "VB"},
	{"Omaha", "Mammoths", "OMA"},
	{"Brooklyn", "Barons", "BKN"},
	{"Boston", "Colonials", "BOS"},
	{"Philadelphia", "Liberty", "PHI"},
	{"Washington", "Sentinels", "DC"},
	{"Chicago", "Wind", "CHI"},
	{"Detroit", "Gears", "DET"},
	{"Milwaukee", "Hunters", "MIL"},
	{"Minneapolis", "Blizzard", "MIN"},
	{"Atlanta", "Phoenixes", "ATL"},
	{"Miami", "Sharks", "MIA"},
	{"New Orleans", "Deltas", "NO"},
	{"Nashville", "Strings", "NSH"},
	{"Seattle", "Emeralds", "SEA"},
	{"San Francisco", "Fog", "SF"},
	{"Los Angeles", "Stars", "LA"},
	{"Denver", "Summits", "DEN"},
}
