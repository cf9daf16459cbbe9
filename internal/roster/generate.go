package roster

import (
	"math/rand"

	"github.com/brahedrick/gridiron-sim/internal/model"
)

// firstNames and lastNames are a small curated name pool, grounded on the
// teacher's aggregated-name-distribution idiom (collectPlayerAttributes.go:
// aggregateFirstNames/aggregateLastNames) without the real-data.json input
// that idiom depends on: names here are drawn uniformly instead of from an
// imported frequency table.
var firstNames = []string{
	"James", "Michael", "David", "Marcus", "Andre", "Tyler", "Jordan", "Elijah",
	"Caleb", "Derek", "Malik", "Trevor", "Xavier", "Isaiah", "Dominic", "Brandon",
	"Jalen", "Austin", "Cameron", "Devon", "Ezekiel", "Gabriel", "Hunter", "Jace",
}

var lastNames = []string{
	"Carter", "Johnson", "Williams", "Brooks", "Foster", "Hayes", "Jenkins", "Reid",
	"Mitchell", "Ward", "Bishop", "Bryant", "Coleman", "Dawson", "Ellison", "Frazier",
	"Grant", "Holloway", "Ingram", "Kirby", "Lowery", "Marsh", "Nixon", "Osborne",
}

// randomName draws a uniformly random first/last name pair.
func randomName(r *rand.Rand) (first, last string) {
	return firstNames[r.Intn(len(firstNames))], lastNames[r.Intn(len(lastNames))]
}

// bellCurve draws an integer attribute in [0,100] from a normal
// distribution centered on mean with the given spread, clamped to the
// legal range. Grounded on the teacher's createRandomSkillFactorWithBellCurve
// (NormFloat64*stdDev + mean), generalized from a [0,1] skill scalar to the
// model's [0,100] integer attributes.
func bellCurve(r *rand.Rand, mean, stdDev float64) int {
	v := r.NormFloat64()*stdDev + mean
	return clamp(int(v), 0, 100)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// attributeProfile is the bell-curve center for each attribute a position
// cares about; unlisted attributes fall back to a league-average generalist
// profile. Grounded on the teacher's per-position generator table
// (CreatePositionAttributeGenerators/LabeledPositionGenerators), generalized
// from per-position jersey/height/weight/age/YOE generators to per-position
// attribute centers.
type attributeProfile struct {
	speed, strength, agility, awareness, fragility int
	passing, catching, rushing, blocking, tackling, coverage, kicking int
	discipline, morale int
}

var positionProfiles = map[model.Position]attributeProfile{
	model.QB:  {speed: 55, strength: 55, agility: 60, awareness: 70, fragility: 45, passing: 80, blocking: 20, discipline: 65, morale: 60},
	model.RB:  {speed: 80, strength: 65, agility: 80, awareness: 55, fragility: 55, rushing: 75, catching: 45, blocking: 40, discipline: 55, morale: 60},
	model.FB:  {speed: 65, strength: 80, agility: 60, awareness: 55, fragility: 50, rushing: 55, blocking: 75, catching: 35, discipline: 60, morale: 55},
	model.WR:  {speed: 85, strength: 50, agility: 85, awareness: 55, fragility: 50, catching: 75, rushing: 30, blocking: 25, discipline: 55, morale: 60},
	model.TE:  {speed: 65, strength: 70, agility: 65, awareness: 55, fragility: 50, catching: 60, blocking: 60, rushing: 25, discipline: 60, morale: 55},
	model.C:   {speed: 45, strength: 80, agility: 55, awareness: 65, fragility: 45, blocking: 80, discipline: 65, morale: 55},
	model.G:   {speed: 45, strength: 85, agility: 50, awareness: 60, fragility: 45, blocking: 80, discipline: 60, morale: 55},
	model.T:   {speed: 50, strength: 85, agility: 55, awareness: 60, fragility: 45, blocking: 80, discipline: 60, morale: 55},
	model.DT:  {speed: 55, strength: 85, agility: 55, awareness: 55, fragility: 50, tackling: 70, blocking: 40, discipline: 55, morale: 55},
	model.DE:  {speed: 65, strength: 80, agility: 65, awareness: 55, fragility: 50, tackling: 70, blocking: 35, discipline: 55, morale: 55},
	model.LB:  {speed: 70, strength: 75, agility: 70, awareness: 65, fragility: 50, tackling: 80, coverage: 50, discipline: 60, morale: 55},
	model.OLB: {speed: 72, strength: 72, agility: 72, awareness: 60, fragility: 50, tackling: 75, coverage: 55, discipline: 58, morale: 55},
	model.CB:  {speed: 88, strength: 50, agility: 85, awareness: 55, fragility: 50, coverage: 80, tackling: 50, discipline: 55, morale: 55},
	model.S:   {speed: 80, strength: 60, agility: 78, awareness: 65, fragility: 50, coverage: 70, tackling: 65, discipline: 58, morale: 55},
	model.FS:  {speed: 82, strength: 55, agility: 80, awareness: 68, fragility: 50, coverage: 75, tackling: 60, discipline: 58, morale: 55},
	model.K:   {speed: 45, strength: 50, agility: 45, awareness: 55, fragility: 55, kicking: 80, discipline: 65, morale: 55},
	model.P:   {speed: 45, strength: 50, agility: 45, awareness: 55, fragility: 55, kicking: 75, discipline: 65, morale: 55},
	model.LS:  {speed: 45, strength: 65, agility: 45, awareness: 60, fragility: 50, blocking: 60, discipline: 65, morale: 55},
}

const defaultCenter = 50
const stdDev = 12

// generateAttributes draws a full attribute set for position from its
// profile's centers, with depthSlot 0 (the starter) boosted and lower
// depth slots faded toward the league-average profile — grounded on the
// teacher's createSkillForDepthPosition idiom (createTeamUtils.go: "depth-
// based skill assignment" overriding a player's random skill roll).
func generateAttributes(r *rand.Rand, position model.Position, depthSlot, countAtPosition int) (model.PhysicalAttributes, model.SkillAttributes, model.MentalAttributes) {
	profile := positionProfiles[position]
	fade := depthFade(depthSlot, countAtPosition)

	center := func(v int) float64 {
		if v == 0 {
			v = defaultCenter
		}
		return float64(v) * fade
	}

	phys := model.PhysicalAttributes{
		Speed:     bellCurve(r, center(profile.speed), stdDev),
		Strength:  bellCurve(r, center(profile.strength), stdDev),
		Agility:   bellCurve(r, center(profile.agility), stdDev),
		Awareness: bellCurve(r, center(profile.awareness), stdDev),
		Fragility: bellCurve(r, center(profile.fragility), stdDev),
	}
	skill := model.SkillAttributes{
		Passing:  bellCurve(r, center(profile.passing), stdDev),
		Catching: bellCurve(r, center(profile.catching), stdDev),
		Rushing:  bellCurve(r, center(profile.rushing), stdDev),
		Blocking: bellCurve(r, center(profile.blocking), stdDev),
		Tackling: bellCurve(r, center(profile.tackling), stdDev),
		Coverage: bellCurve(r, center(profile.coverage), stdDev),
		Kicking:  bellCurve(r, center(profile.kicking), stdDev),
	}
	mental := model.MentalAttributes{
		Discipline: bellCurve(r, center(profile.discipline), stdDev),
		Morale:     bellCurve(r, center(profile.morale), stdDev),
	}
	return phys, skill, mental
}

// depthFade scales a starter (slot 0) at 1.0 and the deepest backup down to
// 0.75, linearly in between — the deliberately coarser equivalent of the
// teacher's createSkillForDepthPosition, which this repo's teacher left
// referenced by its tests but never actually defined.
func depthFade(slot, count int) float64 {
	if count <= 1 {
		return 1.0
	}
	return 1.0 - 0.25*float64(slot)/float64(count-1)
}
