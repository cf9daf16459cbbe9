package roster

import (
	"math/rand"
	"testing"

	"github.com/brahedrick/gridiron-sim/internal/model"
)

func TestBuildTeamRosterMatchesComposition(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	team := BuildTeam("Test City Testers", "TST", NFLComposition, r)

	counts := make(map[model.Position]int)
	for _, p := range team.Roster {
		counts[p.Position]++
		if p.TeamID != team.ID {
			t.Errorf("player %s has TeamID %v, want %v", p.FullName(), p.TeamID, team.ID)
		}
	}
	for position, want := range NFLComposition {
		if counts[position] != want {
			t.Errorf("position %s: got %d players, want %d", position, counts[position], want)
		}
	}
}

func TestBuildTeamAttributesStayInRange(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	team := BuildTeam("Range City Clampers", "RNG", NFLComposition, r)

	for _, p := range team.Roster {
		for name, v := range map[string]int{
			"speed": p.Physical.Speed, "strength": p.Physical.Strength,
			"agility": p.Physical.Agility, "awareness": p.Physical.Awareness,
			"fragility": p.Physical.Fragility, "passing": p.Skill.Passing,
			"catching": p.Skill.Catching, "rushing": p.Skill.Rushing,
			"blocking": p.Skill.Blocking, "tackling": p.Skill.Tackling,
			"coverage": p.Skill.Coverage, "kicking": p.Skill.Kicking,
			"discipline": p.Mental.Discipline, "morale": p.Mental.Morale,
		} {
			if v < 0 || v > 100 {
				t.Errorf("%s %s = %d out of [0,100]", p.FullName(), name, v)
			}
		}
	}
}

func TestBuildTeamDepthChartsPopulated(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	team := BuildTeam("Depth City Chargers", "DPT", NFLComposition, r)

	for _, unit := range model.AllDepthChartUnits {
		if len(team.DepthChart[unit]) == 0 {
			t.Errorf("depth chart unit %s is empty", unit)
		}
	}
	if len(team.DepthChart[model.DepthChartOffense])+len(team.DepthChart[model.DepthChartDefense]) != len(team.Roster) {
		t.Error("offense + defense depth charts should partition the full roster")
	}
}

func TestBuildTeamStartersOutpaceBackupsOnAverage(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	team := BuildTeam("Fade City Starters", "FAD", NFLComposition, r)

	var starterTackling, backupTackling, starters, backups int
	for _, p := range team.Roster {
		if p.Position != model.LB {
			continue
		}
		if p.DepthSlot == 0 {
			starterTackling += p.Skill.Tackling
			starters++
		} else {
			backupTackling += p.Skill.Tackling
			backups++
		}
	}
	if starters == 0 || backups == 0 {
		t.Skip("not enough linebackers generated to compare")
	}
	if float64(starterTackling)/float64(starters) < float64(backupTackling)/float64(backups) {
		t.Error("expected starters to average at least as high tackling as backups")
	}
}

func TestBuildFranchiseTeamRemovesFromPool(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	pool := append([]Franchise(nil), AvailableFranchises...)
	before := len(pool)

	team, err := BuildFranchiseTeam(&pool, r)
	if err != nil {
		t.Fatalf("BuildFranchiseTeam: %v", err)
	}
	if len(pool) != before-1 {
		t.Errorf("pool size = %d, want %d", len(pool), before-1)
	}
	if team.Name == "" || team.Abbr == "" {
		t.Error("expected a non-empty franchise identity")
	}
}

func TestBuildFranchiseTeamErrorsOnEmptyPool(t *testing.T) {
	r := rand.New(rand.NewSource(6))
	var pool []Franchise
	if _, err := BuildFranchiseTeam(&pool, r); err == nil {
		t.Error("expected an error building a franchise team from an empty pool")
	}
}
