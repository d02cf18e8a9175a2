package entity

// Team описывает одну соревнующуюся группу.
type Team struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// Tier задаёт оформление места в рейтинге.
type Tier string

const (
	TierFirst   Tier = "first"
	TierSecond  Tier = "second"
	TierThird   Tier = "third"
	TierDefault Tier = "default"
)

// RankedTeam хранит команду с вычисленным местом (1-based).
type RankedTeam struct {
	Rank int
	Team Team
	Tier Tier
}
