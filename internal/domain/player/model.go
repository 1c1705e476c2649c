package player

// Position is the raw position code carried by the catalog.
type Position string

const (
	PositionGoalkeeper Position = "GK"
	PositionDefender   Position = "DEF"
	PositionMidfielder Position = "MID"
	PositionForward    Position = "FWD"
)

// Player is one row of the market catalog.
type Player struct {
	ID             int64
	Name           string
	Rating         int64
	MarketValue    int64
	Age            int64
	TeamID         int64
	ClubName       string
	Position       Position
	Goals          int64
	Assists        int64
	Saves          int64
	PlayerImageURL string
	ClubImageURL   string
}

// Summary is the reduced player shape kept in the team ledger.
type Summary struct {
	ID             int64
	Name           string
	ClubName       string
	Position       Position
	PlayerImageURL string
	ClubImageURL   string
}

func (p Player) IsGoalkeeper() bool {
	return p.Position == PositionGoalkeeper
}

func (p Player) Summary() Summary {
	return Summary{
		ID:             p.ID,
		Name:           p.Name,
		ClubName:       p.ClubName,
		Position:       p.Position,
		PlayerImageURL: p.PlayerImageURL,
		ClubImageURL:   p.ClubImageURL,
	}
}

// Player rebuilds a summary-form record. Rating, value and stats are zero.
func (s Summary) Player() Player {
	return Player{
		ID:             s.ID,
		Name:           s.Name,
		ClubName:       s.ClubName,
		Position:       s.Position,
		PlayerImageURL: s.PlayerImageURL,
		ClubImageURL:   s.ClubImageURL,
	}
}
