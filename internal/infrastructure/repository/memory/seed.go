package memory

import "github.com/riskibarqy/fantasy-market/internal/domain/player"

const (
	TeamIDRealMadrid   int64 = 1
	TeamIDBarcelona    int64 = 2
	TeamIDAtletico     int64 = 3
	TeamIDRealSociedad int64 = 4
)

// SeedPlayers is a small starter catalog used by `market init` and tests.
func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: 1, Name: "Thibaut Courtois", Rating: 89, MarketValue: 35000000, Age: 32, TeamID: TeamIDRealMadrid, ClubName: "Real Madrid", Position: player.PositionGoalkeeper, Saves: 42, PlayerImageURL: "images/players/1.png", ClubImageURL: "images/clubs/1.png"},
		{ID: 2, Name: "Antonio Rudiger", Rating: 86, MarketValue: 25000000, Age: 31, TeamID: TeamIDRealMadrid, ClubName: "Real Madrid", Position: player.PositionDefender, Goals: 1, Assists: 1, PlayerImageURL: "images/players/2.png", ClubImageURL: "images/clubs/1.png"},
		{ID: 3, Name: "Jude Bellingham", Rating: 90, MarketValue: 180000000, Age: 21, TeamID: TeamIDRealMadrid, ClubName: "Real Madrid", Position: player.PositionMidfielder, Goals: 12, Assists: 6, PlayerImageURL: "images/players/3.png", ClubImageURL: "images/clubs/1.png"},
		{ID: 4, Name: "Vinicius Junior", Rating: 90, MarketValue: 200000000, Age: 24, TeamID: TeamIDRealMadrid, ClubName: "Real Madrid", Position: player.PositionForward, Goals: 15, Assists: 9, PlayerImageURL: "images/players/4.png", ClubImageURL: "images/clubs/1.png"},
		{ID: 5, Name: "Marc-Andre ter Stegen", Rating: 87, MarketValue: 18000000, Age: 32, TeamID: TeamIDBarcelona, ClubName: "Barcelona", Position: player.PositionGoalkeeper, Saves: 38, PlayerImageURL: "images/players/5.png", ClubImageURL: "images/clubs/2.png"},
		{ID: 6, Name: "Ronald Araujo", Rating: 85, MarketValue: 70000000, Age: 25, TeamID: TeamIDBarcelona, ClubName: "Barcelona", Position: player.PositionDefender, Goals: 2, PlayerImageURL: "images/players/6.png", ClubImageURL: "images/clubs/2.png"},
		{ID: 7, Name: "Pedri", Rating: 87, MarketValue: 100000000, Age: 22, TeamID: TeamIDBarcelona, ClubName: "Barcelona", Position: player.PositionMidfielder, Goals: 4, Assists: 7, PlayerImageURL: "images/players/7.png", ClubImageURL: "images/clubs/2.png"},
		{ID: 8, Name: "Robert Lewandowski", Rating: 88, MarketValue: 15000000, Age: 36, TeamID: TeamIDBarcelona, ClubName: "Barcelona", Position: player.PositionForward, Goals: 19, Assists: 3, PlayerImageURL: "images/players/8.png", ClubImageURL: "images/clubs/2.png"},
		{ID: 9, Name: "Jan Oblak", Rating: 88, MarketValue: 25000000, Age: 31, TeamID: TeamIDAtletico, ClubName: "Atletico Madrid", Position: player.PositionGoalkeeper, Saves: 45, PlayerImageURL: "images/players/9.png", ClubImageURL: "images/clubs/3.png"},
		{ID: 10, Name: "Koke", Rating: 82, MarketValue: 8000000, Age: 32, TeamID: TeamIDAtletico, ClubName: "Atletico Madrid", Position: player.PositionMidfielder, Goals: 1, Assists: 5, PlayerImageURL: "images/players/10.png", ClubImageURL: "images/clubs/3.png"},
		{ID: 11, Name: "Antoine Griezmann", Rating: 87, MarketValue: 25000000, Age: 33, TeamID: TeamIDAtletico, ClubName: "Atletico Madrid", Position: player.PositionForward, Goals: 13, Assists: 8, PlayerImageURL: "images/players/11.png", ClubImageURL: "images/clubs/3.png"},
		{ID: 12, Name: "Mikel Oyarzabal", Rating: 84, MarketValue: 40000000, Age: 27, TeamID: TeamIDRealSociedad, ClubName: "Real Sociedad", Position: player.PositionForward, Goals: 9, Assists: 4, PlayerImageURL: "images/players/12.png", ClubImageURL: "images/clubs/4.png"},
	}
}
