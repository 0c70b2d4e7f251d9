package model

// GameType identifies one of the daily trivia variants.
type GameType string

const (
	GameShirt       GameType = "shirt"
	GameCareer      GameType = "career"
	GamePlayer      GameType = "player"
	GameHistory     GameType = "history"
	GameSong        GameType = "song"
	GameVideo       GameType = "video"
	GameGoals       GameType = "goals"
	GameAppearances GameType = "appearances"
	GameNational    GameType = "national"
	GameLeague      GameType = "league"
)

// DailyGameTypes are the variants that publish one game document per
// day, each in its own collection.
var DailyGameTypes = []GameType{
	GameCareer,
	GameHistory,
	GamePlayer,
	GameShirt,
	GameSong,
	GameVideo,
}

var allGameTypes = map[GameType]struct{}{
	GameShirt:       {},
	GameCareer:      {},
	GamePlayer:      {},
	GameHistory:     {},
	GameSong:        {},
	GameVideo:       {},
	GameGoals:       {},
	GameAppearances: {},
	GameNational:    {},
	GameLeague:      {},
}

func (t GameType) Valid() bool {
	_, ok := allGameTypes[t]
	return ok
}

// clubGameTypes mirrors the frontend config: which variants each club
// enables. Unknown clubs fall back to the general set.
var clubGameTypes = map[string][]GameType{
	"general": {
		GameNational, GameLeague, GameShirt, GamePlayer,
		GameHistory, GameVideo, GameSong,
	},
	"futcuervo": {
		GameNational, GameLeague, GameShirt, GamePlayer, GameHistory,
		GameVideo, GameCareer, GameAppearances, GameGoals, GameSong,
	},
	"barcelona": {
		GameLeague, GameShirt, GamePlayer,
	},
	"futcule": {
		GameNational, GameLeague, GameShirt, GamePlayer, GameHistory,
	},
}

// ClubGameTypes returns the variants enabled for a club key.
func ClubGameTypes(clubKey string) []GameType {
	if types, ok := clubGameTypes[clubKey]; ok {
		return types
	}
	return clubGameTypes["general"]
}

// IsValidGameType reports whether a variant is enabled for a club key.
func IsValidGameType(clubKey string, gameType GameType) bool {
	for _, t := range ClubGameTypes(clubKey) {
		if t == gameType {
			return true
		}
	}
	return false
}
