package model

// Collection names in the document store.
const (
	CollectionAttempts    = "game_attempts"
	CollectionClubMembers = "club_members"
	CollectionUsers       = "users"
	CollectionClubs       = "clubs"
	CollectionPlayers     = "players"
	CollectionCoaches     = "coaches"
	CollectionLeagues     = "leagues"
	CollectionShirts      = "shirts"
	CollectionSongs       = "songs"
	CollectionVideos      = "videos"
)

// dailyGameCollections maps each daily variant to its collection.
var dailyGameCollections = map[GameType]string{
	GameCareer:  "career_games",
	GameHistory: "history_games",
	GamePlayer:  "player_games",
	GameShirt:   "shirt_games",
	GameSong:    "song_games",
	GameVideo:   "video_games",
}

// DailyGameCollection returns the collection holding the daily games of
// one variant.
func DailyGameCollection(gameType GameType) string {
	return dailyGameCollections[gameType]
}
