package consts

// Cache entity prefixes. The full key is "<prefix>:<identifier>", e.g.
// "game_stats:user_stats:<userId>:<clubId>" or "players:global".
const (
	UserStatsEntity  = "game_stats:user_stats"
	DailyGamesEntity = "game_stats:DAILY_GAMES"
	PlayersEntity    = "players"
	CoachesEntity    = "coaches"
	ClubsEntity      = "clubs"
	LeaguesEntity    = "leagues"
)

const (
	DailyGamesAllKey = "all"
	GlobalIdentifier = "global"
)

const (
	DailyGamesRolloverLock = "lock:daily:rollover"
)
