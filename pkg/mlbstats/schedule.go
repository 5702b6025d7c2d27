package mlbstats

import "time"

type ScheduleData struct {
	TotalItems int     `json:"totalItems"`
	TotalGames int     `json:"totalGames"`
	Dates      []Dates `json:"dates"`
}

type Dates struct {
	Date       string `json:"date"`
	TotalGames int    `json:"totalGames"`
	Games      []Game `json:"games"`
}

type Game struct {
	GamePk       int       `json:"gamePk"`
	GameType     string    `json:"gameType,omitempty"`
	Season       string    `json:"season,omitempty"`
	GameDate     time.Time `json:"gameDate"`
	OfficialDate string    `json:"officialDate,omitempty"`
	Status       Status    `json:"status"`
	Teams        GameTeams `json:"teams"`
	Venue        Venue     `json:"venue"`
}

type Status struct {
	AbstractGameState string `json:"abstractGameState"`
	CodedGameState    string `json:"codedGameState,omitempty"`
	DetailedState     string `json:"detailedState"`
	StatusCode        string `json:"statusCode,omitempty"`
}

type GameTeams struct {
	Away GameTeam `json:"away"`
	Home GameTeam `json:"home"`
}

type GameTeam struct {
	Score        int    `json:"score"`
	IsWinner     bool   `json:"isWinner,omitempty"`
	Team         Team   `json:"team"`
	LeagueRecord Record `json:"leagueRecord,omitempty"`
}

type Team struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Record struct {
	Wins   int    `json:"wins"`
	Losses int    `json:"losses"`
	Pct    string `json:"pct,omitempty"`
}

type Venue struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
