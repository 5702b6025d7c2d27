package mlbstats

import "time"

type GameFeedData struct {
	GamePk   int      `json:"gamePk"`
	GameData GameData `json:"gameData"`
	LiveData LiveData `json:"liveData"`
}

type GameData struct {
	Game     GameInfo  `json:"game"`
	Datetime Datetime  `json:"datetime"`
	Status   Status    `json:"status"`
	Teams    FeedTeams `json:"teams"`
	Venue    Venue     `json:"venue"`
}

type GameInfo struct {
	Pk     int    `json:"pk"`
	Type   string `json:"type"`
	Season string `json:"season"`
}

type Datetime struct {
	DateTime     time.Time `json:"dateTime"`
	OfficialDate string    `json:"officialDate"`
	DayNight     string    `json:"dayNight,omitempty"`
}

type FeedTeams struct {
	Away FeedTeam `json:"away"`
	Home FeedTeam `json:"home"`
}

type FeedTeam struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation,omitempty"`
	TeamName     string `json:"teamName,omitempty"`
	LocationName string `json:"locationName,omitempty"`
	Record       Record `json:"record,omitempty"`
}

type LiveData struct {
	Plays     PlayByPlayData `json:"plays"`
	Linescore LinescoreData  `json:"linescore"`
}
