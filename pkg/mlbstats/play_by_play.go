package mlbstats

type PlayByPlayData struct {
	AllPlays     []Play `json:"allPlays"`
	CurrentPlay  Play   `json:"currentPlay,omitempty"`
	ScoringPlays []int  `json:"scoringPlays,omitempty"`
}

type Play struct {
	Result  PlayResult `json:"result"`
	About   PlayAbout  `json:"about"`
	Count   Count      `json:"count"`
	Matchup Matchup    `json:"matchup"`
}

type PlayResult struct {
	Type        string `json:"type"`
	Event       string `json:"event"`
	EventType   string `json:"eventType,omitempty"`
	Description string `json:"description"`
	RBI         int    `json:"rbi"`
	AwayScore   int    `json:"awayScore"`
	HomeScore   int    `json:"homeScore"`
}

type PlayAbout struct {
	AtBatIndex    int    `json:"atBatIndex"`
	HalfInning    string `json:"halfInning"`
	Inning        int    `json:"inning"`
	IsComplete    bool   `json:"isComplete"`
	IsScoringPlay bool   `json:"isScoringPlay"`
	CaptivatingIndex int `json:"captivatingIndex,omitempty"`
}

type Count struct {
	Balls   int `json:"balls"`
	Strikes int `json:"strikes"`
	Outs    int `json:"outs"`
}

type Matchup struct {
	Batter    Person `json:"batter"`
	Pitcher   Person `json:"pitcher"`
	BatSide   Side   `json:"batSide,omitempty"`
	PitchHand Side   `json:"pitchHand,omitempty"`
}

type Person struct {
	ID       int    `json:"id"`
	FullName string `json:"fullName"`
}

type Side struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}
