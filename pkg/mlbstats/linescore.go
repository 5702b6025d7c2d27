package mlbstats

type LinescoreData struct {
	CurrentInning        int             `json:"currentInning"`
	CurrentInningOrdinal string          `json:"currentInningOrdinal,omitempty"`
	InningState          string          `json:"inningState,omitempty"`
	InningHalf           string          `json:"inningHalf,omitempty"`
	IsTopInning          bool            `json:"isTopInning"`
	ScheduledInnings     int             `json:"scheduledInnings"`
	Innings              []Inning        `json:"innings"`
	Teams                LinescoreTeams  `json:"teams"`
	Balls                int             `json:"balls,omitempty"`
	Strikes              int             `json:"strikes,omitempty"`
	Outs                 int             `json:"outs,omitempty"`
}

type Inning struct {
	Num        int        `json:"num"`
	OrdinalNum string     `json:"ordinalNum,omitempty"`
	Home       InningLine `json:"home"`
	Away       InningLine `json:"away"`
}

type InningLine struct {
	Runs       int `json:"runs"`
	Hits       int `json:"hits"`
	Errors     int `json:"errors"`
	LeftOnBase int `json:"leftOnBase,omitempty"`
}

type LinescoreTeams struct {
	Home InningLine `json:"home"`
	Away InningLine `json:"away"`
}
