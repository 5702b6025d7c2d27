package services

import (
	"net/http"
	"time"

	"github.com/brendontj/mlb-stats/pkg/mlbstats"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/pkg/errors"
)

type Service interface {
	PopulateSchedule(startDate, endDate string) error
	GetGamePks() ([]string, error)
	PopulateDBWithGameData(gamePk string) error
	PopulateDBWithPlays(gamePk string) error
	GetLiveGames() (*mlbstats.ScheduleData, error)
}

type mlbService struct {
	storage        *pgxpool.Pool
	statsApiClient mlbstats.StatsAPIScrapper
	DB             Storage
}

func NewMlbService(pgStorage *pgxpool.Pool, statsApiClient mlbstats.StatsAPIScrapper) Service {
	return &mlbService{
		storage:        pgStorage,
		statsApiClient: statsApiClient,
		DB:             Storage{pool: pgStorage},
	}
}

func (m *mlbService) PopulateSchedule(startDate, endDate string) error {
	response := m.statsApiClient.ScheduleRange(startDate, endDate)
	if response.StatusCode != http.StatusOK {
		return errors.Errorf("[service error] unexpected status %d getting schedule from %s to %s", response.StatusCode, startDate, endDate)
	}

	var scheduleData mlbstats.ScheduleData
	if err := response.DecodeInto(&scheduleData); err != nil {
		return errors.Wrapf(err, "[service error] unable to decode schedule from %s to %s", startDate, endDate)
	}

	for _, date := range scheduleData.Dates {
		for _, game := range date.Games {
			exists, err := m.DB.ExistsGame(game.GamePk)
			if err != nil {
				return errors.Wrapf(err, "[service error] unable to verify if game was sync: %v", game.GamePk)
			}

			if exists {
				continue
			}

			if err := m.DB.SaveGame(date.Date, game); err != nil {
				return errors.Wrapf(err, "[service error] unable to save game with pk: %v", game.GamePk)
			}
		}
	}
	return nil
}

func (m *mlbService) GetGamePks() ([]string, error) {
	return m.DB.GetFinishedGamePks()
}

func (m *mlbService) PopulateDBWithGameData(gamePk string) error {
	exists, err := m.DB.ExistsLinescore(gamePk)
	if err != nil {
		return errors.Wrapf(err, "[service error] unable to verify if game data was sync: %v", gamePk)
	}

	if exists {
		return nil
	}

	response := m.statsApiClient.GameFeed(gamePk)
	if response.StatusCode != http.StatusOK {
		return errors.Errorf("[service error] unexpected status %d getting feed of game %s", response.StatusCode, gamePk)
	}

	var feed mlbstats.GameFeedData
	if err := response.DecodeInto(&feed); err != nil {
		return errors.Wrapf(err, "[service error] unable to decode feed of game %s", gamePk)
	}

	if feed.GamePk == 0 || len(feed.LiveData.Linescore.Innings) == 0 {
		return nil
	}

	if err := m.DB.SaveGameData(gamePk, &feed); err != nil {
		return errors.Wrapf(err, "[service error] unable to save game data for game with pk: %v", gamePk)
	}
	return nil
}

func (m *mlbService) PopulateDBWithPlays(gamePk string) error {
	exists, err := m.DB.ExistsPlays(gamePk)
	if err != nil {
		return errors.Wrapf(err, "[service error] unable to verify if plays were sync: %v", gamePk)
	}

	if exists {
		return nil
	}

	response := m.statsApiClient.PlayByPlay(gamePk)
	if response.StatusCode != http.StatusOK {
		return errors.Errorf("[service error] unexpected status %d getting plays of game %s", response.StatusCode, gamePk)
	}

	var plays mlbstats.PlayByPlayData
	if err := response.DecodeInto(&plays); err != nil {
		return errors.Wrapf(err, "[service error] unable to decode plays of game %s", gamePk)
	}

	if len(plays.AllPlays) == 0 {
		return nil
	}

	if err := m.DB.SavePlays(gamePk, &plays); err != nil {
		return errors.Wrapf(err, "[service error] unable to save plays for game with pk: %v", gamePk)
	}
	return nil
}

func (m *mlbService) GetLiveGames() (*mlbstats.ScheduleData, error) {
	today := time.Now().UTC().Format("2006-01-02")
	response := m.statsApiClient.ScheduleDateFields(today, []string{
		"dates", "date", "games", "gamePk", "status", "abstractGameState", "detailedState", "teams", "home", "away", "score", "team", "id", "name",
	})
	if response.StatusCode != http.StatusOK {
		return nil, errors.Errorf("[service error] unexpected status %d getting schedule of day %s", response.StatusCode, today)
	}

	var scheduleData mlbstats.ScheduleData
	if err := response.DecodeInto(&scheduleData); err != nil {
		return nil, errors.Wrapf(err, "[service error] unable to decode schedule of day %s", today)
	}
	return &scheduleData, nil
}
