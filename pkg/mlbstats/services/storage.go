package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/brendontj/mlb-stats/pkg/mlbstats"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
)

type Storage struct {
	pool *pgxpool.Pool
}

func (s *Storage) ExistsGame(gamePk int) (bool, error) {
	query := `SELECT EXISTS(SELECT * FROM schedule.games WHERE game_pk=$1)`
	row := s.pool.QueryRow(context.Background(), query, strconv.Itoa(gamePk))
	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (s *Storage) ExistsLinescore(gamePk string) (bool, error) {
	query := `SELECT EXISTS(SELECT * FROM game.linescores WHERE game_pk=$1)`
	row := s.pool.QueryRow(context.Background(), query, gamePk)
	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (s *Storage) ExistsPlays(gamePk string) (bool, error) {
	query := `SELECT EXISTS(SELECT * FROM game.plays WHERE game_pk=$1)`
	row := s.pool.QueryRow(context.Background(), query, gamePk)
	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (s *Storage) SaveGame(gameDate string, game mlbstats.Game) error {
	queryInsertGameMetadata :=
		`INSERT INTO schedule.games
(ID, game_pk, game_type, season, game_date, official_date, state, detailed_state,
away_team_ref, away_team_name, away_team_score, away_record_wins, away_record_losses,
home_team_ref, home_team_name, home_team_score, home_record_wins, home_record_losses,
venue_ref, venue_name)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20);`

	_, err := s.pool.Exec(
		context.Background(),
		queryInsertGameMetadata,
		uuid.NewV4(),
		strconv.Itoa(game.GamePk),
		game.GameType,
		game.Season,
		game.GameDate,
		gameDate,
		game.Status.AbstractGameState,
		game.Status.DetailedState,
		strconv.Itoa(game.Teams.Away.Team.ID),
		game.Teams.Away.Team.Name,
		game.Teams.Away.Score,
		game.Teams.Away.LeagueRecord.Wins,
		game.Teams.Away.LeagueRecord.Losses,
		strconv.Itoa(game.Teams.Home.Team.ID),
		game.Teams.Home.Team.Name,
		game.Teams.Home.Score,
		game.Teams.Home.LeagueRecord.Wins,
		game.Teams.Home.LeagueRecord.Losses,
		strconv.Itoa(game.Venue.ID),
		game.Venue.Name)
	if err != nil {
		return errors.Wrapf(err, "[storage error] unable to store game with pk = %d", game.GamePk)
	}
	fmt.Printf("Inserted game (%d, %s, %s x %s) into database\n",
		game.GamePk,
		gameDate,
		game.Teams.Away.Team.Name,
		game.Teams.Home.Team.Name)
	return nil
}

func (s *Storage) SaveGameData(gamePk string, feed *mlbstats.GameFeedData) error {
	queryInsertLinescoreMetadata :=
		`INSERT INTO game.linescores
(ID, game_pk, scheduled_innings, away_runs, away_hits, away_errors, home_runs, home_hits, home_errors)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`

	linescoreID := uuid.NewV4()
	linescore := feed.LiveData.Linescore
	_, err := s.pool.Exec(
		context.Background(),
		queryInsertLinescoreMetadata,
		linescoreID,
		gamePk,
		linescore.ScheduledInnings,
		linescore.Teams.Away.Runs,
		linescore.Teams.Away.Hits,
		linescore.Teams.Away.Errors,
		linescore.Teams.Home.Runs,
		linescore.Teams.Home.Hits,
		linescore.Teams.Home.Errors)
	if err != nil {
		return errors.Wrapf(err, "[storage error] unable to store linescore of game with pk = %s", gamePk)
	}

	queryInsertInning :=
		`INSERT INTO game.innings
(ID, linescore_ref, game_pk, num, away_runs, away_hits, away_errors, away_left_on_base, home_runs, home_hits, home_errors, home_left_on_base)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);`

	for _, inning := range linescore.Innings {
		_, err := s.pool.Exec(
			context.Background(),
			queryInsertInning,
			uuid.NewV4(),
			linescoreID,
			gamePk,
			inning.Num,
			inning.Away.Runs,
			inning.Away.Hits,
			inning.Away.Errors,
			inning.Away.LeftOnBase,
			inning.Home.Runs,
			inning.Home.Hits,
			inning.Home.Errors,
			inning.Home.LeftOnBase)
		if err != nil {
			return errors.Wrapf(err, "[storage error] unable to store inning %d of game with pk = %s", inning.Num, gamePk)
		}
	}
	fmt.Printf("Inserted linescore with %d innings of game (%s) into database\n", len(linescore.Innings), gamePk)
	return nil
}

func (s *Storage) SavePlays(gamePk string, plays *mlbstats.PlayByPlayData) error {
	queryInsertPlay :=
		`INSERT INTO game.plays
(ID, game_pk, at_bat_index, inning, half_inning, play_type, event, description, rbi, away_score, home_score,
is_scoring_play, balls, strikes, outs, batter_ref, batter_name, pitcher_ref, pitcher_name)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19);`

	for _, play := range plays.AllPlays {
		_, err := s.pool.Exec(
			context.Background(),
			queryInsertPlay,
			uuid.NewV4(),
			gamePk,
			play.About.AtBatIndex,
			play.About.Inning,
			play.About.HalfInning,
			play.Result.Type,
			play.Result.Event,
			play.Result.Description,
			play.Result.RBI,
			play.Result.AwayScore,
			play.Result.HomeScore,
			play.About.IsScoringPlay,
			play.Count.Balls,
			play.Count.Strikes,
			play.Count.Outs,
			strconv.Itoa(play.Matchup.Batter.ID),
			play.Matchup.Batter.FullName,
			strconv.Itoa(play.Matchup.Pitcher.ID),
			play.Matchup.Pitcher.FullName)
		if err != nil {
			return errors.Wrapf(err, "[storage error] unable to store play %d of game with pk = %s", play.About.AtBatIndex, gamePk)
		}
	}
	fmt.Printf("Inserted %d plays of game (%s) into database\n", len(plays.AllPlays), gamePk)
	return nil
}

func (s *Storage) GetFinishedGamePks() ([]string, error) {
	queryGetAllFinishedGames := `
SELECT
	g.game_pk
FROM schedule.games g
WHERE g.state = 'Final';
`
	rows, err := s.pool.Query(context.Background(), queryGetAllFinishedGames)
	if err != nil {
		return nil, errors.Wrap(err, "unable to get games from storage")
	}
	defer rows.Close()

	var gamePks []string
	for rows.Next() {
		var g string
		err = rows.Scan(&g)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to scan game with pk = %s", g)
		}
		gamePks = append(gamePks, g)
	}

	return gamePks, nil
}
