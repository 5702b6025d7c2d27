package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"sync"

	"github.com/brendontj/mlb-stats/pkg/mlbstats"
	"github.com/brendontj/mlb-stats/pkg/mlbstats/services"
	"github.com/brendontj/mlb-stats/util"
	"github.com/jackc/pgx/v4/pgxpool"
)

type MlbStatsClient interface {
	Start()
	PopulateHistoricalData(startDate, endDate string)
	GetTodayGames() mlbstats.ScheduleData
	GetCurrentLinescore(gamePk string) *mlbstats.LinescoreData
	Close()
}

type mlbStatsClient struct {
	MlbService     services.Service
	dbPool         *pgxpool.Pool
	statsApiClient mlbstats.StatsAPIScrapper
	*log.Logger
}

func NewMlbStatsClient(baseURI string) MlbStatsClient {
	return &mlbStatsClient{
		MlbService:     nil,
		dbPool:         nil,
		statsApiClient: mlbstats.NewMlbStatsClient(baseURI),
	}
}

func (a *mlbStatsClient) Start() {
	host := util.GetEnvVariable("HOST")
	port := util.GetEnvVariable("PORT")
	database := util.GetEnvVariable("DATABASE")
	dbUser := util.GetEnvVariable("DB_USER")
	dbPassword := util.GetEnvVariable("DB_PASSWORD")

	dbPool, err := pgxpool.Connect(context.Background(), fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable&timezone=UTC", dbUser, dbPassword, host, port, database))
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error initializating the application: unable to connect to database: %v\n", err)
		os.Exit(1)
	}

	a.MlbService = services.NewMlbService(dbPool, a.statsApiClient)
	a.dbPool = dbPool
	a.Logger = log.Default()
}

func (a *mlbStatsClient) PopulateHistoricalData(startDate, endDate string) {
	err := a.MlbService.PopulateSchedule(startDate, endDate)
	if err != nil {
		panic(err.Error())
	}
	fmt.Println("Successfully inserted scheduled games into database")

	gamePks, err := a.MlbService.GetGamePks()
	if err != nil {
		panic("Unable to get finished games from database")
	}

	var wg sync.WaitGroup
	for i, gamePk := range gamePks {
		wg.Add(1)
		go func(wg *sync.WaitGroup, gamePk string, i int) {
			fmt.Printf("[Worker %v] Inserting game data of game: %v \n", i, gamePk)
			defer wg.Done()
			if err := a.MlbService.PopulateDBWithGameData(gamePk); err != nil {
				panic(err.Error())
			}
		}(&wg, gamePk, i)
	}
	fmt.Println("[Main process]: Waiting for workers to finish")
	wg.Wait()
	fmt.Println("[Main process]: Successfully inserted linescores of all games into database")

	for i, gamePk := range gamePks {
		wg.Add(1)
		go func(wg *sync.WaitGroup, gamePk string, i int) {
			fmt.Printf("[Worker %v] Inserting plays of game: %v \n", i, gamePk)
			defer wg.Done()
			if err := a.MlbService.PopulateDBWithPlays(gamePk); err != nil {
				panic(err.Error())
			}
		}(&wg, gamePk, i)
	}
	fmt.Println("[Main process]: Waiting for workers to finish")
	wg.Wait()
	fmt.Println("[Main process]: Successfully inserted plays of all games into database")
}

func (a *mlbStatsClient) GetTodayGames() mlbstats.ScheduleData {
	todayGames, err := a.MlbService.GetLiveGames()
	if err != nil {
		log.Println(fmt.Sprintf("Unable to get today games, cause : %v", err))
		return mlbstats.ScheduleData{}
	}
	return *todayGames
}

func (a *mlbStatsClient) GetCurrentLinescore(gamePk string) *mlbstats.LinescoreData {
	response := a.statsApiClient.LinescoreFields(gamePk, []string{
		"currentInning", "isTopInning", "innings", "num", "home", "away", "runs", "hits", "errors", "teams",
	})
	if response.StatusCode != http.StatusOK {
		log.Println(fmt.Sprintf("Unable to get linescore of game %v, status: %v", gamePk, response.StatusCode))
		return nil
	}

	var linescore mlbstats.LinescoreData
	if err := response.DecodeInto(&linescore); err != nil {
		log.Println(fmt.Sprintf("Unable to decode linescore of game %v, cause : %v", gamePk, err))
		return nil
	}
	if len(linescore.Innings) == 0 {
		return nil
	}
	return &linescore
}

func (a *mlbStatsClient) Close() {
	a.statsApiClient.Close()
	a.dbPool.Close()
}
