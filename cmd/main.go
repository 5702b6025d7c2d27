package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/brendontj/mlb-stats/app"
	"github.com/brendontj/mlb-stats/pkg/mlbstats"
	"github.com/brendontj/mlb-stats/util"
	"github.com/gin-gonic/gin"
)

func main() {
	var wg sync.WaitGroup
	wg.Add(1)
	go initRoutes(&wg)
	wg.Add(1)
	go handleLiveGames(&wg)
	wg.Wait()
}

func initRoutes(wg *sync.WaitGroup) {
	defer wg.Done()
	router := gin.Default()

	router.GET("/ping", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html", []byte("pong"))
	})

	router.GET("/sync_data", func(c *gin.Context) {
		baseURI := util.GetEnvVariableWithDefault("STATS_API_BASE_URI", mlbstats.DefaultBaseURI)
		startDate := c.Query("startDate")
		endDate := c.Query("endDate")

		application := app.NewMlbStatsClient(baseURI)
		application.Start()
		application.PopulateHistoricalData(startDate, endDate)
		application.Close()

		c.Data(http.StatusOK, "text/html", []byte("synced"))
	})

	router.GET("/today_games", func(c *gin.Context) {
		baseURI := util.GetEnvVariableWithDefault("STATS_API_BASE_URI", mlbstats.DefaultBaseURI)

		application := app.NewMlbStatsClient(baseURI)
		application.Start()
		todayGames := application.GetTodayGames()
		application.Close()

		c.JSON(http.StatusOK, todayGames)
	})

	router.GET("/extract_data", func(c *gin.Context) {
		application := app.NewDataWorker()
		application.Start()
		application.ExtractData()
		application.Close()

		c.Data(http.StatusOK, "text/html", []byte("data extracted"))
	})

	if err := router.Run(); err != nil {
		panic(err)
	}
}

func handleLiveGames(wg *sync.WaitGroup) {
	defer wg.Done()
	baseURI := util.GetEnvVariableWithDefault("STATS_API_BASE_URI", mlbstats.DefaultBaseURI)
	scoreboardURI := util.GetEnvVariableWithDefault("SCOREBOARD_URI", "http://localhost:8070/send_game_update")

	application := app.NewMlbStatsClient(baseURI)
	application.Start()
	runningGames := make(map[int]bool)
	for {
		todayGames := application.GetTodayGames()
		for _, date := range todayGames.Dates {
			for _, g := range date.Games {
				if g.Status.AbstractGameState == "Live" {
					_, ok := runningGames[g.GamePk]
					if !ok {
						runningGames[g.GamePk] = true

						go func(m map[int]bool, g mlbstats.Game) {
							type DataToBeSent struct {
								GamePk         int    `json:"gamePk"`
								AwayTeam       string `json:"awayTeam"`
								HomeTeam       string `json:"homeTeam"`
								AwayScore      int    `json:"awayScore"`
								HomeScore      int    `json:"homeScore"`
								CurrentInning  int    `json:"currentInning"`
								IsTopInning    bool   `json:"isTopInning"`
							}

							linescore := application.GetCurrentLinescore(strconv.Itoa(g.GamePk))
							if linescore == nil {
								delete(m, g.GamePk)
								return
							}

							data, _ := json.Marshal(DataToBeSent{
								GamePk:        g.GamePk,
								AwayTeam:      g.Teams.Away.Team.Name,
								HomeTeam:      g.Teams.Home.Team.Name,
								AwayScore:     linescore.Teams.Away.Runs,
								HomeScore:     linescore.Teams.Home.Runs,
								CurrentInning: linescore.CurrentInning,
								IsTopInning:   linescore.IsTopInning,
							})

							resp, err := http.Post(scoreboardURI, "application/json", bytes.NewBuffer(data))
							if err != nil {
								panic(err)
							}
							if resp.StatusCode != http.StatusOK {
								fmt.Println(fmt.Sprintf("Error sending game update (%v)", g.GamePk))
								delete(m, g.GamePk)
							}
						}(runningGames, g)
					}
				}
			}
		}
		time.Sleep(30 * time.Second)
	}
}
