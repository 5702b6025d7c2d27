package app

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/brendontj/mlb-stats/pkg/mlb-transformer/services"
	"github.com/brendontj/mlb-stats/util"
	_ "github.com/jackc/pgx/v4/stdlib"
)

type DataWorker interface {
	Start()
	ExtractData()
	Close()
}

type dataWorker struct {
	db             *sql.DB
	ExtractService *services.Service
}

func NewDataWorker() DataWorker {
	return &dataWorker{db: nil, ExtractService: nil}
}

func (d *dataWorker) Start() {
	host := util.GetEnvVariable("HOST")
	port := util.GetEnvVariable("PORT")
	database := util.GetEnvVariable("DATABASE")
	dbUser := util.GetEnvVariable("DB_USER")
	dbPassword := util.GetEnvVariable("DB_PASSWORD")

	db, err := sql.Open("pgx", fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable&timezone=UTC", dbUser, dbPassword, host, port, database))
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error initializating the data worker: unable to connect to database: %v\n", err)
		os.Exit(1)
	}

	d.ExtractService = services.NewExtractService(db)
	d.db = db
}

func (d *dataWorker) ExtractData() {
	path := util.GetEnvVariableWithDefault("EXTRACTION_PATH", "./")
	if err := d.ExtractService.Extract(path, "stats"); err != nil {
		fmt.Println(err)
	}
}

func (d *dataWorker) Close() {
	_ = d.db.Close()
}
