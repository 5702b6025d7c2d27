package services

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/brendontj/mlb-stats/pkg/mlb-transformer/queries"
	"github.com/joho/sqltocsv"
	"github.com/pkg/errors"
)

type Service struct {
	db *sql.DB
}

func NewExtractService(db *sql.DB) *Service {
	return &Service{db: db}
}

// Extract dumps the ingested schedule, linescore and play data to
// <path><filename>.csv for offline analysis.
func (s *Service) Extract(path string, filename string) error {
	rows, err := s.db.Query(queries.ExtractionQuery())
	if err != nil {
		return errors.Wrap(err, "[transformer error] unable to query data for extraction")
	}
	defer rows.Close()

	converter := sqltocsv.New(rows)
	converter.TimeFormat = time.RFC3339

	if err := converter.WriteFile(fmt.Sprint(path, filename, ".csv")); err != nil {
		return errors.Wrapf(err, "[transformer error] unable to write csv file %s", filename)
	}
	return nil
}
