package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/golang/glog"

	"ath/internal/domain"
)

const createRunsTable = `CREATE TABLE IF NOT EXISTS ath_runs (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	total_suites INT NOT NULL,
	passed_suites INT NOT NULL,
	failed_suites INT NOT NULL,
	total_cases INT NOT NULL,
	duration_seconds DOUBLE NOT NULL,
	workers INT NOT NULL,
	created_at DATETIME NOT NULL
)`

const createFailuresTable = `CREATE TABLE IF NOT EXISTS ath_failures (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	run_id BIGINT NOT NULL,
	suite VARCHAR(128) NOT NULL,
	subject VARCHAR(64) NOT NULL,
	case_index INT NOT NULL,
	operand_a BIGINT NOT NULL,
	operand_b BIGINT NOT NULL,
	expected BIGINT NOT NULL,
	actual BIGINT NOT NULL,
	message TEXT NOT NULL,
	INDEX idx_run (run_id)
)`

const insertRun = `INSERT INTO ath_runs
	(total_suites, passed_suites, failed_suites, total_cases, duration_seconds, workers, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?)`

const insertFailure = `INSERT INTO ath_failures
	(run_id, suite, subject, case_index, operand_a, operand_b, expected, actual, message)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

// MySQLStorage appends every run to MySQL tables
type MySQLStorage struct {
	db      *sql.DB
	server  *sql.DB // same server, no database selected
	dbName  string
	ensured bool
}

// ParseDSN validates a MySQL DSN and enables parseTime
func ParseDSN(dsn string) (*mysql.Config, error) {
	mc, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("invalid mysql dsn: %w", err)
	}
	if !validDatabaseName(mc.DBName) {
		return nil, fmt.Errorf("invalid mysql dsn: bad database name %q", mc.DBName)
	}
	mc.ParseTime = true
	return mc, nil
}

// NewMySQLStorage opens (but does not ping) a connection pool for dsn
func NewMySQLStorage(dsn string) (*MySQLStorage, error) {
	mc, err := ParseDSN(dsn)
	if err != nil {
		return nil, err
	}
	connector, err := mysql.NewConnector(mc)
	if err != nil {
		return nil, fmt.Errorf("mysql connector: %w", err)
	}

	serverCfg := mc.Clone()
	serverCfg.DBName = ""
	serverConnector, err := mysql.NewConnector(serverCfg)
	if err != nil {
		return nil, fmt.Errorf("mysql connector: %w", err)
	}

	return &MySQLStorage{
		db:     sql.OpenDB(connector),
		server: sql.OpenDB(serverConnector),
		dbName: mc.DBName,
	}, nil
}

// Record inserts the run and its failures in one transaction
func (s *MySQLStorage) Record(ctx context.Context, output *domain.RunOutput) error {
	if err := s.ensureTables(ctx); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	meta := output.Meta
	res, err := tx.ExecContext(ctx, insertRun,
		meta.TotalSuites, meta.PassedSuites, meta.FailedSuites, meta.TotalCases,
		meta.DurationSeconds, meta.Workers, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("run id: %w", err)
	}

	for _, f := range output.Details {
		if _, err := tx.ExecContext(ctx, insertFailure,
			runID, f.Suite, f.Subject, f.CaseIndex, f.A, f.B, f.Expected, f.Actual, f.Message); err != nil {
			return fmt.Errorf("insert failure for suite %s: %w", f.Suite, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit run: %w", err)
	}
	glog.V(1).Infof("recorded run %d with %d failure(s)", runID, len(output.Details))
	return nil
}

// ensureTables creates the history database and tables if they do not exist yet
func (s *MySQLStorage) ensureTables(ctx context.Context) error {
	if s.ensured {
		return nil
	}

	var exists bool
	query := "SELECT EXISTS(SELECT SCHEMA_NAME FROM INFORMATION_SCHEMA.SCHEMATA WHERE SCHEMA_NAME = ?)"
	if err := s.server.QueryRowContext(ctx, query, s.dbName).Scan(&exists); err != nil {
		return fmt.Errorf("check database %s: %w", s.dbName, err)
	}
	if !exists {
		if _, err := s.server.ExecContext(ctx, fmt.Sprintf("CREATE DATABASE IF NOT EXISTS `%s`", s.dbName)); err != nil {
			return fmt.Errorf("create database %s: %w", s.dbName, err)
		}
		glog.V(1).Infof("created history database %s", s.dbName)
	}

	for _, stmt := range []string{createRunsTable, createFailuresTable} {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create history tables: %w", err)
		}
	}
	s.ensured = true
	return nil
}

// Close closes the connection pools
func (s *MySQLStorage) Close() error {
	return errors.Join(s.db.Close(), s.server.Close())
}

// validDatabaseName accepts names that are safe to quote into CREATE DATABASE
func validDatabaseName(name string) bool {
	if len(name) == 0 || len(name) > 64 {
		return false
	}
	return strings.IndexFunc(name, func(r rune) bool {
		return !(r == '_' || r == '$' || r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z')
	}) < 0
}
