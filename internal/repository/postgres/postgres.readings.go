// FilePath: internal/repository/postgres/postgres.readings.go
package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"
	"time"

	"github.com/GYRAG/beetkar-hub/internal/database"
	"github.com/GYRAG/beetkar-hub/internal/errors"
	"github.com/GYRAG/beetkar-hub/internal/models"
	"github.com/GYRAG/beetkar-hub/internal/repository"
	nuts "github.com/vaudience/go-nuts"
)

type ReadingRepo struct {
	PostgresBaseRepo
}

func NewReadingRepository(db database.DB) (*ReadingRepo, error) {
	repo := &ReadingRepo{PostgresBaseRepo{db: db}}
	if err := repo.initializeSchema(); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *ReadingRepo) initializeSchema() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS sensor_readings (
			id BIGSERIAL PRIMARY KEY,
			temperature DOUBLE PRECISION NOT NULL,
			humidity DOUBLE PRECISION NOT NULL,
			gas_resistance DOUBLE PRECISION,
			pressure DOUBLE PRECISION,
			vibration_rms DOUBLE PRECISION,
			audio_dbfs DOUBLE PRECISION,
			timestamp TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		// Serves both the latest-reading lookup and the windowed scans
		`CREATE INDEX IF NOT EXISTS idx_sensor_readings_timestamp
			ON sensor_readings (timestamp DESC, id DESC)`,
	}

	for _, query := range queries {
		_, err := r.db.GetDB().Exec(query)
		if err != nil {
			return errors.NewDatabaseError("failed to initialize schema", err)
		}
	}
	return nil
}

// Insert appends one validated reading. The id and timestamp come back from
// the database so the stored row can be echoed (and cached) exactly.
func (r *ReadingRepo) Insert(ctx context.Context, in *models.ReadingInput) (*models.SensorReading, error) {
	if in == nil || in.Temperature == nil || in.Humidity == nil {
		return nil, errors.NewValidationError("reading is missing required metrics", repository.ErrInvalidInput)
	}

	reading := &models.SensorReading{
		Temperature:   *in.Temperature,
		Humidity:      *in.Humidity,
		GasResistance: in.GasResistance,
		Pressure:      in.Pressure,
		VibrationRMS:  in.VibrationRMS,
		AudioDBFS:     in.AudioDBFS,
	}

	query := `
		INSERT INTO sensor_readings (temperature, humidity, gas_resistance, pressure, vibration_rms, audio_dbfs)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, timestamp`

	row := r.db.GetDB().QueryRowxContext(ctx, query,
		reading.Temperature, reading.Humidity,
		reading.GasResistance, reading.Pressure, reading.VibrationRMS, reading.AudioDBFS)
	if err := row.Scan(&reading.ID, &reading.Timestamp); err != nil {
		return nil, errors.NewDatabaseError("failed to insert sensor reading", err)
	}
	return reading, nil
}

func (r *ReadingRepo) Latest(ctx context.Context) (*models.SensorReading, error) {
	reading := &models.SensorReading{}
	query := `
		SELECT id, temperature, humidity, gas_resistance, pressure, vibration_rms, audio_dbfs, timestamp
		FROM sensor_readings
		ORDER BY timestamp DESC, id DESC
		LIMIT 1`

	err := r.db.GetDB().GetContext(ctx, reading, query)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, errors.NewDatabaseError("failed to get latest sensor reading", err)
	}
	return reading, nil
}

func (r *ReadingRepo) ListSince(ctx context.Context, since time.Time) ([]models.SensorReading, error) {
	readings := []models.SensorReading{}
	query := `
		SELECT id, temperature, humidity, gas_resistance, pressure, vibration_rms, audio_dbfs, timestamp
		FROM sensor_readings
		WHERE timestamp >= $1
		ORDER BY timestamp ASC, id ASC`

	err := r.db.GetDB().SelectContext(ctx, &readings, query, since)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to get sensor readings", err)
	}
	return readings, nil
}

// HourlyAverages buckets readings by UTC wall-clock hour and averages each
// metric within the bucket. Truncation happens on the value shifted AT TIME
// ZONE 'UTC' so the buckets stay hour-aligned no matter what TimeZone the
// session runs with. AVG skips NULLs, so hours recorded before a metric
// existed simply average over what is there.
func (r *ReadingRepo) HourlyAverages(ctx context.Context, since time.Time) ([]models.HourlyAverage, error) {
	averages := []models.HourlyAverage{}
	query := `
		SELECT
			AVG(temperature) AS temperature,
			AVG(humidity) AS humidity,
			AVG(gas_resistance) AS gas_resistance,
			AVG(pressure) AS pressure,
			AVG(vibration_rms) AS vibration_rms,
			AVG(audio_dbfs) AS audio_dbfs,
			date_trunc('hour', timestamp AT TIME ZONE 'UTC') AS timestamp
		FROM sensor_readings
		WHERE timestamp >= $1
		GROUP BY date_trunc('hour', timestamp AT TIME ZONE 'UTC')
		ORDER BY timestamp ASC`

	err := r.db.GetDB().SelectContext(ctx, &averages, query, since)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to get hourly averages", err)
	}
	return averages, nil
}

func (r *ReadingRepo) DeleteOlderThan(ctx context.Context, before time.Time) (int64, error) {
	query := `DELETE FROM sensor_readings WHERE timestamp < $1`

	result, err := r.db.GetDB().ExecContext(ctx, query, before)
	if err != nil {
		return 0, errors.NewDatabaseError("failed to delete old readings", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, errors.NewDatabaseError("failed to get rows affected", err)
	}

	nuts.L.Infof("[ReadingRepo] Deleted %d sensor readings older than %v", rows, before)
	return rows, nil
}
