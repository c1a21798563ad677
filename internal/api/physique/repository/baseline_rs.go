package physiqueRepository

import (
	"PhysiqueGolang/internal/api/physique"
	"PhysiqueGolang/internal/entity"
	contextPkg "PhysiqueGolang/pkg/context"
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type BaselineMetricsDB struct {
	ID                 sql.NullString  `db:"id"`
	UserID             sql.NullString  `db:"user_id"`
	BaselineScanID     sql.NullString  `db:"baseline_scan_id"`
	ShoulderHipRatio   sql.NullFloat64 `db:"shoulder_hip_ratio"`
	WaistShoulderRatio sql.NullFloat64 `db:"waist_shoulder_ratio"`
	ArmLegRatio        sql.NullFloat64 `db:"arm_leg_ratio"`
	ShoulderWidth      sql.NullFloat64 `db:"shoulder_width_normalized"`
	HipWidth           sql.NullFloat64 `db:"hip_width_normalized"`
	CreatedAt          time.Time       `db:"created_at"`
}

func (r *baselineRepository) SaveBaselineMetrics(c context.Context, metrics entity.BaselineMetrics) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":                        metrics.ID,
		"user_id":                   metrics.UserID,
		"baseline_scan_id":          metrics.BaselineScanID,
		"shoulder_hip_ratio":        metrics.ShoulderHipRatio,
		"waist_shoulder_ratio":      metrics.WaistShoulderRatio,
		"arm_leg_ratio":             metrics.ArmLegRatio,
		"shoulder_width_normalized": metrics.ShoulderWidth,
		"hip_width_normalized":      metrics.HipWidth,
		"created_at":                time.Now(),
	}

	query, args, err := sqlx.Named(querySaveBaselineMetrics, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for SaveBaselineMetrics")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when saving baseline metrics")

		return err
	}

	return nil
}

func (r *baselineRepository) GetBaselineMetrics(c context.Context, userID string) (entity.BaselineMetrics, error) {
	requestID := contextPkg.GetRequestID(c)
	var metrics BaselineMetricsDB

	argsKV := map[string]interface{}{
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryGetBaselineMetrics, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBaselineMetrics named query preparation err")
		return entity.BaselineMetrics{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&metrics); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.BaselineMetrics{}, physique.ErrNoBaseline
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBaselineMetrics execution err")
		return entity.BaselineMetrics{}, err
	}

	return entity.BaselineMetrics{
		ID:                 metrics.ID.String,
		UserID:             metrics.UserID.String,
		BaselineScanID:     metrics.BaselineScanID.String,
		ShoulderHipRatio:   metrics.ShoulderHipRatio.Float64,
		WaistShoulderRatio: metrics.WaistShoulderRatio.Float64,
		ArmLegRatio:        metrics.ArmLegRatio.Float64,
		ShoulderWidth:      metrics.ShoulderWidth.Float64,
		HipWidth:           metrics.HipWidth.Float64,
		CreatedAt:          metrics.CreatedAt,
	}, nil
}
