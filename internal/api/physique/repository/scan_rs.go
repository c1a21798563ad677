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

type ScanDB struct {
	ID              sql.NullString `db:"id"`
	UserID          sql.NullString `db:"user_id"`
	ScanDate        time.Time      `db:"scan_date"`
	IsBaseline      sql.NullBool   `db:"is_baseline"`
	FrontPoseData   []byte         `db:"front_pose_data"`
	SidePoseData    []byte         `db:"side_pose_data"`
	OverallScore    sql.NullInt64  `db:"overall_score"`
	ScoresJSON      []byte         `db:"scores_json"`
	BodyType        sql.NullString `db:"body_type"`
	Frame           sql.NullString `db:"frame"`
	StrongAreasJSON []byte         `db:"strong_areas_json"`
	GrowthAreasJSON []byte         `db:"growth_areas_json"`
	KeyInsight      sql.NullString `db:"key_insight"`
}

func (r *scanRepository) CreateScan(c context.Context, scan entity.Scan) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":                scan.ID,
		"user_id":           scan.UserID,
		"scan_date":         scan.ScanDate,
		"is_baseline":       scan.IsBaseline,
		"front_pose_data":   scan.FrontPoseData,
		"side_pose_data":    scan.SidePoseData,
		"overall_score":     scan.OverallScore,
		"scores_json":       scan.ScoresJSON,
		"body_type":         scan.BodyType,
		"frame":             scan.Frame,
		"strong_areas_json": scan.StrongAreasJSON,
		"growth_areas_json": scan.GrowthAreasJSON,
		"key_insight":       scan.KeyInsight,
	}

	query, args, err := sqlx.Named(queryCreateScan, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateScan")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating scan")

		return err
	}

	return nil
}

func (r *scanRepository) GetScanByID(c context.Context, id string) (entity.Scan, error) {
	requestID := contextPkg.GetRequestID(c)
	var scan ScanDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetScanByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetScanByID named query preparation err")
		return entity.Scan{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&scan); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"scan_id":    id,
			}).Warn("GetScanByID no rows found")
			return entity.Scan{}, physique.ErrScanNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetScanByID execution err")
		return entity.Scan{}, err
	}

	return r.makeScan(scan), nil
}

func (r *scanRepository) GetBaselineScan(c context.Context, userID string) (entity.Scan, error) {
	requestID := contextPkg.GetRequestID(c)
	var scan ScanDB

	argsKV := map[string]interface{}{
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryGetBaselineScan, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBaselineScan named query preparation err")
		return entity.Scan{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&scan); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Scan{}, physique.ErrNoBaseline
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBaselineScan execution err")
		return entity.Scan{}, err
	}

	return r.makeScan(scan), nil
}

func (r *scanRepository) GetScansByUserID(c context.Context, userID string, limit int) ([]entity.Scan, error) {
	requestID := contextPkg.GetRequestID(c)
	var scans []ScanDB

	argsKV := map[string]interface{}{
		"user_id": userID,
		"limit":   limit,
	}

	query, args, err := sqlx.Named(queryGetScansByUserID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetScansByUserID named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &scans, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetScansByUserID execution err")
		return nil, err
	}

	result := make([]entity.Scan, 0, len(scans))
	for _, scan := range scans {
		result = append(result, r.makeScan(scan))
	}

	return result, nil
}

func (r *scanRepository) makeScan(row ScanDB) entity.Scan {
	return entity.Scan{
		ID:              row.ID.String,
		UserID:          row.UserID.String,
		ScanDate:        row.ScanDate,
		IsBaseline:      row.IsBaseline.Bool,
		FrontPoseData:   row.FrontPoseData,
		SidePoseData:    row.SidePoseData,
		OverallScore:    int(row.OverallScore.Int64),
		ScoresJSON:      row.ScoresJSON,
		BodyType:        row.BodyType.String,
		Frame:           row.Frame.String,
		StrongAreasJSON: row.StrongAreasJSON,
		GrowthAreasJSON: row.GrowthAreasJSON,
		KeyInsight:      row.KeyInsight.String,
	}
}
