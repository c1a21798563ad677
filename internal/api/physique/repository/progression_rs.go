package physiqueRepository

import (
	"PhysiqueGolang/internal/entity"
	contextPkg "PhysiqueGolang/pkg/context"
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ProgressionDB struct {
	ID                 sql.NullString `db:"id"`
	UserID             sql.NullString `db:"user_id"`
	ScanID             sql.NullString `db:"scan_id"`
	DaysSinceBaseline  sql.NullInt64  `db:"days_since_baseline"`
	OverallScoreDelta  sql.NullInt64  `db:"overall_score_delta"`
	ShoulderScoreDelta sql.NullInt64  `db:"shoulder_score_delta"`
	ChestScoreDelta    sql.NullInt64  `db:"chest_score_delta"`
	CoreScoreDelta     sql.NullInt64  `db:"core_score_delta"`
	VTaperScoreDelta   sql.NullInt64  `db:"v_taper_score_delta"`
	SymmetryScoreDelta sql.NullInt64  `db:"symmetry_score_delta"`
	PostureScoreDelta  sql.NullInt64  `db:"posture_score_delta"`
	ArmsScoreDelta     sql.NullInt64  `db:"arms_score_delta"`
	CreatedAt          time.Time      `db:"created_at"`
}

func (r *progressionRepository) SaveProgression(c context.Context, progression entity.Progression) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":                   progression.ID,
		"user_id":              progression.UserID,
		"scan_id":              progression.ScanID,
		"days_since_baseline":  progression.DaysSinceBaseline,
		"overall_score_delta":  progression.OverallScoreDelta,
		"shoulder_score_delta": progression.ShoulderScoreDelta,
		"chest_score_delta":    progression.ChestScoreDelta,
		"core_score_delta":     progression.CoreScoreDelta,
		"v_taper_score_delta":  progression.VTaperScoreDelta,
		"symmetry_score_delta": progression.SymmetryScoreDelta,
		"posture_score_delta":  progression.PostureScoreDelta,
		"arms_score_delta":     progression.ArmsScoreDelta,
		"created_at":           time.Now(),
	}

	query, args, err := sqlx.Named(querySaveProgression, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for SaveProgression")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when saving progression")

		return err
	}

	return nil
}

func (r *progressionRepository) GetProgressionByUserID(c context.Context, userID string) ([]entity.Progression, error) {
	requestID := contextPkg.GetRequestID(c)
	var rows []ProgressionDB

	argsKV := map[string]interface{}{
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryGetProgressionByUserID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetProgressionByUserID named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetProgressionByUserID execution err")
		return nil, err
	}

	result := make([]entity.Progression, 0, len(rows))
	for _, row := range rows {
		result = append(result, entity.Progression{
			ID:                 row.ID.String,
			UserID:             row.UserID.String,
			ScanID:             row.ScanID.String,
			DaysSinceBaseline:  int(row.DaysSinceBaseline.Int64),
			OverallScoreDelta:  int(row.OverallScoreDelta.Int64),
			ShoulderScoreDelta: int(row.ShoulderScoreDelta.Int64),
			ChestScoreDelta:    int(row.ChestScoreDelta.Int64),
			CoreScoreDelta:     int(row.CoreScoreDelta.Int64),
			VTaperScoreDelta:   int(row.VTaperScoreDelta.Int64),
			SymmetryScoreDelta: int(row.SymmetryScoreDelta.Int64),
			PostureScoreDelta:  int(row.PostureScoreDelta.Int64),
			ArmsScoreDelta:     int(row.ArmsScoreDelta.Int64),
			CreatedAt:          row.CreatedAt,
		})
	}

	return result, nil
}
