package physiqueService

import (
	"PhysiqueGolang/internal/api/physique"
	"PhysiqueGolang/internal/entity"
	contextPkg "PhysiqueGolang/pkg/context"
	"PhysiqueGolang/pkg/plan"
	"PhysiqueGolang/pkg/pose"
	"PhysiqueGolang/pkg/scoring"
	"errors"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const latestScanTTL = 24 * time.Hour

func demoUserID(gender string) string {
	return fmt.Sprintf("demo_user_%s", gender)
}

func latestScanKey(userID string) string {
	return fmt.Sprintf("physique:latest:%s", userID)
}

func (s *physiqueService) Analyze(ctx context.Context, req physique.AnalyzeRequest) (physique.AnalyzeResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	profile := entity.UserProfile{
		Gender:   entity.Gender(req.Gender),
		HeightCm: req.HeightCm,
	}
	if !profile.Gender.Valid() {
		return physique.AnalyzeResponse{}, physique.ErrInvalidGender
	}

	front := pose.Frame(req.FrontPose)
	side := pose.Frame(req.SidePose)

	score, err := scoring.ScorePhysique(front, side, profile)
	if err != nil {
		if errors.Is(err, scoring.ErrIncompleteFrame) {
			return physique.AnalyzeResponse{}, physique.ErrIncompletePose
		}
		return physique.AnalyzeResponse{}, err
	}

	userID := demoUserID(req.Gender)

	repo, err := s.physiqueRepository.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return physique.AnalyzeResponse{}, err
	}
	defer repo.Rollback()

	if err := repo.User.CreateUser(ctx, entity.User{
		ID:       userID,
		Gender:   req.Gender,
		HeightCm: req.HeightCm,
	}); err != nil {
		return physique.AnalyzeResponse{}, err
	}

	baseline, err := repo.Scan.GetBaselineScan(ctx, userID)
	isBaseline := false
	if err != nil {
		if !errors.Is(err, physique.ErrNoBaseline) {
			return physique.AnalyzeResponse{}, err
		}
		isBaseline = true
	}

	scanID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return physique.AnalyzeResponse{}, err
	}

	scan, err := buildScanRow(scanID, userID, isBaseline, front, side, score)
	if err != nil {
		return physique.AnalyzeResponse{}, err
	}

	if err := repo.Scan.CreateScan(ctx, scan); err != nil {
		return physique.AnalyzeResponse{}, physique.ErrCreateScan
	}

	result := entity.ScanResult{
		PhysiqueScore: score,
		IsBaseline:    isBaseline,
	}

	if isBaseline {
		metricsID, err := s.utils.NewULIDFromTimestamp(time.Now())
		if err != nil {
			return physique.AnalyzeResponse{}, err
		}

		metrics := measureBaseline(front)
		metrics.ID = metricsID
		metrics.UserID = userID
		metrics.BaselineScanID = scanID

		if err := repo.Baseline.SaveBaselineMetrics(ctx, metrics); err != nil {
			return physique.AnalyzeResponse{}, physique.ErrSaveBaseline
		}

		result.Message = "Baseline scan recorded. Future scans will be compared against this one."
	} else {
		progression, err := s.buildProgression(userID, scanID, baseline, score)
		if err != nil {
			return physique.AnalyzeResponse{}, err
		}

		if err := repo.Progression.SaveProgression(ctx, progression); err != nil {
			return physique.AnalyzeResponse{}, physique.ErrSaveProgression
		}

		days := progression.DaysSinceBaseline
		delta := progression.OverallScoreDelta
		result.DaysSinceBaseline = &days
		result.OverallScoreChange = &delta
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit scan transaction")
		return physique.AnalyzeResponse{}, err
	}

	s.cacheLatest(ctx, requestID, userID, result)
	s.archiveScan(requestID, scanID, result)

	bodyFat := scoring.BodyFatFromOverallScore(score.OverallScore)
	weakSpots := make([]string, 0, len(score.GrowthAreas))
	for _, area := range score.GrowthAreas {
		weakSpots = append(weakSpots, area.Description)
	}

	return physique.AnalyzeResponse{
		Scan:           result,
		DietPlan:       plan.Diet(bodyFat),
		WorkoutRoutine: plan.Workout(weakSpots),
	}, nil
}

func (s *physiqueService) Latest(ctx context.Context, gender string) (entity.ScanResult, error) {
	requestID := contextPkg.GetRequestID(ctx)
	userID := demoUserID(gender)

	if cached, err := s.redis.GetJSON(ctx, latestScanKey(userID)); err == nil {
		var result entity.ScanResult
		if err := json.Unmarshal(cached, &result); err == nil {
			return result, nil
		}
	}

	repo, err := s.physiqueRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.ScanResult{}, err
	}

	scans, err := repo.Scan.GetScansByUserID(ctx, userID, 1)
	if err != nil {
		return entity.ScanResult{}, err
	}
	if len(scans) == 0 {
		return entity.ScanResult{}, physique.ErrNoScansForUser
	}

	result, err := scanResultFromRow(scans[0])
	if err != nil {
		return entity.ScanResult{}, err
	}

	s.cacheLatest(ctx, requestID, userID, result)

	return result, nil
}

func (s *physiqueService) History(ctx context.Context, gender string, limit int) (physique.HistoryResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)
	userID := demoUserID(gender)

	if limit <= 0 {
		limit = 20
	}

	repo, err := s.physiqueRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return physique.HistoryResponse{}, err
	}

	scans, err := repo.Scan.GetScansByUserID(ctx, userID, limit)
	if err != nil {
		return physique.HistoryResponse{}, err
	}

	summaries := make([]physique.ScanSummary, 0, len(scans))
	for _, scan := range scans {
		summaries = append(summaries, physique.ScanSummary{
			ScanID:       scan.ID,
			ScanDate:     scan.ScanDate.Format(time.RFC3339),
			IsBaseline:   scan.IsBaseline,
			OverallScore: scan.OverallScore,
			BodyType:     scan.BodyType,
			Frame:        scan.Frame,
			KeyInsight:   scan.KeyInsight,
		})
	}

	return physique.HistoryResponse{
		UserID: userID,
		Scans:  summaries,
	}, nil
}

func (s *physiqueService) Progression(ctx context.Context, gender string) (physique.ProgressionResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)
	userID := demoUserID(gender)

	repo, err := s.physiqueRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return physique.ProgressionResponse{}, err
	}

	rows, err := repo.Progression.GetProgressionByUserID(ctx, userID)
	if err != nil {
		return physique.ProgressionResponse{}, err
	}

	entries := make([]physique.ProgressionEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, physique.ProgressionEntry{
			ScanID:            row.ScanID,
			DaysSinceBaseline: row.DaysSinceBaseline,
			OverallScoreDelta: row.OverallScoreDelta,
			ShoulderDelta:     row.ShoulderScoreDelta,
			VTaperDelta:       row.VTaperScoreDelta,
			ChestDelta:        row.ChestScoreDelta,
			CoreDelta:         row.CoreScoreDelta,
			SymmetryDelta:     row.SymmetryScoreDelta,
			PostureDelta:      row.PostureScoreDelta,
			ArmsDelta:         row.ArmsScoreDelta,
		})
	}

	return physique.ProgressionResponse{
		UserID:  userID,
		Entries: entries,
	}, nil
}

func (s *physiqueService) buildProgression(userID, scanID string, baseline entity.Scan, score entity.PhysiqueScore) (entity.Progression, error) {
	progressionID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		return entity.Progression{}, err
	}

	var baselineScores map[string]int
	if err := json.Unmarshal(baseline.ScoresJSON, &baselineScores); err != nil {
		return entity.Progression{}, err
	}

	days := int(time.Since(baseline.ScanDate).Hours() / 24)
	if days < 0 {
		days = 0
	}

	delta := func(category string) int {
		return score.Scores[category] - baselineScores[category]
	}

	return entity.Progression{
		ID:                 progressionID,
		UserID:             userID,
		ScanID:             scanID,
		DaysSinceBaseline:  days,
		OverallScoreDelta:  score.OverallScore - baseline.OverallScore,
		ShoulderScoreDelta: delta("shoulders"),
		ChestScoreDelta:    delta("chest"),
		CoreScoreDelta:     delta("core"),
		VTaperScoreDelta:   delta("v_taper"),
		SymmetryScoreDelta: delta("symmetry"),
		PostureScoreDelta:  delta("posture"),
		ArmsScoreDelta:     delta("arms"),
	}, nil
}

func (s *physiqueService) cacheLatest(ctx context.Context, requestID, userID string, result entity.ScanResult) {
	payload, err := json.Marshal(result)
	if err != nil {
		return
	}

	if err := s.redis.SetJSON(ctx, latestScanKey(userID), payload, latestScanTTL); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to cache latest scan")
	}
}

func (s *physiqueService) archiveScan(requestID, scanID string, result entity.ScanResult) {
	payload, err := json.Marshal(result)
	if err != nil {
		return
	}

	if _, err := s.s3.UploadJSON(fmt.Sprintf("scans/%s", scanID), payload); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"scan_id":    scanID,
			"error":      err.Error(),
		}).Warn("Failed to archive scan to S3")
	}
}

func buildScanRow(scanID, userID string, isBaseline bool, front, side pose.Frame, score entity.PhysiqueScore) (entity.Scan, error) {
	frontJSON, err := json.Marshal(front)
	if err != nil {
		return entity.Scan{}, err
	}
	sideJSON, err := json.Marshal(side)
	if err != nil {
		return entity.Scan{}, err
	}
	scoresJSON, err := json.Marshal(score.Scores)
	if err != nil {
		return entity.Scan{}, err
	}
	strongJSON, err := json.Marshal(score.StrongAreas)
	if err != nil {
		return entity.Scan{}, err
	}
	growthJSON, err := json.Marshal(score.GrowthAreas)
	if err != nil {
		return entity.Scan{}, err
	}

	return entity.Scan{
		ID:              scanID,
		UserID:          userID,
		ScanDate:        time.Now(),
		IsBaseline:      isBaseline,
		FrontPoseData:   frontJSON,
		SidePoseData:    sideJSON,
		OverallScore:    score.OverallScore,
		ScoresJSON:      scoresJSON,
		BodyType:        score.BodyType,
		Frame:           score.Frame,
		StrongAreasJSON: strongJSON,
		GrowthAreasJSON: growthJSON,
		KeyInsight:      score.KeyInsight,
	}, nil
}

func scanResultFromRow(scan entity.Scan) (entity.ScanResult, error) {
	var scores map[string]int
	if err := json.Unmarshal(scan.ScoresJSON, &scores); err != nil {
		return entity.ScanResult{}, err
	}

	var strong, growth []entity.CategoryArea
	if len(scan.StrongAreasJSON) > 0 {
		if err := json.Unmarshal(scan.StrongAreasJSON, &strong); err != nil {
			return entity.ScanResult{}, err
		}
	}
	if len(scan.GrowthAreasJSON) > 0 {
		if err := json.Unmarshal(scan.GrowthAreasJSON, &growth); err != nil {
			return entity.ScanResult{}, err
		}
	}

	return entity.ScanResult{
		PhysiqueScore: entity.PhysiqueScore{
			OverallScore: scan.OverallScore,
			Scores:       scores,
			BodyType:     scan.BodyType,
			Frame:        scan.Frame,
			StrongAreas:  strong,
			GrowthAreas:  growth,
			KeyInsight:   scan.KeyInsight,
		},
		IsBaseline: scan.IsBaseline,
	}, nil
}

func measureBaseline(front pose.Frame) entity.BaselineMetrics {
	shoulderWidth := pose.Distance(front[pose.LeftShoulder], front[pose.RightShoulder])
	hipWidth := pose.Distance(front[pose.LeftHip], front[pose.RightHip])
	waistWidth := hipWidth * 0.75

	armLength := (pose.Distance(front[pose.LeftShoulder], front[pose.LeftWrist]) +
		pose.Distance(front[pose.RightShoulder], front[pose.RightWrist])) / 2
	legLength := (pose.Distance(front[pose.LeftHip], front[pose.LeftAnkle]) +
		pose.Distance(front[pose.RightHip], front[pose.RightAnkle])) / 2

	metrics := entity.BaselineMetrics{
		ShoulderWidth: shoulderWidth,
		HipWidth:      hipWidth,
	}
	if hipWidth > 0 {
		metrics.ShoulderHipRatio = shoulderWidth / hipWidth
	}
	if shoulderWidth > 0 {
		metrics.WaistShoulderRatio = waistWidth / shoulderWidth
	}
	if legLength > 0 {
		metrics.ArmLegRatio = armLength / legLength
	}

	return metrics
}
