package analysisService

import (
	"PhysiqueGolang/internal/api/analysis"
	"PhysiqueGolang/internal/entity"
	"PhysiqueGolang/pkg/plan"
	"PhysiqueGolang/pkg/pose"
	"PhysiqueGolang/pkg/scoring"
	"errors"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IAnalysisService interface {
	AnalyzeBody(ctx context.Context, poseData []pose.Landmark) (entity.BodyAnalysis, error)
	DietPlan(ctx context.Context, bodyFatEstimate float64) (entity.DietPlan, error)
	WorkoutRoutine(ctx context.Context, weakSpots []string) (entity.WorkoutRoutine, error)
	CompleteAnalysis(ctx context.Context, poseData []pose.Landmark) (analysis.CompleteAnalysisResponse, error)
}

type analysisService struct {
	log *logrus.Logger
}

func NewAnalysisService(log *logrus.Logger) IAnalysisService {
	return &analysisService{
		log: log,
	}
}

func (s *analysisService) AnalyzeBody(_ context.Context, poseData []pose.Landmark) (entity.BodyAnalysis, error) {
	result, err := scoring.AnalyzeBody(pose.Frame(poseData))
	if err != nil {
		if errors.Is(err, scoring.ErrIncompleteFrame) {
			return entity.BodyAnalysis{}, analysis.ErrNoBodyDetected
		}
		return entity.BodyAnalysis{}, err
	}

	return result, nil
}

func (s *analysisService) DietPlan(_ context.Context, bodyFatEstimate float64) (entity.DietPlan, error) {
	return plan.Diet(bodyFatEstimate), nil
}

func (s *analysisService) WorkoutRoutine(_ context.Context, weakSpots []string) (entity.WorkoutRoutine, error) {
	return plan.Workout(weakSpots), nil
}

func (s *analysisService) CompleteAnalysis(ctx context.Context, poseData []pose.Landmark) (analysis.CompleteAnalysisResponse, error) {
	result, err := s.AnalyzeBody(ctx, poseData)
	if err != nil {
		return analysis.CompleteAnalysisResponse{}, err
	}

	return analysis.CompleteAnalysisResponse{
		Analysis:       result,
		DietPlan:       plan.Diet(result.BodyFatEstimate),
		WorkoutRoutine: plan.Workout(result.WeakSpots),
	}, nil
}
