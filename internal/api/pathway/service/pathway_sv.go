package pathwayService

import (
	"PhysiqueGolang/internal/api/pathway"
	"PhysiqueGolang/internal/entity"
	contextPkg "PhysiqueGolang/pkg/context"
	"PhysiqueGolang/pkg/features"
	"PhysiqueGolang/pkg/plan"
	"PhysiqueGolang/pkg/pose"
	"PhysiqueGolang/pkg/redis"
	"errors"
	"fmt"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	pathwayTTL  = 30 * 24 * time.Hour
	sourceAI    = "ai"
	sourceRules = "rule_based"
)

func pathwayKey(id string) string {
	return fmt.Sprintf("pathway:%s", id)
}

func progressKey(userID string) string {
	return fmt.Sprintf("pathway:progress:%s", userID)
}

func (s *pathwayService) Generate(ctx context.Context, req pathway.GenerateRequest) (pathway.GenerateResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	gender := entity.Gender(req.Gender)
	if !gender.Valid() {
		return pathway.GenerateResponse{}, pathway.ErrInvalidGender
	}

	profile := entity.UserProfile{
		Gender:   gender,
		HeightCm: req.HeightCm,
		Age:      req.Age,
	}

	bodyFeatures, err := features.Extract(pose.Frame(req.FrontPose), pose.Frame(req.SidePose), gender)
	if err != nil && !errors.Is(err, pose.ErrNoDetection) {
		return pathway.GenerateResponse{}, err
	}

	pathwayID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return pathway.GenerateResponse{}, err
	}

	userID := fmt.Sprintf("demo_user_%s", req.Gender)

	result, source := s.generatePathway(ctx, requestID, pathwayID, userID, bodyFeatures, profile, req.CommitmentDays)

	if err := s.storePathway(ctx, result); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"pathway_id": result.ID,
			"error":      err.Error(),
		}).Error("Failed to store pathway")
		return pathway.GenerateResponse{}, pathway.ErrPersistPathway
	}

	progress := entity.UserProgress{
		CurrentPathway: result.ID,
		CurrentDay:     1,
		League:         leagueForXP(0),
	}
	if err := s.storeProgress(ctx, userID, progress); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to initialize user progress")
	}

	return pathway.GenerateResponse{
		Pathway: result,
		Source:  source,
	}, nil
}

func (s *pathwayService) generatePathway(
	ctx context.Context,
	requestID, pathwayID, userID string,
	f entity.BodyFeatures,
	profile entity.UserProfile,
	commitmentDays int,
) (entity.Pathway, string) {
	if s.gemini != nil {
		prompt := features.PathwayPrompt(f, profile, commitmentDays)

		text, err := s.gemini.GeneratePlan(ctx, prompt)
		if err == nil {
			generated, parseErr := parseGeneratedPathway(text)
			if parseErr == nil {
				generated.ID = pathwayID
				generated.UserID = userID
				generated.CreatedAt = time.Now()
				generated.CommitmentDays = commitmentDays
				generated.FocusAreas = f.FocusAreas
				return generated, sourceAI
			}

			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      parseErr.Error(),
			}).Warn("Failed to parse generated pathway, falling back to rule-based")
		} else {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Pathway generation call failed, falling back to rule-based")
		}
	}

	return plan.GeneratePathway(pathwayID, userID, time.Now(), f, profile, commitmentDays), sourceRules
}

func (s *pathwayService) CompleteTask(ctx context.Context, req pathway.CompleteTaskRequest) (pathway.CompleteTaskResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	current, err := s.GetPathway(ctx, req.PathwayID)
	if err != nil {
		return pathway.CompleteTaskResponse{}, err
	}

	stageIdx := -1
	for i := range current.Stages {
		if current.Stages[i].Day == req.Day {
			stageIdx = i
			break
		}
	}
	if stageIdx < 0 {
		return pathway.CompleteTaskResponse{}, pathway.ErrStageNotFound
	}

	stage := &current.Stages[stageIdx]

	taskIdx := -1
	for i := range stage.Tasks {
		if stage.Tasks[i].ID == req.TaskID {
			taskIdx = i
			break
		}
	}
	if taskIdx < 0 {
		return pathway.CompleteTaskResponse{}, pathway.ErrTaskNotFound
	}

	task := &stage.Tasks[taskIdx]
	if task.Completed {
		return pathway.CompleteTaskResponse{}, pathway.ErrTaskAlreadyDone
	}

	task.Completed = true
	xpEarned := task.XP

	stageCompleted := true
	for i := range stage.Tasks {
		if !stage.Tasks[i].Completed {
			stageCompleted = false
			break
		}
	}
	if stageCompleted {
		now := time.Now()
		stage.Completed = true
		stage.CompletedAt = &now
	}

	if err := s.storePathway(ctx, current); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"pathway_id": current.ID,
			"error":      err.Error(),
		}).Error("Failed to store pathway after task completion")
		return pathway.CompleteTaskResponse{}, pathway.ErrPersistPathway
	}

	progress, err := s.loadProgress(ctx, current.UserID)
	if err != nil {
		progress = entity.UserProgress{CurrentPathway: current.ID, CurrentDay: 1}
	}

	progress.TotalXP += xpEarned
	progress.League = leagueForXP(progress.TotalXP)
	progress.Streak = nextStreak(progress, time.Now())
	progress.LastActivity = time.Now().Format("2006-01-02")
	if stageCompleted && req.Day >= progress.CurrentDay {
		progress.CurrentDay = req.Day + 1
	}

	if err := s.storeProgress(ctx, current.UserID, progress); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to store user progress")
	}

	return pathway.CompleteTaskResponse{
		XPEarned:       xpEarned,
		StageCompleted: stageCompleted,
		TotalXP:        progress.TotalXP,
		Streak:         progress.Streak,
		League:         progress.League,
	}, nil
}

func (s *pathwayService) GetPathway(ctx context.Context, id string) (entity.Pathway, error) {
	payload, err := s.redis.GetJSON(ctx, pathwayKey(id))
	if err != nil {
		if errors.Is(err, redis.ErrNotFound) {
			return entity.Pathway{}, pathway.ErrPathwayNotFound
		}
		return entity.Pathway{}, err
	}

	var result entity.Pathway
	if err := json.Unmarshal(payload, &result); err != nil {
		return entity.Pathway{}, err
	}

	return result, nil
}

func (s *pathwayService) Progress(ctx context.Context, gender string) (entity.UserProgress, error) {
	userID := fmt.Sprintf("demo_user_%s", gender)

	progress, err := s.loadProgress(ctx, userID)
	if err != nil {
		if errors.Is(err, redis.ErrNotFound) {
			return entity.UserProgress{}, pathway.ErrNoProgress
		}
		return entity.UserProgress{}, err
	}

	return progress, nil
}

func (s *pathwayService) storePathway(ctx context.Context, p entity.Pathway) error {
	payload, err := json.Marshal(p)
	if err != nil {
		return err
	}

	return s.redis.SetJSON(ctx, pathwayKey(p.ID), payload, pathwayTTL)
}

func (s *pathwayService) loadProgress(ctx context.Context, userID string) (entity.UserProgress, error) {
	payload, err := s.redis.GetJSON(ctx, progressKey(userID))
	if err != nil {
		return entity.UserProgress{}, err
	}

	var progress entity.UserProgress
	if err := json.Unmarshal(payload, &progress); err != nil {
		return entity.UserProgress{}, err
	}

	return progress, nil
}

func (s *pathwayService) storeProgress(ctx context.Context, userID string, progress entity.UserProgress) error {
	payload, err := json.Marshal(progress)
	if err != nil {
		return err
	}

	return s.redis.SetJSON(ctx, progressKey(userID), payload, pathwayTTL)
}

// parseGeneratedPathway tolerates markdown code fences around the JSON
// the model returns.
func parseGeneratedPathway(text string) (entity.Pathway, error) {
	trimmed := strings.TrimSpace(text)
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(trimmed, "```")
	trimmed = strings.TrimSpace(trimmed)

	var result entity.Pathway
	if err := json.Unmarshal([]byte(trimmed), &result); err != nil {
		return entity.Pathway{}, err
	}

	if len(result.Stages) == 0 {
		return entity.Pathway{}, errors.New("generated pathway has no stages")
	}

	return result, nil
}

func leagueForXP(xp int) string {
	switch {
	case xp >= 5000:
		return "diamond"
	case xp >= 2500:
		return "platinum"
	case xp >= 1000:
		return "gold"
	case xp >= 500:
		return "silver"
	default:
		return "bronze"
	}
}

func nextStreak(progress entity.UserProgress, now time.Time) int {
	today := now.Format("2006-01-02")
	yesterday := now.AddDate(0, 0, -1).Format("2006-01-02")

	switch progress.LastActivity {
	case today:
		if progress.Streak == 0 {
			return 1
		}
		return progress.Streak
	case yesterday:
		return progress.Streak + 1
	default:
		return 1
	}
}
