package pathwayService

import (
	"PhysiqueGolang/internal/api/pathway"
	"PhysiqueGolang/internal/entity"
	"PhysiqueGolang/pkg/gemini"
	"PhysiqueGolang/pkg/redis"
	"PhysiqueGolang/pkg/utils"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IPathwayService interface {
	Generate(ctx context.Context, req pathway.GenerateRequest) (pathway.GenerateResponse, error)
	CompleteTask(ctx context.Context, req pathway.CompleteTaskRequest) (pathway.CompleteTaskResponse, error)
	GetPathway(ctx context.Context, id string) (entity.Pathway, error)
	Progress(ctx context.Context, gender string) (entity.UserProgress, error)
}

type pathwayService struct {
	log    *logrus.Logger
	redis  redis.IRedis
	gemini gemini.IGemini
	utils  utils.IUtils
}

// NewPathwayService accepts a nil gemini client. Generation then always
// falls back to the rule-based builder.
func NewPathwayService(
	log *logrus.Logger,
	redis redis.IRedis,
	gemini gemini.IGemini,
	utils utils.IUtils,
) IPathwayService {
	return &pathwayService{
		log:    log,
		redis:  redis,
		gemini: gemini,
		utils:  utils,
	}
}
