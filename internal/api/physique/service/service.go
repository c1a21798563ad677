package physiqueService

import (
	"PhysiqueGolang/internal/api/physique"
	physiqueRepository "PhysiqueGolang/internal/api/physique/repository"
	"PhysiqueGolang/internal/entity"
	"PhysiqueGolang/pkg/redis"
	"PhysiqueGolang/pkg/s3"
	"PhysiqueGolang/pkg/utils"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IPhysiqueService interface {
	Analyze(ctx context.Context, req physique.AnalyzeRequest) (physique.AnalyzeResponse, error)
	Latest(ctx context.Context, gender string) (entity.ScanResult, error)
	History(ctx context.Context, gender string, limit int) (physique.HistoryResponse, error)
	Progression(ctx context.Context, gender string) (physique.ProgressionResponse, error)
}

type physiqueService struct {
	log                *logrus.Logger
	physiqueRepository physiqueRepository.Repository
	redis              redis.IRedis
	s3                 s3.ItfS3
	utils              utils.IUtils
}

func NewPhysiqueService(
	log *logrus.Logger,
	pr physiqueRepository.Repository,
	redis redis.IRedis,
	s3 s3.ItfS3,
	utils utils.IUtils,
) IPhysiqueService {
	return &physiqueService{
		log:                log,
		physiqueRepository: pr,
		redis:              redis,
		s3:                 s3,
		utils:              utils,
	}
}
