package scanService

import (
	physiqueService "PhysiqueGolang/internal/api/physique/service"
	"PhysiqueGolang/internal/api/scan"
	"PhysiqueGolang/internal/entity"
	"PhysiqueGolang/pkg/capture"
	"PhysiqueGolang/pkg/landmarks"
	"PhysiqueGolang/pkg/pose"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IScanService interface {
	NewSession(profile entity.UserProfile) *Session
	Observe(session *Session, poseData []pose.Landmark) scan.ServerMessage
	ObserveImage(session *Session, frame []byte) (scan.ServerMessage, error)
	Tick(ctx context.Context, session *Session) (*scan.ServerMessage, error)
	ManualCapture(ctx context.Context, session *Session) (scan.ServerMessage, error)
	Cancel(session *Session)
	FrameQuality(poseData []pose.Landmark, poseType string) scan.FrameQualityResponse
}

type scanService struct {
	log             *logrus.Logger
	cfg             capture.Config
	landmarkSource  landmarks.ISource
	physiqueService physiqueService.IPhysiqueService
}

func NewScanService(
	log *logrus.Logger,
	cfg capture.Config,
	landmarkSource landmarks.ISource,
	ps physiqueService.IPhysiqueService,
) IScanService {
	return &scanService{
		log:             log,
		cfg:             cfg,
		landmarkSource:  landmarkSource,
		physiqueService: ps,
	}
}
