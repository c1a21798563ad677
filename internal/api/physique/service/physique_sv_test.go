package physiqueService

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"

	"PhysiqueGolang/internal/api/physique"
	physiqueRepository "PhysiqueGolang/internal/api/physique/repository"
	"PhysiqueGolang/internal/entity"
	"PhysiqueGolang/pkg/pose"
	"PhysiqueGolang/pkg/redis"
	"PhysiqueGolang/pkg/scoring"
	"PhysiqueGolang/pkg/utils"
)

type fakeStore struct {
	users        map[string]entity.User
	scans        []entity.Scan
	baselines    map[string]entity.BaselineMetrics
	progressions []entity.Progression
	committed    bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:     make(map[string]entity.User),
		baselines: make(map[string]entity.BaselineMetrics),
	}
}

func (f *fakeStore) CreateUser(_ context.Context, user entity.User) error {
	if _, exists := f.users[user.ID]; !exists {
		f.users[user.ID] = user
	}
	return nil
}

func (f *fakeStore) GetUserByID(_ context.Context, id string) (entity.User, error) {
	user, ok := f.users[id]
	if !ok {
		return entity.User{}, physique.ErrScanNotFound
	}
	return user, nil
}

func (f *fakeStore) CreateScan(_ context.Context, scan entity.Scan) error {
	f.scans = append(f.scans, scan)
	return nil
}

func (f *fakeStore) GetScanByID(_ context.Context, id string) (entity.Scan, error) {
	for _, scan := range f.scans {
		if scan.ID == id {
			return scan, nil
		}
	}
	return entity.Scan{}, physique.ErrScanNotFound
}

func (f *fakeStore) GetBaselineScan(_ context.Context, userID string) (entity.Scan, error) {
	for _, scan := range f.scans {
		if scan.UserID == userID && scan.IsBaseline {
			return scan, nil
		}
	}
	return entity.Scan{}, physique.ErrNoBaseline
}

func (f *fakeStore) GetScansByUserID(_ context.Context, userID string, limit int) ([]entity.Scan, error) {
	var out []entity.Scan
	for i := len(f.scans) - 1; i >= 0 && len(out) < limit; i-- {
		if f.scans[i].UserID == userID {
			out = append(out, f.scans[i])
		}
	}
	if len(out) == 0 {
		return nil, physique.ErrNoScansForUser
	}
	return out, nil
}

func (f *fakeStore) SaveBaselineMetrics(_ context.Context, metrics entity.BaselineMetrics) error {
	f.baselines[metrics.UserID] = metrics
	return nil
}

func (f *fakeStore) GetBaselineMetrics(_ context.Context, userID string) (entity.BaselineMetrics, error) {
	metrics, ok := f.baselines[userID]
	if !ok {
		return entity.BaselineMetrics{}, physique.ErrNoBaseline
	}
	return metrics, nil
}

func (f *fakeStore) SaveProgression(_ context.Context, progression entity.Progression) error {
	f.progressions = append(f.progressions, progression)
	return nil
}

func (f *fakeStore) GetProgressionByUserID(_ context.Context, userID string) ([]entity.Progression, error) {
	var out []entity.Progression
	for _, p := range f.progressions {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeRepository struct {
	store *fakeStore
}

func (f *fakeRepository) NewClient(_ bool) (physiqueRepository.Client, error) {
	return physiqueRepository.Client{
		User:        f.store,
		Scan:        f.store,
		Baseline:    f.store,
		Progression: f.store,
		Commit:      func() error { f.store.committed = true; return nil },
		Rollback:    func() error { return nil },
	}, nil
}

type fakeRedis struct {
	data map[string][]byte
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: make(map[string][]byte)}
}

func (f *fakeRedis) SetJSON(_ context.Context, key string, payload []byte, _ time.Duration) error {
	f.data[key] = payload
	return nil
}

func (f *fakeRedis) GetJSON(_ context.Context, key string) ([]byte, error) {
	payload, ok := f.data[key]
	if !ok {
		return nil, redis.ErrNotFound
	}
	return payload, nil
}

func (f *fakeRedis) Delete(_ context.Context, key string) error {
	delete(f.data, key)
	return nil
}

type fakeS3 struct {
	uploads map[string][]byte
}

func newFakeS3() *fakeS3 {
	return &fakeS3{uploads: make(map[string][]byte)}
}

func (f *fakeS3) UploadJSON(key string, payload []byte) (string, error) {
	f.uploads[key] = payload
	return "https://bucket.local/" + key, nil
}

func (f *fakeS3) PresignUrl(fileName string) (string, error) {
	return "https://bucket.local/" + fileName + "?signed", nil
}

func (f *fakeS3) DeleteFile(fileName string) error {
	delete(f.uploads, fileName)
	return nil
}

type testEnv struct {
	service IPhysiqueService
	store   *fakeStore
	redis   *fakeRedis
	s3      *fakeS3
}

func newTestEnv() *testEnv {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	store := newFakeStore()
	rds := newFakeRedis()
	storage := newFakeS3()

	return &testEnv{
		service: NewPhysiqueService(log, &fakeRepository{store: store}, rds, storage, utils.New()),
		store:   store,
		redis:   rds,
		s3:      storage,
	}
}

func malePose() []pose.Landmark {
	frame := make([]pose.Landmark, pose.NumLandmarks)
	for i := range frame {
		frame[i] = pose.Landmark{X: 0.5, Y: 0.5, Visibility: 0.9}
	}

	frame[pose.Nose] = pose.Landmark{X: 0.5, Y: 0.2, Visibility: 0.9}
	frame[pose.LeftShoulder] = pose.Landmark{X: 0.625, Y: 0.3, Visibility: 0.9}
	frame[pose.RightShoulder] = pose.Landmark{X: 0.375, Y: 0.3, Visibility: 0.9}
	frame[pose.LeftWrist] = pose.Landmark{X: 0.66, Y: 0.58, Visibility: 0.9}
	frame[pose.RightWrist] = pose.Landmark{X: 0.34, Y: 0.58, Visibility: 0.9}
	frame[pose.LeftHip] = pose.Landmark{X: 0.5875, Y: 0.55, Visibility: 0.9}
	frame[pose.RightHip] = pose.Landmark{X: 0.4125, Y: 0.55, Visibility: 0.9}
	frame[pose.LeftAnkle] = pose.Landmark{X: 0.58, Y: 0.95, Visibility: 0.9}
	frame[pose.RightAnkle] = pose.Landmark{X: 0.42, Y: 0.95, Visibility: 0.9}

	return frame
}

func analyzeRequest() physique.AnalyzeRequest {
	return physique.AnalyzeRequest{
		FrontPose: malePose(),
		SidePose:  malePose(),
		Gender:    "male",
	}
}

func TestAnalyzeBaselineScan(t *testing.T) {
	env := newTestEnv()

	result, err := env.service.Analyze(context.Background(), analyzeRequest())
	require.NoError(t, err)

	assert.True(t, result.Scan.IsBaseline)
	assert.Equal(t, "Baseline scan recorded. Future scans will be compared against this one.", result.Scan.Message)
	assert.Nil(t, result.Scan.DaysSinceBaseline)
	assert.Greater(t, result.Scan.OverallScore, 0)
	assert.NotZero(t, result.DietPlan.Calories)
	assert.NotEmpty(t, result.WorkoutRoutine.Focus)

	assert.True(t, env.store.committed)
	require.Len(t, env.store.scans, 1)
	assert.True(t, env.store.scans[0].IsBaseline)

	metrics, ok := env.store.baselines["demo_user_male"]
	require.True(t, ok)
	assert.Equal(t, env.store.scans[0].ID, metrics.BaselineScanID)
	assert.InDelta(t, 0.25, metrics.ShoulderWidth, 0.0001)
	assert.InDelta(t, 0.25/0.175, metrics.ShoulderHipRatio, 0.0001)

	// The result lands in the cache and the archive.
	assert.Contains(t, env.redis.data, "physique:latest:demo_user_male")
	assert.Contains(t, env.s3.uploads, "scans/"+env.store.scans[0].ID)
}

func TestAnalyzeProgressionScan(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	_, err := env.service.Analyze(ctx, analyzeRequest())
	require.NoError(t, err)

	// Age the baseline so the day delta is visible.
	env.store.scans[0].ScanDate = time.Now().AddDate(0, 0, -10)

	req := analyzeRequest()
	req.FrontPose[pose.LeftShoulder].X = 0.64
	req.FrontPose[pose.RightShoulder].X = 0.36

	result, err := env.service.Analyze(ctx, req)
	require.NoError(t, err)

	assert.False(t, result.Scan.IsBaseline)
	require.NotNil(t, result.Scan.DaysSinceBaseline)
	assert.Equal(t, 10, *result.Scan.DaysSinceBaseline)
	require.NotNil(t, result.Scan.OverallScoreChange)

	require.Len(t, env.store.progressions, 1)
	progression := env.store.progressions[0]
	assert.Equal(t, "demo_user_male", progression.UserID)
	assert.Equal(t, 10, progression.DaysSinceBaseline)
	assert.Equal(t, *result.Scan.OverallScoreChange, progression.OverallScoreDelta)

	// Wider shoulders move the shoulder category up against baseline.
	assert.Greater(t, progression.ShoulderScoreDelta, 0)
}

func TestAnalyzeInvalidGender(t *testing.T) {
	env := newTestEnv()

	req := analyzeRequest()
	req.Gender = "robot"

	_, err := env.service.Analyze(context.Background(), req)
	assert.ErrorIs(t, err, physique.ErrInvalidGender)
}

func TestAnalyzeUnsupportedGender(t *testing.T) {
	env := newTestEnv()

	req := analyzeRequest()
	req.Gender = "female"

	_, err := env.service.Analyze(context.Background(), req)

	var genderErr *scoring.UnsupportedGenderError
	assert.ErrorAs(t, err, &genderErr)
}

func TestAnalyzeIncompletePose(t *testing.T) {
	env := newTestEnv()

	req := analyzeRequest()
	req.FrontPose = req.FrontPose[:10]

	_, err := env.service.Analyze(context.Background(), req)
	assert.ErrorIs(t, err, physique.ErrIncompletePose)
}

func TestLatestFromCacheThenStore(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	_, err := env.service.Latest(ctx, "male")
	assert.ErrorIs(t, err, physique.ErrNoScansForUser)

	analyzed, err := env.service.Analyze(ctx, analyzeRequest())
	require.NoError(t, err)

	cached, err := env.service.Latest(ctx, "male")
	require.NoError(t, err)
	assert.Equal(t, analyzed.Scan.OverallScore, cached.OverallScore)

	// Drop the cache and read through the store instead.
	require.NoError(t, env.redis.Delete(ctx, "physique:latest:demo_user_male"))

	fromStore, err := env.service.Latest(ctx, "male")
	require.NoError(t, err)
	assert.Equal(t, analyzed.Scan.OverallScore, fromStore.OverallScore)
	assert.True(t, fromStore.IsBaseline)

	// The read-through repopulates the cache.
	assert.Contains(t, env.redis.data, "physique:latest:demo_user_male")
}

func TestHistory(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	_, err := env.service.Analyze(ctx, analyzeRequest())
	require.NoError(t, err)
	_, err = env.service.Analyze(ctx, analyzeRequest())
	require.NoError(t, err)

	history, err := env.service.History(ctx, "male", 10)
	require.NoError(t, err)

	assert.Equal(t, "demo_user_male", history.UserID)
	require.Len(t, history.Scans, 2)

	// Newest first; only the first scan is the baseline.
	assert.False(t, history.Scans[0].IsBaseline)
	assert.True(t, history.Scans[1].IsBaseline)
}

func TestProgressionListing(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	_, err := env.service.Analyze(ctx, analyzeRequest())
	require.NoError(t, err)
	_, err = env.service.Analyze(ctx, analyzeRequest())
	require.NoError(t, err)

	progression, err := env.service.Progression(ctx, "male")
	require.NoError(t, err)

	assert.Equal(t, "demo_user_male", progression.UserID)
	require.Len(t, progression.Entries, 1)
	assert.Equal(t, env.store.scans[1].ID, progression.Entries[0].ScanID)
}

func TestScanRowRoundTrip(t *testing.T) {
	score, err := scoring.ScorePhysique(malePose(), malePose(), entity.UserProfile{Gender: entity.GenderMale})
	require.NoError(t, err)

	row, err := buildScanRow("scan_1", "demo_user_male", true, malePose(), malePose(), score)
	require.NoError(t, err)

	result, err := scanResultFromRow(row)
	require.NoError(t, err)

	assert.Equal(t, score.OverallScore, result.OverallScore)
	assert.Equal(t, score.Scores, result.Scores)
	assert.Equal(t, score.BodyType, result.BodyType)
	assert.Equal(t, score.StrongAreas, result.StrongAreas)
	assert.Equal(t, score.KeyInsight, result.KeyInsight)
	assert.True(t, result.IsBaseline)
}
