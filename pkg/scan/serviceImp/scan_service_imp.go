package serviceImp

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"agrow/entities"
	"agrow/pkg/ai"
	apperr "agrow/pkg/errors"
	"agrow/pkg/logging"
	"agrow/pkg/metrics"
	"agrow/pkg/scan/parser"
	"agrow/pkg/scan/service"
	"agrow/pkg/scan/types"
	store "agrow/pkg/store/service"
)

type ScanSvc struct {
	vision  ai.VisionClient
	engine  *Engine
	store   store.Service
	timeout time.Duration
	metrics *metrics.Metrics
	log     *slog.Logger
	now     func() time.Time
}

var _ service.ScanService = (*ScanSvc)(nil)

type Options struct {
	// InferenceTimeout bounds one vision call; zero means no bound.
	InferenceTimeout time.Duration
	Metrics          *metrics.Metrics
	Logger           *slog.Logger
	Now              func() time.Time
}

func New(vision ai.VisionClient, engine *Engine, st store.Service, opts Options) *ScanSvc {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &ScanSvc{
		vision:  vision,
		engine:  engine,
		store:   st,
		timeout: opts.InferenceTimeout,
		metrics: opts.Metrics,
		log:     logging.Component(opts.Logger, "scan"),
		now:     opts.Now,
	}
}

func (s *ScanSvc) Create(ctx context.Context, userID string, req types.CreateScanRequest) (*entities.DiagnosisRecord, error) {
	rec, err := s.create(ctx, userID, req)
	s.metrics.RecordScan(outcome(err))
	if err != nil {
		s.log.Error("scan failed", "user_id", userID, "kind", apperr.KindOf(err), "error", err)
		return nil, err
	}
	s.log.Info("scan stored", "user_id", userID, "scan_id", rec.ID, "crop", rec.Crop,
		"condition", rec.PredictedDisease, "status", rec.Status)
	return rec, nil
}

func (s *ScanSvc) create(ctx context.Context, userID string, req types.CreateScanRequest) (*entities.DiagnosisRecord, error) {
	plog := entities.NewProcessLog(s.now)
	plog.Success("Initializing Universal Neural Engine...")
	plog.Info("Activating Multi-Spectral Vision Hub...")

	img, err := ai.ParseDataURI(req.ImageURL)
	if err != nil {
		return nil, err
	}
	cropHint := strings.TrimSpace(req.Crop)

	text, err := s.infer(ctx, img, cropHint)
	if err != nil {
		return nil, err
	}
	diag, err := parser.Parse(text)
	if err != nil {
		s.log.Debug("unparseable model reply", "reply", text)
		return nil, err
	}

	rec, matched := s.engine.Reconcile(plog, diag, cropHint)
	s.metrics.RecordKBLookup(matched)
	rec.UserID = userID
	rec.ImageURL = req.ImageURL

	err = s.store.Update(ctx, func(snap *entities.Snapshot) error {
		snap.Scans = append(snap.Scans, *rec)
		return nil
	})
	if err != nil {
		return nil, apperr.E(apperr.KindPersistence, "scan.store", err)
	}
	return rec, nil
}

func (s *ScanSvc) infer(ctx context.Context, img ai.Image, cropHint string) (string, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	start := time.Now()
	text, err := s.vision.Analyze(ctx, img, cropHint)
	s.metrics.ObserveInference(time.Since(start), err)
	if err != nil {
		if !apperr.IsKind(err, apperr.KindInference) {
			err = apperr.E(apperr.KindInference, "scan.infer", err)
		}
		return "", err
	}
	return text, nil
}

func (s *ScanSvc) List(ctx context.Context, userID string) ([]entities.DiagnosisRecord, error) {
	out := []entities.DiagnosisRecord{}
	err := s.store.View(ctx, func(snap *entities.Snapshot) error {
		for _, r := range snap.Scans {
			if r.UserID == userID {
				out = append(out, r)
			}
		}
		return nil
	})
	if err != nil {
		return nil, apperr.E(apperr.KindPersistence, "scan.list", err)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *ScanSvc) Get(ctx context.Context, userID, id string) (*entities.DiagnosisRecord, error) {
	var found *entities.DiagnosisRecord
	err := s.store.View(ctx, func(snap *entities.Snapshot) error {
		for i := range snap.Scans {
			if snap.Scans[i].ID == id && snap.Scans[i].UserID == userID {
				r := snap.Scans[i]
				found = &r
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return nil, apperr.E(apperr.KindPersistence, "scan.get", err)
	}
	if found == nil {
		return nil, apperr.Newf(apperr.KindNotFound, "scan.get", "scan %s not found", id)
	}
	return found, nil
}

func outcome(err error) string {
	switch apperr.KindOf(err) {
	case apperr.KindUnknown:
		if err == nil {
			return metrics.OutcomeSuccess
		}
		return metrics.OutcomeInference
	case apperr.KindInvalid:
		return metrics.OutcomeInvalid
	case apperr.KindParse:
		return metrics.OutcomeParse
	case apperr.KindPersistence:
		return metrics.OutcomePersistence
	}
	return metrics.OutcomeInference
}
