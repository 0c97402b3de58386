package serviceImp

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"agrow/entities"
	apperr "agrow/pkg/errors"
	"agrow/pkg/metrics"
	product "agrow/pkg/product/service"
	"agrow/pkg/purchase/service"
	store "agrow/pkg/store/service"
)

// ArrivalLead is how far ahead the estimated arrival is set.
const ArrivalLead = 72 * time.Hour

type purchaseSvc struct {
	store    store.Service
	products product.ProductService
	metrics  *metrics.Metrics
	now      func() time.Time
	newID    func() string
	tracking func() string
}

func New(st store.Service, products product.ProductService, m *metrics.Metrics) service.PurchaseService {
	return &purchaseSvc{
		store:    st,
		products: products,
		metrics:  m,
		now:      time.Now,
		newID:    uuid.NewString,
		tracking: newTrackingID,
	}
}

func (s *purchaseSvc) Create(ctx context.Context, userID string, req service.CreatePurchaseRequest) (*entities.Purchase, error) {
	const op = "purchase.create"
	req.ProductID = strings.TrimSpace(req.ProductID)
	if req.ProductID == "" {
		return nil, apperr.Newf(apperr.KindInvalid, op, "productId required")
	}

	name := strings.TrimSpace(req.ProductName)
	var price float64
	if req.Price != nil {
		price = *req.Price
	}
	if price < 0 {
		return nil, apperr.Newf(apperr.KindInvalid, op, "price must not be negative")
	}
	if name == "" || req.Price == nil {
		p, ok, err := s.products.Find(ctx, req.ProductID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, apperr.Newf(apperr.KindInvalid, op, "unknown product %s", req.ProductID)
		}
		if name == "" {
			name = p.Name
		}
		if req.Price == nil {
			price = p.Price
		}
	}

	now := s.now().UTC()
	arrival := now.Add(ArrivalLead)
	pur := entities.Purchase{
		ID:               s.newID(),
		UserID:           userID,
		ProductID:        req.ProductID,
		ProductName:      name,
		Price:            price,
		CreatedAt:        now,
		Status:           entities.PurchaseOrdered,
		TrackingID:       s.tracking(),
		EstimatedArrival: &arrival,
		Logs:             initialLog(now),
	}
	err := s.store.Update(ctx, func(snap *entities.Snapshot) error {
		snap.Purchases = append(snap.Purchases, pur)
		return nil
	})
	if err != nil {
		return nil, apperr.E(apperr.KindPersistence, op, err)
	}
	s.metrics.RecordPurchase()
	slog.Info("purchase created", "component", "purchase", "user_id", userID,
		"purchase_id", pur.ID, "product_id", pur.ProductID, "tracking_id", pur.TrackingID)
	return &pur, nil
}

func (s *purchaseSvc) List(ctx context.Context, userID string) ([]entities.Purchase, error) {
	out := []entities.Purchase{}
	err := s.store.View(ctx, func(snap *entities.Snapshot) error {
		for _, p := range snap.Purchases {
			if p.UserID == userID {
				out = append(out, p)
			}
		}
		return nil
	})
	if err != nil {
		return nil, apperr.E(apperr.KindPersistence, "purchase.list", err)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
