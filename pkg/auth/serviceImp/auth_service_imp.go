package serviceImp

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"agrow/entities"
	"agrow/pkg/auth/service"
	apperr "agrow/pkg/errors"
	store "agrow/pkg/store/service"
)

type authSvc struct {
	store store.Service
	newID func() string
}

func New(st store.Service) service.AuthService {
	return &authSvc{store: st, newID: uuid.NewString}
}

func (s *authSvc) Login(ctx context.Context, req service.LoginRequest) (*entities.User, error) {
	phone := strings.TrimSpace(req.Phone)
	if phone == "" {
		return nil, apperr.Newf(apperr.KindInvalid, "auth.login", "phone required")
	}

	user, err := s.byPhone(ctx, phone)
	if err != nil {
		return nil, err
	}
	if user != nil {
		return user, nil
	}

	var out entities.User
	created := false
	err = s.store.Update(ctx, func(snap *entities.Snapshot) error {
		// another login may have registered the phone since the read above
		for _, u := range snap.Users {
			if u.Phone == phone {
				out = u
				return errExists
			}
		}
		out = entities.User{
			ID:           s.newID(),
			Name:         strings.TrimSpace(req.Name),
			Phone:        phone,
			PasswordHash: "mock_hash",
			Role:         entities.RoleFarmer,
			FarmDetails:  req.FarmDetails,
		}
		if out.Name == "" {
			out.Name = "Explorer"
		}
		if out.FarmDetails == nil {
			out.FarmDetails = &entities.FarmDetails{Location: "Unknown", Crop: "General", Area: "Smallholder"}
		}
		snap.Users = append(snap.Users, out)
		created = true
		return nil
	})
	if err != nil && !apperr.Is(err, errExists) {
		return nil, apperr.E(apperr.KindPersistence, "auth.login", err)
	}
	if created {
		slog.Info("user registered", "component", "auth", "user_id", out.ID)
	}
	return &out, nil
}

// errExists aborts the write when the phone is already registered.
var errExists = apperr.New("user exists")

func (s *authSvc) byPhone(ctx context.Context, phone string) (*entities.User, error) {
	var found *entities.User
	err := s.store.View(ctx, func(snap *entities.Snapshot) error {
		for i := range snap.Users {
			if snap.Users[i].Phone == phone {
				u := snap.Users[i]
				found = &u
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, apperr.E(apperr.KindPersistence, "auth.login", err)
	}
	return found, nil
}

func (s *authSvc) User(ctx context.Context, id string) (*entities.User, error) {
	var found *entities.User
	err := s.store.View(ctx, func(snap *entities.Snapshot) error {
		for i := range snap.Users {
			if snap.Users[i].ID == id {
				u := snap.Users[i]
				found = &u
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, apperr.E(apperr.KindPersistence, "auth.user", err)
	}
	if found == nil {
		return nil, apperr.Newf(apperr.KindNotFound, "auth.user", "user %s not found", id)
	}
	return found, nil
}
