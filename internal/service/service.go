package service

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/reservio/reservation-service/internal/errs"
	"github.com/reservio/reservation-service/internal/model"
	"github.com/reservio/reservation-service/internal/repository"
)

type Service struct {
	log    *zap.Logger
	repo   repository.Repository
	events Publisher
}

func NewService(repo repository.Repository, events Publisher, log *zap.Logger) *Service {
	return &Service{
		log:    log,
		repo:   repo,
		events: events,
	}
}

func (s *Service) CreateOwner(ctx context.Context, req model.CreateOwnerRequest) (model.Owner, error) {
	return s.repo.CreateOwner(ctx, req)
}

func (s *Service) GetOwner(ctx context.Context, id int) (model.Owner, error) {
	return s.repo.GetOwner(ctx, id)
}

func (s *Service) ListOwners(ctx context.Context, q model.OwnerQuery) ([]model.Owner, error) {
	return s.repo.ListOwners(ctx, q)
}

func (s *Service) UpdateOwner(ctx context.Context, id int, req model.UpdateOwnerRequest) (model.Owner, error) {
	return s.repo.UpdateOwner(ctx, id, req)
}

func (s *Service) DeleteOwner(ctx context.Context, id int) error {
	return s.repo.DeleteOwner(ctx, id)
}

func (s *Service) DeleteOwners(ctx context.Context) (int, error) {
	return s.repo.DeleteOwners(ctx)
}

func (s *Service) CreateRestaurant(ctx context.Context, req model.CreateRestaurantRequest) (model.Restaurant, error) {
	if _, err := s.repo.GetOwner(ctx, req.OwnerID); err != nil {
		return model.Restaurant{}, errors.Wrapf(err, "owner %d", req.OwnerID)
	}
	return s.repo.CreateRestaurant(ctx, req)
}

func (s *Service) GetRestaurant(ctx context.Context, id int) (model.Restaurant, error) {
	return s.repo.GetRestaurant(ctx, id)
}

func (s *Service) ListRestaurants(ctx context.Context, q model.RestaurantQuery) ([]model.Restaurant, error) {
	return s.repo.ListRestaurants(ctx, q)
}

func (s *Service) UpdateRestaurant(ctx context.Context, id int, req model.UpdateRestaurantRequest) (model.Restaurant, error) {
	return s.repo.UpdateRestaurant(ctx, id, req)
}

func (s *Service) DeleteRestaurant(ctx context.Context, id int) error {
	return s.repo.DeleteRestaurant(ctx, id)
}

func (s *Service) DeleteRestaurants(ctx context.Context) (int, error) {
	return s.repo.DeleteRestaurants(ctx)
}

func (s *Service) CreateAddress(ctx context.Context, req model.CreateAddressRequest) (model.Address, error) {
	if _, err := s.repo.GetRestaurant(ctx, req.RestaurantID); err != nil {
		return model.Address{}, errors.Wrapf(err, "restaurant %d", req.RestaurantID)
	}
	return s.repo.CreateAddress(ctx, req)
}

func (s *Service) GetAddress(ctx context.Context, id int) (model.Address, error) {
	return s.repo.GetAddress(ctx, id)
}

func (s *Service) ListAddresses(ctx context.Context, q model.AddressQuery) ([]model.Address, error) {
	return s.repo.ListAddresses(ctx, q)
}

func (s *Service) UpdateAddress(ctx context.Context, id int, req model.UpdateAddressRequest) (model.Address, error) {
	return s.repo.UpdateAddress(ctx, id, req)
}

func (s *Service) DeleteAddress(ctx context.Context, id int) error {
	return s.repo.DeleteAddress(ctx, id)
}

func (s *Service) DeleteAddresses(ctx context.Context) (int, error) {
	return s.repo.DeleteAddresses(ctx)
}

func (s *Service) CreateBusinessHour(ctx context.Context, req model.CreateBusinessHourRequest) (model.BusinessHour, error) {
	if _, err := s.repo.GetRestaurant(ctx, req.RestaurantID); err != nil {
		return model.BusinessHour{}, errors.Wrapf(err, "restaurant %d", req.RestaurantID)
	}
	return s.repo.CreateBusinessHour(ctx, req)
}

func (s *Service) GetBusinessHour(ctx context.Context, id int) (model.BusinessHour, error) {
	return s.repo.GetBusinessHour(ctx, id)
}

func (s *Service) ListBusinessHours(ctx context.Context, q model.BusinessHourQuery) ([]model.BusinessHour, error) {
	return s.repo.ListBusinessHours(ctx, q)
}

func (s *Service) UpdateBusinessHour(ctx context.Context, id int, req model.UpdateBusinessHourRequest) (model.BusinessHour, error) {
	return s.repo.UpdateBusinessHour(ctx, id, req)
}

func (s *Service) DeleteBusinessHour(ctx context.Context, id int) error {
	return s.repo.DeleteBusinessHour(ctx, id)
}

func (s *Service) DeleteBusinessHours(ctx context.Context) (int, error) {
	return s.repo.DeleteBusinessHours(ctx)
}

func (s *Service) CreateTable(ctx context.Context, req model.CreateTableRequest) (model.Table, error) {
	if _, err := s.repo.GetRestaurant(ctx, req.RestaurantID); err != nil {
		return model.Table{}, errors.Wrapf(err, "restaurant %d", req.RestaurantID)
	}
	return s.repo.CreateTable(ctx, req)
}

func (s *Service) GetTable(ctx context.Context, id int) (model.Table, error) {
	return s.repo.GetTable(ctx, id)
}

func (s *Service) ListTables(ctx context.Context, q model.TableQuery) ([]model.Table, error) {
	return s.repo.ListTables(ctx, q)
}

func (s *Service) UpdateTable(ctx context.Context, id int, req model.UpdateTableRequest) (model.Table, error) {
	return s.repo.UpdateTable(ctx, id, req)
}

func (s *Service) DeleteTable(ctx context.Context, id int) error {
	return s.repo.DeleteTable(ctx, id)
}

func (s *Service) DeleteTables(ctx context.Context) (int, error) {
	return s.repo.DeleteTables(ctx)
}

// CreateReservation validates the candidate reservation against the table and
// persists it. restaurantID is zero on the bare /tables route; when set, the
// table must belong to that restaurant or the table counts as not found.
func (s *Service) CreateReservation(ctx context.Context, restaurantID, tableID int, req model.CreateReservationRequest) (model.Reservation, error) {
	table, err := s.repo.GetTable(ctx, tableID)
	if err != nil {
		return model.Reservation{}, errors.Wrapf(err, "table %d", tableID)
	}
	if restaurantID != 0 && table.RestaurantID != restaurantID {
		return model.Reservation{}, errors.Wrapf(errs.ErrNotFound,
			"table %d does not belong to restaurant %d", tableID, restaurantID)
	}
	if err := validateFit(table, req); err != nil {
		return model.Reservation{}, err
	}

	rsv, err := s.repo.CreateReservation(ctx, tableID, req)
	if err != nil {
		return model.Reservation{}, err
	}
	s.publish(ctx, EventReservationCreated, rsv)
	return rsv, nil
}

// ValidateReservation is the dry-run counterpart of CreateReservation: it runs
// the same checks and returns the table when the reservation would fit.
func (s *Service) ValidateReservation(ctx context.Context, tableID int, req model.CreateReservationRequest) (model.Table, error) {
	var (
		table    model.Table
		existing []model.Reservation
	)
	gg, ctx := errgroup.WithContext(ctx)
	gg.Go(func() error {
		t, err := s.repo.GetTable(ctx, tableID)
		if err != nil {
			return errors.Wrapf(err, "table %d", tableID)
		}
		table = t
		return nil
	})
	gg.Go(func() error {
		list, err := s.repo.ListReservations(ctx, model.ReservationQuery{TableID: tableID})
		if err != nil {
			return err
		}
		existing = list
		return nil
	})
	if err := gg.Wait(); err != nil {
		return model.Table{}, err
	}

	if err := validateFit(table, req); err != nil {
		return model.Table{}, err
	}
	for _, rsv := range existing {
		if rsv.ReservedFrom.Before(req.ReservedUntil.Time) && rsv.ReservedUntil.After(req.ReservedFrom.Time) {
			return model.Table{}, errs.ErrOverlap
		}
	}
	return table, nil
}

func validateFit(table model.Table, req model.CreateReservationRequest) error {
	if req.GuestAmount > table.Seats {
		return errs.ErrTooManyGuests
	}
	if req.GuestAmount < table.MinGuests {
		return errs.ErrTooFewGuests
	}
	if !req.ReservedFrom.Before(req.ReservedUntil.Time) {
		return errs.ErrInvalidTimeWindow
	}
	return nil
}

func (s *Service) GetReservation(ctx context.Context, id int) (model.Reservation, error) {
	return s.repo.GetReservation(ctx, id)
}

func (s *Service) ListReservations(ctx context.Context, q model.ReservationQuery) ([]model.Reservation, error) {
	return s.repo.ListReservations(ctx, q)
}

func (s *Service) UpdateReservation(ctx context.Context, id int, req model.UpdateReservationRequest) (model.Reservation, error) {
	return s.repo.UpdateReservation(ctx, id, req)
}

func (s *Service) DeleteReservation(ctx context.Context, id int) error {
	rsv, err := s.repo.DeleteReservation(ctx, id)
	if err != nil {
		return err
	}
	s.publish(ctx, EventReservationDeleted, rsv)
	return nil
}

func (s *Service) DeleteReservations(ctx context.Context) (int, error) {
	return s.repo.DeleteReservations(ctx)
}
