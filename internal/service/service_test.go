package service_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/reservio/reservation-service/internal/errs"
	"github.com/reservio/reservation-service/internal/model"
	"github.com/reservio/reservation-service/internal/repository"
	"github.com/reservio/reservation-service/internal/service"
	"github.com/reservio/reservation-service/migrations"
)

type recordingPublisher struct {
	events []service.ReservationEvent
}

func (p *recordingPublisher) Publish(_ context.Context, event service.ReservationEvent) error {
	p.events = append(p.events, event)
	return nil
}

func newTestService(t *testing.T) (*service.Service, *recordingPublisher) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", t.Name())
	db, err := sqlx.Open("sqlite3", dsn)
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	_, err = db.Exec(migrations.SQLiteSchema)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo, err := repository.NewRepository(db, zap.NewExample().Named("test"))
	require.NoError(t, err)
	events := &recordingPublisher{}
	return service.NewService(repo, events, zap.NewExample().Named("test")), events
}

func dt(t *testing.T, value string) model.DateTime {
	t.Helper()
	parsed, err := time.Parse("2006-01-02T15:04", value)
	require.NoError(t, err)
	return model.DateTime{Time: parsed}
}

func seed(t *testing.T, svc *service.Service, seats, minGuests int) (model.Restaurant, model.Table) {
	t.Helper()
	ctx := context.Background()
	owner, err := svc.CreateOwner(ctx, model.CreateOwnerRequest{
		FirstName: "Max", LastName: "Mustermann", Email: "max@mustermann.de",
	})
	require.NoError(t, err)
	rest, err := svc.CreateRestaurant(ctx, model.CreateRestaurantRequest{
		Name: "Zur Post", OwnerID: owner.ID,
	})
	require.NoError(t, err)
	table, err := svc.CreateTable(ctx, model.CreateTableRequest{
		Name: "T1", Seats: seats, MinGuests: minGuests, RestaurantID: rest.ID,
	})
	require.NoError(t, err)
	return rest, table
}

func validRequest(t *testing.T, guests int) model.CreateReservationRequest {
	t.Helper()
	return model.CreateReservationRequest{
		CustomerName:  "A",
		CustomerEmail: "a@b.com",
		ReservedFrom:  dt(t, "2023-06-01T18:00"),
		ReservedUntil: dt(t, "2023-06-01T19:00"),
		GuestAmount:   guests,
	}
}

func TestService_CreateReservation(t *testing.T) {
	svc, events := newTestService(t)
	ctx := context.Background()
	rest, table := seed(t, svc, 4, 2)

	rsv, err := svc.CreateReservation(ctx, rest.ID, table.ID, validRequest(t, 3))
	require.NoError(t, err)
	require.Greater(t, rsv.ID, 0)
	require.Equal(t, table.ID, rsv.TableID)

	got, err := svc.GetReservation(ctx, rsv.ID)
	require.NoError(t, err)
	require.Equal(t, rsv.CustomerName, got.CustomerName)
	require.True(t, rsv.ReservedFrom.Equal(got.ReservedFrom.Time))

	require.Len(t, events.events, 1)
	require.Equal(t, service.EventReservationCreated, events.events[0].Type)
	require.Equal(t, rsv.ID, events.events[0].Reservation.ID)
	require.NotEmpty(t, events.events[0].ID)
}

func TestService_CreateReservation_validation(t *testing.T) {
	svc, events := newTestService(t)
	ctx := context.Background()
	rest, table := seed(t, svc, 4, 2)

	tests := []struct {
		name         string
		restaurantID int
		tableID      int
		mutate       func(*model.CreateReservationRequest)
		wantErr      error
	}{
		{
			name:         "too many guests",
			restaurantID: rest.ID,
			tableID:      table.ID,
			mutate:       func(r *model.CreateReservationRequest) { r.GuestAmount = 5 },
			wantErr:      errs.ErrTooManyGuests,
		},
		{
			name:         "too few guests",
			restaurantID: rest.ID,
			tableID:      table.ID,
			mutate:       func(r *model.CreateReservationRequest) { r.GuestAmount = 1 },
			wantErr:      errs.ErrTooFewGuests,
		},
		{
			name:         "inverted time window",
			restaurantID: rest.ID,
			tableID:      table.ID,
			mutate: func(r *model.CreateReservationRequest) {
				r.ReservedFrom, r.ReservedUntil = r.ReservedUntil, r.ReservedFrom
			},
			wantErr: errs.ErrInvalidTimeWindow,
		},
		{
			name:         "empty time window",
			restaurantID: rest.ID,
			tableID:      table.ID,
			mutate: func(r *model.CreateReservationRequest) {
				r.ReservedUntil = r.ReservedFrom
			},
			wantErr: errs.ErrInvalidTimeWindow,
		},
		{
			name:         "unknown table",
			restaurantID: rest.ID,
			tableID:      999,
			mutate:       func(*model.CreateReservationRequest) {},
			wantErr:      errs.ErrNotFound,
		},
		{
			name:         "table of another restaurant",
			restaurantID: rest.ID + 1,
			tableID:      table.ID,
			mutate:       func(*model.CreateReservationRequest) {},
			wantErr:      errs.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest(t, 3)
			tt.mutate(&req)
			_, err := svc.CreateReservation(ctx, tt.restaurantID, tt.tableID, req)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}

	// nothing was persisted, no events went out
	reservations, err := svc.ListReservations(ctx, model.ReservationQuery{TableID: table.ID})
	require.NoError(t, err)
	require.Empty(t, reservations)
	require.Empty(t, events.events)
}

func TestService_CreateReservation_unnestedRouteSkipsRestaurantCheck(t *testing.T) {
	svc, _ := newTestService(t)
	_, table := seed(t, svc, 4, 1)

	// restaurantID 0 means the bare /tables route
	_, err := svc.CreateReservation(context.Background(), 0, table.ID, validRequest(t, 2))
	require.NoError(t, err)
}

func TestService_ValidateReservation(t *testing.T) {
	svc, events := newTestService(t)
	ctx := context.Background()
	_, table := seed(t, svc, 4, 1)

	got, err := svc.ValidateReservation(ctx, table.ID, validRequest(t, 2))
	require.NoError(t, err)
	require.Equal(t, table, got)

	// dry run persists nothing
	reservations, err := svc.ListReservations(ctx, model.ReservationQuery{TableID: table.ID})
	require.NoError(t, err)
	require.Empty(t, reservations)
	require.Empty(t, events.events)

	_, err = svc.CreateReservation(ctx, 0, table.ID, validRequest(t, 2))
	require.NoError(t, err)

	_, err = svc.ValidateReservation(ctx, table.ID, validRequest(t, 2))
	require.ErrorIs(t, err, errs.ErrOverlap)
}

func TestService_DeleteReservation_publishesEvent(t *testing.T) {
	svc, events := newTestService(t)
	ctx := context.Background()
	_, table := seed(t, svc, 4, 1)

	rsv, err := svc.CreateReservation(ctx, 0, table.ID, validRequest(t, 2))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteReservation(ctx, rsv.ID))
	require.ErrorIs(t, svc.DeleteReservation(ctx, rsv.ID), errs.ErrNotFound)

	require.Len(t, events.events, 2)
	require.Equal(t, service.EventReservationDeleted, events.events[1].Type)
	require.Equal(t, rsv.ID, events.events[1].Reservation.ID)
}

func TestService_CreateRestaurant_unknownOwner(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.CreateRestaurant(context.Background(), model.CreateRestaurantRequest{
		Name: "Niemandsland", OwnerID: 999,
	})
	require.ErrorIs(t, err, errs.ErrNotFound)
}
