package repository_test

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
	"github.com/reservio/reservation-service/migrations"
)

func newTestRepo(t *testing.T) repository.Repository {
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
	return repo
}

func strPtr(s string) *string { return &s }

func dt(t *testing.T, value string) model.DateTime {
	t.Helper()
	parsed, err := time.Parse("2006-01-02T15:04", value)
	require.NoError(t, err)
	return model.DateTime{Time: parsed}
}

func seedTable(t *testing.T, repo repository.Repository, seats, minGuests int) (model.Restaurant, model.Table) {
	t.Helper()
	ctx := context.Background()
	owner, err := repo.CreateOwner(ctx, model.CreateOwnerRequest{
		FirstName: "Max", LastName: "Mustermann", Email: "max@mustermann.de",
	})
	require.NoError(t, err)
	rest, err := repo.CreateRestaurant(ctx, model.CreateRestaurantRequest{
		Name: "Zur Post", OwnerID: owner.ID,
	})
	require.NoError(t, err)
	table, err := repo.CreateTable(ctx, model.CreateTableRequest{
		Name: "T1", Seats: seats, MinGuests: minGuests, RestaurantID: rest.ID,
	})
	require.NoError(t, err)
	return rest, table
}

func TestRepository_OwnerCRUD(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.CreateOwner(ctx, model.CreateOwnerRequest{
		FirstName: "Max",
		LastName:  "Mustermann",
		Email:     "max@mustermann.de",
		Phone:     strPtr("+49-176-111-12345"),
	})
	require.NoError(t, err)
	require.Greater(t, created.ID, 0)

	got, err := repo.GetOwner(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created, got)

	// partial update: only the email changes
	updated, err := repo.UpdateOwner(ctx, created.ID, model.UpdateOwnerRequest{
		Email: strPtr("neu@mustermann.de"),
	})
	require.NoError(t, err)
	require.Equal(t, "neu@mustermann.de", updated.Email)
	require.Equal(t, created.FirstName, updated.FirstName)
	require.Equal(t, created.LastName, updated.LastName)
	require.Equal(t, created.Phone, updated.Phone)

	// empty update is a no-op
	same, err := repo.UpdateOwner(ctx, created.ID, model.UpdateOwnerRequest{})
	require.NoError(t, err)
	require.Equal(t, updated, same)

	owners, err := repo.ListOwners(ctx, model.OwnerQuery{Email: "neu@mustermann.de"})
	require.NoError(t, err)
	require.Len(t, owners, 1)

	owners, err = repo.ListOwners(ctx, model.OwnerQuery{Email: "nobody@mustermann.de"})
	require.NoError(t, err)
	require.Empty(t, owners)

	require.NoError(t, repo.DeleteOwner(ctx, created.ID))
	require.ErrorIs(t, repo.DeleteOwner(ctx, created.ID), errs.ErrNotFound)

	_, err = repo.GetOwner(ctx, created.ID)
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestRepository_RestaurantCascade(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	owner, err := repo.CreateOwner(ctx, model.CreateOwnerRequest{
		FirstName: "Max", LastName: "Mustermann", Email: "max@mustermann.de",
	})
	require.NoError(t, err)

	rest, err := repo.CreateRestaurant(ctx, model.CreateRestaurantRequest{
		Name:    "Zur Post",
		OwnerID: owner.ID,
		Address: &model.CreateAddressPayload{
			StreetName:  "Hauptstrasse",
			HouseNumber: "12a",
			PostalCode:  "70173",
			City:        "Stuttgart",
			CountryCode: "DE",
		},
	})
	require.NoError(t, err)

	addresses, err := repo.ListAddresses(ctx, model.AddressQuery{City: "Stuttgart"})
	require.NoError(t, err)
	require.Len(t, addresses, 1)
	require.Equal(t, rest.ID, addresses[0].RestaurantID)

	table, err := repo.CreateTable(ctx, model.CreateTableRequest{
		Name: "T1", Seats: 4, MinGuests: 1, RestaurantID: rest.ID,
	})
	require.NoError(t, err)

	rsv, err := repo.CreateReservation(ctx, table.ID, model.CreateReservationRequest{
		CustomerName:  "A",
		CustomerEmail: "a@b.com",
		ReservedFrom:  dt(t, "2023-06-01T18:00"),
		ReservedUntil: dt(t, "2023-06-01T19:00"),
		GuestAmount:   2,
	})
	require.NoError(t, err)

	// an owner with restaurants cannot be deleted
	err = repo.DeleteOwner(ctx, owner.ID)
	require.ErrorIs(t, err, errs.ErrConflict)

	// deleting the restaurant takes address, table and reservation with it
	require.NoError(t, repo.DeleteRestaurant(ctx, rest.ID))

	_, err = repo.GetAddress(ctx, addresses[0].ID)
	require.ErrorIs(t, err, errs.ErrNotFound)
	_, err = repo.GetTable(ctx, table.ID)
	require.ErrorIs(t, err, errs.ErrNotFound)
	_, err = repo.GetReservation(ctx, rsv.ID)
	require.ErrorIs(t, err, errs.ErrNotFound)

	require.NoError(t, repo.DeleteOwner(ctx, owner.ID))
}

func TestRepository_CreateRestaurant_missingOwner(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.CreateRestaurant(context.Background(), model.CreateRestaurantRequest{
		Name: "Niemandsland", OwnerID: 999,
	})
	require.ErrorIs(t, err, errs.ErrConflict)
}

func TestRepository_DuplicateAddressConflict(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	rest, _ := seedTable(t, repo, 4, 1)

	addr := model.CreateAddressRequest{
		StreetName:   "Hauptstrasse",
		HouseNumber:  "12a",
		PostalCode:   "70173",
		City:         "Stuttgart",
		CountryCode:  "DE",
		RestaurantID: rest.ID,
	}
	_, err := repo.CreateAddress(ctx, addr)
	require.NoError(t, err)

	_, err = repo.CreateAddress(ctx, addr)
	require.ErrorIs(t, err, errs.ErrConflict)
}

func TestRepository_CreateReservation_overlap(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	_, table := seedTable(t, repo, 4, 1)

	first := model.CreateReservationRequest{
		CustomerName:  "A",
		CustomerEmail: "a@b.com",
		ReservedFrom:  dt(t, "2023-06-01T18:00"),
		ReservedUntil: dt(t, "2023-06-01T20:00"),
		GuestAmount:   2,
	}
	created, err := repo.CreateReservation(ctx, table.ID, first)
	require.NoError(t, err)
	require.Greater(t, created.ID, 0)

	overlapping := first
	overlapping.ReservedFrom = dt(t, "2023-06-01T19:00")
	overlapping.ReservedUntil = dt(t, "2023-06-01T21:00")
	_, err = repo.CreateReservation(ctx, table.ID, overlapping)
	require.ErrorIs(t, err, errs.ErrOverlap)

	// nothing was persisted for the failed attempt
	reservations, err := repo.ListReservations(ctx, model.ReservationQuery{TableID: table.ID})
	require.NoError(t, err)
	require.Len(t, reservations, 1)

	// back to back is not an overlap
	adjacent := first
	adjacent.ReservedFrom = dt(t, "2023-06-01T20:00")
	adjacent.ReservedUntil = dt(t, "2023-06-01T22:00")
	_, err = repo.CreateReservation(ctx, table.ID, adjacent)
	require.NoError(t, err)
}

func TestRepository_ListReservations_filters(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	_, table := seedTable(t, repo, 8, 1)

	for i, window := range [][2]string{
		{"2023-06-01T17:00", "2023-06-01T18:00"},
		{"2023-06-01T18:00", "2023-06-01T19:00"},
		{"2023-06-01T19:00", "2023-06-01T20:00"},
	} {
		_, err := repo.CreateReservation(ctx, table.ID, model.CreateReservationRequest{
			CustomerName:  fmt.Sprintf("Guest %d", i),
			CustomerEmail: fmt.Sprintf("guest%d@mail.de", i),
			ReservedFrom:  dt(t, window[0]),
			ReservedUntil: dt(t, window[1]),
			GuestAmount:   i + 2,
		})
		require.NoError(t, err)
	}

	from := dt(t, "2023-06-01T18:00")
	reservations, err := repo.ListReservations(ctx, model.ReservationQuery{
		TableID:      table.ID,
		StartingFrom: &from,
	})
	require.NoError(t, err)
	require.Len(t, reservations, 2)

	reservations, err = repo.ListReservations(ctx, model.ReservationQuery{
		TableID:        table.ID,
		MinGuestAmount: 3,
		MaxGuestAmount: 3,
	})
	require.NoError(t, err)
	require.Len(t, reservations, 1)
	require.Equal(t, "Guest 1", reservations[0].CustomerName)
}

func TestRepository_UpdateReservation_partial(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	_, table := seedTable(t, repo, 6, 1)

	created, err := repo.CreateReservation(ctx, table.ID, model.CreateReservationRequest{
		CustomerName:  "A",
		CustomerEmail: "a@b.com",
		ReservedFrom:  dt(t, "2023-06-01T18:00"),
		ReservedUntil: dt(t, "2023-06-01T19:00"),
		GuestAmount:   2,
	})
	require.NoError(t, err)

	guests := 4
	updated, err := repo.UpdateReservation(ctx, created.ID, model.UpdateReservationRequest{
		GuestAmount: &guests,
	})
	require.NoError(t, err)
	require.Equal(t, 4, updated.GuestAmount)
	require.Equal(t, created.CustomerName, updated.CustomerName)
	require.Equal(t, created.CustomerEmail, updated.CustomerEmail)
	require.True(t, created.ReservedFrom.Equal(updated.ReservedFrom.Time))
	require.True(t, created.ReservedUntil.Equal(updated.ReservedUntil.Time))
}

func TestRepository_DeleteAll(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	_, table := seedTable(t, repo, 4, 1)

	for i := 0; i < 3; i++ {
		_, err := repo.CreateReservation(ctx, table.ID, model.CreateReservationRequest{
			CustomerName:  "A",
			CustomerEmail: "a@b.com",
			ReservedFrom:  dt(t, fmt.Sprintf("2023-06-0%dT18:00", i+1)),
			ReservedUntil: dt(t, fmt.Sprintf("2023-06-0%dT19:00", i+1)),
			GuestAmount:   2,
		})
		require.NoError(t, err)
	}

	deleted, err := repo.DeleteReservations(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, deleted)

	reservations, err := repo.ListReservations(ctx, model.ReservationQuery{})
	require.NoError(t, err)
	require.Empty(t, reservations)
}
