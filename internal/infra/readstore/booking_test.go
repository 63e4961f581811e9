//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"

	"rental-engine/internal/infra"
	"rental-engine/internal/infra/readstore"
	sqlc "rental-engine/internal/infra/sqlc/generated"
	"rental-engine/internal/pkg/errs"
	"rental-engine/internal/pkg/pgconv"
	"rental-engine/internal/usecase/queries"
	"rental-engine/tests/common/builder"
	readstoremock "rental-engine/tests/mock/readstore"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errDBConnectionLost = errors.New("database connection error")

func viewRow(v *queries.BookingView) sqlc.ListBookingViewsRow {
	return sqlc.ListBookingViewsRow{
		ID:                   v.ID,
		RenterID:             v.RenterID,
		ItemID:               v.ItemID,
		ItemName:             v.ItemName,
		LocationID:           v.LocationID,
		LocationName:         v.LocationName,
		PickupAt:             pgconv.TimeToPgtype(v.PickupAt),
		ReturnAt:             pgconv.TimeToPgtype(v.ReturnAt),
		Status:               v.Status,
		RateCents:            v.RateCents,
		TotalCents:           v.TotalCents,
		CancellationDeadline: pgconv.TimeToPgtype(v.CancellationDeadline),
		CreatedAt:            pgconv.TimeToPgtype(v.CreatedAt),
		UpdatedAt:            pgconv.TimeToPgtype(v.UpdatedAt),
	}
}

func TestBookingReadStore_FindByID(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		returnErr  error
		expectIs   error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success"},
		{name: "error: not found", returnErr: pgx.ErrNoRows, expectIs: errs.ErrNotFound},
		{name: "error: database failure", returnErr: errDBConnectionLost, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
			mockDB := &mockDBTX{}
			store := readstore.NewBookingReadStore(mockQueries, mockDB)

			expected := builder.NewBookingBuilder().BuildView()
			row := sqlc.GetBookingViewRow(viewRow(expected))
			if tc.returnErr != nil {
				row = sqlc.GetBookingViewRow{}
			}
			mockQueries.EXPECT().GetBookingView(ctx, mockDB, expected.ID).Return(row, tc.returnErr)

			actual, err := store.FindByID(ctx, expected.ID)
			switch {
			case tc.expectIs != nil:
				assert.ErrorIs(t, err, tc.expectIs)
				assert.Nil(t, actual)
			case tc.expectKind != "":
				assert.True(t, infra.IsKind(err, tc.expectKind), "got (%v)", err)
			default:
				require.NoError(t, err)
				if diff := cmp.Diff(expected, actual); diff != "" {
					t.Errorf("booking view mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}

func TestBookingReadStore_List(t *testing.T) {
	ctx := context.Background()
	renter := uuid.New()
	status := "pending"

	testCases := []struct {
		name           string
		filter         queries.BookingFilter
		expectedParams sqlc.ListBookingViewsParams
	}{
		{
			name:   "unscoped listing leaves filters NULL",
			filter: queries.BookingFilter{Limit: 50, Offset: 100},
			expectedParams: sqlc.ListBookingViewsParams{
				RowLimit:  50,
				RowOffset: 100,
			},
		},
		{
			name:   "renter and status scope the listing",
			filter: queries.BookingFilter{RenterID: &renter, Status: &status, Limit: 10},
			expectedParams: sqlc.ListBookingViewsParams{
				RenterID: pgtype.UUID{Bytes: renter, Valid: true},
				Status:   pgtype.Text{String: "pending", Valid: true},
				RowLimit: 10,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
			mockDB := &mockDBTX{}
			store := readstore.NewBookingReadStore(mockQueries, mockDB)

			first := builder.NewBookingBuilder().BuildView()
			second := builder.NewBookingBuilder().BuildView()
			mockQueries.EXPECT().ListBookingViews(ctx, mockDB, tc.expectedParams).
				Return([]sqlc.ListBookingViewsRow{viewRow(first), viewRow(second)}, nil)

			actual, err := store.List(ctx, tc.filter)
			require.NoError(t, err)
			if diff := cmp.Diff([]*queries.BookingView{first, second}, actual); diff != "" {
				t.Errorf("listing mismatch (-want +got):\n%s", diff)
			}
		})
	}

	t.Run("error: database failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
		mockDB := &mockDBTX{}
		store := readstore.NewBookingReadStore(mockQueries, mockDB)

		mockQueries.EXPECT().ListBookingViews(ctx, mockDB, gomock.Any()).Return(nil, errDBConnectionLost)

		_, err := store.List(ctx, queries.BookingFilter{Limit: 1})
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
