package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/montirku/montirku/internal/pkg/errs"
	"github.com/montirku/montirku/internal/pkg/models"
	"github.com/montirku/montirku/services/directory/mocks"
)

func testConfig() *models.Config {
	return &models.Config{
		Directory: models.DirectoryConfig{
			DefaultRadiusKm:  10.0,
			MaxRadiusKm:      100.0,
			GeohashPrecision: 5,
		},
	}
}

func mechanicAt(id string, lat, lng float64) *models.MechanicProfile {
	return &models.MechanicProfile{
		ID:        id,
		Name:      "Mechanic " + id,
		Location:  models.Location{Latitude: lat, Longitude: lng},
		Services:  []string{"towing", "tire"},
		Available: true,
	}
}

func TestFindNearby_ValidationErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockDirectoryRepo(ctrl)
	uc := NewDirectoryUC(testConfig(), repo)

	origin := models.Location{Latitude: 28.6139, Longitude: 77.2090}

	tests := []struct {
		name   string
		origin models.Location
		radius float64
		filter models.NearbyFilter
	}{
		{"latitude out of range", models.Location{Latitude: 91, Longitude: 0}, 10, models.NearbyFilter{}},
		{"longitude out of range", models.Location{Latitude: 0, Longitude: 181}, 10, models.NearbyFilter{}},
		{"negative radius", origin, -1, models.NearbyFilter{}},
		{"min rating above scale", origin, 10, models.NearbyFilter{MinRating: 5.5}},
		{"negative min rating", origin, 10, models.NearbyFilter{MinRating: -1}},
		{"unknown service type", origin, 10, models.NearbyFilter{Services: []string{"welding"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.FindNearby(context.Background(), tt.origin, tt.radius, tt.filter)
			require.Error(t, err)
			assert.True(t, errs.IsValidation(err))
		})
	}
}

func TestFindNearby_RadiusCutAndSort(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockDirectoryRepo(ctrl)
	uc := NewDirectoryUC(testConfig(), repo)

	origin := models.Location{Latitude: 28.6139, Longitude: 77.2090}

	near := mechanicAt("m-near", 28.6200, 77.2100)
	far := mechanicAt("m-far", 28.7041, 77.1025) // about 12.5 km away
	tieA := mechanicAt("m-tie-a", 28.6300, 77.2200)
	tieB := mechanicAt("m-tie-b", 28.6300, 77.2200)

	// radius 20 exceeds the geohash cell cover, so a full scan runs
	repo.EXPECT().
		ListMechanics(gomock.Any()).
		Return([]*models.MechanicProfile{far, tieB, near, tieA}, nil)

	result, err := uc.FindNearby(context.Background(), origin, 20, models.NearbyFilter{})
	require.NoError(t, err)
	require.Len(t, result, 4)

	assert.Equal(t, "m-near", result[0].ID)
	assert.Equal(t, "m-tie-a", result[1].ID)
	assert.Equal(t, "m-tie-b", result[2].ID)
	assert.Equal(t, "m-far", result[3].ID)
	assert.InDelta(t, 12.5, result[3].DistanceKm, 0.5)

	for i := 1; i < len(result); i++ {
		assert.GreaterOrEqual(t, result[i].DistanceKm, result[i-1].DistanceKm)
	}
}

func TestFindNearby_RadiusExcludesFarMechanic(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockDirectoryRepo(ctrl)
	uc := NewDirectoryUC(testConfig(), repo)

	origin := models.Location{Latitude: 28.6139, Longitude: 77.2090}
	near := mechanicAt("m-near", 28.6200, 77.2100)
	far := mechanicAt("m-far", 28.7041, 77.1025)

	repo.EXPECT().
		ListMechanics(gomock.Any()).
		Return([]*models.MechanicProfile{near, far}, nil)

	result, err := uc.FindNearby(context.Background(), origin, 5, models.NearbyFilter{})
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "m-near", result[0].ID)
}

func TestFindNearby_SecondaryFilters(t *testing.T) {
	origin := models.Location{Latitude: 28.6139, Longitude: 77.2090}

	rated := mechanicAt("m-rated", 28.6200, 77.2100)
	rated.RatingSum = 45
	rated.RatingCount = 10 // average 4.5

	unrated := mechanicAt("m-unrated", 28.6200, 77.2100)

	lowRated := mechanicAt("m-low", 28.6200, 77.2100)
	lowRated.RatingSum = 20
	lowRated.RatingCount = 10 // average 2.0

	batteryOnly := mechanicAt("m-battery", 28.6200, 77.2100)
	batteryOnly.Services = []string{"battery"}
	batteryOnly.RatingSum = 50
	batteryOnly.RatingCount = 10

	offline := mechanicAt("m-offline", 28.6200, 77.2100)
	offline.Available = false
	offline.RatingSum = 50
	offline.RatingCount = 10

	all := []*models.MechanicProfile{rated, unrated, lowRated, batteryOnly, offline}

	tests := []struct {
		name     string
		filter   models.NearbyFilter
		expected []string
	}{
		{
			name:     "no filters returns all",
			filter:   models.NearbyFilter{},
			expected: []string{"m-battery", "m-low", "m-offline", "m-rated", "m-unrated"},
		},
		{
			name:     "min rating drops unrated and low rated",
			filter:   models.NearbyFilter{MinRating: 4.0},
			expected: []string{"m-battery", "m-offline", "m-rated"},
		},
		{
			name:     "service intersection",
			filter:   models.NearbyFilter{Services: []string{"towing"}},
			expected: []string{"m-low", "m-offline", "m-rated", "m-unrated"},
		},
		{
			name:     "available only",
			filter:   models.NearbyFilter{AvailableOnly: true},
			expected: []string{"m-battery", "m-low", "m-rated", "m-unrated"},
		},
		{
			name:     "all filters combined",
			filter:   models.NearbyFilter{MinRating: 4.0, Services: []string{"towing"}, AvailableOnly: true},
			expected: []string{"m-rated"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockDirectoryRepo(ctrl)
			uc := NewDirectoryUC(testConfig(), repo)

			repo.EXPECT().ListMechanics(gomock.Any()).Return(all, nil)

			result, err := uc.FindNearby(context.Background(), origin, 20, tt.filter)
			require.NoError(t, err)

			ids := make([]string, 0, len(result))
			for _, m := range result {
				ids = append(ids, m.ID)
			}
			assert.Equal(t, tt.expected, ids)
		})
	}
}

func TestFindNearby_UsesGeohashPrefilterForSmallRadius(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockDirectoryRepo(ctrl)
	uc := NewDirectoryUC(testConfig(), repo)

	origin := models.Location{Latitude: 28.6139, Longitude: 77.2090}

	repo.EXPECT().
		ListMechanicsInCells(gomock.Any(), gomock.Len(9)).
		Return([]*models.MechanicProfile{mechanicAt("m-1", 28.6200, 77.2100)}, nil)

	result, err := uc.FindNearby(context.Background(), origin, 3, models.NearbyFilter{})
	require.NoError(t, err)
	assert.Len(t, result, 1)
}

func TestFindNearby_DefaultRadius(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockDirectoryRepo(ctrl)
	uc := NewDirectoryUC(testConfig(), repo)

	origin := models.Location{Latitude: 28.6139, Longitude: 77.2090}

	// Default radius is 10 km, above the cell cover, so a full scan runs
	repo.EXPECT().
		ListMechanics(gomock.Any()).
		Return([]*models.MechanicProfile{
			mechanicAt("m-near", 28.6200, 77.2100),
			mechanicAt("m-far", 28.7041, 77.1025),
		}, nil)

	result, err := uc.FindNearby(context.Background(), origin, 0, models.NearbyFilter{})
	require.NoError(t, err)

	// m-far sits about 12.5 km out, beyond the 10 km default
	require.Len(t, result, 1)
	assert.Equal(t, "m-near", result[0].ID)
}

func TestSetAvailability(t *testing.T) {
	ctx := context.Background()
	location := models.Location{Latitude: 28.6200, Longitude: 77.2100}

	t.Run("going online adds to geo index", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockDirectoryRepo(ctrl)
		uc := NewDirectoryUC(testConfig(), repo)

		repo.EXPECT().UpdateAvailability(ctx, "m-1", true).Return(nil)
		repo.EXPECT().GetMechanic(ctx, "m-1").Return(&models.MechanicProfile{ID: "m-1", Location: location}, nil)
		repo.EXPECT().AddAvailableMechanic(ctx, "m-1", location).Return(nil)

		require.NoError(t, uc.SetAvailability(ctx, "m-1", true))
	})

	t.Run("going offline removes from geo index", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockDirectoryRepo(ctrl)
		uc := NewDirectoryUC(testConfig(), repo)

		repo.EXPECT().UpdateAvailability(ctx, "m-1", false).Return(nil)
		repo.EXPECT().RemoveAvailableMechanic(ctx, "m-1").Return(nil)

		require.NoError(t, uc.SetAvailability(ctx, "m-1", false))
	})

	t.Run("going online without a known position skips the index", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockDirectoryRepo(ctrl)
		uc := NewDirectoryUC(testConfig(), repo)

		repo.EXPECT().UpdateAvailability(ctx, "m-1", true).Return(nil)
		repo.EXPECT().GetMechanic(ctx, "m-1").Return(&models.MechanicProfile{ID: "m-1"}, nil)

		require.NoError(t, uc.SetAvailability(ctx, "m-1", true))
	})

	t.Run("empty mechanic ID", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockDirectoryRepo(ctrl)
		uc := NewDirectoryUC(testConfig(), repo)

		err := uc.SetAvailability(ctx, "", true)
		assert.True(t, errs.IsValidation(err))
	})
}

func TestUpdateLocation(t *testing.T) {
	ctx := context.Background()
	location := models.Location{Latitude: 28.6200, Longitude: 77.2100}

	t.Run("available mechanic refreshes geo index", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockDirectoryRepo(ctrl)
		uc := NewDirectoryUC(testConfig(), repo)

		repo.EXPECT().UpdateLocation(ctx, "m-1", location, gomock.Not(gomock.Eq(""))).Return(nil)
		repo.EXPECT().GetMechanic(ctx, "m-1").Return(&models.MechanicProfile{ID: "m-1", Available: true}, nil)
		repo.EXPECT().AddAvailableMechanic(ctx, "m-1", location).Return(nil)

		require.NoError(t, uc.UpdateLocation(ctx, "m-1", location))
	})

	t.Run("offline mechanic skips geo index", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockDirectoryRepo(ctrl)
		uc := NewDirectoryUC(testConfig(), repo)

		repo.EXPECT().UpdateLocation(ctx, "m-1", location, gomock.Any()).Return(nil)
		repo.EXPECT().GetMechanic(ctx, "m-1").Return(&models.MechanicProfile{ID: "m-1", Available: false}, nil)

		require.NoError(t, uc.UpdateLocation(ctx, "m-1", location))
	})

	t.Run("invalid coordinates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockDirectoryRepo(ctrl)
		uc := NewDirectoryUC(testConfig(), repo)

		err := uc.UpdateLocation(ctx, "m-1", models.Location{Latitude: 95, Longitude: 0})
		assert.True(t, errs.IsValidation(err))
	})
}

func TestFindNearbyAvailable(t *testing.T) {
	origin := models.Location{Latitude: 28.6139, Longitude: 77.2090}
	ctx := context.Background()

	t.Run("hydrates geo hits nearest first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockDirectoryRepo(ctrl)
		uc := NewDirectoryUC(testConfig(), repo)

		repo.EXPECT().SearchAvailableNear(ctx, origin, 5.0).Return([]models.GeoHit{
			{MechanicID: "m-near", DistanceKm: 1.2},
			{MechanicID: "m-far", DistanceKm: 4.8},
		}, nil)
		repo.EXPECT().GetMechanic(ctx, "m-near").Return(mechanicAt("m-near", 28.62, 77.21), nil)
		repo.EXPECT().GetMechanic(ctx, "m-far").Return(mechanicAt("m-far", 28.65, 77.25), nil)

		result, err := uc.FindNearbyAvailable(ctx, origin, 5.0)
		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, "m-near", result[0].ID)
		assert.InDelta(t, 1.2, result[0].DistanceKm, 0.001)
	})

	t.Run("drops stale index entries", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockDirectoryRepo(ctrl)
		uc := NewDirectoryUC(testConfig(), repo)

		offline := mechanicAt("m-offline", 28.62, 77.21)
		offline.Available = false

		repo.EXPECT().SearchAvailableNear(ctx, origin, 5.0).Return([]models.GeoHit{
			{MechanicID: "m-deleted", DistanceKm: 0.5},
			{MechanicID: "m-offline", DistanceKm: 1.0},
		}, nil)
		repo.EXPECT().GetMechanic(ctx, "m-deleted").Return(nil, errs.NotFound("mechanic not found"))
		repo.EXPECT().GetMechanic(ctx, "m-offline").Return(offline, nil)

		result, err := uc.FindNearbyAvailable(ctx, origin, 5.0)
		require.NoError(t, err)
		assert.Empty(t, result)
	})

	t.Run("caps radius at the configured maximum", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockDirectoryRepo(ctrl)
		uc := NewDirectoryUC(testConfig(), repo)

		repo.EXPECT().SearchAvailableNear(ctx, origin, 100.0).Return(nil, nil)

		result, err := uc.FindNearbyAvailable(ctx, origin, 5000)
		require.NoError(t, err)
		assert.Empty(t, result)
	})

	t.Run("invalid origin", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockDirectoryRepo(ctrl)
		uc := NewDirectoryUC(testConfig(), repo)

		_, err := uc.FindNearbyAvailable(ctx, models.Location{Latitude: -91, Longitude: 0}, 5)
		assert.True(t, errs.IsValidation(err))
	})
}
