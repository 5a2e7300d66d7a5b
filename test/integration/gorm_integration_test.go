package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"property-assistant-be/internal/entity"
	"property-assistant-be/internal/model"
	"property-assistant-be/internal/repository/specification"
	"property-assistant-be/internal/repository/unitofwork"
	"property-assistant-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	err = gormDB.AutoMigrate(
		&model.User{},
		&model.RentalSearch{},
		&model.RentalMatch{},
		&model.RepairRequest{},
	)
	require.NoError(t, err)

	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.RentalSearchRepository())
	assert.NotNil(t, uow.RentalMatchRepository())
	assert.NotNil(t, uow.RepairRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)

	ctx := context.Background()

	t.Run("Check User Repository", func(t *testing.T) {
		count, err := uow.UserRepository().Count(ctx)
		assert.NoError(t, err)
		t.Logf("User count: %d", count)
	})

	t.Run("Transactional Search With Matches", func(t *testing.T) {
		phone := "07700900" + uuid.New().String()[:6]
		user := &entity.User{
			Name:  "Integration Test User",
			Phone: &phone,
		}
		require.NoError(t, uow.UserRepository().Create(ctx, user))

		txUow := uowFactory.NewUnitOfWork(ctx)
		require.NoError(t, txUow.Begin(ctx))
		defer txUow.Rollback()

		location := "Brixton"
		bedrooms := 2
		search := &entity.RentalSearch{
			UserId:   user.Id,
			Location: &location,
			Bedrooms: &bedrooms,
		}
		require.NoError(t, txUow.RentalSearchRepository().Create(ctx, search))
		require.NotEqual(t, uuid.Nil, search.Id)

		matches := []*entity.RentalMatch{
			{PropertyId: 1, Title: "Test Flat", Location: "Brixton", PricePerMonth: 1500, Bedrooms: 2, Score: 50},
		}
		require.NoError(t, txUow.RentalMatchRepository().CreateBatch(ctx, search.Id, matches))

		found, err := txUow.RentalMatchRepository().FindAll(ctx, specification.BySearchId{SearchId: search.Id})
		require.NoError(t, err)
		assert.Len(t, found, 1)
		assert.Equal(t, search.Id, found[0].SearchId)
	})

	t.Run("Repair Request Provider Update", func(t *testing.T) {
		phone := "07700901" + uuid.New().String()[:6]
		user := &entity.User{
			Name:  "Repair Test User",
			Phone: &phone,
		}
		require.NoError(t, uow.UserRepository().Create(ctx, user))

		request := &entity.RepairRequest{
			UserId:      user.Id,
			Category:    "Bathroom and Toilet",
			Address:     "12 Test Lane",
			Description: "Leaking cistern",
		}
		require.NoError(t, uow.RepairRepository().Create(ctx, request))
		assert.Equal(t, entity.RepairStatusOpen, request.Status)

		require.NoError(t, uow.RepairRepository().UpdateProvider(ctx, request.Id, "AquaFix Plumbing"))

		all, err := uow.RepairRepository().FindAll(ctx, specification.ByUserId{UserId: user.Id})
		require.NoError(t, err)
		require.Len(t, all, 1)
		require.NotNil(t, all[0].ProviderSelected)
		assert.Equal(t, "AquaFix Plumbing", *all[0].ProviderSelected)
	})
}
