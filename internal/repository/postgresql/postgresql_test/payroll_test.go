package postgresql_test

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/buildsite/worksite-backend-go/internal/domain/payroll"
	"github.com/buildsite/worksite-backend-go/internal/domain/worksession"
	"github.com/buildsite/worksite-backend-go/internal/pkg/database"
	"github.com/buildsite/worksite-backend-go/internal/repository/postgresql"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testDB     *database.DB
	testDBOnce sync.Once
)

// requireTestDB connects once per run. Tests skip when TEST_DATABASE_URL is
// unset so the suite stays runnable without a provisioned database.
func requireTestDB(t *testing.T) *database.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping repository integration tests")
	}

	testDBOnce.Do(func() {
		var err error
		testDB, err = database.NewPostgreSQLDB(dsn)
		if err != nil {
			panic("Failed to connect to test database: " + err.Error())
		}
	})
	return testDB
}

func createTestCompany(t *testing.T, ctx context.Context, db *database.DB) string {
	var companyID string
	err := db.QueryRow(ctx, `
		INSERT INTO companies (id, name, created_at, updated_at)
		VALUES (gen_random_uuid(), 'Test Builders', NOW(), NOW())
		RETURNING id
	`).Scan(&companyID)
	require.NoError(t, err)
	return companyID
}

func TestPayrollRepository_SettingsLifecycle(t *testing.T) {
	db := requireTestDB(t)
	ctx := context.Background()
	companyID := createTestCompany(t, ctx, db)

	repo := postgresql.NewPayrollRepository(db)

	// Missing settings is a configuration error, not a default.
	_, err := repo.GetSettings(ctx, companyID)
	assert.ErrorIs(t, err, payroll.ErrPayrollSettingsNotFound)

	created, err := repo.UpsertSettings(ctx, payroll.PayrollSettings{
		CompanyID:  companyID,
		ClosingDay: 20,
		PayDay:     25,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, 20, created.ClosingDay)
	assert.Equal(t, 25, created.PayDay)

	// Upsert updates in place, the row keeps its identity.
	updated, err := repo.UpsertSettings(ctx, payroll.PayrollSettings{
		CompanyID:  companyID,
		ClosingDay: 31,
		PayDay:     10,
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, 31, updated.ClosingDay)

	got, err := repo.GetSettings(ctx, companyID)
	require.NoError(t, err)
	assert.Equal(t, updated.ID, got.ID)
	assert.Equal(t, 31, got.ClosingDay)
	assert.Equal(t, 10, got.PayDay)
}

func TestWorkSessionRepository_RangeQueryIsCompanyScoped(t *testing.T) {
	db := requireTestDB(t)
	ctx := context.Background()
	companyID := createTestCompany(t, ctx, db)
	otherCompanyID := createTestCompany(t, ctx, db)

	repo := postgresql.NewWorkSessionRepository(db)

	mkSession := func(company string, day int) worksession.WorkSession {
		return worksession.WorkSession{
			ID:         uuid.NewString(),
			CompanyID:  company,
			WorkerID:   "w1",
			WorkerName: "Tanaka",
			WorkDate:   time.Date(2024, time.March, day, 0, 0, 0, 0, time.UTC),
			TotalHours: 8,
			DailyWage:  decimal.NewFromInt(16000),
		}
	}

	inRange, err := repo.Create(ctx, mkSession(companyID, 5))
	require.NoError(t, err)
	_, err = repo.Create(ctx, mkSession(companyID, 25))
	require.NoError(t, err)
	_, err = repo.Create(ctx, mkSession(otherCompanyID, 5))
	require.NoError(t, err)

	start := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC)

	sessions, err := repo.GetByCompanyAndRange(ctx, companyID, start, end)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, inRange.ID, sessions[0].ID)
	assert.True(t, sessions[0].DailyWage.Equal(decimal.NewFromInt(16000)))

	// Lookup and delete honor the company boundary too.
	_, err = repo.GetByID(ctx, inRange.ID, otherCompanyID)
	assert.ErrorIs(t, err, worksession.ErrWorkSessionNotFound)

	err = repo.Delete(ctx, inRange.ID, otherCompanyID)
	assert.ErrorIs(t, err, worksession.ErrWorkSessionNotFound)

	err = repo.Delete(ctx, inRange.ID, companyID)
	require.NoError(t, err)

	_, err = repo.GetByID(ctx, inRange.ID, companyID)
	assert.ErrorIs(t, err, worksession.ErrWorkSessionNotFound)
}
