package services

import (
	"testing"
	"time"

	"nextkey_landing_go/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	dbName := "mem_" + uuid.New().String()
	testDB, err := gorm.Open(sqlite.Open("file:"+dbName+"?mode=memory&cache=shared&_busy_timeout=5000"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, testDB.AutoMigrate(&models.SubmissionEvent{}))

	// Background writers share one connection
	sqlDB, err := testDB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	return testDB
}

func TestSubmissionLogRecordAndSummary(t *testing.T) {
	testDB := setupTestDB(t)
	l := NewSubmissionLog(testDB, nil)

	l.Record(models.SubmissionEvent{Site: SiteGeneral, LeadSource: models.LeadSourceParents, Strategy: "network", Outcome: models.OutcomeSucceeded, StatusCode: 201})
	l.Record(models.SubmissionEvent{Site: SiteGeneral, LeadSource: models.LeadSourceParents, Strategy: "network", Outcome: models.OutcomeSucceeded, StatusCode: 201})
	l.Record(models.SubmissionEvent{Site: SiteGeneral, LeadSource: models.LeadSourceParents, Strategy: "network", Outcome: models.OutcomeRejected, StatusCode: 400})
	l.Record(models.SubmissionEvent{Site: SiteRoblox, LeadSource: models.LeadSourceKids, Strategy: "local", Outcome: models.OutcomeLocal})
	l.Flush()

	var count int64
	testDB.Model(&models.SubmissionEvent{}).Count(&count)
	assert.Equal(t, int64(4), count)

	rows, err := l.Summary(time.Now().Add(-time.Hour))
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, OutcomeCount{Site: SiteGeneral, LeadSource: "parents", Outcome: models.OutcomeRejected, Count: 1}, rows[0])
	assert.Equal(t, OutcomeCount{Site: SiteGeneral, LeadSource: "parents", Outcome: models.OutcomeSucceeded, Count: 2}, rows[1])
	assert.Equal(t, OutcomeCount{Site: SiteRoblox, LeadSource: "kids", Outcome: models.OutcomeLocal, Count: 1}, rows[2])
}

func TestSubmissionLogDropsMalformedEvents(t *testing.T) {
	testDB := setupTestDB(t)
	core, logs := observer.New(zapcore.WarnLevel)
	l := NewSubmissionLog(testDB, zap.New(core))

	l.Record(models.SubmissionEvent{Site: SiteGeneral, LeadSource: "adults", Strategy: "network", Outcome: models.OutcomeSucceeded})
	l.Record(models.SubmissionEvent{Site: SiteGeneral, LeadSource: models.LeadSourceKids, Strategy: "network", Outcome: "maybe"})
	l.Record(models.SubmissionEvent{Site: SiteGeneral, LeadSource: models.LeadSourceKids, Strategy: "network", Outcome: models.OutcomeInvalid})
	l.Flush()

	var count int64
	testDB.Model(&models.SubmissionEvent{}).Count(&count)
	assert.Equal(t, int64(1), count)
	assert.Equal(t, 2, logs.FilterMessage("dropping malformed submission event").Len())
}

func TestSubmissionLogPurgeBefore(t *testing.T) {
	testDB := setupTestDB(t)
	l := NewSubmissionLog(testDB, nil)

	old := models.SubmissionEvent{Site: SiteGeneral, LeadSource: models.LeadSourceKids, Strategy: "network", Outcome: models.OutcomeUnreachable}
	require.NoError(t, testDB.Create(&old).Error)
	require.NoError(t, testDB.Model(&old).Update("created_at", time.Now().Add(-48*time.Hour)).Error)

	fresh := models.SubmissionEvent{Site: SiteGeneral, LeadSource: models.LeadSourceKids, Strategy: "network", Outcome: models.OutcomeSucceeded}
	require.NoError(t, testDB.Create(&fresh).Error)

	removed, err := l.PurgeBefore(time.Now().Add(-24 * time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	var remaining []models.SubmissionEvent
	require.NoError(t, testDB.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, fresh.ID, remaining[0].ID)
}

func TestSubmissionEventStoresNoLeadFields(t *testing.T) {
	testDB := setupTestDB(t)
	columns, err := testDB.Migrator().ColumnTypes(&models.SubmissionEvent{})
	require.NoError(t, err)

	for _, c := range columns {
		assert.NotContains(t, []string{"name", "email", "phone", "state_location", "description"}, c.Name())
	}
}
