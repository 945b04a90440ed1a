package tenant_test

import (
	"testing"

	"go-comp/internal/tenant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type widget struct {
	ID        string `gorm:"primaryKey"`
	CompanyID string
	Name      string
}

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&widget{}))
	require.NoError(t, db.Create([]widget{
		{ID: "w-1", CompanyID: "c-1", Name: "one"},
		{ID: "w-2", CompanyID: "c-1", Name: "two"},
		{ID: "w-3", CompanyID: "c-2", Name: "three"},
	}).Error)
	return db
}

func TestScope(t *testing.T) {
	db := setupDB(t)

	var got []widget
	require.NoError(t, db.Scopes(tenant.Scope("c-1")).Order("id").Find(&got).Error)
	assert.Len(t, got, 2)

	stmt := db.Session(&gorm.Session{DryRun: true}).Scopes(tenant.Scope("c-1")).Find(&[]widget{}).Statement
	assert.Contains(t, stmt.SQL.String(), "`widgets`.`company_id` = ?")
}

func TestScopeIDs(t *testing.T) {
	db := setupDB(t)

	t.Run("other company rows are excluded", func(t *testing.T) {
		var got []widget
		err := db.Scopes(tenant.ScopeIDs("c-1", []string{"w-1", "w-3"})).Find(&got).Error
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "w-1", got[0].ID)
	})

	t.Run("empty ids match nothing", func(t *testing.T) {
		var got []widget
		err := db.Scopes(tenant.ScopeIDs("c-1", nil)).Find(&got).Error
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
