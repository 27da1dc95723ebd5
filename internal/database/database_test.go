package database

import (
	"testing"
	"time"

	"log_report/internal/domain/query"
	"log_report/internal/models"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := NewDatabase(Config{Driver: "sqlite3", DSN: ":memory:"})
	require.NoError(t, err)

	logger, _ := test.NewNullLogger()
	require.NoError(t, AutoMigrate(db, logger))
	return db
}

func TestNewDatabase_UnknownDriver(t *testing.T) {
	_, err := NewDatabase(Config{Driver: "oracle", DSN: "x"})
	assert.EqualError(t, err, "unsupported database driver: oracle")
}

func TestAutoMigrate(t *testing.T) {
	db := setupTestDB(t)

	for _, table := range []string{"authors", "articles", "log"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
}

func TestMigratedSchemaServesCatalog(t *testing.T) {
	db := setupTestDB(t)

	author := models.Author{Name: "Ursula"}
	require.NoError(t, db.Create(&author).Error)

	article := models.Article{Author: author.ID, Title: "Bears love berries", Slug: "bears-love-berries"}
	require.NoError(t, db.Create(&article).Error)

	now := time.Date(2016, time.July, 1, 12, 0, 0, 0, time.UTC)
	entries := []models.LogEntry{
		{Path: article.Path(), IP: "10.0.0.1", Method: "GET", Status: models.StatusOK, Time: now},
		{Path: article.Path(), IP: "10.0.0.2", Method: "GET", Status: models.StatusOK, Time: now},
		{Path: "/article/nope", IP: "10.0.0.3", Method: "GET", Status: "404 NOT FOUND", Time: now},
	}
	require.NoError(t, db.Create(&entries).Error)
	assert.True(t, entries[2].IsError())

	rows, err := db.Raw(query.Catalog()[0].SQL).Rows()
	require.NoError(t, err)
	defer rows.Close()

	var titles []string
	var views []int64
	for rows.Next() {
		var title string
		var n int64
		require.NoError(t, rows.Scan(&title, &n))
		titles = append(titles, title)
		views = append(views, n)
	}
	require.NoError(t, rows.Err())

	assert.Equal(t, []string{"Bears love berries"}, titles)
	assert.Equal(t, []int64{2}, views)
}
