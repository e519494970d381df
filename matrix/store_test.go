package matrix

import (
	"context"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/teranos/xmatrix/db"
)

func testStore(t *testing.T) *Store {
	t.Helper()

	logger := zaptest.NewLogger(t).Sugar()
	database, err := db.Open(filepath.Join(t.TempDir(), "test.db"), logger)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	return NewStore(database, logger)
}

func testRecords() []*Record {
	return []*Record{
		{
			SheetSource: "Container XPaths",
			UniqueID:    "MC000001.00001",
			Name:        "DEAL_SET",
			XPath:       "MESSAGE/DEAL_SETS/DEAL_SET",
			ReferenceID: "MC000001",
			AllVersions: `{"Version 3.4": "X"}`,
		},
		{
			SheetSource: "Container XPaths",
			UniqueID:    "MC000001.00002",
			Name:        "DEAL_SET",
			XPath:       "MESSAGE/DEAL_SETS/DEAL_SET/EXTENSION/DEAL_SET",
			ReferenceID: "MC000001",
			AllVersions: `{"Version 3.4": "nan"}`,
		},
		{
			SheetSource: "Data Point XPaths (1-1m)",
			UniqueID:    "MD000042.00001",
			Name:        "LoanIdentifier",
			XPath:       "MESSAGE/DEAL_SETS/DEAL_SET/LoanIdentifier",
			ReferenceID: "MD000042",
			AllVersions: `{"Version 3.4": "X"}`,
		},
	}
}

func TestStoreRebuildAndCount(t *testing.T) {
	store := testStore(t)
	require.NoError(t, store.Rebuild(testRecords()))

	count, err := store.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	bySheet, err := store.CountBySheet(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]int{
		"Container XPaths":         2,
		"Data Point XPaths (1-1m)": 1,
	}, bySheet)
}

// Rebuild replaces everything; a second run must not accumulate records
func TestStoreRebuildReplaces(t *testing.T) {
	store := testStore(t)
	require.NoError(t, store.Rebuild(testRecords()))
	require.NoError(t, store.Rebuild(testRecords()[:1]))

	count, err := store.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestStoreFindByUniqueID(t *testing.T) {
	store := testStore(t)
	require.NoError(t, store.Rebuild(testRecords()))
	ctx := context.Background()

	rec, err := store.FindByUniqueID(ctx, "MC000001.00002")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "MC000001.00002", rec.UniqueID)
	assert.Equal(t, "MESSAGE/DEAL_SETS/DEAL_SET/EXTENSION/DEAL_SET", rec.XPath)
}

func TestStoreFindByUniqueIDCaseInsensitive(t *testing.T) {
	store := testStore(t)
	require.NoError(t, store.Rebuild(testRecords()))
	ctx := context.Background()

	for _, id := range []string{"mc000001.00001", "MC000001.00001", "Mc000001.00001"} {
		rec, err := store.FindByUniqueID(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, rec, "lookup %q", id)
		// The stored casing is returned regardless of the query casing
		assert.Equal(t, "MC000001.00001", rec.UniqueID)
	}
}

// A miss is a nil record, not an error
func TestStoreFindByUniqueIDNotFound(t *testing.T) {
	store := testStore(t)
	require.NoError(t, store.Rebuild(testRecords()))

	rec, err := store.FindByUniqueID(context.Background(), "MC999999.00001")
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestStoreFindByXPath(t *testing.T) {
	store := testStore(t)
	require.NoError(t, store.Rebuild(testRecords()))
	ctx := context.Background()

	// All three accepted spellings resolve to the same stored record
	for _, path := range []string{
		"MESSAGE/DEAL_SETS/DEAL_SET",
		"/MESSAGE/DEAL_SETS/DEAL_SET",
		"//message/deal_sets/deal_set",
	} {
		records, err := store.FindByXPath(ctx, path)
		require.NoError(t, err)
		require.Len(t, records, 1, "lookup %q", path)
		assert.Equal(t, "MC000001.00001", records[0].UniqueID)
	}
}

func TestStoreFindByXPathNotFound(t *testing.T) {
	store := testStore(t)
	require.NoError(t, store.Rebuild(testRecords()))

	records, err := store.FindByXPath(context.Background(), "MESSAGE/NOPE")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestStoreFindByReferenceID(t *testing.T) {
	store := testStore(t)
	require.NoError(t, store.Rebuild(testRecords()))

	records, err := store.FindByReferenceID(context.Background(), "MC000001")
	require.NoError(t, err)
	require.Len(t, records, 2)
	// Sorted by unique ID ascending
	assert.Equal(t, "MC000001.00001", records[0].UniqueID)
	assert.Equal(t, "MC000001.00002", records[1].UniqueID)
}

func TestStoreFindByUniqueIDQueryError(t *testing.T) {
	database, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer database.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WillReturnError(assert.AnError)

	store := NewStore(database, zaptest.NewLogger(t).Sugar())
	_, err = store.FindByUniqueID(context.Background(), "MC000001.00001")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MC000001.00001")
}

func TestStoreRebuildRollsBackOnFailure(t *testing.T) {
	database, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer database.Close()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DROP TABLE")).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	store := NewStore(database, zaptest.NewLogger(t).Sugar())
	require.Error(t, store.Rebuild(testRecords()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
