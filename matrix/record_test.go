package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordVersions(t *testing.T) {
	rec := &Record{
		UniqueID:    "MC000001.00001",
		AllVersions: `{"Version 3.4": "X", "Version 3.5": "nan"}`,
	}

	versions, err := rec.Versions()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"Version 3.4": "X",
		"Version 3.5": "nan",
	}, versions)
}

func TestRecordVersionsEmpty(t *testing.T) {
	rec := &Record{UniqueID: "MC000001.00001"}

	versions, err := rec.Versions()
	require.NoError(t, err)
	assert.Empty(t, versions)
}

func TestRecordVersionsMalformed(t *testing.T) {
	rec := &Record{UniqueID: "MC000001.00001", AllVersions: "{not json"}

	_, err := rec.Versions()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MC000001.00001")
}

func TestVersionLabelsDesc(t *testing.T) {
	labels := VersionLabelsDesc(map[string]string{
		"Version 3.4": "X",
		"Version 3.6": "X",
		"Version 3.5": "nan",
	})
	assert.Equal(t, []string{"Version 3.6", "Version 3.5", "Version 3.4"}, labels)
}

func TestIsNotApplicable(t *testing.T) {
	assert.True(t, IsNotApplicable(""))
	assert.True(t, IsNotApplicable("   "))
	assert.True(t, IsNotApplicable("nan"))
	assert.True(t, IsNotApplicable("NaN"))
	assert.True(t, IsNotApplicable(" nan "))
	assert.False(t, IsNotApplicable("X"))
	assert.False(t, IsNotApplicable("3.4"))
}
