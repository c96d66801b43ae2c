package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMedicationRecord_MarshalJSON_KeepsHeaderOrder(t *testing.T) {
	rec := NewMedicationRecord(
		[]string{"name", "dosage", "frequency"},
		map[string]string{"frequency": "daily", "name": "Aspirin", "dosage": "100mg"},
	)

	data, err := json.Marshal(rec)

	require.NoError(t, err)
	assert.Equal(t, `{"name":"Aspirin","dosage":"100mg","frequency":"daily"}`, string(data))
}

func TestMedicationRecord_MarshalJSON_EscapesKeysAndValues(t *testing.T) {
	rec := NewMedicationRecord(
		[]string{`weird "key"`},
		map[string]string{`weird "key"`: "a,b\nc"},
	)

	data, err := json.Marshal(rec)

	require.NoError(t, err)
	var decoded map[string]string
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "a,b\nc", decoded[`weird "key"`])
}

func TestMedicationRecord_MarshalJSON_Empty(t *testing.T) {
	data, err := json.Marshal(MedicationRecord{})

	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))
}

func TestMedicationRecord_Accessors(t *testing.T) {
	rec := NewMedicationRecord([]string{"h1", "h2"}, map[string]string{"h1": "A", "h2": "B"})

	v, ok := rec.Get("h1")
	assert.True(t, ok)
	assert.Equal(t, "A", v)

	_, ok = rec.Get("missing")
	assert.False(t, ok)

	assert.Equal(t, []string{"h1", "h2"}, rec.Keys())
	assert.Equal(t, 2, rec.Len())

	m := rec.Map()
	m["h1"] = "changed"
	v, _ = rec.Get("h1")
	assert.Equal(t, "A", v, "Map must return a copy")
}

func TestNewMedicationList(t *testing.T) {
	t.Run("nil records become an empty array", func(t *testing.T) {
		list := NewMedicationList(nil)

		data, err := json.Marshal(list)
		require.NoError(t, err)
		assert.JSONEq(t, `{"count":0,"items":[]}`, string(data))
	})

	t.Run("count follows items", func(t *testing.T) {
		rec := NewMedicationRecord([]string{"name", "dosage"}, map[string]string{"name": "Aspirin", "dosage": "100mg"})
		list := NewMedicationList([]MedicationRecord{rec})

		data, err := json.Marshal(list)
		require.NoError(t, err)
		assert.Equal(t, `{"count":1,"items":[{"name":"Aspirin","dosage":"100mg"}]}`, string(data))
	})
}

func TestCacheEntry_IsFresh(t *testing.T) {
	fetchedAt := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	entry := CacheEntry{FetchedAt: fetchedAt}
	ttl := 300 * time.Second

	assert.True(t, entry.IsFresh(fetchedAt, ttl))
	assert.True(t, entry.IsFresh(fetchedAt.Add(299*time.Second), ttl))
	assert.False(t, entry.IsFresh(fetchedAt.Add(300*time.Second), ttl))
	assert.False(t, entry.IsFresh(fetchedAt.Add(time.Hour), ttl))
}

func TestNewAppBuildInfo_FillsMissingValues(t *testing.T) {
	info := NewAppBuildInfo("1.2.3", "", "")

	assert.Equal(t, "1.2.3", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
	assert.Equal(t, "Build version: 1.2.3\nBuild date: N/A\nBuild commit: N/A\n", info.String())
}

func TestAppBuildInfo_HasBuildVersion(t *testing.T) {
	assert.True(t, NewAppBuildInfo("1.2.3", "", "").HasBuildVersion())
	assert.False(t, NewAppBuildInfo("", "2026-01-01", "abc").HasBuildVersion())
	assert.False(t, AppBuildInfo{}.HasBuildVersion())
}
