package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrCreateRecord(t *testing.T) {
	setupTestDB(t)
	patient := newTestPatient(t, "Paulo", 100)

	record, err := GetOrCreateRecord(patient.ID)
	require.NoError(t, err)
	assert.Equal(t, patient.ID, record.PatientID)
	assert.Empty(t, record.Complaint)

	// second access reuses the same record
	again, err := GetOrCreateRecord(patient.ID)
	require.NoError(t, err)
	assert.Equal(t, record.ID, again.ID)

	_, err = GetOrCreateRecord(9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateRecord(t *testing.T) {
	setupTestDB(t)
	patient := newTestPatient(t, "Paulo", 100)
	record, err := GetOrCreateRecord(patient.ID)
	require.NoError(t, err)

	require.NoError(t, UpdateRecord(record.ID, "speech delay", "full term birth", "first contact notes", "misc"))

	updated, err := GetOrCreateRecord(patient.ID)
	require.NoError(t, err)
	assert.Equal(t, "speech delay", updated.Complaint)
	assert.Equal(t, "full term birth", updated.History)
	assert.Equal(t, "first contact notes", updated.Anamnesis)
	assert.Equal(t, "misc", updated.Notes)

	// fields may be cleared back to empty
	require.NoError(t, UpdateRecord(record.ID, "", "", "", ""))
	cleared, err := GetOrCreateRecord(patient.ID)
	require.NoError(t, err)
	assert.Empty(t, cleared.Complaint)

	assert.ErrorIs(t, UpdateRecord(9999, "", "", "", ""), ErrNotFound)
}
