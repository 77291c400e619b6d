package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/rail-booking/internal/model"
)

func TestStationListFallsBackWhenEmpty(t *testing.T) {
	got, err := NewStationService(&memStations{}).List(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, got)
	assert.Equal(t, model.FallbackStations, got)

	got[0].Name = "mutated"
	assert.Equal(t, "Bengaluru (SBC)", model.FallbackStations[0].Name)
}

func TestStationListReturnsStoreRows(t *testing.T) {
	rows := []model.Station{{ID: 9, Name: "Belagavi (BGM)", Code: "BGM"}}
	got, err := NewStationService(&memStations{rows: rows}).List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, rows, got)
}

func TestStationListStoreFailure(t *testing.T) {
	_, err := NewStationService(&memStations{err: errStoreDown}).List(context.Background())
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}
