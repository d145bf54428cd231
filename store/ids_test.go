package store

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewReportID(t *testing.T) {
	now := time.Now()

	id := NewReportID("111111111111111111", now)
	assert.Equal(t, fmt.Sprintf("RPT-111111111111111111-%d", now.Unix()), id)
}

func TestNewReportIDSameSecond(t *testing.T) {
	now := time.Now()

	first := NewReportID("222222222222222222", now)
	second := NewReportID("222222222222222222", now)
	third := NewReportID("222222222222222222", now)

	assert.Equal(t, fmt.Sprintf("RPT-222222222222222222-%d", now.Unix()), first)
	assert.Equal(t, first+"-2", second)
	assert.Equal(t, first+"-3", third)
}

func TestNewReportIDNewSecondResets(t *testing.T) {
	now := time.Now()

	NewReportID("333333333333333333", now)
	NewReportID("333333333333333333", now)

	later := now.Add(time.Second)
	id := NewReportID("333333333333333333", later)
	assert.Equal(t, fmt.Sprintf("RPT-333333333333333333-%d", later.Unix()), id)
}

func TestNewReportIDDistinctSubmitters(t *testing.T) {
	now := time.Now()

	first := NewReportID("444444444444444444", now)
	second := NewReportID("555555555555555555", now)

	assert.NotEqual(t, first, second)
	assert.Equal(t, fmt.Sprintf("RPT-555555555555555555-%d", now.Unix()), second)
}
