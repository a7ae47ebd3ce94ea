package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yupiter/analytics-api/internal/domain"
	"github.com/yupiter/analytics-api/internal/usecases/projecting"
)

func TestGetProjection_Defaults(t *testing.T) {
	handler := GetProjection(projecting.NewService())

	req := httptest.NewRequest(http.MethodGet, "/v1/investment/projection", nil)
	rec := httptest.NewRecorder()

	handler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var projection domain.Projection
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &projection))

	assert.Equal(t, float64(13000), projection.EBITDA)
	assert.Equal(t, 10, projection.PaybackMonths)
	assert.Len(t, projection.Series, 36)
}

func TestGetProjection_QueryParamsOverrideDefaults(t *testing.T) {
	handler := GetProjection(projecting.NewService())

	req := httptest.NewRequest(http.MethodGet, "/v1/investment/projection?monthlySales=200000&marginPct=30", nil)
	rec := httptest.NewRecorder()

	handler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var projection domain.Projection
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &projection))

	assert.Equal(t, float64(200000), projection.Assumptions.MonthlySales)
	assert.Equal(t, float64(60000), projection.GrossProfit)
}

func TestGetProjection_UnparsableParamFallsBack(t *testing.T) {
	handler := GetProjection(projecting.NewService())

	req := httptest.NewRequest(http.MethodGet, "/v1/investment/projection?monthlySales=abc", nil)
	rec := httptest.NewRecorder()

	handler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var projection domain.Projection
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &projection))

	assert.Equal(t, float64(150000), projection.Assumptions.MonthlySales)
}
