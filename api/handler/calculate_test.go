package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/use-agent/holdcalc/cache"
	"github.com/use-agent/holdcalc/calculator"
	"github.com/use-agent/holdcalc/models"
)

func newTestRouter(cc *cache.Cache) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/v1/calculate", Calculate(calculator.New(), cc))
	return r
}

func postCalculate(t *testing.T, r *gin.Engine, req models.CalculateRequest) (*httptest.ResponseRecorder, models.CalculateResponse) {
	t.Helper()

	body, err := json.Marshal(req)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	httpReq := httptest.NewRequest(http.MethodPost, "/api/v1/calculate", bytes.NewReader(body))
	httpReq.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, httpReq)

	var resp models.CalculateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestCalculateHandler_Success(t *testing.T) {
	r := newTestRouter(nil)

	w, resp := postCalculate(t, r, models.CalculateRequest{
		MainText:       "apply today",
		AdditionalText: "today only",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Success)
	assert.Equal(t, 2, resp.Main.WordCount)
	require.NotNil(t, resp.Additional)
	assert.Equal(t, 1, resp.Additional.WordCount)
	assert.Equal(t, []string{"only"}, resp.Additional.Words)
	assert.Equal(t, 4, resp.Total.WholeSeconds)
	assert.Equal(t, 15, resp.Total.Frames)
}

func TestCalculateHandler_InvalidJSON(t *testing.T) {
	r := newTestRouter(nil)

	w := httptest.NewRecorder()
	httpReq := httptest.NewRequest(http.MethodPost, "/api/v1/calculate", bytes.NewReader([]byte("{not json")))
	httpReq.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, httpReq)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp models.CalculateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, models.ErrCodeInvalidInput, resp.Error.Code)
}

func TestCalculateHandler_NumberConversionFailure(t *testing.T) {
	r := newTestRouter(nil)

	w, resp := postCalculate(t, r, models.CalculateRequest{
		MainText: "pay 99999999999999999999999 now",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, models.ErrCodeNumberConversion, resp.Error.Code)
}

func TestCalculateHandler_EmptyInputIsNotAnError(t *testing.T) {
	r := newTestRouter(nil)

	w, resp := postCalculate(t, r, models.CalculateRequest{MainText: "   "})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Success)
	assert.Equal(t, 0, resp.Main.WordCount)
	assert.Equal(t, float64(0), resp.Total.Seconds)
}

func TestCalculateHandler_CacheRoundTrip(t *testing.T) {
	cc := cache.New(10)
	r := newTestRouter(cc)

	req := models.CalculateRequest{MainText: "terms apply", MaxAge: 60000}

	w, first := postCalculate(t, r, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "miss", first.CacheStatus)

	w, second := postCalculate(t, r, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "hit", second.CacheStatus)
	assert.Equal(t, first.Main.WordCount, second.Main.WordCount)
}
