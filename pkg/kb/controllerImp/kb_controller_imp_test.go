package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agrow/entities"
	"agrow/pkg/kb/serviceImp"
)

func newCtrl() *KBCtrl {
	return New(serviceImp.NewFromEntries([]entities.Disease{
		{ID: "d1", Crop: "Neem", Name: "Leaf Spot", Status: entities.StatusActionNeeded},
		{ID: "d2", Crop: "Tomato", Name: "Early Blight", Status: entities.StatusCritical},
	}))
}

func TestKBCtrl_ListFiltersByCrop(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/diseases?crop=tomato", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, newCtrl().List(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)
	var out []entities.Disease
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out, 1)
	assert.Equal(t, "d2", out[0].ID)
}

func TestKBCtrl_Lookup(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		status int
	}{
		{"found", "?crop=NEEM&name=leaf%20spot", http.StatusOK},
		{"missing params", "?crop=Neem", http.StatusBadRequest},
		{"unknown", "?crop=Neem&name=Rust", http.StatusNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/diseases/lookup"+tc.query, nil)
			rec := httptest.NewRecorder()

			require.NoError(t, newCtrl().Lookup(e.NewContext(req, rec)))
			assert.Equal(t, tc.status, rec.Code)
		})
	}
}
