package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/labstack/echo/v4"

	"github.com/jaurre/social-savvy-ai/internal/profile"
	"github.com/jaurre/social-savvy-ai/storage"
)

// NewTestContext creates a new Echo context for testing
func NewTestContext(method, path string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()

	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath(path)

	return c, rec
}

// NewTestStorage creates a test database with migrations applied
func NewTestStorage() (*storage.Storage, func()) {
	store, cleanup, err := storage.NewTestDB()
	if err != nil {
		panic("failed to create test database: " + err.Error())
	}
	return store, cleanup
}

// CreateTestProfile persists a complete business profile for handler tests
func CreateTestProfile(store *storage.Storage) (*storage.ProfileRecord, error) {
	return store.CreateProfile(context.Background(), profile.BusinessProfile{
		Name:         "Café Aromático",
		Industry:     "gastronomía",
		Description:  "Café de especialidad en el centro",
		Tone:         "cercano",
		VisualStyle:  "modern",
		ColorPalette: []string{"#6F4E37", "#D2B48C"},
		Slogan:       "El aroma que te despierta",
	})
}

// AssertJSONResponse checks if the response is valid JSON and returns the parsed body
func AssertJSONResponse(rec *httptest.ResponseRecorder) (map[string]interface{}, error) {
	var body map[string]interface{}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		return nil, err
	}
	return body, nil
}
