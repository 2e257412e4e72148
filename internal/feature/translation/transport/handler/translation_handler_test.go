package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillroots/internal/feature/translation/domain/entity"
)

type mockTranslationUsecase struct {
	gotCode string
}

func (m *mockTranslationUsecase) Translate(ctx context.Context, code string) (entity.UITexts, entity.Language) {
	m.gotCode = code
	if code == "kn" {
		t := entity.English()
		t.Logout = "ಲಾಗ್ ಔಟ್"
		return t, entity.Language{Code: "kn", Name: "Kannada"}
	}
	return entity.English(), entity.Language{Code: "en", Name: "English"}
}

func (m *mockTranslationUsecase) Languages() []entity.Language {
	return entity.Languages
}

func setupRouter(uc TranslationUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewTranslationHandler(uc)
	r.GET("/translations", h.Translations)
	r.GET("/languages", h.Languages)
	return r
}

func TestTranslationHandler_Translations(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		wantCode   string
		wantLang   string
		wantLogout string
	}{
		{"defaults to english", "/translations", "en", "en", "Logout"},
		{"kannada", "/translations?lang=kn", "kn", "kn", "ಲಾಗ್ ಔಟ್"},
		{"unsupported still 200", "/translations?lang=xx", "xx", "en", "Logout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockTranslationUsecase{}
			r := setupRouter(uc)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.url, nil))

			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.wantCode, uc.gotCode)

			var body struct {
				Language struct {
					Code string `json:"code"`
				} `json:"language"`
				Texts map[string]string `json:"texts"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantLang, body.Language.Code)
			assert.Equal(t, tt.wantLogout, body.Texts["logout"])
		})
	}
}

func TestTranslationHandler_Languages(t *testing.T) {
	r := setupRouter(&mockTranslationUsecase{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/languages", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body []map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body, 6)
	assert.Equal(t, "en", body[0]["code"])
}
