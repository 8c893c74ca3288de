package generator

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFALGenerateFromPrompt(t *testing.T) {
	tests := []struct {
		name           string
		responseBody   interface{}
		responseStatus int
		wantURL        string
		wantErr        bool
	}{
		{
			name: "success",
			responseBody: map[string]interface{}{
				"images": []interface{}{
					map[string]interface{}{"url": "http://img-url.com/1.png"},
				},
				"prompt": "flowers",
			},
			responseStatus: http.StatusOK,
			wantURL:        "http://img-url.com/1.png",
		},
		{
			name:           "api error",
			responseBody:   "invalid",
			responseStatus: http.StatusInternalServerError,
			wantErr:        true,
		},
		{
			name:           "malformed JSON",
			responseBody:   "{not_json}",
			responseStatus: http.StatusOK,
			wantErr:        true,
		},
		{
			name: "missing images",
			responseBody: map[string]interface{}{
				"images": []interface{}{},
				"prompt": "noimg",
			},
			responseStatus: http.StatusOK,
			wantErr:        true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "Key test-key", r.Header.Get("Authorization"))
				w.WriteHeader(tc.responseStatus)

				if s, ok := tc.responseBody.(string); ok {
					_, _ = w.Write([]byte(s))
					return
				}
				require.NoError(t, json.NewEncoder(w).Encode(tc.responseBody))
			}))
			defer srv.Close()

			f := NewFAL(srv.URL, "test-key")

			url, err := f.GenerateFromPrompt(t.Context(), "flowers")

			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantURL, url)
		})
	}
}
