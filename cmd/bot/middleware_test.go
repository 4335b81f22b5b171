package main

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Jacobbrewer1/orderbot/pkg/request"
	"github.com/goccy/go-json"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareHttp(t *testing.T) {
	r := mux.NewRouter()
	r.HandleFunc("/teapot/{id}", middlewareHttp(slog.Default(), func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})).Methods(http.MethodGet)
	r.HandleFunc("/panic", middlewareHttp(slog.Default(), func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})).Methods(http.MethodGet)
	r.NotFoundHandler = request.NotFoundHandler(slog.Default())

	t.Run("status passes through", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/teapot/1", nil))
		assert.Equal(t, http.StatusTeapot, w.Code)
	})

	t.Run("panic is recovered", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
		require.Equal(t, http.StatusInternalServerError, w.Code)

		var body request.MessageError
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, request.ErrInternalServer.Error(), body.Error)
	})

	t.Run("unknown route", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
