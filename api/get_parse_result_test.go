package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Drolfothesgnir/wikitext/tmpstore"
	mockstore "github.com/Drolfothesgnir/wikitext/tmpstore/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetParseResult(t *testing.T) {
	digest := digestOf("{{T}}")
	result := tmpstore.ParseResult{ID: "id", Digest: digest}

	testCases := []struct {
		name          string
		digest        string
		buildStubs    func(store *mockstore.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name:   "InvalidDigest",
			digest: "abc",
			buildStubs: func(store *mockstore.MockStore) {
				store.EXPECT().GetParseResult(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)

				res, err := extractErrorFromBuffer(recorder.Body)
				require.NoError(t, err)
				require.Equal(t, ErrInvalidDigest.Error(), res.Error)
				require.Equal(t, "digest", res.Fields[0].FieldName)
			},
		},
		{
			name:   "NotHex",
			digest: strings.Repeat("z", 64),
			buildStubs: func(store *mockstore.MockStore) {
				store.EXPECT().GetParseResult(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name:   "NotFound",
			digest: digest,
			buildStubs: func(store *mockstore.MockStore) {
				store.EXPECT().GetParseResult(gomock.Any(), digest).Times(1).Return(nil, tmpstore.ErrCacheMiss)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusNotFound, recorder.Code)
			},
		},
		{
			name:   "StoreError",
			digest: digest,
			buildStubs: func(store *mockstore.MockStore) {
				store.EXPECT().GetParseResult(gomock.Any(), digest).Times(1).Return(nil, errors.New("timeout"))
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusInternalServerError, recorder.Code)
			},
		},
		{
			name:   "UpperCaseDigest",
			digest: strings.ToUpper(digest),
			buildStubs: func(store *mockstore.MockStore) {
				store.EXPECT().GetParseResult(gomock.Any(), digest).Times(1).Return(&result, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
			},
		},
		{
			name:   "OK",
			digest: digest,
			buildStubs: func(store *mockstore.MockStore) {
				store.EXPECT().GetParseResult(gomock.Any(), digest).Times(1).Return(&result, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				resp := decodeBody[ParseResponse](t, recorder)
				require.True(t, resp.Cached)
				require.Equal(t, "id", resp.ID)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			store := mockstore.NewMockStore(ctrl)

			tc.buildStubs(store)

			service := newTestService(t, store)
			recorder := httptest.NewRecorder()

			request, err := http.NewRequest(http.MethodGet, ParseURL+"/"+tc.digest, nil)
			require.NoError(t, err)

			service.router.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}

func TestGetParseResult_WithoutCache(t *testing.T) {
	service := newTestService(t, nil)
	recorder := httptest.NewRecorder()

	request, err := http.NewRequest(http.MethodGet, ParseURL+"/"+digestOf("x"), nil)
	require.NoError(t, err)

	service.router.ServeHTTP(recorder, request)
	require.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestDeleteParseResult(t *testing.T) {
	digest := digestOf("x")

	testCases := []struct {
		name       string
		buildStubs func(store *mockstore.MockStore)
		status     int
	}{
		{
			name: "OK",
			buildStubs: func(store *mockstore.MockStore) {
				store.EXPECT().DeleteParseResult(gomock.Any(), digest).Times(1).Return(nil)
			},
			status: http.StatusNoContent,
		},
		{
			name: "StoreError",
			buildStubs: func(store *mockstore.MockStore) {
				store.EXPECT().DeleteParseResult(gomock.Any(), digest).Times(1).Return(errors.New("timeout"))
			},
			status: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			store := mockstore.NewMockStore(ctrl)

			tc.buildStubs(store)

			service := newTestService(t, store)
			recorder := httptest.NewRecorder()

			request, err := http.NewRequest(http.MethodDelete, ParseURL+"/"+digest, nil)
			require.NoError(t, err)

			service.router.ServeHTTP(recorder, request)
			require.Equal(t, tc.status, recorder.Code)
		})
	}
}
