package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/claimithub/claimit/internal/claims"
	"github.com/claimithub/claimit/internal/repository"
	"github.com/claimithub/claimit/internal/search"
	server_mocks "github.com/claimithub/claimit/internal/server/mocks"
)

type testServer struct {
	server   *Server
	intake   *server_mocks.MockIntake
	workflow *server_mocks.MockWorkflow
	engine   *server_mocks.MockEngine
	archiver *server_mocks.MockArchiver
	searcher *server_mocks.MockSearcher
	storage  *server_mocks.MockStorage
}

func newTestServer(t *testing.T) *testServer {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	ts := &testServer{
		intake:   server_mocks.NewMockIntake(ctrl),
		workflow: server_mocks.NewMockWorkflow(ctrl),
		engine:   server_mocks.NewMockEngine(ctrl),
		archiver: server_mocks.NewMockArchiver(ctrl),
		searcher: server_mocks.NewMockSearcher(ctrl),
		storage:  server_mocks.NewMockStorage(ctrl),
	}
	ts.server = New(ts.intake, ts.workflow, ts.engine, ts.archiver, ts.searcher, ts.storage,
		server_mocks.NewMockAdminRepo(ctrl), zap.NewNop())
	return ts
}

func TestHandleClaimItem(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMocks     func(ts *testServer)
		expectedStatus int
	}{
		{
			name: "successful claim",
			requestBody: map[string]interface{}{
				"item_id":   int64(5),
				"user_name": "Alice",
				"email":     "a@x.com",
			},
			setupMocks: func(ts *testServer) {
				ts.workflow.EXPECT().
					ClaimItem(gomock.Any(), int64(5), "Alice", "a@x.com").
					Return(claims.Result{Success: true, Message: "claim registered"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "already claimed returns conflict",
			requestBody: map[string]interface{}{
				"item_id": int64(5),
				"email":   "b@x.com",
			},
			setupMocks: func(ts *testServer) {
				ts.workflow.EXPECT().
					ClaimItem(gomock.Any(), int64(5), "", "b@x.com").
					Return(claims.Result{Success: false, Message: "item is already claimed"}, nil)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:        "missing email is bad request",
			requestBody: map[string]interface{}{"item_id": int64(5)},
			setupMocks: func(ts *testServer) {
				ts.workflow.EXPECT().
					ClaimItem(gomock.Any(), int64(5), "", "").
					Return(claims.Result{}, fmt.Errorf("%w: email must not be empty", repository.ErrValidation))
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "missing item is not found",
			requestBody: map[string]interface{}{
				"item_id": int64(99),
				"email":   "a@x.com",
			},
			setupMocks: func(ts *testServer) {
				ts.workflow.EXPECT().
					ClaimItem(gomock.Any(), int64(99), "", "a@x.com").
					Return(claims.Result{}, repository.ErrObjectNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ts := newTestServer(t)
			tc.setupMocks(ts)

			body, err := json.Marshal(tc.requestBody)
			require.NoError(t, err)
			req := httptest.NewRequest(http.MethodPost, "/claims", bytes.NewReader(body))
			rr := httptest.NewRecorder()

			ts.server.handleClaimItem(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
		})
	}
}

func TestHandleApproveOrReject(t *testing.T) {
	t.Run("approval passes status through", func(t *testing.T) {
		ts := newTestServer(t)
		ts.engine.EXPECT().
			ApproveOrReject(gomock.Any(), int64(7), repository.StatusPendingPickup, "").
			Return(claims.Result{Success: true, Message: "item 7 moved to PENDING_PICKUP"}, nil)

		body, _ := json.Marshal(map[string]string{"status": repository.StatusPendingPickup})
		req := httptest.NewRequest(http.MethodPut, "/items/7/approval", bytes.NewReader(body))
		req = mux.SetURLVars(req, map[string]string{"id": "7"})
		rr := httptest.NewRecorder()

		ts.server.handleApproveOrReject(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("rejection without reason is bad request", func(t *testing.T) {
		ts := newTestServer(t)
		ts.engine.EXPECT().
			ApproveOrReject(gomock.Any(), int64(7), repository.StatusRejected, "").
			Return(claims.Result{}, fmt.Errorf("%w: a rejection requires a reason", repository.ErrValidation))

		body, _ := json.Marshal(map[string]string{"status": repository.StatusRejected})
		req := httptest.NewRequest(http.MethodPut, "/items/7/approval", bytes.NewReader(body))
		req = mux.SetURLVars(req, map[string]string{"id": "7"})
		rr := httptest.NewRecorder()

		ts.server.handleApproveOrReject(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("non-numeric id is bad request", func(t *testing.T) {
		ts := newTestServer(t)

		req := httptest.NewRequest(http.MethodPut, "/items/abc/approval", bytes.NewReader([]byte("{}")))
		req = mux.SetURLVars(req, map[string]string{"id": "abc"})
		rr := httptest.NewRecorder()

		ts.server.handleApproveOrReject(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestHandleSearch(t *testing.T) {
	t.Run("matches return ok", func(t *testing.T) {
		ts := newTestServer(t)
		ts.searcher.EXPECT().
			Search(gomock.Any(), "red bag").
			Return([]repository.ItemSummary{{ID: 1, ItemName: "red bag"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/items/search?q=red+bag", nil)
		rr := httptest.NewRecorder()

		ts.server.handleSearch(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("zero matches return not found", func(t *testing.T) {
		ts := newTestServer(t)
		ts.searcher.EXPECT().
			Search(gomock.Any(), "unicorn").
			Return([]repository.ItemSummary{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/items/search?q=unicorn", nil)
		rr := httptest.NewRecorder()

		ts.server.handleSearch(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestHandleSearchByFields(t *testing.T) {
	t.Run("query parameters are forwarded", func(t *testing.T) {
		ts := newTestServer(t)
		ts.searcher.EXPECT().
			SearchByFields(gomock.Any(), search.FieldQuery{
				Email:        "a@x.com",
				ReceivedDate: "2025-06-15",
				Status:       repository.StatusUnclaimed,
			}).
			Return([]repository.ItemSummary{}, nil)

		req := httptest.NewRequest(http.MethodGet,
			"/items/searchByFields?email=a@x.com&receivedDate=2025-06-15&status=UNCLAIMED", nil)
		rr := httptest.NewRecorder()

		ts.server.handleSearchByFields(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("validation error maps to bad request", func(t *testing.T) {
		ts := newTestServer(t)
		ts.searcher.EXPECT().
			SearchByFields(gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("%w: receivedDate must be yyyy-MM-dd", repository.ErrValidation))

		req := httptest.NewRequest(http.MethodGet, "/items/searchByFields?receivedDate=junk", nil)
		rr := httptest.NewRecorder()

		ts.server.handleSearchByFields(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestHandleRestoreArchived(t *testing.T) {
	t.Run("restores a date range", func(t *testing.T) {
		ts := newTestServer(t)
		ts.archiver.EXPECT().
			RestoreArchived(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Nil()).
			Return(3, nil)

		body, _ := json.Marshal(map[string]string{
			"from_date": "2025-05-01",
			"to_date":   "2025-05-31",
		})
		req := httptest.NewRequest(http.MethodPost, "/items/restore", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		ts.server.handleRestoreArchived(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"restored":3}`, rr.Body.String())
	})

	t.Run("malformed date is bad request", func(t *testing.T) {
		ts := newTestServer(t)

		body, _ := json.Marshal(map[string]string{
			"from_date": "05/01/2025",
			"to_date":   "2025-05-31",
		})
		req := httptest.NewRequest(http.MethodPost, "/items/restore", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		ts.server.handleRestoreArchived(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestHandleArchiveNow(t *testing.T) {
	t.Run("archives the item", func(t *testing.T) {
		ts := newTestServer(t)
		ts.archiver.EXPECT().ArchiveNow(gomock.Any(), int64(4)).Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/items/4/archive", nil)
		req = mux.SetURLVars(req, map[string]string{"id": "4"})
		rr := httptest.NewRecorder()

		ts.server.handleArchiveNow(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("missing item maps to not found", func(t *testing.T) {
		ts := newTestServer(t)
		ts.archiver.EXPECT().ArchiveNow(gomock.Any(), int64(4)).Return(repository.ErrObjectNotFound)

		req := httptest.NewRequest(http.MethodPost, "/items/4/archive", nil)
		req = mux.SetURLVars(req, map[string]string{"id": "4"})
		rr := httptest.NewRecorder()

		ts.server.handleArchiveNow(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestHandleUserClaims(t *testing.T) {
	t.Run("lists the user's non-archived claims", func(t *testing.T) {
		ts := newTestServer(t)
		ts.storage.EXPECT().
			ClaimRequestsForUser(gomock.Any(), int64(3), repository.StatusArchived).
			Return([]*repository.ClaimRequest{{ID: 11, ItemID: 5, UserID: 3}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/users/3/claims", nil)
		req = mux.SetURLVars(req, map[string]string{"id": "3"})
		rr := httptest.NewRecorder()

		ts.server.handleUserClaims(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("non-numeric id is bad request", func(t *testing.T) {
		ts := newTestServer(t)

		req := httptest.NewRequest(http.MethodGet, "/users/nope/claims", nil)
		req = mux.SetURLVars(req, map[string]string{"id": "nope"})
		rr := httptest.NewRecorder()

		ts.server.handleUserClaims(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestHandleListItems(t *testing.T) {
	t.Run("internal error maps to 500", func(t *testing.T) {
		ts := newTestServer(t)
		ts.storage.EXPECT().ListItems(gomock.Any()).Return(nil, errors.New("connection refused"))

		req := httptest.NewRequest(http.MethodGet, "/items", nil)
		rr := httptest.NewRecorder()

		ts.server.handleListItems(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
