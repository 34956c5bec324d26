package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/claimithub/claimit/internal/claims"
	"github.com/claimithub/claimit/internal/repository"
	"github.com/claimithub/claimit/internal/search"
)

const dateLayout = "2006-01-02"

func (s *Server) handleRegisterItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ItemName     string `json:"item_name"`
		Title        string `json:"title"`
		Description  string `json:"description"`
		Colour       string `json:"colour"`
		DetectedText string `json:"detected_text"`
		Category     string `json:"category"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := s.intake.RegisterItem(r.Context(), claims.RegisterItemInput{
		ItemName:     req.ItemName,
		Title:        req.Title,
		Description:  req.Description,
		Colour:       req.Colour,
		DetectedText: req.DetectedText,
		Category:     req.Category,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"id":        item.ID,
		"unique_id": item.UniqueID,
		"status":    item.Status,
	})
}

func (s *Server) handleListItems(w http.ResponseWriter, r *http.Request) {
	items, err := s.storage.ListItems(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

func (s *Server) handleListArchived(w http.ResponseWriter, r *http.Request) {
	from, to, err := parseDateRange(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	items, err := s.storage.ArchivedItemsBetween(r.Context(), from, to)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	items, err := s.searcher.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if len(items) == 0 {
		respondJSON(w, http.StatusNotFound, map[string]interface{}{
			"message": "no items matched the query",
			"items":   []repository.ItemSummary{},
		})
		return
	}
	respondJSON(w, http.StatusOK, items)
}

func (s *Server) handleSearchByFields(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	items, err := s.searcher.SearchByFields(r.Context(), search.FieldQuery{
		Email:        query.Get("email"),
		ReceivedDate: query.Get("receivedDate"),
		Status:       query.Get("status"),
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

func (s *Server) handleClaimItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ItemID   int64  `json:"item_id"`
		UserName string `json:"user_name"`
		Email    string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := s.workflow.ClaimItem(r.Context(), req.ItemID, req.UserName, req.Email)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if !result.Success {
		respondJSON(w, http.StatusConflict, result)
		return
	}
	respondJSON(w, http.StatusCreated, result)
}

func (s *Server) handleApproveOrReject(w http.ResponseWriter, r *http.Request) {
	itemID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req struct {
		Status string `json:"status"`
		Reason string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := s.engine.ApproveOrReject(r.Context(), itemID, req.Status, req.Reason)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleArchiveNow(w http.ResponseWriter, r *http.Request) {
	itemID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := s.archiver.ArchiveNow(r.Context(), itemID); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "item archived"})
}

func (s *Server) handleRestoreArchived(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FromDate       string  `json:"from_date"`
		ToDate         string  `json:"to_date"`
		ExpirationDate *string `json:"expiration_date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	from, err := time.Parse(dateLayout, req.FromDate)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid from_date format. Use YYYY-MM-DD")
		return
	}
	to, err := time.Parse(dateLayout, req.ToDate)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid to_date format. Use YYYY-MM-DD")
		return
	}

	var override *time.Time
	if req.ExpirationDate != nil {
		parsed, err := time.Parse(dateLayout, *req.ExpirationDate)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid expiration_date format. Use YYYY-MM-DD")
			return
		}
		override = &parsed
	}

	restored, err := s.archiver.RestoreArchived(r.Context(), from, to, override)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]int{"restored": restored})
}

func (s *Server) handleRecordClaimHistory(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ItemID    int64  `json:"item_id"`
		Status    string `json:"status"`
		ClaimDate string `json:"claim_date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	entry := &repository.ClaimHistoryEntry{
		ItemID: req.ItemID,
		Status: req.Status,
	}
	if req.ClaimDate != "" {
		parsed, err := time.Parse(dateLayout, req.ClaimDate)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid claim_date format. Use YYYY-MM-DD")
			return
		}
		entry.ClaimDate = parsed
	}

	id, err := s.engine.RecordClaimHistory(r.Context(), entry)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]int64{"claim_id": id})
}

func (s *Server) handleClaimHistoryByEmail(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		respondError(w, http.StatusBadRequest, "Missing email parameter")
		return
	}

	entries, err := s.storage.ClaimHistoryByEmail(r.Context(), email)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, entries)
}

func (s *Server) handleUserClaims(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	requests, err := s.storage.ClaimRequestsForUser(r.Context(), userID, repository.StatusArchived)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, requests)
}

func (s *Server) handleUpdateClaimStatus(w http.ResponseWriter, r *http.Request) {
	claimID, ok := pathID(w, r, "claimId")
	if !ok {
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := s.engine.UpdateClaimStatusAndNotify(r.Context(), claimID, req.Status)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleStatusCounts(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	counts, err := s.storage.StatusCountsByMonth(r.Context(), month)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, counts)
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, "Invalid "+name+" parameter")
		return 0, false
	}
	return id, true
}

func parseDateRange(r *http.Request) (time.Time, time.Time, error) {
	query := r.URL.Query()
	from := time.Time{}
	to := time.Now()

	if raw := query.Get("from"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			return time.Time{}, time.Time{}, errInvalidDate("from")
		}
		from = parsed
	}
	if raw := query.Get("to"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			return time.Time{}, time.Time{}, errInvalidDate("to")
		}
		to = parsed
	}
	return from, to, nil
}

type errInvalidDate string

func (e errInvalidDate) Error() string {
	return "Invalid " + string(e) + " date format. Use YYYY-MM-DD"
}
