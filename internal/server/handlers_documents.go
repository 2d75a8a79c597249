package server

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/Jay-1409/auris-resume-fast-edition/internal/ingestion"
	"github.com/Jay-1409/auris-resume-fast-edition/internal/rendering"
	"github.com/Jay-1409/auris-resume-fast-edition/internal/server/middleware"
	"github.com/Jay-1409/auris-resume-fast-edition/internal/store"
	"github.com/Jay-1409/auris-resume-fast-edition/internal/types"
)

// Payloads larger than this are rejected before parsing.
const maxDocumentBytes = 1 << 20

// DocumentResponse represents the response for GET /resume
type DocumentResponse struct {
	Data      *types.Record `json:"data"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// SaveResponse represents the response for PUT /resume
type SaveResponse struct {
	Status string `json:"status"`
}

// handleGetResume returns the authenticated user's stored document in
// canonical form.
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	doc, err := s.documents.Load(r.Context(), userID.String())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.errorResponse(w, http.StatusNotFound, "No saved resume")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load resume: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, DocumentResponse{Data: doc.Record, UpdatedAt: doc.UpdatedAt})
}

// handleSaveResume stores the request body as the authenticated user's
// document. Legacy payloads are migrated before saving.
func (s *Server) handleSaveResume(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	record, ok := s.decodeDocument(w, r)
	if !ok {
		return
	}

	if err := s.documents.Save(r.Context(), userID.String(), record); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save resume: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, SaveResponse{Status: "saved"})
}

// handlePreviewResume renders the authenticated user's stored document as a
// standalone HTML page.
func (s *Server) handlePreviewResume(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	doc, err := s.documents.Load(r.Context(), userID.String())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.errorResponse(w, http.StatusNotFound, "No saved resume")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load resume: "+err.Error())
		return
	}

	page, err := rendering.RenderPage(doc.Record)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to render resume: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(page))
}

// handleRender renders a document supplied in the request body without
// touching storage.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	record, ok := s.decodeDocument(w, r)
	if !ok {
		return
	}

	page, err := rendering.RenderPage(record)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to render resume: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(page))
}

// decodeDocument reads and migrates a document payload from the request
// body, writing an error response on failure.
func (s *Server) decodeDocument(w http.ResponseWriter, r *http.Request) (*types.Record, bool) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxDocumentBytes+1))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read request body")
		return nil, false
	}
	if len(body) > maxDocumentBytes {
		s.errorResponse(w, http.StatusRequestEntityTooLarge, "Document too large")
		return nil, false
	}

	record, err := ingestion.ParseDocument(body)
	if err != nil {
		var invalid *ingestion.InvalidDocumentError
		if errors.As(err, &invalid) {
			s.errorResponse(w, http.StatusBadRequest, "Invalid document: "+invalid.Message)
			return nil, false
		}
		s.errorResponse(w, http.StatusBadRequest, "Invalid document")
		return nil, false
	}
	return record, true
}
