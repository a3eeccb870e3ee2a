package api

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/nathaniel1232/Studymaxx-sub002/internal/api/shared"
	"github.com/nathaniel1232/Studymaxx-sub002/internal/domain"
	"github.com/nathaniel1232/Studymaxx-sub002/internal/extraction"
	"github.com/nathaniel1232/Studymaxx-sub002/internal/service"
)

// maxUploadBytes bounds multipart uploads (PDF/DOCX/image/audio).
const maxUploadBytes = 32 << 20

// GenerateHandler serves the flashcard generation endpoints.
type GenerateHandler struct {
	service *service.GenerationService
	logger  *slog.Logger
}

// NewGenerateHandler creates a GenerateHandler.
func NewGenerateHandler(svc *service.GenerationService, log *slog.Logger) *GenerateHandler {
	if log == nil {
		log = slog.Default()
	}
	return &GenerateHandler{
		service: svc,
		logger:  log.With(slog.String("component", "generate_handler")),
	}
}

// Generate handles POST /api/generate for authenticated users. It accepts
// a JSON body with extracted text, or a multipart form carrying a file to
// run through extraction first.
func (h *GenerateHandler) Generate(w http.ResponseWriter, r *http.Request) {
	identity, ok := shared.IdentityFrom(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}
	h.generate(w, r, identity)
}

// GenerateAnonymous handles POST /api/generate/anonymous. Callers supply a
// stable visitor ID in X-Anonymous-ID; without one a fresh ID is minted,
// which gives up cross-request limiting for that caller.
func (h *GenerateHandler) GenerateAnonymous(w http.ResponseWriter, r *http.Request) {
	visitorID := strings.TrimSpace(r.Header.Get("X-Anonymous-ID"))
	if visitorID == "" {
		visitorID = uuid.New().String()
	}
	identity := shared.Identity{UserID: domain.AnonymousIDPrefix + visitorID}
	h.generate(w, r, identity)
}

func (h *GenerateHandler) generate(w http.ResponseWriter, r *http.Request, identity shared.Identity) {
	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		h.generateFromUpload(w, r, identity)
		return
	}

	var req GenerateRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request", err)
		return
	}

	result, err := h.service.GenerateFromText(r.Context(), identity.UserID, identity.IsPremium, req.ToDomain())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, NewGenerateResponse(result))
}

func (h *GenerateHandler) generateFromUpload(w http.ResponseWriter, r *http.Request, identity shared.Identity) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	req, ok := h.formRequest(w, r)
	if !ok {
		return
	}

	material, ok := h.formMaterial(w, r)
	if !ok {
		return
	}

	result, err := h.service.GenerateFromMaterial(
		r.Context(), identity.UserID, identity.IsPremium, material, req.ToDomain())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, NewGenerateResponse(result))
}

// formRequest reads generation parameters from multipart form fields. The
// text comes from extraction, so the DTO's text requirement is satisfied
// with a placeholder that GenerateFromMaterial overwrites.
func (h *GenerateHandler) formRequest(w http.ResponseWriter, r *http.Request) (GenerateRequest, bool) {
	targetCount, err := strconv.Atoi(r.FormValue("target_count"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "target_count must be a number")
		return GenerateRequest{}, false
	}

	req := GenerateRequest{
		TargetCount:      targetCount,
		Difficulty:       r.FormValue("difficulty"),
		Subject:          r.FormValue("subject"),
		TargetGrade:      r.FormValue("target_grade"),
		OutputLanguage:   r.FormValue("output_language"),
		KnownLanguage:    r.FormValue("known_language"),
		LearningLanguage: r.FormValue("learning_language"),
	}
	if req.TargetCount < 1 || req.TargetCount > domain.MaxTargetCount {
		shared.RespondWithError(w, r, http.StatusBadRequest, "target_count out of range")
		return GenerateRequest{}, false
	}
	if req.Difficulty != string(domain.DifficultyEasy) &&
		req.Difficulty != string(domain.DifficultyMedium) &&
		req.Difficulty != string(domain.DifficultyHard) {
		shared.RespondWithError(w, r, http.StatusBadRequest, "difficulty must be Easy, Medium or Hard")
		return GenerateRequest{}, false
	}
	return req, true
}

func (h *GenerateHandler) formMaterial(w http.ResponseWriter, r *http.Request) (extraction.RawMaterial, bool) {
	if url := strings.TrimSpace(r.FormValue("youtube_url")); url != "" {
		return extraction.RawMaterial{SourceType: domain.SourceYouTube, URL: url}, true
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "file or youtube_url is required")
		return extraction.RawMaterial{}, false
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			h.logger.Warn("failed to close uploaded file", slog.String("error", closeErr.Error()))
		}
	}()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Failed to read uploaded file", err)
		return extraction.RawMaterial{}, false
	}

	return extraction.RawMaterial{Filename: header.Filename, Data: data}, true
}
