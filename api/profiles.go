package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/akash-insiders/community-hub/pkg/models"
	"github.com/akash-insiders/community-hub/pkg/repository"
	"github.com/akash-insiders/community-hub/pkg/validation"
)

type ProfilesHandler struct {
	profileRepo   repository.ProfileRepo
	expertiseRepo repository.ExpertiseRepo
	validate      *validator.Validate
}

func NewProfilesHandler(pr repository.ProfileRepo, er repository.ExpertiseRepo) *ProfilesHandler {
	return &ProfilesHandler{profileRepo: pr, expertiseRepo: er, validate: validation.New()}
}

type expertiseInput struct {
	Technology string `json:"technology" validate:"required"`
	Level      int    `json:"expertise_level" validate:"required,min=1,max=10"`
	Years      int    `json:"years_experience" validate:"min=0"`
}

type profileSubmission struct {
	Name         string           `json:"name" validate:"required,min=2"`
	Email        string           `json:"email" validate:"required,email"`
	Role         string           `json:"role" validate:"omitempty,max=100"`
	Company      string           `json:"company"`
	Location     string           `json:"location"`
	HomeAddress  string           `json:"home_address"`
	Bio          string           `json:"bio"`
	Hobbies      string           `json:"hobbies"`
	ProfilePhoto string           `json:"profile_photo"`
	WebsiteURL   string           `json:"website_url" validate:"omitempty,url"`
	GithubURL    string           `json:"github_url" validate:"omitempty,url"`
	LinkedinURL  string           `json:"linkedin_url" validate:"omitempty,url"`
	TwitterURL   string           `json:"twitter_url" validate:"omitempty,url"`
	TelegramURL  string           `json:"telegram_url" validate:"omitempty,url"`
	Expertise    []expertiseInput `json:"expertise" validate:"omitempty,dive"`
}

type createProfileResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// CreateProfile validates a submission and writes one profile row plus one
// expertise row per supplied technology, all attributed to the new id. The
// profile insert happens first, so a rejected profile leaves no expertise
// rows behind.
func (h *ProfilesHandler) CreateProfile(w http.ResponseWriter, r *http.Request) {
	var req profileSubmission
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, messageResponse{Message: "Invalid payload"}, http.StatusBadRequest)
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)

	if err := h.validate.Struct(&req); err != nil {
		writeJSON(w, validationResponse{Message: "Invalid payload", Fields: validation.Fields(err)}, http.StatusBadRequest)
		return
	}

	ctx := r.Context()

	profile := models.Profile{
		Name:         req.Name,
		Email:        req.Email,
		Role:         req.Role,
		Company:      req.Company,
		Location:     req.Location,
		HomeAddress:  req.HomeAddress,
		Bio:          req.Bio,
		Hobbies:      req.Hobbies,
		ProfilePhoto: req.ProfilePhoto,
		WebsiteURL:   req.WebsiteURL,
		GithubURL:    req.GithubURL,
		LinkedinURL:  req.LinkedinURL,
		TwitterURL:   req.TwitterURL,
		TelegramURL:  req.TelegramURL,
	}

	profileID, err := h.profileRepo.CreateProfile(ctx, &profile)
	if err != nil {
		// duplicate email lands here as a constraint violation; no detail leaks
		logger.Error("create profile", slog.Any("err", err))
		writeJSON(w, messageResponse{Message: "Internal Server Error"}, http.StatusInternalServerError)
		return
	}

	for _, e := range req.Expertise {
		entry := models.ExpertiseEntry{
			ProfileID:  profileID,
			Technology: e.Technology,
			Level:      e.Level,
			Years:      e.Years,
		}
		if _, err := h.expertiseRepo.CreateExpertise(ctx, &entry); err != nil {
			logger.Error("create expertise", slog.Any("err", err), slog.Int64("profile_id", profileID))
			writeJSON(w, messageResponse{Message: "Internal Server Error"}, http.StatusInternalServerError)
			return
		}
	}

	writeJSON(w, createProfileResponse{Message: "Profile submitted", ID: profileID}, http.StatusCreated)
}

type listProfilesResponse struct {
	Profiles []models.Profile `json:"profiles"`
}

func (h *ProfilesHandler) ListProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.profileRepo.ListProfiles(r.Context())
	if err != nil {
		logger.Error("list profiles", slog.Any("err", err))
		writeJSON(w, messageResponse{Message: "Internal Server Error"}, http.StatusInternalServerError)
		return
	}

	writeJSON(w, listProfilesResponse{Profiles: profiles}, http.StatusOK)
}
