package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// ══════════════════════════════════════════════════════════════════════════════
// REQUEST PAYLOADS
// Validation happens in two layers: struct tags catch malformed payloads
// at the edge, application commands re-check domain rules.
// ══════════════════════════════════════════════════════════════════════════════

var validate = validator.New(validator.WithRequiredStructEnabled())

// applyTutorRequest is the payload for POST /api/v1/tutors.
type applyTutorRequest struct {
	ApplicantUserID string   `json:"applicantUserId"`
	Name            string   `json:"name" validate:"required,min=2,max=120"`
	Avatar          string   `json:"avatar"`
	Subjects        []string `json:"subjects" validate:"required,min=1,dive,required"`
	Levels          []string `json:"levels"`
	Bio             string   `json:"bio" validate:"max=2000"`
	City            string   `json:"city"`
	ClassMode       string   `json:"classMode" validate:"omitempty,oneof=online offline both"`
	HourlyRate      float64  `json:"hourlyRate" validate:"gte=0"`
	ExperienceYears int      `json:"experienceYears" validate:"gte=0"`
	Availability    string   `json:"availability"`
	Email           string   `json:"email" validate:"omitempty,email"`
	Phone           string   `json:"phone"`
	Address         string   `json:"address"`
	Qualifications  string   `json:"qualifications"`
}

// updateTutorRequest is the payload for PUT /api/v1/tutors/{id}.
type updateTutorRequest struct {
	Name            string   `json:"name" validate:"required,min=2,max=120"`
	Avatar          string   `json:"avatar"`
	Subjects        []string `json:"subjects"`
	Levels          []string `json:"levels"`
	Bio             string   `json:"bio" validate:"max=2000"`
	City            string   `json:"city"`
	ClassMode       string   `json:"classMode" validate:"omitempty,oneof=online offline both"`
	HourlyRate      float64  `json:"hourlyRate" validate:"gte=0"`
	ExperienceYears int      `json:"experienceYears" validate:"gte=0"`
	Availability    string   `json:"availability"`
	Phone           string   `json:"phone"`
	Address         string   `json:"address"`
	Qualifications  string   `json:"qualifications"`
}

// moderateTutorRequest is the payload for POST /api/v1/tutors/{id}/moderate.
type moderateTutorRequest struct {
	Decision string `json:"decision" validate:"required,oneof=approve reject"`
}

// smartMatchRequest is the payload for POST /api/v1/tutors/smart-match.
type smartMatchRequest struct {
	Query string `json:"query" validate:"required,min=3,max=500"`
}

// generateBioRequest is the payload for POST /api/v1/tutors/generate-bio.
type generateBioRequest struct {
	Experience string `json:"experience"`
	Subjects   string `json:"subjects"`
	Style      string `json:"style"`
}

// submitRequestRequest is the payload for POST /api/v1/requests.
type submitRequestRequest struct {
	StudentID   string  `json:"studentId" validate:"required"`
	Subject     string  `json:"subject" validate:"required"`
	Level       string  `json:"level"`
	Mode        string  `json:"mode" validate:"omitempty,oneof=online offline both"`
	Location    string  `json:"location"`
	Description string  `json:"description" validate:"max=2000"`
	Budget      float64 `json:"budget" validate:"gte=0"`
}

// assignTutorRequest is the payload for POST /api/v1/requests/{id}/assign.
type assignTutorRequest struct {
	TutorID string `json:"tutorId" validate:"required"`
}

// startChatRequest is the payload for POST /api/v1/sessions.
type startChatRequest struct {
	InitiatorID string `json:"initiatorId" validate:"required"`
	PeerID      string `json:"peerId" validate:"required"`
}

// sendMessageRequest is the payload for POST /api/v1/sessions/{id}/messages.
type sendMessageRequest struct {
	SenderID string `json:"senderId" validate:"required"`
	Text     string `json:"text" validate:"required,max=4000"`
}

// moderateStudentRequest is the payload for POST /api/v1/students/{id}/moderate.
type moderateStudentRequest struct {
	Action string `json:"action" validate:"required,oneof=activate suspend"`
}

// decodeJSON decodes and validates a request body into dst.
func decodeJSON(r *http.Request, dst interface{}) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	if len(body) == 0 {
		return fmt.Errorf("request body is empty")
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := validate.Struct(dst); err != nil {
		return err
	}
	return nil
}
