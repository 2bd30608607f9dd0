package http

import (
	"net/http"

	"github.com/findateacher/tutorhub/internal/application/command"
	"github.com/findateacher/tutorhub/internal/application/query"
)

// ══════════════════════════════════════════════════════════════════════════════
// HEALTH & STATUS HANDLERS
// ══════════════════════════════════════════════════════════════════════════════

// handleRoot serves the root endpoint with basic API information.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	info := map[string]interface{}{
		"name":        "TutorHub API",
		"version":     "v1",
		"description": "REST API for the TutorHub tutoring marketplace",
		"endpoints": map[string]string{
			"health":   "/health",
			"tutors":   "/api/v1/tutors",
			"requests": "/api/v1/requests",
			"sessions": "/api/v1/sessions",
		},
	}
	s.writeJSON(w, http.StatusOK, info)
}

// handleHealth handles the health check endpoint.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "healthy",
		"uptime":  s.Uptime().String(),
		"version": "v1",
	})
}

// handleReady handles the readiness probe endpoint (for Kubernetes).
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

// handleLive handles the liveness probe endpoint (for Kubernetes).
func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "alive"})
}

// ══════════════════════════════════════════════════════════════════════════════
// TUTOR HANDLERS
// ══════════════════════════════════════════════════════════════════════════════

// handleSearchTutors handles GET /api/v1/tutors.
func (s *Server) handleSearchTutors(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	q := query.SearchTutorsQuery{
		Query:         params.Get("q"),
		Subject:       params.Get("subject"),
		Level:         params.Get("level"),
		City:          params.Get("city"),
		Mode:          params.Get("mode"),
		MinRating:     params.Get("min_rating"),
		PriceMin:      params.Get("price_min"),
		PriceMax:      params.Get("price_max"),
		MinExperience: params.Get("min_experience"),
	}

	result, err := s.deps.SearchTutors.Handle(r.Context(), q)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}

// handleGetTutor handles GET /api/v1/tutors/{id}.
func (s *Server) handleGetTutor(w http.ResponseWriter, r *http.Request) {
	q := query.GetTutorQuery{
		TutorID:           r.PathValue("id"),
		IncludeUnapproved: r.URL.Query().Get("include_unapproved") == "true",
	}

	result, err := s.deps.GetTutor.Handle(r.Context(), q)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}

// handleApplyAsTutor handles POST /api/v1/tutors.
func (s *Server) handleApplyAsTutor(w http.ResponseWriter, r *http.Request) {
	var req applyTutorRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid_payload", err.Error())
		return
	}

	result, err := s.deps.ApplyAsTutor.Handle(r.Context(), command.ApplyAsTutorCommand{
		ApplicantUserID: req.ApplicantUserID,
		Name:            req.Name,
		Avatar:          req.Avatar,
		Subjects:        req.Subjects,
		Levels:          req.Levels,
		Bio:             req.Bio,
		City:            req.City,
		ClassMode:       req.ClassMode,
		HourlyRate:      req.HourlyRate,
		ExperienceYears: req.ExperienceYears,
		Availability:    req.Availability,
		Email:           req.Email,
		Phone:           req.Phone,
		Address:         req.Address,
		Qualifications:  req.Qualifications,
	})
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, result)
}

// handleUpdateTutorProfile handles PUT /api/v1/tutors/{id}.
func (s *Server) handleUpdateTutorProfile(w http.ResponseWriter, r *http.Request) {
	var req updateTutorRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid_payload", err.Error())
		return
	}

	result, err := s.deps.UpdateTutorProfile.Handle(r.Context(), command.UpdateTutorProfileCommand{
		TutorID:         r.PathValue("id"),
		Name:            req.Name,
		Avatar:          req.Avatar,
		Subjects:        req.Subjects,
		Levels:          req.Levels,
		Bio:             req.Bio,
		City:            req.City,
		ClassMode:       req.ClassMode,
		HourlyRate:      req.HourlyRate,
		ExperienceYears: req.ExperienceYears,
		Availability:    req.Availability,
		Phone:           req.Phone,
		Address:         req.Address,
		Qualifications:  req.Qualifications,
	})
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}

// handleModerateTutor handles POST /api/v1/tutors/{id}/moderate.
func (s *Server) handleModerateTutor(w http.ResponseWriter, r *http.Request) {
	var req moderateTutorRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid_payload", err.Error())
		return
	}

	result, err := s.deps.ModerateTutor.Handle(r.Context(), command.ModerateTutorCommand{
		TutorID:  r.PathValue("id"),
		Decision: command.ModerationDecision(req.Decision),
	})
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}

// smartMatchResponse combines the AI recommendation with the reordered
// tutor list so the client renders the result in a single round trip.
type smartMatchResponse struct {
	Tutors           []query.TutorDTO `json:"tutors"`
	Total            int              `json:"total"`
	Reasoning        string           `json:"reasoning"`
	SmartMatchActive bool             `json:"smartMatchActive"`
}

// handleSmartMatch handles POST /api/v1/tutors/smart-match.
func (s *Server) handleSmartMatch(w http.ResponseWriter, r *http.Request) {
	var req smartMatchRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid_payload", err.Error())
		return
	}

	match, err := s.deps.SmartMatch.Handle(r.Context(), query.SmartMatchQuery{Query: req.Query})
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	listed, err := s.deps.SearchTutors.Handle(r.Context(), query.SearchTutorsQuery{
		SmartMatchActive: true,
		SmartMatchIDs:    match.RecommendedTutorIDs,
	})
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, smartMatchResponse{
		Tutors:           listed.Tutors,
		Total:            listed.Total,
		Reasoning:        match.Reasoning,
		SmartMatchActive: true,
	})
}

// handleGenerateBio handles POST /api/v1/tutors/generate-bio.
func (s *Server) handleGenerateBio(w http.ResponseWriter, r *http.Request) {
	var req generateBioRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid_payload", err.Error())
		return
	}

	result, err := s.deps.GenerateBio.Handle(r.Context(), command.GenerateBioCommand{
		Experience: req.Experience,
		Subjects:   req.Subjects,
		Style:      req.Style,
	})
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}

// ══════════════════════════════════════════════════════════════════════════════
// STUDENT REQUEST HANDLERS
// ══════════════════════════════════════════════════════════════════════════════

// handleListRequests handles GET /api/v1/requests.
func (s *Server) handleListRequests(w http.ResponseWriter, r *http.Request) {
	q := query.ListRequestsQuery{
		StudentID: r.URL.Query().Get("student_id"),
		Status:    r.URL.Query().Get("status"),
	}

	result, err := s.deps.ListRequests.Handle(r.Context(), q)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}

// handleSubmitRequest handles POST /api/v1/requests.
func (s *Server) handleSubmitRequest(w http.ResponseWriter, r *http.Request) {
	var req submitRequestRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid_payload", err.Error())
		return
	}

	result, err := s.deps.SubmitRequest.Handle(r.Context(), command.SubmitRequestCommand{
		StudentID:   req.StudentID,
		Subject:     req.Subject,
		Level:       req.Level,
		Mode:        req.Mode,
		Location:    req.Location,
		Description: req.Description,
		Budget:      req.Budget,
	})
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, result)
}

// handleAssignTutor handles POST /api/v1/requests/{id}/assign.
func (s *Server) handleAssignTutor(w http.ResponseWriter, r *http.Request) {
	var req assignTutorRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid_payload", err.Error())
		return
	}

	result, err := s.deps.AssignTutor.Handle(r.Context(), command.AssignTutorCommand{
		RequestID: r.PathValue("id"),
		TutorID:   req.TutorID,
	})
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}

// ══════════════════════════════════════════════════════════════════════════════
// CHAT SESSION HANDLERS
// ══════════════════════════════════════════════════════════════════════════════

// handleListSessions handles GET /api/v1/sessions.
func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	q := query.ListSessionsQuery{UserID: r.URL.Query().Get("user_id")}

	result, err := s.deps.ListSessions.Handle(r.Context(), q)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}

// handleStartDirectChat handles POST /api/v1/sessions.
func (s *Server) handleStartDirectChat(w http.ResponseWriter, r *http.Request) {
	var req startChatRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid_payload", err.Error())
		return
	}

	result, err := s.deps.StartDirectChat.Handle(r.Context(), command.StartDirectChatCommand{
		InitiatorID: req.InitiatorID,
		PeerID:      req.PeerID,
	})
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	status := http.StatusOK
	if result.IsNew {
		status = http.StatusCreated
	}
	s.writeJSON(w, status, result)
}

// handleSendMessage handles POST /api/v1/sessions/{id}/messages.
func (s *Server) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	var req sendMessageRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid_payload", err.Error())
		return
	}

	result, err := s.deps.SendMessage.Handle(r.Context(), command.SendMessageCommand{
		SessionID: r.PathValue("id"),
		SenderID:  req.SenderID,
		Text:      req.Text,
	})
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, result)
}

// ══════════════════════════════════════════════════════════════════════════════
// STUDENT ACCOUNT HANDLERS
// ══════════════════════════════════════════════════════════════════════════════

// handleModerateStudent handles POST /api/v1/students/{id}/moderate.
func (s *Server) handleModerateStudent(w http.ResponseWriter, r *http.Request) {
	var req moderateStudentRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid_payload", err.Error())
		return
	}

	result, err := s.deps.ModerateStudent.Handle(r.Context(), command.ModerateStudentCommand{
		StudentID: r.PathValue("id"),
		Action:    command.StudentAction(req.Action),
	})
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}
