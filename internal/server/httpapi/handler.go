package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/fruitie/internal/server/services"
)

type registerRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Location    string `json:"location"`
	PhoneNumber string `json:"phoneNumber"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type profileRequest struct {
	Name        *string `json:"name"`
	Location    *string `json:"location"`
	PhoneNumber *string `json:"phoneNumber"`
	Password    *string `json:"password"`
}

type chatRequest struct {
	Message string `json:"message"`
	Page    string `json:"page"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

func (s *HTTPServer) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	user, err := s.users.Register(r.Context(), services.NewUser{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		Location:    req.Location,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.logger.Info(r.Context(), "Registered", "user_id", user.ID)
	JSON(w, http.StatusCreated, user.Public())
}

func (s *HTTPServer) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	token, err := s.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	JSON(w, http.StatusOK, loginResponse{Token: token})
}

func (s *HTTPServer) profile(w http.ResponseWriter, r *http.Request) {
	id, _ := IdentityFrom(r.Context())

	user, err := s.users.Profile(r.Context(), id.UserID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	JSON(w, http.StatusOK, user.Public())
}

func (s *HTTPServer) updateProfile(w http.ResponseWriter, r *http.Request) {
	id, _ := IdentityFrom(r.Context())

	var req profileRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	user, err := s.users.UpdateProfile(r.Context(), id.UserID, services.ProfileUpdate{
		Name:        req.Name,
		Location:    req.Location,
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	JSON(w, http.StatusOK, user.Public())
}

func (s *HTTPServer) aiChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	reply, err := s.chat.Reply(r.Context(), req.Message, req.Page)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	JSON(w, http.StatusOK, chatResponse{Reply: reply})
}

// legacyChat answers the retired history-based endpoint.
func (s *HTTPServer) legacyChat(w http.ResponseWriter, r *http.Request) {
	Error(w, http.StatusGone, "this endpoint has been retired, use POST /api/ai-chat")
}
