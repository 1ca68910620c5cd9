package http

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/andrewpjlewis/habit-tracker-api/internal/core/domain"
	"github.com/andrewpjlewis/habit-tracker-api/internal/core/ports"
)

const stateCookieName = "oauth_state"

type AuthHandler struct {
	authService ports.AuthService
	provider    ports.OAuthProvider
	frontendURL string
}

func NewAuthHandler(authService ports.AuthService, provider ports.OAuthProvider, frontendURL string) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		provider:    provider,
		frontendURL: frontendURL,
	}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register godoc
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Success      201
// @Failure      400
// @Router       /auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		writeMessage(w, http.StatusBadRequest, "name, email and password are required")
		return
	}

	_, err := h.authService.Register(r.Context(), ports.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			writeMessage(w, http.StatusBadRequest, "User already exists")
			return
		}
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			writeMessage(w, http.StatusBadRequest, vErr.Error())
			return
		}
		writeServerError(w, err)
		return
	}

	writeMessage(w, http.StatusCreated, "User registered successfully")
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// Login godoc
// @Summary      Log in a user
// @Tags         auth
// @Accept       json
// @Success      200
// @Failure      400
// @Router       /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, user, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			writeMessage(w, http.StatusBadRequest, "Invalid email or password")
			return
		}
		writeServerError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		Token:  token,
		UserID: user.ID.String(),
		Name:   user.Name,
		Email:  user.Email,
	})
}

// GoogleLogin redirects the browser to the Google consent screen.
func (h *AuthHandler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	state, err := randomState()
	if err != nil {
		writeServerError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     stateCookieName,
		Value:    state,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   10 * 60,
	})

	http.Redirect(w, r, h.provider.AuthCodeURL(state), http.StatusTemporaryRedirect)
}

// GoogleCallback exchanges the authorization code, links or creates the
// local identity, and hands the issued token back to the front end as
// a query parameter.
func (h *AuthHandler) GoogleCallback(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(stateCookieName)
	if err != nil || cookie.Value == "" || cookie.Value != r.URL.Query().Get("state") {
		h.redirectFailure(w, r, "state mismatch")
		return
	}
	h.expireStateCookie(w)

	code := r.URL.Query().Get("code")
	if code == "" {
		h.redirectFailure(w, r, "missing code")
		return
	}

	profile, err := h.provider.Exchange(r.Context(), code)
	if err != nil {
		h.redirectFailure(w, r, err.Error())
		return
	}

	token, _, err := h.authService.LoginWithGoogle(r.Context(), profile)
	if err != nil {
		h.redirectFailure(w, r, err.Error())
		return
	}

	http.Redirect(w, r, h.frontendURL+"?token="+token, http.StatusSeeOther)
}

// Logout godoc
// @Summary      Log the authenticated user out
// @Description  Stateless no-op: tokens stay valid until expiry, the client discards its copy.
// @Tags         auth
// @Success      200
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	writeMessage(w, http.StatusOK, "Logged out")
}

func (h *AuthHandler) redirectFailure(w http.ResponseWriter, r *http.Request, reason string) {
	log.Printf("google sign-in failed: %s", reason)
	http.Redirect(w, r, h.frontendURL+"/login/failed", http.StatusSeeOther)
}

func (h *AuthHandler) expireStateCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{Name: stateCookieName, MaxAge: -1, Path: "/"})
}

func randomState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}
