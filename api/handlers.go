package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/color-palette/api/datastore"
	"github.com/color-palette/api/models"
	log "github.com/sirupsen/logrus"
)

// GET /
func (app *Application) home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		app.notFound(w, r, fmt.Errorf("no route for %s", r.URL.Path))
		return
	}
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "Color Palette API")
}

// GET /healthz
func (app *Application) healthz(w http.ResponseWriter, r *http.Request) {
	if app.DB != nil {
		if err := app.DB.Ping(); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable", "database": err.Error()})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// POST /v1/auth/signup
func (app *Application) signup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r)
		return
	}

	var signupReq models.UserSignupRequest
	if err := json.NewDecoder(r.Body).Decode(&signupReq); err != nil {
		app.badJSONRequest(w, r, err)
		return
	}

	if err := validate.Validate(signupReq); err != nil {
		app.validationFailed(w, r, err)
		return
	}

	if strings.ContainsAny(signupReq.Username, " \t\n") {
		app.badRequest(w, r, errors.New("username cannot contain spaces"))
		return
	}

	if _, err := app.UserRepo.GetUserByEmail(signupReq.Email); err == nil {
		app.userAlreadyExists(w, r, errors.New("there is already a user with this email address"))
		return
	}

	if _, err := app.UserRepo.GetUserByUsername(signupReq.Username); err == nil {
		app.userAlreadyExists(w, r, errors.New("username already taken"))
		return
	}

	kind := models.Member
	if app.Config.IsAdminEmail(signupReq.Email) {
		kind = models.Admin
	}

	newUser, err := models.NewUser(signupReq, kind)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	storedUser, err := app.UserRepo.Create(newUser)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	log.WithFields(log.Fields{"user_id": storedUser.UserID, "kind": storedUser.Kind}).Info("User signed up")
	writeJSON(w, http.StatusCreated, storedUser)
}

// POST /v1/auth/login
func (app *Application) login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r)
		return
	}

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		app.badJSONRequest(w, r, err)
		return
	}

	if err := validate.Validate(creds); err != nil {
		app.validationFailed(w, r, err)
		return
	}

	user, err := app.UserRepo.ValidateAndGetUser(creds)
	if err != nil {
		if errors.Is(err, datastore.ErrInvalidLogin) {
			app.invalidCredentials(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	accessExpiry := time.Now().Add(time.Second * time.Duration(app.Config.JwtAccessDuration))
	token, err := models.NewAccessToken(user, app.Config.JwtSecret, accessExpiry)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	http.SetCookie(w, app.accessCookie(token, accessExpiry))
	writeJSON(w, http.StatusOK, user)
}

// POST /v1/auth/logout
func (app *Application) logout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r)
		return
	}

	cookie := app.accessCookie("", time.Unix(0, 0))
	cookie.MaxAge = -1
	http.SetCookie(w, cookie)
	w.WriteHeader(http.StatusNoContent)
}

func (app *Application) accessCookie(value string, expires time.Time) *http.Cookie {
	sameSite := http.SameSiteStrictMode
	if app.Config.JwtDomain == "" {
		sameSite = http.SameSiteNoneMode
	}

	return &http.Cookie{
		Name:     models.JWT.ACCESS_COOKIE_NAME,
		Value:    value,
		HttpOnly: true,
		Secure:   true,
		SameSite: sameSite,
		Path:     "/",
		Domain:   app.Config.JwtDomain,
		Expires:  expires,
	}
}

// GET /v1/users/me
func (app *Application) getCurrentUser(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r)
		return
	}

	user, ok := userFromContext(r.Context())
	if !ok {
		app.invalidAuthorization(w, r, errors.New("no user in request context"))
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// GET /v1/users (Admin only)
func (app *Application) getAllUsers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r)
		return
	}

	users, err := app.UserRepo.GetAllUsers()
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	if users == nil {
		users = []models.User{}
	}

	writeJSON(w, http.StatusOK, users)
}
