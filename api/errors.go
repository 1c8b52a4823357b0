package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"runtime"
	"strings"
)

// getCallerInfo reports the handler that answered with an error.
func getCallerInfo() string {
	_, file, line, ok := runtime.Caller(3)
	if !ok {
		return "[unknown]"
	}
	return fmt.Sprintf("[%s:%d]", filepath.Base(file), line)
}

type HandlerError struct {
	ErrorName        string            `json:"errorName"`
	Description      string            `json:"description"`
	PossibleSolution string            `json:"possibleSolution"`
	CallerInfo       string            `json:"callerInfo"`
	Fields           map[string]string `json:"fields,omitempty"`
}

var ErrGET = errors.New("GET method required for this endpoint")
var ErrPOST = errors.New("POST method required for this endpoint")
var ErrGETOrPOST = errors.New("GET or POST method required for this endpoint")
var ErrInvalidPrivilege = errors.New("invalid authentication privileges")

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, handlerErr HandlerError) {
	handlerErr.CallerInfo = getCallerInfo()
	writeJSON(w, status, handlerErr)
}

func (app *Application) invalidCredentials(w http.ResponseWriter, r *http.Request, err error) {
	writeError(w, http.StatusUnauthorized, HandlerError{
		ErrorName:        "Error Authorizing User",
		Description:      err.Error(),
		PossibleSolution: "Retry with proper credentials",
	})
}

func (app *Application) invalidAuthorization(w http.ResponseWriter, r *http.Request, err error) {
	writeError(w, http.StatusUnauthorized, HandlerError{
		ErrorName:        "Error Authenticating for Endpoint",
		Description:      "Invalid Authentication",
		PossibleSolution: "Log in again to refresh your access token cookie",
	})
}

func (app *Application) forbidden(w http.ResponseWriter, r *http.Request, err error) {
	writeError(w, http.StatusForbidden, HandlerError{
		ErrorName:        "Insufficient Privileges",
		Description:      err.Error(),
		PossibleSolution: "Ask an administrator to perform this action",
	})
}

func (app *Application) methodNotAllowed(w http.ResponseWriter, r *http.Request, err error, allowed ...string) {
	w.Header().Set("Allow", strings.Join(allowed, ", "))
	writeError(w, http.StatusMethodNotAllowed, HandlerError{
		ErrorName:        "Method Not Allowed",
		Description:      err.Error() + " you used: " + r.Method,
		PossibleSolution: "Use " + strings.Join(allowed, " or ") + " method",
	})
}

func (app *Application) requirePostMethod(w http.ResponseWriter, r *http.Request) {
	app.methodNotAllowed(w, r, ErrPOST, http.MethodPost)
}

func (app *Application) requireGetMethod(w http.ResponseWriter, r *http.Request) {
	app.methodNotAllowed(w, r, ErrGET, http.MethodGet)
}

func (app *Application) badJSONRequest(w http.ResponseWriter, r *http.Request, err error) {
	writeError(w, http.StatusBadRequest, HandlerError{
		ErrorName:        "Error Parsing JSON",
		Description:      err.Error(),
		PossibleSolution: "Double check your JSON formatting",
	})
}

func (app *Application) validationFailed(w http.ResponseWriter, r *http.Request, err error) {
	handlerErr := HandlerError{
		ErrorName:        "Validation Failed",
		Description:      err.Error(),
		PossibleSolution: "Fix the listed fields and retry",
	}
	var verr *ValidationError
	if errors.As(err, &verr) {
		handlerErr.Fields = verr.Fields
	}
	writeError(w, http.StatusBadRequest, handlerErr)
}

func (app *Application) invalidColor(w http.ResponseWriter, r *http.Request, err error) {
	writeError(w, http.StatusBadRequest, HandlerError{
		ErrorName:        "Invalid Color",
		Description:      err.Error(),
		PossibleSolution: "Use a 3 or 6 digit hex color such as #3498db or #abc",
	})
}

func (app *Application) internalServerError(w http.ResponseWriter, r *http.Request, err error) {
	writeError(w, http.StatusInternalServerError, HandlerError{
		ErrorName:        "Internal Server Error",
		Description:      err.Error(),
		PossibleSolution: "Internal Server Error requiring support",
	})
}

func (app *Application) notFound(w http.ResponseWriter, r *http.Request, err error) {
	writeError(w, http.StatusNotFound, HandlerError{
		ErrorName:        "Not Found",
		Description:      err.Error(),
		PossibleSolution: "Check the resource exists and retry later",
	})
}

func (app *Application) userAlreadyExists(w http.ResponseWriter, r *http.Request, err error) {
	writeError(w, http.StatusConflict, HandlerError{
		ErrorName:        "User Exists",
		Description:      err.Error(),
		PossibleSolution: "Log in with the existing account or pick another",
	})
}

func (app *Application) badRequest(w http.ResponseWriter, r *http.Request, err error) {
	writeError(w, http.StatusBadRequest, HandlerError{
		ErrorName:        "Bad Request",
		Description:      err.Error(),
		PossibleSolution: "Check your request parameters",
	})
}

func (app *Application) tooManyRequests(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Retry-After", "1")
	writeError(w, http.StatusTooManyRequests, HandlerError{
		ErrorName:        "Too Many Requests",
		Description:      "rate limit exceeded",
		PossibleSolution: "Slow down and retry after the Retry-After delay",
	})
}
