package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/color-palette/api/datastore"
	"github.com/color-palette/api/models"
	"github.com/color-palette/api/palette"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
)

// parseBaseColors parses every entry. With skipInvalid, malformed entries
// are reported back instead of failing the request.
func parseBaseColors(values []string, skipInvalid bool) ([]palette.Color, []models.RejectedColor, error) {
	var bases []palette.Color
	var rejected []models.RejectedColor

	for i, v := range values {
		c, err := palette.ParseHex(v)
		if err != nil {
			if !skipInvalid {
				return nil, nil, fmt.Errorf("colors[%d]: %w", i, err)
			}
			rejected = append(rejected, models.RejectedColor{Index: i, Value: v, Reason: err.Error()})
			continue
		}
		bases = append(bases, c)
	}

	if len(bases) == 0 && len(rejected) > 0 {
		return nil, rejected, fmt.Errorf("no valid base colors: %w", palette.ErrInvalidFormat)
	}
	return bases, rejected, nil
}

func queryInt(q url.Values, key string) (int, error) {
	raw := q.Get(key)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("query parameter %s must be an integer", key)
	}
	return n, nil
}

func paletteRequestFromQuery(q url.Values) (models.PaletteRequest, error) {
	req := models.PaletteRequest{Colors: q["color"]}

	var err error
	if req.ActiveIndex, err = queryInt(q, "active"); err != nil {
		return req, err
	}
	if req.AnalogousCount, err = queryInt(q, "analogous"); err != nil {
		return req, err
	}
	if req.ShadeCount, err = queryInt(q, "shades"); err != nil {
		return req, err
	}
	if req.TintCount, err = queryInt(q, "tints"); err != nil {
		return req, err
	}
	if raw := q.Get("skipInvalid"); raw != "" {
		if req.SkipInvalid, err = strconv.ParseBool(raw); err != nil {
			return req, errors.New("query parameter skipInvalid must be a boolean")
		}
	}
	return req, nil
}

func scaleRequestFromQuery(q url.Values) (models.ScaleRequest, error) {
	req := models.ScaleRequest{Colors: q["color"], PaletteType: q.Get("type")}

	var err error
	req.ColorSteps, err = queryInt(q, "steps")
	return req, err
}

// decodeRequest fills dst from the query string on GET and the JSON body
// on POST. It reports false once it has answered the request itself.
func decodeRequest[T any](app *Application, w http.ResponseWriter, r *http.Request, dst *T, fromQuery func(url.Values) (T, error)) bool {
	switch r.Method {
	case http.MethodGet:
		req, err := fromQuery(r.URL.Query())
		if err != nil {
			app.badRequest(w, r, err)
			return false
		}
		*dst = req
	case http.MethodPost:
		if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
			app.badJSONRequest(w, r, err)
			return false
		}
	default:
		app.methodNotAllowed(w, r, ErrGETOrPOST, http.MethodGet, http.MethodPost)
		return false
	}

	if err := validate.Validate(dst); err != nil {
		app.validationFailed(w, r, err)
		return false
	}
	return true
}

// GET|POST /v1/palettes
func (app *Application) generatePalettes(w http.ResponseWriter, r *http.Request) {
	var req models.PaletteRequest
	if !decodeRequest(app, w, r, &req, paletteRequestFromQuery) {
		return
	}

	bases, rejected, err := parseBaseColors(req.Colors, req.SkipInvalid)
	if err != nil {
		app.invalidColor(w, r, err)
		return
	}

	selection, err := palette.NewSelection(bases, req.ActiveIndex)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.PaletteResponse{
		ActiveIndex: selection.ActiveIndex(),
		Palettes:    selection.Palettes(req.Options()),
		Rejected:    rejected,
	})
}

// GET|POST /v1/scales
func (app *Application) generateScales(w http.ResponseWriter, r *http.Request) {
	var req models.ScaleRequest
	if !decodeRequest(app, w, r, &req, scaleRequestFromQuery) {
		return
	}

	scaleType, err := palette.ParseScaleType(req.PaletteType)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	steps := req.ColorSteps
	if steps == 0 {
		steps = palette.DefaultSteps
	}

	bases, _, err := parseBaseColors(req.Colors, false)
	if err != nil {
		app.invalidColor(w, r, err)
		return
	}

	colors, err := palette.ScaleAll(bases, scaleType, steps)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.ScaleResponse{
		PaletteType: string(scaleType),
		ColorSteps:  steps,
		Colors:      palette.Hexes(colors),
	})
}

// GET /v1/colors/inspect?hex=
func (app *Application) inspectColor(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r)
		return
	}

	c, err := palette.ParseHex(r.URL.Query().Get("hex"))
	if err != nil {
		app.invalidColor(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.NewSwatch(c))
}

// GET /v1/colors/random
func (app *Application) getRandomColor(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r)
		return
	}

	base := palette.Random(nil)
	writeJSON(w, http.StatusOK, models.RandomColorResponse{
		Color:   models.NewSwatch(base),
		Palette: palette.Build(base, app.PaletteOptions),
	})
}

// GET /v1/colors/daily
func (app *Application) getDailyColor(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r)
		return
	}

	dailyColor, err := app.DailyColorRepo.GetToday()
	if err != nil {
		var noRows datastore.NoRowsError
		if errors.As(err, &noRows) {
			app.notFound(w, r, errors.New("no daily color available for today"))
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.NewDailyColorResponse(dailyColor, app.PaletteOptions))
}

// GET /v1/colors/daily/all
func (app *Application) getAllDailyColors(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r)
		return
	}

	dailyColors, err := app.DailyColorRepo.GetAll()
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	responses := lo.Map(dailyColors, func(dc models.DailyColor, _ int) models.DailyColorResponse {
		return models.NewDailyColorResponse(dc, app.PaletteOptions)
	})

	writeJSON(w, http.StatusOK, responses)
}

// POST /v1/admin/colors/generate - Store today's color now (Admin only)
func (app *Application) generateDailyColor(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r)
		return
	}

	dailyColor, created, err := app.DailyColors.GenerateDailyColor()
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	response := models.NewDailyColorResponse(dailyColor, app.PaletteOptions)
	if !created {
		writeJSON(w, http.StatusOK, map[string]any{
			"message": "Daily color already exists for today",
			"color":   response,
		})
		return
	}

	user, _ := userFromContext(r.Context())
	log.WithFields(log.Fields{"user_id": user.UserID, "hex": response.Hex}).Info("Daily color generated by admin")

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Daily color generated",
		"color":   response,
	})
}
