package controller

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
	"strings"
	"weather-view/internal/application/view"
	"weather-view/internal/domain/model"
	"weather-view/internal/domain/usecase/weather"
	"weather-view/pkg/log"
	"weather-view/pkg/msg"
)

// UnitCookie keeps the display unit chosen by each browser.
const UnitCookie = "weather_unit"

const unitCookieMaxAge = 365 * 24 * 60 * 60

type WeatherController struct {
	api     *echo.Group
	useCase weather.UseCase
}

func NewWeatherController(api *echo.Group, useCase weather.UseCase) *WeatherController {
	return &WeatherController{api: api, useCase: useCase}
}

// InitWeatherRoutes initializes weather routes
func (controller *WeatherController) InitWeatherRoutes() {
	controller.api.GET("/", controller.Page)
	controller.api.GET("/weather", controller.GetWeather)
	controller.api.POST("/weather/unit", controller.ChangeUnit)
	controller.api.POST("/weather/unit/toggle", controller.ToggleUnit)
}

// Page godoc
// @Summary Weather page
// @Description Render the weather page for the configured city. Shows a loading indicator until the first fetch succeeds
// @Tags weather
// @Produce html
// @Param unit query string false "Display unit for this request: C, F, celsius or fahrenheit"
// @Success 200 {string} string "HTML page"
// @Router / [get]
func (controller *WeatherController) Page(c echo.Context) error {
	return c.Render(http.StatusOK, view.PageTemplate, view.PageData{
		BasePath: strings.TrimSuffix(c.Path(), "/"),
		Page:     controller.useCase.Render(unitFromRequest(c)),
	})
}

// GetWeather godoc
// @Summary Get weather view
// @Description Retrieve the current page model: state, selected unit and, once loaded, the header, air quality and forecast panels
// @Tags weather
// @Produce json
// @Param unit query string false "Display unit for this request: C, F, celsius or fahrenheit"
// @Success 200 {object} model.WeatherPage "Current page model"
// @Router /weather [get]
func (controller *WeatherController) GetWeather(c echo.Context) error {
	return c.JSON(http.StatusOK, controller.useCase.Render(unitFromRequest(c)))
}

// ChangeUnit godoc
// @Summary Change display unit
// @Description Select Celsius or Fahrenheit for this client. The choice is kept in a cookie. Form posts are redirected back to the page, JSON requests get the updated page model
// @Tags weather
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param unit body model.ChangeUnitDTO true "Display unit: C, F, celsius or fahrenheit"
// @Success 200 {object} model.WeatherPage "Updated page model"
// @Success 303 "Redirect to the page after a form post"
// @Failure 400 {object} map[string]string "Invalid request body or unit"
// @Router /weather/unit [post]
func (controller *WeatherController) ChangeUnit(c echo.Context) error {
	var dto model.ChangeUnitDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	dto.Unit = strings.ToLower(strings.TrimSpace(dto.Unit))
	if err := c.Validate(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": model.ErrInvalidUnit.Error()})
	}

	unit, err := model.ParseDisplayUnit(dto.Unit)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	return controller.respond(c, "/weather/unit", unit)
}

// ToggleUnit godoc
// @Summary Toggle display unit
// @Description Switch this client between Celsius and Fahrenheit without fetching new data
// @Tags weather
// @Produce json
// @Success 200 {object} model.WeatherPage "Updated page model"
// @Success 303 "Redirect to the page after a form post"
// @Router /weather/unit/toggle [post]
func (controller *WeatherController) ToggleUnit(c echo.Context) error {
	return controller.respond(c, "/weather/unit/toggle", unitFromRequest(c).Other())
}

// respond stores unit for the client, then sends browsers back to the page and everybody else
// the fresh page model.
func (controller *WeatherController) respond(c echo.Context, route string, unit model.DisplayUnit) error {
	home := strings.TrimSuffix(c.Path(), route) + "/"

	c.SetCookie(&http.Cookie{
		Name:     UnitCookie,
		Value:    string(unit),
		Path:     home,
		MaxAge:   unitCookieMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	log.Debug(msg.GetMessage("weather.unit.changed", string(unit)),
		zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)))

	if isFormPost(c.Request()) {
		return c.Redirect(http.StatusSeeOther, home)
	}
	return c.JSON(http.StatusOK, controller.useCase.Render(unit))
}

// unitFromRequest reads the unit from ?unit=, then from the cookie, and defaults to Celsius.
func unitFromRequest(c echo.Context) model.DisplayUnit {
	if unit, err := model.ParseDisplayUnit(c.QueryParam("unit")); err == nil {
		return unit
	}
	if cookie, err := c.Cookie(UnitCookie); err == nil {
		if unit, err := model.ParseDisplayUnit(cookie.Value); err == nil {
			return unit
		}
	}
	return model.Celsius
}

func isFormPost(req *http.Request) bool {
	contentType := req.Header.Get(echo.HeaderContentType)
	return strings.HasPrefix(contentType, echo.MIMEApplicationForm) ||
		strings.HasPrefix(contentType, echo.MIMEMultipartForm)
}
