package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"resumeshot-backend/internal/catalog"
	"resumeshot-backend/internal/upload"
)

type OptionsHandler struct{}

func NewOptionsHandler() *OptionsHandler {
	return &OptionsHandler{}
}

type optionsResponse struct {
	MaleSuits       []catalog.OptionDescriptor     `json:"maleSuits"`
	FemaleSuits     []catalog.OptionDescriptor     `json:"femaleSuits"`
	Backgrounds     []catalog.OptionDescriptor     `json:"backgrounds"`
	Framings        []catalog.OptionDescriptor     `json:"framings"`
	Angles          []catalog.OptionDescriptor     `json:"angles"`
	Expressions     []catalog.OptionDescriptor     `json:"expressions"`
	Retouchings     []catalog.OptionDescriptor     `json:"retouchings"`
	SpecialRequests []catalog.SpecialRequestPreset `json:"specialRequests"`
	AspectRatios    []catalog.AspectRatioOption    `json:"aspectRatios"`
	SupportedMime   []string                       `json:"supportedMimeTypes"`
	MaxUploadBytes  int64                          `json:"maxUploadBytes"`
}

// List serves the full option catalog. The first entry of each list is the
// default selection.
func (h *OptionsHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, optionsResponse{
		MaleSuits:       catalog.AttireFor(catalog.GenderMale),
		FemaleSuits:     catalog.AttireFor(catalog.GenderFemale),
		Backgrounds:     catalog.Backgrounds(),
		Framings:        catalog.Framings(),
		Angles:          catalog.Angles(),
		Expressions:     catalog.Expressions(),
		Retouchings:     catalog.Retouchings(),
		SpecialRequests: catalog.SpecialRequests(),
		AspectRatios:    catalog.AspectRatios(),
		SupportedMime:   upload.SupportedMimeTypes(),
		MaxUploadBytes:  upload.MaxImageBytes,
	})
}
