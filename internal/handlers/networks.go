package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jaurre/social-savvy-ai/internal/imagegen"
	"github.com/jaurre/social-savvy-ai/internal/profile"
)

type NetworksHandler struct{}

func NewNetworksHandler() *NetworksHandler {
	return &NetworksHandler{}
}

type NetworkFormatResponse struct {
	Network     string `json:"network"`
	AspectRatio string `json:"aspect_ratio"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
}

// GetAspectRatio reports the image format used for a network. Unknown
// networks get the square default rather than an error.
func (h *NetworksHandler) GetAspectRatio(c echo.Context) error {
	network := profile.Network(c.Param("network"))
	width, height := imagegen.DimensionsForNetwork(network)

	return c.JSON(http.StatusOK, NetworkFormatResponse{
		Network:     string(network),
		AspectRatio: imagegen.AspectRatioForNetwork(network),
		Width:       width,
		Height:      height,
	})
}

// ListNetworks enumerates the supported networks with their formats.
func (h *NetworksHandler) ListNetworks(c echo.Context) error {
	out := make([]NetworkFormatResponse, 0, len(profile.AllNetworks))
	for _, network := range profile.AllNetworks {
		width, height := imagegen.DimensionsForNetwork(network)
		out = append(out, NetworkFormatResponse{
			Network:     string(network),
			AspectRatio: imagegen.AspectRatioForNetwork(network),
			Width:       width,
			Height:      height,
		})
	}
	return c.JSON(http.StatusOK, out)
}
