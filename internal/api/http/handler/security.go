package handler

import (
	"net/http"

	"github.com/dtroode/sociable-server/internal/logger"
)

// Security handles the captcha stub endpoint.
type Security struct {
	logger *logger.Logger
}

func NewSecurity(logger *logger.Logger) *Security {
	return &Security{logger: logger}
}

type captchaResponse struct {
	URL string `json:"url"`
}

// CaptchaURL returns a placeholder captcha image URL. No captcha
// verification exists server-side.
func (h *Security) CaptchaURL(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.logger, http.StatusOK, captchaResponse{
		URL: "https://social-network.samuraijs.com/activecontent/images/captcha.jpg",
	})
}
