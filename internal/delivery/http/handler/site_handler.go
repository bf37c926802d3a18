package handler

import (
	"net/http"

	"mediconnect/config"
	"mediconnect/internal/delivery/dto"
	"mediconnect/pkg/response"
)

type SiteHandler struct {
	site dto.SiteResponse
}

func NewSiteHandler(cfg config.SiteConfig) *SiteHandler {
	return &SiteHandler{
		site: dto.SiteResponse{
			Name:        cfg.Name,
			Description: cfg.Description,
			Links:       cfg.Links,
			Contact: dto.ContactInfo{
				Phone: cfg.Phone,
				Email: cfg.Email,
			},
		},
	}
}

func (h *SiteHandler) GetSite(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, "Site information retrieved successfully", h.site)
}
