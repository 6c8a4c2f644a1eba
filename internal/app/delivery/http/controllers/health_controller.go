package controllers

import (
	"net/http"
	"patient-records-service/internal/app/config"
	"patient-records-service/internal/pkg/constvars"
	"patient-records-service/internal/pkg/dto/responses"
	"patient-records-service/internal/pkg/utils"
)

type HealthController struct {
	InternalConfig *config.InternalConfig
}

func NewHealthController(internalConfig *config.InternalConfig) *HealthController {
	return &HealthController{InternalConfig: internalConfig}
}

func (ctrl *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HealthyMessage, responses.HealthCheck{
		Status:  constvars.HealthyMessage,
		Version: ctrl.InternalConfig.App.Version,
	})
}
