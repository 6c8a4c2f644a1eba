package routers

import (
	"patient-records-service/internal/app/config"
	"patient-records-service/internal/app/delivery/http/controllers"
	"patient-records-service/internal/app/delivery/http/middlewares"
	"patient-records-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachUploadRoutes(router chi.Router, internalConfig *config.InternalConfig, middlewares *middlewares.Middlewares, uploadController *controllers.UploadController) {
	router.With(middlewares.BodyLimit(internalConfig.App.MaxUploadSizeInMB)).Post("/", uploadController.UploadDocuments)
}

func attachBlobRoutes(router chi.Router, blobController *controllers.BlobController) {
	router.Get("/{"+constvars.URLParamBlobID+"}", blobController.GetBlob)
}
