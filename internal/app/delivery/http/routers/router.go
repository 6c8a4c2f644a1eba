package routers

import (
	"fmt"
	"patient-records-service/internal/app/config"
	"patient-records-service/internal/app/delivery/http/controllers"
	"patient-records-service/internal/app/delivery/http/middlewares"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	verificationController *controllers.VerificationController,
	recordController *controllers.RecordController,
	uploadController *controllers.UploadController,
	blobController *controllers.BlobController,
	healthController *controllers.HealthController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   strings.Split(internalConfig.App.AllowedOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Get("/health", healthController.Health)

			r.Group(func(r chi.Router) {
				r.Use(middlewares.Session)

				r.Route("/verification", func(r chi.Router) {
					attachVerificationRoutes(r, internalConfig, middlewares, verificationController)
				})

				r.Route("/records", func(r chi.Router) {
					attachRecordRoutes(r, recordController)
				})

				r.Route("/uploads", func(r chi.Router) {
					attachUploadRoutes(r, internalConfig, middlewares, uploadController)
				})

				if blobController != nil {
					r.Route("/blobs", func(r chi.Router) {
						attachBlobRoutes(r, blobController)
					})
				}
			})
		})
	})
}
