package routers

import (
	"patient-records-service/internal/app/config"
	"patient-records-service/internal/app/delivery/http/controllers"
	"patient-records-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachVerificationRoutes(router chi.Router, internalConfig *config.InternalConfig, middlewares *middlewares.Middlewares, verificationController *controllers.VerificationController) {
	bodyLimit := middlewares.BodyLimit(int64(internalConfig.App.RequestBodyLimitInMegabyte))

	router.Get("/status", verificationController.Status)
	router.With(bodyLimit).Post("/id", verificationController.SubmitID)
	router.Post("/confirm", verificationController.Confirm)
	router.Post("/deny", verificationController.Deny)
	router.With(bodyLimit, middlewares.VerifyCodeRateLimit).Post("/code", verificationController.SubmitCode)
	router.Post("/resend", verificationController.Resend)
	router.Post("/logout", verificationController.Logout)
	router.Post("/reset", verificationController.Logout)
}
