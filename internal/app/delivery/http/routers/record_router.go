package routers

import (
	"patient-records-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachRecordRoutes(router chi.Router, recordController *controllers.RecordController) {
	router.Get("/", recordController.GetRecords)
	router.Get("/html", recordController.GetRecordsHTML)
}
