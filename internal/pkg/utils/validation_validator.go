package utils

import (
	"patient-records-service/internal/app/models"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("folder_type", validateFolderType)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateFolderType(fl validator.FieldLevel) bool {
	return models.FolderItemType(fl.Field().String()).IsValid()
}
