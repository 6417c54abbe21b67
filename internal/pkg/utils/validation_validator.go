package utils

import (
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"mna-assessment-service/internal/pkg/constvars"
	"mna-assessment-service/internal/pkg/dto/requests"
)

var (
	validate *validator.Validate
	nowFunc  = time.Now
)

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(jsonFieldName)
	validate.RegisterStructValidation(validateSubmitAssessment, requests.SubmitAssessment{})
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "" || name == "-" {
		return field.Name
	}
	return name
}

// validateSubmitAssessment checks the subject fields of named submissions.
// Anonymous submissions skip them since they are replaced before storage.
func validateSubmitAssessment(sl validator.StructLevel) {
	request := sl.Current().Interface().(requests.SubmitAssessment)
	if request.IsAnonymous {
		return
	}

	if strings.TrimSpace(request.Name) == "" {
		sl.ReportError(request.Name, "name", "Name", "required", "")
	}

	if request.Gender != constvars.GenderMale && request.Gender != constvars.GenderFemale {
		sl.ReportError(request.Gender, "gender", "Gender", "subject_gender", "")
	}

	switch dob, err := ParseDateOfBirth(request.DOB); {
	case err != nil:
		sl.ReportError(request.DOB, "dob", "DOB", "date_of_birth", "")
	case dob == nil:
		sl.ReportError(request.DOB, "dob", "DOB", "required", "")
	case IsFutureDate(*dob, nowFunc()):
		sl.ReportError(request.DOB, "dob", "DOB", "not_future_date", "")
	}
}
