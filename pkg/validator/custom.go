package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var hhmmRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

var weekdays = map[string]struct{}{
	"monday": {}, "tuesday": {}, "wednesday": {}, "thursday": {},
	"friday": {}, "saturday": {}, "sunday": {},
}

func RegisterCustomValidations(validate *validator.Validate) {
	validate.RegisterValidation("lat", validateLat)
	validate.RegisterValidation("lng", validateLng)
	validate.RegisterValidation("radius_m", validateRadiusM)
	validate.RegisterValidation("hhmm", validateHHMM)
	validate.RegisterValidation("weekday", validateWeekday)
}

func validateLat(fl validator.FieldLevel) bool {
	lat := fl.Field().Float()
	return lat >= -90.0 && lat <= 90.0
}

func validateLng(fl validator.FieldLevel) bool {
	lng := fl.Field().Float()
	return lng >= -180.0 && lng <= 180.0
}

func validateRadiusM(fl validator.FieldLevel) bool {
	radius := fl.Field().Float()
	return radius >= 10.0 && radius <= 5000.0
}

func validateHHMM(fl validator.FieldLevel) bool {
	return hhmmRe.MatchString(fl.Field().String())
}

func validateWeekday(fl validator.FieldLevel) bool {
	_, ok := weekdays[fl.Field().String()]
	return ok
}
