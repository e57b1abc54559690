package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Bucket naming rules per the Cloud Storage documentation; the object part
// only needs to be non-empty.
var gcsURIRegex = regexp.MustCompile(`^gs://[a-z0-9][a-z0-9._-]{1,220}[a-z0-9]/.+$`)

func gcsURIValidator(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	return gcsURIRegex.MatchString(val)
}
