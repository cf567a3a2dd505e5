package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// BindForm binds a form payload. The boolean mirrors BindJSON-style helpers:
// false means the request was already answered with a flash redirect.
func BindForm(ctx *gin.Context, out interface{}, backTo string) bool {
	err := ctx.ShouldBind(out)

	if err != nil {
		RedirectWithFlash(ctx, backTo, "danger", formErrorMessage(err))
		return false
	}

	return true
}

func formErrorMessage(err error) string {
	var validatorErrs validator.ValidationErrors

	if errors.As(err, &validatorErrs) && len(validatorErrs) > 0 {
		fieldErr := validatorErrs[0]

		switch fieldErr.Tag() {
		case "required":
			return "Kolom " + strings.ToLower(fieldErr.Field()) + " wajib diisi"
		case "email":
			return "Format email tidak valid"
		case "min":
			return "Kolom " + strings.ToLower(fieldErr.Field()) + " minimal " + fieldErr.Param() + " karakter"
		}
	}

	return "Data formulir tidak valid"
}
