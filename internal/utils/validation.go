package utils

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// FormatValidationError flattens validator errors into one readable line.
func FormatValidationError(err error) string {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		messages = append(messages, fmt.Sprintf("%s failed on %s", e.Field(), e.Tag()))
	}
	return strings.Join(messages, ", ")
}

// BindAndValidate binds the request body to a struct. If binding or
// validation fails, it sends a BadRequest response and returns false.
func BindAndValidate(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		if _, ok := err.(validator.ValidationErrors); ok {
			BadRequest(c, "Validation failed: "+FormatValidationError(err))
		} else {
			BadRequest(c, "Invalid request payload: "+err.Error())
		}
		return false
	}
	return true
}
