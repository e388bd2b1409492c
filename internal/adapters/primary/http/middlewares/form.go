package middlewares

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	astroUsecase "github.com/admin/jyotish/vedic-client/internal/usecases/astro"
)

// FormHeader заголовок с идентификатором формы клиента
const FormHeader = "X-Form-ID"

var ErrFormIDRequired = errors.New("form id is required: set " + FormHeader + " header or ?form=")

// FormID идентификатор формы клиента: заголовок X-Form-ID, затем ?form=
func FormID(c *gin.Context) string {
	if id := strings.TrimSpace(c.GetHeader(FormHeader)); id != "" {
		return id
	}
	return strings.TrimSpace(c.Query("form"))
}

// FormContext контекст запроса, в котором результаты учитываются по форме клиента
func FormContext(c *gin.Context) context.Context {
	return astroUsecase.WithForm(c.Request.Context(), FormID(c))
}
