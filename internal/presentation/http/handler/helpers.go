package handler

import (
	"errors"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/dealerhub/sales-api/internal/application/service"
	"github.com/dealerhub/sales-api/internal/domain/entity"
	"github.com/dealerhub/sales-api/internal/presentation/http/dto/response"
	"github.com/dealerhub/sales-api/internal/presentation/http/middleware"
	"github.com/dealerhub/sales-api/pkg/apperror"
	"github.com/dealerhub/sales-api/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// GetUserID extracts the user ID from the Gin context
func GetUserID(c *gin.Context) *uuid.UUID {
	userIDVal, exists := c.Get(middleware.UserIDKey)
	if !exists {
		return nil
	}
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return nil
	}
	return &userID
}

// IsAdmin checks if the user has the admin role
func IsAdmin(c *gin.Context) bool {
	return slices.Contains(c.GetStringSlice(middleware.UserRolesKey), entity.RoleAdmin)
}

// actor resolves the authenticated user, writing a 401 when there is none
func actor(c *gin.Context) (service.Actor, bool) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return service.Actor{}, false
	}
	return service.Actor{UserID: *userID, IsAdmin: IsAdmin(c)}, true
}

// pathID parses the :id path parameter, writing a 400 when it is not a UUID
func pathID(c *gin.Context, resource string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid "+resource+" ID")
		return uuid.Nil, false
	}
	return id, true
}

// pageParams reads page and per_page, leaving bad values to Validate's defaults
func pageParams(c *gin.Context) *pagination.PaginationParams {
	page, _ := strconv.Atoi(c.Query("page"))
	perPage, _ := strconv.Atoi(c.Query("per_page"))
	params := &pagination.PaginationParams{Page: page, PerPage: perPage}
	params.Validate()
	return params
}

// optionalUUID reads a UUID query parameter; absent or malformed values give nil
func optionalUUID(c *gin.Context, key string) *uuid.UUID {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	return &id
}

// bindJSON decodes the body, writing a 422 with field errors for failed
// binding rules and a 400 for malformed JSON
func bindJSON(c *gin.Context, req interface{}) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fieldErrors := make([]apperror.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field:   jsonPath(fe.Namespace()),
				Message: "failed on the '" + fe.Tag() + "' rule",
			})
		}
		response.Error(c, apperror.NewValidationError(fieldErrors))
		return false
	}

	response.BadRequest(c, "Invalid request body")
	return false
}

// jsonPath turns "QuotationRequest.QuotationPricingRequest.Items[0].Name"
// into "items[0].name", dropping request struct names
func jsonPath(namespace string) string {
	parts := strings.Split(namespace, ".")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.HasSuffix(p, "Request") {
			continue
		}
		out = append(out, snakeCase(p))
	}
	return strings.Join(out, ".")
}

func snakeCase(s string) string {
	var b strings.Builder
	prevLower := false
	for _, r := range s {
		if unicode.IsUpper(r) {
			if prevLower {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			prevLower = false
			continue
		}
		b.WriteRune(r)
		prevLower = unicode.IsLower(r) || unicode.IsDigit(r)
	}
	return b.String()
}
