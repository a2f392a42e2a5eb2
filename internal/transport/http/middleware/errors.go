package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"staff-api/internal/entities"
	"staff-api/internal/transport/http/dto"
	"staff-api/internal/transport/http/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorHandler renders every error returned by a handler or middleware as
// dto.ErrorResponse with the mapped status code.
func ErrorHandler(log *zap.SugaredLogger) fiber.ErrorHandler {
	log = log.Named("http.errors")
	return func(c *fiber.Ctx, err error) error {
		resp := classify(err)
		resp.Timestamp = time.Now().UTC().Format(time.RFC3339)
		resp.Path = c.OriginalURL()

		fields := []interface{}{
			"status", resp.StatusCode,
			"path", resp.Path,
			"request_id", requestID(c),
			"error", err.Error(),
		}
		if resp.StatusCode >= http.StatusInternalServerError {
			log.Errorw("request failed", fields...)
		} else {
			log.Warnw("request rejected", fields...)
		}

		return c.Status(resp.StatusCode).JSON(resp)
	}
}

func classify(err error) dto.ErrorResponse {
	var (
		verr *validation.Error
		ferr *fiber.Error
	)

	switch {
	case errors.As(err, &verr):
		return dto.ErrorResponse{StatusCode: http.StatusBadRequest, Message: "Validation failed", Errors: verr.Messages}
	case errors.As(err, &ferr):
		return dto.ErrorResponse{StatusCode: ferr.Code, Message: ferr.Message}
	case errors.Is(err, entities.ErrInvalidArgument):
		return dto.ErrorResponse{StatusCode: http.StatusBadRequest, Message: err.Error()}
	case errors.Is(err, entities.ErrUserNotFound), errors.Is(err, entities.ErrEmployeeNotFound):
		return dto.ErrorResponse{StatusCode: http.StatusNotFound, Message: err.Error()}
	case errors.Is(err, entities.ErrEmployeeExists):
		return dto.ErrorResponse{StatusCode: http.StatusConflict, Message: err.Error()}
	case errors.Is(err, entities.ErrStorageValidation):
		return dto.ErrorResponse{StatusCode: http.StatusUnprocessableEntity, Message: normalize(err.Error())}
	default:
		return dto.ErrorResponse{
			StatusCode: http.StatusInternalServerError,
			Message:    http.StatusText(http.StatusInternalServerError),
		}
	}
}

// normalize flattens multi-line storage messages into one line.
func normalize(msg string) string {
	return strings.Join(strings.Fields(msg), " ")
}
