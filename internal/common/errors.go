package common

import (
	"context"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"vidtube/internal/logging"
)

// Services report failures as gRPC status errors; the HTTP layer maps the
// code onto a response status.

func InvalidArgument(format string, args ...any) error {
	return status.Errorf(codes.InvalidArgument, format, args...)
}

func Unauthorized(format string, args ...any) error {
	return status.Errorf(codes.Unauthenticated, format, args...)
}

func Forbidden(format string, args ...any) error {
	return status.Errorf(codes.PermissionDenied, format, args...)
}

func NotFound(format string, args ...any) error {
	return status.Errorf(codes.NotFound, format, args...)
}

func Conflict(format string, args ...any) error {
	return status.Errorf(codes.AlreadyExists, format, args...)
}

// Internal logs cause against the request logger and returns an opaque
// Internal error carrying msg.
func Internal(ctx context.Context, cause error, msg string) error {
	logging.FromContext(ctx).WithError(cause).Error(msg)
	return status.Error(codes.Internal, msg)
}

// HTTPStatus maps err onto the response status code. Errors that are not
// status errors are treated as internal.
func HTTPStatus(err error) int {
	st, ok := status.FromError(err)
	if !ok {
		return http.StatusInternalServerError
	}
	switch st.Code() {
	case codes.OK:
		return http.StatusOK
	case codes.InvalidArgument, codes.FailedPrecondition, codes.OutOfRange:
		return http.StatusBadRequest
	case codes.Unauthenticated:
		return http.StatusUnauthorized
	case codes.PermissionDenied:
		return http.StatusForbidden
	case codes.NotFound:
		return http.StatusNotFound
	case codes.AlreadyExists, codes.Aborted:
		return http.StatusConflict
	case codes.ResourceExhausted:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// ErrorMessage returns the client-facing text for err.
func ErrorMessage(err error) string {
	st, ok := status.FromError(err)
	if !ok || st.Message() == "" {
		return "Internal server error"
	}
	return st.Message()
}

// ParseID parses a hex ObjectID path or body value; field names the value in
// the error message.
func ParseID(hex, field string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, InvalidArgument("invalid %s", field)
	}
	return id, nil
}

// RequireOwner fails with Forbidden unless actor owns the resource.
func RequireOwner(owner, actor primitive.ObjectID, action string) error {
	if owner != actor {
		return Forbidden("you are not allowed to %s", action)
	}
	return nil
}
