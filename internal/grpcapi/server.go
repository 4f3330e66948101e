// Package grpcapi implements the goodmem.v1 gRPC services. Every handler
// follows the same skeleton: resolve the caller from the request context,
// validate inputs, authorize, call the store, map the outcome. The REST
// routes invoke these same servers, so both surfaces share one behavior.
package grpcapi

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"
	pb "github.com/goodmem/goodmem/internal/generated/pb/goodmem/v1"
	"github.com/goodmem/goodmem/internal/ident"
	"github.com/goodmem/goodmem/internal/security"
	"github.com/goodmem/goodmem/internal/store"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// requirePrincipal returns the authenticated caller. The auth interceptor
// normally guarantees one is present; this also guards direct callers such
// as the REST adapters and tests.
func requirePrincipal(ctx context.Context) (*security.Principal, error) {
	if p := security.PrincipalFromContext(ctx); p != nil {
		return p, nil
	}
	return nil, status.Error(codes.Unauthenticated, "no API key provided")
}

// authorizeOwned applies an OWN/ANY permission pair to a row owned by
// ownerID. ANY always passes; OWN passes only for the owner.
func authorizeOwned(p *security.Principal, ownerID uuid.UUID, own, any security.Permission) error {
	if p.Has(any) {
		return nil
	}
	if ownerID == p.UserID && p.Has(own) {
		return nil
	}
	return status.Error(codes.PermissionDenied, "permission denied")
}

func parseID(b []byte, field string) (uuid.UUID, error) {
	id, err := ident.FromBytes(b)
	if err != nil {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "invalid %s", field)
	}
	return id, nil
}

// labelUpdateFrom translates the label_update_strategy oneof. A set arm
// with an empty map still counts: REPLACE with {} clears all labels.
func labelUpdateFrom(replace, merge *pb.StringMap) store.LabelUpdate {
	switch {
	case replace != nil:
		return store.ReplaceLabels(replace.GetLabels())
	case merge != nil:
		return store.MergeLabels(merge.GetLabels())
	default:
		return store.KeepLabels()
	}
}

// mapError converts store and context errors into gRPC statuses. Statuses
// pass through untouched. Anything unrecognized is logged and reported as
// a bare Internal so database details never reach clients.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	if errors.Is(err, context.Canceled) {
		return status.Error(codes.Canceled, "request canceled")
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return status.Error(codes.DeadlineExceeded, "request deadline exceeded")
	}

	var notFound *store.NotFoundError
	var forbidden *store.ForbiddenError
	var validation *store.ValidationError
	var conflict *store.ConflictError
	var unauthenticated *store.UnauthenticatedError
	var precondition *store.PreconditionError

	switch {
	case errors.As(err, &notFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.As(err, &forbidden):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.As(err, &validation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.As(err, &conflict):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.As(err, &unauthenticated):
		return status.Error(codes.Unauthenticated, err.Error())
	case errors.As(err, &precondition):
		return status.Error(codes.FailedPrecondition, err.Error())
	default:
		log.Error("request failed", "err", err)
		return status.Error(codes.Internal, "internal error")
	}
}
