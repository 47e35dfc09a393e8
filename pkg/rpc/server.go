package rpc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/codeready-toolchain/runsheet/pkg/models"
	"github.com/codeready-toolchain/runsheet/pkg/services"
)

// Server implements LiveControlServer on top of the live and event services.
type Server struct {
	live   *services.LiveService
	events *services.EventService
}

var _ LiveControlServer = (*Server)(nil)

// NewServer creates a LiveControl implementation.
func NewServer(liveSvc *services.LiveService, eventSvc *services.EventService) *Server {
	return &Server{live: liveSvc, events: eventSvc}
}

// NewGRPCServer builds a grpc.Server with LiveControl and the standard
// health service registered. The returned health server reports SERVING
// for both until Shutdown is called on it.
func NewGRPCServer(srv LiveControlServer, opts ...grpc.ServerOption) (*grpc.Server, *health.Server) {
	opts = append([]grpc.ServerOption{grpc.ChainUnaryInterceptor(loggingInterceptor)}, opts...)
	gs := grpc.NewServer(opts...)
	RegisterLiveControlServer(gs, srv)

	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(gs, hs)

	return gs, hs
}

// JumpTo expects {"item_id": "..."}.
func (s *Server) JumpTo(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	itemID, err := requireString(req, "item_id")
	if err != nil {
		return nil, err
	}
	return liveReply(s.live.JumpTo(ctx, itemID))
}

// CompleteCurrent expects {"event_id": "..."}.
func (s *Server) CompleteCurrent(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	eventID, err := requireString(req, "event_id")
	if err != nil {
		return nil, err
	}
	return liveReply(s.live.CompleteCurrent(ctx, eventID))
}

// SkipCurrent expects {"event_id": "..."}.
func (s *Server) SkipCurrent(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	eventID, err := requireString(req, "event_id")
	if err != nil {
		return nil, err
	}
	return liveReply(s.live.SkipCurrent(ctx, eventID))
}

// SetItemStatus expects {"item_id": "...", "status": "..."}.
func (s *Server) SetItemStatus(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	itemID, err := requireString(req, "item_id")
	if err != nil {
		return nil, err
	}
	st, err := requireString(req, "status")
	if err != nil {
		return nil, err
	}
	return liveReply(s.live.SetItemStatus(ctx, itemID, models.ItemStatus(st)))
}

// SetEventStatus expects {"event_id": "...", "status": "..."} and returns the event.
func (s *Server) SetEventStatus(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	eventID, err := requireString(req, "event_id")
	if err != nil {
		return nil, err
	}
	st, err := requireString(req, "status")
	if err != nil {
		return nil, err
	}
	event, err := s.events.SetEventStatus(ctx, eventID, models.EventStatus(st))
	if err != nil {
		return nil, toStatus(err)
	}
	return toStruct(event)
}

// GetBoard expects {"event_id": "..."} and returns the live board.
func (s *Server) GetBoard(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	eventID, err := requireString(req, "event_id")
	if err != nil {
		return nil, err
	}
	board, err := s.live.Board(ctx, eventID)
	if err != nil {
		return nil, toStatus(err)
	}
	return toStruct(board)
}

func liveReply(result *models.LiveResult, err error) (*structpb.Struct, error) {
	if err != nil {
		return nil, toStatus(err)
	}
	return toStruct(result)
}

func requireString(req *structpb.Struct, field string) (string, error) {
	v := strings.TrimSpace(req.GetFields()[field].GetStringValue())
	if v == "" {
		return "", status.Errorf(codes.InvalidArgument, "%s is required", field)
	}
	return v, nil
}

// toStruct converts v to a Struct through its JSON encoding, so gRPC
// replies carry the same documents as the HTTP API.
func toStruct(v any) (*structpb.Struct, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to encode reply: %v", err)
	}
	out := &structpb.Struct{}
	if err := protojson.Unmarshal(data, out); err != nil {
		return nil, status.Errorf(codes.Internal, "failed to encode reply: %v", err)
	}
	return out, nil
}

// toStatus maps service errors to gRPC status errors.
func toStatus(err error) error {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return status.Error(codes.InvalidArgument, validErr.Error())
	}
	if errors.Is(err, services.ErrNotFound) {
		return status.Error(codes.NotFound, err.Error())
	}
	var transErr *services.InvalidTransitionError
	if errors.As(err, &transErr) {
		return status.Error(codes.FailedPrecondition, transErr.Error())
	}
	if pce, ok := services.AsPartialCommit(err); ok {
		return failedItemsStatus(codes.Aborted, "timeline partially updated", pce.FailedIDs())
	}
	if bfe, ok := services.AsBatchFailed(err); ok {
		slog.Error("Timeline update batch failed", "error", err)
		return failedItemsStatus(codes.Internal, "timeline not updated", bfe.FailedIDs())
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return status.FromContextError(err).Err()
	}

	slog.Error("Unexpected service error", "error", err)
	return status.Error(codes.Internal, "internal error")
}

// failedItemsStatus names the failed items in the message and attaches them
// as a Struct detail under failed_item_ids.
func failedItemsStatus(code codes.Code, msg string, ids []string) error {
	st := status.New(code, fmt.Sprintf("%s; failed items: %s", msg, strings.Join(ids, ", ")))
	values := make([]any, len(ids))
	for i, id := range ids {
		values[i] = id
	}
	detail, err := structpb.NewStruct(map[string]any{"failed_item_ids": values})
	if err == nil {
		if withDetail, werr := st.WithDetails(detail); werr == nil {
			st = withDetail
		}
	}
	return st.Err()
}

func loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	code := status.Code(err)
	attrs := []any{"method", info.FullMethod, "code", code.String(), "duration", time.Since(start)}
	switch code {
	case codes.OK, codes.InvalidArgument, codes.NotFound, codes.FailedPrecondition:
		slog.Debug("gRPC request", attrs...)
	default:
		slog.Warn("gRPC request failed", append(attrs, "error", err)...)
	}
	return resp, err
}
