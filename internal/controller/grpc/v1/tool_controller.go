package grpcv1

import (
	"context"

	logginghelper "github.com/Egor213/LogiProbe/internal/controller/common/logging"
	"github.com/Egor213/LogiProbe/internal/controller/grpc/validators"
	"github.com/Egor213/LogiProbe/internal/metrics"
	"github.com/Egor213/LogiProbe/internal/tools"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

type Dispatcher interface {
	Call(ctx context.Context, name string, args map[string]any) any
	Known(name string) bool
	Catalog() *tools.Catalog
}

type ToolController struct {
	dispatcher Dispatcher
	counters   *metrics.Counters
}

func NewToolController(d Dispatcher, cnt *metrics.Counters) *ToolController {
	return &ToolController{
		dispatcher: d,
		counters:   cnt,
	}
}

func (c *ToolController) ListTools(_ context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	c.counters.GrpcRequests.Inc("ListTools", "received")

	out, err := ToolsToStruct(c.dispatcher.Catalog().Tools())
	if err != nil {
		c.counters.GrpcRequests.Inc("ListTools", "failed")
		return nil, status.Errorf(codes.Internal, "cannot encode tool list")
	}

	c.counters.GrpcRequests.Inc("ListTools", "ok")
	return out, nil
}

// CallTool maps an unknown tool to NotFound. Tool failures stay in the
// result as error values.
func (c *ToolController) CallTool(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	name, args := CallFromStruct(req)

	c.counters.GrpcRequests.Inc("CallTool", "received")
	if err := validators.ValidateToolName(name); err != nil {
		c.counters.GrpcRequests.Inc("CallTool", "failed")
		logginghelper.LogCallFailed(name, err)
		return nil, status.Errorf(codes.InvalidArgument, "invalid argument: %s", err)
	}
	if !c.dispatcher.Known(name) {
		c.counters.GrpcRequests.Inc("CallTool", "failed")
		return nil, status.Errorf(codes.NotFound, "unknown tool %q", name)
	}

	out, err := ResultToStruct(c.dispatcher.Call(ctx, name, args))
	if err != nil {
		c.counters.GrpcRequests.Inc("CallTool", "failed")
		logginghelper.LogCallFailed(name, err)
		return nil, status.Errorf(codes.Internal, "cannot encode result")
	}

	c.counters.GrpcRequests.Inc("CallTool", "ok")
	return out, nil
}
