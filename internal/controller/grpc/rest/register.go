package grpcrest

import (
	"errors"
	"io"
	"net"
	"net/http"

	grpcv1 "github.com/Egor213/LogiProbe/internal/controller/grpc/v1"
	errorsUtils "github.com/Egor213/LogiProbe/pkg/errors"
	gw "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

// RegisterServices proxies GET /v1/tools and POST /v1/tools/{name} to the
// gRPC tool service on grpcPort. The caller closes the returned connection.
func RegisterServices(handler *gw.ServeMux, grpcPort string, opts ...grpc.DialOption) (*grpc.ClientConn, error) {
	if len(opts) == 0 {
		opts = []grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}
	}
	conn, err := grpc.NewClient(net.JoinHostPort("localhost", grpcPort), opts...)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	client := grpcv1.NewToolServiceClient(conn)

	err = handler.HandlePath(http.MethodGet, "/v1/tools", func(w http.ResponseWriter, r *http.Request, _ map[string]string) {
		_, outbound := gw.MarshalerForRequest(handler, r)

		out, err := client.ListTools(r.Context(), &emptypb.Empty{})
		if err != nil {
			gw.HTTPError(r.Context(), handler, outbound, w, r, err)
			return
		}
		writeMessage(w, outbound, out)
	})
	if err != nil {
		conn.Close()
		return nil, errorsUtils.WrapPathErr(err)
	}

	err = handler.HandlePath(http.MethodPost, "/v1/tools/{name}", func(w http.ResponseWriter, r *http.Request, params map[string]string) {
		inbound, outbound := gw.MarshalerForRequest(handler, r)

		args := &structpb.Struct{}
		if err := inbound.NewDecoder(r.Body).Decode(args); err != nil && !errors.Is(err, io.EOF) {
			gw.HTTPError(r.Context(), handler, outbound, w, r, status.Errorf(codes.InvalidArgument, "arguments must be a JSON object"))
			return
		}

		out, err := client.CallTool(r.Context(), grpcv1.NewCallStruct(params["name"], args))
		if err != nil {
			gw.HTTPError(r.Context(), handler, outbound, w, r, err)
			return
		}
		writeMessage(w, outbound, out)
	})
	if err != nil {
		conn.Close()
		return nil, errorsUtils.WrapPathErr(err)
	}

	return conn, nil
}

func writeMessage(w http.ResponseWriter, m gw.Marshaler, msg *structpb.Struct) {
	b, err := m.Marshal(msg)
	if err != nil {
		http.Error(w, "cannot encode response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", m.ContentType(msg))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(b)
}
