package grpcv1

import (
	"encoding/json"

	"github.com/Egor213/LogiProbe/internal/tools"
	errorsUtils "github.com/Egor213/LogiProbe/pkg/errors"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	fieldName      = "name"
	fieldArguments = "arguments"
	fieldResult    = "result"
	fieldTools     = "tools"
)

// CallFromStruct reads {name, arguments} from a CallTool request.
func CallFromStruct(req *structpb.Struct) (string, map[string]any) {
	fields := req.GetFields()
	name := fields[fieldName].GetStringValue()

	var args map[string]any
	if a := fields[fieldArguments].GetStructValue(); a != nil {
		args = a.AsMap()
	}
	return name, args
}

func NewCallStruct(name string, args *structpb.Struct) *structpb.Struct {
	if args == nil {
		args = &structpb.Struct{}
	}
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		fieldName:      structpb.NewStringValue(name),
		fieldArguments: structpb.NewStructValue(args),
	}}
}

func ToolsToStruct(list []tools.Tool) (*structpb.Struct, error) {
	return toStruct(map[string]any{fieldTools: list})
}

func ResultToStruct(result any) (*structpb.Struct, error) {
	return toStruct(map[string]any{fieldResult: result})
}

// toStruct goes through JSON so that struct tags shape the output exactly
// like the HTTP API.
func toStruct(v any) (*structpb.Struct, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	out := &structpb.Struct{}
	if err := protojson.Unmarshal(b, out); err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	return out, nil
}
