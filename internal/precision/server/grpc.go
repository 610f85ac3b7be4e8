package server

import (
	"context"
	"encoding/json"

	"github.com/msto63/sigfig/internal/precision/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "sigfig.v1.PrecisionService"

// PrecisionServer is the server API of sigfig.v1.PrecisionService. Requests
// and responses are google.protobuf.Struct messages carrying the same fields
// as the JSON API.
type PrecisionServer interface {
	Count(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Places(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Round(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Evaluate(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Combine(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type methodFunc func(PrecisionServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(name string, call methodFunc) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(PrecisionServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: "/" + ServiceName + "/" + name,
			}
			handler := func(ctx context.Context, req interface{}) (interface{}, error) {
				return call(srv.(PrecisionServer), ctx, req.(*structpb.Struct))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// PrecisionServiceDesc describes sigfig.v1.PrecisionService
var PrecisionServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*PrecisionServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryHandler("Count", PrecisionServer.Count),
		unaryHandler("Places", PrecisionServer.Places),
		unaryHandler("Round", PrecisionServer.Round),
		unaryHandler("Evaluate", PrecisionServer.Evaluate),
		unaryHandler("Combine", PrecisionServer.Combine),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "sigfig/v1/precision.proto",
}

// RegisterPrecisionServer registers srv on s
func RegisterPrecisionServer(s grpc.ServiceRegistrar, srv PrecisionServer) {
	s.RegisterService(&PrecisionServiceDesc, srv)
}

// PrecisionClient calls sigfig.v1.PrecisionService
type PrecisionClient struct {
	cc grpc.ClientConnInterface
}

// NewPrecisionClient creates a client on an existing connection
func NewPrecisionClient(cc grpc.ClientConnInterface) *PrecisionClient {
	return &PrecisionClient{cc: cc}
}

// Call invokes method ("Count", "Round", ...) with fields as request
func (c *PrecisionClient) Call(ctx context.Context, method string, fields map[string]interface{}, opts ...grpc.CallOption) (*structpb.Struct, error) {
	in, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/"+method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// GRPCService implements PrecisionServer on top of the precision service
type GRPCService struct {
	svc *service.Service
}

var _ PrecisionServer = (*GRPCService)(nil)

// NewGRPCService creates the gRPC adapter
func NewGRPCService(svc *service.Service) *GRPCService {
	return &GRPCService{svc: svc}
}

// Count implements PrecisionServer.Count
func (g *GRPCService) Count(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	res, err := g.svc.Count(ctx, stringField(req, "input"))
	if err != nil {
		return nil, err
	}
	return toStruct(res)
}

// Places implements PrecisionServer.Places
func (g *GRPCService) Places(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	res, err := g.svc.Places(ctx, stringField(req, "input"))
	if err != nil {
		return nil, err
	}
	return toStruct(res)
}

// Round implements PrecisionServer.Round. Either "figures" or "places" selects
// the rounding target.
func (g *GRPCService) Round(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	input := stringField(req, "input")
	places, hasPlaces := req.GetFields()["places"]
	figures, hasFigures := req.GetFields()["figures"]
	if hasPlaces && hasFigures {
		return nil, status.Error(codes.InvalidArgument, "set either figures or places, not both")
	}

	var (
		res *service.RoundResult
		err error
	)
	if hasPlaces {
		res, err = g.svc.RoundDecimals(ctx, input, int(places.GetNumberValue()))
	} else {
		res, err = g.svc.Round(ctx, input, int(figures.GetNumberValue()))
	}
	if err != nil {
		return nil, err
	}
	return toStruct(res)
}

// Evaluate implements PrecisionServer.Evaluate
func (g *GRPCService) Evaluate(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	res, err := g.svc.Evaluate(ctx, stringField(req, "expression"))
	if err != nil {
		return nil, err
	}
	return toStruct(res)
}

// Combine implements PrecisionServer.Combine
func (g *GRPCService) Combine(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	res, err := g.svc.Combine(ctx, stringField(req, "a"), stringField(req, "b"), stringField(req, "op"))
	if err != nil {
		return nil, err
	}
	return toStruct(res)
}

func stringField(s *structpb.Struct, key string) string {
	return s.GetFields()[key].GetStringValue()
}

// toStruct converts a JSON-tagged result into a Struct
func toStruct(v interface{}) (*structpb.Struct, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	s, err := structpb.NewStruct(m)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return s, nil
}
