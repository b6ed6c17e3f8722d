package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// The item catalogue is declared directly against protobuf well-known types:
// items travel as google.protobuf.Struct and are addressed by Int64Value.
const (
	ItemCatalogServiceName = "items.v1.ItemCatalog"
	CreateItemMethod       = "/" + ItemCatalogServiceName + "/CreateItem"
	GetItemMethod          = "/" + ItemCatalogServiceName + "/GetItem"
)

// ItemCatalogServer is the server API of the item catalogue.
type ItemCatalogServer interface {
	CreateItem(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	GetItem(ctx context.Context, req *wrapperspb.Int64Value) (*structpb.Struct, error)
}

func RegisterItemCatalogServer(s grpc.ServiceRegistrar, srv ItemCatalogServer) {
	s.RegisterService(&itemCatalogServiceDesc, srv)
}

var itemCatalogServiceDesc = grpc.ServiceDesc{
	ServiceName: ItemCatalogServiceName,
	HandlerType: (*ItemCatalogServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreateItem", Handler: createItemHandler},
		{MethodName: "GetItem", Handler: getItemHandler},
	},
	Streams: []grpc.StreamDesc{},
}

func createItemHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ItemCatalogServer).CreateItem(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: CreateItemMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ItemCatalogServer).CreateItem(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func getItemHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.Int64Value)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ItemCatalogServer).GetItem(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: GetItemMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ItemCatalogServer).GetItem(ctx, req.(*wrapperspb.Int64Value))
	}
	return interceptor(ctx, in, info, handler)
}

// ItemCatalogClient calls the item catalogue over a client connection.
type ItemCatalogClient struct {
	cc grpc.ClientConnInterface
}

func NewItemCatalogClient(cc grpc.ClientConnInterface) *ItemCatalogClient {
	return &ItemCatalogClient{cc: cc}
}

func (c *ItemCatalogClient) CreateItem(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, CreateItemMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ItemCatalogClient) GetItem(ctx context.Context, in *wrapperspb.Int64Value, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, GetItemMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
