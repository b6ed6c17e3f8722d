package grpc

import (
	"fmt"

	"github.com/godilite/grade-calculator/internal/service"
	"google.golang.org/protobuf/types/known/structpb"
)

// itemInputFromStruct reads name, price and the optional description.
// Other fields are ignored.
func itemInputFromStruct(s *structpb.Struct) (service.ItemInput, error) {
	fields := s.GetFields()

	name, ok := fields["name"].GetKind().(*structpb.Value_StringValue)
	if !ok {
		return service.ItemInput{}, fmt.Errorf("name must be a string")
	}
	price, ok := fields["price"].GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return service.ItemInput{}, fmt.Errorf("price must be a number")
	}

	in := service.ItemInput{Name: name.StringValue, Price: price.NumberValue}

	switch d := fields["description"].GetKind().(type) {
	case nil, *structpb.Value_NullValue:
	case *structpb.Value_StringValue:
		in.Description = &d.StringValue
	default:
		return service.ItemInput{}, fmt.Errorf("description must be a string or null")
	}

	return in, nil
}

func itemToStruct(item service.Item) (*structpb.Struct, error) {
	var description any
	if item.Description != nil {
		description = *item.Description
	}
	return structpb.NewStruct(map[string]any{
		"id":          item.ID,
		"name":        item.Name,
		"price":       item.Price,
		"description": description,
	})
}
