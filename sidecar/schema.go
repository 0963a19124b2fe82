// seehuhn.de/go/fontclass - classify fonts by visual weight, width and slant
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package sidecar

import (
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"
)

// The descriptors declare the part of fonts_public.proto (Google Fonts
// tools) which is used here.  Text format matches fields by name, so the
// remaining fields of the upstream message can be skipped.
var familyDesc, fontDesc = buildDescriptors()

func buildDescriptors() (family, font protoreflect.MessageDescriptor) {
	fdp := &descriptorpb.FileDescriptorProto{
		Name:    proto.String("fonts_public.proto"),
		Package: proto.String("google.fonts"),
		Syntax:  proto.String("proto2"),
		MessageType: []*descriptorpb.DescriptorProto{
			{
				Name: proto.String("FamilyProto"),
				Field: []*descriptorpb.FieldDescriptorProto{
					stringField("name", 1),
					stringField("designer", 2),
					stringField("license", 3),
					repeated(stringField("category", 4)),
					stringField("date_added", 5),
					repeated(messageField("fonts", 6, ".google.fonts.FontProto")),
					repeated(stringField("subsets", 8)),
				},
			},
			{
				Name: proto.String("FontProto"),
				Field: []*descriptorpb.FieldDescriptorProto{
					stringField("name", 1),
					stringField("style", 2),
					int32Field("weight", 3),
					stringField("filename", 4),
					stringField("post_script_name", 5),
					stringField("full_name", 6),
					stringField("copyright", 7),
				},
			},
		},
	}

	fd, err := protodesc.NewFile(fdp, nil)
	if err != nil {
		panic(err) // the descriptor above is static
	}
	msgs := fd.Messages()
	return msgs.ByName("FamilyProto"), msgs.ByName("FontProto")
}

func stringField(name string, number int32) *descriptorpb.FieldDescriptorProto {
	return &descriptorpb.FieldDescriptorProto{
		Name:     proto.String(name),
		JsonName: proto.String(name),
		Number:   proto.Int32(number),
		Label:    descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
		Type:     descriptorpb.FieldDescriptorProto_TYPE_STRING.Enum(),
	}
}

func int32Field(name string, number int32) *descriptorpb.FieldDescriptorProto {
	f := stringField(name, number)
	f.Type = descriptorpb.FieldDescriptorProto_TYPE_INT32.Enum()
	return f
}

func messageField(name string, number int32, typeName string) *descriptorpb.FieldDescriptorProto {
	f := stringField(name, number)
	f.Type = descriptorpb.FieldDescriptorProto_TYPE_MESSAGE.Enum()
	f.TypeName = proto.String(typeName)
	return f
}

func repeated(f *descriptorpb.FieldDescriptorProto) *descriptorpb.FieldDescriptorProto {
	f.Label = descriptorpb.FieldDescriptorProto_LABEL_REPEATED.Enum()
	return f
}
