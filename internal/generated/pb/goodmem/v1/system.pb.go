// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: goodmem/v1/system.proto

package goodmemv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type InitializeSystemRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *InitializeSystemRequest) Reset() {
	*x = InitializeSystemRequest{}
	mi := &file_goodmem_v1_system_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *InitializeSystemRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*InitializeSystemRequest) ProtoMessage() {}

func (x *InitializeSystemRequest) ProtoReflect() protoreflect.Message {
	mi := &file_goodmem_v1_system_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use InitializeSystemRequest.ProtoReflect.Descriptor instead.
func (*InitializeSystemRequest) Descriptor() ([]byte, []int) {
	return file_goodmem_v1_system_proto_rawDescGZIP(), []int{0}
}

// InitializeSystemResponse reports the bootstrap outcome. root_api_key is
// populated only on the call that actually created the root user; it is
// never recoverable afterwards.
type InitializeSystemResponse struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	AlreadyInitialized bool                   `protobuf:"varint,1,opt,name=already_initialized,json=alreadyInitialized,proto3" json:"already_initialized,omitempty"`
	RootApiKey         string                 `protobuf:"bytes,2,opt,name=root_api_key,json=rootApiKey,proto3" json:"root_api_key,omitempty"`
	UserId             []byte                 `protobuf:"bytes,3,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Message            string                 `protobuf:"bytes,4,opt,name=message,proto3" json:"message,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *InitializeSystemResponse) Reset() {
	*x = InitializeSystemResponse{}
	mi := &file_goodmem_v1_system_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *InitializeSystemResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*InitializeSystemResponse) ProtoMessage() {}

func (x *InitializeSystemResponse) ProtoReflect() protoreflect.Message {
	mi := &file_goodmem_v1_system_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use InitializeSystemResponse.ProtoReflect.Descriptor instead.
func (*InitializeSystemResponse) Descriptor() ([]byte, []int) {
	return file_goodmem_v1_system_proto_rawDescGZIP(), []int{1}
}

func (x *InitializeSystemResponse) GetAlreadyInitialized() bool {
	if x != nil {
		return x.AlreadyInitialized
	}
	return false
}

func (x *InitializeSystemResponse) GetRootApiKey() string {
	if x != nil {
		return x.RootApiKey
	}
	return ""
}

func (x *InitializeSystemResponse) GetUserId() []byte {
	if x != nil {
		return x.UserId
	}
	return nil
}

func (x *InitializeSystemResponse) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

var File_goodmem_v1_system_proto protoreflect.FileDescriptor

const file_goodmem_v1_system_proto_rawDesc = "" +
	"\n" +
	"\x17goodmem/v1/system.proto\x12\n" +
	"goodmem.v1\"\x19\n" +
	"\x17InitializeSystemRequest\"\xa0\x01\n" +
	"\x18InitializeSystemResponse\x12/\n" +
	"\x13already_initialized\x18\x01 \x01(\bR\x12alreadyInitialized\x12 \n" +
	"\froot_api_key\x18\x02 \x01(\tR\n" +
	"rootApiKey\x12\x17\n" +
	"\auser_id\x18\x03 \x01(\fR\x06userId\x12\x18\n" +
	"\amessage\x18\x04 \x01(\tR\amessage2n\n" +
	"\rSystemService\x12]\n" +
	"\x10InitializeSystem\x12#.goodmem.v1.InitializeSystemRequest\x1a$.goodmem.v1.InitializeSystemResponseBGZEgithub.com/goodmem/goodmem/internal/generated/pb/goodmem/v1;goodmemv1b\x06proto3"

var (
	file_goodmem_v1_system_proto_rawDescOnce sync.Once
	file_goodmem_v1_system_proto_rawDescData []byte
)

func file_goodmem_v1_system_proto_rawDescGZIP() []byte {
	file_goodmem_v1_system_proto_rawDescOnce.Do(func() {
		file_goodmem_v1_system_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_goodmem_v1_system_proto_rawDesc), len(file_goodmem_v1_system_proto_rawDesc)))
	})
	return file_goodmem_v1_system_proto_rawDescData
}

var file_goodmem_v1_system_proto_msgTypes = make([]protoimpl.MessageInfo, 2)
var file_goodmem_v1_system_proto_goTypes = []any{
	(*InitializeSystemRequest)(nil),  // 0: goodmem.v1.InitializeSystemRequest
	(*InitializeSystemResponse)(nil), // 1: goodmem.v1.InitializeSystemResponse
}
var file_goodmem_v1_system_proto_depIdxs = []int32{
	0, // 0: goodmem.v1.SystemService.InitializeSystem:input_type -> goodmem.v1.InitializeSystemRequest
	1, // 1: goodmem.v1.SystemService.InitializeSystem:output_type -> goodmem.v1.InitializeSystemResponse
	1, // [1:2] is the sub-list for method output_type
	0, // [0:1] is the sub-list for method input_type
	0, // [0:0] is the sub-list for extension type_name
	0, // [0:0] is the sub-list for extension extendee
	0, // [0:0] is the sub-list for field type_name
}

func init() { file_goodmem_v1_system_proto_init() }
func file_goodmem_v1_system_proto_init() {
	if File_goodmem_v1_system_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_goodmem_v1_system_proto_rawDesc), len(file_goodmem_v1_system_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   2,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_goodmem_v1_system_proto_goTypes,
		DependencyIndexes: file_goodmem_v1_system_proto_depIdxs,
		MessageInfos:      file_goodmem_v1_system_proto_msgTypes,
	}.Build()
	File_goodmem_v1_system_proto = out.File
	file_goodmem_v1_system_proto_goTypes = nil
	file_goodmem_v1_system_proto_depIdxs = nil
}
