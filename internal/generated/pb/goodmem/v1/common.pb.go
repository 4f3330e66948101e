// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: goodmem/v1/common.proto

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

// SortOrder controls list ordering direction. Leaving it unspecified is
// equivalent to ascending.
type SortOrder int32

const (
	SortOrder_SORT_ORDER_UNSPECIFIED SortOrder = 0
	SortOrder_SORT_ORDER_ASCENDING   SortOrder = 1
	SortOrder_SORT_ORDER_DESCENDING  SortOrder = 2
)

// Enum value maps for SortOrder.
var (
	SortOrder_name = map[int32]string{
		0: "SORT_ORDER_UNSPECIFIED",
		1: "SORT_ORDER_ASCENDING",
		2: "SORT_ORDER_DESCENDING",
	}
	SortOrder_value = map[string]int32{
		"SORT_ORDER_UNSPECIFIED": 0,
		"SORT_ORDER_ASCENDING":   1,
		"SORT_ORDER_DESCENDING":  2,
	}
)

func (x SortOrder) Enum() *SortOrder {
	p := new(SortOrder)
	*p = x
	return p
}

func (x SortOrder) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (SortOrder) Descriptor() protoreflect.EnumDescriptor {
	return file_goodmem_v1_common_proto_enumTypes[0].Descriptor()
}

func (SortOrder) Type() protoreflect.EnumType {
	return &file_goodmem_v1_common_proto_enumTypes[0]
}

func (x SortOrder) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use SortOrder.Descriptor instead.
func (SortOrder) EnumDescriptor() ([]byte, []int) {
	return file_goodmem_v1_common_proto_rawDescGZIP(), []int{0}
}

// StringMap wraps a string-to-string map so it can be used inside a oneof.
// Update requests carry a label_update_strategy oneof of two StringMap
// fields: replace_labels sets the labels to exactly the given map, while
// merge_labels unions it into the existing labels with the given values
// winning on key collisions. Leaving the oneof unset leaves labels alone.
type StringMap struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Labels        map[string]string      `protobuf:"bytes,1,rep,name=labels,proto3" json:"labels,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StringMap) Reset() {
	*x = StringMap{}
	mi := &file_goodmem_v1_common_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StringMap) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StringMap) ProtoMessage() {}

func (x *StringMap) ProtoReflect() protoreflect.Message {
	mi := &file_goodmem_v1_common_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StringMap.ProtoReflect.Descriptor instead.
func (*StringMap) Descriptor() ([]byte, []int) {
	return file_goodmem_v1_common_proto_rawDescGZIP(), []int{0}
}

func (x *StringMap) GetLabels() map[string]string {
	if x != nil {
		return x.Labels
	}
	return nil
}

var File_goodmem_v1_common_proto protoreflect.FileDescriptor

const file_goodmem_v1_common_proto_rawDesc = "" +
	"\n" +
	"\x17goodmem/v1/common.proto\x12\n" +
	"goodmem.v1\"\x81\x01\n" +
	"\tStringMap\x129\n" +
	"\x06labels\x18\x01 \x03(\v2!.goodmem.v1.StringMap.LabelsEntryR\x06labels\x1a9\n" +
	"\vLabelsEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01*\\\n" +
	"\tSortOrder\x12\x1a\n" +
	"\x16SORT_ORDER_UNSPECIFIED\x10\x00\x12\x18\n" +
	"\x14SORT_ORDER_ASCENDING\x10\x01\x12\x19\n" +
	"\x15SORT_ORDER_DESCENDING\x10\x02BGZEgithub.com/goodmem/goodmem/internal/generated/pb/goodmem/v1;goodmemv1b\x06proto3"

var (
	file_goodmem_v1_common_proto_rawDescOnce sync.Once
	file_goodmem_v1_common_proto_rawDescData []byte
)

func file_goodmem_v1_common_proto_rawDescGZIP() []byte {
	file_goodmem_v1_common_proto_rawDescOnce.Do(func() {
		file_goodmem_v1_common_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_goodmem_v1_common_proto_rawDesc), len(file_goodmem_v1_common_proto_rawDesc)))
	})
	return file_goodmem_v1_common_proto_rawDescData
}

var file_goodmem_v1_common_proto_enumTypes = make([]protoimpl.EnumInfo, 1)
var file_goodmem_v1_common_proto_msgTypes = make([]protoimpl.MessageInfo, 2)
var file_goodmem_v1_common_proto_goTypes = []any{
	(SortOrder)(0),    // 0: goodmem.v1.SortOrder
	(*StringMap)(nil), // 1: goodmem.v1.StringMap
	nil,               // 2: goodmem.v1.StringMap.LabelsEntry
}
var file_goodmem_v1_common_proto_depIdxs = []int32{
	2, // 0: goodmem.v1.StringMap.labels:type_name -> goodmem.v1.StringMap.LabelsEntry
	1, // [1:1] is the sub-list for method output_type
	1, // [1:1] is the sub-list for method input_type
	1, // [1:1] is the sub-list for extension type_name
	1, // [1:1] is the sub-list for extension extendee
	0, // [0:1] is the sub-list for field type_name
}

func init() { file_goodmem_v1_common_proto_init() }
func file_goodmem_v1_common_proto_init() {
	if File_goodmem_v1_common_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_goodmem_v1_common_proto_rawDesc), len(file_goodmem_v1_common_proto_rawDesc)),
			NumEnums:      1,
			NumMessages:   2,
			NumExtensions: 0,
			NumServices:   0,
		},
		GoTypes:           file_goodmem_v1_common_proto_goTypes,
		DependencyIndexes: file_goodmem_v1_common_proto_depIdxs,
		EnumInfos:         file_goodmem_v1_common_proto_enumTypes,
		MessageInfos:      file_goodmem_v1_common_proto_msgTypes,
	}.Build()
	File_goodmem_v1_common_proto = out.File
	file_goodmem_v1_common_proto_goTypes = nil
	file_goodmem_v1_common_proto_depIdxs = nil
}
