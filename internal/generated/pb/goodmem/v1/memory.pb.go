// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: goodmem/v1/memory.proto

package goodmemv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	emptypb "google.golang.org/protobuf/types/known/emptypb"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
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

// ProcessingStatus tracks a memory through the external chunking/embedding
// pipeline. The server creates memories as PENDING; the worker advances
// them to PROCESSING and finally COMPLETED or FAILED.
type ProcessingStatus int32

const (
	ProcessingStatus_PROCESSING_STATUS_UNSPECIFIED ProcessingStatus = 0
	ProcessingStatus_PROCESSING_STATUS_PENDING     ProcessingStatus = 1
	ProcessingStatus_PROCESSING_STATUS_PROCESSING  ProcessingStatus = 2
	ProcessingStatus_PROCESSING_STATUS_COMPLETED   ProcessingStatus = 3
	ProcessingStatus_PROCESSING_STATUS_FAILED      ProcessingStatus = 4
)

// Enum value maps for ProcessingStatus.
var (
	ProcessingStatus_name = map[int32]string{
		0: "PROCESSING_STATUS_UNSPECIFIED",
		1: "PROCESSING_STATUS_PENDING",
		2: "PROCESSING_STATUS_PROCESSING",
		3: "PROCESSING_STATUS_COMPLETED",
		4: "PROCESSING_STATUS_FAILED",
	}
	ProcessingStatus_value = map[string]int32{
		"PROCESSING_STATUS_UNSPECIFIED": 0,
		"PROCESSING_STATUS_PENDING":     1,
		"PROCESSING_STATUS_PROCESSING":  2,
		"PROCESSING_STATUS_COMPLETED":   3,
		"PROCESSING_STATUS_FAILED":      4,
	}
)

func (x ProcessingStatus) Enum() *ProcessingStatus {
	p := new(ProcessingStatus)
	*p = x
	return p
}

func (x ProcessingStatus) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (ProcessingStatus) Descriptor() protoreflect.EnumDescriptor {
	return file_goodmem_v1_memory_proto_enumTypes[0].Descriptor()
}

func (ProcessingStatus) Type() protoreflect.EnumType {
	return &file_goodmem_v1_memory_proto_enumTypes[0]
}

func (x ProcessingStatus) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use ProcessingStatus.Descriptor instead.
func (ProcessingStatus) EnumDescriptor() ([]byte, []int) {
	return file_goodmem_v1_memory_proto_rawDescGZIP(), []int{0}
}

type Memory struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	MemoryId           []byte                 `protobuf:"bytes,1,opt,name=memory_id,json=memoryId,proto3" json:"memory_id,omitempty"`
	SpaceId            []byte                 `protobuf:"bytes,2,opt,name=space_id,json=spaceId,proto3" json:"space_id,omitempty"`
	OriginalContentRef string                 `protobuf:"bytes,3,opt,name=original_content_ref,json=originalContentRef,proto3" json:"original_content_ref,omitempty"`
	ContentType        string                 `protobuf:"bytes,4,opt,name=content_type,json=contentType,proto3" json:"content_type,omitempty"`
	Metadata           map[string]string      `protobuf:"bytes,5,rep,name=metadata,proto3" json:"metadata,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	ProcessingStatus   ProcessingStatus       `protobuf:"varint,6,opt,name=processing_status,json=processingStatus,proto3,enum=goodmem.v1.ProcessingStatus" json:"processing_status,omitempty"`
	CreatedAt          *timestamppb.Timestamp `protobuf:"bytes,7,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt          *timestamppb.Timestamp `protobuf:"bytes,8,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	CreatedById        []byte                 `protobuf:"bytes,9,opt,name=created_by_id,json=createdById,proto3" json:"created_by_id,omitempty"`
	UpdatedById        []byte                 `protobuf:"bytes,10,opt,name=updated_by_id,json=updatedById,proto3" json:"updated_by_id,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *Memory) Reset() {
	*x = Memory{}
	mi := &file_goodmem_v1_memory_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Memory) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Memory) ProtoMessage() {}

func (x *Memory) ProtoReflect() protoreflect.Message {
	mi := &file_goodmem_v1_memory_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Memory.ProtoReflect.Descriptor instead.
func (*Memory) Descriptor() ([]byte, []int) {
	return file_goodmem_v1_memory_proto_rawDescGZIP(), []int{0}
}

func (x *Memory) GetMemoryId() []byte {
	if x != nil {
		return x.MemoryId
	}
	return nil
}

func (x *Memory) GetSpaceId() []byte {
	if x != nil {
		return x.SpaceId
	}
	return nil
}

func (x *Memory) GetOriginalContentRef() string {
	if x != nil {
		return x.OriginalContentRef
	}
	return ""
}

func (x *Memory) GetContentType() string {
	if x != nil {
		return x.ContentType
	}
	return ""
}

func (x *Memory) GetMetadata() map[string]string {
	if x != nil {
		return x.Metadata
	}
	return nil
}

func (x *Memory) GetProcessingStatus() ProcessingStatus {
	if x != nil {
		return x.ProcessingStatus
	}
	return ProcessingStatus_PROCESSING_STATUS_UNSPECIFIED
}

func (x *Memory) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

func (x *Memory) GetUpdatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.UpdatedAt
	}
	return nil
}

func (x *Memory) GetCreatedById() []byte {
	if x != nil {
		return x.CreatedById
	}
	return nil
}

func (x *Memory) GetUpdatedById() []byte {
	if x != nil {
		return x.UpdatedById
	}
	return nil
}

type CreateMemoryRequest struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	SpaceId            []byte                 `protobuf:"bytes,1,opt,name=space_id,json=spaceId,proto3" json:"space_id,omitempty"`
	OriginalContentRef string                 `protobuf:"bytes,2,opt,name=original_content_ref,json=originalContentRef,proto3" json:"original_content_ref,omitempty"`
	ContentType        string                 `protobuf:"bytes,3,opt,name=content_type,json=contentType,proto3" json:"content_type,omitempty"`
	Metadata           map[string]string      `protobuf:"bytes,4,rep,name=metadata,proto3" json:"metadata,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *CreateMemoryRequest) Reset() {
	*x = CreateMemoryRequest{}
	mi := &file_goodmem_v1_memory_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateMemoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateMemoryRequest) ProtoMessage() {}

func (x *CreateMemoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_goodmem_v1_memory_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateMemoryRequest.ProtoReflect.Descriptor instead.
func (*CreateMemoryRequest) Descriptor() ([]byte, []int) {
	return file_goodmem_v1_memory_proto_rawDescGZIP(), []int{1}
}

func (x *CreateMemoryRequest) GetSpaceId() []byte {
	if x != nil {
		return x.SpaceId
	}
	return nil
}

func (x *CreateMemoryRequest) GetOriginalContentRef() string {
	if x != nil {
		return x.OriginalContentRef
	}
	return ""
}

func (x *CreateMemoryRequest) GetContentType() string {
	if x != nil {
		return x.ContentType
	}
	return ""
}

func (x *CreateMemoryRequest) GetMetadata() map[string]string {
	if x != nil {
		return x.Metadata
	}
	return nil
}

type GetMemoryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	MemoryId      []byte                 `protobuf:"bytes,1,opt,name=memory_id,json=memoryId,proto3" json:"memory_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetMemoryRequest) Reset() {
	*x = GetMemoryRequest{}
	mi := &file_goodmem_v1_memory_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetMemoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetMemoryRequest) ProtoMessage() {}

func (x *GetMemoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_goodmem_v1_memory_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetMemoryRequest.ProtoReflect.Descriptor instead.
func (*GetMemoryRequest) Descriptor() ([]byte, []int) {
	return file_goodmem_v1_memory_proto_rawDescGZIP(), []int{2}
}

func (x *GetMemoryRequest) GetMemoryId() []byte {
	if x != nil {
		return x.MemoryId
	}
	return nil
}

type ListMemoriesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SpaceId       []byte                 `protobuf:"bytes,1,opt,name=space_id,json=spaceId,proto3" json:"space_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListMemoriesRequest) Reset() {
	*x = ListMemoriesRequest{}
	mi := &file_goodmem_v1_memory_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListMemoriesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListMemoriesRequest) ProtoMessage() {}

func (x *ListMemoriesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_goodmem_v1_memory_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListMemoriesRequest.ProtoReflect.Descriptor instead.
func (*ListMemoriesRequest) Descriptor() ([]byte, []int) {
	return file_goodmem_v1_memory_proto_rawDescGZIP(), []int{3}
}

func (x *ListMemoriesRequest) GetSpaceId() []byte {
	if x != nil {
		return x.SpaceId
	}
	return nil
}

type ListMemoriesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Memories      []*Memory              `protobuf:"bytes,1,rep,name=memories,proto3" json:"memories,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListMemoriesResponse) Reset() {
	*x = ListMemoriesResponse{}
	mi := &file_goodmem_v1_memory_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListMemoriesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListMemoriesResponse) ProtoMessage() {}

func (x *ListMemoriesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_goodmem_v1_memory_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListMemoriesResponse.ProtoReflect.Descriptor instead.
func (*ListMemoriesResponse) Descriptor() ([]byte, []int) {
	return file_goodmem_v1_memory_proto_rawDescGZIP(), []int{4}
}

func (x *ListMemoriesResponse) GetMemories() []*Memory {
	if x != nil {
		return x.Memories
	}
	return nil
}

type DeleteMemoryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	MemoryId      []byte                 `protobuf:"bytes,1,opt,name=memory_id,json=memoryId,proto3" json:"memory_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteMemoryRequest) Reset() {
	*x = DeleteMemoryRequest{}
	mi := &file_goodmem_v1_memory_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteMemoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteMemoryRequest) ProtoMessage() {}

func (x *DeleteMemoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_goodmem_v1_memory_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteMemoryRequest.ProtoReflect.Descriptor instead.
func (*DeleteMemoryRequest) Descriptor() ([]byte, []int) {
	return file_goodmem_v1_memory_proto_rawDescGZIP(), []int{5}
}

func (x *DeleteMemoryRequest) GetMemoryId() []byte {
	if x != nil {
		return x.MemoryId
	}
	return nil
}

var File_goodmem_v1_memory_proto protoreflect.FileDescriptor

const file_goodmem_v1_memory_proto_rawDesc = "" +
	"\n" +
	"\x17goodmem/v1/memory.proto\x12\n" +
	"goodmem.v1\x1a\x1bgoogle/protobuf/empty.proto\x1a\x1fgoogle/protobuf/timestamp.proto\"\x99\x04\n" +
	"\x06Memory\x12\x1b\n" +
	"\tmemory_id\x18\x01 \x01(\fR\bmemoryId\x12\x19\n" +
	"\bspace_id\x18\x02 \x01(\fR\aspaceId\x120\n" +
	"\x14original_content_ref\x18\x03 \x01(\tR\x12originalContentRef\x12!\n" +
	"\fcontent_type\x18\x04 \x01(\tR\vcontentType\x12<\n" +
	"\bmetadata\x18\x05 \x03(\v2 .goodmem.v1.Memory.MetadataEntryR\bmetadata\x12I\n" +
	"\x11processing_status\x18\x06 \x01(\x0e2\x1c.goodmem.v1.ProcessingStatusR\x10processingStatus\x129\n" +
	"\n" +
	"created_at\x18\a \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\x129\n" +
	"\n" +
	"updated_at\x18\b \x01(\v2\x1a.google.protobuf.TimestampR\tupdatedAt\x12\"\n" +
	"\rcreated_by_id\x18\t \x01(\fR\vcreatedById\x12\"\n" +
	"\rupdated_by_id\x18\n" +
	" \x01(\fR\vupdatedById\x1a;\n" +
	"\rMetadataEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\"\x8d\x02\n" +
	"\x13CreateMemoryRequest\x12\x19\n" +
	"\bspace_id\x18\x01 \x01(\fR\aspaceId\x120\n" +
	"\x14original_content_ref\x18\x02 \x01(\tR\x12originalContentRef\x12!\n" +
	"\fcontent_type\x18\x03 \x01(\tR\vcontentType\x12I\n" +
	"\bmetadata\x18\x04 \x03(\v2-.goodmem.v1.CreateMemoryRequest.MetadataEntryR\bmetadata\x1a;\n" +
	"\rMetadataEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\"/\n" +
	"\x10GetMemoryRequest\x12\x1b\n" +
	"\tmemory_id\x18\x01 \x01(\fR\bmemoryId\"0\n" +
	"\x13ListMemoriesRequest\x12\x19\n" +
	"\bspace_id\x18\x01 \x01(\fR\aspaceId\"F\n" +
	"\x14ListMemoriesResponse\x12.\n" +
	"\bmemories\x18\x01 \x03(\v2\x12.goodmem.v1.MemoryR\bmemories\"2\n" +
	"\x13DeleteMemoryRequest\x12\x1b\n" +
	"\tmemory_id\x18\x01 \x01(\fR\bmemoryId*\xb5\x01\n" +
	"\x10ProcessingStatus\x12!\n" +
	"\x1dPROCESSING_STATUS_UNSPECIFIED\x10\x00\x12\x1d\n" +
	"\x19PROCESSING_STATUS_PENDING\x10\x01\x12 \n" +
	"\x1cPROCESSING_STATUS_PROCESSING\x10\x02\x12\x1f\n" +
	"\x1bPROCESSING_STATUS_COMPLETED\x10\x03\x12\x1c\n" +
	"\x18PROCESSING_STATUS_FAILED\x10\x042\xaf\x02\n" +
	"\rMemoryService\x12C\n" +
	"\fCreateMemory\x12\x1f.goodmem.v1.CreateMemoryRequest\x1a\x12.goodmem.v1.Memory\x12=\n" +
	"\tGetMemory\x12\x1c.goodmem.v1.GetMemoryRequest\x1a\x12.goodmem.v1.Memory\x12Q\n" +
	"\fListMemories\x12\x1f.goodmem.v1.ListMemoriesRequest\x1a .goodmem.v1.ListMemoriesResponse\x12G\n" +
	"\fDeleteMemory\x12\x1f.goodmem.v1.DeleteMemoryRequest\x1a\x16.google.protobuf.EmptyBGZEgithub.com/goodmem/goodmem/internal/generated/pb/goodmem/v1;goodmemv1b\x06proto3"

var (
	file_goodmem_v1_memory_proto_rawDescOnce sync.Once
	file_goodmem_v1_memory_proto_rawDescData []byte
)

func file_goodmem_v1_memory_proto_rawDescGZIP() []byte {
	file_goodmem_v1_memory_proto_rawDescOnce.Do(func() {
		file_goodmem_v1_memory_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_goodmem_v1_memory_proto_rawDesc), len(file_goodmem_v1_memory_proto_rawDesc)))
	})
	return file_goodmem_v1_memory_proto_rawDescData
}

var file_goodmem_v1_memory_proto_enumTypes = make([]protoimpl.EnumInfo, 1)
var file_goodmem_v1_memory_proto_msgTypes = make([]protoimpl.MessageInfo, 8)
var file_goodmem_v1_memory_proto_goTypes = []any{
	(ProcessingStatus)(0),         // 0: goodmem.v1.ProcessingStatus
	(*Memory)(nil),                // 1: goodmem.v1.Memory
	(*CreateMemoryRequest)(nil),   // 2: goodmem.v1.CreateMemoryRequest
	(*GetMemoryRequest)(nil),      // 3: goodmem.v1.GetMemoryRequest
	(*ListMemoriesRequest)(nil),   // 4: goodmem.v1.ListMemoriesRequest
	(*ListMemoriesResponse)(nil),  // 5: goodmem.v1.ListMemoriesResponse
	(*DeleteMemoryRequest)(nil),   // 6: goodmem.v1.DeleteMemoryRequest
	nil,                           // 7: goodmem.v1.Memory.MetadataEntry
	nil,                           // 8: goodmem.v1.CreateMemoryRequest.MetadataEntry
	(*timestamppb.Timestamp)(nil), // 9: google.protobuf.Timestamp
	(*emptypb.Empty)(nil),         // 10: google.protobuf.Empty
}
var file_goodmem_v1_memory_proto_depIdxs = []int32{
	7,  // 0: goodmem.v1.Memory.metadata:type_name -> goodmem.v1.Memory.MetadataEntry
	0,  // 1: goodmem.v1.Memory.processing_status:type_name -> goodmem.v1.ProcessingStatus
	9,  // 2: goodmem.v1.Memory.created_at:type_name -> google.protobuf.Timestamp
	9,  // 3: goodmem.v1.Memory.updated_at:type_name -> google.protobuf.Timestamp
	8,  // 4: goodmem.v1.CreateMemoryRequest.metadata:type_name -> goodmem.v1.CreateMemoryRequest.MetadataEntry
	1,  // 5: goodmem.v1.ListMemoriesResponse.memories:type_name -> goodmem.v1.Memory
	2,  // 6: goodmem.v1.MemoryService.CreateMemory:input_type -> goodmem.v1.CreateMemoryRequest
	3,  // 7: goodmem.v1.MemoryService.GetMemory:input_type -> goodmem.v1.GetMemoryRequest
	4,  // 8: goodmem.v1.MemoryService.ListMemories:input_type -> goodmem.v1.ListMemoriesRequest
	6,  // 9: goodmem.v1.MemoryService.DeleteMemory:input_type -> goodmem.v1.DeleteMemoryRequest
	1,  // 10: goodmem.v1.MemoryService.CreateMemory:output_type -> goodmem.v1.Memory
	1,  // 11: goodmem.v1.MemoryService.GetMemory:output_type -> goodmem.v1.Memory
	5,  // 12: goodmem.v1.MemoryService.ListMemories:output_type -> goodmem.v1.ListMemoriesResponse
	10, // 13: goodmem.v1.MemoryService.DeleteMemory:output_type -> google.protobuf.Empty
	10, // [10:14] is the sub-list for method output_type
	6,  // [6:10] is the sub-list for method input_type
	6,  // [6:6] is the sub-list for extension type_name
	6,  // [6:6] is the sub-list for extension extendee
	0,  // [0:6] is the sub-list for field type_name
}

func init() { file_goodmem_v1_memory_proto_init() }
func file_goodmem_v1_memory_proto_init() {
	if File_goodmem_v1_memory_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_goodmem_v1_memory_proto_rawDesc), len(file_goodmem_v1_memory_proto_rawDesc)),
			NumEnums:      1,
			NumMessages:   8,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_goodmem_v1_memory_proto_goTypes,
		DependencyIndexes: file_goodmem_v1_memory_proto_depIdxs,
		EnumInfos:         file_goodmem_v1_memory_proto_enumTypes,
		MessageInfos:      file_goodmem_v1_memory_proto_msgTypes,
	}.Build()
	File_goodmem_v1_memory_proto = out.File
	file_goodmem_v1_memory_proto_goTypes = nil
	file_goodmem_v1_memory_proto_depIdxs = nil
}
