// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: goodmem/v1/space.proto

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

// Space is a named, user-owned container for memories. All memories in a
// space share the space's embedder.
type Space struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SpaceId       []byte                 `protobuf:"bytes,1,opt,name=space_id,json=spaceId,proto3" json:"space_id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Labels        map[string]string      `protobuf:"bytes,3,rep,name=labels,proto3" json:"labels,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	EmbedderId    []byte                 `protobuf:"bytes,4,opt,name=embedder_id,json=embedderId,proto3" json:"embedder_id,omitempty"`
	OwnerId       []byte                 `protobuf:"bytes,5,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	PublicRead    bool                   `protobuf:"varint,6,opt,name=public_read,json=publicRead,proto3" json:"public_read,omitempty"`
	CreatedAt     *timestamppb.Timestamp `protobuf:"bytes,7,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     *timestamppb.Timestamp `protobuf:"bytes,8,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	CreatedById   []byte                 `protobuf:"bytes,9,opt,name=created_by_id,json=createdById,proto3" json:"created_by_id,omitempty"`
	UpdatedById   []byte                 `protobuf:"bytes,10,opt,name=updated_by_id,json=updatedById,proto3" json:"updated_by_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Space) Reset() {
	*x = Space{}
	mi := &file_goodmem_v1_space_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Space) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Space) ProtoMessage() {}

func (x *Space) ProtoReflect() protoreflect.Message {
	mi := &file_goodmem_v1_space_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Space.ProtoReflect.Descriptor instead.
func (*Space) Descriptor() ([]byte, []int) {
	return file_goodmem_v1_space_proto_rawDescGZIP(), []int{0}
}

func (x *Space) GetSpaceId() []byte {
	if x != nil {
		return x.SpaceId
	}
	return nil
}

func (x *Space) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Space) GetLabels() map[string]string {
	if x != nil {
		return x.Labels
	}
	return nil
}

func (x *Space) GetEmbedderId() []byte {
	if x != nil {
		return x.EmbedderId
	}
	return nil
}

func (x *Space) GetOwnerId() []byte {
	if x != nil {
		return x.OwnerId
	}
	return nil
}

func (x *Space) GetPublicRead() bool {
	if x != nil {
		return x.PublicRead
	}
	return false
}

func (x *Space) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

func (x *Space) GetUpdatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.UpdatedAt
	}
	return nil
}

func (x *Space) GetCreatedById() []byte {
	if x != nil {
		return x.CreatedById
	}
	return nil
}

func (x *Space) GetUpdatedById() []byte {
	if x != nil {
		return x.UpdatedById
	}
	return nil
}

type CreateSpaceRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	EmbedderId    []byte                 `protobuf:"bytes,2,opt,name=embedder_id,json=embedderId,proto3" json:"embedder_id,omitempty"`
	Labels        map[string]string      `protobuf:"bytes,3,rep,name=labels,proto3" json:"labels,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	PublicRead    bool                   `protobuf:"varint,4,opt,name=public_read,json=publicRead,proto3" json:"public_read,omitempty"`
	OwnerId       []byte                 `protobuf:"bytes,5,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateSpaceRequest) Reset() {
	*x = CreateSpaceRequest{}
	mi := &file_goodmem_v1_space_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateSpaceRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateSpaceRequest) ProtoMessage() {}

func (x *CreateSpaceRequest) ProtoReflect() protoreflect.Message {
	mi := &file_goodmem_v1_space_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateSpaceRequest.ProtoReflect.Descriptor instead.
func (*CreateSpaceRequest) Descriptor() ([]byte, []int) {
	return file_goodmem_v1_space_proto_rawDescGZIP(), []int{1}
}

func (x *CreateSpaceRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateSpaceRequest) GetEmbedderId() []byte {
	if x != nil {
		return x.EmbedderId
	}
	return nil
}

func (x *CreateSpaceRequest) GetLabels() map[string]string {
	if x != nil {
		return x.Labels
	}
	return nil
}

func (x *CreateSpaceRequest) GetPublicRead() bool {
	if x != nil {
		return x.PublicRead
	}
	return false
}

func (x *CreateSpaceRequest) GetOwnerId() []byte {
	if x != nil {
		return x.OwnerId
	}
	return nil
}

type GetSpaceRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SpaceId       []byte                 `protobuf:"bytes,1,opt,name=space_id,json=spaceId,proto3" json:"space_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetSpaceRequest) Reset() {
	*x = GetSpaceRequest{}
	mi := &file_goodmem_v1_space_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetSpaceRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetSpaceRequest) ProtoMessage() {}

func (x *GetSpaceRequest) ProtoReflect() protoreflect.Message {
	mi := &file_goodmem_v1_space_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetSpaceRequest.ProtoReflect.Descriptor instead.
func (*GetSpaceRequest) Descriptor() ([]byte, []int) {
	return file_goodmem_v1_space_proto_rawDescGZIP(), []int{2}
}

func (x *GetSpaceRequest) GetSpaceId() []byte {
	if x != nil {
		return x.SpaceId
	}
	return nil
}

// ListSpacesRequest filters and pages the caller's visible spaces. When
// next_token is supplied the filters embedded in the token take effect and
// the other fields here are ignored.
type ListSpacesRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	OwnerId        []byte                 `protobuf:"bytes,1,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	LabelSelectors map[string]string      `protobuf:"bytes,2,rep,name=label_selectors,json=labelSelectors,proto3" json:"label_selectors,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	NameFilter     string                 `protobuf:"bytes,3,opt,name=name_filter,json=nameFilter,proto3" json:"name_filter,omitempty"`
	SortBy         string                 `protobuf:"bytes,4,opt,name=sort_by,json=sortBy,proto3" json:"sort_by,omitempty"`
	SortOrder      SortOrder              `protobuf:"varint,5,opt,name=sort_order,json=sortOrder,proto3,enum=goodmem.v1.SortOrder" json:"sort_order,omitempty"`
	MaxResults     int32                  `protobuf:"varint,6,opt,name=max_results,json=maxResults,proto3" json:"max_results,omitempty"`
	NextToken      string                 `protobuf:"bytes,7,opt,name=next_token,json=nextToken,proto3" json:"next_token,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ListSpacesRequest) Reset() {
	*x = ListSpacesRequest{}
	mi := &file_goodmem_v1_space_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListSpacesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListSpacesRequest) ProtoMessage() {}

func (x *ListSpacesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_goodmem_v1_space_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListSpacesRequest.ProtoReflect.Descriptor instead.
func (*ListSpacesRequest) Descriptor() ([]byte, []int) {
	return file_goodmem_v1_space_proto_rawDescGZIP(), []int{3}
}

func (x *ListSpacesRequest) GetOwnerId() []byte {
	if x != nil {
		return x.OwnerId
	}
	return nil
}

func (x *ListSpacesRequest) GetLabelSelectors() map[string]string {
	if x != nil {
		return x.LabelSelectors
	}
	return nil
}

func (x *ListSpacesRequest) GetNameFilter() string {
	if x != nil {
		return x.NameFilter
	}
	return ""
}

func (x *ListSpacesRequest) GetSortBy() string {
	if x != nil {
		return x.SortBy
	}
	return ""
}

func (x *ListSpacesRequest) GetSortOrder() SortOrder {
	if x != nil {
		return x.SortOrder
	}
	return SortOrder_SORT_ORDER_UNSPECIFIED
}

func (x *ListSpacesRequest) GetMaxResults() int32 {
	if x != nil {
		return x.MaxResults
	}
	return 0
}

func (x *ListSpacesRequest) GetNextToken() string {
	if x != nil {
		return x.NextToken
	}
	return ""
}

type ListSpacesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Spaces        []*Space               `protobuf:"bytes,1,rep,name=spaces,proto3" json:"spaces,omitempty"`
	NextToken     string                 `protobuf:"bytes,2,opt,name=next_token,json=nextToken,proto3" json:"next_token,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListSpacesResponse) Reset() {
	*x = ListSpacesResponse{}
	mi := &file_goodmem_v1_space_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListSpacesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListSpacesResponse) ProtoMessage() {}

func (x *ListSpacesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_goodmem_v1_space_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListSpacesResponse.ProtoReflect.Descriptor instead.
func (*ListSpacesResponse) Descriptor() ([]byte, []int) {
	return file_goodmem_v1_space_proto_rawDescGZIP(), []int{4}
}

func (x *ListSpacesResponse) GetSpaces() []*Space {
	if x != nil {
		return x.Spaces
	}
	return nil
}

func (x *ListSpacesResponse) GetNextToken() string {
	if x != nil {
		return x.NextToken
	}
	return ""
}

type UpdateSpaceRequest struct {
	state      protoimpl.MessageState `protogen:"open.v1"`
	SpaceId    []byte                 `protobuf:"bytes,1,opt,name=space_id,json=spaceId,proto3" json:"space_id,omitempty"`
	Name       *string                `protobuf:"bytes,2,opt,name=name,proto3,oneof" json:"name,omitempty"`
	PublicRead *bool                  `protobuf:"varint,3,opt,name=public_read,json=publicRead,proto3,oneof" json:"public_read,omitempty"`
	// Types that are valid to be assigned to LabelUpdateStrategy:
	//
	//	*UpdateSpaceRequest_ReplaceLabels
	//	*UpdateSpaceRequest_MergeLabels
	LabelUpdateStrategy isUpdateSpaceRequest_LabelUpdateStrategy `protobuf_oneof:"label_update_strategy"`
	unknownFields       protoimpl.UnknownFields
	sizeCache           protoimpl.SizeCache
}

func (x *UpdateSpaceRequest) Reset() {
	*x = UpdateSpaceRequest{}
	mi := &file_goodmem_v1_space_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateSpaceRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateSpaceRequest) ProtoMessage() {}

func (x *UpdateSpaceRequest) ProtoReflect() protoreflect.Message {
	mi := &file_goodmem_v1_space_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateSpaceRequest.ProtoReflect.Descriptor instead.
func (*UpdateSpaceRequest) Descriptor() ([]byte, []int) {
	return file_goodmem_v1_space_proto_rawDescGZIP(), []int{5}
}

func (x *UpdateSpaceRequest) GetSpaceId() []byte {
	if x != nil {
		return x.SpaceId
	}
	return nil
}

func (x *UpdateSpaceRequest) GetName() string {
	if x != nil && x.Name != nil {
		return *x.Name
	}
	return ""
}

func (x *UpdateSpaceRequest) GetPublicRead() bool {
	if x != nil && x.PublicRead != nil {
		return *x.PublicRead
	}
	return false
}

func (x *UpdateSpaceRequest) GetLabelUpdateStrategy() isUpdateSpaceRequest_LabelUpdateStrategy {
	if x != nil {
		return x.LabelUpdateStrategy
	}
	return nil
}

func (x *UpdateSpaceRequest) GetReplaceLabels() *StringMap {
	if x != nil {
		if x, ok := x.LabelUpdateStrategy.(*UpdateSpaceRequest_ReplaceLabels); ok {
			return x.ReplaceLabels
		}
	}
	return nil
}

func (x *UpdateSpaceRequest) GetMergeLabels() *StringMap {
	if x != nil {
		if x, ok := x.LabelUpdateStrategy.(*UpdateSpaceRequest_MergeLabels); ok {
			return x.MergeLabels
		}
	}
	return nil
}

type isUpdateSpaceRequest_LabelUpdateStrategy interface {
	isUpdateSpaceRequest_LabelUpdateStrategy()
}

type UpdateSpaceRequest_ReplaceLabels struct {
	ReplaceLabels *StringMap `protobuf:"bytes,4,opt,name=replace_labels,json=replaceLabels,proto3,oneof"`
}

type UpdateSpaceRequest_MergeLabels struct {
	MergeLabels *StringMap `protobuf:"bytes,5,opt,name=merge_labels,json=mergeLabels,proto3,oneof"`
}

func (*UpdateSpaceRequest_ReplaceLabels) isUpdateSpaceRequest_LabelUpdateStrategy() {}

func (*UpdateSpaceRequest_MergeLabels) isUpdateSpaceRequest_LabelUpdateStrategy() {}

type DeleteSpaceRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SpaceId       []byte                 `protobuf:"bytes,1,opt,name=space_id,json=spaceId,proto3" json:"space_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteSpaceRequest) Reset() {
	*x = DeleteSpaceRequest{}
	mi := &file_goodmem_v1_space_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteSpaceRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteSpaceRequest) ProtoMessage() {}

func (x *DeleteSpaceRequest) ProtoReflect() protoreflect.Message {
	mi := &file_goodmem_v1_space_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteSpaceRequest.ProtoReflect.Descriptor instead.
func (*DeleteSpaceRequest) Descriptor() ([]byte, []int) {
	return file_goodmem_v1_space_proto_rawDescGZIP(), []int{6}
}

func (x *DeleteSpaceRequest) GetSpaceId() []byte {
	if x != nil {
		return x.SpaceId
	}
	return nil
}

var File_goodmem_v1_space_proto protoreflect.FileDescriptor

const file_goodmem_v1_space_proto_rawDesc = "" +
	"\n" +
	"\x16goodmem/v1/space.proto\x12\n" +
	"goodmem.v1\x1a\x1bgoogle/protobuf/empty.proto\x1a\x1fgoogle/protobuf/timestamp.proto\x1a\x17goodmem/v1/common.proto\"\xc3\x03\n" +
	"\x05Space\x12\x19\n" +
	"\bspace_id\x18\x01 \x01(\fR\aspaceId\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x125\n" +
	"\x06labels\x18\x03 \x03(\v2\x1d.goodmem.v1.Space.LabelsEntryR\x06labels\x12\x1f\n" +
	"\vembedder_id\x18\x04 \x01(\fR\n" +
	"embedderId\x12\x19\n" +
	"\bowner_id\x18\x05 \x01(\fR\aownerId\x12\x1f\n" +
	"\vpublic_read\x18\x06 \x01(\bR\n" +
	"publicRead\x129\n" +
	"\n" +
	"created_at\x18\a \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\x129\n" +
	"\n" +
	"updated_at\x18\b \x01(\v2\x1a.google.protobuf.TimestampR\tupdatedAt\x12\"\n" +
	"\rcreated_by_id\x18\t \x01(\fR\vcreatedById\x12\"\n" +
	"\rupdated_by_id\x18\n" +
	" \x01(\fR\vupdatedById\x1a9\n" +
	"\vLabelsEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\"\x84\x02\n" +
	"\x12CreateSpaceRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x1f\n" +
	"\vembedder_id\x18\x02 \x01(\fR\n" +
	"embedderId\x12B\n" +
	"\x06labels\x18\x03 \x03(\v2*.goodmem.v1.CreateSpaceRequest.LabelsEntryR\x06labels\x12\x1f\n" +
	"\vpublic_read\x18\x04 \x01(\bR\n" +
	"publicRead\x12\x19\n" +
	"\bowner_id\x18\x05 \x01(\fR\aownerId\x1a9\n" +
	"\vLabelsEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\",\n" +
	"\x0fGetSpaceRequest\x12\x19\n" +
	"\bspace_id\x18\x01 \x01(\fR\aspaceId\"\xfd\x02\n" +
	"\x11ListSpacesRequest\x12\x19\n" +
	"\bowner_id\x18\x01 \x01(\fR\aownerId\x12Z\n" +
	"\x0flabel_selectors\x18\x02 \x03(\v21.goodmem.v1.ListSpacesRequest.LabelSelectorsEntryR\x0elabelSelectors\x12\x1f\n" +
	"\vname_filter\x18\x03 \x01(\tR\n" +
	"nameFilter\x12\x17\n" +
	"\asort_by\x18\x04 \x01(\tR\x06sortBy\x124\n" +
	"\n" +
	"sort_order\x18\x05 \x01(\x0e2\x15.goodmem.v1.SortOrderR\tsortOrder\x12\x1f\n" +
	"\vmax_results\x18\x06 \x01(\x05R\n" +
	"maxResults\x12\x1d\n" +
	"\n" +
	"next_token\x18\a \x01(\tR\tnextToken\x1aA\n" +
	"\x13LabelSelectorsEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\"^\n" +
	"\x12ListSpacesResponse\x12)\n" +
	"\x06spaces\x18\x01 \x03(\v2\x11.goodmem.v1.SpaceR\x06spaces\x12\x1d\n" +
	"\n" +
	"next_token\x18\x02 \x01(\tR\tnextToken\"\x9c\x02\n" +
	"\x12UpdateSpaceRequest\x12\x19\n" +
	"\bspace_id\x18\x01 \x01(\fR\aspaceId\x12\x17\n" +
	"\x04name\x18\x02 \x01(\tH\x01R\x04name\x88\x01\x01\x12$\n" +
	"\vpublic_read\x18\x03 \x01(\bH\x02R\n" +
	"publicRead\x88\x01\x01\x12>\n" +
	"\x0ereplace_labels\x18\x04 \x01(\v2\x15.goodmem.v1.StringMapH\x00R\rreplaceLabels\x12:\n" +
	"\fmerge_labels\x18\x05 \x01(\v2\x15.goodmem.v1.StringMapH\x00R\vmergeLabelsB\x17\n" +
	"\x15label_update_strategyB\a\n" +
	"\x05_nameB\x0e\n" +
	"\f_public_read\"/\n" +
	"\x12DeleteSpaceRequest\x12\x19\n" +
	"\bspace_id\x18\x01 \x01(\fR\aspaceId2\xe2\x02\n" +
	"\fSpaceService\x12@\n" +
	"\vCreateSpace\x12\x1e.goodmem.v1.CreateSpaceRequest\x1a\x11.goodmem.v1.Space\x12:\n" +
	"\bGetSpace\x12\x1b.goodmem.v1.GetSpaceRequest\x1a\x11.goodmem.v1.Space\x12K\n" +
	"\n" +
	"ListSpaces\x12\x1d.goodmem.v1.ListSpacesRequest\x1a\x1e.goodmem.v1.ListSpacesResponse\x12@\n" +
	"\vUpdateSpace\x12\x1e.goodmem.v1.UpdateSpaceRequest\x1a\x11.goodmem.v1.Space\x12E\n" +
	"\vDeleteSpace\x12\x1e.goodmem.v1.DeleteSpaceRequest\x1a\x16.google.protobuf.EmptyBGZEgithub.com/goodmem/goodmem/internal/generated/pb/goodmem/v1;goodmemv1b\x06proto3"

var (
	file_goodmem_v1_space_proto_rawDescOnce sync.Once
	file_goodmem_v1_space_proto_rawDescData []byte
)

func file_goodmem_v1_space_proto_rawDescGZIP() []byte {
	file_goodmem_v1_space_proto_rawDescOnce.Do(func() {
		file_goodmem_v1_space_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_goodmem_v1_space_proto_rawDesc), len(file_goodmem_v1_space_proto_rawDesc)))
	})
	return file_goodmem_v1_space_proto_rawDescData
}

var file_goodmem_v1_space_proto_msgTypes = make([]protoimpl.MessageInfo, 10)
var file_goodmem_v1_space_proto_goTypes = []any{
	(*Space)(nil),                 // 0: goodmem.v1.Space
	(*CreateSpaceRequest)(nil),    // 1: goodmem.v1.CreateSpaceRequest
	(*GetSpaceRequest)(nil),       // 2: goodmem.v1.GetSpaceRequest
	(*ListSpacesRequest)(nil),     // 3: goodmem.v1.ListSpacesRequest
	(*ListSpacesResponse)(nil),    // 4: goodmem.v1.ListSpacesResponse
	(*UpdateSpaceRequest)(nil),    // 5: goodmem.v1.UpdateSpaceRequest
	(*DeleteSpaceRequest)(nil),    // 6: goodmem.v1.DeleteSpaceRequest
	nil,                           // 7: goodmem.v1.Space.LabelsEntry
	nil,                           // 8: goodmem.v1.CreateSpaceRequest.LabelsEntry
	nil,                           // 9: goodmem.v1.ListSpacesRequest.LabelSelectorsEntry
	(*timestamppb.Timestamp)(nil), // 10: google.protobuf.Timestamp
	(SortOrder)(0),                // 11: goodmem.v1.SortOrder
	(*StringMap)(nil),             // 12: goodmem.v1.StringMap
	(*emptypb.Empty)(nil),         // 13: google.protobuf.Empty
}
var file_goodmem_v1_space_proto_depIdxs = []int32{
	7,  // 0: goodmem.v1.Space.labels:type_name -> goodmem.v1.Space.LabelsEntry
	10, // 1: goodmem.v1.Space.created_at:type_name -> google.protobuf.Timestamp
	10, // 2: goodmem.v1.Space.updated_at:type_name -> google.protobuf.Timestamp
	8,  // 3: goodmem.v1.CreateSpaceRequest.labels:type_name -> goodmem.v1.CreateSpaceRequest.LabelsEntry
	9,  // 4: goodmem.v1.ListSpacesRequest.label_selectors:type_name -> goodmem.v1.ListSpacesRequest.LabelSelectorsEntry
	11, // 5: goodmem.v1.ListSpacesRequest.sort_order:type_name -> goodmem.v1.SortOrder
	0,  // 6: goodmem.v1.ListSpacesResponse.spaces:type_name -> goodmem.v1.Space
	12, // 7: goodmem.v1.UpdateSpaceRequest.replace_labels:type_name -> goodmem.v1.StringMap
	12, // 8: goodmem.v1.UpdateSpaceRequest.merge_labels:type_name -> goodmem.v1.StringMap
	1,  // 9: goodmem.v1.SpaceService.CreateSpace:input_type -> goodmem.v1.CreateSpaceRequest
	2,  // 10: goodmem.v1.SpaceService.GetSpace:input_type -> goodmem.v1.GetSpaceRequest
	3,  // 11: goodmem.v1.SpaceService.ListSpaces:input_type -> goodmem.v1.ListSpacesRequest
	5,  // 12: goodmem.v1.SpaceService.UpdateSpace:input_type -> goodmem.v1.UpdateSpaceRequest
	6,  // 13: goodmem.v1.SpaceService.DeleteSpace:input_type -> goodmem.v1.DeleteSpaceRequest
	0,  // 14: goodmem.v1.SpaceService.CreateSpace:output_type -> goodmem.v1.Space
	0,  // 15: goodmem.v1.SpaceService.GetSpace:output_type -> goodmem.v1.Space
	4,  // 16: goodmem.v1.SpaceService.ListSpaces:output_type -> goodmem.v1.ListSpacesResponse
	0,  // 17: goodmem.v1.SpaceService.UpdateSpace:output_type -> goodmem.v1.Space
	13, // 18: goodmem.v1.SpaceService.DeleteSpace:output_type -> google.protobuf.Empty
	14, // [14:19] is the sub-list for method output_type
	9,  // [9:14] is the sub-list for method input_type
	9,  // [9:9] is the sub-list for extension type_name
	9,  // [9:9] is the sub-list for extension extendee
	0,  // [0:9] is the sub-list for field type_name
}

func init() { file_goodmem_v1_space_proto_init() }
func file_goodmem_v1_space_proto_init() {
	if File_goodmem_v1_space_proto != nil {
		return
	}
	file_goodmem_v1_common_proto_init()
	file_goodmem_v1_space_proto_msgTypes[5].OneofWrappers = []any{
		(*UpdateSpaceRequest_ReplaceLabels)(nil),
		(*UpdateSpaceRequest_MergeLabels)(nil),
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_goodmem_v1_space_proto_rawDesc), len(file_goodmem_v1_space_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   10,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_goodmem_v1_space_proto_goTypes,
		DependencyIndexes: file_goodmem_v1_space_proto_depIdxs,
		MessageInfos:      file_goodmem_v1_space_proto_msgTypes,
	}.Build()
	File_goodmem_v1_space_proto = out.File
	file_goodmem_v1_space_proto_goTypes = nil
	file_goodmem_v1_space_proto_depIdxs = nil
}
