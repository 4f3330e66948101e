// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: goodmem/v1/embedder.proto

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

type ProviderType int32

const (
	ProviderType_PROVIDER_TYPE_UNSPECIFIED ProviderType = 0
	ProviderType_PROVIDER_TYPE_OPENAI      ProviderType = 1
	ProviderType_PROVIDER_TYPE_VLLM        ProviderType = 2
	ProviderType_PROVIDER_TYPE_TEI         ProviderType = 3
)

// Enum value maps for ProviderType.
var (
	ProviderType_name = map[int32]string{
		0: "PROVIDER_TYPE_UNSPECIFIED",
		1: "PROVIDER_TYPE_OPENAI",
		2: "PROVIDER_TYPE_VLLM",
		3: "PROVIDER_TYPE_TEI",
	}
	ProviderType_value = map[string]int32{
		"PROVIDER_TYPE_UNSPECIFIED": 0,
		"PROVIDER_TYPE_OPENAI":      1,
		"PROVIDER_TYPE_VLLM":        2,
		"PROVIDER_TYPE_TEI":         3,
	}
)

func (x ProviderType) Enum() *ProviderType {
	p := new(ProviderType)
	*p = x
	return p
}

func (x ProviderType) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (ProviderType) Descriptor() protoreflect.EnumDescriptor {
	return file_goodmem_v1_embedder_proto_enumTypes[0].Descriptor()
}

func (ProviderType) Type() protoreflect.EnumType {
	return &file_goodmem_v1_embedder_proto_enumTypes[0]
}

func (x ProviderType) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use ProviderType.Descriptor instead.
func (ProviderType) EnumDescriptor() ([]byte, []int) {
	return file_goodmem_v1_embedder_proto_rawDescGZIP(), []int{0}
}

type Modality int32

const (
	Modality_MODALITY_UNSPECIFIED Modality = 0
	Modality_MODALITY_TEXT        Modality = 1
	Modality_MODALITY_IMAGE       Modality = 2
	Modality_MODALITY_AUDIO       Modality = 3
	Modality_MODALITY_VIDEO       Modality = 4
)

// Enum value maps for Modality.
var (
	Modality_name = map[int32]string{
		0: "MODALITY_UNSPECIFIED",
		1: "MODALITY_TEXT",
		2: "MODALITY_IMAGE",
		3: "MODALITY_AUDIO",
		4: "MODALITY_VIDEO",
	}
	Modality_value = map[string]int32{
		"MODALITY_UNSPECIFIED": 0,
		"MODALITY_TEXT":        1,
		"MODALITY_IMAGE":       2,
		"MODALITY_AUDIO":       3,
		"MODALITY_VIDEO":       4,
	}
)

func (x Modality) Enum() *Modality {
	p := new(Modality)
	*p = x
	return p
}

func (x Modality) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (Modality) Descriptor() protoreflect.EnumDescriptor {
	return file_goodmem_v1_embedder_proto_enumTypes[1].Descriptor()
}

func (Modality) Type() protoreflect.EnumType {
	return &file_goodmem_v1_embedder_proto_enumTypes[1]
}

func (x Modality) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use Modality.Descriptor instead.
func (Modality) EnumDescriptor() ([]byte, []int) {
	return file_goodmem_v1_embedder_proto_rawDescGZIP(), []int{1}
}

// Embedder describes how content is turned into fixed-dimension vectors by
// an external embedding endpoint. The credentials field is populated on
// Get responses for callers allowed to see it and is always empty in List
// responses.
type Embedder struct {
	state               protoimpl.MessageState `protogen:"open.v1"`
	EmbedderId          []byte                 `protobuf:"bytes,1,opt,name=embedder_id,json=embedderId,proto3" json:"embedder_id,omitempty"`
	DisplayName         string                 `protobuf:"bytes,2,opt,name=display_name,json=displayName,proto3" json:"display_name,omitempty"`
	Description         string                 `protobuf:"bytes,3,opt,name=description,proto3" json:"description,omitempty"`
	ProviderType        ProviderType           `protobuf:"varint,4,opt,name=provider_type,json=providerType,proto3,enum=goodmem.v1.ProviderType" json:"provider_type,omitempty"`
	EndpointUrl         string                 `protobuf:"bytes,5,opt,name=endpoint_url,json=endpointUrl,proto3" json:"endpoint_url,omitempty"`
	ApiPath             string                 `protobuf:"bytes,6,opt,name=api_path,json=apiPath,proto3" json:"api_path,omitempty"`
	ModelIdentifier     string                 `protobuf:"bytes,7,opt,name=model_identifier,json=modelIdentifier,proto3" json:"model_identifier,omitempty"`
	Dimensionality      int32                  `protobuf:"varint,8,opt,name=dimensionality,proto3" json:"dimensionality,omitempty"`
	MaxSequenceLength   *int32                 `protobuf:"varint,9,opt,name=max_sequence_length,json=maxSequenceLength,proto3,oneof" json:"max_sequence_length,omitempty"`
	SupportedModalities []Modality             `protobuf:"varint,10,rep,packed,name=supported_modalities,json=supportedModalities,proto3,enum=goodmem.v1.Modality" json:"supported_modalities,omitempty"`
	Credentials         string                 `protobuf:"bytes,11,opt,name=credentials,proto3" json:"credentials,omitempty"`
	Labels              map[string]string      `protobuf:"bytes,12,rep,name=labels,proto3" json:"labels,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	Version             string                 `protobuf:"bytes,13,opt,name=version,proto3" json:"version,omitempty"`
	MonitoringEndpoint  string                 `protobuf:"bytes,14,opt,name=monitoring_endpoint,json=monitoringEndpoint,proto3" json:"monitoring_endpoint,omitempty"`
	OwnerId             []byte                 `protobuf:"bytes,15,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	CreatedAt           *timestamppb.Timestamp `protobuf:"bytes,16,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt           *timestamppb.Timestamp `protobuf:"bytes,17,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	CreatedById         []byte                 `protobuf:"bytes,18,opt,name=created_by_id,json=createdById,proto3" json:"created_by_id,omitempty"`
	UpdatedById         []byte                 `protobuf:"bytes,19,opt,name=updated_by_id,json=updatedById,proto3" json:"updated_by_id,omitempty"`
	unknownFields       protoimpl.UnknownFields
	sizeCache           protoimpl.SizeCache
}

func (x *Embedder) Reset() {
	*x = Embedder{}
	mi := &file_goodmem_v1_embedder_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Embedder) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Embedder) ProtoMessage() {}

func (x *Embedder) ProtoReflect() protoreflect.Message {
	mi := &file_goodmem_v1_embedder_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Embedder.ProtoReflect.Descriptor instead.
func (*Embedder) Descriptor() ([]byte, []int) {
	return file_goodmem_v1_embedder_proto_rawDescGZIP(), []int{0}
}

func (x *Embedder) GetEmbedderId() []byte {
	if x != nil {
		return x.EmbedderId
	}
	return nil
}

func (x *Embedder) GetDisplayName() string {
	if x != nil {
		return x.DisplayName
	}
	return ""
}

func (x *Embedder) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *Embedder) GetProviderType() ProviderType {
	if x != nil {
		return x.ProviderType
	}
	return ProviderType_PROVIDER_TYPE_UNSPECIFIED
}

func (x *Embedder) GetEndpointUrl() string {
	if x != nil {
		return x.EndpointUrl
	}
	return ""
}

func (x *Embedder) GetApiPath() string {
	if x != nil {
		return x.ApiPath
	}
	return ""
}

func (x *Embedder) GetModelIdentifier() string {
	if x != nil {
		return x.ModelIdentifier
	}
	return ""
}

func (x *Embedder) GetDimensionality() int32 {
	if x != nil {
		return x.Dimensionality
	}
	return 0
}

func (x *Embedder) GetMaxSequenceLength() int32 {
	if x != nil && x.MaxSequenceLength != nil {
		return *x.MaxSequenceLength
	}
	return 0
}

func (x *Embedder) GetSupportedModalities() []Modality {
	if x != nil {
		return x.SupportedModalities
	}
	return nil
}

func (x *Embedder) GetCredentials() string {
	if x != nil {
		return x.Credentials
	}
	return ""
}

func (x *Embedder) GetLabels() map[string]string {
	if x != nil {
		return x.Labels
	}
	return nil
}

func (x *Embedder) GetVersion() string {
	if x != nil {
		return x.Version
	}
	return ""
}

func (x *Embedder) GetMonitoringEndpoint() string {
	if x != nil {
		return x.MonitoringEndpoint
	}
	return ""
}

func (x *Embedder) GetOwnerId() []byte {
	if x != nil {
		return x.OwnerId
	}
	return nil
}

func (x *Embedder) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

func (x *Embedder) GetUpdatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.UpdatedAt
	}
	return nil
}

func (x *Embedder) GetCreatedById() []byte {
	if x != nil {
		return x.CreatedById
	}
	return nil
}

func (x *Embedder) GetUpdatedById() []byte {
	if x != nil {
		return x.UpdatedById
	}
	return nil
}

type CreateEmbedderRequest struct {
	state               protoimpl.MessageState `protogen:"open.v1"`
	DisplayName         string                 `protobuf:"bytes,1,opt,name=display_name,json=displayName,proto3" json:"display_name,omitempty"`
	Description         string                 `protobuf:"bytes,2,opt,name=description,proto3" json:"description,omitempty"`
	ProviderType        ProviderType           `protobuf:"varint,3,opt,name=provider_type,json=providerType,proto3,enum=goodmem.v1.ProviderType" json:"provider_type,omitempty"`
	EndpointUrl         string                 `protobuf:"bytes,4,opt,name=endpoint_url,json=endpointUrl,proto3" json:"endpoint_url,omitempty"`
	ApiPath             string                 `protobuf:"bytes,5,opt,name=api_path,json=apiPath,proto3" json:"api_path,omitempty"`
	ModelIdentifier     string                 `protobuf:"bytes,6,opt,name=model_identifier,json=modelIdentifier,proto3" json:"model_identifier,omitempty"`
	Dimensionality      int32                  `protobuf:"varint,7,opt,name=dimensionality,proto3" json:"dimensionality,omitempty"`
	MaxSequenceLength   *int32                 `protobuf:"varint,8,opt,name=max_sequence_length,json=maxSequenceLength,proto3,oneof" json:"max_sequence_length,omitempty"`
	SupportedModalities []Modality             `protobuf:"varint,9,rep,packed,name=supported_modalities,json=supportedModalities,proto3,enum=goodmem.v1.Modality" json:"supported_modalities,omitempty"`
	Credentials         string                 `protobuf:"bytes,10,opt,name=credentials,proto3" json:"credentials,omitempty"`
	Labels              map[string]string      `protobuf:"bytes,11,rep,name=labels,proto3" json:"labels,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	Version             string                 `protobuf:"bytes,12,opt,name=version,proto3" json:"version,omitempty"`
	MonitoringEndpoint  string                 `protobuf:"bytes,13,opt,name=monitoring_endpoint,json=monitoringEndpoint,proto3" json:"monitoring_endpoint,omitempty"`
	OwnerId             []byte                 `protobuf:"bytes,14,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	unknownFields       protoimpl.UnknownFields
	sizeCache           protoimpl.SizeCache
}

func (x *CreateEmbedderRequest) Reset() {
	*x = CreateEmbedderRequest{}
	mi := &file_goodmem_v1_embedder_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateEmbedderRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateEmbedderRequest) ProtoMessage() {}

func (x *CreateEmbedderRequest) ProtoReflect() protoreflect.Message {
	mi := &file_goodmem_v1_embedder_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateEmbedderRequest.ProtoReflect.Descriptor instead.
func (*CreateEmbedderRequest) Descriptor() ([]byte, []int) {
	return file_goodmem_v1_embedder_proto_rawDescGZIP(), []int{1}
}

func (x *CreateEmbedderRequest) GetDisplayName() string {
	if x != nil {
		return x.DisplayName
	}
	return ""
}

func (x *CreateEmbedderRequest) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *CreateEmbedderRequest) GetProviderType() ProviderType {
	if x != nil {
		return x.ProviderType
	}
	return ProviderType_PROVIDER_TYPE_UNSPECIFIED
}

func (x *CreateEmbedderRequest) GetEndpointUrl() string {
	if x != nil {
		return x.EndpointUrl
	}
	return ""
}

func (x *CreateEmbedderRequest) GetApiPath() string {
	if x != nil {
		return x.ApiPath
	}
	return ""
}

func (x *CreateEmbedderRequest) GetModelIdentifier() string {
	if x != nil {
		return x.ModelIdentifier
	}
	return ""
}

func (x *CreateEmbedderRequest) GetDimensionality() int32 {
	if x != nil {
		return x.Dimensionality
	}
	return 0
}

func (x *CreateEmbedderRequest) GetMaxSequenceLength() int32 {
	if x != nil && x.MaxSequenceLength != nil {
		return *x.MaxSequenceLength
	}
	return 0
}

func (x *CreateEmbedderRequest) GetSupportedModalities() []Modality {
	if x != nil {
		return x.SupportedModalities
	}
	return nil
}

func (x *CreateEmbedderRequest) GetCredentials() string {
	if x != nil {
		return x.Credentials
	}
	return ""
}

func (x *CreateEmbedderRequest) GetLabels() map[string]string {
	if x != nil {
		return x.Labels
	}
	return nil
}

func (x *CreateEmbedderRequest) GetVersion() string {
	if x != nil {
		return x.Version
	}
	return ""
}

func (x *CreateEmbedderRequest) GetMonitoringEndpoint() string {
	if x != nil {
		return x.MonitoringEndpoint
	}
	return ""
}

func (x *CreateEmbedderRequest) GetOwnerId() []byte {
	if x != nil {
		return x.OwnerId
	}
	return nil
}

type GetEmbedderRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	EmbedderId    []byte                 `protobuf:"bytes,1,opt,name=embedder_id,json=embedderId,proto3" json:"embedder_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetEmbedderRequest) Reset() {
	*x = GetEmbedderRequest{}
	mi := &file_goodmem_v1_embedder_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetEmbedderRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetEmbedderRequest) ProtoMessage() {}

func (x *GetEmbedderRequest) ProtoReflect() protoreflect.Message {
	mi := &file_goodmem_v1_embedder_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetEmbedderRequest.ProtoReflect.Descriptor instead.
func (*GetEmbedderRequest) Descriptor() ([]byte, []int) {
	return file_goodmem_v1_embedder_proto_rawDescGZIP(), []int{2}
}

func (x *GetEmbedderRequest) GetEmbedderId() []byte {
	if x != nil {
		return x.EmbedderId
	}
	return nil
}

type ListEmbeddersRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	OwnerId        []byte                 `protobuf:"bytes,1,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	ProviderType   ProviderType           `protobuf:"varint,2,opt,name=provider_type,json=providerType,proto3,enum=goodmem.v1.ProviderType" json:"provider_type,omitempty"`
	LabelSelectors map[string]string      `protobuf:"bytes,3,rep,name=label_selectors,json=labelSelectors,proto3" json:"label_selectors,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ListEmbeddersRequest) Reset() {
	*x = ListEmbeddersRequest{}
	mi := &file_goodmem_v1_embedder_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListEmbeddersRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListEmbeddersRequest) ProtoMessage() {}

func (x *ListEmbeddersRequest) ProtoReflect() protoreflect.Message {
	mi := &file_goodmem_v1_embedder_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListEmbeddersRequest.ProtoReflect.Descriptor instead.
func (*ListEmbeddersRequest) Descriptor() ([]byte, []int) {
	return file_goodmem_v1_embedder_proto_rawDescGZIP(), []int{3}
}

func (x *ListEmbeddersRequest) GetOwnerId() []byte {
	if x != nil {
		return x.OwnerId
	}
	return nil
}

func (x *ListEmbeddersRequest) GetProviderType() ProviderType {
	if x != nil {
		return x.ProviderType
	}
	return ProviderType_PROVIDER_TYPE_UNSPECIFIED
}

func (x *ListEmbeddersRequest) GetLabelSelectors() map[string]string {
	if x != nil {
		return x.LabelSelectors
	}
	return nil
}

type ListEmbeddersResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Embedders     []*Embedder            `protobuf:"bytes,1,rep,name=embedders,proto3" json:"embedders,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListEmbeddersResponse) Reset() {
	*x = ListEmbeddersResponse{}
	mi := &file_goodmem_v1_embedder_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListEmbeddersResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListEmbeddersResponse) ProtoMessage() {}

func (x *ListEmbeddersResponse) ProtoReflect() protoreflect.Message {
	mi := &file_goodmem_v1_embedder_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListEmbeddersResponse.ProtoReflect.Descriptor instead.
func (*ListEmbeddersResponse) Descriptor() ([]byte, []int) {
	return file_goodmem_v1_embedder_proto_rawDescGZIP(), []int{4}
}

func (x *ListEmbeddersResponse) GetEmbedders() []*Embedder {
	if x != nil {
		return x.Embedders
	}
	return nil
}

// UpdateEmbedderRequest updates scalar fields when present. provider_type
// is immutable; setting it to anything but unspecified is rejected.
// supported_modalities replaces the stored set when non-empty.
type UpdateEmbedderRequest struct {
	state               protoimpl.MessageState `protogen:"open.v1"`
	EmbedderId          []byte                 `protobuf:"bytes,1,opt,name=embedder_id,json=embedderId,proto3" json:"embedder_id,omitempty"`
	DisplayName         *string                `protobuf:"bytes,2,opt,name=display_name,json=displayName,proto3,oneof" json:"display_name,omitempty"`
	Description         *string                `protobuf:"bytes,3,opt,name=description,proto3,oneof" json:"description,omitempty"`
	ProviderType        ProviderType           `protobuf:"varint,4,opt,name=provider_type,json=providerType,proto3,enum=goodmem.v1.ProviderType" json:"provider_type,omitempty"`
	EndpointUrl         *string                `protobuf:"bytes,5,opt,name=endpoint_url,json=endpointUrl,proto3,oneof" json:"endpoint_url,omitempty"`
	ApiPath             *string                `protobuf:"bytes,6,opt,name=api_path,json=apiPath,proto3,oneof" json:"api_path,omitempty"`
	ModelIdentifier     *string                `protobuf:"bytes,7,opt,name=model_identifier,json=modelIdentifier,proto3,oneof" json:"model_identifier,omitempty"`
	Dimensionality      *int32                 `protobuf:"varint,8,opt,name=dimensionality,proto3,oneof" json:"dimensionality,omitempty"`
	MaxSequenceLength   *int32                 `protobuf:"varint,9,opt,name=max_sequence_length,json=maxSequenceLength,proto3,oneof" json:"max_sequence_length,omitempty"`
	SupportedModalities []Modality             `protobuf:"varint,10,rep,packed,name=supported_modalities,json=supportedModalities,proto3,enum=goodmem.v1.Modality" json:"supported_modalities,omitempty"`
	Credentials         *string                `protobuf:"bytes,11,opt,name=credentials,proto3,oneof" json:"credentials,omitempty"`
	Version             *string                `protobuf:"bytes,12,opt,name=version,proto3,oneof" json:"version,omitempty"`
	MonitoringEndpoint  *string                `protobuf:"bytes,13,opt,name=monitoring_endpoint,json=monitoringEndpoint,proto3,oneof" json:"monitoring_endpoint,omitempty"`
	// Types that are valid to be assigned to LabelUpdateStrategy:
	//
	//	*UpdateEmbedderRequest_ReplaceLabels
	//	*UpdateEmbedderRequest_MergeLabels
	LabelUpdateStrategy isUpdateEmbedderRequest_LabelUpdateStrategy `protobuf_oneof:"label_update_strategy"`
	unknownFields       protoimpl.UnknownFields
	sizeCache           protoimpl.SizeCache
}

func (x *UpdateEmbedderRequest) Reset() {
	*x = UpdateEmbedderRequest{}
	mi := &file_goodmem_v1_embedder_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateEmbedderRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateEmbedderRequest) ProtoMessage() {}

func (x *UpdateEmbedderRequest) ProtoReflect() protoreflect.Message {
	mi := &file_goodmem_v1_embedder_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateEmbedderRequest.ProtoReflect.Descriptor instead.
func (*UpdateEmbedderRequest) Descriptor() ([]byte, []int) {
	return file_goodmem_v1_embedder_proto_rawDescGZIP(), []int{5}
}

func (x *UpdateEmbedderRequest) GetEmbedderId() []byte {
	if x != nil {
		return x.EmbedderId
	}
	return nil
}

func (x *UpdateEmbedderRequest) GetDisplayName() string {
	if x != nil && x.DisplayName != nil {
		return *x.DisplayName
	}
	return ""
}

func (x *UpdateEmbedderRequest) GetDescription() string {
	if x != nil && x.Description != nil {
		return *x.Description
	}
	return ""
}

func (x *UpdateEmbedderRequest) GetProviderType() ProviderType {
	if x != nil {
		return x.ProviderType
	}
	return ProviderType_PROVIDER_TYPE_UNSPECIFIED
}

func (x *UpdateEmbedderRequest) GetEndpointUrl() string {
	if x != nil && x.EndpointUrl != nil {
		return *x.EndpointUrl
	}
	return ""
}

func (x *UpdateEmbedderRequest) GetApiPath() string {
	if x != nil && x.ApiPath != nil {
		return *x.ApiPath
	}
	return ""
}

func (x *UpdateEmbedderRequest) GetModelIdentifier() string {
	if x != nil && x.ModelIdentifier != nil {
		return *x.ModelIdentifier
	}
	return ""
}

func (x *UpdateEmbedderRequest) GetDimensionality() int32 {
	if x != nil && x.Dimensionality != nil {
		return *x.Dimensionality
	}
	return 0
}

func (x *UpdateEmbedderRequest) GetMaxSequenceLength() int32 {
	if x != nil && x.MaxSequenceLength != nil {
		return *x.MaxSequenceLength
	}
	return 0
}

func (x *UpdateEmbedderRequest) GetSupportedModalities() []Modality {
	if x != nil {
		return x.SupportedModalities
	}
	return nil
}

func (x *UpdateEmbedderRequest) GetCredentials() string {
	if x != nil && x.Credentials != nil {
		return *x.Credentials
	}
	return ""
}

func (x *UpdateEmbedderRequest) GetVersion() string {
	if x != nil && x.Version != nil {
		return *x.Version
	}
	return ""
}

func (x *UpdateEmbedderRequest) GetMonitoringEndpoint() string {
	if x != nil && x.MonitoringEndpoint != nil {
		return *x.MonitoringEndpoint
	}
	return ""
}

func (x *UpdateEmbedderRequest) GetLabelUpdateStrategy() isUpdateEmbedderRequest_LabelUpdateStrategy {
	if x != nil {
		return x.LabelUpdateStrategy
	}
	return nil
}

func (x *UpdateEmbedderRequest) GetReplaceLabels() *StringMap {
	if x != nil {
		if x, ok := x.LabelUpdateStrategy.(*UpdateEmbedderRequest_ReplaceLabels); ok {
			return x.ReplaceLabels
		}
	}
	return nil
}

func (x *UpdateEmbedderRequest) GetMergeLabels() *StringMap {
	if x != nil {
		if x, ok := x.LabelUpdateStrategy.(*UpdateEmbedderRequest_MergeLabels); ok {
			return x.MergeLabels
		}
	}
	return nil
}

type isUpdateEmbedderRequest_LabelUpdateStrategy interface {
	isUpdateEmbedderRequest_LabelUpdateStrategy()
}

type UpdateEmbedderRequest_ReplaceLabels struct {
	ReplaceLabels *StringMap `protobuf:"bytes,14,opt,name=replace_labels,json=replaceLabels,proto3,oneof"`
}

type UpdateEmbedderRequest_MergeLabels struct {
	MergeLabels *StringMap `protobuf:"bytes,15,opt,name=merge_labels,json=mergeLabels,proto3,oneof"`
}

func (*UpdateEmbedderRequest_ReplaceLabels) isUpdateEmbedderRequest_LabelUpdateStrategy() {}

func (*UpdateEmbedderRequest_MergeLabels) isUpdateEmbedderRequest_LabelUpdateStrategy() {}

type DeleteEmbedderRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	EmbedderId    []byte                 `protobuf:"bytes,1,opt,name=embedder_id,json=embedderId,proto3" json:"embedder_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteEmbedderRequest) Reset() {
	*x = DeleteEmbedderRequest{}
	mi := &file_goodmem_v1_embedder_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteEmbedderRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteEmbedderRequest) ProtoMessage() {}

func (x *DeleteEmbedderRequest) ProtoReflect() protoreflect.Message {
	mi := &file_goodmem_v1_embedder_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteEmbedderRequest.ProtoReflect.Descriptor instead.
func (*DeleteEmbedderRequest) Descriptor() ([]byte, []int) {
	return file_goodmem_v1_embedder_proto_rawDescGZIP(), []int{6}
}

func (x *DeleteEmbedderRequest) GetEmbedderId() []byte {
	if x != nil {
		return x.EmbedderId
	}
	return nil
}

var File_goodmem_v1_embedder_proto protoreflect.FileDescriptor

const file_goodmem_v1_embedder_proto_rawDesc = "" +
	"\n" +
	"\x19goodmem/v1/embedder.proto\x12\n" +
	"goodmem.v1\x1a\x1bgoogle/protobuf/empty.proto\x1a\x1fgoogle/protobuf/timestamp.proto\x1a\x17goodmem/v1/common.proto\"\x91\a\n" +
	"\bEmbedder\x12\x1f\n" +
	"\vembedder_id\x18\x01 \x01(\fR\n" +
	"embedderId\x12!\n" +
	"\fdisplay_name\x18\x02 \x01(\tR\vdisplayName\x12 \n" +
	"\vdescription\x18\x03 \x01(\tR\vdescription\x12=\n" +
	"\rprovider_type\x18\x04 \x01(\x0e2\x18.goodmem.v1.ProviderTypeR\fproviderType\x12!\n" +
	"\fendpoint_url\x18\x05 \x01(\tR\vendpointUrl\x12\x19\n" +
	"\bapi_path\x18\x06 \x01(\tR\aapiPath\x12)\n" +
	"\x10model_identifier\x18\a \x01(\tR\x0fmodelIdentifier\x12&\n" +
	"\x0edimensionality\x18\b \x01(\x05R\x0edimensionality\x123\n" +
	"\x13max_sequence_length\x18\t \x01(\x05H\x00R\x11maxSequenceLength\x88\x01\x01\x12G\n" +
	"\x14supported_modalities\x18\n" +
	" \x03(\x0e2\x14.goodmem.v1.ModalityR\x13supportedModalities\x12 \n" +
	"\vcredentials\x18\v \x01(\tR\vcredentials\x128\n" +
	"\x06labels\x18\f \x03(\v2 .goodmem.v1.Embedder.LabelsEntryR\x06labels\x12\x18\n" +
	"\aversion\x18\r \x01(\tR\aversion\x12/\n" +
	"\x13monitoring_endpoint\x18\x0e \x01(\tR\x12monitoringEndpoint\x12\x19\n" +
	"\bowner_id\x18\x0f \x01(\fR\aownerId\x129\n" +
	"\n" +
	"created_at\x18\x10 \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\x129\n" +
	"\n" +
	"updated_at\x18\x11 \x01(\v2\x1a.google.protobuf.TimestampR\tupdatedAt\x12\"\n" +
	"\rcreated_by_id\x18\x12 \x01(\fR\vcreatedById\x12\"\n" +
	"\rupdated_by_id\x18\x13 \x01(\fR\vupdatedById\x1a9\n" +
	"\vLabelsEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01B\x16\n" +
	"\x14_max_sequence_length\"\xcc\x05\n" +
	"\x15CreateEmbedderRequest\x12!\n" +
	"\fdisplay_name\x18\x01 \x01(\tR\vdisplayName\x12 \n" +
	"\vdescription\x18\x02 \x01(\tR\vdescription\x12=\n" +
	"\rprovider_type\x18\x03 \x01(\x0e2\x18.goodmem.v1.ProviderTypeR\fproviderType\x12!\n" +
	"\fendpoint_url\x18\x04 \x01(\tR\vendpointUrl\x12\x19\n" +
	"\bapi_path\x18\x05 \x01(\tR\aapiPath\x12)\n" +
	"\x10model_identifier\x18\x06 \x01(\tR\x0fmodelIdentifier\x12&\n" +
	"\x0edimensionality\x18\a \x01(\x05R\x0edimensionality\x123\n" +
	"\x13max_sequence_length\x18\b \x01(\x05H\x00R\x11maxSequenceLength\x88\x01\x01\x12G\n" +
	"\x14supported_modalities\x18\t \x03(\x0e2\x14.goodmem.v1.ModalityR\x13supportedModalities\x12 \n" +
	"\vcredentials\x18\n" +
	" \x01(\tR\vcredentials\x12E\n" +
	"\x06labels\x18\v \x03(\v2-.goodmem.v1.CreateEmbedderRequest.LabelsEntryR\x06labels\x12\x18\n" +
	"\aversion\x18\f \x01(\tR\aversion\x12/\n" +
	"\x13monitoring_endpoint\x18\r \x01(\tR\x12monitoringEndpoint\x12\x19\n" +
	"\bowner_id\x18\x0e \x01(\fR\aownerId\x1a9\n" +
	"\vLabelsEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01B\x16\n" +
	"\x14_max_sequence_length\"5\n" +
	"\x12GetEmbedderRequest\x12\x1f\n" +
	"\vembedder_id\x18\x01 \x01(\fR\n" +
	"embedderId\"\x92\x02\n" +
	"\x14ListEmbeddersRequest\x12\x19\n" +
	"\bowner_id\x18\x01 \x01(\fR\aownerId\x12=\n" +
	"\rprovider_type\x18\x02 \x01(\x0e2\x18.goodmem.v1.ProviderTypeR\fproviderType\x12]\n" +
	"\x0flabel_selectors\x18\x03 \x03(\v24.goodmem.v1.ListEmbeddersRequest.LabelSelectorsEntryR\x0elabelSelectors\x1aA\n" +
	"\x13LabelSelectorsEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\"K\n" +
	"\x15ListEmbeddersResponse\x122\n" +
	"\tembedders\x18\x01 \x03(\v2\x14.goodmem.v1.EmbedderR\tembedders\"\xad\a\n" +
	"\x15UpdateEmbedderRequest\x12\x1f\n" +
	"\vembedder_id\x18\x01 \x01(\fR\n" +
	"embedderId\x12&\n" +
	"\fdisplay_name\x18\x02 \x01(\tH\x01R\vdisplayName\x88\x01\x01\x12%\n" +
	"\vdescription\x18\x03 \x01(\tH\x02R\vdescription\x88\x01\x01\x12=\n" +
	"\rprovider_type\x18\x04 \x01(\x0e2\x18.goodmem.v1.ProviderTypeR\fproviderType\x12&\n" +
	"\fendpoint_url\x18\x05 \x01(\tH\x03R\vendpointUrl\x88\x01\x01\x12\x1e\n" +
	"\bapi_path\x18\x06 \x01(\tH\x04R\aapiPath\x88\x01\x01\x12.\n" +
	"\x10model_identifier\x18\a \x01(\tH\x05R\x0fmodelIdentifier\x88\x01\x01\x12+\n" +
	"\x0edimensionality\x18\b \x01(\x05H\x06R\x0edimensionality\x88\x01\x01\x123\n" +
	"\x13max_sequence_length\x18\t \x01(\x05H\aR\x11maxSequenceLength\x88\x01\x01\x12G\n" +
	"\x14supported_modalities\x18\n" +
	" \x03(\x0e2\x14.goodmem.v1.ModalityR\x13supportedModalities\x12%\n" +
	"\vcredentials\x18\v \x01(\tH\bR\vcredentials\x88\x01\x01\x12\x1d\n" +
	"\aversion\x18\f \x01(\tH\tR\aversion\x88\x01\x01\x124\n" +
	"\x13monitoring_endpoint\x18\r \x01(\tH\n" +
	"R\x12monitoringEndpoint\x88\x01\x01\x12>\n" +
	"\x0ereplace_labels\x18\x0e \x01(\v2\x15.goodmem.v1.StringMapH\x00R\rreplaceLabels\x12:\n" +
	"\fmerge_labels\x18\x0f \x01(\v2\x15.goodmem.v1.StringMapH\x00R\vmergeLabelsB\x17\n" +
	"\x15label_update_strategyB\x0f\n" +
	"\r_display_nameB\x0e\n" +
	"\f_descriptionB\x0f\n" +
	"\r_endpoint_urlB\v\n" +
	"\t_api_pathB\x13\n" +
	"\x11_model_identifierB\x11\n" +
	"\x0f_dimensionalityB\x16\n" +
	"\x14_max_sequence_lengthB\x0e\n" +
	"\f_credentialsB\n" +
	"\n" +
	"\b_versionB\x16\n" +
	"\x14_monitoring_endpoint\"8\n" +
	"\x15DeleteEmbedderRequest\x12\x1f\n" +
	"\vembedder_id\x18\x01 \x01(\fR\n" +
	"embedderId*v\n" +
	"\fProviderType\x12\x1d\n" +
	"\x19PROVIDER_TYPE_UNSPECIFIED\x10\x00\x12\x18\n" +
	"\x14PROVIDER_TYPE_OPENAI\x10\x01\x12\x16\n" +
	"\x12PROVIDER_TYPE_VLLM\x10\x02\x12\x15\n" +
	"\x11PROVIDER_TYPE_TEI\x10\x03*s\n" +
	"\bModality\x12\x18\n" +
	"\x14MODALITY_UNSPECIFIED\x10\x00\x12\x11\n" +
	"\rMODALITY_TEXT\x10\x01\x12\x12\n" +
	"\x0eMODALITY_IMAGE\x10\x02\x12\x12\n" +
	"\x0eMODALITY_AUDIO\x10\x03\x12\x12\n" +
	"\x0eMODALITY_VIDEO\x10\x042\x8f\x03\n" +
	"\x0fEmbedderService\x12I\n" +
	"\x0eCreateEmbedder\x12!.goodmem.v1.CreateEmbedderRequest\x1a\x14.goodmem.v1.Embedder\x12C\n" +
	"\vGetEmbedder\x12\x1e.goodmem.v1.GetEmbedderRequest\x1a\x14.goodmem.v1.Embedder\x12T\n" +
	"\rListEmbedders\x12 .goodmem.v1.ListEmbeddersRequest\x1a!.goodmem.v1.ListEmbeddersResponse\x12I\n" +
	"\x0eUpdateEmbedder\x12!.goodmem.v1.UpdateEmbedderRequest\x1a\x14.goodmem.v1.Embedder\x12K\n" +
	"\x0eDeleteEmbedder\x12!.goodmem.v1.DeleteEmbedderRequest\x1a\x16.google.protobuf.EmptyBGZEgithub.com/goodmem/goodmem/internal/generated/pb/goodmem/v1;goodmemv1b\x06proto3"

var (
	file_goodmem_v1_embedder_proto_rawDescOnce sync.Once
	file_goodmem_v1_embedder_proto_rawDescData []byte
)

func file_goodmem_v1_embedder_proto_rawDescGZIP() []byte {
	file_goodmem_v1_embedder_proto_rawDescOnce.Do(func() {
		file_goodmem_v1_embedder_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_goodmem_v1_embedder_proto_rawDesc), len(file_goodmem_v1_embedder_proto_rawDesc)))
	})
	return file_goodmem_v1_embedder_proto_rawDescData
}

var file_goodmem_v1_embedder_proto_enumTypes = make([]protoimpl.EnumInfo, 2)
var file_goodmem_v1_embedder_proto_msgTypes = make([]protoimpl.MessageInfo, 10)
var file_goodmem_v1_embedder_proto_goTypes = []any{
	(ProviderType)(0),             // 0: goodmem.v1.ProviderType
	(Modality)(0),                 // 1: goodmem.v1.Modality
	(*Embedder)(nil),              // 2: goodmem.v1.Embedder
	(*CreateEmbedderRequest)(nil), // 3: goodmem.v1.CreateEmbedderRequest
	(*GetEmbedderRequest)(nil),    // 4: goodmem.v1.GetEmbedderRequest
	(*ListEmbeddersRequest)(nil),  // 5: goodmem.v1.ListEmbeddersRequest
	(*ListEmbeddersResponse)(nil), // 6: goodmem.v1.ListEmbeddersResponse
	(*UpdateEmbedderRequest)(nil), // 7: goodmem.v1.UpdateEmbedderRequest
	(*DeleteEmbedderRequest)(nil), // 8: goodmem.v1.DeleteEmbedderRequest
	nil,                           // 9: goodmem.v1.Embedder.LabelsEntry
	nil,                           // 10: goodmem.v1.CreateEmbedderRequest.LabelsEntry
	nil,                           // 11: goodmem.v1.ListEmbeddersRequest.LabelSelectorsEntry
	(*timestamppb.Timestamp)(nil), // 12: google.protobuf.Timestamp
	(*StringMap)(nil),             // 13: goodmem.v1.StringMap
	(*emptypb.Empty)(nil),         // 14: google.protobuf.Empty
}
var file_goodmem_v1_embedder_proto_depIdxs = []int32{
	0,  // 0: goodmem.v1.Embedder.provider_type:type_name -> goodmem.v1.ProviderType
	1,  // 1: goodmem.v1.Embedder.supported_modalities:type_name -> goodmem.v1.Modality
	9,  // 2: goodmem.v1.Embedder.labels:type_name -> goodmem.v1.Embedder.LabelsEntry
	12, // 3: goodmem.v1.Embedder.created_at:type_name -> google.protobuf.Timestamp
	12, // 4: goodmem.v1.Embedder.updated_at:type_name -> google.protobuf.Timestamp
	0,  // 5: goodmem.v1.CreateEmbedderRequest.provider_type:type_name -> goodmem.v1.ProviderType
	1,  // 6: goodmem.v1.CreateEmbedderRequest.supported_modalities:type_name -> goodmem.v1.Modality
	10, // 7: goodmem.v1.CreateEmbedderRequest.labels:type_name -> goodmem.v1.CreateEmbedderRequest.LabelsEntry
	0,  // 8: goodmem.v1.ListEmbeddersRequest.provider_type:type_name -> goodmem.v1.ProviderType
	11, // 9: goodmem.v1.ListEmbeddersRequest.label_selectors:type_name -> goodmem.v1.ListEmbeddersRequest.LabelSelectorsEntry
	2,  // 10: goodmem.v1.ListEmbeddersResponse.embedders:type_name -> goodmem.v1.Embedder
	0,  // 11: goodmem.v1.UpdateEmbedderRequest.provider_type:type_name -> goodmem.v1.ProviderType
	1,  // 12: goodmem.v1.UpdateEmbedderRequest.supported_modalities:type_name -> goodmem.v1.Modality
	13, // 13: goodmem.v1.UpdateEmbedderRequest.replace_labels:type_name -> goodmem.v1.StringMap
	13, // 14: goodmem.v1.UpdateEmbedderRequest.merge_labels:type_name -> goodmem.v1.StringMap
	3,  // 15: goodmem.v1.EmbedderService.CreateEmbedder:input_type -> goodmem.v1.CreateEmbedderRequest
	4,  // 16: goodmem.v1.EmbedderService.GetEmbedder:input_type -> goodmem.v1.GetEmbedderRequest
	5,  // 17: goodmem.v1.EmbedderService.ListEmbedders:input_type -> goodmem.v1.ListEmbeddersRequest
	7,  // 18: goodmem.v1.EmbedderService.UpdateEmbedder:input_type -> goodmem.v1.UpdateEmbedderRequest
	8,  // 19: goodmem.v1.EmbedderService.DeleteEmbedder:input_type -> goodmem.v1.DeleteEmbedderRequest
	2,  // 20: goodmem.v1.EmbedderService.CreateEmbedder:output_type -> goodmem.v1.Embedder
	2,  // 21: goodmem.v1.EmbedderService.GetEmbedder:output_type -> goodmem.v1.Embedder
	6,  // 22: goodmem.v1.EmbedderService.ListEmbedders:output_type -> goodmem.v1.ListEmbeddersResponse
	2,  // 23: goodmem.v1.EmbedderService.UpdateEmbedder:output_type -> goodmem.v1.Embedder
	14, // 24: goodmem.v1.EmbedderService.DeleteEmbedder:output_type -> google.protobuf.Empty
	20, // [20:25] is the sub-list for method output_type
	15, // [15:20] is the sub-list for method input_type
	15, // [15:15] is the sub-list for extension type_name
	15, // [15:15] is the sub-list for extension extendee
	0,  // [0:15] is the sub-list for field type_name
}

func init() { file_goodmem_v1_embedder_proto_init() }
func file_goodmem_v1_embedder_proto_init() {
	if File_goodmem_v1_embedder_proto != nil {
		return
	}
	file_goodmem_v1_common_proto_init()
	file_goodmem_v1_embedder_proto_msgTypes[0].OneofWrappers = []any{}
	file_goodmem_v1_embedder_proto_msgTypes[1].OneofWrappers = []any{}
	file_goodmem_v1_embedder_proto_msgTypes[5].OneofWrappers = []any{
		(*UpdateEmbedderRequest_ReplaceLabels)(nil),
		(*UpdateEmbedderRequest_MergeLabels)(nil),
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_goodmem_v1_embedder_proto_rawDesc), len(file_goodmem_v1_embedder_proto_rawDesc)),
			NumEnums:      2,
			NumMessages:   10,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_goodmem_v1_embedder_proto_goTypes,
		DependencyIndexes: file_goodmem_v1_embedder_proto_depIdxs,
		EnumInfos:         file_goodmem_v1_embedder_proto_enumTypes,
		MessageInfos:      file_goodmem_v1_embedder_proto_msgTypes,
	}.Build()
	File_goodmem_v1_embedder_proto = out.File
	file_goodmem_v1_embedder_proto_goTypes = nil
	file_goodmem_v1_embedder_proto_depIdxs = nil
}
