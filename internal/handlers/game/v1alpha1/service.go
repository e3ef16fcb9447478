package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "legends.game.v1alpha1.GameService"

// GameServiceServer is the server API for GameService
type GameServiceServer interface {
	CreateCharacter(context.Context, *CreateCharacterRequest) (*CreateCharacterResponse, error)
	LoadCharacter(context.Context, *LoadCharacterRequest) (*LoadCharacterResponse, error)
	GetCharacter(context.Context, *GetCharacterRequest) (*GetCharacterResponse, error)
	ResetCharacter(context.Context, *ResetCharacterRequest) (*ResetCharacterResponse, error)
	DeleteCharacter(context.Context, *DeleteCharacterRequest) (*DeleteCharacterResponse, error)
	EndSession(context.Context, *EndSessionRequest) (*EndSessionResponse, error)
	StartEncounter(context.Context, *StartEncounterRequest) (*StartEncounterResponse, error)
	GetEncounter(context.Context, *GetEncounterRequest) (*GetEncounterResponse, error)
	ListAttacks(context.Context, *ListAttacksRequest) (*ListAttacksResponse, error)
	BasicAttack(context.Context, *BasicAttackRequest) (*BasicAttackResponse, error)
	SpecialAttack(context.Context, *SpecialAttackRequest) (*SpecialAttackResponse, error)
	SubmitAnswer(context.Context, *SubmitAnswerRequest) (*SubmitAnswerResponse, error)
	Flee(context.Context, *FleeRequest) (*FleeResponse, error)
	UseItem(context.Context, *UseItemRequest) (*UseItemResponse, error)
	EquipItem(context.Context, *EquipItemRequest) (*EquipItemResponse, error)
	UnequipItem(context.Context, *UnequipItemRequest) (*UnequipItemResponse, error)
	ListMarket(context.Context, *ListMarketRequest) (*ListMarketResponse, error)
	BuyItem(context.Context, *BuyItemRequest) (*BuyItemResponse, error)
	SellItem(context.Context, *SellItemRequest) (*SellItemResponse, error)
	GetMap(context.Context, *GetMapRequest) (*GetMapResponse, error)
	MoveTo(context.Context, *MoveToRequest) (*MoveToResponse, error)
	TakeStep(context.Context, *TakeStepRequest) (*TakeStepResponse, error)
	DismissAchievement(context.Context, *DismissAchievementRequest) (*DismissAchievementResponse, error)
	ListLeaderboard(context.Context, *ListLeaderboardRequest) (*ListLeaderboardResponse, error)
	GetStatistics(context.Context, *GetStatisticsRequest) (*GetStatisticsResponse, error)
}

// RegisterGameServiceServer registers srv on s
func RegisterGameServiceServer(s grpc.ServiceRegistrar, srv GameServiceServer) {
	s.RegisterService(&GameServiceDesc, srv)
}

// unary adapts a typed server method to a grpc.MethodHandler
func unary[Req, Resp any](
	method string,
	call func(GameServiceServer, context.Context, *Req) (*Resp, error),
) grpc.MethodHandler {
	fullMethod := "/" + ServiceName + "/" + method
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(GameServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(GameServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// GameServiceDesc is the grpc.ServiceDesc for GameService
var GameServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*GameServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreateCharacter", Handler: unary("CreateCharacter", GameServiceServer.CreateCharacter)},
		{MethodName: "LoadCharacter", Handler: unary("LoadCharacter", GameServiceServer.LoadCharacter)},
		{MethodName: "GetCharacter", Handler: unary("GetCharacter", GameServiceServer.GetCharacter)},
		{MethodName: "ResetCharacter", Handler: unary("ResetCharacter", GameServiceServer.ResetCharacter)},
		{MethodName: "DeleteCharacter", Handler: unary("DeleteCharacter", GameServiceServer.DeleteCharacter)},
		{MethodName: "EndSession", Handler: unary("EndSession", GameServiceServer.EndSession)},
		{MethodName: "StartEncounter", Handler: unary("StartEncounter", GameServiceServer.StartEncounter)},
		{MethodName: "GetEncounter", Handler: unary("GetEncounter", GameServiceServer.GetEncounter)},
		{MethodName: "ListAttacks", Handler: unary("ListAttacks", GameServiceServer.ListAttacks)},
		{MethodName: "BasicAttack", Handler: unary("BasicAttack", GameServiceServer.BasicAttack)},
		{MethodName: "SpecialAttack", Handler: unary("SpecialAttack", GameServiceServer.SpecialAttack)},
		{MethodName: "SubmitAnswer", Handler: unary("SubmitAnswer", GameServiceServer.SubmitAnswer)},
		{MethodName: "Flee", Handler: unary("Flee", GameServiceServer.Flee)},
		{MethodName: "UseItem", Handler: unary("UseItem", GameServiceServer.UseItem)},
		{MethodName: "EquipItem", Handler: unary("EquipItem", GameServiceServer.EquipItem)},
		{MethodName: "UnequipItem", Handler: unary("UnequipItem", GameServiceServer.UnequipItem)},
		{MethodName: "ListMarket", Handler: unary("ListMarket", GameServiceServer.ListMarket)},
		{MethodName: "BuyItem", Handler: unary("BuyItem", GameServiceServer.BuyItem)},
		{MethodName: "SellItem", Handler: unary("SellItem", GameServiceServer.SellItem)},
		{MethodName: "GetMap", Handler: unary("GetMap", GameServiceServer.GetMap)},
		{MethodName: "MoveTo", Handler: unary("MoveTo", GameServiceServer.MoveTo)},
		{MethodName: "TakeStep", Handler: unary("TakeStep", GameServiceServer.TakeStep)},
		{MethodName: "DismissAchievement", Handler: unary("DismissAchievement", GameServiceServer.DismissAchievement)},
		{MethodName: "ListLeaderboard", Handler: unary("ListLeaderboard", GameServiceServer.ListLeaderboard)},
		{MethodName: "GetStatistics", Handler: unary("GetStatistics", GameServiceServer.GetStatistics)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "legends/game/v1alpha1/game.proto",
}

// GameServiceClient is the client API for GameService
type GameServiceClient interface {
	CreateCharacter(ctx context.Context, in *CreateCharacterRequest, opts ...grpc.CallOption) (*CreateCharacterResponse, error)
	LoadCharacter(ctx context.Context, in *LoadCharacterRequest, opts ...grpc.CallOption) (*LoadCharacterResponse, error)
	GetCharacter(ctx context.Context, in *GetCharacterRequest, opts ...grpc.CallOption) (*GetCharacterResponse, error)
	ResetCharacter(ctx context.Context, in *ResetCharacterRequest, opts ...grpc.CallOption) (*ResetCharacterResponse, error)
	DeleteCharacter(ctx context.Context, in *DeleteCharacterRequest, opts ...grpc.CallOption) (*DeleteCharacterResponse, error)
	EndSession(ctx context.Context, in *EndSessionRequest, opts ...grpc.CallOption) (*EndSessionResponse, error)
	StartEncounter(ctx context.Context, in *StartEncounterRequest, opts ...grpc.CallOption) (*StartEncounterResponse, error)
	GetEncounter(ctx context.Context, in *GetEncounterRequest, opts ...grpc.CallOption) (*GetEncounterResponse, error)
	ListAttacks(ctx context.Context, in *ListAttacksRequest, opts ...grpc.CallOption) (*ListAttacksResponse, error)
	BasicAttack(ctx context.Context, in *BasicAttackRequest, opts ...grpc.CallOption) (*BasicAttackResponse, error)
	SpecialAttack(ctx context.Context, in *SpecialAttackRequest, opts ...grpc.CallOption) (*SpecialAttackResponse, error)
	SubmitAnswer(ctx context.Context, in *SubmitAnswerRequest, opts ...grpc.CallOption) (*SubmitAnswerResponse, error)
	Flee(ctx context.Context, in *FleeRequest, opts ...grpc.CallOption) (*FleeResponse, error)
	UseItem(ctx context.Context, in *UseItemRequest, opts ...grpc.CallOption) (*UseItemResponse, error)
	EquipItem(ctx context.Context, in *EquipItemRequest, opts ...grpc.CallOption) (*EquipItemResponse, error)
	UnequipItem(ctx context.Context, in *UnequipItemRequest, opts ...grpc.CallOption) (*UnequipItemResponse, error)
	ListMarket(ctx context.Context, in *ListMarketRequest, opts ...grpc.CallOption) (*ListMarketResponse, error)
	BuyItem(ctx context.Context, in *BuyItemRequest, opts ...grpc.CallOption) (*BuyItemResponse, error)
	SellItem(ctx context.Context, in *SellItemRequest, opts ...grpc.CallOption) (*SellItemResponse, error)
	GetMap(ctx context.Context, in *GetMapRequest, opts ...grpc.CallOption) (*GetMapResponse, error)
	MoveTo(ctx context.Context, in *MoveToRequest, opts ...grpc.CallOption) (*MoveToResponse, error)
	TakeStep(ctx context.Context, in *TakeStepRequest, opts ...grpc.CallOption) (*TakeStepResponse, error)
	DismissAchievement(ctx context.Context, in *DismissAchievementRequest, opts ...grpc.CallOption) (*DismissAchievementResponse, error)
	ListLeaderboard(ctx context.Context, in *ListLeaderboardRequest, opts ...grpc.CallOption) (*ListLeaderboardResponse, error)
	GetStatistics(ctx context.Context, in *GetStatisticsRequest, opts ...grpc.CallOption) (*GetStatisticsResponse, error)
}

type gameServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewGameServiceClient returns a client that sends every call with the JSON codec
func NewGameServiceClient(cc grpc.ClientConnInterface) GameServiceClient {
	return &gameServiceClient{cc: cc}
}

func invoke[Resp any](
	ctx context.Context,
	cc grpc.ClientConnInterface,
	method string,
	in any,
	opts []grpc.CallOption,
) (*Resp, error) {
	out := new(Resp)
	callOpts := append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, "/"+ServiceName+"/"+method, in, out, callOpts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gameServiceClient) CreateCharacter(
	ctx context.Context, in *CreateCharacterRequest, opts ...grpc.CallOption,
) (*CreateCharacterResponse, error) {
	return invoke[CreateCharacterResponse](ctx, c.cc, "CreateCharacter", in, opts)
}

func (c *gameServiceClient) LoadCharacter(
	ctx context.Context, in *LoadCharacterRequest, opts ...grpc.CallOption,
) (*LoadCharacterResponse, error) {
	return invoke[LoadCharacterResponse](ctx, c.cc, "LoadCharacter", in, opts)
}

func (c *gameServiceClient) GetCharacter(
	ctx context.Context, in *GetCharacterRequest, opts ...grpc.CallOption,
) (*GetCharacterResponse, error) {
	return invoke[GetCharacterResponse](ctx, c.cc, "GetCharacter", in, opts)
}

func (c *gameServiceClient) ResetCharacter(
	ctx context.Context, in *ResetCharacterRequest, opts ...grpc.CallOption,
) (*ResetCharacterResponse, error) {
	return invoke[ResetCharacterResponse](ctx, c.cc, "ResetCharacter", in, opts)
}

func (c *gameServiceClient) DeleteCharacter(
	ctx context.Context, in *DeleteCharacterRequest, opts ...grpc.CallOption,
) (*DeleteCharacterResponse, error) {
	return invoke[DeleteCharacterResponse](ctx, c.cc, "DeleteCharacter", in, opts)
}

func (c *gameServiceClient) EndSession(
	ctx context.Context, in *EndSessionRequest, opts ...grpc.CallOption,
) (*EndSessionResponse, error) {
	return invoke[EndSessionResponse](ctx, c.cc, "EndSession", in, opts)
}

func (c *gameServiceClient) StartEncounter(
	ctx context.Context, in *StartEncounterRequest, opts ...grpc.CallOption,
) (*StartEncounterResponse, error) {
	return invoke[StartEncounterResponse](ctx, c.cc, "StartEncounter", in, opts)
}

func (c *gameServiceClient) GetEncounter(
	ctx context.Context, in *GetEncounterRequest, opts ...grpc.CallOption,
) (*GetEncounterResponse, error) {
	return invoke[GetEncounterResponse](ctx, c.cc, "GetEncounter", in, opts)
}

func (c *gameServiceClient) ListAttacks(
	ctx context.Context, in *ListAttacksRequest, opts ...grpc.CallOption,
) (*ListAttacksResponse, error) {
	return invoke[ListAttacksResponse](ctx, c.cc, "ListAttacks", in, opts)
}

func (c *gameServiceClient) BasicAttack(
	ctx context.Context, in *BasicAttackRequest, opts ...grpc.CallOption,
) (*BasicAttackResponse, error) {
	return invoke[BasicAttackResponse](ctx, c.cc, "BasicAttack", in, opts)
}

func (c *gameServiceClient) SpecialAttack(
	ctx context.Context, in *SpecialAttackRequest, opts ...grpc.CallOption,
) (*SpecialAttackResponse, error) {
	return invoke[SpecialAttackResponse](ctx, c.cc, "SpecialAttack", in, opts)
}

func (c *gameServiceClient) SubmitAnswer(
	ctx context.Context, in *SubmitAnswerRequest, opts ...grpc.CallOption,
) (*SubmitAnswerResponse, error) {
	return invoke[SubmitAnswerResponse](ctx, c.cc, "SubmitAnswer", in, opts)
}

func (c *gameServiceClient) Flee(
	ctx context.Context, in *FleeRequest, opts ...grpc.CallOption,
) (*FleeResponse, error) {
	return invoke[FleeResponse](ctx, c.cc, "Flee", in, opts)
}

func (c *gameServiceClient) UseItem(
	ctx context.Context, in *UseItemRequest, opts ...grpc.CallOption,
) (*UseItemResponse, error) {
	return invoke[UseItemResponse](ctx, c.cc, "UseItem", in, opts)
}

func (c *gameServiceClient) EquipItem(
	ctx context.Context, in *EquipItemRequest, opts ...grpc.CallOption,
) (*EquipItemResponse, error) {
	return invoke[EquipItemResponse](ctx, c.cc, "EquipItem", in, opts)
}

func (c *gameServiceClient) UnequipItem(
	ctx context.Context, in *UnequipItemRequest, opts ...grpc.CallOption,
) (*UnequipItemResponse, error) {
	return invoke[UnequipItemResponse](ctx, c.cc, "UnequipItem", in, opts)
}

func (c *gameServiceClient) ListMarket(
	ctx context.Context, in *ListMarketRequest, opts ...grpc.CallOption,
) (*ListMarketResponse, error) {
	return invoke[ListMarketResponse](ctx, c.cc, "ListMarket", in, opts)
}

func (c *gameServiceClient) BuyItem(
	ctx context.Context, in *BuyItemRequest, opts ...grpc.CallOption,
) (*BuyItemResponse, error) {
	return invoke[BuyItemResponse](ctx, c.cc, "BuyItem", in, opts)
}

func (c *gameServiceClient) SellItem(
	ctx context.Context, in *SellItemRequest, opts ...grpc.CallOption,
) (*SellItemResponse, error) {
	return invoke[SellItemResponse](ctx, c.cc, "SellItem", in, opts)
}

func (c *gameServiceClient) GetMap(
	ctx context.Context, in *GetMapRequest, opts ...grpc.CallOption,
) (*GetMapResponse, error) {
	return invoke[GetMapResponse](ctx, c.cc, "GetMap", in, opts)
}

func (c *gameServiceClient) MoveTo(
	ctx context.Context, in *MoveToRequest, opts ...grpc.CallOption,
) (*MoveToResponse, error) {
	return invoke[MoveToResponse](ctx, c.cc, "MoveTo", in, opts)
}

func (c *gameServiceClient) TakeStep(
	ctx context.Context, in *TakeStepRequest, opts ...grpc.CallOption,
) (*TakeStepResponse, error) {
	return invoke[TakeStepResponse](ctx, c.cc, "TakeStep", in, opts)
}

func (c *gameServiceClient) DismissAchievement(
	ctx context.Context, in *DismissAchievementRequest, opts ...grpc.CallOption,
) (*DismissAchievementResponse, error) {
	return invoke[DismissAchievementResponse](ctx, c.cc, "DismissAchievement", in, opts)
}

func (c *gameServiceClient) ListLeaderboard(
	ctx context.Context, in *ListLeaderboardRequest, opts ...grpc.CallOption,
) (*ListLeaderboardResponse, error) {
	return invoke[ListLeaderboardResponse](ctx, c.cc, "ListLeaderboard", in, opts)
}

func (c *gameServiceClient) GetStatistics(
	ctx context.Context, in *GetStatisticsRequest, opts ...grpc.CallOption,
) (*GetStatisticsResponse, error) {
	return invoke[GetStatisticsResponse](ctx, c.cc, "GetStatistics", in, opts)
}

// UnimplementedGameServiceServer can be embedded to satisfy GameServiceServer
type UnimplementedGameServiceServer struct{}

func unimplemented(method string) error {
	return status.Errorf(codes.Unimplemented, "method %s not implemented", method)
}

func (UnimplementedGameServiceServer) CreateCharacter(context.Context, *CreateCharacterRequest) (*CreateCharacterResponse, error) {
	return nil, unimplemented("CreateCharacter")
}

func (UnimplementedGameServiceServer) LoadCharacter(context.Context, *LoadCharacterRequest) (*LoadCharacterResponse, error) {
	return nil, unimplemented("LoadCharacter")
}

func (UnimplementedGameServiceServer) GetCharacter(context.Context, *GetCharacterRequest) (*GetCharacterResponse, error) {
	return nil, unimplemented("GetCharacter")
}

func (UnimplementedGameServiceServer) ResetCharacter(context.Context, *ResetCharacterRequest) (*ResetCharacterResponse, error) {
	return nil, unimplemented("ResetCharacter")
}

func (UnimplementedGameServiceServer) DeleteCharacter(context.Context, *DeleteCharacterRequest) (*DeleteCharacterResponse, error) {
	return nil, unimplemented("DeleteCharacter")
}

func (UnimplementedGameServiceServer) EndSession(context.Context, *EndSessionRequest) (*EndSessionResponse, error) {
	return nil, unimplemented("EndSession")
}

func (UnimplementedGameServiceServer) StartEncounter(context.Context, *StartEncounterRequest) (*StartEncounterResponse, error) {
	return nil, unimplemented("StartEncounter")
}

func (UnimplementedGameServiceServer) GetEncounter(context.Context, *GetEncounterRequest) (*GetEncounterResponse, error) {
	return nil, unimplemented("GetEncounter")
}

func (UnimplementedGameServiceServer) ListAttacks(context.Context, *ListAttacksRequest) (*ListAttacksResponse, error) {
	return nil, unimplemented("ListAttacks")
}

func (UnimplementedGameServiceServer) BasicAttack(context.Context, *BasicAttackRequest) (*BasicAttackResponse, error) {
	return nil, unimplemented("BasicAttack")
}

func (UnimplementedGameServiceServer) SpecialAttack(context.Context, *SpecialAttackRequest) (*SpecialAttackResponse, error) {
	return nil, unimplemented("SpecialAttack")
}

func (UnimplementedGameServiceServer) SubmitAnswer(context.Context, *SubmitAnswerRequest) (*SubmitAnswerResponse, error) {
	return nil, unimplemented("SubmitAnswer")
}

func (UnimplementedGameServiceServer) Flee(context.Context, *FleeRequest) (*FleeResponse, error) {
	return nil, unimplemented("Flee")
}

func (UnimplementedGameServiceServer) UseItem(context.Context, *UseItemRequest) (*UseItemResponse, error) {
	return nil, unimplemented("UseItem")
}

func (UnimplementedGameServiceServer) EquipItem(context.Context, *EquipItemRequest) (*EquipItemResponse, error) {
	return nil, unimplemented("EquipItem")
}

func (UnimplementedGameServiceServer) UnequipItem(context.Context, *UnequipItemRequest) (*UnequipItemResponse, error) {
	return nil, unimplemented("UnequipItem")
}

func (UnimplementedGameServiceServer) ListMarket(context.Context, *ListMarketRequest) (*ListMarketResponse, error) {
	return nil, unimplemented("ListMarket")
}

func (UnimplementedGameServiceServer) BuyItem(context.Context, *BuyItemRequest) (*BuyItemResponse, error) {
	return nil, unimplemented("BuyItem")
}

func (UnimplementedGameServiceServer) SellItem(context.Context, *SellItemRequest) (*SellItemResponse, error) {
	return nil, unimplemented("SellItem")
}

func (UnimplementedGameServiceServer) GetMap(context.Context, *GetMapRequest) (*GetMapResponse, error) {
	return nil, unimplemented("GetMap")
}

func (UnimplementedGameServiceServer) MoveTo(context.Context, *MoveToRequest) (*MoveToResponse, error) {
	return nil, unimplemented("MoveTo")
}

func (UnimplementedGameServiceServer) TakeStep(context.Context, *TakeStepRequest) (*TakeStepResponse, error) {
	return nil, unimplemented("TakeStep")
}

func (UnimplementedGameServiceServer) DismissAchievement(context.Context, *DismissAchievementRequest) (*DismissAchievementResponse, error) {
	return nil, unimplemented("DismissAchievement")
}

func (UnimplementedGameServiceServer) ListLeaderboard(context.Context, *ListLeaderboardRequest) (*ListLeaderboardResponse, error) {
	return nil, unimplemented("ListLeaderboard")
}

func (UnimplementedGameServiceServer) GetStatistics(context.Context, *GetStatisticsRequest) (*GetStatisticsResponse, error) {
	return nil, unimplemented("GetStatistics")
}
