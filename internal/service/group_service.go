package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/splitledger/internal/ledger"
	pb "github.com/mmynk/splitledger/pkg/proto"
	"github.com/mmynk/splitledger/pkg/proto/protoconnect"
)

// GroupService implements the Connect GroupService.
type GroupService struct {
	protoconnect.UnimplementedGroupServiceHandler
	engine *ledger.Engine
}

// NewGroupService creates a GroupService backed by engine.
func NewGroupService(engine *ledger.Engine) *GroupService {
	return &GroupService{engine: engine}
}

// CreateGroup creates a new group with a zero balance for every member.
func (s *GroupService) CreateGroup(ctx context.Context, req *connect.Request[pb.CreateGroupRequest]) (*connect.Response[pb.CreateGroupResponse], error) {
	slog.Info("CreateGroup request received",
		"name", req.Msg.Name,
		"currency", req.Msg.Currency,
		"members_count", len(req.Msg.Members),
	)

	group, err := s.engine.CreateGroup(ctx, req.Msg.Name, req.Msg.Currency, req.Msg.Members)
	if err != nil {
		slog.Error("CreateGroup failed", "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Group created", "group_id", group.ID)
	return connect.NewResponse(&pb.CreateGroupResponse{Group: toProtoGroup(group)}), nil
}

// GetGroup retrieves a group by ID.
func (s *GroupService) GetGroup(ctx context.Context, req *connect.Request[pb.GetGroupRequest]) (*connect.Response[pb.GetGroupResponse], error) {
	group, err := s.engine.GetGroup(ctx, req.Msg.GroupId)
	if err != nil {
		slog.Error("GetGroup failed", "group_id", req.Msg.GroupId, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&pb.GetGroupResponse{Group: toProtoGroup(group)}), nil
}

// ListGroups retrieves all groups.
func (s *GroupService) ListGroups(ctx context.Context, req *connect.Request[pb.ListGroupsRequest]) (*connect.Response[pb.ListGroupsResponse], error) {
	groups, err := s.engine.ListGroups(ctx)
	if err != nil {
		slog.Error("ListGroups failed", "error", err)
		return nil, toConnectError(err)
	}

	out := make([]*pb.Group, len(groups))
	for i, g := range groups {
		out[i] = toProtoGroup(g)
	}

	slog.Info("ListGroups successful", "count", len(out))
	return connect.NewResponse(&pb.ListGroupsResponse{Groups: out}), nil
}

// AddMembers adds users to a group with zero balances.
func (s *GroupService) AddMembers(ctx context.Context, req *connect.Request[pb.AddMembersRequest]) (*connect.Response[pb.AddMembersResponse], error) {
	slog.Info("AddMembers request received", "group_id", req.Msg.GroupId, "count", len(req.Msg.UserIds))

	group, err := s.engine.AddMembers(withActor(ctx), req.Msg.GroupId, req.Msg.UserIds)
	if err != nil {
		slog.Error("AddMembers failed", "group_id", req.Msg.GroupId, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&pb.AddMembersResponse{Group: toProtoGroup(group)}), nil
}

// ArchiveGroup makes a settled group read-only.
func (s *GroupService) ArchiveGroup(ctx context.Context, req *connect.Request[pb.ArchiveGroupRequest]) (*connect.Response[pb.ArchiveGroupResponse], error) {
	slog.Info("ArchiveGroup request received", "group_id", req.Msg.GroupId)

	group, err := s.engine.ArchiveGroup(withActor(ctx), req.Msg.GroupId)
	if err != nil {
		slog.Error("ArchiveGroup failed", "group_id", req.Msg.GroupId, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Group archived", "group_id", group.ID)
	return connect.NewResponse(&pb.ArchiveGroupResponse{Group: toProtoGroup(group)}), nil
}
