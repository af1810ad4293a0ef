package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"

	pb "github.com/mmynk/splitledger/pkg/proto"
)

func TestCreateGroup(t *testing.T) {
	c := setupTestServer(t)

	resp, err := c.groups.CreateGroup(context.Background(), connect.NewRequest(&pb.CreateGroupRequest{
		Name:     "Roommates",
		Currency: "eur",
		Members:  []string{"Alice", "Bob", "Charlie", "Bob"},
	}))
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}

	group := resp.Msg.Group
	if group == nil {
		t.Fatal("expected group in response")
	}
	if group.Id == "" {
		t.Error("expected non-empty group ID")
	}
	if group.Name != "Roommates" {
		t.Errorf("name: expected 'Roommates', got '%s'", group.Name)
	}
	if group.Currency != "EUR" {
		t.Errorf("currency: expected 'EUR', got '%s'", group.Currency)
	}
	if group.Status != "settled" {
		t.Errorf("status: expected 'settled', got '%s'", group.Status)
	}
	if len(group.Members) != 3 {
		t.Errorf("members: expected 3, got %d", len(group.Members))
	}
	if group.CreatedAt == 0 {
		t.Error("expected non-zero CreatedAt")
	}
}

func TestCreateGroup_Invalid(t *testing.T) {
	c := setupTestServer(t)

	tests := []struct {
		name string
		req  *pb.CreateGroupRequest
	}{
		{"missing name", &pb.CreateGroupRequest{Members: []string{"Alice"}}},
		{"no members", &pb.CreateGroupRequest{Name: "Empty"}},
		{"blank members", &pb.CreateGroupRequest{Name: "Blank", Members: []string{" ", ""}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.groups.CreateGroup(context.Background(), connect.NewRequest(tt.req))
			assertCode(t, err, connect.CodeInvalidArgument)
		})
	}
}

func TestGetGroup(t *testing.T) {
	c := setupTestServer(t)
	created := createTestGroup(t, c, "Diana", "Eve")

	resp, err := c.groups.GetGroup(context.Background(), connect.NewRequest(&pb.GetGroupRequest{GroupId: created.Id}))
	if err != nil {
		t.Fatalf("GetGroup failed: %v", err)
	}
	if resp.Msg.Group.Name != created.Name {
		t.Errorf("name: expected '%s', got '%s'", created.Name, resp.Msg.Group.Name)
	}
	if len(resp.Msg.Group.Members) != 2 {
		t.Errorf("members: expected 2, got %d", len(resp.Msg.Group.Members))
	}
}

func TestGetGroup_NotFound(t *testing.T) {
	c := setupTestServer(t)

	_, err := c.groups.GetGroup(context.Background(), connect.NewRequest(&pb.GetGroupRequest{GroupId: "nonexistent-id"}))
	assertCode(t, err, connect.CodeNotFound)
}

func TestListGroups(t *testing.T) {
	c := setupTestServer(t)
	createTestGroup(t, c, "Alice")
	createTestGroup(t, c, "Bob")

	resp, err := c.groups.ListGroups(context.Background(), connect.NewRequest(&pb.ListGroupsRequest{}))
	if err != nil {
		t.Fatalf("ListGroups failed: %v", err)
	}
	if len(resp.Msg.Groups) != 2 {
		t.Errorf("groups: expected 2, got %d", len(resp.Msg.Groups))
	}
}

func TestAddMembers(t *testing.T) {
	c := setupTestServer(t)
	group := createTestGroup(t, c, "Alice")

	resp, err := c.groups.AddMembers(context.Background(), connect.NewRequest(&pb.AddMembersRequest{
		GroupId: group.Id,
		UserIds: []string{"Bob", "Alice"},
	}))
	if err != nil {
		t.Fatalf("AddMembers failed: %v", err)
	}
	if len(resp.Msg.Group.Members) != 2 {
		t.Errorf("members: expected 2, got %d", len(resp.Msg.Group.Members))
	}

	balance, err := c.ledger.GetBalance(context.Background(), connect.NewRequest(&pb.GetBalanceRequest{GroupId: group.Id, UserId: "Bob"}))
	if err != nil {
		t.Fatalf("GetBalance failed: %v", err)
	}
	if balance.Msg.Balance != 0 {
		t.Errorf("new member balance: expected 0, got %d", balance.Msg.Balance)
	}
}

func TestArchiveGroup(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()
	group := createTestGroup(t, c, "Alice", "Bob")

	payment, err := c.ledger.CreatePayment(ctx, connect.NewRequest(&pb.CreatePaymentRequest{
		GroupId: group.Id, FromUserId: "Alice", ToUserId: "Bob", Amount: 100,
	}))
	if err != nil {
		t.Fatalf("CreatePayment failed: %v", err)
	}

	_, err = c.groups.ArchiveGroup(ctx, connect.NewRequest(&pb.ArchiveGroupRequest{GroupId: group.Id}))
	assertCode(t, err, connect.CodeFailedPrecondition)

	if _, err := c.ledger.FailPayment(ctx, connect.NewRequest(&pb.FailPaymentRequest{PaymentId: payment.Msg.Payment.Id})); err != nil {
		t.Fatalf("FailPayment failed: %v", err)
	}

	resp, err := c.groups.ArchiveGroup(ctx, connect.NewRequest(&pb.ArchiveGroupRequest{GroupId: group.Id}))
	if err != nil {
		t.Fatalf("ArchiveGroup failed: %v", err)
	}
	if resp.Msg.Group.Status != "archived" {
		t.Errorf("status: expected 'archived', got '%s'", resp.Msg.Group.Status)
	}

	_, err = c.ledger.CreatePayment(ctx, connect.NewRequest(&pb.CreatePaymentRequest{
		GroupId: group.Id, FromUserId: "Alice", ToUserId: "Bob", Amount: 1,
	}))
	assertCode(t, err, connect.CodeFailedPrecondition)
}

func TestUnauthenticated(t *testing.T) {
	c := setupTestServer(t)

	_, err := c.anon.ListGroups(context.Background(), connect.NewRequest(&pb.ListGroupsRequest{}))
	assertCode(t, err, connect.CodeUnauthenticated)
}
