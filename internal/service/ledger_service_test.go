package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"

	pb "github.com/mmynk/splitledger/pkg/proto"
)

func balances(t *testing.T, c testClients, groupID string) map[string]int64 {
	t.Helper()
	resp, err := c.ledger.GetGroupBalances(context.Background(), connect.NewRequest(&pb.GetGroupBalancesRequest{GroupId: groupID}))
	if err != nil {
		t.Fatalf("GetGroupBalances failed: %v", err)
	}
	out := make(map[string]int64, len(resp.Msg.Balances))
	for _, b := range resp.Msg.Balances {
		out[b.UserId] = b.Balance
	}
	return out
}

func expectBalances(t *testing.T, got, want map[string]int64) {
	t.Helper()
	for user, amount := range want {
		if got[user] != amount {
			t.Errorf("balance of %s: expected %d, got %d", user, amount, got[user])
		}
	}
	if len(got) != len(want) {
		t.Errorf("balances: expected %d rows, got %d", len(want), len(got))
	}
}

func createDinner(t *testing.T, c testClients, groupID string) *pb.Expense {
	t.Helper()
	resp, err := c.ledger.CreateExpense(context.Background(), connect.NewRequest(&pb.CreateExpenseRequest{
		GroupId:     groupID,
		PayerId:     "Alice",
		Description: "Dinner",
		Amount:      1200,
		Policy:      "equal",
		Participants: []*pb.Participant{
			{UserId: "Alice"}, {UserId: "Bob"}, {UserId: "Charlie"},
		},
	}))
	if err != nil {
		t.Fatalf("CreateExpense failed: %v", err)
	}
	return resp.Msg.Expense
}

func TestCreateExpense_EqualSplit(t *testing.T) {
	c := setupTestServer(t)
	group := createTestGroup(t, c, "Alice", "Bob", "Charlie")

	expense := createDinner(t, c, group.Id)
	if expense.Id == "" {
		t.Error("expected non-empty expense ID")
	}
	if expense.CreatedBy != "Alice" {
		t.Errorf("createdBy: expected 'Alice', got '%s'", expense.CreatedBy)
	}
	if len(expense.Shares) != 3 {
		t.Fatalf("shares: expected 3, got %d", len(expense.Shares))
	}
	for _, s := range expense.Shares {
		if s.Amount != 400 {
			t.Errorf("share of %s: expected 400, got %d", s.UserId, s.Amount)
		}
		if s.Paid != (s.UserId == "Alice") {
			t.Errorf("share of %s: unexpected paid=%v", s.UserId, s.Paid)
		}
	}

	expectBalances(t, balances(t, c, group.Id), map[string]int64{"Alice": -800, "Bob": 400, "Charlie": 400})

	resp, err := c.ledger.GetBalance(context.Background(), connect.NewRequest(&pb.GetBalanceRequest{GroupId: group.Id, UserId: "Bob"}))
	if err != nil {
		t.Fatalf("GetBalance failed: %v", err)
	}
	if resp.Msg.Balance != 400 || resp.Msg.Currency != "USD" {
		t.Errorf("GetBalance: expected 400 USD, got %d %s", resp.Msg.Balance, resp.Msg.Currency)
	}
}

func TestCreateExpense_PercentageSplit(t *testing.T) {
	c := setupTestServer(t)
	group := createTestGroup(t, c, "Alice", "Bob")

	resp, err := c.ledger.CreateExpense(context.Background(), connect.NewRequest(&pb.CreateExpenseRequest{
		GroupId: group.Id,
		PayerId: "Bob",
		Amount:  1001,
		Policy:  "percentage",
		Participants: []*pb.Participant{
			{UserId: "Alice", Percent: "66.5"},
			{UserId: "Bob", Percent: "33.5"},
		},
	}))
	if err != nil {
		t.Fatalf("CreateExpense failed: %v", err)
	}

	var sum int64
	for _, s := range resp.Msg.Expense.Shares {
		sum += s.Amount
		if s.Percent == "" {
			t.Errorf("share of %s: expected percent to be echoed", s.UserId)
		}
	}
	if sum != 1001 {
		t.Errorf("shares: expected sum 1001, got %d", sum)
	}
}

func TestCreateExpense_Errors(t *testing.T) {
	c := setupTestServer(t)
	group := createTestGroup(t, c, "Alice", "Bob")

	tests := []struct {
		name string
		req  *pb.CreateExpenseRequest
		want connect.Code
	}{
		{
			name: "split mismatch",
			req: &pb.CreateExpenseRequest{GroupId: group.Id, PayerId: "Alice", Amount: 100, Policy: "amount",
				Participants: []*pb.Participant{{UserId: "Alice", Amount: 60}, {UserId: "Bob", Amount: 30}}},
			want: connect.CodeInvalidArgument,
		},
		{
			name: "bad percent",
			req: &pb.CreateExpenseRequest{GroupId: group.Id, PayerId: "Alice", Amount: 100, Policy: "percentage",
				Participants: []*pb.Participant{{UserId: "Alice", Percent: "half"}}},
			want: connect.CodeInvalidArgument,
		},
		{
			name: "non-member participant",
			req: &pb.CreateExpenseRequest{GroupId: group.Id, PayerId: "Alice", Amount: 100, Policy: "equal",
				Participants: []*pb.Participant{{UserId: "Mallory"}}},
			want: connect.CodePermissionDenied,
		},
		{
			name: "unknown group",
			req: &pb.CreateExpenseRequest{GroupId: "missing", PayerId: "Alice", Amount: 100, Policy: "equal",
				Participants: []*pb.Participant{{UserId: "Alice"}}},
			want: connect.CodeNotFound,
		},
		{
			name: "zero amount",
			req: &pb.CreateExpenseRequest{GroupId: group.Id, PayerId: "Alice", Amount: 0, Policy: "equal",
				Participants: []*pb.Participant{{UserId: "Alice"}}},
			want: connect.CodeInvalidArgument,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.ledger.CreateExpense(context.Background(), connect.NewRequest(tt.req))
			assertCode(t, err, tt.want)
		})
	}

	expectBalances(t, balances(t, c, group.Id), map[string]int64{"Alice": 0, "Bob": 0})
}

func TestEditAndDeleteExpense(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()
	group := createTestGroup(t, c, "Alice", "Bob", "Charlie")
	expense := createDinner(t, c, group.Id)

	amount := int64(600)
	description := "Cheaper dinner"
	edited, err := c.ledger.EditExpense(ctx, connect.NewRequest(&pb.EditExpenseRequest{
		ExpenseId:   expense.Id,
		Amount:      &amount,
		Description: &description,
	}))
	if err != nil {
		t.Fatalf("EditExpense failed: %v", err)
	}
	if edited.Msg.Expense.Description != description {
		t.Errorf("description: expected '%s', got '%s'", description, edited.Msg.Expense.Description)
	}
	expectBalances(t, balances(t, c, group.Id), map[string]int64{"Alice": -400, "Bob": 200, "Charlie": 200})

	list, err := c.ledger.ListExpenses(ctx, connect.NewRequest(&pb.ListExpensesRequest{GroupId: group.Id}))
	if err != nil {
		t.Fatalf("ListExpenses failed: %v", err)
	}
	if len(list.Msg.Expenses) != 1 || list.Msg.Expenses[0].Amount != 600 {
		t.Errorf("ListExpenses: expected one expense of 600, got %+v", list.Msg.Expenses)
	}

	if _, err := c.ledger.DeleteExpense(ctx, connect.NewRequest(&pb.DeleteExpenseRequest{ExpenseId: expense.Id})); err != nil {
		t.Fatalf("DeleteExpense failed: %v", err)
	}
	expectBalances(t, balances(t, c, group.Id), map[string]int64{"Alice": 0, "Bob": 0, "Charlie": 0})

	_, err = c.ledger.GetExpense(ctx, connect.NewRequest(&pb.GetExpenseRequest{ExpenseId: expense.Id}))
	assertCode(t, err, connect.CodeNotFound)

	_, err = c.ledger.DeleteExpense(ctx, connect.NewRequest(&pb.DeleteExpenseRequest{ExpenseId: expense.Id}))
	assertCode(t, err, connect.CodeNotFound)
}

func TestPaymentLifecycle(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()
	group := createTestGroup(t, c, "Alice", "Bob")

	created, err := c.ledger.CreatePayment(ctx, connect.NewRequest(&pb.CreatePaymentRequest{
		GroupId: group.Id, FromUserId: "Alice", ToUserId: "Bob", Amount: 500, Note: "rent",
	}))
	if err != nil {
		t.Fatalf("CreatePayment failed: %v", err)
	}
	payment := created.Msg.Payment
	if payment.Status != "pending" {
		t.Errorf("status: expected 'pending', got '%s'", payment.Status)
	}
	expectBalances(t, balances(t, c, group.Id), map[string]int64{"Alice": -500, "Bob": 500})

	failed, err := c.ledger.FailPayment(ctx, connect.NewRequest(&pb.FailPaymentRequest{PaymentId: payment.Id}))
	if err != nil {
		t.Fatalf("FailPayment failed: %v", err)
	}
	if failed.Msg.Payment.Status != "failed" || !failed.Msg.Payment.Reversed {
		t.Errorf("expected failed and reversed payment, got %+v", failed.Msg.Payment)
	}
	expectBalances(t, balances(t, c, group.Id), map[string]int64{"Alice": 0, "Bob": 0})

	_, err = c.ledger.CompletePayment(ctx, connect.NewRequest(&pb.CompletePaymentRequest{PaymentId: payment.Id}))
	assertCode(t, err, connect.CodeFailedPrecondition)
	expectBalances(t, balances(t, c, group.Id), map[string]int64{"Alice": 0, "Bob": 0})

	got, err := c.ledger.GetPayment(ctx, connect.NewRequest(&pb.GetPaymentRequest{PaymentId: payment.Id}))
	if err != nil {
		t.Fatalf("GetPayment failed: %v", err)
	}
	if got.Msg.Payment.Note != "rent" {
		t.Errorf("note: expected 'rent', got '%s'", got.Msg.Payment.Note)
	}

	list, err := c.ledger.ListPayments(ctx, connect.NewRequest(&pb.ListPaymentsRequest{GroupId: group.Id}))
	if err != nil {
		t.Fatalf("ListPayments failed: %v", err)
	}
	if len(list.Msg.Payments) != 1 {
		t.Errorf("payments: expected 1, got %d", len(list.Msg.Payments))
	}

	if _, err := c.ledger.DeletePayment(ctx, connect.NewRequest(&pb.DeletePaymentRequest{PaymentId: payment.Id})); err != nil {
		t.Fatalf("DeletePayment failed: %v", err)
	}
	expectBalances(t, balances(t, c, group.Id), map[string]int64{"Alice": 0, "Bob": 0})

	_, err = c.ledger.CreatePayment(ctx, connect.NewRequest(&pb.CreatePaymentRequest{
		GroupId: group.Id, FromUserId: "Alice", ToUserId: "Alice", Amount: 5,
	}))
	assertCode(t, err, connect.CodeInvalidArgument)
}

func TestGenerateSettlementSuggestions(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()
	group := createTestGroup(t, c, "Alice", "Bob", "Charlie")
	createDinner(t, c, group.Id)

	resp, err := c.ledger.GenerateSettlementSuggestions(ctx, connect.NewRequest(&pb.GenerateSettlementSuggestionsRequest{GroupId: group.Id}))
	if err != nil {
		t.Fatalf("GenerateSettlementSuggestions failed: %v", err)
	}
	if len(resp.Msg.Transfers) != 2 {
		t.Fatalf("transfers: expected 2, got %d", len(resp.Msg.Transfers))
	}
	for _, tr := range resp.Msg.Transfers {
		if tr.ToUserId != "Alice" || tr.Amount != 400 {
			t.Errorf("unexpected transfer %+v", tr)
		}
		payment, err := c.ledger.CreatePayment(ctx, connect.NewRequest(&pb.CreatePaymentRequest{
			GroupId: group.Id, FromUserId: tr.FromUserId, ToUserId: tr.ToUserId, Amount: tr.Amount,
		}))
		if err != nil {
			t.Fatalf("CreatePayment failed: %v", err)
		}
		if _, err := c.ledger.CompletePayment(ctx, connect.NewRequest(&pb.CompletePaymentRequest{PaymentId: payment.Msg.Payment.Id})); err != nil {
			t.Fatalf("CompletePayment failed: %v", err)
		}
	}

	expectBalances(t, balances(t, c, group.Id), map[string]int64{"Alice": 0, "Bob": 0, "Charlie": 0})

	g, err := c.groups.GetGroup(ctx, connect.NewRequest(&pb.GetGroupRequest{GroupId: group.Id}))
	if err != nil {
		t.Fatalf("GetGroup failed: %v", err)
	}
	if g.Msg.Group.Status != "settled" {
		t.Errorf("status: expected 'settled', got '%s'", g.Msg.Group.Status)
	}
}

func TestListActivity(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()
	group := createTestGroup(t, c, "Alice", "Bob", "Charlie")
	expense := createDinner(t, c, group.Id)
	if _, err := c.ledger.DeleteExpense(ctx, connect.NewRequest(&pb.DeleteExpenseRequest{ExpenseId: expense.Id})); err != nil {
		t.Fatalf("DeleteExpense failed: %v", err)
	}

	resp, err := c.ledger.ListActivity(ctx, connect.NewRequest(&pb.ListActivityRequest{GroupId: group.Id}))
	if err != nil {
		t.Fatalf("ListActivity failed: %v", err)
	}
	if len(resp.Msg.Entries) != 2 {
		t.Fatalf("entries: expected 2, got %d", len(resp.Msg.Entries))
	}
	for _, entry := range resp.Msg.Entries {
		if entry.Actor != "Alice" {
			t.Errorf("actor: expected 'Alice', got '%s'", entry.Actor)
		}
		if entry.ExpenseId != expense.Id {
			t.Errorf("expense id: expected '%s', got '%s'", expense.Id, entry.ExpenseId)
		}
	}

	limited, err := c.ledger.ListActivity(ctx, connect.NewRequest(&pb.ListActivityRequest{GroupId: group.Id, Limit: 1}))
	if err != nil {
		t.Fatalf("ListActivity failed: %v", err)
	}
	if len(limited.Msg.Entries) != 1 {
		t.Errorf("entries: expected 1, got %d", len(limited.Msg.Entries))
	}
}
