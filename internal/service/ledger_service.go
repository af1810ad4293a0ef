package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/splitledger/internal/ledger"
	"github.com/mmynk/splitledger/internal/models"
	pb "github.com/mmynk/splitledger/pkg/proto"
	"github.com/mmynk/splitledger/pkg/proto/protoconnect"
)

// LedgerService implements the Connect LedgerService on top of the ledger engine.
type LedgerService struct {
	protoconnect.UnimplementedLedgerServiceHandler
	engine *ledger.Engine
}

// NewLedgerService creates a LedgerService backed by engine.
func NewLedgerService(engine *ledger.Engine) *LedgerService {
	return &LedgerService{engine: engine}
}

// CreateExpense records a new expense and applies its balance deltas.
func (s *LedgerService) CreateExpense(ctx context.Context, req *connect.Request[pb.CreateExpenseRequest]) (*connect.Response[pb.CreateExpenseResponse], error) {
	slog.Info("CreateExpense request received",
		"group_id", req.Msg.GroupId,
		"payer_id", req.Msg.PayerId,
		"amount", req.Msg.Amount,
		"policy", req.Msg.Policy,
		"participants_count", len(req.Msg.Participants),
	)

	participants, err := fromProtoParticipants(req.Msg.Participants)
	if err != nil {
		return nil, toConnectError(err)
	}

	expense, err := s.engine.CreateExpense(withActor(ctx), ledger.NewExpense{
		GroupID:      req.Msg.GroupId,
		PayerID:      req.Msg.PayerId,
		Description:  req.Msg.Description,
		Amount:       req.Msg.Amount,
		Policy:       models.SplitPolicy(req.Msg.Policy),
		Participants: participants,
	})
	if err != nil {
		slog.Error("CreateExpense failed", "group_id", req.Msg.GroupId, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Expense created", "expense_id", expense.ID, "group_id", expense.GroupID)
	return connect.NewResponse(&pb.CreateExpenseResponse{Expense: toProtoExpense(expense)}), nil
}

// EditExpense replaces an expense's balance effect with the edited one.
func (s *LedgerService) EditExpense(ctx context.Context, req *connect.Request[pb.EditExpenseRequest]) (*connect.Response[pb.EditExpenseResponse], error) {
	slog.Info("EditExpense request received", "expense_id", req.Msg.ExpenseId)

	participants, err := fromProtoParticipants(req.Msg.Participants)
	if err != nil {
		return nil, toConnectError(err)
	}
	update := ledger.ExpenseUpdate{
		PayerID:      req.Msg.PayerId,
		Description:  req.Msg.Description,
		Amount:       req.Msg.Amount,
		Participants: participants,
	}
	if req.Msg.Policy != nil {
		policy := models.SplitPolicy(*req.Msg.Policy)
		update.Policy = &policy
	}

	expense, err := s.engine.EditExpense(withActor(ctx), req.Msg.ExpenseId, update)
	if err != nil {
		slog.Error("EditExpense failed", "expense_id", req.Msg.ExpenseId, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Expense updated", "expense_id", expense.ID)
	return connect.NewResponse(&pb.EditExpenseResponse{Expense: toProtoExpense(expense)}), nil
}

// DeleteExpense reverses and removes an expense.
func (s *LedgerService) DeleteExpense(ctx context.Context, req *connect.Request[pb.DeleteExpenseRequest]) (*connect.Response[pb.DeleteExpenseResponse], error) {
	slog.Info("DeleteExpense request received", "expense_id", req.Msg.ExpenseId)

	if err := s.engine.DeleteExpense(withActor(ctx), req.Msg.ExpenseId); err != nil {
		slog.Error("DeleteExpense failed", "expense_id", req.Msg.ExpenseId, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Expense deleted", "expense_id", req.Msg.ExpenseId)
	return connect.NewResponse(&pb.DeleteExpenseResponse{}), nil
}

func (s *LedgerService) GetExpense(ctx context.Context, req *connect.Request[pb.GetExpenseRequest]) (*connect.Response[pb.GetExpenseResponse], error) {
	expense, err := s.engine.GetExpense(ctx, req.Msg.ExpenseId)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&pb.GetExpenseResponse{Expense: toProtoExpense(expense)}), nil
}

func (s *LedgerService) ListExpenses(ctx context.Context, req *connect.Request[pb.ListExpensesRequest]) (*connect.Response[pb.ListExpensesResponse], error) {
	expenses, err := s.engine.ListExpenses(ctx, req.Msg.GroupId)
	if err != nil {
		return nil, toConnectError(err)
	}

	out := make([]*pb.Expense, len(expenses))
	for i, e := range expenses {
		out[i] = toProtoExpense(e)
	}
	return connect.NewResponse(&pb.ListExpensesResponse{Expenses: out}), nil
}

// CreatePayment records a pending payment between two members.
func (s *LedgerService) CreatePayment(ctx context.Context, req *connect.Request[pb.CreatePaymentRequest]) (*connect.Response[pb.CreatePaymentResponse], error) {
	slog.Info("CreatePayment request received",
		"group_id", req.Msg.GroupId,
		"from", req.Msg.FromUserId,
		"to", req.Msg.ToUserId,
		"amount", req.Msg.Amount,
	)

	payment, err := s.engine.CreatePayment(withActor(ctx), ledger.NewPayment{
		GroupID:    req.Msg.GroupId,
		FromUserID: req.Msg.FromUserId,
		ToUserID:   req.Msg.ToUserId,
		Amount:     req.Msg.Amount,
		Note:       req.Msg.Note,
	})
	if err != nil {
		slog.Error("CreatePayment failed", "group_id", req.Msg.GroupId, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Payment created", "payment_id", payment.ID, "group_id", payment.GroupID)
	return connect.NewResponse(&pb.CreatePaymentResponse{Payment: toProtoPayment(payment)}), nil
}

func (s *LedgerService) CompletePayment(ctx context.Context, req *connect.Request[pb.CompletePaymentRequest]) (*connect.Response[pb.CompletePaymentResponse], error) {
	slog.Info("CompletePayment request received", "payment_id", req.Msg.PaymentId)

	payment, err := s.engine.CompletePayment(withActor(ctx), req.Msg.PaymentId)
	if err != nil {
		slog.Error("CompletePayment failed", "payment_id", req.Msg.PaymentId, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&pb.CompletePaymentResponse{Payment: toProtoPayment(payment)}), nil
}

func (s *LedgerService) FailPayment(ctx context.Context, req *connect.Request[pb.FailPaymentRequest]) (*connect.Response[pb.FailPaymentResponse], error) {
	slog.Info("FailPayment request received", "payment_id", req.Msg.PaymentId)

	payment, err := s.engine.FailPayment(withActor(ctx), req.Msg.PaymentId)
	if err != nil {
		slog.Error("FailPayment failed", "payment_id", req.Msg.PaymentId, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&pb.FailPaymentResponse{Payment: toProtoPayment(payment)}), nil
}

func (s *LedgerService) DeletePayment(ctx context.Context, req *connect.Request[pb.DeletePaymentRequest]) (*connect.Response[pb.DeletePaymentResponse], error) {
	slog.Info("DeletePayment request received", "payment_id", req.Msg.PaymentId)

	if err := s.engine.DeletePayment(withActor(ctx), req.Msg.PaymentId); err != nil {
		slog.Error("DeletePayment failed", "payment_id", req.Msg.PaymentId, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&pb.DeletePaymentResponse{}), nil
}

func (s *LedgerService) GetPayment(ctx context.Context, req *connect.Request[pb.GetPaymentRequest]) (*connect.Response[pb.GetPaymentResponse], error) {
	payment, err := s.engine.GetPayment(ctx, req.Msg.PaymentId)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&pb.GetPaymentResponse{Payment: toProtoPayment(payment)}), nil
}

func (s *LedgerService) ListPayments(ctx context.Context, req *connect.Request[pb.ListPaymentsRequest]) (*connect.Response[pb.ListPaymentsResponse], error) {
	payments, err := s.engine.ListPayments(ctx, req.Msg.GroupId)
	if err != nil {
		return nil, toConnectError(err)
	}

	out := make([]*pb.Payment, len(payments))
	for i, p := range payments {
		out[i] = toProtoPayment(p)
	}
	return connect.NewResponse(&pb.ListPaymentsResponse{Payments: out}), nil
}

// GetBalance returns one member's balance.
func (s *LedgerService) GetBalance(ctx context.Context, req *connect.Request[pb.GetBalanceRequest]) (*connect.Response[pb.GetBalanceResponse], error) {
	group, err := s.engine.GetGroup(ctx, req.Msg.GroupId)
	if err != nil {
		return nil, toConnectError(err)
	}
	balance, err := s.engine.GetBalance(ctx, req.Msg.GroupId, req.Msg.UserId)
	if err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&pb.GetBalanceResponse{
		GroupId:  req.Msg.GroupId,
		UserId:   req.Msg.UserId,
		Balance:  balance,
		Currency: group.Currency,
	}), nil
}

func (s *LedgerService) GetGroupBalances(ctx context.Context, req *connect.Request[pb.GetGroupBalancesRequest]) (*connect.Response[pb.GetGroupBalancesResponse], error) {
	group, err := s.engine.GetGroup(ctx, req.Msg.GroupId)
	if err != nil {
		return nil, toConnectError(err)
	}
	balances, err := s.engine.GetGroupBalances(ctx, req.Msg.GroupId)
	if err != nil {
		return nil, toConnectError(err)
	}

	out := make([]*pb.MemberBalance, len(balances))
	for i, b := range balances {
		out[i] = &pb.MemberBalance{UserId: b.UserID, Balance: b.Balance}
	}
	return connect.NewResponse(&pb.GetGroupBalancesResponse{Balances: out, Currency: group.Currency}), nil
}

// GenerateSettlementSuggestions returns the transfers that settle the group.
func (s *LedgerService) GenerateSettlementSuggestions(ctx context.Context, req *connect.Request[pb.GenerateSettlementSuggestionsRequest]) (*connect.Response[pb.GenerateSettlementSuggestionsResponse], error) {
	slog.Info("GenerateSettlementSuggestions request received", "group_id", req.Msg.GroupId)

	group, err := s.engine.GetGroup(ctx, req.Msg.GroupId)
	if err != nil {
		return nil, toConnectError(err)
	}
	transfers, err := s.engine.GenerateSettlementSuggestions(ctx, req.Msg.GroupId)
	if err != nil {
		slog.Error("GenerateSettlementSuggestions failed", "group_id", req.Msg.GroupId, "error", err)
		return nil, toConnectError(err)
	}

	out := make([]*pb.Transfer, len(transfers))
	for i, t := range transfers {
		out[i] = &pb.Transfer{FromUserId: t.FromUserID, ToUserId: t.ToUserID, Amount: t.Amount}
	}

	slog.Info("Settlement planned", "group_id", req.Msg.GroupId, "transfers", len(out))
	return connect.NewResponse(&pb.GenerateSettlementSuggestionsResponse{Transfers: out, Currency: group.Currency}), nil
}

func (s *LedgerService) ListActivity(ctx context.Context, req *connect.Request[pb.ListActivityRequest]) (*connect.Response[pb.ListActivityResponse], error) {
	entries, err := s.engine.ListActivity(ctx, req.Msg.GroupId, int(req.Msg.Limit))
	if err != nil {
		return nil, toConnectError(err)
	}

	out := make([]*pb.Activity, len(entries))
	for i, a := range entries {
		out[i] = toProtoActivity(a)
	}
	return connect.NewResponse(&pb.ListActivityResponse{Entries: out}), nil
}
