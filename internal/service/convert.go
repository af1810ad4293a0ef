package service

import (
	"context"
	"errors"
	"fmt"

	"connectrpc.com/connect"
	"github.com/shopspring/decimal"

	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/ledger"
	"github.com/mmynk/splitledger/internal/middleware"
	"github.com/mmynk/splitledger/internal/models"
	pb "github.com/mmynk/splitledger/pkg/proto"
)

// toConnectError maps ledger sentinels onto Connect codes.
func toConnectError(err error) *connect.Error {
	var code connect.Code
	switch {
	case errors.Is(err, models.ErrNotFound):
		code = connect.CodeNotFound
	case errors.Is(err, models.ErrNotAMember):
		code = connect.CodePermissionDenied
	case errors.Is(err, models.ErrSplitMismatch),
		errors.Is(err, models.ErrInvalidAmount),
		errors.Is(err, models.ErrInvalidRequest):
		code = connect.CodeInvalidArgument
	case errors.Is(err, models.ErrInvalidStateTransition),
		errors.Is(err, models.ErrGroupArchived):
		code = connect.CodeFailedPrecondition
	case errors.Is(err, models.ErrTransactionAborted):
		code = connect.CodeAborted
	case errors.Is(err, context.DeadlineExceeded):
		code = connect.CodeDeadlineExceeded
	case errors.Is(err, context.Canceled):
		code = connect.CodeCanceled
	default:
		code = connect.CodeInternal
	}
	return connect.NewError(code, err)
}

// withActor carries the authenticated caller into the ledger's activity records.
func withActor(ctx context.Context) context.Context {
	return ledger.ContextWithActor(ctx, middleware.GetUserID(ctx))
}

func toProtoGroup(g *models.Group) *pb.Group {
	return &pb.Group{
		Id:        g.ID,
		Name:      g.Name,
		Currency:  g.Currency,
		Status:    string(g.Status),
		Members:   g.Members,
		CreatedAt: g.CreatedAt,
	}
}

func toProtoExpense(e *models.Expense) *pb.Expense {
	shares := make([]*pb.Share, len(e.Shares))
	for i, s := range e.Shares {
		shares[i] = &pb.Share{
			UserId: s.UserID,
			Amount: s.Amount,
			Paid:   s.Paid,
		}
		if e.Policy == models.SplitPolicyPercentage {
			shares[i].Percent = s.Percent.String()
		}
	}
	return &pb.Expense{
		Id:          e.ID,
		GroupId:     e.GroupID,
		PayerId:     e.PayerID,
		Description: e.Description,
		Amount:      e.Amount,
		Policy:      string(e.Policy),
		Shares:      shares,
		CreatedBy:   e.CreatedBy,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func toProtoPayment(p *models.Payment) *pb.Payment {
	return &pb.Payment{
		Id:         p.ID,
		GroupId:    p.GroupID,
		FromUserId: p.FromUserID,
		ToUserId:   p.ToUserID,
		Amount:     p.Amount,
		Status:     string(p.Status),
		Reversed:   p.Reversed,
		Note:       p.Note,
		CreatedBy:  p.CreatedBy,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

func toProtoActivity(a *models.Activity) *pb.Activity {
	deltas := make([]*pb.Delta, len(a.Deltas))
	for i, d := range a.Deltas {
		deltas[i] = &pb.Delta{UserId: d.UserID, Amount: d.Amount}
	}
	return &pb.Activity{
		Id:        a.ID,
		GroupId:   a.GroupID,
		Actor:     a.Actor,
		Action:    string(a.Action),
		ExpenseId: a.ExpenseID,
		PaymentId: a.PaymentID,
		Deltas:    deltas,
		CreatedAt: a.CreatedAt,
	}
}

// fromProtoParticipants parses wire participants. An empty list comes back
// nil so an edit keeps the stored participants.
func fromProtoParticipants(in []*pb.Participant) ([]calculator.Participant, error) {
	if len(in) == 0 {
		return nil, nil
	}
	out := make([]calculator.Participant, len(in))
	for i, p := range in {
		if p == nil {
			return nil, fmt.Errorf("participant %d is empty: %w", i, models.ErrInvalidRequest)
		}
		out[i] = calculator.Participant{UserID: p.GetUserId(), Amount: p.GetAmount()}
		if p.GetPercent() != "" {
			percent, err := decimal.NewFromString(p.GetPercent())
			if err != nil {
				return nil, fmt.Errorf("participant %s: bad percent %q: %w", p.GetUserId(), p.GetPercent(), models.ErrInvalidRequest)
			}
			out[i].Percent = percent
		}
	}
	return out, nil
}
