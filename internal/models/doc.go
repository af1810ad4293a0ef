// Package models defines the core domain models for the ledger.
//
// # Models
//
//   - Group: an expense-sharing group and its member ids
//   - MemberBalance: one member's running balance inside a group
//   - Delta: a signed change applied to one member balance
//   - Expense / ParticipantShare: a shared expense and its exact per-user split
//   - Payment: a direct transfer between two members
//   - Activity: an append-only audit record of a ledger-affecting operation
//   - Transfer: one element of a settlement plan
//
// # Design Principles
//
//  1. Amounts are int64 minor currency units. Floating point is never used.
//  2. Relationships are expressed with opaque ID strings, never pointers.
//  3. Balances are zero-sum per group: positive means the member owes the group,
//     negative means the group owes the member.
package models
