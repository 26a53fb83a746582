// Package domainfolio provides the types and functions to track a portfolio
// of domain-name assets. It is designed to be local-first, auditable, and
// extensible, ensuring users have full control and transparency over their
// data.
//
// The core functionalities include:
//   - Ledger Management: Recording every acquisition, renewal, sale, transfer
//     and fee as an immutable, chronological record of typed transactions.
//   - Cost Basis Reconstruction: Deriving the total capital committed to a
//     domain from authoritative payments, declared history, or age-based
//     inference.
//   - Sale Accounting: Net/gross/fee resolution, platform fee tables, and
//     installment plan math.
//   - Return Metrics: Per-domain and portfolio ROI, with ranking and
//     annualized vs. actual renewal-cost views.
//   - Renewal Forecasting: Threshold-based expiry reminders and a rolling
//     12-month renewal cash-outflow forecast.
//   - Data Persistence: Encoding and decoding to human-readable JSONL, with a
//     debounced dual (remote + local) store in the store subpackage.
//
// This package serves as the foundational logic for the `dfo` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package domainfolio
