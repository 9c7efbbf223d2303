// Package investlab provides the core logic for a stock-market-literacy
// paper-trading application: a simulated portfolio ledger, a synthetic
// market data simulator, a local OTP-based authentication flow, and a
// learning-progress tracker, all persisted to a local JSON state store.
//
// The core functionalities include:
//   - Portfolio Ledger: applying buy/sell trades to a cash+holdings
//     snapshot with weighted-average cost accounting. Trades never mutate
//     the input snapshot; invalid trades are rejected with typed errors.
//   - Market Simulator: synthetic price ticks, historical series and
//     bid/ask ladders for a fixed set of instruments, driven by an
//     injectable random source so tests are reproducible.
//   - Authentication: a local, prototype-grade registration/login flow
//     with one-time passwords. There is no server and no real security;
//     passwords are stored in plaintext.
//   - State Store: load-at-startup / save-on-change persistence of the
//     session, credential directory, language preference, learning
//     progress and portfolio as JSON files under a state directory.
//
// This package serves as the foundational logic for the `ivl` command-line
// tool. Everything is local-first: no network, no real market data.
package investlab
