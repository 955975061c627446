// Package journal provides SQLite-backed durable history of restocks.
//
// The inventory text file only holds current quantities. The journal keeps
// an append-only record of every restock the tracker performed: which
// record was chosen, how many units were added, the resulting quantity and
// how many file lines the write patched.
//
// # Ordering
//
//   - Every event gets a seq INTEGER assigned by SQLite on insert
//   - Listing orders by seq, never by wall-clock time
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//
// Schema changes are tracked with PRAGMA user_version.
package journal
