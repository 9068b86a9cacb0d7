// Package domain holds the value shapes exchanged with the library API:
// clients, books, reservations and fines. The API is inconsistent about
// field spelling (PascalCase vs snake_case) and about where associated
// records are nested, so the types that suffer from it carry a coalescing
// UnmarshalJSON instead of leaking that cleanup into every caller.
package domain
