// Package booking implements a session-booking backend: account registration
// and login, stateless JWT bearer authentication, and the participation state
// machine that governs which users are enrolled in which sessions.
//
// Authentication:
//   - UserProvider verifies submitted credentials against stored bcrypt
//     hashes and resolves token subjects back into Principal values. Lookup
//     failures and password mismatches collapse into the same error so the
//     login surface never reveals whether an email is registered.
//   - TokenService issues and validates HS256 tokens. Tokens are stateless:
//     a structurally valid, unexpired token is sufficient proof of identity
//     and there is no server-side revocation.
//   - TokenGate runs once per request. It extracts the bearer token, and on
//     success attaches a request-scoped Principal; on any failure it leaves
//     the request unauthenticated and lets RequireAuthenticated reject at the
//     route level, so public endpoints stay reachable with a bad token.
//
// Enrollment:
//   - SessionService owns the (session, user) membership relation. Joining a
//     session a user is already in, or leaving one they are not in, is a
//     client error, never a silent no-op. Membership keeps insertion order
//     and the store enforces uniqueness alongside the service checks.
package booking
