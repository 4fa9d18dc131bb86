// Package auth provides authentication and authorization for inkwell.
//
// # Bearer Tokens
//
// API clients authenticate with JWT bearer tokens signed with HS256 using the
// configured jwt_secret. Tokens embed the user ID ("sub"), email, issuance and
// expiry timestamps, and are never stored server-side: a session is valid
// exactly as long as its signature checks out and its expiry has not passed.
//
//	verifier := auth.NewJWTVerifier(secret, ttl)
//	token, err := verifier.Issue(user)
//	identity, err := verifier.Verify(token)
//
// # Middleware
//
// Middleware gates every page endpoint:
//
//   - no or malformed Authorization header: 401, request short-circuited
//   - token present but invalid or expired: 403
//   - token valid: Identity attached to the request context
//
// Handlers retrieve the acting principal with FromContext and must use its
// SubjectID as the owner scope for every store call; client-supplied owner
// fields are never trusted.
//
// # Passwords
//
// Passwords are hashed with bcrypt at the default cost. Login failures collapse
// unknown email and wrong password into one result, and the unknown-email path
// runs a dummy bcrypt comparison so the two cannot be told apart by timing.
package auth
