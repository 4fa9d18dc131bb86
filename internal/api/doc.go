// Package api exposes the inkwell JSON API.
//
// # Endpoints
//
//	POST   /register     create a user                    (no auth)
//	POST   /login        exchange credentials for a token (no auth)
//	GET    /health       liveness check                   (no auth)
//	GET    /me           identity from the token          (bearer)
//	GET    /pages        list the caller's pages          (bearer)
//	POST   /pages        create a page                    (bearer)
//	GET    /pages/{id}   fetch one page                   (bearer)
//	PUT    /pages/{id}   update title/content             (bearer)
//	DELETE /pages/{id}   delete a page                    (bearer)
//
// # Error Contract
//
// All failures are JSON bodies of the form {"error": "..."}:
//
//   - 400: missing/empty required field or malformed body
//   - 401: missing bearer token, or invalid credentials on login
//   - 403: invalid or expired token
//   - 404: page missing or owned by a different caller (indistinguishable)
//   - 409: duplicate email on registration
//   - 500: storage or unexpected failure, detail logged server-side only
//
// Handlers take the acting owner exclusively from the verified token identity
// in the request context. Request bodies never carry an owner field.
package api
