// Package account implements registration and credential verification.
//
// Registration validates both fields, hashes the password with bcrypt, and
// inserts the user; a duplicate email surfaces as store.ErrEmailExists rather
// than a raw constraint error. Credential verification deliberately returns
// the same ErrInvalidCredentials for an unknown email and a wrong password.
package account
