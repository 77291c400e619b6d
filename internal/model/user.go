package model

import "time"

// User represents an application user record as stored in the `users`
// table.  The password column holds a bcrypt hash, never the plain value.
//
// Fields:
//  ID           – primary key identifier of the user.
//  Name         – display name given at registration.
//  Email        – unique, lower-cased email address.
//  PasswordHash – bcrypt hash stored in users.password.
//  CreatedAt    – timestamp of creation.
type User struct {
    ID           uint64    // users.id
    Name         string    // users.name
    Email        string    // users.email
    PasswordHash string    // users.password
    CreatedAt    time.Time // users.created_at
}
